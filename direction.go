package geom

// Direction is one of the eight compass directions, ordered clockwise
// from North. The set is closed; every operation on it is total.
type Direction uint8

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// NumDirections is the number of compass directions.
const NumDirections = 8

// Directions lists all eight directions in canonical clockwise order,
// used for deterministic neighbor iteration.
var Directions = []Direction{
	North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest,
}

// CardinalDirections lists the four cardinal directions in canonical
// clockwise order.
var CardinalDirections = []Direction{North, East, South, West}

// String returns the direction's name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case NorthEast:
		return "NorthEast"
	case East:
		return "East"
	case SouthEast:
		return "SouthEast"
	case South:
		return "South"
	case SouthWest:
		return "SouthWest"
	case West:
		return "West"
	case NorthWest:
		return "NorthWest"
	default:
		return "Unknown"
	}
}

// Offset returns the unit point offset for one step in this direction.
// Both components are in {-1, 0, 1} and at least one is nonzero.
func (d Direction) Offset() Point {
	switch d {
	case North:
		return Point{Row: -1, Col: 0}
	case NorthEast:
		return Point{Row: -1, Col: 1}
	case East:
		return Point{Row: 0, Col: 1}
	case SouthEast:
		return Point{Row: 1, Col: 1}
	case South:
		return Point{Row: 1, Col: 0}
	case SouthWest:
		return Point{Row: 1, Col: -1}
	case West:
		return Point{Row: 0, Col: -1}
	case NorthWest:
		return Point{Row: -1, Col: -1}
	default:
		return Point{}
	}
}

// Opposite returns the direction rotated 180 degrees; its offset is the
// negation of d's offset.
func (d Direction) Opposite() Direction {
	return d.Rotate(NumDirections / 2)
}

// Rotate returns the direction steps*45 degrees clockwise from d.
// Negative steps rotate counterclockwise. Rotation is cyclic, so any
// multiple of NumDirections is the identity.
func (d Direction) Rotate(steps int) Direction {
	i := (int(d) + steps) % NumDirections
	if i < 0 {
		i += NumDirections
	}
	return Direction(i)
}

// IsCardinal reports whether d is one of North, East, South, West.
func (d Direction) IsCardinal() bool {
	return d%2 == 0
}

// DirectionFromOffset returns the direction whose unit offset is p, and
// whether such a direction exists.
func DirectionFromOffset(p Point) (Direction, bool) {
	for _, d := range Directions {
		if d.Offset() == p {
			return d, true
		}
	}
	return North, false
}
