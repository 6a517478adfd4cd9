package geom

// Rotation is one of the eight symmetries of the square: the identity,
// three counterclockwise rotations, and four reflections. Together they
// form the dihedral group of the square under Compose.
type Rotation uint8

const (
	// RotateNone is the identity rotation.
	RotateNone Rotation = iota
	// RotateCCW90 rotates 90 degrees counterclockwise.
	RotateCCW90
	// RotateCCW180 rotates 180 degrees.
	RotateCCW180
	// RotateCCW270 rotates 270 degrees counterclockwise.
	RotateCCW270
	// FlipVertical mirrors across the horizontal axis, negating rows.
	FlipVertical
	// FlipHorizontal mirrors across the vertical axis, negating columns.
	FlipHorizontal
	// Transpose mirrors across the main diagonal, swapping row and column.
	Transpose
	// AntiTranspose mirrors across the anti-diagonal.
	AntiTranspose
)

// Rotations lists all eight rotations in canonical order.
var Rotations = []Rotation{
	RotateNone, RotateCCW90, RotateCCW180, RotateCCW270,
	FlipVertical, FlipHorizontal, Transpose, AntiTranspose,
}

// Each rotation is a 2x2 signed permutation matrix {rr, rc, cr, cc}
// acting on (row, col): row' = rr*row + rc*col, col' = cr*row + cc*col.
var rotationMatrices = [...][4]int{
	RotateNone:     {1, 0, 0, 1},
	RotateCCW90:    {0, -1, 1, 0},
	RotateCCW180:   {-1, 0, 0, -1},
	RotateCCW270:   {0, 1, -1, 0},
	FlipVertical:   {-1, 0, 0, 1},
	FlipHorizontal: {1, 0, 0, -1},
	Transpose:      {0, 1, 1, 0},
	AntiTranspose:  {0, -1, -1, 0},
}

// String returns the rotation's name.
func (r Rotation) String() string {
	switch r {
	case RotateNone:
		return "RotateNone"
	case RotateCCW90:
		return "RotateCCW90"
	case RotateCCW180:
		return "RotateCCW180"
	case RotateCCW270:
		return "RotateCCW270"
	case FlipVertical:
		return "FlipVertical"
	case FlipHorizontal:
		return "FlipHorizontal"
	case Transpose:
		return "Transpose"
	case AntiTranspose:
		return "AntiTranspose"
	default:
		return "Unknown"
	}
}

// Compose returns the rotation equivalent to applying other first and
// then r. The operation is the group product: closed, associative, with
// RotateNone as the two-sided identity.
func (r Rotation) Compose(other Rotation) Rotation {
	a, b := rotationMatrices[r], rotationMatrices[other]
	return rotationFromMatrix([4]int{
		a[0]*b[0] + a[1]*b[2],
		a[0]*b[1] + a[1]*b[3],
		a[2]*b[0] + a[3]*b[2],
		a[2]*b[1] + a[3]*b[3],
	})
}

// Inverse returns the rotation that undoes r, so that
// r.Compose(r.Inverse()) == RotateNone. Reflections and RotateCCW180 are
// their own inverses.
func (r Rotation) Inverse() Rotation {
	// Signed permutation matrices are orthogonal: the inverse is the
	// transpose.
	m := rotationMatrices[r]
	return rotationFromMatrix([4]int{m[0], m[2], m[1], m[3]})
}

func rotationFromMatrix(m [4]int) Rotation {
	for _, r := range Rotations {
		if rotationMatrices[r] == m {
			return r
		}
	}
	// Unreachable: the group is closed under products and transposes.
	return RotateNone
}

// ApplyOffset transforms a translation-invariant vector such as a
// direction offset. This is the pure linear map about the origin; use
// Apply for points bounded by a grid.
func (r Rotation) ApplyOffset(p Point) Point {
	m := rotationMatrices[r]
	return Point{
		Row: m[0]*p.Row + m[1]*p.Col,
		Col: m[2]*p.Row + m[3]*p.Col,
	}
}

// ApplyDirection returns the direction that r maps d onto, consistently
// with ApplyOffset on d's unit offset.
func (r Rotation) ApplyDirection(d Direction) Direction {
	// Total: every rotation permutes the eight unit offsets.
	mapped, _ := DirectionFromOffset(r.ApplyOffset(d.Offset()))
	return mapped
}

// Apply transforms a point of a grid with extent within, translating the
// linear image so that the cells of within map bijectively onto the
// cells of ApplySize(within). A corner cell always maps to a corner
// cell.
func (r Rotation) Apply(p Point, within Size) Point {
	m := rotationMatrices[r]
	q := Point{
		Row: m[0]*p.Row + m[1]*p.Col,
		Col: m[2]*p.Row + m[3]*p.Col,
	}
	if m[0] < 0 {
		q.Row += within.Rows - 1
	}
	if m[1] < 0 {
		q.Row += within.Cols - 1
	}
	if m[2] < 0 {
		q.Col += within.Rows - 1
	}
	if m[3] < 0 {
		q.Col += within.Cols - 1
	}
	return q
}

// ApplySize returns the extent of a grid of size s after applying r:
// rows and columns swap for RotateCCW90, RotateCCW270, Transpose, and
// AntiTranspose, and are unchanged for the rest.
func (r Rotation) ApplySize(s Size) Size {
	if rotationMatrices[r][0] == 0 {
		return Size{Rows: s.Cols, Cols: s.Rows}
	}
	return s
}
