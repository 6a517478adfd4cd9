package geom

import "fmt"

// Point is a position on a 2-D lattice. Row increases downward, Col
// increases rightward. The zero value is the origin.
//
// Point is a plain comparable value: compare with ==, use as a map key,
// copy freely. Arithmetic wraps around on overflow (Go's native two's
// complement int semantics); board coordinates in practice stay far away
// from that range.
type Point struct {
	Row, Col int
}

// Pt is a convenience constructor for Point.
func Pt(row, col int) Point {
	return Point{Row: row, Col: col}
}

// String returns the point as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns the componentwise sum of two points.
func (p Point) Add(other Point) Point {
	return Point{Row: p.Row + other.Row, Col: p.Col + other.Col}
}

// Sub returns the componentwise difference of two points.
func (p Point) Sub(other Point) Point {
	return Point{Row: p.Row - other.Row, Col: p.Col - other.Col}
}

// Neg returns the point with both components negated.
func (p Point) Neg() Point {
	return Point{Row: -p.Row, Col: -p.Col}
}

// Mul returns the point scaled by n.
func (p Point) Mul(n int) Point {
	return Point{Row: p.Row * n, Col: p.Col * n}
}

// Less reports whether p sorts before other in row-major order:
// by Row first, then by Col. This is the ordering used for canonical
// grid traversal.
func (p Point) Less(other Point) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

// Manhattan returns the Manhattan distance to another point, the number
// of cardinal steps between them.
func (p Point) Manhattan(other Point) int {
	return abs(p.Row-other.Row) + abs(p.Col-other.Col)
}

// Chebyshev returns the Chebyshev distance to another point, the number
// of king moves between them.
func (p Point) Chebyshev(other Point) int {
	dr := abs(p.Row - other.Row)
	dc := abs(p.Col - other.Col)
	if dr > dc {
		return dr
	}
	return dc
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
