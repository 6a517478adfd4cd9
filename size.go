package geom

import (
	"fmt"
	"iter"
)

// Size is the extent of a rectangular grid: Rows by Cols cells. Both
// components are non-negative; a Size with a zero component describes an
// empty grid. Use NewSize to construct a validated Size.
type Size struct {
	Rows, Cols int
}

// NewSize returns a Size with the given extent. It fails with
// ErrNegativeSize if either component is negative.
func NewSize(rows, cols int) (Size, error) {
	if rows < 0 || cols < 0 {
		return Size{}, fmt.Errorf("geom: size %dx%d: %w", rows, cols, ErrNegativeSize)
	}
	return Size{Rows: rows, Cols: cols}, nil
}

// String returns the size as "RowsxCols".
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

// Count returns the total number of cells, Rows*Cols.
func (s Size) Count() int {
	return s.Rows * s.Cols
}

// Contains reports whether p lies within [0,Rows) x [0,Cols). This is
// the single source of truth for bounds checking; Table defers to it.
func (s Size) Contains(p Point) bool {
	return p.Row >= 0 && p.Row < s.Rows && p.Col >= 0 && p.Col < s.Cols
}

// Index returns the row-major cell index of p, Row*Cols + Col. The
// result is only meaningful when Contains(p) is true.
func (s Size) Index(p Point) int {
	return p.Row*s.Cols + p.Col
}

// PointAt is the inverse of Index: it returns the point whose row-major
// cell index is i. The result is only meaningful for 0 <= i < Count()
// on a Size with at least one column.
func (s Size) PointAt(i int) Point {
	return Point{Row: i / s.Cols, Col: i % s.Cols}
}

// Points returns an iterator over every point of the grid in canonical
// row-major order: rows ascending, then columns ascending. The iterator
// is restartable; each range over it yields the full sequence.
func (s Size) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for r := range s.Rows {
			for c := range s.Cols {
				if !yield(Point{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

// PointsInRow returns an iterator over the points of one row, columns
// ascending.
func (s Size) PointsInRow(row int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for c := range s.Cols {
			if !yield(Point{Row: row, Col: c}) {
				return
			}
		}
	}
}

// PointsInCol returns an iterator over the points of one column, rows
// ascending.
func (s Size) PointsInCol(col int) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for r := range s.Rows {
			if !yield(Point{Row: r, Col: col}) {
				return
			}
		}
	}
}
