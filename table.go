package geom

import (
	"fmt"
	"iter"
)

// Table is a dense 2-D grid of T values indexed by Point. Cells are
// stored in a single row-major backing slice of length Rows*Cols, owned
// exclusively by the Table. A Table is never resized; build a new one to
// change extent.
type Table[T any] struct {
	size  Size
	cells []T
}

// NewTable returns a table of the given size with every cell set to
// fill. It fails with ErrNegativeSize if either size component is
// negative.
func NewTable[T any](size Size, fill T) (*Table[T], error) {
	t, err := newTable[T](size)
	if err != nil {
		return nil, err
	}
	for i := range t.cells {
		t.cells[i] = fill
	}
	return t, nil
}

// NewTableFunc returns a table of the given size with each cell set to
// gen(p), invoked exactly once per point in canonical row-major order.
// It fails with ErrNegativeSize if either size component is negative.
func NewTableFunc[T any](size Size, gen func(Point) T) (*Table[T], error) {
	t, err := newTable[T](size)
	if err != nil {
		return nil, err
	}
	for p := range size.Points() {
		t.cells[size.Index(p)] = gen(p)
	}
	return t, nil
}

func newTable[T any](size Size) (*Table[T], error) {
	if size.Rows < 0 || size.Cols < 0 {
		return nil, fmt.Errorf("geom: table size %v: %w", size, ErrNegativeSize)
	}
	return &Table[T]{
		size:  size,
		cells: make([]T, size.Count()),
	}, nil
}

// Size returns the table's extent.
func (t *Table[T]) Size() Size {
	return t.size
}

// Get returns the value at p. It fails with ErrOutOfBounds if p is not
// contained in the table's size; it never clamps.
func (t *Table[T]) Get(p Point) (T, error) {
	if !t.size.Contains(p) {
		var zero T
		return zero, fmt.Errorf("geom: get %v in %v table: %w", p, t.size, ErrOutOfBounds)
	}
	return t.cells[t.size.Index(p)], nil
}

// Set overwrites the value at p. It fails with ErrOutOfBounds if p is
// not contained in the table's size, leaving the table unchanged.
func (t *Table[T]) Set(p Point, v T) error {
	if !t.size.Contains(p) {
		return fmt.Errorf("geom: set %v in %v table: %w", p, t.size, ErrOutOfBounds)
	}
	t.cells[t.size.Index(p)] = v
	return nil
}

// Points returns an iterator over every point of the table in canonical
// row-major order.
func (t *Table[T]) Points() iter.Seq[Point] {
	return t.size.Points()
}

// All returns an iterator over (point, value) pairs in canonical
// row-major order. Iteration does not mutate the table, and each range
// over the result restarts from the first cell.
func (t *Table[T]) All() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for p := range t.size.Points() {
			if !yield(p, t.cells[t.size.Index(p)]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the table with its own backing store.
func (t *Table[T]) Clone() *Table[T] {
	cells := make([]T, len(t.cells))
	copy(cells, t.cells)
	return &Table[T]{size: t.size, cells: cells}
}

// Rotated returns a freshly allocated table of size r.ApplySize(t.Size())
// holding every cell of t at its rotated point. The remapping is a
// bijection, so rotating by r and then by r.Inverse() reproduces the
// original values at every point.
func (t *Table[T]) Rotated(r Rotation) *Table[T] {
	dst := &Table[T]{
		size:  r.ApplySize(t.size),
		cells: make([]T, len(t.cells)),
	}
	for p, v := range t.All() {
		dst.cells[dst.size.Index(r.Apply(p, t.size))] = v
	}
	return dst
}

// EqualTables reports whether two tables have the same size and equal
// values at every point.
func EqualTables[T comparable](a, b *Table[T]) bool {
	if a.size != b.size {
		return false
	}
	for i, v := range a.cells {
		if v != b.cells[i] {
			return false
		}
	}
	return true
}
