// Package geom provides geometric primitives for board-game engines:
// lattice points, grid sizes, compass directions, the symmetry group of
// the square, and a dense bounds-checked 2-D table container.
//
// The package contains no external dependencies and performs no I/O, so
// game logic built on it stays pure and testable. All types are plain
// values or a single-owner container; operations are deterministic and
// synchronous.
//
// Coordinates are (Row, Col) pairs. Row increases downward and Col
// increases rightward, so North is the offset (-1, 0). Whole-grid
// traversal is always row-major: rows ascending, then columns ascending.
//
// The package defines no locking. A Table shared across goroutines needs
// external synchronization for mutation; every other type is an immutable
// value and safe to copy anywhere.
package geom
