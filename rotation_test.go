package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	geom "github.com/gifnksm/board-game-geom"
)

func TestRotationCyclicSubgroup(t *testing.T) {
	// The four pure rotations compose cyclically.
	rots := []geom.Rotation{
		geom.RotateNone, geom.RotateCCW90, geom.RotateCCW180, geom.RotateCCW270,
	}
	for i, a := range rots {
		for j, b := range rots {
			assert.Equal(t, rots[(i+j)%len(rots)], a.Compose(b), "%v * %v", a, b)
		}
	}
}

func TestRotationIdentity(t *testing.T) {
	for _, r := range geom.Rotations {
		assert.Equal(t, r, geom.RotateNone.Compose(r))
		assert.Equal(t, r, r.Compose(geom.RotateNone))
	}
}

func TestRotationInverse(t *testing.T) {
	for _, r := range geom.Rotations {
		assert.Equal(t, geom.RotateNone, r.Compose(r.Inverse()), "rotation %v", r)
		assert.Equal(t, geom.RotateNone, r.Inverse().Compose(r), "rotation %v", r)
	}

	// Half turn and reflections are involutions.
	for _, r := range []geom.Rotation{
		geom.RotateCCW180, geom.FlipVertical, geom.FlipHorizontal,
		geom.Transpose, geom.AntiTranspose,
	} {
		assert.Equal(t, r, r.Inverse(), "rotation %v", r)
	}
	assert.Equal(t, geom.RotateCCW270, geom.RotateCCW90.Inverse())
}

func TestRotationAssociativity(t *testing.T) {
	for _, a := range geom.Rotations {
		for _, b := range geom.Rotations {
			for _, c := range geom.Rotations {
				assert.Equal(t,
					a.Compose(b).Compose(c),
					a.Compose(b.Compose(c)),
					"(%v*%v)*%v", a, b, c)
			}
		}
	}
}

func TestRotationApplyOffset(t *testing.T) {
	// A counterclockwise quarter turn cycles the cardinal offsets
	// North -> West -> South -> East, and likewise the diagonals.
	cycles := [][]geom.Point{
		{geom.Pt(-1, 0), geom.Pt(0, -1), geom.Pt(1, 0), geom.Pt(0, 1)},
		{geom.Pt(-1, 1), geom.Pt(-1, -1), geom.Pt(1, -1), geom.Pt(1, 1)},
	}
	quarters := []geom.Rotation{
		geom.RotateNone, geom.RotateCCW90, geom.RotateCCW180, geom.RotateCCW270,
	}

	for i, r := range quarters {
		for _, cycle := range cycles {
			for j, p := range cycle {
				assert.Equal(t, cycle[(i+j)%len(cycle)], r.ApplyOffset(p), "%v on %v", r, p)
			}
		}
	}
}

func TestRotationApplyOffsetFlips(t *testing.T) {
	assert.Equal(t, geom.Pt(-2, 3), geom.FlipVertical.ApplyOffset(geom.Pt(2, 3)))
	assert.Equal(t, geom.Pt(2, -3), geom.FlipHorizontal.ApplyOffset(geom.Pt(2, 3)))
	assert.Equal(t, geom.Pt(3, 2), geom.Transpose.ApplyOffset(geom.Pt(2, 3)))
	assert.Equal(t, geom.Pt(-3, -2), geom.AntiTranspose.ApplyOffset(geom.Pt(2, 3)))
}

func TestRotationComposeMatchesApplication(t *testing.T) {
	// The group product agrees with applying the right factor first.
	samples := []geom.Point{geom.Pt(1, 0), geom.Pt(0, 1), geom.Pt(2, 3), geom.Pt(-1, 4)}
	for _, a := range geom.Rotations {
		for _, b := range geom.Rotations {
			ab := a.Compose(b)
			for _, p := range samples {
				assert.Equal(t, a.ApplyOffset(b.ApplyOffset(p)), ab.ApplyOffset(p),
					"%v*%v on %v", a, b, p)
			}
			for _, d := range geom.Directions {
				assert.Equal(t, a.ApplyDirection(b.ApplyDirection(d)), ab.ApplyDirection(d),
					"%v*%v on %v", a, b, d)
			}
		}
	}
}

func TestRotationApplyDirectionConsistent(t *testing.T) {
	for _, r := range geom.Rotations {
		for _, d := range geom.Directions {
			assert.Equal(t, r.ApplyOffset(d.Offset()), r.ApplyDirection(d).Offset(),
				"%v on %v", r, d)
		}
	}
}

func TestRotationApplySize(t *testing.T) {
	s := geom.Size{Rows: 2, Cols: 5}
	swapped := geom.Size{Rows: 5, Cols: 2}

	want := map[geom.Rotation]geom.Size{
		geom.RotateNone:     s,
		geom.RotateCCW90:    swapped,
		geom.RotateCCW180:   s,
		geom.RotateCCW270:   swapped,
		geom.FlipVertical:   s,
		geom.FlipHorizontal: s,
		geom.Transpose:      swapped,
		geom.AntiTranspose:  swapped,
	}

	for r, ws := range want {
		assert.Equal(t, ws, r.ApplySize(s), "rotation %v", r)
	}
}

func TestRotationApplyCorners(t *testing.T) {
	// A quarter turn counterclockwise sends the top-left corner of a
	// 2x3 grid to the bottom-left of the resulting 3x2 grid.
	s := geom.Size{Rows: 2, Cols: 3}
	assert.Equal(t, geom.Pt(2, 0), geom.RotateCCW90.Apply(geom.Pt(0, 0), s))
	assert.Equal(t, geom.Pt(0, 0), geom.RotateCCW90.Apply(geom.Pt(0, 2), s))
	assert.Equal(t, geom.Pt(2, 1), geom.RotateCCW90.Apply(geom.Pt(1, 0), s))

	// A half turn sends every cell to its mirror through the center.
	assert.Equal(t, geom.Pt(1, 2), geom.RotateCCW180.Apply(geom.Pt(0, 0), s))
	assert.Equal(t, geom.Pt(0, 0), geom.RotateCCW180.Apply(geom.Pt(1, 2), s))
}

func TestRotationApplyBijection(t *testing.T) {
	s := geom.Size{Rows: 2, Cols: 3}

	for _, r := range geom.Rotations {
		t.Run(r.String(), func(t *testing.T) {
			dst := r.ApplySize(s)
			seen := make(map[geom.Point]bool)

			for p := range s.Points() {
				q := r.Apply(p, s)
				assert.True(t, dst.Contains(q), "%v maps %v to %v outside %v", r, p, q, dst)
				assert.False(t, seen[q], "%v maps two points to %v", r, q)
				seen[q] = true

				// The inverse rotation undoes the mapping.
				assert.Equal(t, p, r.Inverse().Apply(q, dst))
			}
			assert.Len(t, seen, s.Count())
		})
	}
}

func TestRotationString(t *testing.T) {
	assert.Equal(t, "RotateCCW90", geom.RotateCCW90.String())
	assert.Equal(t, "AntiTranspose", geom.AntiTranspose.String())
	assert.Equal(t, "Unknown", geom.Rotation(99).String())
}
