package faces

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akh3nakh/circlepuzzle/closure"
	"github.com/akh3nakh/circlepuzzle/fixedmath"
	"github.com/akh3nakh/circlepuzzle/geom"
	"github.com/akh3nakh/circlepuzzle/geom/planar"
)

func f(v float64) fixedmath.Fixed { return fixedmath.FromFloat64(v) }

func circle(x, y, r float64) planar.Circle {
	return planar.Circle{Center: planar.Point{X: f(x), Y: f(y)}, Radius: f(r)}
}

func closeMoves(t *testing.T, moves []geom.Move[planar.Circle]) *geom.CutMap[planar.Circle, planar.ArcsOnCircle] {
	t.Helper()
	return closure.Close[planar.Point, planar.Circle, planar.Circle, planar.Arc, planar.ArcsOnCircle](
		planar.Trait{}, moves, nil)
}

func TestExtractSingleCircleProducesTwoParts(t *testing.T) {
	m, err := geom.NewMove[planar.Circle](circle(0, 0, 1), 4)
	require.NoError(t, err)
	cuts := closeMoves(t, []geom.Move[planar.Circle]{m})

	e := Extract[planar.Point, planar.Circle, planar.Circle, planar.Arc, planar.ArcsOnCircle](planar.Trait{}, cuts)

	// A single untouched circle bounds exactly two faces: its interior
	// disk and the unbounded exterior, both traced as the same single
	// full-circle loop from opposite sides.
	require.Len(t, e.Parts, 2)
	for _, p := range e.Parts {
		require.Len(t, p.Boundary, 1)
	}
}

func TestExtractDisjointCirclesEachGetOwnParts(t *testing.T) {
	m1, err := geom.NewMove[planar.Circle](circle(-10, 0, 1), 3)
	require.NoError(t, err)
	m2, err := geom.NewMove[planar.Circle](circle(10, 0, 1), 3)
	require.NoError(t, err)
	cuts := closeMoves(t, []geom.Move[planar.Circle]{m1, m2})

	e := Extract[planar.Point, planar.Circle, planar.Circle, planar.Arc, planar.ArcsOnCircle](planar.Trait{}, cuts)

	// Two interiors plus one shared exterior.
	assert.Len(t, e.Parts, 3)
}

func TestExtractOverlappingDisksProduceLensSubdivision(t *testing.T) {
	m1, err := geom.NewMove[planar.Circle](circle(-1, 0, 2.5), 3)
	require.NoError(t, err)
	m2, err := geom.NewMove[planar.Circle](circle(1, 0, 2.5), 3)
	require.NoError(t, err)
	cuts := closeMoves(t, []geom.Move[planar.Circle]{m1, m2})

	e := Extract[planar.Point, planar.Circle, planar.Circle, planar.Arc, planar.ArcsOnCircle](planar.Trait{}, cuts)

	// Overlapping disks subdivide the plane into at least: left crescent,
	// right crescent, central lens, and the unbounded exterior.
	assert.GreaterOrEqual(t, len(e.Parts), 4)

	for _, p := range e.Parts {
		assert.NotEmpty(t, p.Boundary)
	}
}

func TestDerivePermutationOfSingleCircleIsIdentity(t *testing.T) {
	m, err := geom.NewMove[planar.Circle](circle(0, 0, 1), 4)
	require.NoError(t, err)
	cuts := closeMoves(t, []geom.Move[planar.Circle]{m})
	e := Extract[planar.Point, planar.Circle, planar.Circle, planar.Arc, planar.ArcsOnCircle](planar.Trait{}, cuts)

	perm, err := DerivePermutation[planar.Point, planar.Circle, planar.Circle, planar.Arc, planar.ArcsOnCircle](
		planar.Trait{}, e, m)
	require.NoError(t, err)

	// Rotating a lone circle about its own center fixes both the
	// interior and exterior faces setwise.
	for i, v := range perm.Permutation {
		assert.Equal(t, i, v)
	}
}

func TestMovePermutationStringIsOneIndexedAndBracketed(t *testing.T) {
	p := MovePermutation{Permutation: []int{1, 2, 0}}
	assert.Equal(t, "[2,3,1]", p.String())
}
