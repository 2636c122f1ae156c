package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akh3nakh/circlepuzzle/fixedmath"
	"github.com/akh3nakh/circlepuzzle/geom"
	"github.com/akh3nakh/circlepuzzle/geom/planar"
)

func f(v float64) fixedmath.Fixed { return fixedmath.FromFloat64(v) }

func circle(x, y, r float64) planar.Circle {
	return planar.Circle{Center: planar.Point{X: f(x), Y: f(y)}, Radius: f(r)}
}

func newPlanarPuzzle(t *testing.T, moves []geom.Move[planar.Circle]) *Puzzle[planar.Point, planar.Circle, planar.Circle, planar.Arc, planar.ArcsOnCircle] {
	t.Helper()
	return New[planar.Point, planar.Circle, planar.Circle, planar.Arc, planar.ArcsOnCircle](planar.Trait{}, moves)
}

func TestTwoMovePlanarProducesValidPermutations(t *testing.T) {
	m1, err := geom.NewMove[planar.Circle](circle(-1, 0, 2.5), 3)
	require.NoError(t, err)
	m2, err := geom.NewMove[planar.Circle](circle(1, 0, 2.5), 3)
	require.NoError(t, err)

	pz := newPlanarPuzzle(t, []geom.Move[planar.Circle]{m1, m2})

	strs, err := pz.PermutationStrings()
	require.NoError(t, err)
	require.Len(t, strs, 2)
	for _, s := range strs {
		assert.NotEmpty(t, s)
	}

	assert.NoError(t, pz.Validate())
}

func TestDeduplicationYieldsSameResultAsSingleMove(t *testing.T) {
	m, err := geom.NewMove[planar.Circle](circle(-1, 0, 2.5), 3)
	require.NoError(t, err)
	m2, err := geom.NewMove[planar.Circle](circle(1, 0, 2.5), 3)
	require.NoError(t, err)

	withDup := newPlanarPuzzle(t, []geom.Move[planar.Circle]{m, m2, m})
	without := newPlanarPuzzle(t, []geom.Move[planar.Circle]{m, m2})

	dupStrs, err := withDup.PermutationStrings()
	require.NoError(t, err)
	noDupStrs, err := without.PermutationStrings()
	require.NoError(t, err)

	assert.Equal(t, noDupStrs, dupStrs)
}

func TestLoneMoveFixesInteriorAndExterior(t *testing.T) {
	inner, err := geom.NewMove[planar.Circle](circle(0, 0, 1), 3)
	require.NoError(t, err)

	pz := newPlanarPuzzle(t, []geom.Move[planar.Circle]{inner})

	parts, err := pz.Parts()
	require.NoError(t, err)
	assert.Len(t, parts, 2) // interior, exterior; no other disk to subdivide the interior further

	perms, err := pz.PartPermutations()
	require.NoError(t, err)
	require.Len(t, perms, 1)
	// Untouched single circle: both faces are fixed setwise by rotation about their own center.
	for i, v := range perms[0].Permutation {
		assert.Equal(t, i, v)
	}
}

func TestGroupedCutsAndFlatCutsAreMemoized(t *testing.T) {
	m1, err := geom.NewMove[planar.Circle](circle(-1, 0, 2.5), 3)
	require.NoError(t, err)
	m2, err := geom.NewMove[planar.Circle](circle(1, 0, 2.5), 3)
	require.NoError(t, err)

	pz := newPlanarPuzzle(t, []geom.Move[planar.Circle]{m1, m2})

	cuts1, err := pz.GroupedCuts()
	require.NoError(t, err)
	cuts2, err := pz.GroupedCuts()
	require.NoError(t, err)
	assert.Same(t, cuts1, cuts2)

	flat1, err := pz.FlatCuts()
	require.NoError(t, err)
	flat2, err := pz.FlatCuts()
	require.NoError(t, err)
	assert.Equal(t, len(flat1), len(flat2))
}

func TestNewWithLimitSurfacesCutLimitExceeded(t *testing.T) {
	m1, err := geom.NewMove[planar.Circle](circle(-1, 0, 2.5), 3)
	require.NoError(t, err)
	m2, err := geom.NewMove[planar.Circle](circle(1, 0, 2.5), 3)
	require.NoError(t, err)

	pz := NewWithLimit[planar.Point, planar.Circle, planar.Circle, planar.Arc, planar.ArcsOnCircle](
		planar.Trait{}, []geom.Move[planar.Circle]{m1, m2}, 0)

	_, err = pz.GroupedCuts()
	require.Error(t, err)
}
