package closure

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

func TestSingleMoveClosureIsJustItsOwnFullCircle(t *testing.T) {
	m, err := geom.NewMove[planar.Circle](circle(0, 0, 1), 4)
	require.NoError(t, err)

	cuts := Close[planar.Point, planar.Circle, planar.Circle, planar.Arc, planar.ArcsOnCircle](
		planar.Trait{}, []geom.Move[planar.Circle]{m}, nil)

	require.Equal(t, 1, cuts.Len())
	arcs, ok := cuts.Get(circle(0, 0, 1))
	require.True(t, ok)
	assert.True(t, planar.Trait{}.ArcsNonEmpty(arcs))
}

func TestDisjointCirclesProduceNoExtraCuts(t *testing.T) {
	m1, err := geom.NewMove[planar.Circle](circle(-10, 0, 1), 3)
	require.NoError(t, err)
	m2, err := geom.NewMove[planar.Circle](circle(10, 0, 1), 3)
	require.NoError(t, err)

	cuts := Close[planar.Point, planar.Circle, planar.Circle, planar.Arc, planar.ArcsOnCircle](
		planar.Trait{}, []geom.Move[planar.Circle]{m1, m2}, nil)

	assert.Equal(t, 2, cuts.Len())
}

func TestDedupeMovesRemovesExactDuplicates(t *testing.T) {
	m1, err := geom.NewMove[planar.Circle](circle(0, 0, 1), 4)
	require.NoError(t, err)
	m2, err := geom.NewMove[planar.Circle](circle(0, 0, 1), 4)
	require.NoError(t, err)
	m3, err := geom.NewMove[planar.Circle](circle(0, 0, 1), 5) // different increment: not a duplicate

	deduped := DedupeMoves[planar.Point, planar.Circle, planar.Circle, planar.Arc, planar.ArcsOnCircle](
		planar.Trait{}, []geom.Move[planar.Circle]{m1, m2, m3})
	require.NoError(t, err)
	assert.Len(t, deduped, 2)
}

func TestOverlappingMovesProduceAdditionalCutCircles(t *testing.T) {
	m1, err := geom.NewMove[planar.Circle](circle(-1, 0, 2.5), 3)
	require.NoError(t, err)
	m2, err := geom.NewMove[planar.Circle](circle(1, 0, 2.5), 3)
	require.NoError(t, err)

	var rounds int
	cuts := Close[planar.Point, planar.Circle, planar.Circle, planar.Arc, planar.ArcsOnCircle](
		planar.Trait{}, []geom.Move[planar.Circle]{m1, m2}, func(s Stats) { rounds = s.Rounds })

	assert.Greater(t, cuts.Len(), 2, "overlapping disks should generate cuts beyond the two originals")
	assert.Greater(t, rounds, 0)
}

func TestCloseWithLimitReturnsErrorWhenTooLow(t *testing.T) {
	m1, err := geom.NewMove[planar.Circle](circle(-1, 0, 2.5), 3)
	require.NoError(t, err)
	m2, err := geom.NewMove[planar.Circle](circle(1, 0, 2.5), 3)
	require.NoError(t, err)

	_, err = CloseWithLimit[planar.Point, planar.Circle, planar.Circle, planar.Arc, planar.ArcsOnCircle](
		planar.Trait{}, []geom.Move[planar.Circle]{m1, m2}, 0, nil)
	require.Error(t, err)
	var limitErr *ErrCutLimitExceeded
	assert.ErrorAs(t, err, &limitErr)
}
