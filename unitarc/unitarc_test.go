package unitarc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akh3nakh/circlepuzzle/fixedmath"
)

func f(v float64) fixedmath.Fixed { return fixedmath.FromFloat64(v) }

func TestSimplifiedListsHaveNoAdjacentDuplicateFlags(t *testing.T) {
	a := Of(f(1), f(2))
	b := Of(f(1.5), f(3))
	got := Union(a, b)
	entries := got.Entries()
	for i := 1; i < len(entries); i++ {
		assert.NotEqual(t, entries[i-1].Present, entries[i].Present)
	}
	if len(entries) > 1 {
		assert.NotEqual(t, entries[len(entries)-1].Present, entries[0].Present)
	}
}

func TestUnionCommutative(t *testing.T) {
	a := Of(f(0.5), f(2))
	b := Of(f(1), f(4))
	assert.True(t, Equal(Union(a, b), Union(b, a)))
}

func TestDifferenceSelfIsEmpty(t *testing.T) {
	a := Of(f(0.5), f(2))
	assert.True(t, Equal(Difference(a, a), Empty()))
}

func TestIntersectionWithFullCircleIsIdentity(t *testing.T) {
	a := Of(f(0.5), f(2))
	assert.True(t, Equal(Intersection(a, FullCircle()), a))
}

func TestContainsAgreesWithDefinition(t *testing.T) {
	a := Of(f(1), f(2))
	require.True(t, Contains(a, f(1.5)))
	require.False(t, Contains(a, f(2.5)))
	require.False(t, Contains(a, f(0.5)))
}

func TestRotateRoundTrip(t *testing.T) {
	a := Of(f(1), f(2))
	theta := f(0.7)
	rotated := Rotate(a, theta)
	back := Rotate(rotated, fixedmath.Neg(theta))
	assert.True(t, Equal(a, back))
}

func TestRotateFullCircleAndEmptyAreNoOps(t *testing.T) {
	assert.True(t, Equal(Rotate(FullCircle(), f(1.234)), FullCircle()))
	assert.True(t, Equal(Rotate(Empty(), f(1.234)), Empty()))
}

func TestSplitAtIntersectionsFullCircleNoSplits(t *testing.T) {
	pairs := SplitAtIntersections(FullCircle(), nil)
	require.Len(t, pairs, 1)
	assert.True(t, fixedmath.Equal(pairs[0].Start, fixedmath.Zero))
	assert.True(t, fixedmath.Equal(pairs[0].End, fixedmath.Zero))
}

func TestSplitAtIntersectionsIntroducesPhantomBoundaries(t *testing.T) {
	a := Of(f(0.5), f(3))
	pairs := SplitAtIntersections(a, []fixedmath.Fixed{f(1.5)})
	require.Len(t, pairs, 2)
	assert.True(t, fixedmath.Equal(pairs[0].Start, f(0.5)))
	assert.True(t, fixedmath.Equal(pairs[0].End, f(1.5)))
	assert.True(t, fixedmath.Equal(pairs[1].Start, f(1.5)))
	assert.True(t, fixedmath.Equal(pairs[1].End, f(3)))
}

func TestSplitAtIntersectionsMergesWrapWhenZeroNotASplit(t *testing.T) {
	// An arc that wraps through 0 with no split requested there should
	// come back as a single (start, end) pair spanning the wrap.
	a := Of(f(5.5), f(1.0))
	pairs := SplitAtIntersections(a, nil)
	require.Len(t, pairs, 1)
	assert.True(t, fixedmath.Equal(pairs[0].Start, f(5.5)))
	assert.True(t, fixedmath.Equal(pairs[0].End, f(1.0)))
}

func TestOfRoundTripThroughUnion(t *testing.T) {
	a := Of(f(0.2), f(1.0))
	b := Of(f(1.0), f(2.5))
	combined := Union(a, b)
	direct := Of(f(0.2), f(2.5))
	assert.True(t, Equal(combined, direct))
}
