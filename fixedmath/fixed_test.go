package fixedmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqualImpliesHashEqual(t *testing.T) {
	a := FromFloat64(1.5)
	b := FromFloat64(1.5)
	require.True(t, Equal(a, b))
	assert.Equal(t, Hash(a), Hash(b))
}

func TestEqualIsTransitive(t *testing.T) {
	a := FromFloat64(2.0)
	b := FromFloat64(2.0)
	c := FromFloat64(2.0)
	require.True(t, Equal(a, b))
	require.True(t, Equal(b, c))
	assert.True(t, Equal(a, c))
}

func TestArithmeticPreservesComputeScale(t *testing.T) {
	a := FromFloat64(1.0 / 3.0)
	b := FromFloat64(2.0 / 7.0)
	for _, f := range []Fixed{Add(a, b), Sub(a, b), Mul(a, b), Div(a, b)} {
		s := f.String()
		dot := len(s) - ComputeScale() - 1
		require.GreaterOrEqual(t, dot, 0)
		assert.Equal(t, byte('.'), s[dot])
		assert.Len(t, s[dot+1:], ComputeScale())
	}
}

func TestMod2PiRange(t *testing.T) {
	cases := []float64{-100, -0.001, 0, 6.28, 6.283185307179586, 1000.5}
	for _, c := range cases {
		got := Mod2Pi(FromFloat64(c))
		assert.True(t, Cmp(got, Zero) >= 0, "Mod2Pi(%v) should be >= 0, got %v", c, got)
		assert.True(t, Cmp(got, TwoPi()) < 0, "Mod2Pi(%v) should be < 2pi, got %v", c, got)
	}
}

func TestSqrtKnownValues(t *testing.T) {
	got := Sqrt(FromInt64(4))
	assert.InDelta(t, 2.0, got.Float64(), 1e-9)

	got = Sqrt(FromInt64(2))
	assert.InDelta(t, 1.4142135623730951, got.Float64(), 1e-9)
}

func TestSqrtNegativeSaturates(t *testing.T) {
	got := Sqrt(FromInt64(-4))
	assert.True(t, Equal(got, Zero))
}

func TestAsinAcosClampOutOfRange(t *testing.T) {
	assert.True(t, Equal(Asin(FromInt64(2)), HalfPi()))
	assert.True(t, Equal(Asin(FromInt64(-2)), Neg(HalfPi())))
	assert.True(t, Equal(Acos(FromInt64(2)), Zero))
	assert.True(t, Equal(Acos(FromInt64(-2)), Pi()))
}

func TestSinCosKnownValues(t *testing.T) {
	assert.InDelta(t, 0.0, Sin(Zero).Float64(), 1e-9)
	assert.InDelta(t, 1.0, Cos(Zero).Float64(), 1e-9)
	assert.InDelta(t, 1.0, Sin(HalfPi()).Float64(), 1e-9)
	assert.InDelta(t, 0.0, Cos(HalfPi()).Float64(), 1e-8)
}

func TestAtan2Mod2PiQuadrants(t *testing.T) {
	got, err := Atan2Mod2Pi(FromInt64(1), FromInt64(1))
	require.NoError(t, err)
	assert.InDelta(t, 0.7853981633974483, got.Float64(), 1e-9)

	got, err = Atan2Mod2Pi(FromInt64(1), FromInt64(-1))
	require.NoError(t, err)
	assert.InDelta(t, 3*0.7853981633974483, got.Float64(), 1e-8)

	_, err = Atan2Mod2Pi(Zero, Zero)
	require.Error(t, err)
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
}

func TestConfigureRejectsBadScales(t *testing.T) {
	// Configure is a one-shot at process start; once fixedmath has been
	// used above, further Configure calls must fail rather than
	// silently reinterpreting already-minted Fixed values.
	err := Configure(10, 20)
	require.Error(t, err)
}
