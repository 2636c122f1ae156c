package fixedmath

import (
	"math"
	"math/big"
	"sync"
)

var (
	halfOnce sync.Once
	halfVal  Fixed
)

func half() Fixed {
	halfOnce.Do(func() {
		h, err := FromString("0.5")
		if err != nil {
			panic(err)
		}
		halfVal = h
	})
	return halfVal
}

// negligible reports whether f's unscaled magnitude is small enough
// (at most one unit in the last computeScale place) that adding it to a
// running series sum can no longer move the result: the standard
// termination test for the Taylor/Puiseux series below.
func negligible(f Fixed) bool {
	return new(big.Int).Abs(f.unscaled).Cmp(big.NewInt(1)) <= 0
}

const maxSeriesTerms = 1000

// Sqrt computes the non-negative square root of x via Newton's method,
// seeded from math.Sqrt(x.Float64()) per spec §4.A. Sqrt of a negative
// x saturates to Zero rather than erroring, matching upstream's
// tolerance for a slightly-negative value produced by earlier rounding.
func Sqrt(x Fixed) Fixed {
	if x.Sign() <= 0 {
		return Zero
	}
	seed := math.Sqrt(x.Float64())
	if seed <= 0 || math.IsNaN(seed) || math.IsInf(seed, 0) {
		seed = 1
	}
	y := FromFloat64(seed)
	two := FromInt64(2)
	for i := 0; i < maxSeriesTerms; i++ {
		next := Div(Add(y, Div(x, y)), two)
		if negligible(Sub(next, y)) {
			return next
		}
		y = next
	}
	return y
}

// Asin computes arcsin(x), clamping x outside [-1, 1] to ±π/2 (spec
// §7 "Saturating/defensive fallbacks").
func Asin(x Fixed) Fixed {
	if Cmp(x, One()) > 0 {
		return HalfPi()
	}
	if Cmp(x, Neg(One())) < 0 {
		return Neg(HalfPi())
	}
	if x.Sign() < 0 {
		return Neg(Asin(Neg(x)))
	}
	if Cmp(x, half()) <= 0 {
		return asinTaylor(x)
	}
	return asinPuiseux(x)
}

// asinTaylor sums the Maclaurin series for arcsin, valid (and
// fast-converging) for |x| <= 1/2:
//
//	asin(x) = sum_n C(2n,n)/(4^n (2n+1)) x^(2n+1)
//
// implemented via the term-to-term ratio
//
//	term(n+1)/term(n) = x^2 (2n+1)^2 / ((2n+2)(2n+3))
func asinTaylor(x Fixed) Fixed {
	x2 := Mul(x, x)
	term := x
	sum := x
	for n := 0; n < maxSeriesTerms; n++ {
		num := Mul(term, x2)
		num = Mul(num, FromInt64(int64((2*n+1)*(2*n+1))))
		den := FromInt64(int64((2*n + 2) * (2*n + 3)))
		term = Div(num, den)
		if negligible(term) {
			break
		}
		sum = Add(sum, term)
	}
	return sum
}

// asinPuiseux computes arcsin(x) for x in (1/2, 1] by falling back onto
// the fast-converging Taylor branch instead of summing a Puiseux series
// directly. Writing t = 1-x and using the half-angle identity
//
//	arccos(1 - t) = 2 * arcsin(sqrt(t/2))
//
// (substitute u = sqrt(t), so arccos(1-t) = integral of du' derivation
// collapses to 2*arcsin(u/sqrt2)) gives
//
//	asin(x) = π/2 - arccos(x) = π/2 - 2*asin(sqrt(t/2))
//
// and for x in (1/2, 1], t is in [0, 1/2) so sqrt(t/2) is strictly below
// 1/2: the inner arcsin always lands back in asinTaylor's fast-converging
// domain, with no separate truncated series (and its own convergence
// loop) to maintain.
func asinPuiseux(x Fixed) Fixed {
	t := Sub(One(), x)
	if t.Sign() < 0 {
		t = Zero
	}
	inner := Sqrt(Div(t, FromInt64(2)))
	return Sub(HalfPi(), Mul(FromInt64(2), asinTaylor(inner)))
}

// Acos computes arccos(x) = π/2 - asin(x); clamping is inherited from
// Asin (x > 1 gives 0, x < -1 gives π).
func Acos(x Fixed) Fixed {
	return Sub(HalfPi(), Asin(x))
}

// Atan computes arctan(x) = asin(x / sqrt(1+x^2)), defined for all x.
func Atan(x Fixed) Fixed {
	denom := Sqrt(Add(One(), Mul(x, x)))
	return Asin(Div(x, denom))
}

// Atan2Mod2Pi computes the angle of (x, y) measured counterclockwise
// from the positive x-axis, normalized to [0, 2π). atan2(0, 0) has no
// well-defined angle and fails with a DomainError.
func Atan2Mod2Pi(y, x Fixed) (Fixed, error) {
	switch {
	case x.Sign() == 0 && y.Sign() == 0:
		return Zero, &DomainError{Op: "atan2", Msg: "undefined at (0, 0)"}
	case x.Sign() > 0:
		return Mod2Pi(Atan(Div(y, x))), nil
	case x.Sign() < 0:
		base := Atan(Div(y, x))
		if y.Sign() >= 0 {
			return Mod2Pi(Add(base, Pi())), nil
		}
		return Mod2Pi(Sub(base, Pi())), nil
	default: // x == 0, y != 0
		if y.Sign() > 0 {
			return HalfPi(), nil
		}
		return ThreeHalfPi(), nil
	}
}

// Sin computes sin(x) via a Maclaurin series after reducing x to
// (-π, π]; callers must not evaluate Sin at an x whose reduced value
// sits on an axis cutoff (0, π/2, π, 3π/2) without accounting for the
// series' locally slow convergence there, per spec §4.A.
func Sin(x Fixed) Fixed {
	xr := Mod2Pi(x)
	if Cmp(xr, Pi()) > 0 {
		xr = Sub(xr, TwoPi())
	}
	x2 := Mul(xr, xr)
	term := xr
	sum := xr
	for n := 0; n < maxSeriesTerms; n++ {
		num := Neg(Mul(term, x2))
		den := FromInt64(int64((2*n + 2) * (2*n + 3)))
		term = Div(num, den)
		if negligible(term) {
			break
		}
		sum = Add(sum, term)
	}
	return sum
}

// Cos computes cos(x) = sin(x + π/2).
func Cos(x Fixed) Fixed {
	return Sin(Add(x, HalfPi()))
}
