package fixedmath

import "sync"

// piDigits carries π to 97 decimal places, comfortably beyond any
// ComputeScale this package is realistically configured with;
// initConstants panics on first use if computeScale exceeds that.
const piDigits = "3.1415926535897932384626433832795028841971693993751058209749445923078164062862089986280348253421170"

var (
	constOnce                            sync.Once
	piVal, halfPiVal, threeHalfPiVal, twoPiVal Fixed
)

func initConstants() {
	constOnce.Do(func() {
		ensureInit()
		if computeScale > len(piDigits)-2 {
			panic("fixedmath: computeScale exceeds the precision of the built-in π digits; recompile with more digits")
		}
		p, err := FromString(piDigits)
		if err != nil {
			panic(err)
		}
		piVal = p
		halfPiVal = Div(p, FromInt64(2))
		twoPiVal = Mul(p, FromInt64(2))
		threeHalfPiVal = Add(p, halfPiVal)
	})
}

// Pi returns π rounded to ComputeScale places.
func Pi() Fixed { initConstants(); return piVal }

// HalfPi returns π/2.
func HalfPi() Fixed { initConstants(); return halfPiVal }

// ThreeHalfPi returns 3π/2.
func ThreeHalfPi() Fixed { initConstants(); return threeHalfPiVal }

// TwoPi returns 2π.
func TwoPi() Fixed { initConstants(); return twoPiVal }

// Mod2Pi normalizes x into [0, 2π) by repeated subtraction/addition of
// 2π rather than an exact division-based modulus: a Fixed may
// compare-equal to 2π while its underlying exact value is a hair below
// it, so a single "x - floor(x/2π)*2π" computed from the exact unscaled
// value could round back up to 2π and violate the [0, 2π) contract.
// Looping on the same fuzzy Cmp used everywhere else keeps the
// invariant self-consistent.
func Mod2Pi(x Fixed) Fixed {
	twoPi := TwoPi()
	for Cmp(x, Zero) < 0 {
		x = Add(x, twoPi)
	}
	for Cmp(x, twoPi) >= 0 {
		x = Sub(x, twoPi)
	}
	return x
}
