package fixedmath

import (
	"fmt"
	"hash/fnv"
	"math"
	"math/big"
	"sync"

	"github.com/remyoudompheng/bigfft"
)

// DefaultComputeScale and DefaultCompareScale are the factory defaults
// documented in spec §6: computeScale is the storage/arithmetic
// precision, compareScale (strictly smaller) is the effective precision
// used for equality, ordering and hashing.
const (
	DefaultComputeScale = 40
	DefaultCompareScale = 20
)

var (
	scaleMu      sync.Mutex
	computeScale = -1 // -1 means "not yet configured"
	compareScale = -1

	initOnce       sync.Once
	pow10Compute   *big.Int // 10^computeScale
	pow10CompareGap *big.Int // 10^(computeScale-compareScale)
	offsetUnscaled *big.Int // fixed-lifetime offset, in unscaled (computeScale) units
)

// Configure overrides the default (compute, compare) scale pair. It must
// be called, if at all, before any Fixed value is constructed or
// compared: like the offset (spec §5, "Shared-resource policy"), the
// scale pair is an immutable per-process constant once the first value
// is minted.
func Configure(compute, compare int) error {
	scaleMu.Lock()
	defer scaleMu.Unlock()
	if computeScale != -1 {
		return &ConfigError{Msg: "Configure called after fixedmath was already in use"}
	}
	if compare >= compute {
		return &ConfigError{Msg: fmt.Sprintf("compareScale (%d) must be strictly less than computeScale (%d)", compare, compute)}
	}
	if compute <= 0 || compare < 0 {
		return &ConfigError{Msg: "scales must be non-negative, computeScale must be positive"}
	}
	computeScale = compute
	compareScale = compare
	return nil
}

func ensureInit() {
	initOnce.Do(func() {
		scaleMu.Lock()
		if computeScale == -1 {
			computeScale = DefaultComputeScale
			compareScale = DefaultCompareScale
		}
		scaleMu.Unlock()
		pow10Compute = pow10(computeScale)
		pow10CompareGap = pow10(computeScale - compareScale)
		offsetUnscaled = sampleOffset(pow10CompareGap)
	})
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

// ComputeScale returns the currently active storage/arithmetic scale.
func ComputeScale() int {
	ensureInit()
	return computeScale
}

// CompareScale returns the currently active comparison/hash scale.
func CompareScale() int {
	ensureInit()
	return compareScale
}

// Fixed is an immutable signed decimal maintained at ComputeScale()
// places. Two Fixed values may be mathematically distinct yet compare
// and hash equal if they fall within the same compareScale rounding
// bucket once the process offset is applied; see the package doc.
type Fixed struct {
	unscaled *big.Int // value * 10^computeScale
}

// Zero is the additive identity.
var Zero = Fixed{unscaled: big.NewInt(0)}

// One is the multiplicative identity.
func One() Fixed {
	ensureInit()
	return Fixed{unscaled: new(big.Int).Set(pow10Compute)}
}

func fromUnscaled(u *big.Int) Fixed {
	ensureInit()
	return Fixed{unscaled: u}
}

// FromInt64 builds an exact Fixed from an integer.
func FromInt64(n int64) Fixed {
	ensureInit()
	return Fixed{unscaled: new(big.Int).Mul(big.NewInt(n), pow10Compute)}
}

// FromFloat64 builds a Fixed approximating f, truncated toward zero at
// ComputeScale places.
// f must be finite; NaN/Inf are not domain values for this package.
func FromFloat64(f float64) Fixed {
	ensureInit()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Zero
	}
	bf := new(big.Float).SetPrec(200).SetFloat64(f)
	bf.Mul(bf, new(big.Float).SetPrec(200).SetInt(pow10Compute))
	u, _ := bf.Int(nil)
	return Fixed{unscaled: u}
}

// FromString parses a base-10 decimal literal such as "-3.14159" at
// arbitrary input precision and rounds (half-even) to ComputeScale. It
// is primarily used to seed the high-precision constants in const.go
// from digit strings that carry more precision than any one
// ComputeScale configuration needs.
func FromString(s string) (Fixed, error) {
	ensureInit()
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Zero, fmt.Errorf("fixedmath: invalid decimal literal %q", s)
	}
	num := new(big.Int).Mul(r.Num(), pow10Compute)
	return Fixed{unscaled: roundHalfEvenQuo(num, r.Denom())}, nil
}

// Float64 returns the nearest float64 to f, for use as a Newton-iteration
// seed or other approximate fast path. It is never used to determine an
// exact comparison result.
func (f Fixed) Float64() float64 {
	ensureInit()
	bf := new(big.Float).SetPrec(200).SetInt(f.unscaled)
	bf.Quo(bf, new(big.Float).SetPrec(200).SetInt(pow10Compute))
	out, _ := bf.Float64()
	return out
}

func (f Fixed) String() string {
	ensureInit()
	neg := f.unscaled.Sign() < 0
	abs := new(big.Int).Abs(f.unscaled)
	s := abs.String()
	for len(s) <= computeScale {
		s = "0" + s
	}
	intPart := s[:len(s)-computeScale]
	fracPart := s[len(s)-computeScale:]
	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s%s.%s", sign, intPart, fracPart)
}

// mulBig multiplies two computeScale-unscaled magnitudes, using bigfft's
// FFT-based multiplication once the operands are large enough for it to
// pay off; bigfft.Mul degrades gracefully to schoolbook multiplication
// for small inputs, so it is always safe to call.
func mulBig(a, b *big.Int) *big.Int {
	return bigfft.Mul(a, b)
}

// roundHalfEvenQuo returns round-half-even(num/den) as a *big.Int.
func roundHalfEvenQuo(num, den *big.Int) *big.Int {
	q, r := new(big.Int).QuoRem(num, den, new(big.Int))
	if r.Sign() == 0 {
		return q
	}
	r2 := new(big.Int).Abs(new(big.Int).Lsh(r, 1))
	cmp := r2.Cmp(new(big.Int).Abs(den))
	roundAway := cmp > 0
	if cmp == 0 {
		// Half-even: round to the neighbor with an even last digit.
		roundAway = q.Bit(0) == 1
	}
	if roundAway {
		if (num.Sign() < 0) != (den.Sign() < 0) {
			q.Sub(q, big.NewInt(1))
		} else {
			q.Add(q, big.NewInt(1))
		}
	}
	return q
}

// Add returns a + b, exact (no rounding: both operands share computeScale).
func Add(a, b Fixed) Fixed {
	ensureInit()
	return Fixed{unscaled: new(big.Int).Add(a.unscaled, b.unscaled)}
}

// Sub returns a - b, exact.
func Sub(a, b Fixed) Fixed {
	ensureInit()
	return Fixed{unscaled: new(big.Int).Sub(a.unscaled, b.unscaled)}
}

// Neg returns -a.
func Neg(a Fixed) Fixed {
	ensureInit()
	return Fixed{unscaled: new(big.Int).Neg(a.unscaled)}
}

// Abs returns |a|.
func Abs(a Fixed) Fixed {
	ensureInit()
	return Fixed{unscaled: new(big.Int).Abs(a.unscaled)}
}

// Mul returns round-half-even(a * b) at ComputeScale.
func Mul(a, b Fixed) Fixed {
	ensureInit()
	prod := mulBig(a.unscaled, b.unscaled)
	return Fixed{unscaled: roundHalfEvenQuo(prod, pow10Compute)}
}

// Div returns round-half-even(a / b) at ComputeScale. Div panics if b is
// the exact zero Fixed; callers in this module never divide by a
// quantity that can be exactly zero without checking first.
func Div(a, b Fixed) Fixed {
	ensureInit()
	if b.unscaled.Sign() == 0 {
		panic("fixedmath: division by zero")
	}
	num := mulBig(a.unscaled, pow10Compute)
	return Fixed{unscaled: roundHalfEvenQuo(num, b.unscaled)}
}

// Sign returns -1, 0 or +1, exact (full computeScale precision, no
// offset/rounding applied). Used internally where exactness at
// computeScale genuinely matters, e.g. detecting the literal zero
// divisor above.
func (f Fixed) Sign() int { return f.unscaled.Sign() }

// compareValue returns floor((f + offset) * 10^compareScale) as an
// integer, the value that drives Equal, Cmp and Hash.
func compareValue(f Fixed) *big.Int {
	ensureInit()
	shifted := new(big.Int).Add(f.unscaled, offsetUnscaled)
	return euclidDiv(shifted, pow10CompareGap)
}

// euclidDiv performs floor division (Euclidean division for a positive
// divisor), which is what big.Int's Div method already guarantees.
func euclidDiv(a, b *big.Int) *big.Int {
	return new(big.Int).Div(a, b)
}

// Equal implements the fuzzy equality of spec §3/§4.A.
func Equal(a, b Fixed) bool {
	return compareValue(a).Cmp(compareValue(b)) == 0
}

// Cmp returns -1, 0 or +1 using the same rounded comparison as Equal.
func Cmp(a, b Fixed) int {
	return compareValue(a).Cmp(compareValue(b))
}

// Hash returns a hash consistent with Equal: a == b implies
// Hash(a) == Hash(b).
func Hash(f Fixed) uint64 {
	h := fnv.New64a()
	h.Write(compareValue(f).Bytes())
	if compareValue(f).Sign() < 0 {
		h.Write([]byte{0xff})
	}
	return h.Sum64()
}
