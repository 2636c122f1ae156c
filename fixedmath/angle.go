package fixedmath

// Angle is a Fixed normalized to [0, 2π) with optionally memoized sine
// and cosine (spec §3). Angle values are otherwise immutable; the memo
// fields are populated lazily and are safe to leave unset since the
// whole module runs single-threaded (spec §5).
type Angle struct {
	v        Fixed
	sinCache *Fixed
	cosCache *Fixed
}

// NewAngle normalizes v into [0, 2π) and wraps it as an Angle.
func NewAngle(v Fixed) Angle {
	return Angle{v: Mod2Pi(v)}
}

// Radians returns the underlying normalized Fixed value.
func (a Angle) Radians() Fixed { return a.v }

// Sin returns sin(a), computing and caching it on first use.
func (a *Angle) Sin() Fixed {
	if a.sinCache == nil {
		s := Sin(a.v)
		a.sinCache = &s
	}
	return *a.sinCache
}

// Cos returns cos(a), computing and caching it on first use.
func (a *Angle) Cos() Fixed {
	if a.cosCache == nil {
		c := Cos(a.v)
		a.cosCache = &c
	}
	return *a.cosCache
}

// Equal compares the underlying Fixed values with the package's fuzzy
// equality.
func (a Angle) Equal(b Angle) bool { return Equal(a.v, b.v) }

// Hash is consistent with Equal.
func (a Angle) Hash() uint64 { return Hash(a.v) }

// Add returns the angle a + b, normalized to [0, 2π).
func (a Angle) Add(b Angle) Angle { return NewAngle(Add(a.v, b.v)) }

// Sub returns the angle a - b, normalized to [0, 2π).
func (a Angle) Sub(b Angle) Angle { return NewAngle(Sub(a.v, b.v)) }

// Neg returns the angle -a, normalized to [0, 2π).
func (a Angle) Neg() Angle { return NewAngle(Neg(a.v)) }
