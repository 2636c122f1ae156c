package spherical

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/akh3nakh/circlepuzzle/fixedmath"
)

func f(v float64) fixedmath.Fixed { return fixedmath.FromFloat64(v) }

var fixedCmp = cmp.Comparer(func(a, b fixedmath.Fixed) bool { return fixedmath.Equal(a, b) })

func TestRotatePointAboutOwnAxisIsFixed(t *testing.T) {
	axis := Point{X: f(0), Y: f(0), Z: f(1)}
	angle := fixedmath.NewAngle(fixedmath.HalfPi())
	got := rotatePoint(axis, axis, angle)
	if diff := cmp.Diff(axis, got, fixedCmp); diff != "" {
		t.Errorf("rotating a point about itself should fix it (-want +got):\n%s", diff)
	}
}

func TestRotatePointQuarterTurnAboutZ(t *testing.T) {
	axis := Point{X: f(0), Y: f(0), Z: f(1)}
	p := Point{X: f(1), Y: f(0), Z: f(0)}
	angle := fixedmath.NewAngle(fixedmath.HalfPi())
	got := rotatePoint(p, axis, angle)
	want := Point{X: f(0), Y: f(1), Z: f(0)}
	if diff := cmp.Diff(want, got, fixedCmp); diff != "" {
		t.Errorf("quarter turn about z mismatch (-want +got):\n%s", diff)
	}
}

func TestCircleEqualRecognizesDualRepresentation(t *testing.T) {
	c1 := Circle{Center: Point{X: f(0), Y: f(0), Z: f(1)}, Radius: fixedmath.HalfPi()}
	c2 := Circle{Center: Point{X: f(0), Y: f(0), Z: f(-1)}, Radius: fixedmath.HalfPi()}

	if !circleEqual(c1, c2) {
		t.Errorf("a great circle's own antipodal-center/supplementary-radius dual should be equal to itself")
	}
	if circleHash(c1) != circleHash(c2) {
		t.Errorf("dual representations must hash identically")
	}
}

func TestCircleEqualRejectsUnrelatedCircles(t *testing.T) {
	c1 := Circle{Center: Point{X: f(0), Y: f(0), Z: f(1)}, Radius: f(0.5)}
	c2 := Circle{Center: Point{X: f(1), Y: f(0), Z: f(0)}, Radius: f(0.5)}
	if circleEqual(c1, c2) {
		t.Errorf("distinct circles should not compare equal")
	}
}

func TestAngleOfAndPointAtAreInverses(t *testing.T) {
	c := Circle{Center: Point{X: f(0), Y: f(0), Z: f(1)}, Radius: fixedmath.HalfPi()}
	zero := canonicalZero(c)

	theta := fixedmath.HalfPi()
	p := pointAt(c, zero, theta)
	got := angleOf(c, zero, p)
	if diff := cmp.Diff(theta, got, fixedCmp); diff != "" {
		t.Errorf("angleOf(pointAt(theta)) should round-trip (-want +got):\n%s", diff)
	}
}

func TestAngleOfZeroPointIsZero(t *testing.T) {
	c := Circle{Center: Point{X: f(0), Y: f(0), Z: f(1)}, Radius: fixedmath.HalfPi()}
	zero := canonicalZero(c)
	got := angleOf(c, zero, zero)
	if diff := cmp.Diff(fixedmath.Zero, got, fixedCmp); diff != "" {
		t.Errorf("zero point's own angle should be 0 (-want +got):\n%s", diff)
	}
}

func TestArcRotatePreservesLocalAngleCoordinates(t *testing.T) {
	c := Circle{Center: Point{X: f(0), Y: f(0), Z: f(1)}, Radius: fixedmath.HalfPi()}
	zero := canonicalZero(c)
	a := Arc{Circle: c, ZeroPoint: zero, StartAngle: f(0.1), EndAngle: f(0.2)}

	pivot := Point{X: f(1), Y: f(0), Z: f(0)}
	angle := fixedmath.NewAngle(fixedmath.HalfPi())
	rotated := arcRotate(a, pivot, angle)

	if diff := cmp.Diff(a.StartAngle, rotated.StartAngle, fixedCmp); diff != "" {
		t.Errorf("StartAngle should be invariant under rigid rotation (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(a.EndAngle, rotated.EndAngle, fixedCmp); diff != "" {
		t.Errorf("EndAngle should be invariant under rigid rotation (-want +got):\n%s", diff)
	}
	if pointEqual(rotated.Circle.Center, c.Center) {
		t.Errorf("expected the rotation to actually move the circle's center")
	}
}
