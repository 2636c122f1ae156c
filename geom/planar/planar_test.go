package planar

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/akh3nakh/circlepuzzle/fixedmath"
)

func f(v float64) fixedmath.Fixed { return fixedmath.FromFloat64(v) }

// fixedCmp lets go-cmp compare fixedmath.Fixed values by their exported
// fuzzy-equality semantics instead of panicking on its unexported
// big.Int field — the same role the teacher's cmp.Diff call sites give
// cmpopts.EquateApprox for float comparisons.
var fixedCmp = cmp.Comparer(func(a, b fixedmath.Fixed) bool { return fixedmath.Equal(a, b) })

func TestPointAtMatchesTrigonometricDefinition(t *testing.T) {
	c := Circle{Center: Point{X: f(1), Y: f(2)}, Radius: f(5)}
	got := PointAt(c, fixedmath.Zero)
	want := Point{X: f(6), Y: f(2)}
	if diff := cmp.Diff(want, got, fixedCmp); diff != "" {
		t.Errorf("PointAt at angle 0 mismatch (-want +got):\n%s", diff)
	}
}

func TestRotatePointByFullCircleIsIdentity(t *testing.T) {
	center := Point{X: f(0), Y: f(0)}
	p := Point{X: f(3), Y: f(4)}
	angle := fixedmath.NewAngle(fixedmath.TwoPi())
	got := rotatePoint(p, center, angle)
	if diff := cmp.Diff(p, got, fixedCmp); diff != "" {
		t.Errorf("full-turn rotation should be identity (-want +got):\n%s", diff)
	}
}

func TestRotatePointByHalfCircleNegatesOffset(t *testing.T) {
	center := Point{X: f(1), Y: f(1)}
	p := Point{X: f(3), Y: f(1)}
	angle := fixedmath.NewAngle(fixedmath.Pi())
	got := rotatePoint(p, center, angle)
	want := Point{X: f(-1), Y: f(1)}
	if diff := cmp.Diff(want, got, fixedCmp); diff != "" {
		t.Errorf("half-turn rotation mismatch (-want +got):\n%s", diff)
	}
}

func TestArcTangentAngleIsPerpendicularToRadius(t *testing.T) {
	c := Circle{Center: Point{X: f(0), Y: f(0)}, Radius: f(1)}
	a := Arc{Circle: c, StartAngle: fixedmath.Zero, EndAngle: fixedmath.HalfPi()}

	startTangent := arcTangentAngle(a, false)
	want := fixedmath.HalfPi()
	if diff := cmp.Diff(want, startTangent, fixedCmp); diff != "" {
		t.Errorf("start tangent mismatch (-want +got):\n%s", diff)
	}
}

func TestArcJoinMergesAdjacentArcsOnSameCircle(t *testing.T) {
	c := Circle{Center: Point{X: f(0), Y: f(0)}, Radius: f(1)}
	a := Arc{Circle: c, StartAngle: fixedmath.Zero, EndAngle: fixedmath.HalfPi()}
	b := Arc{Circle: c, StartAngle: fixedmath.HalfPi(), EndAngle: fixedmath.Pi()}

	joined, ok := arcJoin(a, b)
	if !ok {
		t.Fatalf("expected adjacent same-circle arcs to join")
	}
	if diff := cmp.Diff(fixedmath.Zero, joined.StartAngle, fixedCmp); diff != "" {
		t.Errorf("joined start mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(fixedmath.Pi(), joined.EndAngle, fixedCmp); diff != "" {
		t.Errorf("joined end mismatch (-want +got):\n%s", diff)
	}
}

func TestArcJoinRefusesArcsOnDifferentCircles(t *testing.T) {
	c1 := Circle{Center: Point{X: f(0), Y: f(0)}, Radius: f(1)}
	c2 := Circle{Center: Point{X: f(10), Y: f(0)}, Radius: f(1)}
	a := Arc{Circle: c1, StartAngle: fixedmath.Zero, EndAngle: fixedmath.HalfPi()}
	b := Arc{Circle: c2, StartAngle: fixedmath.HalfPi(), EndAngle: fixedmath.Pi()}

	if _, ok := arcJoin(a, b); ok {
		t.Errorf("expected arcs on different circles not to join")
	}
}

func TestDiskContainsCompareClassifiesInteriorBoundaryExterior(t *testing.T) {
	c := Circle{Center: Point{X: f(0), Y: f(0)}, Radius: f(1)}
	cases := []struct {
		name string
		p    Point
		want int
	}{
		{"interior", Point{X: f(0), Y: f(0)}, -1},
		{"boundary", Point{X: f(1), Y: f(0)}, 0},
		{"exterior", Point{X: f(2), Y: f(0)}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := diskContainsCompare(c, tc.p); got != tc.want {
				t.Errorf("diskContainsCompare(%v) = %d, want %d", tc.p, got, tc.want)
			}
		})
	}
}
