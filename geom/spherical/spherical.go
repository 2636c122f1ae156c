// Copyright 2023 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS-IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package spherical is the unit-sphere instantiation of geom.Trait.
// Points are unit vectors in R^3; a Circle is a center direction plus
// an angular radius in (0, π). The same small circle on the sphere has
// two equally valid representations, (c, r) and (-c, π-r) — the "near
// side, small radius" cap and the "far side, large radius" cap that
// share the same boundary — so Circle identity (CircleEqual/Hash) must
// treat both as the same circle.
package spherical

import (
	"github.com/akh3nakh/circlepuzzle/fixedmath"
	"github.com/akh3nakh/circlepuzzle/unitarc"
)

// Point is a point on the unit sphere.
type Point struct {
	X, Y, Z fixedmath.Fixed
}

// Circle is a spherical cap boundary: the locus of points at angular
// distance Radius from Center.
type Circle struct {
	Center Point
	Radius fixedmath.Fixed
}

// Arc is a contiguous counterclockwise (as seen from outside Circle's
// Center) run of Circle's boundary, measured from StartAngle to
// EndAngle in the frame anchored at ZeroPoint. Full reports the
// single-arc-covers-the-whole-circle case.
type Arc struct {
	Circle     Circle
	ZeroPoint  Point
	StartAngle fixedmath.Fixed
	EndAngle   fixedmath.Fixed
	Full       bool
}

// ArcsOnCircle pairs a Circle and the zero point that anchors its angle
// frame with the UnitArcs describing which of its boundary is present.
type ArcsOnCircle struct {
	Circle    Circle
	ZeroPoint Point
	Arcs      unitarc.UnitArcs
}

func dot(a, b Point) fixedmath.Fixed {
	return fixedmath.Add(fixedmath.Add(fixedmath.Mul(a.X, b.X), fixedmath.Mul(a.Y, b.Y)), fixedmath.Mul(a.Z, b.Z))
}

func cross(a, b Point) Point {
	return Point{
		X: fixedmath.Sub(fixedmath.Mul(a.Y, b.Z), fixedmath.Mul(a.Z, b.Y)),
		Y: fixedmath.Sub(fixedmath.Mul(a.Z, b.X), fixedmath.Mul(a.X, b.Z)),
		Z: fixedmath.Sub(fixedmath.Mul(a.X, b.Y), fixedmath.Mul(a.Y, b.X)),
	}
}

func scale(a Point, s fixedmath.Fixed) Point {
	return Point{X: fixedmath.Mul(a.X, s), Y: fixedmath.Mul(a.Y, s), Z: fixedmath.Mul(a.Z, s)}
}

func add(a, b Point) Point {
	return Point{X: fixedmath.Add(a.X, b.X), Y: fixedmath.Add(a.Y, b.Y), Z: fixedmath.Add(a.Z, b.Z)}
}

func sub(a, b Point) Point {
	return Point{X: fixedmath.Sub(a.X, b.X), Y: fixedmath.Sub(a.Y, b.Y), Z: fixedmath.Sub(a.Z, b.Z)}
}

func antipode(a Point) Point {
	return Point{X: fixedmath.Neg(a.X), Y: fixedmath.Neg(a.Y), Z: fixedmath.Neg(a.Z)}
}

// normalize rescales a near-unit vector back onto the sphere, guarding
// against the small drift repeated Rodrigues rotations accumulate at
// fixed precision.
func normalize(a Point) Point {
	n := fixedmath.Sqrt(dot(a, a))
	if fixedmath.Equal(n, fixedmath.Zero) {
		return a
	}
	return Point{X: fixedmath.Div(a.X, n), Y: fixedmath.Div(a.Y, n), Z: fixedmath.Div(a.Z, n)}
}

func pointEqual(a, b Point) bool {
	return fixedmath.Equal(a.X, b.X) && fixedmath.Equal(a.Y, b.Y) && fixedmath.Equal(a.Z, b.Z)
}

func pointHash(p Point) uint64 {
	return fixedmath.Hash(p.X)*1099511628211 ^ fixedmath.Hash(p.Y)*16777619 ^ fixedmath.Hash(p.Z)
}

// rotatePoint applies Rodrigues' rotation formula, rotating p by angle
// about the axis through center (treated as a unit vector through the
// sphere's own center — "center" here is the pivot direction, not a
// Euclidean translation point as in geom/planar).
func rotatePoint(p Point, axis Point, angle fixedmath.Angle) Point {
	sin, cos := angle.Sin(), angle.Cos()
	term1 := scale(p, cos)
	term2 := scale(cross(axis, p), sin)
	term3 := scale(axis, fixedmath.Mul(dot(axis, p), fixedmath.Sub(fixedmath.One(), cos)))
	return normalize(add(add(term1, term2), term3))
}

func circleEqual(a, b Circle) bool {
	if pointEqual(a.Center, b.Center) && fixedmath.Equal(a.Radius, b.Radius) {
		return true
	}
	return pointEqual(a.Center, antipode(b.Center)) && fixedmath.Equal(fixedmath.Add(a.Radius, b.Radius), fixedmath.Pi())
}

// circleHash combines the hash of both dual representations so that
// CircleEqual(a, b) implies circleHash(a) == circleHash(b) regardless
// of which representation either side happens to be carrying.
func circleHash(c Circle) uint64 {
	h1 := pointHash(c.Center)*31 ^ fixedmath.Hash(c.Radius)
	dualRadius := fixedmath.Sub(fixedmath.Pi(), c.Radius)
	h2 := pointHash(antipode(c.Center))*31 ^ fixedmath.Hash(dualRadius)
	return h1 ^ h2
}

func sameDual(a, b Circle) bool {
	return pointEqual(a.Center, antipode(b.Center)) && fixedmath.Equal(fixedmath.Add(a.Radius, b.Radius), fixedmath.Pi())
}

// tangentFrame returns the orthonormal pair (e1, e2), both orthogonal
// to circle.Center, such that zero = cos(radius)*Center + sin(radius)*e1.
func tangentFrame(c Circle, zero Point) (e1, e2 Point) {
	proj := scale(c.Center, dot(c.Center, zero))
	e1 = normalize(sub(zero, proj))
	e2 = cross(c.Center, e1)
	return e1, e2
}

// angleOf returns q's angular position around c in the frame anchored
// at zero, valid for any q with dot(c.Center, q) == cos(c.Radius).
func angleOf(c Circle, zero, q Point) fixedmath.Fixed {
	e1, e2 := tangentFrame(c, zero)
	theta, err := fixedmath.Atan2Mod2Pi(dot(q, e2), dot(q, e1))
	if err != nil {
		return fixedmath.Zero
	}
	return theta
}

// pointAt returns the point at angle theta around c, in the frame
// anchored at zero.
func pointAt(c Circle, zero Point, theta fixedmath.Fixed) Point {
	e1, e2 := tangentFrame(c, zero)
	sinR := fixedmath.Sin(c.Radius)
	cosR := fixedmath.Cos(c.Radius)
	inPlane := add(scale(e1, fixedmath.Mul(sinR, fixedmath.Cos(theta))), scale(e2, fixedmath.Mul(sinR, fixedmath.Sin(theta))))
	return normalize(add(scale(c.Center, cosR), inPlane))
}

// canonicalZero picks an arbitrary but deterministic reference point on
// c's boundary, used to seed a bare Circle's ArcsOnCircle (FullArcs,
// EmptyArcs) before any rotation has given it a more meaningful zero.
func canonicalZero(c Circle) Point {
	reference := Point{X: fixedmath.Zero, Y: fixedmath.Zero, Z: fixedmath.One()}
	if fixedmath.Cmp(fixedmath.Abs(dot(c.Center, reference)), fixedmath.FromFloat64(0.999)) > 0 {
		reference = Point{X: fixedmath.One(), Y: fixedmath.Zero, Z: fixedmath.Zero}
	}
	e1 := normalize(sub(reference, scale(c.Center, dot(c.Center, reference))))
	return normalize(add(scale(c.Center, fixedmath.Cos(c.Radius)), scale(e1, fixedmath.Sin(c.Radius))))
}

func fullArcs(c Circle, zero Point) ArcsOnCircle {
	return ArcsOnCircle{Circle: c, ZeroPoint: zero, Arcs: unitarc.FullCircle()}
}

func emptyArcs(c Circle, zero Point) ArcsOnCircle {
	return ArcsOnCircle{Circle: c, ZeroPoint: zero, Arcs: unitarc.Empty()}
}

func midAngle(start, end fixedmath.Fixed) fixedmath.Fixed {
	s, e := fixedmath.Mod2Pi(start), fixedmath.Mod2Pi(end)
	if fixedmath.Cmp(e, s) < 0 {
		e = fixedmath.Add(e, fixedmath.TwoPi())
	}
	return fixedmath.Mod2Pi(fixedmath.Div(fixedmath.Add(s, e), fixedmath.FromInt64(2)))
}

func arcStart(a Arc) Point {
	if a.Full {
		return a.ZeroPoint
	}
	return pointAt(a.Circle, a.ZeroPoint, a.StartAngle)
}

func arcEnd(a Arc) Point {
	if a.Full {
		return a.ZeroPoint
	}
	return pointAt(a.Circle, a.ZeroPoint, a.EndAngle)
}

func arcMid(a Arc) Point {
	if a.Full {
		return pointAt(a.Circle, a.ZeroPoint, fixedmath.Pi())
	}
	return pointAt(a.Circle, a.ZeroPoint, midAngle(a.StartAngle, a.EndAngle))
}

func arcEqual(a, b Arc) bool {
	if !circleEqual(a.Circle, b.Circle) {
		return false
	}
	if a.Full || b.Full {
		return a.Full == b.Full
	}
	return pointEqual(arcStart(a), arcStart(b)) && pointEqual(arcEnd(a), arcEnd(b))
}

func arcHash(a Arc) uint64 {
	h := circleHash(a.Circle)
	if a.Full {
		return h ^ 0xfacefeedcafebeef
	}
	return h ^ pointHash(arcStart(a))*31 ^ pointHash(arcEnd(a))
}

func arcJoin(a, b Arc) (Arc, bool) {
	if a.Full || b.Full || !circleEqual(a.Circle, b.Circle) {
		return Arc{}, false
	}
	if !pointEqual(arcEnd(a), arcStart(b)) {
		return Arc{}, false
	}
	if pointEqual(arcEnd(b), arcStart(a)) {
		return Arc{Circle: a.Circle, ZeroPoint: a.ZeroPoint, Full: true}, true
	}
	endAngle := angleOf(a.Circle, a.ZeroPoint, arcEnd(b))
	return Arc{Circle: a.Circle, ZeroPoint: a.ZeroPoint, StartAngle: a.StartAngle, EndAngle: endAngle}, true
}

func arcRotate(a Arc, pivot Point, angle fixedmath.Angle) Arc {
	nc := Circle{Center: rotatePoint(a.Circle.Center, pivot, angle), Radius: a.Circle.Radius}
	nz := rotatePoint(a.ZeroPoint, pivot, angle)
	if a.Full {
		return Arc{Circle: nc, ZeroPoint: nz, Full: true}
	}
	return Arc{Circle: nc, ZeroPoint: nz, StartAngle: a.StartAngle, EndAngle: a.EndAngle}
}

func arcTangentAngle(a Arc, atEnd bool) fixedmath.Fixed {
	at := a.StartAngle
	if atEnd {
		at = a.EndAngle
	}
	if a.Full {
		at = fixedmath.Zero
	}
	if atEnd {
		return fixedmath.Mod2Pi(fixedmath.Sub(at, fixedmath.HalfPi()))
	}
	return fixedmath.Mod2Pi(fixedmath.Add(at, fixedmath.HalfPi()))
}

func arcRadiusLess(a, b Arc) bool {
	return fixedmath.Cmp(a.Circle.Radius, b.Circle.Radius) < 0
}

func arcsCircle(a ArcsOnCircle) Circle { return a.Circle }

// mirrorArcs reflects u's present intervals through angle 0, the
// transform needed when reconciling a circle's dual ((c, r) vs
// (-c, π-r)) representations: viewed from the antipodal center, the
// same physical boundary is traversed in the opposite rotational
// sense.
func mirrorArcs(u unitarc.UnitArcs) unitarc.UnitArcs {
	pairs := unitarc.SplitAtIntersections(u, nil)
	if len(pairs) == 1 && fixedmath.Equal(pairs[0].Start, fixedmath.Zero) && fixedmath.Equal(pairs[0].End, fixedmath.Zero) {
		return unitarc.FullCircle()
	}
	out := unitarc.Empty()
	for _, p := range pairs {
		ns := fixedmath.Mod2Pi(fixedmath.Neg(p.End))
		ne := fixedmath.Mod2Pi(fixedmath.Neg(p.Start))
		out = unitarc.Union(out, unitarc.Of(ns, ne))
	}
	return out
}

// reconcile re-expresses b's UnitArcs in a's (Circle, ZeroPoint) frame,
// accounting for the dual-representation flip when a and b refer to
// the same circle via opposite-center encodings.
func reconcile(a, b ArcsOnCircle) unitarc.UnitArcs {
	offset := angleOf(a.Circle, a.ZeroPoint, b.ZeroPoint)
	if sameDual(a.Circle, b.Circle) {
		return unitarc.Rotate(mirrorArcs(b.Arcs), offset)
	}
	return unitarc.Rotate(b.Arcs, offset)
}

func arcsUnion(a, b ArcsOnCircle) ArcsOnCircle {
	return ArcsOnCircle{Circle: a.Circle, ZeroPoint: a.ZeroPoint, Arcs: unitarc.Union(a.Arcs, reconcile(a, b))}
}

func arcsDifference(a, b ArcsOnCircle) ArcsOnCircle {
	return ArcsOnCircle{Circle: a.Circle, ZeroPoint: a.ZeroPoint, Arcs: unitarc.Difference(a.Arcs, reconcile(a, b))}
}

func arcsNonEmpty(a ArcsOnCircle) bool { return unitarc.NonEmpty(a.Arcs) }

// arcsRotate rotates the whole configuration (circle + zero point)
// rigidly about pivot; the UnitArcs boundary values themselves are
// unchanged because they're expressed relative to the zero point,
// which rotates along with everything else (see package doc).
func arcsRotate(a ArcsOnCircle, pivot Point, angle fixedmath.Angle) ArcsOnCircle {
	return ArcsOnCircle{
		Circle:    Circle{Center: rotatePoint(a.Circle.Center, pivot, angle), Radius: a.Circle.Radius},
		ZeroPoint: rotatePoint(a.ZeroPoint, pivot, angle),
		Arcs:      a.Arcs,
	}
}

func arcsMaterialize(a ArcsOnCircle, splitAngles []fixedmath.Fixed) []Arc {
	pairs := unitarc.SplitAtIntersections(a.Arcs, splitAngles)
	out := make([]Arc, 0, len(pairs))
	for _, p := range pairs {
		if fixedmath.Equal(p.Start, fixedmath.Zero) && fixedmath.Equal(p.End, fixedmath.Zero) {
			out = append(out, Arc{Circle: a.Circle, ZeroPoint: a.ZeroPoint, Full: true})
			continue
		}
		out = append(out, Arc{Circle: a.Circle, ZeroPoint: a.ZeroPoint, StartAngle: p.Start, EndAngle: p.End})
	}
	return out
}

func diskContainsCompare(d Circle, p Point) int {
	cosDist := dot(d.Center, p)
	cosRadius := fixedmath.Cos(d.Radius)
	switch {
	case fixedmath.Equal(cosDist, cosRadius):
		return 0
	case fixedmath.Cmp(cosDist, cosRadius) > 0: // smaller angular distance = larger cosine
		return -1
	default:
		return 1
	}
}

// insideDiskMask returns the UnitArcs subset of host's boundary that
// lies within (or on) disk d.
func insideDiskMask(host Circle, hostZero Point, d Circle) unitarc.UnitArcs {
	q := dot(host.Center, d.Center)
	one := fixedmath.One()
	if fixedmath.Cmp(fixedmath.Abs(q), one) >= 0 {
		// Concentric or antipodal axes: host lies entirely inside or
		// entirely outside d depending on which side of d.Radius its
		// own latitude falls.
		// Seen from an antipodal d.Center, host sits at π - host.Radius.
		hostDist := host.Radius
		if fixedmath.Cmp(q, fixedmath.Zero) < 0 {
			hostDist = fixedmath.Sub(fixedmath.Pi(), host.Radius)
		}
		if fixedmath.Cmp(hostDist, d.Radius) <= 0 {
			return unitarc.FullCircle()
		}
		return unitarc.Empty()
	}

	cosR1, cosR2 := fixedmath.Cos(host.Radius), fixedmath.Cos(d.Radius)
	denom := fixedmath.Sub(one, fixedmath.Mul(q, q))
	a := fixedmath.Div(fixedmath.Sub(cosR1, fixedmath.Mul(q, cosR2)), denom)
	b := fixedmath.Div(fixedmath.Sub(cosR2, fixedmath.Mul(q, cosR1)), denom)
	tSq := fixedmath.Div(
		fixedmath.Sub(fixedmath.Sub(fixedmath.Sub(one, fixedmath.Mul(a, a)), fixedmath.Mul(b, b)), fixedmath.Mul(fixedmath.Mul(fixedmath.FromInt64(2), fixedmath.Mul(a, b)), q)),
		denom,
	)
	if fixedmath.Cmp(tSq, fixedmath.Zero) < 0 {
		// No intersection: host is entirely on one side of d's boundary.
		// Test host's zero point directly against d.
		if diskContainsCompare(d, hostZero) <= 0 {
			return unitarc.FullCircle()
		}
		return unitarc.Empty()
	}
	t := fixedmath.Sqrt(tSq)
	axisCross := cross(host.Center, d.Center)
	p1 := normalize(add(add(scale(host.Center, a), scale(d.Center, b)), scale(axisCross, t)))
	p2 := normalize(add(add(scale(host.Center, a), scale(d.Center, b)), scale(axisCross, fixedmath.Neg(t))))

	ang1 := angleOf(host, hostZero, p1)
	ang2 := angleOf(host, hostZero, p2)
	mid := midAngle(ang1, ang2)
	midPoint := pointAt(host, hostZero, mid)
	if diskContainsCompare(d, midPoint) <= 0 {
		return unitarc.Of(ang1, ang2)
	}
	return unitarc.Of(ang2, ang1)
}

func arcsIntersectDisk(a ArcsOnCircle, d Circle) ArcsOnCircle {
	return ArcsOnCircle{
		Circle:    a.Circle,
		ZeroPoint: a.ZeroPoint,
		Arcs:      unitarc.Intersection(a.Arcs, insideDiskMask(a.Circle, a.ZeroPoint, d)),
	}
}

func circleIntersectionAngles(host ArcsOnCircle, other Circle, otherArcs ArcsOnCircle) []fixedmath.Fixed {
	q := dot(host.Circle.Center, other.Center)
	one := fixedmath.One()
	if fixedmath.Cmp(fixedmath.Abs(q), one) >= 0 {
		return nil
	}
	cosR1, cosR2 := fixedmath.Cos(host.Circle.Radius), fixedmath.Cos(other.Radius)
	denom := fixedmath.Sub(one, fixedmath.Mul(q, q))
	a := fixedmath.Div(fixedmath.Sub(cosR1, fixedmath.Mul(q, cosR2)), denom)
	b := fixedmath.Div(fixedmath.Sub(cosR2, fixedmath.Mul(q, cosR1)), denom)
	tSq := fixedmath.Div(
		fixedmath.Sub(fixedmath.Sub(fixedmath.Sub(one, fixedmath.Mul(a, a)), fixedmath.Mul(b, b)), fixedmath.Mul(fixedmath.Mul(fixedmath.FromInt64(2), fixedmath.Mul(a, b)), q)),
		denom,
	)
	if fixedmath.Cmp(tSq, fixedmath.Zero) < 0 {
		return nil
	}
	t := fixedmath.Sqrt(tSq)
	axisCross := cross(host.Circle.Center, other.Center)
	base := add(scale(host.Circle.Center, a), scale(other.Center, b))
	candidates := []Point{
		normalize(add(base, scale(axisCross, t))),
		normalize(add(base, scale(axisCross, fixedmath.Neg(t)))),
	}

	var out []fixedmath.Fixed
	for _, p := range candidates {
		otherAngle := angleOf(other, otherArcs.ZeroPoint, p)
		if unitarc.Contains(otherArcs.Arcs, otherAngle) {
			out = append(out, angleOf(host.Circle, host.ZeroPoint, p))
		}
	}
	return out
}
