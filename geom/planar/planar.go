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

// Package planar is the Euclidean-plane instantiation of geom.Trait:
// Points are Cartesian (x, y) pairs, Circles are (center, radius), and
// a Move's Disk is simply the Circle it rotates.
package planar

import (
	"github.com/akh3nakh/circlepuzzle/fixedmath"
	"github.com/akh3nakh/circlepuzzle/unitarc"
)

// Point is a Euclidean-plane point.
type Point struct {
	X, Y fixedmath.Fixed
}

// Circle is a planar circle; it also serves as the Disk it bounds.
type Circle struct {
	Center Point
	Radius fixedmath.Fixed
}

// Arc is a contiguous counterclockwise run of Circle's boundary from
// StartAngle to EndAngle (both measured around Center from the positive
// x-axis). Full reports the single-arc-covers-the-whole-circle case,
// in which StartAngle and EndAngle are left unset and the arc is taken
// to start and end at angle 0.
type Arc struct {
	Circle     Circle
	StartAngle fixedmath.Fixed
	EndAngle   fixedmath.Fixed
	Full       bool
}

// ArcsOnCircle pairs a Circle with the UnitArcs describing which of its
// boundary is present.
type ArcsOnCircle struct {
	Circle Circle
	Arcs   unitarc.UnitArcs
}

// PointAt returns the point at angle theta around c.
func PointAt(c Circle, theta fixedmath.Fixed) Point {
	return Point{
		X: fixedmath.Add(c.Center.X, fixedmath.Mul(c.Radius, fixedmath.Cos(theta))),
		Y: fixedmath.Add(c.Center.Y, fixedmath.Mul(c.Radius, fixedmath.Sin(theta))),
	}
}

func pointEqual(a, b Point) bool {
	return fixedmath.Equal(a.X, b.X) && fixedmath.Equal(a.Y, b.Y)
}

func pointHash(p Point) uint64 {
	return fixedmath.Hash(p.X)*1099511628211 ^ fixedmath.Hash(p.Y)
}

func circleEqual(a, b Circle) bool {
	return pointEqual(a.Center, b.Center) && fixedmath.Equal(a.Radius, b.Radius)
}

func circleHash(c Circle) uint64 {
	return pointHash(c.Center)*1099511628211 ^ fixedmath.Hash(c.Radius)
}

func rotatePoint(p, center Point, angle fixedmath.Angle) Point {
	dx := fixedmath.Sub(p.X, center.X)
	dy := fixedmath.Sub(p.Y, center.Y)
	sin, cos := angle.Sin(), angle.Cos()
	nx := fixedmath.Sub(fixedmath.Mul(dx, cos), fixedmath.Mul(dy, sin))
	ny := fixedmath.Add(fixedmath.Mul(dx, sin), fixedmath.Mul(dy, cos))
	return Point{X: fixedmath.Add(center.X, nx), Y: fixedmath.Add(center.Y, ny)}
}

func rotateCircle(c Circle, center Point, angle fixedmath.Angle) Circle {
	return Circle{Center: rotatePoint(c.Center, center, angle), Radius: c.Radius}
}

func fullArcs(c Circle) ArcsOnCircle   { return ArcsOnCircle{Circle: c, Arcs: unitarc.FullCircle()} }
func emptyArcs(c Circle) ArcsOnCircle  { return ArcsOnCircle{Circle: c, Arcs: unitarc.Empty()} }

// midAngle returns the wrap-aware midpoint angle of the arc running ccw
// from start to end.
func midAngle(start, end fixedmath.Fixed) fixedmath.Fixed {
	s, e := fixedmath.Mod2Pi(start), fixedmath.Mod2Pi(end)
	if fixedmath.Cmp(e, s) < 0 {
		e = fixedmath.Add(e, fixedmath.TwoPi())
	}
	return fixedmath.Mod2Pi(fixedmath.Div(fixedmath.Add(s, e), fixedmath.FromInt64(2)))
}

func arcStart(a Arc) Point {
	if a.Full {
		return PointAt(a.Circle, fixedmath.Zero)
	}
	return PointAt(a.Circle, a.StartAngle)
}

func arcEnd(a Arc) Point {
	if a.Full {
		return PointAt(a.Circle, fixedmath.Zero)
	}
	return PointAt(a.Circle, a.EndAngle)
}

func arcMid(a Arc) Point {
	if a.Full {
		return PointAt(a.Circle, fixedmath.Pi())
	}
	return PointAt(a.Circle, midAngle(a.StartAngle, a.EndAngle))
}

func arcEqual(a, b Arc) bool {
	if !circleEqual(a.Circle, b.Circle) {
		return false
	}
	if a.Full || b.Full {
		return a.Full == b.Full
	}
	return fixedmath.Equal(a.StartAngle, b.StartAngle) && fixedmath.Equal(a.EndAngle, b.EndAngle)
}

func arcHash(a Arc) uint64 {
	h := circleHash(a.Circle)
	if a.Full {
		return h ^ 0xfacefeedcafebeef
	}
	return h ^ fixedmath.Hash(a.StartAngle)*31 ^ fixedmath.Hash(a.EndAngle)
}

// arcJoin merges b onto the end of a when they share a to support
// circle and a's end coincides with b's start, returning the combined
// arc. Two arcs that together span the whole circle collapse to the
// Full sentinel.
func arcJoin(a, b Arc) (Arc, bool) {
	if a.Full || b.Full || !circleEqual(a.Circle, b.Circle) {
		return Arc{}, false
	}
	if !fixedmath.Equal(a.EndAngle, b.StartAngle) {
		return Arc{}, false
	}
	if fixedmath.Equal(b.EndAngle, a.StartAngle) {
		return Arc{Circle: a.Circle, Full: true}, true
	}
	return Arc{Circle: a.Circle, StartAngle: a.StartAngle, EndAngle: b.EndAngle}, true
}

func arcRotate(a Arc, center Point, angle fixedmath.Angle) Arc {
	nc := rotateCircle(a.Circle, center, angle)
	if a.Full {
		return Arc{Circle: nc, Full: true}
	}
	return Arc{
		Circle:     nc,
		StartAngle: fixedmath.Mod2Pi(fixedmath.Add(a.StartAngle, angle.Radians())),
		EndAngle:   fixedmath.Mod2Pi(fixedmath.Add(a.EndAngle, angle.Radians())),
	}
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

func arcsUnion(a, b ArcsOnCircle) ArcsOnCircle {
	return ArcsOnCircle{Circle: a.Circle, Arcs: unitarc.Union(a.Arcs, b.Arcs)}
}

func arcsDifference(a, b ArcsOnCircle) ArcsOnCircle {
	return ArcsOnCircle{Circle: a.Circle, Arcs: unitarc.Difference(a.Arcs, b.Arcs)}
}

func arcsNonEmpty(a ArcsOnCircle) bool { return unitarc.NonEmpty(a.Arcs) }

// insideDiskMask returns the UnitArcs subset of host's boundary that
// lies within (or on) disk d, derived from the law-of-cosines distance
// formula for a point parameterized by angle around host.
func insideDiskMask(host Circle, d Circle) unitarc.UnitArcs {
	dx := fixedmath.Sub(d.Center.X, host.Center.X)
	dy := fixedmath.Sub(d.Center.Y, host.Center.Y)
	dist := fixedmath.Sqrt(fixedmath.Add(fixedmath.Mul(dx, dx), fixedmath.Mul(dy, dy)))

	if fixedmath.Equal(dist, fixedmath.Zero) {
		if fixedmath.Cmp(host.Radius, d.Radius) <= 0 {
			return unitarc.FullCircle()
		}
		return unitarc.Empty()
	}

	phi, err := fixedmath.Atan2Mod2Pi(dy, dx)
	if err != nil {
		return unitarc.Empty()
	}

	rA, rB := host.Radius, d.Radius
	denom := fixedmath.Mul(fixedmath.FromInt64(2), fixedmath.Mul(rA, dist))
	if fixedmath.Equal(denom, fixedmath.Zero) {
		return unitarc.Empty()
	}
	num := fixedmath.Sub(fixedmath.Add(fixedmath.Mul(rA, rA), fixedmath.Mul(dist, dist)), fixedmath.Mul(rB, rB))
	k := fixedmath.Div(num, denom)

	switch {
	case fixedmath.Cmp(k, fixedmath.One()) >= 0:
		return unitarc.Empty()
	case fixedmath.Cmp(k, fixedmath.FromInt64(-1)) <= 0:
		return unitarc.FullCircle()
	}
	halfWidth := fixedmath.Acos(k)
	return unitarc.Of(fixedmath.Sub(phi, halfWidth), fixedmath.Add(phi, halfWidth))
}

func arcsIntersectDisk(a ArcsOnCircle, d Circle) ArcsOnCircle {
	return ArcsOnCircle{Circle: a.Circle, Arcs: unitarc.Intersection(a.Arcs, insideDiskMask(a.Circle, d))}
}

func arcsRotate(a ArcsOnCircle, center Point, angle fixedmath.Angle) ArcsOnCircle {
	return ArcsOnCircle{
		Circle: rotateCircle(a.Circle, center, angle),
		Arcs:   unitarc.Rotate(a.Arcs, angle.Radians()),
	}
}

func arcsMaterialize(a ArcsOnCircle, splitAngles []fixedmath.Fixed) []Arc {
	pairs := unitarc.SplitAtIntersections(a.Arcs, splitAngles)
	out := make([]Arc, 0, len(pairs))
	for _, p := range pairs {
		if fixedmath.Equal(p.Start, fixedmath.Zero) && fixedmath.Equal(p.End, fixedmath.Zero) {
			out = append(out, Arc{Circle: a.Circle, Full: true})
			continue
		}
		out = append(out, Arc{Circle: a.Circle, StartAngle: p.Start, EndAngle: p.End})
	}
	return out
}

// diskContainsCompare reports whether p lies inside (-1), on (0), or
// outside (+1) disk d.
func diskContainsCompare(d Circle, p Point) int {
	dx := fixedmath.Sub(p.X, d.Center.X)
	dy := fixedmath.Sub(p.Y, d.Center.Y)
	distSq := fixedmath.Add(fixedmath.Mul(dx, dx), fixedmath.Mul(dy, dy))
	radSq := fixedmath.Mul(d.Radius, d.Radius)
	switch {
	case fixedmath.Equal(distSq, radSq):
		return 0
	case fixedmath.Cmp(distSq, radSq) < 0:
		return -1
	default:
		return 1
	}
}

// circleIntersectionAngles returns the angles (around host) at which
// host crosses other, restricted to the portions of other's boundary
// that are actually present (otherArcs).
func circleIntersectionAngles(host, other Circle, otherArcs unitarc.UnitArcs) []fixedmath.Fixed {
	cx := fixedmath.Sub(other.Center.X, host.Center.X)
	cy := fixedmath.Sub(other.Center.Y, host.Center.Y)
	dSq := fixedmath.Add(fixedmath.Mul(cx, cx), fixedmath.Mul(cy, cy))
	d := fixedmath.Sqrt(dSq)
	if fixedmath.Equal(d, fixedmath.Zero) {
		return nil // concentric circles never cross at isolated points
	}
	rSum := fixedmath.Add(host.Radius, other.Radius)
	rDiff := fixedmath.Abs(fixedmath.Sub(host.Radius, other.Radius))
	if fixedmath.Cmp(d, rSum) > 0 || fixedmath.Cmp(d, rDiff) < 0 {
		return nil
	}

	rA2 := fixedmath.Mul(host.Radius, host.Radius)
	rB2 := fixedmath.Mul(other.Radius, other.Radius)
	a := fixedmath.Div(fixedmath.Add(fixedmath.Sub(rA2, rB2), dSq), fixedmath.Mul(fixedmath.FromInt64(2), d))
	hSq := fixedmath.Sub(rA2, fixedmath.Mul(a, a))
	if fixedmath.Cmp(hSq, fixedmath.Zero) < 0 {
		hSq = fixedmath.Zero
	}
	phi, err := fixedmath.Atan2Mod2Pi(cy, cx)
	if err != nil {
		return nil
	}
	// Angle subtended at host's center between the line to other's
	// center and the line to each intersection point. Using Acos(a/r)
	// rather than Asin(h/r) matters here: the intersection point relative
	// to host's center is (a, ±h), so the subtended angle is atan2(h, a)
	// (equivalently Acos(a/r)), which can exceed π/2 whenever a < 0 —
	// Asin(h/r) only ever returns the acute angle and silently reflects
	// to the wrong side in that case.
	delta := fixedmath.Zero
	if !fixedmath.Equal(host.Radius, fixedmath.Zero) {
		delta = fixedmath.Acos(fixedmath.Div(a, host.Radius))
	}

	angles := []fixedmath.Fixed{
		fixedmath.Mod2Pi(fixedmath.Add(phi, delta)),
		fixedmath.Mod2Pi(fixedmath.Sub(phi, delta)),
	}

	out := angles[:0:0]
	for _, ang := range angles {
		p := PointAt(host, ang)
		otherAngle, err := fixedmath.Atan2Mod2Pi(fixedmath.Sub(p.Y, other.Center.Y), fixedmath.Sub(p.X, other.Center.X))
		if err != nil {
			continue
		}
		if unitarc.Contains(otherArcs, otherAngle) {
			out = append(out, ang)
		}
	}
	return out
}
