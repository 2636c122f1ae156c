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

// Package geom declares the Geometry trait the closure and face
// extraction engines are written against (spec §4.C, §9 "Generic
// geometry"). geom/planar and geom/spherical each supply one concrete
// implementation; the engines are ordinary generic Go functions
// parameterized over Trait's five associated types, so each geometry
// gets its own monomorphized copy rather than paying for dynamic
// dispatch on every geometric predicate.
package geom

import "github.com/akh3nakh/circlepuzzle/fixedmath"

// Trait bundles every geometry-specific operation spec §4.C requires,
// parameterized over one geometry's Point (Pt), Circle/Disk (Circ/Dsk),
// Arc (Arc) and ArcsOnCircle (Arcs) value types.
type Trait[Pt, Circ, Dsk, Arc, Arcs any] interface {
	// Point
	PointEqual(a, b Pt) bool
	PointHash(p Pt) uint64
	RotatePoint(p Pt, center Pt, angle fixedmath.Angle) Pt

	// Circle
	CircleEqual(a, b Circ) bool
	CircleHash(c Circ) uint64
	FullArcs(c Circ) Arcs
	EmptyArcs(c Circ) Arcs

	// Disk
	DiskCircle(d Dsk) Circ
	DiskCenter(d Dsk) Pt
	DiskContainsCompare(d Dsk, p Pt) int // -1 interior, 0 boundary, +1 exterior

	// Arc
	ArcCircle(a Arc) Circ
	ArcStart(a Arc) Pt
	ArcEnd(a Arc) Pt
	ArcMid(a Arc) Pt
	ArcEqual(a, b Arc) bool
	ArcHash(a Arc) uint64
	ArcJoin(a, b Arc) (Arc, bool)
	ArcRotate(a Arc, center Pt, angle fixedmath.Angle) Arc
	// ArcTangentAngle returns the direction (radians, [0, 2π)) in which
	// the arc leaves the point identified by atEnd (false: the arc's
	// start point; true: its end point) — spec §4.E "Per-point arc
	// ordering".
	ArcTangentAngle(a Arc, atEnd bool) fixedmath.Fixed
	// ArcRadiusLess breaks a tangent tie between two arcs that are
	// tangent to each other at a shared point (spec §4.E tie-break
	// rules); it compares the supporting circles' radii (for
	// spherical arcs, with the dual-representation supplement already
	// resolved).
	ArcRadiusLess(a, b Arc) bool

	// ArcsOnCircle
	ArcsCircle(a Arcs) Circ
	// ArcsUnion/ArcsDifference assume both operands describe the same
	// supporting circle (spec's "sameCircleUnion"/"sameCircleDifference");
	// for spherical geometry the implementation reconciles the dual
	// representation and zero-point frames before delegating to the
	// unitarc algebra.
	ArcsUnion(a, b Arcs) Arcs
	ArcsDifference(a, b Arcs) Arcs
	ArcsIntersectDisk(a Arcs, d Dsk) Arcs
	ArcsNonEmpty(a Arcs) bool
	ArcsRotate(a Arcs, center Pt, angle fixedmath.Angle) Arcs
	// ArcsMaterialize splits a at the given angles (as measured around
	// its own circle) and returns one concrete Arc per present
	// interval, including the single-full-circle special case (spec
	// §4.B "splitAtIntersections").
	ArcsMaterialize(a Arcs, splitAngles []fixedmath.Fixed) []Arc

	// CircleIntersectionAngles finds the points where host's circle
	// intersects other, keeps only those that lie within other's
	// present arcs (otherArcs), and returns their angular position
	// around host — measured in host's own frame, which for geometries
	// with a per-circle zero point (spherical) requires host's full
	// ArcsOnCircle rather than just its bare Circle (spec §4.E step 1
	// "flatten").
	CircleIntersectionAngles(host Arcs, other Circ, otherArcs Arcs) []fixedmath.Fixed
}
