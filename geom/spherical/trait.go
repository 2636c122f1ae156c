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

package spherical

import "github.com/akh3nakh/circlepuzzle/fixedmath"

// Trait implements geom.Trait[Point, Circle, Circle, Arc, ArcsOnCircle].
type Trait struct{}

func (Trait) PointEqual(a, b Point) bool { return pointEqual(a, b) }
func (Trait) PointHash(p Point) uint64   { return pointHash(p) }
func (Trait) RotatePoint(p, axis Point, angle fixedmath.Angle) Point {
	return rotatePoint(p, axis, angle)
}

func (Trait) CircleEqual(a, b Circle) bool   { return circleEqual(a, b) }
func (Trait) CircleHash(c Circle) uint64     { return circleHash(c) }
func (Trait) FullArcs(c Circle) ArcsOnCircle { return fullArcs(c, canonicalZero(c)) }
func (Trait) EmptyArcs(c Circle) ArcsOnCircle { return emptyArcs(c, canonicalZero(c)) }

func (Trait) DiskCircle(d Circle) Circle                { return d }
func (Trait) DiskCenter(d Circle) Point                 { return d.Center }
func (Trait) DiskContainsCompare(d Circle, p Point) int { return diskContainsCompare(d, p) }

func (Trait) ArcCircle(a Arc) Circle       { return a.Circle }
func (Trait) ArcStart(a Arc) Point         { return arcStart(a) }
func (Trait) ArcEnd(a Arc) Point           { return arcEnd(a) }
func (Trait) ArcMid(a Arc) Point           { return arcMid(a) }
func (Trait) ArcEqual(a, b Arc) bool       { return arcEqual(a, b) }
func (Trait) ArcHash(a Arc) uint64         { return arcHash(a) }
func (Trait) ArcJoin(a, b Arc) (Arc, bool) { return arcJoin(a, b) }
func (Trait) ArcRotate(a Arc, axis Point, angle fixedmath.Angle) Arc {
	return arcRotate(a, axis, angle)
}
func (Trait) ArcTangentAngle(a Arc, atEnd bool) fixedmath.Fixed { return arcTangentAngle(a, atEnd) }
func (Trait) ArcRadiusLess(a, b Arc) bool                       { return arcRadiusLess(a, b) }

func (Trait) ArcsCircle(a ArcsOnCircle) Circle              { return arcsCircle(a) }
func (Trait) ArcsUnion(a, b ArcsOnCircle) ArcsOnCircle      { return arcsUnion(a, b) }
func (Trait) ArcsDifference(a, b ArcsOnCircle) ArcsOnCircle { return arcsDifference(a, b) }
func (Trait) ArcsIntersectDisk(a ArcsOnCircle, d Circle) ArcsOnCircle {
	return arcsIntersectDisk(a, d)
}
func (Trait) ArcsNonEmpty(a ArcsOnCircle) bool { return arcsNonEmpty(a) }
func (Trait) ArcsRotate(a ArcsOnCircle, axis Point, angle fixedmath.Angle) ArcsOnCircle {
	return arcsRotate(a, axis, angle)
}
func (Trait) ArcsMaterialize(a ArcsOnCircle, splitAngles []fixedmath.Fixed) []Arc {
	return arcsMaterialize(a, splitAngles)
}

func (Trait) CircleIntersectionAngles(host ArcsOnCircle, other Circle, otherArcs ArcsOnCircle) []fixedmath.Fixed {
	return circleIntersectionAngles(host, other, otherArcs)
}
