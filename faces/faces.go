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

// Package faces turns a closed cut-set into the subdivision it induces:
// flatten splits every cut circle's arcs at their mutual intersections,
// walkFaces traces the resulting planar/spherical graph's faces, and
// partTable assigns each distinct face a stable Part id (spec §4.E).
package faces

import "github.com/akh3nakh/circlepuzzle/geom"

// Extraction holds the result of Extract: the deduplicated Parts the
// cut-set divides the surface into, plus the part table IndexOf
// searches by arc-set equality during permutation derivation.
type Extraction[Arc any] struct {
	Parts []Part[Arc]
	table *partTable[Arc]
}

// IndexOf reports the Part a boundary loop belongs to, matching by the
// same order-independent arc-set equality Extract used to dedupe faces
// in the first place. It is used to locate where a Part's boundary
// lands after a move rotates it (spec §4.F "derive permutation").
func (e Extraction[Arc]) IndexOf(boundary []Arc) (int, bool) {
	for i, p := range e.table.parts {
		if e.table.setEqual(p.Boundary, boundary) {
			return i, true
		}
	}
	return 0, false
}

// Extract computes every Part the closed cut-set cuts divides the
// surface into (spec §4.E). Two boundary loops that enclose the same
// region — traced from opposite sides, or from an unrelated starting
// edge — collapse to the same Part via partTable's set-equality intern.
func Extract[Pt, Circ, Dsk, Arc, Arcs any](t geom.Trait[Pt, Circ, Dsk, Arc, Arcs], cuts *geom.CutMap[Circ, Arcs]) Extraction[Arc] {
	flat := flatten(t, cuts)
	loops := walkFaces(t, flat)

	table := newPartTable(t.ArcEqual)
	for _, loop := range loops {
		if len(loop) == 0 {
			continue
		}
		table.intern(loop)
	}
	return Extraction[Arc]{Parts: table.Parts(), table: table}
}
