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

package faces

import (
	"fmt"
	"strings"

	"github.com/akh3nakh/circlepuzzle/geom"
)

// MovePermutation is the permutation a single application of a Move
// induces on the Parts of an Extraction, as a 0-indexed mapping:
// Permutation[i] is the id of the Part that part i is carried into
// (spec §4.E step 4).
type MovePermutation struct {
	Permutation []int
}

// rotatedBy decides whether boundary lies inside disk and must
// therefore move under the disk's rotation, per spec §4.E step 4's
// part-size-dependent point sample: three-or-more-arc parts are
// tested by endpoint (any one strictly inside settles it, since a
// simply-connected part can't straddle the disk boundary without an
// endpoint there), two-arc parts by midpoint (an endpoint might
// coincide with the cut circle itself), one-arc parts — a full circle
// standing alone as its own boundary — by its single start point.
func rotatedBy[Pt, Circ, Dsk, Arc, Arcs any](t geom.Trait[Pt, Circ, Dsk, Arc, Arcs], boundary []Arc, d Dsk) bool {
	switch {
	case len(boundary) >= 3:
		for _, a := range boundary {
			if t.DiskContainsCompare(d, t.ArcStart(a)) < 0 {
				return true
			}
			if t.DiskContainsCompare(d, t.ArcEnd(a)) < 0 {
				return true
			}
		}
		return false
	case len(boundary) == 2:
		for _, a := range boundary {
			if t.DiskContainsCompare(d, t.ArcMid(a)) < 0 {
				return true
			}
		}
		return false
	case len(boundary) == 1:
		return t.DiskContainsCompare(d, t.ArcStart(boundary[0])) < 0
	default:
		return false
	}
}

// DerivePermutation computes the permutation one application of m
// induces on e's Parts (spec §4.E step 4). Parts lying outside m's
// disk are fixed; parts inside are rotated by m's single step angle
// and matched back against the part table by canonical boundary.
func DerivePermutation[Pt, Circ, Dsk, Arc, Arcs any](t geom.Trait[Pt, Circ, Dsk, Arc, Arcs], e Extraction[Arc], m geom.Move[Dsk]) (MovePermutation, error) {
	center := t.DiskCenter(m.Disk)
	perm := make([]int, len(e.Parts))
	for i, p := range e.Parts {
		image := p.Boundary
		if rotatedBy(t, p.Boundary, m.Disk) {
			rotated := make([]Arc, len(p.Boundary))
			for j, a := range p.Boundary {
				rotated[j] = t.ArcRotate(a, center, m.Angle)
			}
			image = canonicalize(t.ArcJoin, rotated)
		}

		dst, ok := e.IndexOf(image)
		if !ok {
			return MovePermutation{}, fmt.Errorf("faces: part %d has no image under move rotation; move does not preserve the cut-set closure", i)
		}
		perm[i] = dst
	}
	return MovePermutation{Permutation: perm}, nil
}

// String renders p as a 1-indexed bracketed permutation string
// suitable for feeding to external computer-algebra systems (spec
// §4.E "Output string for each move" / §6 "Permutation output
// format"), e.g. "[2,3,1]".
func (p MovePermutation) String() string {
	parts := make([]string, len(p.Permutation))
	for i, v := range p.Permutation {
		parts[i] = fmt.Sprintf("%d", v+1)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
