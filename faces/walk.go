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
	"sort"

	"github.com/akh3nakh/circlepuzzle/fixedmath"
	"github.com/akh3nakh/circlepuzzle/geom"
)

// nextTable is the precomputed "next half-edge around this face"
// pointer for every incidence: for an incidence e arriving at point q,
// next(e) is the incidence immediately following twin(e) in q's static
// cyclic order (spec §4.E step 2). It never mutates once built, so
// tracing one face never disturbs another's pointers — the classic
// DCEL face-enumeration approach.
type nextTable struct {
	next map[incidence]incidence
}

func (n *nextTable) after(twin incidence) incidence { return n.next[twin] }

// buildAdjacency sorts every point's incidences by the tangent-angle
// ordering of spec §4.E (primarily the direction the arc leaves the
// point; ties broken by which arc starts vs. ends there, and by
// supporting-circle radius when both start or both end) and derives
// the resulting nextTable.
func buildAdjacency[Pt, Circ, Dsk, Arc, Arcs any](t geom.Trait[Pt, Circ, Dsk, Arc, Arcs], flat []Arc) *nextTable {
	pm := newPointMap[Pt](t.PointHash, t.PointEqual)
	for id, a := range flat {
		pm.add(t.ArcStart(a), incidence{arcID: id, atStart: true})
		pm.add(t.ArcEnd(a), incidence{arcID: id, atStart: false})
	}

	nt := &nextTable{next: make(map[incidence]incidence)}
	pm.each(func(_ Pt, incs []incidence) {
		order := append([]incidence(nil), incs...)
		sort.Slice(order, func(i, j int) bool { return lessAtPoint(t, flat, order[i], order[j]) })
		for i, e := range order {
			nt.next[e] = order[(i+1)%len(order)]
		}
	})
	return nt
}

func lessAtPoint[Pt, Circ, Dsk, Arc, Arcs any](t geom.Trait[Pt, Circ, Dsk, Arc, Arcs], flat []Arc, x, y incidence) bool {
	arcX, arcY := flat[x.arcID], flat[y.arcID]
	phiX := t.ArcTangentAngle(arcX, !x.atStart)
	phiY := t.ArcTangentAngle(arcY, !y.atStart)
	if c := fixedmath.Cmp(phiX, phiY); c != 0 {
		return c < 0
	}
	switch {
	case x.atStart && y.atStart:
		// Smaller radius sorts greater (comes later).
		return t.ArcRadiusLess(arcY, arcX)
	case !x.atStart && !y.atStart:
		// Smaller radius sorts smaller (comes first).
		return t.ArcRadiusLess(arcX, arcY)
	case x.atStart && !y.atStart:
		// An arc starting here sorts after one ending here.
		return false
	default:
		return true
	}
}

// walkFaces traces every face bounded by flat: each incidence belongs
// to exactly one face, so repeatedly starting from any unvisited
// incidence and following the nextTable pointer until the loop closes
// enumerates every face exactly once (spec §4.E step 2).
func walkFaces[Pt, Circ, Dsk, Arc, Arcs any](t geom.Trait[Pt, Circ, Dsk, Arc, Arcs], flat []Arc) [][]Arc {
	nt := buildAdjacency(t, flat)
	visited := make(map[incidence]bool, 2*len(flat))

	var loops [][]Arc
	for id := range flat {
		for _, atStart := range [2]bool{true, false} {
			e0 := incidence{arcID: id, atStart: atStart}
			if visited[e0] {
				continue
			}
			var boundary []Arc
			cur := e0
			for {
				visited[cur] = true
				boundary = append(boundary, flat[cur.arcID])
				twin := incidence{arcID: cur.arcID, atStart: !cur.atStart}
				cur = nt.after(twin)
				if cur == e0 {
					break
				}
			}
			loops = append(loops, canonicalize(t.ArcJoin, boundary))
		}
	}
	return loops
}
