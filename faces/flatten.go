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

// Flatten splits every ArcsOnCircle in cuts at the points where it
// crosses any other circle's present arcs, producing the concrete Arc
// list the adjacency graph is built from (spec §4.E step 1, and the
// façade's memoized "flatCuts" view, spec §4.F).
func Flatten[Pt, Circ, Dsk, Arc, Arcs any](t geom.Trait[Pt, Circ, Dsk, Arc, Arcs], cuts *geom.CutMap[Circ, Arcs]) []Arc {
	return flatten(t, cuts)
}

func flatten[Pt, Circ, Dsk, Arc, Arcs any](t geom.Trait[Pt, Circ, Dsk, Arc, Arcs], cuts *geom.CutMap[Circ, Arcs]) []Arc {
	type circleArcs struct {
		circle Circ
		arcs   Arcs
	}
	var list []circleArcs
	cuts.Each(func(c Circ, a Arcs) { list = append(list, circleArcs{c, a}) })

	var flat []Arc
	for _, host := range list {
		var splitAngles []fixedmath.Fixed
		for _, other := range list {
			if t.CircleEqual(host.circle, other.circle) {
				continue
			}
			splitAngles = append(splitAngles, t.CircleIntersectionAngles(host.arcs, other.circle, other.arcs)...)
		}
		splitAngles = dedupeSortedAngles(splitAngles)
		flat = append(flat, t.ArcsMaterialize(host.arcs, splitAngles)...)
	}
	return flat
}

func dedupeSortedAngles(angles []fixedmath.Fixed) []fixedmath.Fixed {
	if len(angles) == 0 {
		return nil
	}
	sort.Slice(angles, func(i, j int) bool { return fixedmath.Cmp(angles[i], angles[j]) < 0 })
	out := angles[:1]
	for _, a := range angles[1:] {
		if !fixedmath.Equal(a, out[len(out)-1]) {
			out = append(out, a)
		}
	}
	return out
}
