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

// Part is one connected region ("face") of the subdivision, described
// by its canonical boundary: a minimal loop of arcs with no two
// adjacent arcs sharing a circle (spec §4.E "canonicalize").
type Part[Arc any] struct {
	Boundary []Arc
}

// canonicalize folds adjacent same-circle arcs (via join) into one,
// including the wrap between the last and first arc of the loop.
func canonicalize[Arc any](join func(a, b Arc) (Arc, bool), boundary []Arc) []Arc {
	if len(boundary) <= 1 {
		return boundary
	}
	out := make([]Arc, 0, len(boundary))
	out = append(out, boundary[0])
	for _, a := range boundary[1:] {
		if joined, ok := join(out[len(out)-1], a); ok {
			out[len(out)-1] = joined
			continue
		}
		out = append(out, a)
	}
	for len(out) > 1 {
		if joined, ok := join(out[len(out)-1], out[0]); ok {
			out[0] = joined
			out = out[:len(out)-1]
			continue
		}
		break
	}
	return out
}

// partTable assigns stable integer ids to distinct canonical Parts,
// identified as an order-independent set of arcs (two Parts with the
// same boundary arcs in a different rotation/reflection are the same
// Part). The number of parts a real puzzle produces is small enough
// that a linear scan per lookup, using the arc equality predicate
// alone, is simpler than a hash-bucketed table and just as fast in
// practice.
type partTable[Arc any] struct {
	eq    func(Arc, Arc) bool
	parts []Part[Arc]
}

func newPartTable[Arc any](eq func(Arc, Arc) bool) *partTable[Arc] {
	return &partTable[Arc]{eq: eq}
}

func (t *partTable[Arc]) setEqual(a, b []Arc) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, x := range a {
		found := false
		for j, y := range b {
			if used[j] {
				continue
			}
			if t.eq(x, y) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// intern returns the id of boundary's Part, registering a new one if
// this exact arc set hasn't been seen before.
func (t *partTable[Arc]) intern(boundary []Arc) int {
	for i, p := range t.parts {
		if t.setEqual(p.Boundary, boundary) {
			return i
		}
	}
	t.parts = append(t.parts, Part[Arc]{Boundary: boundary})
	return len(t.parts) - 1
}

func (t *partTable[Arc]) Parts() []Part[Arc] { return t.parts }
