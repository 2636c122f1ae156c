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

package geom

// CutMap is a Circle-keyed map whose identity comes from a
// caller-supplied hash/equal pair rather than Go's built-in map key
// semantics: Circle values carry fixedmath.Fixed fields, so two
// circles that describe the same geometry can differ in their exact
// in-memory representation (spherical's dual (c, r) ≡ (-c, π-r)
// encoding is the sharpest example). A small hash bucket with a linear
// equality scan inside each bucket gives CutMap the same amortized
// O(1) behavior as a normal map while respecting that identity.
type CutMap[Circ, Arcs any] struct {
	hash    func(Circ) uint64
	eq      func(Circ, Circ) bool
	buckets map[uint64][]cutEntry[Circ, Arcs]
	count   int
}

type cutEntry[Circ, Arcs any] struct {
	circle Circ
	arcs   Arcs
}

// NewCutMap builds an empty CutMap using hash/eq as the Circle identity.
func NewCutMap[Circ, Arcs any](hash func(Circ) uint64, eq func(Circ, Circ) bool) *CutMap[Circ, Arcs] {
	return &CutMap[Circ, Arcs]{
		hash:    hash,
		eq:      eq,
		buckets: make(map[uint64][]cutEntry[Circ, Arcs]),
	}
}

// Get returns the arcs stored for c, if any.
func (m *CutMap[Circ, Arcs]) Get(c Circ) (Arcs, bool) {
	for _, e := range m.buckets[m.hash(c)] {
		if m.eq(e.circle, c) {
			return e.arcs, true
		}
	}
	var zero Arcs
	return zero, false
}

// Set stores arcs for c, replacing any previous value.
func (m *CutMap[Circ, Arcs]) Set(c Circ, arcs Arcs) {
	h := m.hash(c)
	bucket := m.buckets[h]
	for i, e := range bucket {
		if m.eq(e.circle, c) {
			bucket[i].arcs = arcs
			return
		}
	}
	m.buckets[h] = append(bucket, cutEntry[Circ, Arcs]{circle: c, arcs: arcs})
	m.count++
}

// Each calls f once per stored (circle, arcs) pair, in unspecified
// order. f must not mutate m.
func (m *CutMap[Circ, Arcs]) Each(f func(Circ, Arcs)) {
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			f(e.circle, e.arcs)
		}
	}
}

// Len returns the number of distinct circles stored.
func (m *CutMap[Circ, Arcs]) Len() int { return m.count }
