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

// incidence records one arc touching a point, tagged with which of the
// arc's two endpoints this is.
type incidence struct {
	arcID   int
	atStart bool
}

// pointMap groups incidences by the point they touch, identified by a
// caller-supplied hash/equal pair (points carry fixedmath.Fixed
// fields, so they can't be Go map keys directly; this mirrors
// geom.CutMap's bucket-plus-linear-scan approach).
type pointMap[Pt any] struct {
	hash    func(Pt) uint64
	eq      func(Pt, Pt) bool
	buckets map[uint64][]pointMapEntry[Pt]
}

type pointMapEntry[Pt any] struct {
	point       Pt
	incidences  []incidence
}

func newPointMap[Pt any](hash func(Pt) uint64, eq func(Pt, Pt) bool) *pointMap[Pt] {
	return &pointMap[Pt]{hash: hash, eq: eq, buckets: make(map[uint64][]pointMapEntry[Pt])}
}

func (m *pointMap[Pt]) add(p Pt, inc incidence) {
	h := m.hash(p)
	bucket := m.buckets[h]
	for i, e := range bucket {
		if m.eq(e.point, p) {
			bucket[i].incidences = append(bucket[i].incidences, inc)
			return
		}
	}
	m.buckets[h] = append(bucket, pointMapEntry[Pt]{point: p, incidences: []incidence{inc}})
}

func (m *pointMap[Pt]) get(p Pt) []incidence {
	for _, e := range m.buckets[m.hash(p)] {
		if m.eq(e.point, p) {
			return e.incidences
		}
	}
	return nil
}

func (m *pointMap[Pt]) each(f func(Pt, []incidence)) {
	for _, bucket := range m.buckets {
		for _, e := range bucket {
			f(e.point, e.incidences)
		}
	}
}
