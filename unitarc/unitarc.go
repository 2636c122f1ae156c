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

// Package unitarc implements a boolean-valued set algebra over the unit
// circle modulo 2π: UnitArcs, a list of (boundary, present) transitions
// that together describe which parts of [0, 2π) are "in" the set.
package unitarc

import (
	"sort"

	"github.com/akh3nakh/circlepuzzle/fixedmath"
)

// Entry is one boundary/flag transition of a UnitArcs list.
type Entry struct {
	Boundary fixedmath.Fixed
	Present  bool
}

// UnitArcs is a non-empty list of Entry values whose first boundary is
// always 0 and whose boundaries strictly increase (under fixedmath's
// fuzzy comparison) across [0, 2π). Between consecutive boundaries
// (wrapping the last back to 2π) the "present" flag of the earlier entry
// describes membership; the set represented is the topological closure
// of the union of "present" open segments, so an isolated boundary point
// is never distinguishable from its neighbors.
type UnitArcs struct {
	entries []Entry
}

// FullCircle is the set containing all of [0, 2π).
func FullCircle() UnitArcs {
	return UnitArcs{entries: []Entry{{Boundary: fixedmath.Zero, Present: true}}}
}

// Empty is the set containing none of [0, 2π).
func Empty() UnitArcs {
	return UnitArcs{entries: []Entry{{Boundary: fixedmath.Zero, Present: false}}}
}

// Entries returns a copy of the underlying simplified boundary list.
func (u UnitArcs) Entries() []Entry {
	out := make([]Entry, len(u.entries))
	copy(out, u.entries)
	return out
}

// Of builds the canonical two-boundary UnitArcs for the counterclockwise
// arc [start, end). start == end (after mod 2π) denotes the whole
// circle, matching FullCircle.
func Of(start, end fixedmath.Fixed) UnitArcs {
	start = fixedmath.Mod2Pi(start)
	end = fixedmath.Mod2Pi(end)
	if fixedmath.Equal(start, end) {
		return FullCircle()
	}

	boundaries := dedupSorted(fixedmath.Zero, start, end)
	entries := make([]Entry, len(boundaries))
	for i, b := range boundaries {
		next := fixedmath.TwoPi()
		if i+1 < len(boundaries) {
			next = boundaries[i+1]
		}
		mid := fixedmath.Div(fixedmath.Add(b, next), fixedmath.FromInt64(2))
		entries[i] = Entry{Boundary: b, Present: inArc(mid, start, end)}
	}
	return simplify(UnitArcs{entries: entries})
}

func inArc(angle, start, end fixedmath.Fixed) bool {
	if fixedmath.Cmp(start, end) <= 0 {
		return fixedmath.Cmp(angle, start) >= 0 && fixedmath.Cmp(angle, end) < 0
	}
	return fixedmath.Cmp(angle, start) >= 0 || fixedmath.Cmp(angle, end) < 0
}

func dedupSorted(bs ...fixedmath.Fixed) []fixedmath.Fixed {
	sort.Slice(bs, func(i, j int) bool { return fixedmath.Cmp(bs[i], bs[j]) < 0 })
	out := bs[:1]
	for _, b := range bs[1:] {
		if !fixedmath.Equal(b, out[len(out)-1]) {
			out = append(out, b)
		}
	}
	return out
}

// simplify removes every entry whose present flag equals the previous
// entry's: no two adjacent entries of a simplified list may differ only
// in a boundary that changes nothing. The first entry (boundary 0) is
// always kept, so the last and first entries may share a flag.
func simplify(u UnitArcs) UnitArcs {
	if len(u.entries) == 0 {
		return u
	}
	out := []Entry{u.entries[0]}
	for _, e := range u.entries[1:] {
		if out[len(out)-1].Present == e.Present {
			continue
		}
		out = append(out, e)
	}
	return UnitArcs{entries: out}
}

// merge runs the single parameterized two-way boundary merge described
// in spec §4.B: it walks both boundary lists in lockstep, emitting every
// boundary from either list with a new present flag from keep(p1, p2).
// Both operands always have a boundary at exactly 0 (the invariant), so
// the very first emitted boundary already carries the correct starting
// flags for both operands with no separate initialization step.
func merge(a, b UnitArcs, keep func(p1, p2 bool) bool) []Entry {
	i, j := 0, 0
	n, m := len(a.entries), len(b.entries)
	var curA, curB bool
	var out []Entry
	for i < n || j < m {
		var boundary fixedmath.Fixed
		switch {
		case j >= m || (i < n && fixedmath.Cmp(a.entries[i].Boundary, b.entries[j].Boundary) < 0):
			boundary = a.entries[i].Boundary
			curA = a.entries[i].Present
			i++
		case i >= n || fixedmath.Cmp(b.entries[j].Boundary, a.entries[i].Boundary) < 0:
			boundary = b.entries[j].Boundary
			curB = b.entries[j].Present
			j++
		default:
			boundary = a.entries[i].Boundary
			curA = a.entries[i].Present
			curB = b.entries[j].Present
			i++
			j++
		}
		out = append(out, Entry{Boundary: boundary, Present: keep(curA, curB)})
	}
	return out
}

// Union returns the set of angles present in a or b.
func Union(a, b UnitArcs) UnitArcs {
	return simplify(UnitArcs{entries: merge(a, b, func(p1, p2 bool) bool { return p1 || p2 })})
}

// Intersection returns the set of angles present in both a and b.
func Intersection(a, b UnitArcs) UnitArcs {
	return simplify(UnitArcs{entries: merge(a, b, func(p1, p2 bool) bool { return p1 && p2 })})
}

// Difference returns the set of angles present in a but not b.
func Difference(a, b UnitArcs) UnitArcs {
	return simplify(UnitArcs{entries: merge(a, b, func(p1, p2 bool) bool { return p1 && !p2 })})
}

// SymmetricDifference returns the set of angles present in exactly one
// of a, b.
func SymmetricDifference(a, b UnitArcs) UnitArcs {
	return simplify(UnitArcs{entries: merge(a, b, func(p1, p2 bool) bool { return p1 != p2 })})
}

// Contains reports whether angle lies in the closed set u represents.
// The boundary point 0 is resolved using the last entry's flag rather
// than the first's, matching the topological-closure semantics: 0 is
// exactly as much a member of the segment that wraps into it as of the
// segment that starts there.
func Contains(u UnitArcs, angle fixedmath.Fixed) bool {
	angle = fixedmath.Mod2Pi(angle)
	if fixedmath.Equal(angle, fixedmath.Zero) {
		return u.entries[len(u.entries)-1].Present
	}
	lo, hi := 0, len(u.entries)-1
	result := u.entries[0].Present
	for lo <= hi {
		mid := (lo + hi) / 2
		if fixedmath.Cmp(u.entries[mid].Boundary, angle) <= 0 {
			result = u.entries[mid].Present
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return result
}

// NonEmpty reports whether any entry of u is present.
func NonEmpty(u UnitArcs) bool {
	for _, e := range u.entries {
		if e.Present {
			return true
		}
	}
	return false
}

// Rotate shifts every boundary of u by theta (mod 2π), reinserting a
// boundary at 0 if the rotation doesn't happen to land one there
// exactly.
func Rotate(u UnitArcs, theta fixedmath.Fixed) UnitArcs {
	theta = fixedmath.Mod2Pi(theta)
	if fixedmath.Equal(theta, fixedmath.Zero) || len(u.entries) == 1 {
		return u
	}

	oldZeroAngle := fixedmath.Mod2Pi(fixedmath.Neg(theta))
	flagAtZero := Contains(u, oldZeroAngle)

	type shiftedEntry struct {
		b fixedmath.Fixed
		p bool
	}
	shifted := make([]shiftedEntry, 0, len(u.entries)+1)
	hasZero := false
	for _, e := range u.entries {
		nb := fixedmath.Mod2Pi(fixedmath.Add(e.Boundary, theta))
		if fixedmath.Equal(nb, fixedmath.Zero) {
			hasZero = true
			nb = fixedmath.Zero
		}
		shifted = append(shifted, shiftedEntry{b: nb, p: e.Present})
	}
	if !hasZero {
		shifted = append(shifted, shiftedEntry{b: fixedmath.Zero, p: flagAtZero})
	}
	sort.Slice(shifted, func(i, j int) bool { return fixedmath.Cmp(shifted[i].b, shifted[j].b) < 0 })

	entries := make([]Entry, len(shifted))
	for i, s := range shifted {
		entries[i] = Entry{Boundary: s.b, Present: s.p}
	}
	return simplify(UnitArcs{entries: entries})
}

// ArcPair is one (start, end) present interval returned by
// SplitAtIntersections. The sentinel {Zero, Zero} means "the whole
// circle, no splits".
type ArcPair struct {
	Start, End fixedmath.Fixed
}

// SplitAtIntersections enumerates u's present arcs as (start, end)
// pairs, introducing an extra (phantom) boundary at each angle in
// splits even where it doesn't change u's present flag. This is done by
// merging against a present-nowhere marker list whose boundaries are
// exactly {0} ∪ splits, without the usual post-merge simplification: the
// phantom split boundaries must survive even though they don't
// represent a real state transition.
func SplitAtIntersections(u UnitArcs, splits []fixedmath.Fixed) []ArcPair {
	marker := markerFromSplits(splits)
	raw := merge(u, marker, func(p1, p2 bool) bool { return p1 })
	n := len(raw)

	if n == 1 && raw[0].Present {
		return []ArcPair{{Start: fixedmath.Zero, End: fixedmath.Zero}}
	}

	var pairs []ArcPair
	for i, e := range raw {
		if !e.Present {
			continue
		}
		end := fixedmath.TwoPi()
		if i+1 < n {
			end = raw[i+1].Boundary
		}
		pairs = append(pairs, ArcPair{Start: e.Boundary, End: end})
	}

	if n > 0 && raw[0].Present && raw[n-1].Present && !containsSplit(splits, fixedmath.Zero) && len(pairs) >= 2 {
		first := pairs[0]
		last := pairs[len(pairs)-1]
		wrapped := ArcPair{Start: last.Start, End: first.End}
		pairs = append(pairs[1:len(pairs)-1], wrapped)
	}
	return pairs
}

func containsSplit(splits []fixedmath.Fixed, angle fixedmath.Fixed) bool {
	for _, s := range splits {
		if fixedmath.Equal(fixedmath.Mod2Pi(s), angle) {
			return true
		}
	}
	return false
}

func markerFromSplits(splits []fixedmath.Fixed) UnitArcs {
	bs := make([]fixedmath.Fixed, 0, len(splits)+1)
	bs = append(bs, fixedmath.Zero)
	for _, s := range splits {
		bs = append(bs, fixedmath.Mod2Pi(s))
	}
	deduped := dedupSorted(bs...)
	entries := make([]Entry, len(deduped))
	for i, b := range deduped {
		entries[i] = Entry{Boundary: b, Present: false}
	}
	return UnitArcs{entries: entries}
}

// Equal reports whether a and b represent the same set (same simplified
// boundary/flag sequence).
func Equal(a, b UnitArcs) bool {
	if len(a.entries) != len(b.entries) {
		return false
	}
	for i := range a.entries {
		if a.entries[i].Present != b.entries[i].Present || !fixedmath.Equal(a.entries[i].Boundary, b.entries[i].Boundary) {
			return false
		}
	}
	return true
}
