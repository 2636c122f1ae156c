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

// Package puzzle wires the closure and faces engines together behind
// the Move & Puzzle façade (spec §4.F): an immutable move list exposing
// six derived views, each computed lazily on first access and
// memoized thereafter.
package puzzle

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/akh3nakh/circlepuzzle/closure"
	"github.com/akh3nakh/circlepuzzle/faces"
	"github.com/akh3nakh/circlepuzzle/geom"
)

// ErrNotValidated is returned by Validate when a derived view could
// not be computed, rather than when a view computed fine but failed
// a testable property (those are reported via ValidationError).
var ErrNotValidated = errors.New("puzzle: could not compute derived views")

// Puzzle holds an immutable move list and exposes the six derived
// views named in spec §4.F: GroupedCuts, FlatCuts, Parts, PartIDs,
// PartPermutations, PermutationStrings. Each is computed at most once;
// a Puzzle is never mutated after construction (spec §5).
type Puzzle[Pt, Circ, Dsk, Arc, Arcs any] struct {
	trait     geom.Trait[Pt, Circ, Dsk, Arc, Arcs]
	moves     []geom.Move[Dsk]
	maxRounds int // -1: unlimited (spec §7 "callers wanting a guard must impose one externally")

	cutsOnce  sync.Once
	cuts      *geom.CutMap[Circ, Arcs]
	cutsStats closure.Stats
	cutsErr   error

	flatOnce sync.Once
	flat     []Arc

	extractOnce sync.Once
	extraction  faces.Extraction[Arc]

	permOnce sync.Once
	perms    []faces.MovePermutation
	permErr  error

	stringsOnce sync.Once
	strings     []string
}

// New constructs a Puzzle from moves, deduplicating moves whose disk
// and increment already appear together (spec §4.D "Input: distinct moves ... duplicates
// deduplicated", and the "Deduplication" testable property of §8).
// The closure engine runs with no round limit; use NewWithLimit for a
// non-termination guard.
func New[Pt, Circ, Dsk, Arc, Arcs any](t geom.Trait[Pt, Circ, Dsk, Arc, Arcs], moves []geom.Move[Dsk]) *Puzzle[Pt, Circ, Dsk, Arc, Arcs] {
	return NewWithLimit(t, moves, -1)
}

// NewWithLimit behaves like New but caps the cut-set closure at
// maxRounds worklist rounds (maxRounds < 0 means unlimited), surfacing
// *closure.ErrCutLimitExceeded from GroupedCuts (and every view
// depending on it) instead of looping forever on a jumbling move set
// (spec §7 "non-termination", supplemented as an opt-in external
// guard).
func NewWithLimit[Pt, Circ, Dsk, Arc, Arcs any](t geom.Trait[Pt, Circ, Dsk, Arc, Arcs], moves []geom.Move[Dsk], maxRounds int) *Puzzle[Pt, Circ, Dsk, Arc, Arcs] {
	deduped := closure.DedupeMoves(t, moves)
	return &Puzzle[Pt, Circ, Dsk, Arc, Arcs]{trait: t, moves: deduped, maxRounds: maxRounds}
}

// Moves returns the deduplicated move list, in declaration order.
func (p *Puzzle[Pt, Circ, Dsk, Arc, Arcs]) Moves() []geom.Move[Dsk] { return p.moves }

// GroupedCuts is the "groupedCuts" view: the closed cut-set, keyed by
// supporting circle (spec §4.D output).
func (p *Puzzle[Pt, Circ, Dsk, Arc, Arcs]) GroupedCuts() (*geom.CutMap[Circ, Arcs], error) {
	p.cutsOnce.Do(func() {
		if p.maxRounds < 0 {
			p.cuts = closure.Close(p.trait, p.moves, func(s closure.Stats) { p.cutsStats = s })
			return
		}
		p.cuts, p.cutsErr = closure.CloseWithLimit(p.trait, p.moves, p.maxRounds, func(s closure.Stats) { p.cutsStats = s })
	})
	return p.cuts, p.cutsErr
}

// FlatCuts is the "flatCuts" view: every cut circle's arcs split at
// their mutual intersections (spec §4.E step 1).
func (p *Puzzle[Pt, Circ, Dsk, Arc, Arcs]) FlatCuts() ([]Arc, error) {
	cuts, err := p.GroupedCuts()
	if err != nil {
		return nil, err
	}
	p.flatOnce.Do(func() { p.flat = faces.Flatten(p.trait, cuts) })
	return p.flat, nil
}

// extract computes (and memoizes) the face extraction both Parts and
// PartPermutations are derived from.
func (p *Puzzle[Pt, Circ, Dsk, Arc, Arcs]) extract() (faces.Extraction[Arc], error) {
	cuts, err := p.GroupedCuts()
	if err != nil {
		return faces.Extraction[Arc]{}, err
	}
	p.extractOnce.Do(func() { p.extraction = faces.Extract(p.trait, cuts) })
	return p.extraction, nil
}

// Parts is the "parts" view: every connected region the cut-set
// divides the surface into (spec §4.E steps 2-3).
func (p *Puzzle[Pt, Circ, Dsk, Arc, Arcs]) Parts() ([]faces.Part[Arc], error) {
	e, err := p.extract()
	if err != nil {
		return nil, err
	}
	return e.Parts, nil
}

// PartIDs is the "partIds" view: the stable integer id of every part,
// in the same order Parts returns them (spec §4.E step 4 "assign each
// a stable integer id in [0, N)").
func (p *Puzzle[Pt, Circ, Dsk, Arc, Arcs]) PartIDs() ([]int, error) {
	parts, err := p.Parts()
	if err != nil {
		return nil, err
	}
	ids := make([]int, len(parts))
	for i := range ids {
		ids[i] = i
	}
	return ids, nil
}

// PartPermutations is the "partPermutations" view: for each move, in
// declaration order, the permutation it induces on Parts (spec §4.E
// step 4).
func (p *Puzzle[Pt, Circ, Dsk, Arc, Arcs]) PartPermutations() ([]faces.MovePermutation, error) {
	e, err := p.extract()
	if err != nil {
		return nil, err
	}
	p.permOnce.Do(func() {
		perms := make([]faces.MovePermutation, len(p.moves))
		for i, m := range p.moves {
			perm, err := faces.DerivePermutation(p.trait, e, m)
			if err != nil {
				p.permErr = fmt.Errorf("puzzle: move %d: %w", i, err)
				return
			}
			perms[i] = perm
		}
		p.perms = perms
	})
	if p.permErr != nil {
		return nil, p.permErr
	}
	return p.perms, nil
}

// PermutationStrings is the "permutationStrings" view: each move's
// permutation rendered as a 1-indexed bracketed literal for an
// external computer-algebra system (spec §4.E "Output string for each
// move", §6 "Permutation output format").
func (p *Puzzle[Pt, Circ, Dsk, Arc, Arcs]) PermutationStrings() ([]string, error) {
	perms, err := p.PartPermutations()
	if err != nil {
		return nil, err
	}
	p.stringsOnce.Do(func() {
		strs := make([]string, len(perms))
		for i, perm := range perms {
			strs[i] = perm.String()
		}
		p.strings = strs
	})
	return p.strings, nil
}

// Stats reports closure-engine progress counters, primarily for
// diagnostics (spec's ambient "Puzzle.Stats()" supplement). It calls
// Parts, so it computes the closure and the face extraction if they
// have not been computed yet.
func (p *Puzzle[Pt, Circ, Dsk, Arc, Arcs]) Stats() Stats {
	parts, _ := p.Parts()
	return Stats{
		Rounds:     p.cutsStats.Rounds,
		CutCircles: p.cutsStats.CutCircles,
		Parts:      len(parts),
	}
}

// Stats is a humanized snapshot of a Puzzle's derived-view progress.
type Stats struct {
	Rounds     int
	CutCircles int
	Parts      int
}

// String renders s with humanized counts, e.g. "3 rounds, 12 cut
// circles, 7 parts".
func (s Stats) String() string {
	return fmt.Sprintf("%s rounds, %s cut circles, %s parts",
		humanize.Comma(int64(s.Rounds)), humanize.Comma(int64(s.CutCircles)), humanize.Comma(int64(s.Parts)))
}
