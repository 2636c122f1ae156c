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

// Package closure computes the cut-set closure of a set of Moves: the
// full collection of arcs traced across every circle any move's disk
// ever sweeps another circle's boundary through, closed under repeated
// application of every move (spec §4.D).
package closure

import (
	"fmt"

	"github.com/akh3nakh/circlepuzzle/geom"
)

// Stats reports closure progress, primarily for tests and diagnostics
// (spec's "Puzzle.Stats" ambient supplement).
type Stats struct {
	Rounds     int
	CutCircles int
}

// ErrCutLimitExceeded is returned by CloseWithLimit when the closure
// does not converge within the configured number of rounds — the
// signature of a jumbling (infinite-orbit) puzzle, which this module
// does not support (spec §1 Non-goals).
type ErrCutLimitExceeded struct {
	Limit int
}

func (e *ErrCutLimitExceeded) Error() string {
	return fmt.Sprintf("closure: exceeded %d rounds without converging; this move set may not have a finite cut-set closure", e.Limit)
}

// Close runs the worklist fixed-point algorithm to completion and
// returns the full cut-set, keyed by circle. progress, if non-nil, is
// called after each round.
func Close[Pt, Circ, Dsk, Arc, Arcs any](t geom.Trait[Pt, Circ, Dsk, Arc, Arcs], moves []geom.Move[Dsk], progress func(Stats)) *geom.CutMap[Circ, Arcs] {
	cuts, err := run(t, moves, progress, -1)
	if err != nil {
		// run only returns an error when a non-negative round limit is
		// supplied; Close passes -1 (unlimited).
		panic(err)
	}
	return cuts
}

// CloseWithLimit behaves like Close but returns ErrCutLimitExceeded
// instead of looping forever if the closure hasn't converged after
// maxRounds worklist rounds. maxRounds must be >= 0.
func CloseWithLimit[Pt, Circ, Dsk, Arc, Arcs any](t geom.Trait[Pt, Circ, Dsk, Arc, Arcs], moves []geom.Move[Dsk], maxRounds int, progress func(Stats)) (*geom.CutMap[Circ, Arcs], error) {
	return run(t, moves, progress, maxRounds)
}

// DedupeMoves removes moves whose disk (same circle, same increment)
// already appears earlier in the list, per spec's "duplicate moves
// contribute nothing new" testable property.
func DedupeMoves[Pt, Circ, Dsk, Arc, Arcs any](t geom.Trait[Pt, Circ, Dsk, Arc, Arcs], moves []geom.Move[Dsk]) []geom.Move[Dsk] {
	var out []geom.Move[Dsk]
	for _, m := range moves {
		dup := false
		for _, o := range out {
			if o.Increment == m.Increment && t.CircleEqual(t.DiskCircle(o.Disk), t.DiskCircle(m.Disk)) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, m)
		}
	}
	return out
}

func run[Pt, Circ, Dsk, Arc, Arcs any](t geom.Trait[Pt, Circ, Dsk, Arc, Arcs], moves []geom.Move[Dsk], progress func(Stats), maxRounds int) (*geom.CutMap[Circ, Arcs], error) {
	moves = DedupeMoves(t, moves)

	allCuts := geom.NewCutMap[Circ, Arcs](t.CircleHash, t.CircleEqual)
	for _, m := range moves {
		c := t.DiskCircle(m.Disk)
		allCuts.Set(c, t.FullArcs(c))
	}

	toProcess := make([]*geom.CutMap[Circ, Arcs], len(moves))
	for i := range moves {
		toProcess[i] = geom.NewCutMap[Circ, Arcs](t.CircleHash, t.CircleEqual)
	}
	for i, m := range moves {
		ownCircle := t.DiskCircle(m.Disk)
		allCuts.Each(func(c Circ, a Arcs) {
			if t.CircleEqual(c, ownCircle) {
				return
			}
			toProcess[i].Set(c, a)
		})
	}

	stats := Stats{}
	for {
		idx := -1
		for i, tp := range toProcess {
			if tp.Len() > 0 {
				idx = i
				break
			}
		}
		if idx == -1 {
			break
		}
		if maxRounds >= 0 && stats.Rounds >= maxRounds {
			return allCuts, &ErrCutLimitExceeded{Limit: maxRounds}
		}
		stats.Rounds++

		m := moves[idx]
		worklist := toProcess[idx]
		toProcess[idx] = geom.NewCutMap[Circ, Arcs](t.CircleHash, t.CircleEqual)

		worklist.Each(func(_ Circ, arcsOnCircle Arcs) {
			segment := t.ArcsIntersectDisk(arcsOnCircle, m.Disk)
			if !t.ArcsNonEmpty(segment) {
				return
			}
			for _, theta := range m.NonzeroAngles {
				rotated := t.ArcsRotate(segment, t.DiskCenter(m.Disk), theta)
				rc := t.ArcsCircle(rotated)

				existing, ok := allCuts.Get(rc)
				if !ok {
					existing = t.EmptyArcs(rc)
				}
				allCuts.Set(rc, t.ArcsUnion(existing, rotated))

				fresh := t.ArcsDifference(rotated, existing)
				if !t.ArcsNonEmpty(fresh) {
					continue
				}
				for j, other := range moves {
					if j == idx {
						continue
					}
					ownCircle := t.DiskCircle(other.Disk)
					if t.CircleEqual(rc, ownCircle) {
						continue
					}
					prev, ok := toProcess[j].Get(rc)
					if ok {
						toProcess[j].Set(rc, t.ArcsUnion(prev, fresh))
					} else {
						toProcess[j].Set(rc, fresh)
					}
				}
			}
		})
		stats.CutCircles = allCuts.Len()
		if progress != nil {
			progress(stats)
		}
	}
	return allCuts, nil
}
