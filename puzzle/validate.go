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

package puzzle

import "fmt"

// ValidationError collects every testable-property failure Validate
// found; Error joins them with "; " so callers that just want a single
// line can print it directly.
type ValidationError struct {
	Failures []string
}

func (e *ValidationError) Error() string {
	msg := "puzzle: failed validation:"
	for _, f := range e.Failures {
		msg += " " + f + ";"
	}
	return msg
}

// Validate runs the §8 testable-property checks against the already
// (or newly) computed derived views: every move's permutation must be
// a bijection on [0, N), and applying a move's permutation increment
// times must return every part to itself (spec §8 properties 1-3).
// It does not itself run the closure engine's non-termination guard;
// callers of a possibly-jumbling puzzle should use NewWithLimit so
// Validate fails fast with ErrCutLimitExceeded instead of hanging.
func (p *Puzzle[Pt, Circ, Dsk, Arc, Arcs]) Validate() error {
	parts, err := p.Parts()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotValidated, err)
	}
	perms, err := p.PartPermutations()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotValidated, err)
	}

	var failures []string
	n := len(parts)
	for i, perm := range perms {
		if !isBijection(perm.Permutation, n) {
			failures = append(failures, fmt.Sprintf("move %d's permutation is not a bijection on [0,%d)", i, n))
			continue
		}
		k := p.moves[i].Increment
		if !isIdentityAfterKApplications(perm.Permutation, k) {
			failures = append(failures, fmt.Sprintf("move %d's permutation does not return to identity after %d applications", i, k))
		}
	}
	if len(failures) > 0 {
		return &ValidationError{Failures: failures}
	}
	return nil
}

func isBijection(perm []int, n int) bool {
	if len(perm) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range perm {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

func isIdentityAfterKApplications(perm []int, k int) bool {
	n := len(perm)
	cur := make([]int, n)
	for i := range cur {
		cur[i] = i
	}
	for step := 0; step < k; step++ {
		next := make([]int, n)
		for i, v := range cur {
			next[i] = perm[v]
		}
		cur = next
	}
	for i, v := range cur {
		if v != i {
			return false
		}
	}
	return true
}
