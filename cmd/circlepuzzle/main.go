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

// Command circlepuzzle is a thin example driver: it builds the
// two-move planar puzzle from spec §8's first testable property and
// prints the resulting permutation strings. It is not the module's
// deliverable surface (spec §1 excludes CLI/visualization front-ends);
// it exists only to exercise the façade end to end.
package main

import (
	"fmt"
	"log"

	"github.com/akh3nakh/circlepuzzle/fixedmath"
	"github.com/akh3nakh/circlepuzzle/geom"
	"github.com/akh3nakh/circlepuzzle/geom/planar"
	"github.com/akh3nakh/circlepuzzle/puzzle"
)

func main() {
	lhs := planar.Circle{
		Center: planar.Point{X: fixedmath.FromFloat64(-1), Y: fixedmath.FromFloat64(0)},
		Radius: fixedmath.FromFloat64(2.5),
	}
	rhs := planar.Circle{
		Center: planar.Point{X: fixedmath.FromFloat64(1), Y: fixedmath.FromFloat64(0)},
		Radius: fixedmath.FromFloat64(2.5),
	}

	m1, err := geom.NewMove[planar.Circle](lhs, 3)
	if err != nil {
		log.Fatalf("circlepuzzle: %v", err)
	}
	m2, err := geom.NewMove[planar.Circle](rhs, 3)
	if err != nil {
		log.Fatalf("circlepuzzle: %v", err)
	}

	pz := puzzle.New[planar.Point, planar.Circle, planar.Circle, planar.Arc, planar.ArcsOnCircle](
		planar.Trait{}, []geom.Move[planar.Circle]{m1, m2})

	strs, err := pz.PermutationStrings()
	if err != nil {
		log.Fatalf("circlepuzzle: %v", err)
	}
	for i, s := range strs {
		fmt.Printf("move %d: %s\n", i, s)
	}
	fmt.Println(pz.Stats())
}
