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

import (
	"fmt"

	"github.com/akh3nakh/circlepuzzle/fixedmath"
)

// Move is a generating rotation of a circle puzzle: rotate everything
// inside Disk by 2π/Increment, Increment-1 times (Increment itself
// returns the disk to its starting position and contributes no cut).
type Move[Dsk any] struct {
	Disk      Dsk
	Increment int

	// Angle is the single-step rotation 2π/Increment.
	Angle fixedmath.Angle
	// NonzeroAngles holds the Increment-1 distinct nonzero rotation
	// angles k·Angle for k in [1, Increment), precomputed once since
	// both the closure engine and the permutation builder need every
	// one of them repeatedly.
	NonzeroAngles []fixedmath.Angle
}

// NewMove validates increment and derives a Move's Angle and
// NonzeroAngles fields.
func NewMove[Dsk any](disk Dsk, increment int) (Move[Dsk], error) {
	if increment < 2 {
		return Move[Dsk]{}, &fixedmath.DomainError{
			Op:  "NewMove",
			Msg: fmt.Sprintf("increment must be >= 2, got %d", increment),
		}
	}
	step := fixedmath.Div(fixedmath.TwoPi(), fixedmath.FromInt64(int64(increment)))
	angle := fixedmath.NewAngle(step)

	nonzero := make([]fixedmath.Angle, increment-1)
	for k := 1; k < increment; k++ {
		nonzero[k-1] = fixedmath.NewAngle(fixedmath.Mul(step, fixedmath.FromInt64(int64(k))))
	}

	return Move[Dsk]{
		Disk:          disk,
		Increment:     increment,
		Angle:         angle,
		NonzeroAngles: nonzero,
	}, nil
}
