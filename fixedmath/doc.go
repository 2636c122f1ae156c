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

// Package fixedmath implements a fixed-precision decimal scalar, Fixed,
// with fuzzy equality and hashing, plus the transcendental functions the
// geometry packages need (sqrt, asin, acos, atan, atan2 mod 2π, sin, cos).
//
// A Fixed stores its value as a big.Int scaled by 10^computeScale places.
// Equality, ordering and hashing round through a coarser compareScale
// after adding a random, process-lifetime-stable offset: two values that
// land on the same compareScale-rounded bucket are indistinguishable to
// every consumer in this module, including map/set membership. This is
// what lets the closure engine treat "the same circle discovered twice by
// independent rotation paths" as literally the same map key.
package fixedmath
