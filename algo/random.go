// Copyright 2025 algosharp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package algo

import (
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"
)

// Random is a source of uniformly distributed integers.
type Random interface {
	// IntRange returns a uniformly distributed integer in
	// [minInclusive, maxExclusive). It panics if maxExclusive <= minInclusive.
	IntRange(minInclusive, maxExclusive int) int
}

// seed is shared by every generator handed out by DefaultRandom. Each new
// generator takes the next value, so concurrent callers never share state
// and never produce identical sequences.
var seed atomic.Uint64

func init() {
	seed.Store(uint64(time.Now().UnixNano()))
}

var generators = sync.Pool{
	New: func() any {
		s := seed.Add(1)
		return rand.New(rand.NewPCG(s, s))
	},
}

type sharedRandom struct{}

func (sharedRandom) IntRange(minInclusive, maxExclusive int) int {
	r := generators.Get().(*rand.Rand)
	v := minInclusive + r.IntN(maxExclusive-minInclusive)
	generators.Put(r)
	return v
}

// DefaultRandom returns a Random that is safe for concurrent use. Callers
// borrow an independent generator for the duration of each call, so there is
// no contended shared state.
func DefaultRandom() Random {
	return sharedRandom{}
}

// SeededRandom is a deterministic Random. It is not safe for concurrent use.
type SeededRandom struct {
	rng *rand.Rand
}

// NewRandom returns a deterministic Random seeded with s.
func NewRandom(s uint64) *SeededRandom {
	return &SeededRandom{rng: rand.New(rand.NewPCG(s, s))}
}

// IntRange implements Random.
func (r *SeededRandom) IntRange(minInclusive, maxExclusive int) int {
	return minInclusive + r.rng.IntN(maxExclusive-minInclusive)
}
