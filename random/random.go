// This file is part of glesbench.
//
// glesbench is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// glesbench is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with glesbench.  If not, see <https://www.gnu.org/licenses/>.

package random

import (
	"math/rand"
	"time"
)

// Random is a source of uniformly distributed random numbers.
type Random struct {
	rnd *rand.Rand
}

// NewRandom creates a new Random instance seeded with the current time.
func NewRandom() *Random {
	return NewSeededRandom(time.Now().UnixNano())
}

// NewSeededRandom creates a new Random instance with the specified seed. Two
// instances created with the same seed will produce the same sequence of
// numbers.
func NewSeededRandom(seed int64) *Random {
	return &Random{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// Uniform returns a random number in the range [min,max).
func (rnd *Random) Uniform(min float32, max float32) float32 {
	return min + (max-min)*rnd.rnd.Float32()
}
