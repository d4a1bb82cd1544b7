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

package random_test

import (
	"testing"

	"github.com/jetsetilly/glesbench/random"
	"github.com/jetsetilly/glesbench/test"
)

func TestSeeded(t *testing.T) {
	a := random.NewSeededRandom(1234)
	b := random.NewSeededRandom(1234)

	for i := 0; i < 100; i++ {
		test.ExpectEquality(t, a.Uniform(-1, 1), b.Uniform(-1, 1))
	}
}

func TestUniform(t *testing.T) {
	rnd := random.NewRandom()

	for i := 0; i < 1000; i++ {
		v := rnd.Uniform(-1.0, 1.0)
		test.ExpectSuccess(t, v >= -1.0 && v < 1.0)
	}
}
