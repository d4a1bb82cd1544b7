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

package sdlwindow

import (
	"testing"

	"github.com/jetsetilly/glesbench/test"
)

func TestPollDue(t *testing.T) {
	var polls int
	for swaps := 0; swaps <= EventInterval*10; swaps++ {
		if pollDue(swaps) {
			polls++
		}
	}
	test.ExpectEquality(t, polls, 10)

	// no frame before the first interval services the queue
	for swaps := 0; swaps < EventInterval; swaps++ {
		test.ExpectFailure(t, pollDue(swaps))
	}
	test.ExpectSuccess(t, pollDue(EventInterval))
}
