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

package gles

// Display is the onscreen surface that the final stage of a pipeline draws
// to.
type Display interface {
	// the size of the display in pixels
	Size() (int32, int32)

	// the colour depth of the display in bits per pixel
	Depth() int

	// SwapBuffers presents the most recently drawn frame.
	SwapBuffers()

	// Destroy the display. The display should not be used after this call.
	Destroy() error
}
