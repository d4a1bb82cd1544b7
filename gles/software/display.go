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

package software

import (
	"image/color"
)

// Display implements the gles.Display interface. Drawing to the display
// framebuffer writes to the back buffer. SwapBuffers() exchanges the back and
// front buffers so, as with a double buffered GL surface, the content of the
// back buffer after a swap is the frame before last.
type Display struct {
	depth int
	back  surface
	front surface

	presents int
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay(width int32, height int32, depth int) *Display {
	return &Display{
		depth: depth,
		back:  newSurface(max(width, 0), max(height, 0)),
		front: newSurface(max(width, 0), max(height, 0)),
	}
}

// Size implements the gles.Display interface.
func (dsp *Display) Size() (int32, int32) {
	return dsp.back.width, dsp.back.height
}

// Depth implements the gles.Display interface.
func (dsp *Display) Depth() int {
	return dsp.depth
}

// SwapBuffers implements the gles.Display interface.
func (dsp *Display) SwapBuffers() {
	dsp.back, dsp.front = dsp.front, dsp.back
	dsp.presents++
}

// Destroy implements the gles.Display interface.
func (dsp *Display) Destroy() error {
	dsp.back = surface{}
	dsp.front = surface{}
	return nil
}

// Presents returns the number of times SwapBuffers() has been called.
func (dsp *Display) Presents() int {
	return dsp.presents
}

// Pixel returns the colour of the presented frame at x, y. Row zero is the
// bottom of the display.
func (dsp *Display) Pixel(x int, y int) color.RGBA {
	return dsp.front.at(x, y)
}
