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

import (
	"github.com/jetsetilly/glesbench/curated"
)

// Sentinal errors returned by NewContext().
const (
	UnsupportedDepth   = "gles: unsupported colour depth (%d)"
	InvalidDisplaySize = "gles: invalid display size (%dx%d)"
)

// MaxDisplaySize is the largest width or height accepted by NewContext().
// Intermediate textures are the size of the display so the limit applies to
// every framebuffer in the pipeline.
const MaxDisplaySize = 16384

// SupportedDepths lists the colour depths that a Context can be created with.
var SupportedDepths = []int{16, 24, 30}

// Context is the rendering context shared by every part of the pipeline.
type Context struct {
	Width  int32
	Height int32
	Depth  int

	Device  Device
	Display Display
}

// NewContext is the preferred method of initialisation for the Context type.
// The dimensions and depth are taken from the display.
func NewContext(dev Device, display Display) (*Context, error) {
	ctx := &Context{
		Device:  dev,
		Display: display,
		Depth:   display.Depth(),
	}

	ctx.Width, ctx.Height = display.Size()
	if ctx.Width <= 0 || ctx.Height <= 0 || ctx.Width > MaxDisplaySize || ctx.Height > MaxDisplaySize {
		return nil, curated.Errorf(InvalidDisplaySize, ctx.Width, ctx.Height)
	}

	if !IsSupportedDepth(ctx.Depth) {
		return nil, curated.Errorf(UnsupportedDepth, ctx.Depth)
	}

	return ctx, nil
}

// IsSupportedDepth returns true if depth is one of the values in
// SupportedDepths.
func IsSupportedDepth(depth int) bool {
	for _, d := range SupportedDepths {
		if d == depth {
			return true
		}
	}
	return false
}
