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
	"math"

	"github.com/jetsetilly/glesbench/gles"
)

// surface is an RGB image with row zero at the bottom. Used for textures and
// for the display buffers.
type surface struct {
	width  int32
	height int32
	pix    []uint8
}

// newSurface allocates pixel data only if both dimensions are in the range
// 1 to gles.MaxDisplaySize. The dimensions are kept in either case.
func newSurface(width int32, height int32) surface {
	s := surface{
		width:  width,
		height: height,
	}
	if width > 0 && height > 0 && width <= gles.MaxDisplaySize && height <= gles.MaxDisplaySize {
		s.pix = make([]uint8, int(width)*int(height)*3)
	}
	return s
}

func (s *surface) allocated() bool {
	return len(s.pix) > 0
}

func quantise(v float32) uint8 {
	if v <= 0.0 {
		return 0
	}
	if v >= 1.0 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}

func (s *surface) set(x int32, y int32, c rgb) {
	i := (y*s.width + x) * 3
	s.pix[i] = quantise(c[0])
	s.pix[i+1] = quantise(c[1])
	s.pix[i+2] = quantise(c[2])
}

func (s *surface) fill(c rgb) {
	r := quantise(c[0])
	g := quantise(c[1])
	b := quantise(c[2])
	for i := 0; i < len(s.pix); i += 3 {
		s.pix[i] = r
		s.pix[i+1] = g
		s.pix[i+2] = b
	}
}

// texel coordinates are clamped to the edge of the surface.
func (s *surface) texel(x int32, y int32) rgb {
	x = min(max(x, 0), s.width-1)
	y = min(max(y, 0), s.height-1)
	i := (y*s.width + x) * 3
	return rgb{
		float32(s.pix[i]) / 255.0,
		float32(s.pix[i+1]) / 255.0,
		float32(s.pix[i+2]) / 255.0,
	}
}

// sample with bilinear filtering. texel centres are at half-integer
// coordinates in the same way as OpenGL.
func (s *surface) sample(u float32, v float32) rgb {
	if !s.allocated() {
		return rgb{}
	}

	x := u*float32(s.width) - 0.5
	y := v*float32(s.height) - 0.5

	x0 := float32(math.Floor(float64(x)))
	y0 := float32(math.Floor(float64(y)))
	fx := x - x0
	fy := y - y0

	ix := int32(x0)
	iy := int32(y0)

	c00 := s.texel(ix, iy)
	c10 := s.texel(ix+1, iy)
	c01 := s.texel(ix, iy+1)
	c11 := s.texel(ix+1, iy+1)

	var c rgb
	for i := range c {
		bottom := c00[i] + (c10[i]-c00[i])*fx
		top := c01[i] + (c11[i]-c01[i])*fx
		c[i] = bottom + (top-bottom)*fy
	}
	return c
}

// at returns the colour at x, y. The y coordinate counts from the bottom of
// the surface.
func (s *surface) at(x int, y int) color.RGBA {
	if !s.allocated() || x < 0 || y < 0 || x >= int(s.width) || y >= int(s.height) {
		return color.RGBA{}
	}
	i := (y*int(s.width) + x) * 3
	return color.RGBA{R: s.pix[i], G: s.pix[i+1], B: s.pix[i+2], A: 255}
}
