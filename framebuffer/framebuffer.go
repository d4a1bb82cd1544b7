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

package framebuffer

import (
	"github.com/jetsetilly/glesbench/curated"
	"github.com/jetsetilly/glesbench/gles"
)

// Sentinal errors returned by NewOffscreen().
const (
	InvalidSize = "framebuffer: invalid size (%dx%d)"
	Incomplete  = "framebuffer: %v"
)

// Texture is the colour buffer of an offscreen framebuffer.
type Texture struct {
	ID     uint32
	Width  int32
	Height int32
}

// Framebuffer is either an offscreen framebuffer or the display.
type Framebuffer struct {
	ID     uint32
	Width  int32
	Height int32

	// nil if this is the display framebuffer
	Texture *Texture
}

// NewOffscreen is the preferred method of initialisation for an offscreen
// framebuffer. The texture attached to the framebuffer has RGB storage of the
// specified size.
//
// Any objects allocated on the device are released if the framebuffer cannot
// be created.
func NewOffscreen(dev gles.Device, width int32, height int32) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, curated.Errorf(InvalidSize, width, height)
	}

	fb := &Framebuffer{
		ID:     dev.GenFramebuffer(),
		Width:  width,
		Height: height,
		Texture: &Texture{
			ID:     dev.GenTexture(),
			Width:  width,
			Height: height,
		},
	}

	dev.TexImage2D(fb.Texture.ID, width, height)
	dev.FramebufferTexture2D(fb.ID, fb.Texture.ID)

	if err := dev.CheckFramebufferStatus(); err != nil {
		dev.BindFramebuffer(gles.DisplayFramebuffer)
		fb.Release(dev)
		return nil, curated.Errorf(Incomplete, err)
	}

	return fb, nil
}

// NewDisplay is the preferred method of initialisation for the display
// framebuffer.
func NewDisplay(width int32, height int32) *Framebuffer {
	return &Framebuffer{
		ID:     gles.DisplayFramebuffer,
		Width:  width,
		Height: height,
	}
}

// IsDisplay returns true if the framebuffer is the display.
func (fb *Framebuffer) IsDisplay() bool {
	return fb.ID == gles.DisplayFramebuffer
}

// Bind the framebuffer as the target for drawing.
func (fb *Framebuffer) Bind(dev gles.Device) {
	dev.BindFramebuffer(fb.ID)
}

// Release the texture and the framebuffer. Releasing the display does
// nothing. The framebuffer should not be used after being released.
func (fb *Framebuffer) Release(dev gles.Device) {
	if fb.IsDisplay() {
		return
	}
	if fb.Texture != nil {
		dev.DeleteTexture(fb.Texture.ID)
		fb.Texture = nil
	}
	dev.DeleteFramebuffer(fb.ID)
	fb.ID = gles.DisplayFramebuffer
}
