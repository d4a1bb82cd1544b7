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

package framebuffer_test

import (
	"testing"

	"github.com/jetsetilly/glesbench/curated"
	"github.com/jetsetilly/glesbench/framebuffer"
	"github.com/jetsetilly/glesbench/gles"
	"github.com/jetsetilly/glesbench/gles/software"
	"github.com/jetsetilly/glesbench/test"
)

func TestOffscreen(t *testing.T) {
	dev := software.NewDevice(software.NewDisplay(64, 64, 24))

	fb, err := framebuffer.NewOffscreen(dev, 64, 32)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, fb.IsDisplay())
	test.ExpectEquality(t, fb.Width, int32(64))
	test.ExpectEquality(t, fb.Height, int32(32))
	test.DemandSuccess(t, fb.Texture != nil)
	test.ExpectEquality(t, fb.Texture.Width, int32(64))
	test.ExpectEquality(t, fb.Texture.Height, int32(32))

	test.ExpectEquality(t, dev.Live(), software.Objects{Textures: 1, Framebuffers: 1})

	fb.Release(dev)
	test.ExpectEquality(t, dev.Live(), software.Objects{})
}

func TestInvalidOffscreen(t *testing.T) {
	dev := software.NewDevice(software.NewDisplay(64, 64, 24))

	fb, err := framebuffer.NewOffscreen(dev, 0, 32)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, framebuffer.InvalidSize))
	test.ExpectSuccess(t, fb == nil)
	test.ExpectEquality(t, dev.Live(), software.Objects{})
}

// a device that never completes a framebuffer
type incompleteDevice struct {
	*software.Device
}

func (dev incompleteDevice) CheckFramebufferStatus() error {
	return curated.Errorf("incomplete")
}

func TestIncompleteOffscreen(t *testing.T) {
	dev := software.NewDevice(software.NewDisplay(64, 64, 24))

	fb, err := framebuffer.NewOffscreen(incompleteDevice{dev}, 64, 64)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, framebuffer.Incomplete))
	test.ExpectSuccess(t, curated.Has(err, "incomplete"))
	test.ExpectSuccess(t, fb == nil)

	// nothing is left allocated on the device
	test.ExpectEquality(t, dev.Live(), software.Objects{})
}

func TestDisplay(t *testing.T) {
	dev := software.NewDevice(software.NewDisplay(64, 64, 24))

	fb := framebuffer.NewDisplay(64, 64)
	test.ExpectSuccess(t, fb.IsDisplay())
	test.ExpectEquality(t, fb.ID, uint32(gles.DisplayFramebuffer))
	test.ExpectSuccess(t, fb.Texture == nil)

	// releasing the display does nothing
	fb.Release(dev)
	test.ExpectSuccess(t, fb.IsDisplay())
}
