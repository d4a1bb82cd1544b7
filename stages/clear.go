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

package stages

import (
	"github.com/jetsetilly/glesbench/framebuffer"
	"github.com/jetsetilly/glesbench/gles"
)

// Clear fills the target framebuffer with the clear colour and with black on
// alternate calls to Render(). The first call clears to black.
//
// Clear has no shader program and uses no geometry.
type Clear struct {
	dev    gles.Device
	target *framebuffer.Framebuffer
	color  Color

	// true if the next call to Render() should use the clear colour
	useColor bool
}

// NewClear is the preferred method of initialisation for the Clear type.
func NewClear(p Params) (*Clear, error) {
	if err := checkParams(KindClear, p, false); err != nil {
		return nil, err
	}

	return &Clear{
		dev:    p.Device,
		target: p.Target,
		color:  p.ClearColor,
	}, nil
}

// Name implements the Stage interface.
func (stg *Clear) Name() string {
	return KindClear.Label()
}

// Kind implements the Stage interface.
func (stg *Clear) Kind() Kind {
	return KindClear
}

// Render implements the Stage interface.
func (stg *Clear) Render(_ Environment) {
	stg.target.Bind(stg.dev)
	stg.dev.Viewport(0, 0, stg.target.Width, stg.target.Height)

	c := Black
	if stg.useColor {
		c = stg.color
	}
	stg.useColor = !stg.useColor

	stg.dev.ClearColor(c.R, c.G, c.B, 1.0)
	stg.dev.Clear()
}

// Release implements the Stage interface.
func (stg *Clear) Release() {
}
