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
	"github.com/jetsetilly/glesbench/shaders"
)

// Fill draws a solid colour.
type Fill struct {
	prog   *program
	target *framebuffer.Framebuffer
	mesh   gles.Mesh
	color  Color
}

// NewFill is the preferred method of initialisation for the Fill type.
func NewFill(p Params) (*Fill, error) {
	if err := checkParams(KindFill, p, true); err != nil {
		return nil, err
	}

	prog, err := newProgram(p.Device, KindFill, shaders.Fill, false, "color")
	if err != nil {
		return nil, err
	}

	return &Fill{
		prog:   prog,
		target: p.Target,
		mesh:   p.Mesh,
		color:  p.FillColor,
	}, nil
}

// Name implements the Stage interface.
func (stg *Fill) Name() string {
	return KindFill.Label()
}

// Kind implements the Stage interface.
func (stg *Fill) Kind() Kind {
	return KindFill
}

// Render implements the Stage interface.
func (stg *Fill) Render(_ Environment) {
	stg.prog.use(stg.target)
	stg.prog.setColor("color", stg.color)
	stg.prog.draw(stg.mesh)
}

// Release implements the Stage interface.
func (stg *Fill) Release() {
	stg.prog.release()
}

// the frequency of the checkerboard pattern. the number of squares in each
// direction is twice this value.
const checkerboardFrequency = 16.0

// Checkerboard draws a red and blue checkerboard pattern.
type Checkerboard struct {
	prog   *program
	target *framebuffer.Framebuffer
	mesh   gles.Mesh
}

// NewCheckerboard is the preferred method of initialisation for the
// Checkerboard type.
func NewCheckerboard(p Params) (*Checkerboard, error) {
	if err := checkParams(KindCheckerboard, p, true); err != nil {
		return nil, err
	}

	prog, err := newProgram(p.Device, KindCheckerboard, shaders.Checkerboard, true, "color1", "color2", "frequency")
	if err != nil {
		return nil, err
	}

	return &Checkerboard{
		prog:   prog,
		target: p.Target,
		mesh:   p.Mesh,
	}, nil
}

// Name implements the Stage interface.
func (stg *Checkerboard) Name() string {
	return KindCheckerboard.Label()
}

// Kind implements the Stage interface.
func (stg *Checkerboard) Kind() Kind {
	return KindCheckerboard
}

// Render implements the Stage interface.
func (stg *Checkerboard) Render(_ Environment) {
	stg.prog.use(stg.target)
	stg.prog.setColor("color1", Red)
	stg.prog.setColor("color2", Blue)
	stg.prog.setFloat("frequency", checkerboardFrequency)
	stg.prog.draw(stg.mesh)
}

// Release implements the Stage interface.
func (stg *Checkerboard) Release() {
	stg.prog.release()
}
