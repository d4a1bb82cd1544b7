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
	"github.com/jetsetilly/glesbench/geometry"
	"github.com/jetsetilly/glesbench/gles"
	"github.com/jetsetilly/glesbench/shaders"
)

// ColorCorrect adjusts every channel of the source framebuffer. The output
// is (input + add) * factor.
//
// If no mesh is supplied in the Params then ColorCorrect creates its own
// plane, which is released by Release().
type ColorCorrect struct {
	sampler

	// not nil if the mesh was created by the stage
	owned gles.Mesh

	add    Color
	factor Color
}

// NewColorCorrect is the preferred method of initialisation for the
// ColorCorrect type.
func NewColorCorrect(p Params) (*ColorCorrect, error) {
	var owned gles.Mesh

	if p.Mesh == nil && p.Device != nil {
		grid, err := geometry.NewGrid(0)
		if err != nil {
			return nil, err
		}
		owned, err = p.Device.NewMesh(grid)
		if err != nil {
			return nil, err
		}
		p.Mesh = owned
	}

	smp, err := newSampler(KindColorCorrect, p, shaders.ColorCorrect, true, "add", "factor")
	if err != nil {
		if owned != nil {
			p.Device.DeleteMesh(owned)
		}
		return nil, err
	}

	return &ColorCorrect{
		sampler: smp,
		owned:   owned,
		add:     p.Add,
		factor:  p.Factor,
	}, nil
}

// Name implements the Stage interface.
func (stg *ColorCorrect) Name() string {
	return KindColorCorrect.Label()
}

// Kind implements the Stage interface.
func (stg *ColorCorrect) Kind() Kind {
	return KindColorCorrect
}

// Render implements the Stage interface.
func (stg *ColorCorrect) Render(_ Environment) {
	stg.begin()
	stg.prog.setColor("add", stg.add)
	stg.prog.setColor("factor", stg.factor)
	stg.draw()
}

// Release implements the Stage interface.
func (stg *ColorCorrect) Release() {
	stg.sampler.Release()
	if stg.owned != nil {
		stg.prog.dev.DeleteMesh(stg.owned)
		stg.owned = nil
	}
}
