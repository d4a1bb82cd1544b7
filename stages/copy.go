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

// sampler is the part of a stage that reads from the source framebuffer.
type sampler struct {
	prog   *program
	target *framebuffer.Framebuffer
	source *framebuffer.Framebuffer
	mesh   gles.Mesh
}

func newSampler(kind Kind, p Params, src shaders.Program, texRequired bool, uniforms ...string) (sampler, error) {
	if err := checkParams(kind, p, true); err != nil {
		return sampler{}, err
	}

	prog, err := newProgram(p.Device, kind, src, texRequired, append([]string{"source"}, uniforms...)...)
	if err != nil {
		return sampler{}, err
	}

	return sampler{
		prog:   prog,
		target: p.Target,
		source: p.Source,
		mesh:   p.Mesh,
	}, nil
}

// begin makes the program current and binds the source texture. uniforms
// can be set after calling begin and before calling draw.
func (smp *sampler) begin() {
	smp.prog.use(smp.target)
	smp.prog.bindSource("source", smp.source)
}

func (smp *sampler) draw() {
	smp.prog.draw(smp.mesh)
}

// Release implements the Stage interface.
func (smp *sampler) Release() {
	smp.prog.release()
}

// Copy draws the source framebuffer unchanged.
type Copy struct {
	sampler
}

// NewCopy is the preferred method of initialisation for the Copy type.
func NewCopy(p Params) (*Copy, error) {
	smp, err := newSampler(KindCopy, p, shaders.Copy, true)
	if err != nil {
		return nil, err
	}
	return &Copy{sampler: smp}, nil
}

// Name implements the Stage interface.
func (stg *Copy) Name() string {
	return KindCopy.Label()
}

// Kind implements the Stage interface.
func (stg *Copy) Kind() Kind {
	return KindCopy
}

// Render implements the Stage interface.
func (stg *Copy) Render(_ Environment) {
	stg.begin()
	stg.draw()
}

// CopyOne fills the target with the colour of the centre texel of the
// source framebuffer.
type CopyOne struct {
	sampler
}

// NewCopyOne is the preferred method of initialisation for the CopyOne type.
func NewCopyOne(p Params) (*CopyOne, error) {
	smp, err := newSampler(KindCopyOne, p, shaders.CopyOne, false)
	if err != nil {
		return nil, err
	}
	return &CopyOne{sampler: smp}, nil
}

// Name implements the Stage interface.
func (stg *CopyOne) Name() string {
	return KindCopyOne.Label()
}

// Kind implements the Stage interface.
func (stg *CopyOne) Kind() Kind {
	return KindCopyOne
}

// Render implements the Stage interface.
func (stg *CopyOne) Render(_ Environment) {
	stg.begin()
	stg.draw()
}

// Deinterlace blends every line of the source framebuffer with the lines
// above and below it.
type Deinterlace struct {
	sampler
}

// NewDeinterlace is the preferred method of initialisation for the
// Deinterlace type.
func NewDeinterlace(p Params) (*Deinterlace, error) {
	smp, err := newSampler(KindDeinterlace, p, shaders.Deinterlace, true, "offset")
	if err != nil {
		return nil, err
	}
	return &Deinterlace{sampler: smp}, nil
}

// Name implements the Stage interface.
func (stg *Deinterlace) Name() string {
	return KindDeinterlace.Label()
}

// Kind implements the Stage interface.
func (stg *Deinterlace) Kind() Kind {
	return KindDeinterlace
}

// Render implements the Stage interface. The distance to the neighbouring
// lines is one line of the rendering context.
func (stg *Deinterlace) Render(env Environment) {
	stg.begin()
	if env.Height > 0 {
		stg.prog.setFloat("offset", 1.0/float32(env.Height))
	}
	stg.draw()
}
