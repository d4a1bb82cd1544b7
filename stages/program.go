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
	"github.com/jetsetilly/glesbench/curated"
	"github.com/jetsetilly/glesbench/framebuffer"
	"github.com/jetsetilly/glesbench/gles"
	"github.com/jetsetilly/glesbench/shaders"
)

// the texture unit used for the source framebuffer.
const sourceUnit = 0

// program is the compiled shader program of a stage together with the
// locations of its attributes and uniforms.
type program struct {
	dev    gles.Device
	handle uint32

	position int32
	tex      int32

	uniforms map[string]int32
}

// newProgram compiles the source and resolves the named uniforms. The tex
// attribute is optional for programs that do not read the texture
// coordinate, in which case the linker is free to remove it.
//
// The program is deleted if anything fails.
func newProgram(dev gles.Device, kind Kind, src shaders.Program, texRequired bool, uniforms ...string) (*program, error) {
	handle, err := dev.CreateProgram(src)
	if err != nil {
		return nil, curated.Errorf(ProgramError, kind.Label(), err)
	}

	prog := &program{
		dev:      dev,
		handle:   handle,
		uniforms: make(map[string]int32),
	}

	prog.position = dev.AttribLocation(handle, shaders.PositionAttrib)
	if prog.position < 0 {
		prog.release()
		return nil, curated.Errorf(UnresolvedAttrib, kind.Label(), shaders.PositionAttrib)
	}

	prog.tex = dev.AttribLocation(handle, shaders.TexAttrib)
	if prog.tex < 0 && texRequired {
		prog.release()
		return nil, curated.Errorf(UnresolvedAttrib, kind.Label(), shaders.TexAttrib)
	}

	for _, name := range uniforms {
		loc := dev.UniformLocation(handle, name)
		if loc < 0 {
			prog.release()
			return nil, curated.Errorf(UnresolvedUniform, kind.Label(), name)
		}
		prog.uniforms[name] = loc
	}

	return prog, nil
}

func (prog *program) release() {
	if prog.handle != 0 {
		prog.dev.DeleteProgram(prog.handle)
		prog.handle = 0
	}
}

// use binds the target framebuffer and makes the program current.
func (prog *program) use(target *framebuffer.Framebuffer) {
	target.Bind(prog.dev)
	prog.dev.UseProgram(prog.handle)
}

// bindSource binds the texture of the source framebuffer to the named
// sampler uniform.
func (prog *program) bindSource(sampler string, source *framebuffer.Framebuffer) {
	prog.dev.ActiveTexture(sourceUnit)
	prog.dev.BindTexture(source.Texture.ID)
	prog.dev.Uniform1i(prog.uniforms[sampler], sourceUnit)
}

func (prog *program) setColor(name string, c Color) {
	prog.dev.Uniform3f(prog.uniforms[name], c.R, c.G, c.B)
}

func (prog *program) setFloat(name string, v float32) {
	prog.dev.Uniform1f(prog.uniforms[name], v)
}

func (prog *program) draw(mesh gles.Mesh) {
	prog.dev.DrawMesh(mesh, prog.position, prog.tex)
}
