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
	"github.com/jetsetilly/glesbench/geometry"
	"github.com/jetsetilly/glesbench/shaders"
)

// DisplayFramebuffer is the framebuffer ID of the display.
const DisplayFramebuffer = 0

// Mesh is geometry that has been uploaded to the device. Meshes are created
// with Device.NewMesh() and must be released with Device.DeleteMesh().
type Mesh interface {
	// the number of indices to draw
	Count() int32
}

// Device is the graphics device. Each method corresponds to one or more
// OpenGL calls.
//
// Devices are not safe for concurrent use. With an OpenGL context all calls
// must happen on the thread the context was created on.
type Device interface {
	// CreateProgram compiles and links a shader program. The position
	// attribute is bound to shaders.PositionLocation and the tex attribute to
	// shaders.TexLocation before linking. Any compile or link error will
	// contain the log from the shader compiler.
	CreateProgram(prog shaders.Program) (uint32, error)

	// DeleteProgram frees the program and any shaders attached to it.
	DeleteProgram(program uint32)

	// AttribLocation and UniformLocation return -1 if the name is not active
	// in the program.
	AttribLocation(program uint32, name string) int32
	UniformLocation(program uint32, name string) int32

	UseProgram(program uint32)

	// uniform values are applied to the program most recently passed to
	// UseProgram(). A location of -1 is silently ignored.
	Uniform1i(location int32, v int32)
	Uniform1f(location int32, v float32)
	Uniform3f(location int32, x float32, y float32, z float32)

	// GenTexture allocates a new texture name and TexImage2D allocates RGB
	// storage for it. Textures use linear filtering and clamp to edge.
	GenTexture() uint32
	TexImage2D(texture uint32, width int32, height int32)
	DeleteTexture(texture uint32)

	// ActiveTexture selects the texture unit for subsequent calls to
	// BindTexture().
	ActiveTexture(unit uint32)
	BindTexture(texture uint32)

	// GenFramebuffer allocates a new framebuffer name. FramebufferTexture2D
	// binds the framebuffer and attaches the texture as colour attachment
	// zero. CheckFramebufferStatus returns an error if the currently bound
	// framebuffer is not complete.
	GenFramebuffer() uint32
	FramebufferTexture2D(framebuffer uint32, texture uint32)
	CheckFramebufferStatus() error
	DeleteFramebuffer(framebuffer uint32)

	// BindFramebuffer makes the framebuffer the target of subsequent draw
	// and clear calls. Use DisplayFramebuffer for the display.
	BindFramebuffer(framebuffer uint32)

	Viewport(x int32, y int32, width int32, height int32)
	ClearColor(r float32, g float32, b float32, a float32)
	Clear()

	// NewMesh uploads the vertices, texture coordinates and indices of the
	// grid to the device.
	NewMesh(grid *geometry.Grid) (Mesh, error)
	DeleteMesh(mesh Mesh)

	// DrawMesh draws the mesh as indexed triangles with the current program.
	// A negative location means the attribute is not used by the program.
	DrawMesh(mesh Mesh, position int32, tex int32)

	// ReadPixels copies an area of the currently bound framebuffer into
	// pixels as RGBA values. Row zero is the bottom of the framebuffer.
	ReadPixels(x int32, y int32, width int32, height int32, pixels []uint8)
}
