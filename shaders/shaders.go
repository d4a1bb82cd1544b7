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

// Package shaders contains the GLSL source for every stage in the pipeline.
// Sources are embedded in the executable at compile time.
package shaders

import _ "embed"

//go:embed "plane.vert"
var planeVertexShader string

//go:embed "fill.frag"
var fillShader string

//go:embed "checkerboard.frag"
var checkerboardShader string

//go:embed "copy.frag"
var copyShader string

//go:embed "copyone.frag"
var copyOneShader string

//go:embed "deinterlace.frag"
var deinterlaceShader string

//go:embed "colorcorrect.frag"
var colorCorrectShader string

// Program is the source for a complete shader program. The Name field
// identifies the program to devices that need to know what the program does
// without compiling the GLSL (the software device for example).
type Program struct {
	Name     string
	Vertex   string
	Fragment string
}

// The programs used by the pipeline stages. All programs share the same
// vertex shader, which passes the texture coordinate to the fragment shader
// as vtex.
var (
	Fill         = Program{Name: "fill", Vertex: planeVertexShader, Fragment: fillShader}
	Checkerboard = Program{Name: "checkerboard", Vertex: planeVertexShader, Fragment: checkerboardShader}
	Copy         = Program{Name: "copy", Vertex: planeVertexShader, Fragment: copyShader}
	CopyOne      = Program{Name: "copyone", Vertex: planeVertexShader, Fragment: copyOneShader}
	Deinterlace  = Program{Name: "deinterlace", Vertex: planeVertexShader, Fragment: deinterlaceShader}
	ColorCorrect = Program{Name: "colorcorrect", Vertex: planeVertexShader, Fragment: colorCorrectShader}
)

// Attribute names shared by every vertex shader.
const (
	PositionAttrib = "position"
	TexAttrib      = "tex"
)

// Attribute locations bound before the program is linked.
const (
	PositionLocation = 0
	TexLocation      = 1
)
