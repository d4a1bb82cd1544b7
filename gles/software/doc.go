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

// Package software implements the gles.Device and gles.Display interfaces
// on the CPU.
//
// The device keeps tables of programs, textures, framebuffers and meshes in
// the same way an OpenGL driver would. Textures and the display are stored
// as 8 bit RGB values with row zero at the bottom. Triangles are rasterized
// by testing the centre of every pixel in the triangle's bounding box with
// barycentric weights, and textures are sampled with bilinear filtering,
// clamped to the edge.
//
// GLSL is not executed. When a program is created the attribute and uniform
// declarations are read from the GLSL source and the program is paired with a
// Go implementation of the fragment shader, chosen by the name of the
// program. A program with a name that has no Go implementation fails to link.
package software
