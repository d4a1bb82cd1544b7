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

package gl32

import (
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/glesbench/curated"
	"github.com/jetsetilly/glesbench/geometry"
	"github.com/jetsetilly/glesbench/gles"
	"github.com/jetsetilly/glesbench/shaders"
)

// InvalidMesh is returned by NewMesh() when the grid is empty.
const InvalidMesh = "gl32: invalid mesh: %s"

// mesh is a vertex array object with one buffer for the positions, one for
// the texture coordinates and one for the indices.
type mesh struct {
	vao      uint32
	position uint32
	uv       uint32
	indices  uint32
	count    int32
}

// Count implements the gles.Mesh interface.
func (m *mesh) Count() int32 {
	return m.count
}

// NewMesh implements the gles.Device interface.
func (dev *Device) NewMesh(grid *geometry.Grid) (gles.Mesh, error) {
	if len(grid.Vertices) == 0 || len(grid.UV) == 0 || len(grid.Indices) == 0 {
		return nil, curated.Errorf(InvalidMesh, "grid has no data")
	}

	m := &mesh{
		count: int32(len(grid.Indices)),
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.position)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.position)
	gl.BufferData(gl.ARRAY_BUFFER, len(grid.Vertices)*4, gl.Ptr(grid.Vertices), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(shaders.PositionLocation, 3, gl.FLOAT, false, 0, 0)

	gl.GenBuffers(1, &m.uv)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.uv)
	gl.BufferData(gl.ARRAY_BUFFER, len(grid.UV)*4, gl.Ptr(grid.UV), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(shaders.TexLocation, 2, gl.FLOAT, false, 0, 0)

	gl.GenBuffers(1, &m.indices)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.indices)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(grid.Indices)*2, gl.Ptr(grid.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	return m, nil
}

// DeleteMesh implements the gles.Device interface.
func (dev *Device) DeleteMesh(gm gles.Mesh) {
	m, ok := gm.(*mesh)
	if !ok {
		return
	}
	gl.DeleteBuffers(1, &m.indices)
	gl.DeleteBuffers(1, &m.uv)
	gl.DeleteBuffers(1, &m.position)
	gl.DeleteVertexArrays(1, &m.vao)
}

// DrawMesh implements the gles.Device interface.
func (dev *Device) DrawMesh(gm gles.Mesh, position int32, tex int32) {
	m, ok := gm.(*mesh)
	if !ok || position < 0 {
		return
	}

	gl.BindVertexArray(m.vao)

	gl.EnableVertexAttribArray(uint32(position))
	if tex >= 0 {
		gl.EnableVertexAttribArray(uint32(tex))
	}

	gl.DrawElementsWithOffset(gl.TRIANGLES, m.count, gl.UNSIGNED_SHORT, 0)

	gl.BindVertexArray(0)
}
