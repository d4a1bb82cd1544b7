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

package geometry

import (
	"github.com/jetsetilly/glesbench/curated"
)

// MaxSubdivisions is the largest subdivision level that can be passed to
// NewGrid(). Indices are stored as uint16 and the number of vertices in a grid
// with more subdivisions would overflow that type.
const MaxSubdivisions = 7

// Sentinal errors returned by NewGrid().
const (
	TooManySubdivisions = "geometry: too many subdivisions (%d, maximum is %d)"
)

// Grid is a plane in normalised device coordinates, subdivided into Rows x
// Cols quads. The Vertices, UV and Indices slices can be passed directly to
// the graphics device.
type Grid struct {
	Rows int
	Cols int

	// three components (x, y, z) for every vertex
	Vertices []float32

	// two components (u, v) for every vertex
	UV []float32

	// three indices for every triangle
	Indices []uint16
}

// NewGrid is the preferred method of initialisation for the Grid type. The
// number of rows and columns is 2 to the power of the subdivisions value.
func NewGrid(subdivisions uint) (*Grid, error) {
	if subdivisions > MaxSubdivisions {
		return nil, curated.Errorf(TooManySubdivisions, subdivisions, MaxSubdivisions)
	}

	n := 1 << subdivisions

	grid := &Grid{
		Rows: n,
		Cols: n,
	}

	numVertices := grid.NumVertices()
	grid.Vertices = make([]float32, numVertices*3)
	grid.UV = make([]float32, numVertices*2)

	for j := 0; j <= grid.Rows; j++ {
		v := grid.Vertices[j*(grid.Cols+1)*3:]
		t := grid.UV[j*(grid.Cols+1)*2:]

		for i := 0; i <= grid.Cols; i++ {
			v[i*3+0] = -1.0 + (2.0 * float32(i) / float32(grid.Cols))
			v[i*3+1] = -1.0 + (2.0 * float32(j) / float32(grid.Rows))
			v[i*3+2] = 0.0

			t[i*2+0] = float32(i) / float32(grid.Cols)
			t[i*2+1] = float32(j) / float32(grid.Rows)
		}
	}

	grid.Indices = make([]uint16, grid.NumIndices())

	for j := 0; j < grid.Rows; j++ {
		sx := j * (grid.Cols + 1)
		ex := (j + 1) * (grid.Cols + 1)

		for i := 0; i < grid.Cols; i++ {
			quad := j*grid.Cols + i
			v := grid.Indices[quad*6:]

			v[0] = uint16(sx + i)
			v[1] = uint16(sx + i + 1)
			v[2] = uint16(ex + i)

			v[3] = uint16(sx + i + 1)
			v[4] = uint16(ex + i + 1)
			v[5] = uint16(ex + i)
		}
	}

	return grid, nil
}

// NumVertices returns the number of vertices in the grid.
func (grid *Grid) NumVertices() int {
	return (grid.Rows + 1) * (grid.Cols + 1)
}

// NumTriangles returns the number of triangles in the grid.
func (grid *Grid) NumTriangles() int {
	return grid.Rows * grid.Cols * 2
}

// NumIndices returns the number of indices in the grid.
func (grid *Grid) NumIndices() int {
	return grid.NumTriangles() * 3
}

// Position returns the position of the vertex in column i and row j.
func (grid *Grid) Position(i int, j int) (x float32, y float32, z float32) {
	v := grid.Vertices[(j*(grid.Cols+1)+i)*3:]
	return v[0], v[1], v[2]
}

// TexCoord returns the texture coordinates of the vertex in column i and row j.
func (grid *Grid) TexCoord(i int, j int) (u float32, v float32) {
	t := grid.UV[(j*(grid.Cols+1)+i)*2:]
	return t[0], t[1]
}

// Source of random numbers used by Randomize(). Satisfied by random.Random.
type Source interface {
	Uniform(min float32, max float32) float32
}

// Randomize moves every interior vertex of the grid by a random amount. The
// amount is never more than a quarter of the width (or height) of a quad.
// Vertices on the edge of the grid are never moved so the outline of the
// grid is preserved.
func (grid *Grid) Randomize(rnd Source) {
	dx := 0.25 / float32(grid.Cols)
	dy := 0.25 / float32(grid.Rows)

	for j := 1; j < grid.Rows; j++ {
		v := grid.Vertices[j*(grid.Cols+1)*3:]

		for i := 1; i < grid.Cols; i++ {
			v[i*3+0] += rnd.Uniform(-1.0, 1.0) * dx
			v[i*3+1] += rnd.Uniform(-1.0, 1.0) * dy
		}
	}
}
