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

package geometry_test

import (
	"testing"

	"github.com/jetsetilly/glesbench/curated"
	"github.com/jetsetilly/glesbench/geometry"
	"github.com/jetsetilly/glesbench/random"
	"github.com/jetsetilly/glesbench/test"
)

func TestGridCounts(t *testing.T) {
	for s := uint(0); s <= geometry.MaxSubdivisions; s++ {
		grid, err := geometry.NewGrid(s)
		test.DemandSuccess(t, err)

		n := 1 << s
		test.ExpectEquality(t, grid.Rows, n)
		test.ExpectEquality(t, grid.Cols, n)
		test.ExpectEquality(t, grid.NumVertices(), (n+1)*(n+1))
		test.ExpectEquality(t, grid.NumTriangles(), n*n*2)
		test.ExpectEquality(t, grid.NumIndices(), n*n*6)
		test.ExpectEquality(t, len(grid.Vertices), grid.NumVertices()*3)
		test.ExpectEquality(t, len(grid.UV), grid.NumVertices()*2)
		test.ExpectEquality(t, len(grid.Indices), grid.NumIndices())

		for _, idx := range grid.Indices {
			if int(idx) >= grid.NumVertices() {
				t.Fatalf("index %d out of range for %d vertices", idx, grid.NumVertices())
			}
		}
	}
}

func TestTooManySubdivisions(t *testing.T) {
	grid, err := geometry.NewGrid(geometry.MaxSubdivisions + 1)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, geometry.TooManySubdivisions))
	test.ExpectSuccess(t, grid == nil)
}

func TestCorners(t *testing.T) {
	for s := uint(0); s <= 4; s++ {
		grid, err := geometry.NewGrid(s)
		test.DemandSuccess(t, err)

		corners := [][2]int{{0, 0}, {grid.Cols, 0}, {0, grid.Rows}, {grid.Cols, grid.Rows}}
		for _, c := range corners {
			u, v := grid.TexCoord(c[0], c[1])
			test.ExpectEquality(t, u, float32(c[0]/grid.Cols))
			test.ExpectEquality(t, v, float32(c[1]/grid.Rows))

			x, y, z := grid.Position(c[0], c[1])
			test.ExpectEquality(t, x, float32(-1+2*(c[0]/grid.Cols)))
			test.ExpectEquality(t, y, float32(-1+2*(c[1]/grid.Rows)))
			test.ExpectEquality(t, z, float32(0))
		}
	}
}

func TestWinding(t *testing.T) {
	grid, err := geometry.NewGrid(1)
	test.DemandSuccess(t, err)

	// 3x3 vertices. first quad is made of vertices 0, 1, 3 and 4
	expected := []uint16{
		0, 1, 3, 1, 4, 3,
		1, 2, 4, 2, 5, 4,
		3, 4, 6, 4, 7, 6,
		4, 5, 7, 5, 8, 7,
	}
	test.DemandEquality(t, len(grid.Indices), len(expected))
	for i := range expected {
		test.ExpectEquality(t, grid.Indices[i], expected[i])
	}

	// every triangle has the same (counter-clockwise) winding
	for tri := 0; tri < grid.NumTriangles(); tri++ {
		i := grid.Indices[tri*3:]
		x0, y0, _ := grid.Position(int(i[0])%(grid.Cols+1), int(i[0])/(grid.Cols+1))
		x1, y1, _ := grid.Position(int(i[1])%(grid.Cols+1), int(i[1])/(grid.Cols+1))
		x2, y2, _ := grid.Position(int(i[2])%(grid.Cols+1), int(i[2])/(grid.Cols+1))
		area := (x1-x0)*(y2-y0) - (x2-x0)*(y1-y0)
		test.ExpectSuccess(t, area > 0)
	}
}

func TestRandomize(t *testing.T) {
	rnd := random.NewSeededRandom(1201)

	for s := uint(0); s <= 5; s++ {
		original, err := geometry.NewGrid(s)
		test.DemandSuccess(t, err)
		grid, err := geometry.NewGrid(s)
		test.DemandSuccess(t, err)

		grid.Randomize(rnd)

		dx := 0.25 / float32(grid.Cols)
		dy := 0.25 / float32(grid.Rows)

		for j := 0; j <= grid.Rows; j++ {
			for i := 0; i <= grid.Cols; i++ {
				ox, oy, oz := original.Position(i, j)
				x, y, z := grid.Position(i, j)
				test.ExpectEquality(t, z, oz)

				if i == 0 || i == grid.Cols || j == 0 || j == grid.Rows {
					test.ExpectEquality(t, x, ox)
					test.ExpectEquality(t, y, oy)
					continue
				}

				if x < ox-dx || x > ox+dx {
					t.Errorf("vertex (%d,%d) moved too far on x axis: %f to %f", i, j, ox, x)
				}
				if y < oy-dy || y > oy+dy {
					t.Errorf("vertex (%d,%d) moved too far on y axis: %f to %f", i, j, oy, y)
				}
			}
		}

		// texture coordinates are never changed
		for i := range grid.UV {
			test.ExpectEquality(t, grid.UV[i], original.UV[i])
		}
	}
}
