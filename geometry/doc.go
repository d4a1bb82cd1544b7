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

// Package geometry generates the vertex data used by the stages of a
// pipeline. The only geometry currently supported is the Grid, a plane in
// normalised device coordinates that has been subdivided into quads. Each
// quad is made of two triangles.
//
// A grid with a subdivision level of zero is a single quad covering the whole
// of the viewport. Higher subdivision levels do not change the area covered by
// the grid but increase the number of vertices that need to be processed.
//
// The Randomize() function moves the interior vertices of the grid. The
// outline of the grid is unchanged but the texture coordinates of each vertex
// no longer match the position of the vertex. This simulates the geometric
// correction that is sometimes required when rendering to a projector.
package geometry
