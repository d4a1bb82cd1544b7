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

// Package benchmark contains helper functions relating to performance.
//
// Run() renders a fixed number of frames and measures how long it takes. The
// Result can calculate the frames-per-second and the throughput in
// mega-texels per second.
//
// RunProfiler() can be used to generate the various profile types around any
// function.
package benchmark
