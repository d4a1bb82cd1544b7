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

// Package framebuffer wraps the framebuffers used by the pipeline.
//
// There are two kinds of Framebuffer. An offscreen framebuffer owns a texture
// that is attached as its colour buffer. The texture can be sampled by a later
// stage of the pipeline. The display framebuffer is the onscreen surface. It
// has no texture and cannot be sampled.
package framebuffer
