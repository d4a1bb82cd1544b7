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

// Package gles defines the graphics device used by the rendering pipeline.
//
// The Device interface is a small subset of the OpenGL API: enough to compile
// shader programs, create textures and framebuffers, upload geometry and draw
// it. There are two implementations. The gl32 package uses a real OpenGL 3.2
// context and the software package renders on the CPU.
//
// The Display interface is the onscreen surface. It is implemented by the
// sdlwindow package and by the software package.
//
// A Context ties a Device and a Display together with the dimensions and
// colour depth of the display.
package gles
