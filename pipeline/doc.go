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

// Package pipeline chains stages together and renders them once per frame.
//
// A Pipeline is usually created with Build() from a list of stage names.
// Each stage draws to its own offscreen framebuffer, which is the source for
// the next stage, and the last stage draws to the display. Stages before the
// last draw a single plane. The last stage draws a grid that can be
// subdivided and randomized.
//
// Without the Regenerate option the first stage is baked: it is rendered once
// while the pipeline is being built and is not rendered again.
//
// The Pipeline owns the framebuffers and meshes created by Build() and
// releases them, along with every stage, in Release().
package pipeline
