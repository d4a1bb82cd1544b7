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

// Package stages implements the rendering stages that make up a pipeline.
//
// Every stage draws to a target framebuffer. Generator stages (Fill,
// Checkerboard and Clear) need nothing else. Sampling stages (Copy, CopyOne,
// Deinterlace and ColorCorrect) read the texture of a source framebuffer,
// which is the target of the previous stage in the pipeline.
//
// Stages own their shader program and must be released when they are no
// longer needed. Framebuffers and meshes passed to a stage in the Params type
// are borrowed and are never released by the stage. The exception is the
// ColorCorrect stage, which creates and owns a mesh if it isn't given one.
//
// Stages are created with New() or with the constructor for a specific
// variant. The Kind type identifies the variant and can be parsed from the
// stage names used on the command line.
package stages
