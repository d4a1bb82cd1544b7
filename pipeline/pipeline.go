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

package pipeline

import (
	"github.com/jetsetilly/glesbench/framebuffer"
	"github.com/jetsetilly/glesbench/gles"
	"github.com/jetsetilly/glesbench/logger"
	"github.com/jetsetilly/glesbench/stages"
)

// Pipeline is an ordered list of stages. Stages are rendered in the order
// they were added.
type Pipeline struct {
	ctx    *gles.Context
	stages []stages.Stage

	// resources owned by the pipeline. released after the stages
	framebuffers []*framebuffer.Framebuffer
	meshes       []gles.Mesh
}

// NewPipeline is the preferred method of initialisation for the Pipeline
// type.
func NewPipeline(ctx *gles.Context) *Pipeline {
	return &Pipeline{
		ctx: ctx,
	}
}

// AddStage appends the stage to the pipeline. The pipeline takes ownership
// of the stage.
func (p *Pipeline) AddStage(stg stages.Stage) {
	p.stages = append(p.stages, stg)
}

// Stages returns the stages in execution order. The returned slice should
// not be modified.
func (p *Pipeline) Stages() []stages.Stage {
	return p.stages
}

// Len returns the number of stages in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// ownFramebuffer adds a framebuffer to the list of resources released by Release().
func (p *Pipeline) ownFramebuffer(fb *framebuffer.Framebuffer) {
	p.framebuffers = append(p.framebuffers, fb)
}

// ownMesh adds a mesh to the list of resources released by Release().
func (p *Pipeline) ownMesh(mesh gles.Mesh) {
	p.meshes = append(p.meshes, mesh)
}

// Render one frame. Every stage is rendered in order and the display is
// presented once.
func (p *Pipeline) Render() {
	p.Draw()
	p.Present()
}

// Draw renders every stage in order without presenting the display. The
// result can be read from the display framebuffer until Present() is called.
func (p *Pipeline) Draw() {
	p.ctx.Device.Viewport(0, 0, p.ctx.Width, p.ctx.Height)

	env := stages.Environment{
		Width:  p.ctx.Width,
		Height: p.ctx.Height,
	}

	for i, stg := range p.stages {
		env.Index = i
		stg.Render(env)
	}
}

// Present swaps the display buffers. The content of the back buffer is
// undefined afterwards.
func (p *Pipeline) Present() {
	p.ctx.Display.SwapBuffers()
}

// Release every stage and then every framebuffer and mesh owned by the
// pipeline. The pipeline is empty after this call.
func (p *Pipeline) Release() {
	for _, stg := range p.stages {
		stg.Release()
	}
	for _, fb := range p.framebuffers {
		fb.Release(p.ctx.Device)
	}
	for _, m := range p.meshes {
		p.ctx.Device.DeleteMesh(m)
	}

	logger.Logf(logger.Allow, "pipeline", "released %d stages, %d framebuffers, %d meshes",
		len(p.stages), len(p.framebuffers), len(p.meshes))

	p.stages = p.stages[:0]
	p.framebuffers = p.framebuffers[:0]
	p.meshes = p.meshes[:0]
}
