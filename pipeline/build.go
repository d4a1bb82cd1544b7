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
	"github.com/jetsetilly/glesbench/curated"
	"github.com/jetsetilly/glesbench/framebuffer"
	"github.com/jetsetilly/glesbench/geometry"
	"github.com/jetsetilly/glesbench/gles"
	"github.com/jetsetilly/glesbench/logger"
	"github.com/jetsetilly/glesbench/random"
	"github.com/jetsetilly/glesbench/stages"
)

// Sentinal errors returned by Build().
const (
	NoStages   = "pipeline: no stages"
	BuildError = "pipeline: stage %d (%s): %v"
	MeshError  = "pipeline: %s mesh: %v"
)

// Build a pipeline from a list of stage names. The names are those
// recognised by stages.ParseKind().
//
// If any part of the pipeline cannot be created then everything created so
// far is released and the error is returned.
func Build(ctx *gles.Context, cfg Config, names []string) (*Pipeline, error) {
	if len(names) == 0 {
		return nil, curated.Errorf(NoStages)
	}

	// parse every name before allocating anything
	kinds := make([]stages.Kind, len(names))
	for i, n := range names {
		k, err := stages.ParseKind(n)
		if err != nil {
			return nil, err
		}
		kinds[i] = k
	}

	p := NewPipeline(ctx)

	err := p.build(cfg, kinds)
	if err != nil {
		p.Release()
		return nil, err
	}

	return p, nil
}

func (p *Pipeline) newMesh(name string, subdivisions uint, rnd Random) (gles.Mesh, error) {
	grid, err := geometry.NewGrid(subdivisions)
	if err != nil {
		return nil, curated.Errorf(MeshError, name, err)
	}

	if rnd != nil {
		grid.Randomize(rnd)
	}

	mesh, err := p.ctx.Device.NewMesh(grid)
	if err != nil {
		return nil, curated.Errorf(MeshError, name, err)
	}
	p.ownMesh(mesh)

	logger.Logf(logger.Allow, "pipeline", "%s mesh: %dx%d grid, %d triangles", name, grid.Cols, grid.Rows, grid.NumTriangles())

	return mesh, nil
}

func (p *Pipeline) build(cfg Config, kinds []stages.Kind) error {
	dev := p.ctx.Device

	plane, err := p.newMesh("plane", 0, nil)
	if err != nil {
		return err
	}

	var rnd Random
	if cfg.Transform {
		rnd = cfg.Random
		if rnd == nil {
			rnd = random.NewRandom()
		}
	}

	output, err := p.newMesh("output", cfg.Subdivisions, rnd)
	if err != nil {
		return err
	}

	params := stages.DefaultParams(dev)
	params.FillColor = cfg.FillColor
	params.ClearColor = cfg.ClearColor
	params.Add = cfg.Add
	params.Factor = cfg.Factor

	last := len(kinds) - 1

	for i, k := range kinds {
		params.Source = params.Target

		if i == last {
			params.Target = framebuffer.NewDisplay(p.ctx.Width, p.ctx.Height)
			params.Mesh = output
		} else {
			fb, err := framebuffer.NewOffscreen(dev, p.ctx.Width, p.ctx.Height)
			if err != nil {
				return curated.Errorf(BuildError, i, k, err)
			}
			p.ownFramebuffer(fb)
			params.Target = fb
			params.Mesh = plane
		}

		stg, err := stages.New(k, params)
		if err != nil {
			return curated.Errorf(BuildError, i, k, err)
		}

		if cfg.Regenerate || i > 0 {
			p.AddStage(stg)
			logger.Logf(logger.Allow, "pipeline", "stage %d: %s", i, stg.Name())
			continue
		}

		// bake the first stage. the viewport is set in the same way as
		// Render() would
		dev.Viewport(0, 0, p.ctx.Width, p.ctx.Height)
		stg.Render(stages.Environment{Width: p.ctx.Width, Height: p.ctx.Height, Index: i})
		stg.Release()
		logger.Logf(logger.Allow, "pipeline", "stage %d: %s (baked)", i, stg.Name())
	}

	return nil
}
