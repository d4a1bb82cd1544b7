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

package pipeline_test

import (
	"testing"

	"github.com/jetsetilly/glesbench/curated"
	"github.com/jetsetilly/glesbench/geometry"
	"github.com/jetsetilly/glesbench/gles"
	"github.com/jetsetilly/glesbench/gles/software"
	"github.com/jetsetilly/glesbench/pipeline"
	"github.com/jetsetilly/glesbench/prefs"
	"github.com/jetsetilly/glesbench/random"
	"github.com/jetsetilly/glesbench/shaders"
	"github.com/jetsetilly/glesbench/stages"
	"github.com/jetsetilly/glesbench/test"
)

// fill is baked and copy is rendered every frame.
func TestBakedFill(t *testing.T) {
	ctx, dev, dsp := newContext(t)

	p, err := pipeline.Build(ctx, pipeline.NewConfig(), []string{"fill", "copy"})
	test.DemandSuccess(t, err)

	test.DemandEquality(t, p.Len(), 1)
	test.ExpectEquality(t, p.Stages()[0].Kind(), stages.KindCopy)

	// the fill was drawn while building the pipeline
	test.ExpectEquality(t, dev.DrawCalls(), 1)
	test.ExpectEquality(t, dsp.Presents(), 0)

	for frame := 1; frame <= 5; frame++ {
		p.Render()
		expectDisplay(t, dsp, rgba(255, 0, 0))
		test.ExpectEquality(t, dsp.Presents(), frame)
		test.ExpectEquality(t, dev.DrawCalls(), 1+frame)
	}

	p.Release()
	test.ExpectEquality(t, dev.Live(), software.Objects{})
}

func TestRegenerate(t *testing.T) {
	ctx, dev, dsp := newContext(t)

	cfg := pipeline.NewConfig()
	cfg.Regenerate = true

	p, err := pipeline.Build(ctx, cfg, []string{"fill", "copy"})
	test.DemandSuccess(t, err)
	test.DemandEquality(t, p.Len(), 2)
	test.ExpectEquality(t, p.Stages()[0].Kind(), stages.KindFill)
	test.ExpectEquality(t, dev.DrawCalls(), 0)

	p.Render()
	expectDisplay(t, dsp, rgba(255, 0, 0))
	test.ExpectEquality(t, dev.DrawCalls(), 2)

	p.Release()
	test.ExpectEquality(t, dev.Live(), software.Objects{})
}

func TestCheckerboardColorCorrect(t *testing.T) {
	ctx, dev, dsp := newContext(t)

	cfg := pipeline.NewConfig()
	cfg.Subdivisions = 2
	cfg.Factor = stages.Color{R: 2, G: 2, B: 2}

	p, err := pipeline.Build(ctx, cfg, []string{"checkerboard", "cc"})
	test.DemandSuccess(t, err)
	defer p.Release()

	p.Render()

	// red and blue are unchanged by doubling because each channel is clamped
	red := rgba(255, 0, 0)
	blue := rgba(0, 0, 255)
	test.ExpectEquality(t, dsp.Pixel(1, 1), blue)
	test.ExpectEquality(t, dsp.Pixel(5, 1), red)
	test.ExpectEquality(t, dsp.Pixel(1, 5), red)
	test.ExpectEquality(t, dsp.Pixel(5, 5), blue)
	test.ExpectEquality(t, dsp.Pixel(65, 33), blue)
	test.ExpectEquality(t, dsp.Pixel(69, 33), red)

	// baked checkerboard and one colour correct per frame
	test.ExpectEquality(t, dev.DrawCalls(), 2)
}

func TestColorCorrectFactor(t *testing.T) {
	ctx, _, dsp := newContext(t)

	cfg := pipeline.NewConfig()
	cfg.FillColor = stages.Color{R: 0.25, G: 0.25, B: 0.25}

	// identity
	p, err := pipeline.Build(ctx, cfg, []string{"fill", "cc"})
	test.DemandSuccess(t, err)
	p.Render()
	expectDisplay(t, dsp, rgba(64, 64, 64))
	p.Release()

	// doubled
	cfg.Factor = stages.Color{R: 2, G: 2, B: 2}
	p, err = pipeline.Build(ctx, cfg, []string{"fill", "cc"})
	test.DemandSuccess(t, err)
	p.Render()
	expectDisplay(t, dsp, rgba(128, 128, 128))
	p.Release()
}

func TestClearPipeline(t *testing.T) {
	ctx, _, dsp := newContext(t)

	cfg := pipeline.NewConfig()
	cfg.Regenerate = true

	p, err := pipeline.Build(ctx, cfg, []string{"clear"})
	test.DemandSuccess(t, err)
	defer p.Release()

	p.Render()
	expectDisplay(t, dsp, rgba(0, 0, 0))
	p.Render()
	expectDisplay(t, dsp, rgba(0, 255, 0))
	p.Render()
	expectDisplay(t, dsp, rgba(0, 0, 0))
}

func TestLongPipeline(t *testing.T) {
	ctx, dev, dsp := newContext(t)

	cfg := pipeline.NewConfig()
	cfg.FillColor = stages.Blue
	cfg.Subdivisions = 3
	cfg.Transform = true
	cfg.Random = random.NewSeededRandom(1201)

	names := []string{"fill", "copy", "deinterlace", "copyone", "cc"}
	p, err := pipeline.Build(ctx, cfg, names)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Len(), len(names)-1)

	// one offscreen framebuffer for every stage except the last. plus the
	// plane and the output meshes
	test.ExpectEquality(t, dev.Live(), software.Objects{
		Programs:     len(names) - 1,
		Textures:     len(names) - 1,
		Framebuffers: len(names) - 1,
		Meshes:       2,
	})

	// randomizing the output grid does not leave any pixel undrawn
	p.Render()
	expectDisplay(t, dsp, rgba(0, 0, 255))

	p.Release()
	test.ExpectEquality(t, dev.Live(), software.Objects{})
}

func TestBuildErrors(t *testing.T) {
	ctx, dev, _ := newContext(t)

	_, err := pipeline.Build(ctx, pipeline.NewConfig(), nil)
	test.ExpectSuccess(t, curated.Is(err, pipeline.NoStages))

	_, err = pipeline.Build(ctx, pipeline.NewConfig(), []string{"fill", "blur"})
	test.ExpectSuccess(t, curated.Is(err, stages.UnknownStage))

	// the first stage has no source
	_, err = pipeline.Build(ctx, pipeline.NewConfig(), []string{"copy"})
	test.ExpectSuccess(t, curated.Is(err, pipeline.BuildError))
	test.ExpectSuccess(t, curated.Has(err, stages.MissingSource))

	cfg := pipeline.NewConfig()
	cfg.Subdivisions = geometry.MaxSubdivisions + 1
	_, err = pipeline.Build(ctx, cfg, []string{"fill"})
	test.ExpectSuccess(t, curated.Is(err, pipeline.MeshError))
	test.ExpectSuccess(t, curated.Has(err, geometry.TooManySubdivisions))

	test.ExpectEquality(t, dev.Live(), software.Objects{})
}

// a device that fails to compile one program
type failingCompiler struct {
	*software.Device
	name string
}

func (dev failingCompiler) CreateProgram(prog shaders.Program) (uint32, error) {
	if prog.Name == dev.name {
		return 0, curated.Errorf("0:1: syntax error")
	}
	return dev.Device.CreateProgram(prog)
}

func TestCompileFailure(t *testing.T) {
	dsp := software.NewDisplay(size, size, 24)
	dev := software.NewDevice(dsp)
	ctx, err := gles.NewContext(failingCompiler{Device: dev, name: "deinterlace"}, dsp)
	test.DemandSuccess(t, err)

	cfg := pipeline.NewConfig()
	cfg.Regenerate = true

	p, err := pipeline.Build(ctx, cfg, []string{"fill", "copy", "deinterlace", "cc"})
	test.ExpectSuccess(t, p == nil)
	test.ExpectSuccess(t, curated.Is(err, pipeline.BuildError))
	test.ExpectSuccess(t, curated.Has(err, stages.ProgramError))
	test.ExpectSuccess(t, curated.Has(err, "0:1: syntax error"))

	// everything created before the failure has been released
	test.ExpectEquality(t, dev.Live(), software.Objects{})
}

func TestPreferences(t *testing.T) {
	ctx, _, dsp := newContext(t)

	prf, err := pipeline.NewPreferences()
	test.DemandSuccess(t, err)

	prefs.PushCommandLineStack("fill.color::0,0,1; cc.factor::0.5,0.5,0.5")
	test.ExpectSuccess(t, prf.ApplyCommandLine())
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	cfg := pipeline.NewConfig()
	prf.Apply(&cfg)
	test.ExpectEquality(t, cfg.FillColor, stages.Blue)
	test.ExpectEquality(t, cfg.ClearColor, stages.Green)
	test.ExpectEquality(t, cfg.Factor, stages.Color{R: 0.5, G: 0.5, B: 0.5})

	p, err := pipeline.Build(ctx, cfg, []string{"fill", "cc"})
	test.DemandSuccess(t, err)
	defer p.Release()
	p.Render()
	expectDisplay(t, dsp, rgba(0, 0, 128))

	w := &test.CompareWriter{}
	prf.Write(w)
	test.ExpectSuccess(t, w.Compare("fill.color::0.000,0.000,1.000\nclear.color::0.000,1.000,0.000\ncc.add::0.000,0.000,0.000\ncc.factor::0.500,0.500,0.500\n"))
}
