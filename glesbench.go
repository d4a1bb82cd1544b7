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

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/glesbench/benchmark"
	"github.com/jetsetilly/glesbench/curated"
	"github.com/jetsetilly/glesbench/geometry"
	"github.com/jetsetilly/glesbench/gles"
	"github.com/jetsetilly/glesbench/gles/gl32"
	"github.com/jetsetilly/glesbench/gles/software"
	"github.com/jetsetilly/glesbench/logger"
	"github.com/jetsetilly/glesbench/modalflag"
	"github.com/jetsetilly/glesbench/pipeline"
	"github.com/jetsetilly/glesbench/prefs"
	"github.com/jetsetilly/glesbench/screenshot"
	"github.com/jetsetilly/glesbench/sdlwindow"
	"github.com/jetsetilly/glesbench/stages"
	"github.com/jetsetilly/glesbench/statsview"
	"github.com/jetsetilly/glesbench/version"
)

// size of the software display if no size is given on the command line.
const (
	defaultSoftwareWidth  = 640
	defaultSoftwareHeight = 480
)

// number of log entries written after an error
const errorLogEntries = 10

// #mainthread
func main() {
	// the GL context is only valid on the thread that created it
	runtime.LockOSThread()
	os.Exit(launch(os.Args[1:], os.Stdout, os.Stderr))
}

// launch parses the arguments and runs the selected mode. Returns the exit
// status of the program. If the mode fails then the most recent log entries
// are written to errOutput after the error.
func launch(args []string, output io.Writer, errOutput io.Writer) int {
	logger.Clear()

	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "STAGES")
	md.AdditionalHelp("Use RUN -help for benchmark options.")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(errOutput, "* error: %v\n", err)
		return 1
	}

	switch md.Mode() {
	case "STAGES":
		err = listStages(md, output)
	default:
		err = run(md, output)
	}

	if err != nil {
		fmt.Fprintf(errOutput, "* error in %s mode: %v\n", md, err)
		logger.Tail(errOutput, errorLogEntries)
		return 1
	}

	return 0
}

// listStages prints the name and description of every stage.
func listStages(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	for _, k := range stages.Kinds() {
		kind := "generator"
		if k.Samples() {
			kind = "filter"
		}
		fmt.Fprintf(output, "  %-14s%s (%s)\n", k.String(), k.Label(), kind)
	}

	return nil
}

// windowedPipeline ends the benchmark early if the window is closed.
type windowedPipeline struct {
	*pipeline.Pipeline
	win *sdlwindow.Window
}

// Quit implements the benchmark.Quitter interface.
func (w windowedPipeline) Quit() bool {
	return w.win.Quit()
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	depth := md.AddInt("depth", 24, "colour depth: 16, 24 or 30")
	regenerate := md.AddBool("regenerate", false, "regenerate the test pattern for every frame")
	subdivisions := md.AddUint("subdivisions", 0, fmt.Sprintf("subdivision level of the output mesh (max %d)", geometry.MaxSubdivisions))
	transform := md.AddBool("transform", false, "randomize the vertices of the output mesh")
	showVersion := md.AddBool("version", false, "display version and exit")
	frames := md.AddInt("frames", 600, "number of frames to render")
	useSoftware := md.AddBool("software", false, "render on the CPU without opening a window")
	width := md.AddInt("width", 0, "display width. zero for the desktop size")
	height := md.AddInt("height", 0, "display height. zero for the desktop size")
	shot := md.AddString("screenshot", "", "save the final frame (png, jpg or webp). a directory for a generated name")
	shotScale := md.AddFloat64("screenshotscale", 1.0, "scale of the saved screenshot")
	profile := md.AddString("profile", "none", "run through profiler: cpu, mem, trace, all")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	memvizFile := md.AddString("memviz", "", "write pipeline structure to file in DOT format")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	prefsString := md.AddString("prefs", "", "preference overrides: \"key::value; ...\"")

	md.AddAlias("d", "depth")
	md.AddAlias("r", "regenerate")
	md.AddAlias("s", "subdivisions")
	md.AddAlias("t", "transform")
	md.AddAlias("V", "version")

	md.AdditionalHelp(fmt.Sprintf("Stages: %s", strings.Join(stageNames(), ", ")))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *showVersion {
		fmt.Fprintln(output, version.String())
		return nil
	}

	if *log {
		logger.SetEcho(output, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if !gles.IsSupportedDepth(*depth) {
		return curated.Errorf(gles.UnsupportedDepth, *depth)
	}

	// zero is allowed and means the default size
	if *width < 0 || *height < 0 || *width > gles.MaxDisplaySize || *height > gles.MaxDisplaySize {
		return curated.Errorf(gles.InvalidDisplaySize, *width, *height)
	}

	prof, err := benchmark.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	names := md.RemainingArgs()
	if len(names) == 0 {
		return curated.Errorf(pipeline.NoStages)
	}

	cfg := pipeline.NewConfig()
	cfg.Regenerate = *regenerate
	cfg.Subdivisions = *subdivisions
	cfg.Transform = *transform

	prf, err := pipeline.NewPreferences()
	if err != nil {
		return err
	}
	if *prefsString != "" {
		prefs.PushCommandLineStack(*prefsString)
		err = prf.ApplyCommandLine()
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "prefs", "unused preferences: %s", unused)
		}
		if err != nil {
			return err
		}
	}
	prf.Apply(&cfg)

	// create display and device
	var display gles.Display
	var dev gles.Device
	var win *sdlwindow.Window

	if *useSoftware {
		w, h := int32(*width), int32(*height)
		if w == 0 || h == 0 {
			w, h = defaultSoftwareWidth, defaultSoftwareHeight
		}
		dsp := software.NewDisplay(w, h, *depth)
		display = dsp
		dev = software.NewDevice(dsp)
	} else {
		win, err = sdlwindow.NewWindow(*depth, int32(*width), int32(*height))
		if err != nil {
			return err
		}
		display = win

		dev, err = gl32.NewDevice()
		if err != nil {
			_ = win.Destroy()
			return err
		}
	}

	defer func() {
		if err := display.Destroy(); err != nil {
			logger.Log(logger.Allow, "glesbench", err)
		}
	}()

	ctx, err := gles.NewContext(dev, display)
	if err != nil {
		return err
	}
	fmt.Fprintf(output, "Resolution: %dx%d (depth %d)\n", ctx.Width, ctx.Height, ctx.Depth)

	pl, err := pipeline.Build(ctx, cfg, names)
	if err != nil {
		return err
	}
	defer pl.Release()

	if *memvizFile != "" {
		if err := dumpPipeline(*memvizFile, pl); err != nil {
			return err
		}
	}

	if *stats {
		srv := statsview.Launch(output)
		defer srv.Stop()
	}

	var renderer benchmark.Renderer = pl
	if win != nil {
		renderer = windowedPipeline{Pipeline: pl, win: win}
	}

	fmt.Fprintf(output, "Running %s\n", strings.Join(names, " -> "))

	var res benchmark.Result
	err = benchmark.RunProfiler(prof, "glesbench", func() error {
		var err error
		res, err = benchmark.Run(renderer, *frames, ctx.Width, ctx.Height)
		return err
	})
	if err != nil {
		return err
	}
	res.Write(output)

	if *shot != "" {
		// the back buffer is undefined after the last present so the
		// screenshot is of one more frame, read before it is presented
		pl.Draw()
		img := screenshot.Capture(dev, ctx.Width, ctx.Height)
		pl.Present()
		fn := screenshot.ResolveFilename(*shot, "glesbench", strings.Join(names, "_"))
		if err := screenshot.Save(img, fn, *shotScale); err != nil {
			return err
		}
	}

	return nil
}

// dumpPipeline writes the structure of the pipeline to filename as a DOT
// graph.
func dumpPipeline(filename string, pl *pipeline.Pipeline) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	memviz.Map(f, pl)
	if err := f.Close(); err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	logger.Logf(logger.Allow, "memviz", "pipeline structure written to %s", filename)
	return nil
}

func stageNames() []string {
	var n []string
	for _, k := range stages.Kinds() {
		n = append(n, k.String())
	}
	return n
}
