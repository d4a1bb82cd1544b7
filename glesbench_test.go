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
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/glesbench/test"
)

func runLaunch(args ...string) (int, string, string) {
	out := &test.CompareWriter{}
	errOut := &test.CompareWriter{}
	status := launch(args, out, errOut)
	return status, out.String(), errOut.String()
}

func TestListStages(t *testing.T) {
	status, out, _ := runLaunch("stages")
	test.ExpectEquality(t, status, 0)
	for _, n := range []string{"fill", "checkerboard", "clear", "copy", "copyone", "deinterlace", "cc"} {
		test.ExpectSuccess(t, strings.Contains(out, n))
	}
}

func TestHelp(t *testing.T) {
	status, out, _ := runLaunch("-help")
	test.ExpectEquality(t, status, 0)
	test.ExpectSuccess(t, strings.Contains(out, "RUN, STAGES"))

	status, out, _ = runLaunch("run", "-h")
	test.ExpectEquality(t, status, 0)
	test.ExpectSuccess(t, strings.Contains(out, "-subdivisions"))
	test.ExpectSuccess(t, strings.Contains(out, "-s = -subdivisions"))
}

func TestVersion(t *testing.T) {
	status, out, _ := runLaunch("-V")
	test.ExpectEquality(t, status, 0)
	test.ExpectSuccess(t, strings.HasPrefix(out, "glesbench "))
}

func TestSoftwareRun(t *testing.T) {
	status, out, errOut := runLaunch("-software", "-width", "32", "-height", "24", "-frames", "3", "fill", "copy")
	test.ExpectEquality(t, errOut, "")
	test.ExpectEquality(t, status, 0)
	test.ExpectSuccess(t, strings.Contains(out, "Resolution: 32x24"))
	test.ExpectSuccess(t, strings.Contains(out, "Rendered 3 frames"))
	test.ExpectSuccess(t, strings.Contains(out, "Average fps was"))
}

func TestSoftwareRunOptions(t *testing.T) {
	dir := t.TempDir()
	shot := filepath.Join(dir, "frame.png")
	dot := filepath.Join(dir, "pipeline.dot")

	status, _, errOut := runLaunch("-software", "-width", "16", "-height", "16", "-frames", "2",
		"-r", "-s", "2", "-t", "-d", "16",
		"-prefs", "fill.color::0,0,1; cc.factor::0.5,0.5,0.5",
		"-screenshot", shot, "-memviz", dot,
		"checkerboard", "cc")
	test.ExpectEquality(t, errOut, "")
	test.ExpectEquality(t, status, 0)

	_, err := os.Stat(shot)
	test.ExpectSuccess(t, err)

	// screenshot named automatically when given a directory
	shots := filepath.Join(dir, "shots")
	test.DemandSuccess(t, os.Mkdir(shots, 0o700))
	status, _, _ = runLaunch("-software", "-width", "8", "-height", "8", "-frames", "1",
		"-screenshot", shots, "fill")
	test.ExpectEquality(t, status, 0)
	entries, err := os.ReadDir(shots)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(entries), 1)
	test.ExpectSuccess(t, strings.HasPrefix(entries[0].Name(), "glesbench_fill_"))

	data, err := os.ReadFile(dot)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "digraph"))
}

// the saved image is the frame that follows the last frame of the benchmark.
// a regenerated clear alternates between black and green so after an odd
// number of frames the screenshot is green
func TestScreenshotContent(t *testing.T) {
	shot := filepath.Join(t.TempDir(), "clear.png")

	status, _, errOut := runLaunch("-software", "-width", "8", "-height", "8", "-frames", "3",
		"-r", "-screenshot", shot, "clear")
	test.ExpectEquality(t, errOut, "")
	test.DemandEquality(t, status, 0)

	f, err := os.Open(shot)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 8)
	test.ExpectEquality(t, img.Bounds().Dy(), 8)

	green := color.RGBAModel.Convert(color.RGBA{G: 255, A: 255})
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			test.ExpectEquality(t, color.RGBAModel.Convert(img.At(x, y)), green)
		}
	}
}

func TestFailures(t *testing.T) {
	// unsupported depth
	status, _, errOut := runLaunch("-software", "-depth", "8", "fill")
	test.ExpectEquality(t, status, 1)
	test.ExpectSuccess(t, strings.Contains(errOut, "depth"))

	// no stages
	status, _, _ = runLaunch("-software")
	test.ExpectEquality(t, status, 1)

	// unknown stage
	status, _, _ = runLaunch("-software", "fill", "blur")
	test.ExpectEquality(t, status, 1)

	// sampling stage with nothing to sample. the log shows how far the
	// pipeline was built
	status, _, errOut = runLaunch("-software", "-frames", "1", "copy")
	test.ExpectEquality(t, status, 1)
	test.ExpectSuccess(t, strings.Contains(errOut, "pipeline: plane mesh"))

	// the log is cleared on every launch
	status, _, errOut = runLaunch("-software", "fill", "blur")
	test.ExpectEquality(t, status, 1)
	test.ExpectFailure(t, strings.Contains(errOut, "plane mesh"))

	// bad preference value
	status, _, _ = runLaunch("-software", "-prefs", "fill.color::red", "fill")
	test.ExpectEquality(t, status, 1)

	// unknown flag
	status, _, _ = runLaunch("-software", "-nosuchflag", "fill")
	test.ExpectEquality(t, status, 1)

	// display too large
	status, _, errOut = runLaunch("-software", "-width", "30000", "-height", "30000", "fill")
	test.ExpectEquality(t, status, 1)
	test.ExpectSuccess(t, strings.Contains(errOut, "invalid display size"))
}
