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

package benchmark

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/glesbench/curated"
	"github.com/jetsetilly/glesbench/logger"
)

// InvalidFrameCount is returned by Run() if the number of frames is less than
// one.
const InvalidFrameCount = "benchmark: invalid frame count (%d)"

// Renderer is implemented by any type that can render a frame. The frame
// must have been presented when Render() returns.
type Renderer interface {
	Render()
}

// Quitter can be implemented by a Renderer. The benchmark ends early if
// Quit() returns true after a frame has been rendered.
type Quitter interface {
	Quit() bool
}

// Result of a benchmark run.
type Result struct {
	Frames   int
	Duration time.Duration

	// size of each frame
	Width  int32
	Height int32
}

// FPS returns the average number of frames per second.
func (res Result) FPS() float64 {
	s := res.Duration.Seconds()
	if s <= 0 {
		return 0
	}
	return float64(res.Frames) / s
}

// MegaTexels returns the number of texels drawn to the display per second,
// in millions.
func (res Result) MegaTexels() float64 {
	s := res.Duration.Seconds()
	if s <= 0 {
		return 0
	}
	return float64(res.Width) * float64(res.Height) * float64(res.Frames) / 1e6 / s
}

// Write the result to the io.Writer.
func (res Result) Write(output io.Writer) {
	fmt.Fprintf(output, "\tRendered %d frames in %fs\n", res.Frames, res.Duration.Seconds())
	fmt.Fprintf(output, "\tAverage fps was %.02f\n", res.FPS())
	fmt.Fprintf(output, "\tThroughput was %.02f Mtexel/s\n", res.MegaTexels())
}

// Run renders the specified number of frames and returns the time taken.
// The width and height are the size of each frame and are used by
// Result.MegaTexels().
func Run(r Renderer, frames int, width int32, height int32) (Result, error) {
	if frames < 1 {
		return Result{}, curated.Errorf(InvalidFrameCount, frames)
	}

	logger.Logf(logger.Allow, "benchmark", "rendering %d frames at %dx%d", frames, width, height)

	q, _ := r.(Quitter)

	var n int
	start := time.Now()
	for n < frames {
		r.Render()
		n++
		if q != nil && q.Quit() {
			logger.Logf(logger.Allow, "benchmark", "quit after %d frames", n)
			break
		}
	}

	res := Result{
		Frames:   n,
		Duration: time.Since(start),
		Width:    width,
		Height:   height,
	}

	logger.Logf(logger.Allow, "benchmark", "%.02f fps", res.FPS())

	return res, nil
}
