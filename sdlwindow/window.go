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

package sdlwindow

import (
	"fmt"
	"runtime"

	"github.com/jetsetilly/glesbench/curated"
	"github.com/jetsetilly/glesbench/gles"
	"github.com/jetsetilly/glesbench/logger"
	"github.com/jetsetilly/glesbench/version"
	"github.com/veandco/go-sdl2/sdl"
)

// Sentinal errors returned by NewWindow().
const (
	SDLError         = "sdl: %v"
	UnsupportedDepth = "sdl: unsupported colour depth (%d)"
)

const windowTitle = "glesbench"

// swap interval value expected by the SDL.GLSetSwapInterval() function.
const syncImmediateUpdate = 0

// EventInterval is the number of buffer swaps between each servicing of the
// SDL event queue. The queue is serviced by Quit() and not by SwapBuffers()
// so a benchmarked frame is not charged for event handling except once per
// interval.
const EventInterval = 60

// pollDue returns true if the event queue should be serviced after the
// number of swaps.
func pollDue(swaps int) bool {
	return swaps > 0 && swaps%EventInterval == 0
}

// the size of each colour channel for each supported depth.
var channelSizes = map[int][3]int{
	16: {5, 6, 5},
	24: {8, 8, 8},
	30: {10, 10, 10},
}

// ChannelSizes returns the number of bits for the red, green and blue
// channels of the colour depth.
func ChannelSizes(depth int) ([3]int, bool) {
	s, ok := channelSizes[depth]
	return s, ok
}

// Window implements the gles.Display interface.
type Window struct {
	window    *sdl.Window
	glContext sdl.GLContext
	mode      sdl.DisplayMode

	depth  int
	width  int32
	height int32

	// the user has asked for the window to close
	quit bool

	// number of calls to SwapBuffers() and the value when the event queue
	// was last serviced
	swaps  int
	polled int
}

// NewWindow is the preferred method of initialisation for the Window type.
//
// If the width or height is zero then the window is made fullscreen at the
// resolution of the current display mode. A GL 3.2 core context is created
// and made current.
func NewWindow(depth int, width int32, height int32) (*Window, error) {
	sizes, ok := ChannelSizes(depth)
	if !ok {
		return nil, curated.Errorf(UnsupportedDepth, depth)
	}

	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
		{sdl.GL_CONTEXT_MINOR_VERSION, 2},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_RED_SIZE, sizes[0]},
		{sdl.GL_GREEN_SIZE, sizes[1]},
		{sdl.GL_BLUE_SIZE, sizes[2]},
	}
	for _, a := range attrs {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			sdl.Quit()
			return nil, curated.Errorf(SDLError, err)
		}
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	win := &Window{
		depth: depth,
	}

	var err error

	win.mode, err = sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}
	logger.Logf(logger.Allow, "sdl", "display mode: %dx%d %dHz", win.mode.W, win.mode.H, win.mode.RefreshRate)

	var flags uint32 = sdl.WINDOW_OPENGL
	if width == 0 || height == 0 {
		width = win.mode.W
		height = win.mode.H
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	v, _, _ := version.Version()
	win.window, err = sdl.CreateWindow(fmt.Sprintf("%s (%s)", windowTitle, v),
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		width, height, flags)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	win.glContext, err = win.window.GLCreateContext()
	if err != nil {
		_ = win.Destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	err = win.window.GLMakeCurrent(win.glContext)
	if err != nil {
		_ = win.Destroy()
		return nil, curated.Errorf(SDLError, err)
	}

	// the benchmark measures rendering speed so the swap should never wait
	// for the vertical retrace
	if err := sdl.GLSetSwapInterval(syncImmediateUpdate); err != nil {
		logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(%d): %v", syncImmediateUpdate, err)
	}

	// the drawable size may differ from the window size on high DPI displays
	win.width, win.height = win.window.GLGetDrawableSize()

	for _, a := range []struct {
		name string
		attr sdl.GLattr
	}{
		{"red", sdl.GL_RED_SIZE},
		{"green", sdl.GL_GREEN_SIZE},
		{"blue", sdl.GL_BLUE_SIZE},
	} {
		if v, err := sdl.GLGetAttribute(a.attr); err == nil {
			logger.Logf(logger.Allow, "sdl", "%s channel: %d bits", a.name, v)
		}
	}
	logger.Logf(logger.Allow, "sdl", "drawable size: %dx%d", win.width, win.height)

	return win, nil
}

// Size implements the gles.Display interface.
func (win *Window) Size() (int32, int32) {
	return win.width, win.height
}

// Depth implements the gles.Display interface.
func (win *Window) Depth() int {
	return win.depth
}

// SwapBuffers implements the gles.Display interface.
func (win *Window) SwapBuffers() {
	win.window.GLSwap()
	win.swaps++
}

// Quit returns true if the user has asked for the window to be closed. The
// event queue is serviced once every EventInterval swaps.
func (win *Window) Quit() bool {
	if win.swaps != win.polled && pollDue(win.swaps) {
		win.polled = win.swaps
		win.pollEvents()
	}
	return win.quit
}

func (win *Window) pollEvents() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if _, ok := ev.(*sdl.QuitEvent); ok {
			win.quit = true
		}
	}
}

// Destroy implements the gles.Display interface.
func (win *Window) Destroy() error {
	if win.glContext != nil {
		sdl.GLDeleteContext(win.glContext)
		win.glContext = nil
	}

	if win.window != nil {
		err := win.window.Destroy()
		if err != nil {
			return curated.Errorf(SDLError, err)
		}
		win.window = nil
	}

	sdl.Quit()

	return nil
}

// the Window must satisfy the gles.Display interface.
var _ gles.Display = (*Window)(nil)
