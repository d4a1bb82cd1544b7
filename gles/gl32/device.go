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

package gl32

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/glesbench/curated"
	"github.com/jetsetilly/glesbench/gles"
	"github.com/jetsetilly/glesbench/logger"
	"github.com/jetsetilly/glesbench/shaders"
)

// Sentinal errors returned by the Device.
const (
	InitError             = "gl32: %v"
	CompileError          = "gl32: compile error: %s shader: %s"
	LinkError             = "gl32: link error: %s: %s"
	FramebufferIncomplete = "gl32: framebuffer incomplete (status %#x)"
)

// Device implements the gles.Device interface.
type Device struct {
	// shaders attached to each program. deleted with the program
	attached map[uint32][2]uint32
}

// NewDevice is the preferred method of initialisation for the Device type.
func NewDevice() (*Device, error) {
	if err := gl.Init(); err != nil {
		return nil, curated.Errorf(InitError, err)
	}

	logger.Logf(logger.Allow, "gl32", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "gl32", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "gl32", "version: %s", gl.GoStr(gl.GetString(gl.VERSION)))
	logger.Logf(logger.Allow, "gl32", "glsl: %s", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	return &Device{
		attached: make(map[uint32][2]uint32),
	}, nil
}

// infoLog returns the log for a shader or a program. the correct GetXXXiv()
// and GetXXXInfoLog() functions must be supplied.
func infoLog(handle uint32, getiv func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var logLength int32
	getiv(handle, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return "no log"
	}

	// the length includes the NULL character
	log := strings.Repeat("\x00", int(logLength+1))
	getLog(handle, logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00\n")
}

func compileShader(stage string, typ uint32, source string) (uint32, error) {
	handle := gl.CreateShader(typ)

	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csource, nil)
	free()

	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		log := infoLog(handle, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(handle)
		return 0, curated.Errorf(CompileError, stage, log)
	}

	return handle, nil
}

// CreateProgram implements the gles.Device interface.
func (dev *Device) CreateProgram(prog shaders.Program) (uint32, error) {
	vert, err := compileShader("vertex", gl.VERTEX_SHADER, prog.Vertex)
	if err != nil {
		return 0, err
	}

	frag, err := compileShader("fragment", gl.FRAGMENT_SHADER, prog.Fragment)
	if err != nil {
		gl.DeleteShader(vert)
		return 0, err
	}

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vert)
	gl.AttachShader(handle, frag)

	gl.BindAttribLocation(handle, shaders.PositionLocation, gl.Str(shaders.PositionAttrib+"\x00"))
	gl.BindAttribLocation(handle, shaders.TexLocation, gl.Str(shaders.TexAttrib+"\x00"))
	gl.BindFragDataLocation(handle, 0, gl.Str("fragColor\x00"))

	gl.LinkProgram(handle)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := infoLog(handle, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(handle)
		gl.DeleteShader(vert)
		gl.DeleteShader(frag)
		return 0, curated.Errorf(LinkError, prog.Name, log)
	}

	dev.attached[handle] = [2]uint32{vert, frag}

	return handle, nil
}

// DeleteProgram implements the gles.Device interface.
func (dev *Device) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
	if s, ok := dev.attached[program]; ok {
		gl.DeleteShader(s[0])
		gl.DeleteShader(s[1])
		delete(dev.attached, program)
	}
}

// AttribLocation implements the gles.Device interface.
func (dev *Device) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

// UniformLocation implements the gles.Device interface.
func (dev *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// UseProgram implements the gles.Device interface.
func (dev *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

// Uniform1i implements the gles.Device interface.
func (dev *Device) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

// Uniform1f implements the gles.Device interface.
func (dev *Device) Uniform1f(location int32, v float32) {
	gl.Uniform1f(location, v)
}

// Uniform3f implements the gles.Device interface.
func (dev *Device) Uniform3f(location int32, x float32, y float32, z float32) {
	gl.Uniform3f(location, x, y, z)
}

// GenTexture implements the gles.Device interface.
func (dev *Device) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

// TexImage2D implements the gles.Device interface.
func (dev *Device) TexImage2D(texture uint32, width int32, height int32) {
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB, width, height, 0, gl.RGB, gl.UNSIGNED_BYTE, nil)
}

// DeleteTexture implements the gles.Device interface.
func (dev *Device) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}

// ActiveTexture implements the gles.Device interface.
func (dev *Device) ActiveTexture(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
}

// BindTexture implements the gles.Device interface.
func (dev *Device) BindTexture(texture uint32) {
	gl.BindTexture(gl.TEXTURE_2D, texture)
}

// GenFramebuffer implements the gles.Device interface.
func (dev *Device) GenFramebuffer() uint32 {
	var id uint32
	gl.GenFramebuffers(1, &id)
	return id
}

// FramebufferTexture2D implements the gles.Device interface.
func (dev *Device) FramebufferTexture2D(framebuffer uint32, texture uint32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, framebuffer)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, texture, 0)
}

// CheckFramebufferStatus implements the gles.Device interface.
func (dev *Device) CheckFramebufferStatus() error {
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	if status != gl.FRAMEBUFFER_COMPLETE {
		return curated.Errorf(FramebufferIncomplete, status)
	}
	return nil
}

// DeleteFramebuffer implements the gles.Device interface.
func (dev *Device) DeleteFramebuffer(framebuffer uint32) {
	gl.DeleteFramebuffers(1, &framebuffer)
}

// BindFramebuffer implements the gles.Device interface.
func (dev *Device) BindFramebuffer(framebuffer uint32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, framebuffer)
}

// Viewport implements the gles.Device interface.
func (dev *Device) Viewport(x int32, y int32, width int32, height int32) {
	gl.Viewport(x, y, width, height)
}

// ClearColor implements the gles.Device interface.
func (dev *Device) ClearColor(r float32, g float32, b float32, a float32) {
	gl.ClearColor(r, g, b, a)
}

// Clear implements the gles.Device interface.
func (dev *Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// ReadPixels implements the gles.Device interface.
func (dev *Device) ReadPixels(x int32, y int32, width int32, height int32, pixels []uint8) {
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(x, y, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
}

// String returns a summary of the OpenGL implementation.
func (dev *Device) String() string {
	return fmt.Sprintf("%s (%s)", gl.GoStr(gl.GetString(gl.RENDERER)), gl.GoStr(gl.GetString(gl.VERSION)))
}

// the Device must satisfy the gles.Device interface.
var _ gles.Device = (*Device)(nil)
