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

package software

import (
	"image/color"
	"math"
	"slices"

	"github.com/jetsetilly/glesbench/curated"
	"github.com/jetsetilly/glesbench/geometry"
	"github.com/jetsetilly/glesbench/gles"
	"github.com/jetsetilly/glesbench/shaders"
)

// Sentinal errors returned by the Device.
const (
	FramebufferIncomplete = "software: framebuffer %d is incomplete"
	InvalidMesh           = "software: invalid mesh: %s"
)

// the number of texture units on the device.
const numTextureUnits = 8

type viewport struct {
	x, y          int32
	width, height int32
}

type framebuffer struct {
	texture uint32
}

type mesh struct {
	vertices []float32
	uv       []float32
	indices  []uint16
}

// Count implements the gles.Mesh interface.
func (m *mesh) Count() int32 {
	return int32(len(m.indices))
}

// Objects is a count of the objects currently allocated on the device.
type Objects struct {
	Programs     int
	Textures     int
	Framebuffers int
	Meshes       int
}

// Device implements the gles.Device interface on the CPU.
type Device struct {
	display *Display

	programs     map[uint32]*program
	textures     map[uint32]*surface
	framebuffers map[uint32]*framebuffer
	meshes       map[*mesh]bool

	// object names are never reused
	nextName uint32

	current     uint32
	bound       uint32
	units       [numTextureUnits]uint32
	activeUnit  uint32
	viewport    viewport
	clearColour rgb

	drawCalls int
	clears    int
}

// NewDevice is the preferred method of initialisation for the Device type.
// The display framebuffer of the device draws to the back buffer of the
// display.
func NewDevice(display *Display) *Device {
	w, h := display.Size()
	return &Device{
		display:      display,
		programs:     make(map[uint32]*program),
		textures:     make(map[uint32]*surface),
		framebuffers: make(map[uint32]*framebuffer),
		meshes:       make(map[*mesh]bool),
		viewport:     viewport{width: w, height: h},
	}
}

func (dev *Device) name() uint32 {
	dev.nextName++
	return dev.nextName
}

// Live returns the number of objects that have been created and not yet
// deleted.
func (dev *Device) Live() Objects {
	return Objects{
		Programs:     len(dev.programs),
		Textures:     len(dev.textures),
		Framebuffers: len(dev.framebuffers),
		Meshes:       len(dev.meshes),
	}
}

// DrawCalls returns the number of calls to DrawMesh() that have drawn
// something.
func (dev *Device) DrawCalls() int {
	return dev.drawCalls
}

// Clears returns the number of calls to Clear().
func (dev *Device) Clears() int {
	return dev.clears
}

// TexturePixel returns the colour of the texel at x, y. Row zero is the
// bottom of the texture.
func (dev *Device) TexturePixel(texture uint32, x int, y int) color.RGBA {
	if tex, ok := dev.textures[texture]; ok {
		return tex.at(x, y)
	}
	return color.RGBA{}
}

// CreateProgram implements the gles.Device interface.
func (dev *Device) CreateProgram(prog shaders.Program) (uint32, error) {
	p, err := link(prog)
	if err != nil {
		return 0, err
	}
	id := dev.name()
	dev.programs[id] = p
	return id, nil
}

// DeleteProgram implements the gles.Device interface.
func (dev *Device) DeleteProgram(program uint32) {
	delete(dev.programs, program)
	if dev.current == program {
		dev.current = 0
	}
}

// AttribLocation implements the gles.Device interface.
func (dev *Device) AttribLocation(program uint32, name string) int32 {
	if p, ok := dev.programs[program]; ok {
		if loc, ok := p.attribs[name]; ok {
			return loc
		}
	}
	return -1
}

// UniformLocation implements the gles.Device interface.
func (dev *Device) UniformLocation(program uint32, name string) int32 {
	if p, ok := dev.programs[program]; ok {
		for i := range p.uniforms {
			if p.uniforms[i].name == name {
				return int32(i)
			}
		}
	}
	return -1
}

// UseProgram implements the gles.Device interface.
func (dev *Device) UseProgram(program uint32) {
	dev.current = program
}

func (dev *Device) uniformAt(location int32) *uniform {
	p, ok := dev.programs[dev.current]
	if !ok || location < 0 || int(location) >= len(p.uniforms) {
		return nil
	}
	return &p.uniforms[location]
}

// Uniform1i implements the gles.Device interface.
func (dev *Device) Uniform1i(location int32, v int32) {
	if u := dev.uniformAt(location); u != nil {
		u.i = v
	}
}

// Uniform1f implements the gles.Device interface.
func (dev *Device) Uniform1f(location int32, v float32) {
	if u := dev.uniformAt(location); u != nil {
		u.f[0] = v
	}
}

// Uniform3f implements the gles.Device interface.
func (dev *Device) Uniform3f(location int32, x float32, y float32, z float32) {
	if u := dev.uniformAt(location); u != nil {
		u.f = [3]float32{x, y, z}
	}
}

// GenTexture implements the gles.Device interface.
func (dev *Device) GenTexture() uint32 {
	id := dev.name()
	dev.textures[id] = &surface{}
	return id
}

// TexImage2D implements the gles.Device interface.
func (dev *Device) TexImage2D(texture uint32, width int32, height int32) {
	if _, ok := dev.textures[texture]; ok {
		s := newSurface(width, height)
		dev.textures[texture] = &s
	}
}

// DeleteTexture implements the gles.Device interface.
func (dev *Device) DeleteTexture(texture uint32) {
	delete(dev.textures, texture)
	for i := range dev.units {
		if dev.units[i] == texture {
			dev.units[i] = 0
		}
	}
}

// ActiveTexture implements the gles.Device interface.
func (dev *Device) ActiveTexture(unit uint32) {
	if unit < numTextureUnits {
		dev.activeUnit = unit
	}
}

// BindTexture implements the gles.Device interface.
func (dev *Device) BindTexture(texture uint32) {
	dev.units[dev.activeUnit] = texture
}

// GenFramebuffer implements the gles.Device interface.
func (dev *Device) GenFramebuffer() uint32 {
	id := dev.name()
	dev.framebuffers[id] = &framebuffer{}
	return id
}

// FramebufferTexture2D implements the gles.Device interface.
func (dev *Device) FramebufferTexture2D(fb uint32, texture uint32) {
	dev.bound = fb
	if f, ok := dev.framebuffers[fb]; ok {
		f.texture = texture
	}
}

// CheckFramebufferStatus implements the gles.Device interface.
func (dev *Device) CheckFramebufferStatus() error {
	if dev.target() == nil {
		return curated.Errorf(FramebufferIncomplete, dev.bound)
	}
	return nil
}

// DeleteFramebuffer implements the gles.Device interface.
func (dev *Device) DeleteFramebuffer(fb uint32) {
	delete(dev.framebuffers, fb)
	if dev.bound == fb {
		dev.bound = gles.DisplayFramebuffer
	}
}

// BindFramebuffer implements the gles.Device interface.
func (dev *Device) BindFramebuffer(fb uint32) {
	dev.bound = fb
}

// target returns the surface of the bound framebuffer or nil if the
// framebuffer is not complete.
func (dev *Device) target() *surface {
	if dev.bound == gles.DisplayFramebuffer {
		if dev.display.back.allocated() {
			return &dev.display.back
		}
		return nil
	}

	f, ok := dev.framebuffers[dev.bound]
	if !ok {
		return nil
	}
	tex, ok := dev.textures[f.texture]
	if !ok || !tex.allocated() {
		return nil
	}
	return tex
}

// Viewport implements the gles.Device interface.
func (dev *Device) Viewport(x int32, y int32, width int32, height int32) {
	dev.viewport = viewport{x: x, y: y, width: width, height: height}
}

// ClearColor implements the gles.Device interface.
func (dev *Device) ClearColor(r float32, g float32, b float32, _ float32) {
	dev.clearColour = rgb{r, g, b}
}

// Clear implements the gles.Device interface. The whole of the bound
// framebuffer is cleared regardless of the viewport.
func (dev *Device) Clear() {
	dev.clears++
	if t := dev.target(); t != nil {
		t.fill(dev.clearColour)
	}
}

// NewMesh implements the gles.Device interface.
func (dev *Device) NewMesh(grid *geometry.Grid) (gles.Mesh, error) {
	if len(grid.Vertices) != grid.NumVertices()*3 || len(grid.UV) != grid.NumVertices()*2 {
		return nil, curated.Errorf(InvalidMesh, "vertex data does not match grid size")
	}
	for _, i := range grid.Indices {
		if int(i) >= grid.NumVertices() {
			return nil, curated.Errorf(InvalidMesh, "index out of range")
		}
	}

	m := &mesh{
		vertices: slices.Clone(grid.Vertices),
		uv:       slices.Clone(grid.UV),
		indices:  slices.Clone(grid.Indices),
	}
	dev.meshes[m] = true
	return m, nil
}

// DeleteMesh implements the gles.Device interface.
func (dev *Device) DeleteMesh(m gles.Mesh) {
	if m, ok := m.(*mesh); ok {
		delete(dev.meshes, m)
	}
}

// vertex in window coordinates.
type vertex struct {
	x, y float64
	u, v float64
}

// pixels this close to the edge of a triangle are included in the triangle.
// prevents gaps between triangles that share an edge
const edgeTolerance = -1e-9

// DrawMesh implements the gles.Device interface.
func (dev *Device) DrawMesh(gm gles.Mesh, position int32, tex int32) {
	m, ok := gm.(*mesh)
	if !ok || !dev.meshes[m] || position < 0 {
		return
	}

	p, ok := dev.programs[dev.current]
	if !ok {
		return
	}

	target := dev.target()
	if target == nil {
		return
	}

	env := &shadingEnv{dev: dev, prog: p}

	vp := dev.viewport
	toWindow := func(idx uint16) vertex {
		var vx vertex
		i := int(idx)
		vx.x = float64(vp.x) + (float64(m.vertices[i*3])+1.0)*0.5*float64(vp.width)
		vx.y = float64(vp.y) + (float64(m.vertices[i*3+1])+1.0)*0.5*float64(vp.height)
		if tex >= 0 {
			vx.u = float64(m.uv[i*2])
			vx.v = float64(m.uv[i*2+1])
		}
		return vx
	}

	// clip rectangle is the intersection of the viewport and the target
	clip := viewport{
		x:      max(vp.x, 0),
		y:      max(vp.y, 0),
		width:  min(vp.x+vp.width, target.width),
		height: min(vp.y+vp.height, target.height),
	}

	for i := 0; i+2 < len(m.indices); i += 3 {
		rasterize(target, clip, [3]vertex{
			toWindow(m.indices[i]),
			toWindow(m.indices[i+1]),
			toWindow(m.indices[i+2]),
		}, p.ref.shade, env)
	}

	dev.drawCalls++
}

func edge(a vertex, b vertex, x float64, y float64) float64 {
	return (b.x-a.x)*(y-a.y) - (b.y-a.y)*(x-a.x)
}

// rasterize a single triangle. the clip rectangle's width and height fields
// are the exclusive right and top edges. pixels are included if their centre
// is inside the triangle or on one of its edges. the triangle can have either
// winding.
func rasterize(target *surface, clip viewport, tri [3]vertex, shade fragmentShader, env *shadingEnv) {
	area := edge(tri[0], tri[1], tri[2].x, tri[2].y)
	if area == 0 {
		return
	}

	minX := min(tri[0].x, tri[1].x, tri[2].x)
	maxX := max(tri[0].x, tri[1].x, tri[2].x)
	minY := min(tri[0].y, tri[1].y, tri[2].y)
	maxY := max(tri[0].y, tri[1].y, tri[2].y)

	x0 := max(int32(math.Floor(minX)), clip.x)
	x1 := min(int32(math.Ceil(maxX)), clip.width)
	y0 := max(int32(math.Floor(minY)), clip.y)
	y1 := min(int32(math.Ceil(maxY)), clip.height)

	for py := y0; py < y1; py++ {
		cy := float64(py) + 0.5
		for px := x0; px < x1; px++ {
			cx := float64(px) + 0.5

			w0 := edge(tri[1], tri[2], cx, cy) / area
			w1 := edge(tri[2], tri[0], cx, cy) / area
			w2 := edge(tri[0], tri[1], cx, cy) / area
			if w0 < edgeTolerance || w1 < edgeTolerance || w2 < edgeTolerance {
				continue
			}

			u := w0*tri[0].u + w1*tri[1].u + w2*tri[2].u
			v := w0*tri[0].v + w1*tri[1].v + w2*tri[2].v
			target.set(px, py, shade(env, float32(u), float32(v)))
		}
	}
}

// ReadPixels implements the gles.Device interface.
func (dev *Device) ReadPixels(x int32, y int32, width int32, height int32, pixels []uint8) {
	t := dev.target()
	if t == nil {
		return
	}
	for j := int32(0); j < height; j++ {
		for i := int32(0); i < width; i++ {
			c := t.at(int(x+i), int(y+j))
			o := (j*width + i) * 4
			if int(o+3) >= len(pixels) {
				return
			}
			pixels[o] = c.R
			pixels[o+1] = c.G
			pixels[o+2] = c.B
			pixels[o+3] = c.A
		}
	}
}
