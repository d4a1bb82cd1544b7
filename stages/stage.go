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

package stages

import (
	"github.com/jetsetilly/glesbench/curated"
	"github.com/jetsetilly/glesbench/framebuffer"
	"github.com/jetsetilly/glesbench/gles"
)

// Sentinal errors returned when creating a stage.
const (
	ProgramError       = "stages: %s: %v"
	UnresolvedAttrib   = "stages: %s: unresolved attribute (%s)"
	UnresolvedUniform  = "stages: %s: unresolved uniform (%s)"
	MissingDevice      = "stages: %s: no device"
	MissingTarget      = "stages: %s: no target framebuffer"
	MissingSource      = "stages: %s: no source framebuffer"
	SourceIsDisplay    = "stages: %s: source framebuffer is the display"
	MissingMesh        = "stages: %s: no mesh"
	UnsupportedVariant = "stages: unsupported stage kind (%d)"
)

// Environment is passed to a stage every time it is rendered.
type Environment struct {
	// dimensions of the rendering context
	Width  int32
	Height int32

	// the position of the stage in the pipeline
	Index int
}

// Stage is implemented by every stage variant.
type Stage interface {
	// human readable name of the stage
	Name() string

	Kind() Kind

	// Render the stage to its target framebuffer
	Render(env Environment)

	// Release the resources owned by the stage. The stage should not be
	// used after being released
	Release()
}

// Color is an RGB colour with components in the range 0 to 1.
type Color struct {
	R, G, B float32
}

// Common colours.
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
	Red   = Color{1, 0, 0}
	Green = Color{0, 1, 0}
	Blue  = Color{0, 0, 1}
)

// Params are the values used to create a stage. Not every field is required
// by every stage.
type Params struct {
	Device gles.Device

	// the framebuffer the stage draws to
	Target *framebuffer.Framebuffer

	// the framebuffer that sampling stages read from
	Source *framebuffer.Framebuffer

	// geometry used by every stage except Clear
	Mesh gles.Mesh

	// colour used by the Fill stage
	FillColor Color

	// colour used by the Clear stage. the stage alternates between this colour
	// and black
	ClearColor Color

	// adjustments made by the ColorCorrect stage. the output is
	// (input + Add) * Factor
	Add    Color
	Factor Color
}

// DefaultParams returns a Params instance with the default colours and with
// a ColorCorrect adjustment that leaves the input unchanged.
func DefaultParams(dev gles.Device) Params {
	return Params{
		Device:     dev,
		FillColor:  Red,
		ClearColor: Green,
		Add:        Black,
		Factor:     White,
	}
}

// New creates a stage of the specified Kind.
func New(kind Kind, p Params) (Stage, error) {
	switch kind {
	case KindFill:
		return asStage(NewFill(p))
	case KindCheckerboard:
		return asStage(NewCheckerboard(p))
	case KindClear:
		return asStage(NewClear(p))
	case KindCopy:
		return asStage(NewCopy(p))
	case KindCopyOne:
		return asStage(NewCopyOne(p))
	case KindDeinterlace:
		return asStage(NewDeinterlace(p))
	case KindColorCorrect:
		return asStage(NewColorCorrect(p))
	}
	return nil, curated.Errorf(UnsupportedVariant, kind)
}

// asStage makes sure that a failed constructor results in a nil Stage rather
// than an interface holding a nil pointer.
func asStage[T Stage](stg T, err error) (Stage, error) {
	if err != nil {
		return nil, err
	}
	return stg, nil
}

// checkParams makes sure the fields required by every stage of the Kind are
// present.
func checkParams(kind Kind, p Params, needsMesh bool) error {
	if p.Device == nil {
		return curated.Errorf(MissingDevice, kind.Label())
	}

	if p.Target == nil {
		return curated.Errorf(MissingTarget, kind.Label())
	}

	if needsMesh && p.Mesh == nil {
		return curated.Errorf(MissingMesh, kind.Label())
	}

	if kind.Samples() {
		if p.Source == nil {
			return curated.Errorf(MissingSource, kind.Label())
		}
		if p.Source.IsDisplay() || p.Source.Texture == nil {
			return curated.Errorf(SourceIsDisplay, kind.Label())
		}
	}

	return nil
}
