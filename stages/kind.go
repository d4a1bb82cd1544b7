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
	"strings"

	"github.com/jetsetilly/glesbench/curated"
)

// UnknownStage is returned by ParseKind() when the name is not recognised.
const UnknownStage = "stages: unknown stage (%s)"

// Kind identifies the variant of a stage.
type Kind int

// List of valid Kind values.
const (
	KindFill Kind = iota
	KindCheckerboard
	KindClear
	KindCopy
	KindCopyOne
	KindDeinterlace
	KindColorCorrect
)

// the name used on the command line and the human readable name of each kind.
var kindNames = []struct {
	name  string
	label string
}{
	KindFill:         {"fill", "Fill"},
	KindCheckerboard: {"checkerboard", "Checkerboard"},
	KindClear:        {"clear", "Clear"},
	KindCopy:         {"copy", "Copy"},
	KindCopyOne:      {"copyone", "Copy One"},
	KindDeinterlace:  {"deinterlace", "Deinterlace"},
	KindColorCorrect: {"cc", "Color Correct"},
}

// Kinds returns every Kind in registry order.
func Kinds() []Kind {
	k := make([]Kind, len(kindNames))
	for i := range kindNames {
		k[i] = Kind(i)
	}
	return k
}

// ParseKind returns the Kind for the name. Matching is not case sensitive.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, k := range kindNames {
		if k.name == n {
			return Kind(i), nil
		}
	}
	return 0, curated.Errorf(UnknownStage, name)
}

// String returns the name of the Kind as used on the command line.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k].name
}

// Label returns the human readable name of the Kind.
func (k Kind) Label() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k].label
}

// Samples returns true if stages of this Kind read from a source
// framebuffer.
func (k Kind) Samples() bool {
	switch k {
	case KindCopy, KindCopyOne, KindDeinterlace, KindColorCorrect:
		return true
	}
	return false
}
