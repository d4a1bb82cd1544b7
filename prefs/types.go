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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/glesbench/curated"
)

// Sentinal errors returned when setting a value.
const (
	CannotConvert = "prefs: cannot convert %T to %s"
	InvalidValue  = "prefs: invalid %s value: %v"
)

// Value represents the actual Go preference value.
type Value interface{}

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
}

// Vec3 implements a three component vector type in the prefs system. Used
// for RGB colours.
type Vec3 struct {
	value atomic.Value // [3]float32
}

func (p *Vec3) String() string {
	v := p.Get().([3]float32)
	return fmt.Sprintf("%.3f,%.3f,%.3f", v[0], v[1], v[2])
}

// Set new value to Vec3 type. New value can be a [3]float32 or a string of
// three numbers separated by commas.
func (p *Vec3) Set(v Value) error {
	var nv [3]float32

	switch v := v.(type) {
	case [3]float32:
		nv = v
	case string:
		parts := strings.Split(v, ",")
		if len(parts) != 3 {
			return curated.Errorf(InvalidValue, "prefs.Vec3", v)
		}
		for i, s := range parts {
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
			if err != nil {
				return curated.Errorf(InvalidValue, "prefs.Vec3", err)
			}
			nv[i] = float32(f)
		}
	default:
		return curated.Errorf(CannotConvert, v, "prefs.Vec3")
	}

	p.value.Store(nv)

	return nil
}

// Get returns the raw pref value.
func (p *Vec3) Get() Value {
	ov := p.value.Load()
	if ov == nil {
		return [3]float32{}
	}
	return ov.([3]float32)
}

// Vec returns the value as a [3]float32.
func (p *Vec3) Vec() [3]float32 {
	return p.Get().([3]float32)
}
