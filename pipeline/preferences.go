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

package pipeline

import (
	"io"

	"github.com/jetsetilly/glesbench/prefs"
	"github.com/jetsetilly/glesbench/stages"
)

// Preferences are the colour values used when building a pipeline. They can
// be changed on the command line with a prefs string. For example:
//
//	fill.color::0,0,1; cc.factor::2,2,2
type Preferences struct {
	FillColor  prefs.Vec3
	ClearColor prefs.Vec3
	Add        prefs.Vec3
	Factor     prefs.Vec3

	coll *prefs.Collection
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are set to the defaults used by NewConfig().
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		coll: prefs.NewCollection(),
	}

	cfg := NewConfig()
	_ = p.FillColor.Set(fromColor(cfg.FillColor))
	_ = p.ClearColor.Set(fromColor(cfg.ClearColor))
	_ = p.Add.Set(fromColor(cfg.Add))
	_ = p.Factor.Set(fromColor(cfg.Factor))

	for _, e := range []struct {
		key string
		v   *prefs.Vec3
	}{
		{"fill.color", &p.FillColor},
		{"clear.color", &p.ClearColor},
		{"cc.add", &p.Add},
		{"cc.factor", &p.Factor},
	} {
		if err := p.coll.Add(e.key, e.v); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// ApplyCommandLine sets the preferences from the top group of the prefs
// command line stack.
func (p *Preferences) ApplyCommandLine() error {
	return p.coll.ApplyCommandLine()
}

// Apply the preferences to the Config.
func (p *Preferences) Apply(cfg *Config) {
	cfg.FillColor = toColor(p.FillColor.Vec())
	cfg.ClearColor = toColor(p.ClearColor.Vec())
	cfg.Add = toColor(p.Add.Vec())
	cfg.Factor = toColor(p.Factor.Vec())
}

// Write every preference key and value to the io.Writer.
func (p *Preferences) Write(output io.Writer) {
	p.coll.Write(output)
}

func fromColor(c stages.Color) [3]float32 {
	return [3]float32{c.R, c.G, c.B}
}

func toColor(v [3]float32) stages.Color {
	return stages.Color{R: v[0], G: v[1], B: v[2]}
}
