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
	"github.com/jetsetilly/glesbench/stages"
)

// Random is a source of random numbers for randomizing the output grid.
type Random interface {
	Uniform(min float32, max float32) float32
}

// Config for Build().
type Config struct {
	// render the first stage every frame rather than baking it
	Regenerate bool

	// subdivision level of the grid used by the last stage
	Subdivisions uint

	// randomize the grid used by the last stage
	Transform bool

	// source of random numbers used when Transform is true. a new unseeded
	// source is used if Random is nil
	Random Random

	// colours used by the Fill and Clear stages
	FillColor  stages.Color
	ClearColor stages.Color

	// adjustment made by the ColorCorrect stage
	Add    stages.Color
	Factor stages.Color
}

// NewConfig returns a Config with default values.
func NewConfig() Config {
	def := stages.DefaultParams(nil)
	return Config{
		FillColor:  def.FillColor,
		ClearColor: def.ClearColor,
		Add:        def.Add,
		Factor:     def.Factor,
	}
}
