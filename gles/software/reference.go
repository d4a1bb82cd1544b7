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

import "math"

type rgb [3]float32

// shadingEnv gives a fragment shader access to the uniforms of the program
// and to the device's texture units.
type shadingEnv struct {
	dev  *Device
	prog *program
}

func (env *shadingEnv) vec3(name string) rgb {
	if u := env.prog.uniform(name); u != nil {
		return rgb{u.f[0], u.f[1], u.f[2]}
	}
	return rgb{}
}

func (env *shadingEnv) float(name string) float32 {
	if u := env.prog.uniform(name); u != nil {
		return u.f[0]
	}
	return 0
}

// sample the texture bound to the unit named by the sampler uniform.
func (env *shadingEnv) sample(sampler string, u float32, v float32) rgb {
	su := env.prog.uniform(sampler)
	if su == nil || su.i < 0 || int(su.i) >= len(env.dev.units) {
		return rgb{}
	}
	tex, ok := env.dev.textures[env.dev.units[su.i]]
	if !ok {
		return rgb{}
	}
	return tex.sample(u, v)
}

// fragmentShader returns the colour of the fragment with the interpolated
// texture coordinate u, v.
type fragmentShader func(env *shadingEnv, u float32, v float32) rgb

// reference is the Go implementation of a shader program.
type reference struct {
	// whether the fragment shader reads the texture coordinate. if it does
	// not then the tex attribute is inactive in the linked program
	usesTex bool

	// uniforms read by the fragment shader. every uniform must be declared
	// in the GLSL source of the program
	uniforms []string

	shade fragmentShader
}

func fract(v float32) float32 {
	return v - float32(math.Floor(float64(v)))
}

func mix(x rgb, y rgb, a float32) rgb {
	var c rgb
	for i := range c {
		c[i] = x[i]*(1.0-a) + y[i]*a
	}
	return c
}

// step returns 0 if x < edge and 1 otherwise.
func step(edge float32, x float32) float32 {
	if x < edge {
		return 0
	}
	return 1
}

// references is keyed by program name.
var references = map[string]reference{
	"fill": {
		uniforms: []string{"color"},
		shade: func(env *shadingEnv, _ float32, _ float32) rgb {
			return env.vec3("color")
		},
	},

	"checkerboard": {
		usesTex:  true,
		uniforms: []string{"color1", "color2", "frequency"},
		shade: func(env *shadingEnv, u float32, v float32) rgb {
			freq := env.float("frequency")
			px := step(fract(u*freq), 0.5)
			py := step(fract(v*freq), 0.5)
			if py > 0.0 {
				return mix(env.vec3("color1"), env.vec3("color2"), px)
			}
			return mix(env.vec3("color2"), env.vec3("color1"), px)
		},
	},

	"copy": {
		usesTex:  true,
		uniforms: []string{"source"},
		shade: func(env *shadingEnv, u float32, v float32) rgb {
			return env.sample("source", u, v)
		},
	},

	"copyone": {
		uniforms: []string{"source"},
		shade: func(env *shadingEnv, _ float32, _ float32) rgb {
			return env.sample("source", 0.5, 0.5)
		},
	},

	"deinterlace": {
		usesTex:  true,
		uniforms: []string{"source", "offset"},
		shade: func(env *shadingEnv, u float32, v float32) rgb {
			offset := env.float("offset")
			above := env.sample("source", u, v-offset)
			centre := env.sample("source", u, v)
			below := env.sample("source", u, v+offset)
			var c rgb
			for i := range c {
				c[i] = 0.3*above[i] + 0.4*centre[i] + 0.3*below[i]
			}
			return c
		},
	},

	"colorcorrect": {
		usesTex:  true,
		uniforms: []string{"source", "add", "factor"},
		shade: func(env *shadingEnv, u float32, v float32) rgb {
			c := env.sample("source", u, v)
			add := env.vec3("add")
			factor := env.vec3("factor")
			for i := range c {
				c[i] = (c[i] + add[i]) * factor[i]
			}
			return c
		},
	},
}
