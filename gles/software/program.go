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
	"regexp"
	"slices"
	"strings"

	"github.com/jetsetilly/glesbench/curated"
	"github.com/jetsetilly/glesbench/shaders"
)

// Sentinal errors returned by CreateProgram().
const (
	CompileError = "software: compile error: %s shader: %s"
	LinkError    = "software: link error: %s: %s"
)

var (
	uniformDecl = regexp.MustCompile(`(?m)^\s*uniform\s+(\w+)\s+(\w+)\s*;`)
	inputDecl   = regexp.MustCompile(`(?m)^\s*in\s+(\w+)\s+(\w+)\s*;`)
)

type declaration struct {
	typ  string
	name string
}

func declarations(re *regexp.Regexp, source string) []declaration {
	var decls []declaration
	for _, m := range re.FindAllStringSubmatch(source, -1) {
		decls = append(decls, declaration{typ: m[1], name: m[2]})
	}
	return decls
}

type uniform struct {
	declaration
	f [3]float32
	i int32
}

type program struct {
	name string
	ref  reference

	attribs map[string]int32

	// only active uniforms are included. the location of a uniform is its
	// index in the slice
	uniforms []uniform
}

func (prog *program) uniform(name string) *uniform {
	for i := range prog.uniforms {
		if prog.uniforms[i].name == name {
			return &prog.uniforms[i]
		}
	}
	return nil
}

// compile checks that the shader has an entry point. the log message
// imitates the style of a GLSL compiler.
func compile(stage string, source string) error {
	if !strings.Contains(source, "void main") {
		return curated.Errorf(CompileError, stage, "0:0: 'main' : function not defined")
	}
	return nil
}

func link(prog shaders.Program) (*program, error) {
	if err := compile("vertex", prog.Vertex); err != nil {
		return nil, err
	}
	if err := compile("fragment", prog.Fragment); err != nil {
		return nil, err
	}

	ref, ok := references[prog.Name]
	if !ok {
		return nil, curated.Errorf(LinkError, prog.Name, "no implementation for program")
	}

	p := &program{
		name:    prog.Name,
		ref:     ref,
		attribs: make(map[string]int32),
	}

	for _, d := range declarations(inputDecl, prog.Vertex) {
		switch d.name {
		case shaders.PositionAttrib:
			p.attribs[d.name] = shaders.PositionLocation
		case shaders.TexAttrib:
			if ref.usesTex {
				p.attribs[d.name] = shaders.TexLocation
			}
		}
	}

	if _, ok := p.attribs[shaders.PositionAttrib]; !ok {
		return nil, curated.Errorf(LinkError, prog.Name, "vertex shader does not declare position")
	}

	declared := append(declarations(uniformDecl, prog.Vertex), declarations(uniformDecl, prog.Fragment)...)
	for _, name := range ref.uniforms {
		idx := slices.IndexFunc(declared, func(d declaration) bool {
			return d.name == name
		})
		if idx == -1 {
			return nil, curated.Errorf(LinkError, prog.Name, "'"+name+"' : undeclared identifier")
		}
		p.uniforms = append(p.uniforms, uniform{declaration: declared[idx]})
	}

	return p, nil
}
