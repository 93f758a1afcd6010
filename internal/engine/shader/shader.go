// Package shader compiles GLSL program pairs and uploads their uniforms.
package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/supersphere/internal/engine/shaders"
	"github.com/Faultbox/supersphere/pkg/math"
)

// Program is a linked GL program with cached uniform locations.
type Program struct {
	ID        uint32
	Name      string
	locations map[string]int32
}

// Compile builds a GL program from a registry entry. Requires a current GL context.
func Compile(p *shaders.Program) (*Program, error) {
	id, err := CompileProgram(p.Vertex, p.Fragment)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", p.Name, err)
	}
	return &Program{
		ID:        id,
		Name:      p.Name,
		locations: make(map[string]int32),
	}, nil
}

// Use makes the program current.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Location returns the cached location of a uniform, or -1 when the linker
// dropped it.
func (p *Program) Location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := GetUniform(p.ID, name)
	p.locations[name] = loc
	return loc
}

// SetValue uploads a float/vec2/vec3 uniform. The program must be in use.
func (p *Program) SetValue(name string, v shaders.Value) {
	loc := p.Location(name)
	if loc < 0 {
		return
	}
	switch v.Kind {
	case shaders.KindFloat:
		gl.Uniform1f(loc, v.V[0])
	case shaders.KindVec2:
		gl.Uniform2f(loc, v.V[0], v.V[1])
	case shaders.KindVec3:
		gl.Uniform3f(loc, v.V[0], v.V[1], v.V[2])
	}
}

// SetMat4 uploads a matrix uniform. The program must be in use.
func (p *Program) SetMat4(name string, m math.Mat4) {
	loc := p.Location(name)
	if loc < 0 {
		return
	}
	gl.UniformMatrix4fv(loc, 1, false, m.Ptr())
}

// Delete releases the GL program.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

// CompileProgram compiles vertex and fragment shaders and links them into a program.
// Returns the program ID or an error if compilation/linking fails.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", programLog(program))
	}

	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, stage string) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csource, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(sh, logLen, nil, &log[0])
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("%s shader: %s", stage, gl.GoStr(&log[0]))
	}

	return sh, nil
}

func programLog(program uint32) string {
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	log := make([]byte, logLen+1)
	gl.GetProgramInfoLog(program, logLen, nil, &log[0])
	return gl.GoStr(&log[0])
}

// GetUniform returns the uniform location for the given name, or -1 if the
// uniform is not found or inactive.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
