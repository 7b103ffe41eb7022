// Package shader compiles GLSL programs and sets their uniforms.
package shader

import (
	"fmt"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/objview/internal/engine/shader/shaders"
	"github.com/Faultbox/objview/internal/logger"
	"github.com/Faultbox/objview/pkg/math"
)

// Program is a linked shader program with a per-name uniform location cache.
type Program struct {
	ID       uint32
	uniforms map[string]int32
}

// New compiles and links a program from GLSL sources.
func New(vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return &Program{ID: id, uniforms: make(map[string]int32)}, nil
}

// Load reads both shader stages from disk and builds a program.
func Load(vertexPath, fragmentPath string) (*Program, error) {
	vs, err := os.ReadFile(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("reading vertex shader: %w", err)
	}
	fs, err := os.ReadFile(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("reading fragment shader: %w", err)
	}
	p, err := New(string(vs), string(fs))
	if err != nil {
		return nil, fmt.Errorf("%s + %s: %w", vertexPath, fragmentPath, err)
	}
	return p, nil
}

// Basic builds the embedded Phong program.
func Basic() (*Program, error) {
	return New(shaders.BasicVertexShader, shaders.BasicFragmentShader)
}

// Use makes the program current. Uniform setters act on the current program,
// so call this first.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Delete frees the GL program.
func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}

// Uniform returns the location of name, querying GL once per name.
// Unknown or optimised-out uniforms give -1, which GL ignores on set.
func (p *Program) Uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.ID, gl.Str(name+"\x00"))
	if loc < 0 {
		logger.Debug("uniform not active", zap.String("name", name), zap.Uint32("program", p.ID))
	}
	p.uniforms[name] = loc
	return loc
}

// SetMat4 uploads a column-major matrix.
func (p *Program) SetMat4(name string, m math.Mat4) {
	gl.UniformMatrix4fv(p.Uniform(name), 1, false, m.Ptr())
}

// SetMat3 uploads a column-major 3x3 matrix, such as a normal matrix.
func (p *Program) SetMat3(name string, m [9]float32) {
	gl.UniformMatrix3fv(p.Uniform(name), 1, false, &m[0])
}

// SetVec3 uploads a vector.
func (p *Program) SetVec3(name string, v math.Vec3) {
	gl.Uniform3f(p.Uniform(name), v.X, v.Y, v.Z)
}

// SetFloat uploads a scalar.
func (p *Program) SetFloat(name string, f float32) {
	gl.Uniform1f(p.Uniform(name), f)
}

// SetInt uploads an integer, typically a sampler unit.
func (p *Program) SetInt(name string, i int32) {
	gl.Uniform1i(p.Uniform(name), i)
}

// CompileProgram compiles vertex and fragment shaders and links them into a
// program, returning its GL name.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vert, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vert)

	frag, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(frag)

	program := gl.CreateProgram()
	gl.AttachShader(program, vert)
	gl.AttachShader(program, frag)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		msg := infoLog(program, gl.GetProgramiv, gl.GetProgramInfoLog)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", msg)
	}
	return program, nil
}

func compileShader(source string, kind uint32, name string) (uint32, error) {
	sh := gl.CreateShader(kind)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, csource, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		msg := infoLog(sh, gl.GetShaderiv, gl.GetShaderInfoLog)
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("%s shader: %s", name, msg)
	}
	return sh, nil
}

func infoLog(
	obj uint32,
	getiv func(uint32, uint32, *int32),
	getLog func(uint32, int32, *int32, *uint8),
) string {
	var n int32
	getiv(obj, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return "(no log)"
	}
	buf := make([]byte, n)
	getLog(obj, n, nil, &buf[0])
	return string(buf[:n-1])
}
