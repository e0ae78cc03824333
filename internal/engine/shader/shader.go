// Package shader compiles GLSL programs and binds named parameters to them.
package shader

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrUnsupportedParam is returned by Apply for a value type that has no
// uniform mapping.
var ErrUnsupportedParam = errors.New("unsupported parameter type")

// TextureSource is a texture that can be bound to a sampler.
type TextureSource interface {
	TextureID() uint32
}

// Program is a linked GLSL program with its active uniforms resolved.
type Program struct {
	name      string
	id        uint32
	locations map[string]int32
	uniforms  []string
}

// New compiles and links a program. Each define is injected as
// "#define NAME" right after the #version directive of both stages.
func New(name, vertexSrc, fragmentSrc string, defines ...string) (*Program, error) {
	id, err := CompileProgram(withDefines(vertexSrc, defines), withDefines(fragmentSrc, defines))
	if err != nil {
		return nil, fmt.Errorf("program %s: %w", name, err)
	}

	p := &Program{
		name:      name,
		id:        id,
		locations: make(map[string]int32),
	}
	p.introspect()
	return p, nil
}

// Name returns the program name.
func (p *Program) Name() string {
	return p.name
}

// Uniforms returns the active uniform names, sorted.
func (p *Program) Uniforms() []string {
	return p.uniforms
}

// Location returns the location of an active uniform, or -1.
func (p *Program) Location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	return -1
}

// Use makes the program current.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Apply uploads every parameter the program reads. Parameters the program
// does not declare are skipped. Textures are bound to consecutive units
// starting at zero. The program must be current.
func (p *Program) Apply(params map[string]any) error {
	unit := int32(0)
	for _, name := range p.uniforms {
		value, ok := params[name]
		if !ok {
			continue
		}
		loc := p.Location(name)

		switch v := value.(type) {
		case bool:
			b := int32(0)
			if v {
				b = 1
			}
			gl.Uniform1i(loc, b)
		case int32:
			gl.Uniform1i(loc, v)
		case float32:
			gl.Uniform1f(loc, v)
		case mgl32.Vec2:
			gl.Uniform2f(loc, v[0], v[1])
		case mgl32.Vec3:
			gl.Uniform3f(loc, v[0], v[1], v[2])
		case mgl32.Vec4:
			gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
		case mgl32.Mat4:
			gl.UniformMatrix4fv(loc, 1, false, &v[0])
		case TextureSource:
			gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
			gl.BindTexture(gl.TEXTURE_2D, v.TextureID())
			gl.Uniform1i(loc, unit)
			unit++
		default:
			return fmt.Errorf("%w: %s is %T", ErrUnsupportedParam, name, value)
		}
	}
	return nil
}

// Delete frees the GL program.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

func (p *Program) introspect() {
	var count, maxLen int32
	gl.GetProgramiv(p.id, gl.ACTIVE_UNIFORMS, &count)
	gl.GetProgramiv(p.id, gl.ACTIVE_UNIFORM_MAX_LENGTH, &maxLen)
	if maxLen < 1 {
		maxLen = 1
	}

	buf := make([]uint8, maxLen)
	for i := int32(0); i < count; i++ {
		var length, size int32
		var xtype uint32
		gl.GetActiveUniform(p.id, uint32(i), maxLen, &length, &size, &xtype, &buf[0])

		name := baseUniformName(string(buf[:length]))
		p.locations[name] = gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
		p.uniforms = append(p.uniforms, name)
	}
	sort.Strings(p.uniforms)
}

// baseUniformName strips the "[0]" suffix GL reports for array uniforms.
func baseUniformName(name string) string {
	return strings.TrimSuffix(name, "[0]")
}

// withDefines inserts one #define line per name after the #version line.
func withDefines(source string, defines []string) string {
	if len(defines) == 0 {
		return source
	}

	var block strings.Builder
	for _, d := range defines {
		block.WriteString("#define ")
		block.WriteString(d)
		block.WriteByte('\n')
	}

	idx := strings.Index(source, "#version")
	if idx < 0 {
		return block.String() + source
	}
	eol := strings.IndexByte(source[idx:], '\n')
	if eol < 0 {
		return source + "\n" + block.String()
	}
	split := idx + eol + 1
	return source[:split] + block.String() + source[split:]
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
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", strings.TrimRight(string(log), "\x00"))
	}

	return program, nil
}

func compileShader(source string, shaderType uint32, stage string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", stage, strings.TrimRight(string(log), "\x00"))
	}

	return shader, nil
}

// GetUniform returns the location of a uniform in a raw program ID.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
