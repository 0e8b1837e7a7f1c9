// This file is part of Rewind Viewer.
//
// Rewind Viewer is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Rewind Viewer is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Rewind Viewer.  If not, see <https://www.gnu.org/licenses/>.


package gl32

import (
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/rewind-viewer/viewer/curated"
	"github.com/rewind-viewer/viewer/gl32/shaders"
	"github.com/rewind-viewer/viewer/scene"
)

// Sentinel error patterns.
const (
	CompileError = "shader: compile: %s: %v"
	LinkError    = "shader: link: %s: %v"
)

// Shader implements the scene.Shader interface for a linked program.
type Shader struct {
	name   string
	handle uint32

	// uniform locations are looked up once. a location of -1 means that the
	// uniform is not in the program
	uniforms map[string]int32
}

// NewShader compiles and links the vertex and fragment sources. The name is
// used in error messages.
func NewShader(name string, vertProgram string, fragProgram string) (*Shader, error) {
	sh := &Shader{
		name:     name,
		uniforms: make(map[string]int32),
	}

	err := sh.createProgram(vertProgram, fragProgram)
	if err != nil {
		return nil, err
	}

	return sh, nil
}

// Destroy deletes the program. The Shader should not be used after calling
// this function.
func (sh *Shader) Destroy() {
	if sh.handle != 0 {
		gl.DeleteProgram(sh.handle)
		sh.handle = 0
	}
	clear(sh.uniforms)
}

func (sh *Shader) createProgram(vertProgram string, fragProgram string) error {
	vertHandle, err := sh.compile(gl.VERTEX_SHADER, vertProgram)
	if err != nil {
		return err
	}
	defer gl.DeleteShader(vertHandle)

	fragHandle, err := sh.compile(gl.FRAGMENT_SHADER, fragProgram)
	if err != nil {
		return err
	}
	defer gl.DeleteShader(fragHandle)

	sh.handle = gl.CreateProgram()
	gl.AttachShader(sh.handle, vertHandle)
	gl.AttachShader(sh.handle, fragHandle)
	gl.LinkProgram(sh.handle)

	var status int32
	gl.GetProgramiv(sh.handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(sh.handle, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(sh.handle, logLength, nil, gl.Str(log))
		gl.DeleteProgram(sh.handle)
		sh.handle = 0
		return curated.Errorf(LinkError, sh.name, strings.TrimRight(log, "\x00"))
	}

	return nil
}

func (sh *Shader) compile(typ uint32, source string) (uint32, error) {
	handle := gl.CreateShader(typ)

	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csource, nil)
	free()

	gl.CompileShader(handle)
	if log := getShaderCompileError(handle); log != "" {
		gl.DeleteShader(handle)
		return 0, curated.Errorf(CompileError, sh.name, log)
	}

	return handle, nil
}

// getShaderCompileError returns the most recent error generated by the
// shader compiler.
func getShaderCompileError(handle uint32) string {
	var isCompiled int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &isCompiled)
	if isCompiled == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
		if logLength > 0 {
			// logLength includes the NULL character
			log := strings.Repeat("\x00", int(logLength+1))
			gl.GetShaderInfoLog(handle, logLength, &logLength, gl.Str(log))
			return strings.TrimRight(log, "\x00")
		}
		return "unknown error"
	}
	return ""
}

func (sh *Shader) location(name string) int32 {
	if loc, ok := sh.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(sh.handle, gl.Str(name+"\x00"))
	sh.uniforms[name] = loc
	return loc
}

// Use implements the scene.Shader interface.
func (sh *Shader) Use() {
	gl.UseProgram(sh.handle)
}

// SetMat4 implements the scene.Shader interface.
func (sh *Shader) SetMat4(name string, m mgl32.Mat4) {
	if loc := sh.location(name); loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
}

// SetVec3 implements the scene.Shader interface.
func (sh *Shader) SetVec3(name string, v mgl32.Vec3) {
	if loc := sh.location(name); loc != -1 {
		gl.Uniform3f(loc, v[0], v[1], v[2])
	}
}

// SetFloat implements the scene.Shader interface.
func (sh *Shader) SetFloat(name string, f float32) {
	if loc := sh.location(name); loc != -1 {
		gl.Uniform1f(loc, f)
	}
}

// Programs is the set of shader programs required by a scene.Scene.
type Programs struct {
	Color  *Shader
	Circle *Shader
	Lines  *Shader
}

// NewPrograms compiles every shader program required by a scene.Scene.
func NewPrograms() (*Programs, error) {
	var err error

	prg := &Programs{}

	prg.Color, err = NewShader("color", string(shaders.SimpleVertexShader), string(shaders.SimpleFragmentShader))
	if err != nil {
		return nil, err
	}

	prg.Circle, err = NewShader("circle", string(shaders.CircleVertexShader), string(shaders.CircleFragmentShader))
	if err != nil {
		prg.Destroy()
		return nil, err
	}

	prg.Lines, err = NewShader("lines", string(shaders.LinesVertexShader), string(shaders.LinesFragmentShader))
	if err != nil {
		prg.Destroy()
		return nil, err
	}

	return prg, nil
}

// Shaders returns the programs in the form required by scene.NewScene().
func (prg *Programs) Shaders() scene.Shaders {
	return scene.Shaders{
		Color:  prg.Color,
		Circle: prg.Circle,
		Lines:  prg.Lines,
	}
}

// Destroy deletes every program.
func (prg *Programs) Destroy() {
	for _, sh := range []*Shader{prg.Color, prg.Circle, prg.Lines} {
		if sh != nil {
			sh.Destroy()
		}
	}
}
