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

package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/rewind-viewer/viewer/rewind"
)

// VertexArray is the handle of a vertex array object. The zero value means
// that the array has not been created.
type VertexArray uint32

// Buffer is the handle of a vertex buffer object. The zero value means that
// the buffer has not been created.
type Buffer uint32

// ResourceManager allocates GPU resources. Resources allocated by the
// ResourceManager are released when the ResourceManager is destroyed.
type ResourceManager interface {
	GenVertexArray() VertexArray
	GenBuffer() Buffer
}

// Usage is a hint about how often the contents of a buffer will change.
type Usage int

// List of valid Usage values.
const (
	UsageStatic Usage = iota
	UsageDynamic
)

// Mode is the primitive type used to interpret a list of vertices.
type Mode int

// List of valid Mode values.
const (
	ModeTriangles Mode = iota
	ModeLines
)

// Device is the part of the graphics API used by the Scene. All functions
// must be called from the goroutine that owns the graphics context.
type Device interface {
	ResourceManager

	// Clear the framebuffer to the specified colour.
	Clear(c rewind.Color)

	// BindVertexArray makes the vertex array current. Binding zero unbinds
	// the current vertex array.
	BindVertexArray(vao VertexArray)

	// BindBuffer makes the buffer the current array buffer.
	BindBuffer(vbo Buffer)

	// BufferData replaces the entire contents of the current array buffer.
	BufferData(data []float32, usage Usage)

	// VertexAttrib describes and enables an attribute of the current vertex
	// array. The size, stride and offset are measured in floats, not bytes.
	VertexAttrib(index uint32, size int32, stride int32, offset int)

	// DrawArrays draws count vertices from the current vertex array,
	// starting with the first vertex.
	DrawArrays(mode Mode, count int32)
}

// Shader is a compiled shader program. Setting a uniform that is not present
// in the program is not an error and is silently ignored.
type Shader interface {
	Use()
	SetMat4(name string, m mgl32.Mat4)
	SetVec3(name string, v mgl32.Vec3)
	SetFloat(name string, f float32)
}

// Shaders are the three shader programs required by the Scene.
type Shaders struct {
	// flat colour: uniforms proj_view, model and color
	Color Shader

	// circle: uniforms proj_view, model, color, center and radius. fragments
	// further than radius from center are discarded
	Circle Shader

	// per vertex colour: uniform proj_view. attribute 0 is the position and
	// attribute 1 is the colour
	Lines Shader
}

// Counters receives the number of primitives drawn in each category. It is
// used by the GUI to display information about the current frame. A Counters
// implementation must not fail in a way that affects rendering.
type Counters interface {
	Counter(label string, count int)
}

type discardCounters struct{}

func (discardCounters) Counter(_ string, _ int) {}
