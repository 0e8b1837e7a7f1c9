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

package scene_test

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/rewind-viewer/viewer/rewind"
	"github.com/rewind-viewer/viewer/scene"
)

// recorder is shared by the fake device, the fake shaders and the fake
// counters so that the order of all calls can be checked
type recorder struct {
	calls []string
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) reset() {
	r.calls = r.calls[:0]
}

// filter returns only those calls with the specified prefix
func (r *recorder) filter(prefix string) []string {
	var f []string
	for _, c := range r.calls {
		if strings.HasPrefix(c, prefix) {
			f = append(f, c)
		}
	}
	return f
}

func (r *recorder) String() string {
	return strings.Join(r.calls, "\n")
}

type fakeDevice struct {
	rec *recorder

	nextHandle uint32

	// the data of the most recent call to BufferData()
	lastData  []float32
	lastUsage scene.Usage
}

func (d *fakeDevice) GenVertexArray() scene.VertexArray {
	d.nextHandle++
	d.rec.add("GenVertexArray %d", d.nextHandle)
	return scene.VertexArray(d.nextHandle)
}

func (d *fakeDevice) GenBuffer() scene.Buffer {
	d.nextHandle++
	d.rec.add("GenBuffer %d", d.nextHandle)
	return scene.Buffer(d.nextHandle)
}

func (d *fakeDevice) Clear(c rewind.Color) {
	d.rec.add("Clear %.2f %.2f %.2f", c.R, c.G, c.B)
}

func (d *fakeDevice) BindVertexArray(vao scene.VertexArray) {
	d.rec.add("BindVertexArray %d", vao)
}

func (d *fakeDevice) BindBuffer(vbo scene.Buffer) {
	d.rec.add("BindBuffer %d", vbo)
}

func (d *fakeDevice) BufferData(data []float32, usage scene.Usage) {
	d.lastData = append([]float32(nil), data...)
	d.lastUsage = usage
	d.rec.add("BufferData %d %d", len(data), usage)
}

func (d *fakeDevice) VertexAttrib(index uint32, size int32, stride int32, offset int) {
	d.rec.add("VertexAttrib %d %d %d %d", index, size, stride, offset)
}

func (d *fakeDevice) DrawArrays(mode scene.Mode, count int32) {
	switch mode {
	case scene.ModeLines:
		d.rec.add("DrawArrays lines %d", count)
	case scene.ModeTriangles:
		d.rec.add("DrawArrays triangles %d", count)
	}
}

type fakeShader struct {
	rec  *recorder
	name string

	// most recent value of every uniform
	mat4  map[string]mgl32.Mat4
	vec3  map[string]mgl32.Vec3
	float map[string]float32
}

func newFakeShader(rec *recorder, name string) *fakeShader {
	return &fakeShader{
		rec:   rec,
		name:  name,
		mat4:  make(map[string]mgl32.Mat4),
		vec3:  make(map[string]mgl32.Vec3),
		float: make(map[string]float32),
	}
}

func (s *fakeShader) Use() {
	s.rec.add("Use %s", s.name)
}

func (s *fakeShader) SetMat4(name string, m mgl32.Mat4) {
	s.mat4[name] = m
	s.rec.add("SetMat4 %s %s", s.name, name)
}

func (s *fakeShader) SetVec3(name string, v mgl32.Vec3) {
	s.vec3[name] = v
	s.rec.add("SetVec3 %s %s %v", s.name, name, v)
}

func (s *fakeShader) SetFloat(name string, f float32) {
	s.float[name] = f
	s.rec.add("SetFloat %s %s %v", s.name, name, f)
}

type fakeCounters struct {
	rec *recorder
}

func (c fakeCounters) Counter(label string, count int) {
	c.rec.add("Counter %s %d", label, count)
}

type fixture struct {
	rec    *recorder
	dev    *fakeDevice
	color  *fakeShader
	circle *fakeShader
	lines  *fakeShader
	scene  *scene.Scene
	prefs  *scene.Preferences
}

func newFixture() *fixture {
	rec := &recorder{}
	f := &fixture{
		rec:    rec,
		dev:    &fakeDevice{rec: rec},
		color:  newFakeShader(rec, "color"),
		circle: newFakeShader(rec, "circle"),
		lines:  newFakeShader(rec, "lines"),
	}
	f.prefs, _ = scene.NewPreferences("")
	f.scene = scene.NewScene(f.dev, scene.Shaders{
		Color:  f.color,
		Circle: f.circle,
		Lines:  f.lines,
	}, fakeCounters{rec: rec}, f.prefs)
	return f
}
