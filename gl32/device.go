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
	"github.com/go-gl/gl/v3.2-core/gl"

	"github.com/rewind-viewer/viewer/rewind"
	"github.com/rewind-viewer/viewer/scene"
)

// the size of a float32 in bytes
const floatSize = 4

// Device implements the scene.Device interface. Every vertex array and buffer
// created by the Device is deleted when Destroy() is called.
type Device struct {
	vaos []uint32
	vbos []uint32
}

// NewDevice is the preferred method of initialisation for the Device type.
func NewDevice() *Device {
	return &Device{}
}

// Destroy releases all resources created by the Device.
func (dev *Device) Destroy() {
	if len(dev.vbos) > 0 {
		gl.DeleteBuffers(int32(len(dev.vbos)), &dev.vbos[0])
	}
	if len(dev.vaos) > 0 {
		gl.DeleteVertexArrays(int32(len(dev.vaos)), &dev.vaos[0])
	}
	dev.vaos = dev.vaos[:0]
	dev.vbos = dev.vbos[:0]
}

// GenVertexArray implements the scene.ResourceManager interface.
func (dev *Device) GenVertexArray() scene.VertexArray {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	dev.vaos = append(dev.vaos, vao)
	return scene.VertexArray(vao)
}

// GenBuffer implements the scene.ResourceManager interface.
func (dev *Device) GenBuffer() scene.Buffer {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	dev.vbos = append(dev.vbos, vbo)
	return scene.Buffer(vbo)
}

// Clear implements the scene.Device interface.
func (dev *Device) Clear(c rewind.Color) {
	gl.ClearColor(c.R, c.G, c.B, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// BindVertexArray implements the scene.Device interface.
func (dev *Device) BindVertexArray(vao scene.VertexArray) {
	gl.BindVertexArray(uint32(vao))
}

// BindBuffer implements the scene.Device interface.
func (dev *Device) BindBuffer(vbo scene.Buffer) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(vbo))
}

// BufferData implements the scene.Device interface.
func (dev *Device) BufferData(data []float32, usage scene.Usage) {
	var u uint32
	switch usage {
	case scene.UsageDynamic:
		u = gl.DYNAMIC_DRAW
	default:
		u = gl.STATIC_DRAW
	}

	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, u)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*floatSize, gl.Ptr(data), u)
}

// VertexAttrib implements the scene.Device interface.
func (dev *Device) VertexAttrib(index uint32, size int32, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(index, size, gl.FLOAT, false, stride*floatSize, uintptr(offset*floatSize))
	gl.EnableVertexAttribArray(index)
}

// DrawArrays implements the scene.Device interface.
func (dev *Device) DrawArrays(mode scene.Mode, count int32) {
	switch mode {
	case scene.ModeLines:
		gl.DrawArrays(gl.LINES, 0, count)
	default:
		gl.DrawArrays(gl.TRIANGLES, 0, count)
	}
}
