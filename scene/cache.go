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

// staticGeometry is vertex data that is uploaded to the GPU once, the first
// time it is drawn, and never changes after that.
type staticGeometry struct {
	ready    bool
	vao      VertexArray
	vbo      Buffer
	vertices int32
}

// draw the geometry, creating it with the build function if necessary. the
// build function is only ever called once.
func (g *staticGeometry) draw(dev Device, mode Mode, build func() []float32) {
	if !g.ready {
		data := build()

		g.vao = dev.GenVertexArray()
		g.vbo = dev.GenBuffer()
		dev.BindVertexArray(g.vao)
		dev.BindBuffer(g.vbo)
		dev.BufferData(data, UsageStatic)
		dev.VertexAttrib(0, staticStride, staticStride, 0)
		dev.BindVertexArray(0)

		g.vertices = int32(len(data) / staticStride)
		g.ready = true
	}

	if g.vertices == 0 {
		return
	}

	dev.BindVertexArray(g.vao)
	dev.DrawArrays(mode, g.vertices)
}
