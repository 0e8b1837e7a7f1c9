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
	"github.com/rewind-viewer/viewer/rewind"
)

// lineRenderer draws the lines of a frame. Unlike staticGeometry the vertex
// data is replaced every time it is drawn.
type lineRenderer struct {
	ready bool
	vao   VertexArray
	vbo   Buffer

	// reused between calls to draw()
	scratch []float32
}

func (r *lineRenderer) draw(dev Device, lines []rewind.Line) {
	if len(lines) == 0 {
		return
	}

	if !r.ready {
		r.vao = dev.GenVertexArray()
		r.vbo = dev.GenBuffer()
		dev.BindVertexArray(r.vao)
		dev.BindBuffer(r.vbo)

		// colour then position
		dev.VertexAttrib(1, 3, lineStride, 0)
		dev.VertexAttrib(0, 2, lineStride, 3)

		dev.BindVertexArray(0)
		r.ready = true
	}

	dev.BindVertexArray(r.vao)

	// the array buffer binding is not part of the vertex array state
	dev.BindBuffer(r.vbo)

	r.scratch = appendLineVertices(r.scratch[:0], lines)
	dev.BufferData(r.scratch, UsageDynamic)
	dev.DrawArrays(ModeLines, int32(len(lines)*2))
}
