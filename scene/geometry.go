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

// number of floats per vertex in the static geometry
const staticStride = 3

// number of floats per vertex in the line geometry: three for the colour and
// two for the position
const lineStride = 5

// two triangles covering the square (-1,-1) to (1,1)
var unitSquare = []float32{
	-1.0, -1.0, 0.0,
	1.0, -1.0, 0.0,
	-1.0, 1.0, 0.0,

	-1.0, 1.0, 0.0,
	1.0, -1.0, 0.0,
	1.0, 1.0, 0.0,
}

// the decorative triangle drawn at the configured decoration position
var decoration = []float32{
	-0.5, -1.0, 0.0,
	0.5, -1.0, 0.0,
	0.0, 1.0, 0.0,
}

// UnitSquareVertices returns a copy of the vertices used to draw circles and
// rectangles.
func UnitSquareVertices() []float32 {
	return append([]float32(nil), unitSquare...)
}

// DecorationVertices returns a copy of the vertices of the decorative
// triangle.
func DecorationVertices() []float32 {
	return append([]float32(nil), decoration...)
}

// GridOffsets returns the positions of the grid lines in the range 0.0 to 1.0
// for a grid of n cells. There are always n+1 offsets. An n of less than one
// is treated as one.
func GridOffsets(n int) []float32 {
	n = max(n, 1)
	o := make([]float32, 0, n+1)
	for i := 0; i <= n; i++ {
		o = append(o, float32(i)/float32(n))
	}
	return o
}

// GridVertices returns the vertices of a grid of n by n cells covering the unit
// square (0,0) to (1,1). Each grid line is drawn as two halves so there are four
// line segments (eight vertices) for each offset returned by GridOffsets().
func GridVertices(n int) []float32 {
	offsets := GridOffsets(n)
	v := make([]float32, 0, len(offsets)*8*staticStride)
	for _, s := range offsets {
		v = append(v,
			// vertical
			s, 0.0, 0.0, s, 0.5, 0.0,
			s, 0.5, 0.0, s, 1.0, 0.0,

			// horizontal
			0.0, s, 0.0, 0.5, s, 0.0,
			0.5, s, 0.0, 1.0, s, 0.0,
		)
	}
	return v
}

// LineVertices returns the interleaved colour and position data for a list of
// lines. Each line is two vertices of five floats.
func LineVertices(lines []rewind.Line) []float32 {
	return appendLineVertices(make([]float32, 0, len(lines)*2*lineStride), lines)
}

func appendLineVertices(v []float32, lines []rewind.Line) []float32 {
	for _, l := range lines {
		v = append(v,
			l.Color.R, l.Color.G, l.Color.B, l.X1, l.Y1,
			l.Color.R, l.Color.G, l.Color.B, l.X2, l.Y2,
		)
	}
	return v
}
