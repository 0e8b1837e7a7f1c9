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

package rewind

import "fmt"

// Color is an RGB colour. Each channel is in the range 0.0 to 1.0.
type Color struct {
	R, G, B float32
}

// ColorFromRGB converts a packed 0xRRGGBB value to a Color. Bits above the
// lowest 24 are ignored.
func ColorFromRGB(rgb uint32) Color {
	return Color{
		R: float32((rgb>>16)&0xff) / 255.0,
		G: float32((rgb>>8)&0xff) / 255.0,
		B: float32(rgb&0xff) / 255.0,
	}
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", uint8(c.R*255+0.5), uint8(c.G*255+0.5), uint8(c.B*255+0.5))
}

// Point is a 2D position in world space.
type Point struct {
	X, Y float32
}

// Circle is drawn as a filled disc.
type Circle struct {
	Center Point
	Radius float32
	Color  Color
}

// Rectangle is drawn as a filled, axis aligned rectangle.
type Rectangle struct {
	Center Point
	Width  float32
	Height float32
	Color  Color
}

// RectangleFromCorners returns the Rectangle with the two opposite corners
// (x1,y1) and (x2,y2). The corners can be given in any order.
func RectangleFromCorners(x1, y1, x2, y2 float32, color Color) Rectangle {
	return Rectangle{
		Center: Point{X: (x1 + x2) * 0.5, Y: (y1 + y2) * 0.5},
		Width:  abs(x2 - x1),
		Height: abs(y2 - y1),
		Color:  color,
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// Line is a single segment between (X1,Y1) and (X2,Y2). The colour is the same
// for both ends of the segment.
type Line struct {
	X1, Y1 float32
	X2, Y2 float32
	Color  Color
}
