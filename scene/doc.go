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

// Package scene draws the frames of a rewind.Timeline.
//
// The Scene draws, in order: a background grid, a decorative triangle and then
// the circles, rectangles and lines of the current frame. Circles and
// rectangles are drawn with a single unit square that is scaled and moved into
// place with a model matrix. The circle shader discards the fragments of the
// square that are outside the circle.
//
// Geometry that never changes (the unit square, the grid and the decoration) is
// uploaded to the GPU the first time it is drawn. The vertex data for lines is
// uploaded every time the lines are drawn.
//
// The Scene does not talk to the graphics API directly. Instead it uses the
// Device and Shader interfaces, which are implemented for OpenGL by the gl32
// package.
package scene
