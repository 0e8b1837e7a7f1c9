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


// Package shaders contains the GLSL source of the shader programs used to
// draw the scene.
package shaders

import _ "embed"

//go:embed "simple.vert"
var SimpleVertexShader []byte

//go:embed "simple.frag"
var SimpleFragmentShader []byte

//go:embed "circle.vert"
var CircleVertexShader []byte

//go:embed "circle.frag"
var CircleFragmentShader []byte

//go:embed "lines.vert"
var LinesVertexShader []byte

//go:embed "lines.frag"
var LinesFragmentShader []byte
