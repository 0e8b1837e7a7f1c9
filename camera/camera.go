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


package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Limits of the zoom value.
const (
	MinZoom = 0.05
	MaxZoom = 50.0
)

// Camera is a pan and zoom view of the world. The zero value is not usable,
// use NewCamera() instead.
type Camera struct {
	// size of the viewport in pixels
	width  float32
	height float32

	// world coordinates of the top-left corner of the viewport
	origin mgl32.Vec2

	// number of pixels per world unit
	zoom float32
}

// NewCamera is the preferred method of initialisation for the Camera type.
func NewCamera(width, height float32) *Camera {
	cam := &Camera{zoom: 1.0}
	cam.SetViewport(width, height)
	return cam
}

// SetViewport changes the size of the viewport in pixels. The world
// coordinate of the top-left corner does not change.
func (cam *Camera) SetViewport(width, height float32) {
	cam.width = max(width, 1.0)
	cam.height = max(height, 1.0)
}

// Viewport returns the size of the viewport in pixels.
func (cam *Camera) Viewport() (float32, float32) {
	return cam.width, cam.height
}

// Zoom returns the number of pixels per world unit.
func (cam *Camera) Zoom() float32 {
	return cam.zoom
}

// Origin returns the world coordinate of the top-left corner of the viewport.
func (cam *Camera) Origin() mgl32.Vec2 {
	return cam.origin
}

// CenterOn moves the camera so that the world point is in the centre of the
// viewport. The zoom is not changed.
func (cam *Camera) CenterOn(x, y float32) {
	cam.origin = mgl32.Vec2{
		x - cam.width/(2*cam.zoom),
		y - cam.height/(2*cam.zoom),
	}
}

// Fit changes the zoom so that an area of the world, with the top-left corner
// at the world origin, fills as much of the viewport as possible. The area is
// centred in the viewport.
func (cam *Camera) Fit(width, height float32) {
	if width <= 0 || height <= 0 {
		return
	}
	cam.zoom = mgl32.Clamp(min(cam.width/width, cam.height/height), MinZoom, MaxZoom)
	cam.CenterOn(width/2, height/2)
}

// Pan moves the camera by a distance measured in pixels. Dragging the mouse
// to the right moves the world to the right.
func (cam *Camera) Pan(dx, dy float32) {
	cam.origin = cam.origin.Sub(mgl32.Vec2{dx / cam.zoom, dy / cam.zoom})
}

// ZoomAt multiplies the zoom by factor. The world point under the pixel (px,
// py) stays under that pixel. The zoom is clamped to the range MinZoom to
// MaxZoom.
func (cam *Camera) ZoomAt(factor float32, px, py float32) {
	if factor <= 0 {
		return
	}
	anchor := cam.ScreenToWorld(px, py)
	cam.zoom = mgl32.Clamp(cam.zoom*factor, MinZoom, MaxZoom)
	cam.origin = mgl32.Vec2{
		anchor.X() - px/cam.zoom,
		anchor.Y() - py/cam.zoom,
	}
}

// ScreenToWorld converts a pixel coordinate in the viewport to a world
// coordinate.
func (cam *Camera) ScreenToWorld(px, py float32) mgl32.Vec2 {
	return mgl32.Vec2{
		cam.origin.X() + px/cam.zoom,
		cam.origin.Y() + py/cam.zoom,
	}
}

// ProjView returns the combined projection and view matrix. The top-left
// corner of the viewport is mapped to (-1, 1) in clip space.
func (cam *Camera) ProjView() mgl32.Mat4 {
	left := cam.origin.X()
	top := cam.origin.Y()
	right := left + cam.width/cam.zoom
	bottom := top + cam.height/cam.zoom
	return mgl32.Ortho(left, right, bottom, top, -1.0, 1.0)
}
