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


package camera_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/rewind-viewer/viewer/camera"
	"github.com/rewind-viewer/viewer/test"
)

func clip(cam *camera.Camera, x, y float32) mgl32.Vec4 {
	return cam.ProjView().Mul4x1(mgl32.Vec4{x, y, 0.0, 1.0})
}

func TestProjView(t *testing.T) {
	cam := camera.NewCamera(800, 600)

	// the world origin is in the top-left corner
	v := clip(cam, 0, 0)
	test.ExpectApproximate(t, v.X(), -1.0, 0.0001)
	test.ExpectApproximate(t, v.Y(), 1.0, 0.0001)

	// and the y axis points down
	v = clip(cam, 800, 600)
	test.ExpectApproximate(t, v.X(), 1.0, 0.0001)
	test.ExpectApproximate(t, v.Y(), -1.0, 0.0001)

	// depth of primitives must be inside the clip volume
	v = cam.ProjView().Mul4x1(mgl32.Vec4{0, 0, 0.1, 1.0})
	test.ExpectSuccess(t, v.Z() > -1.0 && v.Z() < 1.0)
}

func TestPan(t *testing.T) {
	cam := camera.NewCamera(800, 600)
	cam.Pan(100, 50)

	// the world moves with the mouse so the origin moves the other way
	test.ExpectApproximate(t, cam.Origin().X(), -100.0, 0.0001)
	test.ExpectApproximate(t, cam.Origin().Y(), -50.0, 0.0001)

	w := cam.ScreenToWorld(100, 50)
	test.ExpectApproximate(t, w.X()+1.0, 1.0, 0.0001)
	test.ExpectApproximate(t, w.Y()+1.0, 1.0, 0.0001)
}

func TestZoomAt(t *testing.T) {
	cam := camera.NewCamera(800, 600)
	before := cam.ScreenToWorld(200, 150)

	cam.ZoomAt(2.0, 200, 150)
	test.ExpectApproximate(t, cam.Zoom(), 2.0, 0.0001)

	// the point under the cursor does not move
	after := cam.ScreenToWorld(200, 150)
	test.ExpectApproximate(t, after.X(), before.X(), 0.0001)
	test.ExpectApproximate(t, after.Y(), before.Y(), 0.0001)

	// zoom is clamped
	cam.ZoomAt(1000.0, 0, 0)
	test.ExpectEquality(t, cam.Zoom(), float32(camera.MaxZoom))
	cam.ZoomAt(0.00001, 0, 0)
	test.ExpectEquality(t, cam.Zoom(), float32(camera.MinZoom))

	// invalid factors are ignored
	cam.ZoomAt(0, 0, 0)
	test.ExpectEquality(t, cam.Zoom(), float32(camera.MinZoom))
}

func TestFit(t *testing.T) {
	cam := camera.NewCamera(600, 600)
	cam.Fit(1200, 800)
	test.ExpectApproximate(t, cam.Zoom(), 0.5, 0.0001)

	// the centre of the area is in the centre of the viewport
	c := cam.ScreenToWorld(300, 300)
	test.ExpectApproximate(t, c.X(), 600.0, 0.0001)
	test.ExpectApproximate(t, c.Y(), 400.0, 0.0001)

	// the whole width of the area is visible
	v := clip(cam, 0, 400)
	test.ExpectApproximate(t, v.X(), -1.0, 0.0001)
	v = clip(cam, 1200, 400)
	test.ExpectApproximate(t, v.X(), 1.0, 0.0001)
}

func TestViewport(t *testing.T) {
	cam := camera.NewCamera(0, -10)
	w, h := cam.Viewport()
	test.ExpectEquality(t, w, float32(1))
	test.ExpectEquality(t, h, float32(1))

	cam.SetViewport(1024, 768)
	w, h = cam.Viewport()
	test.ExpectEquality(t, w, float32(1024))
	test.ExpectEquality(t, h, float32(768))
}
