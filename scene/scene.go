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
	"github.com/go-gl/mathgl/mgl32"

	"github.com/rewind-viewer/viewer/assert"
	"github.com/rewind-viewer/viewer/logger"
	"github.com/rewind-viewer/viewer/rewind"
)

// the depth of the decorative triangle. above the grid but below the frame
const decorationDepth = 0.01

// the depth of circles and rectangles. above the grid and the decoration
const primitiveDepth = 0.1

// the colour of the decorative triangle
var decorationColor = mgl32.Vec3{0.0, 0.0, 1.0}

// Counter labels.
const (
	CounterCircles    = "Circles"
	CounterRectangles = "Rectangles"
	CounterLines      = "Lines"
)

// Scene draws the current frame of a Timeline, on top of a grid and a
// decorative triangle.
//
// The Timeline can be appended to from any goroutine but Render() must only
// be called from the goroutine that owns the graphics context.
type Scene struct {
	dev      Device
	shaders  Shaders
	counters Counters
	prefs    *Preferences

	timeline *rewind.Timeline

	// all GPU work must happen on the same goroutine
	thread assert.Thread

	square     staticGeometry
	grid       staticGeometry
	decoration staticGeometry
	lines      lineRenderer
}

// NewScene is the preferred method of initialisation for the Scene type. No
// GPU resources are allocated until the first call to Render().
//
// The counters argument can be nil, in which case counts are not reported. If
// prefs is nil then the default preferences are used.
func NewScene(dev Device, shaders Shaders, counters Counters, prefs *Preferences) *Scene {
	if counters == nil {
		counters = discardCounters{}
	}
	if prefs == nil {
		// NewPreferences() cannot fail if there is no file to load
		prefs, _ = NewPreferences("")
	}

	return &Scene{
		dev:      dev,
		shaders:  shaders,
		counters: counters,
		prefs:    prefs,
		timeline: rewind.NewTimeline(),
	}
}

// Timeline returns the Timeline owned by the Scene.
func (sc *Scene) Timeline() *rewind.Timeline {
	return sc.timeline
}

// Preferences returns the Preferences used by the Scene.
func (sc *Scene) Preferences() *Preferences {
	return sc.prefs
}

// Append a frame to the Scene's Timeline. Safe to call from any goroutine.
func (sc *Scene) Append(f *rewind.Frame) {
	sc.timeline.Append(f)
}

// SetCurrentIndex changes the frame shown by the Scene. See
// rewind.Timeline.SetCurrentIndex() for details.
func (sc *Scene) SetCurrentIndex(idx int) {
	sc.timeline.SetCurrentIndex(idx)
}

// CurrentIndex returns the index of the frame shown by the Scene.
func (sc *Scene) CurrentIndex() int {
	return sc.timeline.CurrentIndex()
}

// Count returns the number of frames in the Scene's Timeline.
func (sc *Scene) Count() int {
	return sc.timeline.Count()
}

// CurrentUserMessage returns the user message of the frame shown by the Scene.
func (sc *Scene) CurrentUserMessage() string {
	return sc.timeline.CurrentUserMessage()
}

// Render the grid, the decoration and the current frame. The projView matrix
// is the combined projection and view matrix.
//
// Shaders are selected and their uniforms set for every phase of the render,
// whether or not they were selected by the previous phase.
func (sc *Scene) Render(projView mgl32.Mat4) {
	sc.thread.Check()

	sc.dev.Clear(sc.prefs.clearColor())

	dims := sc.prefs.gridDimensions()
	sc.shaders.Color.Use()
	sc.shaders.Color.SetMat4("proj_view", projView)
	sc.shaders.Color.SetMat4("model", mgl32.Scale3D(dims.X(), dims.Y(), 0.0))
	sc.shaders.Color.SetVec3("color", sc.prefs.gridColor())
	sc.grid.draw(sc.dev, ModeLines, func() []float32 {
		n := sc.prefs.gridCells()
		logger.Logf(logger.Allow, "scene", "grid of %d cells", n)
		return GridVertices(n)
	})

	pos := sc.prefs.decorationPosition()
	sc.shaders.Color.SetVec3("color", decorationColor)
	sc.shaders.Color.SetMat4("model", mgl32.Translate3D(pos.X(), pos.Y(), decorationDepth))
	sc.decoration.draw(sc.dev, ModeTriangles, DecorationVertices)

	// the line shader is prepared even if there is no frame to draw
	sc.shaders.Lines.Use()
	sc.shaders.Lines.SetMat4("proj_view", projView)

	f := sc.timeline.Current()
	if f == nil {
		return
	}

	sc.shaders.Circle.Use()
	sc.shaders.Circle.SetMat4("proj_view", projView)

	sc.renderFrame(f)
}

func (sc *Scene) renderFrame(f *rewind.Frame) {
	sc.counters.Counter(CounterCircles, len(f.Circles))
	if len(f.Circles) > 0 {
		sc.shaders.Circle.Use()
		for _, c := range f.Circles {
			sc.renderCircle(c)
		}
	}

	sc.counters.Counter(CounterRectangles, len(f.Rectangles))
	if len(f.Rectangles) > 0 {
		sc.shaders.Color.Use()
		for _, r := range f.Rectangles {
			sc.renderRectangle(r)
		}
	}

	sc.counters.Counter(CounterLines, len(f.Lines))
	if len(f.Lines) > 0 {
		// the lines shader takes its colour from the vertex data. the
		// proj_view uniform was set by Render()
		sc.shaders.Lines.Use()
		sc.lines.draw(sc.dev, f.Lines)
	}
}

func (sc *Scene) renderCircle(c rewind.Circle) {
	center := mgl32.Vec3{c.Center.X, c.Center.Y, primitiveDepth}
	model := mgl32.Translate3D(center.X(), center.Y(), center.Z()).Mul4(mgl32.Scale3D(c.Radius, c.Radius, 0.0))

	sc.shaders.Circle.SetFloat("radius", c.Radius)
	sc.shaders.Circle.SetVec3("center", center)
	sc.shaders.Circle.SetVec3("color", mgl32.Vec3{c.Color.R, c.Color.G, c.Color.B})
	sc.shaders.Circle.SetMat4("model", model)
	sc.square.draw(sc.dev, ModeTriangles, UnitSquareVertices)
}

func (sc *Scene) renderRectangle(r rewind.Rectangle) {
	model := mgl32.Translate3D(r.Center.X, r.Center.Y, primitiveDepth).Mul4(mgl32.Scale3D(r.Width*0.5, r.Height*0.5, 0.0))

	sc.shaders.Color.SetVec3("color", mgl32.Vec3{r.Color.R, r.Color.G, r.Color.B})
	sc.shaders.Color.SetMat4("model", model)
	sc.square.draw(sc.dev, ModeTriangles, UnitSquareVertices)
}
