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

package scene_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/rewind-viewer/viewer/rewind"
	"github.com/rewind-viewer/viewer/scene"
	"github.com/rewind-viewer/viewer/test"
)

func expectCalls(t *testing.T, got []string, expected ...string) {
	t.Helper()
	if !test.ExpectEquality(t, len(got), len(expected)) {
		t.Logf("got: %q", got)
		return
	}
	for i := range expected {
		test.ExpectEquality(t, got[i], expected[i], i)
	}
}

// the grid and decoration are drawn even when there are no frames
func TestRenderEmptyTimeline(t *testing.T) {
	f := newFixture()
	f.scene.Render(mgl32.Ident4())

	test.ExpectEquality(t, f.rec.calls[0], "Clear 0.75 0.75 0.75")

	// grid is 31 offsets of 8 vertices. decoration is 3 vertices
	expectCalls(t, f.rec.filter("DrawArrays"),
		"DrawArrays lines 248",
		"DrawArrays triangles 3",
	)

	// no counters because there is no frame
	expectCalls(t, f.rec.filter("Counter"))

	// line shader is prepared but the circle shader isn't
	expectCalls(t, f.rec.filter("Use"),
		"Use color",
		"Use lines",
	)
	_, ok := f.lines.mat4["proj_view"]
	test.ExpectSuccess(t, ok)
	_, ok = f.circle.mat4["proj_view"]
	test.ExpectFailure(t, ok)
}

// static geometry is created on first use and only on first use
func TestLazyStaticGeometry(t *testing.T) {
	f := newFixture()

	// no GPU work at all before the first render
	expectCalls(t, f.rec.calls)

	f.scene.Render(mgl32.Ident4())
	expectCalls(t, f.rec.filter("Gen"),
		"GenVertexArray 1",
		"GenBuffer 2",
		"GenVertexArray 3",
		"GenBuffer 4",
	)
	expectCalls(t, f.rec.filter("BufferData"),
		"BufferData 744 0",
		"BufferData 9 0",
	)
	expectCalls(t, f.rec.filter("VertexAttrib"),
		"VertexAttrib 0 3 3 0",
		"VertexAttrib 0 3 3 0",
	)

	// second render reuses the geometry
	f.rec.reset()
	f.scene.Render(mgl32.Ident4())
	expectCalls(t, f.rec.filter("Gen"))
	expectCalls(t, f.rec.filter("BufferData"))
	expectCalls(t, f.rec.filter("DrawArrays"),
		"DrawArrays lines 248",
		"DrawArrays triangles 3",
	)
	expectCalls(t, f.rec.filter("BindVertexArray"),
		"BindVertexArray 1",
		"BindVertexArray 3",
	)

	// the unit square is only created once there is something to draw
	f.scene.Append(&rewind.Frame{
		Circles: []rewind.Circle{{Radius: 1}},
	})
	f.rec.reset()
	f.scene.Render(mgl32.Ident4())
	expectCalls(t, f.rec.filter("Gen"),
		"GenVertexArray 5",
		"GenBuffer 6",
	)
	expectCalls(t, f.rec.filter("BufferData"),
		"BufferData 18 0",
	)

	f.rec.reset()
	f.scene.Render(mgl32.Ident4())
	expectCalls(t, f.rec.filter("Gen"))
}

// changing the grid cell count after the grid has been built has no effect
func TestGridCellsReadOnce(t *testing.T) {
	f := newFixture()
	test.DemandSuccess(t, f.prefs.GridCells.Set(4))

	f.scene.Render(mgl32.Ident4())
	expectCalls(t, f.rec.filter("DrawArrays lines"), "DrawArrays lines 40")

	test.DemandSuccess(t, f.prefs.GridCells.Set(10))
	f.rec.reset()
	f.scene.Render(mgl32.Ident4())
	expectCalls(t, f.rec.filter("DrawArrays lines"), "DrawArrays lines 40")

	// grid cell count must be at least one
	test.ExpectFailure(t, f.prefs.GridCells.Set(0))
}

func TestRenderFrame(t *testing.T) {
	f := newFixture()

	red := rewind.Color{R: 1.0}
	green := rewind.Color{G: 1.0}

	f.scene.Append(&rewind.Frame{
		Circles: []rewind.Circle{
			{Center: rewind.Point{X: 10, Y: 20}, Radius: 5, Color: red},
			{Center: rewind.Point{X: 30, Y: 40}, Radius: 2, Color: green},
		},
		Rectangles: []rewind.Rectangle{
			{Center: rewind.Point{X: 100, Y: 100}, Width: 20, Height: 10, Color: green},
		},
		Lines: []rewind.Line{
			{X1: 0, Y1: 0, X2: 1, Y2: 1, Color: red},
			{X1: 2, Y1: 2, X2: 3, Y2: 3, Color: green},
		},
		UserMessage: "hello",
	})
	test.ExpectEquality(t, f.scene.Count(), 1)
	test.ExpectEquality(t, f.scene.CurrentUserMessage(), "hello")

	f.scene.Render(mgl32.Ident4())

	// draw order is grid, decoration, circles, rectangles and then lines.
	// circles and rectangles use the six vertices of the unit square
	expectCalls(t, f.rec.filter("DrawArrays"),
		"DrawArrays lines 248",
		"DrawArrays triangles 3",
		"DrawArrays triangles 6",
		"DrawArrays triangles 6",
		"DrawArrays triangles 6",
		"DrawArrays lines 4",
	)

	expectCalls(t, f.rec.filter("Counter"),
		"Counter Circles 2",
		"Counter Rectangles 1",
		"Counter Lines 2",
	)

	expectCalls(t, f.rec.filter("Use"),
		"Use color",
		"Use lines",
		"Use circle",
		"Use circle",
		"Use color",
		"Use lines",
	)

	// the last line upload was the dynamic line data
	test.ExpectEquality(t, f.dev.lastUsage, scene.UsageDynamic)
	test.DemandEquality(t, len(f.dev.lastData), 20)
	test.ExpectEquality(t, f.dev.lastData[5], float32(1.0))
	test.ExpectEquality(t, f.dev.lastData[19], float32(3.0))

	// uniforms of the most recent circle
	test.ExpectEquality(t, f.circle.float["radius"], float32(2))
	test.ExpectEquality(t, f.circle.vec3["center"], mgl32.Vec3{30, 40, 0.1})
	test.ExpectEquality(t, f.circle.vec3["color"], mgl32.Vec3{0, 1, 0})

	model := f.circle.mat4["model"]
	p := model.Mul4x1(mgl32.Vec4{1, 1, 0, 1})
	test.ExpectEquality(t, p, mgl32.Vec4{32, 42, 0.1, 1})

	// uniforms of the rectangle. the unit square is scaled by half the width
	// and height
	test.ExpectEquality(t, f.color.vec3["color"], mgl32.Vec3{0, 1, 0})
	model = f.color.mat4["model"]
	p = model.Mul4x1(mgl32.Vec4{1, 1, 0, 1})
	test.ExpectEquality(t, p, mgl32.Vec4{110, 105, 0.1, 1})
	p = model.Mul4x1(mgl32.Vec4{-1, -1, 0, 1})
	test.ExpectEquality(t, p, mgl32.Vec4{90, 95, 0.1, 1})
}

func TestRenderLineBuffer(t *testing.T) {
	f := newFixture()

	line := rewind.Line{X2: 1, Y2: 1}
	f.scene.Append(&rewind.Frame{Lines: []rewind.Line{line, line, line}})
	f.scene.Append(&rewind.Frame{Lines: []rewind.Line{line}})
	f.scene.Append(&rewind.Frame{})

	f.scene.Render(mgl32.Ident4())

	// the line buffer has colour at attribute 1 and position at attribute 0
	expectCalls(t, f.rec.filter("VertexAttrib"),
		"VertexAttrib 0 3 3 0",
		"VertexAttrib 0 3 3 0",
		"VertexAttrib 1 3 5 0",
		"VertexAttrib 0 2 5 3",
	)
	expectCalls(t, f.rec.filter("DrawArrays lines"),
		"DrawArrays lines 248",
		"DrawArrays lines 6",
	)

	// the buffer is replaced in full, sized for the new frame
	f.scene.SetCurrentIndex(1)
	f.rec.reset()
	f.scene.Render(mgl32.Ident4())
	expectCalls(t, f.rec.filter("BufferData"), "BufferData 10 1")
	expectCalls(t, f.rec.filter("DrawArrays lines"),
		"DrawArrays lines 248",
		"DrawArrays lines 2",
	)
	expectCalls(t, f.rec.filter("Gen"))

	// an empty frame doesn't touch the line buffer
	f.scene.SetCurrentIndex(2)
	f.rec.reset()
	f.scene.Render(mgl32.Ident4())
	expectCalls(t, f.rec.filter("BufferData"))
	expectCalls(t, f.rec.filter("BindBuffer"))
}

// a frame with no primitives draws nothing but the grid and decoration. the
// counters are still reported
func TestRenderEmptyFrame(t *testing.T) {
	f := newFixture()
	f.scene.Append(&rewind.Frame{UserMessage: "nothing to see"})
	f.scene.Render(mgl32.Ident4())

	expectCalls(t, f.rec.filter("DrawArrays"),
		"DrawArrays lines 248",
		"DrawArrays triangles 3",
	)
	expectCalls(t, f.rec.filter("Counter"),
		"Counter Circles 0",
		"Counter Rectangles 0",
		"Counter Lines 0",
	)

	// circle shader is prepared because there is a frame
	expectCalls(t, f.rec.filter("Use"),
		"Use color",
		"Use lines",
		"Use circle",
	)
}

func TestRenderPreferences(t *testing.T) {
	f := newFixture()
	test.DemandSuccess(t, f.prefs.ClearColor.Set("0,0,0"))
	test.DemandSuccess(t, f.prefs.GridColor.Set("1,1,1"))
	test.DemandSuccess(t, f.prefs.GridDimensions.Set("100,50"))
	test.DemandSuccess(t, f.prefs.DecorationPosition.Set("7,8"))

	f.scene.Render(mgl32.Ident4())
	test.ExpectEquality(t, f.rec.calls[0], "Clear 0.00 0.00 0.00")

	// the decoration is the last thing drawn with the color shader
	test.ExpectEquality(t, f.color.vec3["color"], mgl32.Vec3{0, 0, 1})
	p := f.color.mat4["model"].Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	test.ExpectEquality(t, p, mgl32.Vec4{7, 8, 0.01, 1})

	expectCalls(t, f.rec.filter("SetVec3 color color"),
		"SetVec3 color color [1 1 1]",
		"SetVec3 color color [0 0 1]",
	)
}

// the scene's navigation functions are the timeline's
func TestSceneNavigation(t *testing.T) {
	f := newFixture()
	test.ExpectEquality(t, f.scene.CurrentUserMessage(), "")

	for _, m := range []string{"a", "b", "c"} {
		f.scene.Append(&rewind.Frame{UserMessage: m})
	}
	test.ExpectEquality(t, f.scene.Count(), 3)
	test.ExpectEquality(t, f.scene.Timeline().Count(), 3)

	f.scene.SetCurrentIndex(2)
	test.ExpectEquality(t, f.scene.CurrentIndex(), 2)
	test.ExpectEquality(t, f.scene.CurrentUserMessage(), "c")

	f.scene.SetCurrentIndex(3)
	test.ExpectEquality(t, f.scene.CurrentIndex(), 2)
}

// a nil Counters and nil Preferences are acceptable
func TestSceneDefaults(t *testing.T) {
	rec := &recorder{}
	sc := scene.NewScene(&fakeDevice{rec: rec}, scene.Shaders{
		Color:  newFakeShader(rec, "color"),
		Circle: newFakeShader(rec, "circle"),
		Lines:  newFakeShader(rec, "lines"),
	}, nil, nil)
	sc.Append(&rewind.Frame{Circles: []rewind.Circle{{Radius: 1}}})
	sc.Render(mgl32.Ident4())
	test.ExpectEquality(t, len(rec.filter("DrawArrays")), 3)
	test.ExpectEquality(t, len(rec.filter("Counter")), 0)
}
