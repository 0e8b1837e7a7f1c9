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

package rewind_test

import (
	"testing"

	"github.com/rewind-viewer/viewer/rewind"
	"github.com/rewind-viewer/viewer/test"
)

func TestColorFromRGB(t *testing.T) {
	c := rewind.ColorFromRGB(0xff0000)
	test.ExpectEquality(t, c, rewind.Color{R: 1.0})

	c = rewind.ColorFromRGB(0x00ff00)
	test.ExpectEquality(t, c, rewind.Color{G: 1.0})

	// bits above 24 are ignored
	c = rewind.ColorFromRGB(0xff0000ff)
	test.ExpectEquality(t, c, rewind.Color{B: 1.0})

	c = rewind.ColorFromRGB(0x804020)
	test.ExpectEquality(t, c.String(), "#804020")
}

func TestRectangleFromCorners(t *testing.T) {
	r := rewind.RectangleFromCorners(10, 20, 30, 60, rewind.Color{})
	test.ExpectEquality(t, r.Center, rewind.Point{X: 20, Y: 40})
	test.ExpectEquality(t, r.Width, float32(20))
	test.ExpectEquality(t, r.Height, float32(40))

	// corners in the opposite order make the same rectangle
	s := rewind.RectangleFromCorners(30, 60, 10, 20, rewind.Color{})
	test.ExpectEquality(t, s, r)
}

func TestFrameBuilder(t *testing.T) {
	var b rewind.FrameBuilder
	test.ExpectFailure(t, b.Pending())

	b.Circle(rewind.Circle{Radius: 1})
	b.Rectangle(rewind.Rectangle{Width: 2, Height: 2})
	b.Line(rewind.Line{X2: 1, Y2: 1})
	b.Line(rewind.Line{X2: 2, Y2: 2})
	b.Message("hello")
	b.Message("world")
	test.ExpectSuccess(t, b.Pending())

	f := b.Finish()
	test.ExpectEquality(t, len(f.Circles), 1)
	test.ExpectEquality(t, len(f.Rectangles), 1)
	test.ExpectEquality(t, len(f.Lines), 2)
	test.ExpectEquality(t, f.UserMessage, "hello\nworld")
	test.ExpectFailure(t, f.Empty())
	test.ExpectFailure(t, b.Pending())

	// the builder starts afresh after Finish()
	g := b.Finish()
	test.ExpectSuccess(t, g.Empty())
	test.ExpectEquality(t, g.UserMessage, "")
	test.ExpectSuccess(t, f != g)

	// a message alone makes a frame pending
	b.Message("only a message")
	test.ExpectSuccess(t, b.Pending())
	b.Discard()
	test.ExpectFailure(t, b.Pending())
}
