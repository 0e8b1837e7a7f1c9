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


package gui_test

import (
	"testing"

	"github.com/rewind-viewer/viewer/gui"
	"github.com/rewind-viewer/viewer/rewind"
	"github.com/rewind-viewer/viewer/test"
)

func appendFrames(tl *rewind.Timeline, n int) {
	for range n {
		tl.Append(&rewind.Frame{})
	}
}

func TestNavigation(t *testing.T) {
	tl := rewind.NewTimeline()
	nav := gui.NewNavigation(tl)

	// actions on an empty timeline do nothing
	nav.Apply(gui.ActionLast)
	nav.Apply(gui.ActionNext)
	test.ExpectEquality(t, tl.CurrentIndex(), 0)

	appendFrames(tl, 5)
	test.ExpectSuccess(t, nav.Update())
	test.ExpectFailure(t, nav.Update())

	// not following so the index does not change
	test.ExpectEquality(t, tl.CurrentIndex(), 0)

	nav.Apply(gui.ActionNext)
	nav.Apply(gui.ActionNext)
	test.ExpectEquality(t, tl.CurrentIndex(), 2)
	nav.Apply(gui.ActionPrevious)
	test.ExpectEquality(t, tl.CurrentIndex(), 1)
	nav.Apply(gui.ActionLast)
	test.ExpectEquality(t, tl.CurrentIndex(), 4)
	nav.Apply(gui.ActionNext)
	test.ExpectEquality(t, tl.CurrentIndex(), 4)
	nav.Apply(gui.ActionFirst)
	test.ExpectEquality(t, tl.CurrentIndex(), 0)
	nav.Apply(gui.ActionPrevious)
	test.ExpectEquality(t, tl.CurrentIndex(), 0)

	nav.Seek(3)
	test.ExpectEquality(t, tl.CurrentIndex(), 3)
	nav.Seek(100)
	test.ExpectEquality(t, tl.CurrentIndex(), 3)
}

func TestFollow(t *testing.T) {
	tl := rewind.NewTimeline()
	nav := gui.NewNavigation(tl)

	appendFrames(tl, 3)
	nav.SetFollow(true)
	test.ExpectSuccess(t, nav.Follow())
	test.ExpectEquality(t, tl.CurrentIndex(), 2)

	// new frames move the index when Update() is called
	appendFrames(tl, 2)
	test.ExpectEquality(t, tl.CurrentIndex(), 2)
	test.ExpectSuccess(t, nav.Update())
	test.ExpectEquality(t, tl.CurrentIndex(), 4)

	// moving to the newest frame does not affect following
	nav.Apply(gui.ActionNext)
	nav.Apply(gui.ActionLast)
	nav.Seek(4)
	test.ExpectSuccess(t, nav.Follow())

	// moving back stops following
	nav.Apply(gui.ActionPrevious)
	test.ExpectFailure(t, nav.Follow())
	appendFrames(tl, 1)
	nav.Update()
	test.ExpectEquality(t, tl.CurrentIndex(), 3)

	nav.SetFollow(true)
	test.ExpectEquality(t, tl.CurrentIndex(), 5)
	nav.Seek(0)
	test.ExpectFailure(t, nav.Follow())

	nav.SetFollow(true)
	nav.Apply(gui.ActionFirst)
	test.ExpectFailure(t, nav.Follow())
}

func TestActionString(t *testing.T) {
	test.ExpectEquality(t, gui.ActionFirst.String(), "first")
	test.ExpectEquality(t, gui.ActionLast.String(), "last")
	test.ExpectEquality(t, gui.Action(100).String(), "none")
}

func TestCounters(t *testing.T) {
	var c gui.Counters
	test.ExpectEquality(t, len(c.Entries()), 0)

	c.Counter("Circles", 10)
	c.Counter("Rectangles", 5)
	c.Counter("Circles", 3)

	e := c.Entries()
	test.DemandEquality(t, len(e), 2)
	test.ExpectEquality(t, e[0], gui.Counter{Label: "Circles", Count: 3})
	test.ExpectEquality(t, e[1].String(), "Rectangles: 5")

	// entries is a copy
	e[0].Count = 100
	test.ExpectEquality(t, c.Entries()[0].Count, 3)

	c.Reset()
	e = c.Entries()
	test.DemandEquality(t, len(e), 2)
	test.ExpectEquality(t, e[0].Count, 0)
	test.ExpectEquality(t, e[1].Label, "Rectangles")
}
