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


package gui

import (
	"sync"

	"github.com/rewind-viewer/viewer/rewind"
)

// Action is a movement through the timeline requested by the user.
type Action int

// List of valid Action values.
const (
	ActionNone Action = iota
	ActionFirst
	ActionPrevious
	ActionNext
	ActionLast
)

func (a Action) String() string {
	switch a {
	case ActionFirst:
		return "first"
	case ActionPrevious:
		return "previous"
	case ActionNext:
		return "next"
	case ActionLast:
		return "last"
	}
	return "none"
}

// Navigation moves the current index of a timeline in response to the user.
// When following, the current index is moved to the newest frame whenever
// new frames are appended.
//
// Navigation is safe for concurrent use.
type Navigation struct {
	tl *rewind.Timeline

	crit   sync.Mutex
	follow bool

	// count of frames in the timeline the last time Update() was called
	count int
}

// NewNavigation is the preferred method of initialisation for the Navigation
// type.
func NewNavigation(tl *rewind.Timeline) *Navigation {
	return &Navigation{tl: tl}
}

// SetFollow changes the follow state. Setting follow to true immediately
// moves to the newest frame.
func (nav *Navigation) SetFollow(follow bool) {
	nav.crit.Lock()
	defer nav.crit.Unlock()
	nav.follow = follow
	if follow {
		nav.tl.Newest()
	}
}

// Follow returns the follow state.
func (nav *Navigation) Follow() bool {
	nav.crit.Lock()
	defer nav.crit.Unlock()
	return nav.follow
}

// Apply the action to the timeline. Moving away from the newest frame turns
// off following.
func (nav *Navigation) Apply(a Action) {
	nav.crit.Lock()
	defer nav.crit.Unlock()

	switch a {
	case ActionFirst:
		nav.tl.SetCurrentIndex(0)
		nav.follow = false
	case ActionPrevious:
		nav.tl.Step(-1)
		nav.follow = false
	case ActionNext:
		nav.tl.Step(1)
	case ActionLast:
		nav.tl.Newest()
	}
}

// Seek moves to the frame index. An index outside of the timeline is ignored.
// Seeking turns off following unless the index is the newest frame.
func (nav *Navigation) Seek(idx int) {
	nav.crit.Lock()
	defer nav.crit.Unlock()
	nav.tl.SetCurrentIndex(idx)
	if idx != nav.tl.Count()-1 {
		nav.follow = false
	}
}

// Update should be called once per GUI frame. Returns true if the timeline
// has grown since the previous call.
func (nav *Navigation) Update() bool {
	nav.crit.Lock()
	defer nav.crit.Unlock()

	count := nav.tl.Count()
	if count == nav.count {
		return false
	}
	nav.count = count

	if nav.follow {
		nav.tl.Newest()
	}
	return true
}
