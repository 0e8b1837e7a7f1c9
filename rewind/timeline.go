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

import (
	"sync"
)

// Timeline is an append-only list of frames and a cursor indicating the
// current frame.
//
// Frames are appended by a producer (usually a network connection) and read by
// the render loop and the GUI. Any number of goroutines may call any of the
// Timeline functions at the same time. Critical sections are short and never
// include any work on the frames themselves.
type Timeline struct {
	crit sync.RWMutex

	frames []*Frame

	// the cursor is always a valid index into the frames slice unless the
	// timeline is empty, in which case it is zero
	current int
}

// NewTimeline is the preferred method of initialisation for the Timeline type.
func NewTimeline() *Timeline {
	return &Timeline{
		frames: make([]*Frame, 0, 1024),
	}
}

// Append a frame to the end of the timeline. The Timeline takes ownership of
// the frame and the caller must not change it after the call. A nil frame is
// ignored.
//
// The frame becomes visible to other goroutines only once the function has
// returned.
func (tl *Timeline) Append(f *Frame) {
	if f == nil {
		return
	}

	tl.crit.Lock()
	defer tl.crit.Unlock()
	tl.frames = append(tl.frames, f)
}

// SetCurrentIndex moves the cursor to the specified frame. Indexes outside the
// range of the timeline are ignored, as are indexes that are the same as the
// current index.
func (tl *Timeline) SetCurrentIndex(idx int) {
	tl.crit.Lock()
	defer tl.crit.Unlock()

	if idx >= 0 && idx < len(tl.frames) && idx != tl.current {
		tl.current = idx
	}
}

// Newest moves the cursor to the most recently appended frame. Unlike
// SetCurrentIndex(Count()-1) this cannot be affected by a concurrent call to
// Append().
func (tl *Timeline) Newest() {
	tl.crit.Lock()
	defer tl.crit.Unlock()

	if len(tl.frames) > 0 {
		tl.current = len(tl.frames) - 1
	}
}

// Step moves the cursor by the specified number of frames. The cursor is
// clamped to the range of the timeline.
func (tl *Timeline) Step(delta int) {
	tl.crit.Lock()
	defer tl.crit.Unlock()

	if len(tl.frames) == 0 {
		return
	}
	tl.current = max(0, min(tl.current+delta, len(tl.frames)-1))
}

// CurrentIndex returns the index of the current frame. Returns zero if the
// timeline is empty.
func (tl *Timeline) CurrentIndex() int {
	tl.crit.RLock()
	defer tl.crit.RUnlock()
	return tl.current
}

// Count returns the number of frames in the timeline.
func (tl *Timeline) Count() int {
	tl.crit.RLock()
	defer tl.crit.RUnlock()
	return len(tl.frames)
}

// Current returns the current frame. Returns nil if the timeline is empty.
func (tl *Timeline) Current() *Frame {
	tl.crit.RLock()
	defer tl.crit.RUnlock()

	if tl.current < 0 || tl.current >= len(tl.frames) {
		return nil
	}
	return tl.frames[tl.current]
}

// Frame returns the frame at the specified index. Returns nil if the index is
// out of range.
func (tl *Timeline) Frame(idx int) *Frame {
	tl.crit.RLock()
	defer tl.crit.RUnlock()

	if idx < 0 || idx >= len(tl.frames) {
		return nil
	}
	return tl.frames[idx]
}

// CurrentUserMessage returns the user message of the current frame. Returns
// the empty string if the timeline is empty.
func (tl *Timeline) CurrentUserMessage() string {
	f := tl.Current()
	if f == nil {
		return ""
	}
	return f.UserMessage
}

// Summary is a snapshot of the state of the timeline. Useful for GUIs that need
// a consistent view of the count and the cursor.
type Summary struct {
	Count   int
	Current int
}

// Summary returns the current count and cursor position as a single atomic
// read.
func (tl *Timeline) Summary() Summary {
	tl.crit.RLock()
	defer tl.crit.RUnlock()
	return Summary{
		Count:   len(tl.frames),
		Current: tl.current,
	}
}
