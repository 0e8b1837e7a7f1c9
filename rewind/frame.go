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
	"fmt"
	"strings"
)

// Frame is a single entry in the Timeline. A Frame must not be changed once
// it has been appended to a Timeline.
type Frame struct {
	Circles    []Circle
	Rectangles []Rectangle
	Lines      []Line

	// annotation for the frame. shown to the user as is
	UserMessage string
}

func (f *Frame) String() string {
	return fmt.Sprintf("circles=%d rectangles=%d lines=%d", len(f.Circles), len(f.Rectangles), len(f.Lines))
}

// Empty returns true if the frame contains no primitives. The user message is
// not considered.
func (f *Frame) Empty() bool {
	return len(f.Circles) == 0 && len(f.Rectangles) == 0 && len(f.Lines) == 0
}

// FrameBuilder accumulates primitives and messages on the producer side until
// the frame is complete. The zero value is ready to use.
//
// A FrameBuilder is not safe for concurrent use. Each producer should have its
// own builder.
type FrameBuilder struct {
	frame    *Frame
	messages []string
}

func (b *FrameBuilder) current() *Frame {
	if b.frame == nil {
		b.frame = &Frame{}
	}
	return b.frame
}

// Circle adds a circle to the frame under construction.
func (b *FrameBuilder) Circle(c Circle) {
	f := b.current()
	f.Circles = append(f.Circles, c)
}

// Rectangle adds a rectangle to the frame under construction.
func (b *FrameBuilder) Rectangle(r Rectangle) {
	f := b.current()
	f.Rectangles = append(f.Rectangles, r)
}

// Line adds a line to the frame under construction.
func (b *FrameBuilder) Line(l Line) {
	f := b.current()
	f.Lines = append(f.Lines, l)
}

// Message adds a line of text to the frame's user message. Multiple messages
// are separated by a newline.
func (b *FrameBuilder) Message(msg string) {
	b.current()
	b.messages = append(b.messages, msg)
}

// Pending returns true if anything has been added since the last call to
// Finish() or Discard().
func (b *FrameBuilder) Pending() bool {
	return b.frame != nil
}

// Finish returns the completed frame and resets the builder. Finish never
// returns nil. If nothing has been added then an empty frame is returned.
func (b *FrameBuilder) Finish() *Frame {
	f := b.current()
	f.UserMessage = strings.Join(b.messages, "\n")
	b.frame = nil
	b.messages = nil
	return f
}

// Discard forgets the frame under construction.
func (b *FrameBuilder) Discard() {
	b.frame = nil
	b.messages = nil
}
