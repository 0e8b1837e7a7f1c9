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


package demo

import (
	"github.com/rewind-viewer/viewer/rewind"
)

// Appender is the destination of frames made by the Local producer.
type Appender interface {
	Append(f *rewind.Frame)
}

// Local is a Producer that builds frames in the same process and appends
// them directly, without going through the network.
type Local struct {
	app     Appender
	builder rewind.FrameBuilder
}

// NewLocal is the preferred method of initialisation for the Local type.
func NewLocal(app Appender) *Local {
	return &Local{app: app}
}

// Circle implements the Producer interface.
func (l *Local) Circle(x, y, r float32, color uint32) error {
	l.builder.Circle(rewind.Circle{
		Center: rewind.Point{X: x, Y: y},
		Radius: r,
		Color:  rewind.ColorFromRGB(color),
	})
	return nil
}

// Rectangle implements the Producer interface.
func (l *Local) Rectangle(x1, y1, x2, y2 float32, color uint32) error {
	l.builder.Rectangle(rewind.RectangleFromCorners(x1, y1, x2, y2, rewind.ColorFromRGB(color)))
	return nil
}

// Line implements the Producer interface.
func (l *Local) Line(x1, y1, x2, y2 float32, color uint32) error {
	l.builder.Line(rewind.Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Color: rewind.ColorFromRGB(color)})
	return nil
}

// Message implements the Producer interface.
func (l *Local) Message(msg string) error {
	l.builder.Message(msg)
	return nil
}

// EndFrame implements the Producer interface.
func (l *Local) EndFrame() error {
	l.app.Append(l.builder.Finish())
	return nil
}
