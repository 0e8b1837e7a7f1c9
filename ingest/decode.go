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


package ingest

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/rewind-viewer/viewer/curated"
	"github.com/rewind-viewer/viewer/logger"
	"github.com/rewind-viewer/viewer/rewind"
)

// Sentinel error patterns.
const (
	UnknownMessage  = "ingest: unknown message type: %q"
	MalformedStream = "ingest: malformed stream: %v"
	InvalidColor    = "ingest: invalid color: %d"
)

// Message types.
const (
	TypeCircle    = "circle"
	TypeRectangle = "rectangle"
	TypeLine      = "line"
	TypeMessage   = "message"
	TypeEnd       = "end"
)

// Appender is the destination of completed frames. The rewind.Timeline and
// scene.Scene types both implement the Appender interface.
type Appender interface {
	Append(f *rewind.Frame)
}

// Message is a single JSON object in the stream. Only the fields relevant to
// the Type are used.
type Message struct {
	Type string `json:"type"`

	X float32 `json:"x,omitempty"`
	Y float32 `json:"y,omitempty"`
	R float32 `json:"r,omitempty"`

	X1 float32 `json:"x1,omitempty"`
	Y1 float32 `json:"y1,omitempty"`
	X2 float32 `json:"x2,omitempty"`
	Y2 float32 `json:"y2,omitempty"`

	Color int64 `json:"color,omitempty"`
	Layer int   `json:"layer,omitempty"`

	Message string `json:"message,omitempty"`
}

// frameDecoder turns messages into frames. Each connection has its own
// frameDecoder.
type frameDecoder struct {
	app     Appender
	builder rewind.FrameBuilder
	source  string

	// number of frames appended
	frames int
}

func newFrameDecoder(app Appender, source string) *frameDecoder {
	return &frameDecoder{
		app:    app,
		source: source,
	}
}

func color(v int64) (rewind.Color, error) {
	if v < 0 || v > 0xffffff {
		return rewind.Color{}, curated.Errorf(InvalidColor, v)
	}
	return rewind.ColorFromRGB(uint32(v)), nil
}

// handle a single message. an error is returned for messages that are not
// understood. it is up to the caller whether the error is fatal.
func (dec *frameDecoder) handle(msg Message) error {
	switch msg.Type {
	case TypeCircle:
		col, err := color(msg.Color)
		if err != nil {
			return err
		}
		dec.builder.Circle(rewind.Circle{
			Center: rewind.Point{X: msg.X, Y: msg.Y},
			Radius: msg.R,
			Color:  col,
		})

	case TypeRectangle:
		col, err := color(msg.Color)
		if err != nil {
			return err
		}
		dec.builder.Rectangle(rewind.RectangleFromCorners(msg.X1, msg.Y1, msg.X2, msg.Y2, col))

	case TypeLine:
		col, err := color(msg.Color)
		if err != nil {
			return err
		}
		dec.builder.Line(rewind.Line{
			X1: msg.X1, Y1: msg.Y1,
			X2: msg.X2, Y2: msg.Y2,
			Color: col,
		})

	case TypeMessage:
		dec.builder.Message(msg.Message)

	case TypeEnd:
		dec.app.Append(dec.builder.Finish())
		dec.frames++

	default:
		return curated.Errorf(UnknownMessage, msg.Type)
	}

	return nil
}

// decode every JSON object in the reader. returns nil when the reader is
// exhausted.
func (dec *frameDecoder) decode(r io.Reader) error {
	jd := json.NewDecoder(r)
	for {
		var msg Message
		err := jd.Decode(&msg)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return curated.Errorf(MalformedStream, err)
		}

		err = dec.handle(msg)
		if err != nil {
			logger.Logf(logger.Allow, "ingest", "%s: %v", dec.source, err)
		}
	}
}

// close the decoder. any frame under construction is discarded.
func (dec *frameDecoder) close() {
	if dec.builder.Pending() {
		logger.Logf(logger.Allow, "ingest", "%s: discarding incomplete frame", dec.source)
		dec.builder.Discard()
	}
}

// Decode reads a stream of JSON objects and appends every completed frame to
// app. Decode returns when the end of the stream is reached or when the
// stream cannot be decoded. The number of frames appended is returned in
// either case.
//
// The source argument is used to identify the stream in the log.
func Decode(r io.Reader, app Appender, source string) (int, error) {
	dec := newFrameDecoder(app, source)
	defer dec.close()
	err := dec.decode(r)
	return dec.frames, err
}
