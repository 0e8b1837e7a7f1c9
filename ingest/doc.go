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


// Package ingest receives frames from producer programs and appends them to a
// timeline.
//
// A producer writes a stream of JSON objects, one after the other, each with
// a "type" field. The types understood are:
//
//	circle      x, y, r, color
//	rectangle   x1, y1, x2, y2, color
//	line        x1, y1, x2, y2, color
//	message     message
//	end
//
// The "end" type completes the frame under construction and appends it to the
// timeline. Colours are integers in the form 0xRRGGBB. A "layer" field is
// accepted for every primitive but has no effect. Objects of any other type
// are logged and skipped.
//
// Producers can connect with a plain TCP socket, in which case the JSON
// objects are written directly to the socket, or with a websocket. Websocket
// messages can contain any number of JSON objects and a frame can be spread
// across many messages.
//
// A frame that has not been completed when the connection closes is
// discarded.
package ingest
