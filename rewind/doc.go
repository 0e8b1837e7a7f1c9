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

// Package rewind contains the data that is shown by the viewer: the primitive
// types, the Frame that groups them and the Timeline that holds every Frame
// received from a producer.
//
// A producer builds a Frame with a FrameBuilder and hands the completed Frame
// to the Timeline with Append(). From that point the Frame belongs to the
// Timeline and is never changed. The Timeline only ever grows.
//
// The Timeline is written to by one or more producer goroutines and read by the
// render loop. The cursor (the current index) is moved by the GUI with
// SetCurrentIndex(), Step() or Newest().
package rewind
