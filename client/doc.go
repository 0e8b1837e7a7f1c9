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


// Package client is used by Go programs to send frames to the viewer.
//
//	c, err := client.Dial(ingest.DefaultAddress)
//	if err != nil {
//		return err
//	}
//	defer c.Close()
//
//	c.Circle(100, 100, 20, 0xff0000)
//	c.Message("tick 1")
//	err = c.EndFrame()
//
// Primitives are buffered until EndFrame() is called, at which point the
// whole frame is sent to the viewer.
package client
