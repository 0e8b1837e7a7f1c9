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


// Package gui defines the interface between the viewer and its graphical
// user interface, along with the parts of the user interface that do not
// depend on any particular windowing system.
package gui

// GUI defines the operations that can be performed on the user interface
// from outside of the GUI goroutine.
type GUI interface {
	// Send a request to set a GUI feature. The function does not return until
	// the request has been serviced.
	SetFeature(request FeatureReq, args ...FeatureReqData) error
}
