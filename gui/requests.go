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

// FeatureReq is used to request the setting of a gui attribute
// eg. following the newest frame.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData any

// List of valid feature requests. argument must be of the type specified or
// else the type conversion will fail and an error will be returned.
const (
	// keep the newest frame on screen as frames arrive.
	ReqFollow FeatureReq = "ReqFollow" // bool

	// move through the timeline.
	ReqNavigate FeatureReq = "ReqNavigate" // Action

	// fit the camera to the grid.
	ReqFitCamera FeatureReq = "ReqFitCamera" // none

	// save preferences to disk.
	ReqSavePrefs FeatureReq = "ReqSavePrefs" // none
)

// Sentinel error patterns for feature requests.
const (
	UnsupportedGuiFeature = "gui: unsupported feature: %v"
	FeatureArguments      = "gui: feature arguments: %v: %v"
)
