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

// Package paths contains functions to prepare paths to the viewer's resources.
//
// The ResourcePath() function returns the path to a file in the appropriate
// config directory. For example, the following will return the path to the
// preferences file.
//
//	d, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
//
// For development builds the config directory is ".rewindviewer" in the
// program's current directory. For release builds (the "release" build tag)
// it is "rewindviewer" in the directory returned by os.UserConfigDir().
//
// In a release build, on a modern Linux system, the path returned by the
// example above will be:
//
//	/home/user/.config/rewindviewer/preferences
package paths
