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

// Package prefs facilitates the storing of preference values on disk. Values
// are represented by the Bool, String, Int, Float, Vector and Generic types.
// All types except Generic are safe to read and write from any goroutine.
//
// A Disk instance groups preference values together under a key and stores
// them in a single file, one value per line:
//
//	scene.gridCells :: 30
//
// The first line of the file is always WarningBoilerPlate.
//
// Values given on the command line (see PushCommandLineStack()) override the
// values stored on disk. The Watch() function reloads the values whenever the
// file is changed by another program.
package prefs
