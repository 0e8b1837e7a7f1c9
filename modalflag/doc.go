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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Unlike flag.FlagSet, arguments are given to NewArgs() and Parse() is then
// called with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("view", "demo")
//	_, _ = md.Parse()
//
// The first sub-mode is the default and is selected if the first non-flag
// argument does not name a mode. All sub-mode comparisons are case insensitive
// and Mode() always returns the upper case name.
//
//	switch md.Mode() {
//	case "VIEW":
//		md.NewMode()
//		listen := md.AddString("listen", "127.0.0.1:9111", "producer address")
//		p, err := md.Parse()
//		switch p {
//		case modalflag.ParseError:
//			return err
//		case modalflag.ParseHelp:
//			return nil
//		}
//		view(*listen, md.RemainingArgs())
//	}
//
// Each call to NewMode() starts a new flag set for the next layer of arguments.
// Modes can be nested as deep as required. The Path() function returns every
// mode encountered so far, separated by a slash.
package modalflag
