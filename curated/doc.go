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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. For example:
//
//	e := curated.Errorf("ingest: unknown message type (%s)", typ)
//
//	if curated.Is(e, "ingest: unknown message type (%s)") {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
// The Error() function implementation ensures that the error chain is
// normalised. Specifically, that the chain does not contain duplicate
// adjacent parts. If function A() wraps an error from function B() with the
// same "prefs: " prefix, the message will be:
//
//	prefs: no preferences file
//
// and not:
//
//	prefs: prefs: no preferences file
//
// Chains are thought of as being composed of parts separated by the
// sub-string ': ' as suggested on p239 of "The Go Programming Language"
// (Donovan, Kernighan).
//
// Any error values passed to Errorf() are returned by the Unwrap() method so
// the standard library's errors.Is() will work through a curated error. This
// is useful for checking for io.EOF for example.
//
// Sentinal patterns should be stored as a const string, suitably named and
// commented.
package curated
