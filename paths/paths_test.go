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

//go:build !release

package paths_test

import (
	"os"
	"regexp"
	"testing"

	"github.com/rewind-viewer/viewer/paths"
	"github.com/rewind-viewer/viewer/test"
)

func TestPaths(t *testing.T) {
	t.Chdir(t.TempDir())

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".rewindviewer/foo/bar/baz")

	// directories are created but files are not
	info, err := os.Stat(".rewindviewer/foo/bar")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())
	_, err = os.Stat(pth)
	test.ExpectFailure(t, err)

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".rewindviewer/foo/bar")

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".rewindviewer/baz")

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".rewindviewer")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("log", "txt")
	test.ExpectSuccess(t, regexp.MustCompile(`^log_\d{8}_\d{6}\.txt$`).MatchString(fn))

	fn = paths.UniqueFilename("log", "")
	test.ExpectSuccess(t, regexp.MustCompile(`^log_\d{8}_\d{6}$`).MatchString(fn))
}
