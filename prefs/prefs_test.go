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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rewind-viewer/viewer/curated"
	"github.com/rewind-viewer/viewer/prefs"
	"github.com/rewind-viewer/viewer/test"
)

func getTmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), prefs.DefaultPrefsFile)
}

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("true"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestString(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "foo :: bar\n")
}

func TestInt(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))

	// test string conversion to int
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	// while we have a prefs.Int instance set up we'll test some
	// failure conditions
	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestVector(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Vector
	v.SetSize(3)
	test.ExpectSuccess(t, dsk.Add("colour", &v))

	// unset vector is all zeroes
	test.ExpectEquality(t, v.String(), "0,0,0")

	test.ExpectSuccess(t, v.Set("0.5, 0.25,1"))
	test.ExpectEquality(t, v.String(), "0.5,0.25,1")

	f := v.Float32()
	test.DemandEquality(t, len(f), 3)
	test.ExpectEquality(t, f[0], float32(0.5))
	test.ExpectEquality(t, f[1], float32(0.25))
	test.ExpectEquality(t, f[2], float32(1.0))

	// wrong number of elements
	test.ExpectFailure(t, v.Set("1,2"))
	test.ExpectFailure(t, v.Set([]float32{1, 2, 3, 4}))
	test.ExpectFailure(t, v.Set("a,b,c"))
	test.ExpectEquality(t, v.String(), "0.5,0.25,1")

	test.ExpectSuccess(t, v.Set([]float32{1, 2, 3}))
	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "colour :: 1,2,3\n")

	// changing the returned value does not change the preference
	g := v.Get().([]float64)
	g[0] = 100
	test.ExpectEquality(t, v.String(), "1,2,3")

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.String(), "0,0,0")
}

func TestHooks(t *testing.T) {
	var v prefs.Int

	var pre, post int
	v.SetHookPre(func(value prefs.Value) error {
		pre = value.(int)
		if pre < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, pre, 5)
	test.ExpectEquality(t, post, 5)

	// a failing pre hook prevents the value from being stored
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 5)
	test.ExpectEquality(t, post, 5)
}

func TestGeneric(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var w, h int

	v := prefs.NewGeneric(
		func(s string) error {
			_, err := fmt.Sscanf(s, "%d,%d", &w, &h)
			return err
		},
		func() string {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)

	test.ExpectSuccess(t, dsk.Add("generic", v))

	// change values
	w = 1
	h = 2

	test.DemandSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "generic :: 1,2\n")

	// reset values
	w = 0
	h = 0

	// reload them from disk
	test.DemandSuccess(t, dsk.Load(false))

	// check that the values have been restored
	test.ExpectEquality(t, w, 1)
	test.ExpectEquality(t, h, 2)
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestBoolAndString(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	// start a new disk instance using the same file. (we haven't deleted it yet)
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	// compare file. the file should contain contents set by both disk
	// instances
	cmpTmpFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestMaxStringLength(t *testing.T) {
	var s prefs.String
	test.ExpectSuccess(t, s.Set("123456789"))
	test.ExpectEquality(t, s.String(), "123456789")

	// setting maximum length will crop the existing string
	s.SetMaxLen(5)
	test.ExpectEquality(t, s.String(), "12345")

	// unsetting a maximum length (using value zero) will not result in
	// cropped string infomration reappearing
	s.SetMaxLen(0)
	test.ExpectEquality(t, s.String(), "12345")

	// set string after setting a maximum length will result in the set string
	// being cropped
	s.SetMaxLen(3)
	test.ExpectSuccess(t, s.Set("abcdefghi"))
	test.ExpectEquality(t, s.String(), "abc")
}

func TestKeys(t *testing.T) {
	dsk, err := prefs.NewDisk(getTmpPrefFile(t))
	test.DemandSuccess(t, err)

	var a, b prefs.Int
	test.ExpectSuccess(t, dsk.Add("a", &a))
	test.ExpectSuccess(t, curated.Is(dsk.Add("a", &b), prefs.DuplicateKey))
	test.ExpectSuccess(t, curated.Is(dsk.Add("", &b), prefs.InvalidKey))
	test.ExpectSuccess(t, curated.Is(dsk.Add("b :: c", &b), prefs.InvalidKey))

	_, err = prefs.NewDisk("")
	test.ExpectFailure(t, err)
}

func TestMissingFile(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, v.Set(7))

	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))
	test.ExpectEquality(t, v.Get().(int), 7)

	// the file is created if it doesn't exist
	test.ExpectSuccess(t, dsk.Load(true))
	cmpTmpFile(t, fn, "number :: 7\n")
}

func TestInvalidFile(t *testing.T) {
	fn := getTmpPrefFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not a prefs file\nnumber :: 1\n"), 0o644))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, curated.Is(dsk.Load(false), prefs.InvalidPrefsFile))
	test.ExpectEquality(t, v.Get().(int), 0)
}

func TestLoadWithCommandLine(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))
	test.ExpectSuccess(t, v.Set(1))
	test.ExpectSuccess(t, w.Set(2))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("number::100")
	defer prefs.PopCommandLineStack()

	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(int), 100)
	test.ExpectEquality(t, w.Get().(int), 2)

	// command line values persist for the lifetime of the disk even though
	// they have been taken from the command line stack
	test.ExpectSuccess(t, v.Set(5))
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(int), 100)
}

func TestWatch(t *testing.T) {
	fn := getTmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.DemandSuccess(t, dsk.Save())

	reloaded := make(chan bool, 10)
	stop, err := dsk.Watch(func() {
		reloaded <- true
	})
	test.DemandSuccess(t, err)
	defer stop()

	// write the file as though it was another program
	data := fmt.Sprintf("%s\nnumber%s42\n", prefs.WarningBoilerPlate, prefs.KeySep)
	test.DemandSuccess(t, os.WriteFile(fn, []byte(data), 0o644))

	// more than one reload might happen depending on how the write is
	// reported by the operating system
	timeout := time.After(5 * time.Second)
	for v.Get().(int) != 42 {
		select {
		case <-reloaded:
		case <-timeout:
			t.Fatalf("preferences file was not reloaded")
		}
	}
}
