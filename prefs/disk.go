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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/rewind-viewer/viewer/curated"
)

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand while the viewer is running ***"

// KeySep separates the key from the value on each line of a preferences
// file.
const KeySep = " :: "

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// Sentinal error patterns.
const (
	NoPrefsFile      = "prefs: no preferences file (%s)"
	InvalidPrefsFile = "prefs: not a valid preferences file (%s)"
	DuplicateKey     = "prefs: key already added (%s)"
	InvalidKey       = "prefs: invalid key (%s)"
)

// Disk represents preference values as stored on disk. Values are added to
// the Disk with Add() and then loaded and saved as a group.
//
// Values that are found in the file but which have not been added to the Disk
// instance are preserved when the Disk is saved. This means that more than one
// Disk instance can safely use the same file.
type Disk struct {
	crit sync.Mutex
	path string

	entries map[string]pref

	// values taken from the command line stack. they are applied on every
	// call to Load() and not just the first call
	overrides map[string]Value
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf(NoPrefsFile, "no path")
	}
	return &Disk{
		path:      path,
		entries:   make(map[string]pref),
		overrides: make(map[string]Value),
	}, nil
}

// Path returns the filename of the preferences file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store/load from Disk.
func (dsk *Disk) Add(key string, p pref) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if key == "" || strings.ContainsAny(key, "\n:") || strings.TrimSpace(key) != key {
		return curated.Errorf(InvalidKey, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p
	return nil
}

// String returns the preference values in the same format as the file on disk.
func (dsk *Disk) String() string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	s := strings.Builder{}
	for _, k := range sortedKeys(dsk.entries) {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, KeySep, dsk.entries[k]))
	}
	return s.String()
}

// Reset all preference values to their zero value.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}

// Save current preference values to disk.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	// start with the values already in the file
	data, err := dsk.read()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		return err
	}
	if data == nil {
		data = make(map[string]string)
	}

	for k, p := range dsk.entries {
		data[k] = p.String()
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s\n", WarningBoilerPlate))
	for _, k := range sortedKeys(data) {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, KeySep, data[k]))
	}

	err = os.WriteFile(dsk.path, []byte(s.String()), 0o644)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}

// Load preference values from disk. If saveOnFail is true and the file does not
// exist then the current values are saved to disk, creating the file.
//
// Values on the command line stack (see PushCommandLineStack()) take precedence
// over the values on disk.
func (dsk *Disk) Load(saveOnFail bool) error {
	dsk.crit.Lock()

	data, err := dsk.read()
	if err != nil && !curated.Is(err, NoPrefsFile) {
		dsk.crit.Unlock()
		return err
	}
	missing := err != nil

	for k, v := range data {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				dsk.crit.Unlock()
				return curated.Errorf("prefs: %s: %v", k, err)
			}
		}
	}

	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			dsk.overrides[k] = v
		}
		if v, ok := dsk.overrides[k]; ok {
			if err := p.Set(v); err != nil {
				dsk.crit.Unlock()
				return curated.Errorf("prefs: %s: %v", k, err)
			}
		}
	}

	dsk.crit.Unlock()

	if missing {
		if saveOnFail {
			return dsk.Save()
		}
		return curated.Errorf(NoPrefsFile, dsk.path)
	}

	return nil
}

// read the preferences file into a map of strings. must be called from inside
// the critical section.
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	data := make(map[string]string)

	scanner := bufio.NewScanner(f)

	// an empty file is fine. otherwise the first line must be the boiler plate
	if scanner.Scan() && scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(InvalidPrefsFile, dsk.path)
	}

	for scanner.Scan() {
		spt := strings.SplitN(scanner.Text(), KeySep, 2)

		// ignore lines that haven't been split successfully
		if len(spt) != 2 {
			continue
		}
		data[spt[0]] = spt[1]
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("prefs: %v", err)
	}

	return data, nil
}

func sortedKeys[T any](m map[string]T) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
