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
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/rewind-viewer/viewer/curated"
	"github.com/rewind-viewer/viewer/logger"
)

// Watch the preferences file for changes made by another program (or by hand)
// and reload the Disk when the file is written. The onReload function, which
// can be nil, is called from the watching goroutine after every successful
// reload.
//
// The returned function stops the watch. It must be called exactly once.
func (dsk *Disk) Watch(onReload func()) (func(), error) {
	watch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, curated.Errorf("prefs: watch: %v", err)
	}

	// the directory is watched rather than the file because some editors
	// replace the file rather than write to it
	if err := watch.Add(filepath.Dir(dsk.path)); err != nil {
		watch.Close()
		return nil, curated.Errorf("prefs: watch: %v", err)
	}

	target := filepath.Clean(dsk.path)

	done := make(chan bool)
	finished := make(chan bool)

	go func() {
		defer close(finished)
		for {
			select {
			case <-done:
				return
			case event, ok := <-watch.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
					if err := dsk.Load(false); err != nil {
						logger.Log(logger.Allow, "prefs", err)
						continue
					}
					logger.Logf(logger.Allow, "prefs", "reloaded %s", dsk.path)
					if onReload != nil {
						onReload()
					}
				}
			case err, ok := <-watch.Errors:
				if !ok {
					return
				}
				logger.Logf(logger.Allow, "prefs", "watch: %v", err)
			}
		}
	}()

	return func() {
		close(done)
		watch.Close()
		<-finished
	}, nil
}
