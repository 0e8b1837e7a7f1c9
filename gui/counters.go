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

import (
	"fmt"
	"sync"
)

// Counter is a single labelled count.
type Counter struct {
	Label string
	Count int
}

func (c Counter) String() string {
	return fmt.Sprintf("%s: %d", c.Label, c.Count)
}

// Counters implements the scene.Counters interface. Counters are kept in the
// order in which they are first reported. Reporting a label for a second time
// replaces the count.
//
// Counters is safe for concurrent use.
type Counters struct {
	crit    sync.Mutex
	entries []Counter
}

// Counter implements the scene.Counters interface.
func (c *Counters) Counter(label string, count int) {
	c.crit.Lock()
	defer c.crit.Unlock()
	for i := range c.entries {
		if c.entries[i].Label == label {
			c.entries[i].Count = count
			return
		}
	}
	c.entries = append(c.entries, Counter{Label: label, Count: count})
}

// Reset all counts to zero. The labels are kept.
func (c *Counters) Reset() {
	c.crit.Lock()
	defer c.crit.Unlock()
	for i := range c.entries {
		c.entries[i].Count = 0
	}
}

// Entries returns a copy of the counters.
func (c *Counters) Entries() []Counter {
	c.crit.Lock()
	defer c.crit.Unlock()
	e := make([]Counter, len(c.entries))
	copy(e, c.entries)
	return e
}
