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

package assert

import (
	"fmt"
	"sync/atomic"
)

// Thread records the goroutine that first calls Check() and panics if a later
// call comes from any other goroutine. Used to make sure that GPU resources
// are only ever touched by the goroutine that owns the graphics context.
//
// The check only happens if the program is compiled with the "assertions"
// build tag. Otherwise Check() does nothing.
type Thread struct {
	owner atomic.Uint64
}

// Check the calling goroutine against the owner. The first caller becomes the
// owner.
func (t *Thread) Check() {
	if !enabled {
		return
	}

	id := GetGoRoutineID()
	if t.owner.CompareAndSwap(0, id) {
		return
	}
	if o := t.owner.Load(); o != id {
		panic(fmt.Sprintf("assert: wrong goroutine (%d) expected (%d)", id, o))
	}
}

// Release the ownership so that the next call to Check() claims it.
func (t *Thread) Release() {
	t.owner.Store(0)
}
