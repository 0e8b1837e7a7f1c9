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


package sdlimgui

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

// time periods in milliseconds that the service loop waits for an event.
const (
	activeSleepPeriod = 20
	idleSleepPeriod   = 500
)

// mouse motion events are limited to this rate unless the scene is being
// dragged
const motionPeriod = 20 * time.Millisecond

type polling struct {
	img *SdlImgui

	motionTicker *time.Ticker

	// wake is used to preempt the timeout when we want to communicate between
	// iterations of the service loop. for example, closing imgui windows
	// might feel laggy without it
	wake bool

	// functions that need to be performed in the main thread are queued for
	// serving by the service() function
	service chan func()

	// the number of frames in the timeline at the previous call to wait()
	count int
}

func newPolling(img *SdlImgui) *polling {
	return &polling{
		img:          img,
		service:      make(chan func(), 1),
		motionTicker: time.NewTicker(motionPeriod),
	}
}

// alert() forces the next call to wait to resolve immediately.
func (pol *polling) alert() {
	pol.wake = true
}

// wakeup the service loop from another goroutine. the SDL event queue is
// safe to push to from any thread.
func (pol *polling) wakeup() {
	_, _ = sdl.PushEvent(&sdl.UserEvent{Type: sdl.USEREVENT})
}

// queue a function to be run in the main goroutine and wait for its result.
// must not be called from the main goroutine.
func (pol *polling) run(f func() error) error {
	result := make(chan error, 1)
	pol.service <- func() {
		result <- f()
	}
	pol.wakeup()
	return <-result
}

func (pol *polling) wait() sdl.Event {
	select {
	case f := <-pol.service:
		f()
	default:
	}

	var timeout int

	count := pol.img.scene.Count()
	if pol.wake {
		pol.wake = false
	} else if count != pol.count || pol.img.dragging {
		timeout = activeSleepPeriod
	} else {
		timeout = idleSleepPeriod
	}
	pol.count = count

	// wait for new SDL event or until the selected timeout period has elapsed
	ev := sdl.WaitEventTimeout(timeout)

	// slow down mouse events unless the scene is being dragged. if we don't
	// do this then waggling the mouse over the window will increase CPU usage
	// significantly
	if !pol.img.dragging {
		switch ev.(type) {
		case *sdl.MouseMotionEvent:
			<-pol.motionTicker.C
		}
	}

	return ev
}

func (pol *polling) destroy() {
	pol.motionTicker.Stop()
}
