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
	"math"
	"strings"
	"time"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/rewind-viewer/viewer/gui"
)

// each notch of the mouse wheel changes the zoom by this factor
const zoomStep = 1.1

// Service implements GuiCreator interface.
func (img *SdlImgui) Service() {
	// poll for sdl event or timeout
	ev := img.polling.wait()

	// whether mouse button down event have been polled. if it has and we poll
	// an up event in the same PollEvent() loop below, then we need to
	// "trickle" the up and down events over two frames. see commentary for
	// trickleMouseButton type
	leftMouseDownPolled := false
	rightMouseDownPolled := false

	for ; ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			img.quit()

		// case *sdl.WindowEvent handled by event filter (see comment in serviceWindowEvent()

		case *sdl.TextInputEvent:
			img.io.AddInputCharacters(strings.TrimRight(string(ev.Text[:]), "\x00"))

		case *sdl.KeyboardEvent:
			img.serviceKeyboard(ev)

		case *sdl.MouseMotionEvent:
			if img.dragging {
				img.cam.Pan(float32(ev.XRel), float32(ev.YRel))
			}

		case *sdl.MouseButtonEvent:
			switch ev.Button {
			case sdl.BUTTON_LEFT:
				switch ev.Type {
				case sdl.MOUSEBUTTONDOWN:
					leftMouseDownPolled = true

					// dragging the scene only starts if the click is not
					// over an imgui window
					img.dragging = !img.io.WantCaptureMouse()
				case sdl.MOUSEBUTTONUP:
					if leftMouseDownPolled {
						img.plt.trickleMouseButtonLeft = trickleMouseDown
					}
					img.dragging = false
				}

			case sdl.BUTTON_RIGHT:
				switch ev.Type {
				case sdl.MOUSEBUTTONDOWN:
					rightMouseDownPolled = true
				case sdl.MOUSEBUTTONUP:
					if rightMouseDownPolled {
						img.plt.trickleMouseButtonRight = trickleMouseDown
					}
				}
			}

			// trigger service wake in time for next Service() iteration.
			// without this, the results of the mouse button will not be
			// seen until the timeout (in the next iteration) has elapsed.
			//
			// eg. closing a window: the window will be drawn on *this*
			// frame and *this* mouse button press will be acknowledged.
			// next frame the window will not be drawn. however, the *next*
			// frame will sleep until the time out - *this* mouse button
			// event has been consumed. calling alert() ensures there is no
			// delay in drawing the *next* frame
			img.polling.alert()

		case *sdl.MouseWheelEvent:
			var deltaX, deltaY float32
			if ev.X > 0 {
				deltaX++
			} else if ev.X < 0 {
				deltaX--
			}
			if ev.Y > 0 {
				deltaY++
			} else if ev.Y < 0 {
				deltaY--
			}
			img.io.AddMouseWheelDelta(-deltaX/4, deltaY/4)

			if !img.io.WantCaptureMouse() && deltaY != 0 {
				mx, my, _ := sdl.GetMouseState()
				factor := float32(math.Pow(zoomStep, float64(deltaY)))
				img.cam.ZoomAt(factor, float32(mx), float32(my))
			}
		}
	}

	img.renderFrame()
}

func (img *SdlImgui) renderFrame() {
	// follow newest frame if required
	if img.nav.Update() {
		img.polling.alert()
	}

	now := time.Now()
	var delta time.Duration
	if !img.lastFrame.IsZero() {
		delta = now.Sub(img.lastFrame)
	}
	img.lastFrame = now

	// start of a new frame
	img.plt.newFrame(delta)
	imgui.NewFrame()

	// draw all windows
	img.wm.draw()

	// rendering
	imgui.Render() // This call only creates the draw data list. Actual rendering to framebuffer is done below.
	img.glsl.preRender()

	sz := img.plt.displaySize()
	img.cam.SetViewport(sz[0], sz[1])
	img.counters.Reset()
	img.scene.Render(img.cam.ProjView())

	img.glsl.render()
	img.plt.postRender()
}

func (img *SdlImgui) serviceKeyboard(ev *sdl.KeyboardEvent) {
	// keypresses forwarded to imgui io system
	switch ev.Type {
	case sdl.KEYDOWN:
		img.io.KeyPress(int(ev.Keysym.Scancode))
		img.plt.updateKeyModifier()
	case sdl.KEYUP:
		img.io.KeyRelease(int(ev.Keysym.Scancode))
		img.plt.updateKeyModifier()
	}

	if ev.Type != sdl.KEYDOWN || img.io.WantCaptureKeyboard() {
		return
	}

	// stepping through the timeline is allowed to repeat. nothing else is
	switch ev.Keysym.Scancode {
	case sdl.SCANCODE_LEFT:
		img.nav.Apply(gui.ActionPrevious)
		return
	case sdl.SCANCODE_RIGHT:
		img.nav.Apply(gui.ActionNext)
		return
	}

	if ev.Repeat != 0 {
		return
	}

	switch ev.Keysym.Scancode {
	case sdl.SCANCODE_HOME:
		img.nav.Apply(gui.ActionFirst)
	case sdl.SCANCODE_END:
		img.nav.Apply(gui.ActionLast)
	case sdl.SCANCODE_SPACE:
		img.nav.SetFollow(!img.nav.Follow())
	case sdl.SCANCODE_C:
		img.fitCamera()
	case sdl.SCANCODE_ESCAPE:
		img.quit()
	}
}

// serviceWindowEvent implements the sdl.EventFilter interface
//
// we handle sdl.WindowEvent events in the event filter because there is a bug
// in MacOS/OpenGL which means windows are not refreshed during a window
// resize, only when the resize is finished. this results in poor visual
// feedback
//
// bug described here with suggested fix:
//
// https://stackoverflow.com/questions/34967628/sdl2-window-turns-black-on-resize
func (img *SdlImgui) serviceWindowEvent(ev sdl.Event, userdata interface{}) bool {
	switch ev := ev.(type) {
	case *sdl.WindowEvent:
		switch ev.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			img.renderFrame()
		}
		return false
	}
	return true
}
