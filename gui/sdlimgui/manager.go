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

// managedWindow represents all the window types used in the sdlimgui.
type managedWindow interface {
	id() string
	draw()
	isOpen() bool
	setOpen(bool)
}

// manager handles windows and menus in the system.
type manager struct {
	img *SdlImgui

	// the collection of managed windows in the system, indexed by window title
	windows map[string]managedWindow

	// the order in which windows are listed in the windows menu
	menu []string
}

func newManager(img *SdlImgui) *manager {
	wm := &manager{
		img:     img,
		windows: make(map[string]managedWindow),
	}

	addWindow := func(w managedWindow, open bool) {
		wm.windows[w.id()] = w
		wm.menu = append(wm.menu, w.id())
		w.setOpen(open)
	}

	addWindow(newWinTimeline(img), true)
	addWindow(newWinPrefs(img), false)
	addWindow(newWinLog(img), false)

	return wm
}

func (wm *manager) draw() {
	wm.drawMenu()
	for _, id := range wm.menu {
		wm.windows[id].draw()
	}
}

// toggle the open state of the window with the specified title.
func (wm *manager) toggleOpen(id string) {
	if w, ok := wm.windows[id]; ok {
		w.setOpen(!w.isOpen())
	}
}
