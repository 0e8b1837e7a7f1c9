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
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/rewind-viewer/viewer/logger"
)

const (
	menuViewer  = "Viewer"
	menuWindows = "Windows"
)

func (wm *manager) drawMenu() {
	if !imgui.BeginMainMenuBar() {
		return
	}

	if imgui.BeginMenu(menuViewer) {
		if imgui.Selectable("  Fit camera") {
			wm.img.fitCamera()
		}
		if imgui.Selectable("  Save preferences") {
			if err := wm.img.savePrefs(); err != nil {
				logger.Log(logger.Allow, "sdlimgui", err)
			}
		}

		imguiSeparator()

		if imgui.Selectable("  Quit") {
			wm.img.quit()
		}
		imgui.EndMenu()
	}

	if imgui.BeginMenu(menuWindows) {
		for _, id := range wm.menu {
			wm.drawMenuEntry(id)
		}
		imgui.EndMenu()
	}

	imgui.EndMainMenuBar()
}

func (wm *manager) drawMenuEntry(id string) {
	w := wm.windows[id]

	// decorate the menu entry with an "window open" indicator
	label := fmt.Sprintf("  %s", id)
	if w.isOpen() {
		// checkmark is unicode middle dot - code 00b7
		label = fmt.Sprintf("· %s", id)
	}

	// window menu entries are toggleable
	if imgui.Selectable(label) {
		wm.toggleOpen(id)
	}
}
