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
	"github.com/inkyblackness/imgui-go/v4"

	"github.com/rewind-viewer/viewer/logger"
	"github.com/rewind-viewer/viewer/prefs"
)

const winPrefsID = "Preferences"

type winPrefs struct {
	windowManagement

	img *SdlImgui
}

func newWinPrefs(img *SdlImgui) managedWindow {
	return &winPrefs{img: img}
}

func (win *winPrefs) id() string {
	return winPrefsID
}

func (win *winPrefs) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 380, Y: 30}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 360, Y: 220}, imgui.ConditionFirstUseEver)

	if imgui.BeginV(winPrefsID, &win.open, 0) {
		p := win.img.scene.Preferences()

		colorEdit("Background", &p.ClearColor)
		colorEdit("Grid", &p.GridColor)

		cells := int32(p.GridCells.Get().(int))
		if imgui.SliderInt("Grid cells", &cells, 1, 100) {
			if err := p.GridCells.Set(int(cells)); err != nil {
				logger.Log(logger.Allow, "sdlimgui", err)
			}
		}
		imguiTooltip("The grid is rebuilt when the viewer is restarted")

		imguiSeparator()

		if imgui.Button("Defaults") {
			p.SetDefaults()
		}
		imgui.SameLine()
		if imgui.Button("Save") {
			if err := win.img.savePrefs(); err != nil {
				logger.Log(logger.Allow, "sdlimgui", err)
			}
		}
	}
	imgui.End()
}

// colorEdit draws a colour editor for a three element prefs.Vector.
func colorEdit(label string, v *prefs.Vector) {
	f := v.Float32()
	col := [3]float32{f[0], f[1], f[2]}
	if imgui.ColorEdit3(label, &col) {
		if err := v.Set(col[:]); err != nil {
			logger.Log(logger.Allow, "sdlimgui", err)
		}
	}
}
