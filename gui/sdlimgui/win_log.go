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
	"os"
	"strings"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/rewind-viewer/viewer/logger"
	"github.com/rewind-viewer/viewer/paths"
)

const winLogID = "Log"

type winLog struct {
	windowManagement

	img *SdlImgui

	// number of entries and the repeat count of the last entry at the previous
	// draw. a change in either means the log has grown
	count    int
	repeated int
}

func newWinLog(img *SdlImgui) managedWindow {
	return &winLog{img: img}
}

func (win *winLog) id() string {
	return winLogID
}

func (win *winLog) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 500, Y: 480}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 500, Y: 300}, imgui.ConditionFirstUseEver)

	if imgui.BeginV(winLogID, &win.open, 0) {
		if imgui.Button("Save") {
			win.save()
		}
		imguiTooltip("Save the log to a file in the working directory")
		imgui.SameLine()
		if imgui.Button("Clear") {
			logger.Clear()
		}
		imguiSeparator()

		if imgui.BeginChildV("##log", imgui.Vec2{}, false, 0) {
			win.drawEntries()
		}
		imgui.EndChild()
	}
	imgui.End()
}

func (win *winLog) drawEntries() {
	logger.BorrowLog(func(log []logger.Entry) {
		var clipper imgui.ListClipper
		clipper.Begin(len(log))
		for clipper.Step() {
			for i := clipper.DisplayStart; i < clipper.DisplayEnd; i++ {
				imgui.Text(strings.TrimSuffix(log[i].String(), "\n"))
			}
		}

		// scroll to end if there is a new entry
		repeated := 0
		if len(log) > 0 {
			repeated = log[len(log)-1].Repeated
		}
		if len(log) != win.count || repeated != win.repeated {
			imgui.SetScrollHereY(1.0)
			win.count = len(log)
			win.repeated = repeated
		}
	})
}

func (win *winLog) save() {
	fn := paths.UniqueFilename("log", "txt")
	f, err := os.Create(fn)
	if err != nil {
		logger.Log(logger.Allow, "sdlimgui", err)
		return
	}
	defer f.Close()

	logger.Write(f)
	logger.Logf(logger.Allow, "sdlimgui", "log saved to %s", fn)
}
