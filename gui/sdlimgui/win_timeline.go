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

	"github.com/rewind-viewer/viewer/gui"
)

const winTimelineID = "Timeline"

type winTimeline struct {
	windowManagement

	img *SdlImgui
}

func newWinTimeline(img *SdlImgui) managedWindow {
	return &winTimeline{img: img}
}

func (win *winTimeline) id() string {
	return winTimelineID
}

func (win *winTimeline) draw() {
	if !win.open {
		return
	}

	imgui.SetNextWindowPosV(imgui.Vec2{X: 10, Y: 30}, imgui.ConditionFirstUseEver, imgui.Vec2{})
	imgui.SetNextWindowSizeV(imgui.Vec2{X: 360, Y: 260}, imgui.ConditionFirstUseEver)

	if imgui.BeginV(winTimelineID, &win.open, 0) {
		win.drawNavigation()
		imguiSeparator()
		win.drawCounters()
		imguiSeparator()
		win.drawMessage()
	}
	imgui.End()
}

func (win *winTimeline) drawNavigation() {
	summary := win.img.scene.Timeline().Summary()

	if summary.Count == 0 {
		imgui.Text("Waiting for frames")
		return
	}

	// buttons
	w := imgui.Vec2{X: imguiDivideWinWidth(4)}
	if imgui.ButtonV("|<", w) {
		win.img.nav.Apply(gui.ActionFirst)
	}
	imgui.SameLine()
	if imgui.ButtonV("<", w) {
		win.img.nav.Apply(gui.ActionPrevious)
	}
	imgui.SameLine()
	if imgui.ButtonV(">", w) {
		win.img.nav.Apply(gui.ActionNext)
	}
	imgui.SameLine()
	if imgui.ButtonV(">|", w) {
		win.img.nav.Apply(gui.ActionLast)
	}

	// frame slider
	f := int32(summary.Current)
	imgui.PushItemWidth(-1)
	if imgui.SliderInt("##frame", &f, 0, int32(summary.Count-1)) {
		win.img.nav.Seek(int(f))
	}
	imgui.PopItemWidth()

	imgui.Text(fmt.Sprintf("Frame %d of %d", summary.Current+1, summary.Count))

	follow := win.img.nav.Follow()
	if imgui.Checkbox("Follow newest frame", &follow) {
		win.img.nav.SetFollow(follow)
		_ = win.img.prefs.follow.Set(follow)
	}
	imguiTooltip("Space to toggle")
}

func (win *winTimeline) drawCounters() {
	for _, c := range win.img.counters.Entries() {
		imgui.Text(c.String())
	}
}

func (win *winTimeline) drawMessage() {
	msg := win.img.scene.CurrentUserMessage()
	if msg == "" {
		return
	}
	imgui.Text("Message:")
	if imgui.BeginChildV("##message", imgui.Vec2{}, true, 0) {
		imgui.Text(msg)
	}
	imgui.EndChild()
}
