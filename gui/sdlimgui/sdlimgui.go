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
	"io"
	"time"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/rewind-viewer/viewer/camera"
	"github.com/rewind-viewer/viewer/curated"
	"github.com/rewind-viewer/viewer/gl32"
	"github.com/rewind-viewer/viewer/gui"
	"github.com/rewind-viewer/viewer/logger"
	"github.com/rewind-viewer/viewer/paths"
	"github.com/rewind-viewer/viewer/scene"
)

// imguiIniFile is where imgui will store the coordinates of the imgui windows
const imguiIniFile = "imgui.ini"

// Config for NewSdlImgui().
type Config struct {
	// path to the preferences file. if empty, preferences are not loaded or
	// saved
	PrefsFile string

	// called when the user wants to quit. called from the main goroutine
	Quit func()
}

// SdlImgui is an sdl based visualiser using imgui.
type SdlImgui struct {
	// the mechanical requirements for the gui
	io      imgui.IO
	context *imgui.Context
	plt     *platform
	glsl    *glsl

	// the scene and the resources it needs
	dev      *gl32.Device
	programs *gl32.Programs
	scene    *scene.Scene
	counters gui.Counters

	cam *camera.Camera
	nav *gui.Navigation

	// imgui window management
	wm *manager

	// polling encapsulates the programmatic communication to the service loop
	polling *polling

	// gui specific preferences. scene preferences are handled by the scene
	prefs *preferences

	quitFunc func()

	// time of the previous call to renderFrame()
	lastFrame time.Time

	// the scene is being dragged with the mouse
	dragging bool
}

// NewSdlImgui is the preferred method of initialisation for type SdlImgui.
//
// MUST ONLY be called from the main goroutine.
func NewSdlImgui(cfg Config) (*SdlImgui, error) {
	img := &SdlImgui{
		context:  imgui.CreateContext(nil),
		io:       imgui.CurrentIO(),
		quitFunc: cfg.Quit,
	}

	// path to dear imgui ini file
	iniPath, err := paths.ResourcePath("", imguiIniFile)
	if err != nil {
		img.context.Destroy()
		return nil, curated.Errorf("sdlimgui: %v", err)
	}
	img.io.SetIniFilename(iniPath)

	img.plt, err = newPlatform(img)
	if err != nil {
		img.context.Destroy()
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	img.glsl, err = newGlsl(img)
	if err != nil {
		img.destroyPartial()
		return nil, curated.Errorf("sdlimgui: %v", err)
	}

	img.programs, err = gl32.NewPrograms()
	if err != nil {
		img.destroyPartial()
		return nil, curated.Errorf("sdlimgui: %v", err)
	}
	img.dev = gl32.NewDevice()

	scenePrefs, err := scene.NewPreferences(cfg.PrefsFile)
	if err != nil {
		img.destroyPartial()
		return nil, curated.Errorf("sdlimgui: %v", err)
	}
	logger.Logf(logger.Allow, "scene", "preferences: %s", scenePrefs.Description())

	img.scene = scene.NewScene(img.dev, img.programs.Shaders(), &img.counters, scenePrefs)
	img.nav = gui.NewNavigation(img.scene.Timeline())

	img.prefs, err = newPreferences(img, cfg.PrefsFile)
	if err != nil {
		img.destroyPartial()
		return nil, curated.Errorf("sdlimgui: %v", err)
	}
	img.nav.SetFollow(img.prefs.follow.Get().(bool))

	sz := img.plt.displaySize()
	img.cam = camera.NewCamera(sz[0], sz[1])
	img.fitCamera()

	img.wm = newManager(img)
	img.polling = newPolling(img)

	// resize events are handled by the event filter
	sdl.SetEventFilterFunc(img.serviceWindowEvent, nil)

	img.plt.window.Show()

	return img, nil
}

// destroyPartial releases whatever has been created so far by NewSdlImgui().
func (img *SdlImgui) destroyPartial() {
	if img.programs != nil {
		img.programs.Destroy()
	}
	if img.glsl != nil {
		img.glsl.destroy()
	}
	if img.plt != nil {
		_ = img.plt.destroy()
	}
	img.context.Destroy()
}

// Destroy implements GuiCreator interface. Preferences are saved before the
// window is destroyed.
//
// MUST ONLY be called from the main goroutine.
func (img *SdlImgui) Destroy(output io.Writer) {
	err := img.savePrefs()
	if err != nil {
		io.WriteString(output, err.Error())
	}

	img.polling.destroy()
	img.dev.Destroy()
	img.programs.Destroy()
	img.glsl.destroy()

	err = img.plt.destroy()
	if err != nil {
		io.WriteString(output, err.Error())
	}

	img.context.Destroy()
}

// Scene returns the scene drawn by the GUI. Frames can be appended to the
// scene from any goroutine.
func (img *SdlImgui) Scene() *scene.Scene {
	return img.scene
}

// quit application. the GUI is not destroyed until the Quit function provided
// in the Config has acted on the request.
func (img *SdlImgui) quit() {
	if img.quitFunc != nil {
		img.quitFunc()
	}
}

// fitCamera so that the whole grid is visible.
func (img *SdlImgui) fitCamera() {
	dims := img.scene.Preferences().GridDimensions.Float32()
	img.cam.Fit(dims[0], dims[1])
}

func (img *SdlImgui) savePrefs() error {
	err := img.prefs.save()
	if err != nil {
		return err
	}
	return img.scene.Preferences().Save()
}
