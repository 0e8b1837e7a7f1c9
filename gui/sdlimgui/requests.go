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
	"github.com/rewind-viewer/viewer/curated"
	"github.com/rewind-viewer/viewer/gui"
)

// SetFeature implements gui.GUI interface. It is safe to call from any
// goroutine. The request is serviced by the main goroutine.
func (img *SdlImgui) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	return img.polling.run(func() error {
		return img.serviceSetFeature(request, args...)
	})
}

// serviceSetFeature must only be called from the main goroutine.
func (img *SdlImgui) serviceSetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) (returnedErr error) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			returnedErr = curated.Errorf(gui.FeatureArguments, request, r)
		}
	}()

	switch request {
	case gui.ReqFollow:
		img.nav.SetFollow(args[0].(bool))

	case gui.ReqNavigate:
		img.nav.Apply(args[0].(gui.Action))

	case gui.ReqFitCamera:
		img.fitCamera()

	case gui.ReqSavePrefs:
		return img.savePrefs()

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	img.polling.alert()

	return nil
}
