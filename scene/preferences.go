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

package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/rewind-viewer/viewer/curated"
	"github.com/rewind-viewer/viewer/prefs"
	"github.com/rewind-viewer/viewer/rewind"
)

// Preferences for the Scene. The grid cell count is only read when the grid is
// first drawn. All other values are read every time the Scene is rendered and
// so can be changed at any time, from any goroutine.
type Preferences struct {
	dsk *prefs.Disk

	ClearColor         prefs.Vector
	GridColor          prefs.Vector
	GridDimensions     prefs.Vector
	GridCells          prefs.Int
	DecorationPosition prefs.Vector
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

const (
	clearColor         = "0.75,0.75,0.75"
	gridColor          = "0.32,0.32,0.32"
	gridDimensions     = "1200,800"
	gridCells          = 30
	decorationPosition = "0,0"
)

// NewPreferences is the preferred method of initialisation for the Preferences
// type. The preferences are stored in the file at the specified path. If the
// path is empty then the preferences are not stored anywhere and only the
// default values are used.
func NewPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}

	p.ClearColor.SetSize(3)
	p.GridColor.SetSize(3)
	p.GridDimensions.SetSize(2)
	p.DecorationPosition.SetSize(2)
	p.GridCells.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return curated.Errorf("scene: grid cell count must be at least one (%d)", v)
		}
		return nil
	})

	p.SetDefaults()

	if pth == "" {
		return p, nil
	}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("scene.clearColor", &p.ClearColor)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("scene.gridColor", &p.GridColor)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("scene.gridDimensions", &p.GridDimensions)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("scene.gridCells", &p.GridCells)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("scene.decorationPosition", &p.DecorationPosition)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all scene settings to default values.
func (p *Preferences) SetDefaults() {
	// errors are impossible with these values
	_ = p.ClearColor.Set(clearColor)
	_ = p.GridColor.Set(gridColor)
	_ = p.GridDimensions.Set(gridDimensions)
	_ = p.GridCells.Set(gridCells)
	_ = p.DecorationPosition.Set(decorationPosition)
}

// Load scene preferences from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Load(false)
}

// Save current scene preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}

// Watch the preferences file for changes. See prefs.Disk.Watch() for details.
func (p *Preferences) Watch(onReload func()) (func(), error) {
	if p.dsk == nil {
		return func() {}, nil
	}
	return p.dsk.Watch(onReload)
}

func (p *Preferences) clearColor() rewind.Color {
	c := p.ClearColor.Float32()
	return rewind.Color{R: c[0], G: c[1], B: c[2]}
}

func (p *Preferences) gridColor() mgl32.Vec3 {
	c := p.GridColor.Float32()
	return mgl32.Vec3{c[0], c[1], c[2]}
}

func (p *Preferences) gridDimensions() mgl32.Vec2 {
	d := p.GridDimensions.Float32()
	return mgl32.Vec2{d[0], d[1]}
}

func (p *Preferences) gridCells() int {
	return p.GridCells.Get().(int)
}

func (p *Preferences) decorationPosition() mgl32.Vec2 {
	d := p.DecorationPosition.Float32()
	return mgl32.Vec2{d[0], d[1]}
}

// Description returns a short summary of the preferences suitable for the log.
func (p *Preferences) Description() string {
	return fmt.Sprintf("clear=%s grid=%s dims=%s cells=%d decoration=%s",
		&p.ClearColor, &p.GridColor, &p.GridDimensions, p.gridCells(), &p.DecorationPosition)
}
