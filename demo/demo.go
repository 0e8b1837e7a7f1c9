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


package demo

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/rewind-viewer/viewer/logger"
)

// Producer is the destination of the frames generated by Run(). The
// client.Client type implements the Producer interface.
type Producer interface {
	Circle(x, y, r float32, color uint32) error
	Rectangle(x1, y1, x2, y2 float32, color uint32) error
	Line(x1, y1, x2, y2 float32, color uint32) error
	Message(msg string) error
	EndFrame() error
}

// Options for Run(). The zero value is valid and produces an unlimited number
// of frames as quickly as possible.
type Options struct {
	// number of frames to produce. zero means no limit
	Frames int

	// the time between frames
	Interval time.Duration

	// size of the area. if either is zero the size of the default grid
	// is used
	Width  float32
	Height float32

	// number of bodies. if zero a default number is used
	Bodies int

	// seed for the random number generator
	Seed uint64
}

// DefaultInterval is a suitable time between frames for watching the demo.
const DefaultInterval = 50 * time.Millisecond

const (
	defaultWidth  = 1200
	defaultHeight = 800
	defaultBodies = 12

	// number of previous positions drawn for each body
	trailLength = 8

	// thickness of the walls
	wallSize = 10.0
)

var palette = []uint32{0xe6194b, 0x3cb44b, 0xffe119, 0x4363d8, 0xf58231, 0x911eb4, 0x46f0f0, 0xf032e6}

type body struct {
	x, y   float32
	vx, vy float32
	r      float32
	color  uint32
	trail  [][2]float32
}

type world struct {
	width  float32
	height float32
	bodies []body
	tick   int
}

func newWorld(opts Options) *world {
	w := &world{
		width:  opts.Width,
		height: opts.Height,
	}
	if w.width <= 0 || w.height <= 0 {
		w.width = defaultWidth
		w.height = defaultHeight
	}

	n := opts.Bodies
	if n <= 0 {
		n = defaultBodies
	}

	rnd := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	for i := range n {
		r := 5 + rnd.Float32()*20
		angle := rnd.Float64() * 2 * math.Pi
		speed := 2 + rnd.Float64()*6
		w.bodies = append(w.bodies, body{
			x:     wallSize + r + rnd.Float32()*(w.width-2*(wallSize+r)),
			y:     wallSize + r + rnd.Float32()*(w.height-2*(wallSize+r)),
			vx:    float32(math.Cos(angle) * speed),
			vy:    float32(math.Sin(angle) * speed),
			r:     r,
			color: palette[i%len(palette)],
		})
	}

	return w
}

// step moves every body and bounces them off the walls.
func (w *world) step() {
	w.tick++
	for i := range w.bodies {
		b := &w.bodies[i]

		b.trail = append(b.trail, [2]float32{b.x, b.y})
		if len(b.trail) > trailLength {
			b.trail = b.trail[1:]
		}

		b.x += b.vx
		b.y += b.vy

		lo := wallSize + b.r
		if b.x < lo || b.x > w.width-lo {
			b.vx = -b.vx
			b.x = min(max(b.x, lo), w.width-lo)
		}
		if b.y < lo || b.y > w.height-lo {
			b.vy = -b.vy
			b.y = min(max(b.y, lo), w.height-lo)
		}
	}
}

// emit the current state of the world as a single frame.
func (w *world) emit(p Producer) error {
	// walls
	walls := [][4]float32{
		{0, 0, w.width, wallSize},
		{0, w.height - wallSize, w.width, w.height},
		{0, 0, wallSize, w.height},
		{w.width - wallSize, 0, w.width, w.height},
	}
	for _, r := range walls {
		if err := p.Rectangle(r[0], r[1], r[2], r[3], 0x404040); err != nil {
			return err
		}
	}

	for _, b := range w.bodies {
		if err := p.Circle(b.x, b.y, b.r, b.color); err != nil {
			return err
		}

		prev := [2]float32{b.x, b.y}
		for j := len(b.trail) - 1; j >= 0; j-- {
			t := b.trail[j]
			if err := p.Line(prev[0], prev[1], t[0], t[1], b.color); err != nil {
				return err
			}
			prev = t
		}
	}

	if err := p.Message(fmt.Sprintf("tick %d", w.tick)); err != nil {
		return err
	}
	if err := p.Message(fmt.Sprintf("%d bodies", len(w.bodies))); err != nil {
		return err
	}

	return p.EndFrame()
}

// Run sends frames to the producer until the number of frames in the options
// have been sent or until the context is cancelled.
//
// Returns nil if the requested number of frames have been sent. Returns the
// context's error if the context was cancelled and any error returned by the
// producer.
func Run(ctx context.Context, p Producer, opts Options) error {
	w := newWorld(opts)

	var ticker *time.Ticker
	if opts.Interval > 0 {
		ticker = time.NewTicker(opts.Interval)
		defer ticker.Stop()
	}

	logger.Logf(logger.Allow, "demo", "starting with %d bodies in %.0fx%.0f", len(w.bodies), w.width, w.height)

	for n := 0; opts.Frames == 0 || n < opts.Frames; n++ {
		if ticker != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		if err := w.emit(p); err != nil {
			return err
		}
		w.step()
	}

	logger.Logf(logger.Allow, "demo", "finished after %d frames", w.tick)

	return nil
}
