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


package demo_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rewind-viewer/viewer/demo"
	"github.com/rewind-viewer/viewer/rewind"
	"github.com/rewind-viewer/viewer/test"
)

func TestRun(t *testing.T) {
	tl := rewind.NewTimeline()

	err := demo.Run(context.Background(), demo.NewLocal(tl), demo.Options{Frames: 10, Bodies: 3, Seed: 1})
	test.ExpectSuccess(t, err)
	test.DemandEquality(t, tl.Count(), 10)

	for i := range tl.Count() {
		f := tl.Frame(i)
		test.ExpectEquality(t, len(f.Circles), 3, i)
		test.ExpectEquality(t, len(f.Rectangles), 4, i)
		test.ExpectEquality(t, f.UserMessage, fmt.Sprintf("tick %d\n3 bodies", i), i)

		// the trail grows by one line per body every frame, up to the limit
		test.ExpectEquality(t, len(f.Lines), 3*min(i, 8), i)

		// every body stays inside the area
		for _, c := range f.Circles {
			test.ExpectSuccess(t, c.Center.X-c.Radius >= 0 && c.Center.X+c.Radius <= 1200, i)
			test.ExpectSuccess(t, c.Center.Y-c.Radius >= 0 && c.Center.Y+c.Radius <= 800, i)
		}
	}
}

func TestRunDeterministic(t *testing.T) {
	a := rewind.NewTimeline()
	b := rewind.NewTimeline()

	opts := demo.Options{Frames: 5, Seed: 42}
	test.ExpectSuccess(t, demo.Run(context.Background(), demo.NewLocal(a), opts))
	test.ExpectSuccess(t, demo.Run(context.Background(), demo.NewLocal(b), opts))

	for i := range 5 {
		fa := a.Frame(i)
		fb := b.Frame(i)
		test.DemandEquality(t, len(fa.Circles), len(fb.Circles))
		for j := range fa.Circles {
			test.ExpectEquality(t, fa.Circles[j], fb.Circles[j], i, j)
		}
	}
}

func TestRunCancel(t *testing.T) {
	tl := rewind.NewTimeline()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- demo.Run(ctx, demo.NewLocal(tl), demo.Options{Interval: time.Millisecond})
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	err := <-done
	test.ExpectSuccess(t, errors.Is(err, context.Canceled))
	test.ExpectSuccess(t, tl.Count() > 0)
}

type failingProducer struct {
	demo.Local
}

func (failingProducer) Circle(_, _, _ float32, _ uint32) error {
	return errors.New("test error")
}

func TestRunProducerError(t *testing.T) {
	err := demo.Run(context.Background(), &failingProducer{}, demo.Options{Frames: 1})
	test.ExpectFailure(t, err)
}
