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


package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/rewind-viewer/viewer/client"
	"github.com/rewind-viewer/viewer/demo"
	"github.com/rewind-viewer/viewer/gui"
	"github.com/rewind-viewer/viewer/gui/sdlimgui"
	"github.com/rewind-viewer/viewer/ingest"
	"github.com/rewind-viewer/viewer/logger"
	"github.com/rewind-viewer/viewer/modalflag"
	"github.com/rewind-viewer/viewer/paths"
	"github.com/rewind-viewer/viewer/prefs"
	"github.com/rewind-viewer/viewer/statsview"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative
	// handler is more appropriate.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY by called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync, os.Args[1:])

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	//
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			if gui != nil {
				gui.Destroy(os.Stderr)
			}
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// a nil pointer stored in an interface does not compare equal
				// to nil so the interface must be cleared explicitly
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("VIEW", "DEMO")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "VIEW":
		err = view(md, sync)

	case "DEMO":
		err = runDemo(md, sync)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags common to the modes that open a window.
type windowFlags struct {
	log       *bool
	prefs     *string
	statsview *bool
}

func addWindowFlags(md *modalflag.Modes) windowFlags {
	f := windowFlags{
		log:   md.AddBool("log", false, "echo debugging log to stdout"),
		prefs: md.AddString("prefs", "", "preference overrides. eg. \"scene.gridCells::10; sdlimgui.follow::false\""),
	}
	if statsview.Available() {
		f.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return f
}

// apply the flags that have an effect before the window is opened.
func (f windowFlags) apply() {
	// set debugging log echo
	if *f.log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *f.prefs != "" {
		prefs.PushCommandLineStack(*f.prefs)
	}

	if f.statsview != nil && *f.statsview {
		statsview.Launch(os.Stdout)
	}
}

// createGUI sends a creator function to the main thread and waits for the
// result. the context is cancelled when the user quits through the GUI.
func createGUI(sync *mainSync, cancel context.CancelFunc) (*sdlimgui.SdlImgui, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	sync.creator <- func() (GuiCreator, error) {
		return sdlimgui.NewSdlImgui(sdlimgui.Config{
			PrefsFile: pth,
			Quit:      cancel,
		})
	}

	select {
	case g := <-sync.creation:
		return g.(*sdlimgui.SdlImgui), nil
	case err := <-sync.creationError:
		return nil, err
	}
}

func view(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	listen := md.AddString("listen", ingest.DefaultAddress, "address to listen on for producers. empty to disable")
	ws := md.AddString("ws", "", fmt.Sprintf("address to listen on for websocket producers (path %s)", ingest.WebsocketPath))
	wf := addWindowFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	wf.apply()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	img, err := createGUI(sync, cancel)
	if err != nil {
		return err
	}
	sc := img.Scene()

	stopWatch, err := sc.Preferences().Watch(nil)
	if err != nil {
		logger.Log(logger.Allow, "viewer", err)
	} else {
		defer stopWatch()
	}

	// frames recorded in a file are loaded before any producer is accepted
	if len(md.RemainingArgs()) == 1 {
		err = replay(md.GetArg(0), sc)
		if err != nil {
			return err
		}
	}

	errs := make(chan error, 2)
	running := 0

	if *listen != "" {
		srv := ingest.NewServer(sc)
		running++
		go func() {
			errs <- srv.ListenAndServe(ctx, *listen)
		}()
	}

	if *ws != "" {
		l, err := net.Listen("tcp", *ws)
		if err != nil {
			return err
		}
		running++
		go func() {
			errs <- ingest.ServeWebsocket(ctx, l, sc)
		}()
	}

	if running == 0 {
		<-ctx.Done()
		return nil
	}

	// the first server to fail stops all the others
	var result error
	for range running {
		if err := <-errs; err != nil && result == nil {
			result = err
			cancel()
		}
	}

	return result
}

func replay(filename string, app ingest.Appender) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := ingest.Decode(f, app, filepath.Base(filename))
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "viewer", "%d frames loaded from %s", n, filename)

	return nil
}

func runDemo(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	connect := md.AddString("connect", "", "address of a viewer to send frames to. empty to show frames locally")
	connectWS := md.AddString("connectws", "", "websocket URL of a viewer to send frames to")
	frames := md.AddInt("frames", 0, "number of frames to produce. zero for no limit")
	interval := md.AddDuration("interval", demo.DefaultInterval, "time between frames")
	bodies := md.AddInt("bodies", 0, "number of bodies. zero for the default")
	seed := md.AddInt("seed", 0, "seed for the random number generator")
	wf := addWindowFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	opts := demo.Options{
		Frames:   *frames,
		Interval: *interval,
		Bodies:   *bodies,
		Seed:     uint64(*seed),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// frames sent to another viewer
	if *connect != "" || *connectWS != "" {
		if *wf.log {
			logger.SetEcho(os.Stdout, true)
		}

		var c *client.Client
		if *connect != "" {
			c, err = client.Dial(*connect)
		} else {
			c, err = client.DialWebsocket(*connectWS)
		}
		if err != nil {
			return err
		}
		defer c.Close()

		return demo.Run(ctx, c, opts)
	}

	wf.apply()

	img, err := createGUI(sync, cancel)
	if err != nil {
		return err
	}

	err = img.SetFeature(gui.ReqFollow, true)
	if err != nil {
		return err
	}

	err = demo.Run(ctx, demo.NewLocal(img.Scene()), opts)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	// the demo has finished but the window stays open until the user quits
	<-ctx.Done()

	return nil
}
