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


package ingest_test

import (
	"context"
	"net"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"

	"github.com/rewind-viewer/viewer/ingest"
	"github.com/rewind-viewer/viewer/rewind"
	"github.com/rewind-viewer/viewer/test"
)

func TestWebsocketHandler(t *testing.T) {
	tl := rewind.NewTimeline()
	srv := httptest.NewServer(ingest.NewWebsocketHandler(tl))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	test.DemandSuccess(t, err)
	defer conn.Close()

	// the frame is split over many messages of different types
	err = conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"circle","x":1,"y":2,"r":3,"color":255}`))
	test.DemandSuccess(t, err)
	err = conn.WriteMessage(websocket.BinaryMessage, []byte(`{"type":"message","message":"ws"}{"type":"end"}`))
	test.DemandSuccess(t, err)

	waitFor(t, func() bool { return tl.Count() == 1 })
	f := tl.Frame(0)
	test.ExpectEquality(t, len(f.Circles), 1)
	test.ExpectEquality(t, f.UserMessage, "ws")

	// malformed data closes the connection
	err = conn.WriteMessage(websocket.TextMessage, []byte(`{"type":`))
	test.DemandSuccess(t, err)
	_, _, err = conn.ReadMessage()
	test.ExpectSuccess(t, websocket.IsCloseError(err, websocket.CloseUnsupportedData))
}

func TestServeWebsocket(t *testing.T) {
	tl := rewind.NewTimeline()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	test.DemandSuccess(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- ingest.ServeWebsocket(ctx, l, tl)
	}()

	url := "ws://" + l.Addr().String() + ingest.WebsocketPath
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	test.DemandSuccess(t, err)

	err = conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"end"}`))
	test.DemandSuccess(t, err)
	waitFor(t, func() bool { return tl.Count() == 1 })

	err = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	test.ExpectSuccess(t, err)
	conn.Close()

	cancel()
	test.ExpectSuccess(t, <-done)
}
