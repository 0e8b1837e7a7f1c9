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


package ingest

import (
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rewind-viewer/viewer/curated"
	"github.com/rewind-viewer/viewer/logger"
)

// WebsocketPath is the path that the websocket handler is served on by
// ServeWebsocket().
const WebsocketPath = "/rewind"

// Sentinel error patterns.
const (
	WebsocketError = "ingest: websocket: %v"
)

// WebsocketHandler is an http.Handler that accepts websocket connections
// from producers.
type WebsocketHandler struct {
	app      Appender
	upgrader websocket.Upgrader
}

// NewWebsocketHandler is the preferred method of initialisation for the
// WebsocketHandler type.
func NewWebsocketHandler(app Appender) *WebsocketHandler {
	return &WebsocketHandler{
		app: app,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 1024,
		},
	}
}

// ServeHTTP implements the http.Handler interface.
func (h *WebsocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// the upgrader has already replied to the client
		logger.Logf(logger.Allow, "ingest", "%s: %v", r.RemoteAddr, curated.Errorf(WebsocketError, err))
		return
	}
	defer conn.Close()

	source := "ws " + conn.RemoteAddr().String()
	logger.Logf(logger.Allow, "ingest", "%s: connected", source)

	dec := newFrameDecoder(h.app, source)
	defer dec.close()

	for {
		typ, msg, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Logf(logger.Allow, "ingest", "%s: %v", source, curated.Errorf(WebsocketError, err))
			}
			break
		}

		if typ != websocket.TextMessage && typ != websocket.BinaryMessage {
			continue
		}

		err = dec.decode(bytes.NewReader(msg))
		if err != nil {
			logger.Logf(logger.Allow, "ingest", "%s: %v", source, err)
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseUnsupportedData, "malformed stream"),
				time.Now().Add(time.Second))
			break
		}
	}

	logger.Logf(logger.Allow, "ingest", "%s: disconnected after %d frames", source, dec.frames)
}

// ServeWebsocket serves a WebsocketHandler on WebsocketPath until the context
// is cancelled. Cancelling the context is not an error and in that case
// ServeWebsocket returns nil.
func ServeWebsocket(ctx context.Context, l net.Listener, app Appender) error {
	mux := http.NewServeMux()
	mux.Handle(WebsocketPath, NewWebsocketHandler(app))

	server := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	stop := context.AfterFunc(ctx, func() {
		server.Close()
	})
	defer stop()

	logger.Logf(logger.Allow, "ingest", "listening for websockets on %s%s", l.Addr(), WebsocketPath)

	err := server.Serve(l)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return curated.Errorf(WebsocketError, err)
}
