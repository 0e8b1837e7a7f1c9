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
	"context"
	"errors"
	"net"
	"sync"

	"github.com/rewind-viewer/viewer/curated"
	"github.com/rewind-viewer/viewer/logger"
)

// DefaultAddress is the address that producers connect to by default.
const DefaultAddress = "127.0.0.1:9111"

// Sentinel error patterns.
const (
	ListenError = "ingest: listen: %v"
	AcceptError = "ingest: accept: %v"
)

// Server accepts TCP connections from producers. Every connection appends to
// the same Appender. Many producers can be connected at once but the frames
// from each producer are appended in the order in which they are completed,
// which means that frames from different producers will be interleaved.
type Server struct {
	app Appender

	crit  sync.Mutex
	conns map[net.Conn]struct{}

	wg sync.WaitGroup
}

// NewServer is the preferred method of initialisation for the Server type.
func NewServer(app Appender) *Server {
	return &Server{
		app:   app,
		conns: make(map[net.Conn]struct{}),
	}
}

// ListenAndServe listens on the TCP address and then calls Serve().
func (srv *Server) ListenAndServe(ctx context.Context, address string) error {
	var lc net.ListenConfig
	l, err := lc.Listen(ctx, "tcp", address)
	if err != nil {
		return curated.Errorf(ListenError, err)
	}
	return srv.Serve(ctx, l)
}

// Serve accepts connections from the listener until the context is
// cancelled. The listener is closed when Serve returns. Serve does not return
// until every connection has been closed.
//
// Cancelling the context is not an error and in that case Serve returns nil.
// A Server cannot be used again after Serve has returned.
func (srv *Server) Serve(ctx context.Context, l net.Listener) error {
	logger.Logf(logger.Allow, "ingest", "listening on %s", l.Addr())

	stop := context.AfterFunc(ctx, func() {
		l.Close()
		srv.closeAll()
	})
	defer stop()

	defer srv.wg.Wait()

	for {
		conn, err := l.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			l.Close()
			srv.closeAll()
			return curated.Errorf(AcceptError, err)
		}

		if !srv.track(conn) {
			conn.Close()
			continue
		}

		srv.wg.Add(1)
		go func() {
			defer srv.wg.Done()
			defer srv.untrack(conn)
			srv.handle(ctx, conn)
		}()
	}
}

// track returns false if the connection was accepted after the server
// was stopped.
func (srv *Server) track(conn net.Conn) bool {
	srv.crit.Lock()
	defer srv.crit.Unlock()
	if srv.conns == nil {
		return false
	}
	srv.conns[conn] = struct{}{}
	return true
}

func (srv *Server) untrack(conn net.Conn) {
	srv.crit.Lock()
	defer srv.crit.Unlock()
	if srv.conns != nil {
		delete(srv.conns, conn)
	}
	conn.Close()
}

func (srv *Server) closeAll() {
	srv.crit.Lock()
	defer srv.crit.Unlock()
	for conn := range srv.conns {
		conn.Close()
	}
	srv.conns = nil
}

func (srv *Server) handle(ctx context.Context, conn net.Conn) {
	source := conn.RemoteAddr().String()
	logger.Logf(logger.Allow, "ingest", "%s: connected", source)

	n, err := Decode(conn, srv.app, source)
	if err != nil && ctx.Err() == nil {
		logger.Logf(logger.Allow, "ingest", "%s: %v", source, err)
	}

	logger.Logf(logger.Allow, "ingest", "%s: disconnected after %d frames", source, n)
}
