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


package client

import (
	"bytes"
	"encoding/json"
	"net"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/rewind-viewer/viewer/curated"
	"github.com/rewind-viewer/viewer/ingest"
)

// Sentinel error patterns.
const (
	DialError  = "client: dial: %v"
	SendError  = "client: send: %v"
	CloseError = "client: close: %v"
	Closed     = "client: closed"
)

// transport sends a complete frame to the viewer.
type transport interface {
	send(b []byte) error
	close() error
}

type tcpTransport struct {
	conn net.Conn
}

func (t *tcpTransport) send(b []byte) error {
	_, err := t.conn.Write(b)
	return err
}

func (t *tcpTransport) close() error {
	return t.conn.Close()
}

type websocketTransport struct {
	conn *websocket.Conn
}

func (t *websocketTransport) send(b []byte) error {
	return t.conn.WriteMessage(websocket.TextMessage, b)
}

func (t *websocketTransport) close() error {
	err := t.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	if err != nil {
		t.conn.Close()
		return err
	}
	return t.conn.Close()
}

// Client sends frames to the viewer. It is safe to use a Client from more
// than one goroutine but the primitives of a frame will be mixed together if
// more than one goroutine is building a frame at the same time.
type Client struct {
	crit sync.Mutex
	tr   transport
	buf  bytes.Buffer
	enc  *json.Encoder
}

func newClient(tr transport) *Client {
	c := &Client{tr: tr}
	c.enc = json.NewEncoder(&c.buf)
	return c
}

// Dial connects to the viewer over TCP.
func Dial(address string) (*Client, error) {
	conn, err := net.Dial("tcp", address)
	if err != nil {
		return nil, curated.Errorf(DialError, err)
	}
	if tcp, ok := conn.(*net.TCPConn); ok {
		_ = tcp.SetNoDelay(true)
	}
	return newClient(&tcpTransport{conn: conn}), nil
}

// DialWebsocket connects to the viewer with a websocket. The url should be in
// the form "ws://host:port/rewind".
func DialWebsocket(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, curated.Errorf(DialError, err)
	}
	return newClient(&websocketTransport{conn: conn}), nil
}

func (c *Client) add(msg ingest.Message) error {
	c.crit.Lock()
	defer c.crit.Unlock()
	return c.addLocked(msg)
}

func (c *Client) addLocked(msg ingest.Message) error {
	if c.tr == nil {
		return curated.Errorf(Closed)
	}

	// encoding an ingest.Message can not fail
	_ = c.enc.Encode(msg)
	return nil
}

// Circle adds a circle to the frame. The color is in the form 0xRRGGBB.
func (c *Client) Circle(x, y, r float32, color uint32) error {
	return c.add(ingest.Message{
		Type:  ingest.TypeCircle,
		X:     x,
		Y:     y,
		R:     r,
		Color: int64(color & 0xffffff),
	})
}

// Rectangle adds a rectangle to the frame. (x1, y1) and (x2, y2) are opposite
// corners of the rectangle. The color is in the form 0xRRGGBB.
func (c *Client) Rectangle(x1, y1, x2, y2 float32, color uint32) error {
	return c.add(ingest.Message{
		Type:  ingest.TypeRectangle,
		X1:    x1,
		Y1:    y1,
		X2:    x2,
		Y2:    y2,
		Color: int64(color & 0xffffff),
	})
}

// Line adds a line to the frame. The color is in the form 0xRRGGBB.
func (c *Client) Line(x1, y1, x2, y2 float32, color uint32) error {
	return c.add(ingest.Message{
		Type:  ingest.TypeLine,
		X1:    x1,
		Y1:    y1,
		X2:    x2,
		Y2:    y2,
		Color: int64(color & 0xffffff),
	})
}

// Message adds a line of text to the frame.
func (c *Client) Message(msg string) error {
	return c.add(ingest.Message{
		Type:    ingest.TypeMessage,
		Message: msg,
	})
}

// EndFrame completes the frame and sends it to the viewer.
func (c *Client) EndFrame() error {
	c.crit.Lock()
	defer c.crit.Unlock()

	err := c.addLocked(ingest.Message{Type: ingest.TypeEnd})
	if err != nil {
		return err
	}

	err = c.tr.send(c.buf.Bytes())
	c.buf.Reset()
	if err != nil {
		return curated.Errorf(SendError, err)
	}
	return nil
}

// Close the connection to the viewer. Anything added since the most recent
// call to EndFrame() is not sent.
func (c *Client) Close() error {
	c.crit.Lock()
	defer c.crit.Unlock()
	if c.tr == nil {
		return nil
	}

	err := c.tr.close()
	c.tr = nil
	c.buf.Reset()
	if err != nil {
		return curated.Errorf(CloseError, err)
	}
	return nil
}
