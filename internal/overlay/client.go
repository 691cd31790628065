package overlay

import (
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/banshee-data/track-overlay/internal/palette"
)

const (
	// writeWait bounds how long a command write may take.
	writeWait = 10 * time.Second

	// ackWait bounds how long the agent may take to acknowledge a command.
	ackWait = 10 * time.Second
)

// command is one drawing instruction sent to the overlay agent.
type command struct {
	Op      string  `json:"op"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	R       uint8   `json:"r"`
	G       uint8   `json:"g"`
	B       uint8   `json:"b"`
	Surface int     `json:"surface"`
}

// ack is the agent's reply to a command.
type ack struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// Client implements Surface over a WebSocket connection to the overlay
// drawing agent. Each command is acknowledged before the next is sent,
// so a rejected draw call surfaces as an error on the call that caused
// it.
type Client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

// Dial connects to the overlay agent at the given WebSocket URL.
func Dial(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial overlay agent %s: %w", url, err)
	}
	return &Client{conn: conn}, nil
}

// Close shuts the connection down.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.Close()
}

func (c *Client) do(cmd command) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := c.conn.WriteJSON(cmd); err != nil {
		return fmt.Errorf("%s: %w", cmd.Op, err)
	}

	_ = c.conn.SetReadDeadline(time.Now().Add(ackWait))
	var reply ack
	if err := c.conn.ReadJSON(&reply); err != nil {
		return fmt.Errorf("%s: read ack: %w", cmd.Op, err)
	}
	if !reply.OK {
		return fmt.Errorf("%s rejected by overlay agent: %s", cmd.Op, reply.Error)
	}
	return nil
}

// Clear implements Surface.
func (c *Client) Clear() error {
	return c.do(command{Op: "clear"})
}

// SetColor implements Surface.
func (c *Client) SetColor(colour palette.RGB) error {
	return c.do(command{Op: "color", R: colour.R, G: colour.G, B: colour.B})
}

// MoveTo implements Surface.
func (c *Client) MoveTo(x, y float64) error {
	return c.do(command{Op: "move", X: x, Y: y})
}

// LineTo implements Surface.
func (c *Client) LineTo(x, y float64) error {
	return c.do(command{Op: "line", X: x, Y: y})
}

// DrawPath implements Surface.
func (c *Client) DrawPath() error {
	return c.do(command{Op: "draw"})
}

// Commit implements Surface.
func (c *Client) Commit(surface int) error {
	return c.do(command{Op: "commit", Surface: surface})
}
