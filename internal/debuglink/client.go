package debuglink

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/gorilla/websocket"
)

// Client is a debug-link connection. It is not safe for concurrent use.
type Client struct {
	conn *websocket.Conn
}

// Dial connects to the debug link of the emulator at host:port.
func Dial(ctx context.Context, addr string) (*Client, error) {
	u := url.URL{Scheme: "ws", Host: addr, Path: Path}
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", u.String(), err)
	}
	return &Client{conn: conn}, nil
}

// Call sends req and waits for its reply.
func (c *Client) Call(req Request) (Response, error) {
	if err := c.conn.WriteJSON(req); err != nil {
		return Response{}, fmt.Errorf("failed to send %s: %w", req.Type, err)
	}
	var resp Response
	_, data, err := c.conn.ReadMessage()
	if err != nil {
		return Response{}, fmt.Errorf("failed to read reply to %s: %w", req.Type, err)
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return Response{}, fmt.Errorf("failed to decode reply to %s: %w", req.Type, err)
	}
	return resp, nil
}

func (c *Client) Tap(x, y int) (Response, error) {
	return c.Call(Request{Type: TypeTap, X: x, Y: y})
}

func (c *Client) Swipe(direction string) (Response, error) {
	return c.Call(Request{Type: TypeSwipe, Direction: direction})
}

func (c *Client) ReadLayout() (Response, error) {
	return c.Call(Request{Type: TypeReadLayout})
}

func (c *Client) WaitResult() (Response, error) {
	return c.Call(Request{Type: TypeWaitResult})
}

func (c *Client) Close() error {
	_ = c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.conn.Close()
}
