package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeWait = 5 * time.Second

// WSConnection implements Connection over a gorilla websocket. One read
// goroutine dispatches envelopes to registered handlers; unknown event
// types are logged and dropped.
type WSConnection struct {
	endpoint string
	token    string
	log      *zap.Logger

	mu       sync.Mutex
	conn     *websocket.Conn
	handlers map[string]Handler
	done     chan struct{}
	started  bool
}

// NewWSConnection builds a connection to ws://.../ws, authenticating via
// the token query parameter (headers are not settable from browsers, and
// the backend accepts both).
func NewWSConnection(endpoint, token string, log *zap.Logger) *WSConnection {
	if log == nil {
		log = zap.NewNop()
	}
	return &WSConnection{
		endpoint: endpoint,
		token:    token,
		log:      log,
		handlers: make(map[string]Handler),
	}
}

// Start implements Connection.Start.
func (c *WSConnection) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return errors.New("realtime: connection already started")
	}

	u, err := url.Parse(c.endpoint)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	if c.token != "" {
		q := u.Query()
		q.Set("token", c.token)
		u.RawQuery = q.Encode()
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		c.mu.Unlock()
		return err
	}
	done := make(chan struct{})
	c.conn = conn
	c.done = done
	c.started = true
	c.mu.Unlock()

	go c.readLoop(conn, done)
	go func() {
		select {
		case <-ctx.Done():
			_ = c.Stop()
		case <-done:
		}
	}()
	return nil
}

func (c *WSConnection) readLoop(conn *websocket.Conn, done chan struct{}) {
	defer close(done)
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var env Envelope
		if err := json.Unmarshal(raw, &env); err != nil {
			c.log.Warn("realtime: bad envelope", zap.Error(err))
			continue
		}
		c.mu.Lock()
		h := c.handlers[env.Type]
		c.mu.Unlock()
		if h == nil {
			c.log.Debug("realtime: unhandled event", zap.String("type", env.Type))
			continue
		}
		h(env.Payload)
	}
}

// Stop implements Connection.Stop.
func (c *WSConnection) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.started || c.conn == nil {
		return nil
	}
	c.started = false
	deadline := time.Now().Add(writeWait)
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
	return c.conn.Close()
}

// On implements Connection.On.
func (c *WSConnection) On(event string, h Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[event] = h
}

// Off implements Connection.Off.
func (c *WSConnection) Off(event string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.handlers, event)
}

// Invoke implements Connection.Invoke.
func (c *WSConnection) Invoke(ctx context.Context, event string, payload any) error {
	env, err := NewEnvelope(event, payload)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(env)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.started || c.conn == nil {
		return errors.New("realtime: connection not started")
	}
	deadline := time.Now().Add(writeWait)
	if d, ok := ctx.Deadline(); ok {
		deadline = d
	}
	_ = c.conn.SetWriteDeadline(deadline)
	return c.conn.WriteMessage(websocket.TextMessage, raw)
}

// Send implements Connection.Send.
func (c *WSConnection) Send(event string, payload any) error {
	return c.Invoke(context.Background(), event, payload)
}

var _ Connection = (*WSConnection)(nil)
