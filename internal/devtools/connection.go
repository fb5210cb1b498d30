package devtools

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// DefaultEventBufferSize bounds the per-subscription event channel returned
// by Connection.Subscribe.
const DefaultEventBufferSize = 100

const writeTimeout = 10 * time.Second

type pendingCall struct {
	ch chan *Message
}

type subscription struct {
	sessionID string
	method    string

	mu      sync.Mutex
	closed  bool
	ch      chan *Message
	dropped uint64
}

func (s *subscription) deliver(m *Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- m:
		return
	default:
	}
	// The channel is full: drop the oldest queued event to make room for
	// the newest one, rather than blocking the connection's read loop on a
	// slow consumer.
	select {
	case <-s.ch:
		atomic.AddUint64(&s.dropped, 1)
	default:
	}
	select {
	case s.ch <- m:
	default:
	}
}

func (s *subscription) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	close(s.ch)
}

// Connection is one multiplexed WebSocket connection to a browser's
// DevTools endpoint. Every attached target's commands and events flow over
// this single socket, distinguished by the CDP sessionId that scopes each
// message. A Connection is safe for concurrent use by multiple goroutines.
type Connection struct {
	ws  *websocket.Conn
	log *logrus.Entry

	writeMu sync.Mutex

	mu      sync.Mutex
	nextID  int64
	pending map[int64]pendingCall
	subs    []*subscription
	closed  bool
	closeCh chan struct{}
}

// Dial opens a WebSocket connection to the given CDP endpoint (typically the
// `webSocketDebuggerUrl` reported by a browser's /json/version HTTP
// endpoint, or the per-page URL from /json/list) and starts reading incoming
// messages in the background. The caller owns the returned Connection and
// must call Close when done with it.
func Dial(ctx context.Context, wsURL string) (*Connection, error) {
	dialer := websocket.Dialer{
		HandshakeTimeout: 45 * time.Second,
	}
	ws, _, err := dialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, &ConnectionError{Op: "dial", Err: err}
	}
	c := &Connection{
		ws:      ws,
		log:     logrus.WithField("component", "devtools"),
		pending: make(map[int64]pendingCall),
		closeCh: make(chan struct{}),
	}
	go c.readLoop()
	return c, nil
}

// Close shuts down the underlying WebSocket and releases every pending call
// and subscription. Safe to call more than once.
func (c *Connection) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	close(c.closeCh)
	c.mu.Unlock()
	return c.ws.Close()
}

func (c *Connection) readLoop() {
	defer c.teardown()
	for {
		_, b, err := c.ws.ReadMessage()
		if err != nil {
			c.log.WithError(err).Debug("devtools: read loop exiting")
			return
		}
		c.dispatch(b)
	}
}

func (c *Connection) teardown() {
	c.mu.Lock()
	if !c.closed {
		c.closed = true
		close(c.closeCh)
	}
	pending := c.pending
	c.pending = make(map[int64]pendingCall)
	subs := c.subs
	c.subs = nil
	c.mu.Unlock()

	for _, p := range pending {
		close(p.ch)
	}
	for _, s := range subs {
		s.close()
	}
}

func (c *Connection) dispatch(b []byte) {
	m := &Message{}
	if err := json.Unmarshal(b, m); err != nil {
		c.log.WithError(err).Warn("devtools: malformed CDP message")
		return
	}
	if m.Method == "" {
		c.mu.Lock()
		p, ok := c.pending[m.ID]
		if ok {
			delete(c.pending, m.ID)
		}
		c.mu.Unlock()
		if ok {
			p.ch <- m
			close(p.ch)
		}
		return
	}
	c.mu.Lock()
	var matched []*subscription
	for _, s := range c.subs {
		if s.method == m.Method && (s.sessionID == "" || s.sessionID == m.SessionID) {
			matched = append(matched, s)
		}
	}
	c.mu.Unlock()
	for _, s := range matched {
		s.deliver(m)
	}
}

// SendAndWait sends a CDP command scoped to sessionID (empty for the
// browser-level session) and blocks until its response arrives, the context
// is cancelled, or the connection closes.
func (c *Connection) SendAndWait(ctx context.Context, sessionID, method string, params json.RawMessage) (*Message, error) {
	ch, id, err := c.dispatchSend(sessionID, method, params)
	if err != nil {
		return nil, err
	}
	select {
	case m, ok := <-ch:
		if !ok {
			return nil, &ConnectionError{Op: method, Err: fmt.Errorf("connection closed before response %d arrived", id)}
		}
		if m.Error != nil {
			return m, m.Error
		}
		return m, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-c.closeCh:
		return nil, &ConnectionError{Op: method, Err: fmt.Errorf("connection closed")}
	}
}

// Send sends a CDP command scoped to sessionID without blocking for the
// response, and returns a channel that receives the response and is then
// closed. If the connection closes first, the channel is closed without
// receiving any message.
func (c *Connection) Send(ctx context.Context, sessionID, method string, params json.RawMessage) (chan *Message, error) {
	ch, _, err := c.dispatchSend(sessionID, method, params)
	return ch, err
}

func (c *Connection) dispatchSend(sessionID, method string, params json.RawMessage) (chan *Message, int64, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, 0, &ConnectionError{Op: method, Err: fmt.Errorf("connection closed")}
	}
	c.nextID++
	id := c.nextID
	ch := make(chan *Message, 1)
	c.pending[id] = pendingCall{ch: ch}
	c.mu.Unlock()

	m := Message{ID: id, Method: method, Params: params, SessionID: sessionID}
	b, err := json.Marshal(m)
	if err != nil {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
		return nil, 0, fmt.Errorf("devtools: marshal %s: %w", method, err)
	}

	c.writeMu.Lock()
	c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
	err = c.ws.WriteMessage(websocket.TextMessage, b)
	c.writeMu.Unlock()
	if err != nil {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
		return nil, 0, &ConnectionError{Op: method, Err: err}
	}
	return ch, id, nil
}

// Subscribe returns a channel delivering every event named method that is
// scoped to sessionID (pass "" to receive the event regardless of session),
// an accessor for how many buffered events have been dropped, and an
// unsubscribe function that must be called exactly once to release the
// channel.
//
// The channel is bounded at DefaultEventBufferSize: if the consumer falls
// behind, the oldest buffered event is dropped to make room for the newest
// one, so a wedged consumer never backs up the shared connection.
func (c *Connection) Subscribe(sessionID, method string) (ch <-chan *Message, dropped func() uint64, unsubscribe func()) {
	s := &subscription{
		sessionID: sessionID,
		method:    method,
		ch:        make(chan *Message, DefaultEventBufferSize),
	}
	c.mu.Lock()
	c.subs = append(c.subs, s)
	c.mu.Unlock()

	unsubscribe = func() {
		c.mu.Lock()
		for i, sub := range c.subs {
			if sub == s {
				c.subs = append(c.subs[:i], c.subs[i+1:]...)
				break
			}
		}
		c.mu.Unlock()
		s.close()
	}
	return s.ch, func() uint64 { return atomic.LoadUint64(&s.dropped) }, unsubscribe
}

// ConnectionError wraps a transport-level failure (as opposed to a CDP
// protocol error reported by the browser) on a specific command.
type ConnectionError struct {
	Op  string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("devtools: %s: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }
