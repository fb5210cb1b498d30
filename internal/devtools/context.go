package devtools

import (
	"context"
	"encoding/json"
	"errors"
)

type sessionKey struct{}

// binding pairs a Connection with the CDP sessionId that scopes every
// command issued through a context carrying it. The browser-level target
// (and any command meant to run outside a target, like Target.createTarget)
// uses the empty sessionId.
type binding struct {
	conn      *Connection
	sessionID string
}

// WithSession returns a child context that routes every devtools.SendAndWait,
// devtools.Send and devtools.SubscribeEvent call made with it through conn,
// scoped to sessionID. The pilot package calls this once per Page/Frame/
// worker target it attaches to; every generated domain package underneath
// picks up the binding transparently.
func WithSession(parent context.Context, conn *Connection, sessionID string) context.Context {
	return context.WithValue(parent, sessionKey{}, &binding{conn: conn, sessionID: sessionID})
}

// FromContext returns the Connection and CDP sessionId bound to ctx by the
// nearest enclosing WithSession call.
func FromContext(ctx context.Context) (*Connection, string, bool) {
	b, ok := ctx.Value(sessionKey{}).(*binding)
	if !ok || b == nil {
		return nil, "", false
	}
	return b.conn, b.sessionID, true
}

// ErrNoSession is returned by SendAndWait, Send and SubscribeEvent when ctx
// was never bound to a Connection via WithSession.
var ErrNoSession = errors.New("devtools: context has no bound connection (see WithSession)")

// SendAndWait sends a CDP command using the Connection and sessionId bound
// to ctx, and blocks for its response. Every generated per-domain command's
// Do method calls this; its signature is fixed by that generated code.
func SendAndWait(ctx context.Context, method string, params json.RawMessage) (*Message, error) {
	conn, sessionID, ok := FromContext(ctx)
	if !ok {
		return nil, ErrNoSession
	}
	return conn.SendAndWait(ctx, sessionID, method, params)
}

// Send sends a CDP command using the Connection and sessionId bound to ctx
// without blocking for the response. Every generated per-domain command's
// Start method calls this; its signature is fixed by that generated code.
func Send(ctx context.Context, method string, params json.RawMessage) (chan *Message, error) {
	conn, sessionID, ok := FromContext(ctx)
	if !ok {
		return nil, ErrNoSession
	}
	return conn.Send(ctx, sessionID, method, params)
}

// SubscribeEvent returns a channel of events named name, scoped to the
// sessionId bound to ctx, plus an unsubscribe function. Unlike the two
// calls above this is not part of the generated command surface; it backs
// the event-driven parts of the pilot package (and the handful of generated
// event helpers that wait on a single occurrence).
func SubscribeEvent(ctx context.Context, name string) (<-chan *Message, func(), error) {
	conn, sessionID, ok := FromContext(ctx)
	if !ok {
		return nil, nil, ErrNoSession
	}
	ch, _, unsubscribe := conn.Subscribe(sessionID, name)
	return ch, unsubscribe, nil
}
