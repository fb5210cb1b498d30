// Package devtools implements the wire-level plumbing for the Chrome
// DevTools Protocol (CDP): a single multiplexed WebSocket connection shared
// by every attached target, and Go bindings for the commands, events and
// types of each CDP domain (see the sub-packages, each named after one
// domain) - from the "tip-of-tree" (tot) definitions at
// https://chromedevtools.github.io/devtools-protocol/tot, mirrored in
// https://github.com/ChromeDevTools/devtools-protocol.
//
// This package owns exactly one concern: getting a JSON message to the
// browser and routing a response (or event) back to the right caller, for
// the right session. What a target is, how it's attached, and when a page
// is born or dies all live one layer up, in the pilot package.
package devtools

import (
	"encoding/json"
	"fmt"
)

// Error is the `error` field of a CDP response message.
type Error struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// Error satisfies the Go error interface (https://golang.org/pkg/builtin/#error).
func (e *Error) Error() string {
	if e.Code == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (%d)", e.Message, e.Code)
}

// Message is a generic CDP message sent to, or received from, a browser.
//
// Outgoing messages carry Method and Params (ID and SessionID are filled in
// by the Connection when the message is framed). Incoming messages are
// either a solicited response (ID set, Result or Error set) or an
// unsolicited event (Method set, SessionID set if the event is scoped to an
// attached target).
type Message struct {
	ID        int64           `json:"id,omitempty"`
	SessionID string          `json:"sessionId,omitempty"`
	Method    string          `json:"method,omitempty"`
	Params    json.RawMessage `json:"params,omitempty"`
	Result    json.RawMessage `json:"result,omitempty"`
	Error     *Error          `json:"error,omitempty"`
}
