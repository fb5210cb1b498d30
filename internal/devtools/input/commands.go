package input

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/corvane/pilot/internal/devtools"
)

// DispatchKeyEvent contains the parameters, and acts as
// a Go receiver, for the CDP command `dispatchKeyEvent`.
//
// Dispatches a key event to the page.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Input/#method-dispatchKeyEvent
type DispatchKeyEvent struct {
	// Type of the key event.
	Type string `json:"type"`
	// Bit field representing pressed modifier keys. Alt=1, Ctrl=2, Meta/Command=4, Shift=8
	// (default: 0).
	Modifiers int64 `json:"modifiers,omitempty"`
	// Time at which the event occurred.
	Timestamp float64 `json:"timestamp,omitempty"`
	// Text as generated by processing a virtual key code with a keyboard layout. Not needed
	// for `keyUp` and `rawKeyDown` events (default: "").
	Text string `json:"text,omitempty"`
	// Text that would have been generated by the keyboard if no modifiers were pressed (except for
	// shift). Useful for shortcut (accelerator) key handling (default: "").
	UnmodifiedText string `json:"unmodifiedText,omitempty"`
	// Unique key identifier (e.g., 'U+0041') (default: "").
	KeyIdentifier string `json:"keyIdentifier,omitempty"`
	// Unique DOM defined string value for each physical key (e.g., 'KeyA') (default: "").
	Code string `json:"code,omitempty"`
	// Unique DOM defined string value describing the meaning of the key in the context of active
	// modifiers, keyboard layout, etc (e.g., 'AltGr') (default: "").
	Key string `json:"key,omitempty"`
	// Windows virtual key code (default: 0).
	WindowsVirtualKeyCode int64 `json:"windowsVirtualKeyCode,omitempty"`
	// Native virtual key code (default: 0).
	NativeVirtualKeyCode int64 `json:"nativeVirtualKeyCode,omitempty"`
	// Whether the event was generated from auto repeat (default: false).
	AutoRepeat bool `json:"autoRepeat,omitempty"`
	// Whether the event was generated from the keypad (default: false).
	IsKeypad bool `json:"isKeypad,omitempty"`
	// Whether the event was a system key event (default: false).
	IsSystemKey bool `json:"isSystemKey,omitempty"`
	// Whether the event was from the left or right side of the keyboard. 1=Left, 2=Right
	// (default: 0).
	Location int64 `json:"location,omitempty"`
	// Editing commands to send with the key event (e.g., 'selectAll') (default: []). These
	// are related to but not equal to the command names used in `document.execCommand` and
	// NSStandardKeyBindingResponding. Only appropriate commands are allowed.
	//
	// This CDP parameter is experimental.
	Commands []string `json:"commands,omitempty"`
}

// NewDispatchKeyEvent constructs a new DispatchKeyEvent struct instance, with
// all (but only) the required parameters. Optional parameters
// may be added using the builder-like methods below.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Input/#method-dispatchKeyEvent
func NewDispatchKeyEvent(eventType string) *DispatchKeyEvent {
	return &DispatchKeyEvent{Type: eventType}
}

// SetModifiers adds or modifies the value of the optional
// parameter `modifiers` in the DispatchKeyEvent CDP command.
func (t *DispatchKeyEvent) SetModifiers(v int64) *DispatchKeyEvent {
	t.Modifiers = v
	return t
}

// SetText adds or modifies the value of the optional
// parameter `text` in the DispatchKeyEvent CDP command.
func (t *DispatchKeyEvent) SetText(v string) *DispatchKeyEvent {
	t.Text = v
	return t
}

// SetCode adds or modifies the value of the optional
// parameter `code` in the DispatchKeyEvent CDP command.
func (t *DispatchKeyEvent) SetCode(v string) *DispatchKeyEvent {
	t.Code = v
	return t
}

// SetKey adds or modifies the value of the optional
// parameter `key` in the DispatchKeyEvent CDP command.
func (t *DispatchKeyEvent) SetKey(v string) *DispatchKeyEvent {
	t.Key = v
	return t
}

// SetWindowsVirtualKeyCode adds or modifies the value of the optional
// parameter `windowsVirtualKeyCode` in the DispatchKeyEvent CDP command.
func (t *DispatchKeyEvent) SetWindowsVirtualKeyCode(v int64) *DispatchKeyEvent {
	t.WindowsVirtualKeyCode = v
	return t
}

// SetAutoRepeat adds or modifies the value of the optional
// parameter `autoRepeat` in the DispatchKeyEvent CDP command.
func (t *DispatchKeyEvent) SetAutoRepeat(v bool) *DispatchKeyEvent {
	t.AutoRepeat = v
	return t
}

// Do sends the DispatchKeyEvent CDP command to a browser,
// and returns the browser's response.
func (t *DispatchKeyEvent) Do(ctx context.Context) error {
	b, err := json.Marshal(t)
	if err != nil {
		return err
	}
	m, err := devtools.SendAndWait(ctx, "Input.dispatchKeyEvent", b)
	if err != nil {
		return err
	}
	return t.ParseResponse(m)
}

// Start sends the DispatchKeyEvent CDP command to a browser,
// and returns a channel to receive the browser's response.
// Callers should close the returned channel on their own,
// although closing unused channels isn't strictly required.
func (t *DispatchKeyEvent) Start(ctx context.Context) (chan *devtools.Message, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return devtools.Send(ctx, "Input.dispatchKeyEvent", b)
}

// ParseResponse parses the browser's response
// to the DispatchKeyEvent CDP command.
func (t *DispatchKeyEvent) ParseResponse(m *devtools.Message) error {
	if m.Error != nil {
		return errors.New(m.Error.Error())
	}
	return nil
}

// InsertText contains the parameters, and acts as
// a Go receiver, for the CDP command `insertText`.
//
// This method emulates inserting text that doesn't come from a key press, for example an
// emoji keyboard or an IME.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Input/#method-insertText
type InsertText struct {
	// The text to insert.
	Text string `json:"text"`
}

// NewInsertText constructs a new InsertText struct instance, with
// all (but only) the required parameters. Optional parameters
// may be added using the builder-like methods below.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Input/#method-insertText
func NewInsertText(text string) *InsertText {
	return &InsertText{Text: text}
}

// Do sends the InsertText CDP command to a browser,
// and returns the browser's response.
func (t *InsertText) Do(ctx context.Context) error {
	b, err := json.Marshal(t)
	if err != nil {
		return err
	}
	m, err := devtools.SendAndWait(ctx, "Input.insertText", b)
	if err != nil {
		return err
	}
	return t.ParseResponse(m)
}

// Start sends the InsertText CDP command to a browser,
// and returns a channel to receive the browser's response.
// Callers should close the returned channel on their own,
// although closing unused channels isn't strictly required.
func (t *InsertText) Start(ctx context.Context) (chan *devtools.Message, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return devtools.Send(ctx, "Input.insertText", b)
}

// ParseResponse parses the browser's response
// to the InsertText CDP command.
func (t *InsertText) ParseResponse(m *devtools.Message) error {
	if m.Error != nil {
		return errors.New(m.Error.Error())
	}
	return nil
}

// DispatchMouseEvent contains the parameters, and acts as
// a Go receiver, for the CDP command `dispatchMouseEvent`.
//
// Dispatches a mouse event to the page.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Input/#method-dispatchMouseEvent
type DispatchMouseEvent struct {
	// Type of the mouse event.
	Type string `json:"type"`
	// X coordinate of the event relative to the main frame's viewport in CSS pixels.
	X float64 `json:"x"`
	// Y coordinate of the event relative to the main frame's viewport in CSS pixels. 0 refers to
	// the top of the viewport and Y increases as it proceeds towards the bottom of the viewport.
	Y float64 `json:"y"`
	// Bit field representing pressed modifier keys. Alt=1, Ctrl=2, Meta/Command=4, Shift=8
	// (default: 0).
	Modifiers int64 `json:"modifiers,omitempty"`
	// Time at which the event occurred.
	Timestamp float64 `json:"timestamp,omitempty"`
	// Mouse button (default: "none").
	Button MouseButton `json:"button,omitempty"`
	// A number indicating which buttons are pressed on the mouse when a mouse event is
	// triggered. Left=1, Right=2, Middle=4, Back=8, Forward=16, None=0.
	Buttons int64 `json:"buttons,omitempty"`
	// Number of times the mouse button was clicked (default: 0).
	ClickCount int64 `json:"clickCount,omitempty"`
	// The normalized pressure, which has a range of [0,1] (default: 0).
	Force float64 `json:"force,omitempty"`
	// The angle of the X axis of the tangential pressure, in degrees.
	TangentialPressure float64 `json:"tangentialPressure,omitempty"`
	// The plane angle between the Y-Z plane and the plane containing both the stylus axis and the Y axis, in degrees of the range [-90,90], a positive tiltX is to the right (default: 0).
	TiltX int64 `json:"tiltX,omitempty"`
	// The plane angle between the X-Z plane and the plane containing both the stylus axis and the X axis, in degrees of the range [-90,90], a positive tiltY is towards the user (default: 0).
	TiltY int64 `json:"tiltY,omitempty"`
	// The clockwise rotation of a pen stylus around its own major axis, in degrees in the range [0,359] (default: 0).
	Twist int64 `json:"twist,omitempty"`
	// X delta in CSS pixels for mouse wheel event (default: 0).
	DeltaX float64 `json:"deltaX,omitempty"`
	// Y delta in CSS pixels for mouse wheel event (default: 0).
	DeltaY float64 `json:"deltaY,omitempty"`
	// Pointer type (default: "mouse").
	PointerType string `json:"pointerType,omitempty"`
}

// NewDispatchMouseEvent constructs a new DispatchMouseEvent struct instance, with
// all (but only) the required parameters. Optional parameters
// may be added using the builder-like methods below.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Input/#method-dispatchMouseEvent
func NewDispatchMouseEvent(eventType string, x, y float64) *DispatchMouseEvent {
	return &DispatchMouseEvent{Type: eventType, X: x, Y: y}
}

// SetButton adds or modifies the value of the optional
// parameter `button` in the DispatchMouseEvent CDP command.
func (t *DispatchMouseEvent) SetButton(v MouseButton) *DispatchMouseEvent {
	t.Button = v
	return t
}

// SetButtons adds or modifies the value of the optional
// parameter `buttons` in the DispatchMouseEvent CDP command.
func (t *DispatchMouseEvent) SetButtons(v int64) *DispatchMouseEvent {
	t.Buttons = v
	return t
}

// SetClickCount adds or modifies the value of the optional
// parameter `clickCount` in the DispatchMouseEvent CDP command.
func (t *DispatchMouseEvent) SetClickCount(v int64) *DispatchMouseEvent {
	t.ClickCount = v
	return t
}

// SetModifiers adds or modifies the value of the optional
// parameter `modifiers` in the DispatchMouseEvent CDP command.
func (t *DispatchMouseEvent) SetModifiers(v int64) *DispatchMouseEvent {
	t.Modifiers = v
	return t
}

// SetDeltaX adds or modifies the value of the optional
// parameter `deltaX` in the DispatchMouseEvent CDP command.
func (t *DispatchMouseEvent) SetDeltaX(v float64) *DispatchMouseEvent {
	t.DeltaX = v
	return t
}

// SetDeltaY adds or modifies the value of the optional
// parameter `deltaY` in the DispatchMouseEvent CDP command.
func (t *DispatchMouseEvent) SetDeltaY(v float64) *DispatchMouseEvent {
	t.DeltaY = v
	return t
}

// Do sends the DispatchMouseEvent CDP command to a browser,
// and returns the browser's response.
func (t *DispatchMouseEvent) Do(ctx context.Context) error {
	b, err := json.Marshal(t)
	if err != nil {
		return err
	}
	m, err := devtools.SendAndWait(ctx, "Input.dispatchMouseEvent", b)
	if err != nil {
		return err
	}
	return t.ParseResponse(m)
}

// Start sends the DispatchMouseEvent CDP command to a browser,
// and returns a channel to receive the browser's response.
// Callers should close the returned channel on their own,
// although closing unused channels isn't strictly required.
func (t *DispatchMouseEvent) Start(ctx context.Context) (chan *devtools.Message, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return devtools.Send(ctx, "Input.dispatchMouseEvent", b)
}

// ParseResponse parses the browser's response
// to the DispatchMouseEvent CDP command.
func (t *DispatchMouseEvent) ParseResponse(m *devtools.Message) error {
	if m.Error != nil {
		return errors.New(m.Error.Error())
	}
	return nil
}

// DispatchTouchEvent contains the parameters, and acts as
// a Go receiver, for the CDP command `dispatchTouchEvent`.
//
// Dispatches a touch event to the page.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Input/#method-dispatchTouchEvent
type DispatchTouchEvent struct {
	// Type of the touch event.
	Type string `json:"type"`
	// Active touch points on the touch device. One event per any changed point (compared to
	// previous touch event in a send-touch-events sequence) is generated, emulating
	// pressing/moving/releasing points one by one.
	TouchPoints []TouchPoint `json:"touchPoints"`
	// Bit field representing pressed modifier keys. Alt=1, Ctrl=2, Meta/Command=4, Shift=8
	// (default: 0).
	Modifiers int64 `json:"modifiers,omitempty"`
	// Time at which the event occurred.
	Timestamp float64 `json:"timestamp,omitempty"`
}

// NewDispatchTouchEvent constructs a new DispatchTouchEvent struct instance, with
// all (but only) the required parameters. Optional parameters
// may be added using the builder-like methods below.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Input/#method-dispatchTouchEvent
func NewDispatchTouchEvent(eventType string, touchPoints []TouchPoint) *DispatchTouchEvent {
	return &DispatchTouchEvent{Type: eventType, TouchPoints: touchPoints}
}

// SetModifiers adds or modifies the value of the optional
// parameter `modifiers` in the DispatchTouchEvent CDP command.
func (t *DispatchTouchEvent) SetModifiers(v int64) *DispatchTouchEvent {
	t.Modifiers = v
	return t
}

// Do sends the DispatchTouchEvent CDP command to a browser,
// and returns the browser's response.
func (t *DispatchTouchEvent) Do(ctx context.Context) error {
	b, err := json.Marshal(t)
	if err != nil {
		return err
	}
	m, err := devtools.SendAndWait(ctx, "Input.dispatchTouchEvent", b)
	if err != nil {
		return err
	}
	return t.ParseResponse(m)
}

// Start sends the DispatchTouchEvent CDP command to a browser,
// and returns a channel to receive the browser's response.
// Callers should close the returned channel on their own,
// although closing unused channels isn't strictly required.
func (t *DispatchTouchEvent) Start(ctx context.Context) (chan *devtools.Message, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return devtools.Send(ctx, "Input.dispatchTouchEvent", b)
}

// ParseResponse parses the browser's response
// to the DispatchTouchEvent CDP command.
func (t *DispatchTouchEvent) ParseResponse(m *devtools.Message) error {
	if m.Error != nil {
		return errors.New(m.Error.Error())
	}
	return nil
}

// SetIgnoreInputEvents contains the parameters, and acts as
// a Go receiver, for the CDP command `setIgnoreInputEvents`.
//
// Ignores input events (useful while auditing page).
//
// https://chromedevtools.github.io/devtools-protocol/tot/Input/#method-setIgnoreInputEvents
type SetIgnoreInputEvents struct {
	// Ignores input events processing when set to true.
	Ignore bool `json:"ignore"`
}

// NewSetIgnoreInputEvents constructs a new SetIgnoreInputEvents struct instance, with
// all (but only) the required parameters. Optional parameters
// may be added using the builder-like methods below.
//
// https://chromedevtools.github.io/devtools-protocol/tot/Input/#method-setIgnoreInputEvents
func NewSetIgnoreInputEvents(ignore bool) *SetIgnoreInputEvents {
	return &SetIgnoreInputEvents{Ignore: ignore}
}

// Do sends the SetIgnoreInputEvents CDP command to a browser,
// and returns the browser's response.
func (t *SetIgnoreInputEvents) Do(ctx context.Context) error {
	b, err := json.Marshal(t)
	if err != nil {
		return err
	}
	m, err := devtools.SendAndWait(ctx, "Input.setIgnoreInputEvents", b)
	if err != nil {
		return err
	}
	return t.ParseResponse(m)
}

// Start sends the SetIgnoreInputEvents CDP command to a browser,
// and returns a channel to receive the browser's response.
// Callers should close the returned channel on their own,
// although closing unused channels isn't strictly required.
func (t *SetIgnoreInputEvents) Start(ctx context.Context) (chan *devtools.Message, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return devtools.Send(ctx, "Input.setIgnoreInputEvents", b)
}

// ParseResponse parses the browser's response
// to the SetIgnoreInputEvents CDP command.
func (t *SetIgnoreInputEvents) ParseResponse(m *devtools.Message) error {
	if m.Error != nil {
		return errors.New(m.Error.Error())
	}
	return nil
}
