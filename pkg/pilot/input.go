package pilot

import (
	"context"
	"time"

	"github.com/corvane/pilot/internal/devtools/input"
)

// Keyboard is the page's keyboard input primitive (§4.4/C8), usable
// independent of any Locator when a test wants to drive focus explicitly
// (e.g. Tab between fields) rather than through Locator.Fill/Press.
type Keyboard struct{ page *Page }

// Keyboard returns the page's keyboard primitive.
func (p *Page) Keyboard() *Keyboard { return &Keyboard{page: p} }

// TypeOption configures Keyboard.Type.
type TypeOption func(*typeOptions)

type typeOptions struct{ delay time.Duration }

// WithTypeDelay waits d between each dispatched character, approximating
// human typing speed (useful against input handlers that debounce keystrokes).
func WithTypeDelay(d time.Duration) TypeOption {
	return func(o *typeOptions) { o.delay = d }
}

// Type dispatches text one keyDown+char+keyUp triple per rune into whatever
// element currently has focus.
func (k *Keyboard) Type(ctx context.Context, text string, opts ...TypeOption) error {
	return k.page.typeText(ctx, text, opts...)
}

// Press dispatches a single named key (e.g. "Enter", "Tab", "Backspace") as
// a rawKeyDown/keyUp pair into whatever element currently has focus.
func (k *Keyboard) Press(ctx context.Context, key string) error {
	return k.page.pressKey(ctx, key)
}

// Mouse is the page's mouse input primitive, usable independent of any
// Locator for gestures a selector-driven action doesn't cover (drag paths,
// hovering a coordinate with nothing under it yet).
type Mouse struct{ page *Page }

// Mouse returns the page's mouse primitive.
func (p *Page) Mouse() *Mouse { return &Mouse{page: p} }

// Move moves the mouse to (x, y) without pressing any button.
func (m *Mouse) Move(ctx context.Context, x, y float64) error {
	return m.page.dispatchHover(ctx, x, y)
}

// Down presses the left mouse button at its current position.
func (m *Mouse) Down(ctx context.Context) error {
	return m.page.dispatchMouseButton(ctx, "mousePressed")
}

// Up releases the left mouse button at its current position.
func (m *Mouse) Up(ctx context.Context) error {
	return m.page.dispatchMouseButton(ctx, "mouseReleased")
}

// Click moves to (x, y) and dispatches a full press/release pair there.
func (m *Mouse) Click(ctx context.Context, x, y float64) error {
	if err := m.Move(ctx, x, y); err != nil {
		return err
	}
	return m.page.dispatchClick(ctx, x, y, 1)
}

// Touchscreen is the page's touch input primitive (§4.4/C8), dispatching
// Input.dispatchTouchEvent rather than synthetic mouse events so handlers
// listening for touchstart/touchend see a real touch sequence.
type Touchscreen struct{ page *Page }

// Touchscreen returns the page's touchscreen primitive.
func (p *Page) Touchscreen() *Touchscreen { return &Touchscreen{page: p} }

// Tap dispatches a touchStart immediately followed by a touchEnd at (x, y).
func (t *Touchscreen) Tap(ctx context.Context, x, y float64) error {
	sessionCtx := t.page.ctx(ctx)
	point := []input.TouchPoint{{X: x, Y: y}}

	if err := input.NewDispatchTouchEvent("touchStart", point).Do(sessionCtx); err != nil {
		return wrapError("Touchscreen.Tap", KindProtocol, err)
	}
	if err := input.NewDispatchTouchEvent("touchEnd", nil).Do(sessionCtx); err != nil {
		return wrapError("Touchscreen.Tap", KindProtocol, err)
	}
	return nil
}

// dispatchClick sends a full press/release mouse event pair at (x, y),
// scoped to the page's session - the same coordinate-driven path a real
// pointer device would exercise, rather than an in-page synthetic
// `element.click()`.
func (p *Page) dispatchClick(ctx context.Context, x, y float64, clickCount int64) error {
	sessionCtx := p.ctx(ctx)

	down := input.NewDispatchMouseEvent("mousePressed", x, y).
		SetButton(input.MouseButtonLeft).
		SetButtons(1).
		SetClickCount(clickCount)
	if err := down.Do(sessionCtx); err != nil {
		return wrapError("Locator.Click", KindProtocol, err)
	}

	up := input.NewDispatchMouseEvent("mouseReleased", x, y).
		SetButton(input.MouseButtonLeft).
		SetButtons(0).
		SetClickCount(clickCount)
	if err := up.Do(sessionCtx); err != nil {
		return wrapError("Locator.Click", KindProtocol, err)
	}
	return nil
}

// dispatchMouseButton presses or releases the left button at the mouse's
// last dispatched position (CDP remembers it; we don't need to resend x/y).
func (p *Page) dispatchMouseButton(ctx context.Context, eventType string) error {
	sessionCtx := p.ctx(ctx)
	buttons := int64(1)
	if eventType == "mouseReleased" {
		buttons = 0
	}
	cmd := input.NewDispatchMouseEvent(eventType, 0, 0).
		SetButton(input.MouseButtonLeft).
		SetButtons(buttons).
		SetClickCount(1)
	if err := cmd.Do(sessionCtx); err != nil {
		return wrapError("Mouse", KindProtocol, err)
	}
	return nil
}

// dispatchHover moves the mouse to (x, y) without pressing any button.
func (p *Page) dispatchHover(ctx context.Context, x, y float64) error {
	sessionCtx := p.ctx(ctx)
	move := input.NewDispatchMouseEvent("mouseMoved", x, y)
	if err := move.Do(sessionCtx); err != nil {
		return wrapError("Locator.Hover", KindProtocol, err)
	}
	return nil
}

// typeText dispatches one keyDown+char+keyUp triple per rune, the way a
// physical keyboard would, rather than a single Input.insertText call - so
// keydown/keyup listeners on the page still fire. WithTypeDelay adds a pause
// between runes to approximate human typing speed.
func (p *Page) typeText(ctx context.Context, text string, opts ...TypeOption) error {
	o := typeOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	sessionCtx := p.ctx(ctx)
	for i, r := range text {
		if i > 0 && o.delay > 0 {
			select {
			case <-ctx.Done():
				return wrapError("Locator.Type", KindTimeout, ctx.Err())
			case <-time.After(o.delay):
			}
		}
		s := string(r)
		down := input.NewDispatchKeyEvent("rawKeyDown").SetKey(s)
		if err := down.Do(sessionCtx); err != nil {
			return wrapError("Locator.Type", KindProtocol, err)
		}
		char := input.NewDispatchKeyEvent("char").SetText(s).SetKey(s)
		if err := char.Do(sessionCtx); err != nil {
			return wrapError("Locator.Type", KindProtocol, err)
		}
		up := input.NewDispatchKeyEvent("keyUp").SetKey(s)
		if err := up.Do(sessionCtx); err != nil {
			return wrapError("Locator.Type", KindProtocol, err)
		}
	}
	return nil
}

// pressKey dispatches a single named key (e.g. "Enter", "Tab", "Backspace")
// as a rawKeyDown/keyUp pair.
func (p *Page) pressKey(ctx context.Context, key string) error {
	sessionCtx := p.ctx(ctx)
	down := input.NewDispatchKeyEvent("rawKeyDown").SetKey(key).SetCode(key)
	if err := down.Do(sessionCtx); err != nil {
		return wrapError("Locator.Press", KindProtocol, err)
	}
	up := input.NewDispatchKeyEvent("keyUp").SetKey(key).SetCode(key)
	if err := up.Do(sessionCtx); err != nil {
		return wrapError("Locator.Press", KindProtocol, err)
	}
	return nil
}
