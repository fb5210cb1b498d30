package pilot

import (
	"context"
	"time"
)

// actionabilityState is a single actionability probe's result (§7
// Actionability: attached, visible, stable, enabled, receives-pointer-events).
type actionabilityState struct {
	attached    bool
	visible     bool
	stable      bool // bounding box unchanged from the previous probe, 50ms prior
	enabled     bool
	hitTestable bool // elementFromPoint at the box's center resolves to this element or a descendant
	box         *rect
}

type rect struct{ x, y, width, height float64 }

func (r rect) center() (float64, float64) {
	return r.x + r.width/2, r.y + r.height/2
}

func boxesEqual(a, b rect) bool {
	return a.x == b.x && a.y == b.y && a.width == b.width && a.height == b.height
}

// actionabilityScript is evaluated with the candidate element as `this`. It
// mirrors the checks a real user's perception of "can I click this" would
// make: non-zero layout box, CSS visibility/display, not disabled, and -
// since the browser renders overlays on top of elements all the time - that
// the point a click would land on actually hits this element rather than
// something stacked above it.
const actionabilityScript = `function() {
	const style = window.getComputedStyle(this);
	const rect = this.getBoundingClientRect();
	const visible = style.visibility !== "hidden" &&
		style.display !== "none" &&
		rect.width > 0 && rect.height > 0;
	const disabled = this.disabled === true || this.getAttribute("aria-disabled") === "true";
	let hitTestable = false;
	if (visible) {
		const cx = rect.left + rect.width / 2;
		const cy = rect.top + rect.height / 2;
		const el = document.elementFromPoint(cx, cy);
		hitTestable = !!el && (el === this || this.contains(el));
	}
	return {visible, enabled: !disabled, hitTestable, x: rect.left, y: rect.top, width: rect.width, height: rect.height};
}`

// probe resolves the locator once and reports the actionability state of
// whatever it matched. A failure to resolve (no longer attached) is reported
// as attached=false rather than returned as an error, so pollUntilActionable
// can keep retrying. Stability is not set here - it depends on the previous
// probe's box, which only pollUntilActionable has.
func (l *Locator) probe(ctx context.Context) (*nodeRef, *actionabilityState, error) {
	ref, err := l.resolve(ctx)
	if err != nil {
		return nil, &actionabilityState{}, nil
	}

	var props struct {
		Visible     bool    `json:"visible"`
		Enabled     bool    `json:"enabled"`
		HitTestable bool    `json:"hitTestable"`
		X           float64 `json:"x"`
		Y           float64 `json:"y"`
		Width       float64 `json:"width"`
		Height      float64 `json:"height"`
	}
	if err := ref.call(ctx, actionabilityScript, &props); err != nil {
		return ref, &actionabilityState{attached: true}, nil
	}

	state := &actionabilityState{
		attached:    true,
		visible:     props.Visible,
		enabled:     props.Enabled,
		hitTestable: props.HitTestable,
	}
	if props.Visible {
		state.box = &rect{x: props.X, y: props.Y, width: props.Width, height: props.Height}
	}
	return ref, state, nil
}

// pollUntilActionable retries probe until every predicate in want is
// satisfied or ctx's deadline elapses, returning the last-observed state on
// timeout so the caller can build a KindActionability error with Actual set.
// If l.Force() was used, every check is bypassed and the locator's current
// match is returned immediately (§8: "with force=true, proceeds without
// checks").
func (l *Locator) pollUntilActionable(ctx context.Context, op string, want func(*actionabilityState) bool) (*nodeRef, error) {
	if l.force {
		return l.resolve(ctx)
	}

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	var last *actionabilityState
	var prevBox *rect
	for {
		ref, state, err := l.probe(ctx)
		if err != nil {
			return nil, err
		}
		if state.box != nil && prevBox != nil && boxesEqual(*prevBox, *state.box) {
			state.stable = true
		}
		prevBox = state.box
		last = state

		if ref != nil && want(state) {
			return ref, nil
		}

		if ref != nil && state.visible && !state.hitTestable {
			retried, herr := l.tryLocatorHandlers(ctx)
			if herr != nil {
				return nil, herr
			}
			if retried {
				prevBox = nil
				continue
			}
		}

		select {
		case <-ctx.Done():
			return nil, newError(op, KindActionability, "%s: actionability condition never satisfied", l.describe()).withActual(last)
		case <-ticker.C:
		}
	}
}

// locatorHandler is a registered overlay dismisser (§8: "with registered
// handler matching the overlay, succeeds after dismissal"): whenever an
// action's hit-test fails because matcher currently matches something, fn
// runs and the action is retried.
type locatorHandler struct {
	matcher *Locator
	fn      func(ctx context.Context) error
}

// AddLocatorHandler registers fn to run whenever an in-progress action's
// hit-test is blocked by an overlay that matcher currently matches (e.g. a
// cookie-consent banner). fn should dismiss whatever matcher found; the
// blocked action is retried once fn returns successfully.
func (p *Page) AddLocatorHandler(matcher *Locator, fn func(ctx context.Context) error) {
	p.handlersMu.Lock()
	defer p.handlersMu.Unlock()
	p.handlers = append(p.handlers, locatorHandler{matcher: matcher, fn: fn})
}

func (l *Locator) tryLocatorHandlers(ctx context.Context) (bool, error) {
	p := l.frame.page
	p.handlersMu.Lock()
	handlers := append([]locatorHandler{}, p.handlers...)
	p.handlersMu.Unlock()

	for _, h := range handlers {
		n, err := h.matcher.Count(ctx)
		if err != nil || n == 0 {
			continue
		}
		if err := h.fn(ctx); err != nil {
			return false, wrapError("Locator.actionability", KindActionability, err)
		}
		return true, nil
	}
	return false, nil
}

func rectFromBoxModel(content []float64, width, height int64) rect {
	var x, y float64
	if len(content) >= 2 {
		x, y = content[0], content[1]
	}
	return rect{x: x, y: y, width: float64(width), height: float64(height)}
}

func (e *Error) withActual(s *actionabilityState) *Error {
	if s == nil {
		e.Actual = "detached"
		return e
	}
	switch {
	case !s.attached:
		e.Actual = "detached"
	case !s.visible:
		e.Actual = "hidden"
	case !s.enabled:
		e.Actual = "disabled"
	case !s.hitTestable:
		e.Actual = "obscured"
	case !s.stable:
		e.Actual = "unstable"
	default:
		e.Actual = "attached,visible,stable,enabled,hit-testable"
	}
	return e
}
