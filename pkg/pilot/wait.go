package pilot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/corvane/pilot/internal/devtools"
	"github.com/corvane/pilot/internal/devtools/network"
	cdppage "github.com/corvane/pilot/internal/devtools/page"
	"github.com/corvane/pilot/internal/devtools/runtime"
)

// navigationDetectionWindow is how long a Click or Press waits to see
// whether it triggered a navigation before giving up and returning
// immediately (invariant 7).
const navigationDetectionWindow = 150 * time.Millisecond

// networkIdleQuiet and networkIdleMaxInflight pin down wait_until=networkidle
// as "500ms with <=2 in-flight requests" (Open Question decision, §9).
const (
	networkIdleQuiet       = 500 * time.Millisecond
	networkIdleMaxInflight = 2
)

// PollingMode selects how WaitForFunction re-evaluates its expression.
type PollingMode int

const (
	// PollInterval re-evaluates every WaitForFunctionOptions.Interval.
	PollInterval PollingMode = iota
	// PollRAF approximates "once per animation frame" with a 16ms tick,
	// since there is no requestAnimationFrame callback path across CDP.
	PollRAF
)

// WaitForFunctionOptions configures WaitForFunction.
type WaitForFunctionOptions struct {
	Polling  PollingMode
	Interval time.Duration
}

// WaitForFunctionOption configures a WaitForFunctionOptions.
type WaitForFunctionOption func(*WaitForFunctionOptions)

// WithPollingRAF re-evaluates roughly once per animation frame.
func WithPollingRAF() WaitForFunctionOption {
	return func(o *WaitForFunctionOptions) { o.Polling = PollRAF }
}

// WithPollingInterval re-evaluates every d.
func WithPollingInterval(d time.Duration) WaitForFunctionOption {
	return func(o *WaitForFunctionOptions) { o.Polling = PollInterval; o.Interval = d }
}

// Handle is an opaque reference to a JS object value. WaitForFunction
// returns a nil Handle when the truthy expression evaluated to a JS
// primitive (no objectId), and a non-nil Handle when it evaluated to an
// object.
type Handle struct {
	ref *nodeRef
}

// Evaluate calls functionDeclaration with the handle bound as `this`,
// decoding the JSON result into out.
func (h *Handle) Evaluate(ctx context.Context, functionDeclaration string, out any) error {
	return h.ref.call(ctx, functionDeclaration, out)
}

// WaitForFunction evaluates expression in the page's main frame.
func (p *Page) WaitForFunction(ctx context.Context, expression string, opts ...WaitForFunctionOption) (*Handle, error) {
	return p.MainFrame().WaitForFunction(ctx, expression, opts...)
}

// WaitForFunction polls expression in f's main-world execution context
// until it evaluates truthy or ctx's deadline elapses (§4.6).
func (f *Frame) WaitForFunction(ctx context.Context, expression string, opts ...WaitForFunctionOption) (*Handle, error) {
	o := WaitForFunctionOptions{Polling: PollInterval, Interval: 100 * time.Millisecond}
	for _, opt := range opts {
		opt(&o)
	}
	interval := o.Interval
	if o.Polling == PollRAF {
		interval = 16 * time.Millisecond
	}
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}

	ctx, cancel := f.page.withDefaultTimeout(ctx)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		ref, truthy, err := f.evaluateTruthy(ctx, expression)
		if err != nil {
			return nil, err
		}
		if truthy {
			if ref == nil {
				return nil, nil
			}
			return &Handle{ref: ref}, nil
		}
		select {
		case <-ctx.Done():
			return nil, wrapError("Frame.WaitForFunction", KindTimeout, ctx.Err())
		case <-ticker.C:
		}
	}
}

// evaluateTruthy evaluates expression without forcing return-by-value, so
// an object result keeps its objectId (§4.6: "Ok(Some(handle))" for
// objects, "Ok(None)" for primitive truthy values).
func (f *Frame) evaluateTruthy(ctx context.Context, expression string) (*nodeRef, bool, error) {
	ctxID, ok := f.executionContextID()
	if !ok {
		return nil, false, nil
	}
	sessionCtx := f.page.ctx(ctx)
	cmd := runtime.NewEvaluate(fmt.Sprintf("(%s)", expression)).
		SetContextID(int64(ctxID)).
		SetAwaitPromise(true)
	res, err := cmd.Do(sessionCtx)
	if err != nil {
		return nil, false, wrapError("Frame.WaitForFunction", KindProtocol, err)
	}
	if res.ExceptionDetails != nil {
		return nil, false, newError("Frame.WaitForFunction", KindProtocol, "%s", res.ExceptionDetails.Text)
	}
	if res.Result.ObjectID != "" {
		return &nodeRef{frame: f, objectID: runtime.RemoteObjectID(res.Result.ObjectID)}, true, nil
	}
	if res.Result.Type == "undefined" {
		return nil, false, nil
	}
	var v any
	if len(res.Result.Value) > 0 {
		if err := json.Unmarshal(res.Result.Value, &v); err != nil {
			return nil, false, nil
		}
	}
	return nil, isTruthy(v), nil
}

func isTruthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return t != ""
	default:
		return true
	}
}

// WaitForLoadState blocks until the main frame reports the named lifecycle
// event ("load", "domcontentloaded") or, for "networkidle", until network
// activity has been quiet for networkIdleQuiet.
func (p *Page) WaitForLoadState(ctx context.Context, state string) error {
	ctx, cancel := p.withDefaultTimeout(ctx)
	defer cancel()
	if state == "" {
		state = "load"
	}
	if state == "networkidle" {
		return p.waitForNetworkIdle(ctx, networkIdleQuiet, networkIdleMaxInflight)
	}
	return p.waitForLifecycleEvent(ctx, state)
}

func (p *Page) waitForLifecycleEvent(ctx context.Context, name string) error {
	sessionCtx := p.ctx(ctx)
	ch, unsubscribe, err := devtools.SubscribeEvent(sessionCtx, "Page.lifecycleEvent")
	if err != nil {
		return wrapError("Page.WaitForLoadState", KindProtocol, err)
	}
	defer unsubscribe()
	for {
		select {
		case m, ok := <-ch:
			if !ok {
				return newError("Page.WaitForLoadState", KindSessionGone, "page closed while waiting for lifecycle event %q", name)
			}
			var ev cdppage.LifecycleEvent
			if json.Unmarshal(m.Params, &ev) == nil && ev.Name == name {
				return nil
			}
		case <-ctx.Done():
			return wrapError("Page.WaitForLoadState", KindTimeout, ctx.Err())
		}
	}
}

// waitForNetworkIdle watches Network.requestWillBeSent/loadingFinished/
// loadingFailed and returns once in-flight requests have stayed at or
// below maxInflight for at least quiet.
func (p *Page) waitForNetworkIdle(ctx context.Context, quiet time.Duration, maxInflight int) error {
	sessionCtx := p.ctx(ctx)

	reqCh, unsubReq, err := devtools.SubscribeEvent(sessionCtx, "Network.requestWillBeSent")
	if err != nil {
		return wrapError("Page.WaitForLoadState", KindProtocol, err)
	}
	defer unsubReq()
	finCh, unsubFin, err := devtools.SubscribeEvent(sessionCtx, "Network.loadingFinished")
	if err != nil {
		return wrapError("Page.WaitForLoadState", KindProtocol, err)
	}
	defer unsubFin()
	failCh, unsubFail, err := devtools.SubscribeEvent(sessionCtx, "Network.loadingFailed")
	if err != nil {
		return wrapError("Page.WaitForLoadState", KindProtocol, err)
	}
	defer unsubFail()

	inflight := make(map[string]struct{})
	lastBusy := time.Now()
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return wrapError("Page.WaitForLoadState", KindTimeout, ctx.Err())
		case m, ok := <-reqCh:
			if !ok {
				continue
			}
			var ev network.RequestWillBeSent
			if json.Unmarshal(m.Params, &ev) == nil {
				inflight[ev.RequestID] = struct{}{}
				if len(inflight) > maxInflight {
					lastBusy = time.Now()
				}
			}
		case m, ok := <-finCh:
			if !ok {
				continue
			}
			var ev network.LoadingFinished
			if json.Unmarshal(m.Params, &ev) == nil {
				delete(inflight, ev.RequestID)
			}
		case m, ok := <-failCh:
			if !ok {
				continue
			}
			var ev network.LoadingFailed
			if json.Unmarshal(m.Params, &ev) == nil {
				delete(inflight, ev.RequestID)
			}
		case <-ticker.C:
			if len(inflight) <= maxInflight && time.Since(lastBusy) >= quiet {
				return nil
			}
		}
	}
}

// armNavigationWaiter subscribes to Page.frameNavigated for the main frame
// before an action that might trigger one. The returned function blocks up
// to navigationDetectionWindow; if a top-level navigation was observed
// within that window, it then waits for waitUntil's lifecycle event before
// returning (invariant 7).
func (p *Page) armNavigationWaiter(waitUntil string) func(ctx context.Context) error {
	sessionCtx := p.ctx(p.runCtx)
	navCh, unsubscribe, err := devtools.SubscribeEvent(sessionCtx, "Page.frameNavigated")
	if err != nil {
		return func(context.Context) error { return nil }
	}
	if waitUntil == "" {
		waitUntil = "load"
	}
	return func(ctx context.Context) error {
		defer unsubscribe()
		timer := time.NewTimer(navigationDetectionWindow)
		defer timer.Stop()
		for {
			select {
			case m, ok := <-navCh:
				if !ok {
					return nil
				}
				var ev cdppage.FrameNavigated
				if json.Unmarshal(m.Params, &ev) != nil || ev.Frame.ParentID != "" {
					continue // not a top-level navigation
				}
				if waitUntil == "networkidle" {
					return p.waitForNetworkIdle(ctx, networkIdleQuiet, networkIdleMaxInflight)
				}
				return p.waitForLifecycleEvent(ctx, waitUntil)
			case <-timer.C:
				return nil
			case <-ctx.Done():
				return wrapError("Page.waitForNavigation", KindTimeout, ctx.Err())
			}
		}
	}
}
