package pilot

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/corvane/pilot/internal/devtools"
	"github.com/corvane/pilot/internal/devtools/tracing"
)

// traceState is the single cell a BrowserContext holds to track whether a
// trace is in flight (§9's start/stop pair must not nest).
type traceState struct {
	mu      sync.Mutex
	started bool
}

// Tracing records a Chrome trace (the same JSON format devtools://tracing
// consumes) across every page of a BrowserContext for the window between
// Start and Stop.
type Tracing struct {
	bc *BrowserContext
}

// Tracing returns the context's tracing controller.
func (c *BrowserContext) Tracing() *Tracing {
	return &Tracing{bc: c}
}

// TracingOptions configures Start.
type TracingOptions struct {
	// Categories, if non-empty, restricts collection to these trace
	// categories (e.g. "devtools.timeline", "v8"). Empty means the
	// browser's default category set.
	Categories []string
	Screenshots bool
}

// TracingOption configures TracingOptions.
type TracingOption func(*TracingOptions)

// WithTracingCategories restricts the recorded categories.
func WithTracingCategories(categories ...string) TracingOption {
	return func(o *TracingOptions) { o.Categories = categories }
}

// WithTracingScreenshots also records "disabled-by-default-devtools.screenshot"
// frames alongside the requested categories.
func WithTracingScreenshots() TracingOption {
	return func(o *TracingOptions) { o.Screenshots = true }
}

// Start begins recording on the first open page of the context. Calling
// Start twice without an intervening Stop returns KindTracingAlreadyStarted.
func (t *Tracing) Start(ctx context.Context, opts ...TracingOption) error {
	o := TracingOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	state := t.bc.trace
	state.mu.Lock()
	if state.started {
		state.mu.Unlock()
		return newError("Tracing.Start", KindTracingAlreadyStarted, "tracing already started on this context")
	}
	pages := t.bc.Pages()
	if len(pages) == 0 {
		state.mu.Unlock()
		return newError("Tracing.Start", KindNoPagesForTracing, "context has no open pages to trace")
	}
	state.started = true
	state.mu.Unlock()

	categories := o.Categories
	if o.Screenshots {
		categories = append(categories, "disabled-by-default-devtools.screenshot")
	}
	cfg := tracing.TraceConfig{IncludedCategories: categories}

	sessionCtx := pages[0].ctx(ctx)
	if err := tracing.NewStart().SetTraceConfig(cfg).Do(sessionCtx); err != nil {
		state.mu.Lock()
		state.started = false
		state.mu.Unlock()
		return wrapError("Tracing.Start", KindProtocol, err)
	}
	return nil
}

// Stop ends recording and returns the accumulated trace as a Chrome JSON
// trace document ({"traceEvents": [...]}). Calling Stop without a matching
// Start returns KindTracingNotStarted.
func (t *Tracing) Stop(ctx context.Context) ([]byte, error) {
	state := t.bc.trace
	state.mu.Lock()
	if !state.started {
		state.mu.Unlock()
		return nil, newError("Tracing.Stop", KindTracingNotStarted, "tracing was not started on this context")
	}
	state.mu.Unlock()

	pages := t.bc.Pages()
	if len(pages) == 0 {
		state.mu.Lock()
		state.started = false
		state.mu.Unlock()
		return nil, newError("Tracing.Stop", KindNoPagesForTracing, "context has no open pages to stop tracing on")
	}
	sessionCtx := pages[0].ctx(ctx)

	dataCh, unsubData, err := devtools.SubscribeEvent(sessionCtx, "Tracing.dataCollected")
	if err != nil {
		return nil, wrapError("Tracing.Stop", KindProtocol, err)
	}
	defer unsubData()
	completeCh, unsubComplete, err := devtools.SubscribeEvent(sessionCtx, "Tracing.tracingComplete")
	if err != nil {
		return nil, wrapError("Tracing.Stop", KindProtocol, err)
	}
	defer unsubComplete()

	if err := tracing.NewEnd().Do(sessionCtx); err != nil {
		state.mu.Lock()
		state.started = false
		state.mu.Unlock()
		return nil, wrapError("Tracing.Stop", KindProtocol, err)
	}

	var events []json.RawMessage
	for {
		select {
		case m, ok := <-dataCh:
			if !ok {
				return t.assemble(state, events), nil
			}
			var ev tracing.DataCollected
			if json.Unmarshal(m.Params, &ev) == nil {
				events = append(events, ev.Value...)
			}
		case <-completeCh:
			return t.assemble(state, events), nil
		case <-ctx.Done():
			state.mu.Lock()
			state.started = false
			state.mu.Unlock()
			return nil, wrapError("Tracing.Stop", KindTimeout, ctx.Err())
		}
	}
}

func (t *Tracing) assemble(state *traceState, events []json.RawMessage) []byte {
	state.mu.Lock()
	state.started = false
	state.mu.Unlock()

	doc := struct {
		TraceEvents []json.RawMessage `json:"traceEvents"`
	}{TraceEvents: events}
	b, err := json.Marshal(doc)
	if err != nil {
		return nil
	}
	return b
}
