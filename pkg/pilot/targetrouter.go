package pilot

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/corvane/pilot/internal/devtools"
	"github.com/corvane/pilot/internal/devtools/target"
)

// targetRouter is the single consumer of Target domain events for a Browser
// (§4.2 Session routing). It enables auto-attach once at Connect time, turns
// every attachedToTarget whose TargetInfo.Type is "page" into a pilot.Page,
// and keeps each BrowserContext's page list in sync with
// targetDestroyed/detachedFromTarget - the only two events that ever remove
// a page (invariant 3).
//
// Routing browser-initiated targets (popups, window.open, target=_blank)
// through the exact same attachedToTarget handler as user-initiated
// NewPage calls is what makes the one-shot pageWaiter below necessary:
// NewPage has no targetId to correlate against until after createTarget
// returns, by which point the attach event may already have been delivered.
type targetRouter struct {
	browser *Browser
	conn    *devtools.Connection

	mu       sync.Mutex
	contexts map[string]*BrowserContext // keyed by CDP browserContextId
	pages    map[string]*Page           // keyed by CDP targetId

	waitersMu sync.Mutex
	waiters   map[*BrowserContext][]*pageWaiter
}

func newTargetRouter(b *Browser) *targetRouter {
	return &targetRouter{
		browser:  b,
		conn:     b.conn,
		contexts: make(map[string]*BrowserContext),
		pages:    make(map[string]*Page),
		waiters:  make(map[*BrowserContext][]*pageWaiter),
	}
}

// trackContext registers bc so that targets whose TargetInfo.BrowserContextID
// matches bc.id are routed to it. Called once per BrowserContext, including
// the default one created by Connect.
func (t *targetRouter) trackContext(bc *BrowserContext) {
	t.mu.Lock()
	t.contexts[bc.id] = bc
	t.mu.Unlock()
	bc.router = t
}

// pageRouterFromContext returns the targetRouter backing bc. ctx is accepted
// (rather than reading a field directly off bc) so that a future version
// routed through a per-call context value doesn't change NewPage's call
// site.
func pageRouterFromContext(_ context.Context, bc *BrowserContext) *targetRouter {
	return bc.router
}

// pageWaiter is a one-shot rendezvous between a call that expects a new page
// (NewPage, or a click that opens a popup) and the attachedToTarget handler
// that actually constructs it.
type pageWaiter struct {
	bc     *BrowserContext
	ch     chan *Page
	router *targetRouter
}

func (t *targetRouter) waitForNextPage(bc *BrowserContext) *pageWaiter {
	w := &pageWaiter{bc: bc, ch: make(chan *Page, 1), router: t}
	t.waitersMu.Lock()
	t.waiters[bc] = append(t.waiters[bc], w)
	t.waitersMu.Unlock()
	return w
}

func (w *pageWaiter) cancel() {
	w.router.waitersMu.Lock()
	defer w.router.waitersMu.Unlock()
	ws := w.router.waiters[w.bc]
	for i, existing := range ws {
		if existing == w {
			w.router.waiters[w.bc] = append(ws[:i], ws[i+1:]...)
			return
		}
	}
}

func (w *pageWaiter) await(ctx context.Context) (*Page, error) {
	select {
	case p, ok := <-w.ch:
		if !ok {
			return nil, newError("Page.create", KindSessionGone, "browser connection closed while waiting for a new page")
		}
		return p, nil
	case <-ctx.Done():
		return nil, wrapError("Page.create", KindTimeout, ctx.Err())
	}
}

// deliverPage hands p to the oldest pending waiter for bc, if any. It never
// blocks: a page with no waiter (a browser-initiated popup nobody called
// NewPage for) is simply left for BrowserContext.Pages() to discover.
func (t *targetRouter) deliverPage(bc *BrowserContext, p *Page) {
	t.waitersMu.Lock()
	ws := t.waiters[bc]
	var w *pageWaiter
	if len(ws) > 0 {
		w = ws[0]
		t.waiters[bc] = ws[1:]
	}
	t.waitersMu.Unlock()
	if w != nil {
		w.ch <- p
	}
}

// start enables target discovery and flattened auto-attach once, then runs
// the dispatch loop in the background for the lifetime of the connection.
func (t *targetRouter) start(ctx context.Context) error {
	sessionCtx := devtools.WithSession(ctx, t.conn, "")

	attachedCh, _, err := devtools.SubscribeEvent(sessionCtx, "Target.attachedToTarget")
	if err != nil {
		return wrapError("targetRouter.start", KindProtocol, err)
	}
	detachedCh, _, err := devtools.SubscribeEvent(sessionCtx, "Target.detachedFromTarget")
	if err != nil {
		return wrapError("targetRouter.start", KindProtocol, err)
	}
	destroyedCh, _, err := devtools.SubscribeEvent(sessionCtx, "Target.targetDestroyed")
	if err != nil {
		return wrapError("targetRouter.start", KindProtocol, err)
	}

	if err := target.NewSetDiscoverTargets(true).Do(sessionCtx); err != nil {
		return wrapError("targetRouter.start", KindProtocol, err)
	}
	attach := target.NewSetAutoAttach(true, false)
	attach.SetFlatten(true)
	if err := attach.Do(sessionCtx); err != nil {
		return wrapError("targetRouter.start", KindProtocol, err)
	}

	go t.loop(attachedCh, detachedCh, destroyedCh)
	return nil
}

func (t *targetRouter) loop(attachedCh, detachedCh, destroyedCh <-chan *devtools.Message) {
	for {
		select {
		case m, ok := <-attachedCh:
			if !ok {
				return
			}
			t.handleAttached(m)
		case m, ok := <-detachedCh:
			if !ok {
				return
			}
			t.handleDetached(m)
		case m, ok := <-destroyedCh:
			if !ok {
				return
			}
			t.handleDestroyed(m)
		}
	}
}

func (t *targetRouter) handleAttached(m *devtools.Message) {
	var ev target.AttachedToTarget
	if err := json.Unmarshal(m.Params, &ev); err != nil {
		return
	}
	if ev.TargetInfo.Type != "page" {
		return
	}

	bc := t.contextFor(ev.TargetInfo.BrowserContextID)
	p := newPage(t.browser, bc, ev.SessionID, ev.TargetInfo.TargetID, ev.TargetInfo.URL)

	t.mu.Lock()
	t.pages[ev.TargetInfo.TargetID] = p
	t.mu.Unlock()

	bc.addPage(p)
	p.start()
	t.deliverPage(bc, p)
}

func (t *targetRouter) handleDetached(m *devtools.Message) {
	var ev target.DetachedFromTarget
	if err := json.Unmarshal(m.Params, &ev); err != nil {
		return
	}
	t.untrackTarget(ev.TargetID)
}

func (t *targetRouter) handleDestroyed(m *devtools.Message) {
	var ev target.TargetDestroyed
	if err := json.Unmarshal(m.Params, &ev); err != nil {
		return
	}
	t.untrackTarget(ev.TargetID)
}

func (t *targetRouter) untrackTarget(targetID string) {
	t.mu.Lock()
	p, ok := t.pages[targetID]
	delete(t.pages, targetID)
	t.mu.Unlock()
	if !ok {
		return
	}
	p.markClosed()
	p.bc.removePage(p)
}

// contextFor mirrors Browser.contextFor but is reachable from the router's
// event-handling goroutine without taking the Browser's own lock.
func (t *targetRouter) contextFor(id string) *BrowserContext {
	t.mu.Lock()
	bc, ok := t.contexts[id]
	t.mu.Unlock()
	if ok {
		return bc
	}
	bc = t.browser.contextFor(id)
	t.trackContext(bc)
	return bc
}
