package pilot

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/corvane/pilot/internal/devtools"
	cdplog "github.com/corvane/pilot/internal/devtools/log"
	"github.com/corvane/pilot/internal/devtools/network"
	cdppage "github.com/corvane/pilot/internal/devtools/page"
	"github.com/corvane/pilot/internal/devtools/runtime"
)

// Page is one attached "page"-type CDP target, scoped to a flattened
// sessionId. It is constructed exclusively by targetRouter.handleAttached
// and torn down exclusively by targetRouter.untrackTarget (invariant 3).
type Page struct {
	browser   *Browser
	bc        *BrowserContext
	conn      *devtools.Connection
	sessionID string
	targetID  string
	log       *logrus.Entry

	runCtx    context.Context
	runCancel context.CancelFunc

	mu          sync.RWMutex
	closed      bool
	closedCh    chan struct{}
	url         string
	mainFrameID string
	frames      map[string]*Frame

	defaultTimeout  time.Duration
	testIDAttribute string

	routesMu    sync.Mutex
	routes      []*registeredRoute
	routingOnce sync.Once

	hub *eventHub

	handlersMu sync.Mutex
	handlers   []locatorHandler

	downloadsMu    sync.Mutex
	downloadPath   string
	downloadStates map[string]string
}

// PageOption configures a Page freshly returned by BrowserContext.NewPage.
type PageOption func(*Page)

// WithPageDefaultTimeout overrides DefaultTimeout for every wait performed
// through this page (locator actions, navigation, WaitForFunction).
func WithPageDefaultTimeout(d time.Duration) PageOption {
	return func(p *Page) { p.SetDefaultTimeout(d) }
}

func newPage(b *Browser, bc *BrowserContext, sessionID, targetID, url string) *Page {
	runCtx, cancel := context.WithCancel(context.Background())
	return &Page{
		browser:         b,
		bc:              bc,
		conn:            b.conn,
		sessionID:       sessionID,
		targetID:        targetID,
		log:             b.log.WithField("sessionId", sessionID),
		runCtx:          runCtx,
		runCancel:       cancel,
		closedCh:        make(chan struct{}),
		url:             url,
		frames:          make(map[string]*Frame),
		defaultTimeout:  DefaultTimeout,
		testIDAttribute: "data-testid",
		hub:             &eventHub{},
		downloadStates:  make(map[string]string),
	}
}

// ctx returns a context bound to this page's Connection+sessionId, derived
// from parent so cancellation and deadlines set by the caller still apply.
func (p *Page) ctx(parent context.Context) context.Context {
	return devtools.WithSession(parent, p.conn, p.sessionID)
}

// start runs the page's enable sequence and begins tracking its frame tree
// and execution contexts. Called once by targetRouter right after
// construction, before the page is handed to any waiter.
func (p *Page) start() {
	sessionCtx := p.ctx(p.runCtx)

	if err := cdppage.NewEnable().Do(sessionCtx); err != nil {
		p.log.WithError(err).Warn("pilot: Page.enable failed")
	}
	if err := runtime.NewEnable().Do(sessionCtx); err != nil {
		p.log.WithError(err).Warn("pilot: Runtime.enable failed")
	}
	if err := network.NewEnable().Do(sessionCtx); err != nil {
		p.log.WithError(err).Warn("pilot: Network.enable failed")
	}
	if err := cdplog.NewEnable().Do(sessionCtx); err != nil {
		p.log.WithError(err).Warn("pilot: Log.enable failed")
	}
	if err := cdppage.NewSetLifecycleEventsEnabled(true).Do(sessionCtx); err != nil {
		p.log.WithError(err).Warn("pilot: Page.setLifecycleEventsEnabled failed")
	}

	for _, script := range p.bc.initScriptsSnapshot() {
		if err := cdppage.NewAddScriptToEvaluateOnNewDocument(script).Do(sessionCtx); err != nil {
			p.log.WithError(err).Warn("pilot: failed to install init script on attach")
		}
	}

	p.applyContextOptions(p.runCtx)

	if p.bc.hasRoutes() || p.bc.options.HTTPCredentials != nil {
		p.enableRouting()
	}
	if rec := p.bc.activeHARRecorder(); rec != nil {
		rec.attach(p)
	}

	if res, err := cdppage.NewGetFrameTree().Do(sessionCtx); err == nil {
		p.ingestFrameTree(res.FrameTree)
	} else {
		p.log.WithError(err).Warn("pilot: Page.getFrameTree failed")
	}

	navigatedCh, _, err := devtools.SubscribeEvent(sessionCtx, "Page.frameNavigated")
	if err != nil {
		return
	}
	attachedCh, _, err := devtools.SubscribeEvent(sessionCtx, "Page.frameAttached")
	if err != nil {
		return
	}
	detachedCh, _, err := devtools.SubscribeEvent(sessionCtx, "Page.frameDetached")
	if err != nil {
		return
	}
	ctxCreatedCh, _, err := devtools.SubscribeEvent(sessionCtx, "Runtime.executionContextCreated")
	if err != nil {
		return
	}
	ctxDestroyedCh, _, err := devtools.SubscribeEvent(sessionCtx, "Runtime.executionContextDestroyed")
	if err != nil {
		return
	}
	ctxClearedCh, _, err := devtools.SubscribeEvent(sessionCtx, "Runtime.executionContextsCleared")
	if err != nil {
		return
	}

	go p.eventLoop(navigatedCh, attachedCh, detachedCh, ctxCreatedCh, ctxDestroyedCh, ctxClearedCh)
	p.startNotifications()
}

func (p *Page) eventLoop(
	navigatedCh, attachedCh, detachedCh,
	ctxCreatedCh, ctxDestroyedCh, ctxClearedCh <-chan *devtools.Message,
) {
	for {
		select {
		case <-p.runCtx.Done():
			return
		case m, ok := <-navigatedCh:
			if !ok {
				return
			}
			var ev cdppage.FrameNavigated
			if json.Unmarshal(m.Params, &ev) == nil {
				p.upsertFrame(ev.Frame)
			}
		case m, ok := <-attachedCh:
			if !ok {
				return
			}
			var ev cdppage.FrameAttached
			if json.Unmarshal(m.Params, &ev) == nil {
				p.ensureFrame(ev.FrameID, ev.ParentFrameID)
			}
		case m, ok := <-detachedCh:
			if !ok {
				return
			}
			var ev cdppage.FrameDetached
			if json.Unmarshal(m.Params, &ev) == nil {
				p.removeFrame(ev.FrameID)
			}
		case m, ok := <-ctxCreatedCh:
			if !ok {
				return
			}
			var ev runtime.ExecutionContextCreated
			if json.Unmarshal(m.Params, &ev) == nil {
				p.bindExecutionContext(ev.Context)
			}
		case m, ok := <-ctxDestroyedCh:
			if !ok {
				return
			}
			var ev runtime.ExecutionContextDestroyed
			if json.Unmarshal(m.Params, &ev) == nil {
				p.clearExecutionContext(ev.ExecutionContextID)
			}
		case _, ok := <-ctxClearedCh:
			if !ok {
				return
			}
			p.clearAllExecutionContexts()
		}
	}
}

func (p *Page) ingestFrameTree(tree cdppage.FrameTree) {
	p.upsertFrame(tree.Frame)
	p.mu.Lock()
	if p.mainFrameID == "" {
		p.mainFrameID = tree.Frame.ID
	}
	p.mu.Unlock()
	for _, child := range tree.ChildFrames {
		p.ingestFrameTree(child)
	}
}

func (p *Page) upsertFrame(f cdppage.Frame) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fr, ok := p.frames[f.ID]
	if !ok {
		fr = &Frame{page: p, id: f.ID}
		p.frames[f.ID] = fr
	}
	fr.mu.Lock()
	fr.parentID = f.ParentID
	fr.name = f.Name
	fr.url = f.URL
	fr.mu.Unlock()
	if f.ParentID == "" {
		p.mainFrameID = f.ID
		p.url = f.URL
	}
}

func (p *Page) ensureFrame(id, parentID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.frames[id]; ok {
		return
	}
	p.frames[id] = &Frame{page: p, id: id, parentID: parentID}
}

func (p *Page) removeFrame(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.frames, id)
}

func (p *Page) bindExecutionContext(desc runtime.ExecutionContextDescription) {
	var aux runtime.ExecutionContextAuxData
	if err := json.Unmarshal(desc.AuxData, &aux); err != nil || aux.FrameID == "" {
		return
	}
	p.mu.RLock()
	fr, ok := p.frames[aux.FrameID]
	p.mu.RUnlock()
	if !ok {
		return
	}
	fr.mu.Lock()
	fr.execCtxID = runtime.ExecutionContextID(desc.ID)
	fr.hasExecCtx = true
	fr.mu.Unlock()
}

func (p *Page) clearExecutionContext(id int64) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, fr := range p.frames {
		fr.mu.Lock()
		if fr.hasExecCtx && int64(fr.execCtxID) == id {
			fr.hasExecCtx = false
		}
		fr.mu.Unlock()
	}
}

func (p *Page) clearAllExecutionContexts() {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, fr := range p.frames {
		fr.mu.Lock()
		fr.hasExecCtx = false
		fr.mu.Unlock()
	}
}

// markClosed is called by targetRouter when the underlying target is
// destroyed or detached. It never calls back into Target.closeTarget:
// that would race a caller that is itself inside Page.Close.
func (p *Page) markClosed() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	p.mu.Unlock()
	p.runCancel()
	close(p.closedCh)
}

// URL returns the main frame's last known URL.
func (p *Page) URL() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.url
}

// MainFrame returns the page's top-level frame.
func (p *Page) MainFrame() *Frame {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.frames[p.mainFrameID]
}

// Frames returns every known frame, in no particular order.
func (p *Page) Frames() []*Frame {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]*Frame, 0, len(p.frames))
	for _, fr := range p.frames {
		out = append(out, fr)
	}
	return out
}

// Context returns the BrowserContext this page belongs to.
func (p *Page) Context() *BrowserContext { return p.bc }

// SetDefaultTimeout overrides the deadline used by this page's locator
// actions, WaitForFunction and navigation waits when the caller's context
// carries no earlier deadline.
func (p *Page) SetDefaultTimeout(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.defaultTimeout = d
}

func (p *Page) timeout() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.defaultTimeout
}

// SetTestIDAttribute changes the DOM attribute GetByTestID matches against
// (default "data-testid").
func (p *Page) SetTestIDAttribute(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.testIDAttribute = name
}

func (p *Page) testIDAttr() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.testIDAttribute
}

// GotoOptions configures Goto.
type GotoOptions struct {
	// WaitUntil is the lifecycle event Goto waits for before returning:
	// "load" (default), "domcontentloaded", or "networkidle".
	WaitUntil string
}

// GotoOption configures a GotoOptions.
type GotoOption func(*GotoOptions)

// WithWaitUntil overrides the lifecycle event Goto waits for.
func WithWaitUntil(state string) GotoOption {
	return func(o *GotoOptions) { o.WaitUntil = state }
}

// Goto navigates the main frame and waits for the chosen lifecycle event
// (default "load") before returning.
func (p *Page) Goto(ctx context.Context, url string, opts ...GotoOption) error {
	o := GotoOptions{WaitUntil: "load"}
	for _, opt := range opts {
		opt(&o)
	}

	ctx, cancel := p.withDefaultTimeout(ctx)
	defer cancel()
	sessionCtx := p.ctx(ctx)

	var waitLifecycle <-chan *devtools.Message
	var unsubscribe func()
	if o.WaitUntil != "networkidle" {
		ch, unsub, err := devtools.SubscribeEvent(sessionCtx, "Page.lifecycleEvent")
		if err == nil {
			waitLifecycle, unsubscribe = ch, unsub
		}
	}

	res, err := cdppage.NewNavigate(url).Do(sessionCtx)
	if err != nil {
		if unsubscribe != nil {
			unsubscribe()
		}
		return wrapError("Page.Goto", KindNavigation, err)
	}
	if res.ErrorText != "" {
		if unsubscribe != nil {
			unsubscribe()
		}
		return newError("Page.Goto", KindNavigation, "%s: %s", url, res.ErrorText)
	}

	if o.WaitUntil == "networkidle" {
		return p.waitForNetworkIdle(ctx, networkIdleQuiet, networkIdleMaxInflight)
	}
	if waitLifecycle == nil {
		return nil
	}
	defer unsubscribe()
	for {
		select {
		case m, ok := <-waitLifecycle:
			if !ok {
				return nil
			}
			var ev cdppage.LifecycleEvent
			if json.Unmarshal(m.Params, &ev) == nil && ev.Name == o.WaitUntil {
				return nil
			}
		case <-ctx.Done():
			return wrapError("Page.Goto", KindTimeout, ctx.Err())
		}
	}
}

// BringToFront activates the page's tab/window.
func (p *Page) BringToFront(ctx context.Context) error {
	sessionCtx := p.ctx(ctx)
	if err := cdppage.NewBringToFront().Do(sessionCtx); err != nil {
		return wrapError("Page.BringToFront", KindProtocol, err)
	}
	return nil
}

// Close requests Page.close and waits for the target to actually be torn
// down (observed as Target.targetDestroyed) before returning, so that a
// caller's next BrowserContext.Pages() never races the removal (decided
// Open Question: Close is synchronous with teardown, not merely with the
// CDP acknowledgement).
func (p *Page) Close(ctx context.Context) error {
	p.mu.RLock()
	already := p.closed
	p.mu.RUnlock()
	if already {
		return nil
	}

	sessionCtx := p.ctx(ctx)
	if err := cdppage.NewClose().Do(sessionCtx); err != nil {
		return wrapError("Page.Close", KindProtocol, err)
	}
	select {
	case <-p.closedCh:
		return nil
	case <-ctx.Done():
		return wrapError("Page.Close", KindTimeout, ctx.Err())
	}
}

// IsClosed reports whether the underlying target has been torn down.
func (p *Page) IsClosed() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.closed
}

func (p *Page) withDefaultTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.timeout())
}
