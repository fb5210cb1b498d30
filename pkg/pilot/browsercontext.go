package pilot

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/corvane/pilot/internal/devtools"
	"github.com/corvane/pilot/internal/devtools/target"
)

// ContextOptions holds the policies applied to every page opened in a
// BrowserContext (Data Model §3: "policies struct"). Every field is
// additive on the builder, per §9 Design Notes ("Builders with enumerated
// options"). BypassCSP and IgnoreHTTPSErrors are carried here but are not
// applied to pages.
type ContextOptions struct {
	Viewport          *Viewport
	UserAgent         string
	Locale            string
	TimezoneID        string
	ExtraHTTPHeaders  map[string]string
	HTTPCredentials   *HTTPCredentials
	Geolocation       *Geolocation
	Permissions       []string
	Offline           bool
	ColorScheme       string // "light", "dark", "no-preference"
	ReducedMotion     string // "reduce", "no-preference"
	BypassCSP         bool
	IgnoreHTTPSErrors bool
}

// Viewport is a device/window viewport size.
type Viewport struct {
	Width, Height int64
	DeviceScaleFactor float64
	IsMobile          bool
}

// HTTPCredentials are sent for HTTP basic auth challenges.
type HTTPCredentials struct {
	Username, Password string
}

// Geolocation overrides `navigator.geolocation`.
type Geolocation struct {
	Latitude, Longitude, Accuracy float64
}

// ContextOption configures a ContextOptions via Browser.NewContext.
type ContextOption func(*ContextOptions)

// WithViewport sets the default viewport for every page opened in the context.
func WithViewport(width, height int64) ContextOption {
	return func(o *ContextOptions) { o.Viewport = &Viewport{Width: width, Height: height} }
}

// WithUserAgent overrides the `navigator.userAgent` string.
func WithUserAgent(ua string) ContextOption {
	return func(o *ContextOptions) { o.UserAgent = ua }
}

// WithLocale overrides `navigator.language` and related `Accept-Language` headers.
func WithLocale(locale string) ContextOption {
	return func(o *ContextOptions) { o.Locale = locale }
}

// WithTimezone overrides the timezone used by `Date` and `Intl`.
func WithTimezone(tz string) ContextOption {
	return func(o *ContextOptions) { o.TimezoneID = tz }
}

// WithExtraHTTPHeaders merges extra headers sent with every request.
func WithExtraHTTPHeaders(h map[string]string) ContextOption {
	return func(o *ContextOptions) { o.ExtraHTTPHeaders = h }
}

// WithHTTPCredentials enables HTTP basic auth for every request.
func WithHTTPCredentials(username, password string) ContextOption {
	return func(o *ContextOptions) { o.HTTPCredentials = &HTTPCredentials{Username: username, Password: password} }
}

// WithPermissions grants the named permissions (e.g. "geolocation", "camera").
func WithPermissions(perms ...string) ContextOption {
	return func(o *ContextOptions) { o.Permissions = perms }
}

// BrowserContext is an isolated cookie/origin/permission namespace (§3).
// Pages are inserted into Pages exclusively in reaction to
// Target.attachedToTarget, and removed exclusively in reaction to
// Target.targetDestroyed or Target.detachedFromTarget, which a successful
// Page.Close waits for (invariant 3).
type BrowserContext struct {
	conn    *devtools.Connection
	id      string // "" for the default context
	owns    bool   // created-by-us vs adopted
	log     *logrus.Entry
	options ContextOptions
	router  *targetRouter

	mu          sync.RWMutex
	pages       []*Page
	initScripts []string

	routesMu sync.Mutex
	routes   []*registeredRoute

	trace *traceState

	harMu       sync.Mutex
	harRecorder *HARRecorder
}

func newBrowserContext(conn *devtools.Connection, id string, owns bool, log *logrus.Entry) *BrowserContext {
	return &BrowserContext{
		conn:  conn,
		id:    id,
		owns:  owns,
		log:   log.WithField("browserContextId", id),
		trace: &traceState{},
	}
}

// ID returns the CDP browserContextId ("" for the default context).
func (c *BrowserContext) ID() string { return c.id }

// Pages returns the context's ordered page list (a snapshot; safe to range
// over without holding any lock).
func (c *BrowserContext) Pages() []*Page {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Page, len(c.pages))
	copy(out, c.pages)
	return out
}

func (c *BrowserContext) addPage(p *Page) {
	c.mu.Lock()
	c.pages = append(c.pages, p)
	c.mu.Unlock()
}

// removePage untracks p from the context's page list (invariant 3). Safe to
// call more than once; subsequent calls are no-ops.
func (c *BrowserContext) removePage(p *Page) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.pages {
		if existing == p {
			c.pages = append(c.pages[:i], c.pages[i+1:]...)
			return
		}
	}
}

// NewPage installs a one-shot page waiter before issuing Target.createTarget
// so that browser-initiated pages (popups, window.open, target=_blank) and
// user-initiated pages share one creation path (§4.2).
func (c *BrowserContext) NewPage(ctx context.Context, opts ...PageOption) (*Page, error) {
	router := pageRouterFromContext(ctx, c)
	wait := router.waitForNextPage(c)
	defer wait.cancel()

	cmd := target.NewCreateTarget("about:blank")
	if c.id != "" {
		cmd.SetBrowserContextID(c.id)
	}
	sessionCtx := devtools.WithSession(ctx, c.conn, "")
	if _, err := cmd.Do(sessionCtx); err != nil {
		return nil, wrapError("BrowserContext.NewPage", KindProtocol, err)
	}

	p, err := wait.await(ctx)
	if err != nil {
		return nil, err
	}
	for _, o := range opts {
		o(p)
	}
	return p, nil
}

// Close disposes the context if it was created by this process (owns=true);
// an adopted context is merely forgotten, never disposed (§3 Lifecycles).
func (c *BrowserContext) Close(ctx context.Context) error {
	for _, p := range c.Pages() {
		_ = p.Close(ctx)
	}
	if !c.owns || c.id == "" {
		return nil
	}
	cmd := target.NewDisposeBrowserContext(c.id)
	sessionCtx := devtools.WithSession(ctx, c.conn, "")
	if err := cmd.Do(sessionCtx); err != nil {
		return wrapError("BrowserContext.Close", KindProtocol, err)
	}
	return nil
}

// initScriptsSnapshot returns a copy of the init scripts registered so far,
// in registration order, for a newly attached page to replay.
func (c *BrowserContext) initScriptsSnapshot() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.initScripts))
	copy(out, c.initScripts)
	return out
}

// AddInitScript registers JavaScript to be evaluated in every page and
// frame of this context before any of the page's own scripts run
// (Page.addScriptToEvaluateOnNewDocument, applied per-page on attach).
func (c *BrowserContext) AddInitScript(script string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initScripts = append(c.initScripts, script)
}
