// Package pilot is the public, business-logic API of the browser automation
// core: it turns the wire-level CDP plumbing in internal/devtools into a
// Browser -> BrowserContext -> Page -> Frame resource hierarchy, a
// locator/actionability engine, network routing, and a wait/expect retry
// core, exactly as laid out in the component table this module was built
// against.
//
// A pilot.Browser never launches a browser process: it only attaches to one
// already listening for CDP connections (see Connect). Everything about
// spawning, flag construction and debugger-URL parsing from stderr is left
// to an external collaborator.
package pilot

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/corvane/pilot/internal/devtools"
	"github.com/corvane/pilot/internal/devtools/target"
)

// DefaultTimeout is used by any operation that accepts a timeout but is not
// given one explicitly (§5 Cancellation and timeouts).
const DefaultTimeout = 30 * time.Second

// DefaultEventBufferSize mirrors devtools.DefaultEventBufferSize; exposed
// here so pilot.Config can reference it without importing internal/devtools
// in its doc comments.
const DefaultEventBufferSize = devtools.DefaultEventBufferSize

// Config bears the handful of knobs this module exposes for environment-driven
// configuration (loaded by cmd/pilot via mstoykov/envconfig; pilot itself
// never reads the environment directly).
type Config struct {
	// DefaultTimeout is loaded from the environment but not applied by
	// Connect or Page: every page starts with the package-level
	// DefaultTimeout constant until Page.SetDefaultTimeout changes it.
	DefaultTimeout time.Duration `envconfig:"PILOT_DEFAULT_TIMEOUT" default:"30s"`
	// EndpointDiscoveryTimeout bounds the /json/version HTTP round-trip in
	// Connect.
	EndpointDiscoveryTimeout time.Duration `envconfig:"PILOT_ENDPOINT_DISCOVERY_TIMEOUT" default:"10s"`
	// EventBufferSize is loaded from the environment but not applied:
	// every per-subscription event channel is sized by DefaultEventBufferSize.
	EventBufferSize int `envconfig:"PILOT_EVENT_BUFFER_SIZE" default:"100"`
}

// Browser owns one devtools.Connection and the BrowserContexts created or
// adopted through it. It never launches a process: see Connect.
type Browser struct {
	conn *devtools.Connection
	log  *logrus.Entry

	// ownsProcess is always false for this module: Connect only ever
	// attaches to an already-running browser (§1 Non-goals).
	ownsProcess bool

	router *targetRouter

	mu             sync.Mutex
	contexts       map[string]*BrowserContext // keyed by CDP browserContextId, "" for default
	closed         bool
}

// Connect implements `connect_over_cdp` (§6): endpoint may be an http(s) URL
// (in which case /json/version is fetched to discover webSocketDebuggerUrl)
// or a ws(s) URL used directly.
func Connect(ctx context.Context, endpoint string, opts ...ConnectOption) (*Browser, error) {
	cfg := connectConfig{
		timeout: 10 * time.Second,
		log:     logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, o := range opts {
		o(&cfg)
	}

	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, newError("Connect", KindInvalidEndpointURL, "parse %q: %v", endpoint, err)
	}

	wsURL := endpoint
	switch u.Scheme {
	case "ws", "wss":
		// Used directly.
	case "http", "https":
		wsURL, err = discoverWebSocketURL(ctx, endpoint, cfg.timeout)
		if err != nil {
			return nil, err
		}
	default:
		return nil, newError("Connect", KindInvalidEndpointURL, "unsupported scheme %q", u.Scheme)
	}

	conn, err := devtools.Dial(ctx, wsURL)
	if err != nil {
		return nil, wrapError("Connect", KindTransport, err)
	}

	b := &Browser{
		conn:     conn,
		log:      cfg.log,
		contexts: map[string]*BrowserContext{"": newBrowserContext(conn, "", true, cfg.log)},
	}
	b.router = newTargetRouter(b)
	b.router.trackContext(b.contexts[""])
	if err := b.router.start(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return b, nil
}

type connectConfig struct {
	timeout time.Duration
	log     *logrus.Entry
}

// ConnectOption configures Connect.
type ConnectOption func(*connectConfig)

// WithLogger overrides the logrus entry used for diagnostics. Defaults to
// the standard logger.
func WithLogger(log *logrus.Entry) ConnectOption {
	return func(c *connectConfig) { c.log = log }
}

// WithEndpointDiscoveryTimeout bounds the /json/version fetch used to
// resolve an http(s) endpoint.
func WithEndpointDiscoveryTimeout(d time.Duration) ConnectOption {
	return func(c *connectConfig) { c.timeout = d }
}

func discoverWebSocketURL(ctx context.Context, endpoint string, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	versionURL := strings.TrimRight(endpoint, "/") + "/json/version"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, versionURL, nil)
	if err != nil {
		return "", newError("Connect", KindEndpointDiscoveryFailed, "%v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", newError("Connect", KindEndpointDiscoveryFailed, "GET %s: %v", versionURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", newError("Connect", KindEndpointDiscoveryFailed, "GET %s: status %s", versionURL, resp.Status)
	}
	var payload struct {
		WebSocketDebuggerURL string `json:"webSocketDebuggerUrl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", newError("Connect", KindEndpointDiscoveryFailed, "decode %s: %v", versionURL, err)
	}
	if payload.WebSocketDebuggerURL == "" {
		return "", newError("Connect", KindEndpointDiscoveryFailed, "%s: empty webSocketDebuggerUrl", versionURL)
	}
	return payload.WebSocketDebuggerURL, nil
}

// Contexts returns every BrowserContext currently tracked, in no particular
// order, including the default context.
func (b *Browser) Contexts() []*BrowserContext {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*BrowserContext, 0, len(b.contexts))
	for _, c := range b.contexts {
		out = append(out, c)
	}
	return out
}

// DefaultContext returns the context that owns pages that exist before any
// call to NewContext (the "" browserContextId).
func (b *Browser) DefaultContext() *BrowserContext {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.contexts[""]
}

// NewContext creates an isolated BrowserContext via Target.createBrowserContext.
func (b *Browser) NewContext(ctx context.Context, opts ...ContextOption) (*BrowserContext, error) {
	cmd := target.NewCreateBrowserContext().SetDisposeOnDetach(true)
	sessionCtx := devtools.WithSession(ctx, b.conn, "")
	res, err := cmd.Do(sessionCtx)
	if err != nil {
		return nil, wrapError("Browser.NewContext", KindProtocol, err)
	}

	bc := newBrowserContext(b.conn, res.BrowserContextID, true, b.log)
	for _, o := range opts {
		o(&bc.options)
	}

	b.mu.Lock()
	b.contexts[res.BrowserContextID] = bc
	b.mu.Unlock()

	b.router.trackContext(bc)

	if len(bc.options.Permissions) > 0 {
		if err := bc.GrantPermissions(ctx, bc.options.Permissions...); err != nil {
			bc.log.WithError(err).Warn("pilot: failed to grant permissions from context options")
		}
	}
	return bc, nil
}

// contextFor returns the BrowserContext for a given CDP browserContextId,
// creating a tracking (non-owned) entry the first time an externally
// created context is observed (e.g. a pre-existing context on an adopted
// browser).
func (b *Browser) contextFor(id string) *BrowserContext {
	b.mu.Lock()
	defer b.mu.Unlock()
	if bc, ok := b.contexts[id]; ok {
		return bc
	}
	bc := newBrowserContext(b.conn, id, false, b.log)
	b.contexts[id] = bc
	return bc
}

// Close disconnects from the browser. Because ownsProcess is always false
// for this module (no launch support), Close never terminates the browser
// process itself - it only tears down the local Connection and every
// subscriber on it.
func (b *Browser) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	b.mu.Unlock()
	return b.conn.Close()
}

func (b *Browser) String() string {
	return fmt.Sprintf("pilot.Browser{contexts=%d}", len(b.Contexts()))
}
