package pilot

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/corvane/pilot/internal/devtools"
	"github.com/corvane/pilot/internal/devtools/fetch"
	"github.com/corvane/pilot/internal/devtools/network"
)

// routeMatcher reports whether a request URL should be handed to its
// registeredRoute.
type routeMatcher func(url string) bool

// registeredRoute pairs a matcher with the handler it feeds (§4.5 Route
// entity). Page-level routes are tried before context-level ones, and
// within each list the most recently registered route is tried first.
type registeredRoute struct {
	matcher routeMatcher
	handler RouteHandler
}

// RouteHandler is invoked once per intercepted request whose URL matches
// its pattern. It must call exactly one of Route.Fulfill, Route.Abort,
// Route.Continue, Route.Fetch (followed by a terminal call), or
// Route.Fallback.
type RouteHandler func(ctx context.Context, route *Route) error

// globMatcher builds a routeMatcher from a glob: "**" matches any run of
// characters, "*" matches any run within one path segment, "?" matches
// exactly one character.
func globMatcher(glob string) routeMatcher {
	re := globToRegexp(glob)
	return func(url string) bool { return re.MatchString(url) }
}

func globToRegexp(glob string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString("^")
	for i := 0; i < len(glob); i++ {
		switch c := glob[i]; {
		case c == '*' && i+1 < len(glob) && glob[i+1] == '*':
			b.WriteString(".*")
			i++
		case c == '*':
			b.WriteString("[^/]*")
		case c == '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	b.WriteString("$")
	return regexp.MustCompile(b.String())
}

func regexMatcher(re *regexp.Regexp) routeMatcher {
	return func(url string) bool { return re.MatchString(url) }
}

// Route is a single intercepted request handed to the most recently
// registered matching RouteHandler.
type Route struct {
	page         *Page
	requestID    string
	request      network.Request
	resourceType string
	fellBack     bool
}

// Request returns the intercepted request's CDP details.
func (r *Route) Request() network.Request { return r.request }

// ResourceType reports the resource type CDP classified the request as
// ("Document", "XHR", "Image", ...).
func (r *Route) ResourceType() string { return r.resourceType }

func headerEntries(h map[string]string) []fetch.HeaderEntry {
	out := make([]fetch.HeaderEntry, 0, len(h))
	for k, v := range h {
		out = append(out, fetch.HeaderEntry{Name: k, Value: v})
	}
	return out
}

// Fulfill synthesizes a response without contacting the network.
func (r *Route) Fulfill(ctx context.Context, status int64, headers map[string]string, body []byte) error {
	sessionCtx := r.page.ctx(ctx)
	cmd := fetch.NewFulfillRequest(r.requestID, status).
		SetResponseHeaders(headerEntries(headers)).
		SetBody(base64.StdEncoding.EncodeToString(body))
	if err := cmd.Do(sessionCtx); err != nil {
		return wrapError("Route.Fulfill", KindProtocol, err)
	}
	return nil
}

// Abort fails the request with reason (network.ErrorReasonFailed if empty).
func (r *Route) Abort(ctx context.Context, reason network.ErrorReason) error {
	if reason == "" {
		reason = network.ErrorReasonFailed
	}
	sessionCtx := r.page.ctx(ctx)
	if err := fetch.NewFailRequest(r.requestID, reason).Do(sessionCtx); err != nil {
		return wrapError("Route.Abort", KindProtocol, err)
	}
	return nil
}

// ContinueOverrides optionally rewrites the outgoing request before it
// reaches the network.
type ContinueOverrides struct {
	URL      string
	Method   string
	PostData string
	Headers  map[string]string
}

// Continue lets the request proceed, applying overrides if given.
func (r *Route) Continue(ctx context.Context, overrides *ContinueOverrides) error {
	sessionCtx := r.page.ctx(ctx)
	cmd := fetch.NewContinueRequest(r.requestID)
	if overrides != nil {
		if overrides.URL != "" {
			cmd.SetURL(overrides.URL)
		}
		if overrides.Method != "" {
			cmd.SetMethod(overrides.Method)
		}
		if overrides.PostData != "" {
			cmd.SetPostData(base64.StdEncoding.EncodeToString([]byte(overrides.PostData)))
		}
		if overrides.Headers != nil {
			cmd.SetHeaders(headerEntries(overrides.Headers))
		}
	}
	if err := cmd.Do(sessionCtx); err != nil {
		return wrapError("Route.Continue", KindProtocol, err)
	}
	return nil
}

// Fallback declines to handle the request; the next matching handler (or,
// if none remain, the network) takes over.
func (r *Route) Fallback() error {
	r.fellBack = true
	return nil
}

// FetchedResponse is the network's real response to a request, handed
// back by Route.Fetch for a handler that wants to inspect it before
// deciding how to respond.
type FetchedResponse struct {
	Status  int64
	Headers map[string]string
	Body    []byte
}

// Fetch lets the request proceed to the network and returns the real
// response for inspection. The caller is still expected to terminate the
// route afterwards, typically with Fulfill built from the fetched body.
func (r *Route) Fetch(ctx context.Context) (*FetchedResponse, error) {
	sessionCtx := r.page.ctx(ctx)
	ch, unsubscribe, err := devtools.SubscribeEvent(sessionCtx, "Fetch.requestPaused")
	if err != nil {
		return nil, wrapError("Route.Fetch", KindProtocol, err)
	}
	defer unsubscribe()

	if err := fetch.NewContinueRequest(r.requestID).SetInterceptResponse(true).Do(sessionCtx); err != nil {
		return nil, wrapError("Route.Fetch", KindProtocol, err)
	}

	for {
		select {
		case m, ok := <-ch:
			if !ok {
				return nil, newError("Route.Fetch", KindSessionGone, "page closed while fetching %s", r.request.URL)
			}
			var ev fetch.RequestPaused
			if json.Unmarshal(m.Params, &ev) != nil {
				continue
			}
			if ev.RequestID != r.requestID || ev.ResponseStatusCode == 0 {
				continue // not our request, or still the request stage
			}
			r.requestID = ev.RequestID
			body, err := fetch.NewGetResponseBody(r.requestID).Do(sessionCtx)
			if err != nil {
				return nil, wrapError("Route.Fetch", KindProtocol, err)
			}
			raw := []byte(body.Body)
			if body.Base64Encoded {
				if decoded, decErr := base64.StdEncoding.DecodeString(body.Body); decErr == nil {
					raw = decoded
				}
			}
			headers := make(map[string]string, len(ev.ResponseHeaders))
			for _, h := range ev.ResponseHeaders {
				headers[h.Name] = h.Value
			}
			return &FetchedResponse{Status: ev.ResponseStatusCode, Headers: headers, Body: raw}, nil
		case <-ctx.Done():
			return nil, wrapError("Route.Fetch", KindTimeout, ctx.Err())
		}
	}
}

// Route registers handler for every request whose URL matches glob. Page
// routes are tried before the owning context's routes (§4.5).
func (p *Page) Route(glob string, handler RouteHandler) {
	p.addRoute(&registeredRoute{matcher: globMatcher(glob), handler: handler})
}

// RouteRegexp is Route matching against a compiled regular expression.
func (p *Page) RouteRegexp(re *regexp.Regexp, handler RouteHandler) {
	p.addRoute(&registeredRoute{matcher: regexMatcher(re), handler: handler})
}

// RouteFunc is Route matching against an arbitrary predicate.
func (p *Page) RouteFunc(pred func(url string) bool, handler RouteHandler) {
	p.addRoute(&registeredRoute{matcher: pred, handler: handler})
}

func (p *Page) addRoute(rr *registeredRoute) {
	p.routesMu.Lock()
	p.routes = append(p.routes, rr)
	p.routesMu.Unlock()
	p.enableRouting()
}

func (p *Page) matchingRoutes(url string) []*registeredRoute {
	p.routesMu.Lock()
	defer p.routesMu.Unlock()
	var out []*registeredRoute
	for i := len(p.routes) - 1; i >= 0; i-- {
		if p.routes[i].matcher(url) {
			out = append(out, p.routes[i])
		}
	}
	return out
}

// Route registers handler for every page in the context, present and
// future, whose request URL matches glob (§4.5: context routes are the
// fallback for requests no page-level route claims).
func (c *BrowserContext) Route(glob string, handler RouteHandler) {
	c.addRoute(&registeredRoute{matcher: globMatcher(glob), handler: handler})
}

// RouteRegexp is Route matching against a compiled regular expression.
func (c *BrowserContext) RouteRegexp(re *regexp.Regexp, handler RouteHandler) {
	c.addRoute(&registeredRoute{matcher: regexMatcher(re), handler: handler})
}

func (c *BrowserContext) addRoute(rr *registeredRoute) {
	c.routesMu.Lock()
	c.routes = append(c.routes, rr)
	c.routesMu.Unlock()
	for _, p := range c.Pages() {
		p.enableRouting()
	}
}

func (c *BrowserContext) matchingRoutes(url string) []*registeredRoute {
	c.routesMu.Lock()
	defer c.routesMu.Unlock()
	var out []*registeredRoute
	for i := len(c.routes) - 1; i >= 0; i-- {
		if c.routes[i].matcher(url) {
			out = append(out, c.routes[i])
		}
	}
	return out
}

func (c *BrowserContext) hasRoutes() bool {
	c.routesMu.Lock()
	defer c.routesMu.Unlock()
	return len(c.routes) > 0
}

// enableRouting turns on Fetch domain interception for p, exactly once.
// Called the first time a route is registered on the page or its context,
// and from Page.start when the context already had routes or HTTP
// credentials at attach time.
func (p *Page) enableRouting() {
	p.routingOnce.Do(func() {
		sessionCtx := p.ctx(p.runCtx)
		if err := fetch.NewEnable().SetHandleAuthRequests(true).Do(sessionCtx); err != nil {
			p.log.WithError(err).Warn("pilot: Fetch.enable failed")
			return
		}
		pausedCh, _, err := devtools.SubscribeEvent(sessionCtx, "Fetch.requestPaused")
		if err != nil {
			p.log.WithError(err).Warn("pilot: subscribe Fetch.requestPaused failed")
			return
		}
		authCh, _, err := devtools.SubscribeEvent(sessionCtx, "Fetch.authRequired")
		if err != nil {
			p.log.WithError(err).Warn("pilot: subscribe Fetch.authRequired failed")
			return
		}
		go p.routeLoop(pausedCh, authCh)
	})
}

func (p *Page) routeLoop(pausedCh, authCh <-chan *devtools.Message) {
	for {
		select {
		case <-p.runCtx.Done():
			return
		case m, ok := <-pausedCh:
			if !ok {
				return
			}
			var ev fetch.RequestPaused
			if json.Unmarshal(m.Params, &ev) != nil {
				continue
			}
			if ev.ResponseStatusCode != 0 {
				continue // a Route.Fetch-driven response-stage pause; that call owns it
			}
			go p.dispatchRoute(ev)
		case m, ok := <-authCh:
			if !ok {
				return
			}
			var ev fetch.AuthRequired
			if json.Unmarshal(m.Params, &ev) != nil {
				continue
			}
			go p.respondAuth(ev)
		}
	}
}

// dispatchRoute tries page routes then context routes, most recently
// registered first, until one terminates the request without falling
// back. If every matching handler falls back (or none match), the
// request continues to the network unmodified. Errors along the way are
// collected and logged rather than discarded, so a misbehaving handler
// doesn't silently mask the ones tried after it.
func (p *Page) dispatchRoute(ev fetch.RequestPaused) {
	sessionCtx := p.ctx(p.runCtx)

	candidates := p.matchingRoutes(ev.Request.URL)
	candidates = append(candidates, p.bc.matchingRoutes(ev.Request.URL)...)

	route := &Route{page: p, requestID: ev.RequestID, request: ev.Request, resourceType: ev.ResourceType}

	var errs *multierror.Error
	for _, rr := range candidates {
		route.fellBack = false
		if err := rr.handler(sessionCtx, route); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("route handler: %w", err))
			continue
		}
		if !route.fellBack {
			if errs != nil {
				p.log.WithError(errs).Debug("pilot: earlier route handlers in the fallback chain errored")
			}
			return
		}
	}

	if err := fetch.NewContinueRequest(route.requestID).Do(sessionCtx); err != nil {
		errs = multierror.Append(errs, fmt.Errorf("fallthrough continue: %w", err))
	}
	if errs != nil {
		p.log.WithError(errs).Warn("pilot: route fallback trail had errors")
	}
}

func (p *Page) respondAuth(ev fetch.AuthRequired) {
	sessionCtx := p.ctx(p.runCtx)
	resp := fetch.AuthChallengeResponse{Response: "Default"}
	if creds := p.bc.options.HTTPCredentials; creds != nil {
		resp = fetch.AuthChallengeResponse{
			Response: "ProvideCredentials",
			Username: creds.Username,
			Password: creds.Password,
		}
	}
	if err := fetch.NewContinueWithAuth(ev.RequestID, resp).Do(sessionCtx); err != nil {
		p.log.WithError(err).Warn("pilot: Fetch.continueWithAuth failed")
	}
}
