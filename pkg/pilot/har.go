package pilot

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/corvane/pilot/internal/devtools"
	"github.com/corvane/pilot/internal/devtools/network"
)

// HARLog is the root of a HAR 1.2 document
// (http://www.softwareishard.com/blog/har-12-spec/). Assembling one in
// memory is in scope; writing it to disk is left to the caller (Non-goals).
type HARLog struct {
	Version string      `json:"version"`
	Creator HARCreator  `json:"creator"`
	Pages   []HARPage   `json:"pages,omitempty"`
	Entries []HAREntry  `json:"entries"`
}

// HARCreator identifies the tool that produced the log.
type HARCreator struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// HARPage is one recorded page (§1.2's "pages" array).
type HARPage struct {
	StartedDateTime string        `json:"startedDateTime"`
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	PageTimings     HARPageTiming `json:"pageTimings"`
}

// HARPageTiming is left at -1 (not available) since pilot does not
// correlate individual Page.lifecycleEvent timestamps into the log.
type HARPageTiming struct {
	OnContentLoad float64 `json:"onContentLoad"`
	OnLoad        float64 `json:"onLoad"`
}

// HARNameValuePair is a HAR header/query-string/cookie entry.
type HARNameValuePair struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// HARContent describes a response body. Pilot populates Size and MimeType;
// Text is left empty since body capture is not wired into the recorder.
type HARContent struct {
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType"`
	Text     string `json:"text,omitempty"`
}

// HARRequest is one entry's request side.
type HARRequest struct {
	Method      string             `json:"method"`
	URL         string             `json:"url"`
	HTTPVersion string             `json:"httpVersion"`
	Headers     []HARNameValuePair `json:"headers"`
	QueryString []HARNameValuePair `json:"queryString"`
	HeadersSize int64              `json:"headersSize"`
	BodySize    int64              `json:"bodySize"`
}

// HARResponse is one entry's response side.
type HARResponse struct {
	Status      int64              `json:"status"`
	StatusText  string             `json:"statusText"`
	HTTPVersion string             `json:"httpVersion"`
	Headers     []HARNameValuePair `json:"headers"`
	Content     HARContent         `json:"content"`
	RedirectURL string             `json:"redirectURL"`
	HeadersSize int64              `json:"headersSize"`
	BodySize    int64              `json:"bodySize"`
}

// HARTimings breaks an entry's total time into phases. -1 marks a phase
// that did not occur, per the HAR spec.
type HARTimings struct {
	Blocked float64 `json:"blocked"`
	DNS     float64 `json:"dns"`
	Connect float64 `json:"connect"`
	Ssl     float64 `json:"ssl"`
	Send    float64 `json:"send"`
	Wait    float64 `json:"wait"`
	Receive float64 `json:"receive"`
}

// HAREntry is one request/response pair.
type HAREntry struct {
	Pageref         string      `json:"pageref,omitempty"`
	StartedDateTime string      `json:"startedDateTime"`
	Time            float64     `json:"time"`
	Request         HARRequest  `json:"request"`
	Response        HARResponse `json:"response"`
	Timings         HARTimings  `json:"timings"`
}

// pendingNetworkRequest holds the request side of a Network.requestWillBeSent
// event awaiting its loadingFinished/loadingFailed counterpart, keyed by
// CDP's requestId (§4.5/§9's HAR recorder is grounded on the same
// request/response correlation shape as a conventional CDP HAR capturer).
type pendingNetworkRequest struct {
	method   string
	url      string
	headers  network.Headers
	wallTime float64
	pageRef  string
}

// HARRecorder accumulates Network domain events into HAR 1.2 entries for
// every page of the BrowserContext that started it.
type HARRecorder struct {
	mu      sync.Mutex
	pending map[string]pendingNetworkRequest
	entries []HAREntry
	pages   []HARPage
	cancels []func()
}

func newHARRecorder() *HARRecorder {
	return &HARRecorder{pending: make(map[string]pendingNetworkRequest)}
}

// StartHAR begins recording Network events for every page currently open in
// c, and for every page attached afterwards, until Stop is called. Only one
// recorder runs per context at a time; starting a new one replaces the old.
func (c *BrowserContext) StartHAR() *HARRecorder {
	rec := newHARRecorder()
	c.harMu.Lock()
	old := c.harRecorder
	c.harRecorder = rec
	c.harMu.Unlock()
	if old != nil {
		old.Stop()
	}
	for _, p := range c.Pages() {
		rec.attach(p)
	}
	return rec
}

func (c *BrowserContext) activeHARRecorder() *HARRecorder {
	c.harMu.Lock()
	defer c.harMu.Unlock()
	return c.harRecorder
}

// Stop ends recording. Entries already recorded remain available via HAR.
func (r *HARRecorder) Stop() {
	r.mu.Lock()
	cancels := r.cancels
	r.cancels = nil
	r.mu.Unlock()
	for _, cancel := range cancels {
		cancel()
	}
}

// HAR assembles the entries recorded so far into a HAR 1.2 log.
func (r *HARRecorder) HAR() HARLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	entries := make([]HAREntry, len(r.entries))
	copy(entries, r.entries)
	pages := make([]HARPage, len(r.pages))
	copy(pages, r.pages)
	return HARLog{
		Version: "1.2",
		Creator: HARCreator{Name: "pilot", Version: "0.1.0"},
		Pages:   pages,
		Entries: entries,
	}
}

func (r *HARRecorder) attach(p *Page) {
	sessionCtx := p.ctx(p.runCtx)

	pageRef := uuid.NewString()
	r.mu.Lock()
	r.pages = append(r.pages, HARPage{
		StartedDateTime: time.Now().UTC().Format(time.RFC3339Nano),
		ID:              pageRef,
		Title:           p.URL(),
		PageTimings:     HARPageTiming{OnContentLoad: -1, OnLoad: -1},
	})
	r.mu.Unlock()

	reqCh, unsubReq, err := devtools.SubscribeEvent(sessionCtx, "Network.requestWillBeSent")
	if err != nil {
		return
	}
	respCh, unsubResp, err := devtools.SubscribeEvent(sessionCtx, "Network.responseReceived")
	if err != nil {
		unsubReq()
		return
	}
	finCh, unsubFin, err := devtools.SubscribeEvent(sessionCtx, "Network.loadingFinished")
	if err != nil {
		unsubReq()
		unsubResp()
		return
	}
	failCh, unsubFail, err := devtools.SubscribeEvent(sessionCtx, "Network.loadingFailed")
	if err != nil {
		unsubReq()
		unsubResp()
		unsubFin()
		return
	}

	r.mu.Lock()
	r.cancels = append(r.cancels, unsubReq, unsubResp, unsubFin, unsubFail)
	r.mu.Unlock()

	go r.recordLoop(p.runCtx, pageRef, reqCh, respCh, finCh, failCh)
}

func (r *HARRecorder) recordLoop(ctx context.Context, pageRef string, reqCh, respCh, finCh, failCh <-chan *devtools.Message) {
	responses := make(map[string]network.Response)
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-reqCh:
			if !ok {
				return
			}
			var ev network.RequestWillBeSent
			if json.Unmarshal(m.Params, &ev) != nil {
				continue
			}
			r.mu.Lock()
			r.pending[ev.RequestID] = pendingNetworkRequest{
				method:   ev.Request.Method,
				url:      ev.Request.URL,
				headers:  ev.Request.Headers,
				wallTime: ev.WallTime,
				pageRef:  pageRef,
			}
			r.mu.Unlock()
		case m, ok := <-respCh:
			if !ok {
				return
			}
			var ev network.ResponseReceived
			if json.Unmarshal(m.Params, &ev) == nil {
				responses[ev.RequestID] = ev.Response
			}
		case m, ok := <-finCh:
			if !ok {
				return
			}
			var ev network.LoadingFinished
			if json.Unmarshal(m.Params, &ev) == nil {
				r.complete(ev.RequestID, responses[ev.RequestID])
				delete(responses, ev.RequestID)
			}
		case m, ok := <-failCh:
			if !ok {
				return
			}
			var ev network.LoadingFailed
			if json.Unmarshal(m.Params, &ev) == nil {
				r.completeFailed(ev.RequestID, ev.ErrorText)
				delete(responses, ev.RequestID)
			}
		}
	}
}

func (r *HARRecorder) complete(requestID string, resp network.Response) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.pending[requestID]
	if !ok {
		return
	}
	delete(r.pending, requestID)
	r.entries = append(r.entries, buildHAREntry(req, resp))
}

func (r *HARRecorder) completeFailed(requestID, errorText string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req, ok := r.pending[requestID]
	if !ok {
		return
	}
	delete(r.pending, requestID)
	entry := buildHAREntry(req, network.Response{})
	entry.Response.StatusText = errorText
	r.entries = append(r.entries, entry)
}

func buildHAREntry(req pendingNetworkRequest, resp network.Response) HAREntry {
	timings := buildHARTimings(resp.Timing)
	entry := HAREntry{
		Pageref:         req.pageRef,
		StartedDateTime: time.Unix(int64(req.wallTime), 0).UTC().Format(time.RFC3339Nano),
		Request: HARRequest{
			Method:      req.method,
			URL:         req.url,
			HTTPVersion: resp.Protocol,
			Headers:     headersToHAR(req.headers),
			QueryString: []HARNameValuePair{},
			HeadersSize: -1,
			BodySize:    -1,
		},
		Response: HARResponse{
			Status:      resp.Status,
			StatusText:  resp.StatusText,
			HTTPVersion: resp.Protocol,
			Headers:     headersToHAR(resp.Headers),
			Content: HARContent{
				MimeType: resp.MimeType,
				Size:     int64(resp.EncodedDataLength),
			},
			RedirectURL: redirectURL(resp.Headers),
			HeadersSize: -1,
			BodySize:    -1,
		},
		Timings: timings,
	}
	entry.Time = totalHARTime(timings)
	return entry
}

func buildHARTimings(t *network.ResourceTiming) HARTimings {
	if t == nil {
		return HARTimings{Blocked: -1, DNS: -1, Connect: -1, Ssl: -1, Send: -1, Wait: -1, Receive: -1}
	}
	wait := float64(-1)
	if t.SendEnd >= 0 && t.ReceiveHeadersEnd >= 0 {
		wait = t.ReceiveHeadersEnd - t.SendEnd
	}
	return HARTimings{
		Blocked: -1,
		DNS:     harPhase(t.DNSStart, t.DNSEnd),
		Connect: harPhase(t.ConnectStart, t.ConnectEnd),
		Ssl:     harPhase(t.SslStart, t.SslEnd),
		Send:    harPhase(t.SendStart, t.SendEnd),
		Wait:    wait,
		Receive: -1,
	}
}

func harPhase(start, end float64) float64 {
	if start < 0 || end < 0 {
		return -1
	}
	return end - start
}

func totalHARTime(t HARTimings) float64 {
	total := float64(0)
	for _, v := range []float64{t.Blocked, t.DNS, t.Connect, t.Ssl, t.Send, t.Wait, t.Receive} {
		if v > 0 {
			total += v
		}
	}
	return total
}

func redirectURL(headers network.Headers) string {
	for k, v := range headers {
		if strings.EqualFold(k, "Location") {
			return fmt.Sprint(v)
		}
	}
	return ""
}

func headersToHAR(headers network.Headers) []HARNameValuePair {
	pairs := make([]HARNameValuePair, 0, len(headers))
	for name, value := range headers {
		pairs = append(pairs, HARNameValuePair{Name: name, Value: fmt.Sprint(value)})
	}
	return pairs
}
