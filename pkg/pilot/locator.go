package pilot

import (
	"context"
	"encoding/json"
	"fmt"
)

// locatorMode selects which of a locator's matches resolve/probe operate on.
type locatorMode int

const (
	modeStrict locatorMode = iota // exactly one match required
	modeNth                       // the i'th match
	modeLast                      // the last match
)

// sourceKind is the matching strategy a Locator was built with.
type sourceKind int

const (
	sourceCSS sourceKind = iota
	sourceText
	sourceRole
	sourceLabel
	sourcePlaceholder
	sourceRef // resolved via DOM.resolveNode(backendNodeId), not a JS query
)

// locatorSource is the base query a Locator evaluates before any Filter is
// applied: a CSS selector, one of the semantic finders (role/label/
// placeholder/text) that approximate Playwright's accessible-name matching
// with a small DOM heuristic rather than a full ARIA implementation, or a
// direct backend-node-id reference produced by an aria snapshot's ref field.
type locatorSource struct {
	kind      sourceKind
	selector  string // CSS selector (sourceCSS), role name (sourceRole)
	text      string // match text (sourceText/sourceLabel/sourcePlaceholder), or accessible-name filter (sourceRole)
	exact     bool   // exact equality vs substring containment
	backendID int64  // sourceRef
	refErr    error  // set if the ref string LocatorFromRef was given couldn't be parsed
}

// locatorFilter narrows a locator's matches the way Locator.Filter's options
// do: by the element's own text, or by whether a descendant does/doesn't
// match a nested Locator.
type locatorFilter struct {
	hasText    string
	hasNotText string
	has        *Locator
	hasNot     *Locator
}

// Locator is a lazy, re-resolved reference to zero or more DOM elements
// matching a query within frame (§7). It never caches a node handle across
// actions - every Click/Fill/etc. re-queries the DOM, which is what makes a
// Locator survive a framework re-render between "wait" and "act" the way a
// one-shot element handle cannot.
type Locator struct {
	frame  *Frame
	parent *Locator // non-nil when built via Locator.Locator or a Filter's has/hasNot

	source  locatorSource
	filters []locatorFilter

	mode locatorMode
	nth  int

	force bool // bypass actionability checks entirely
}

func newLocator(f *Frame, source locatorSource) *Locator {
	return &Locator{frame: f, source: source}
}

func (l *Locator) clone() *Locator {
	c := *l
	c.filters = append([]locatorFilter{}, l.filters...)
	return &c
}

// Locator returns a Locator for elements in the page's main frame matching
// selector, a plain CSS selector.
func (p *Page) Locator(selector string) *Locator {
	return p.MainFrame().Locator(selector)
}

// Locator returns a Locator scoped to this frame, matching selector.
func (f *Frame) Locator(selector string) *Locator {
	return newLocator(f, locatorSource{kind: sourceCSS, selector: selector})
}

// GetByTestID returns a Locator matching the page's configured test-id
// attribute (default "data-testid").
func (p *Page) GetByTestID(id string) *Locator { return p.MainFrame().GetByTestID(id) }

// GetByTestID returns a Locator scoped to this frame, matching the page's
// configured test-id attribute.
func (f *Frame) GetByTestID(id string) *Locator {
	attr := f.page.testIDAttr()
	return f.Locator(fmt.Sprintf("[%s=%s]", attr, cssQuoted(id)))
}

// GetByText returns a Locator matching elements whose trimmed text content
// equals text exactly. Pass WithSubstring to match a substring instead.
func (p *Page) GetByText(text string, opts ...TextOption) *Locator {
	return p.MainFrame().GetByText(text, opts...)
}

// GetByText is GetByText scoped to this frame.
func (f *Frame) GetByText(text string, opts ...TextOption) *Locator {
	o := textOptions{exact: true}
	for _, opt := range opts {
		opt(&o)
	}
	return newLocator(f, locatorSource{kind: sourceText, text: text, exact: o.exact})
}

// GetByLabel returns a Locator matching the form control associated with a
// <label> whose text matches text: via the label's "for" attribute, or a
// control nested inside the label element itself.
func (p *Page) GetByLabel(text string, opts ...TextOption) *Locator {
	return p.MainFrame().GetByLabel(text, opts...)
}

// GetByLabel is GetByLabel scoped to this frame.
func (f *Frame) GetByLabel(text string, opts ...TextOption) *Locator {
	o := textOptions{exact: false}
	for _, opt := range opts {
		opt(&o)
	}
	return newLocator(f, locatorSource{kind: sourceLabel, text: text, exact: o.exact})
}

// GetByPlaceholder returns a Locator matching elements whose "placeholder"
// attribute matches text.
func (p *Page) GetByPlaceholder(text string, opts ...TextOption) *Locator {
	return p.MainFrame().GetByPlaceholder(text, opts...)
}

// GetByPlaceholder is GetByPlaceholder scoped to this frame.
func (f *Frame) GetByPlaceholder(text string, opts ...TextOption) *Locator {
	o := textOptions{exact: false}
	for _, opt := range opts {
		opt(&o)
	}
	return newLocator(f, locatorSource{kind: sourcePlaceholder, text: text, exact: o.exact})
}

// GetByRole returns a Locator matching elements whose explicit or implicit
// ARIA role equals role (e.g. "button", "link", "textbox", "checkbox"). This
// implements a small tag/type-to-role mapping covering common HTML, not the
// full ARIA role computation the accessibility tree (AriaSnapshot) uses.
func (p *Page) GetByRole(role string, opts ...GetByRoleOption) *Locator {
	return p.MainFrame().GetByRole(role, opts...)
}

// GetByRole is GetByRole scoped to this frame.
func (f *Frame) GetByRole(role string, opts ...GetByRoleOption) *Locator {
	o := getByRoleOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	return newLocator(f, locatorSource{kind: sourceRole, selector: role, text: o.name, exact: o.exact})
}

// TextOption configures a text-matching Locator constructor (GetByText,
// GetByLabel, GetByPlaceholder).
type TextOption func(*textOptions)

type textOptions struct{ exact bool }

// WithExactText requires an exact (trimmed) match instead of the
// constructor's default.
func WithExactText() TextOption { return func(o *textOptions) { o.exact = true } }

// WithSubstring relaxes the match to substring containment instead of the
// constructor's default.
func WithSubstring() TextOption { return func(o *textOptions) { o.exact = false } }

// GetByRoleOption configures GetByRole.
type GetByRoleOption func(*getByRoleOptions)

type getByRoleOptions struct {
	name  string
	exact bool
}

// WithName further restricts GetByRole to elements whose accessible name
// (aria-label, or trimmed text content) matches name.
func WithName(name string) GetByRoleOption {
	return func(o *getByRoleOptions) { o.name = name }
}

// WithExactName requires WithName's match to be exact rather than substring.
func WithExactName() GetByRoleOption {
	return func(o *getByRoleOptions) { o.exact = true }
}

// Locator scopes a new CSS query within the elements this locator matches -
// chaining (§4.4): the child locator is re-resolved against the parent's
// current single match every time it is used, just as a root locator is
// re-resolved against the document.
func (l *Locator) Locator(selector string) *Locator {
	child := newLocator(l.frame, locatorSource{kind: sourceCSS, selector: selector})
	child.parent = l
	return child
}

// FilterOption narrows a Locator's matches via Locator.Filter.
type FilterOption func(*locatorFilter)

// WithHasText keeps only matches whose textContent contains text.
func WithHasText(text string) FilterOption {
	return func(f *locatorFilter) { f.hasText = text }
}

// WithHasNotText keeps only matches whose textContent does not contain text.
func WithHasNotText(text string) FilterOption {
	return func(f *locatorFilter) { f.hasNotText = text }
}

// WithHas keeps only matches with a descendant satisfying inner.
func WithHas(inner *Locator) FilterOption {
	return func(f *locatorFilter) { f.has = inner }
}

// WithHasNot keeps only matches with no descendant satisfying inner.
func WithHasNot(inner *Locator) FilterOption {
	return func(f *locatorFilter) { f.hasNot = inner }
}

// Filter returns a Locator narrowed to the subset of this locator's matches
// satisfying every opt (§4.4 step 2: has/has_not/has_text/has_not_text).
func (l *Locator) Filter(opts ...FilterOption) *Locator {
	c := l.clone()
	var f locatorFilter
	for _, opt := range opts {
		opt(&f)
	}
	c.filters = append(c.filters, f)
	return c
}

// Nth returns a Locator for the i'th (0-based) match.
func (l *Locator) Nth(i int) *Locator {
	c := l.clone()
	c.mode = modeNth
	c.nth = i
	return c
}

// First is equivalent to Nth(0).
func (l *Locator) First() *Locator { return l.Nth(0) }

// Last returns a Locator for the final match.
func (l *Locator) Last() *Locator {
	c := l.clone()
	c.mode = modeLast
	return c
}

// Force returns a Locator whose actions bypass every actionability check
// (attached/visible/stable/enabled/hit-testable) and proceed immediately -
// the §8 "force=true" escape hatch for overlay/actionability edge cases.
func (l *Locator) Force() *Locator {
	c := l.clone()
	c.force = true
	return c
}

func cssQuoted(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func textMatchExpr(valueExpr, match string, exact bool) string {
	if exact {
		return fmt.Sprintf(`(%s || "").trim() === %s`, valueExpr, cssQuoted(match))
	}
	return fmt.Sprintf(`(%s || "").includes(%s)`, valueExpr, cssQuoted(match))
}

// roleOfExpr is a JS expression (element bound to `e`) approximating an
// element's explicit-or-implicit ARIA role via a small tag/type mapping. It
// is deliberately simpler than the real accessibility tree AriaSnapshot
// renders; GetByRole only needs it to be good enough to find common controls.
const roleOfExpr = `(function(e){
	const explicit = e.getAttribute("role");
	if (explicit) return explicit;
	const tag = e.tagName.toLowerCase();
	if (tag === "input") {
		const typeMap = {checkbox:"checkbox", radio:"radio", button:"button", submit:"button", search:"searchbox"};
		return typeMap[(e.getAttribute("type")||"text").toLowerCase()] || "textbox";
	}
	if (tag === "select") return "combobox";
	if (tag === "textarea") return "textbox";
	if (tag === "a") return e.hasAttribute("href") ? "link" : "generic";
	const map = {button:"button", h1:"heading", h2:"heading", h3:"heading", h4:"heading", h5:"heading", h6:"heading", img:"img", ul:"list", ol:"list", li:"listitem", table:"table", nav:"navigation", form:"form"};
	return map[tag] || "generic";
})(e)`

// accessibleNameExpr is a JS expression (element bound to `e`) approximating
// an element's accessible name: aria-label if set, else trimmed text content.
const accessibleNameExpr = `(e.getAttribute("aria-label") || e.textContent || "").trim()`

// candidatesExpr returns a JS expression evaluating, within scope (a JS
// expression for the root element to search - "document" or a parent
// locator's resolved element), to the array of elements this source matches,
// before any Filter is applied.
func (s locatorSource) candidatesExpr(scope string) string {
	switch s.kind {
	case sourceCSS:
		return fmt.Sprintf(`Array.from((%s).querySelectorAll(%s))`, scope, cssQuoted(s.selector))
	case sourceText:
		return fmt.Sprintf(`Array.from((%s).querySelectorAll("*")).filter(e => %s)`,
			scope, textMatchExpr("e.textContent", s.text, s.exact))
	case sourceRole:
		cond := fmt.Sprintf("%s === %s", roleOfExpr, cssQuoted(s.selector))
		if s.text != "" {
			cond += " && " + textMatchExpr(accessibleNameExpr, s.text, s.exact)
		}
		return fmt.Sprintf(`Array.from((%s).querySelectorAll("*")).filter(e => %s)`, scope, cond)
	case sourceLabel:
		return fmt.Sprintf(`Array.from((%s).querySelectorAll("label")).filter(l => %s).flatMap(l => {
			const forId = l.getAttribute("for");
			if (forId) { const el = document.getElementById(forId); return el ? [el] : []; }
			return Array.from(l.querySelectorAll("input,select,textarea"));
		})`, scope, textMatchExpr("l.textContent", s.text, s.exact))
	case sourcePlaceholder:
		return fmt.Sprintf(`Array.from((%s).querySelectorAll("[placeholder]")).filter(e => %s)`,
			scope, textMatchExpr(`e.getAttribute("placeholder")`, s.text, s.exact))
	default:
		return `[]`
	}
}

func (f locatorFilter) apply(expr string) string {
	switch {
	case f.hasText != "":
		return fmt.Sprintf(`(%s).filter(e => %s)`, expr, textMatchExpr("e.textContent", f.hasText, false))
	case f.hasNotText != "":
		return fmt.Sprintf(`(%s).filter(e => !(%s))`, expr, textMatchExpr("e.textContent", f.hasNotText, false))
	case f.has != nil:
		return fmt.Sprintf(`(%s).filter(e => (%s).length > 0)`, expr, f.has.fullCandidatesExpr("e"))
	case f.hasNot != nil:
		return fmt.Sprintf(`(%s).filter(e => (%s).length === 0)`, expr, f.hasNot.fullCandidatesExpr("e"))
	default:
		return expr
	}
}

// fullCandidatesExpr returns the JS expression (array) of every element this
// locator's source and filters match within scope, ignoring Nth/Last/First -
// used both for the locator's own query and as a nested existence check
// inside a parent's Filter(WithHas/WithHasNot).
func (l *Locator) fullCandidatesExpr(scope string) string {
	expr := l.source.candidatesExpr(scope)
	for _, f := range l.filters {
		expr = f.apply(expr)
	}
	return expr
}

// scopeExpr returns the JS expression for the root element this locator's
// own query runs against: "document" for a page/frame-rooted locator, or the
// parent locator's single resolved element for a chained one.
func (l *Locator) scopeExpr() string {
	if l.parent == nil {
		return "document"
	}
	return l.parent.resolveSingleExpr()
}

// resolveSingleExpr returns a JS expression evaluating to this locator's
// single matched element, throwing if it matches zero or more than one.
func (l *Locator) resolveSingleExpr() string {
	return fmt.Sprintf(
		`(function(){ const m = %s; if (m.length !== 1) throw new Error("locator matched " + m.length + " elements, expected exactly 1"); return m[0]; })()`,
		l.candidatesExpr(),
	)
}

// candidatesExpr returns the JS expression (array) for every element this
// locator currently matches, scoped and filtered but before index selection.
func (l *Locator) candidatesExpr() string {
	return l.fullCandidatesExpr(l.scopeExpr())
}

// describe is used by error messages; it never executes JS.
func (l *Locator) describe() string {
	switch l.source.kind {
	case sourceCSS:
		return l.source.selector
	case sourceText:
		return fmt.Sprintf("text=%s", l.source.text)
	case sourceRole:
		return fmt.Sprintf("role=%s", l.source.selector)
	case sourceLabel:
		return fmt.Sprintf("label=%s", l.source.text)
	case sourcePlaceholder:
		return fmt.Sprintf("placeholder=%s", l.source.text)
	case sourceRef:
		return fmt.Sprintf("ref=e%d", l.source.backendID)
	default:
		return "locator"
	}
}

// Count returns the number of elements currently matching the locator
// (ignoring First/Last/Nth - always the full candidate set).
func (l *Locator) Count(ctx context.Context) (int, error) {
	if l.source.kind == sourceRef {
		if _, err := l.resolveRef(ctx); err != nil {
			return 0, nil
		}
		return 1, nil
	}
	var n int
	expr := fmt.Sprintf("(%s).length", l.candidatesExpr())
	if err := l.frame.Evaluate(ctx, expr, &n); err != nil {
		return 0, err
	}
	return n, nil
}

// resolveRef resolves a sourceRef locator directly through DOM.resolveNode,
// bypassing the JS-query machinery entirely - ref locators identify a
// specific backend node, not a query result.
func (l *Locator) resolveRef(ctx context.Context) (*nodeRef, error) {
	if l.source.refErr != nil {
		return nil, wrapError("Locator.resolve", KindStale, l.source.refErr)
	}
	return l.frame.resolveBackendNode(ctx, l.source.backendID)
}

// resolve evaluates the locator's query and returns a handle to the matched
// element selected by its mode (KindLocatorAmbiguity in strict mode if not
// exactly one element matched).
func (l *Locator) resolve(ctx context.Context) (*nodeRef, error) {
	if l.source.kind == sourceRef {
		return l.resolveRef(ctx)
	}
	var expr string
	switch l.mode {
	case modeNth:
		expr = fmt.Sprintf(`(%s)[%d]`, l.candidatesExpr(), l.nth)
	case modeLast:
		expr = fmt.Sprintf(`(function(){ const m = %s; return m[m.length-1]; })()`, l.candidatesExpr())
	default:
		expr = l.resolveSingleExpr()
	}
	ref, err := l.frame.evaluateHandle(ctx, expr)
	if err != nil {
		if l.mode == modeStrict {
			return nil, wrapError("Locator.resolve", KindLocatorAmbiguity, err)
		}
		return nil, wrapError("Locator.resolve", KindStale, err)
	}
	return ref, nil
}

// WaitFor blocks until the locator matches at least one attached element,
// or ctx's deadline elapses.
func (l *Locator) WaitFor(ctx context.Context) error {
	ctx, cancel := l.frame.page.withDefaultTimeout(ctx)
	defer cancel()
	_, err := l.pollUntilActionable(ctx, "Locator.WaitFor", func(s *actionabilityState) bool {
		return s.attached
	})
	return err
}

// TextContent returns the element's textContent.
func (l *Locator) TextContent(ctx context.Context) (string, error) {
	ref, err := l.resolve(ctx)
	if err != nil {
		return "", err
	}
	var out string
	if err := ref.call(ctx, `function(){ return this.textContent; }`, &out); err != nil {
		return "", err
	}
	return out, nil
}

// GetAttribute returns the named attribute's value, and whether it is set.
func (l *Locator) GetAttribute(ctx context.Context, name string) (string, bool, error) {
	ref, err := l.resolve(ctx)
	if err != nil {
		return "", false, err
	}
	var out *string
	script := fmt.Sprintf(`function(){ return this.getAttribute(%s); }`, cssQuoted(name))
	if err := ref.call(ctx, script, &out); err != nil {
		return "", false, err
	}
	if out == nil {
		return "", false, nil
	}
	return *out, true, nil
}

// IsVisible reports whether the locator currently matches a visible
// element, without waiting or erroring if it matches nothing.
func (l *Locator) IsVisible(ctx context.Context) (bool, error) {
	_, state, err := l.probe(ctx)
	if err != nil {
		return false, err
	}
	return state.visible, nil
}

// InputValue returns a form control's current value.
func (l *Locator) InputValue(ctx context.Context) (string, error) {
	ref, err := l.resolve(ctx)
	if err != nil {
		return "", err
	}
	var out string
	if err := ref.call(ctx, `function(){ return this.value; }`, &out); err != nil {
		return "", err
	}
	return out, nil
}
