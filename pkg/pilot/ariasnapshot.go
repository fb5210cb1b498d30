package pilot

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/corvane/pilot/internal/devtools/accessibility"
)

// AriaNode is one node of a rendered accessibility tree (§7's aria-snapshot
// grammar): a role, an optional accessible name, its exposed ARIA state, and
// nested children. It round-trips through YAML so snapshots can be diffed or
// asserted against a fixture the same way Locator predicates diff DOM state.
//
// Ref is "e{backendNodeId}" (invariant 6): it stays valid across DOM
// mutations that don't destroy the underlying node, since it is resolved
// through DOM.resolveNode's BackendNodeId rather than any CDP id that gets
// reassigned on reload.
type AriaNode struct {
	Role       string     `yaml:"role"`
	Name       string     `yaml:"name,omitempty"`
	Ref        string     `yaml:"ref,omitempty"`
	Value      string     `yaml:"value,omitempty"`
	Checked    *bool      `yaml:"checked,omitempty"`
	Disabled   bool       `yaml:"disabled,omitempty"`
	Focused    bool       `yaml:"focused,omitempty"`
	Expanded   *bool      `yaml:"expanded,omitempty"`
	Pressed    *bool      `yaml:"pressed,omitempty"`
	Selected   bool       `yaml:"selected,omitempty"`
	Level      int        `yaml:"level,omitempty"`
	IsFrame    bool       `yaml:"is_frame,omitempty"`
	FrameURL   string     `yaml:"frame_url,omitempty"`
	FrameName  string     `yaml:"frame_name,omitempty"`
	IframeRefs []string   `yaml:"iframe_refs,omitempty"`
	Children   []AriaNode `yaml:"children,omitempty"`
}

// AriaSnapshot renders the page's accessibility tree, starting at the
// document root, as YAML.
func (p *Page) AriaSnapshot(ctx context.Context) (string, error) {
	tree, err := p.MainFrame().ariaTree(ctx)
	if err != nil {
		return "", err
	}
	return marshalAriaTree(tree, "Page.AriaSnapshot")
}

// AriaSnapshotWithFrames renders the page's accessibility tree the way
// AriaSnapshot does, but additionally descends into every child frame,
// stitching each one's own accessibility subtree in under the "iframe" node
// it belongs to and recording the child's root ref in iframe_refs (§4.4
// "Page.aria_snapshot_with_frames").
func (p *Page) AriaSnapshotWithFrames(ctx context.Context) (string, error) {
	tree, err := p.MainFrame().ariaTreeWithFrames(ctx)
	if err != nil {
		return "", err
	}
	return marshalAriaTree(tree, "Page.AriaSnapshotWithFrames")
}

// AriaSnapshot renders the accessibility subtree rooted at the element the
// locator resolves to, waiting for it to be attached first.
func (l *Locator) AriaSnapshot(ctx context.Context) (string, error) {
	ref, err := l.pollUntilActionable(ctx, "Locator.AriaSnapshot", actionableAttached)
	if err != nil {
		return "", err
	}
	tree, err := ariaTreeForRef(ctx, ref, l.describe())
	if err != nil {
		return "", err
	}
	return marshalAriaTree(tree, "Locator.AriaSnapshot")
}

func marshalAriaTree(tree *AriaNode, op string) (string, error) {
	b, err := yaml.Marshal(tree)
	if err != nil {
		return "", wrapError(op, KindProtocol, err)
	}
	return string(b), nil
}

// AriaSnapshotFromYAML parses a YAML aria snapshot produced by AriaSnapshot
// back into an AriaNode tree - the "from_yaml" direction of the explicitly
// testable property "to_yaml ∘ from_yaml = identity".
func AriaSnapshotFromYAML(data string) (*AriaNode, error) {
	var node AriaNode
	if err := yaml.Unmarshal([]byte(data), &node); err != nil {
		return nil, wrapError("AriaSnapshotFromYAML", KindProtocol, err)
	}
	return &node, nil
}

func (f *Frame) ariaTree(ctx context.Context) (*AriaNode, error) {
	sessionCtx := f.page.ctx(ctx)
	if err := accessibility.NewEnable().Do(sessionCtx); err != nil {
		return nil, wrapError("Frame.AriaSnapshot", KindProtocol, err)
	}
	res, err := accessibility.NewGetFullAXTree().Do(sessionCtx)
	if err != nil {
		return nil, wrapError("Frame.AriaSnapshot", KindProtocol, err)
	}
	tree := buildAriaTree(res.Nodes)
	if tree == nil {
		return nil, newError("Frame.AriaSnapshot", KindProtocol, "accessibility tree is empty")
	}
	return tree, nil
}

// ariaTreeWithFrames renders f's own tree, then recurses into every child
// frame and grafts its tree onto the first "iframe"-role node still missing
// children - a best-effort match since the accessibility tree doesn't carry
// frame identity directly.
func (f *Frame) ariaTreeWithFrames(ctx context.Context) (*AriaNode, error) {
	tree, err := f.ariaTree(ctx)
	if err != nil {
		return nil, err
	}
	for _, child := range f.ChildFrames() {
		sub, err := child.ariaTreeWithFrames(ctx)
		if err != nil {
			f.page.log.WithError(err).Warn("pilot: failed to snapshot child frame")
			continue
		}
		if target := firstUnfilledIframeNode(tree); target != nil {
			target.FrameURL = child.URL()
			target.FrameName = child.Name()
			target.Children = sub.Children
			if sub.Ref != "" {
				target.IframeRefs = append(target.IframeRefs, sub.Ref)
			}
		}
	}
	return tree, nil
}

func firstUnfilledIframeNode(n *AriaNode) *AriaNode {
	if strings.EqualFold(n.Role, "iframe") && len(n.Children) == 0 {
		return n
	}
	for i := range n.Children {
		if found := firstUnfilledIframeNode(&n.Children[i]); found != nil {
			return found
		}
	}
	return nil
}

func ariaTreeForRef(ctx context.Context, ref *nodeRef, describe string) (*AriaNode, error) {
	sessionCtx := ref.frame.page.ctx(ctx)
	if err := accessibility.NewEnable().Do(sessionCtx); err != nil {
		return nil, wrapError("Locator.AriaSnapshot", KindProtocol, err)
	}
	res, err := accessibility.NewGetPartialAXTree().SetObjectID(ref.objectID).SetFetchRelatives(true).Do(sessionCtx)
	if err != nil {
		return nil, wrapError("Locator.AriaSnapshot", KindProtocol, err)
	}
	if len(res.Nodes) == 0 {
		return nil, newError("Locator.AriaSnapshot", KindProtocol, "%s: no accessibility node", describe)
	}
	tree := buildAriaTreeFrom(res.Nodes, res.Nodes[0].NodeID)
	if tree == nil {
		return nil, newError("Locator.AriaSnapshot", KindProtocol, "%s: node ignored for accessibility", describe)
	}
	return tree, nil
}

// buildAriaTree finds the node with no parent (the document root) and
// renders it and its descendants.
func buildAriaTree(nodes []accessibility.AXNode) *AriaNode {
	var root accessibility.AXNodeID
	for _, n := range nodes {
		if n.ParentID == "" {
			root = n.NodeID
			break
		}
	}
	if root == "" {
		return nil
	}
	return buildAriaTreeFrom(nodes, root)
}

func buildAriaTreeFrom(nodes []accessibility.AXNode, rootID accessibility.AXNodeID) *AriaNode {
	byID := make(map[accessibility.AXNodeID]accessibility.AXNode, len(nodes))
	for _, n := range nodes {
		byID[n.NodeID] = n
	}
	return ariaNodeFrom(byID, rootID)
}

func ariaNodeFrom(byID map[accessibility.AXNodeID]accessibility.AXNode, id accessibility.AXNodeID) *AriaNode {
	n, ok := byID[id]
	if !ok || n.Ignored {
		return nil
	}
	role := axValueString(n.Role)
	out := &AriaNode{
		Role:  role,
		Name:  axValueString(n.Name),
		Value: axValueString(n.Value),
	}
	if n.BackendDOMNodeID != 0 {
		out.Ref = refString(n.BackendDOMNodeID)
	}
	out.IsFrame = strings.EqualFold(role, "iframe")
	for _, p := range n.Properties {
		switch p.Name {
		case "checked":
			out.Checked = axValueBool(&p.Value)
		case "disabled":
			out.Disabled = axValueBoolDefault(&p.Value)
		case "focused":
			out.Focused = axValueBoolDefault(&p.Value)
		case "expanded":
			out.Expanded = axValueBool(&p.Value)
		case "pressed":
			out.Pressed = axValueBool(&p.Value)
		case "selected":
			out.Selected = axValueBoolDefault(&p.Value)
		case "level":
			if lvl, err := strconv.Atoi(axValueString(&p.Value)); err == nil {
				out.Level = lvl
			}
		}
	}
	for _, childID := range n.ChildIds {
		if child := ariaNodeFrom(byID, childID); child != nil {
			out.Children = append(out.Children, *child)
		}
	}
	return out
}

func axValueString(v *accessibility.AXValue) string {
	if v == nil || len(v.Value) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(v.Value, &s); err == nil {
		return s
	}
	return string(v.Value)
}

// axValueBool decodes a tristate AXValue (e.g. aria-checked="mixed") into a
// *bool, nil when the value isn't a plain boolean (mixed/indeterminate).
func axValueBool(v *accessibility.AXValue) *bool {
	if v == nil || len(v.Value) == 0 {
		return nil
	}
	var b bool
	if err := json.Unmarshal(v.Value, &b); err != nil {
		return nil
	}
	return &b
}

func axValueBoolDefault(v *accessibility.AXValue) bool {
	b := axValueBool(v)
	return b != nil && *b
}

// refString renders a DOM.resolveNode-compatible backend node id as the
// stable aria-snapshot ref format "e{backendNodeId}" (invariant 6).
func refString(backendNodeID int64) string {
	return fmt.Sprintf("e%d", backendNodeID)
}

func parseRefString(ref string) (int64, error) {
	trimmed := strings.TrimPrefix(ref, "e")
	if trimmed == ref {
		return 0, fmt.Errorf("ref %q does not start with %q", ref, "e")
	}
	n, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("ref %q is not e<backendNodeId>: %w", ref, err)
	}
	return n, nil
}

// ElementFromRef resolves a ref produced by AriaSnapshot (format
// "e{backendNodeId}") back to a live handle on the page's main frame. It
// satisfies invariant 6 - "∀ refs r produced by aria_snapshot ...
// element_from_ref(r) resolves to the same node" - as long as that node is
// still attached to the document.
func (p *Page) ElementFromRef(ctx context.Context, ref string) (*nodeRef, error) {
	backendID, err := parseRefString(ref)
	if err != nil {
		return nil, newError("Page.ElementFromRef", KindStale, "%s", err)
	}
	return p.MainFrame().resolveBackendNode(ctx, backendID)
}

// LocatorFromRef returns a Locator that always resolves to the element ref
// names (format "e{backendNodeId}"), re-validated via DOM.resolveNode on
// every action rather than cached - the same never-cache-a-handle guarantee
// every other Locator gives (§4.4 "Ref resolution"; §8 scenario 4's
// `locator_from_ref("e<n>").click()`).
func (p *Page) LocatorFromRef(ref string) *Locator {
	backendID, err := parseRefString(ref)
	l := newLocator(p.MainFrame(), locatorSource{kind: sourceRef, backendID: backendID, refErr: err})
	return l
}
