package pilot

import (
	"context"
	"encoding/json"

	"github.com/corvane/pilot/internal/devtools/dom"
	"github.com/corvane/pilot/internal/devtools/runtime"
)

// nodeRef is a resolved reference to a single DOM element, scoped to the
// frame's current execution context. It is produced fresh by every Locator
// action rather than cached across actions: caching it would let a node
// that the page re-created (e.g. a framework re-render) look "attached"
// when it is actually a stale object handle (§7 KindStale).
type nodeRef struct {
	frame    *Frame
	objectID runtime.RemoteObjectID
}

// evaluateHandle runs expression in f's main-world execution context and
// returns a handle to the resulting object instead of decoding its value,
// so the caller can keep driving DOM/Input commands against it.
func (f *Frame) evaluateHandle(ctx context.Context, expression string) (*nodeRef, error) {
	ctxID, ok := f.executionContextID()
	if !ok {
		return nil, newError("Frame.evaluateHandle", KindStale, "frame %s has no execution context yet", f.id)
	}

	sessionCtx := f.page.ctx(ctx)
	cmd := runtime.NewEvaluate(expression).SetContextID(int64(ctxID)).SetAwaitPromise(true)
	res, err := cmd.Do(sessionCtx)
	if err != nil {
		return nil, wrapError("Frame.evaluateHandle", KindProtocol, err)
	}
	if res.ExceptionDetails != nil {
		return nil, newError("Frame.evaluateHandle", KindProtocol, "%s", res.ExceptionDetails.Text)
	}
	if res.Result.ObjectID == "" {
		return nil, newError("Frame.evaluateHandle", KindLocatorAmbiguity, "expression did not resolve to an element: %s", expression)
	}
	return &nodeRef{frame: f, objectID: runtime.RemoteObjectID(res.Result.ObjectID)}, nil
}

// resolveBackendNode resolves a DOM.BackendNodeId (stable across a reload of
// the frontend's node-id bookkeeping, unlike DOM.NodeId) to a fresh object
// handle scoped to f - the mechanism both file-chooser dispatch and
// Page.ElementFromRef/LocatorFromRef use to turn a durable reference back
// into something Locator/nodeRef actions can drive.
func (f *Frame) resolveBackendNode(ctx context.Context, backendID int64) (*nodeRef, error) {
	sessionCtx := f.page.ctx(ctx)
	res, err := dom.NewResolveNode().SetBackendNodeID(backendID).Do(sessionCtx)
	if err != nil {
		return nil, wrapError("Frame.resolveBackendNode", KindStale, err)
	}
	if res.Object.ObjectID == "" {
		return nil, newError("Frame.resolveBackendNode", KindStale, "backend node %d resolved with no objectId", backendID)
	}
	return &nodeRef{frame: f, objectID: runtime.RemoteObjectID(res.Object.ObjectID)}, nil
}

// describe fetches the live DOM.Node for the handle (nodeId, attributes,
// tag name). Used by actionability checks and by GetAttribute/TextContent.
func (r *nodeRef) describe(ctx context.Context) (*dom.Node, error) {
	sessionCtx := r.frame.page.ctx(ctx)
	res, err := dom.NewDescribeNode().SetObjectID(r.objectID).Do(sessionCtx)
	if err != nil {
		return nil, wrapError("Locator", KindStale, err)
	}
	return &res.Node, nil
}

// boxModel fetches the element's content/padding/border/margin quads and
// overall width/height, used for the click point and visibility checks.
func (r *nodeRef) boxModel(ctx context.Context) (*dom.BoxModel, error) {
	sessionCtx := r.frame.page.ctx(ctx)
	res, err := dom.NewGetBoxModel().SetObjectID(r.objectID).Do(sessionCtx)
	if err != nil {
		return nil, wrapError("Locator", KindActionability, err)
	}
	return &res.Model, nil
}

// scrollIntoViewIfNeeded asks the browser to scroll the element into the
// viewport if it is not already visible.
func (r *nodeRef) scrollIntoViewIfNeeded(ctx context.Context) error {
	sessionCtx := r.frame.page.ctx(ctx)
	if err := dom.NewScrollIntoViewIfNeeded().SetObjectID(r.objectID).Do(sessionCtx); err != nil {
		return wrapError("Locator", KindActionability, err)
	}
	return nil
}

// focus moves keyboard focus to the element.
func (r *nodeRef) focus(ctx context.Context) error {
	sessionCtx := r.frame.page.ctx(ctx)
	if err := dom.NewFocus().SetObjectID(r.objectID).Do(sessionCtx); err != nil {
		return wrapError("Locator", KindActionability, err)
	}
	return nil
}

// setFiles sets the file input's selected files (only valid for an
// `<input type="file">` element).
func (r *nodeRef) setFiles(ctx context.Context, paths []string) error {
	sessionCtx := r.frame.page.ctx(ctx)
	if err := dom.NewSetFileInputFiles(paths).SetObjectID(r.objectID).Do(sessionCtx); err != nil {
		return wrapError("Locator", KindProtocol, err)
	}
	return nil
}

// call invokes functionDeclaration with this handle as `this`, returning
// the decoded JSON result. Used for the handful of actionability/property
// checks done in JS (visibility, disabled state, text content).
func (r *nodeRef) call(ctx context.Context, functionDeclaration string, out any) error {
	sessionCtx := r.frame.page.ctx(ctx)
	cmd := runtime.NewCallFunctionOn(functionDeclaration).
		SetObjectID(string(r.objectID)).
		SetReturnByValue(true)
	res, err := cmd.Do(sessionCtx)
	if err != nil {
		return wrapError("Locator", KindProtocol, err)
	}
	if res.ExceptionDetails != nil {
		return newError("Locator", KindProtocol, "%s", res.ExceptionDetails.Text)
	}
	if out == nil || len(res.Result.Value) == 0 {
		return nil
	}
	return json.Unmarshal(res.Result.Value, out)
}
