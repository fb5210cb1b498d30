package pilot

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/corvane/pilot/internal/devtools/runtime"
)

// Frame is one frame (main or nested iframe) of a Page's frame tree.
// Inserted by Page.frameAttached/frameNavigated, removed by frameDetached -
// never constructed or torn down directly by a caller.
type Frame struct {
	page     *Page
	id       string
	parentID string

	mu         sync.RWMutex
	name       string
	url        string
	execCtxID  runtime.ExecutionContextID
	hasExecCtx bool
}

// ID returns the CDP frameId.
func (f *Frame) ID() string { return f.id }

// Name returns the frame's name attribute, if any.
func (f *Frame) Name() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.name
}

// URL returns the frame's last-navigated URL.
func (f *Frame) URL() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.url
}

// IsMain reports whether this is the page's top-level frame.
func (f *Frame) IsMain() bool { return f.parentID == "" }

// ParentFrame returns the enclosing frame, or nil for the main frame or a
// frame whose parent has already been detached.
func (f *Frame) ParentFrame() *Frame {
	if f.parentID == "" {
		return nil
	}
	f.page.mu.RLock()
	defer f.page.mu.RUnlock()
	return f.page.frames[f.parentID]
}

// ChildFrames returns every currently-attached frame whose parent is f.
func (f *Frame) ChildFrames() []*Frame {
	f.page.mu.RLock()
	defer f.page.mu.RUnlock()
	var out []*Frame
	for _, fr := range f.page.frames {
		if fr.parentID == f.id {
			out = append(out, fr)
		}
	}
	return out
}

// executionContextID returns the frame's main-world execution context, and
// whether one has been observed yet (a freshly attached frame has none
// until Runtime.executionContextCreated arrives for it).
func (f *Frame) executionContextID() (runtime.ExecutionContextID, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.execCtxID, f.hasExecCtx
}

// Evaluate runs expression in the frame's main-world execution context and
// decodes the JSON result into out (pass nil to discard it).
func (f *Frame) Evaluate(ctx context.Context, expression string, out any) error {
	ctxID, ok := f.executionContextID()
	if !ok {
		return newError("Frame.Evaluate", KindStale, "frame %s has no execution context yet", f.id)
	}

	ctx, cancel := f.page.withDefaultTimeout(ctx)
	defer cancel()
	sessionCtx := f.page.ctx(ctx)

	cmd := runtime.NewEvaluate(expression).
		SetContextID(int64(ctxID)).
		SetReturnByValue(true).
		SetAwaitPromise(true)
	res, err := cmd.Do(sessionCtx)
	if err != nil {
		return wrapError("Frame.Evaluate", KindProtocol, err)
	}
	if res.ExceptionDetails != nil {
		return newError("Frame.Evaluate", KindProtocol, "%s", res.ExceptionDetails.Text)
	}
	if out == nil || len(res.Result.Value) == 0 {
		return nil
	}
	if err := json.Unmarshal(res.Result.Value, out); err != nil {
		return wrapError("Frame.Evaluate", KindProtocol, err)
	}
	return nil
}
