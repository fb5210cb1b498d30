package pilot

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/corvane/pilot/internal/devtools"
	cdppage "github.com/corvane/pilot/internal/devtools/page"
	"github.com/corvane/pilot/internal/devtools/runtime"
)

// Dialog wraps a JavaScript dialog (alert/confirm/prompt/beforeunload) the
// page is blocked on. A dialog left unhandled stalls page execution, the
// same way an unhandled alert() stalls a human driving the real browser.
type Dialog struct {
	page          *Page
	Type          string
	Message       string
	DefaultPrompt string
}

// Accept dismisses the dialog, confirming it and supplying promptText for
// a prompt() dialog (ignored otherwise).
func (d *Dialog) Accept(ctx context.Context, promptText string) error {
	cmd := cdppage.NewHandleJavaScriptDialog(true)
	if promptText != "" {
		cmd.SetPromptText(promptText)
	}
	if err := cmd.Do(d.page.ctx(ctx)); err != nil {
		return wrapError("Dialog.Accept", KindProtocol, err)
	}
	return nil
}

// Dismiss cancels the dialog (the equivalent of clicking "Cancel").
func (d *Dialog) Dismiss(ctx context.Context) error {
	if err := cdppage.NewHandleJavaScriptDialog(false).Do(d.page.ctx(ctx)); err != nil {
		return wrapError("Dialog.Dismiss", KindProtocol, err)
	}
	return nil
}

// ConsoleMessage is one entry written to the page's JS console.
type ConsoleMessage struct {
	Type string
	Text string
}

// PageError is an uncaught exception thrown by page script.
type PageError struct {
	Message string
	Stack   string
}

// Download describes a file download initiated by the page. Guid identifies
// it across DownloadWillBegin/DownloadProgress events and is also the name
// Chrome's download manager gives the file on disk under the directory
// configured by SetDownloadBehavior.
type Download struct {
	Guid              string
	URL               string
	SuggestedFilename string

	page *Page
}

// SaveAs waits for the download to finish, then copies it from the
// directory SetDownloadBehavior configured to destPath. Call
// Page.SetDownloadBehavior("allow", dir) before the download starts, or
// this returns KindIO immediately.
func (d *Download) SaveAs(ctx context.Context, destPath string) error {
	d.page.downloadsMu.Lock()
	downloadPath := d.page.downloadPath
	d.page.downloadsMu.Unlock()
	if downloadPath == "" {
		return newError("Download.SaveAs", KindIO, "no download directory configured; call Page.SetDownloadBehavior first")
	}

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	for {
		d.page.downloadsMu.Lock()
		state := d.page.downloadStates[d.Guid]
		d.page.downloadsMu.Unlock()
		switch state {
		case "completed":
			return saveDownloadedFile(filepath.Join(downloadPath, d.Guid), destPath)
		case "canceled":
			return newError("Download.SaveAs", KindIO, "download %s was canceled", d.Guid)
		}
		select {
		case <-ctx.Done():
			return wrapError("Download.SaveAs", KindIO, ctx.Err())
		case <-ticker.C:
		}
	}
}

func saveDownloadedFile(srcPath, destPath string) error {
	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return wrapError("Download.SaveAs", KindIO, err)
	}
	in, err := os.Open(srcPath)
	if err != nil {
		return wrapError("Download.SaveAs", KindIO, err)
	}
	defer in.Close()
	out, err := os.Create(destPath)
	if err != nil {
		return wrapError("Download.SaveAs", KindIO, err)
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return wrapError("Download.SaveAs", KindIO, err)
	}
	return nil
}

// eventHub fans out the page's best-effort, optional notification channels:
// dialogs, console messages, page errors and downloads. Each is opt-in via
// On*: a page with no listener registered for a given event still answers
// dialogs automatically (accepted, mirroring a headless browser with no
// human attending it) so navigation never wedges.
type eventHub struct {
	mu            sync.Mutex
	onDialog      []func(*Dialog)
	onConsole     []func(ConsoleMessage)
	onPageError   []func(PageError)
	onDownload    []func(*Download)
	interceptFile bool
	onFileChooser []func(*FileChooser)
}

// FileChooser describes an <input type=file> the page is about to present
// a native file picker for.
type FileChooser struct {
	page  *Page
	frame *Frame
	ref   *nodeRef
}

// SetFiles sets the file paths on the underlying input element, the same
// mechanism a Locator.SetInputFiles call uses.
func (f *FileChooser) SetFiles(ctx context.Context, paths ...string) error {
	return f.ref.setFiles(ctx, paths)
}

// OnDialog registers fn to be called whenever the page raises a JS dialog.
// Once a listener is registered, auto-accept stops and fn is responsible for
// calling Accept or Dismiss.
func (p *Page) OnDialog(fn func(*Dialog)) {
	p.hub.mu.Lock()
	defer p.hub.mu.Unlock()
	p.hub.onDialog = append(p.hub.onDialog, fn)
}

// OnConsoleMessage registers fn to be called for every console.* call made
// by page script.
func (p *Page) OnConsoleMessage(fn func(ConsoleMessage)) {
	p.hub.mu.Lock()
	defer p.hub.mu.Unlock()
	p.hub.onConsole = append(p.hub.onConsole, fn)
}

// OnPageError registers fn to be called for every uncaught exception thrown
// by page script.
func (p *Page) OnPageError(fn func(PageError)) {
	p.hub.mu.Lock()
	defer p.hub.mu.Unlock()
	p.hub.onPageError = append(p.hub.onPageError, fn)
}

// OnDownload registers fn to be called when the page begins a file
// download. Downloads are left un-saved by the browser unless the caller
// also configures SetDownloadBehavior; fn's Download.SaveAs waits for the
// download to finish before copying it out.
func (p *Page) OnDownload(fn func(*Download)) {
	p.hub.mu.Lock()
	defer p.hub.mu.Unlock()
	p.hub.onDownload = append(p.hub.onDownload, fn)
}

// OnFileChooser registers fn to be called when the page is about to present
// a native file picker, and enables interception (Page.setInterceptFileChooserDialog)
// so the picker never actually opens.
func (p *Page) OnFileChooser(ctx context.Context, fn func(*FileChooser)) error {
	p.hub.mu.Lock()
	p.hub.onFileChooser = append(p.hub.onFileChooser, fn)
	already := p.hub.interceptFile
	p.hub.interceptFile = true
	p.hub.mu.Unlock()
	if already {
		return nil
	}
	if err := cdppage.NewSetInterceptFileChooserDialog(true).Do(p.ctx(ctx)); err != nil {
		return wrapError("Page.OnFileChooser", KindProtocol, err)
	}
	return nil
}

// SetDownloadBehavior configures where the browser saves files this page
// downloads ("allow", "deny", or "default"). downloadPath is remembered so
// Download.SaveAs knows where to find the completed file.
func (p *Page) SetDownloadBehavior(ctx context.Context, behavior, downloadPath string) error {
	cmd := cdppage.NewSetDownloadBehavior(behavior)
	if downloadPath != "" {
		cmd.SetDownloadPath(downloadPath)
	}
	if err := cmd.Do(p.ctx(ctx)); err != nil {
		return wrapError("Page.SetDownloadBehavior", KindProtocol, err)
	}
	p.downloadsMu.Lock()
	p.downloadPath = downloadPath
	p.downloadsMu.Unlock()
	return nil
}

// startNotifications subscribes the dialog/console/exception/download/
// file-chooser event channels and pumps them for the page's lifetime. Run
// as its own goroutine (separate from eventLoop's frame/execution-context
// tracking) since a slow listener callback here must never delay frame
// bookkeeping.
func (p *Page) startNotifications() {
	sessionCtx := p.ctx(p.runCtx)

	dialogCh, _, err := devtools.SubscribeEvent(sessionCtx, "Page.javascriptDialogOpening")
	if err != nil {
		return
	}
	consoleCh, _, err := devtools.SubscribeEvent(sessionCtx, "Runtime.consoleAPICalled")
	if err != nil {
		return
	}
	exceptionCh, _, err := devtools.SubscribeEvent(sessionCtx, "Runtime.exceptionThrown")
	if err != nil {
		return
	}
	downloadBeginCh, _, err := devtools.SubscribeEvent(sessionCtx, "Page.downloadWillBegin")
	if err != nil {
		return
	}
	downloadProgressCh, _, err := devtools.SubscribeEvent(sessionCtx, "Page.downloadProgress")
	if err != nil {
		return
	}
	fileChooserCh, _, err := devtools.SubscribeEvent(sessionCtx, "Page.fileChooserOpened")
	if err != nil {
		return
	}

	go p.notifyLoop(dialogCh, consoleCh, exceptionCh, downloadBeginCh, downloadProgressCh, fileChooserCh)
}

func (p *Page) notifyLoop(
	dialogCh, consoleCh, exceptionCh, downloadBeginCh, downloadProgressCh, fileChooserCh <-chan *devtools.Message,
) {
	for {
		select {
		case <-p.runCtx.Done():
			return
		case m, ok := <-dialogCh:
			if !ok {
				return
			}
			var ev cdppage.JavascriptDialogOpening
			if json.Unmarshal(m.Params, &ev) == nil {
				p.handleDialog(ev)
			}
		case m, ok := <-consoleCh:
			if !ok {
				return
			}
			var ev runtime.ConsoleAPICalled
			if json.Unmarshal(m.Params, &ev) == nil {
				p.dispatchConsole(ev)
			}
		case m, ok := <-exceptionCh:
			if !ok {
				return
			}
			var ev runtime.ExceptionThrown
			if json.Unmarshal(m.Params, &ev) == nil {
				p.dispatchPageError(ev)
			}
		case m, ok := <-downloadBeginCh:
			if !ok {
				return
			}
			var ev cdppage.DownloadWillBegin
			if json.Unmarshal(m.Params, &ev) == nil {
				p.dispatchDownload(ev)
			}
		case m, ok := <-downloadProgressCh:
			if !ok {
				return
			}
			var ev cdppage.DownloadProgress
			if json.Unmarshal(m.Params, &ev) == nil {
				p.downloadsMu.Lock()
				p.downloadStates[ev.Guid] = ev.State
				p.downloadsMu.Unlock()
			}
		case m, ok := <-fileChooserCh:
			if !ok {
				return
			}
			var ev cdppage.FileChooserOpened
			if json.Unmarshal(m.Params, &ev) == nil {
				p.dispatchFileChooser(ev)
			}
		}
	}
}

func (p *Page) handleDialog(ev cdppage.JavascriptDialogOpening) {
	d := &Dialog{page: p, Type: string(ev.Type), Message: ev.Message, DefaultPrompt: ev.DefaultPrompt}

	p.hub.mu.Lock()
	listeners := append([]func(*Dialog){}, p.hub.onDialog...)
	p.hub.mu.Unlock()

	if len(listeners) == 0 {
		if err := d.Accept(p.runCtx, ""); err != nil {
			p.log.WithError(err).Warn("pilot: failed to auto-accept dialog")
		}
		return
	}
	for _, fn := range listeners {
		fn(d)
	}
}

func (p *Page) dispatchConsole(ev runtime.ConsoleAPICalled) {
	p.hub.mu.Lock()
	listeners := append([]func(ConsoleMessage){}, p.hub.onConsole...)
	p.hub.mu.Unlock()
	if len(listeners) == 0 {
		return
	}
	msg := ConsoleMessage{Type: ev.Type, Text: consoleArgsString(ev.Args)}
	for _, fn := range listeners {
		fn(msg)
	}
}

func consoleArgsString(args []runtime.RemoteObject) string {
	out := ""
	for i, a := range args {
		if i > 0 {
			out += " "
		}
		out += remoteObjectString(a)
	}
	return out
}

func remoteObjectString(o runtime.RemoteObject) string {
	if o.Description != "" {
		return o.Description
	}
	if len(o.Value) > 0 {
		var s string
		if json.Unmarshal(o.Value, &s) == nil {
			return s
		}
		return string(o.Value)
	}
	return o.Type
}

func (p *Page) dispatchPageError(ev runtime.ExceptionThrown) {
	p.hub.mu.Lock()
	listeners := append([]func(PageError){}, p.hub.onPageError...)
	p.hub.mu.Unlock()
	if len(listeners) == 0 {
		return
	}
	stack := ""
	if ev.ExceptionDetails.StackTrace != nil {
		stack = fmt.Sprintf("%+v", ev.ExceptionDetails.StackTrace)
	}
	perr := PageError{Message: ev.ExceptionDetails.Text, Stack: stack}
	for _, fn := range listeners {
		fn(perr)
	}
}

func (p *Page) dispatchDownload(ev cdppage.DownloadWillBegin) {
	p.downloadsMu.Lock()
	p.downloadStates[ev.Guid] = "inProgress"
	p.downloadsMu.Unlock()

	p.hub.mu.Lock()
	listeners := append([]func(*Download){}, p.hub.onDownload...)
	p.hub.mu.Unlock()
	if len(listeners) == 0 {
		return
	}
	dl := &Download{Guid: ev.Guid, URL: ev.URL, SuggestedFilename: ev.SuggestedFilename, page: p}
	for _, fn := range listeners {
		fn(dl)
	}
}

func (p *Page) dispatchFileChooser(ev cdppage.FileChooserOpened) {
	p.hub.mu.Lock()
	listeners := append([]func(*FileChooser){}, p.hub.onFileChooser...)
	p.hub.mu.Unlock()
	if len(listeners) == 0 {
		return
	}
	p.mu.RLock()
	fr := p.frames[ev.FrameID]
	p.mu.RUnlock()
	if fr == nil {
		fr = p.MainFrame()
	}
	ref, err := fr.resolveBackendNode(p.runCtx, ev.BackendNodeID)
	if err != nil {
		p.log.WithError(err).Warn("pilot: failed to resolve file chooser input node")
		return
	}
	fc := &FileChooser{page: p, frame: fr, ref: ref}
	for _, fn := range listeners {
		fn(fc)
	}
}
