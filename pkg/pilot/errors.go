package pilot

import "fmt"

// Kind classifies a pilot error into one of a fixed taxonomy. Callers
// should switch on Kind rather than on error string contents.
type Kind int

const (
	// KindTransport covers WebSocket framing, connect, write and read
	// failures. Fatal for the underlying connection; every in-flight
	// command on it fails.
	KindTransport Kind = iota
	// KindProtocol is a CDP-reported {code, message} error. The command is
	// over; no retry is attempted by this layer.
	KindProtocol
	// KindSessionGone means a command was routed to a session whose target
	// has already been destroyed.
	KindSessionGone
	// KindTimeout means a retry loop's deadline elapsed.
	KindTimeout
	// KindActionability is a Timeout whose specific cause is a locator
	// action's precondition (attached/visible/stable/enabled/hit-testable)
	// never being satisfied.
	KindActionability
	// KindNavigation covers net-layer failures, TLS failures, or a
	// navigation cancelled by a subsequent one.
	KindNavigation
	// KindLocatorAmbiguity means a strict operation matched more than one
	// node.
	KindLocatorAmbiguity
	// KindStale means a ref resolved to a node no longer attached to the
	// document.
	KindStale
	// KindTracingNotStarted means tracing().stop() was called without a
	// matching start().
	KindTracingNotStarted
	// KindTracingAlreadyStarted means tracing().start() was called twice
	// without an intervening stop().
	KindTracingAlreadyStarted
	// KindNoPagesForTracing means tracing().start() was called on a context
	// with zero open pages.
	KindNoPagesForTracing
	// KindInvalidEndpointURL means Connect was given a URL that is neither
	// http(s) nor ws(s).
	KindInvalidEndpointURL
	// KindEndpointDiscoveryFailed means the /json/version fetch used to
	// resolve an http(s) endpoint into a WebSocket URL failed.
	KindEndpointDiscoveryFailed
	// KindIO covers download save and storage-state read/write failures.
	KindIO
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "Transport"
	case KindProtocol:
		return "Protocol"
	case KindSessionGone:
		return "SessionGone"
	case KindTimeout:
		return "Timeout"
	case KindActionability:
		return "Actionability"
	case KindNavigation:
		return "Navigation"
	case KindLocatorAmbiguity:
		return "LocatorAmbiguity"
	case KindStale:
		return "Stale"
	case KindTracingNotStarted:
		return "TracingNotStarted"
	case KindTracingAlreadyStarted:
		return "TracingAlreadyStarted"
	case KindNoPagesForTracing:
		return "NoPagesForTracing"
	case KindInvalidEndpointURL:
		return "InvalidEndpointUrl"
	case KindEndpointDiscoveryFailed:
		return "EndpointDiscoveryFailed"
	case KindIO:
		return "IO"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by every public pilot operation. It
// carries a Kind from the fixed taxonomy plus, where useful, the
// last-observed actual value that caused a retry loop to give up.
type Error struct {
	Kind    Kind
	Op      string // the operation that failed, e.g. "Locator.Click"
	Message string
	Actual  string // last-observed actual value, for Timeout/Actionability
	Err     error  // wrapped cause, if any
}

func (e *Error) Error() string {
	s := fmt.Sprintf("pilot: %s: %s: %s", e.Op, e.Kind, e.Message)
	if e.Actual != "" {
		s += fmt.Sprintf(" (last observed: %s)", e.Actual)
	}
	if e.Err != nil {
		s += fmt.Sprintf(": %v", e.Err)
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

// newError constructs an *Error, the one path every component should use so
// that Op/Kind are always set together.
func newError(op string, kind Kind, format string, args ...any) *Error {
	return &Error{Op: op, Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func wrapError(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Message: err.Error(), Err: err}
}

// IsKind reports whether err is a *pilot.Error of the given kind.
func IsKind(err error, kind Kind) bool {
	pe, ok := err.(*Error)
	return ok && pe.Kind == kind
}
