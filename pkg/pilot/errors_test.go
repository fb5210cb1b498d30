package pilot

import (
	"errors"
	"strings"
	"testing"
)

func TestNewErrorFormatsMessage(t *testing.T) {
	err := newError("Locator.Click", KindTimeout, "%s: condition never satisfied", "button")
	if err.Op != "Locator.Click" {
		t.Errorf("err.Op = %q, want %q", err.Op, "Locator.Click")
	}
	if err.Kind != KindTimeout {
		t.Errorf("err.Kind = %v, want %v", err.Kind, KindTimeout)
	}
	if !strings.Contains(err.Error(), "button: condition never satisfied") {
		t.Errorf("err.Error() = %q, want it to contain %q", err.Error(), "button: condition never satisfied")
	}
}

func TestErrorIncludesActualAndWrapped(t *testing.T) {
	cause := errors.New("connection reset")
	err := wrapError("Page.Goto", KindNavigation, cause)
	err = err.withActualString("https://example.com/old")

	got := err.Error()
	for _, want := range []string{"Page.Goto", "Navigation", "connection reset", "https://example.com/old"} {
		if !strings.Contains(got, want) {
			t.Errorf("err.Error() = %q, want it to contain %q", got, want)
		}
	}
	if !errors.Is(err, cause) {
		t.Errorf("errors.Is(err, cause) = false, want true")
	}
}

func TestIsKind(t *testing.T) {
	err := newError("Locator.Click", KindStale, "node detached")
	if !IsKind(err, KindStale) {
		t.Errorf("IsKind(err, KindStale) = false, want true")
	}
	if IsKind(err, KindTimeout) {
		t.Errorf("IsKind(err, KindTimeout) = true, want false")
	}
	if IsKind(errors.New("plain"), KindStale) {
		t.Errorf("IsKind(plain error, KindStale) = true, want false")
	}
}

func TestKindStringKnownAndUnknown(t *testing.T) {
	if got := KindActionability.String(); got != "Actionability" {
		t.Errorf("KindActionability.String() = %q, want %q", got, "Actionability")
	}
	if got := Kind(999).String(); got != "Unknown" {
		t.Errorf("Kind(999).String() = %q, want %q", got, "Unknown")
	}
}
