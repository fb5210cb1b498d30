package pilot

import (
	"errors"
	"strings"
	"testing"
)

func TestSoftAsserterNoFailures(t *testing.T) {
	s := NewSoftAsserter()
	if err := s.Errors(); err != nil {
		t.Errorf("Errors() = %v, want nil", err)
	}
}

func TestSoftAsserterCollectsAndDrains(t *testing.T) {
	s := NewSoftAsserter()
	s.record(errors.New("first failure"))
	s.record(errors.New("second failure"))

	err := s.Errors()
	if err == nil {
		t.Fatalf("Errors() = nil, want a combined error")
	}
	msg := err.Error()
	for _, want := range []string{"first failure", "second failure"} {
		if !strings.Contains(msg, want) {
			t.Errorf("Errors().Error() = %q, want it to contain %q", msg, want)
		}
	}

	if err := s.Errors(); err != nil {
		t.Errorf("Errors() after drain = %v, want nil", err)
	}
}

func TestAssertionFailWithoutSoftReturnsError(t *testing.T) {
	a := &Assertion{}
	want := newError("Expect.ToBeVisible", KindTimeout, "boom")
	if got := a.fail(want); got != want {
		t.Errorf("fail(err) = %v, want %v", got, want)
	}
}

func TestAssertionFailWithSoftRecordsAndReturnsNil(t *testing.T) {
	s := NewSoftAsserter()
	a := &Assertion{soft: s}
	if got := a.fail(errors.New("boom")); got != nil {
		t.Errorf("fail(err) with soft asserter = %v, want nil", got)
	}
	if err := s.Errors(); err == nil {
		t.Errorf("Errors() = nil, want the recorded failure")
	}
}
