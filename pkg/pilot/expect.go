package pilot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
)

// SoftAsserter collects assertion failures instead of stopping at the
// first one. A test installs one with Assertion.Soft and drains it with
// Errors when it tears down (§4.6).
type SoftAsserter struct {
	mu   sync.Mutex
	errs *multierror.Error
}

// NewSoftAsserter returns an empty collector.
func NewSoftAsserter() *SoftAsserter { return &SoftAsserter{} }

func (s *SoftAsserter) record(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = multierror.Append(s.errs, err)
}

// Errors drains the collector, returning nil if nothing failed.
func (s *SoftAsserter) Errors() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.errs.ErrorOrNil()
	s.errs = nil
	return err
}

// Assertion re-queries a Locator on every tick until its predicate holds or
// the deadline passes, reporting the last-observed actual value on failure.
type Assertion struct {
	locator *Locator
	soft    *SoftAsserter
}

// Expect builds an Assertion against l.
func Expect(l *Locator) *Assertion {
	return &Assertion{locator: l}
}

// Soft returns an Assertion that records failures into s instead of
// returning them, so the caller can keep checking further assertions in the
// same test.
func (a *Assertion) Soft(s *SoftAsserter) *Assertion {
	return &Assertion{locator: a.locator, soft: s}
}

func (e *Error) withActualString(s string) *Error {
	e.Actual = s
	return e
}

// poll evaluates a single tick of an assertion: the last-observed actual
// value (for the error message), whether the predicate currently holds,
// and any hard error encountered while evaluating it.
type pollFunc func(ctx context.Context) (actual string, ok bool, err error)

func (a *Assertion) run(ctx context.Context, op string, poll pollFunc) error {
	ctx, cancel := a.locator.frame.page.withDefaultTimeout(ctx)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	var lastActual string
	for {
		actual, ok, err := poll(ctx)
		if err != nil {
			return a.fail(wrapError(op, KindProtocol, err))
		}
		lastActual = actual
		if ok {
			return nil
		}
		select {
		case <-ctx.Done():
			failure := newError(op, KindTimeout, "%s: condition never satisfied", a.locator.describe()).withActualString(lastActual)
			return a.fail(failure)
		case <-ticker.C:
		}
	}
}

func (a *Assertion) fail(err error) error {
	if a.soft != nil {
		a.soft.record(err)
		return nil
	}
	return err
}

// ToHaveText asserts the locator's trimmed textContent equals want.
func (a *Assertion) ToHaveText(ctx context.Context, want string) error {
	return a.run(ctx, "Expect.ToHaveText", func(ctx context.Context) (string, bool, error) {
		actual, err := a.locator.TextContent(ctx)
		if err != nil {
			return "", false, err
		}
		actual = strings.TrimSpace(actual)
		return actual, actual == want, nil
	})
}

// ToContainText asserts the locator's textContent contains substr.
func (a *Assertion) ToContainText(ctx context.Context, substr string) error {
	return a.run(ctx, "Expect.ToContainText", func(ctx context.Context) (string, bool, error) {
		actual, err := a.locator.TextContent(ctx)
		if err != nil {
			return "", false, err
		}
		return actual, strings.Contains(actual, substr), nil
	})
}

// ToHaveAttribute asserts the named attribute is set to want.
func (a *Assertion) ToHaveAttribute(ctx context.Context, name, want string) error {
	return a.run(ctx, "Expect.ToHaveAttribute", func(ctx context.Context) (string, bool, error) {
		actual, set, err := a.locator.GetAttribute(ctx, name)
		if err != nil {
			return "", false, err
		}
		if !set {
			return "<unset>", false, nil
		}
		return actual, actual == want, nil
	})
}

// ToBeVisible asserts the locator currently matches a visible element.
func (a *Assertion) ToBeVisible(ctx context.Context) error {
	return a.run(ctx, "Expect.ToBeVisible", func(ctx context.Context) (string, bool, error) {
		visible, err := a.locator.IsVisible(ctx)
		if err != nil {
			return "", false, err
		}
		return fmt.Sprintf("visible=%t", visible), visible, nil
	})
}

// ToBeHidden asserts the locator matches nothing, or matches an
// invisible/detached element.
func (a *Assertion) ToBeHidden(ctx context.Context) error {
	return a.run(ctx, "Expect.ToBeHidden", func(ctx context.Context) (string, bool, error) {
		visible, err := a.locator.IsVisible(ctx)
		if err != nil {
			return "", false, err
		}
		return fmt.Sprintf("visible=%t", visible), !visible, nil
	})
}

// ToHaveValue asserts a form control's current value equals want.
func (a *Assertion) ToHaveValue(ctx context.Context, want string) error {
	return a.run(ctx, "Expect.ToHaveValue", func(ctx context.Context) (string, bool, error) {
		actual, err := a.locator.InputValue(ctx)
		if err != nil {
			return "", false, err
		}
		return actual, actual == want, nil
	})
}

// ToBeChecked asserts a checkbox or radio input is checked.
func (a *Assertion) ToBeChecked(ctx context.Context) error {
	return a.run(ctx, "Expect.ToBeChecked", func(ctx context.Context) (string, bool, error) {
		checked, err := a.locator.IsChecked(ctx)
		if err != nil {
			return "", false, err
		}
		return fmt.Sprintf("checked=%t", checked), checked, nil
	})
}

// ToHaveCount asserts the locator matches exactly want elements.
func (a *Assertion) ToHaveCount(ctx context.Context, want int) error {
	return a.run(ctx, "Expect.ToHaveCount", func(ctx context.Context) (string, bool, error) {
		n, err := a.locator.Count(ctx)
		if err != nil {
			return "", false, err
		}
		return strconv.Itoa(n), n == want, nil
	})
}
