package pilot

import "context"

func actionableAttached(s *actionabilityState) bool { return s.attached }

func actionableClickable(s *actionabilityState) bool {
	return s.attached && s.visible && s.stable && s.enabled && s.hitTestable && s.box != nil
}

// Click waits for the element to be attached, visible and enabled, scrolls
// it into view, then dispatches a real mouse press/release at its center
// (§7/§8: actionability before every action).
func (l *Locator) Click(ctx context.Context) error {
	ctx, cancel := l.frame.page.withDefaultTimeout(ctx)
	defer cancel()

	ref, err := l.pollUntilActionable(ctx, "Locator.Click", actionableClickable)
	if err != nil {
		return err
	}
	if err := ref.scrollIntoViewIfNeeded(ctx); err != nil {
		return err
	}
	bm, err := ref.boxModel(ctx)
	if err != nil {
		return wrapError("Locator.Click", KindActionability, err)
	}
	x, y := rectFromBoxModel(bm.Content, bm.Width, bm.Height).center()

	awaitNavigation := l.frame.page.armNavigationWaiter("load")
	if err := l.frame.page.dispatchClick(ctx, x, y, 1); err != nil {
		return err
	}
	return awaitNavigation(ctx)
}

// DoubleClick is Click with a click count of 2.
func (l *Locator) DoubleClick(ctx context.Context) error {
	ctx, cancel := l.frame.page.withDefaultTimeout(ctx)
	defer cancel()

	ref, err := l.pollUntilActionable(ctx, "Locator.DoubleClick", actionableClickable)
	if err != nil {
		return err
	}
	if err := ref.scrollIntoViewIfNeeded(ctx); err != nil {
		return err
	}
	bm, err := ref.boxModel(ctx)
	if err != nil {
		return wrapError("Locator.DoubleClick", KindActionability, err)
	}
	x, y := rectFromBoxModel(bm.Content, bm.Width, bm.Height).center()
	return l.frame.page.dispatchClick(ctx, x, y, 2)
}

// Hover waits for the element to be visible, scrolls it into view, and
// moves the mouse over its center without clicking.
func (l *Locator) Hover(ctx context.Context) error {
	ctx, cancel := l.frame.page.withDefaultTimeout(ctx)
	defer cancel()

	ref, err := l.pollUntilActionable(ctx, "Locator.Hover", actionableClickable)
	if err != nil {
		return err
	}
	if err := ref.scrollIntoViewIfNeeded(ctx); err != nil {
		return err
	}
	bm, err := ref.boxModel(ctx)
	if err != nil {
		return wrapError("Locator.Hover", KindActionability, err)
	}
	x, y := rectFromBoxModel(bm.Content, bm.Width, bm.Height).center()
	return l.frame.page.dispatchHover(ctx, x, y)
}

const clearValueScript = `function(){
	this.value = "";
	this.dispatchEvent(new Event("input", {bubbles: true}));
}`

// Fill waits for the element to be editable, clears its current value, and
// types the replacement one key event at a time. WithTypeDelay paces the
// keystrokes the way Keyboard.Type does.
func (l *Locator) Fill(ctx context.Context, value string, opts ...TypeOption) error {
	ctx, cancel := l.frame.page.withDefaultTimeout(ctx)
	defer cancel()

	ref, err := l.pollUntilActionable(ctx, "Locator.Fill", actionableClickable)
	if err != nil {
		return err
	}
	if err := ref.scrollIntoViewIfNeeded(ctx); err != nil {
		return err
	}
	if err := ref.focus(ctx); err != nil {
		return err
	}
	if err := ref.call(ctx, clearValueScript, nil); err != nil {
		return wrapError("Locator.Fill", KindProtocol, err)
	}
	return l.frame.page.typeText(ctx, value, opts...)
}

// Press focuses the element, waiting for it to be actionable first, then
// dispatches a single named key (e.g. "Enter").
func (l *Locator) Press(ctx context.Context, key string) error {
	ctx, cancel := l.frame.page.withDefaultTimeout(ctx)
	defer cancel()

	ref, err := l.pollUntilActionable(ctx, "Locator.Press", actionableClickable)
	if err != nil {
		return err
	}
	if err := ref.focus(ctx); err != nil {
		return err
	}

	awaitNavigation := l.frame.page.armNavigationWaiter("load")
	if err := l.frame.page.pressKey(ctx, key); err != nil {
		return err
	}
	return awaitNavigation(ctx)
}

const isCheckedScript = `function(){ return this.checked === true; }`

// IsChecked reports a checkbox or radio input's checked state.
func (l *Locator) IsChecked(ctx context.Context) (bool, error) {
	ref, err := l.resolve(ctx)
	if err != nil {
		return false, err
	}
	var checked bool
	if err := ref.call(ctx, isCheckedScript, &checked); err != nil {
		return false, wrapError("Locator.IsChecked", KindProtocol, err)
	}
	return checked, nil
}

// Check clicks the element only if it is not already checked (idempotent,
// unlike a bare Click on a checkbox).
func (l *Locator) Check(ctx context.Context) error {
	checked, err := l.IsChecked(ctx)
	if err != nil {
		return err
	}
	if checked {
		return nil
	}
	return l.Click(ctx)
}

// Uncheck clicks the element only if it is currently checked.
func (l *Locator) Uncheck(ctx context.Context) error {
	checked, err := l.IsChecked(ctx)
	if err != nil {
		return err
	}
	if !checked {
		return nil
	}
	return l.Click(ctx)
}

// SelectOption sets a <select>'s selected options to values and returns the
// options actually selected.
func (l *Locator) SelectOption(ctx context.Context, values ...string) ([]string, error) {
	ctx, cancel := l.frame.page.withDefaultTimeout(ctx)
	defer cancel()

	ref, err := l.pollUntilActionable(ctx, "Locator.SelectOption", actionableClickable)
	if err != nil {
		return nil, err
	}
	var selected []string
	if err := ref.call(ctx, selectOptionExprFunc(values), &selected); err != nil {
		return nil, wrapError("Locator.SelectOption", KindProtocol, err)
	}
	return selected, nil
}

func joinQuoted(values []string) string {
	out := "["
	for i, v := range values {
		if i > 0 {
			out += ","
		}
		out += cssQuoted(v)
	}
	return out + "]"
}

func selectOptionExprFunc(values []string) string {
	return "function(){\n\tconst values = " + joinQuoted(values) + ";\n" + `
	const opts = Array.from(this.options);
	for (const o of opts) { o.selected = values.includes(o.value); }
	this.dispatchEvent(new Event("change", {bubbles: true}));
	return opts.filter(o => o.selected).map(o => o.value);
}`
}

// SetInputFiles sets a file input's selected files via DOM.setFileInputFiles,
// waiting for the element to be attached first.
func (l *Locator) SetInputFiles(ctx context.Context, paths []string) error {
	ctx, cancel := l.frame.page.withDefaultTimeout(ctx)
	defer cancel()

	ref, err := l.pollUntilActionable(ctx, "Locator.SetInputFiles", actionableAttached)
	if err != nil {
		return err
	}
	return ref.setFiles(ctx, paths)
}
