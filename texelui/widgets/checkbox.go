// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/checkbox.go
// Summary: Toggle bound to a boolean value.

package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpane/texelui/core"
	"github.com/framegrace/texelpane/texelui/theme"
	"github.com/framegrace/texelpane/texelui/value"
)

// Checkbox displays and toggles a boolean value.
// Format: [X] Label or [ ] Label
// When focused, shows a cursor: > [X] Label
type Checkbox struct {
	core.BaseWidget
	core.Lifecycle
	Label string
	Style tcell.Style

	value *value.Value[bool]
	inv   func(core.Rect)
}

// NewCheckbox creates a checkbox at the specified position.
// Width is calculated automatically based on label length.
func NewCheckbox(x, y int, label string, val *value.Value[bool]) *Checkbox {
	c := &Checkbox{Label: label, value: val}

	tm := theme.Get()
	c.Style = tm.Style("text.primary", "bg.surface")
	c.SetFocusedStyle(tm.Style("text.primary", "bg.selection"), true)

	c.SetPosition(x, y)
	// "> [X] " + label
	c.Resize(6+len(label), 1)
	c.SetFocusable(true)

	c.OnDispose(val.OnChange(func(value.ChangeEvent[bool]) {
		if c.inv != nil {
			c.inv(c.Rect)
		}
	}))
	return c
}

// SetInvalidator allows the UI manager to inject a dirty-region invalidator.
func (c *Checkbox) SetInvalidator(fn func(core.Rect)) { c.inv = fn }

// Checked returns the bound value. It panics once disposed.
func (c *Checkbox) Checked() bool {
	c.MustBeAlive()
	return c.value.RawValue()
}

// Draw renders the checkbox with its current state.
func (c *Checkbox) Draw(painter *core.Painter) {
	if c.Disposed() {
		return
	}
	style := c.EffectiveStyle(c.Style)
	painter.Fill(core.Rect{X: c.Rect.X, Y: c.Rect.Y, W: c.Rect.W, H: 1}, ' ', style)

	cursor := "  "
	if c.IsFocused() {
		cursor = "> "
	}
	check := "[ ] "
	if c.value.RawValue() {
		check = "[X] "
	}
	painter.DrawText(c.Rect.X, c.Rect.Y, cursor+check+c.Label, style)
}

// HandleKey processes keyboard input. Space toggles the checkbox.
func (c *Checkbox) HandleKey(ev *tcell.EventKey) bool {
	if c.Disposed() {
		return false
	}
	if ev.Rune() == ' ' || ev.Key() == tcell.KeyEnter {
		_ = c.Toggle()
		return true
	}
	return false
}

// HandleMouse processes mouse input. Click toggles the checkbox.
func (c *Checkbox) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	if c.Disposed() || !c.HitTest(x, y) {
		return false
	}
	if ev.Buttons()&tcell.Button1 != 0 {
		_ = c.Toggle()
		return true
	}
	return false
}

// Toggle flips the bound value.
func (c *Checkbox) Toggle() error {
	if err := c.Check(); err != nil {
		return err
	}
	return c.value.SetRawValue(!c.value.RawValue())
}
