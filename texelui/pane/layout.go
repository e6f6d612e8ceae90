// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/pane/layout.go
// Summary: Row layout of labels and controllers inside the pane frame.

package pane

import (
	"github.com/framegrace/texelpane/texelui/core"
	"github.com/framegrace/texelpane/texelui/widgets"
)

type sizer interface {
	PreferredSize() (int, int)
}

// column stacks binding rows. Row height follows the controller's
// preferred height so expanding a palette pushes later rows down.
type column struct {
	core.BaseWidget
	bg         *widgets.Pane
	rows       []*Binding
	labelWidth int
	inv        func(core.Rect)
}

func (c *column) SetPosition(x, y int) {
	c.BaseWidget.SetPosition(x, y)
	c.arrange()
}

func (c *column) Resize(w, h int) {
	c.BaseWidget.Resize(w, h)
	c.arrange()
}

// measure returns the total row height.
func (c *column) measure() int {
	return c.arrange()
}

// arrange positions every row and returns the height used.
func (c *column) arrange() int {
	r := c.Rect
	lw := min(c.labelWidth, r.W)
	cw := max(r.W-lw, 1)
	y := r.Y
	for _, b := range c.rows {
		h := 1
		if s, ok := b.view.(sizer); ok {
			_, h = s.PreferredSize()
		}
		b.label.SetPosition(r.X, y)
		b.label.Resize(max(lw-1, 0), 1)
		b.view.SetPosition(r.X+lw, y)
		b.view.Resize(cw, h)
		y += h
	}
	c.bg.SetPosition(r.X, r.Y)
	c.bg.Resize(r.W, r.H)
	return y - r.Y
}

func (c *column) Draw(p *core.Painter) {
	c.bg.Draw(p)
	for _, b := range c.rows {
		b.label.Draw(p)
		b.view.Draw(p)
	}
}

func (c *column) SetInvalidator(fn func(core.Rect)) { c.inv = fn }

// VisitChildren visits the controllers; labels take no input.
func (c *column) VisitChildren(fn func(core.Widget)) {
	for _, b := range c.rows {
		fn(b.view)
	}
}

// WidgetAt returns the deepest controller under (x, y).
func (c *column) WidgetAt(x, y int) core.Widget {
	for _, b := range c.rows {
		if ht, ok := b.view.(core.HitTester); ok {
			if w := ht.WidgetAt(x, y); w != nil {
				return w
			}
		}
		if b.view.HitTest(x, y) {
			return b.view
		}
	}
	return nil
}
