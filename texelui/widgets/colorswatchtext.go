// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/colorswatchtext.go
// Summary: Color input row: swatch plus text field, with an expandable
// saturation/value palette and hue slider.

package widgets

import (
	"github.com/framegrace/texelpane/texelui/color"
	"github.com/framegrace/texelpane/texelui/core"
	"github.com/framegrace/texelpane/texelui/value"
)

const (
	swatchWidth = 3
	paletteRows = 6
)

// ColorSwatchText is the input view for color values. Clicking the swatch
// toggles the palette below the row.
type ColorSwatchText struct {
	core.BaseWidget
	core.Lifecycle

	Swatch  *Swatch
	Text    *TextInput
	Palette *SVPalette
	Hue     *HueSlider

	value    *value.Value[color.Color]
	hue      *value.Value[float64]
	expanded bool
	inv      func(core.Rect)
}

// NewColorSwatchText creates the row at (x, y) with width w. res is the
// palette bitmap resolution (<= 0 for the configured default).
func NewColorSwatchText(x, y, w int, val *value.Value[color.Color], res int) *ColorSwatchText {
	cs := &ColorSwatchText{value: val}
	cs.hue = NewHueValue(val)
	cs.Swatch = NewSwatch(0, 0, swatchWidth-1, 1, val)
	cs.Text = NewTextInput(0, 0, 1, val)
	cs.Palette = NewSVPalette(0, 0, 1, paletteRows, val, cs.hue, res)
	cs.Hue = NewHueSlider(0, 0, 1, val, cs.hue)
	cs.Swatch.OnClick = cs.Toggle

	cs.OnDispose(cs.hue.Dispose)
	cs.OnDispose(cs.Swatch.Dispose)
	cs.OnDispose(cs.Text.Dispose)
	cs.OnDispose(cs.Palette.Dispose)
	cs.OnDispose(cs.Hue.Dispose)

	cs.SetPosition(x, y)
	cs.Resize(w, 1)
	return cs
}

// SetInvalidator passes the invalidator to every child, shown or not.
func (cs *ColorSwatchText) SetInvalidator(fn func(core.Rect)) {
	cs.inv = fn
	cs.Swatch.SetInvalidator(fn)
	cs.Text.SetInvalidator(fn)
	cs.Palette.SetInvalidator(fn)
	cs.Hue.SetInvalidator(fn)
}

// Expanded reports whether the palette is shown.
func (cs *ColorSwatchText) Expanded() bool { return cs.expanded }

// SetExpanded shows or hides the palette and hue slider.
func (cs *ColorSwatchText) SetExpanded(on bool) {
	if cs.expanded == on {
		return
	}
	cs.expanded = on
	_, h := cs.PreferredSize()
	cs.Resize(cs.Rect.W, h)
	if cs.inv != nil {
		cs.inv(cs.Rect)
	}
}

// Toggle flips the palette visibility.
func (cs *ColorSwatchText) Toggle() { cs.SetExpanded(!cs.expanded) }

// PreferredSize returns the current width and the height for the current
// expansion state.
func (cs *ColorSwatchText) PreferredSize() (int, int) {
	if cs.expanded {
		return cs.Rect.W, 1 + paletteRows + 1
	}
	return cs.Rect.W, 1
}

func (cs *ColorSwatchText) SetPosition(x, y int) {
	cs.BaseWidget.SetPosition(x, y)
	cs.layout()
}

func (cs *ColorSwatchText) Resize(w, h int) {
	cs.BaseWidget.Resize(w, h)
	cs.layout()
}

func (cs *ColorSwatchText) layout() {
	r := cs.Rect
	cs.Swatch.SetPosition(r.X, r.Y)
	cs.Text.SetPosition(r.X+swatchWidth, r.Y)
	cs.Text.Resize(r.W-swatchWidth, 1)
	cs.Palette.SetPosition(r.X, r.Y+1)
	cs.Palette.Resize(r.W, paletteRows)
	cs.Hue.SetPosition(r.X, r.Y+1+paletteRows)
	cs.Hue.Resize(r.W, 1)
}

func (cs *ColorSwatchText) Draw(p *core.Painter) {
	if cs.Disposed() {
		return
	}
	cs.VisitChildren(func(w core.Widget) { w.Draw(p) })
}

// VisitChildren visits the visible children.
func (cs *ColorSwatchText) VisitChildren(fn func(core.Widget)) {
	fn(cs.Swatch)
	fn(cs.Text)
	if cs.expanded {
		fn(cs.Palette)
		fn(cs.Hue)
	}
}

// WidgetAt returns the visible child under (x, y).
func (cs *ColorSwatchText) WidgetAt(x, y int) core.Widget {
	var hit core.Widget
	cs.VisitChildren(func(w core.Widget) {
		if hit == nil && w.HitTest(x, y) {
			hit = w
		}
	})
	return hit
}
