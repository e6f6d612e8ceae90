// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/swatch.go
// Summary: Color sample cell block bound to a color value.

package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpane/texelui/color"
	"github.com/framegrace/texelpane/texelui/core"
	"github.com/framegrace/texelpane/texelui/value"
)

var (
	checkerDark  = color.RGB(0x30, 0x30, 0x30)
	checkerLight = color.RGB(0xc0, 0xc0, 0xc0)
)

// Swatch paints the bound color. Translucent colors are shown blended over
// alternating dark and light cells so the alpha stays visible.
type Swatch struct {
	core.BaseWidget
	core.Lifecycle

	OnClick func()

	value *value.Value[color.Color]
	inv   func(core.Rect)
}

// NewSwatch creates a w×h swatch at (x, y).
func NewSwatch(x, y, w, h int, val *value.Value[color.Color]) *Swatch {
	s := &Swatch{value: val}
	s.SetPosition(x, y)
	s.Resize(w, h)
	s.OnDispose(val.OnChange(func(value.ChangeEvent[color.Color]) { s.invalidate() }))
	return s
}

// SetInvalidator allows the UI manager to inject a dirty-region invalidator.
func (s *Swatch) SetInvalidator(fn func(core.Rect)) { s.inv = fn }

// CellColor returns the color painted at column offset dx.
func (s *Swatch) CellColor(dx int) color.Color {
	c := s.value.RawValue()
	if c.Alpha() >= 1 {
		return c
	}
	if dx%2 == 0 {
		return c.Blend(checkerDark)
	}
	return c.Blend(checkerLight)
}

func (s *Swatch) Draw(p *core.Painter) {
	if s.Disposed() {
		return
	}
	for dx := 0; dx < s.Rect.W; dx++ {
		style := tcell.StyleDefault.Background(s.CellColor(dx).ToTcell())
		p.Fill(core.Rect{X: s.Rect.X + dx, Y: s.Rect.Y, W: 1, H: s.Rect.H}, ' ', style)
	}
}

func (s *Swatch) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	if !s.HitTest(x, y) || ev.Buttons()&tcell.Button1 == 0 {
		return false
	}
	if s.OnClick != nil {
		s.OnClick()
	}
	return true
}

func (s *Swatch) invalidate() {
	if s.inv != nil {
		s.inv(s.Rect)
	}
}
