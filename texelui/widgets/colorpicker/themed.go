// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/colorpicker/themed.go
// Summary: Theme selection mode listing the semantic theme colors.

package colorpicker

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpane/texelui/color"
	"github.com/framegrace/texelpane/texelui/core"
	"github.com/framegrace/texelpane/texelui/scroll"
	"github.com/framegrace/texelpane/texelui/theme"
)

// ThemePicker offers the colors of a theme by semantic name.
type ThemePicker struct {
	tm       *theme.Theme
	names    []string
	selected int
	view     scroll.State
}

// NewThemePicker lists the colors of tm; nil means the active theme.
func NewThemePicker(tm *theme.Theme) *ThemePicker {
	if tm == nil {
		tm = theme.Get()
	}
	names := tm.Names()
	return &ThemePicker{tm: tm, names: names, view: scroll.State{Content: len(names), Viewport: 10}}
}

func (tp *ThemePicker) Name() string { return "Theme" }

func (tp *ThemePicker) Draw(painter *core.Painter, rect core.Rect) {
	base := tp.tm.Style("text.primary", "bg.surface")
	painter.Fill(rect, ' ', base)
	tp.ensureVisible(rect.H)

	for row := 0; row < rect.H && tp.view.Offset+row < len(tp.names); row++ {
		i := tp.view.Offset + row
		c, _ := tp.tm.Color(tp.names[i])
		style := base
		if i == tp.selected {
			style = tp.tm.Style("text.primary", "bg.selection")
			painter.Fill(core.Rect{X: rect.X, Y: rect.Y + row, W: rect.W, H: 1}, ' ', style)
		}
		painter.SetCell(rect.X, rect.Y+row, ' ', tcell.StyleDefault.Background(c.ToTcell()))
		painter.SetCell(rect.X+1, rect.Y+row, ' ', tcell.StyleDefault.Background(c.ToTcell()))
		painter.DrawText(rect.X+3, rect.Y+row, tp.names[i], style)
	}
	scroll.DrawIndicators(painter, rect, tp.view, tp.tm.Style("text.muted", "bg.surface"))
}

func (tp *ThemePicker) ensureVisible(h int) {
	if h <= 0 {
		return
	}
	tp.view.Viewport = h
	tp.view.Content = len(tp.names)
	tp.view = tp.view.EnsureVisible(tp.selected)
}

func (tp *ThemePicker) HandleKey(ev *tcell.EventKey) bool {
	if len(tp.names) == 0 {
		return false
	}
	switch ev.Key() {
	case tcell.KeyUp:
		tp.selected--
	case tcell.KeyDown:
		tp.selected++
	case tcell.KeyHome:
		tp.selected = 0
	case tcell.KeyEnd:
		tp.selected = len(tp.names) - 1
	case tcell.KeyPgUp:
		tp.selected -= tp.view.Viewport
	case tcell.KeyPgDn:
		tp.selected += tp.view.Viewport
	default:
		return false
	}
	tp.selected = clampInt(tp.selected, 0, len(tp.names)-1)
	return true
}

func (tp *ThemePicker) HandleMouse(ev *tcell.EventMouse, rect core.Rect) bool {
	if ev.Buttons()&tcell.Button1 == 0 {
		return false
	}
	x, y := ev.Position()
	if !rect.Contains(x, y) {
		return false
	}
	i := tp.view.Offset + y - rect.Y
	if i < 0 || i >= len(tp.names) {
		return false
	}
	tp.selected = i
	return true
}

func (tp *ThemePicker) PreferredSize() (int, int) {
	w := 12
	for _, n := range tp.names {
		w = max(w, len(n)+4)
	}
	return w, min(len(tp.names), 10)
}

// SetColor selects the first theme entry equal to c, if any.
func (tp *ThemePicker) SetColor(c color.Color) {
	for i, n := range tp.names {
		if tc, _ := tp.tm.Color(n); tc.WithAlpha(1) == c.WithAlpha(1) {
			tp.selected = i
			return
		}
	}
}

func (tp *ThemePicker) GetResult() PickerResult {
	if len(tp.names) == 0 {
		return PickerResult{Color: color.RGB(0, 0, 0)}
	}
	name := tp.names[tp.selected]
	c, _ := tp.tm.Color(name)
	return PickerResult{Color: c, Source: name}
}
