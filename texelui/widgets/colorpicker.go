// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/colorpicker.go
// Summary: Expandable color picker with HSV, OKLCH and theme modes.

package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelpane/texelui/color"
	"github.com/framegrace/texelpane/texelui/core"
	"github.com/framegrace/texelpane/texelui/theme"
	"github.com/framegrace/texelpane/texelui/value"
	"github.com/framegrace/texelpane/texelui/widgets/colorpicker"
)

// ColorPickerMode identifies the selection mode.
type ColorPickerMode int

const (
	ColorModeNone  ColorPickerMode = iota
	ColorModeHSV                   // Saturation/value plane + hue bar
	ColorModeOKLCH                 // Perceptual OKLCH plane
	ColorModeTheme                 // Semantic theme colors
)

// ColorPickerConfig defines which modes are enabled.
type ColorPickerConfig struct {
	EnableHSV   bool
	EnableOKLCH bool
	EnableTheme bool
	Label       string // Label shown in collapsed state
	Resolution  int    // HSV plane bitmap size, <= 0 for the default
}

// ColorPicker edits a color value through interchangeable modes.
// Collapsed: shows a color sample, the label and the formatted value.
// Expanded: shows tabs for each enabled mode; Enter writes the mode's color
// back through the value, keeping the value's alpha.
type ColorPicker struct {
	core.BaseWidget
	core.Lifecycle
	config ColorPickerConfig

	value       *value.Value[color.Color]
	expanded    bool
	currentMode ColorPickerMode
	source      string

	modes      map[ColorPickerMode]colorpicker.ModePicker
	modeOrder  []ColorPickerMode
	activeMode colorpicker.ModePicker

	inv func(core.Rect)
}

// NewColorPicker creates a color picker at (x, y) bound to val.
func NewColorPicker(x, y int, val *value.Value[color.Color], config ColorPickerConfig) *ColorPicker {
	cp := &ColorPicker{
		config: config,
		value:  val,
		modes:  make(map[ColorPickerMode]colorpicker.ModePicker),
	}
	cp.SetPosition(x, y)
	cp.SetFocusable(true)

	if config.EnableHSV {
		cp.addMode(ColorModeHSV, colorpicker.NewHSVPicker(config.Resolution))
	}
	if config.EnableOKLCH {
		cp.addMode(ColorModeOKLCH, colorpicker.NewOKLCHPicker())
	}
	if config.EnableTheme {
		cp.addMode(ColorModeTheme, colorpicker.NewThemePicker(nil))
	}
	if len(cp.modeOrder) == 0 {
		cp.addMode(ColorModeHSV, colorpicker.NewHSVPicker(config.Resolution))
	}
	cp.currentMode = cp.modeOrder[0]
	cp.activeMode = cp.modes[cp.currentMode]
	cp.loadModes()

	tm := theme.Get()
	cp.SetFocusedStyle(tm.Style("text.primary", "border.focus"), true)

	cp.OnDispose(val.OnChange(func(value.ChangeEvent[color.Color]) {
		if !cp.expanded {
			cp.loadModes()
		}
		cp.calculateSize()
		cp.invalidate()
	}))
	cp.calculateSize()
	return cp
}

func (cp *ColorPicker) addMode(mode ColorPickerMode, picker colorpicker.ModePicker) {
	cp.modes[mode] = picker
	cp.modeOrder = append(cp.modeOrder, mode)
}

// loadModes seeds every mode with the current value.
func (cp *ColorPicker) loadModes() {
	c := cp.value.RawValue()
	for _, m := range cp.modes {
		m.SetColor(c)
	}
}

// SetInvalidator allows the UI manager to inject a dirty-region invalidator.
func (cp *ColorPicker) SetInvalidator(fn func(core.Rect)) {
	cp.inv = fn
}

// SetValue parses text in any accepted notation and stores it.
func (cp *ColorPicker) SetValue(text string) error {
	if err := cp.Check(); err != nil {
		return err
	}
	if err := cp.value.Apply(text); err != nil {
		return err
	}
	cp.source = ""
	return nil
}

// Mode returns the active mode.
func (cp *ColorPicker) Mode() ColorPickerMode { return cp.currentMode }

// Source describes where the last committed color came from, e.g. a theme
// name. Empty when the color was typed or set programmatically.
func (cp *ColorPicker) Source() string { return cp.source }

// Toggle expands or collapses the picker.
func (cp *ColorPicker) Toggle() {
	cp.expanded = !cp.expanded
	if cp.expanded {
		cp.loadModes()
	}
	cp.calculateSize()
	cp.invalidate()
}

// Expand shows the color picker modes.
func (cp *ColorPicker) Expand() {
	if !cp.expanded {
		cp.Toggle()
	}
}

// Collapse hides the color picker modes.
func (cp *ColorPicker) Collapse() {
	if cp.expanded {
		cp.Toggle()
	}
}

// Expanded reports whether the modes are shown.
func (cp *ColorPicker) Expanded() bool { return cp.expanded }

// Draw renders the color picker.
func (cp *ColorPicker) Draw(painter *core.Painter) {
	if cp.Disposed() {
		return
	}
	if cp.expanded {
		cp.drawExpanded(painter)
	} else {
		cp.drawCollapsed(painter)
	}
}

// drawCollapsed renders: [█A] Label: text
func (cp *ColorPicker) drawCollapsed(painter *core.Painter) {
	tm := theme.Get()
	style := cp.EffectiveStyle(tm.Style("text.primary", "bg.surface"))
	globalBg := tm.GetSemanticColor("bg.base")
	c := cp.value.RawValue().ToTcell()

	painter.Fill(cp.Rect, ' ', style)
	x, y := cp.Rect.X, cp.Rect.Y

	// The block shows the color; the letter shows its contrast on the
	// global background.
	painter.SetCell(x, y, '[', style)
	painter.SetCell(x+1, y, ' ', tcell.StyleDefault.Background(c))
	sample := 'A'
	if len(cp.config.Label) > 0 {
		sample = []rune(cp.config.Label)[0]
	}
	painter.SetCell(x+2, y, sample, tcell.StyleDefault.Foreground(c).Background(globalBg))
	painter.SetCell(x+3, y, ']', style)
	x += 5

	if len(cp.config.Label) > 0 {
		x += painter.DrawText(x, y, cp.config.Label+":", style) + 1
	}

	text := cp.value.DisplayValue()
	if cp.source != "" {
		text += " (" + cp.source + ")"
	}
	if room := cp.Rect.X + cp.Rect.W - x; room > 0 {
		painter.DrawText(x, y, runewidth.Truncate(text, room, ""), style.Dim(true))
	}
}

// drawExpanded renders tabs and active mode content.
func (cp *ColorPicker) drawExpanded(painter *core.Painter) {
	tm := theme.Get()
	baseStyle := tm.Style("text.primary", "bg.surface")
	painter.Fill(cp.Rect, ' ', baseStyle)
	painter.DrawBorder(cp.Rect, cp.EffectiveStyle(baseStyle), [6]rune{'─', '│', '┌', '┐', '└', '┘'})

	x := cp.Rect.X + 2
	for _, mode := range cp.modeOrder {
		tab := " " + cp.modes[mode].Name() + " "
		tabStyle := baseStyle
		if mode == cp.currentMode {
			tabStyle = tabStyle.Reverse(true)
		}
		x += painter.DrawText(x, cp.Rect.Y, tab, tabStyle) + 1
	}

	cp.activeMode.Draw(painter, cp.contentRect())

	// Live preview in the bottom border: [█T]
	r := cp.activeMode.GetResult()
	px, py := cp.Rect.X+2, cp.Rect.Y+cp.Rect.H-1
	painter.SetCell(px, py, '[', baseStyle)
	painter.SetCell(px+1, py, ' ', tcell.StyleDefault.Background(r.Color.ToTcell()))
	painter.SetCell(px+2, py, 'T', tcell.StyleDefault.Foreground(r.Color.ToTcell()).Background(tm.GetSemanticColor("bg.base")))
	painter.SetCell(px+3, py, ']', baseStyle)
}

func (cp *ColorPicker) contentRect() core.Rect {
	return core.Rect{X: cp.Rect.X + 1, Y: cp.Rect.Y + 1, W: cp.Rect.W - 2, H: cp.Rect.H - 2}
}

// HandleKey processes keyboard input.
func (cp *ColorPicker) HandleKey(ev *tcell.EventKey) bool {
	if cp.Disposed() {
		return false
	}
	if !cp.expanded {
		if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ') {
			cp.Expand()
			return true
		}
		return false
	}

	switch ev.Key() {
	case tcell.KeyEsc:
		cp.Collapse()
		return true
	case tcell.KeyEnter:
		_ = cp.Commit()
		cp.Collapse()
		return true
	case tcell.KeyRune:
		if i := int(ev.Rune() - '1'); i >= 0 && i < len(cp.modeOrder) {
			cp.selectMode(cp.modeOrder[i])
			return true
		}
	}

	if cp.activeMode.HandleKey(ev) {
		cp.invalidate()
		return true
	}
	return false
}

// Commit writes the active mode's color to the value with the current alpha.
func (cp *ColorPicker) Commit() error {
	if err := cp.Check(); err != nil {
		return err
	}
	r := cp.activeMode.GetResult()
	alpha := cp.value.RawValue().Alpha()
	if err := cp.value.SetRawValue(r.Color.WithAlpha(alpha)); err != nil {
		return err
	}
	cp.source = ""
	if cp.currentMode == ColorModeTheme {
		cp.source = r.Source
	}
	return nil
}

// HandleMouse processes mouse input.
func (cp *ColorPicker) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	if cp.Disposed() || !cp.HitTest(x, y) {
		return false
	}
	pressed := ev.Buttons()&tcell.Button1 != 0

	if !cp.expanded {
		if pressed {
			cp.Expand()
			return true
		}
		return false
	}

	if y == cp.Rect.Y {
		if pressed {
			tabX := cp.Rect.X + 2
			for _, mode := range cp.modeOrder {
				w := runewidth.StringWidth(" " + cp.modes[mode].Name() + " ")
				if x >= tabX && x < tabX+w {
					cp.selectMode(mode)
					return true
				}
				tabX += w + 1
			}
		}
		return true
	}

	if cp.activeMode.HandleMouse(ev, cp.contentRect()) {
		cp.invalidate()
	}
	return true
}

// selectMode switches to a different mode.
func (cp *ColorPicker) selectMode(mode ColorPickerMode) {
	if picker, ok := cp.modes[mode]; ok {
		cp.currentMode = mode
		cp.activeMode = picker
		cp.calculateSize()
		cp.invalidate()
	}
}

// PreferredSize returns the size for the current state.
func (cp *ColorPicker) PreferredSize() (int, int) {
	if !cp.expanded {
		w := 5 + runewidth.StringWidth(cp.value.DisplayValue()) + 1
		if len(cp.config.Label) > 0 {
			w += runewidth.StringWidth(cp.config.Label) + 2
		}
		return max(w, 20), 1
	}
	w, h := 30, 12
	mw, mh := cp.activeMode.PreferredSize()
	return max(w, mw+2), max(h, mh+2)
}

func (cp *ColorPicker) calculateSize() {
	w, h := cp.PreferredSize()
	cp.Resize(w, h)
}

// invalidate marks the widget as needing redraw.
func (cp *ColorPicker) invalidate() {
	if cp.inv != nil {
		cp.inv(cp.Rect)
	}
}
