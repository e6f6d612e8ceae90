// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/hueslider.go
// Summary: Horizontal hue bar editing the hue of a color value.

package widgets

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpane/texelui/color"
	"github.com/framegrace/texelpane/texelui/core"
	"github.com/framegrace/texelpane/texelui/value"
	"github.com/framegrace/texelpane/texelui/widgets/colorpicker"
)

// HueSlider edits only the hue; saturation, value and alpha are kept.
type HueSlider struct {
	core.BaseWidget
	core.Lifecycle

	value *value.Value[color.Color]
	hue   *value.Value[float64]
	inv   func(core.Rect)
}

// NewHueSlider creates a w-wide hue bar sharing hue with a palette.
func NewHueSlider(x, y, w int, val *value.Value[color.Color], hue *value.Value[float64]) *HueSlider {
	hs := &HueSlider{value: val, hue: hue}
	hs.SetPosition(x, y)
	hs.Resize(w, 1)
	hs.SetFocusable(true)
	hs.OnDispose(hue.OnChange(func(value.ChangeEvent[float64]) { hs.invalidate() }))
	return hs
}

// SetInvalidator allows the UI manager to inject a dirty-region invalidator.
func (hs *HueSlider) SetInvalidator(fn func(core.Rect)) { hs.inv = fn }

func (hs *HueSlider) Draw(p *core.Painter) {
	if hs.Disposed() {
		return
	}
	colorpicker.DrawHueBar(p, hs.Rect, hs.hue.RawValue(), hs.IsFocused())
}

func (hs *HueSlider) HandleMouse(ev *tcell.EventMouse) bool {
	if hs.Disposed() || ev.Buttons()&tcell.Button1 == 0 {
		return false
	}
	x, _ := ev.Position()
	_ = hs.SetHue(colorpicker.HueAt(hs.Rect, x))
	return true
}

func (hs *HueSlider) HandleKey(ev *tcell.EventKey) bool {
	if hs.Disposed() {
		return false
	}
	step := 1.0
	if ev.Modifiers()&tcell.ModShift != 0 {
		step = 10
	}
	h := hs.hue.RawValue()
	switch ev.Key() {
	case tcell.KeyLeft:
		h -= step
	case tcell.KeyRight:
		h += step
	default:
		return false
	}
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	_ = hs.SetHue(h)
	return true
}

// SetHue moves the hue and recolors the value with it.
func (hs *HueSlider) SetHue(h float64) error {
	if err := hs.Check(); err != nil {
		return err
	}
	cur := hs.value.RawValue()
	_, s, v := color.RGBToHSV(cur.RGB8())
	if err := hs.value.SetRawValue(color.NewColor([4]float64{h, s, v, cur.Alpha()}, color.SpaceHSV)); err != nil {
		return err
	}
	// The color round trip quantizes the hue; keep the exact one.
	return hs.hue.SetRawValue(h)
}

func (hs *HueSlider) invalidate() {
	if hs.inv != nil {
		hs.inv(hs.Rect)
	}
}
