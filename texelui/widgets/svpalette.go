// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/svpalette.go
// Summary: Saturation/value palette view owning a bitmap of the current hue.

package widgets

import (
	"image"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpane/config"
	"github.com/framegrace/texelpane/texelui/color"
	"github.com/framegrace/texelpane/texelui/core"
	"github.com/framegrace/texelpane/texelui/value"
	"github.com/framegrace/texelpane/texelui/widgets/colorpicker"
)

// NewHueValue returns a hue cell that follows val. Grays carry no hue, so
// the hue only moves when val is chromatic; views sharing it keep their
// hue while the user drags through the achromatic edge of the palette.
func NewHueValue(val *value.Value[color.Color]) *value.Value[float64] {
	h, _, _ := color.RGBToHSV(val.RawValue().RGB8())
	hue := value.New(h, nil, value.FloatCodec())
	hue.OnDispose(val.OnChange(func(ev value.ChangeEvent[color.Color]) {
		h, s, v := color.RGBToHSV(ev.New.RGB8())
		if s > 0 && v > 0 {
			_ = hue.SetRawValue(h)
		}
	}))
	return hue
}

// SVPalette shows the saturation/value plane of the current hue. It owns a
// res×res bitmap rebuilt wholesale on every change of the color or hue.
type SVPalette struct {
	core.BaseWidget
	core.Lifecycle

	value  *value.Value[color.Color]
	hue    *value.Value[float64]
	canvas *image.RGBA
	left   float64 // marker position in percent of the width
	top    float64 // marker position in percent of the height
	inv    func(core.Rect)
}

// NewSVPalette creates a palette bound to val. hue may be shared with a
// HueSlider; nil creates a private one. res <= 0 uses the configured
// pane.palette_resolution.
func NewSVPalette(x, y, w, h int, val *value.Value[color.Color], hue *value.Value[float64], res int) *SVPalette {
	if res <= 0 {
		res = config.System().GetInt(config.PaneSection, config.KeyPaletteResolution, config.DefaultPaletteResolution)
	}
	sp := &SVPalette{
		value:  val,
		canvas: image.NewRGBA(image.Rect(0, 0, res, res)),
	}
	if hue == nil {
		hue = NewHueValue(val)
		sp.OnDispose(hue.Dispose)
	}
	sp.hue = hue
	sp.SetPosition(x, y)
	sp.Resize(w, h)
	sp.SetFocusable(true)

	update := func() { _ = sp.Update() }
	sp.OnDispose(val.OnChange(func(value.ChangeEvent[color.Color]) { update() }))
	sp.OnDispose(hue.OnChange(func(value.ChangeEvent[float64]) { update() }))
	sp.OnDispose(func() { sp.canvas = nil })

	_ = sp.Update()
	return sp
}

// SetInvalidator allows the UI manager to inject a dirty-region invalidator.
func (sp *SVPalette) SetInvalidator(fn func(core.Rect)) { sp.inv = fn }

// Canvas returns the palette bitmap. It panics with core.ErrAlreadyDisposed
// once the palette is disposed.
func (sp *SVPalette) Canvas() *image.RGBA {
	sp.MustBeAlive()
	return sp.canvas
}

// Marker returns the marker position in percent: left from saturation and
// top from inverted value.
func (sp *SVPalette) Marker() (left, top float64) { return sp.left, sp.top }

// Update rebuilds the bitmap for the current hue and moves the marker.
func (sp *SVPalette) Update() error {
	if err := sp.Check(); err != nil {
		return err
	}
	_, s, v := color.RGBToHSV(sp.value.RawValue().RGB8())
	colorpicker.FillSV(sp.canvas, sp.hue.RawValue())
	sp.left = s
	sp.top = 100 - v
	sp.invalidate()
	return nil
}

func (sp *SVPalette) Draw(p *core.Painter) {
	if sp.Disposed() {
		return
	}
	p.DrawImage(sp.Rect, sp.canvas)
	mx, my := colorpicker.SVCell(sp.Rect, sp.left, 100-sp.top)
	marker := '○'
	if sp.IsFocused() {
		marker = '●'
	}
	p.SetCell(mx, my, marker, colorpicker.MarkerStyle(sp.value.RawValue()))
}

// HandleMouse sets saturation and value from the pointer. Drags outside the
// palette clamp to its edges.
func (sp *SVPalette) HandleMouse(ev *tcell.EventMouse) bool {
	if sp.Disposed() || ev.Buttons()&tcell.Button1 == 0 {
		return false
	}
	x, y := ev.Position()
	s, v := colorpicker.SVAt(sp.Rect, x, y)
	_ = sp.setSV(s, v)
	return true
}

func (sp *SVPalette) HandleKey(ev *tcell.EventKey) bool {
	if sp.Disposed() {
		return false
	}
	step := 1.0
	if ev.Modifiers()&tcell.ModShift != 0 {
		step = 10
	}
	s, v := sp.left, 100-sp.top
	switch ev.Key() {
	case tcell.KeyLeft:
		s -= step
	case tcell.KeyRight:
		s += step
	case tcell.KeyUp:
		v += step
	case tcell.KeyDown:
		v -= step
	default:
		return false
	}
	_ = sp.setSV(min(max(s, 0), 100), min(max(v, 0), 100))
	return true
}

// setSV writes a color with the palette's hue, the given saturation and
// value, and the current alpha.
func (sp *SVPalette) setSV(s, v float64) error {
	cur := sp.value.RawValue()
	next := color.NewColor([4]float64{sp.hue.RawValue(), s, v, cur.Alpha()}, color.SpaceHSV)
	return sp.value.SetRawValue(next)
}

func (sp *SVPalette) invalidate() {
	if sp.inv != nil {
		sp.inv(sp.Rect)
	}
}
