// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/colorpicker/hsv.go
// Summary: HSV selection mode: saturation/value plane plus hue bar.

package colorpicker

import (
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpane/texelui/theme"
	"github.com/framegrace/texelpane/texelui/color"
	"github.com/framegrace/texelpane/texelui/core"
)

// HSVControl identifies which control is active in the HSV picker.
type HSVControl int

const (
	HSVControlPlane HSVControl = iota // Saturation x Value plane
	HSVControlHue                     // Hue bar
)

// HSVPicker edits a color as hue, saturation and value.
// Layout:
//   - S×V plane rendered from a square bitmap
//   - hue bar below the plane
//   - preview line at the bottom
type HSVPicker struct {
	H, S, V float64

	activeControl HSVControl
	planeW        int
	planeH        int
	bitmap        *image.RGBA
	bitmapHue     float64
}

// NewHSVPicker creates an HSV picker whose plane bitmap is res×res pixels.
func NewHSVPicker(res int) *HSVPicker {
	if res <= 0 {
		res = 64
	}
	hp := &HSVPicker{
		H:      0,
		S:      100,
		V:      100,
		planeW: 24,
		planeH: 8,
		bitmap: image.NewRGBA(image.Rect(0, 0, res, res)),
	}
	hp.bitmapHue = -1
	return hp
}

func (hp *HSVPicker) Name() string { return "HSV" }

func (hp *HSVPicker) planeRect(rect core.Rect) core.Rect {
	return core.Rect{X: rect.X, Y: rect.Y, W: min(hp.planeW, rect.W), H: hp.planeH}
}

func (hp *HSVPicker) hueRect(rect core.Rect) core.Rect {
	return core.Rect{X: rect.X, Y: rect.Y + hp.planeH + 1, W: min(hp.planeW, rect.W), H: 1}
}

func (hp *HSVPicker) Draw(painter *core.Painter, rect core.Rect) {
	tm := theme.Get()
	baseStyle := tm.Style("text.primary", "bg.surface")
	painter.Fill(rect, ' ', baseStyle)

	if hp.bitmapHue != hp.H {
		FillSV(hp.bitmap, hp.H)
		hp.bitmapHue = hp.H
	}
	plane := hp.planeRect(rect)
	painter.DrawImage(plane, hp.bitmap)

	cur := hp.GetResult().Color
	mx, my := SVCell(plane, hp.S, hp.V)
	marker := '○'
	if hp.activeControl == HSVControlPlane {
		marker = '●'
	}
	painter.SetCell(mx, my, marker, MarkerStyle(cur))

	painter.DrawText(rect.X, rect.Y+hp.planeH, "H", baseStyle.Dim(hp.activeControl != HSVControlHue))
	DrawHueBar(painter, hp.hueRect(rect), hp.H, hp.activeControl == HSVControlHue)

	y := rect.Y + hp.planeH + 2
	painter.SetCell(rect.X, y, '[', baseStyle)
	painter.Fill(core.Rect{X: rect.X + 1, Y: y, W: 3, H: 1}, ' ', tcell.StyleDefault.Background(cur.ToTcell()))
	painter.SetCell(rect.X+4, y, ']', baseStyle)
	painter.DrawText(rect.X+6, y, fmt.Sprintf("H:%.0f° S:%.0f V:%.0f %s", hp.H, hp.S, hp.V, color.Format(cur, color.NotationHex)), baseStyle)
}

func (hp *HSVPicker) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyTab, tcell.KeyBacktab:
		if hp.activeControl == HSVControlPlane {
			hp.activeControl = HSVControlHue
		} else {
			hp.activeControl = HSVControlPlane
		}
		return true
	}

	step := 5.0
	if ev.Modifiers()&tcell.ModShift != 0 {
		step = 20
	}
	if hp.activeControl == HSVControlHue {
		switch ev.Key() {
		case tcell.KeyLeft:
			hp.H = wrapDegrees(hp.H - step)
			return true
		case tcell.KeyRight:
			hp.H = wrapDegrees(hp.H + step)
			return true
		case tcell.KeyHome:
			hp.H = 0
			return true
		}
		return false
	}

	switch ev.Key() {
	case tcell.KeyLeft:
		hp.S = clampPercent(hp.S - step)
	case tcell.KeyRight:
		hp.S = clampPercent(hp.S + step)
	case tcell.KeyUp:
		hp.V = clampPercent(hp.V + step)
	case tcell.KeyDown:
		hp.V = clampPercent(hp.V - step)
	default:
		return false
	}
	return true
}

func (hp *HSVPicker) HandleMouse(ev *tcell.EventMouse, rect core.Rect) bool {
	if ev.Buttons()&tcell.Button1 == 0 {
		return false
	}
	x, y := ev.Position()
	if plane := hp.planeRect(rect); plane.Contains(x, y) {
		hp.activeControl = HSVControlPlane
		hp.S, hp.V = SVAt(plane, x, y)
		return true
	}
	if bar := hp.hueRect(rect); bar.Contains(x, y) {
		hp.activeControl = HSVControlHue
		hp.H = HueAt(bar, x)
		return true
	}
	return false
}

func (hp *HSVPicker) GetResult() PickerResult {
	r, g, b := color.HSVToRGB(hp.H, hp.S, hp.V)
	return PickerResult{
		Color:  color.RGB(r, g, b),
		Source: fmt.Sprintf("hsv(%.0f,%.0f,%.0f)", hp.H, hp.S, hp.V),
	}
}

func (hp *HSVPicker) PreferredSize() (int, int) {
	// Plane + label row + hue bar + preview
	return hp.planeW + 2, hp.planeH + 3
}

// SetColor loads c. The hue of an achromatic color is undefined, so the
// current hue is kept for grays.
func (hp *HSVPicker) SetColor(c color.Color) {
	h, s, v := color.RGBToHSV(c.RGB8())
	if s > 0 && v > 0 {
		hp.H = h
	}
	hp.S, hp.V = s, v
}

func wrapDegrees(h float64) float64 {
	for h < 0 {
		h += 360
	}
	for h >= 360 {
		h -= 360
	}
	return h
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
