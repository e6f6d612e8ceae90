// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/colorpicker/picker.go
// Summary: Mode picker contract and shared saturation/value raster helpers.

// Package colorpicker holds the selection modes hosted by widgets.ColorPicker.
package colorpicker

import (
	"image"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpane/texelui/color"
	"github.com/framegrace/texelpane/texelui/core"
)

// PickerResult is the color a mode currently proposes.
type PickerResult struct {
	Color  color.Color
	Source string // e.g. "hsv(210,50,40)", "oklch(0.70,0.15,270)", "accent"
}

// ModePicker is one tab of the color picker.
type ModePicker interface {
	Name() string
	Draw(painter *core.Painter, rect core.Rect)
	HandleKey(ev *tcell.EventKey) bool
	HandleMouse(ev *tcell.EventMouse, rect core.Rect) bool
	PreferredSize() (int, int)
	SetColor(c color.Color)
	GetResult() PickerResult
}

// FillSV rasterizes the saturation/value plane of hue into img. Column ix
// maps to s = ix·100/w, row iy to v = 100 − iy·100/h, so the top-left pixel
// is white and the bottom row approaches black.
func FillSV(img *image.RGBA, hue float64) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}
	for iy := 0; iy < h; iy++ {
		v := 100 - float64(iy)*100/float64(h)
		for ix := 0; ix < w; ix++ {
			s := float64(ix) * 100 / float64(w)
			r, g, bl := color.HSVToRGB(hue, s, v)
			i := img.PixOffset(b.Min.X+ix, b.Min.Y+iy)
			img.Pix[i] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = bl
			img.Pix[i+3] = 255
		}
	}
}

// SVAt maps a cell inside rect to saturation and value percentages. The
// left column is s=0, the right column s=100, the top row v=100 and the
// bottom row v=0.
func SVAt(rect core.Rect, x, y int) (s, v float64) {
	if rect.W > 1 {
		s = float64(clampInt(x-rect.X, 0, rect.W-1)) * 100 / float64(rect.W-1)
	}
	if rect.H > 1 {
		v = 100 - float64(clampInt(y-rect.Y, 0, rect.H-1))*100/float64(rect.H-1)
	} else {
		v = 100
	}
	return s, v
}

// SVCell is the inverse of SVAt: the cell showing saturation s and value v.
func SVCell(rect core.Rect, s, v float64) (x, y int) {
	x = rect.X + int(s/100*float64(rect.W-1)+0.5)
	y = rect.Y + int((100-v)/100*float64(rect.H-1)+0.5)
	return x, y
}

// HueAt maps a column of a horizontal hue bar to degrees in [0, 360).
func HueAt(rect core.Rect, x int) float64 {
	if rect.W <= 1 {
		return 0
	}
	return float64(clampInt(x-rect.X, 0, rect.W-1)) * 359 / float64(rect.W-1)
}

// HueCell is the column of a horizontal hue bar showing hue h.
func HueCell(rect core.Rect, h float64) int {
	if rect.W <= 1 {
		return rect.X
	}
	return rect.X + int(h/359*float64(rect.W-1)+0.5)
}

// DrawHueBar paints a horizontal hue spectrum with a marker at hue.
func DrawHueBar(painter *core.Painter, rect core.Rect, hue float64, active bool) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	marker := HueCell(rect, hue)
	for x := rect.X; x < rect.X+rect.W; x++ {
		r, g, b := color.HSVToRGB(HueAt(rect, x), 100, 100)
		bg := color.RGB(r, g, b).ToTcell()
		style := tcell.StyleDefault.Background(bg).Foreground(tcell.ColorBlack)
		ch := ' '
		if x == marker {
			ch = '◇'
			if active {
				ch = '◆'
			}
		}
		for y := rect.Y; y < rect.Y+rect.H; y++ {
			painter.SetCell(x, y, ch, style)
		}
	}
}

// MarkerStyle picks a marker color readable on top of c.
func MarkerStyle(c color.Color) tcell.Style {
	_, _, v := color.RGBToHSV(c.RGB8())
	fg := tcell.ColorWhite
	if v > 60 {
		fg = tcell.ColorBlack
	}
	return tcell.StyleDefault.Foreground(fg).Background(c.ToTcell())
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
