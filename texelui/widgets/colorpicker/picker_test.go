// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package colorpicker

import (
	"image"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpane/config"
	"github.com/framegrace/texelpane/texelui/color"
	"github.com/framegrace/texelpane/texelui/core"
	"github.com/framegrace/texelpane/texelui/theme"
)

func TestFillSVCorners(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for _, hue := range []float64{0, 120, 275} {
		FillSV(img, hue)
		if px := img.RGBAAt(0, 0); px.R != 255 || px.G != 255 || px.B != 255 || px.A != 255 {
			t.Errorf("hue %v: top-left = %v, want white", hue, px)
		}
		if px := img.RGBAAt(0, 63); px.R != 4 || px.G != 4 || px.B != 4 {
			t.Errorf("hue %v: bottom-left = %v, want (4,4,4)", hue, px)
		}
	}
	FillSV(img, 0)
	if px := img.RGBAAt(63, 0); px.R != 255 || px.G != 4 || px.B != 4 {
		t.Errorf("red plane top-right = %v", px)
	}
}

func TestSVAtAndSVCellAreInverse(t *testing.T) {
	rect := core.Rect{X: 3, Y: 2, W: 11, H: 6}
	for y := rect.Y; y < rect.Y+rect.H; y++ {
		for x := rect.X; x < rect.X+rect.W; x++ {
			s, v := SVAt(rect, x, y)
			if gx, gy := SVCell(rect, s, v); gx != x || gy != y {
				t.Fatalf("SVCell(SVAt(%d,%d)) = %d,%d", x, y, gx, gy)
			}
		}
	}
	if s, v := SVAt(rect, rect.X, rect.Y); s != 0 || v != 100 {
		t.Errorf("top-left = %v,%v", s, v)
	}
	if s, v := SVAt(rect, 100, 100); s != 100 || v != 0 {
		t.Errorf("outside bottom-right clamps to %v,%v", s, v)
	}
}

func TestHueAtEnds(t *testing.T) {
	rect := core.Rect{X: 0, Y: 0, W: 37, H: 1}
	if h := HueAt(rect, 0); h != 0 {
		t.Errorf("HueAt(0) = %v", h)
	}
	if h := HueAt(rect, 36); h != 359 {
		t.Errorf("HueAt(end) = %v", h)
	}
	if x := HueCell(rect, 180); x != 18 {
		t.Errorf("HueCell(180) = %d", x)
	}
}

func TestHSVPickerKeepsHueForGrays(t *testing.T) {
	hp := NewHSVPicker(16)
	hp.SetColor(color.RGB(0, 0, 255))
	if hp.H != 240 {
		t.Fatalf("hue = %v, want 240", hp.H)
	}
	hp.SetColor(color.RGB(128, 128, 128))
	if hp.H != 240 || hp.S != 0 {
		t.Errorf("gray: h=%v s=%v", hp.H, hp.S)
	}
}

func TestHSVPickerKeys(t *testing.T) {
	hp := NewHSVPicker(16)
	hp.SetColor(color.RGB(255, 0, 0))

	hp.HandleKey(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	if hp.V != 95 {
		t.Errorf("V after down = %v", hp.V)
	}
	hp.HandleKey(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone))
	hp.HandleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if hp.H != 355 {
		t.Errorf("H after left wraps to %v", hp.H)
	}
	if got := hp.GetResult().Source; got != "hsv(355,100,95)" {
		t.Errorf("source = %q", got)
	}
}

func TestHSVPickerMouse(t *testing.T) {
	hp := NewHSVPicker(16)
	rect := core.Rect{X: 0, Y: 0, W: 26, H: 11}
	ev := tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone)
	if !hp.HandleMouse(ev, rect) {
		t.Fatal("click on plane ignored")
	}
	if hp.S != 0 || hp.V != 100 {
		t.Errorf("top-left click: s=%v v=%v", hp.S, hp.V)
	}
	if hp.GetResult().Color != color.RGB(255, 255, 255) {
		t.Errorf("result = %v", hp.GetResult().Color)
	}
}

func TestOKLCHPickerRoundTrip(t *testing.T) {
	op := NewOKLCHPicker()
	for _, c := range []color.Color{color.RGB(200, 40, 90), color.RGB(10, 150, 220), color.RGB(128, 128, 128)} {
		op.SetColor(c)
		got := op.GetResult().Color
		r0, g0, b0 := c.RGB8()
		r1, g1, b1 := got.RGB8()
		if absDiff(r0, r1) > 1 || absDiff(g0, g1) > 1 || absDiff(b0, b1) > 1 {
			t.Errorf("OKLCH round trip %v -> %v", c, got)
		}
	}
}

func TestThemePickerSelectsMatchingColor(t *testing.T) {
	tm := theme.Load(config.Config{
		config.ThemeSection: map[string]interface{}{"zz.custom": "#010203"},
	})
	tp := NewThemePicker(tm)
	tp.SetColor(color.RGB(1, 2, 3))
	res := tp.GetResult()
	if res.Source != "zz.custom" || res.Color != color.RGB(1, 2, 3) {
		t.Errorf("result = %+v", res)
	}
	tp.HandleKey(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone))
	if tp.GetResult().Source != tm.Names()[0] {
		t.Errorf("Home did not select first entry")
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestThemePickerScrollsToSelection(t *testing.T) {
	tp := NewThemePicker(theme.Load(config.Config{}))
	n := len(tp.tm.Names())
	if n <= 3 {
		t.Skipf("theme has only %d colors", n)
	}
	tp.HandleKey(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone))

	buf := core.NewBuffer(20, 3)
	rect := core.Rect{W: 20, H: 3}
	tp.Draw(core.NewPainter(buf, rect), rect)
	if tp.view.Offset != n-3 {
		t.Errorf("offset = %d, want %d", tp.view.Offset, n-3)
	}
	if buf[0][19].Ch != '▲' || buf[2][19].Ch == '▼' {
		t.Errorf("indicators = %q %q", buf[0][19].Ch, buf[2][19].Ch)
	}

	click := tcell.NewEventMouse(5, 0, tcell.Button1, tcell.ModNone)
	if !tp.HandleMouse(click, rect) || tp.GetResult().Source != tp.tm.Names()[n-3] {
		t.Errorf("click selected %q", tp.GetResult().Source)
	}
}
