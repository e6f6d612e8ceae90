// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/colorpicker/oklch.go
// Summary: OKLCH custom color selection mode.

package colorpicker

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpane/texelui/color"
	"github.com/framegrace/texelpane/texelui/core"
	"github.com/framegrace/texelpane/texelui/theme"
)

// OKLCHControl identifies which control is active in OKLCH picker.
type OKLCHControl int

const (
	OKLCHControlPlane     OKLCHControl = iota // Hue x Chroma plane
	OKLCHControlLightness                     // Lightness slider
)

const maxChroma = 0.4

// OKLCHPicker provides a custom color picker using OKLCH color space.
// Layout:
//   - H×C (hue×chroma) plane: 2D grid (20x10)
//   - L (lightness) slider: vertical on right
//   - Live preview at bottom
type OKLCHPicker struct {
	L float64 // Lightness: 0.0 - 1.0
	C float64 // Chroma: 0.0 - 0.4
	H float64 // Hue: 0 - 360

	activeControl OKLCHControl
	planeW        int
	planeH        int
	cursorX       int
	cursorY       int
}

// NewOKLCHPicker creates an OKLCH color picker.
func NewOKLCHPicker() *OKLCHPicker {
	op := &OKLCHPicker{
		L:             0.7,
		C:             0.15,
		H:             270,
		activeControl: OKLCHControlPlane,
		planeW:        20,
		planeH:        10,
	}
	op.syncCursor()
	return op
}

func (op *OKLCHPicker) Name() string { return "OKLCH" }

func (op *OKLCHPicker) layout(rect core.Rect) (plane, slider core.Rect) {
	plane = core.Rect{X: rect.X, Y: rect.Y, W: op.planeW, H: op.planeH}
	slider = core.Rect{X: rect.X + op.planeW + 2, Y: rect.Y, W: 3, H: op.planeH}
	return plane, slider
}

func (op *OKLCHPicker) Draw(painter *core.Painter, rect core.Rect) {
	tm := theme.Get()
	fg := tm.GetSemanticColor("text.primary")
	bg := tm.GetSemanticColor("bg.surface")
	baseStyle := tcell.StyleDefault.Foreground(fg).Background(bg)

	painter.Fill(rect, ' ', baseStyle)

	planeRect, sliderRect := op.layout(rect)
	previewRect := core.Rect{X: rect.X, Y: rect.Y + op.planeH + 1, W: rect.W, H: 2}

	op.drawPlane(painter, planeRect, bg)
	op.drawLightnessSlider(painter, sliderRect, fg, bg)
	op.drawPreview(painter, previewRect, baseStyle)

	painter.DrawText(rect.X, rect.Y+op.planeH, "H→", baseStyle)
	painter.DrawText(sliderRect.X, rect.Y+op.planeH, "L", baseStyle.Bold(op.activeControl == OKLCHControlLightness).Dim(op.activeControl == OKLCHControlPlane))
}

func (op *OKLCHPicker) drawPlane(painter *core.Painter, rect core.Rect, bg tcell.Color) {
	// X: hue 0-360, Y: chroma 0.4 at the top down to 0
	if rect.W <= 1 || rect.H <= 1 {
		return
	}
	for y := 0; y < rect.H; y++ {
		for x := 0; x < rect.W; x++ {
			h := float64(x) / float64(rect.W-1) * 360.0
			c := (1.0 - float64(y)/float64(rect.H-1)) * maxChroma

			r, g, b := color.OKLCHToRGB(op.L, c, h)
			ch := '█'
			if x == op.cursorX && y == op.cursorY {
				if op.activeControl == OKLCHControlPlane {
					ch = '●'
				} else {
					ch = '○'
				}
			}
			style := tcell.StyleDefault.Foreground(color.RGB(r, g, b).ToTcell()).Background(bg)
			if ch != '█' {
				style = MarkerStyle(color.RGB(r, g, b))
			}
			painter.SetCell(rect.X+x, rect.Y+y, ch, style)
		}
	}
}

func (op *OKLCHPicker) drawLightnessSlider(painter *core.Painter, rect core.Rect, fg, bg tcell.Color) {
	if rect.H <= 1 {
		return
	}
	frame := tcell.StyleDefault.Foreground(fg).Background(bg)
	thumb := int((1.0 - op.L) * float64(rect.H-1))

	for y := 0; y < rect.H; y++ {
		l := 1.0 - float64(y)/float64(rect.H-1)
		r, g, b := color.OKLCHToRGB(l, op.C, op.H)

		painter.SetCell(rect.X, rect.Y+y, '│', frame)
		ch := '█'
		style := tcell.StyleDefault.Foreground(color.RGB(r, g, b).ToTcell()).Background(bg)
		if y == thumb {
			if op.activeControl == OKLCHControlLightness {
				ch = '◆'
				style = style.Reverse(true)
			} else {
				ch = '◇'
			}
		}
		painter.SetCell(rect.X+1, rect.Y+y, ch, style)
		painter.SetCell(rect.X+2, rect.Y+y, '│', frame)
	}
}

func (op *OKLCHPicker) drawPreview(painter *core.Painter, rect core.Rect, baseStyle tcell.Style) {
	result := op.GetResult()
	_, bg, _ := baseStyle.Decompose()

	x, y := rect.X, rect.Y
	painter.SetCell(x, y, '[', baseStyle)
	for i := 1; i <= 3; i++ {
		painter.SetCell(x+i, y, '█', tcell.StyleDefault.Foreground(result.Color.ToTcell()).Background(bg))
	}
	painter.SetCell(x+4, y, ']', baseStyle)
	painter.DrawText(x+6, y, fmt.Sprintf("L:%.2f C:%.2f H:%.0f°", op.L, op.C, op.H), baseStyle)

	r, g, b := result.Color.RGB8()
	painter.DrawText(rect.X, y+1, fmt.Sprintf("%s RGB(%d,%d,%d)", color.Format(result.Color, color.NotationHex), r, g, b), baseStyle.Dim(true))
}

func (op *OKLCHPicker) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyTab, tcell.KeyBacktab:
		if op.activeControl == OKLCHControlPlane {
			op.activeControl = OKLCHControlLightness
		} else {
			op.activeControl = OKLCHControlPlane
		}
		return true
	}

	if op.activeControl == OKLCHControlPlane {
		return op.handlePlaneKey(ev)
	}
	return op.handleLightnessKey(ev)
}

func (op *OKLCHPicker) handlePlaneKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyLeft:
		op.cursorX--
	case tcell.KeyRight:
		op.cursorX++
	case tcell.KeyUp:
		op.cursorY--
	case tcell.KeyDown:
		op.cursorY++
	case tcell.KeyHome:
		op.cursorX = 0
	case tcell.KeyEnd:
		op.cursorX = op.planeW - 1
	default:
		return false
	}
	op.cursorX = clampInt(op.cursorX, 0, op.planeW-1)
	op.cursorY = clampInt(op.cursorY, 0, op.planeH-1)
	op.updateFromCursor()
	return true
}

func (op *OKLCHPicker) handleLightnessKey(ev *tcell.EventKey) bool {
	const step = 0.05
	switch ev.Key() {
	case tcell.KeyUp:
		op.L += step
	case tcell.KeyDown:
		op.L -= step
	case tcell.KeyHome:
		op.L = 1.0
	case tcell.KeyEnd:
		op.L = 0.0
	default:
		return false
	}
	op.L = clampUnit(op.L)
	return true
}

func (op *OKLCHPicker) updateFromCursor() {
	if op.planeW > 1 {
		op.H = float64(op.cursorX) / float64(op.planeW-1) * 360.0
	}
	if op.planeH > 1 {
		op.C = (1.0 - float64(op.cursorY)/float64(op.planeH-1)) * maxChroma
	}
}

func (op *OKLCHPicker) HandleMouse(ev *tcell.EventMouse, rect core.Rect) bool {
	if ev.Buttons()&tcell.Button1 == 0 {
		return false
	}
	x, y := ev.Position()
	planeRect, sliderRect := op.layout(rect)

	if planeRect.Contains(x, y) {
		op.activeControl = OKLCHControlPlane
		op.cursorX = x - planeRect.X
		op.cursorY = y - planeRect.Y
		op.updateFromCursor()
		return true
	}
	if sliderRect.Contains(x, y) {
		op.activeControl = OKLCHControlLightness
		if sliderRect.H > 1 {
			op.L = clampUnit(1.0 - float64(y-sliderRect.Y)/float64(sliderRect.H-1))
		}
		return true
	}
	return false
}

func (op *OKLCHPicker) GetResult() PickerResult {
	r, g, b := color.OKLCHToRGB(op.L, op.C, op.H)
	return PickerResult{
		Color:  color.RGB(r, g, b),
		Source: fmt.Sprintf("oklch(%.2f,%.2f,%.0f)", op.L, op.C, op.H),
	}
}

func (op *OKLCHPicker) PreferredSize() (int, int) {
	// Plane (20) + spacing (2) + slider (3), plane (10) + label (1) + preview (2)
	return 28, 13
}

func (op *OKLCHPicker) SetColor(c color.Color) {
	op.L, op.C, op.H = color.RGBToOKLCH(c.RGB8())
	op.syncCursor()
}

func (op *OKLCHPicker) syncCursor() {
	op.cursorX = clampInt(int(op.H/360.0*float64(op.planeW-1)+0.5), 0, op.planeW-1)
	op.cursorY = clampInt(int((1.0-op.C/maxChroma)*float64(op.planeH-1)+0.5), 0, op.planeH-1)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
