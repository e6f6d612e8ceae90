// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/textinput.go
// Summary: Single-line text field editing the display text of a bound value.

package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelpane/texelui/core"
	"github.com/framegrace/texelpane/texelui/theme"
)

// TextModel is the display side of a bound value. *value.Value[T]
// implements it for every T.
type TextModel interface {
	DisplayValue() string
	SetDisplayValue(string) error
	Commit() error
	Revert() error
	OnDisplay(func(string)) (off func())
}

// TextInput is a single-line editor. Typing changes the display text only;
// Enter or losing focus commits it, Esc reverts it.
type TextInput struct {
	core.BaseWidget
	core.Lifecycle
	Style tcell.Style

	model TextModel
	text  []rune
	caret int // rune index
	off   int // first visible column
	dirty bool
	inv   func(core.Rect)
}

// NewTextInput creates a text field at (x, y) of width w bound to model.
func NewTextInput(x, y, w int, model TextModel) *TextInput {
	tm := theme.Get()
	ti := &TextInput{
		Style: tm.Style("text.primary", "bg.surface"),
		model: model,
		text:  []rune(model.DisplayValue()),
	}
	ti.caret = len(ti.text)
	ti.SetFocusedStyle(tm.Style("text.primary", "bg.selection"), true)
	ti.SetPosition(x, y)
	ti.Resize(w, 1)
	ti.SetFocusable(true)

	ti.OnDispose(model.OnDisplay(ti.onDisplay))
	return ti
}

// SetInvalidator allows the UI manager to inject a dirty-region invalidator.
func (ti *TextInput) SetInvalidator(fn func(core.Rect)) { ti.inv = fn }

// Text returns the text currently shown. It panics once disposed.
func (ti *TextInput) Text() string {
	ti.MustBeAlive()
	return string(ti.text)
}

// Caret returns the caret position in runes.
func (ti *TextInput) Caret() int { return ti.caret }

// onDisplay follows display changes made elsewhere, e.g. a commit that
// reformatted the text or an edit through the palette.
func (ti *TextInput) onDisplay(s string) {
	if s == string(ti.text) {
		return
	}
	ti.text = []rune(s)
	ti.caret = len(ti.text)
	ti.dirty = false
	ti.ensureVisible()
	ti.invalidate()
}

// Commit reconciles the display text with the bound value.
func (ti *TextInput) Commit() error {
	if err := ti.Check(); err != nil {
		return err
	}
	ti.dirty = false
	return ti.model.Commit()
}

func (ti *TextInput) Blur() {
	ti.BaseWidget.Blur()
	if ti.dirty && !ti.Disposed() {
		_ = ti.Commit()
	}
}

func (ti *TextInput) Draw(p *core.Painter) {
	if ti.Disposed() {
		return
	}
	style := ti.EffectiveStyle(ti.Style)
	p.Fill(ti.Rect, ' ', style)
	p.WithClip(ti.Rect).DrawText(ti.Rect.X-ti.off, ti.Rect.Y, string(ti.text), style)

	if !ti.IsFocused() {
		return
	}
	cx := ti.Rect.X + ti.caretCol() - ti.off
	ch := ' '
	if ti.caret < len(ti.text) {
		ch = ti.text[ti.caret]
	}
	fg, bg, _ := style.Decompose()
	p.SetCell(cx, ti.Rect.Y, ch, tcell.StyleDefault.Foreground(bg).Background(fg))
}

func (ti *TextInput) HandleKey(ev *tcell.EventKey) bool {
	if ti.Disposed() {
		return false
	}
	switch ev.Key() {
	case tcell.KeyEnter:
		_ = ti.Commit()
	case tcell.KeyEsc:
		if !ti.dirty {
			return false
		}
		ti.dirty = false
		_ = ti.model.Revert()
	case tcell.KeyLeft:
		ti.caret = max(ti.caret-1, 0)
	case tcell.KeyRight:
		ti.caret = min(ti.caret+1, len(ti.text))
	case tcell.KeyHome, tcell.KeyCtrlA:
		ti.caret = 0
	case tcell.KeyEnd, tcell.KeyCtrlE:
		ti.caret = len(ti.text)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if ti.caret == 0 {
			return true
		}
		ti.text = append(ti.text[:ti.caret-1:ti.caret-1], ti.text[ti.caret:]...)
		ti.caret--
		ti.edited()
	case tcell.KeyDelete:
		if ti.caret >= len(ti.text) {
			return true
		}
		ti.text = append(ti.text[:ti.caret:ti.caret], ti.text[ti.caret+1:]...)
		ti.edited()
	case tcell.KeyCtrlU:
		ti.text = ti.text[:0]
		ti.caret = 0
		ti.edited()
	case tcell.KeyRune:
		r := ev.Rune()
		next := make([]rune, 0, len(ti.text)+1)
		next = append(next, ti.text[:ti.caret]...)
		next = append(next, r)
		next = append(next, ti.text[ti.caret:]...)
		ti.text = next
		ti.caret++
		ti.edited()
	default:
		return false
	}
	ti.ensureVisible()
	ti.invalidate()
	return true
}

// HandleMouse places the caret under the pointer.
func (ti *TextInput) HandleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	if !ti.HitTest(x, y) || ev.Buttons()&tcell.Button1 == 0 {
		return false
	}
	target := x - ti.Rect.X + ti.off
	col := 0
	ti.caret = len(ti.text)
	for i, r := range ti.text {
		w := runewidth.RuneWidth(r)
		if col+w > target {
			ti.caret = i
			break
		}
		col += w
	}
	ti.invalidate()
	return true
}

func (ti *TextInput) edited() {
	ti.dirty = true
	_ = ti.model.SetDisplayValue(string(ti.text))
}

func (ti *TextInput) caretCol() int {
	return runewidth.StringWidth(string(ti.text[:ti.caret]))
}

func (ti *TextInput) ensureVisible() {
	col := ti.caretCol()
	if col < ti.off {
		ti.off = col
	}
	if ti.Rect.W > 0 && col >= ti.off+ti.Rect.W {
		ti.off = col - ti.Rect.W + 1
	}
	if ti.off < 0 {
		ti.off = 0
	}
}

func (ti *TextInput) invalidate() {
	if ti.inv != nil {
		ti.inv(ti.Rect)
	}
}
