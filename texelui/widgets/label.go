// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/widgets/label.go
// Summary: Static single-line text.

package widgets

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/texelpane/texelui/core"
	"github.com/framegrace/texelpane/texelui/theme"
)

// Label draws text truncated to its width.
type Label struct {
	core.BaseWidget
	Text  string
	Style tcell.Style
}

func NewLabel(x, y, w int, text string) *Label {
	l := &Label{Text: text, Style: theme.Get().Style("text.muted", "bg.surface")}
	l.SetPosition(x, y)
	l.Resize(w, 1)
	return l
}

func (l *Label) Draw(p *core.Painter) {
	p.Fill(l.Rect, ' ', l.Style)
	p.DrawText(l.Rect.X, l.Rect.Y, runewidth.Truncate(l.Text, l.Rect.W, "…"), l.Style)
}
