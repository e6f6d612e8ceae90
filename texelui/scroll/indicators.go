// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/indicators.go
// Summary: Overflow markers for scrolled lists.

package scroll

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpane/texelui/core"
)

const (
	UpGlyph   = '▲'
	DownGlyph = '▼'
)

// DrawIndicators marks the right column of rect with UpGlyph on the first
// row when s hides rows above, and DownGlyph on the last row when it hides
// rows below.
func DrawIndicators(painter *core.Painter, rect core.Rect, s State, style tcell.Style) {
	if rect.W <= 0 || rect.H <= 0 {
		return
	}
	x := rect.X + rect.W - 1
	if s.CanScrollUp() {
		painter.SetCell(x, rect.Y, UpGlyph, style)
	}
	if s.CanScrollDown() {
		painter.SetCell(x, rect.Y+rect.H-1, DownGlyph, style)
	}
}
