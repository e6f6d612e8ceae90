// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/painter.go
// Summary: Clipped drawing helpers over a cell buffer.

package core

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Painter draws into a cell buffer, clipped to a rectangle.
type Painter struct {
	buf  [][]Cell
	clip Rect
}

// NewPainter returns a painter writing to buf, restricted to clip.
func NewPainter(buf [][]Cell, clip Rect) *Painter {
	return &Painter{buf: buf, clip: clip}
}

// Clip returns the active clip rectangle.
func (p *Painter) Clip() Rect { return p.clip }

// WithClip returns a painter on the same buffer clipped to r within the
// current clip.
func (p *Painter) WithClip(r Rect) *Painter {
	return &Painter{buf: p.buf, clip: p.clip.Intersect(r)}
}

// SetCell writes one cell if it lies inside the clip and buffer.
func (p *Painter) SetCell(x, y int, ch rune, style tcell.Style) {
	if !p.clip.Contains(x, y) || y < 0 || y >= len(p.buf) || x < 0 || x >= len(p.buf[y]) {
		return
	}
	p.buf[y][x] = Cell{Ch: ch, Style: style}
}

// Fill paints every cell of r with ch.
func (p *Painter) Fill(r Rect, ch rune, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			p.SetCell(x, y, ch, style)
		}
	}
}

// DrawText writes s starting at (x, y) and returns the number of columns
// used. Wide runes take two columns; the second is filled with a blank.
func (p *Painter) DrawText(x, y int, s string, style tcell.Style) int {
	col := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		p.SetCell(x+col, y, r, style)
		if w == 2 {
			p.SetCell(x+col+1, y, ' ', style)
		}
		col += w
	}
	return col
}

// DrawBorder draws a box using chars: horizontal, vertical, then the
// top-left, top-right, bottom-left and bottom-right corners.
func (p *Painter) DrawBorder(r Rect, style tcell.Style, chars [6]rune) {
	if r.W < 2 || r.H < 2 {
		return
	}
	x1, y1 := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < x1; x++ {
		p.SetCell(x, r.Y, chars[0], style)
		p.SetCell(x, y1, chars[0], style)
	}
	for y := r.Y + 1; y < y1; y++ {
		p.SetCell(r.X, y, chars[1], style)
		p.SetCell(x1, y, chars[1], style)
	}
	p.SetCell(r.X, r.Y, chars[2], style)
	p.SetCell(x1, r.Y, chars[3], style)
	p.SetCell(r.X, y1, chars[4], style)
	p.SetCell(x1, y1, chars[5], style)
}

// NewBuffer allocates a w×h cell buffer.
func NewBuffer(w, h int) [][]Cell {
	buf := make([][]Cell, h)
	for y := range buf {
		buf[y] = make([]Cell, w)
	}
	return buf
}
