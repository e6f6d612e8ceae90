// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/image.go
// Summary: Paints bitmaps into cells with half-block glyphs.

package core

import (
	"image"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"
)

// HalfBlock is the glyph used to show two pixel rows in one cell.
const HalfBlock = '▀'

// DrawImage scales src into r. Each cell shows two vertically stacked
// pixels: the upper as foreground of a half block, the lower as background.
func (p *Painter) DrawImage(r Rect, src image.Image) {
	if r.W <= 0 || r.H <= 0 || src == nil {
		return
	}
	dst := image.NewRGBA(image.Rect(0, 0, r.W, r.H*2))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	for cy := 0; cy < r.H; cy++ {
		for cx := 0; cx < r.W; cx++ {
			top := dst.RGBAAt(cx, cy*2)
			bot := dst.RGBAAt(cx, cy*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bot.R), int32(bot.G), int32(bot.B)))
			p.SetCell(r.X+cx, r.Y+cy, HalfBlock, style)
		}
	}
}
