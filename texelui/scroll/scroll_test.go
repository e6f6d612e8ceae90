// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package scroll

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpane/texelui/core"
)

func TestStateEnsureVisible(t *testing.T) {
	tests := []struct {
		name string
		in   State
		row  int
		want int
	}{
		{"already visible", State{Offset: 2, Content: 10, Viewport: 4}, 3, 2},
		{"above", State{Offset: 5, Content: 10, Viewport: 4}, 1, 1},
		{"below", State{Offset: 0, Content: 10, Viewport: 4}, 7, 4},
		{"past end clamps", State{Offset: 0, Content: 10, Viewport: 4}, 42, 6},
		{"content fits", State{Offset: 3, Content: 3, Viewport: 5}, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.EnsureVisible(tt.row).Offset; got != tt.want {
				t.Errorf("offset = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStateScrollByClamps(t *testing.T) {
	s := State{Content: 10, Viewport: 4}
	if s.CanScrollUp() || !s.CanScrollDown() {
		t.Fatalf("top state: up=%v down=%v", s.CanScrollUp(), s.CanScrollDown())
	}
	s = s.ScrollBy(100)
	if s.Offset != 6 || s.CanScrollDown() || !s.CanScrollUp() {
		t.Errorf("bottom state = %+v", s)
	}
	if s = s.ScrollBy(-100); s.Offset != 0 {
		t.Errorf("offset after scrolling up = %d", s.Offset)
	}
}

func TestDrawIndicators(t *testing.T) {
	tests := []struct {
		name     string
		state    State
		top, bot rune
	}{
		{"top of list", State{Offset: 0, Content: 5, Viewport: 3}, 0, DownGlyph},
		{"middle", State{Offset: 1, Content: 5, Viewport: 3}, UpGlyph, DownGlyph},
		{"bottom", State{Offset: 2, Content: 5, Viewport: 3}, UpGlyph, 0},
		{"fits", State{Content: 2, Viewport: 3}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := core.NewBuffer(4, 3)
			rect := core.Rect{W: 4, H: 3}
			DrawIndicators(core.NewPainter(buf, rect), rect, tt.state, tcell.StyleDefault)
			if buf[0][3].Ch != tt.top || buf[2][3].Ch != tt.bot {
				t.Errorf("indicators = %q %q, want %q %q", buf[0][3].Ch, buf[2][3].Ch, tt.top, tt.bot)
			}
			if buf[1][3].Ch != 0 || buf[0][0].Ch != 0 {
				t.Errorf("unexpected cells marked")
			}
		})
	}
}
