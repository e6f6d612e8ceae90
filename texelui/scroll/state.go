// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/scroll/state.go
// Summary: Row offset bookkeeping for lists taller than their viewport.

package scroll

// State is the scroll position of Content rows shown Viewport rows at a
// time, starting at Offset. The zero value shows nothing.
type State struct {
	Offset   int
	Content  int
	Viewport int
}

// CanScrollUp reports whether rows are hidden above the viewport.
func (s State) CanScrollUp() bool { return s.Offset > 0 }

// CanScrollDown reports whether rows are hidden below the viewport.
func (s State) CanScrollDown() bool { return s.Offset+s.Viewport < s.Content }

// Clamp keeps Offset inside [0, Content-Viewport].
func (s State) Clamp() State {
	s.Offset = min(s.Offset, s.Content-s.Viewport)
	s.Offset = max(s.Offset, 0)
	return s
}

// EnsureVisible scrolls the least amount that shows row.
func (s State) EnsureVisible(row int) State {
	if s.Viewport <= 0 {
		return s
	}
	if row < s.Offset {
		s.Offset = row
	}
	if row >= s.Offset+s.Viewport {
		s.Offset = row - s.Viewport + 1
	}
	return s.Clamp()
}

// ScrollBy moves the offset by delta rows.
func (s State) ScrollBy(delta int) State {
	s.Offset += delta
	return s.Clamp()
}
