// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package widgets

import (
	"os"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpane/texelui/color"
	"github.com/framegrace/texelpane/texelui/value"
)

// TestMain keeps the config store away from the user's home directory.
func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "texelpane-widgets")
	if err != nil {
		panic(err)
	}
	os.Setenv("XDG_CONFIG_HOME", dir)
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

var colorCodec = value.Codec[color.Color]{
	Parse: func(s string) (color.Color, error) {
		p, err := color.ParseString(s)
		return p.Color, err
	},
	Format: func(c color.Color) string { return color.Format(c, color.NotationHex) },
}

func newColorValue(c color.Color) *value.Value[color.Color] {
	return value.New(c, nil, colorCodec)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func typeText(h interface{ HandleKey(*tcell.EventKey) bool }, s string) {
	for _, r := range s {
		h.HandleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

func click(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone)
}
