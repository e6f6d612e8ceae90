// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package theme

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpane/config"
	"github.com/framegrace/texelpane/texelui/color"
)

func TestLoadOverridesBuiltin(t *testing.T) {
	cfg := config.Config{
		config.ThemeSection: map[string]interface{}{
			"accent":  "rgb(1, 2, 3)",
			"custom":  "#00ff00",
			"broken":  "not a color",
			"numeric": 5,
		},
	}
	th := Load(cfg)

	if c, _ := th.Color("accent"); c != color.RGB(1, 2, 3) {
		t.Errorf("accent = %v", c)
	}
	if c, ok := th.Color("custom"); !ok || c != color.RGB(0, 255, 0) {
		t.Errorf("custom = %v, %v", c, ok)
	}
	if _, ok := th.Color("broken"); ok {
		t.Errorf("unparsable entry was kept")
	}
	if _, ok := th.Color("bg.base"); !ok {
		t.Errorf("builtin bg.base missing")
	}
	if got := th.GetSemanticColor("nope"); got != tcell.ColorDefault {
		t.Errorf("unknown name = %v", got)
	}
}

func TestStyleUsesSemanticColors(t *testing.T) {
	th := Load(nil)
	fg, bg, _ := th.Style("text.primary", "bg.base").Decompose()
	if fg != th.GetSemanticColor("text.primary") || bg != th.GetSemanticColor("bg.base") {
		t.Errorf("style colors = %v/%v", fg, bg)
	}
}

func TestSetReplacesActiveTheme(t *testing.T) {
	th := Load(nil)
	Set(th)
	defer Set(nil)
	if Get() != th {
		t.Errorf("Get did not return the theme passed to Set")
	}
}
