// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/theme/theme.go
// Summary: Semantic widget colors resolved from the config "theme" section.

package theme

import (
	"log"
	"sort"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpane/config"
	"github.com/framegrace/texelpane/texelui/color"
)

// builtin is used for any semantic name the config does not override.
var builtin = map[string]string{
	"text.primary":   "#cdd6f4",
	"text.muted":     "#a6adc8",
	"bg.base":        "#1e1e2e",
	"bg.surface":     "#313244",
	"bg.selection":   "#45475a",
	"border.default": "#6c7086",
	"border.focus":   "#89b4fa",
	"accent":         "#f5c2e7",
	"error":          "#f38ba8",
}

// Theme maps semantic names such as "text.primary" to colors.
type Theme struct {
	colors map[string]color.Color
}

var (
	mu      sync.RWMutex
	current *Theme
)

// Get returns the active theme, loading it from the system config on first use.
func Get() *Theme {
	mu.RLock()
	t := current
	mu.RUnlock()
	if t != nil {
		return t
	}

	mu.Lock()
	defer mu.Unlock()
	if current == nil {
		current = Load(config.System())
	}
	return current
}

// Set replaces the active theme. Passing nil reloads from config on next Get.
func Set(t *Theme) {
	mu.Lock()
	defer mu.Unlock()
	current = t
}

// Load builds a theme from cfg's theme section on top of the built-in colors.
// Entries that do not parse as colors are logged and skipped.
func Load(cfg config.Config) *Theme {
	t := &Theme{colors: make(map[string]color.Color, len(builtin))}
	for name, text := range builtin {
		p, err := color.ParseString(text)
		if err != nil {
			panic(err)
		}
		t.colors[name] = p.Color
	}
	for name, text := range cfg.GetStrings(config.ThemeSection) {
		p, err := color.ParseString(text)
		if err != nil {
			log.Printf("Theme: ignoring %s=%q: %v", name, text, err)
			continue
		}
		t.colors[name] = p.Color
	}
	return t
}

// Color returns the named color and whether it is defined.
func (t *Theme) Color(name string) (color.Color, bool) {
	c, ok := t.colors[name]
	return c, ok
}

// Names returns every defined semantic name in sorted order.
func (t *Theme) Names() []string {
	names := make([]string, 0, len(t.colors))
	for name := range t.colors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetSemanticColor returns the named color for tcell, or tcell.ColorDefault.
func (t *Theme) GetSemanticColor(name string) tcell.Color {
	if c, ok := t.colors[name]; ok {
		return c.ToTcell()
	}
	return tcell.ColorDefault
}

// Style returns a style with the named foreground and background.
func (t *Theme) Style(fg, bg string) tcell.Style {
	return tcell.StyleDefault.Foreground(t.GetSemanticColor(fg)).Background(t.GetSemanticColor(bg))
}
