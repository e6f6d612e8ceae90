// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for the system configuration file.

package config

// Section names.
const (
	PaneSection    = "pane"
	ThemeSection   = "theme"
	PresetsSection = "presets"
)

// Pane section keys.
const (
	KeyPaletteResolution = "palette_resolution"
	KeyStep              = "step"
	KeyShiftMultiplier   = "shift_multiplier"
	KeyDefaultInput      = "default_input"
	KeyLabelWidth        = "label_width"
)

// DefaultPaletteResolution is the SV palette bitmap edge in pixels.
const DefaultPaletteResolution = 64

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults(PaneSection, Section{
		KeyPaletteResolution: DefaultPaletteResolution,
		KeyStep:              0.1,
		KeyShiftMultiplier:   10,
		KeyDefaultInput:      "",
		KeyLabelWidth:        12,
	})
	cfg.RegisterDefaults(PresetsSection, Section{
		"path": "",
	})
	// Theme colors come from the embedded file; an empty section means
	// the built-in palette in texelui/theme applies.
	cfg.RegisterDefaults(ThemeSection, Section{})
}
