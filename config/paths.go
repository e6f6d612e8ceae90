// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for texelpane configuration and data files.

package config

import (
	"os"
	"path/filepath"
)

const presetDBName = "presets.db"

func configRoot() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "texelpane"), nil
}

func systemConfigPath() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, systemConfigName), nil
}

// PresetDBPath returns the preset database location. The "presets.path"
// setting overrides the default under the config root.
func PresetDBPath() (string, error) {
	if p := System().GetString("presets", "path", ""); p != "" {
		return p, nil
	}
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, presetDBName), nil
}
