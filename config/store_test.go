// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func resetStore() {
	once = sync.Once{}
	system = nil
	loadErr = nil
}

func TestSystemDefaultsWritten(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	cfg := System()
	if got := cfg.GetInt(PaneSection, KeyPaletteResolution, 0); got != DefaultPaletteResolution {
		t.Fatalf("expected palette_resolution %d, got %d", DefaultPaletteResolution, got)
	}
	if got := cfg.GetFloat(PaneSection, KeyStep, 0); got != 0.1 {
		t.Fatalf("expected step 0.1, got %v", got)
	}

	path, err := systemConfigPath()
	if err != nil {
		t.Fatalf("systemConfigPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read system config: %v", err)
	}

	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal system config: %v", err)
	}
	if disk.Section(PaneSection) == nil {
		t.Fatalf("expected pane section to be present")
	}
	if disk.GetString(ThemeSection, "bg.base", "") == "" {
		t.Fatalf("expected embedded theme colors on disk")
	}
}

func TestSaveSystemWritesUpdates(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	cfg := Config{
		PaneSection: map[string]interface{}{
			KeyLabelWidth: 20,
		},
	}
	SetSystem(cfg)
	if err := SaveSystem(); err != nil {
		t.Fatalf("SaveSystem: %v", err)
	}

	path, err := systemConfigPath()
	if err != nil {
		t.Fatalf("systemConfigPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read system config: %v", err)
	}

	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal system config: %v", err)
	}
	if got := disk.GetInt(PaneSection, KeyLabelWidth, 0); got != 20 {
		t.Fatalf("expected label_width 20, got %d", got)
	}
	if got := disk.GetFloat(PaneSection, KeyShiftMultiplier, 0); got != 10 {
		t.Fatalf("expected defaults merged on save, shift_multiplier=%v", got)
	}
}

func TestExistingConfigKeepsUserValues(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)
	resetStore()

	path := filepath.Join(root, "texelpane", systemConfigName)
	if err := writeConfig(path, Config{
		PaneSection: map[string]interface{}{
			KeyStep: 0.5,
		},
	}); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg := System()
	if got := cfg.GetFloat(PaneSection, KeyStep, 0); got != 0.5 {
		t.Fatalf("expected user step 0.5, got %v", got)
	}
	if got := cfg.GetInt(PaneSection, KeyLabelWidth, 0); got != 12 {
		t.Fatalf("expected default label_width, got %d", got)
	}
	if err := Err(); err != nil {
		t.Fatalf("Err: %v", err)
	}
}

func TestCorruptConfigReportsError(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)
	resetStore()

	dir := filepath.Join(root, "texelpane")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, systemConfigName), []byte("{"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := System()
	if Err() == nil {
		t.Fatalf("expected load error for corrupt file")
	}
	if got := cfg.GetInt(PaneSection, KeyPaletteResolution, 0); got != DefaultPaletteResolution {
		t.Fatalf("expected defaults after corrupt load, got %d", got)
	}
}

func TestPresetDBPath(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)
	resetStore()

	path, err := PresetDBPath()
	if err != nil {
		t.Fatalf("PresetDBPath: %v", err)
	}
	if want := filepath.Join(root, "texelpane", presetDBName); path != want {
		t.Fatalf("PresetDBPath = %q, want %q", path, want)
	}

	SetSystem(Config{PresetsSection: map[string]interface{}{"path": "/tmp/p.db"}})
	if path, _ := PresetDBPath(); path != "/tmp/p.db" {
		t.Fatalf("override ignored: %q", path)
	}
}

func TestTypedGetters(t *testing.T) {
	cfg := Config{
		"s": map[string]interface{}{
			"f":   "1.5",
			"i":   json.Number("7"),
			"b":   "true",
			"str": "x",
		},
	}
	tests := []struct {
		name string
		got  interface{}
		want interface{}
	}{
		{"float from string", cfg.GetFloat("s", "f", 0), 1.5},
		{"int from json.Number", cfg.GetInt("s", "i", 0), 7},
		{"bool from string", cfg.GetBool("s", "b", false), true},
		{"missing section", cfg.GetString("nope", "str", "d"), "d"},
		{"wrong type", cfg.GetString("s", "i", "d"), "d"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	cfg.Set("new", "k", "v")
	if got := cfg.GetStrings("new"); got["k"] != "v" {
		t.Errorf("Set/GetStrings = %v", got)
	}
}
