// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/preset/preset.go
// Summary: Snapshot and restore of pane input values as formatted text.

package preset

import (
	"log"

	"github.com/pkg/errors"

	"github.com/framegrace/texelpane/texelui/pane"
)

// Preset maps binding keys to their formatted committed values.
type Preset map[string]string

// Export captures the committed value of every binding in p. Pending
// edits are left out so every entry imports back.
func Export(p *pane.Pane) Preset {
	out := make(Preset)
	for _, b := range p.Bindings() {
		out[b.Key] = b.Formatted()
	}
	return out
}

// Import applies preset to p in binding order. Keys without a binding are
// skipped. Every entry is tried; the first parse failure is returned.
func Import(p *pane.Pane, preset Preset) error {
	var first error
	seen := 0
	for _, b := range p.Bindings() {
		text, ok := preset[b.Key]
		if !ok {
			continue
		}
		seen++
		if err := b.Apply(text); err != nil {
			log.Printf("Preset: %s: %v", b.Key, err)
			if first == nil {
				first = errors.Wrapf(err, "preset: %s", b.Key)
			}
		}
	}
	if seen < len(preset) {
		log.Printf("Preset: skipped %d keys with no input", len(preset)-seen)
	}
	return first
}
