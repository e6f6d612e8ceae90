// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelpane-demo/main.go
// Summary: Interactive tweak pane over a sample settings object.
// Usage: texelpane-demo [-load name] [-save name]. When stdout is not a
// terminal the formatted values are printed instead.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/framegrace/texelpane/config"
	"github.com/framegrace/texelpane/internal/devshell"
	"github.com/framegrace/texelpane/texelui/pane"
	"github.com/framegrace/texelpane/texelui/preset"
)

type input struct {
	key    string
	params pane.InputParams
}

var inputs = []input{
	{"background", pane.InputParams{Label: "Background"}},
	{"accent", pane.InputParams{Label: "Accent"}},
	{"border", pane.InputParams{Label: "Border", Input: "color"}},
	{"shadow", pane.InputParams{Label: "Shadow"}},
	{"highlight", pane.InputParams{Label: "Highlight", View: pane.ViewPicker}},
	{"opacity", pane.InputParams{Label: "Opacity", Step: 0.05}},
	{"padding", pane.InputParams{Label: "Padding"}},
	{"visible", pane.InputParams{Label: "Visible"}},
	{"title", pane.InputParams{Label: "Title"}},
}

func settings() map[string]any {
	return map[string]any{
		"background": "#1e1e2e",
		"accent":     "rgba(245, 194, 231, 0.8)",
		"border":     0x6c7086,
		"shadow":     map[string]any{"r": 17, "g": 17, "b": 27, "a": 0.5},
		"highlight":  "hsl(217, 92%, 76%)",
		"opacity":    0.9,
		"padding":    2,
		"visible":    true,
		"title":      "texelpane",
	}
}

func buildPane(obj map[string]any) (*pane.Pane, error) {
	p := pane.New(pane.WithTitle("texelpane"), pane.WithWidth(48))
	for _, in := range inputs {
		if _, err := p.AddInput(obj, in.key, in.params); err != nil {
			p.Dispose()
			return nil, err
		}
	}
	return p, nil
}

func main() {
	load := flag.String("load", "", "apply a stored preset before starting")
	save := flag.String("save", "", "store the final values as a preset on exit")
	flag.Parse()

	if err := config.Err(); err != nil {
		log.Printf("texelpane-demo: config: %v", err)
	}

	obj := settings()
	p, err := buildPane(obj)
	if err != nil {
		log.Fatalf("texelpane-demo: %v", err)
	}
	defer p.Dispose()

	var store *preset.Store
	if *load != "" || *save != "" {
		store, err = preset.Open("")
		if err != nil {
			log.Fatalf("texelpane-demo: %v", err)
		}
		defer store.Close()
	}
	if *load != "" {
		ps, err := store.Load(*load)
		if err != nil {
			log.Fatalf("texelpane-demo: %v", err)
		}
		if err := preset.Import(p, ps); err != nil {
			log.Printf("texelpane-demo: %v", err)
		}
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		devshell.Register("texelpane-demo", func([]string) (devshell.Surface, error) { return p, nil })
		if err := devshell.RunApp("texelpane-demo", flag.Args()); err != nil {
			log.Fatalf("texelpane-demo: %v", err)
		}
	}

	for _, b := range p.Bindings() {
		fmt.Printf("%-12s %-8s %s\n", b.Key, b.Kind, b.Text())
	}

	if *save != "" {
		if err := store.Save(*save, preset.Export(p)); err != nil {
			log.Fatalf("texelpane-demo: %v", err)
		}
	}
}
