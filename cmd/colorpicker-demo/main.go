// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/colorpicker-demo/main.go
// Summary: Opens a single color picker and prints the chosen color.
// Usage: colorpicker-demo [-view picker|swatch] [color]

package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/framegrace/texelpane/internal/devshell"
	"github.com/framegrace/texelpane/texelui/pane"
)

func main() {
	view := flag.String("view", pane.ViewPicker, "picker or swatch")
	flag.Parse()

	initial := "#89b4fa"
	if flag.NArg() > 0 {
		initial = flag.Arg(0)
	}
	obj := map[string]any{"color": initial}

	p := pane.New(pane.WithTitle("color"), pane.WithWidth(44))
	defer p.Dispose()
	params := pane.InputParams{Label: "Color", Input: "color", Expanded: true}
	if *view == pane.ViewPicker {
		params.View = pane.ViewPicker
	}
	b, err := p.AddInput(obj, "color", params)
	if err != nil {
		log.Fatalf("colorpicker-demo: %v", err)
	}
	p.Focus(b)

	devshell.Register("colorpicker-demo", func([]string) (devshell.Surface, error) { return p, nil })
	if err := devshell.RunApp("colorpicker-demo", flag.Args()); err != nil {
		log.Fatalf("colorpicker-demo: %v", err)
	}
	fmt.Println(obj["color"])
}
