// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/runner.go
// Summary: Standalone tcell harness for pane-like surfaces.

package devshell

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpane/texelui/core"
)

// Surface is anything that renders a cell buffer and takes input.
// *pane.Pane implements it.
type Surface interface {
	Render() [][]core.Cell
	HandleKey(ev *tcell.EventKey) bool
	HandleMouse(ev *tcell.EventMouse) bool
	SetRefreshNotifier(ch chan<- bool)
}

// Builder constructs a Surface, optionally using CLI args.
type Builder func(args []string) (Surface, error)

var (
	registryMu sync.Mutex
	registry   = map[string]Builder{}
)

// Register makes a builder available to RunApp.
func Register(name string, b Builder) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = b
}

var screenFactory = tcell.NewScreen

// SetScreenFactory overrides the screen factory used by Run. Passing nil restores the default.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

// Run executes the provided builder inside a local tcell screen until Ctrl-C.
func Run(builder Builder, args []string) error {
	surface, err := builder(args)
	if err != nil {
		return err
	}

	screen, err := screenFactory()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.Clear()
	screen.EnableMouse()
	defer screen.DisableMouse()

	refreshCh := make(chan bool, 1)
	surface.SetRefreshNotifier(refreshCh)
	done := make(chan struct{})
	defer close(done)

	draw := func() {
		screen.Clear()
		buffer := surface.Render()
		for y := 0; y < len(buffer); y++ {
			row := buffer[y]
			for x := 0; x < len(row); x++ {
				cell := row[x]
				screen.SetContent(x, y, cell.Ch, nil, cell.Style)
			}
		}
		screen.Show()
	}

	go func() {
		for {
			select {
			case <-refreshCh:
				screen.PostEvent(tcell.NewEventInterrupt(nil))
			case <-done:
				return
			}
		}
	}()

	draw()

	for {
		ev := screen.PollEvent()
		switch tev := ev.(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			draw()
		case *tcell.EventResize:
			screen.Sync()
			draw()
		case *tcell.EventKey:
			if tev.Key() == tcell.KeyCtrlC {
				return nil
			}
			surface.HandleKey(tev)
			draw()
		case *tcell.EventMouse:
			surface.HandleMouse(tev)
			draw()
		}
	}
}

// RunApp finds a registered builder by name and runs it.
func RunApp(name string, args []string) error {
	registryMu.Lock()
	buildApp, ok := registry[name]
	registryMu.Unlock()
	if !ok {
		return fmt.Errorf("unknown app %q", name)
	}
	return Run(buildApp, args)
}
