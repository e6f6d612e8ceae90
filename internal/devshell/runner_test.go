// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/runner_test.go
// Summary: Exercises devshell runner behaviour to ensure the standalone harness remains reliable.
// Usage: Executed during `go test` to guard against regressions.

package devshell_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpane/internal/devshell"
	"github.com/framegrace/texelpane/texelui/core"
)

type stubSurface struct {
	mu          sync.Mutex
	renderCount int
	keys        []*tcell.EventKey
	clicks      int
	refresh     chan<- bool
}

func (s *stubSurface) Render() [][]core.Cell {
	s.mu.Lock()
	s.renderCount++
	s.mu.Unlock()
	return [][]core.Cell{{{Ch: 'X'}}}
}

func (s *stubSurface) HandleKey(ev *tcell.EventKey) bool {
	s.mu.Lock()
	s.keys = append(s.keys, ev)
	s.mu.Unlock()
	return true
}

func (s *stubSurface) HandleMouse(ev *tcell.EventMouse) bool {
	s.mu.Lock()
	s.clicks++
	s.mu.Unlock()
	return true
}

func (s *stubSurface) SetRefreshNotifier(ch chan<- bool) {
	s.mu.Lock()
	s.refresh = ch
	s.mu.Unlock()
}

func (s *stubSurface) renderCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.renderCount
}

func (s *stubSurface) recordedKeys() []*tcell.EventKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*tcell.EventKey, len(s.keys))
	copy(out, s.keys)
	return out
}

func (s *stubSurface) mouseCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clicks
}

func (s *stubSurface) requestRefresh() {
	s.mu.Lock()
	ch := s.refresh
	s.mu.Unlock()
	if ch == nil {
		return
	}
	select {
	case ch <- true:
	default:
	}
}

func TestRunHandlesInputRefreshAndShutdown(t *testing.T) {
	defer devshell.SetScreenFactory(nil)

	screen := tcell.NewSimulationScreen("UTF-8")
	devshell.SetScreenFactory(func() (tcell.Screen, error) {
		return screen, nil
	})

	surface := &stubSurface{}
	devshell.Register("demo", func(args []string) (devshell.Surface, error) {
		if len(args) != 1 || args[0] != "arg" {
			return nil, errors.New("unexpected args")
		}
		return surface, nil
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- devshell.RunApp("demo", []string{"arg"})
	}()

	waitFor(func() bool { return surface.renderCalls() > 0 }, time.Second, t, "initial render")

	// Trigger a refresh and expect another render.
	before := surface.renderCalls()
	surface.requestRefresh()
	waitFor(func() bool { return surface.renderCalls() > before }, 500*time.Millisecond, t, "render after refresh")

	// Send key event and verify it reaches the surface.
	screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'x', 0))
	waitFor(func() bool {
		keys := surface.recordedKeys()
		return len(keys) > 0 && keys[0].Rune() == 'x'
	}, 500*time.Millisecond, t, "key press to be handled")

	screen.PostEvent(tcell.NewEventMouse(0, 0, tcell.Button1, 0))
	waitFor(func() bool { return surface.mouseCalls() == 1 }, 500*time.Millisecond, t, "mouse event to be handled")

	// Exit via Ctrl-C.
	screen.PostEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, 0))

	select {
	case err := <-errCh:
		if err != nil {
			t.Fatalf("run returned error: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("run did not exit after Ctrl-C")
	}
}

func TestRunAppUnknown(t *testing.T) {
	if err := devshell.RunApp("missing", nil); err == nil {
		t.Fatal("expected error for unknown app")
	}
}

func TestRunBuilderError(t *testing.T) {
	want := errors.New("boom")
	err := devshell.Run(func([]string) (devshell.Surface, error) { return nil, want }, nil)
	if !errors.Is(err, want) {
		t.Fatalf("Run error = %v", err)
	}
}

func waitFor(cond func() bool, timeout time.Duration, t *testing.T, what string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}
