package core_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelpane/texelui/core"
)

type miniWidget struct {
	core.BaseWidget
	toggled bool
	keys    []rune
	mouse   int
}

func newMini(x, y, w, h int, focusable bool) *miniWidget {
	m := &miniWidget{}
	m.SetPosition(x, y)
	m.Resize(w, h)
	m.SetFocusable(focusable)
	return m
}

func (m *miniWidget) Draw(p *core.Painter) {
	ch := 'X'
	if m.toggled {
		ch = 'Y'
	}
	p.Fill(m.Rect, ch, tcell.StyleDefault)
}

func (m *miniWidget) HandleKey(ev *tcell.EventKey) bool {
	if ev.Key() != tcell.KeyRune {
		return false
	}
	m.keys = append(m.keys, ev.Rune())
	return true
}

func (m *miniWidget) HandleMouse(ev *tcell.EventMouse) bool {
	m.mouse++
	return true
}

// container holds children and reports the deepest hit.
type container struct {
	core.BaseWidget
	children []core.Widget
	inv      func(core.Rect)
}

func (c *container) Draw(p *core.Painter) {
	for _, ch := range c.children {
		ch.Draw(p)
	}
}

func (c *container) VisitChildren(fn func(core.Widget)) {
	for _, ch := range c.children {
		fn(ch)
	}
}

func (c *container) SetInvalidator(fn func(core.Rect)) { c.inv = fn }

func (c *container) WidgetAt(x, y int) core.Widget {
	for _, ch := range c.children {
		if ch.HitTest(x, y) {
			return ch
		}
	}
	return nil
}

func TestUIManagerRendersWidgets(t *testing.T) {
	ui := core.NewUIManager(tcell.StyleDefault)
	ui.Resize(6, 3)
	mw := newMini(1, 1, 1, 1, false)
	ui.AddWidget(mw)

	buf := ui.Render()
	if len(buf) != 3 || len(buf[0]) != 6 {
		t.Fatalf("unexpected buffer size %dx%d", len(buf[0]), len(buf))
	}
	if got := buf[1][1].Ch; got != 'X' {
		t.Fatalf("expected 'X', got %q", string(got))
	}
	if got := buf[0][0].Ch; got != ' ' {
		t.Fatalf("background = %q", string(got))
	}
	if ui.Dirty() {
		t.Error("dirty after Render")
	}

	mw.toggled = true
	ui.InvalidateAll()
	buf = ui.Render()
	if got := buf[1][1].Ch; got != 'Y' {
		t.Fatalf("expected 'Y' after redraw, got %q", string(got))
	}
}

func TestUIManagerTabCyclesNestedFocus(t *testing.T) {
	ui := core.NewUIManager(tcell.StyleDefault)
	ui.Resize(10, 4)
	a := newMini(0, 0, 2, 1, true)
	b := newMini(0, 1, 2, 1, true)
	skip := newMini(0, 2, 2, 1, false)
	c := &container{children: []core.Widget{a, skip, b}}
	c.Resize(10, 4)
	ui.AddWidget(c)

	if c.inv == nil {
		t.Fatal("invalidator not propagated")
	}
	tab := tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)
	order := []core.Widget{}
	for i := 0; i < 3; i++ {
		ui.HandleKey(tab)
		order = append(order, ui.Focused())
	}
	if order[0] != a || order[1] != b || order[2] != a {
		t.Errorf("focus order = %v", order)
	}
	ui.HandleKey(tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone))
	if ui.Focused() != b {
		t.Errorf("backtab focused %v", ui.Focused())
	}
	ui.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone))
	if len(b.keys) != 1 || b.keys[0] != 'q' {
		t.Errorf("focused widget keys = %q", string(b.keys))
	}
}

func TestClickToFocusInnerWidget(t *testing.T) {
	ui := core.NewUIManager(tcell.StyleDefault)
	ui.Resize(10, 4)
	inner := newMini(2, 1, 4, 1, true)
	c := &container{children: []core.Widget{inner}}
	c.Resize(10, 4)
	ui.AddWidget(c)

	ui.HandleMouse(tcell.NewEventMouse(3, 1, tcell.Button1, tcell.ModNone))
	if ui.Focused() != inner {
		t.Fatalf("focused %v, want inner", ui.Focused())
	}
	// Drag outside keeps routing to the captured widget until release.
	ui.HandleMouse(tcell.NewEventMouse(9, 3, tcell.Button1, tcell.ModNone))
	ui.HandleMouse(tcell.NewEventMouse(9, 3, tcell.ButtonNone, tcell.ModNone))
	if inner.mouse != 3 {
		t.Errorf("inner saw %d mouse events, want 3", inner.mouse)
	}
	if ui.HandleMouse(tcell.NewEventMouse(9, 3, tcell.ButtonNone, tcell.ModNone)) {
		t.Error("move without capture consumed")
	}
}

func TestRemoveWidgetClearsFocus(t *testing.T) {
	ui := core.NewUIManager(tcell.StyleDefault)
	ui.Resize(4, 1)
	mw := newMini(0, 0, 1, 1, true)
	ui.AddWidget(mw)
	ui.Focus(mw)
	ui.RemoveWidget(mw)
	if ui.Focused() != nil || mw.IsFocused() {
		t.Error("removed widget kept focus")
	}
}

func TestReleaseClearsFocusInsideContainer(t *testing.T) {
	ui := core.NewUIManager(tcell.StyleDefault)
	ui.Resize(4, 1)
	a := newMini(0, 0, 1, 1, true)
	b := newMini(1, 0, 1, 1, true)
	root := &container{children: []core.Widget{a, b}}
	root.SetPosition(0, 0)
	root.Resize(4, 1)
	ui.AddWidget(root)

	ui.Focus(a)
	ui.Release(b)
	if ui.Focused() != a {
		t.Fatalf("releasing an unfocused child moved focus to %v", ui.Focused())
	}
	ui.Release(a)
	if ui.Focused() != nil || a.IsFocused() {
		t.Error("released child kept focus")
	}
}

func TestRefreshNotifierIsNonBlocking(t *testing.T) {
	ui := core.NewUIManager(tcell.StyleDefault)
	ch := make(chan bool, 1)
	ui.SetRefreshNotifier(ch)
	ui.Invalidate(core.Rect{W: 1, H: 1})
	ui.Invalidate(core.Rect{W: 1, H: 1})
	if len(ch) != 1 {
		t.Errorf("notifier holds %d signals", len(ch))
	}
	ui.Invalidate(core.Rect{})
}

func TestPainterClipsAndDrawsImage(t *testing.T) {
	buf := core.NewBuffer(4, 2)
	p := core.NewPainter(buf, core.Rect{X: 1, Y: 0, W: 2, H: 2})
	p.Fill(core.Rect{W: 4, H: 2}, '#', tcell.StyleDefault)
	if buf[0][0].Ch == '#' || buf[0][3].Ch == '#' || buf[1][1].Ch != '#' {
		t.Errorf("clip not applied: %q", []rune{buf[0][0].Ch, buf[1][1].Ch, buf[0][3].Ch})
	}
	if n := p.DrawText(1, 0, "世", tcell.StyleDefault); n != 2 {
		t.Errorf("wide rune width = %d", n)
	}
}
