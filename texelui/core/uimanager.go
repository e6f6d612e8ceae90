package core

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

// UIManager owns a small widget tree and composes it into a cell buffer.
type UIManager struct {
	mu       sync.Mutex // protects widgets, focus, capture, buffer
	dirtyMu  sync.Mutex // protects dirty flag and notifier
	W, H     int
	widgets  []Widget // later entries draw on top
	bgStyle  tcell.Style
	notifier chan<- bool
	focused  Widget
	buf      [][]Cell
	dirty    bool
	capture  Widget
}

func NewUIManager(bg tcell.Style) *UIManager {
	return &UIManager{bgStyle: bg, dirty: true}
}

// SetRefreshNotifier registers a channel poked (non-blocking) on invalidation.
func (u *UIManager) SetRefreshNotifier(ch chan<- bool) {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	u.notifier = ch
}

func (u *UIManager) Resize(w, h int) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	u.W, u.H = w, h
	u.buf = nil
	u.InvalidateAll()
}

func (u *UIManager) AddWidget(w Widget) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.widgets = append(u.widgets, w)
	u.propagateInvalidator(w)
	u.InvalidateAll()
}

// RemoveWidget drops a top-level widget, clearing focus and capture on it.
func (u *UIManager) RemoveWidget(w Widget) {
	u.mu.Lock()
	defer u.mu.Unlock()

	for i, cur := range u.widgets {
		if cur == w {
			u.widgets = append(u.widgets[:i], u.widgets[i+1:]...)
			break
		}
	}
	u.releaseLocked(w)
}

// Release clears focus and capture held anywhere in w's tree. Containers
// call it before dropping a child the manager never saw directly.
func (u *UIManager) Release(w Widget) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.releaseLocked(w)
}

func (u *UIManager) releaseLocked(w Widget) {
	if u.focused != nil && containsWidget(w, u.focused) {
		u.focused.Blur()
		u.focused = nil
	}
	if u.capture != nil && containsWidget(w, u.capture) {
		u.capture = nil
	}
	u.InvalidateAll()
}

func (u *UIManager) propagateInvalidator(w Widget) {
	if ia, ok := w.(InvalidationAware); ok {
		ia.SetInvalidator(u.Invalidate)
	}
	if cc, ok := w.(ChildContainer); ok {
		cc.VisitChildren(func(child Widget) { u.propagateInvalidator(child) })
	}
}

func (u *UIManager) Focus(w Widget) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.focusLocked(w)
}

// Focused returns the focused widget, if any.
func (u *UIManager) Focused() Widget {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.focused
}

func (u *UIManager) focusLocked(w Widget) {
	if w == nil || !w.Focusable() {
		return
	}
	if u.focused == w {
		return
	}
	if u.focused != nil {
		u.focused.Blur()
	}
	u.focused = w
	u.focused.Focus()
}

func (u *UIManager) HandleKey(ev *tcell.EventKey) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	// Let focused widget handle the key first
	if u.focused != nil && u.focused.HandleKey(ev) {
		u.InvalidateAll()
		return true
	}

	if ev.Key() == tcell.KeyTab || ev.Key() == tcell.KeyBacktab {
		forward := ev.Key() == tcell.KeyTab && ev.Modifiers()&tcell.ModShift == 0
		if u.cycleFocusLocked(forward) {
			u.InvalidateAll()
			return true
		}
	}
	return false
}

// cycleFocusLocked moves focus through every focusable widget in tree order.
func (u *UIManager) cycleFocusLocked(forward bool) bool {
	var order []Widget
	for _, w := range u.widgets {
		collectFocusable(w, &order)
	}
	if len(order) == 0 {
		return false
	}

	idx := -1
	for i, w := range order {
		if w == u.focused {
			idx = i
			break
		}
	}
	switch {
	case idx < 0:
		idx = 0
	case forward:
		idx = (idx + 1) % len(order)
	default:
		idx = (idx - 1 + len(order)) % len(order)
	}
	u.focusLocked(order[idx])
	return true
}

func collectFocusable(w Widget, out *[]Widget) {
	if w.Focusable() {
		*out = append(*out, w)
	}
	if cc, ok := w.(ChildContainer); ok {
		cc.VisitChildren(func(child Widget) { collectFocusable(child, out) })
	}
}

func containsWidget(root, target Widget) bool {
	if root == target {
		return true
	}
	found := false
	if cc, ok := root.(ChildContainer); ok {
		cc.VisitChildren(func(child Widget) {
			if !found && containsWidget(child, target) {
				found = true
			}
		})
	}
	return found
}

// HandleMouse routes mouse events for click-to-focus and capture drags.
func (u *UIManager) HandleMouse(ev *tcell.EventMouse) bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	x, y := ev.Position()
	prevIsDown := u.capture != nil
	nowDown := ev.Buttons()&tcell.Button1 != 0

	// Start capture on press over a widget
	if !prevIsDown && nowDown {
		w := u.topmostAtLocked(x, y)
		if w == nil {
			return false
		}
		if u.focused != nil && u.focused != w {
			u.focused.Blur()
			u.focused = nil
		}
		u.focusLocked(w)
		u.capture = w
		if mw, ok := w.(MouseAware); ok {
			_ = mw.HandleMouse(ev)
		}
		u.InvalidateAll()
		return true
	}

	// While captured, forward all mouse events
	if u.capture != nil {
		if mw, ok := u.capture.(MouseAware); ok {
			_ = mw.HandleMouse(ev)
		}
		if prevIsDown && !nowDown {
			u.capture = nil
		}
		u.InvalidateAll()
		return true
	}
	return false
}

func (u *UIManager) topmostAtLocked(x, y int) Widget {
	for i := len(u.widgets) - 1; i >= 0; i-- {
		if w := deepHit(u.widgets[i], x, y); w != nil {
			return w
		}
	}
	return nil
}

func deepHit(w Widget, x, y int) Widget {
	if ht, ok := w.(HitTester); ok {
		if dw := ht.WidgetAt(x, y); dw != nil {
			return dw
		}
	}
	if w.HitTest(x, y) {
		return w
	}
	if cc, ok := w.(ChildContainer); ok {
		var res Widget
		cc.VisitChildren(func(child Widget) {
			if res != nil {
				return
			}
			if dw := deepHit(child, x, y); dw != nil {
				res = dw
			}
		})
		return res
	}
	return nil
}

// Invalidate marks a region for redraw. Render always recomposes the full
// frame, so the region only decides whether a refresh is requested.
func (u *UIManager) Invalidate(r Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	u.InvalidateAll()
}

// InvalidateAll marks the whole surface for redraw.
func (u *UIManager) InvalidateAll() {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	u.dirty = true
	if u.notifier == nil {
		return
	}
	select {
	case u.notifier <- true:
	default:
	}
}

// Dirty reports whether anything was invalidated since the last Render.
func (u *UIManager) Dirty() bool {
	u.dirtyMu.Lock()
	defer u.dirtyMu.Unlock()
	return u.dirty
}

// Render composes all widgets and returns the framebuffer.
func (u *UIManager) Render() [][]Cell {
	u.mu.Lock()
	defer u.mu.Unlock()

	if len(u.buf) != u.H || (u.H > 0 && len(u.buf[0]) != u.W) {
		u.buf = NewBuffer(u.W, u.H)
	}
	u.dirtyMu.Lock()
	u.dirty = false
	u.dirtyMu.Unlock()

	full := Rect{X: 0, Y: 0, W: u.W, H: u.H}
	p := NewPainter(u.buf, full)
	p.Fill(full, ' ', u.bgStyle)
	for _, w := range u.widgets {
		w.Draw(p)
	}
	return u.buf
}
