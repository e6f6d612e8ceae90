// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/pane/pane.go
// Summary: Tweak pane binding host properties to input views.
// Usage: Hosts add inputs with AddInput, then feed tcell events to
// HandleKey/HandleMouse and draw the buffer returned by Render.

package pane

import (
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/framegrace/texelpane/config"
	"github.com/framegrace/texelpane/texelui/core"
	"github.com/framegrace/texelpane/texelui/theme"
	"github.com/framegrace/texelpane/texelui/value"
	"github.com/framegrace/texelpane/texelui/widgets"
)

// ViewPicker selects the expandable color picker instead of the swatch row.
const ViewPicker = "picker"

const defaultWidth = 40

// InputParams configures one input.
type InputParams struct {
	Label    string  // defaults to the key
	Input    string  // "", "color", "color.rgb" or "color.rgba"
	Step     float64 // number step, 0 for the default
	View     string  // "" or ViewPicker for colors
	Expanded bool    // open the color palette initially
}

// Option configures a Pane.
type Option func(*Pane)

// WithTitle sets the frame title.
func WithTitle(title string) Option {
	return func(p *Pane) { p.frame.Title = title }
}

// WithWidth sets the pane width in cells.
func WithWidth(w int) Option {
	return func(p *Pane) { p.width = w }
}

// WithLabelWidth overrides the configured label column width.
func WithLabelWidth(w int) Option {
	return func(p *Pane) { p.body.labelWidth = w }
}

// Pane lays out one row per binding: a label column and the controller.
type Pane struct {
	core.Lifecycle

	ui       *core.UIManager
	frame    *widgets.Border
	body     *column
	width    int
	bindings []*Binding
}

// New creates an empty pane.
func New(opts ...Option) *Pane {
	tm := theme.Get()
	p := &Pane{
		ui:    core.NewUIManager(tm.Style("text.primary", "bg.base")),
		frame: widgets.NewBorder(0, 0, defaultWidth, 2, tm.Style("border.default", "bg.surface")),
		body: &column{
			bg:         widgets.NewPane(0, 0, 0, 0, tm.Style("text.primary", "bg.surface")),
			labelWidth: config.System().GetInt(config.PaneSection, config.KeyLabelWidth, 12),
		},
		width: defaultWidth,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.frame.SetChild(p.body)
	p.ui.AddWidget(p.frame)
	p.layout()
	return p
}

// AddInput binds obj[key]. The key must exist; its value picks the
// controller. An explicit color input whose initial value does not parse
// returns an error and creates nothing.
func (p *Pane) AddInput(obj map[string]any, key string, params InputParams) (*Binding, error) {
	if err := p.Check(); err != nil {
		return nil, err
	}
	mt, err := value.NewMapTarget(obj, key)
	if err != nil {
		return nil, err
	}
	return p.add(key, mt, mt.Get(), params)
}

// AddInputTarget binds an arbitrary target under label.
func (p *Pane) AddInputTarget(label string, target value.Target[any], params InputParams) (*Binding, error) {
	if err := p.Check(); err != nil {
		return nil, err
	}
	if target == nil {
		return nil, errors.Errorf("pane: %s: nil target", label)
	}
	return p.add(label, target, target.Get(), params)
}

func (p *Pane) add(key string, target value.Target[any], initial any, params InputParams) (*Binding, error) {
	label := params.Label
	if label == "" {
		label = key
	}
	b, err := p.bind(key, label, target, initial, params)
	if err != nil {
		log.Printf("Pane: cannot bind %s: %v", key, err)
		return nil, err
	}
	b.label = widgets.NewLabel(0, 0, 1, label)
	b.owner = p
	p.bindings = append(p.bindings, b)
	p.body.rows = append(p.body.rows, b)
	if p.body.inv != nil {
		propagateInvalidator(b.view, p.body.inv)
	}
	p.layout()
	p.ui.InvalidateAll()
	return b, nil
}

// Remove drops b's row and disposes it. Bindings of other panes are
// ignored.
func (p *Pane) Remove(b *Binding) {
	if b == nil || b.owner != p {
		return
	}
	b.owner = nil
	p.bindings = without(p.bindings, b)
	p.body.rows = without(p.body.rows, b)
	p.ui.Release(b.view)
	b.release()
	if !p.Disposed() {
		p.layout()
	}
}

func without(list []*Binding, b *Binding) []*Binding {
	for i, cur := range list {
		if cur == b {
			return append(list[:i:i], list[i+1:]...)
		}
	}
	return list
}

// Bindings returns the bindings in row order.
func (p *Pane) Bindings() []*Binding {
	return append([]*Binding(nil), p.bindings...)
}

// Binding returns the binding for key.
func (p *Pane) Binding(key string) (*Binding, bool) {
	for _, b := range p.bindings {
		if b.Key == key {
			return b, true
		}
	}
	return nil, false
}

// Refresh re-reads every host property. Bindings whose host value no
// longer decodes keep their value; the first such error is returned.
func (p *Pane) Refresh() error {
	if err := p.Check(); err != nil {
		return err
	}
	var first error
	for _, b := range p.bindings {
		if err := b.Refresh(); err != nil {
			log.Printf("Pane: refresh %s: %v", b.Key, err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}

// Focus moves keyboard focus to the binding's view.
func (p *Pane) Focus(b *Binding) {
	p.ui.Focus(focusTarget(b.view))
}

// HandleKey routes a key to the focused view; Tab cycles focus.
func (p *Pane) HandleKey(ev *tcell.EventKey) bool {
	if p.Disposed() {
		return false
	}
	return p.ui.HandleKey(ev)
}

// HandleMouse routes a mouse event with click-to-focus.
func (p *Pane) HandleMouse(ev *tcell.EventMouse) bool {
	if p.Disposed() {
		return false
	}
	return p.ui.HandleMouse(ev)
}

// SetRefreshNotifier registers a channel poked when the pane needs redraw.
func (p *Pane) SetRefreshNotifier(ch chan<- bool) { p.ui.SetRefreshNotifier(ch) }

// Size returns the pane size for the current layout.
func (p *Pane) Size() (int, int) {
	p.layout()
	return p.frame.Size()
}

// Render lays the rows out and composes the frame.
func (p *Pane) Render() [][]core.Cell {
	p.MustBeAlive()
	p.layout()
	w, h := p.frame.Size()
	if p.ui.W != w || p.ui.H != h {
		p.ui.Resize(w, h)
	}
	return p.ui.Render()
}

// Dispose releases every binding.
func (p *Pane) Dispose() {
	if p.Disposed() {
		return
	}
	for _, b := range p.bindings {
		b.owner = nil
		b.release()
	}
	p.bindings = nil
	p.body.rows = nil
	p.Lifecycle.Dispose()
}

func (p *Pane) layout() {
	p.frame.SetPosition(0, 0)
	p.frame.Resize(p.width, p.body.measure()+2)
}

// focusTarget returns the first focusable widget in w's tree.
func focusTarget(w core.Widget) core.Widget {
	if w.Focusable() {
		return w
	}
	var found core.Widget
	if cc, ok := w.(core.ChildContainer); ok {
		cc.VisitChildren(func(child core.Widget) {
			if found == nil {
				found = focusTarget(child)
			}
		})
	}
	return found
}

func propagateInvalidator(w core.Widget, fn func(core.Rect)) {
	if ia, ok := w.(core.InvalidationAware); ok {
		ia.SetInvalidator(fn)
	}
	if cc, ok := w.(core.ChildContainer); ok {
		cc.VisitChildren(func(child core.Widget) { propagateInvalidator(child, fn) })
	}
}
