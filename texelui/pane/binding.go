// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/pane/binding.go
// Summary: Binding between one host property, its value and its view.

package pane

import (
	"github.com/framegrace/texelpane/texelui/color"
	"github.com/framegrace/texelpane/texelui/core"
	"github.com/framegrace/texelpane/texelui/value"
	"github.com/framegrace/texelpane/texelui/widgets"
)

// Kind is the controller family chosen for a host value.
type Kind int

const (
	KindText Kind = iota
	KindNumber
	KindBool
	KindColor
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindColor:
		return "color"
	}
	return "text"
}

// boundValue is the type-erased side of a *value.Value[T].
type boundValue interface {
	DisplayValue() string
	FormattedValue() string
	Apply(text string) error
	Pull() error
	Dispose()
}

// Binding ties a host property to a bound value and the view editing it.
type Binding struct {
	Key      string
	Label    string
	Kind     Kind
	Notation color.Notation // KindColor only

	val   boundValue
	color *value.Value[color.Color]
	view  core.Widget
	label *widgets.Label
	owner *Pane
}

// View returns the controller widget.
func (b *Binding) View() core.Widget { return b.view }

// Text returns the display text, including an uncommitted edit.
func (b *Binding) Text() string { return b.val.DisplayValue() }

// Formatted returns the committed value as text Apply accepts.
func (b *Binding) Formatted() string { return b.val.FormattedValue() }

// Apply parses text with the binding's codec and writes it to the host.
func (b *Binding) Apply(text string) error { return b.val.Apply(text) }

// Refresh re-reads the host property without writing it back.
func (b *Binding) Refresh() error { return b.val.Pull() }

// Color returns the bound color for color bindings.
func (b *Binding) Color() (color.Color, bool) {
	if b.color == nil {
		return color.Color{}, false
	}
	return b.color.RawValue(), true
}

// Dispose detaches the binding from its pane and releases the view and
// the value.
func (b *Binding) Dispose() {
	if b.owner != nil {
		b.owner.Remove(b)
		return
	}
	b.release()
}

func (b *Binding) release() {
	if d, ok := b.view.(core.Disposable); ok {
		d.Dispose()
	}
	b.val.Dispose()
}
