// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/value/value.go
// Summary: Bound input value with raw/display state and change notification.

// Package value provides the mutable cell that sits between a host property
// and the widgets editing it.
package value

import (
	"fmt"
	"log"

	"github.com/pkg/errors"

	"github.com/framegrace/texelpane/texelui/core"
)

// Codec converts between a raw value and the text shown while editing.
// Constrain, when set, maps every incoming raw value onto one the target
// can hold, so the raw value never drifts from what the host stores.
type Codec[T any] struct {
	Parse     func(string) (T, error)
	Format    func(T) string
	Constrain func(T) T
}

// ChangeEvent describes a raw value change.
type ChangeEvent[T any] struct {
	Old, New T
}

type setOptions struct {
	force      bool
	skipTarget bool
}

// SetOption tunes a SetRawValue call.
type SetOption func(*setOptions)

// WithForceEmit notifies subscribers even when the value is unchanged.
func WithForceEmit() SetOption { return func(o *setOptions) { o.force = true } }

// WithoutTarget updates the value without writing it to the target. Used
// when the change originates from the target itself.
func WithoutTarget() SetOption { return func(o *setOptions) { o.skipTarget = true } }

// Value holds the canonical raw value of an input and the display text a
// widget currently shows. The raw value is always valid; the display text
// may diverge while the user types and is reconciled on Commit.
//
// Value is not safe for concurrent use.
type Value[T comparable] struct {
	core.Lifecycle

	raw     T
	display string
	target  Target[T]
	codec   Codec[T]

	changes  Emitter[ChangeEvent[T]]
	displays Emitter[string]
}

// New creates a value with an initial raw value. target may be nil for a
// value that is not mirrored anywhere.
func New[T comparable](initial T, target Target[T], codec Codec[T]) *Value[T] {
	if codec.Constrain != nil {
		initial = codec.Constrain(initial)
	}
	v := &Value[T]{raw: initial, target: target, codec: codec}
	v.display = v.format(initial)
	v.OnDispose(func() {
		v.changes.Clear()
		v.displays.Clear()
	})
	return v
}

// RawValue returns the canonical value. It panics once disposed.
func (v *Value[T]) RawValue() T {
	v.MustBeAlive()
	return v.raw
}

// DisplayValue returns the text currently shown. It panics once disposed.
func (v *Value[T]) DisplayValue() string {
	v.MustBeAlive()
	return v.display
}

// Format renders a raw value with the value's codec.
func (v *Value[T]) Format(raw T) string { return v.format(raw) }

// FormattedValue returns the committed raw value as text, ignoring any
// pending display edit. It panics once disposed.
func (v *Value[T]) FormattedValue() string {
	v.MustBeAlive()
	return v.format(v.raw)
}

// OnChange subscribes to raw value changes.
func (v *Value[T]) OnChange(fn func(ChangeEvent[T])) (off func()) {
	if v.Disposed() {
		return func() {}
	}
	return v.changes.On(fn)
}

// OnDisplay subscribes to display text changes.
func (v *Value[T]) OnDisplay(fn func(string)) (off func()) {
	if v.Disposed() {
		return func() {}
	}
	return v.displays.On(fn)
}

// SetRawValue stores next, writes it to the target and notifies
// subscribers synchronously. Setting a value equal to the current one only
// re-formats the display text, which stops listener feedback loops.
func (v *Value[T]) SetRawValue(next T, opts ...SetOption) error {
	if err := v.Check(); err != nil {
		return err
	}
	var o setOptions
	for _, opt := range opts {
		opt(&o)
	}
	if v.codec.Constrain != nil {
		next = v.codec.Constrain(next)
	}

	old := v.raw
	if old == next && !o.force {
		v.setDisplay(v.format(next))
		return nil
	}

	v.raw = next
	if v.target != nil && !o.skipTarget {
		v.target.Set(next)
	}
	v.setDisplay(v.format(next))
	v.changes.Emit(ChangeEvent[T]{Old: old, New: next})
	return nil
}

// SetDisplayValue updates the shown text only. Nothing reaches the target
// until Commit.
func (v *Value[T]) SetDisplayValue(text string) error {
	if err := v.Check(); err != nil {
		return err
	}
	v.setDisplay(text)
	return nil
}

// Commit parses the display text into the raw value. Text that does not
// parse is rejected: the display reverts to the formatted raw value, the
// target is untouched and no error is returned. The only error is
// core.ErrAlreadyDisposed.
func (v *Value[T]) Commit() error {
	if err := v.Check(); err != nil {
		return err
	}
	if v.codec.Parse == nil {
		v.setDisplay(v.format(v.raw))
		return nil
	}
	next, err := v.codec.Parse(v.display)
	if err != nil {
		log.Printf("Value: rejected %q: %v", v.display, err)
		v.setDisplay(v.format(v.raw))
		return nil
	}
	return v.SetRawValue(next)
}

// Revert drops pending display edits.
func (v *Value[T]) Revert() error {
	if err := v.Check(); err != nil {
		return err
	}
	v.setDisplay(v.format(v.raw))
	return nil
}

// Apply parses text and stores it, returning parse errors to the caller.
// Unlike Commit it is meant for programmatic input such as presets.
func (v *Value[T]) Apply(text string) error {
	if err := v.Check(); err != nil {
		return err
	}
	if v.codec.Parse == nil {
		return errors.New("value: no parser configured")
	}
	next, err := v.codec.Parse(text)
	if err != nil {
		return errors.Wrapf(err, "value: apply %q", text)
	}
	return v.SetRawValue(next)
}

// Pull re-reads the target and adopts its value without writing it back.
func (v *Value[T]) Pull() error {
	if err := v.Check(); err != nil {
		return err
	}
	if v.target == nil {
		return nil
	}
	if tg, ok := v.target.(TryGetter[T]); ok {
		next, err := tg.TryGet()
		if err != nil {
			return errors.Wrap(err, "value: pull")
		}
		return v.SetRawValue(next, WithoutTarget())
	}
	return v.SetRawValue(v.target.Get(), WithoutTarget())
}

func (v *Value[T]) setDisplay(text string) {
	if text == v.display {
		return
	}
	v.display = text
	v.displays.Emit(text)
}

func (v *Value[T]) format(raw T) string {
	if v.codec.Format != nil {
		return v.codec.Format(raw)
	}
	return fmt.Sprint(raw)
}
