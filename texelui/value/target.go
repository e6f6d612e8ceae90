// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/value/target.go
// Summary: Getter/setter bindings to host properties.

package value

import "github.com/pkg/errors"

// Target is the host property a Value mirrors.
type Target[T any] interface {
	Get() T
	Set(T)
}

// FuncTarget adapts a getter/setter pair.
type FuncTarget[T any] struct {
	GetFn func() T
	SetFn func(T)
}

func (t FuncTarget[T]) Get() T {
	var zero T
	if t.GetFn == nil {
		return zero
	}
	return t.GetFn()
}

func (t FuncTarget[T]) Set(v T) {
	if t.SetFn != nil {
		t.SetFn(v)
	}
}

// MapTarget binds a key of a map-shaped host object.
type MapTarget struct {
	Object map[string]any
	Key    string
}

// NewMapTarget fails when the key is absent, so no binding is created for
// a property the host does not have.
func NewMapTarget(obj map[string]any, key string) (MapTarget, error) {
	if obj == nil {
		return MapTarget{}, errors.New("value: nil host object")
	}
	if _, ok := obj[key]; !ok {
		return MapTarget{}, errors.Errorf("value: host object has no property %q", key)
	}
	return MapTarget{Object: obj, Key: key}, nil
}

func (t MapTarget) Get() any  { return t.Object[t.Key] }
func (t MapTarget) Set(v any) { t.Object[t.Key] = v }

// TryGetter is implemented by targets whose reads can fail. Value.Pull
// prefers it over Get so a bad host value never replaces a good one.
type TryGetter[T any] interface {
	TryGet() (T, error)
}

// Adapter converts a Target[any] to a typed target.
type Adapter[T any] struct {
	Inner  Target[any]
	Decode func(any) (T, error)
	Encode func(T) any
}

// TryGet decodes the current host value.
func (a Adapter[T]) TryGet() (T, error) {
	return a.Decode(a.Inner.Get())
}

// Get returns the decoded host value, or the zero value when it does not decode.
func (a Adapter[T]) Get() T {
	v, _ := a.TryGet()
	return v
}

func (a Adapter[T]) Set(v T) { a.Inner.Set(a.Encode(v)) }
