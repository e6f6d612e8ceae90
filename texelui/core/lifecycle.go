// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/core/lifecycle.go
// Summary: Scoped-resource lifecycle for views and bound values.

package core

// Lifecycle tracks owned resources and releases them on Dispose.
// Embed it in a view; register releases with OnDispose while constructing.
type Lifecycle struct {
	disposed bool
	releases []func()
}

// OnDispose registers fn to run on Dispose. Releases run in reverse order.
// Registering after disposal runs fn immediately.
func (l *Lifecycle) OnDispose(fn func()) {
	if fn == nil {
		return
	}
	if l.disposed {
		fn()
		return
	}
	l.releases = append(l.releases, fn)
}

// Dispose releases every registered resource. Subsequent calls are no-ops.
func (l *Lifecycle) Dispose() {
	if l.disposed {
		return
	}
	l.disposed = true
	for i := len(l.releases) - 1; i >= 0; i-- {
		l.releases[i]()
	}
	l.releases = nil
}

// Disposed reports whether Dispose has run.
func (l *Lifecycle) Disposed() bool { return l.disposed }

// Check returns ErrAlreadyDisposed once disposed.
func (l *Lifecycle) Check() error {
	if l.disposed {
		return ErrAlreadyDisposed
	}
	return nil
}

// MustBeAlive panics with ErrAlreadyDisposed once disposed. Accessors that
// cannot return an error use it to fail loudly.
func (l *Lifecycle) MustBeAlive() {
	if l.disposed {
		panic(ErrAlreadyDisposed)
	}
}

// Disposable is implemented by anything owning releasable resources.
type Disposable interface {
	Dispose()
}
