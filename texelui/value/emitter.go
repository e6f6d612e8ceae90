// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texelui/value/emitter.go
// Summary: Typed synchronous publish/subscribe channel.

package value

// Emitter delivers events synchronously to subscribers in subscription order.
type Emitter[E any] struct {
	subs []*subscription[E]
}

type subscription[E any] struct {
	fn     func(E)
	active bool
}

// On subscribes fn and returns a function that unsubscribes it.
func (e *Emitter[E]) On(fn func(E)) (off func()) {
	s := &subscription[E]{fn: fn, active: true}
	e.subs = append(e.subs, s)
	return func() {
		if !s.active {
			return
		}
		s.active = false
		for i, cur := range e.subs {
			if cur == s {
				e.subs = append(e.subs[:i:i], e.subs[i+1:]...)
				break
			}
		}
	}
}

// Emit calls every subscriber. A subscriber removed during delivery is not
// called afterwards; one added during delivery waits for the next event.
func (e *Emitter[E]) Emit(ev E) {
	snapshot := e.subs
	for _, s := range snapshot {
		if s.active {
			s.fn(ev)
		}
	}
}

// Len returns the number of subscribers.
func (e *Emitter[E]) Len() int { return len(e.subs) }

// Clear drops every subscriber.
func (e *Emitter[E]) Clear() {
	for _, s := range e.subs {
		s.active = false
	}
	e.subs = nil
}
