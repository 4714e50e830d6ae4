// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events provides change-notification channels: lists of
// listener functions that are registered with a stable [Handle],
// and removed again with that same handle.
package events

// Handle identifies one registered listener function on a [Listeners].
// The zero Handle is never returned by [Listeners.Add], so it can be
// used to mean "not registered".
type Handle uint64

// Listeners registers listener functions receiving events of type E.
// Listeners are closures with all context captured, registered on
// specific objects.  The zero value is ready to use.
type Listeners[E any] struct {
	funs   []listener[E]
	nextID Handle
}

type listener[E any] struct {
	handle Handle
	fun    func(ev E)
}

// Add adds a function to be called for each event, returning the
// handle to use with [Listeners.Remove].
func (ls *Listeners[E]) Add(fun func(ev E)) Handle {
	ls.nextID++
	ls.funs = append(ls.funs, listener[E]{handle: ls.nextID, fun: fun})
	return ls.nextID
}

// Remove removes the listener with the given handle, returning
// false if it was not registered.  Removing the zero Handle is a no-op.
func (ls *Listeners[E]) Remove(h Handle) bool {
	if h == 0 {
		return false
	}
	for i, l := range ls.funs {
		if l.handle == h {
			// copy to a new slice so that an in-progress Call is unaffected
			nf := make([]listener[E], 0, len(ls.funs)-1)
			nf = append(nf, ls.funs[:i]...)
			ls.funs = append(nf, ls.funs[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of registered listeners.
func (ls *Listeners[E]) Len() int {
	return len(ls.funs)
}

// Call calls all functions for given event, in the order they were added.
// Listeners added or removed during the call take effect on the next call.
func (ls *Listeners[E]) Call(ev E) {
	funs := ls.funs
	for _, l := range funs {
		l.fun(ev)
	}
}
