// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package property provides time-sampled values.
// A [Property] is queried at a given time with [Property.Value];
// constant properties report [Property.IsConstant] so that callers
// can take a single snapshot instead of sampling every frame.
//
// All implementations in this package are pointer types, so that
// two property references can be compared with == to determine
// whether a property has been replaced.
package property

import (
	"reflect"
	"time"
)

// MinTime is the sentinel time at which constant properties are
// snapshotted. Constant values do not depend on time, so any time
// would do; a fixed sentinel makes the intent explicit.
var MinTime = time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC)

// Property is a value source that can be queried at a given time.
type Property[T any] interface {

	// Value returns the value of the property at the given time.
	Value(t time.Time) T

	// IsConstant returns whether the value never changes
	// after creation, regardless of time.
	IsConstant() bool
}

// Equaler is implemented by properties that support semantic
// equality with another property.
type Equaler interface {
	Equal(other any) bool
}

// Equal returns whether the two properties are the same reference,
// or semantically equal according to [Equaler].
// Two nil properties are equal.
func Equal[T any](a, b Property[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if Same(a, b) {
		return true
	}
	if eq, ok := a.(Equaler); ok {
		return eq.Equal(b)
	}
	return false
}

// Same returns whether the two property references are identical.
// It does not panic for non-comparable implementations, which are
// never the same.
func Same[T any](a, b Property[T]) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}

// IsConstant returns whether p is non-nil and constant.
func IsConstant[T any](p Property[T]) bool {
	return p != nil && p.IsConstant()
}

// ValueOr returns the value of p at time t, or def if p is nil.
func ValueOr[T any](p Property[T], t time.Time, def T) T {
	if p == nil {
		return def
	}
	return p.Value(t)
}

////////////////////////////////////////////////////////////////
// Constant

// Constant is a property whose value never changes.
// To change the value of a property holding a Constant,
// assign a new Constant.
type Constant[T any] struct {
	value T
}

// NewConstant returns a new constant property with the given value.
func NewConstant[T any](v T) *Constant[T] {
	return &Constant[T]{value: v}
}

func (c *Constant[T]) Value(t time.Time) T {
	return c.value
}

func (c *Constant[T]) IsConstant() bool {
	return true
}

// Equal returns whether other is a Constant with an equal value.
func (c *Constant[T]) Equal(other any) bool {
	oc, ok := other.(*Constant[T])
	if !ok {
		return false
	}
	return c == oc || reflect.DeepEqual(c.value, oc.value)
}

////////////////////////////////////////////////////////////////
// Func

// Func is a property computed by a function of time.
type Func[T any] struct {
	fun func(t time.Time) T
}

// NewFunc returns a new property computed by the given function.
func NewFunc[T any](fun func(t time.Time) T) *Func[T] {
	return &Func[T]{fun: fun}
}

func (f *Func[T]) Value(t time.Time) T {
	return f.fun(t)
}

func (f *Func[T]) IsConstant() bool {
	return false
}
