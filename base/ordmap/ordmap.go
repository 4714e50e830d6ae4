// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package ordmap implements an ordered map that retains the order of items
as they are added, while also providing fast key-based lookup of items,
using the Go generics system.

Items are held in a doubly-linked list in insertion order, and the map
holds a pointer to the list element for each key.  Adding, lookup and
deleting are all constant time, and deleting preserves the order of
the remaining items.  Iteration with [Map.All] tolerates deletion of
any item (including the current one) and addition of new items, which
are visited at the end.
*/
package ordmap

import (
	"fmt"
	"iter"
	"strings"
)

// KeyValue represents a key-value pair.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// element is one item in the insertion-order list.
type element[K comparable, V any] struct {
	KeyValue[K, V]
	prev, next *element[K, V]

	// seq is the position of the element in the order of all adds.
	seq uint64

	// deleted is set when the element has been removed; its next
	// pointer is kept so that iterators can move past it.
	deleted bool
}

// Map is a generic ordered map that combines insertion order
// with fast key lookup.
type Map[K comparable, V any] struct {
	index map[K]*element[K, V]
	head  *element[K, V]
	tail  *element[K, V]
	seq   uint64
}

// New returns a new ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		index: make(map[K]*element[K, V]),
	}
}

// Make constructs a new ordered map with the given key-value pairs.
func Make[K comparable, V any](vals []KeyValue[K, V]) *Map[K, V] {
	om := &Map[K, V]{
		index: make(map[K]*element[K, V], len(vals)),
	}
	for _, kv := range vals {
		om.Add(kv.Key, kv.Value)
	}
	return om
}

// Init initializes the map if it isn't already.
func (om *Map[K, V]) Init() {
	if om.index == nil {
		om.index = make(map[K]*element[K, V])
	}
}

// Reset resets the map, removing any existing elements.
func (om *Map[K, V]) Reset() {
	for e := om.head; e != nil; e = e.next {
		e.deleted = true
	}
	om.index = nil
	om.head = nil
	om.tail = nil
}

// Add adds a new value for given key.
// If key already exists in map, it replaces the value in place,
// keeping its position; otherwise it is added to the end.
func (om *Map[K, V]) Add(key K, val V) {
	om.Init()
	if e, has := om.index[key]; has {
		e.Value = val
		return
	}
	om.seq++
	e := &element[K, V]{KeyValue: KeyValue[K, V]{Key: key, Value: val}, seq: om.seq}
	if om.tail == nil {
		om.head = e
	} else {
		om.tail.next = e
		e.prev = om.tail
	}
	om.tail = e
	om.index[key] = e
}

// ValueByKey returns the value corresponding to the given key,
// with a zero value returned for a missing key. See [Map.ValueByKeyTry]
// for one that returns a bool for missing keys.
func (om *Map[K, V]) ValueByKey(key K) V {
	if e, ok := om.index[key]; ok {
		return e.Value
	}
	var zv V
	return zv
}

// ValueByKeyTry returns the value corresponding to the given key,
// with false returned for a missing key.
func (om *Map[K, V]) ValueByKeyTry(key K) (V, bool) {
	if e, ok := om.index[key]; ok {
		return e.Value, true
	}
	var zv V
	return zv, false
}

// Has returns whether the given key is in the map.
func (om *Map[K, V]) Has(key K) bool {
	_, ok := om.index[key]
	return ok
}

// Len returns the number of items in the map.
func (om *Map[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.index)
}

// DeleteKey deletes the item with the given key, returning false if it does not find it.
func (om *Map[K, V]) DeleteKey(key K) bool {
	e, ok := om.index[key]
	if !ok {
		return false
	}
	delete(om.index, key)
	if e.prev == nil {
		om.head = e.next
	} else {
		e.prev.next = e.next
	}
	if e.next == nil {
		om.tail = e.prev
	} else {
		e.next.prev = e.prev
	}
	e.deleted = true
	e.prev = nil
	return true
}

// All returns an iterator over the key-value pairs in order.
// It is safe to delete or add items while iterating.
func (om *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := om.head; e != nil; e = om.following(e) {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// following returns the live element after e in order, which may
// have been deleted, or nil if there is none.
func (om *Map[K, V]) following(e *element[K, V]) *element[K, V] {
	if !e.deleted {
		return e.next
	}
	n := e.next
	for n != nil && n.deleted {
		n = n.next
	}
	if n != nil {
		return n
	}
	// the chain of deleted elements ended at an old tail,
	// so items added since then are only reachable from the tail
	var first *element[K, V]
	for n := om.tail; n != nil && n.seq > e.seq; n = n.prev {
		first = n
	}
	return first
}

// Keys returns a slice of the keys in order.
func (om *Map[K, V]) Keys() []K {
	kl := make([]K, 0, om.Len())
	for k := range om.All() {
		kl = append(kl, k)
	}
	return kl
}

// Values returns a slice of the values in order.
func (om *Map[K, V]) Values() []V {
	vl := make([]V, 0, om.Len())
	for _, v := range om.All() {
		vl = append(vl, v)
	}
	return vl
}

// Order returns a snapshot of the key-value pairs in order.
func (om *Map[K, V]) Order() []KeyValue[K, V] {
	ol := make([]KeyValue[K, V], 0, om.Len())
	for k, v := range om.All() {
		ol = append(ol, KeyValue[K, V]{Key: k, Value: v})
	}
	return ol
}

// Copy copies all of the entries from the given ordered map
// into this ordered map. It keeps existing entries in this
// map unless they also exist in the given map, in which case
// they are overwritten.
func (om *Map[K, V]) Copy(from *Map[K, V]) {
	for k, v := range from.All() {
		om.Add(k, v)
	}
}

// String returns a string representation of the map.
func (om *Map[K, V]) String() string {
	var b strings.Builder
	b.WriteString("[")
	first := true
	for k, v := range om.All() {
		if !first {
			b.WriteString(" ")
		}
		first = false
		fmt.Fprintf(&b, "{%v %v}", k, v)
	}
	b.WriteString("]")
	return b.String()
}
