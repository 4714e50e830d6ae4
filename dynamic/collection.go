// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamic

import (
	"fmt"

	"cogentcore.org/dynscene/base/ordmap"
	"cogentcore.org/dynscene/events"
)

// CollectionChange is the event raised when objects are added to
// or removed from a [Collection].
type CollectionChange struct {
	Collection *Collection
	Added      []*Object
	Removed    []*Object
}

// Collection is an ordered set of objects keyed by id.
// Changes are reported through [Collection.Changed], either
// immediately or, between [Collection.Suspend] and [Collection.Resume],
// as one combined event.
type Collection struct {

	// Changed is raised with the objects added and removed.
	Changed events.Listeners[CollectionChange]

	objects ordmap.Map[string, *Object]

	suspended int
	added     ordmap.Map[string, *Object]
	removed   ordmap.Map[string, *Object]
}

// NewCollection returns a new empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Len returns the number of objects.
func (c *Collection) Len() int {
	return c.objects.Len()
}

// Objects returns the objects in the order added.
func (c *Collection) Objects() []*Object {
	return c.objects.Values()
}

// ByID returns the object with the given id, or nil.
func (c *Collection) ByID(id string) *Object {
	return c.objects.ValueByKey(id)
}

// Add adds the object, returning an error if an object
// with the same id is already in the collection.
func (c *Collection) Add(o *Object) error {
	if c.objects.Has(o.ID()) {
		return fmt.Errorf("dynamic.Collection: an object with id %q already exists", o.ID())
	}
	c.objects.Add(o.ID(), o)
	c.changed(o, nil)
	return nil
}

// GetOrCreate returns the object with the given id,
// adding a new object if there is none.
func (c *Collection) GetOrCreate(id string) *Object {
	if o := c.ByID(id); o != nil {
		return o
	}
	o := NewObject(id)
	c.objects.Add(o.ID(), o)
	c.changed(o, nil)
	return o
}

// Remove removes the object, returning false if it was not in the collection.
func (c *Collection) Remove(o *Object) bool {
	return c.RemoveByID(o.ID())
}

// RemoveByID removes the object with the given id,
// returning false if there is none.
func (c *Collection) RemoveByID(id string) bool {
	o, ok := c.objects.ValueByKeyTry(id)
	if !ok {
		return false
	}
	c.objects.DeleteKey(id)
	c.changed(nil, o)
	return true
}

// RemoveAll removes all objects, raising one change event.
func (c *Collection) RemoveAll() {
	c.Suspend()
	for _, o := range c.objects.All() {
		c.RemoveByID(o.ID())
	}
	c.Resume()
}

// Suspend suspends change events until the matching [Collection.Resume].
// Calls can be nested.
func (c *Collection) Suspend() {
	c.suspended++
}

// Resume resumes change events, raising one event for all the changes
// made while suspended. An object added and then removed while suspended
// is not reported, and vice versa.
func (c *Collection) Resume() {
	if c.suspended == 0 {
		return
	}
	c.suspended--
	if c.suspended > 0 || (c.added.Len() == 0 && c.removed.Len() == 0) {
		return
	}
	ev := CollectionChange{Collection: c, Added: c.added.Values(), Removed: c.removed.Values()}
	c.added.Reset()
	c.removed.Reset()
	c.Changed.Call(ev)
}

func (c *Collection) changed(added, removed *Object) {
	if c.suspended > 0 {
		if added != nil {
			if r, ok := c.removed.ValueByKeyTry(added.ID()); ok && r == added {
				c.removed.DeleteKey(added.ID())
			} else {
				c.added.Add(added.ID(), added)
			}
		}
		if removed != nil {
			if a, ok := c.added.ValueByKeyTry(removed.ID()); ok && a == removed {
				c.added.DeleteKey(removed.ID())
			} else {
				c.removed.Add(removed.ID(), removed)
			}
		}
		return
	}
	ev := CollectionChange{Collection: c}
	if added != nil {
		ev.Added = []*Object{added}
	}
	if removed != nil {
		ev.Removed = []*Object{removed}
	}
	c.Changed.Call(ev)
}
