// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render provides the renderer-facing primitive construct:
// a [Primitive] combines a list of geometry instances with an
// [Appearance], and a [Collection] holds the primitives to draw.
// GPU backends consume these descriptors; this package does no
// drawing itself.
package render

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"cogentcore.org/dynscene/base/ordmap"
	"cogentcore.org/dynscene/geometry"
)

var primitiveSerial atomic.Uint64

// Primitive is a drawable set of geometry instances sharing one appearance.
// Its membership and appearance are fixed at construction, except for
// the appearance material, which can be reassigned. Per-instance
// attributes are changed through [Primitive.Attributes].
type Primitive struct {

	// Instances are the geometry instances, in order.
	Instances []*geometry.Instance

	// Appearance describes the shading of all instances.
	Appearance Appearance

	// Show is whether the primitive is drawn at all.
	Show bool

	// Serial is a unique number identifying this primitive, for logging.
	Serial uint64

	attributes map[string]*geometry.Attributes
	byID       map[string]*geometry.Instance
	destroyed  bool
}

// NewPrimitive returns a new, shown primitive with the given instances.
// Instance ids must be unique within the primitive.
func NewPrimitive(instances []*geometry.Instance, app Appearance) *Primitive {
	p := &Primitive{
		Instances:  instances,
		Appearance: app,
		Show:       true,
		Serial:     primitiveSerial.Add(1),
		byID:       make(map[string]*geometry.Instance, len(instances)),
	}
	for _, in := range instances {
		p.byID[in.ID] = in
	}
	return p
}

// Attributes returns the mutable per-instance attributes for the
// instance with the given id, or nil if there is no such instance.
// The same pointer is returned on every call.
func (p *Primitive) Attributes(id string) *geometry.Attributes {
	if at, ok := p.attributes[id]; ok {
		return at
	}
	in, ok := p.byID[id]
	if !ok {
		return nil
	}
	if p.attributes == nil {
		p.attributes = make(map[string]*geometry.Attributes)
	}
	at := in.Attributes
	p.attributes[id] = &at
	return &at
}

// HasInstance returns whether the primitive has an instance with the given id.
func (p *Primitive) HasInstance(id string) bool {
	_, ok := p.byID[id]
	return ok
}

// Destroy releases the primitive. It is called by [Collection.Remove].
func (p *Primitive) Destroy() {
	p.destroyed = true
	p.attributes = nil
}

// IsDestroyed returns whether [Primitive.Destroy] has been called.
func (p *Primitive) IsDestroyed() bool {
	return p.destroyed
}

func (p *Primitive) String() string {
	return fmt.Sprintf("Primitive %d (%d instances, %v)", p.Serial, len(p.Instances), p.Appearance.Kind)
}

////////////////////////////////////////////////////////////////
// Collection

// Collection is the set of primitives to draw.
// It is shared by all batches of all visualizers drawing into one scene;
// each batch only adds and removes the primitives it created.
type Collection interface {

	// Add adds the primitive to the collection.
	Add(p *Primitive)

	// Remove removes and destroys the primitive, returning
	// false if it was not in the collection.
	Remove(p *Primitive) bool

	// Contains returns whether the primitive is in the collection.
	Contains(p *Primitive) bool

	// Len returns the number of primitives.
	Len() int
}

// Primitives is an in-memory [Collection] that keeps primitives in
// the order added. It also counts additions and removals, which
// is useful for checking how much primitive churn an update caused.
type Primitives struct {

	// Trace logs every add and remove at debug level.
	Trace bool

	// Added is the total number of primitives ever added.
	Added int

	// Removed is the total number of primitives ever removed.
	Removed int

	prims ordmap.Map[*Primitive, struct{}]
}

// NewPrimitives returns a new empty primitive collection.
func NewPrimitives() *Primitives {
	return &Primitives{}
}

func (pc *Primitives) Add(p *Primitive) {
	if pc.prims.Has(p) {
		return
	}
	pc.prims.Add(p, struct{}{})
	pc.Added++
	if pc.Trace {
		slog.Debug("render.Primitives: added", "primitive", p.String())
	}
}

func (pc *Primitives) Remove(p *Primitive) bool {
	if !pc.prims.DeleteKey(p) {
		return false
	}
	p.Destroy()
	pc.Removed++
	if pc.Trace {
		slog.Debug("render.Primitives: removed", "primitive", p.String())
	}
	return true
}

func (pc *Primitives) Contains(p *Primitive) bool {
	return pc.prims.Has(p)
}

func (pc *Primitives) Len() int {
	return pc.prims.Len()
}

// List returns the primitives in the order added.
func (pc *Primitives) List() []*Primitive {
	return pc.prims.Keys()
}

// ResetCounts resets the Added and Removed counters.
func (pc *Primitives) ResetCounts() {
	pc.Added = 0
	pc.Removed = 0
}
