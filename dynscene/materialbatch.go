// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynscene

import (
	"log/slog"
	"slices"
	"time"

	"cogentcore.org/dynscene/base/ordmap"
	"cogentcore.org/dynscene/geometry"
	"cogentcore.org/dynscene/material"
	"cogentcore.org/dynscene/render"
)

// MaterialAppearanceFunc returns the appearance of a primitive
// shaded with the given material sample.
type MaterialAppearanceFunc func(mat *render.Material, translucent bool) render.Appearance

// materialBatch draws the updaters sharing one material as one primitive.
type materialBatch struct {
	primitives render.Collection
	appearance MaterialAppearanceFunc
	trace      bool

	material    material.Property
	sample      *render.Material
	translucent bool

	members         ordmap.Map[string, *member]
	primitive       *render.Primitive
	createPrimitive bool
}

// isMaterial returns whether the updater's material is the material of the batch.
func (b *materialBatch) isMaterial(u Updater) bool {
	return material.Equal(b.material, u.Material())
}

func (b *materialBatch) add(u Updater) {
	b.members.Add(u.ID(), newMember(u, u.CreateGeometryInstance()))
	b.createPrimitive = true
}

func (b *materialBatch) remove(u Updater) bool {
	if !b.members.DeleteKey(u.ID()) {
		return false
	}
	b.createPrimitive = true
	return true
}

func (b *materialBatch) update(t time.Time) {
	for id, m := range b.members.All() {
		if m.changed() {
			b.members.Add(id, newMember(m.updater, m.updater.CreateGeometryInstance()))
			b.createPrimitive = true
		}
	}
	b.sample = b.material.Value(t, b.sample)
	translucent := b.material.IsTranslucent(t)
	if translucent != b.translucent {
		b.translucent = translucent
		b.createPrimitive = true
	}
	if b.createPrimitive {
		b.rebuild()
	}
	if b.primitive == nil {
		return
	}
	b.primitive.Appearance.Material = b.sample
	for id, m := range b.members.All() {
		if m.attributes == nil {
			if m.attributes = b.primitive.Attributes(id); m.attributes == nil {
				continue
			}
		}
		m.attributes.Show = m.updater.Show() && m.updater.IsFilled()
	}
}

func (b *materialBatch) rebuild() {
	b.createPrimitive = false
	b.removePrimitive()
	if b.members.Len() == 0 {
		return
	}
	ins := make([]*geometry.Instance, 0, b.members.Len())
	for _, m := range b.members.All() {
		m.attributes = nil
		if m.instance != nil {
			ins = append(ins, m.instance)
		}
	}
	b.primitive = render.NewPrimitive(ins, b.appearance(b.sample, b.translucent))
	b.primitives.Add(b.primitive)
	if b.trace {
		slog.Debug("dynscene: rebuilt material batch", "primitive", b.primitive.String(), "material", b.sample.String())
	}
}

func (b *materialBatch) removePrimitive() {
	if b.primitive != nil {
		b.primitives.Remove(b.primitive)
		b.primitive = nil
	}
}

// MaterialBatch draws updaters with static geometry and non-color
// materials, with one sub-batch for each distinct material.
// Materials are distinct when they are not [material.Equal].
type MaterialBatch struct {
	primitives render.Collection
	appearance MaterialAppearanceFunc
	trace      bool
	onError    ErrorFunc
	items      []*materialBatch
}

// NewMaterialBatch returns a new material batch using the given appearance.
func NewMaterialBatch(primitives render.Collection, appearance MaterialAppearanceFunc) *MaterialBatch {
	return &MaterialBatch{primitives: primitives, appearance: appearance}
}

// SetTrace sets whether rebuilds are logged at debug level.
func (b *MaterialBatch) SetTrace(trace bool) *MaterialBatch {
	b.trace = trace
	for _, it := range b.items {
		it.trace = trace
	}
	return b
}

// SetErrorFunc sets the function handling errors while updating
// a sub-batch. If it is nil, errors panic. Otherwise the members of
// the failing sub-batch are dropped and passed to it.
func (b *MaterialBatch) SetErrorFunc(onError ErrorFunc) *MaterialBatch {
	b.onError = onError
	return b
}

// SubBatches returns the number of distinct materials.
func (b *MaterialBatch) SubBatches() int {
	return len(b.items)
}

func (b *MaterialBatch) Add(u Updater) {
	for _, it := range b.items {
		if it.isMaterial(u) {
			it.add(u)
			return
		}
	}
	it := &materialBatch{
		primitives: b.primitives,
		appearance: b.appearance,
		trace:      b.trace,
		material:   u.Material(),
	}
	it.add(u)
	b.items = append(b.items, it)
}

func (b *MaterialBatch) Remove(u Updater) bool {
	for _, it := range b.items {
		if it.remove(u) {
			return true
		}
	}
	return false
}

func (b *MaterialBatch) Contains(u Updater) bool {
	for _, it := range b.items {
		if m, ok := it.members.ValueByKeyTry(u.ID()); ok && m.updater == u {
			return true
		}
	}
	return false
}

func (b *MaterialBatch) Len() int {
	n := 0
	for _, it := range b.items {
		n += it.members.Len()
	}
	return n
}

// Update moves updaters whose material changed to the matching
// sub-batch, updates all sub-batches and drops empty ones.
func (b *MaterialBatch) Update(t time.Time) {
	var moved []Updater
	for _, it := range b.items {
		for _, m := range it.members.All() {
			if !it.isMaterial(m.updater) {
				it.remove(m.updater)
				moved = append(moved, m.updater)
			}
		}
	}
	for _, u := range moved {
		b.Add(u)
	}
	for _, it := range b.items {
		if err := catch(b.onError != nil, func() { it.update(t) }); err != nil {
			it.removePrimitive()
			for id, m := range it.members.All() {
				it.members.DeleteKey(id)
				b.onError(m.updater, err)
			}
		}
	}
	b.items = slices.DeleteFunc(b.items, func(it *materialBatch) bool {
		if it.members.Len() > 0 {
			return false
		}
		it.removePrimitive()
		return true
	})
}

func (b *MaterialBatch) Primitives() []*render.Primitive {
	var ps []*render.Primitive
	for _, it := range b.items {
		if it.primitive != nil {
			ps = append(ps, it.primitive)
		}
	}
	return ps
}

func (b *MaterialBatch) RemoveAllPrimitives() {
	for _, it := range b.items {
		it.removePrimitive()
	}
	b.items = nil
}
