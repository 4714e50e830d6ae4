// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynscene

import (
	"log/slog"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/dynscene/base/ordmap"
	"cogentcore.org/dynscene/geometry"
	"cogentcore.org/dynscene/material"
	"cogentcore.org/dynscene/render"
)

// dynamicItem draws one dynamic updater with its own fill
// and outline primitives.
type dynamicItem struct {
	updater Updater

	primitive        *render.Primitive
	outlinePrimitive *render.Primitive

	geometry           geometry.Geometry
	matrix             math32.Matrix4
	material           material.Property
	sample             *render.Material
	filled             bool
	outlined           bool
	translucent        bool
	outlineTranslucent bool
}

// changed returns whether the primitives must be rebuilt for
// the current state of the updater.
func (it *dynamicItem) changed(t time.Time) bool {
	u := it.updater
	g := u.Geometry()
	if it.geometry == nil || (it.geometry != g && !it.geometry.Equal(g)) {
		return true
	}
	return it.matrix != u.ModelMatrix() || it.material != u.Material() ||
		it.filled != u.IsFilled() || it.outlined != u.IsOutlined() ||
		it.translucent != u.IsTranslucent(t) ||
		it.outlineTranslucent != (u.OutlineColor().A < 255)
}

func (it *dynamicItem) destroy(primitives render.Collection) {
	if it.primitive != nil {
		primitives.Remove(it.primitive)
		it.primitive = nil
	}
	if it.outlinePrimitive != nil {
		primitives.Remove(it.outlinePrimitive)
		it.outlinePrimitive = nil
	}
}

func (it *dynamicItem) hide() {
	if it.primitive != nil {
		it.primitive.Show = false
	}
	if it.outlinePrimitive != nil {
		it.outlinePrimitive.Show = false
	}
}

// DynamicBatch draws updaters with time-varying shapes, each with
// its own primitives, which are rebuilt whenever the shape changes.
type DynamicBatch struct {
	primitives render.Collection
	color      func(translucent bool) render.Appearance
	material   MaterialAppearanceFunc
	trace      bool
	onError    ErrorFunc

	items ordmap.Map[string, *dynamicItem]

	// Rebuilds is the total number of times primitives were built.
	Rebuilds int
}

// NewDynamicBatch returns a new dynamic batch using the given
// appearances for color and other materials.
func NewDynamicBatch(primitives render.Collection, color func(translucent bool) render.Appearance, mat MaterialAppearanceFunc) *DynamicBatch {
	return &DynamicBatch{primitives: primitives, color: color, material: mat}
}

// SetTrace sets whether rebuilds are logged at debug level.
func (b *DynamicBatch) SetTrace(trace bool) *DynamicBatch {
	b.trace = trace
	return b
}

// SetErrorFunc sets the function handling errors while updating
// an item. If it is nil, errors panic. Otherwise the failing updater
// is dropped and passed to it.
func (b *DynamicBatch) SetErrorFunc(onError ErrorFunc) *DynamicBatch {
	b.onError = onError
	return b
}

func (b *DynamicBatch) Add(u Updater) {
	b.items.Add(u.ID(), &dynamicItem{updater: u})
}

func (b *DynamicBatch) Remove(u Updater) bool {
	it, ok := b.items.ValueByKeyTry(u.ID())
	if !ok {
		return false
	}
	it.destroy(b.primitives)
	b.items.DeleteKey(u.ID())
	return true
}

func (b *DynamicBatch) Contains(u Updater) bool {
	it, ok := b.items.ValueByKeyTry(u.ID())
	return ok && it.updater == u
}

func (b *DynamicBatch) Len() int { return b.items.Len() }

func (b *DynamicBatch) Update(t time.Time) {
	for id, it := range b.items.All() {
		if err := catch(b.onError != nil, func() { b.updateItem(t, it) }); err != nil {
			it.destroy(b.primitives)
			b.items.DeleteKey(id)
			b.onError(it.updater, err)
		}
	}
}

func (b *DynamicBatch) updateItem(t time.Time, it *dynamicItem) {
	u := it.updater
	if !u.Show() || u.Geometry() == nil {
		it.hide()
		return
	}
	if it.changed(t) {
		b.rebuild(t, it)
	}
	if it.primitive != nil {
		it.primitive.Show = true
		b.patch(t, it)
	}
	if it.outlinePrimitive != nil {
		it.outlinePrimitive.Show = true
		if at := it.outlinePrimitive.Attributes(u.ID()); at != nil {
			at.Color = u.OutlineColor()
			at.Show = true
		}
	}
}

// patch updates the color attribute or the material of the fill primitive.
func (b *DynamicBatch) patch(t time.Time, it *dynamicItem) {
	u := it.updater
	if it.sample != nil {
		it.sample = u.Material().Value(t, it.sample)
		it.primitive.Appearance.Material = it.sample
		return
	}
	if at := it.primitive.Attributes(u.ID()); at != nil {
		at.Color = u.Color()
		at.Show = true
	}
}

func (b *DynamicBatch) rebuild(t time.Time, it *dynamicItem) {
	u := it.updater
	it.destroy(b.primitives)
	it.geometry = u.Geometry()
	it.matrix = u.ModelMatrix()
	it.material = u.Material()
	it.filled = u.IsFilled()
	it.outlined = u.IsOutlined()
	it.translucent = u.IsTranslucent(t)
	it.outlineTranslucent = u.OutlineColor().A < 255
	it.sample = nil
	if it.filled {
		var app render.Appearance
		if _, isColor := material.ColorOf(it.material); isColor {
			app = b.color(it.translucent)
		} else {
			it.sample = it.material.Value(t, nil)
			app = b.material(it.sample, it.translucent)
		}
		in := u.CreateGeometryInstance()
		in.Attributes.Show = true
		it.primitive = render.NewPrimitive([]*geometry.Instance{in}, app)
		b.primitives.Add(it.primitive)
	}
	if it.outlined {
		if in := u.CreateOutlineGeometryInstance(); in != nil {
			in.Attributes.Show = true
			it.outlinePrimitive = render.NewPrimitive([]*geometry.Instance{in}, render.Outline(it.outlineTranslucent))
			b.primitives.Add(it.outlinePrimitive)
		}
	}
	b.Rebuilds++
	if b.trace {
		slog.Debug("dynscene: rebuilt dynamic geometry", "id", u.ID(), "kind", it.geometry.Kind())
	}
}

func (b *DynamicBatch) Primitives() []*render.Primitive {
	var ps []*render.Primitive
	for _, it := range b.items.All() {
		if it.primitive != nil {
			ps = append(ps, it.primitive)
		}
		if it.outlinePrimitive != nil {
			ps = append(ps, it.outlinePrimitive)
		}
	}
	return ps
}

func (b *DynamicBatch) RemoveAllPrimitives() {
	for _, it := range b.items.All() {
		it.destroy(b.primitives)
	}
	b.items.Reset()
}
