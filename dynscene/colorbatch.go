// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynscene

import (
	"image/color"
	"log/slog"
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/dynscene/base/ordmap"
	"cogentcore.org/dynscene/geometry"
	"cogentcore.org/dynscene/render"
)

// Batch draws the geometry of a set of updaters.
type Batch interface {

	// Add adds the updater. It must not already be in the batch.
	Add(u Updater)

	// Remove removes the updater, returning false if it was not in the batch.
	Remove(u Updater) bool

	// Contains returns whether the updater is in the batch.
	Contains(u Updater) bool

	// Len returns the number of updaters in the batch.
	Len() int

	// Update brings the primitives of the batch up to date for time t.
	Update(t time.Time)

	// Primitives returns the primitives currently owned by the batch.
	Primitives() []*render.Primitive

	// RemoveAllPrimitives removes all primitives and all updaters.
	RemoveAllPrimitives()
}

// member is an updater in a static batch, with the instance made for it
// and the updater geometry it was made from.
type member struct {
	updater    Updater
	source     geometry.Geometry
	matrix     math32.Matrix4
	instance   *geometry.Instance
	attributes *geometry.Attributes
}

func newMember(u Updater, in *geometry.Instance) *member {
	return &member{updater: u, source: u.Geometry(), matrix: u.ModelMatrix(), instance: in}
}

// changed returns whether the updater geometry or its placement
// changed since the instance was made.
func (m *member) changed() bool {
	g := m.updater.Geometry()
	if m.source == nil || g == nil {
		return m.source != g
	}
	if m.matrix != m.updater.ModelMatrix() {
		return true
	}
	if m.source == g {
		return false
	}
	if !m.source.Equal(g) {
		return true
	}
	m.source = g
	return false
}

// colorBatch draws a set of updaters as one primitive with per-instance
// colors and a fixed translucency. When outline is set, it draws the
// outline instances with the outline color.
type colorBatch struct {
	primitives render.Collection
	appearance render.Appearance
	outline    bool
	trace      bool

	members         ordmap.Map[string, *member]
	primitive       *render.Primitive
	createPrimitive bool
}

func newColorBatch(primitives render.Collection, app render.Appearance, outline bool) *colorBatch {
	return &colorBatch{primitives: primitives, appearance: app, outline: outline}
}

func (b *colorBatch) newInstance(u Updater) *geometry.Instance {
	if b.outline {
		return u.CreateOutlineGeometryInstance()
	}
	return u.CreateGeometryInstance()
}

// attributes returns the color and show attributes the updater wants.
func (b *colorBatch) attributes(u Updater) (color.RGBA, bool) {
	if b.outline {
		return u.OutlineColor(), u.Show() && u.IsOutlined()
	}
	return u.Color(), u.Show() && u.IsFilled()
}

func (b *colorBatch) Add(u Updater) {
	b.members.Add(u.ID(), newMember(u, b.newInstance(u)))
	b.createPrimitive = true
}

func (b *colorBatch) Remove(u Updater) bool {
	if !b.members.DeleteKey(u.ID()) {
		return false
	}
	b.createPrimitive = true
	return true
}

func (b *colorBatch) Contains(u Updater) bool {
	m, ok := b.members.ValueByKeyTry(u.ID())
	return ok && m.updater == u
}

func (b *colorBatch) Len() int { return b.members.Len() }

func (b *colorBatch) Update(t time.Time) {
	for id, m := range b.members.All() {
		if m.changed() {
			b.members.Add(id, newMember(m.updater, b.newInstance(m.updater)))
			b.createPrimitive = true
		}
	}
	if b.createPrimitive {
		b.rebuild()
	}
	if b.primitive == nil {
		return
	}
	for id, m := range b.members.All() {
		if m.attributes == nil {
			if m.attributes = b.primitive.Attributes(id); m.attributes == nil {
				continue
			}
		}
		m.attributes.Color, m.attributes.Show = b.attributes(m.updater)
	}
}

// rebuild replaces the primitive with one made from the current instances.
func (b *colorBatch) rebuild() {
	b.createPrimitive = false
	if b.primitive != nil {
		b.primitives.Remove(b.primitive)
		b.primitive = nil
	}
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
	b.primitive = render.NewPrimitive(ins, b.appearance)
	b.primitives.Add(b.primitive)
	if b.trace {
		slog.Debug("dynscene: rebuilt color batch", "primitive", b.primitive.String(), "outline", b.outline)
	}
}

func (b *colorBatch) Primitives() []*render.Primitive {
	if b.primitive == nil {
		return nil
	}
	return []*render.Primitive{b.primitive}
}

func (b *colorBatch) RemoveAllPrimitives() {
	if b.primitive != nil {
		b.primitives.Remove(b.primitive)
		b.primitive = nil
	}
	b.members.Reset()
	b.createPrimitive = false
}

// StaticColorBatch draws updaters with static geometry and per-instance
// colors, split into a solid and a translucent sub-batch by the alpha
// of their color. Updaters move between the sub-batches when their
// color crosses full opacity. It draws fill instances for the
// [GeometryColor] classes, and outline instances for [GeometryOutline].
type StaticColorBatch struct {
	solid       *colorBatch
	translucent *colorBatch
	outline     bool
}

// NewStaticColorBatch returns a new batch drawing fill instances
// with the appearance returned by appearance for each translucency.
func NewStaticColorBatch(primitives render.Collection, appearance func(translucent bool) render.Appearance) *StaticColorBatch {
	return &StaticColorBatch{
		solid:       newColorBatch(primitives, appearance(false), false),
		translucent: newColorBatch(primitives, appearance(true), false),
	}
}

// NewOutlineBatch returns a new batch drawing outline instances
// with the outline color.
func NewOutlineBatch(primitives render.Collection) *StaticColorBatch {
	return &StaticColorBatch{
		solid:       newColorBatch(primitives, render.Outline(false), true),
		translucent: newColorBatch(primitives, render.Outline(true), true),
		outline:     true,
	}
}

// SetTrace sets whether rebuilds are logged at debug level.
func (b *StaticColorBatch) SetTrace(trace bool) *StaticColorBatch {
	b.solid.trace = trace
	b.translucent.trace = trace
	return b
}

func (b *StaticColorBatch) isTranslucent(u Updater) bool {
	if b.outline {
		return u.OutlineColor().A < 255
	}
	return u.Color().A < 255
}

func (b *StaticColorBatch) Add(u Updater) {
	if b.isTranslucent(u) {
		b.translucent.Add(u)
	} else {
		b.solid.Add(u)
	}
}

func (b *StaticColorBatch) Remove(u Updater) bool {
	return b.solid.Remove(u) || b.translucent.Remove(u)
}

func (b *StaticColorBatch) Contains(u Updater) bool {
	return b.solid.Contains(u) || b.translucent.Contains(u)
}

func (b *StaticColorBatch) Len() int {
	return b.solid.Len() + b.translucent.Len()
}

// IsSolid returns whether the updater is in the solid sub-batch.
func (b *StaticColorBatch) IsSolid(u Updater) bool { return b.solid.Contains(u) }

// IsTranslucent returns whether the updater is in the translucent sub-batch.
func (b *StaticColorBatch) IsTranslucent(u Updater) bool { return b.translucent.Contains(u) }

// SolidLen returns the number of updaters in the solid sub-batch.
func (b *StaticColorBatch) SolidLen() int { return b.solid.Len() }

// TranslucentLen returns the number of updaters in the translucent sub-batch.
func (b *StaticColorBatch) TranslucentLen() int { return b.translucent.Len() }

func (b *StaticColorBatch) Update(t time.Time) {
	for _, m := range b.solid.members.All() {
		if b.isTranslucent(m.updater) {
			b.solid.Remove(m.updater)
			b.translucent.Add(m.updater)
		}
	}
	for _, m := range b.translucent.members.All() {
		if !b.isTranslucent(m.updater) {
			b.translucent.Remove(m.updater)
			b.solid.Add(m.updater)
		}
	}
	b.solid.Update(t)
	b.translucent.Update(t)
}

func (b *StaticColorBatch) Primitives() []*render.Primitive {
	return append(b.solid.Primitives(), b.translucent.Primitives()...)
}

func (b *StaticColorBatch) RemoveAllPrimitives() {
	b.solid.RemoveAllPrimitives()
	b.translucent.RemoveAllPrimitives()
}
