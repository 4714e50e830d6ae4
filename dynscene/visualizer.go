// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynscene

import (
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/dynscene/base/ordmap"
	"cogentcore.org/dynscene/dynamic"
	"cogentcore.org/dynscene/events"
	"cogentcore.org/dynscene/geometry"
	"cogentcore.org/dynscene/render"
)

// Visualizer draws the geometry of one kind for all objects in
// an object collection. It keeps one [Updater] per object, and draws
// their geometry through batches chosen by the updater classification.
type Visualizer struct {

	// Kind is the kind of geometry drawn.
	Kind geometry.Kinds

	// Options are the options; they can be changed between updates.
	Options Options

	newUpdater NewUpdaterFunc
	primitives render.Collection

	objects          *dynamic.Collection
	collectionHandle events.Handle

	addedObjects   ordmap.Map[string, *dynamic.Object]
	removedObjects ordmap.Map[string, *dynamic.Object]
	updaters       ordmap.Map[string, Updater]

	colorBatch    *StaticColorBatch
	materialBatch *MaterialBatch
	dynamicBatch  *DynamicBatch
	outlineBatch  *StaticColorBatch

	destroyed bool
}

// NewVisualizer returns a new visualizer of the given kind drawing
// into primitives the objects of the given collection, which may be nil.
// If opts is nil, [DefaultOptions] are used.
func NewVisualizer(kind geometry.Kinds, primitives render.Collection, objects *dynamic.Collection, opts *Options) *Visualizer {
	if primitives == nil {
		panic("dynscene.NewVisualizer: primitives is nil")
	}
	if opts == nil {
		opts = DefaultOptions()
	}
	vz := &Visualizer{
		Kind:       kind,
		Options:    *opts,
		newUpdater: NewUpdaterFor(kind),
		primitives: primitives,
	}
	color, mat := appearancesFor(kind)
	vz.colorBatch = NewStaticColorBatch(primitives, color)
	vz.materialBatch = NewMaterialBatch(primitives, mat)
	vz.dynamicBatch = NewDynamicBatch(primitives, color, mat)
	vz.outlineBatch = NewOutlineBatch(primitives)
	vz.SetObjectCollection(objects)
	return vz
}

// appearancesFor returns the color and material appearances for the given kind.
func appearancesFor(kind geometry.Kinds) (func(bool) render.Appearance, MaterialAppearanceFunc) {
	if kind == geometry.KindPolyline {
		return render.PolylineColor, render.PolylineMaterial
	}
	closed := kind == geometry.KindEllipsoid
	return func(translucent bool) render.Appearance {
			return render.PerInstanceColor(translucent, closed)
		}, func(mat *render.Material, translucent bool) render.Appearance {
			return render.MaterialAppearance(mat, translucent, closed)
		}
}

// ObjectCollection returns the object collection, which may be nil.
func (vz *Visualizer) ObjectCollection() *dynamic.Collection {
	return vz.objects
}

// SetObjectCollection sets the object collection to draw. All objects
// of the old collection are dropped, and all objects of the new one
// are added on the next update.
func (vz *Visualizer) SetObjectCollection(objects *dynamic.Collection) *Visualizer {
	if vz.objects == objects {
		return vz
	}
	if vz.objects != nil {
		vz.objects.Changed.Remove(vz.collectionHandle)
		vz.collectionHandle = 0
		vz.removeAllUpdaters()
	}
	vz.objects = objects
	if objects != nil {
		vz.collectionHandle = objects.Changed.Add(vz.collectionChanged)
		vz.collectionChanged(dynamic.CollectionChange{Collection: objects, Added: objects.Objects()})
	}
	return vz
}

// collectionChanged stages the changes, cancelling an add
// against a pending removal of the same object and vice versa.
func (vz *Visualizer) collectionChanged(ev dynamic.CollectionChange) {
	for _, obj := range ev.Added {
		id := obj.ID()
		if r, ok := vz.removedObjects.ValueByKeyTry(id); ok && r == obj {
			vz.removedObjects.DeleteKey(id)
			continue
		}
		vz.addedObjects.Add(id, obj)
	}
	for _, obj := range ev.Removed {
		id := obj.ID()
		if a, ok := vz.addedObjects.ValueByKeyTry(id); ok && a == obj {
			vz.addedObjects.DeleteKey(id)
			continue
		}
		vz.removedObjects.Add(id, obj)
	}
}

// batch returns the fill batch for the given classification, or nil.
func (vz *Visualizer) batch(gt GeometryTypes) Batch {
	switch gt {
	case GeometryColor, GeometryPolylineColor:
		return vz.colorBatch
	case GeometryMaterial, GeometryPolylineMaterial:
		return vz.materialBatch
	case GeometryDynamic:
		return vz.dynamicBatch
	}
	return nil
}

// removeFromBatches removes the updater from the batches
// of the given classification.
func (vz *Visualizer) removeFromBatches(u Updater, gt, ot GeometryTypes) {
	if b := vz.batch(gt); b != nil {
		b.Remove(u)
	}
	if ot == GeometryOutline {
		vz.outlineBatch.Remove(u)
	}
}

func (vz *Visualizer) removeUpdater(id string) {
	u, ok := vz.updaters.ValueByKeyTry(id)
	if !ok {
		return
	}
	vz.removeFromBatches(u, u.GeometryType(), u.OutlineType())
	u.Destroy()
	vz.updaters.DeleteKey(id)
}

func (vz *Visualizer) removeAllUpdaters() {
	for id := range vz.updaters.All() {
		vz.removeUpdater(id)
	}
	vz.addedObjects.Reset()
	vz.removedObjects.Reset()
}

// Update updates all geometry for time t, which must not be zero.
func (vz *Visualizer) Update(t time.Time) {
	if t.IsZero() {
		panic("dynscene.Visualizer.Update: time is zero")
	}
	if vz.destroyed {
		panic("dynscene.Visualizer.Update: visualizer is destroyed")
	}
	vz.colorBatch.SetTrace(vz.Options.Trace)
	vz.materialBatch.SetTrace(vz.Options.Trace)
	vz.dynamicBatch.SetTrace(vz.Options.Trace)
	vz.outlineBatch.SetTrace(vz.Options.Trace)
	var onError ErrorFunc
	if vz.Options.IsolateErrors {
		onError = vz.batchError
	}
	vz.materialBatch.SetErrorFunc(onError)
	vz.dynamicBatch.SetErrorFunc(onError)

	for id := range vz.removedObjects.All() {
		vz.removeUpdater(id)
	}
	for id, obj := range vz.addedObjects.All() {
		vz.removeUpdater(id)
		vz.updaters.Add(id, vz.newUpdater(obj))
	}
	vz.addedObjects.Reset()
	vz.removedObjects.Reset()

	for _, u := range vz.updaters.All() {
		vz.updateUpdater(t, u)
	}

	vz.colorBatch.Update(t)
	vz.materialBatch.Update(t)
	vz.dynamicBatch.Update(t)
	vz.outlineBatch.Update(t)
}

// updateUpdater updates one updater and moves it to the batches
// of its new classification.
func (vz *Visualizer) updateUpdater(t time.Time, u Updater) {
	oldType, oldOutline := u.GeometryType(), u.OutlineType()
	if err := catch(vz.Options.IsolateErrors, func() { u.Update(t) }); err != nil {
		slog.Error("dynscene: error updating object", "id", u.ID(), "kind", vz.Kind, "err", err)
		vz.removeFromBatches(u, oldType, oldOutline)
		u.Invalidate()
		return
	}
	newType, newOutline := u.GeometryType(), u.OutlineType()
	if newType != oldType {
		if vz.Options.Trace {
			slog.Debug("dynscene: reclassified", "id", u.ID(), "kind", vz.Kind, "from", oldType, "to", newType)
		}
		if b := vz.batch(oldType); b != nil {
			b.Remove(u)
		}
		if b := vz.batch(newType); b != nil {
			b.Add(u)
		}
	}
	if newOutline != oldOutline {
		if oldOutline == GeometryOutline {
			vz.outlineBatch.Remove(u)
		}
		if newOutline == GeometryOutline {
			vz.outlineBatch.Add(u)
		}
	}
}

// batchError handles an error drawing the updater in a batch,
// which has already dropped it.
func (vz *Visualizer) batchError(u Updater, err error) {
	slog.Error("dynscene: error drawing object", "id", u.ID(), "kind", vz.Kind, "err", err)
	vz.removeFromBatches(u, u.GeometryType(), u.OutlineType())
	u.Invalidate()
}

// ErrorFunc handles an error raised while a batch draws an updater.
type ErrorFunc func(u Updater, err error)

// catch calls fun, returning a panic during it as an error
// if isolate is true. Otherwise a panic propagates.
func catch(isolate bool, fun func()) (err error) {
	if isolate {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%v", r)
			}
		}()
	}
	fun()
	return nil
}

// Updater returns the updater for the object with the given id, or nil.
func (vz *Visualizer) Updater(id string) Updater {
	return vz.updaters.ValueByKey(id)
}

// Updaters returns all updaters in the order their objects were added.
func (vz *Visualizer) Updaters() []Updater {
	return vz.updaters.Values()
}

// ColorBatch returns the batch of static color geometry.
func (vz *Visualizer) ColorBatch() *StaticColorBatch { return vz.colorBatch }

// MaterialBatch returns the batch of static material geometry.
func (vz *Visualizer) MaterialBatch() *MaterialBatch { return vz.materialBatch }

// DynamicBatch returns the batch of dynamic geometry.
func (vz *Visualizer) DynamicBatch() *DynamicBatch { return vz.dynamicBatch }

// OutlineBatch returns the batch of static outlines.
func (vz *Visualizer) OutlineBatch() *StaticColorBatch { return vz.outlineBatch }

// RemoveAllPrimitives removes all primitives of the visualizer.
// All updaters are invalidated, so their geometry is drawn again
// on the next update.
func (vz *Visualizer) RemoveAllPrimitives() {
	vz.colorBatch.RemoveAllPrimitives()
	vz.materialBatch.RemoveAllPrimitives()
	vz.dynamicBatch.RemoveAllPrimitives()
	vz.outlineBatch.RemoveAllPrimitives()
	for _, u := range vz.updaters.All() {
		u.Invalidate()
	}
}

// IsDestroyed returns whether [Visualizer.Destroy] has been called.
func (vz *Visualizer) IsDestroyed() bool {
	return vz.destroyed
}

// Destroy removes all primitives, stops listening to the object
// collection and destroys all updaters. The visualizer cannot be
// used after.
func (vz *Visualizer) Destroy() {
	if vz.destroyed {
		return
	}
	vz.SetObjectCollection(nil)
	vz.removeAllUpdaters()
	vz.RemoveAllPrimitives()
	vz.destroyed = true
}

// Stats are counts of the updaters and primitives of a [Visualizer].
type Stats struct {
	Kind geometry.Kinds

	// Updaters is the number of objects, including those
	// without geometry of this kind.
	Updaters int

	// Drawn is the number of updaters with a fill or an outline.
	Drawn int

	Color              int
	ColorTranslucent   int
	Material           int
	MaterialSubBatches int
	Dynamic            int
	Outline            int
	OutlineTranslucent int
	Primitives         int
}

// Stats returns the current counts.
func (vz *Visualizer) Stats() Stats {
	drawn := 0
	for _, u := range vz.updaters.All() {
		if u.GeometryType() != GeometryNone || u.OutlineType() == GeometryOutline {
			drawn++
		}
	}
	return Stats{
		Kind:               vz.Kind,
		Updaters:           vz.updaters.Len(),
		Drawn:              drawn,
		Color:              vz.colorBatch.SolidLen(),
		ColorTranslucent:   vz.colorBatch.TranslucentLen(),
		Material:           vz.materialBatch.Len(),
		MaterialSubBatches: vz.materialBatch.SubBatches(),
		Dynamic:            vz.dynamicBatch.Len(),
		Outline:            vz.outlineBatch.SolidLen(),
		OutlineTranslucent: vz.outlineBatch.TranslucentLen(),
		Primitives: len(vz.colorBatch.Primitives()) + len(vz.materialBatch.Primitives()) +
			len(vz.dynamicBatch.Primitives()) + len(vz.outlineBatch.Primitives()),
	}
}

func (st Stats) String() string {
	return fmt.Sprintf("%v: %d objects, %d drawn, color %d+%d, material %d in %d, dynamic %d, outline %d+%d, %d primitives",
		st.Kind, st.Updaters, st.Drawn, st.Color, st.ColorTranslucent, st.Material, st.MaterialSubBatches,
		st.Dynamic, st.Outline, st.OutlineTranslucent, st.Primitives)
}
