// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynscene

import (
	"image/color"
	"slices"
	"time"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/dynscene/dynamic"
	"cogentcore.org/dynscene/events"
	"cogentcore.org/dynscene/geometry"
	"cogentcore.org/dynscene/material"
	"cogentcore.org/dynscene/property"
)

// DefaultGranularity is the granularity of tessellated shapes
// when none is set: one degree, in radians.
const DefaultGranularity = math32.DegToRadFactor

// Updater holds the per-object state for one geometry kind:
// it classifies the object's geometry into a [GeometryTypes]
// and provides the geometry instances that batches draw.
type Updater interface {

	// ID returns the id of the object.
	ID() string

	// Object returns the object.
	Object() *dynamic.Object

	// GeometryType returns the classification as of the last [Updater.Update].
	GeometryType() GeometryTypes

	// OutlineType returns [GeometryOutline] if the object has a static
	// outline, and [GeometryNone] otherwise.
	OutlineType() GeometryTypes

	// Show returns whether the geometry is shown at the last update time.
	Show() bool

	// IsFilled returns whether the fill is drawn.
	IsFilled() bool

	// IsOutlined returns whether the outline is drawn.
	IsOutlined() bool

	// Color returns the color of a plain color material.
	Color() color.RGBA

	// OutlineColor returns the outline color.
	OutlineColor() color.RGBA

	// Material returns the material; nil is plain white.
	Material() material.Property

	// IsTranslucent returns whether the fill is translucent at time t.
	IsTranslucent(t time.Time) bool

	// Geometry returns the current fill geometry, or nil if there is none.
	// The same value is returned until the shape changes.
	Geometry() geometry.Geometry

	// ModelMatrix returns the current model matrix of the geometry.
	ModelMatrix() math32.Matrix4

	// CreateGeometryInstance returns a new fill instance with the
	// current geometry and attributes, or nil if there is no geometry.
	CreateGeometryInstance() *geometry.Instance

	// CreateOutlineGeometryInstance returns a new outline instance with the
	// current geometry and attributes, or nil if there is no outline geometry.
	CreateOutlineGeometryInstance() *geometry.Instance

	// Update brings the updater up to date for time t,
	// re-evaluating its classification if the object changed.
	Update(t time.Time)

	// Invalidate resets the classification to [GeometryNone] and
	// forces re-evaluation on the next update.
	Invalidate()

	// Destroy stops listening to the object. The updater cannot be used after.
	Destroy()

	// IsDestroyed returns whether [Updater.Destroy] has been called.
	IsDestroyed() bool
}

// NewUpdaterFunc returns a new updater for the given object.
type NewUpdaterFunc func(obj *dynamic.Object) Updater

// NewUpdaterFor returns the updater constructor for the given kind.
func NewUpdaterFor(kind geometry.Kinds) NewUpdaterFunc {
	switch kind {
	case geometry.KindPolygon:
		return func(obj *dynamic.Object) Updater { return NewPolygonUpdater(obj) }
	case geometry.KindEllipse:
		return func(obj *dynamic.Object) Updater { return NewEllipseUpdater(obj) }
	case geometry.KindEllipsoid:
		return func(obj *dynamic.Object) Updater { return NewEllipsoidUpdater(obj) }
	case geometry.KindPolyline:
		return func(obj *dynamic.Object) Updater { return NewPolylineUpdater(obj) }
	}
	panic("dynscene.NewUpdaterFor: invalid kind " + kind.String())
}

// tracked is one property as seen by an updater: the reference at the
// last evaluation, whether it is dynamic, and its current value.
// Constant properties are sampled once, when their reference changes.
type tracked[T any] struct {
	prop    property.Property[T]
	seen    bool
	dynamic bool
	value   T
}

// track records p as the current reference, re-probing it if it changed.
// def is the value used when p is nil.
func (tp *tracked[T]) track(p property.Property[T], def T) {
	if tp.seen && property.Same(tp.prop, p) {
		return
	}
	tp.seen = true
	tp.prop = p
	if p == nil {
		tp.dynamic = false
		tp.value = def
		return
	}
	tp.dynamic = !p.IsConstant()
	if tp.dynamic {
		tp.value = def
	} else {
		tp.value = p.Value(property.MinTime)
	}
}

// sample samples a dynamic property at time t.
func (tp *tracked[T]) sample(t time.Time) {
	if tp.dynamic {
		tp.value = tp.prop.Value(t)
	}
}

// present returns whether there is a property.
func (tp *tracked[T]) present() bool {
	return tp.prop != nil
}

// evaluator is the kind-specific part of an updater.
type evaluator interface {

	// evaluate re-reads the object and returns the fill and outline
	// classification, setting the geometry.
	evaluate() (GeometryTypes, GeometryTypes)

	// sample samples all dynamic properties at time t
	// and rebuilds the geometry from them.
	sample(t time.Time)
}

// updater is the state shared by the updaters of all kinds.
type updater struct {
	object *dynamic.Object

	// watch are the names of the object properties that force re-evaluation.
	watch []string

	geometryType   GeometryTypes
	outlineType    GeometryTypes
	needEvaluation bool
	destroyed      bool

	show bool

	// isColor is whether the material is a plain color material.
	isColor  bool
	material material.Property

	showProp         tracked[bool]
	fillProp         tracked[bool]
	outlineProp      tracked[bool]
	colorProp        tracked[color.RGBA]
	outlineColorProp tracked[color.RGBA]

	geometry        geometry.Geometry
	outlineGeometry geometry.Geometry
	modelMatrix     math32.Matrix4

	objectHandle events.Handle
	bag          *dynamic.Bag
	bagHandle    events.Handle
}

func (u *updater) init(obj *dynamic.Object, watch ...string) {
	u.object = obj
	u.watch = watch
	u.needEvaluation = true
	u.modelMatrix = *math32.Identity4()
	u.objectHandle = obj.Changed.Add(func(ev dynamic.PropertyChange) {
		if slices.Contains(u.watch, ev.Name) {
			u.needEvaluation = true
		}
	})
}

func (u *updater) ID() string                  { return u.object.ID() }
func (u *updater) Object() *dynamic.Object     { return u.object }
func (u *updater) GeometryType() GeometryTypes { return u.geometryType }
func (u *updater) OutlineType() GeometryTypes  { return u.outlineType }
func (u *updater) Show() bool                  { return u.show }
func (u *updater) IsFilled() bool              { return u.fillProp.value }
func (u *updater) IsOutlined() bool            { return u.outlineProp.value }
func (u *updater) Color() color.RGBA           { return u.colorProp.value }
func (u *updater) OutlineColor() color.RGBA    { return u.outlineColorProp.value }
func (u *updater) Material() material.Property { return u.material }
func (u *updater) Geometry() geometry.Geometry { return u.geometry }
func (u *updater) ModelMatrix() math32.Matrix4 { return u.modelMatrix }
func (u *updater) IsDestroyed() bool           { return u.destroyed }

func (u *updater) IsTranslucent(t time.Time) bool {
	if u.isColor {
		return u.colorProp.value.A < 255
	}
	return u.material.IsTranslucent(t)
}

func (u *updater) CreateGeometryInstance() *geometry.Instance {
	if u.geometry == nil {
		return nil
	}
	in := geometry.NewInstance(u.ID(), u.geometry, geometry.Attributes{
		Color: u.colorProp.value,
		Show:  u.show && u.fillProp.value,
	})
	in.ModelMatrix = u.modelMatrix
	return in
}

func (u *updater) CreateOutlineGeometryInstance() *geometry.Instance {
	if u.outlineGeometry == nil {
		return nil
	}
	in := geometry.NewInstance(u.ID(), u.outlineGeometry, geometry.Attributes{
		Color: u.outlineColorProp.value,
		Show:  u.show && u.outlineProp.value,
	})
	in.ModelMatrix = u.modelMatrix
	return in
}

func (u *updater) Invalidate() {
	u.geometryType = GeometryNone
	u.outlineType = GeometryNone
	u.needEvaluation = true
	u.show = false
}

func (u *updater) Destroy() {
	if u.destroyed {
		return
	}
	u.object.Changed.Remove(u.objectHandle)
	u.attach(nil)
	u.destroyed = true
}

// attach listens to the given sub-description bag instead of the current one.
func (u *updater) attach(bag *dynamic.Bag) {
	if bag == u.bag {
		return
	}
	if u.bag != nil {
		u.bag.Changed.Remove(u.bagHandle)
	}
	u.bag = bag
	u.bagHandle = 0
	if bag != nil {
		u.bagHandle = bag.Changed.Add(func(name string) {
			u.needEvaluation = true
		})
	}
}

// update is the frame update shared by all kinds.
func (u *updater) update(t time.Time, ev evaluator) {
	if u.destroyed {
		panic("dynscene: update of a destroyed updater for " + u.ID())
	}
	if u.needEvaluation {
		u.geometryType, u.outlineType = ev.evaluate()
		u.needEvaluation = false
	}
	if u.geometryType == GeometryNone && u.outlineType == GeometryNone {
		u.show = false
		return
	}
	u.showProp.sample(t)
	u.show = u.object.IsAvailable(t) && u.showProp.value
	if !u.show {
		return
	}
	switch u.geometryType {
	case GeometryColor, GeometryPolylineColor:
		u.colorProp.sample(t)
	case GeometryDynamic:
		u.fillProp.sample(t)
		u.outlineProp.sample(t)
		u.colorProp.sample(t)
		u.outlineColorProp.sample(t)
		ev.sample(t)
	}
	if u.outlineType == GeometryOutline {
		u.outlineColorProp.sample(t)
	}
}

// trackFill tracks the properties shared by all filled shapes.
func (u *updater) trackFill(f *dynamic.Fill) {
	u.showProp.track(f.Show(), true)
	u.fillProp.track(f.FillEnabled(), true)
	u.outlineProp.track(f.Outline(), false)
	u.outlineColorProp.track(f.OutlineColor(), colors.Black)
	u.trackMaterial(f.Material())
}

// trackMaterial tracks the material and, for a plain color material, its color.
func (u *updater) trackMaterial(m material.Property) {
	u.material = m
	cp, ok := material.ColorOf(m)
	u.isColor = ok
	u.colorProp.track(cp, colors.White)
}

// classify returns the classification of a filled shape
// once its mandatory properties are known to be present.
func (u *updater) classify(dynamicShape bool) (GeometryTypes, GeometryTypes) {
	if dynamicShape || u.fillProp.dynamic || u.outlineProp.dynamic {
		return GeometryDynamic, GeometryNone
	}
	gt := GeometryNone
	if u.fillProp.value {
		gt = GeometryMaterial
		if u.isColor {
			gt = GeometryColor
		}
	}
	ot := GeometryNone
	if u.outlineProp.value {
		ot = GeometryOutline
	}
	return gt, ot
}

// clear drops the geometry, for an object without the mandatory data.
func (u *updater) clear() (GeometryTypes, GeometryTypes) {
	u.geometry = nil
	u.outlineGeometry = nil
	return GeometryNone, GeometryNone
}
