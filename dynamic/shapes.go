// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamic

import (
	"image/color"

	"cogentcore.org/core/math32"
	"cogentcore.org/dynscene/events"
	"cogentcore.org/dynscene/material"
	"cogentcore.org/dynscene/property"
)

// Bag is the change-notification channel shared by all geometry
// sub-descriptions. Changed is called with the name of the property
// that was replaced.
type Bag struct {
	Changed events.Listeners[string]
}

func setBag[T any](b *Bag, field *property.Property[T], p property.Property[T], name string) {
	if setProperty(field, p) {
		b.Changed.Call(name)
	}
}

func setBagMaterial(b *Bag, field *material.Property, m material.Property) {
	if *field == m {
		return
	}
	*field = m
	b.Changed.Call("material")
}

// Fill is the part of a sub-description shared by all closed shapes:
// visibility, material, fill and outline.
type Fill struct {
	Bag

	show         property.Property[bool]
	material     material.Property
	fill         property.Property[bool]
	outline      property.Property[bool]
	outlineColor property.Property[color.RGBA]
}

// Show returns the show property; shown if nil.
func (f *Fill) Show() property.Property[bool] { return f.show }

// SetShow sets the show property.
func (f *Fill) SetShow(p property.Property[bool]) { setBag(&f.Bag, &f.show, p, "show") }

// Material returns the fill material; white if nil.
func (f *Fill) Material() material.Property { return f.material }

// SetMaterial sets the fill material.
func (f *Fill) SetMaterial(m material.Property) { setBagMaterial(&f.Bag, &f.material, m) }

// FillEnabled returns the fill property; filled if nil.
func (f *Fill) FillEnabled() property.Property[bool] { return f.fill }

// SetFill sets whether the shape is filled.
func (f *Fill) SetFill(p property.Property[bool]) { setBag(&f.Bag, &f.fill, p, "fill") }

// Outline returns the outline property; no outline if nil.
func (f *Fill) Outline() property.Property[bool] { return f.outline }

// SetOutline sets whether the shape is outlined.
func (f *Fill) SetOutline(p property.Property[bool]) { setBag(&f.Bag, &f.outline, p, "outline") }

// OutlineColor returns the outline color property; black if nil.
func (f *Fill) OutlineColor() property.Property[color.RGBA] { return f.outlineColor }

// SetOutlineColor sets the outline color.
func (f *Fill) SetOutlineColor(p property.Property[color.RGBA]) {
	setBag(&f.Bag, &f.outlineColor, p, "outlineColor")
}

// Polygon describes a polygon through the owning object's vertex positions.
type Polygon struct {
	Fill

	height            property.Property[float32]
	extrudedHeight    property.Property[float32]
	granularity       property.Property[float32]
	stRotation        property.Property[float32]
	perPositionHeight property.Property[bool]
}

// NewPolygon returns a new empty polygon description.
func NewPolygon() *Polygon { return &Polygon{} }

func (pg *Polygon) Height() property.Property[float32] { return pg.height }
func (pg *Polygon) SetHeight(p property.Property[float32]) *Polygon {
	setBag(&pg.Bag, &pg.height, p, "height")
	return pg
}

func (pg *Polygon) ExtrudedHeight() property.Property[float32] { return pg.extrudedHeight }
func (pg *Polygon) SetExtrudedHeight(p property.Property[float32]) *Polygon {
	setBag(&pg.Bag, &pg.extrudedHeight, p, "extrudedHeight")
	return pg
}

func (pg *Polygon) Granularity() property.Property[float32] { return pg.granularity }
func (pg *Polygon) SetGranularity(p property.Property[float32]) *Polygon {
	setBag(&pg.Bag, &pg.granularity, p, "granularity")
	return pg
}

func (pg *Polygon) StRotation() property.Property[float32] { return pg.stRotation }
func (pg *Polygon) SetStRotation(p property.Property[float32]) *Polygon {
	setBag(&pg.Bag, &pg.stRotation, p, "stRotation")
	return pg
}

func (pg *Polygon) PerPositionHeight() property.Property[bool] { return pg.perPositionHeight }
func (pg *Polygon) SetPerPositionHeight(p property.Property[bool]) *Polygon {
	setBag(&pg.Bag, &pg.perPositionHeight, p, "perPositionHeight")
	return pg
}

// Ellipse describes an ellipse around the owning object's position.
type Ellipse struct {
	Fill

	semiMajorAxis         property.Property[float32]
	semiMinorAxis         property.Property[float32]
	rotation              property.Property[float32]
	height                property.Property[float32]
	extrudedHeight        property.Property[float32]
	granularity           property.Property[float32]
	stRotation            property.Property[float32]
	numberOfVerticalLines property.Property[int]
}

// NewEllipse returns a new empty ellipse description.
func NewEllipse() *Ellipse { return &Ellipse{} }

func (el *Ellipse) SemiMajorAxis() property.Property[float32] { return el.semiMajorAxis }
func (el *Ellipse) SetSemiMajorAxis(p property.Property[float32]) *Ellipse {
	setBag(&el.Bag, &el.semiMajorAxis, p, "semiMajorAxis")
	return el
}

func (el *Ellipse) SemiMinorAxis() property.Property[float32] { return el.semiMinorAxis }
func (el *Ellipse) SetSemiMinorAxis(p property.Property[float32]) *Ellipse {
	setBag(&el.Bag, &el.semiMinorAxis, p, "semiMinorAxis")
	return el
}

func (el *Ellipse) Rotation() property.Property[float32] { return el.rotation }
func (el *Ellipse) SetRotation(p property.Property[float32]) *Ellipse {
	setBag(&el.Bag, &el.rotation, p, "rotation")
	return el
}

func (el *Ellipse) Height() property.Property[float32] { return el.height }
func (el *Ellipse) SetHeight(p property.Property[float32]) *Ellipse {
	setBag(&el.Bag, &el.height, p, "height")
	return el
}

func (el *Ellipse) ExtrudedHeight() property.Property[float32] { return el.extrudedHeight }
func (el *Ellipse) SetExtrudedHeight(p property.Property[float32]) *Ellipse {
	setBag(&el.Bag, &el.extrudedHeight, p, "extrudedHeight")
	return el
}

func (el *Ellipse) Granularity() property.Property[float32] { return el.granularity }
func (el *Ellipse) SetGranularity(p property.Property[float32]) *Ellipse {
	setBag(&el.Bag, &el.granularity, p, "granularity")
	return el
}

func (el *Ellipse) StRotation() property.Property[float32] { return el.stRotation }
func (el *Ellipse) SetStRotation(p property.Property[float32]) *Ellipse {
	setBag(&el.Bag, &el.stRotation, p, "stRotation")
	return el
}

func (el *Ellipse) NumberOfVerticalLines() property.Property[int] { return el.numberOfVerticalLines }
func (el *Ellipse) SetNumberOfVerticalLines(p property.Property[int]) *Ellipse {
	setBag(&el.Bag, &el.numberOfVerticalLines, p, "numberOfVerticalLines")
	return el
}

// Ellipsoid describes an ellipsoid at the owning object's position
// and orientation.
type Ellipsoid struct {
	Fill

	radii           property.Property[math32.Vector3]
	stackPartitions property.Property[int]
	slicePartitions property.Property[int]
	subdivisions    property.Property[int]
}

// NewEllipsoid returns a new empty ellipsoid description.
func NewEllipsoid() *Ellipsoid { return &Ellipsoid{} }

func (es *Ellipsoid) Radii() property.Property[math32.Vector3] { return es.radii }
func (es *Ellipsoid) SetRadii(p property.Property[math32.Vector3]) *Ellipsoid {
	setBag(&es.Bag, &es.radii, p, "radii")
	return es
}

func (es *Ellipsoid) StackPartitions() property.Property[int] { return es.stackPartitions }
func (es *Ellipsoid) SetStackPartitions(p property.Property[int]) *Ellipsoid {
	setBag(&es.Bag, &es.stackPartitions, p, "stackPartitions")
	return es
}

func (es *Ellipsoid) SlicePartitions() property.Property[int] { return es.slicePartitions }
func (es *Ellipsoid) SetSlicePartitions(p property.Property[int]) *Ellipsoid {
	setBag(&es.Bag, &es.slicePartitions, p, "slicePartitions")
	return es
}

func (es *Ellipsoid) Subdivisions() property.Property[int] { return es.subdivisions }
func (es *Ellipsoid) SetSubdivisions(p property.Property[int]) *Ellipsoid {
	setBag(&es.Bag, &es.subdivisions, p, "subdivisions")
	return es
}

// Polyline describes a line through the owning object's vertex positions.
// Polylines have no fill or outline.
type Polyline struct {
	Bag

	show          property.Property[bool]
	material      material.Property
	width         property.Property[float32]
	followSurface property.Property[bool]
	granularity   property.Property[float32]
}

// NewPolyline returns a new empty polyline description.
func NewPolyline() *Polyline { return &Polyline{} }

func (pl *Polyline) Show() property.Property[bool] { return pl.show }
func (pl *Polyline) SetShow(p property.Property[bool]) *Polyline {
	setBag(&pl.Bag, &pl.show, p, "show")
	return pl
}

func (pl *Polyline) Material() material.Property { return pl.material }
func (pl *Polyline) SetMaterial(m material.Property) *Polyline {
	setBagMaterial(&pl.Bag, &pl.material, m)
	return pl
}

func (pl *Polyline) Width() property.Property[float32] { return pl.width }
func (pl *Polyline) SetWidth(p property.Property[float32]) *Polyline {
	setBag(&pl.Bag, &pl.width, p, "width")
	return pl
}

func (pl *Polyline) FollowSurface() property.Property[bool] { return pl.followSurface }
func (pl *Polyline) SetFollowSurface(p property.Property[bool]) *Polyline {
	setBag(&pl.Bag, &pl.followSurface, p, "followSurface")
	return pl
}

func (pl *Polyline) Granularity() property.Property[float32] { return pl.granularity }
func (pl *Polyline) SetGranularity(p property.Property[float32]) *Polyline {
	setBag(&pl.Bag, &pl.granularity, p, "granularity")
	return pl
}
