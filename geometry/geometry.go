// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geometry provides renderer-facing geometry descriptors:
// the shape options for each geometry kind, and the [Instance] type
// that combines a shape with per-instance attributes for
// inclusion in a primitive.
//
// Descriptors hold the parameters from which a renderer tessellates
// the shape; tessellation itself is done by the renderer.
package geometry

//go:generate core generate

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Kinds are the kinds of geometry.
type Kinds int32 //enums:enum -trim-prefix Kind

const (
	// KindPolygon is a flat or extruded polygon from vertex positions.
	KindPolygon Kinds = iota

	// KindEllipse is a flat or extruded ellipse around a center.
	KindEllipse

	// KindEllipsoid is a closed ellipsoid volume with given radii.
	KindEllipsoid

	// KindPolyline is a line strip through vertex positions.
	KindPolyline
)

// Geometry is implemented by all geometry descriptors.
type Geometry interface {

	// Kind returns the kind of geometry.
	Kind() Kinds

	// IsOutline returns whether this is the outline variant
	// of the geometry, drawn as lines.
	IsOutline() bool

	// BBox returns the bounding box of the geometry
	// in its own coordinate frame.
	BBox() math32.Box3

	// Equal returns whether other describes the same geometry.
	// List-valued fields are compared by reference, not by content.
	Equal(other Geometry) bool
}

// Attributes are the per-instance attributes of an [Instance]
// that can be changed on a live primitive without rebuilding it.
type Attributes struct {

	// Color is the per-instance color, used by per-instance color appearances.
	Color color.RGBA

	// Show is whether the instance is drawn.
	Show bool
}

// Instance is one geometry with its model matrix and attributes,
// identified by the id of the object it was made for.
type Instance struct {

	// ID identifies the instance within a primitive.
	ID string

	// Geometry is the shape of the instance.
	Geometry Geometry

	// ModelMatrix transforms the geometry into world coordinates.
	ModelMatrix math32.Matrix4

	// Attributes are the initial per-instance attributes.
	Attributes Attributes
}

// NewInstance returns a new instance with an identity model matrix.
func NewInstance(id string, g Geometry, attr Attributes) *Instance {
	return &Instance{
		ID:          id,
		Geometry:    g,
		ModelMatrix: *math32.Identity4(),
		Attributes:  attr,
	}
}

// SamePositions returns whether two position lists are the same
// reference: the same length and backing array.  Content is not compared,
// so a freshly sampled list is always different.
func SamePositions(a, b []math32.Vector3) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
