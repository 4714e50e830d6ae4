// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dynamic provides dynamic objects: entities with a stable
// identity whose descriptive properties may vary over time.
// An [Object] has positional properties and optional geometry
// sub-descriptions ([Polygon], [Ellipse], [Ellipsoid], [Polyline]),
// each of which is a bag of properties with its own change
// notifications. Objects are held in a [Collection].
package dynamic

import (
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/dynscene/events"
	"cogentcore.org/dynscene/property"
	"github.com/google/uuid"
)

// Names of the object-level properties, as reported in [PropertyChange.Name].
const (
	NamePosition        = "position"
	NameOrientation     = "orientation"
	NameVertexPositions = "vertexPositions"
	NameAvailability    = "availability"
	NamePolygon         = "polygon"
	NameEllipse         = "ellipse"
	NameEllipsoid       = "ellipsoid"
	NamePolyline        = "polyline"
)

// PropertyChange is the event raised when a property of an [Object] is replaced.
type PropertyChange struct {

	// Object is the object that changed.
	Object *Object

	// Name is the name of the property that changed.
	Name string
}

// Interval is a closed time interval.
type Interval struct {
	Start time.Time
	Stop  time.Time
}

// Contains returns whether t is within the interval, inclusive.
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && !t.After(iv.Stop)
}

// Object is a dynamic object. Its properties are replaced with the
// setter methods, which raise [Object.Changed]; changes within a property
// (for example a sampled property gaining samples) are not reported.
type Object struct {

	// Changed is raised when a property of the object is replaced.
	// It is not raised for changes inside a geometry sub-description;
	// those are raised on the sub-description itself.
	Changed events.Listeners[PropertyChange]

	id string

	position        property.Property[math32.Vector3]
	orientation     property.Property[math32.Quat]
	vertexPositions property.Property[[]math32.Vector3]
	availability    *Interval

	polygon   *Polygon
	ellipse   *Ellipse
	ellipsoid *Ellipsoid
	polyline  *Polyline
}

// NewObject returns a new object with the given id, or with
// a new random id if it is empty.
func NewObject(id string) *Object {
	if id == "" {
		id = uuid.NewString()
	}
	return &Object{id: id}
}

// ID returns the unique id of the object.
func (o *Object) ID() string {
	return o.id
}

func (o *Object) String() string {
	return o.id
}

func (o *Object) raise(name string) {
	o.Changed.Call(PropertyChange{Object: o, Name: name})
}

// IsAvailable returns whether the object exists at time t:
// always, unless an availability interval has been set.
func (o *Object) IsAvailable(t time.Time) bool {
	if o.availability == nil {
		return true
	}
	return o.availability.Contains(t)
}

// Availability returns the availability interval, or nil if always available.
func (o *Object) Availability() *Interval { return o.availability }

// SetAvailability sets the availability interval; nil means always available.
func (o *Object) SetAvailability(iv *Interval) *Object {
	if o.availability == iv || (o.availability != nil && iv != nil && *o.availability == *iv) {
		return o
	}
	o.availability = iv
	o.raise(NameAvailability)
	return o
}

// Position returns the position property.
func (o *Object) Position() property.Property[math32.Vector3] { return o.position }

// SetPosition sets the position property.
func (o *Object) SetPosition(p property.Property[math32.Vector3]) *Object {
	if setProperty(&o.position, p) {
		o.raise(NamePosition)
	}
	return o
}

// Orientation returns the orientation property.
func (o *Object) Orientation() property.Property[math32.Quat] { return o.orientation }

// SetOrientation sets the orientation property.
func (o *Object) SetOrientation(p property.Property[math32.Quat]) *Object {
	if setProperty(&o.orientation, p) {
		o.raise(NameOrientation)
	}
	return o
}

// VertexPositions returns the vertex positions property, used by
// polygons and polylines.
func (o *Object) VertexPositions() property.Property[[]math32.Vector3] { return o.vertexPositions }

// SetVertexPositions sets the vertex positions property.
func (o *Object) SetVertexPositions(p property.Property[[]math32.Vector3]) *Object {
	if setProperty(&o.vertexPositions, p) {
		o.raise(NameVertexPositions)
	}
	return o
}

// Polygon returns the polygon sub-description, or nil.
func (o *Object) Polygon() *Polygon { return o.polygon }

// SetPolygon sets the polygon sub-description.
func (o *Object) SetPolygon(pg *Polygon) *Object {
	if o.polygon != pg {
		o.polygon = pg
		o.raise(NamePolygon)
	}
	return o
}

// Ellipse returns the ellipse sub-description, or nil.
func (o *Object) Ellipse() *Ellipse { return o.ellipse }

// SetEllipse sets the ellipse sub-description.
func (o *Object) SetEllipse(el *Ellipse) *Object {
	if o.ellipse != el {
		o.ellipse = el
		o.raise(NameEllipse)
	}
	return o
}

// Ellipsoid returns the ellipsoid sub-description, or nil.
func (o *Object) Ellipsoid() *Ellipsoid { return o.ellipsoid }

// SetEllipsoid sets the ellipsoid sub-description.
func (o *Object) SetEllipsoid(es *Ellipsoid) *Object {
	if o.ellipsoid != es {
		o.ellipsoid = es
		o.raise(NameEllipsoid)
	}
	return o
}

// Polyline returns the polyline sub-description, or nil.
func (o *Object) Polyline() *Polyline { return o.polyline }

// SetPolyline sets the polyline sub-description.
func (o *Object) SetPolyline(pl *Polyline) *Object {
	if o.polyline != pl {
		o.polyline = pl
		o.raise(NamePolyline)
	}
	return o
}

// setProperty sets *field to p, returning whether it was a different reference.
func setProperty[T any](field *property.Property[T], p property.Property[T]) bool {
	if property.Same(*field, p) {
		return false
	}
	*field = p
	return true
}
