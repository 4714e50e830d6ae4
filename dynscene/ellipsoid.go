// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynscene

import (
	"time"

	"cogentcore.org/core/math32"
	"cogentcore.org/dynscene/dynamic"
	"cogentcore.org/dynscene/geometry"
)

// Default tessellation of an ellipsoid.
const (
	DefaultStackPartitions = 64
	DefaultSlicePartitions = 64
	DefaultSubdivisions    = 128
)

// EllipsoidUpdater is the [Updater] for the ellipsoid of an object,
// placed by the object's position and orientation.
type EllipsoidUpdater struct {
	updater

	position        tracked[math32.Vector3]
	orientation     tracked[math32.Quat]
	radii           tracked[math32.Vector3]
	stackPartitions tracked[int]
	slicePartitions tracked[int]
	subdivisions    tracked[int]
}

// NewEllipsoidUpdater returns a new ellipsoid updater for the given object.
func NewEllipsoidUpdater(obj *dynamic.Object) *EllipsoidUpdater {
	u := &EllipsoidUpdater{}
	u.init(obj, dynamic.NameEllipsoid, dynamic.NamePosition, dynamic.NameOrientation, dynamic.NameAvailability)
	return u
}

func (u *EllipsoidUpdater) Update(t time.Time) { u.update(t, u) }

func (u *EllipsoidUpdater) evaluate() (GeometryTypes, GeometryTypes) {
	es := u.object.Ellipsoid()
	if es == nil {
		u.attach(nil)
		return u.clear()
	}
	u.attach(&es.Bag)
	u.position.track(u.object.Position(), math32.Vector3{})
	u.orientation.track(u.object.Orientation(), math32.NewQuat(0, 0, 0, 1))
	u.radii.track(es.Radii(), math32.Vector3{})
	u.stackPartitions.track(es.StackPartitions(), DefaultStackPartitions)
	u.slicePartitions.track(es.SlicePartitions(), DefaultSlicePartitions)
	u.subdivisions.track(es.Subdivisions(), DefaultSubdivisions)
	u.trackFill(&es.Fill)
	if !u.position.present() || !u.radii.present() {
		return u.clear()
	}
	u.build()
	return u.classify(u.position.dynamic || u.orientation.dynamic || u.radii.dynamic ||
		u.stackPartitions.dynamic || u.slicePartitions.dynamic || u.subdivisions.dynamic)
}

func (u *EllipsoidUpdater) sample(t time.Time) {
	u.position.sample(t)
	u.orientation.sample(t)
	u.radii.sample(t)
	u.stackPartitions.sample(t)
	u.slicePartitions.sample(t)
	u.subdivisions.sample(t)
	u.build()
}

func (u *EllipsoidUpdater) build() {
	g := &geometry.Ellipsoid{
		Radii:           u.radii.value,
		StackPartitions: u.stackPartitions.value,
		SlicePartitions: u.slicePartitions.value,
		Subdivisions:    u.subdivisions.value,
	}
	og := *g
	og.Outline = true
	u.geometry, u.outlineGeometry = g, &og
	u.modelMatrix.SetTransform(u.position.value, u.orientation.value, math32.Vec3(1, 1, 1))
}
