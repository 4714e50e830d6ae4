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

// DefaultNumberOfVerticalLines is the number of vertical outline lines
// of an extruded ellipse when none is set.
const DefaultNumberOfVerticalLines = 16

// EllipseUpdater is the [Updater] for the ellipse of an object,
// centered on the object's position.
type EllipseUpdater struct {
	updater

	position              tracked[math32.Vector3]
	semiMajorAxis         tracked[float32]
	semiMinorAxis         tracked[float32]
	rotation              tracked[float32]
	height                tracked[float32]
	extrudedHeight        tracked[float32]
	granularity           tracked[float32]
	stRotation            tracked[float32]
	numberOfVerticalLines tracked[int]
}

// NewEllipseUpdater returns a new ellipse updater for the given object.
func NewEllipseUpdater(obj *dynamic.Object) *EllipseUpdater {
	u := &EllipseUpdater{}
	u.init(obj, dynamic.NameEllipse, dynamic.NamePosition, dynamic.NameAvailability)
	return u
}

func (u *EllipseUpdater) Update(t time.Time) { u.update(t, u) }

func (u *EllipseUpdater) evaluate() (GeometryTypes, GeometryTypes) {
	el := u.object.Ellipse()
	if el == nil {
		u.attach(nil)
		return u.clear()
	}
	u.attach(&el.Bag)
	u.position.track(u.object.Position(), math32.Vector3{})
	u.semiMajorAxis.track(el.SemiMajorAxis(), 0)
	u.semiMinorAxis.track(el.SemiMinorAxis(), 0)
	u.rotation.track(el.Rotation(), 0)
	u.height.track(el.Height(), 0)
	u.extrudedHeight.track(el.ExtrudedHeight(), 0)
	u.granularity.track(el.Granularity(), DefaultGranularity)
	u.stRotation.track(el.StRotation(), 0)
	u.numberOfVerticalLines.track(el.NumberOfVerticalLines(), DefaultNumberOfVerticalLines)
	u.trackFill(&el.Fill)
	if !u.position.present() || !u.semiMajorAxis.present() || !u.semiMinorAxis.present() {
		return u.clear()
	}
	u.build()
	return u.classify(u.position.dynamic || u.semiMajorAxis.dynamic || u.semiMinorAxis.dynamic ||
		u.rotation.dynamic || u.height.dynamic || u.extrudedHeight.dynamic ||
		u.granularity.dynamic || u.stRotation.dynamic || u.numberOfVerticalLines.dynamic)
}

func (u *EllipseUpdater) sample(t time.Time) {
	u.position.sample(t)
	u.semiMajorAxis.sample(t)
	u.semiMinorAxis.sample(t)
	u.rotation.sample(t)
	u.height.sample(t)
	u.extrudedHeight.sample(t)
	u.granularity.sample(t)
	u.stRotation.sample(t)
	u.numberOfVerticalLines.sample(t)
	u.build()
}

func (u *EllipseUpdater) build() {
	g := &geometry.Ellipse{
		Center:                u.position.value,
		SemiMajorAxis:         u.semiMajorAxis.value,
		SemiMinorAxis:         u.semiMinorAxis.value,
		Rotation:              u.rotation.value,
		Height:                u.height.value,
		ExtrudedHeight:        u.extrudedHeight.value,
		Extruded:              u.extrudedHeight.present(),
		Granularity:           u.granularity.value,
		StRotation:            u.stRotation.value,
		NumberOfVerticalLines: u.numberOfVerticalLines.value,
	}
	og := *g
	og.Outline = true
	u.geometry, u.outlineGeometry = g, &og
}
