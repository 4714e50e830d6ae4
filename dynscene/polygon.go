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

// PolygonUpdater is the [Updater] for the polygon of an object,
// drawn through the object's vertex positions.
type PolygonUpdater struct {
	updater

	positions         tracked[[]math32.Vector3]
	height            tracked[float32]
	extrudedHeight    tracked[float32]
	granularity       tracked[float32]
	stRotation        tracked[float32]
	perPositionHeight tracked[bool]
}

// NewPolygonUpdater returns a new polygon updater for the given object.
func NewPolygonUpdater(obj *dynamic.Object) *PolygonUpdater {
	u := &PolygonUpdater{}
	u.init(obj, dynamic.NamePolygon, dynamic.NameVertexPositions, dynamic.NameAvailability)
	return u
}

func (u *PolygonUpdater) Update(t time.Time) { u.update(t, u) }

func (u *PolygonUpdater) evaluate() (GeometryTypes, GeometryTypes) {
	pg := u.object.Polygon()
	if pg == nil {
		u.attach(nil)
		return u.clear()
	}
	u.attach(&pg.Bag)
	u.positions.track(u.object.VertexPositions(), nil)
	u.height.track(pg.Height(), 0)
	u.extrudedHeight.track(pg.ExtrudedHeight(), 0)
	u.granularity.track(pg.Granularity(), DefaultGranularity)
	u.stRotation.track(pg.StRotation(), 0)
	u.perPositionHeight.track(pg.PerPositionHeight(), false)
	u.trackFill(&pg.Fill)
	if !u.positions.present() {
		return u.clear()
	}
	u.build()
	return u.classify(u.positions.dynamic || u.height.dynamic || u.extrudedHeight.dynamic ||
		u.granularity.dynamic || u.stRotation.dynamic || u.perPositionHeight.dynamic)
}

func (u *PolygonUpdater) sample(t time.Time) {
	u.positions.sample(t)
	u.height.sample(t)
	u.extrudedHeight.sample(t)
	u.granularity.sample(t)
	u.stRotation.sample(t)
	u.perPositionHeight.sample(t)
	u.build()
}

func (u *PolygonUpdater) build() {
	g := &geometry.Polygon{
		Positions:         u.positions.value,
		Height:            u.height.value,
		ExtrudedHeight:    u.extrudedHeight.value,
		Extruded:          u.extrudedHeight.present(),
		Granularity:       u.granularity.value,
		StRotation:        u.stRotation.value,
		PerPositionHeight: u.perPositionHeight.value,
	}
	og := *g
	og.Outline = true
	u.geometry, u.outlineGeometry = g, &og
}
