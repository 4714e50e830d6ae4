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

// DefaultPolylineWidth is the width of a polyline when none is set.
const DefaultPolylineWidth = 1

// PolylineUpdater is the [Updater] for the polyline of an object,
// drawn through the object's vertex positions. A polyline is always
// filled and never outlined.
type PolylineUpdater struct {
	updater

	positions     tracked[[]math32.Vector3]
	width         tracked[float32]
	followSurface tracked[bool]
	granularity   tracked[float32]
}

// NewPolylineUpdater returns a new polyline updater for the given object.
func NewPolylineUpdater(obj *dynamic.Object) *PolylineUpdater {
	u := &PolylineUpdater{}
	u.init(obj, dynamic.NamePolyline, dynamic.NameVertexPositions, dynamic.NameAvailability)
	u.fillProp.track(nil, true)
	u.outlineProp.track(nil, false)
	return u
}

func (u *PolylineUpdater) Update(t time.Time) { u.update(t, u) }

func (u *PolylineUpdater) evaluate() (GeometryTypes, GeometryTypes) {
	pl := u.object.Polyline()
	if pl == nil {
		u.attach(nil)
		return u.clear()
	}
	u.attach(&pl.Bag)
	u.positions.track(u.object.VertexPositions(), nil)
	u.width.track(pl.Width(), DefaultPolylineWidth)
	u.followSurface.track(pl.FollowSurface(), true)
	u.granularity.track(pl.Granularity(), DefaultGranularity)
	u.showProp.track(pl.Show(), true)
	u.trackMaterial(pl.Material())
	if !u.positions.present() {
		return u.clear()
	}
	u.build()
	if u.positions.dynamic || u.width.dynamic || u.followSurface.dynamic || u.granularity.dynamic {
		return GeometryDynamic, GeometryNone
	}
	if u.isColor {
		return GeometryPolylineColor, GeometryNone
	}
	return GeometryPolylineMaterial, GeometryNone
}

func (u *PolylineUpdater) sample(t time.Time) {
	u.positions.sample(t)
	u.width.sample(t)
	u.followSurface.sample(t)
	u.granularity.sample(t)
	u.build()
}

func (u *PolylineUpdater) build() {
	u.geometry = &geometry.Polyline{
		Positions:     u.positions.value,
		Width:         u.width.value,
		FollowSurface: u.followSurface.value,
		Granularity:   u.granularity.value,
	}
}
