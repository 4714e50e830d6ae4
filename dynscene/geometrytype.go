// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynscene

//go:generate core generate

// GeometryTypes is the classification of an [Updater], which decides
// the batch its geometry is drawn by.
type GeometryTypes int32 //enums:enum -trim-prefix Geometry

const (
	// GeometryNone is not drawn: the object has no geometry of the kind,
	// or it is missing mandatory data.
	GeometryNone GeometryTypes = iota

	// GeometryColor is static geometry with a plain color material.
	GeometryColor

	// GeometryMaterial is static geometry with any other material.
	GeometryMaterial

	// GeometryDynamic is geometry with a time-varying shape,
	// rebuilt whenever its shape changes.
	GeometryDynamic

	// GeometryOutline is static outline geometry. It is only
	// reported by [Updater.OutlineType].
	GeometryOutline

	// GeometryPolylineColor is a static polyline with a plain color material.
	GeometryPolylineColor

	// GeometryPolylineMaterial is a static polyline with any other material.
	GeometryPolylineMaterial
)
