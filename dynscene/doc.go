// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package dynscene draws the geometry of dynamic objects as batched
render primitives.

A [Visualizer] draws one kind of geometry (polygon, ellipse, ellipsoid
or polyline) for all objects of a [dynamic.Collection]. For each object
it keeps an [Updater], which classifies the object's geometry on every
change:

  - [GeometryColor]: static shape with a plain color material, drawn
    with all other such objects in one primitive with per-instance colors.
  - [GeometryMaterial]: static shape with any other material, drawn
    with all objects sharing an equal material in one primitive.
  - [GeometryDynamic]: time-varying shape, drawn in a primitive of its own
    that is rebuilt whenever the shape changes.
  - [GeometryNone]: nothing to draw.

Static outlines are drawn by a separate outline batch. Per-frame changes
to show and color are applied to the attributes of the existing instances,
so a static scene only builds its primitives once.

	prims := render.NewPrimitives()
	vz := dynscene.NewVisualizer(geometry.KindPolygon, prims, objects, nil)
	for t := start; t.Before(stop); t = t.Add(step) {
		vz.Update(t)
	}
*/
package dynscene
