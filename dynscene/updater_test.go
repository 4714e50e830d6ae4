// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynscene

import (
	"image/color"
	"testing"
	"time"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/dynscene/dynamic"
	"cogentcore.org/dynscene/geometry"
	"cogentcore.org/dynscene/material"
	"cogentcore.org/dynscene/property"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func at(sec int) time.Time {
	return t0.Add(time.Duration(sec) * time.Second)
}

func square() property.Property[[]math32.Vector3] {
	return property.NewConstant([]math32.Vector3{
		math32.Vec3(0, 0, 0), math32.Vec3(1, 0, 0), math32.Vec3(1, 1, 0), math32.Vec3(0, 1, 0),
	})
}

func constant[T any](v T) property.Property[T] {
	return property.NewConstant(v)
}

func polygonObject(id string, pg *dynamic.Polygon) *dynamic.Object {
	return dynamic.NewObject(id).SetVertexPositions(square()).SetPolygon(pg)
}

func TestPolygonClassification(t *testing.T) {
	dynHeight := property.NewFunc(func(t time.Time) float32 { return 1 })
	noFill := dynamic.NewPolygon()
	noFill.SetFill(constant(false))
	noFillOutline := dynamic.NewPolygon()
	noFillOutline.SetFill(constant(false))
	noFillOutline.SetOutline(constant(true))
	outlined := dynamic.NewPolygon()
	outlined.SetOutline(constant(true))
	grid := dynamic.NewPolygon()
	grid.SetMaterial(&material.Grid{})
	red := dynamic.NewPolygon()
	red.SetMaterial(material.NewColor(color.RGBA{255, 0, 0, 255}))
	dynOutline := dynamic.NewPolygon()
	dynOutline.SetOutline(property.NewFunc(func(t time.Time) bool { return true }))

	tests := []struct {
		name    string
		obj     *dynamic.Object
		want    GeometryTypes
		outline GeometryTypes
	}{
		{"no polygon", dynamic.NewObject("a").SetVertexPositions(square()), GeometryNone, GeometryNone},
		{"no positions", dynamic.NewObject("a").SetPolygon(dynamic.NewPolygon()), GeometryNone, GeometryNone},
		{"default material", polygonObject("a", dynamic.NewPolygon()), GeometryColor, GeometryNone},
		{"color material", polygonObject("a", red), GeometryColor, GeometryNone},
		{"grid material", polygonObject("a", grid), GeometryMaterial, GeometryNone},
		{"dynamic height", polygonObject("a", dynamic.NewPolygon().SetHeight(dynHeight)), GeometryDynamic, GeometryNone},
		{"no fill", polygonObject("a", noFill), GeometryNone, GeometryNone},
		{"no fill outline", polygonObject("a", noFillOutline), GeometryNone, GeometryOutline},
		{"outline", polygonObject("a", outlined), GeometryColor, GeometryOutline},
		{"dynamic outline", polygonObject("a", dynOutline), GeometryDynamic, GeometryNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewPolygonUpdater(tt.obj)
			assert.Equal(t, GeometryNone, u.GeometryType())
			u.Update(t0)
			assert.Equal(t, tt.want, u.GeometryType())
			assert.Equal(t, tt.outline, u.OutlineType())
			if tt.want == GeometryNone && tt.outline == GeometryNone {
				assert.False(t, u.Show())
			}
		})
	}
}

func TestPolygonReevaluation(t *testing.T) {
	pg := dynamic.NewPolygon()
	o := polygonObject("a", pg)
	u := NewPolygonUpdater(o)
	u.Update(t0)
	require.Equal(t, GeometryColor, u.GeometryType())
	g := u.Geometry()
	require.NotNil(t, g)

	// unrelated property
	o.SetPosition(constant(math32.Vec3(1, 1, 1)))
	assert.False(t, u.needEvaluation)
	u.Update(at(1))
	assert.Same(t, g, u.Geometry())

	pg.SetMaterial(&material.Grid{})
	assert.True(t, u.needEvaluation)
	u.Update(at(2))
	assert.Equal(t, GeometryMaterial, u.GeometryType())

	// replacing the sub-description stops listening to the old one
	pg2 := dynamic.NewPolygon()
	o.SetPolygon(pg2)
	u.Update(at(3))
	assert.Equal(t, GeometryColor, u.GeometryType())
	pg.SetHeight(constant(float32(2)))
	assert.False(t, u.needEvaluation)
	assert.Equal(t, 0, pg.Changed.Len())

	o.SetPolygon(nil)
	u.Update(at(4))
	assert.Equal(t, GeometryNone, u.GeometryType())
	assert.Nil(t, u.Geometry())
	assert.Nil(t, u.CreateGeometryInstance())

	u.Destroy()
	assert.True(t, u.IsDestroyed())
	assert.Equal(t, 0, o.Changed.Len())
	assert.Equal(t, 0, pg2.Changed.Len())
	assert.Panics(t, func() { u.Update(at(5)) })
}

func TestPolygonGeometry(t *testing.T) {
	positions := square()
	pg := dynamic.NewPolygon().SetHeight(constant(float32(2))).SetExtrudedHeight(constant(float32(5)))
	pg.SetOutline(constant(true))
	pg.SetOutlineColor(constant(color.RGBA{0, 0, 255, 255}))
	o := dynamic.NewObject("a").SetVertexPositions(positions).SetPolygon(pg)
	u := NewPolygonUpdater(o)
	u.Update(t0)

	g, ok := u.Geometry().(*geometry.Polygon)
	require.True(t, ok)
	assert.Equal(t, positions.Value(t0), g.Positions)
	assert.Equal(t, float32(2), g.Height)
	assert.Equal(t, float32(5), g.ExtrudedHeight)
	assert.True(t, g.Extruded)
	assert.Equal(t, float32(DefaultGranularity), g.Granularity)
	assert.False(t, g.Outline)

	in := u.CreateGeometryInstance()
	assert.Equal(t, "a", in.ID)
	assert.Equal(t, colors.White, in.Attributes.Color)
	assert.True(t, in.Attributes.Show)

	oin := u.CreateOutlineGeometryInstance()
	assert.True(t, oin.Geometry.IsOutline())
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, oin.Attributes.Color)
}

func TestShowAndAvailability(t *testing.T) {
	pg := dynamic.NewPolygon()
	o := polygonObject("a", pg)
	u := NewPolygonUpdater(o)
	u.Update(t0)
	assert.True(t, u.Show())

	pg.SetShow(constant(false))
	u.Update(at(1))
	assert.Equal(t, GeometryColor, u.GeometryType())
	assert.False(t, u.Show())

	pg.SetShow(nil)
	o.SetAvailability(&dynamic.Interval{Start: at(10), Stop: at(20)})
	u.Update(at(1))
	assert.False(t, u.Show())
	u.Update(at(15))
	assert.True(t, u.Show())
}

func TestDynamicSampling(t *testing.T) {
	pg := dynamic.NewPolygon().SetHeight(property.NewFunc(func(tm time.Time) float32 {
		return float32(tm.Sub(t0).Seconds())
	}))
	c := &material.Color{Color: property.NewFunc(func(tm time.Time) color.RGBA {
		return color.RGBA{uint8(tm.Sub(t0).Seconds()), 0, 0, 255}
	})}
	pg.SetMaterial(c)
	u := NewPolygonUpdater(polygonObject("a", pg))
	u.Update(at(2))
	require.Equal(t, GeometryDynamic, u.GeometryType())
	assert.Equal(t, float32(2), u.Geometry().(*geometry.Polygon).Height)
	assert.Equal(t, color.RGBA{2, 0, 0, 255}, u.Color())

	u.Update(at(3))
	assert.Equal(t, float32(3), u.Geometry().(*geometry.Polygon).Height)
	assert.Equal(t, color.RGBA{3, 0, 0, 255}, u.Color())
}

func TestColorSampling(t *testing.T) {
	alpha := uint8(255)
	pg := dynamic.NewPolygon()
	pg.SetMaterial(&material.Color{Color: property.NewFunc(func(time.Time) color.RGBA {
		return color.RGBA{255, 0, 0, alpha}
	})})
	u := NewPolygonUpdater(polygonObject("a", pg))
	u.Update(t0)
	require.Equal(t, GeometryColor, u.GeometryType())
	assert.False(t, u.IsTranslucent(t0))
	alpha = 128
	u.Update(at(1))
	assert.Equal(t, uint8(128), u.Color().A)
	assert.True(t, u.IsTranslucent(at(1)))
}

func TestColorMaterialReplaced(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	pg := dynamic.NewPolygon()
	m := material.NewColor(red)
	pg.SetMaterial(m)
	u := NewPolygonUpdater(polygonObject("a", pg))
	u.Update(t0)
	assert.Equal(t, red, u.Color())

	// a color set in place on the material is not observed
	m.Color = property.NewConstant(blue)
	u.Update(at(1))
	assert.Equal(t, red, u.Color())

	pg.SetMaterial(material.NewColor(blue))
	u.Update(at(2))
	assert.Equal(t, GeometryColor, u.GeometryType())
	assert.Equal(t, blue, u.Color())
}

func TestEllipseUpdater(t *testing.T) {
	el := dynamic.NewEllipse().SetSemiMajorAxis(constant(float32(3)))
	o := dynamic.NewObject("e").SetPosition(constant(math32.Vec3(1, 2, 0))).SetEllipse(el)
	u := NewEllipseUpdater(o)
	u.Update(t0)
	assert.Equal(t, GeometryNone, u.GeometryType(), "missing semi-minor axis")

	el.SetSemiMinorAxis(constant(float32(2)))
	u.Update(t0)
	require.Equal(t, GeometryColor, u.GeometryType())
	g := u.Geometry().(*geometry.Ellipse)
	assert.Equal(t, math32.Vec3(1, 2, 0), g.Center)
	assert.Equal(t, DefaultNumberOfVerticalLines, g.NumberOfVerticalLines)
	assert.False(t, g.Extruded)

	o.SetPosition(property.NewFunc(func(time.Time) math32.Vector3 { return math32.Vec3(5, 5, 0) }))
	u.Update(at(1))
	assert.Equal(t, GeometryDynamic, u.GeometryType())
	assert.Equal(t, math32.Vec3(5, 5, 0), u.Geometry().(*geometry.Ellipse).Center)
}

func TestEllipsoidUpdater(t *testing.T) {
	es := dynamic.NewEllipsoid().SetRadii(constant(math32.Vec3(1, 2, 3)))
	o := dynamic.NewObject("s").SetEllipsoid(es)
	u := NewEllipsoidUpdater(o)
	u.Update(t0)
	assert.Equal(t, GeometryNone, u.GeometryType(), "missing position")

	o.SetPosition(constant(math32.Vec3(4, 5, 6)))
	u.Update(t0)
	require.Equal(t, GeometryColor, u.GeometryType())
	g := u.Geometry().(*geometry.Ellipsoid)
	assert.Equal(t, math32.Vec3(1, 2, 3), g.Radii)
	assert.Equal(t, DefaultStackPartitions, g.StackPartitions)
	mm := u.ModelMatrix()
	assert.Equal(t, float32(4), mm[12])
	assert.Equal(t, float32(5), mm[13])
	assert.Equal(t, float32(6), mm[14])
	assert.Equal(t, mm, u.CreateGeometryInstance().ModelMatrix)
}

func TestPolylineUpdater(t *testing.T) {
	pl := dynamic.NewPolyline().SetWidth(constant(float32(3)))
	o := dynamic.NewObject("l").SetPolyline(pl)
	u := NewPolylineUpdater(o)
	u.Update(t0)
	assert.Equal(t, GeometryNone, u.GeometryType())

	o.SetVertexPositions(square())
	u.Update(t0)
	require.Equal(t, GeometryPolylineColor, u.GeometryType())
	assert.Equal(t, GeometryNone, u.OutlineType())
	assert.Nil(t, u.CreateOutlineGeometryInstance())
	g := u.Geometry().(*geometry.Polyline)
	assert.Equal(t, float32(3), g.Width)
	assert.True(t, g.FollowSurface)

	pl.SetMaterial(&material.Stripe{})
	u.Update(at(1))
	assert.Equal(t, GeometryPolylineMaterial, u.GeometryType())

	o.SetVertexPositions(property.NewSampled(property.LerpVector3s,
		property.Sample[[]math32.Vector3]{Time: t0, Value: square().Value(t0)}))
	u.Update(at(2))
	assert.Equal(t, GeometryDynamic, u.GeometryType())

	pl.SetShow(constant(false))
	u.Update(at(3))
	assert.False(t, u.Show())
}

func TestNewUpdaterFor(t *testing.T) {
	o := dynamic.NewObject("a")
	assert.IsType(t, &PolygonUpdater{}, NewUpdaterFor(geometry.KindPolygon)(o))
	assert.IsType(t, &EllipseUpdater{}, NewUpdaterFor(geometry.KindEllipse)(o))
	assert.IsType(t, &EllipsoidUpdater{}, NewUpdaterFor(geometry.KindEllipsoid)(o))
	assert.IsType(t, &PolylineUpdater{}, NewUpdaterFor(geometry.KindPolyline)(o))
	assert.Panics(t, func() { NewUpdaterFor(geometry.KindsN) })
}
