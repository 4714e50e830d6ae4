// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynscene

import (
	"image/color"
	"path/filepath"
	"testing"
	"time"

	"cogentcore.org/dynscene/dynamic"
	"cogentcore.org/dynscene/geometry"
	"cogentcore.org/dynscene/material"
	"cogentcore.org/dynscene/property"
	"cogentcore.org/dynscene/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkMembership checks that every classified updater is in exactly
// one fill batch, and in the outline batch iff it has a static outline.
func checkMembership(t *testing.T, vz *Visualizer) {
	t.Helper()
	fills := []Batch{vz.ColorBatch(), vz.MaterialBatch(), vz.DynamicBatch()}
	n := 0
	for _, u := range vz.Updaters() {
		in := 0
		for _, b := range fills {
			if b.Contains(u) {
				in++
			}
		}
		if u.GeometryType() == GeometryNone {
			assert.Equal(t, 0, in, u.ID())
		} else {
			assert.Equal(t, 1, in, u.ID())
			n++
		}
		assert.Equal(t, u.OutlineType() == GeometryOutline, vz.OutlineBatch().Contains(u), u.ID())
	}
	total := 0
	for _, b := range fills {
		total += b.Len()
	}
	assert.Equal(t, n, total)
}

func TestVisualizerColorShow(t *testing.T) {
	objs := dynamic.NewCollection()
	pg := dynamic.NewPolygon()
	require.NoError(t, objs.Add(polygonObject("a", pg)))
	prims := render.NewPrimitives()
	vz := NewVisualizer(geometry.KindPolygon, prims, objs, nil)

	vz.Update(t0)
	u := vz.Updater("a")
	require.NotNil(t, u)
	assert.Equal(t, GeometryColor, u.GeometryType())
	require.Equal(t, 1, prims.Len())
	p := prims.List()[0]
	assert.True(t, p.Attributes("a").Show)

	pg.SetShow(constant(false))
	vz.Update(at(1))
	assert.Equal(t, GeometryColor, u.GeometryType())
	assert.True(t, vz.ColorBatch().Contains(u))
	require.Equal(t, 1, prims.Len())
	assert.Same(t, p, prims.List()[0])
	assert.False(t, p.IsDestroyed())
	assert.False(t, p.Attributes("a").Show)
	assert.Equal(t, 1, prims.Added)
}

func TestVisualizerSharedMaterial(t *testing.T) {
	objs := dynamic.NewCollection()
	for _, id := range []string{"a", "b"} {
		pg := dynamic.NewPolygon()
		pg.SetMaterial(&material.Grid{Color: constant(color.RGBA{0, 255, 0, 255})})
		require.NoError(t, objs.Add(polygonObject(id, pg)))
	}
	prims := render.NewPrimitives()
	vz := NewVisualizer(geometry.KindPolygon, prims, objs, nil)
	vz.Update(t0)
	mb := vz.MaterialBatch()
	assert.Equal(t, 1, mb.SubBatches())
	assert.Equal(t, 2, mb.Len())
	assert.Equal(t, 1, prims.Len())

	objs.RemoveByID("b")
	vz.Update(at(1))
	assert.Equal(t, 1, mb.SubBatches())
	assert.Equal(t, 1, mb.Len())
	assert.True(t, mb.Contains(vz.Updater("a")))
	assert.Nil(t, vz.Updater("b"))
	require.Equal(t, 1, prims.Len())
	assert.Len(t, prims.List()[0].Instances, 1)

	objs.RemoveByID("a")
	vz.Update(at(2))
	assert.Equal(t, 0, mb.SubBatches())
	assert.Equal(t, 0, prims.Len())
}

func TestVisualizerMembership(t *testing.T) {
	h := float32(1)
	pa := dynamic.NewPolygon()
	pb := dynamic.NewPolygon()
	pb.SetMaterial(&material.Grid{})
	pc := dynamic.NewPolygon().SetHeight(property.NewFunc(func(time.Time) float32 { return h }))
	pe := dynamic.NewPolygon()
	pe.SetFill(constant(false))
	pe.SetOutline(constant(true))

	objs := dynamic.NewCollection()
	a := polygonObject("a", pa)
	b := polygonObject("b", pb)
	c := polygonObject("c", pc)
	d := dynamic.NewObject("d").SetVertexPositions(square())
	e := polygonObject("e", pe)
	for _, o := range []*dynamic.Object{a, b, c, d, e} {
		require.NoError(t, objs.Add(o))
	}
	prims := render.NewPrimitives()
	vz := NewVisualizer(geometry.KindPolygon, prims, objs, nil)
	vz.Update(t0)
	checkMembership(t, vz)
	st := vz.Stats()
	assert.Equal(t, 5, st.Updaters)
	assert.Equal(t, 4, st.Drawn)
	assert.Equal(t, 1, st.Color)
	assert.Equal(t, 1, st.Material)
	assert.Equal(t, 1, st.Dynamic)
	assert.Equal(t, 1, st.Outline)
	assert.Equal(t, 4, st.Primitives)
	assert.Equal(t, st.Primitives, prims.Len())
	assert.Contains(t, st.String(), "5 objects, 4 drawn")

	pa.SetMaterial(&material.Stripe{})
	b.SetPolygon(nil)
	pc.SetHeight(constant(float32(3)))
	d.SetPolygon(dynamic.NewPolygon())
	pe.SetOutline(constant(false))
	vz.Update(at(1))
	checkMembership(t, vz)
	assert.Equal(t, GeometryMaterial, vz.Updater("a").GeometryType())
	assert.Equal(t, GeometryNone, vz.Updater("b").GeometryType())
	assert.Equal(t, GeometryColor, vz.Updater("c").GeometryType())
	assert.Equal(t, GeometryColor, vz.Updater("d").GeometryType())
	assert.Equal(t, GeometryNone, vz.Updater("e").GeometryType())
	assert.Equal(t, GeometryNone, vz.Updater("e").OutlineType())
	assert.Equal(t, 3, vz.Stats().Drawn)

	// a static scene does not churn primitives
	prims.ResetCounts()
	vz.Update(at(2))
	vz.Update(at(3))
	assert.Equal(t, 0, prims.Added)
	assert.Equal(t, 0, prims.Removed)
	checkMembership(t, vz)

	objs.Remove(a)
	vz.Update(at(4))
	checkMembership(t, vz)
	assert.Equal(t, 4, vz.Stats().Updaters)
}

func TestVisualizerTranslucentColor(t *testing.T) {
	alpha := uint8(255)
	pg := dynamic.NewPolygon()
	pg.SetMaterial(&material.Color{Color: property.NewFunc(func(time.Time) color.RGBA {
		return color.RGBA{255, 0, 0, alpha}
	})})
	objs := dynamic.NewCollection()
	require.NoError(t, objs.Add(polygonObject("a", pg)))
	vz := NewVisualizer(geometry.KindPolygon, render.NewPrimitives(), objs, nil)
	vz.Update(t0)
	u := vz.Updater("a")
	assert.True(t, vz.ColorBatch().IsSolid(u))

	alpha = 100
	vz.Update(at(1))
	assert.True(t, vz.ColorBatch().IsTranslucent(u))
	ps := vz.ColorBatch().Primitives()
	require.Len(t, ps, 1)
	assert.True(t, ps[0].Appearance.Translucent)
	checkMembership(t, vz)
}

func TestVisualizerStaging(t *testing.T) {
	objs := dynamic.NewCollection()
	prims := render.NewPrimitives()
	vz := NewVisualizer(geometry.KindPolygon, prims, objs, nil)

	x := polygonObject("x", dynamic.NewPolygon())
	require.NoError(t, objs.Add(x))
	objs.Remove(x)
	vz.Update(t0)
	assert.Nil(t, vz.Updater("x"))
	assert.Equal(t, 0, prims.Len())

	require.NoError(t, objs.Add(x))
	vz.Update(at(1))
	u := vz.Updater("x")
	require.NotNil(t, u)

	// removed and added again before the next update: same updater
	objs.Remove(x)
	require.NoError(t, objs.Add(x))
	vz.Update(at(2))
	assert.Same(t, u, vz.Updater("x"))
	assert.False(t, u.IsDestroyed())

	// a new object with the same id replaces the updater
	objs.Remove(x)
	y := polygonObject("x", dynamic.NewPolygon())
	require.NoError(t, objs.Add(y))
	vz.Update(at(3))
	assert.True(t, u.IsDestroyed())
	assert.Same(t, y, vz.Updater("x").Object())
	assert.Equal(t, 1, prims.Len())
	checkMembership(t, vz)
}

func TestVisualizerSetObjectCollection(t *testing.T) {
	one := dynamic.NewCollection()
	require.NoError(t, one.Add(polygonObject("a", dynamic.NewPolygon())))
	two := dynamic.NewCollection()
	require.NoError(t, two.Add(polygonObject("b", dynamic.NewPolygon())))
	require.NoError(t, two.Add(polygonObject("c", dynamic.NewPolygon())))

	prims := render.NewPrimitives()
	vz := NewVisualizer(geometry.KindPolygon, prims, one, nil)
	vz.Update(t0)
	ua := vz.Updater("a")

	vz.SetObjectCollection(two)
	assert.Same(t, two, vz.ObjectCollection())
	assert.True(t, ua.IsDestroyed())
	assert.Equal(t, 0, one.Changed.Len())
	vz.Update(at(1))
	assert.Nil(t, vz.Updater("a"))
	assert.Len(t, vz.Updaters(), 2)
	require.Equal(t, 1, prims.Len())
	assert.Len(t, prims.List()[0].Instances, 2)

	vz.SetObjectCollection(nil)
	vz.Update(at(2))
	assert.Empty(t, vz.Updaters())
	assert.Equal(t, 0, prims.Len())
}

func TestVisualizerRemoveAllPrimitives(t *testing.T) {
	objs := dynamic.NewCollection()
	pg := dynamic.NewPolygon()
	pg.SetOutline(constant(true))
	require.NoError(t, objs.Add(polygonObject("a", pg)))
	prims := render.NewPrimitives()
	vz := NewVisualizer(geometry.KindPolygon, prims, objs, nil)
	vz.Update(t0)
	assert.Equal(t, 2, prims.Len())

	vz.RemoveAllPrimitives()
	assert.Equal(t, 0, prims.Len())
	vz.Update(at(1))
	assert.Equal(t, 2, prims.Len())
	checkMembership(t, vz)

	vz.Destroy()
	assert.True(t, vz.IsDestroyed())
	assert.Equal(t, 0, prims.Len())
	assert.Equal(t, 0, objs.Changed.Len())
	assert.Panics(t, func() { vz.Update(at(2)) })
}

func TestVisualizerErrors(t *testing.T) {
	fail := false
	bad := dynamic.NewPolygon().SetHeight(property.NewFunc(func(time.Time) float32 {
		if fail {
			panic("bad height")
		}
		return 1
	}))
	objs := dynamic.NewCollection()
	require.NoError(t, objs.Add(polygonObject("bad", bad)))
	require.NoError(t, objs.Add(polygonObject("good", dynamic.NewPolygon())))
	prims := render.NewPrimitives()
	vz := NewVisualizer(geometry.KindPolygon, prims, objs, nil)
	vz.Update(t0)
	assert.True(t, vz.DynamicBatch().Contains(vz.Updater("bad")))

	fail = true
	assert.NotPanics(t, func() { vz.Update(at(1)) })
	assert.Equal(t, GeometryNone, vz.Updater("bad").GeometryType())
	assert.False(t, vz.DynamicBatch().Contains(vz.Updater("bad")))
	assert.Equal(t, GeometryColor, vz.Updater("good").GeometryType())
	assert.Equal(t, 1, prims.Len())
	checkMembership(t, vz)

	fail = false
	vz.Update(at(2))
	assert.Equal(t, GeometryDynamic, vz.Updater("bad").GeometryType())
	checkMembership(t, vz)

	fail = true
	vz.Options.IsolateErrors = false
	assert.Panics(t, func() { vz.Update(at(3)) })
}

func TestVisualizerBatchErrors(t *testing.T) {
	fail := false
	gridColor := func() property.Property[color.RGBA] {
		return property.NewFunc(func(time.Time) color.RGBA {
			if fail {
				panic("bad grid color")
			}
			return color.RGBA{255, 255, 255, 255}
		})
	}
	pa := dynamic.NewPolygon()
	pa.SetMaterial(&material.Grid{Color: gridColor()})
	pc := dynamic.NewPolygon().SetHeight(property.NewFunc(func(time.Time) float32 { return 1 }))
	pc.SetMaterial(&material.Grid{Color: gridColor()})

	objs := dynamic.NewCollection()
	require.NoError(t, objs.Add(polygonObject("a", pa)))
	require.NoError(t, objs.Add(polygonObject("b", dynamic.NewPolygon())))
	require.NoError(t, objs.Add(polygonObject("c", pc)))
	prims := render.NewPrimitives()
	vz := NewVisualizer(geometry.KindPolygon, prims, objs, nil)
	vz.Update(t0)
	assert.True(t, vz.MaterialBatch().Contains(vz.Updater("a")))
	assert.True(t, vz.DynamicBatch().Contains(vz.Updater("c")))
	assert.Equal(t, 3, prims.Len())

	// a failing material drops its members and the frame continues
	fail = true
	assert.NotPanics(t, func() { vz.Update(at(1)) })
	assert.Equal(t, GeometryNone, vz.Updater("a").GeometryType())
	assert.Equal(t, GeometryNone, vz.Updater("c").GeometryType())
	assert.Equal(t, 0, vz.MaterialBatch().SubBatches())
	assert.Equal(t, 0, vz.DynamicBatch().Len())
	assert.Equal(t, GeometryColor, vz.Updater("b").GeometryType())
	assert.Equal(t, 1, prims.Len())
	checkMembership(t, vz)

	fail = false
	vz.Update(at(2))
	assert.Equal(t, GeometryMaterial, vz.Updater("a").GeometryType())
	assert.Equal(t, GeometryDynamic, vz.Updater("c").GeometryType())
	assert.Equal(t, 3, prims.Len())
	checkMembership(t, vz)

	fail = true
	vz.Options.IsolateErrors = false
	assert.Panics(t, func() { vz.Update(at(3)) })
}

func TestVisualizerUsage(t *testing.T) {
	assert.Panics(t, func() { NewVisualizer(geometry.KindPolygon, nil, nil, nil) })
	vz := NewVisualizer(geometry.KindPolyline, render.NewPrimitives(), nil, nil)
	assert.Panics(t, func() { vz.Update(time.Time{}) })
	assert.NotPanics(t, func() { vz.Update(t0) })
	assert.True(t, vz.Options.IsolateErrors)
}

func TestVisualizerKinds(t *testing.T) {
	objs := dynamic.NewCollection()
	o := polygonObject("a", dynamic.NewPolygon())
	o.SetPolyline(dynamic.NewPolyline())
	o.SetPosition(constant(square().Value(t0)[1]))
	o.SetEllipsoid(dynamic.NewEllipsoid().SetRadii(constant(square().Value(t0)[2])))
	require.NoError(t, objs.Add(o))

	prims := render.NewPrimitives()
	kinds := map[geometry.Kinds]render.AppearanceKinds{
		geometry.KindPolygon:   render.AppearancePerInstanceColor,
		geometry.KindEllipsoid: render.AppearancePerInstanceColor,
		geometry.KindPolyline:  render.AppearancePolylineColor,
	}
	for kind, app := range kinds {
		vz := NewVisualizer(kind, prims, objs, nil)
		vz.Update(t0)
		ps := vz.ColorBatch().Primitives()
		require.Len(t, ps, 1, kind.String())
		assert.Equal(t, app, ps[0].Appearance.Kind, kind.String())
		assert.Equal(t, kind, ps[0].Instances[0].Geometry.Kind())
		assert.Equal(t, kind == geometry.KindEllipsoid, ps[0].Appearance.Closed)
	}
	assert.Equal(t, 3, prims.Len())

	// an ellipse visualizer on the same objects draws nothing
	vz := NewVisualizer(geometry.KindEllipse, prims, objs, nil)
	vz.Update(t0)
	assert.Equal(t, GeometryNone, vz.Updater("a").GeometryType())
	assert.Equal(t, 3, prims.Len())
}

func TestOptions(t *testing.T) {
	o := DefaultOptions()
	assert.True(t, o.IsolateErrors)
	assert.False(t, o.Trace)

	o.Trace = true
	o.IsolateErrors = false
	fn := filepath.Join(t.TempDir(), "options.toml")
	require.NoError(t, o.Save(fn))
	got, err := OpenOptions(fn)
	require.NoError(t, err)
	assert.Equal(t, o, got)

	_, err = OpenOptions(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
