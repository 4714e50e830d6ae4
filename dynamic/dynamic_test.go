// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynamic

import (
	"testing"
	"time"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/dynscene/material"
	"cogentcore.org/dynscene/property"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectChanged(t *testing.T) {
	o := NewObject("a")
	assert.Equal(t, "a", o.ID())
	var names []string
	o.Changed.Add(func(ev PropertyChange) {
		assert.Same(t, o, ev.Object)
		names = append(names, ev.Name)
	})

	pos := property.NewConstant(math32.Vec3(1, 2, 3))
	o.SetPosition(pos)
	o.SetPosition(pos) // same reference: no event
	pg := NewPolygon()
	o.SetPolygon(pg)
	o.SetPolygon(pg)
	o.SetPolygon(nil)
	assert.Equal(t, []string{NamePosition, NamePolygon, NamePolygon}, names)

	// sub-description changes are not reported on the object
	names = nil
	o.SetPolygon(pg)
	var sub []string
	pg.Changed.Add(func(name string) { sub = append(sub, name) })
	pg.SetHeight(property.NewConstant(float32(1)))
	pg.SetMaterial(material.NewColor(colors.White))
	pg.SetShow(nil)
	assert.Equal(t, []string{NamePolygon}, names)
	assert.Equal(t, []string{"height", "material"}, sub)
}

func TestNewObjectID(t *testing.T) {
	a, b := NewObject(""), NewObject("")
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestAvailability(t *testing.T) {
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	o := NewObject("a")
	assert.True(t, o.IsAvailable(t0))
	n := 0
	o.Changed.Add(func(ev PropertyChange) { n++ })
	o.SetAvailability(&Interval{Start: t0, Stop: t0.Add(time.Hour)})
	o.SetAvailability(&Interval{Start: t0, Stop: t0.Add(time.Hour)})
	assert.Equal(t, 1, n)
	assert.True(t, o.IsAvailable(t0))
	assert.True(t, o.IsAvailable(t0.Add(time.Hour)))
	assert.False(t, o.IsAvailable(t0.Add(2*time.Hour)))
	assert.False(t, o.IsAvailable(t0.Add(-time.Second)))
}

func TestCollection(t *testing.T) {
	c := NewCollection()
	var evs []CollectionChange
	c.Changed.Add(func(ev CollectionChange) { evs = append(evs, ev) })

	a := NewObject("a")
	require.NoError(t, c.Add(a))
	assert.Error(t, c.Add(NewObject("a")))
	b := c.GetOrCreate("b")
	assert.Same(t, b, c.GetOrCreate("b"))
	assert.Equal(t, []*Object{a, b}, c.Objects())
	require.Len(t, evs, 2)
	assert.Equal(t, []*Object{a}, evs[0].Added)

	assert.True(t, c.Remove(a))
	assert.False(t, c.Remove(a))
	require.Len(t, evs, 3)
	assert.Equal(t, []*Object{a}, evs[2].Removed)
	assert.Nil(t, c.ByID("a"))
}

func TestCollectionSuspend(t *testing.T) {
	c := NewCollection()
	var evs []CollectionChange
	c.Changed.Add(func(ev CollectionChange) { evs = append(evs, ev) })
	keep := c.GetOrCreate("keep")
	evs = nil

	c.Suspend()
	c.Suspend()
	x := c.GetOrCreate("x")
	y := c.GetOrCreate("y")
	c.Remove(x)    // cancels the add of x
	c.Remove(keep) // reported as removed
	c.Resume()
	assert.Empty(t, evs)
	c.Resume()
	require.Len(t, evs, 1)
	assert.Equal(t, []*Object{y}, evs[0].Added)
	assert.Equal(t, []*Object{keep}, evs[0].Removed)

	evs = nil
	c.RemoveAll()
	require.Len(t, evs, 1)
	assert.Equal(t, []*Object{y}, evs[0].Removed)
	assert.Equal(t, 0, c.Len())
	c.Resume() // unmatched: no-op
	assert.Len(t, evs, 1)
}
