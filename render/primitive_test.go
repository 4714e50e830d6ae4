// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"cogentcore.org/core/colors"
	"cogentcore.org/dynscene/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimitiveAttributes(t *testing.T) {
	in := geometry.NewInstance("a", &geometry.Ellipsoid{}, geometry.Attributes{Color: colors.White, Show: true})
	p := NewPrimitive([]*geometry.Instance{in}, PerInstanceColor(false, true))
	assert.True(t, p.Show)
	assert.True(t, p.HasInstance("a"))

	at := p.Attributes("a")
	require.NotNil(t, at)
	assert.Equal(t, colors.White, at.Color)
	at.Show = false
	assert.Same(t, at, p.Attributes("a"))
	assert.False(t, p.Attributes("a").Show)
	// the instance itself keeps its initial attributes
	assert.True(t, in.Attributes.Show)
	assert.Nil(t, p.Attributes("b"))
}

func TestPrimitives(t *testing.T) {
	pc := NewPrimitives()
	p1 := NewPrimitive(nil, Outline(false))
	p2 := NewPrimitive(nil, Outline(true))
	assert.NotEqual(t, p1.Serial, p2.Serial)
	pc.Add(p1)
	pc.Add(p2)
	pc.Add(p1)
	assert.Equal(t, 2, pc.Len())
	assert.Equal(t, 2, pc.Added)
	assert.Equal(t, []*Primitive{p1, p2}, pc.List())

	assert.True(t, pc.Remove(p1))
	assert.True(t, p1.IsDestroyed())
	assert.False(t, pc.Remove(p1))
	assert.False(t, pc.Contains(p1))
	assert.True(t, pc.Contains(p2))
	assert.Equal(t, 1, pc.Removed)
	pc.ResetCounts()
	assert.Zero(t, pc.Added)
}

func TestAppearances(t *testing.T) {
	mat := NewMaterial("Grid")
	mat.Uniforms["lineCount"] = 8
	ma := MaterialAppearance(mat, true, false)
	assert.Equal(t, AppearanceMaterial, ma.Kind)
	assert.True(t, ma.FaceForward)
	assert.False(t, ma.CullFace)
	ol := Outline(false)
	assert.True(t, ol.DepthTest)
	assert.False(t, ol.CullFace)
	cl := mat.Clone()
	cl.Uniforms["lineCount"] = 4
	assert.Equal(t, 8, mat.Uniforms["lineCount"])
	assert.Equal(t, "Flat", AppearanceFlat.String())
}
