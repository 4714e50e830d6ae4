// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

//go:generate core generate

import (
	"fmt"
	"maps"
)

// Material is a sampled material value: a material type name
// and the uniform values for that type's shader at a given time.
type Material struct {

	// Type is the material type name, such as "Color" or "Grid".
	Type string

	// Uniforms are the shader uniform values by name.
	Uniforms map[string]any
}

// NewMaterial returns a new material of the given type with no uniforms.
func NewMaterial(typ string) *Material {
	return &Material{Type: typ, Uniforms: map[string]any{}}
}

// Clone returns a copy of the material with its own uniform map.
func (m *Material) Clone() *Material {
	if m == nil {
		return nil
	}
	return &Material{Type: m.Type, Uniforms: maps.Clone(m.Uniforms)}
}

func (m *Material) String() string {
	if m == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s%v", m.Type, m.Uniforms)
}

// AppearanceKinds are the shader programs an [Appearance] selects.
type AppearanceKinds int32 //enums:enum -trim-prefix Appearance

const (
	// AppearancePerInstanceColor uses the per-instance color attribute
	// of each geometry instance.
	AppearancePerInstanceColor AppearanceKinds = iota

	// AppearanceMaterial uses the material on the appearance for all instances.
	AppearanceMaterial

	// AppearancePolylineColor uses the per-instance color for line strips.
	AppearancePolylineColor

	// AppearancePolylineMaterial uses the material on the appearance for line strips.
	AppearancePolylineMaterial

	// AppearanceFlat is unlit, drawing per-instance colors as lines.
	AppearanceFlat
)

// Appearance describes how the instances of a primitive are shaded.
type Appearance struct {

	// Kind is the kind of shading.
	Kind AppearanceKinds

	// Material is the material for material kinds; it can be
	// reassigned on a live primitive.
	Material *Material

	// Translucent enables blending; it is fixed for the life of the primitive.
	Translucent bool

	// Closed is whether the geometry is a closed volume, allowing back faces to be culled.
	Closed bool

	// FaceForward flips normals to face the viewer for open geometry.
	FaceForward bool

	// DepthTest enables the depth test.
	DepthTest bool

	// CullFace enables face culling.
	CullFace bool
}

// PerInstanceColor returns an appearance shading each instance
// with its color attribute.
func PerInstanceColor(translucent, closed bool) Appearance {
	return Appearance{
		Kind:        AppearancePerInstanceColor,
		Translucent: translucent,
		Closed:      closed,
		FaceForward: !closed,
		DepthTest:   true,
		CullFace:    closed,
	}
}

// MaterialAppearance returns an appearance shading all instances
// with the given material.
func MaterialAppearance(mat *Material, translucent, closed bool) Appearance {
	return Appearance{
		Kind:        AppearanceMaterial,
		Material:    mat,
		Translucent: translucent,
		Closed:      closed,
		FaceForward: !closed,
		DepthTest:   true,
		CullFace:    closed,
	}
}

// PolylineColor returns an appearance for line strips colored
// with their color attribute.
func PolylineColor(translucent bool) Appearance {
	return Appearance{
		Kind:        AppearancePolylineColor,
		Translucent: translucent,
		DepthTest:   true,
	}
}

// PolylineMaterial returns an appearance for line strips shaded
// with the given material.
func PolylineMaterial(mat *Material, translucent bool) Appearance {
	return Appearance{
		Kind:        AppearancePolylineMaterial,
		Material:    mat,
		Translucent: translucent,
		DepthTest:   true,
	}
}

// Outline returns a flat, depth-tested appearance with no face culling,
// used for outline geometry.
func Outline(translucent bool) Appearance {
	return Appearance{
		Kind:        AppearanceFlat,
		Translucent: translucent,
		DepthTest:   true,
	}
}
