// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package material provides time-varying material properties,
// which are sampled into [render.Material] values.
// [Color] is the distinguished plain color material; the others
// ([Grid], [Image], [Stripe]) require a material appearance.
package material

import (
	"image/color"
	"time"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/dynscene/property"
	"cogentcore.org/dynscene/render"
)

// Material type names, used as [render.Material.Type].
const (
	ColorType  = "Color"
	GridType   = "Grid"
	ImageType  = "Image"
	StripeType = "Stripe"
)

// Property is a material whose uniform values may vary over time.
// Implementations are pointer types.
type Property interface {

	// Type returns the material type name.
	Type() string

	// Value samples the material at time t, reusing result
	// if it is non-nil and of the same type.
	Value(t time.Time, result *render.Material) *render.Material

	// IsConstant returns whether all uniform values are constant.
	IsConstant() bool

	// IsTranslucent returns whether the material is translucent at time t.
	IsTranslucent(t time.Time) bool

	// Equal returns whether other is the same kind of material
	// with equal properties.
	Equal(other Property) bool
}

// Equal returns whether the two materials are the same reference,
// or semantically equal. Two nil materials are equal.
func Equal(a, b Property) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a == b {
		return true
	}
	return a.Equal(b)
}

// ColorOf returns the color property of m, and true if m is a plain
// color material. A nil material is a plain white color material.
func ColorOf(m Property) (property.Property[color.RGBA], bool) {
	if m == nil {
		return nil, true
	}
	if cm, ok := m.(*Color); ok {
		return cm.Color, true
	}
	return nil, false
}

// initResult returns result if it is usable for the given type,
// or a new material.
func initResult(typ string, result *render.Material) *render.Material {
	if result == nil || result.Type != typ {
		return render.NewMaterial(typ)
	}
	if result.Uniforms == nil {
		result.Uniforms = map[string]any{}
	}
	return result
}

func isTranslucentColor(c color.RGBA) bool {
	return c.A < 255
}

////////////////////////////////////////////////////////////////
// Color

// Color is a material with a single color.
// Its fields are read when the material is set on a shape;
// to change them, set a new material.
type Color struct {

	// Color is the color; white if nil.
	Color property.Property[color.RGBA]
}

// NewColor returns a new color material with a constant color.
func NewColor(c color.RGBA) *Color {
	return &Color{Color: property.NewConstant(c)}
}

func (m *Color) Type() string { return ColorType }

func (m *Color) Value(t time.Time, result *render.Material) *render.Material {
	result = initResult(ColorType, result)
	result.Uniforms["color"] = property.ValueOr(m.Color, t, colors.White)
	return result
}

func (m *Color) IsConstant() bool {
	return m.Color == nil || m.Color.IsConstant()
}

func (m *Color) IsTranslucent(t time.Time) bool {
	return isTranslucentColor(property.ValueOr(m.Color, t, colors.White))
}

func (m *Color) Equal(other Property) bool {
	o, ok := other.(*Color)
	return ok && (m == o || property.Equal(m.Color, o.Color))
}

////////////////////////////////////////////////////////////////
// Grid

// Grid is a material with grid lines over translucent cells.
type Grid struct {

	// Color is the line color; white if nil.
	Color property.Property[color.RGBA]

	// CellAlpha is the alpha of the cells between lines; 0.1 if nil.
	CellAlpha property.Property[float32]

	// LineCount is the number of lines in each direction; (8, 8) if nil.
	LineCount property.Property[math32.Vector2]

	// LineThickness is the line thickness in pixels in each direction; (1, 1) if nil.
	LineThickness property.Property[math32.Vector2]
}

func (m *Grid) Type() string { return GridType }

func (m *Grid) Value(t time.Time, result *render.Material) *render.Material {
	result = initResult(GridType, result)
	result.Uniforms["color"] = property.ValueOr(m.Color, t, colors.White)
	result.Uniforms["cellAlpha"] = property.ValueOr(m.CellAlpha, t, 0.1)
	result.Uniforms["lineCount"] = property.ValueOr(m.LineCount, t, math32.Vec2(8, 8))
	result.Uniforms["lineThickness"] = property.ValueOr(m.LineThickness, t, math32.Vec2(1, 1))
	return result
}

func (m *Grid) IsConstant() bool {
	return constant(m.Color) && constant(m.CellAlpha) && constant(m.LineCount) && constant(m.LineThickness)
}

func (m *Grid) IsTranslucent(t time.Time) bool {
	return isTranslucentColor(property.ValueOr(m.Color, t, colors.White)) ||
		property.ValueOr(m.CellAlpha, t, 0.1) < 1
}

func (m *Grid) Equal(other Property) bool {
	o, ok := other.(*Grid)
	if !ok {
		return false
	}
	return m == o || (property.Equal(m.Color, o.Color) && property.Equal(m.CellAlpha, o.CellAlpha) &&
		property.Equal(m.LineCount, o.LineCount) && property.Equal(m.LineThickness, o.LineThickness))
}

////////////////////////////////////////////////////////////////
// Image

// Image is a material that maps an image over the surface.
type Image struct {

	// Image is the URL of the image.
	Image property.Property[string]

	// Repeat is the number of image repeats in each direction; (1, 1) if nil.
	Repeat property.Property[math32.Vector2]
}

func (m *Image) Type() string { return ImageType }

func (m *Image) Value(t time.Time, result *render.Material) *render.Material {
	result = initResult(ImageType, result)
	result.Uniforms["image"] = property.ValueOr(m.Image, t, "")
	result.Uniforms["repeat"] = property.ValueOr(m.Repeat, t, math32.Vec2(1, 1))
	return result
}

func (m *Image) IsConstant() bool {
	return constant(m.Image) && constant(m.Repeat)
}

// IsTranslucent returns true: image content is not inspected.
func (m *Image) IsTranslucent(t time.Time) bool {
	return true
}

func (m *Image) Equal(other Property) bool {
	o, ok := other.(*Image)
	return ok && (m == o || (property.Equal(m.Image, o.Image) && property.Equal(m.Repeat, o.Repeat)))
}

////////////////////////////////////////////////////////////////
// Stripe

// Stripe is a material of alternating light and dark stripes.
type Stripe struct {

	// Horizontal is whether the stripes are horizontal; true if nil.
	Horizontal property.Property[bool]

	// Light is the light stripe color; white if nil.
	Light property.Property[color.RGBA]

	// Dark is the dark stripe color; black if nil.
	Dark property.Property[color.RGBA]

	// Offset is the offset into the stripe pattern; 0 if nil.
	Offset property.Property[float32]

	// Repeat is the number of stripe pairs; 1 if nil.
	Repeat property.Property[float32]
}

func (m *Stripe) Type() string { return StripeType }

func (m *Stripe) Value(t time.Time, result *render.Material) *render.Material {
	result = initResult(StripeType, result)
	result.Uniforms["horizontal"] = property.ValueOr(m.Horizontal, t, true)
	result.Uniforms["lightColor"] = property.ValueOr(m.Light, t, colors.White)
	result.Uniforms["darkColor"] = property.ValueOr(m.Dark, t, colors.Black)
	result.Uniforms["offset"] = property.ValueOr(m.Offset, t, 0)
	result.Uniforms["repeat"] = property.ValueOr(m.Repeat, t, 1)
	return result
}

func (m *Stripe) IsConstant() bool {
	return constant(m.Horizontal) && constant(m.Light) && constant(m.Dark) &&
		constant(m.Offset) && constant(m.Repeat)
}

func (m *Stripe) IsTranslucent(t time.Time) bool {
	return isTranslucentColor(property.ValueOr(m.Light, t, colors.White)) ||
		isTranslucentColor(property.ValueOr(m.Dark, t, colors.Black))
}

func (m *Stripe) Equal(other Property) bool {
	o, ok := other.(*Stripe)
	if !ok {
		return false
	}
	return m == o || (property.Equal(m.Horizontal, o.Horizontal) && property.Equal(m.Light, o.Light) &&
		property.Equal(m.Dark, o.Dark) && property.Equal(m.Offset, o.Offset) &&
		property.Equal(m.Repeat, o.Repeat))
}

// constant returns whether p is nil (a default) or constant.
func constant[T any](p property.Property[T]) bool {
	return p == nil || p.IsConstant()
}
