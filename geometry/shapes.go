// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"cogentcore.org/core/math32"
)

// Polygon is a polygon through vertex positions, optionally extruded.
type Polygon struct {

	// Positions are the vertex positions, in order around the polygon.
	Positions []math32.Vector3

	// Height is the height of the polygon surface above the positions.
	Height float32

	// ExtrudedHeight is the height of the extruded face, when Extruded is set.
	ExtrudedHeight float32

	// Extruded is whether the polygon is extruded to ExtrudedHeight.
	Extruded bool

	// Granularity is the angular distance between tessellated points, in radians.
	Granularity float32

	// StRotation is the rotation of texture coordinates, in radians.
	StRotation float32

	// PerPositionHeight uses the height of each position instead of Height.
	PerPositionHeight bool

	// Outline is whether this is the outline variant.
	Outline bool
}

func (g *Polygon) Kind() Kinds     { return KindPolygon }
func (g *Polygon) IsOutline() bool { return g.Outline }

func (g *Polygon) BBox() math32.Box3 {
	bb := math32.B3Empty()
	if len(g.Positions) == 0 {
		return bb
	}
	bb.SetFromPoints(g.Positions)
	if g.Extruded {
		lo, hi := math32.Min(g.Height, g.ExtrudedHeight), math32.Max(g.Height, g.ExtrudedHeight)
		bb.Min.Z += lo
		bb.Max.Z += hi
	} else if !g.PerPositionHeight {
		bb.Min.Z += g.Height
		bb.Max.Z += g.Height
	}
	return bb
}

func (g *Polygon) Equal(other Geometry) bool {
	o, ok := other.(*Polygon)
	if !ok {
		return false
	}
	return SamePositions(g.Positions, o.Positions) &&
		g.Height == o.Height && g.ExtrudedHeight == o.ExtrudedHeight &&
		g.Extruded == o.Extruded && g.Granularity == o.Granularity &&
		g.StRotation == o.StRotation && g.PerPositionHeight == o.PerPositionHeight &&
		g.Outline == o.Outline
}

// Ellipse is an ellipse around a center point, optionally extruded.
type Ellipse struct {

	// Center is the center of the ellipse.
	Center math32.Vector3

	// SemiMajorAxis is the length of the semi-major axis.
	SemiMajorAxis float32

	// SemiMinorAxis is the length of the semi-minor axis.
	SemiMinorAxis float32

	// Rotation is the angle of the major axis from north, in radians.
	Rotation float32

	// Height is the height of the ellipse above the center.
	Height float32

	// ExtrudedHeight is the height of the extruded face, when Extruded is set.
	ExtrudedHeight float32

	// Extruded is whether the ellipse is extruded to ExtrudedHeight.
	Extruded bool

	// Granularity is the angular distance between tessellated points, in radians.
	Granularity float32

	// StRotation is the rotation of texture coordinates, in radians.
	StRotation float32

	// NumberOfVerticalLines is the number of vertical lines drawn
	// along the extruded sides of the outline.
	NumberOfVerticalLines int

	// Outline is whether this is the outline variant.
	Outline bool
}

func (g *Ellipse) Kind() Kinds     { return KindEllipse }
func (g *Ellipse) IsOutline() bool { return g.Outline }

func (g *Ellipse) BBox() math32.Box3 {
	r := math32.Max(g.SemiMajorAxis, g.SemiMinorAxis)
	lo, hi := g.Height, g.Height
	if g.Extruded {
		lo, hi = math32.Min(g.Height, g.ExtrudedHeight), math32.Max(g.Height, g.ExtrudedHeight)
	}
	c := g.Center
	return math32.B3(c.X-r, c.Y-r, c.Z+lo, c.X+r, c.Y+r, c.Z+hi)
}

func (g *Ellipse) Equal(other Geometry) bool {
	o, ok := other.(*Ellipse)
	return ok && *g == *o
}

// Ellipsoid is a closed ellipsoid centered on the origin of its
// model matrix.
type Ellipsoid struct {

	// Radii are the radii along each axis.
	Radii math32.Vector3

	// StackPartitions is the number of stacks (latitude bands).
	StackPartitions int

	// SlicePartitions is the number of slices (longitude bands).
	SlicePartitions int

	// Subdivisions is the number of points per outline line.
	Subdivisions int

	// Outline is whether this is the outline variant.
	Outline bool
}

func (g *Ellipsoid) Kind() Kinds     { return KindEllipsoid }
func (g *Ellipsoid) IsOutline() bool { return g.Outline }

func (g *Ellipsoid) BBox() math32.Box3 {
	r := g.Radii
	return math32.B3(-r.X, -r.Y, -r.Z, r.X, r.Y, r.Z)
}

func (g *Ellipsoid) Equal(other Geometry) bool {
	o, ok := other.(*Ellipsoid)
	return ok && *g == *o
}

// Polyline is a line strip through vertex positions.
type Polyline struct {

	// Positions are the vertex positions, in order along the line.
	Positions []math32.Vector3

	// Width is the line width in pixels.
	Width float32

	// FollowSurface is whether segments follow the curvature of the surface.
	FollowSurface bool

	// Granularity is the angular distance between points
	// when following the surface, in radians.
	Granularity float32
}

func (g *Polyline) Kind() Kinds     { return KindPolyline }
func (g *Polyline) IsOutline() bool { return false }

func (g *Polyline) BBox() math32.Box3 {
	bb := math32.B3Empty()
	if len(g.Positions) > 0 {
		bb.SetFromPoints(g.Positions)
	}
	return bb
}

func (g *Polyline) Equal(other Geometry) bool {
	o, ok := other.(*Polyline)
	if !ok {
		return false
	}
	return SamePositions(g.Positions, o.Positions) && g.Width == o.Width &&
		g.FollowSurface == o.FollowSurface && g.Granularity == o.Granularity
}
