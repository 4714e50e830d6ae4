// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/dynscene/dynamic"
	"cogentcore.org/dynscene/material"
	"cogentcore.org/dynscene/property"
	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Scene is a scene description file: a list of objects.
type Scene struct {

	// Defaults are applied to every object, for the fields
	// the object does not set itself.
	Defaults ObjectSpec `toml:"defaults" yaml:"defaults"`

	// Objects are the objects of the scene.
	Objects []ObjectSpec `toml:"objects" yaml:"objects"`
}

// ObjectSpec describes one object. Vectors are lists of numbers;
// times are in seconds from the scene start.
type ObjectSpec struct {
	ID          string      `toml:"id" yaml:"id"`
	Position    []float32   `toml:"position" yaml:"position"`
	Orientation []float32   `toml:"orientation" yaml:"orientation"`
	Positions   [][]float32 `toml:"positions" yaml:"positions"`

	// Velocity moves the position and positions over time,
	// in units per second.
	Velocity []float32 `toml:"velocity" yaml:"velocity"`

	Available *IntervalSpec `toml:"available" yaml:"available"`

	Polygon   *PolygonSpec   `toml:"polygon" yaml:"polygon"`
	Ellipse   *EllipseSpec   `toml:"ellipse" yaml:"ellipse"`
	Ellipsoid *EllipsoidSpec `toml:"ellipsoid" yaml:"ellipsoid"`
	Polyline  *PolylineSpec  `toml:"polyline" yaml:"polyline"`
}

// IntervalSpec is an availability interval.
type IntervalSpec struct {
	Start float64 `toml:"start" yaml:"start"`
	Stop  float64 `toml:"stop" yaml:"stop"`
}

// FillSpec are the fill properties shared by closed shapes.
type FillSpec struct {
	Show         *bool         `toml:"show" yaml:"show"`
	Fill         *bool         `toml:"fill" yaml:"fill"`
	Outline      *bool         `toml:"outline" yaml:"outline"`
	OutlineColor string        `toml:"outlineColor" yaml:"outlineColor"`
	Material     *MaterialSpec `toml:"material" yaml:"material"`
}

// MaterialSpec is a material. Type is one of color (the default),
// grid, image or stripe; only the fields of the type are used.
type MaterialSpec struct {
	Type       string    `toml:"type" yaml:"type"`
	Color      string    `toml:"color" yaml:"color"`
	CellAlpha  *float32  `toml:"cellAlpha" yaml:"cellAlpha"`
	LineCount  []float32 `toml:"lineCount" yaml:"lineCount"`
	Image      string    `toml:"image" yaml:"image"`
	Horizontal *bool     `toml:"horizontal" yaml:"horizontal"`
	Light      string    `toml:"light" yaml:"light"`
	Dark       string    `toml:"dark" yaml:"dark"`
	Repeat     *float32  `toml:"repeat" yaml:"repeat"`
}

type PolygonSpec struct {
	FillSpec          `yaml:",inline"`
	Height            *float32 `toml:"height" yaml:"height"`
	ExtrudedHeight    *float32 `toml:"extrudedHeight" yaml:"extrudedHeight"`
	PerPositionHeight *bool    `toml:"perPositionHeight" yaml:"perPositionHeight"`
}

type EllipseSpec struct {
	FillSpec       `yaml:",inline"`
	SemiMajorAxis  *float32 `toml:"semiMajorAxis" yaml:"semiMajorAxis"`
	SemiMinorAxis  *float32 `toml:"semiMinorAxis" yaml:"semiMinorAxis"`
	Rotation       *float32 `toml:"rotation" yaml:"rotation"`
	Height         *float32 `toml:"height" yaml:"height"`
	ExtrudedHeight *float32 `toml:"extrudedHeight" yaml:"extrudedHeight"`
}

type EllipsoidSpec struct {
	FillSpec `yaml:",inline"`
	Radii    []float32 `toml:"radii" yaml:"radii"`
}

type PolylineSpec struct {
	Show     *bool         `toml:"show" yaml:"show"`
	Width    *float32      `toml:"width" yaml:"width"`
	Material *MaterialSpec `toml:"material" yaml:"material"`
}

// OpenScene reads the scene file, in TOML or YAML format
// depending on its extension. Unknown fields are errors.
func OpenScene(filename string) (*Scene, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var sc *Scene
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		sc, err = ReadTOML(b)
	case ".yaml", ".yml":
		sc, err = ReadYAML(b)
	default:
		return nil, fmt.Errorf("scene file %q: unknown file type %q", filename, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("scene file %q: %w", filename, err)
	}
	return sc, nil
}

// ReadTOML reads a scene in TOML format.
func ReadTOML(b []byte) (*Scene, error) {
	sc := &Scene{}
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(sc); err != nil {
		return nil, err
	}
	return sc, sc.Validate()
}

// ReadYAML reads a scene in YAML format.
func ReadYAML(b []byte) (*Scene, error) {
	sc := &Scene{}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(sc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return sc, sc.Validate()
}

// Validate checks that object ids are unique and non-empty,
// and that all vectors, colors and materials are valid.
func (sc *Scene) Validate() error {
	ids := map[string]bool{}
	var errs []error
	for i := range sc.Objects {
		ob, err := sc.Object(i)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		switch {
		case ob.ID == "":
			errs = append(errs, fmt.Errorf("object %d: missing id", i))
		case ids[ob.ID]:
			errs = append(errs, fmt.Errorf("object %d: duplicate id %q", i, ob.ID))
		}
		ids[ob.ID] = true
		if err := ob.apply(dynamic.NewObject(ob.ID), time.Time{}); err != nil {
			errs = append(errs, fmt.Errorf("object %q: %w", ob.ID, err))
		}
	}
	return errors.Join(errs...)
}

// Object returns object i with the defaults applied.
func (sc *Scene) Object(i int) (*ObjectSpec, error) {
	ob := &ObjectSpec{}
	if err := copier.CopyWithOption(ob, &sc.Defaults, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	if err := copier.CopyWithOption(ob, &sc.Objects[i], copier.Option{IgnoreEmpty: true, DeepCopy: true}); err != nil {
		return nil, err
	}
	return ob, nil
}

// Apply makes the objects of the collection match the scene: objects
// are added or updated, and objects not in the scene are removed.
// All changes are reported as one collection change. The scene is
// validated first, and the collection is not changed if it is invalid.
func (sc *Scene) Apply(objs *dynamic.Collection, start time.Time) error {
	if err := sc.Validate(); err != nil {
		return err
	}
	objs.Suspend()
	defer objs.Resume()
	keep := map[string]bool{}
	for i := range sc.Objects {
		ob, err := sc.Object(i)
		if err != nil {
			return err
		}
		keep[ob.ID] = true
		if err := ob.apply(objs.GetOrCreate(ob.ID), start); err != nil {
			return fmt.Errorf("object %q: %w", ob.ID, err)
		}
	}
	for _, o := range objs.Objects() {
		if !keep[o.ID()] {
			objs.Remove(o)
		}
	}
	return nil
}

// apply sets all properties of the object from the description.
func (ob *ObjectSpec) apply(o *dynamic.Object, start time.Time) error {
	var vel math32.Vector3
	moving := len(ob.Velocity) > 0
	if moving {
		v, err := vec3(ob.Velocity)
		if err != nil {
			return fmt.Errorf("velocity: %w", err)
		}
		vel = v
	}
	offset := func(t time.Time) math32.Vector3 {
		return vel.MulScalar(float32(t.Sub(start).Seconds()))
	}

	var pos property.Property[math32.Vector3]
	if len(ob.Position) > 0 {
		p, err := vec3(ob.Position)
		if err != nil {
			return fmt.Errorf("position: %w", err)
		}
		pos = property.NewConstant(p)
		if moving {
			pos = property.NewFunc(func(t time.Time) math32.Vector3 { return p.Add(offset(t)) })
		}
	}
	o.SetPosition(pos)

	var orient property.Property[math32.Quat]
	if len(ob.Orientation) > 0 {
		if len(ob.Orientation) != 4 {
			return fmt.Errorf("orientation: need 4 components, have %d", len(ob.Orientation))
		}
		q := ob.Orientation
		orient = property.NewConstant(math32.NewQuat(q[0], q[1], q[2], q[3]))
	}
	o.SetOrientation(orient)

	var positions property.Property[[]math32.Vector3]
	if len(ob.Positions) > 0 {
		ps := make([]math32.Vector3, len(ob.Positions))
		for i, p := range ob.Positions {
			v, err := vec3(p)
			if err != nil {
				return fmt.Errorf("positions[%d]: %w", i, err)
			}
			ps[i] = v
		}
		positions = property.NewConstant(ps)
		if moving {
			positions = property.NewFunc(func(t time.Time) []math32.Vector3 {
				off := offset(t)
				moved := make([]math32.Vector3, len(ps))
				for i, p := range ps {
					moved[i] = p.Add(off)
				}
				return moved
			})
		}
	}
	o.SetVertexPositions(positions)

	var iv *dynamic.Interval
	if ob.Available != nil {
		iv = &dynamic.Interval{Start: at(start, ob.Available.Start), Stop: at(start, ob.Available.Stop)}
	}
	o.SetAvailability(iv)

	var err error
	var pg *dynamic.Polygon
	if ob.Polygon != nil {
		if pg, err = ob.Polygon.polygon(); err != nil {
			return fmt.Errorf("polygon: %w", err)
		}
	}
	o.SetPolygon(pg)

	var el *dynamic.Ellipse
	if ob.Ellipse != nil {
		if el, err = ob.Ellipse.ellipse(); err != nil {
			return fmt.Errorf("ellipse: %w", err)
		}
	}
	o.SetEllipse(el)

	var es *dynamic.Ellipsoid
	if ob.Ellipsoid != nil {
		if es, err = ob.Ellipsoid.ellipsoid(); err != nil {
			return fmt.Errorf("ellipsoid: %w", err)
		}
	}
	o.SetEllipsoid(es)

	var pl *dynamic.Polyline
	if ob.Polyline != nil {
		if pl, err = ob.Polyline.polyline(); err != nil {
			return fmt.Errorf("polyline: %w", err)
		}
	}
	o.SetPolyline(pl)
	return nil
}

func (fs *FillSpec) apply(f *dynamic.Fill) error {
	f.SetShow(constantOf(fs.Show))
	f.SetFill(constantOf(fs.Fill))
	f.SetOutline(constantOf(fs.Outline))
	oc, err := colorOf(fs.OutlineColor)
	if err != nil {
		return fmt.Errorf("outline color: %w", err)
	}
	f.SetOutlineColor(oc)
	m, err := fs.Material.material()
	if err != nil {
		return err
	}
	f.SetMaterial(m)
	return nil
}

func (ps *PolygonSpec) polygon() (*dynamic.Polygon, error) {
	pg := dynamic.NewPolygon().
		SetHeight(constantOf(ps.Height)).
		SetExtrudedHeight(constantOf(ps.ExtrudedHeight)).
		SetPerPositionHeight(constantOf(ps.PerPositionHeight))
	return pg, ps.FillSpec.apply(&pg.Fill)
}

func (es *EllipseSpec) ellipse() (*dynamic.Ellipse, error) {
	el := dynamic.NewEllipse().
		SetSemiMajorAxis(constantOf(es.SemiMajorAxis)).
		SetSemiMinorAxis(constantOf(es.SemiMinorAxis)).
		SetRotation(constantOf(es.Rotation)).
		SetHeight(constantOf(es.Height)).
		SetExtrudedHeight(constantOf(es.ExtrudedHeight))
	return el, es.FillSpec.apply(&el.Fill)
}

func (es *EllipsoidSpec) ellipsoid() (*dynamic.Ellipsoid, error) {
	ed := dynamic.NewEllipsoid()
	if len(es.Radii) > 0 {
		r, err := vec3(es.Radii)
		if err != nil {
			return nil, fmt.Errorf("radii: %w", err)
		}
		ed.SetRadii(property.NewConstant(r))
	}
	return ed, es.FillSpec.apply(&ed.Fill)
}

func (ps *PolylineSpec) polyline() (*dynamic.Polyline, error) {
	m, err := ps.Material.material()
	if err != nil {
		return nil, err
	}
	return dynamic.NewPolyline().
		SetShow(constantOf(ps.Show)).
		SetWidth(constantOf(ps.Width)).
		SetMaterial(m), nil
}

// material returns the material, or nil for a nil ob.
func (ms *MaterialSpec) material() (material.Property, error) {
	if ms == nil {
		return nil, nil
	}
	c, err := colorOf(ms.Color)
	if err != nil {
		return nil, fmt.Errorf("material color: %w", err)
	}
	switch strings.ToLower(ms.Type) {
	case "", "color":
		return &material.Color{Color: c}, nil
	case "grid":
		g := &material.Grid{Color: c, CellAlpha: constantOf(ms.CellAlpha)}
		if len(ms.LineCount) > 0 {
			if len(ms.LineCount) != 2 {
				return nil, fmt.Errorf("material line count: need 2 components, have %d", len(ms.LineCount))
			}
			g.LineCount = property.NewConstant(math32.Vec2(ms.LineCount[0], ms.LineCount[1]))
		}
		return g, nil
	case "image":
		if ms.Image == "" {
			return nil, errors.New("image material: missing image")
		}
		return &material.Image{Image: property.NewConstant(ms.Image)}, nil
	case "stripe":
		light, err := colorOf(ms.Light)
		if err != nil {
			return nil, fmt.Errorf("material light: %w", err)
		}
		dark, err := colorOf(ms.Dark)
		if err != nil {
			return nil, fmt.Errorf("material dark: %w", err)
		}
		return &material.Stripe{
			Horizontal: constantOf(ms.Horizontal),
			Light:      light,
			Dark:       dark,
			Repeat:     constantOf(ms.Repeat),
		}, nil
	}
	return nil, fmt.Errorf("unknown material type %q", ms.Type)
}

// constantOf returns a constant property of *v, or nil if v is nil.
func constantOf[T any](v *T) property.Property[T] {
	if v == nil {
		return nil
	}
	return property.NewConstant(*v)
}

// colorOf returns a constant color property parsed from a hex
// value or a color name, or nil for an empty string.
func colorOf(s string) (property.Property[color.RGBA], error) {
	if s == "" {
		return nil, nil
	}
	var c color.RGBA
	var err error
	if strings.HasPrefix(s, "#") {
		c, err = colors.FromHex(s)
	} else {
		c, err = colors.FromName(s)
	}
	if err != nil {
		return nil, err
	}
	return property.NewConstant(c), nil
}

func vec3(v []float32) (math32.Vector3, error) {
	if len(v) != 3 {
		return math32.Vector3{}, fmt.Errorf("need 3 components, have %d", len(v))
	}
	return math32.Vec3(v[0], v[1], v[2]), nil
}

func at(start time.Time, sec float64) time.Time {
	return start.Add(time.Duration(sec * float64(time.Second)))
}
