// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package property

import (
	"image/color"
	"slices"
	"time"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
)

// Interpolator returns the value a fraction f (0-1) of the way from a to b.
type Interpolator[T any] func(a, b T, f float32) T

// Sample is one time-tagged value of a [Sampled] property.
type Sample[T any] struct {
	Time  time.Time
	Value T
}

// Sampled is a property defined by time-ordered samples, interpolated
// between samples and clamped to the first and last sample outside them.
type Sampled[T any] struct {
	samples []Sample[T]
	interp  Interpolator[T]
}

// NewSampled returns a new sampled property using the given interpolator,
// which defaults to [Step] if nil.
func NewSampled[T any](interp Interpolator[T], samples ...Sample[T]) *Sampled[T] {
	if interp == nil {
		interp = Step[T]
	}
	sp := &Sampled[T]{interp: interp}
	for _, s := range samples {
		sp.AddSample(s.Time, s.Value)
	}
	return sp
}

// AddSample adds a sample, keeping samples in time order.
// A sample at an existing time replaces the value there.
func (sp *Sampled[T]) AddSample(t time.Time, v T) *Sampled[T] {
	i, found := slices.BinarySearchFunc(sp.samples, t, func(s Sample[T], t time.Time) int {
		return s.Time.Compare(t)
	})
	if found {
		sp.samples[i].Value = v
		return sp
	}
	sp.samples = slices.Insert(sp.samples, i, Sample[T]{Time: t, Value: v})
	return sp
}

// Len returns the number of samples.
func (sp *Sampled[T]) Len() int {
	return len(sp.samples)
}

// Value returns the interpolated value at time t.
// It returns the zero value if there are no samples.
func (sp *Sampled[T]) Value(t time.Time) T {
	n := len(sp.samples)
	if n == 0 {
		var zv T
		return zv
	}
	first, last := sp.samples[0], sp.samples[n-1]
	if !t.After(first.Time) {
		return first.Value
	}
	if !t.Before(last.Time) {
		return last.Value
	}
	i, found := slices.BinarySearchFunc(sp.samples, t, func(s Sample[T], t time.Time) int {
		return s.Time.Compare(t)
	})
	if found {
		return sp.samples[i].Value
	}
	a, b := sp.samples[i-1], sp.samples[i]
	f := float32(t.Sub(a.Time)) / float32(b.Time.Sub(a.Time))
	return sp.interp(a.Value, b.Value, f)
}

func (sp *Sampled[T]) IsConstant() bool {
	return false
}

////////////////////////////////////////////////////////////////
// Interpolators

// Step holds the earlier value until the next sample.
func Step[T any](a, b T, f float32) T {
	if f >= 1 {
		return b
	}
	return a
}

// LerpFloat32 linearly interpolates float32 values.
func LerpFloat32(a, b float32, f float32) float32 {
	return math32.Lerp(a, b, f)
}

// LerpVector3 linearly interpolates each component.
func LerpVector3(a, b math32.Vector3, f float32) math32.Vector3 {
	return math32.Vec3(math32.Lerp(a.X, b.X, f), math32.Lerp(a.Y, b.Y, f), math32.Lerp(a.Z, b.Z, f))
}

// LerpVector3s linearly interpolates positions element-wise.
// Lists of different lengths step instead.
func LerpVector3s(a, b []math32.Vector3, f float32) []math32.Vector3 {
	if len(a) != len(b) {
		return Step(a, b, f)
	}
	r := make([]math32.Vector3, len(a))
	for i := range a {
		r[i] = LerpVector3(a[i], b[i], f)
	}
	return r
}

// LerpColor blends colors in RGB space, including alpha.
func LerpColor(a, b color.RGBA, f float32) color.RGBA {
	return colors.BlendRGB(100*(1-f), a, b)
}
