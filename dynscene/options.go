// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynscene

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/base/reflectx"
)

// Options are the options for a [Visualizer].
type Options struct {

	// IsolateErrors recovers from a panic while updating one object,
	// logging it and dropping that object's geometry until it changes,
	// instead of aborting the whole frame.
	IsolateErrors bool `default:"true"`

	// Trace logs reclassification and batch rebuilds at debug level.
	Trace bool
}

// DefaultOptions returns new options with default values.
func DefaultOptions() *Options {
	o := &Options{}
	o.Defaults()
	return o
}

// Defaults sets the options to their default values.
func (o *Options) Defaults() {
	errors.Log(reflectx.SetFromDefaultTags(o))
}

// OpenOptions returns options read from the given TOML file,
// with defaults for any values not set in the file.
func OpenOptions(filename string) (*Options, error) {
	o := DefaultOptions()
	if err := tomlx.Open(o, filename); err != nil {
		return nil, err
	}
	return o, nil
}

// Save saves the options to the given TOML file.
func (o *Options) Save(filename string) error {
	return tomlx.Save(o, filename)
}
