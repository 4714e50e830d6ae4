// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dynscene loads a scene description of dynamic objects and
// runs the geometry visualizers over it for a number of frames,
// reporting the batches and primitives of each frame.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"cogentcore.org/dynscene/dynamic"
	"cogentcore.org/dynscene/dynscene"
	"cogentcore.org/dynscene/geometry"
	"cogentcore.org/dynscene/render"
	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	"github.com/muesli/termenv"
)

// Config is the configuration information for the dynscene cli.
type Config struct {

	// Scene is the scene file to load, in TOML or YAML format.
	Scene string `posarg:"0"`

	// Frames is the number of frames to run.
	Frames int `default:"10" flag:"n,frames"`

	// Step is the time between frames, in seconds.
	Step float64 `default:"1"`

	// Start is the time of the first frame, as a UTC date
	// (2006-01-02) or in RFC 3339 format.
	Start string `default:"2026-01-01"`

	// Watch reloads the scene when the file changes, and keeps
	// running frames until interrupted.
	Watch bool `flag:"w,watch"`

	// Options is an optional TOML file of visualizer options.
	Options string
}

func main() { //types:skip
	opts := cli.DefaultOptions("dynscene", "Dynscene runs the geometry visualizers over a scene of dynamic objects.")
	cli.Run(opts, &Config{}, Run)
}

// Run loads the scene and runs the frames.
func Run(c *Config) error { //cli:cmd -root
	fname, err := homedir.Expand(c.Scene)
	if err != nil {
		return err
	}
	vopts := dynscene.DefaultOptions()
	if c.Options != "" {
		ofn, err := homedir.Expand(c.Options)
		if err != nil {
			return err
		}
		if vopts, err = dynscene.OpenOptions(ofn); err != nil {
			return err
		}
	}
	start, err := parseStart(c.Start)
	if err != nil {
		return err
	}
	step := time.Duration(c.Step * float64(time.Second))
	if step <= 0 {
		return fmt.Errorf("invalid step %v: must be positive", c.Step)
	}

	sc, err := OpenScene(fname)
	if err != nil {
		return err
	}
	pl := NewPlayer(sc, start, vopts)
	defer pl.Destroy()
	if err := pl.Apply(sc); err != nil {
		return err
	}
	rp := NewReporter(os.Stdout)

	if !c.Watch {
		for i := range c.Frames {
			rp.Frame(i, pl.Frame(start.Add(time.Duration(i)*step)))
		}
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	scenes, err := WatchScene(ctx, fname)
	if err != nil {
		return err
	}
	ticker := time.NewTicker(step)
	defer ticker.Stop()
	t := start
	for i := 0; ; i++ {
		rp.Frame(i, pl.Frame(t))
		t = t.Add(step)
		select {
		case <-ctx.Done():
			return nil
		case sc := <-scenes:
			errors.Log(pl.Apply(sc))
			rp.Reload(fname)
		case <-ticker.C:
		}
	}
}

// parseStart parses the start time as a date or in RFC 3339 format.
func parseStart(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid start time %q: use 2006-01-02 or RFC 3339", s)
	}
	return t, nil
}

// Player runs one visualizer per geometry kind over a collection
// of objects made from a scene, all drawing into one primitive collection.
type Player struct {
	Start       time.Time
	Objects     *dynamic.Collection
	Primitives  *render.Primitives
	Visualizers []*dynscene.Visualizer
}

// NewPlayer returns a new player with the given visualizer options.
func NewPlayer(sc *Scene, start time.Time, opts *dynscene.Options) *Player {
	pl := &Player{
		Start:      start,
		Objects:    dynamic.NewCollection(),
		Primitives: render.NewPrimitives(),
	}
	for _, kind := range geometry.KindsValues() {
		pl.Visualizers = append(pl.Visualizers, dynscene.NewVisualizer(kind, pl.Primitives, pl.Objects, opts))
	}
	return pl
}

// Apply makes the objects match the scene.
func (pl *Player) Apply(sc *Scene) error {
	return sc.Apply(pl.Objects, pl.Start)
}

// Frame updates all visualizers for time t and returns their stats.
func (pl *Player) Frame(t time.Time) []dynscene.Stats {
	pl.Primitives.ResetCounts()
	stats := make([]dynscene.Stats, len(pl.Visualizers))
	for i, vz := range pl.Visualizers {
		vz.Update(t)
		stats[i] = vz.Stats()
	}
	return stats
}

// Destroy destroys all visualizers.
func (pl *Player) Destroy() {
	for _, vz := range pl.Visualizers {
		vz.Destroy()
	}
}

// Reporter writes frame reports to a terminal.
type Reporter struct {
	out *termenv.Output
}

// NewReporter returns a new reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{out: termenv.NewOutput(w)}
}

// Frame reports the stats of frame i.
func (rp *Reporter) Frame(i int, stats []dynscene.Stats) {
	fmt.Fprintln(rp.out, rp.out.String(fmt.Sprintf("frame %d", i)).Bold())
	for _, st := range stats {
		if st.Drawn == 0 {
			continue
		}
		fmt.Fprintln(rp.out, "  "+st.String())
	}
}

// Reload reports that the scene file was reloaded.
func (rp *Reporter) Reload(fname string) {
	fmt.Fprintln(rp.out, rp.out.String("reloaded "+fname).Foreground(rp.out.Color("2")))
}

// WatchScene watches the scene file and sends the scene on the
// returned channel each time the file is written. Invalid scenes
// are logged and skipped. Watching stops when ctx is done.
func WatchScene(ctx context.Context, fname string) (<-chan *Scene, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// editors often replace the file, so the directory is watched
	if err := watcher.Add(filepath.Dir(fname)); err != nil {
		watcher.Close()
		return nil, err
	}
	abs := errors.Log1(filepath.Abs(fname))
	scenes := make(chan *Scene)
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if errors.Log1(filepath.Abs(event.Name)) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				sc, err := OpenScene(fname)
				if err != nil {
					slog.Error("dynscene: invalid scene", "file", fname, "err", err)
					continue
				}
				select {
				case scenes <- sc:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("dynscene: scene watcher error", "err", err)
			}
		}
	}()
	return scenes, nil
}
