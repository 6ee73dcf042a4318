// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// Package frames holds the spinner animation data: an ordered, cyclic
// sequence of glyph strings plus the interval to wait between them. A
// catalogue of named sets ships with the package, custom sets are built
// with [New].
package frames

import (
	"slices"
	"time"

	"github.com/Lexer747/spindle/utils/check"

	"github.com/mattn/go-runewidth"
	"golang.org/x/exp/maps"
)

// FrameSet is one spinner style: the frames drawn in order (cycling back
// to the first after the last) and the pause between two frames. Build
// with [New] or [Lookup], the zero value is not a usable set.
type FrameSet struct {
	Frames   []string
	Interval time.Duration

	width int
}

// New builds a custom frame set.
//
//	fs := frames.New([]string{">", ">>", ">>>"}, 100*time.Millisecond)
//
// An empty frame list, an empty frame, or a non-positive interval is a
// configuration error and panics, a spinner can't animate nothing.
func New(f []string, interval time.Duration) FrameSet {
	check.Check(len(f) > 0, "frames: a frame set needs at least one frame")
	check.Checkf(interval > 0, "frames: interval must be positive, got %v", interval)
	width := 0
	for i, frame := range f {
		check.Checkf(frame != "", "frames: frame %d is empty", i)
		if w := runewidth.StringWidth(frame); w > width {
			width = w
		}
	}
	return FrameSet{Frames: slices.Clone(f), Interval: interval, width: width}
}

// Width is the display-cell width of the widest frame in the set. Drawing
// code pads narrower frames up to this so the message column doesn't
// wobble while mixed-width sets animate.
func (fs FrameSet) Width() int {
	return fs.width
}

// ID names a catalogue entry.
type ID string

// Lookup resolves a catalogue id. It is infallible for every ID constant
// this package exports; an unknown id is a configuration error and
// panics rather than silently substituting a default set.
func Lookup(id ID) FrameSet {
	fs, ok := catalog[id]
	check.Checkf(ok, "frames: unknown spinner %q, see frames.Names() for the catalogue", string(id))
	return fs
}

// Names lists every catalogue id, sorted.
func Names() []ID {
	ids := maps.Keys(catalog)
	slices.Sort(ids)
	return ids
}
