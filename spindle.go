// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// Package spindle draws an animated spinner on a single terminal line: a
// cycling glyph followed by a message, repainted in place until one of the
// terminating methods replaces it with a final status line.
//
//	sp := spindle.New(frames.Dots, "Loading...", colors.Blue)
//	// ... do the slow thing ...
//	sp.Success("Done!")
//
// A [Spinner] is backed by exactly one animation goroutine at a time. The
// Update methods swap the running animation for a fresh one with new
// content, the terminating methods (Stop, Success, Fail, ...) shut it down
// for good. Only one spinner should own the terminal at any moment, the
// package does not multiplex several animations onto the screen.
package spindle

import (
	"sync/atomic"
	"time"

	"github.com/Lexer747/spindle/colors"
	"github.com/Lexer747/spindle/frames"
	"github.com/Lexer747/spindle/utils/check"
)

// Spinner is a handle to a running terminal animation. All methods must be
// called from the goroutine which owns the handle, the spinner's own
// drawing happens on a background goroutine it manages itself.
//
// Exactly one terminating method may be called on a handle; any method
// call after that is a precondition violation and panics. A handle which
// is abandoned without a terminating call leaks its animation goroutine
// and keeps drawing forever.
type Spinner struct {
	// spinning is the only state shared with the animation goroutine,
	// true means keep drawing. A fresh flag is made for every spawned
	// loop so each one is stored false exactly once.
	spinning *atomic.Bool
	// done is closed by the animation goroutine after its final erase, it
	// doubles as the join handle. nil once the spinner is terminated.
	done chan struct{}

	msg    string
	frames frames.FrameSet
	stream Streams
	color  colors.Color
}

const (
	successGlyph = "✓" // ✓
	failGlyph    = "✗" // ✗
	warnGlyph    = "⚠" // ⚠
	infoGlyph    = "ℹ" // ℹ
)

// New creates a spinner from the named frame catalogue entry and starts
// animating on stdout immediately. An id not present in the catalogue is a
// configuration error and panics, see [frames.Lookup].
func New(id frames.ID, msg string, c colors.Color) *Spinner {
	return NewWithStream(id, msg, c, Stdout)
}

// NewWithStream is [New] drawing to the given stream instead of stdout.
func NewWithStream(id frames.ID, msg string, c colors.Color, stream Streams) *Spinner {
	return NewCustomWithStream(frames.Lookup(id), msg, c, stream)
}

// NewCustom creates a spinner from a caller-built [frames.FrameSet]
// instead of a catalogue entry.
//
//	fs := frames.New([]string{">", ">>", ">>>"}, 100*time.Millisecond)
//	sp := spindle.NewCustom(fs, "Loading...", colors.Color{})
func NewCustom(fs frames.FrameSet, msg string, c colors.Color) *Spinner {
	return NewCustomWithStream(fs, msg, c, Stdout)
}

// NewCustomWithStream is [NewCustom] drawing to the given stream.
func NewCustomWithStream(fs frames.FrameSet, msg string, c colors.Color, stream Streams) *Spinner {
	check.Check(len(fs.Frames) > 0, "spindle: frame set has no frames, build one with frames.New")
	s := &Spinner{
		msg:    msg,
		frames: fs,
		stream: stream,
		color:  c,
	}
	s.spawn()
	return s
}

// Update stops the current animation and restarts it with a new frame set,
// message and colour, on the same stream. The new animation begins at
// frame zero, no phase carries over from the old one.
func (s *Spinner) Update(id frames.ID, msg string, c colors.Color) {
	s.UpdateCustom(frames.Lookup(id), msg, c)
}

// UpdateCustom is [Update] for a caller-built frame set.
func (s *Spinner) UpdateCustom(fs frames.FrameSet, msg string, c colors.Color) {
	check.Check(len(fs.Frames) > 0, "spindle: frame set has no frames, build one with frames.New")
	s.join()
	s.frames, s.msg, s.color = fs, msg, c
	s.spawn()
}

// UpdateText swaps only the message, keeping the current frame set and
// colour.
func (s *Spinner) UpdateText(msg string) {
	s.join()
	s.msg = msg
	s.spawn()
}

// UpdateAfterTime blocks the calling goroutine for d, then behaves as
// [Spinner.UpdateText]. The animation keeps running while the caller
// sleeps.
func (s *Spinner) UpdateAfterTime(msg string, d time.Duration) {
	time.Sleep(d)
	s.UpdateText(msg)
}

// Stop terminates the spinner, leaving its current message behind as the
// final line.
func (s *Spinner) Stop() {
	s.join()
	s.println(s.stream, s.msg)
}

// StopWithMessage terminates the spinner, leaving msg behind as the final
// line instead of the spinner's own message.
func (s *Spinner) StopWithMessage(msg string) {
	s.join()
	s.println(s.stream, msg)
}

// StopAndPersist terminates the spinner, leaving an unstyled "symbol msg"
// line behind.
//
//	sp.StopAndPersist("🍕", "Pizza!")
func (s *Spinner) StopAndPersist(symbol, msg string) {
	s.join()
	s.println(s.stream, symbol+" "+msg)
}

// Success terminates the spinner with a bold green "✓ msg" line. The
// spinner's configured colour does not apply to the glyph.
func (s *Spinner) Success(msg string) {
	s.finish(s.stream, colors.Green, successGlyph, msg)
}

// Fail terminates the spinner with a bold red "✗ msg" line. Unlike the
// other terminating methods this writes to stderr, except for spinners on
// a [Custom] stream where the caller's sink captures everything.
func (s *Spinner) Fail(msg string) {
	s.finish(s.stream.errStream(), colors.Red, failGlyph, msg)
}

// Warn terminates the spinner with a bold yellow "⚠ msg" line.
func (s *Spinner) Warn(msg string) {
	s.finish(s.stream, colors.Yellow, warnGlyph, msg)
}

// Info terminates the spinner with a bold blue "ℹ msg" line.
func (s *Spinner) Info(msg string) {
	s.finish(s.stream, colors.Blue, infoGlyph, msg)
}

// Clear terminates the spinner leaving nothing behind, the animated line
// is erased and no status line is printed.
func (s *Spinner) Clear() {
	s.join()
}

func (s *Spinner) finish(stream Streams, c colors.Color, glyph, msg string) {
	s.join()
	s.println(stream, colors.PaintBold(c, glyph)+" "+msg)
}

// spawn starts a new animation goroutine for the handle's current content.
// Callers must have joined the previous goroutine first.
func (s *Spinner) spawn() {
	s.spinning = &atomic.Bool{}
	s.spinning.Store(true)
	s.done = make(chan struct{})
	go animate(s.spinning, s.done, s.frames, s.msg, s.color, s.stream)
}

// join signals the animation goroutine to stop and blocks until it has
// written its final erase and exited. This takes at worst one frame
// interval plus one write, or forever if the stream blocks.
func (s *Spinner) join() {
	check.Check(s.done != nil, "spindle: spinner used after it was stopped")
	s.spinning.Store(false)
	<-s.done
	s.done = nil
}
