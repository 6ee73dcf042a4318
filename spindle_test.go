// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package spindle_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Lexer747/spindle"
	"github.com/Lexer747/spindle/colors"
	"github.com/Lexer747/spindle/frames"
	"github.com/Lexer747/spindle/th"
	"github.com/fatih/color"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

// quick is a frame set fast enough that joins never make a test slow.
func quick(f ...string) frames.FrameSet {
	return frames.New(f, time.Millisecond)
}

func TestStopRoundTrip(t *testing.T) {
	t.Parallel()
	sink := th.NewSink()
	s := spindle.NewCustomWithStream(quick("+"), "Loading...", colors.Color{}, spindle.Custom(sink))
	s.Stop()
	writes := sink.Writes()
	assert.Assert(t, len(writes) > 0)
	assert.Equal(t, "Loading...\n", writes[len(writes)-1])
	assert.Equal(t, "Loading...\n", sink.Visible())
}

func TestStopWithMessageOverridesMessage(t *testing.T) {
	t.Parallel()
	sink := th.NewSink()
	s := spindle.NewCustomWithStream(quick("+"), "Hello", colors.Color{}, spindle.Custom(sink))
	time.Sleep(5 * time.Millisecond)
	s.StopWithMessage("Bye")
	assert.Equal(t, "Bye\n", sink.Visible())
}

func TestStopAndPersistPizza(t *testing.T) {
	t.Parallel()
	sink := th.NewSink()
	fs := frames.New([]string{">", ">>", ">>>"}, time.Millisecond)
	s := spindle.NewCustomWithStream(fs, "Loading", colors.Color{}, spindle.Custom(sink))
	time.Sleep(25 * time.Millisecond)
	s.StopAndPersist("🍕", "Pizza!")
	// no leftover spinner characters, just the closing line
	assert.Equal(t, "🍕 Pizza!\n", sink.Visible())
}

func TestClearLeavesNothing(t *testing.T) {
	t.Parallel()
	sink := th.NewSink()
	s := spindle.NewCustomWithStream(quick("@"), "Clearing...", colors.Color{}, spindle.Custom(sink))
	time.Sleep(5 * time.Millisecond)
	s.Clear()
	assert.Equal(t, "", sink.Visible())
}

// Not parallel, flips the painter's global colour detection.
func TestSuccessIgnoresConfiguredColor(t *testing.T) {
	old := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = old })

	sink := th.NewSink()
	s := spindle.NewCustomWithStream(quick("+"), "working", colors.Red, spindle.Custom(sink))
	time.Sleep(5 * time.Millisecond)
	s.Success("Done")
	writes := sink.Writes()
	assert.Equal(t, "\x1b[32;1m✓\x1b[0;22m Done\n", writes[len(writes)-1])
}

func TestFailWritesCrossToCustomSink(t *testing.T) {
	t.Parallel()
	sink := th.NewSink()
	s := spindle.NewCustomWithStream(quick("+"), "Executing...", colors.Color{}, spindle.Custom(sink))
	s.Fail("Oops")
	writes := sink.Writes()
	last := writes[len(writes)-1]
	assert.Check(t, is.Contains(last, "✗"))
	assert.Check(t, is.Contains(last, "Oops\n"))
}

func TestWarnAndInfoGlyphs(t *testing.T) {
	t.Parallel()
	for glyph, finish := range map[string]func(*spindle.Spinner, string){
		"⚠": (*spindle.Spinner).Warn,
		"ℹ": (*spindle.Spinner).Info,
	} {
		sink := th.NewSink()
		s := spindle.NewCustomWithStream(quick("+"), "msg", colors.Color{}, spindle.Custom(sink))
		finish(s, "note")
		assert.Equal(t, glyph+" note\n", sink.Visible())
	}
}

func TestUpdateRestartsAtFrameZero(t *testing.T) {
	t.Parallel()
	sink := th.NewSink()
	a := quick("a1", "a2", "a3")
	b := quick("b1", "b2", "b3")
	s := spindle.NewCustomWithStream(a, "one", colors.Color{}, spindle.Custom(sink))
	time.Sleep(10 * time.Millisecond)
	s.UpdateCustom(b, "two", colors.Color{})
	time.Sleep(10 * time.Millisecond)
	s.Clear()

	first := ""
	for _, w := range sink.Writes() {
		if strings.Contains(w, "b") {
			first = w
			break
		}
	}
	assert.Assert(t, first != "", "the updated spinner never drew")
	assert.Check(t, is.Contains(first, "b1 two"))
}

func TestUpdateTextKeepsFrames(t *testing.T) {
	t.Parallel()
	sink := th.NewSink()
	s := spindle.NewCustomWithStream(quick("zz"), "before", colors.Color{}, spindle.Custom(sink))
	time.Sleep(5 * time.Millisecond)
	s.UpdateText("after")
	time.Sleep(10 * time.Millisecond)
	s.Clear()
	assert.Check(t, is.Contains(sink.String(), "zz after"))
}

func TestUpdateAfterTimeBlocksTheCaller(t *testing.T) {
	t.Parallel()
	sink := th.NewSink()
	s := spindle.NewCustomWithStream(quick("+"), "waiting", colors.Color{}, spindle.Custom(sink))
	const block = 30 * time.Millisecond
	start := time.Now()
	s.UpdateAfterTime("later", block)
	assert.Assert(t, time.Since(start) >= block)
	time.Sleep(5 * time.Millisecond)
	s.Clear()
	assert.Check(t, is.Contains(sink.String(), "later"))
}

func TestStopTwicePanics(t *testing.T) {
	t.Parallel()
	sink := th.NewSink()
	s := spindle.NewCustomWithStream(quick("+"), "once", colors.Color{}, spindle.Custom(sink))
	s.Clear()
	defer func() {
		assert.Assert(t, recover() != nil, "a second terminating call must not be a silent no-op")
	}()
	s.Stop()
}

func TestUpdateAfterStopPanics(t *testing.T) {
	t.Parallel()
	sink := th.NewSink()
	s := spindle.NewCustomWithStream(quick("+"), "once", colors.Color{}, spindle.Custom(sink))
	s.Stop()
	defer func() {
		assert.Assert(t, recover() != nil)
	}()
	s.UpdateText("too late")
}
