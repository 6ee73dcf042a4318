// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package spindle_test

import (
	"bufio"
	"os"
	"testing"
	"time"

	"github.com/Lexer747/spindle"
	"github.com/Lexer747/spindle/colors"
	"github.com/Lexer747/spindle/th"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestStreamResolution(t *testing.T) {
	t.Parallel()
	assert.Equal(t, os.Stdout, spindle.Stdout.Writer())
	assert.Equal(t, os.Stderr, spindle.Stderr.Writer())
	sink := th.NewSink()
	var w = spindle.Custom(sink).Writer()
	assert.Equal(t, sink, w)
	// The zero value draws to stdout, the documented default.
	assert.Equal(t, os.Stdout, spindle.Streams{}.Writer())
}

func TestCustomStreamIsNeverATerminal(t *testing.T) {
	t.Parallel()
	assert.Check(t, !spindle.Custom(th.NewSink()).IsTerminal())
}

func TestCustomNilWriterPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		assert.Assert(t, recover() != nil)
	}()
	spindle.Custom(nil)
}

func TestBufferedSinksAreFlushedEveryWrite(t *testing.T) {
	t.Parallel()
	sink := th.NewSink()
	// Large enough that nothing would reach the sink without the flush.
	buffered := bufio.NewWriterSize(sink, 1<<20)
	s := spindle.NewCustomWithStream(quick("~"), "buffered", colors.Color{}, spindle.Custom(buffered))
	time.Sleep(10 * time.Millisecond)
	s.Clear()
	assert.Check(t, is.Contains(sink.String(), "~ buffered"))
	assert.Equal(t, "", sink.Visible())
}
