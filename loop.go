// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package spindle

import (
	"bytes"
	"sync/atomic"
	"time"

	"github.com/Lexer747/spindle/colors"
	"github.com/Lexer747/spindle/frames"

	"github.com/mattn/go-runewidth"
)

// animate is the spinner's animation loop, run on its own goroutine. It
// owns the terminal line until [spinning] reads false, then writes one
// final erase, closes [done] and exits. Nothing is written after the
// cancellation is observed except that single erase.
//
// A write failure is unrecoverable, the loop panics with the wrapped
// error, there is no line left worth salvaging on a broken stream.
func animate(
	spinning *atomic.Bool,
	done chan<- struct{},
	fs frames.FrameSet,
	msg string,
	c colors.Color,
	stream Streams,
) {
	defer close(done)
	// One buffer reused for the whole loop keeps the per-frame allocation
	// down to whatever the painter needs.
	buf := &bytes.Buffer{}
	prev := 0
	for i := 0; spinning.Load(); i = (i + 1) % len(fs.Frames) {
		frame := runewidth.FillRight(fs.Frames[i], fs.Width())
		prev = render(buf, prev, colors.Paint(c, frame)+" "+msg)
		if err := write(stream, buf.Bytes()); err != nil {
			panic(err)
		}
		time.Sleep(fs.Interval)
	}
	render(buf, prev, "")
	if err := write(stream, buf.Bytes()); err != nil {
		panic(err)
	}
}

// render fills buf with one in-place line update: return the cursor to
// column one, blank out everything the previous call drew, return again,
// then draw the new content. The returned length is the byte count of
// [next] which the next call must blank, bytes not runes so that
// multi-byte glyphs are fully overwritten.
func render(buf *bytes.Buffer, prevLen int, next string) int {
	buf.Reset()
	buf.WriteByte('\r')
	for i := 0; i < prevLen; i++ {
		buf.WriteByte(' ')
	}
	buf.WriteByte('\r')
	buf.WriteString(next)
	return len(next)
}
