// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package spindle

import (
	"io"
	"os"

	"github.com/Lexer747/spindle/utils/check"
	"github.com/Lexer747/spindle/utils/errors"

	"golang.org/x/term"
)

// Streams selects where a spinner draws. The zero value is [Stdout]. A
// selector is carried across Update calls so a respawned animation keeps
// writing to the same destination.
type Streams struct {
	kind streamKind
	w    io.Writer
}

type streamKind int

const (
	streamStdout streamKind = iota
	streamStderr
	streamCustom
)

// Stdout draws to standard output, the default.
var Stdout = Streams{kind: streamStdout}

// Stderr draws to standard error.
var Stderr = Streams{kind: streamStderr}

// Custom draws to a caller-supplied sink. If the sink implements
// `Flush() error` (e.g. a [bufio.Writer]) it is flushed after every
// write. A nil writer panics.
func Custom(w io.Writer) Streams {
	check.Check(w != nil, "spindle: custom stream needs a non-nil writer")
	return Streams{kind: streamCustom, w: w}
}

// Writer resolves the selector to the concrete destination.
func (s Streams) Writer() io.Writer {
	switch s.kind {
	case streamStderr:
		return os.Stderr
	case streamCustom:
		return s.w
	default:
		return os.Stdout
	}
}

// IsTerminal reports whether the selected destination is attached to an
// interactive terminal. [Custom] sinks never are.
func (s Streams) IsTerminal() bool {
	switch s.kind {
	case streamStdout:
		return term.IsTerminal(int(os.Stdout.Fd()))
	case streamStderr:
		return term.IsTerminal(int(os.Stderr.Fd()))
	default:
		return false
	}
}

// errStream is where failure lines go: stderr, unless the caller supplied
// their own sink in which case that sink already captures everything.
func (s Streams) errStream() Streams {
	if s.kind == streamCustom {
		return s
	}
	return Stderr
}

type flusher interface {
	Flush() error
}

func write(s Streams, b []byte) error {
	w := s.Writer()
	if _, err := w.Write(b); err != nil {
		return errors.Wrap(err, "failed to write to spinner stream")
	}
	if f, ok := w.(flusher); ok {
		return errors.Wrap(f.Flush(), "failed to flush spinner stream")
	}
	return nil
}

// println writes the closing status line. Failing to write it is as fatal
// as a failed frame, see [animate].
func (s *Spinner) println(stream Streams, line string) {
	if err := write(stream, []byte(line+"\n")); err != nil {
		panic(err)
	}
}
