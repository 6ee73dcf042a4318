// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// th stands for "test helper"
package th

import (
	"strings"
	"sync"
)

// Sink is an in-memory stand-in for the terminal stream a spinner draws
// to. Every Write call is recorded as its own entry so tests can assert
// on the exact byte sequences and their order, not just the concatenated
// output. Safe for use from the animation goroutine and the test at once.
type Sink struct {
	mu     sync.Mutex
	writes []string
}

func NewSink() *Sink {
	return &Sink{}
}

func (s *Sink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes = append(s.writes, string(p))
	return len(p), nil
}

// Writes returns a copy of every write made so far, in order.
func (s *Sink) Writes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.writes))
	copy(out, s.writes)
	return out
}

// String is everything written so far, concatenated.
func (s *Sink) String() string {
	return strings.Join(s.Writes(), "")
}

// Visible replays everything written so far with carriage-return
// semantics and returns what a terminal would show: '\r' moves the
// cursor back to column one so later runes overwrite earlier ones, '\n'
// commits the current line. Trailing blanks left by an erase pass are
// trimmed, a terminal shows nothing there either.
func (s *Sink) Visible() string {
	var b strings.Builder
	line := []rune{}
	col := 0
	flush := func() {
		b.WriteString(strings.TrimRight(string(line), " "))
		line = line[:0]
		col = 0
	}
	for _, r := range s.String() {
		switch r {
		case '\r':
			col = 0
		case '\n':
			flush()
			b.WriteByte('\n')
		default:
			if col < len(line) {
				line[col] = r
			} else {
				line = append(line, r)
			}
			col++
		}
	}
	flush()
	return b.String()
}
