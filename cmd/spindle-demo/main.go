// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/Lexer747/spindle"
	"github.com/Lexer747/spindle/colors"
	"github.com/Lexer747/spindle/frames"
	"github.com/Lexer747/spindle/utils/exit"
)

var (
	demo      = flag.String("demo", "simple", "which demo to run, one of: simple, stream, persist, update, after, all")
	spinnerID = flag.String("spinner", string(frames.Dots), "catalogue id of the spinner to use (try -demo all to see them)")
	logfile   = flag.String("l", "", "write debug logs to `file`")
)

func main() {
	flag.Usage = func() {
		w := flag.CommandLine.Output()
		fmt.Fprintf(w, "Usage of %s: showcases the spindle spinner library\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	closeLogs := setupLogging(*logfile)
	defer closeLogs()

	id := frames.ID(*spinnerID)
	switch *demo {
	case "simple":
		simple(id)
	case "stream":
		stream(id)
	case "persist":
		persist(id)
	case "update":
		update(id)
	case "after":
		after(id)
	case "all":
		all()
	default:
		fmt.Fprintf(os.Stderr, "Unknown demo %q, use -h/--help to print usage instructions.\n", *demo)
		exit.Silent()
	}
	exit.Success()
}

func simple(id frames.ID) {
	sp := spindle.New(id, "Loading...", colors.Blue)
	time.Sleep(3 * time.Second)
	sp.Success("Done!")
}

func stream(id frames.ID) {
	sp := spindle.NewWithStream(id, "Loading in stderr...", colors.Yellow, spindle.Stderr)
	time.Sleep(3 * time.Second)
	sp.Success("Done!")
}

func persist(id frames.ID) {
	sp := spindle.New(id, "Loading...", colors.Blue)
	time.Sleep(3 * time.Second)
	sp.StopAndPersist("🍕", "Pizza!")
}

func update(id frames.ID) {
	sp := spindle.New(id, "Loading...", colors.Magenta)
	time.Sleep(2 * time.Second)
	sp.UpdateText("Not quite finished...")
	time.Sleep(2 * time.Second)
	sp.Update(frames.Arc, "Almost done...", colors.Cyan)
	time.Sleep(2 * time.Second)
	sp.Success("Done!")
}

func after(id frames.ID) {
	sp := spindle.New(id, "Loading...", colors.Blue)
	sp.UpdateAfterTime("Not done yet...", 2*time.Second)
	time.Sleep(2 * time.Second)
	sp.Success("Done!")
}

func all() {
	for _, id := range frames.Names() {
		slog.Debug("demoing spinner", "id", id)
		sp := spindle.New(id, string(id), colors.Green)
		time.Sleep(time.Second)
		sp.Clear()
		fmt.Println(id)
	}
}

func setupLogging(file string) func() {
	if file != "" {
		f, err := os.Create(file)
		exit.OnErrorMsg(err, "failed to create log file")
		h := slog.NewTextHandler(f, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		slog.SetDefault(slog.New(h))
		slog.Debug("Logging started", "file", file)
		return func() {
			slog.Debug("Logging finished, closing", "file", file)
			exit.OnError(f.Close())
		}
	}
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.LevelError,
	})
	slog.SetDefault(slog.New(h))
	return func() {}
}
