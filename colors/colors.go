// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

// Package colors is the spinner's styling palette: the 8 basic terminal
// colours plus arbitrary 24-bit colours, applied by a pure paint function.
// Styling is cosmetic, the zero [Color] paints nothing and is always safe.
package colors

import "github.com/fatih/color"

// Color selects the styling applied to a spinner's frames. The zero value
// means "no styling". Values are comparable and safe to copy.
type Color struct {
	set  bool
	rgb  bool
	attr color.Attribute
	r    uint8
	g    uint8
	b    uint8
}

var (
	Blue    = named(color.FgBlue)
	Green   = named(color.FgGreen)
	Red     = named(color.FgRed)
	Yellow  = named(color.FgYellow)
	Cyan    = named(color.FgCyan)
	White   = named(color.FgWhite)
	Black   = named(color.FgBlack)
	Magenta = named(color.FgMagenta)
)

func named(attr color.Attribute) Color {
	return Color{set: true, attr: attr}
}

// RGB is a 24-bit colour for terminals which support it.
func RGB(r, g, b uint8) Color {
	return Color{set: true, rgb: true, r: r, g: g, b: b}
}

// Paint styles s with c. The zero colour returns s unchanged. Whether the
// escape codes are actually emitted follows the usual tty and NO_COLOR
// detection of the underlying library.
func Paint(c Color, s string) string {
	if !c.set {
		return s
	}
	return c.fatih().Sprint(s)
}

// PaintBold is [Paint] with the bold attribute added, used for the fixed
// status glyphs.
func PaintBold(c Color, s string) string {
	if !c.set {
		return s
	}
	return c.fatih(color.Bold).Sprint(s)
}

func (c Color) fatih(extra ...color.Attribute) *color.Color {
	var out *color.Color
	if c.rgb {
		out = color.RGB(int(c.r), int(c.g), int(c.b))
	} else {
		out = color.New(c.attr)
	}
	return out.Add(extra...)
}
