// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package frames

import "time"

// The catalogue ids. Frame data and intervals follow the well known
// cli-spinners sets.
const (
	Aesthetic      ID = "aesthetic"
	Arc            ID = "arc"
	Arrow          ID = "arrow"
	Balloon        ID = "balloon"
	Balloon2       ID = "balloon2"
	Binary         ID = "binary"
	Bounce         ID = "bounce"
	BouncingBall   ID = "bouncingBall"
	BouncingBar    ID = "bouncingBar"
	BoxBounce      ID = "boxBounce"
	Circle         ID = "circle"
	CircleHalves   ID = "circleHalves"
	CircleQuarters ID = "circleQuarters"
	Clock          ID = "clock"
	Dots           ID = "dots"
	Dots2          ID = "dots2"
	Dots3          ID = "dots3"
	Dots4          ID = "dots4"
	Dots8          ID = "dots8"
	Dots9          ID = "dots9"
	Earth          ID = "earth"
	Flip           ID = "flip"
	GrowHorizontal ID = "growHorizontal"
	GrowVertical   ID = "growVertical"
	Hamburger      ID = "hamburger"
	Line           ID = "line"
	Material       ID = "material"
	Mindblown      ID = "mindblown"
	Moon           ID = "moon"
	Noise          ID = "noise"
	Pipe           ID = "pipe"
	SimpleDots     ID = "simpleDots"
	SquareCorners  ID = "squareCorners"
	Star           ID = "star"
	Toggle         ID = "toggle"
	Triangle       ID = "triangle"
)

var catalog = map[ID]FrameSet{
	Aesthetic: New([]string{
		"▰▱▱▱▱▱▱", "▰▰▱▱▱▱▱", "▰▰▰▱▱▱▱", "▰▰▰▰▱▱▱", "▰▰▰▰▰▱▱", "▰▰▰▰▰▰▱", "▰▰▰▰▰▰▰", "▱▱▱▱▱▱▱",
	}, 80*time.Millisecond),
	Arc:   New([]string{"◜", "◠", "◝", "◞", "◡", "◟"}, 100*time.Millisecond),
	Arrow: New([]string{"←", "↖", "↑", "↗", "→", "↘", "↓", "↙"}, 100*time.Millisecond),
	Balloon: New([]string{
		" ", ".", "o", "O", "@", "*", " ",
	}, 140*time.Millisecond),
	Balloon2: New([]string{
		".", "o", "O", "°", "O", "o", ".",
	}, 120*time.Millisecond),
	Binary: New([]string{
		"010010", "001100", "100101", "111010", "111101", "010111", "101011", "111000", "110011", "110101",
	}, 80*time.Millisecond),
	Bounce: New([]string{"⠁", "⠂", "⠄", "⠂"}, 120*time.Millisecond),
	BouncingBall: New([]string{
		"( ●    )", "(  ●   )", "(   ●  )", "(    ● )", "(     ●)",
		"(    ● )", "(   ●  )", "(  ●   )", "( ●    )", "(●     )",
	}, 80*time.Millisecond),
	BouncingBar: New([]string{
		"[    ]", "[=   ]", "[==  ]", "[=== ]", "[ ===]", "[  ==]", "[   =]", "[    ]",
		"[   =]", "[  ==]", "[ ===]", "[====]", "[=== ]", "[==  ]", "[=   ]",
	}, 80*time.Millisecond),
	BoxBounce:      New([]string{"▖", "▘", "▝", "▗"}, 120*time.Millisecond),
	Circle:         New([]string{"◡", "⊙", "◠"}, 120*time.Millisecond),
	CircleHalves:   New([]string{"◐", "◓", "◑", "◒"}, 50*time.Millisecond),
	CircleQuarters: New([]string{"◴", "◷", "◶", "◵"}, 120*time.Millisecond),
	Clock: New([]string{
		"🕛", "🕐", "🕑", "🕒", "🕓", "🕔", "🕕", "🕖", "🕗", "🕘", "🕙", "🕚",
	}, 100*time.Millisecond),
	Dots:  New([]string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}, 80*time.Millisecond),
	Dots2: New([]string{"⣾", "⣽", "⣻", "⢿", "⡿", "⣟", "⣯", "⣷"}, 80*time.Millisecond),
	Dots3: New([]string{"⠋", "⠙", "⠚", "⠞", "⠖", "⠦", "⠴", "⠲", "⠳", "⠓"}, 80*time.Millisecond),
	Dots4: New([]string{
		"⠄", "⠆", "⠇", "⠋", "⠙", "⠸", "⠰", "⠠", "⠰", "⠸", "⠙", "⠋", "⠇", "⠆",
	}, 80*time.Millisecond),
	Dots8: New([]string{
		"⠁", "⠁", "⠉", "⠙", "⠚", "⠒", "⠂", "⠂", "⠒", "⠲", "⠴", "⠤", "⠄", "⠄",
		"⠤", "⠠", "⠠", "⠤", "⠦", "⠖", "⠒", "⠐", "⠐", "⠒", "⠓", "⠋", "⠉", "⠈", "⠈",
	}, 80*time.Millisecond),
	Dots9: New([]string{"⢹", "⢺", "⢼", "⣸", "⣇", "⡧", "⡗", "⡏"}, 80*time.Millisecond),
	Earth: New([]string{"🌍", "🌎", "🌏"}, 180*time.Millisecond),
	Flip: New([]string{
		"_", "_", "_", "-", "`", "`", "'", "´", "-", "_", "_", "_",
	}, 70*time.Millisecond),
	GrowHorizontal: New([]string{
		"▏", "▎", "▍", "▌", "▋", "▊", "▉", "▊", "▋", "▌", "▍", "▎",
	}, 120*time.Millisecond),
	GrowVertical: New([]string{
		"▁", "▃", "▄", "▅", "▆", "▇", "▆", "▅", "▄", "▃",
	}, 120*time.Millisecond),
	Hamburger: New([]string{"☱", "☲", "☴"}, 100*time.Millisecond),
	Line:      New([]string{"-", "\\", "|", "/"}, 130*time.Millisecond),
	Material: New([]string{
		"█▁▁▁▁▁▁", "██▁▁▁▁▁", "███▁▁▁▁", "████▁▁▁", "█████▁▁", "██████▁", "███████",
		"▁██████", "▁▁█████", "▁▁▁████", "▁▁▁▁███", "▁▁▁▁▁██", "▁▁▁▁▁▁█", "▁▁▁▁▁▁▁",
	}, 80*time.Millisecond),
	Mindblown: New([]string{
		"😐", "😐", "😮", "😮", "😦", "😦", "😧", "😧", "🤯", "💥", "✨", "　", "　",
	}, 160*time.Millisecond),
	Moon: New([]string{
		"🌑", "🌒", "🌓", "🌔", "🌕", "🌖", "🌗", "🌘",
	}, 80*time.Millisecond),
	Noise: New([]string{"▓", "▒", "░"}, 100*time.Millisecond),
	Pipe: New([]string{
		"┤", "┘", "┴", "└", "├", "┌", "┬", "┐",
	}, 100*time.Millisecond),
	SimpleDots: New([]string{
		".  ", ".. ", "...", "   ",
	}, 400*time.Millisecond),
	SquareCorners: New([]string{"◰", "◳", "◲", "◱"}, 180*time.Millisecond),
	Star:          New([]string{"✶", "✸", "✹", "✺", "✹", "✷"}, 70*time.Millisecond),
	Toggle:        New([]string{"⊶", "⊷"}, 250*time.Millisecond),
	Triangle:      New([]string{"◢", "◣", "◤", "◥"}, 50*time.Millisecond),
}
