// Use of this source code is governed by a GPL-2 license that can be found in the LICENSE file.
//
// Copyright 2025 Lexer747
//
// SPDX-License-Identifier: GPL-2.0-only

package spindle

import "bytes"

// This file exposes internals for unit tests, these are not safe public API.

func Render(buf *bytes.Buffer, prevLen int, next string) int {
	return render(buf, prevLen, next)
}
