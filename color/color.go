// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package color decorates text with ANSI escape sequences.
//
// Colors are applied with [Select Graphic Rendition parameters]. For example, Wrap("x", Red) is
// equivalent to the raw sequence "\033[31mx\033[0m".
//
// It's the responsibility of the caller to ensure that the terminal supports the sequences.
//
// [Select Graphic Rendition parameters]: https://en.wikipedia.org/wiki/ANSI_escape_code#SGR
package color

import (
	"fmt"
	"strings"
)

// Color is one of the eight standard terminal foreground colors.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Color
type Color int

const (
	Black Color = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

const reset = "\033[0m"

// Wrap surrounds s with the escape sequences that render it in color c.
func Wrap(s string, c Color) string {
	return SGR(30+int(c)) + s + reset
}

// SGR returns the escape sequence for the given Select Graphic Rendition parameters, e.g. SGR(1, 33)
// is bold yellow.
func SGR(params ...int) string {
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return sb.String()
}
