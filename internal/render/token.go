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

// Package render turns edit operations into display tokens and shortens long unchanged spans.
package render

import "strings"

// Kind describes the role of a token.
type Kind uint8

const (
	Kept      Kind = iota // Display text of a single edit operation
	Delimiter             // Opening or closing marker around a changed region
	Start                 // Sentinel before the first token, never displayed
	End                   // Sentinel after the last token, never displayed
)

// Token is a piece of display text.
type Token struct {
	Kind Kind
	Text string
}

// Separators are the markers that enclose a changed region.
type Separators struct {
	Open, Close string
}

// Text concatenates the text of all tokens. Start and End carry no text.
func Text(ts []Token) string {
	var sb strings.Builder
	for _, t := range ts {
		switch t.Kind {
		case Kept, Delimiter:
			sb.WriteString(t.Text)
		}
	}
	return sb.String()
}
