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

package render

import "znkr.io/edits/internal/ops"

// Render converts edit operations into tokens. Every maximal run of changes is enclosed in
// seps.Open and seps.Close. The text of each operation is produced by format.
func Render[T any](es []ops.Edit[T], seps Separators, format func(ops.Edit[T]) string) []Token {
	out := make([]Token, 0, len(es)+2)
	changed := false // inside a changed region
	for _, e := range es {
		switch {
		case e.Changed() && !changed:
			out = append(out, Token{Delimiter, seps.Open})
			changed = true
		case !e.Changed() && changed:
			out = append(out, Token{Delimiter, seps.Close})
			changed = false
		}
		out = append(out, Token{Kept, format(e)})
	}
	if changed {
		out = append(out, Token{Delimiter, seps.Close})
	}
	return out
}
