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

import (
	"znkr.io/edits/color"
	"znkr.io/edits/internal/ops"
)

// Symbolic formats an edit with a prefix describing the operation: "+y" for an insertion, "-x" for
// a deletion, "~x/y" for a substitution and "x" for a kept element.
func Symbolic(e ops.Edit[rune]) string {
	switch e.Op {
	case ops.Insert:
		return "+" + string(e.Y)
	case ops.Delete:
		return "-" + string(e.X)
	case ops.Substitute:
		return "~" + string(e.X) + "/" + string(e.Y)
	default:
		return string(e.X)
	}
}

// Colored formats an edit with terminal colors: insertions are green, deletions red and
// substitutions show the new element in cyan. Kept elements are not decorated.
func Colored(e ops.Edit[rune]) string {
	switch e.Op {
	case ops.Insert:
		return color.Wrap(string(e.Y), color.Green)
	case ops.Delete:
		return color.Wrap(string(e.X), color.Red)
	case ops.Substitute:
		return color.Wrap(string(e.Y), color.Cyan)
	default:
		return string(e.X)
	}
}
