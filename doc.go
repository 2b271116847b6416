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

// Package edits computes the edit distance between two sequences and shows the differences inline.
//
// The main functions are [ShowDistance], which annotates the changes that transform one text into
// another, and [Edits], which returns every individual edit operation. The edit distance is the
// Levenshtein distance: the minimal number of insertions, deletions and substitutions.
//
//	edits.ShowDistance("kitten", "kittein") // "kitte[+i]n"
//	edits.ShowDistance("kitten", "kit")     // "kit[-t-e-n]"
//	edits.ShowDistance("kitten", "kitsin")  // "kit[~t/s~e/i]n"
//
// Texts are compared line by line and long lines are compared in pieces of a maximum size (200
// characters by default, see [SplitSize]). Unchanged text far away from a change is elided (see
// [Elide]).
//
// Performance: Time and space complexity are O(N·M) per compared piece, where N and M are the
// lengths of the pieces. Comparisons operate on code points, not on grapheme clusters.
package edits
