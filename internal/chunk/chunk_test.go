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

package chunk

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// pair is a string representation of Pair that makes test cases easier to read.
type pair struct {
	X, Y string
	EOL  bool
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		x, y string
		size int
		want []pair
	}{
		{
			name: "empty",
			size: 5,
			want: []pair{{"", "", false}},
		},
		{
			name: "short",
			x:    "kitten",
			y:    "sitting",
			size: 200,
			want: []pair{{"kitten", "sitting", false}},
		},
		{
			name: "split-to-size",
			x:    "abcdefghij",
			y:    "abcdefghij",
			size: 5,
			want: []pair{{"abcde", "abcde", false}, {"fghij", "fghij", false}},
		},
		{
			name: "padded",
			x:    "abcdefghijk",
			y:    "abc",
			size: 5,
			want: []pair{{"abcde", "abc", false}, {"fghij", "", false}, {"k", "", false}},
		},
		{
			name: "lines",
			x:    "ab\ncd\n",
			y:    "ab\nce\n",
			size: 5,
			want: []pair{{"ab", "ab", true}, {"cd", "ce", true}, {"", "", false}},
		},
		{
			name: "lines-and-pieces",
			x:    "abcdefg\nh",
			y:    "abc\nhij",
			size: 3,
			want: []pair{{"abc", "abc", false}, {"def", "", false}, {"g", "", true}, {"h", "hij", false}},
		},
		{
			name: "code-points",
			x:    "äöüß",
			y:    "aöuß",
			size: 2,
			want: []pair{{"äö", "aö", false}, {"üß", "uß", false}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pairs, err := Split(tt.x, tt.y, tt.size)
			if err != nil {
				t.Fatalf("Split(...) failed: %v", err)
			}
			var got []pair
			for _, p := range pairs {
				got = append(got, pair{string(p.X), string(p.Y), p.EOL})
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Split(%q, %q, %v) result is different [-want,+got]:\n%s", tt.x, tt.y, tt.size, diff)
			}
		})
	}
}

func TestSplitMismatch(t *testing.T) {
	_, err := Split("a\nb", "a", 10)
	if !errors.Is(err, ErrMismatch) {
		t.Errorf("Split(...) error = %v, want %v", err, ErrMismatch)
	}
}

func TestSplitLargeInput(t *testing.T) {
	x := make([]rune, 10_000)
	for i := range x {
		x[i] = 'a'
	}
	pairs, err := Split(string(x), "", 200)
	if err != nil {
		t.Fatalf("Split(...) failed: %v", err)
	}
	if len(pairs) != 50 {
		t.Errorf("Split(...) returned %v pairs, want 50", len(pairs))
	}
	for _, p := range pairs {
		if len(p.X) > 200 || len(p.Y) != 0 {
			t.Fatalf("Split(...) returned pair with sizes %v and %v", len(p.X), len(p.Y))
		}
	}
}
