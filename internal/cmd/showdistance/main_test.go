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

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadProfile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    profile
		wantErr bool
	}{
		{
			name:    "empty",
			content: "",
			want:    defaultProfile,
		},
		{
			name:    "partial",
			content: "context = 5\nseparators = \"()\"\n",
			want: profile{
				Split:      defaultProfile.Split,
				Context:    5,
				Ellipsis:   defaultProfile.Ellipsis,
				Separators: "()",
				Color:      defaultProfile.Color,
				Parallel:   defaultProfile.Parallel,
			},
		},
		{
			name:    "everything",
			content: "split = 10\ncontext = -1\nellipsis = \"…\"\nseparators = \"<<,>>\"\ncolor = \"never\"\nparallel = 4\n",
			want:    profile{Split: 10, Context: -1, Ellipsis: "…", Separators: "<<,>>", Color: "never", Parallel: 4},
		},
		{
			name:    "unknown",
			content: "colour = \"never\"\n",
			wantErr: true,
		},
		{
			name:    "invalid",
			content: "split = \"ten\"\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filename := filepath.Join(t.TempDir(), "showdistance.toml")
			if err := os.WriteFile(filename, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			got, err := loadProfile(filename)
			if (err != nil) != tt.wantErr {
				t.Fatalf("loadProfile(...) returned error %v, want error: %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("loadProfile(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	p := defaultProfile
	p.Context = 3
	p.Color = "always"
	file := profile{Split: 10, Context: 7, Ellipsis: "~", Separators: "()", Color: "never", Parallel: 2}
	merge(&p, file, func(name string) bool { return name == "context" || name == "color" })

	want := profile{Split: 10, Context: 3, Ellipsis: "~", Separators: "()", Color: "always", Parallel: 2}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Errorf("merge(...) result is different [-want,+got]:\n%s", diff)
	}
}

func TestParseSeparators(t *testing.T) {
	tests := []struct {
		in          string
		open, close string
		wantErr     bool
	}{
		{in: "[]", open: "[", close: "]"},
		{in: "«»", open: "«", close: "»"},
		{in: "<<,>>", open: "<<", close: ">>"},
		{in: ",", open: "", close: ""},
		{in: "||", open: "|", close: "|"},
		{in: "[", wantErr: true},
		{in: "[[]]", wantErr: true},
	}
	for _, tt := range tests {
		open, close, err := parseSeparators(tt.in)
		if tt.wantErr {
			if !errors.Is(err, errSeparators) {
				t.Errorf("parseSeparators(%q) returned error %v, want %v", tt.in, err, errSeparators)
			}
			continue
		}
		if err != nil || open != tt.open || close != tt.close {
			t.Errorf("parseSeparators(%q) = %q, %q, %v, want %q, %q", tt.in, open, close, err, tt.open, tt.close)
		}
	}
}

func TestOptions(t *testing.T) {
	p := defaultProfile
	p.Color = "rainbow"
	if _, err := p.options(false); err == nil {
		t.Error("options() accepted an invalid color setting")
	}
	p.Color = "never"
	p.Separators = "((("
	if _, err := p.options(false); !errors.Is(err, errSeparators) {
		t.Errorf("options() returned error %v, want %v", err, errSeparators)
	}
}

func TestCommand(t *testing.T) {
	dir := t.TempDir()
	fx, fy := filepath.Join(dir, "x.txt"), filepath.Join(dir, "y.txt")
	if err := os.WriteFile(fx, []byte("first line\nkitten\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fy, []byte("first line\nsitting\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := filepath.Join(dir, "profile.toml")
	if err := os.WriteFile(cfg, []byte("separators = \"()\"\ncontext = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		args    []string
		want    string
		wantErr bool
	}{
		{
			name: "text",
			args: []string{"--text", "kitten", "kitsin"},
			want: "kit[~t/s~e/i]n\n",
		},
		{
			name: "files",
			args: []string{fx, fy},
			want: "first line\n[~k/s]itt[~e/i]n[+g]\n",
		},
		{
			name: "flags",
			args: []string{"--text", "--separators", "<<,>>", "--context", "1", "--ellipsis", "_", "abcdef", "abXdef"},
			want: "_b<<~c/X>>d_\n",
		},
		{
			name: "config",
			args: []string{"--config", cfg, "--text", "abcdef", "abXdef"},
			want: "ab(~c/X)de...\n",
		},
		{
			name: "config-overridden",
			args: []string{"--config", cfg, "--context", "-1", "--text", "abcdef", "abXdef"},
			want: "ab(~c/X)def\n",
		},
		{
			name: "color",
			args: []string{"--color", "always", "--text", "k", "l"},
			want: "[\033[36ml\033[0m]\n",
		},
		{
			name: "validate",
			args: []string{"--validate", "--split", "2", fx, fy},
			want: "first line\n[~k/s]itt[~e/i]n[+g]\n",
		},
		{
			name: "matrix",
			args: []string{"--matrix", "--text", "ab", "a"},
			want: "chunk 0: \"ab\" -> \"a\" (distance 1)\n+ 0 | + 1\n- 1 | o 0\n- 2 | - 1\n",
		},
		{
			name:    "mismatch",
			args:    []string{"--text", "a\nb", "a"},
			wantErr: true,
		},
		{
			name:    "missing-file",
			args:    []string{filepath.Join(dir, "missing.txt"), fy},
			wantErr: true,
		},
		{
			name:    "args",
			args:    []string{"--text", "a"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			cmd := newCommand()
			cmd.SetArgs(tt.args)
			cmd.SetOut(&out)
			cmd.SetErr(&out)
			err := cmd.Execute()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() returned error %v, want error: %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, out.String()); diff != "" {
				t.Errorf("Execute() output is different [-want,+got]:\n%s", diff)
			}
		})
	}
}
