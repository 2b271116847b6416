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

// Command showdistance prints the edits between two texts.
//
// Usage:
//
//	showdistance [flags] FILE1 FILE2
//	showdistance [flags] --text STRING1 STRING2
package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"znkr.io/edits"
	"znkr.io/edits/cost"
	"znkr.io/edits/internal/align"
	"znkr.io/edits/internal/chunk"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	p := defaultProfile
	var (
		text     bool
		matrix   bool
		validate bool
		verbose  bool
		config   string
	)

	cmd := &cobra.Command{
		Use:           "showdistance [flags] FILE1 FILE2",
		Short:         "Show the Levenshtein edits between two texts",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			if config != "" {
				file, err := loadProfile(config)
				if err != nil {
					return err
				}
				merge(&p, file, cmd.Flags().Changed)
				logrus.Debugf("loaded config %s: %+v", config, p)
			}

			x, y, err := inputs(args, text)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if matrix {
				return printMatrix(out, x, y, p.Split)
			}
			if validate {
				if err := roundTrip(x, y, p.Split); err != nil {
					return err
				}
			}

			opts, err := p.options(isTerminal(out))
			if err != nil {
				return err
			}
			start := time.Now()
			res, err := edits.Compare(x, y, opts...)
			if err != nil {
				return err
			}
			logrus.Debugf("compared %d and %d characters in %v", len([]rune(x)), len([]rune(y)), time.Since(start))

			if len(res) == 0 || res[len(res)-1] != '\n' {
				res += "\n"
			}
			_, err = io.WriteString(out, res)
			return err
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&text, "text", false, "compare the arguments instead of the files they name")
	flags.IntVar(&p.Split, "split", p.Split, "maximum number of characters compared at once")
	flags.IntVar(&p.Context, "context", p.Context, "unchanged characters shown around changes, negative to show everything")
	flags.StringVar(&p.Ellipsis, "ellipsis", p.Ellipsis, "replacement for elided text")
	flags.StringVar(&p.Separators, "separators", p.Separators, `markers around changes, two characters or "open,close"`)
	flags.StringVar(&p.Color, "color", p.Color, "use colors: auto, always or never")
	flags.IntVar(&p.Parallel, "parallel", p.Parallel, "number of chunks compared concurrently")
	flags.BoolVar(&matrix, "matrix", false, "print the alignment matrix of every chunk instead of the edits")
	flags.BoolVar(&validate, "validate", false, "check that the edits transform the first text into the second")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")
	flags.StringVar(&config, "config", "", "TOML file with default settings")
	return cmd
}

// inputs returns the texts to compare, either the arguments themselves or the contents of the
// files they name.
func inputs(args []string, text bool) (x, y string, err error) {
	if text {
		return args[0], args[1], nil
	}
	bx, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("reading input: %v", err)
	}
	by, err := os.ReadFile(args[1])
	if err != nil {
		return "", "", fmt.Errorf("reading input: %v", err)
	}
	return string(bx), string(by), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// printMatrix prints the alignment matrix for every chunk of x and y.
func printMatrix(w io.Writer, x, y string, split int) error {
	pairs, err := chunk.Split(x, y, max(1, split))
	if err != nil {
		return err
	}
	for i, p := range pairs {
		mat := align.Build(p.X, p.Y, cost.Levenshtein[rune]{})
		fmt.Fprintf(w, "chunk %d: %q -> %q (distance %d)\n", i, string(p.X), string(p.Y), align.Distance(mat))
		if _, err := io.WriteString(w, mat.String()); err != nil {
			return err
		}
	}
	return nil
}

// roundTrip checks that applying the edits of every chunk of x yields the chunk of y.
func roundTrip(x, y string, split int) error {
	pairs, err := chunk.Split(x, y, max(1, split))
	if err != nil {
		return err
	}
	total := 0
	for i, p := range pairs {
		es := edits.Edits(p.X, p.Y)
		if got := edits.Apply(p.X, es); !slices.Equal(got, p.Y) {
			return fmt.Errorf("validation failed for chunk %d: got %q, want %q", i, string(got), string(p.Y))
		}
		total += edits.Distance(p.X, p.Y)
	}
	logrus.Debugf("validated %d chunks, total distance %d", len(pairs), total)
	return nil
}
