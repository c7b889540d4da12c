// Copyright 2026 EngFlow Inc. All rights reserved.
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
	"fmt"
	"os"
	"sort"

	"github.com/alecthomas/repr"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/v2-io/udon"
	"github.com/v2-io/udon/internal/config"
)

func newLexCmd() *cobra.Command {
	var pretty bool
	var configPath string

	cmd := &cobra.Command{
		Use:   "lex <patterns...>",
		Short: "Parse matching files and print their event stream",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			files, err := expandPatterns(args)
			if err != nil {
				return err
			}
			for _, file := range files {
				if err := lexFile(file, pretty, cfg); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "render events with repr instead of the compact one-line form")
	cmd.Flags().StringVar(&configPath, "config", ".udonrc.yaml", "path to an optional .udonrc.yaml")
	return cmd
}

// expandPatterns resolves glob patterns against the filesystem, deduping
// matches that more than one pattern picks up.
func expandPatterns(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", pattern, err)
		}
		for _, m := range matches {
			seen[m] = struct{}{}
		}
	}
	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}
	sort.Strings(files)
	return files, nil
}

func lexFile(path string, pretty bool, cfg config.Config) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	p := udon.NewParser(src)
	events := p.Parse()
	var errCount int
	for _, e := range events {
		if e.IsError() {
			errCount++
		}
	}

	log.WithFields(logrus.Fields{
		"file":   path,
		"events": len(events),
		"errors": errCount,
	}).Info("parsed")

	for _, e := range events {
		if pretty {
			fmt.Println(repr.String(renderEvent(e, cfg)))
			continue
		}
		fmt.Println(formatEvent(e, src))
	}
	return nil
}

// formatEvent renders one event as a single line: its source location and
// its kind, or for an Error event its location and diagnostic message. Other
// payloads (names, text, values) are not printed.
func formatEvent(e udon.Event, src []byte) string {
	loc := udon.Location(src, e.Span.Start)
	if e.IsError() {
		return fmt.Sprintf("%s error: %s", loc, e.Message())
	}
	return fmt.Sprintf("%s %s", loc, e.Kind)
}

// renderEvent applies the CLI's purely cosmetic RawIndent setting before
// handing an event to repr — the core's own captured span never changes
// (SPEC_FULL.md decision #5).
func renderEvent(e udon.Event, cfg config.Config) udon.Event {
	if e.Kind == udon.EventRawContent && cfg.RawIndent == config.RawIndentStrip {
		e.Content = stripCommonIndent(e.Content)
	}
	return e
}

// stripCommonIndent removes the longest common leading-whitespace run
// shared by every non-empty line after the first from a RawContent payload,
// purely for human-readable display. Empty lines, such as the one after a
// trailing newline, do not take part in the comparison.
func stripCommonIndent(content []byte) []byte {
	lines := bytes.Split(content, []byte("\n"))
	if len(lines) <= 1 {
		return content
	}

	var common []byte
	seen := false
	for _, line := range lines[1:] {
		if len(line) == 0 {
			continue
		}
		if !seen {
			common, seen = leadingWhitespace(line), true
			continue
		}
		common = commonPrefix(common, leadingWhitespace(line))
		if len(common) == 0 {
			break
		}
	}
	if len(common) == 0 {
		return content
	}

	out := make([][]byte, len(lines))
	out[0] = lines[0]
	for i, line := range lines[1:] {
		out[i+1] = bytes.TrimPrefix(line, common)
	}
	return bytes.Join(out, []byte("\n"))
}

func leadingWhitespace(line []byte) []byte {
	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	return line[:i]
}

func commonPrefix(a, b []byte) []byte {
	n := min(len(a), len(b))
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return a[:i]
}
