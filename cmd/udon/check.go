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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/v2-io/udon"
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <patterns...>",
		Short: "Parse matching files and exit non-zero if any produces an error event",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := expandPatterns(args)
			if err != nil {
				return err
			}
			clean := true
			for _, file := range files {
				ok, err := checkFile(file)
				if err != nil {
					return err
				}
				clean = clean && ok
			}
			if !clean {
				os.Exit(1)
			}
			return nil
		},
	}
	return cmd
}

// checkFile drives the parser through its pull iterator rather than Parse,
// so a file with no errors never needs its full event stream materialized.
func checkFile(path string) (bool, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}

	p := udon.NewParser(src)
	clean := true
	for {
		e, ok := p.Next()
		if !ok {
			break
		}
		if !e.IsError() {
			continue
		}
		clean = false
		loc := udon.Location(src, e.Span.Start)
		log.WithField("file", path).Errorf("%s: %s", loc, e.Message())
	}
	return clean, nil
}
