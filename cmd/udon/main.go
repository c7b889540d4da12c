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

// Command udon is a small host front-end over the udon core package: it
// never builds a tree or interprets a directive, it only drives the parser
// over files named on the command line and reports what came out.
package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "udon",
		Short:         "Inspect UDON documents through the streaming parser core",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newLexCmd())
	root.AddCommand(newCheckCmd())
	return root
}

func main() {
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
