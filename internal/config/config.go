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

// Package config loads cmd/udon's optional .udonrc.yaml. None of it reaches
// the udon core: the core's event sequence is a pure function of its input
// bytes, so every knob here is purely cosmetic, affecting only how the CLI
// renders what the core already produced.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RawIndent controls how the CLI's pretty-printer renders a RawContent
// event's captured indentation. The core itself always captures the
// verbatim, un-stripped span (see SPEC_FULL.md decision #5) — this only
// changes what cmd/udon prints.
type RawIndent string

const (
	RawIndentKeep  RawIndent = "keep"
	RawIndentStrip RawIndent = "strip"
)

// Config holds the contents of an optional .udonrc.yaml.
type Config struct {
	RawIndent RawIndent `yaml:"rawIndent"`
	TabWidth  int       `yaml:"tabWidth"`
}

// Default returns the configuration cmd/udon uses when no .udonrc.yaml is
// present or a field is left unset.
func Default() Config {
	return Config{RawIndent: RawIndentKeep, TabWidth: 8}
}

// Load reads and parses path, filling any field the file omits from
// Default(). A missing file is not an error — it simply returns the
// default configuration.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.RawIndent != RawIndentKeep && cfg.RawIndent != RawIndentStrip {
		cfg.RawIndent = RawIndentKeep
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 8
	}
	return cfg, nil
}
