// Copyright 2024 The msgperf Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads report profiles.
//
// A profile says how to find result files, what to call each test
// mode in the report, and what each test mode measures. A profile is
// written in YAML:
//
//	pattern: "*.csv"
//	files: [pub.csv, sub.csv]
//	raw_titles: false
//	titles:
//	  pub: Publisher Metrics
//	kinds:
//	  reconnect: latency
//
// Every field is optional. Titles and kinds given in a profile are
// added to the defaults rather than replacing them.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/msgperf/msgperf/benchagg"
	"github.com/msgperf/msgperf/benchcsv"
	"gopkg.in/yaml.v3"
)

// A Config is a report profile.
type Config struct {
	// Pattern selects result files when Files is empty.
	Pattern string `yaml:"pattern"`

	// Files, if non-empty, is the fixed set of result files to
	// read, relative to the data directory.
	Files []string `yaml:"files"`

	// RawTitles makes every section title the upper-cased test
	// mode, ignoring Titles.
	RawTitles bool `yaml:"raw_titles"`

	// Titles maps test modes to section titles.
	Titles map[string]string `yaml:"titles"`

	// Kinds maps test modes to "throughput" or "latency".
	Kinds map[string]string `yaml:"kinds"`
}

// DefaultTitles are the section titles of the standard test modes.
var DefaultTitles = map[string]string{
	benchcsv.Pub:    "Publisher Metrics",
	benchcsv.Sub:    "Subscriber Metrics",
	benchcsv.PubSub: "Publish+Subscriber Metrics",
	benchcsv.ReqRep: "Request Reply Metrics",
	benchcsv.RR:     "Request Reply Metrics",

	benchcsv.Reconnect: "Reconnect Metrics",
}

// DefaultKinds are the kinds of the standard test modes that are not
// throughput tests.
var DefaultKinds = map[string]string{
	benchcsv.Reconnect: benchagg.Latency.String(),
}

// Default returns the default profile.
func Default() *Config {
	cfg := new(Config)
	cfg.applyDefaults()
	return cfg
}

// Load reads the profile at path. Settings missing from the file take
// their default values.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Pattern == "" {
		c.Pattern = benchcsv.DefaultPattern
	}
	if c.Titles == nil {
		c.Titles = make(map[string]string)
	}
	for mode, title := range DefaultTitles {
		if _, ok := c.Titles[mode]; !ok {
			c.Titles[mode] = title
		}
	}
	if c.Kinds == nil {
		c.Kinds = make(map[string]string)
	}
	for mode, kind := range DefaultKinds {
		if _, ok := c.Kinds[mode]; !ok {
			c.Kinds[mode] = kind
		}
	}
}

// Validate reports the first problem with c, if any. Callers that
// modify a loaded Config should validate it again.
func (c *Config) Validate() error {
	if _, err := filepath.Match(c.Pattern, ""); err != nil {
		return fmt.Errorf("pattern %q: %w", c.Pattern, err)
	}
	for _, f := range c.Files {
		if f == "" || filepath.IsAbs(f) {
			return fmt.Errorf("files: %q must be a relative file name", f)
		}
	}
	for mode, title := range c.Titles {
		if strings.TrimSpace(title) == "" {
			return fmt.Errorf("titles: %s: empty title", mode)
		}
	}
	for mode, kind := range c.Kinds {
		if _, err := benchagg.ParseKind(kind); err != nil {
			return fmt.Errorf("kinds: %s: %w", mode, err)
		}
	}
	return nil
}

// Paths returns the result files of the profile in dir.
func (c *Config) Paths(dir string) ([]string, error) {
	if len(c.Files) > 0 {
		return benchcsv.Fixed(dir, c.Files)
	}
	return benchcsv.Discover(dir, c.Pattern)
}

// Title returns the section title for mode, and whether it came from
// the title table. Modes without a title, and all modes when
// RawTitles is set, are titled by their upper-cased mode.
func (c *Config) Title(mode string) (title string, ok bool) {
	if !c.RawTitles {
		if t, ok := c.Titles[mode]; ok {
			return t, true
		}
	}
	return strings.ToUpper(mode), false
}

// KindMap returns the kind of every test mode with a configured kind.
// It must only be called on a validated Config.
func (c *Config) KindMap() benchagg.Kinds {
	kinds := make(benchagg.Kinds, len(c.Kinds))
	for mode, s := range c.Kinds {
		k, err := benchagg.ParseKind(s)
		if err != nil {
			panic(err)
		}
		kinds[mode] = k
	}
	return kinds
}
