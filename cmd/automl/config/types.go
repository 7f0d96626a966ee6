// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration round-trips yaml as "2m"/"30s" style strings; yaml.v3 has
// no native handling for time.Duration.
type Duration time.Duration

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", node.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

type AutoMLConfig struct {
	// Backend: where the AutoML server lives
	Backend BackendConfig `yaml:"backend"`

	// Logging: client-side log destinations
	Logging LoggingConfig `yaml:"logging"`
}

type BackendConfig struct {
	BaseURL string   `yaml:"base_url"` // e.g. http://localhost:54321
	Timeout Duration `yaml:"timeout"`  // per-request bound, e.g. 2m
}

type LoggingConfig struct {
	Level  string `yaml:"level"`             // debug|info|warn|error
	LogDir string `yaml:"log_dir,omitempty"` // empty disables file logs
}

// DefaultConfig is what a first run writes to disk.
func DefaultConfig() AutoMLConfig {
	return AutoMLConfig{
		Backend: BackendConfig{
			BaseURL: "http://localhost:54321",
			Timeout: Duration(2 * time.Minute),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
