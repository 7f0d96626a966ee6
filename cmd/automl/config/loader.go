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
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

var (
	// Global is a singleton instance
	Global AutoMLConfig
	once   sync.Once
)

// Load ensures the config is loaded into the Global variable.
//
// The file lives at ~/.aleutian/automl.yaml and is created with
// defaults on first run. ALEUTIAN_AUTOML_URL overrides the backend
// base URL after the file is read.
func Load() error {
	var err error
	once.Do(func() {
		err = loadInternal(configPath())
	})
	return err
}

func configPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "automl.yaml"
	}
	return filepath.Join(home, ".aleutian", "automl.yaml")
}

func loadInternal(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Printf(" First run detected, creating the config at %s\n", path)
		if err := createDefault(path); err != nil {
			return err
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read the config file: %w", err)
	}
	Global = DefaultConfig()
	if err = yaml.Unmarshal(data, &Global); err != nil {
		return fmt.Errorf("failed to parse the config file: %w", err)
	}
	if url := os.Getenv("ALEUTIAN_AUTOML_URL"); url != "" {
		Global.Backend.BaseURL = url
	}
	return nil
}

func createDefault(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create the config directory: %w", err)
	}
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
