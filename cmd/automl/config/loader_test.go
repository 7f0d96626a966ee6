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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadInternal_CreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "automl.yaml")

	require.NoError(t, loadInternal(path))

	// The default file exists and round-trips.
	_, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:54321", Global.Backend.BaseURL)
	assert.Equal(t, Duration(2*time.Minute), Global.Backend.Timeout)
	assert.Equal(t, "info", Global.Logging.Level)
}

func TestLoadInternal_ReadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "automl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"backend:\n  base_url: http://automl.internal:54321\n  timeout: 30s\n"), 0644))

	require.NoError(t, loadInternal(path))
	assert.Equal(t, "http://automl.internal:54321", Global.Backend.BaseURL)
	assert.Equal(t, Duration(30*time.Second), Global.Backend.Timeout)
}

func TestLoadInternal_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "automl.yaml")
	t.Setenv("ALEUTIAN_AUTOML_URL", "http://override:54321")

	require.NoError(t, loadInternal(path))
	assert.Equal(t, "http://override:54321", Global.Backend.BaseURL)
}
