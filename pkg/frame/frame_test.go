// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrame(t *testing.T) *Frame {
	t.Helper()
	f, err := New(
		[]string{"model_id", "auc", "logloss"},
		[][]Cell{
			{Str("GBM_1"), Num(0.7), Num(0.31)},
			{Str("DRF_1"), Num(0.9), Num(0.22)},
			{Str("GLM_1"), Num(0.5), Num(0.40)},
		},
	)
	require.NoError(t, err)
	return f
}

func TestNew_Validation(t *testing.T) {
	t.Run("duplicate column under case folding", func(t *testing.T) {
		_, err := New([]string{"auc", "AUC"}, nil)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate column")
	})

	t.Run("ragged row", func(t *testing.T) {
		_, err := New([]string{"a", "b"}, [][]Cell{{Num(1)}})
		assert.Error(t, err)
	})
}

func TestResolveColumn_CaseInsensitive(t *testing.T) {
	f := testFrame(t)

	name, ok := f.ResolveColumn("AUC")
	assert.True(t, ok)
	assert.Equal(t, "auc", name)

	_, ok = f.ResolveColumn("rmse")
	assert.False(t, ok)
}

func TestCellAccess(t *testing.T) {
	f := testFrame(t)

	id, err := f.String(1, "model_id")
	require.NoError(t, err)
	assert.Equal(t, "DRF_1", id)

	v, err := f.Float(0, "AUC")
	require.NoError(t, err)
	assert.Equal(t, 0.7, v)

	t.Run("non-numeric cell rejects Float", func(t *testing.T) {
		_, err := f.Float(0, "model_id")
		assert.Error(t, err)
	})

	t.Run("row out of range", func(t *testing.T) {
		_, err := f.Cell(3, "auc")
		assert.Error(t, err)
	})
}

func TestSort(t *testing.T) {
	f := testFrame(t)

	t.Run("descending by auc", func(t *testing.T) {
		sorted, err := f.Sort("auc", false)
		require.NoError(t, err)
		id, _ := sorted.String(0, "model_id")
		assert.Equal(t, "DRF_1", id)
		id, _ = sorted.String(2, "model_id")
		assert.Equal(t, "GLM_1", id)
	})

	t.Run("ascending by logloss", func(t *testing.T) {
		sorted, err := f.Sort("LOGLOSS", true)
		require.NoError(t, err)
		id, _ := sorted.String(0, "model_id")
		assert.Equal(t, "DRF_1", id)
	})

	t.Run("receiver unchanged", func(t *testing.T) {
		_, err := f.Sort("auc", true)
		require.NoError(t, err)
		id, _ := f.String(0, "model_id")
		assert.Equal(t, "GBM_1", id)
	})

	t.Run("stable on ties", func(t *testing.T) {
		tied, err := New(
			[]string{"model_id", "rmse"},
			[][]Cell{
				{Str("GBM_1"), Num(0.5)},
				{Str("GBM_2"), Num(0.5)},
				{Str("GBM_3"), Num(0.5)},
			},
		)
		require.NoError(t, err)
		sorted, err := tied.Sort("rmse", true)
		require.NoError(t, err)
		for i, want := range []string{"GBM_1", "GBM_2", "GBM_3"} {
			id, _ := sorted.String(i, "model_id")
			assert.Equal(t, want, id)
		}
	})

	t.Run("unknown column", func(t *testing.T) {
		_, err := f.Sort("nope", true)
		assert.Error(t, err)
	})
}
