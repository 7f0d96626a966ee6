// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

/*
Package backend tests use httptest to stand in for the AutoML backend:
a canned run summary, leaderboard, model registry, and artifact
endpoints. No real backend is required and the suite runs in well under
a second.
*/
package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/AleutianAutoML/pkg/automl"
)

// newTestBackend serves a fixed single-project AutoML backend.
func newTestBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("GET /3/AutoML/churn_v3", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"project_name": "churn_v3",
			"leader_model_id": "StackedEnsemble_AllModels_1"
		}`))
	})
	mux.HandleFunc("GET /3/AutoML/churn_v3/leaderboard", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"leaderboard": {
			"columns": ["model_id", "auc", "logloss"],
			"rows": [
				["StackedEnsemble_AllModels_1", 0.93, 0.21],
				["GBM_1", 0.91, 0.24],
				["DRF_1", 0.88, 0.27]
			]
		}}`))
	})
	mux.HandleFunc("GET /3/AutoML/churn_v3/events", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"event_log": {
			"columns": ["timestamp", "level", "name", "value", "message"],
			"rows": [
				["2025-01-01 00:00:00", "Info", "start_epoch", "1735689600", "run started"],
				["2025-01-01 00:05:00", "Info", "stop_epoch", "1735689900", "run finished"]
			]
		}}`))
	})
	mux.HandleFunc("GET /3/Models/{id}", func(w http.ResponseWriter, r *http.Request) {
		switch r.PathValue("id") {
		case "GBM_1":
			w.Write([]byte(`{"model_id": "GBM_1", "algorithm": "gbm",
				"category": "Binomial", "metrics": {"auc": 0.91}}`))
		case "StackedEnsemble_AllModels_1":
			w.Write([]byte(`{"model_id": "StackedEnsemble_AllModels_1",
				"algorithm": "stackedensemble", "category": "Binomial"}`))
		default:
			http.Error(w, "model not found", http.StatusNotFound)
		}
	})
	mux.HandleFunc("GET /3/Models/GBM_1/mojo", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("mojo-bytes"))
	})
	mux.HandleFunc("GET /3/Models.java/GBM_1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("public class GBM_1 {}"))
	})
	mux.HandleFunc("POST /3/Predictions/models/GBM_1/frames/test_frame", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"predictions": {
			"columns": ["predict", "p0", "p1"],
			"rows": [["yes", 0.2, 0.8]]
		}}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	client, err := NewClient(Config{BaseURL: baseURL})
	require.NoError(t, err)
	return client
}

// -----------------------------------------------------------------------------
// Config Tests
// -----------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	t.Run("missing base_url", func(t *testing.T) {
		_, err := NewClient(Config{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "base_url")
	})

	t.Run("negative timeout", func(t *testing.T) {
		_, err := NewClient(Config{BaseURL: "http://localhost:54321", Timeout: -1})
		assert.Error(t, err)
	})
}

// -----------------------------------------------------------------------------
// Run Accessor Tests
// -----------------------------------------------------------------------------

func TestRemoteRun_Leaderboard(t *testing.T) {
	server := newTestBackend(t)
	run := newTestClient(t, server.URL).AutoML("churn_v3")

	lb, err := run.Leaderboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"model_id", "auc", "logloss"}, lb.Columns())
	assert.Equal(t, 3, lb.NumRows())

	id, err := lb.String(0, "model_id")
	require.NoError(t, err)
	assert.Equal(t, "StackedEnsemble_AllModels_1", id)

	auc, err := lb.Float(1, "auc")
	require.NoError(t, err)
	assert.Equal(t, 0.91, auc)
}

func TestRemoteRun_Leader(t *testing.T) {
	server := newTestBackend(t)
	run := newTestClient(t, server.URL).AutoML("churn_v3")

	leader, err := run.Leader(context.Background())
	require.NoError(t, err)
	require.NotNil(t, leader)
	assert.Equal(t, "StackedEnsemble_AllModels_1", leader.ModelID)
	assert.Equal(t, automl.CategoryBinomial, leader.Category)
}

func TestRemoteRun_UnknownProject(t *testing.T) {
	server := newTestBackend(t)
	run := newTestClient(t, server.URL).AutoML("no_such_project")

	_, err := run.Leaderboard(context.Background())
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestRemoteRun_TrainingInfo(t *testing.T) {
	server := newTestBackend(t)
	run := newTestClient(t, server.URL).AutoML("churn_v3")

	info, err := run.TrainingInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1735689600", info["start_epoch"])
	assert.Equal(t, "1735689900", info["stop_epoch"])
}

// -----------------------------------------------------------------------------
// Registry Tests
// -----------------------------------------------------------------------------

func TestGetModel(t *testing.T) {
	server := newTestBackend(t)
	client := newTestClient(t, server.URL)

	t.Run("known model", func(t *testing.T) {
		m, err := client.GetModel(context.Background(), "GBM_1")
		require.NoError(t, err)
		assert.Equal(t, "GBM_1", m.ModelID)
		assert.Equal(t, "gbm", m.Algorithm)
		assert.Equal(t, 0.91, m.Metrics["auc"])
	})

	t.Run("unknown model maps 404", func(t *testing.T) {
		_, err := client.GetModel(context.Background(), "GLM_9")
		require.Error(t, err)
		var be *BackendError
		require.ErrorAs(t, err, &be)
		assert.Equal(t, ErrorNotFound, be.Type)
		assert.Equal(t, "GLM_9", be.Resource)
		assert.NotEmpty(t, be.RequestID)
	})
}

func TestClient_ConnectionFailure(t *testing.T) {
	// Closed port: connection refused.
	client := newTestClient(t, "http://127.0.0.1:1")

	_, err := client.GetModel(context.Background(), "GBM_1")
	require.Error(t, err)
	var be *BackendError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, ErrorConnectionFailed, be.Type)
	assert.Contains(t, be.Remediation, "http://127.0.0.1:1")
}

// -----------------------------------------------------------------------------
// Prediction and Artifact Tests
// -----------------------------------------------------------------------------

func TestPredict(t *testing.T) {
	server := newTestBackend(t)
	client := newTestClient(t, server.URL)

	predictions, err := client.Predict(context.Background(), "GBM_1", "test_frame")
	require.NoError(t, err)
	label, err := predictions.String(0, "predict")
	require.NoError(t, err)
	assert.Equal(t, "yes", label)
}

func TestExportArtifacts(t *testing.T) {
	server := newTestBackend(t)
	client := newTestClient(t, server.URL)
	dir := t.TempDir()

	t.Run("mojo", func(t *testing.T) {
		path, err := client.ExportMOJO(context.Background(), "GBM_1", dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "GBM_1.zip"), path)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "mojo-bytes", string(data))
	})

	t.Run("pojo", func(t *testing.T) {
		path, err := client.ExportPOJO(context.Background(), "GBM_1", dir)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "GBM_1.java"), path)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "public class GBM_1")
	})
}

// -----------------------------------------------------------------------------
// End-to-End Selection
// -----------------------------------------------------------------------------

func TestGetBestModel_OverHTTP(t *testing.T) {
	server := newTestBackend(t)
	client := newTestClient(t, server.URL)
	run := client.AutoML("churn_v3")

	t.Run("best base model by auc", func(t *testing.T) {
		best, err := automl.GetBestModel(context.Background(), run, client, "base_model", "auc")
		require.NoError(t, err)
		require.NotNil(t, best)
		assert.Equal(t, "GBM_1", best.ModelID)
	})

	t.Run("default criterion from binomial leader", func(t *testing.T) {
		best, err := automl.GetBestModel(context.Background(), run, client, "stacked_ensemble", "")
		require.NoError(t, err)
		require.NotNil(t, best)
		assert.Equal(t, "StackedEnsemble_AllModels_1", best.ModelID)
	})

	t.Run("family never trained", func(t *testing.T) {
		best, err := automl.GetBestModel(context.Background(), run, client, "xgboost", "auc")
		require.NoError(t, err)
		assert.Nil(t, best)
	})
}
