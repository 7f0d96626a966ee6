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
Package automl is the client-side view of an AutoML run.

# Problem Statement

An AutoML run lives entirely in the remote backend: the model search,
the training, and the leaderboard computation all happen server-side.
Client code still needs convenient, typed access to the run — who is
the leader, what does the leaderboard look like, which model of a given
family ranked best — without reimplementing any of that machinery.

# Solution

This package defines the Run interface (the read accessors every AutoML
run exposes), small collaborator interfaces for the remote operations
(model resolution, prediction, artifact export), and operations generic
over those interfaces:

	run := client.AutoML("churn_v3")
	gbm, err := automl.GetBestModel(ctx, run, client, "gbm", "")
	if err != nil {
	    return err
	}
	if gbm == nil {
	    // the run never trained a GBM; not an error
	}

Every accessor call fetches a fresh snapshot from the backend. Nothing
is cached here: two calls may observe different states of a run that is
still training, and that is intentional.

# Related Packages

  - pkg/frame: the table snapshot type for leaderboards and event logs
  - pkg/backend: the HTTP implementation of all interfaces below
*/
package automl

import (
	"context"

	"github.com/AleutianAI/AleutianAutoML/pkg/frame"
)

// -----------------------------------------------------------------------------
// Model Metadata
// -----------------------------------------------------------------------------

// ModelCategory classifies the prediction task a model was trained for.
// It drives the default ranking criterion when the caller supplies none.
type ModelCategory string

const (
	CategoryRegression  ModelCategory = "Regression"
	CategoryBinomial    ModelCategory = "Binomial"
	CategoryMultinomial ModelCategory = "Multinomial"
)

// ModelHandle is a resolved model: enough metadata to identify, rank,
// and operate on a model without holding any of its weights locally.
type ModelHandle struct {
	// ModelID is the backend's unique identifier (e.g. "GBM_1_AutoML_...").
	ModelID string `json:"model_id"`

	// Algorithm is the training algorithm name reported by the backend.
	Algorithm string `json:"algorithm"`

	// Category is the model's task category. Anything other than
	// Regression or Binomial is treated as multinomial for defaults.
	Category ModelCategory `json:"category"`

	// Metrics holds the backend's evaluation metrics for this model.
	Metrics map[string]float64 `json:"metrics,omitempty"`
}

// -----------------------------------------------------------------------------
// Run Interface
// -----------------------------------------------------------------------------

// Run exposes the read accessors of a remote AutoML run.
//
// Every method that touches the backend takes a context and returns a
// fresh snapshot; implementations must not cache between calls. The
// production implementation is backend.RemoteRun.
type Run interface {
	// ProjectName returns the run's project name.
	ProjectName() string

	// Leader returns the top-ranked model of the run.
	Leader(ctx context.Context) (*ModelHandle, error)

	// Leaderboard returns the ranked candidate-model table. The first
	// column is model_id; remaining columns are evaluation metrics.
	Leaderboard(ctx context.Context) (*frame.Frame, error)

	// EventLog returns the backend's event table for the run.
	EventLog(ctx context.Context) (*frame.Frame, error)

	// TrainingInfo exposes the name/value columns of the event log as
	// a map (start_epoch, stop_epoch, ...).
	TrainingInfo(ctx context.Context) (map[string]string, error)
}

// -----------------------------------------------------------------------------
// Collaborator Interfaces
// -----------------------------------------------------------------------------

// ModelRegistry resolves a model identifier to a handle.
type ModelRegistry interface {
	// GetModel resolves id. Unknown ids fail with the backend's
	// not-found error; ids taken from a fresh leaderboard of the same
	// run should always resolve.
	GetModel(ctx context.Context, id string) (*ModelHandle, error)
}

// Predictor scores a remote frame with a remote model.
type Predictor interface {
	Predict(ctx context.Context, modelID, frameID string) (*frame.Frame, error)
}

// ArtifactExporter downloads a model's deployment artifacts. The
// formats are opaque to this client; both methods return the path of
// the file written under dir.
type ArtifactExporter interface {
	ExportMOJO(ctx context.Context, modelID, dir string) (string, error)
	ExportPOJO(ctx context.Context, modelID, dir string) (string, error)
}
