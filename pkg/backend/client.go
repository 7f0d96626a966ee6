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
Package backend is the HTTP client for the Aleutian AutoML backend
server.

# Problem Statement

All AutoML state lives in the backend: runs, leaderboards, models, and
exported artifacts. The library in pkg/automl is written against small
interfaces; something has to implement them over the backend's JSON
REST API, map transport failures into actionable errors, and stay
honest about freshness (no client-side caching of run state — a run
may still be training).

# Solution

Client speaks the backend's frame-and-model API:

	GET  /3/AutoML/{project}                           run summary
	GET  /3/AutoML/{project}/leaderboard               leaderboard table
	GET  /3/AutoML/{project}/events                    event-log table
	GET  /3/Models/{model_id}                          model resource
	GET  /3/Models/{model_id}/mojo                     MOJO artifact bytes
	GET  /3/Models.java/{model_id}                     POJO source bytes
	POST /3/Predictions/models/{model_id}/frames/{id}  prediction table

Client implements automl.ModelRegistry, automl.Predictor, and
automl.ArtifactExporter; Client.AutoML(project) returns a RemoteRun
implementing automl.Run. Failures surface as *BackendError with a type
enum, the request id, and remediation text. Every request carries an
X-Request-Id (uuid) and is counted in prometheus metrics.

# Usage

	client, err := backend.NewClient(backend.Config{BaseURL: "http://localhost:54321"})
	if err != nil {
	    return err
	}
	run := client.AutoML("churn_v3")
	best, err := automl.GetBestModel(ctx, run, client, "gbm", "")

# Limitations

  - No retries: a fetch failure aborts the caller's whole operation
    with the underlying error. Timeout and cancellation come from the
    configured http.Client and the caller's context.
  - Safe for concurrent use as long as callers accept interleaved
    snapshots of a live run.
*/
package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AleutianAI/AleutianAutoML/pkg/automl"
	"github.com/AleutianAI/AleutianAutoML/pkg/frame"
)

// -----------------------------------------------------------------------------
// Configuration
// -----------------------------------------------------------------------------

// Config configures a backend Client.
type Config struct {
	// BaseURL is the backend server URL (e.g. "http://localhost:54321").
	// Required.
	BaseURL string

	// Timeout bounds each request. Artifact downloads can be large;
	// the default is generous.
	// Default: 2 minutes.
	Timeout time.Duration

	// Logger receives request-level debug and error logs.
	// Default: slog.Default().
	Logger *slog.Logger

	// HTTPClient overrides the transport, mainly for tests.
	// Default: an http.Client with Timeout applied.
	HTTPClient *http.Client
}

// DefaultConfig returns a Config with defaults applied. BaseURL must
// still be set by the caller.
func DefaultConfig() Config {
	return Config{Timeout: 2 * time.Minute}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("backend config: base_url is required")
	}
	if _, err := url.Parse(c.BaseURL); err != nil {
		return fmt.Errorf("backend config: invalid base_url: %w", err)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("backend config: timeout must not be negative")
	}
	return nil
}

// -----------------------------------------------------------------------------
// Client
// -----------------------------------------------------------------------------

// Client is the backend transport. It is stateless apart from its
// configuration: no run state is cached between calls.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Interface conformance for the pkg/automl collaborators.
var (
	_ automl.ModelRegistry    = (*Client)(nil)
	_ automl.Predictor        = (*Client)(nil)
	_ automl.ArtifactExporter = (*Client)(nil)
)

// NewClient creates a backend client from cfg.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// AutoML returns the run accessor for a project.
func (c *Client) AutoML(project string) *RemoteRun {
	return &RemoteRun{client: c, project: project}
}

// -----------------------------------------------------------------------------
// Model Registry
// -----------------------------------------------------------------------------

// GetModel resolves a model id to a handle. Unknown ids fail with a
// NOT_FOUND BackendError.
func (c *Client) GetModel(ctx context.Context, id string) (*automl.ModelHandle, error) {
	var m wireModel
	path := "/3/Models/" + url.PathEscape(id)
	if err := c.getJSON(ctx, "models", path, id, &m); err != nil {
		return nil, err
	}
	return m.toHandle(), nil
}

// -----------------------------------------------------------------------------
// Predictions
// -----------------------------------------------------------------------------

// Predict scores a remote frame with a remote model and returns the
// prediction table.
func (c *Client) Predict(ctx context.Context, modelID, frameID string) (*frame.Frame, error) {
	path := fmt.Sprintf("/3/Predictions/models/%s/frames/%s",
		url.PathEscape(modelID), url.PathEscape(frameID))
	var p wirePredictions
	if err := c.doJSON(ctx, http.MethodPost, "predictions", path, modelID, &p); err != nil {
		return nil, err
	}
	f, err := p.Predictions.toFrame()
	if err != nil {
		return nil, c.invalidResponse("predictions", modelID, err)
	}
	return f, nil
}

// -----------------------------------------------------------------------------
// Artifact Export
// -----------------------------------------------------------------------------

// ExportMOJO downloads a model's MOJO artifact into dir and returns
// the written path. An empty dir means the current directory.
func (c *Client) ExportMOJO(ctx context.Context, modelID, dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	path := "/3/Models/" + url.PathEscape(modelID) + "/mojo"
	data, err := c.getRaw(ctx, "artifacts", path, modelID)
	if err != nil {
		return "", err
	}
	return c.writeArtifact(dir, modelID+".zip", data)
}

// ExportPOJO downloads a model's POJO source. With a non-empty dir the
// source is written to {model_id}.java and the path returned; with an
// empty dir the source is dumped to stdout and the returned path is
// empty, matching the backend CLI convention.
func (c *Client) ExportPOJO(ctx context.Context, modelID, dir string) (string, error) {
	path := "/3/Models.java/" + url.PathEscape(modelID)
	data, err := c.getRaw(ctx, "artifacts", path, modelID)
	if err != nil {
		return "", err
	}
	if dir == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			return "", err
		}
		return "", nil
	}
	return c.writeArtifact(dir, modelID+".java", data)
}

func (c *Client) writeArtifact(dir, name string, data []byte) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create artifact directory %s: %w", dir, err)
	}
	target := filepath.Join(dir, name)
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fmt.Errorf("write artifact %s: %w", target, err)
	}
	c.logger.Info("artifact exported", "path", target, "bytes", len(data))
	return target, nil
}

// -----------------------------------------------------------------------------
// Transport
// -----------------------------------------------------------------------------

func (c *Client) getJSON(ctx context.Context, endpoint, path, resource string, out any) error {
	return c.doJSON(ctx, http.MethodGet, endpoint, path, resource, out)
}

func (c *Client) doJSON(ctx context.Context, method, endpoint, path, resource string, out any) error {
	body, err := c.do(ctx, method, endpoint, path, resource)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return c.invalidResponse(endpoint, resource, err)
	}
	return nil
}

func (c *Client) getRaw(ctx context.Context, endpoint, path, resource string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, endpoint, path, resource)
}

// do performs one request and maps every failure mode to a
// *BackendError. The response body is fully read so the connection can
// be reused.
func (c *Client) do(ctx context.Context, method, endpoint, path, resource string) ([]byte, error) {
	requestID := uuid.NewString()
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		requestTotal.WithLabelValues(endpoint, "error").Inc()
		return nil, &BackendError{
			Type:        ErrorRequestFailed,
			Resource:    resource,
			RequestID:   requestID,
			Message:     "failed to build backend request",
			Detail:      err.Error(),
			Remediation: "Check the configured backend base URL",
		}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		requestTotal.WithLabelValues(endpoint, "error").Inc()
		if ctx.Err() != nil {
			return nil, &BackendError{
				Type:        ErrorContextCancelled,
				Resource:    resource,
				RequestID:   requestID,
				Message:     "backend request cancelled",
				Detail:      ctx.Err().Error(),
				Remediation: "Try again or increase the timeout",
			}
		}
		c.logger.Error("backend unreachable",
			"endpoint", endpoint, "request_id", requestID, "error", err)
		return nil, &BackendError{
			Type:        ErrorConnectionFailed,
			Resource:    resource,
			RequestID:   requestID,
			Message:     "cannot connect to the AutoML backend",
			Detail:      err.Error(),
			Remediation: fmt.Sprintf("Ensure the backend is running at %s", c.baseURL),
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		requestTotal.WithLabelValues(endpoint, "error").Inc()
		return nil, c.invalidResponse(endpoint, resource, err)
	}

	requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	switch {
	case resp.StatusCode == http.StatusNotFound:
		requestTotal.WithLabelValues(endpoint, "not_found").Inc()
		return nil, &BackendError{
			Type:        ErrorNotFound,
			Resource:    resource,
			RequestID:   requestID,
			Message:     fmt.Sprintf("backend has no resource %q", resource),
			Detail:      trimBody(body),
			Remediation: "Verify the project name or model id and that the run still exists",
		}
	case resp.StatusCode != http.StatusOK:
		requestTotal.WithLabelValues(endpoint, "error").Inc()
		c.logger.Error("backend request failed",
			"endpoint", endpoint, "status", resp.StatusCode, "request_id", requestID)
		return nil, &BackendError{
			Type:        ErrorRequestFailed,
			Resource:    resource,
			RequestID:   requestID,
			Message:     fmt.Sprintf("backend returned status %d", resp.StatusCode),
			Detail:      trimBody(body),
			Remediation: "Check the backend logs for errors",
		}
	}

	requestTotal.WithLabelValues(endpoint, "ok").Inc()
	c.logger.Debug("backend request",
		"endpoint", endpoint, "path", path, "request_id", requestID,
		"bytes", len(body), "elapsed", time.Since(start))
	return body, nil
}

func (c *Client) invalidResponse(endpoint, resource string, err error) error {
	return &BackendError{
		Type:        ErrorInvalidResponse,
		Resource:    resource,
		Message:     fmt.Sprintf("failed to parse backend %s response", endpoint),
		Detail:      err.Error(),
		Remediation: "This may indicate a backend version mismatch",
	}
}

// trimBody keeps error details readable when the backend returns a
// large HTML error page.
func trimBody(body []byte) string {
	const limit = 512
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
