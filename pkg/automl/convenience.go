// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package automl

import (
	"context"
	"fmt"

	"github.com/AleutianAI/AleutianAutoML/pkg/frame"
)

// Leader-model conveniences. Each resolves the run's current leader and
// delegates; they hold no state and fetch fresh on every call.

// Predict scores frameID with the run's leader model.
func Predict(ctx context.Context, run Run, p Predictor, frameID string) (*frame.Frame, error) {
	leader, err := run.Leader(ctx)
	if err != nil {
		return nil, err
	}
	if leader == nil {
		return nil, fmt.Errorf("run %q has no leader model yet", run.ProjectName())
	}
	return p.Predict(ctx, leader.ModelID, frameID)
}

// DownloadMOJO exports the leader model's MOJO artifact into dir and
// returns the written path.
func DownloadMOJO(ctx context.Context, run Run, exporter ArtifactExporter, dir string) (string, error) {
	leader, err := run.Leader(ctx)
	if err != nil {
		return "", err
	}
	if leader == nil {
		return "", fmt.Errorf("run %q has no leader model yet", run.ProjectName())
	}
	return exporter.ExportMOJO(ctx, leader.ModelID, dir)
}

// DownloadPOJO exports the leader model's POJO source into dir and
// returns the written path. An empty dir dumps the source to stdout,
// matching the backend CLI convention.
func DownloadPOJO(ctx context.Context, run Run, exporter ArtifactExporter, dir string) (string, error) {
	leader, err := run.Leader(ctx)
	if err != nil {
		return "", err
	}
	if leader == nil {
		return "", fmt.Errorf("run %q has no leader model yet", run.ProjectName())
	}
	return exporter.ExportPOJO(ctx, leader.ModelID, dir)
}

// TrainingInfoFromEventLog projects an event-log frame's name/value
// columns into a map. Rows with an empty name are skipped; later rows
// win on duplicate names.
func TrainingInfoFromEventLog(events *frame.Frame) (map[string]string, error) {
	if _, ok := events.ResolveColumn("name"); !ok {
		return nil, fmt.Errorf("event log has no name column")
	}
	if _, ok := events.ResolveColumn("value"); !ok {
		return nil, fmt.Errorf("event log has no value column")
	}
	info := make(map[string]string, events.NumRows())
	for row := 0; row < events.NumRows(); row++ {
		name, err := events.String(row, "name")
		if err != nil {
			return nil, err
		}
		if name == "" {
			continue
		}
		value, err := events.String(row, "value")
		if err != nil {
			return nil, err
		}
		info[name] = value
	}
	return info, nil
}
