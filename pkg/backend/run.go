// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package backend

import (
	"context"
	"net/url"

	"github.com/AleutianAI/AleutianAutoML/pkg/automl"
	"github.com/AleutianAI/AleutianAutoML/pkg/frame"
)

// RemoteRun implements automl.Run over the backend for one project.
//
// Every accessor fetches fresh state; nothing is cached between calls.
// Two calls may observe different snapshots of a run that is still
// training, which is the intended behavior.
type RemoteRun struct {
	client  *Client
	project string
}

var _ automl.Run = (*RemoteRun)(nil)

// ProjectName returns the run's project name.
func (r *RemoteRun) ProjectName() string {
	return r.project
}

func (r *RemoteRun) runPath(suffix string) string {
	return "/3/AutoML/" + url.PathEscape(r.project) + suffix
}

// Leader returns the run's current top-ranked model, or nil when the
// run has not produced one yet.
func (r *RemoteRun) Leader(ctx context.Context) (*automl.ModelHandle, error) {
	var run wireRun
	if err := r.client.getJSON(ctx, "automl", r.runPath(""), r.project, &run); err != nil {
		return nil, err
	}
	if run.LeaderModelID == "" {
		return nil, nil
	}
	return r.client.GetModel(ctx, run.LeaderModelID)
}

// Leaderboard returns the run's current ranked candidate table.
func (r *RemoteRun) Leaderboard(ctx context.Context) (*frame.Frame, error) {
	var lb wireLeaderboard
	if err := r.client.getJSON(ctx, "automl", r.runPath("/leaderboard"), r.project, &lb); err != nil {
		return nil, err
	}
	f, err := lb.Leaderboard.toFrame()
	if err != nil {
		return nil, r.client.invalidResponse("automl", r.project, err)
	}
	return f, nil
}

// EventLog returns the run's backend event table.
func (r *RemoteRun) EventLog(ctx context.Context) (*frame.Frame, error) {
	var ev wireEvents
	if err := r.client.getJSON(ctx, "automl", r.runPath("/events"), r.project, &ev); err != nil {
		return nil, err
	}
	f, err := ev.EventLog.toFrame()
	if err != nil {
		return nil, r.client.invalidResponse("automl", r.project, err)
	}
	return f, nil
}

// TrainingInfo projects the event log's name/value columns into a map.
func (r *RemoteRun) TrainingInfo(ctx context.Context) (map[string]string, error) {
	events, err := r.EventLog(ctx)
	if err != nil {
		return nil, err
	}
	return automl.TrainingInfoFromEventLog(events)
}
