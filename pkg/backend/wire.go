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
	"fmt"
	"strconv"

	"github.com/AleutianAI/AleutianAutoML/pkg/automl"
	"github.com/AleutianAI/AleutianAutoML/pkg/frame"
)

// -----------------------------------------------------------------------------
// Wire Types
// -----------------------------------------------------------------------------

// wireTable is the backend's JSON encoding of a table: an ordered
// column list plus row-major cells. Cells arrive as JSON strings,
// numbers, booleans, or null.
type wireTable struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// toFrame converts the wire encoding into a frame snapshot.
func (t *wireTable) toFrame() (*frame.Frame, error) {
	rows := make([][]frame.Cell, len(t.Rows))
	for i, wireRow := range t.Rows {
		row := make([]frame.Cell, len(wireRow))
		for j, v := range wireRow {
			switch cell := v.(type) {
			case nil:
				row[j] = frame.Str("")
			case float64:
				row[j] = frame.Num(cell)
			case string:
				row[j] = frame.Str(cell)
			case bool:
				row[j] = frame.Str(strconv.FormatBool(cell))
			default:
				return nil, fmt.Errorf("unsupported cell type %T at row %d col %d", v, i, j)
			}
		}
		rows[i] = row
	}
	return frame.New(t.Columns, rows)
}

// wireModel is the backend's model resource.
type wireModel struct {
	ModelID   string             `json:"model_id"`
	Algorithm string             `json:"algorithm"`
	Category  string             `json:"category"`
	Metrics   map[string]float64 `json:"metrics"`
}

func (m *wireModel) toHandle() *automl.ModelHandle {
	return &automl.ModelHandle{
		ModelID:   m.ModelID,
		Algorithm: m.Algorithm,
		Category:  automl.ModelCategory(m.Category),
		Metrics:   m.Metrics,
	}
}

// wireRun is the backend's run summary resource.
type wireRun struct {
	ProjectName   string     `json:"project_name"`
	LeaderModelID string     `json:"leader_model_id"`
	Leaderboard   *wireTable `json:"leaderboard,omitempty"`
	EventLog      *wireTable `json:"event_log,omitempty"`
}

// wireLeaderboard wraps the leaderboard-only endpoint response.
type wireLeaderboard struct {
	Leaderboard wireTable `json:"leaderboard"`
}

// wireEvents wraps the event-log endpoint response.
type wireEvents struct {
	EventLog wireTable `json:"event_log"`
}

// wirePredictions wraps the prediction endpoint response.
type wirePredictions struct {
	Predictions wireTable `json:"predictions"`
}
