// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/AleutianAutoML/pkg/automl"
)

// runLeaderboard prints the current leaderboard of a run, optionally
// re-sorted by a metric column (direction derived per metric, the same
// rule best-model uses).
func runLeaderboard(cmd *cobra.Command, args []string) {
	client, err := newBackendClient()
	if err != nil {
		fail(err)
	}
	run := client.AutoML(args[0])

	lb, err := run.Leaderboard(context.Background())
	if err != nil {
		fail(err)
	}

	if sortMetric != "" {
		column, ok := lb.ResolveColumn(sortMetric)
		if !ok {
			fail(fmt.Errorf("metric %q is not a leaderboard column", sortMetric))
		}
		lb, err = lb.Sort(column, automl.CriterionAscending(column))
		if err != nil {
			fail(err)
		}
	}

	fmt.Printf("Leaderboard for %s (%d models)\n\n", run.ProjectName(), lb.NumRows())
	fmt.Print(renderFrame(lb, stdoutIsTTY()))
}
