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
)

// GetBestModel selects the top-ranked model of a family from the run's
// leaderboard.
//
// # Description
//
// Fetches a fresh leaderboard snapshot, sorts it by the ranking
// criterion (descending for auc/aucpr, ascending otherwise), scans the
// sorted model_id column for the first id matching the family's prefix
// rule, and resolves that id through the registry.
//
// # Inputs
//
//   - ctx: Context for the underlying backend fetches
//   - run: The AutoML run to select from
//   - registry: Resolves the winning model id to a handle
//   - family: Case-insensitive family tag ("gbm", "drf", "xrt", ...)
//   - criterion: Optional case-insensitive leaderboard column name.
//     Empty means: derive from the leader model's category
//     (Regression -> mean_residual_deviance, Binomial -> auc,
//     anything else -> mean_per_class_error).
//
// # Outputs
//
//   - *ModelHandle: The best model of the family, or nil when the run
//     trained no model of that family (a normal outcome, not an error)
//   - error: InvalidArgumentError for an unknown family or a criterion
//     (explicit or defaulted) missing from the leaderboard; backend
//     errors from run and registry pass through unmodified
//
// # Examples
//
//	gbm, err := automl.GetBestModel(ctx, run, client, "gbm", "")
//	ensemble, err := automl.GetBestModel(ctx, run, client, "stacked_ensemble", "logloss")
//
// # Assumptions
//
//   - The leaderboard snapshot has a model_id column.
//   - Each call works on its own snapshot; the result can change while
//     the remote run is still training.
func GetBestModel(ctx context.Context, run Run, registry ModelRegistry, family, criterion string) (*ModelHandle, error) {
	fam, err := ParseModelFamily(family)
	if err != nil {
		return nil, err
	}

	leaderboard, err := run.Leaderboard(ctx)
	if err != nil {
		return nil, err
	}

	if criterion == "" {
		leader, err := run.Leader(ctx)
		if err != nil {
			return nil, err
		}
		category := ModelCategory("")
		if leader != nil {
			category = leader.Category
		}
		criterion = DefaultCriterion(category)
	}

	// Defaulted criteria get the same existence check as explicit ones.
	column, ok := leaderboard.ResolveColumn(criterion)
	if !ok {
		return nil, &InvalidArgumentError{
			Argument: "criterion",
			Value:    criterion,
			Message:  fmt.Sprintf("criterion %q is not present in the leaderboard", criterion),
		}
	}

	sorted, err := leaderboard.Sort(column, CriterionAscending(column))
	if err != nil {
		return nil, err
	}

	for row := 0; row < sorted.NumRows(); row++ {
		modelID, err := sorted.String(row, "model_id")
		if err != nil {
			return nil, err
		}
		if fam.Matches(modelID) {
			return registry.GetModel(ctx, modelID)
		}
	}

	// No model of this family in the run.
	return nil, nil
}
