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
	"fmt"
	"sort"
	"strings"
)

// -----------------------------------------------------------------------------
// Model Families
// -----------------------------------------------------------------------------

// ModelFamily identifies an algorithm family by the naming convention
// of backend model ids. Each family maps to a fixed prefix rule over
// the model_id string.
type ModelFamily int

const (
	// FamilyBaseModel matches every model that is not a stacked
	// ensemble, regardless of algorithm.
	FamilyBaseModel ModelFamily = iota
	FamilyDeepLearning
	// FamilyDRF matches both DRF_ and XRT_ ids: extremely randomized
	// trees are a DRF variant and the backend names them accordingly.
	// FamilyXRT below matches only XRT_ ids; the overlap is
	// intentional, do not disambiguate it.
	FamilyDRF
	FamilyGBM
	FamilyGLM
	FamilyStackedEnsemble
	FamilyXGBoost
	FamilyXRT
)

const stackedEnsemblePrefix = "StackedEnsemble_"

// familyTags maps each family to its lowercase tag as accepted by
// ParseModelFamily.
var familyTags = map[ModelFamily]string{
	FamilyBaseModel:       "base_model",
	FamilyDeepLearning:    "deep_learning",
	FamilyDRF:             "drf",
	FamilyGBM:             "gbm",
	FamilyGLM:             "glm",
	FamilyStackedEnsemble: "stacked_ensemble",
	FamilyXGBoost:         "xgboost",
	FamilyXRT:             "xrt",
}

// familyPrefixes maps each family to the model_id prefixes it accepts.
// FamilyBaseModel is absent: it is a negation rule, handled in Matches.
var familyPrefixes = map[ModelFamily][]string{
	FamilyDeepLearning:    {"DeepLearning_"},
	FamilyDRF:             {"DRF_", "XRT_"},
	FamilyGBM:             {"GBM_"},
	FamilyGLM:             {"GLM_"},
	FamilyStackedEnsemble: {stackedEnsemblePrefix},
	FamilyXGBoost:         {"XGBoost_"},
	FamilyXRT:             {"XRT_"},
}

// String returns the family's tag ("gbm", "stacked_ensemble", ...).
func (f ModelFamily) String() string {
	if tag, ok := familyTags[f]; ok {
		return tag
	}
	return fmt.Sprintf("ModelFamily(%d)", int(f))
}

// Matches reports whether a model id belongs to the family.
func (f ModelFamily) Matches(modelID string) bool {
	if f == FamilyBaseModel {
		return !strings.HasPrefix(modelID, stackedEnsemblePrefix)
	}
	for _, prefix := range familyPrefixes[f] {
		if strings.HasPrefix(modelID, prefix) {
			return true
		}
	}
	return false
}

// FamilyTags returns the valid family tags sorted alphabetically.
func FamilyTags() []string {
	tags := make([]string, 0, len(familyTags))
	for _, tag := range familyTags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// ParseModelFamily resolves a case-insensitive family tag.
//
// Unknown tags fail with an InvalidArgumentError whose message lists
// every valid tag in alphabetical order.
func ParseModelFamily(s string) (ModelFamily, error) {
	lower := strings.ToLower(s)
	for family, tag := range familyTags {
		if tag == lower {
			return family, nil
		}
	}
	return 0, &InvalidArgumentError{
		Argument: "family",
		Value:    s,
		Message: fmt.Sprintf(`incorrect model family %q specified, has to be one of "%s"`,
			s, strings.Join(FamilyTags(), `", "`)),
	}
}

// -----------------------------------------------------------------------------
// Ranking Criteria
// -----------------------------------------------------------------------------

// higherIsBetter lists the metrics ranked in descending order. Every
// other leaderboard metric ranks ascending (lower is better).
var higherIsBetter = map[string]bool{
	"auc":   true,
	"aucpr": true,
}

// CriterionAscending reports the sort direction for a ranking metric:
// false (descending) for auc and aucpr, true otherwise. The name is
// matched case-insensitively.
func CriterionAscending(criterion string) bool {
	return !higherIsBetter[strings.ToLower(criterion)]
}

// DefaultCriterion picks the ranking metric for a model category when
// the caller supplies none. Unrecognized categories fall back to the
// multinomial default.
func DefaultCriterion(category ModelCategory) string {
	switch category {
	case CategoryRegression:
		return "mean_residual_deviance"
	case CategoryBinomial:
		return "auc"
	default:
		return "mean_per_class_error"
	}
}
