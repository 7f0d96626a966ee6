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

import "errors"

// InvalidArgumentError reports a caller mistake: an unknown model
// family or a ranking criterion absent from the leaderboard. It is
// raised before any selection work happens; backend failures are never
// wrapped in it.
type InvalidArgumentError struct {
	// Argument names the offending parameter ("family" or "criterion").
	Argument string

	// Value is the rejected input as the caller supplied it.
	Value string

	// Message is the full human-readable description, including the
	// valid choices where they are enumerable.
	Message string
}

// Error implements the error interface.
func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// IsInvalidArgument reports whether err is an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var ia *InvalidArgumentError
	return errors.As(err, &ia)
}
