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
	"bytes"
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Error Types
// -----------------------------------------------------------------------------

// BackendErrorType categorizes backend failures for programmatic handling.
type BackendErrorType int

const (
	// ErrorNotFound indicates the requested resource (model, run)
	// does not exist on the backend.
	ErrorNotFound BackendErrorType = iota

	// ErrorConnectionFailed indicates the backend is not reachable.
	ErrorConnectionFailed

	// ErrorInvalidResponse indicates the backend returned unexpected data.
	ErrorInvalidResponse

	// ErrorRequestFailed indicates the backend rejected the request.
	ErrorRequestFailed

	// ErrorContextCancelled indicates the operation was cancelled.
	ErrorContextCancelled
)

// String returns the error type as a string for logging.
func (t BackendErrorType) String() string {
	switch t {
	case ErrorNotFound:
		return "NOT_FOUND"
	case ErrorConnectionFailed:
		return "CONNECTION_FAILED"
	case ErrorInvalidResponse:
		return "INVALID_RESPONSE"
	case ErrorRequestFailed:
		return "REQUEST_FAILED"
	case ErrorContextCancelled:
		return "CONTEXT_CANCELLED"
	default:
		return "UNKNOWN"
	}
}

// BackendError provides structured error information for backend
// operations.
type BackendError struct {
	// Type categorizes the error for programmatic handling.
	Type BackendErrorType

	// Resource is the model id or project the operation targeted.
	Resource string

	// RequestID is the X-Request-Id sent with the failing call.
	RequestID string

	// Message is a human-readable error description.
	Message string

	// Detail provides technical information for debugging.
	Detail string

	// Remediation suggests how to fix the issue.
	Remediation string
}

// Error implements the error interface.
func (e *BackendError) Error() string {
	return e.Message
}

// FullError returns a detailed error message including remediation.
func (e *BackendError) FullError() string {
	var buf bytes.Buffer
	buf.WriteString(e.Message)
	if e.Resource != "" {
		buf.WriteString(fmt.Sprintf(" (resource: %s)", e.Resource))
	}
	if e.Detail != "" {
		buf.WriteString("\n\nDetails: ")
		buf.WriteString(e.Detail)
	}
	if e.Remediation != "" {
		buf.WriteString("\n\nTo fix:\n")
		buf.WriteString(e.Remediation)
	}
	return buf.String()
}

// IsNotFound reports whether err is a backend not-found error.
func IsNotFound(err error) bool {
	var be *BackendError
	return errors.As(err, &be) && be.Type == ErrorNotFound
}
