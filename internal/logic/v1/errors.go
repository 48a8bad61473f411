// Package v1 provides focus-tracking business logic for API version 1.
//
// Error Handling:
// This package defines sentinel errors for the few failures the API
// distinguishes. They should be wrapped with context using
// fmt.Errorf("%w") when returned from business logic methods:
//
//	if req.Task == "" {
//	    return nil, fmt.Errorf("create session: %w", ErrTaskRequired)
//	}
//
// Handlers check them with errors.Is and map everything else to a
// generic 500 response carrying the underlying message.
package v1

import "errors"

// Sentinel errors for session operations.
var (
	// ErrTaskRequired indicates the session is missing a task label.
	// HTTP Status: 400 Bad Request
	ErrTaskRequired = errors.New("task is required")

	// ErrDurationRequired indicates the session is missing a duration.
	// HTTP Status: 400 Bad Request
	ErrDurationRequired = errors.New("duration is required")
)
