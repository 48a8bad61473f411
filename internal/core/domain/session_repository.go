package domain

import (
	"context"
	"time"
)

// Session is one logged work or break interval.
// Date is the calendar-day grouping key stamped at creation time; it is
// derived from the creation instant, not from Timestamp, and uses the
// fixed YYYY-MM-DD layout so write-time and read-time grouping agree.
type Session struct {
	ID        int64     `json:"id"`
	Task      string    `json:"task"`
	Duration  int       `json:"duration"`
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Date      string    `json:"date"`
	UserID    string    `json:"userId"`
}

// CreateSessionRequest is the POST /api/sessions payload.
// Type and UserID are optional and defaulted by the Logic layer.
type CreateSessionRequest struct {
	Task     string `json:"task" binding:"required"`
	Duration int    `json:"duration" binding:"required"`
	Type     string `json:"type"`
	UserID   string `json:"userId"`
}

// SessionRepository defines the data-access contract for session operations.
// Implementations live in internal/core/repository (Core layer).
type SessionRepository interface {
	// List returns every stored session, most recent first.
	List(ctx context.Context) ([]Session, error)

	// Create inserts the given session and returns the stored row,
	// including the store-assigned id and timestamp.
	Create(ctx context.Context, s Session) (*Session, error)

	// Delete removes the session with the given id.
	// Deleting an id that does not exist is a silent no-op.
	Delete(ctx context.Context, id int64) error
}
