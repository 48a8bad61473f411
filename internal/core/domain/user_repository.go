package domain

import "context"

// Boundary defaults. The single implicit identity is applied at the web
// layer only; the Logic and Core layers always receive an explicit userId.
const (
	DefaultUserID   = "default_user"
	DefaultUserName = "Guest"
)

// FocusMinutesPerLevel is the cumulative focus time needed per level:
// level = totalFocus/1500 + 1.
const FocusMinutesPerLevel = 1500

// Profile is the per-user aggregate record.
// Streak is kept for schema compatibility; no operation mutates it.
type Profile struct {
	UserID     string `json:"userId"`
	Name       string `json:"name"`
	TotalFocus int    `json:"totalFocus"`
	Streak     int    `json:"streak"`
	Level      int    `json:"level"`
}

// DefaultProfile returns the transient default-valued profile for userID.
// It is not persisted; callers that need durability use Ensure.
func DefaultProfile(userID string) Profile {
	return Profile{
		UserID:     userID,
		Name:       DefaultUserName,
		TotalFocus: 0,
		Streak:     0,
		Level:      1,
	}
}

// UserRepository defines the data-access contract for profile operations.
// The Logic layer depends on this interface only — never on SQL or pgx directly.
type UserRepository interface {
	// Get returns the profile for userID.
	// Returns (nil, nil) when no profile exists.
	Get(ctx context.Context, userID string) (*Profile, error)

	// Ensure returns the profile for userID, persisting a default-valued
	// one first when absent.
	Ensure(ctx context.Context, userID string) (*Profile, error)

	// AddFocus atomically adds minutes to the profile's totalFocus and
	// recomputes level, creating the profile when absent. The increment
	// and the level recomputation happen in a single store operation so
	// concurrent writers for the same userID serialize on the row.
	AddFocus(ctx context.Context, userID string, minutes int) (*Profile, error)
}
