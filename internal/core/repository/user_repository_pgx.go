package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/duynhne/focus-service/internal/core/domain"
)

// PgxUserRepository implements domain.UserRepository using pgxpool.
type PgxUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PgxUserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{pool: pool}
}

// Get returns the profile for userID.
// Returns (nil, nil) when no profile exists.
func (r *PgxUserRepository) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT user_id, name, total_focus, streak, level FROM users WHERE user_id = $1`

	var p domain.Profile
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.Name, &p.TotalFocus, &p.Streak, &p.Level,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &p, nil
}

// Ensure returns the profile for userID, persisting a default-valued one
// first when absent. The no-op upsert keeps this safe under concurrent
// first reads.
func (r *PgxUserRepository) Ensure(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `
		INSERT INTO users (user_id, name)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING user_id, name, total_focus, streak, level
	`

	var p domain.Profile
	err := r.pool.QueryRow(ctx, query, userID, domain.DefaultUserName).Scan(
		&p.UserID, &p.Name, &p.TotalFocus, &p.Streak, &p.Level,
	)
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// AddFocus adds minutes to totalFocus and recomputes level in a single
// upsert, so concurrent creations for the same userID serialize on the
// row instead of racing a read-modify-write.
func (r *PgxUserRepository) AddFocus(ctx context.Context, userID string, minutes int) (*domain.Profile, error) {
	query := `
		INSERT INTO users (user_id, name, total_focus, level)
		VALUES ($1, $2, $3, $3 / $4 + 1)
		ON CONFLICT (user_id) DO UPDATE SET
			total_focus = users.total_focus + EXCLUDED.total_focus,
			level       = (users.total_focus + EXCLUDED.total_focus) / $4 + 1
		RETURNING user_id, name, total_focus, streak, level
	`

	var p domain.Profile
	err := r.pool.QueryRow(ctx, query, userID, domain.DefaultUserName, minutes, domain.FocusMinutesPerLevel).Scan(
		&p.UserID, &p.Name, &p.TotalFocus, &p.Streak, &p.Level,
	)
	if err != nil {
		return nil, err
	}

	return &p, nil
}
