package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/duynhne/focus-service/internal/core/domain"
)

// PgxSessionRepository implements domain.SessionRepository using pgxpool.
type PgxSessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository creates a new PgxSessionRepository.
func NewSessionRepository(pool *pgxpool.Pool) *PgxSessionRepository {
	return &PgxSessionRepository{pool: pool}
}

// List returns every stored session, most recent first.
func (r *PgxSessionRepository) List(ctx context.Context) ([]domain.Session, error) {
	query := `
		SELECT id, task, duration, type, created_at, date, user_id
		FROM sessions
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := make([]domain.Session, 0)
	for rows.Next() {
		var s domain.Session
		if err := rows.Scan(
			&s.ID, &s.Task, &s.Duration, &s.Type, &s.Timestamp, &s.Date, &s.UserID,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

// Create inserts the given session and returns the stored row,
// including the store-assigned id and timestamp.
func (r *PgxSessionRepository) Create(ctx context.Context, s domain.Session) (*domain.Session, error) {
	query := `
		INSERT INTO sessions (task, duration, type, date, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	row := s
	err := r.pool.QueryRow(ctx, query, s.Task, s.Duration, s.Type, s.Date, s.UserID).
		Scan(&row.ID, &row.Timestamp)
	if err != nil {
		return nil, err
	}

	return &row, nil
}

// Delete removes the session with the given id.
// A zero-row delete is not an error; absent ids no-op.
func (r *PgxSessionRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM sessions WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
