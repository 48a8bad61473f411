package v1

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/duynhne/focus-service/internal/core/domain"
	"github.com/duynhne/focus-service/middleware"
)

// FocusService implements session and statistics business rules.
// It depends on repository interfaces (injected via constructor) and
// MUST NOT access the database or SQL directly.
type FocusService struct {
	sessions domain.SessionRepository
	users    domain.UserRepository

	// now is swappable in tests; production uses time.Now.
	now func() time.Time
}

// NewFocusService creates a new FocusService with the given repository dependencies.
func NewFocusService(sessions domain.SessionRepository, users domain.UserRepository) *FocusService {
	return &FocusService{
		sessions: sessions,
		users:    users,
		now:      time.Now,
	}
}

// ListSessions returns every stored session, most recent first.
func (s *FocusService) ListSessions(ctx context.Context) ([]domain.Session, error) {
	ctx, span := middleware.StartSpan(ctx, "focus.list_sessions", trace.WithAttributes(
		attribute.String("layer", "logic"),
	))
	defer span.End()

	sessions, err := s.sessions.List(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	span.SetAttributes(attribute.Int("session.count", len(sessions)))
	return sessions, nil
}

// CreateSession persists a new session and applies its duration to the
// owner profile. The date key is stamped from the creation instant, not
// from the stored timestamp. The session insert is durable even when the
// profile update then fails; there is no cross-store transaction, so a
// profile failure surfaces as an error over an already-written session.
func (s *FocusService) CreateSession(ctx context.Context, req domain.CreateSessionRequest) (*domain.Session, error) {
	ctx, span := middleware.StartSpan(ctx, "focus.create_session", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("session.task", req.Task),
	))
	defer span.End()

	if req.Task == "" {
		return nil, fmt.Errorf("create session: %w", ErrTaskRequired)
	}
	if req.Duration == 0 {
		return nil, fmt.Errorf("create session: %w", ErrDurationRequired)
	}

	sessionType := req.Type
	if sessionType == "" {
		sessionType = "focus"
	}
	userID := req.UserID
	if userID == "" {
		userID = domain.DefaultUserID
	}

	created, err := s.sessions.Create(ctx, domain.Session{
		Task:     req.Task,
		Duration: req.Duration,
		Type:     sessionType,
		Date:     DateKey(s.now()),
		UserID:   userID,
	})
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("insert session: %w", err)
	}

	profile, err := s.users.AddFocus(ctx, userID, req.Duration)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("update profile for %q: %w", userID, err)
	}

	span.SetAttributes(
		attribute.Int64("session.id", created.ID),
		attribute.Int("user.total_focus", profile.TotalFocus),
		attribute.Int("user.level", profile.Level),
	)
	span.AddEvent("session.created")

	return created, nil
}

// DeleteSession removes the session with the given id. Absent ids are a
// no-op; callers cannot distinguish the two outcomes.
func (s *FocusService) DeleteSession(ctx context.Context, id int64) error {
	ctx, span := middleware.StartSpan(ctx, "focus.delete_session", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.Int64("session.id", id),
	))
	defer span.End()

	if err := s.sessions.Delete(ctx, id); err != nil {
		span.RecordError(err)
		return fmt.Errorf("delete session %d: %w", id, err)
	}

	return nil
}

// GetProfile returns the profile for userID, persisting a default-valued
// one when absent (the lazy-create path behind GET /api/user).
func (s *FocusService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	ctx, span := middleware.StartSpan(ctx, "focus.get_profile", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("user.id", userID),
	))
	defer span.End()

	profile, err := s.users.Ensure(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("ensure profile for %q: %w", userID, err)
	}

	return profile, nil
}

// GetStats computes the stats read-model fresh from the full session set.
//
// Known limitation carried over from the original backend: the session
// scan is not filtered by userID, so with multiple identities in the
// store every session contributes to the aggregates. The profile lookup
// IS scoped. A missing profile yields a transient default that is not
// persisted by this read path.
func (s *FocusService) GetStats(ctx context.Context, userID string) (*domain.Stats, error) {
	ctx, span := middleware.StartSpan(ctx, "focus.get_stats", trace.WithAttributes(
		attribute.String("layer", "logic"),
		attribute.String("user.id", userID),
	))
	defer span.End()

	sessions, err := s.sessions.List(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	profile, err := s.users.Get(ctx, userID)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("load profile for %q: %w", userID, err)
	}
	if profile == nil {
		p := domain.DefaultProfile(userID)
		profile = &p
	}

	stats := BuildStats(sessions, *profile, s.now())

	span.SetAttributes(
		attribute.Int("stats.total_sessions", stats.TotalSessions),
		attribute.Int("stats.today_total", stats.TodayTotal),
	)

	return &stats, nil
}
