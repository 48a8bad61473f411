package v1

import (
	"time"

	"github.com/duynhne/focus-service/internal/core/domain"
)

// Day keys and weekday labels use fixed layouts so grouping is
// deterministic and locale-independent. DateKey is the single formatter
// shared by session stamping (write side) and aggregation (read side);
// the two must never diverge or "today" grouping silently breaks.
const (
	dateKeyLayout = "2006-01-02"
	weekdayLayout = "Mon"
)

// DateKey returns the calendar-day grouping key for t.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// BuildStats folds the full session set and the owner profile into the
// stats read-model, relative to now. It is a pure function; the service
// layer supplies freshly loaded inputs on every request.
//
// Task breakdown buckets are emitted in first-occurrence order over the
// input slice (newest-first as repositories return it), which makes the
// order deterministic for a given session set.
func BuildStats(sessions []domain.Session, profile domain.Profile, now time.Time) domain.Stats {
	today := DateKey(now)

	todayTotal := 0
	todayCount := 0
	for _, s := range sessions {
		if s.Date == today {
			todayTotal += s.Duration
			todayCount++
		}
	}

	// Trailing 7-day window, oldest first, today last. Always 7 entries;
	// sessions outside the window simply match no bucket.
	weekly := make([]domain.DayBucket, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		key := DateKey(day)
		bucket := domain.DayBucket{Day: day.Format(weekdayLayout)}
		for _, s := range sessions {
			if s.Date == key {
				bucket.Sessions++
				bucket.Minutes += s.Duration
			}
		}
		weekly = append(weekly, bucket)
	}

	counts := make(map[string]int, len(sessions))
	order := make([]string, 0, len(sessions))
	for _, s := range sessions {
		if _, seen := counts[s.Task]; !seen {
			order = append(order, s.Task)
		}
		counts[s.Task]++
	}
	breakdown := make([]domain.TaskCount, 0, len(order))
	for _, task := range order {
		breakdown = append(breakdown, domain.TaskCount{Task: task, Count: counts[task]})
	}

	return domain.Stats{
		TodayTotal:    todayTotal,
		TodaySessions: todayCount,
		WeeklyData:    weekly,
		TotalSessions: len(sessions),
		TaskBreakdown: breakdown,
		User:          profile,
	}
}
