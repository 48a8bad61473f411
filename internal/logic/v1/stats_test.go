package v1

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duynhne/focus-service/internal/core/domain"
)

// A fixed reference instant keeps the window deterministic:
// Wednesday 2026-08-26, mid-afternoon.
var statsNow = time.Date(2026, 8, 26, 15, 30, 0, 0, time.UTC)

func sessionOn(day time.Time, task string, minutes int) domain.Session {
	return domain.Session{
		Task:     task,
		Duration: minutes,
		Type:     "focus",
		Date:     DateKey(day),
		UserID:   domain.DefaultUserID,
	}
}

func TestDateKeyIsFixedLayout(t *testing.T) {
	assert.Equal(t, "2026-08-26", DateKey(statsNow))
	assert.Equal(t, "2026-01-05", DateKey(time.Date(2026, 1, 5, 0, 0, 1, 0, time.UTC)))
}

func TestBuildStatsEmptySet(t *testing.T) {
	profile := domain.DefaultProfile(domain.DefaultUserID)

	stats := BuildStats(nil, profile, statsNow)

	assert.Zero(t, stats.TodayTotal)
	assert.Zero(t, stats.TodaySessions)
	assert.Zero(t, stats.TotalSessions)
	assert.Empty(t, stats.TaskBreakdown)
	assert.NotNil(t, stats.TaskBreakdown, "breakdown must serialize as [], not null")

	require.Len(t, stats.WeeklyData, 7)
	for _, bucket := range stats.WeeklyData {
		assert.Zero(t, bucket.Sessions)
		assert.Zero(t, bucket.Minutes)
		assert.NotEmpty(t, bucket.Day)
	}

	assert.Equal(t, profile, stats.User)
	assert.Equal(t, 1, stats.User.Level)
}

func TestBuildStatsTodayTotals(t *testing.T) {
	yesterday := statsNow.AddDate(0, 0, -1)
	sessions := []domain.Session{
		sessionOn(statsNow, "write docs", 25),
		sessionOn(statsNow, "review", 15),
		sessionOn(yesterday, "write docs", 50),
	}

	stats := BuildStats(sessions, domain.DefaultProfile(domain.DefaultUserID), statsNow)

	assert.Equal(t, 40, stats.TodayTotal)
	assert.Equal(t, 2, stats.TodaySessions)
	assert.Equal(t, 3, stats.TotalSessions)
}

func TestBuildStatsWeeklyWindow(t *testing.T) {
	sessions := []domain.Session{
		sessionOn(statsNow, "a", 25),                   // today, last bucket
		sessionOn(statsNow.AddDate(0, 0, -6), "b", 10), // window start, first bucket
		sessionOn(statsNow.AddDate(0, 0, -7), "c", 99), // one day outside the window
	}

	stats := BuildStats(sessions, domain.DefaultProfile(domain.DefaultUserID), statsNow)

	require.Len(t, stats.WeeklyData, 7)

	// Oldest to newest: first bucket is 6 days ago, last is today.
	assert.Equal(t, statsNow.AddDate(0, 0, -6).Format("Mon"), stats.WeeklyData[0].Day)
	assert.Equal(t, statsNow.Format("Mon"), stats.WeeklyData[6].Day)

	assert.Equal(t, 1, stats.WeeklyData[0].Sessions)
	assert.Equal(t, 10, stats.WeeklyData[0].Minutes)
	assert.Equal(t, 1, stats.WeeklyData[6].Sessions)
	assert.Equal(t, 25, stats.WeeklyData[6].Minutes)

	// The out-of-window session matches no bucket but still counts overall.
	windowSessions := 0
	for _, bucket := range stats.WeeklyData {
		windowSessions += bucket.Sessions
	}
	assert.Equal(t, 2, windowSessions)
	assert.Equal(t, 3, stats.TotalSessions)
}

func TestBuildStatsWeekdayLabelsOrdered(t *testing.T) {
	stats := BuildStats(nil, domain.DefaultProfile(domain.DefaultUserID), statsNow)

	require.Len(t, stats.WeeklyData, 7)
	for i, bucket := range stats.WeeklyData {
		expected := statsNow.AddDate(0, 0, -(6 - i)).Format("Mon")
		assert.Equal(t, expected, bucket.Day)
	}
	// 2026-08-26 is a Wednesday.
	assert.Equal(t, "Thu", stats.WeeklyData[0].Day)
	assert.Equal(t, "Wed", stats.WeeklyData[6].Day)
}

func TestBuildStatsTaskBreakdown(t *testing.T) {
	old := statsNow.AddDate(0, 0, -30)
	sessions := []domain.Session{
		sessionOn(statsNow, "deep work", 25),
		sessionOn(statsNow, "email", 10),
		sessionOn(statsNow, "deep work", 25),
		sessionOn(old, "deep work", 50), // outside the window, still counted
	}

	stats := BuildStats(sessions, domain.DefaultProfile(domain.DefaultUserID), statsNow)

	// First-occurrence order over the input slice.
	require.Len(t, stats.TaskBreakdown, 2)
	assert.Equal(t, domain.TaskCount{Task: "deep work", Count: 3}, stats.TaskBreakdown[0])
	assert.Equal(t, domain.TaskCount{Task: "email", Count: 1}, stats.TaskBreakdown[1])

	// Every session attributes to exactly one bucket.
	total := 0
	for _, tc := range stats.TaskBreakdown {
		total += tc.Count
	}
	assert.Equal(t, stats.TotalSessions, total)
}

func TestBuildStatsSingleSessionToday(t *testing.T) {
	profile := domain.Profile{
		UserID: domain.DefaultUserID, Name: domain.DefaultUserName,
		TotalFocus: 25, Level: 1,
	}
	sessions := []domain.Session{sessionOn(statsNow, "write spec", 25)}

	stats := BuildStats(sessions, profile, statsNow)

	assert.Equal(t, 25, stats.TodayTotal)
	assert.Equal(t, 1, stats.TodaySessions)
	assert.Equal(t, 1, stats.WeeklyData[6].Sessions)
	assert.Equal(t, 25, stats.WeeklyData[6].Minutes)
	assert.Equal(t, 25, stats.User.TotalFocus)
	assert.Equal(t, 1, stats.User.Level)
}
