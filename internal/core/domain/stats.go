package domain

// DayBucket is one entry of the trailing 7-day view. Day carries the
// short weekday label ("Mon") under the json key the frontend charts on.
type DayBucket struct {
	Day      string `json:"date"`
	Sessions int    `json:"sessions"`
	Minutes  int    `json:"minutes"`
}

// TaskCount is one task-breakdown bucket.
type TaskCount struct {
	Task  string `json:"task"`
	Count int    `json:"count"`
}

// Stats is the GET /api/stats response: the derived read-model computed
// fresh from the full session set on every request.
type Stats struct {
	TodayTotal    int         `json:"todayTotal"`
	TodaySessions int         `json:"todaySessions"`
	WeeklyData    []DayBucket `json:"weeklyData"`
	TotalSessions int         `json:"totalSessions"`
	TaskBreakdown []TaskCount `json:"taskBreakdown"`
	User          Profile     `json:"user"`
}
