package reports

import (
	"fmt"
	"math"
	"time"
)

// ChartData feeds a bar/line chart: one label and one hour total per bucket,
// oldest bucket first.
type ChartData struct {
	Categories []string  `json:"categories"`
	Series     []float64 `json:"series"`
}

// RankingEntry is one row of the hours-worked leaderboard.
type RankingEntry struct {
	Name       string  `json:"name"`
	TotalHours float64 `json:"total_hours"`
}

// SessionView is the display projection of a work session.
type SessionView struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	CheckinTime     string `json:"checkin_time"`
	CheckoutTime    string `json:"checkout_time,omitempty"`
	Duration        string `json:"duration"`
	DurationSeconds int64  `json:"duration_seconds"`
	ReasonID        string `json:"reason_id,omitempty"`
	ReasonLabel     string `json:"reason_label,omitempty"`
	Details         string `json:"details,omitempty"`
}

// StatusEntry is one employee's latest session, for the team dashboard.
type StatusEntry struct {
	SessionID       string     `json:"id"`
	EmployeeID      string     `json:"employee_id"`
	Name            string     `json:"name"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time"`
	DurationSeconds *int64     `json:"duration_seconds"`
}

// FormatDuration renders whole seconds as HH:MM:SS.
func FormatDuration(seconds int64) string {
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

// roundHours converts seconds to hours rounded half-away-from-zero to two
// decimal places.
func roundHours(seconds int64) float64 {
	return math.Round(float64(seconds)/3600.0*100.0) / 100.0
}
