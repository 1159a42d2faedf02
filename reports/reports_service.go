// Package reports computes per-day totals, weekly charts and rankings from
// closed work sessions, plus range reports over both open and closed ones.
package reports

import (
	"fmt"
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/jbarros/go-timeclock-server/internal/apperr"
	"github.com/jbarros/go-timeclock-server/internal/utils"
	"github.com/jbarros/go-timeclock-server/worksessions"
)

const (
	dateLayout     = "2006-01-02"
	clockLayout    = "15:04:05"
	dayMonthLayout = "02/01"

	defaultWindowDays = 7
)

var ErrInvalidDate = fmt.Errorf("%w: dates must be YYYY-MM-DD", apperr.ErrValidation)

// ReportService reduces work-session ranges into display views. It is
// read-only: an unknown employee simply yields empty results.
type ReportService struct {
	sessions worksessions.Repo
	nowTime  func() time.Time // nowTime function (injectable for testing)
}

// ReportServiceOption defines a function type to modify the ReportService instance.
type ReportServiceOption func(*ReportService)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) ReportServiceOption {
	return func(rs *ReportService) {
		rs.nowTime = nowFunc
	}
}

// NewReportService initializes a new ReportService.
func NewReportService(sessions worksessions.Repo, options ...ReportServiceOption) (*ReportService, error) {
	if sessions == nil {
		return nil, errors.New("[NewReportService] Sessions repo is required")
	}

	reportService := &ReportService{
		sessions: sessions,
		nowTime:  time.Now,
	}

	for _, opt := range options {
		opt(reportService)
	}

	return reportService, nil
}

// WeeklySummary buckets closed-session hours over the 7 calendar days ending
// at refDate ("" = today), oldest day first. An empty employeeID aggregates
// every employee. Sessions are bucketed by the calendar date of their
// check-in, so a shift spanning midnight counts entirely on its start date.
func (rs *ReportService) WeeklySummary(employeeID, refDate string) (*ChartData, error) {
	ref, err := rs.parseDateOrToday(refDate)
	if err != nil {
		return nil, err
	}

	windowStart := ref.AddDate(0, 0, -(defaultWindowDays - 1))
	start, end := startOfDay(windowStart), endOfDay(ref)

	sessions, err := rs.findInRange(employeeID, start, end)
	if err != nil {
		return nil, err
	}

	days := make([]time.Time, 0, defaultWindowDays)
	totals := make(map[string]int64, defaultWindowDays)
	for d := startOfDay(windowStart); !d.After(ref); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
		totals[d.Format(dateLayout)] = 0
	}

	for _, session := range sessions {
		if session.Open() {
			continue // unknown duration, contributes nothing
		}
		key := session.CheckInTime.Format(dateLayout)
		if _, ok := totals[key]; ok {
			totals[key] += utils.Value(session.DurationSeconds)
		}
	}

	chart := &ChartData{
		Categories: make([]string, 0, len(days)),
		Series:     make([]float64, 0, len(days)),
	}
	for _, d := range days {
		chart.Categories = append(chart.Categories, d.Format(dayMonthLayout))
		chart.Series = append(chart.Series, roundHours(totals[d.Format(dateLayout)]))
	}
	return chart, nil
}

// Ranking totals closed-session hours per employee name over the windowDays
// calendar days ending at refDate ("" = today) and sorts descending by
// hours, name ascending on ties. Employees with no closed sessions in the
// window are absent.
func (rs *ReportService) Ranking(refDate string, windowDays int) ([]RankingEntry, error) {
	ref, err := rs.parseDateOrToday(refDate)
	if err != nil {
		return nil, err
	}
	if windowDays <= 0 {
		windowDays = defaultWindowDays
	}

	start := startOfDay(ref.AddDate(0, 0, -(windowDays - 1)))
	sessions, err := rs.sessions.FindAllInRange(start, endOfDay(ref))
	if err != nil {
		return nil, errors.Wrap(err, "[Ranking] FindAllInRange")
	}

	totals := make(map[string]int64)
	for _, session := range sessions {
		if session.Open() {
			continue
		}
		name := session.EmployeeID
		if session.Employee != nil {
			name = session.Employee.Name
		}
		totals[name] += utils.Value(session.DurationSeconds)
	}

	ranking := make([]RankingEntry, 0, len(totals))
	for name, seconds := range totals {
		ranking = append(ranking, RankingEntry{Name: name, TotalHours: roundHours(seconds)})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].TotalHours != ranking[j].TotalHours {
			return ranking[i].TotalHours > ranking[j].TotalHours
		}
		return ranking[i].Name < ranking[j].Name
	})
	return ranking, nil
}

// Report returns every session (open or closed) for the employee with a
// check-in inside [startDate 00:00:00, endDate 23:59:59.999…], most recent
// first. Open sessions get a live duration against the current time.
func (rs *ReportService) Report(employeeID, startDate, endDate string) ([]SessionView, error) {
	start, err := parseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(endDate)
	if err != nil {
		return nil, err
	}

	sessions, err := rs.sessions.FindByEmployeeAndRange(employeeID, startOfDay(start), endOfDay(end))
	if err != nil {
		return nil, errors.Wrap(err, "[Report] FindByEmployeeAndRange")
	}

	views := rs.toViews(sessions)
	sort.Slice(views, func(i, j int) bool {
		return views[i].Date+views[i].CheckinTime > views[j].Date+views[j].CheckinTime
	})
	return views, nil
}

// History returns a page of the employee's sessions, most recent first,
// optionally restricted to a single calendar day, plus the total row count.
func (rs *ReportService) History(employeeID, date string, offset, limit int) ([]SessionView, int, error) {
	if date == "" {
		sessions, total, err := rs.sessions.FindByEmployee(employeeID, offset, limit)
		if err != nil {
			return nil, 0, errors.Wrap(err, "[History] FindByEmployee")
		}
		return rs.toViews(sessions), total, nil
	}

	day, err := parseDate(date)
	if err != nil {
		return nil, 0, err
	}
	sessions, err := rs.sessions.FindByEmployeeAndRange(employeeID, startOfDay(day), endOfDay(day))
	if err != nil {
		return nil, 0, errors.Wrap(err, "[History] FindByEmployeeAndRange")
	}

	// Range queries come back ascending; history reads newest first.
	views := rs.toViews(sessions)
	for i, j := 0, len(views)-1; i < j; i, j = i+1, j-1 {
		views[i], views[j] = views[j], views[i]
	}

	total := len(views)
	if offset >= total {
		return nil, total, nil
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	return views[offset:end], total, nil
}

// TeamStatus returns each employee's most recent session, open or closed.
func (rs *ReportService) TeamStatus() ([]StatusEntry, error) {
	sessions, err := rs.sessions.LatestPerEmployee()
	if err != nil {
		return nil, errors.Wrap(err, "[TeamStatus] LatestPerEmployee")
	}

	entries := make([]StatusEntry, 0, len(sessions))
	for _, session := range sessions {
		name := session.EmployeeID
		if session.Employee != nil {
			name = session.Employee.Name
		}
		entries = append(entries, StatusEntry{
			SessionID:       session.ID,
			EmployeeID:      session.EmployeeID,
			Name:            name,
			StartTime:       session.CheckInTime,
			EndTime:         session.CheckOutTime,
			DurationSeconds: session.DurationSeconds,
		})
	}
	return entries, nil
}

// View projects a single session for display.
func (rs *ReportService) View(session *worksessions.WorkSession) SessionView {
	return rs.toView(session)
}

func (rs *ReportService) toViews(sessions []*worksessions.WorkSession) []SessionView {
	views := make([]SessionView, 0, len(sessions))
	for _, session := range sessions {
		views = append(views, rs.toView(session))
	}
	return views
}

func (rs *ReportService) toView(session *worksessions.WorkSession) SessionView {
	seconds := utils.Value(session.DurationSeconds)
	if session.Open() {
		seconds = int64(rs.nowTime().Sub(session.CheckInTime).Seconds())
	}

	view := SessionView{
		ID:              session.ID,
		Date:            session.CheckInTime.Format(dateLayout),
		CheckinTime:     session.CheckInTime.Format(clockLayout),
		Duration:        FormatDuration(seconds),
		DurationSeconds: seconds,
		Details:         session.Details,
	}
	if session.CheckOutTime != nil {
		view.CheckoutTime = session.CheckOutTime.Format(clockLayout)
	}
	if session.Reason != nil {
		view.ReasonID = session.Reason.Code()
		view.ReasonLabel = session.Reason.Label()
	}
	return view
}

func (rs *ReportService) findInRange(employeeID string, start, end time.Time) ([]*worksessions.WorkSession, error) {
	if employeeID == "" {
		sessions, err := rs.sessions.FindAllInRange(start, end)
		return sessions, errors.Wrap(err, "[findInRange] FindAllInRange")
	}
	sessions, err := rs.sessions.FindByEmployeeAndRange(employeeID, start, end)
	return sessions, errors.Wrap(err, "[findInRange] FindByEmployeeAndRange")
}

func (rs *ReportService) parseDateOrToday(value string) (time.Time, error) {
	if value == "" {
		now := rs.nowTime()
		return startOfDay(now), nil
	}
	return parseDate(value)
}

func parseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
	}
	return t, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
