// Package tracking implements the work-session lifecycle engine: check-in
// opens a session, check-out closes it, and an employee can hold at most one
// open session at any time.
package tracking

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/jbarros/go-timeclock-server/employees"
	"github.com/jbarros/go-timeclock-server/internal/apperr"
	"github.com/jbarros/go-timeclock-server/worksessions"
)

// Repos holds all repository dependencies for the TrackingService
type Repos struct {
	Employees employees.Repo    // Directory of employees
	Sessions  worksessions.Repo // Work-session store
}

// TrackingService enforces the open/closed session invariant and records
// check-in/check-out events.
type TrackingService struct {
	repos   Repos
	nowTime func() time.Time // nowTime function (injectable for testing)
}

// TrackingServiceOption defines a function type to modify the TrackingService instance.
type TrackingServiceOption func(*TrackingService)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) TrackingServiceOption {
	return func(ts *TrackingService) {
		ts.nowTime = nowFunc
	}
}

// NewTrackingService initializes a new TrackingService with required dependencies.
func NewTrackingService(repos Repos, options ...TrackingServiceOption) (*TrackingService, error) {
	if repos.Employees == nil {
		return nil, errors.New("[NewTrackingService] Employees repo is required")
	}
	if repos.Sessions == nil {
		return nil, errors.New("[NewTrackingService] Sessions repo is required")
	}

	trackingService := &TrackingService{
		repos:   repos,
		nowTime: time.Now,
	}

	for _, opt := range options {
		opt(trackingService)
	}

	return trackingService, nil
}

// CheckIn opens a new work session for the employee. It fails with
// ErrShiftAlreadyOpen when the employee already has an open session, and with
// ErrEmployeeNotFound when the employee does not exist.
func (ts *TrackingService) CheckIn(employeeID string) (*worksessions.WorkSession, error) {
	open, err := ts.repos.Sessions.FindOpenByEmployee(employeeID)
	if err != nil {
		return nil, errors.Wrap(err, "[CheckIn] FindOpenByEmployee")
	}
	if open != nil {
		return nil, ErrShiftAlreadyOpen
	}

	employee, err := ts.repos.Employees.GetByID(employeeID)
	if err != nil {
		if apperr.Is(err, apperr.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, errors.Wrap(err, "[CheckIn] Employees.GetByID")
	}

	session := &worksessions.WorkSession{
		EmployeeID:  employee.ID,
		CheckInTime: ts.nowTime(),
		Employee:    employee,
	}

	if err := ts.repos.Sessions.Save(session); err != nil {
		// Lost the race to a concurrent check-in; the store's uniqueness
		// guarantee turns it into the same conflict as the lookup above.
		if apperr.Is(err, apperr.ErrConflict) {
			return nil, ErrShiftAlreadyOpen
		}
		return nil, errors.Wrap(err, "[CheckIn] Sessions.Save")
	}

	return session, nil
}

// CheckOut closes the employee's open session with the given reason. The
// reason code lookup is case-insensitive; reason "other" requires non-blank
// details. This is the only mutation path for an existing session and it is
// not idempotent: with no open session it fails with ErrNoOpenShift.
func (ts *TrackingService) CheckOut(employeeID, reasonCode, details string) (*worksessions.WorkSession, error) {
	session, err := ts.repos.Sessions.FindOpenByEmployee(employeeID)
	if err != nil {
		return nil, errors.Wrap(err, "[CheckOut] FindOpenByEmployee")
	}
	if session == nil {
		return nil, ErrNoOpenShift
	}

	reason, err := worksessions.ReasonFromCode(reasonCode)
	if err != nil {
		return nil, err
	}
	if reason == worksessions.ReasonOther && strings.TrimSpace(details) == "" {
		return nil, ErrDetailsRequired
	}

	session.Close(ts.nowTime(), reason, details)

	if err := ts.repos.Sessions.Save(session); err != nil {
		return nil, errors.Wrap(err, "[CheckOut] Sessions.Save")
	}

	return session, nil
}

// Status returns the employee's open session, or nil when the employee is
// checked out.
func (ts *TrackingService) Status(employeeID string) (*worksessions.WorkSession, error) {
	session, err := ts.repos.Sessions.FindOpenByEmployee(employeeID)
	if err != nil {
		return nil, errors.Wrap(err, "[Status] FindOpenByEmployee")
	}
	return session, nil
}
