package worksessions

import "time"

// Repo defines the interface for work-session storage.
//
// Save must enforce the one-open-session invariant atomically: inserting an
// open session for an employee that already has one fails with a conflict.
// The lifecycle engine performs its own lookup first for a friendlier error,
// but the store is the guarantee under concurrent check-ins.
type Repo interface {
	// Save inserts the session, assigning an ID when empty, or updates it
	Save(session *WorkSession) error

	// FindOpenByEmployee returns the employee's open session, or nil
	FindOpenByEmployee(employeeID string) (*WorkSession, error)

	// FindByEmployeeAndRange returns the employee's sessions whose check-in
	// time falls within [start, end], ascending by check-in time
	FindByEmployeeAndRange(employeeID string, start, end time.Time) ([]*WorkSession, error)

	// FindAllInRange is FindByEmployeeAndRange across every employee
	FindAllInRange(start, end time.Time) ([]*WorkSession, error)

	// FindByEmployee returns a page of the employee's sessions, descending
	// by check-in time, along with the total count
	FindByEmployee(employeeID string, offset, limit int) ([]*WorkSession, int, error)

	// LatestPerEmployee returns each employee's most recent session
	LatestPerEmployee() ([]*WorkSession, error)
}
