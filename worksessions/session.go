// Package worksessions defines the work-session record and its storage
// interface. A session is one continuous work period for one employee: it is
// created open on check-in and mutated exactly once on check-out, after which
// it is immutable.
package worksessions

import (
	"time"

	"github.com/jbarros/go-timeclock-server/employees"
)

type WorkSession struct {
	ID         string `gorm:"primarykey" json:"id"`
	EmployeeID string `gorm:"not null;index" json:"employee_id"`

	CheckInTime     time.Time    `gorm:"column:checkin_time;not null" json:"checkin_time"`
	CheckOutTime    *time.Time   `gorm:"column:checkout_time" json:"checkout_time"`
	DurationSeconds *int64       `json:"duration_seconds"`
	Reason          *CloseReason `gorm:"column:reason_id" json:"reason_id"`
	Details         string       `json:"details"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Employee *employees.Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

// Open reports whether the session has not been checked out yet.
func (s *WorkSession) Open() bool {
	return s.CheckOutTime == nil
}

// Close transitions the session to its terminal state. It does not validate
// the transition; that is the lifecycle engine's job.
func (s *WorkSession) Close(at time.Time, reason CloseReason, details string) {
	seconds := int64(at.Sub(s.CheckInTime).Seconds())
	s.CheckOutTime = &at
	s.DurationSeconds = &seconds
	s.Reason = &reason
	s.Details = details
}
