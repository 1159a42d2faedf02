package db

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jbarros/go-timeclock-server/worksessions"
)

var _ worksessions.Repo = (*SessionRepo)(nil)

type SessionRepo struct {
	db *gorm.DB
}

func NewSessionRepo(gormDB *gorm.DB) worksessions.Repo {
	return &SessionRepo{db: gormDB}
}

func (sr *SessionRepo) Save(session *worksessions.WorkSession) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
		// Insert of a second open session for the employee trips the
		// partial unique index and surfaces as a conflict.
		if err := sr.db.Omit("Employee").Create(session).Error; err != nil {
			return translate(err)
		}
		return nil
	}
	if err := sr.db.Omit("Employee").Save(session).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (sr *SessionRepo) FindOpenByEmployee(employeeID string) (*worksessions.WorkSession, error) {
	var session worksessions.WorkSession
	err := sr.db.Where("employee_id = ? AND checkout_time IS NULL", employeeID).
		Preload("Employee").
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil // no open session is not an error
	}
	if err != nil {
		return nil, translate(err)
	}
	return &session, nil
}

func (sr *SessionRepo) FindByEmployeeAndRange(employeeID string, start, end time.Time) ([]*worksessions.WorkSession, error) {
	var sessions []*worksessions.WorkSession
	err := sr.db.Where("employee_id = ? AND checkin_time >= ? AND checkin_time <= ?", employeeID, start, end).
		Preload("Employee").
		Order("checkin_time ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, translate(err)
	}
	return sessions, nil
}

func (sr *SessionRepo) FindAllInRange(start, end time.Time) ([]*worksessions.WorkSession, error) {
	var sessions []*worksessions.WorkSession
	err := sr.db.Where("checkin_time >= ? AND checkin_time <= ?", start, end).
		Preload("Employee").
		Order("checkin_time ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, translate(err)
	}
	return sessions, nil
}

func (sr *SessionRepo) FindByEmployee(employeeID string, offset, limit int) ([]*worksessions.WorkSession, int, error) {
	var total int64
	if err := sr.db.Model(&worksessions.WorkSession{}).
		Where("employee_id = ?", employeeID).
		Count(&total).Error; err != nil {
		return nil, 0, translate(err)
	}

	query := sr.db.Where("employee_id = ?", employeeID).
		Preload("Employee").
		Order("checkin_time DESC").
		Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var sessions []*worksessions.WorkSession
	if err := query.Find(&sessions).Error; err != nil {
		return nil, 0, translate(err)
	}
	return sessions, int(total), nil
}

func (sr *SessionRepo) LatestPerEmployee() ([]*worksessions.WorkSession, error) {
	latest := sr.db.Model(&worksessions.WorkSession{}).
		Select("employee_id, MAX(checkin_time) AS last_checkin").
		Group("employee_id")

	var sessions []*worksessions.WorkSession
	err := sr.db.
		Joins("JOIN (?) latest ON work_sessions.employee_id = latest.employee_id AND work_sessions.checkin_time = latest.last_checkin", latest).
		Preload("Employee").
		Order("checkin_time ASC").
		Find(&sessions).Error
	if err != nil {
		return nil, translate(err)
	}
	return sessions, nil
}
