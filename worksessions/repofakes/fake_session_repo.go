package fakesessionrepo

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jbarros/go-timeclock-server/internal/apperr"
	"github.com/jbarros/go-timeclock-server/worksessions"
)

var _ worksessions.Repo = (*FakeSessionRepo)(nil)

type FakeSessionRepo struct {
	sessions map[string]*worksessions.WorkSession
	lock     sync.RWMutex
}

func NewFakeSessionRepo() worksessions.Repo {
	return &FakeSessionRepo{
		sessions: make(map[string]*worksessions.WorkSession),
	}
}

func (sr *FakeSessionRepo) Save(session *worksessions.WorkSession) error {
	sr.lock.Lock()
	defer sr.lock.Unlock()

	if session.ID == "" {
		// Insert path: reject a second open session for the employee, the
		// same way the SQL store's partial unique index does.
		if session.Open() {
			for _, s := range sr.sessions {
				if s.EmployeeID == session.EmployeeID && s.Open() {
					return apperr.ErrConflict
				}
			}
		}
		session.ID = uuid.New().String()
	}

	copied := *session
	sr.sessions[session.ID] = &copied
	return nil
}

func (sr *FakeSessionRepo) FindOpenByEmployee(employeeID string) (*worksessions.WorkSession, error) {
	sr.lock.RLock()
	defer sr.lock.RUnlock()

	for _, s := range sr.sessions {
		if s.EmployeeID == employeeID && s.Open() {
			copied := *s
			return &copied, nil
		}
	}
	return nil, nil
}

func (sr *FakeSessionRepo) FindByEmployeeAndRange(employeeID string, start, end time.Time) ([]*worksessions.WorkSession, error) {
	sr.lock.RLock()
	defer sr.lock.RUnlock()

	var result []*worksessions.WorkSession
	for _, s := range sr.sessions {
		if s.EmployeeID != employeeID {
			continue
		}
		if inRange(s.CheckInTime, start, end) {
			copied := *s
			result = append(result, &copied)
		}
	}
	sortAscending(result)
	return result, nil
}

func (sr *FakeSessionRepo) FindAllInRange(start, end time.Time) ([]*worksessions.WorkSession, error) {
	sr.lock.RLock()
	defer sr.lock.RUnlock()

	var result []*worksessions.WorkSession
	for _, s := range sr.sessions {
		if inRange(s.CheckInTime, start, end) {
			copied := *s
			result = append(result, &copied)
		}
	}
	sortAscending(result)
	return result, nil
}

func (sr *FakeSessionRepo) FindByEmployee(employeeID string, offset, limit int) ([]*worksessions.WorkSession, int, error) {
	sr.lock.RLock()
	defer sr.lock.RUnlock()

	var result []*worksessions.WorkSession
	for _, s := range sr.sessions {
		if s.EmployeeID == employeeID {
			copied := *s
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CheckInTime.After(result[j].CheckInTime)
	})

	total := len(result)
	if offset >= total {
		return nil, total, nil
	}
	end := offset + limit
	if limit <= 0 || end > total {
		end = total
	}
	return result[offset:end], total, nil
}

func (sr *FakeSessionRepo) LatestPerEmployee() ([]*worksessions.WorkSession, error) {
	sr.lock.RLock()
	defer sr.lock.RUnlock()

	latest := make(map[string]*worksessions.WorkSession)
	for _, s := range sr.sessions {
		current, ok := latest[s.EmployeeID]
		if !ok || s.CheckInTime.After(current.CheckInTime) {
			latest[s.EmployeeID] = s
		}
	}

	result := make([]*worksessions.WorkSession, 0, len(latest))
	for _, s := range latest {
		copied := *s
		result = append(result, &copied)
	}
	sortAscending(result)
	return result, nil
}

func inRange(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

func sortAscending(sessions []*worksessions.WorkSession) {
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].CheckInTime.Before(sessions[j].CheckInTime)
	})
}
