package employees

import (
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/jbarros/go-timeclock-server/internal/apperr"
)

var (
	ErrEmployeeNotFound = fmt.Errorf("%w: employee not found", apperr.ErrNotFound)
	ErrInvalidSchedule  = fmt.Errorf("%w: schedule times must be HH:MM", apperr.ErrValidation)
)

// Service provides directory operations over the employee store.
type Service struct {
	repo Repo
}

func NewService(repo Repo) (*Service, error) {
	if repo == nil {
		return nil, errors.New("[NewService] employee repo is required")
	}
	return &Service{repo: repo}, nil
}

// List returns every registered employee.
func (s *Service) List() ([]*Employee, error) {
	list, err := s.repo.List()
	if err != nil {
		return nil, errors.Wrap(err, "[Service.List] repo.List")
	}
	return list, nil
}

// Get returns a single employee by ID.
func (s *Service) Get(id string) (*Employee, error) {
	employee, err := s.repo.GetByID(id)
	if err != nil {
		if apperr.Is(err, apperr.ErrNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, errors.Wrap(err, "[Service.Get] repo.GetByID")
	}
	return employee, nil
}

// UpdateSchedule sets the contracted working hours for an employee. Either
// bound may be empty, in which case the stored value is left untouched.
func (s *Service) UpdateSchedule(id, workStartTime, workEndTime string) (*Employee, error) {
	if err := validateClock(workStartTime); err != nil {
		return nil, err
	}
	if err := validateClock(workEndTime); err != nil {
		return nil, err
	}

	employee, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if workStartTime != "" {
		employee.WorkStartTime = workStartTime
	}
	if workEndTime != "" {
		employee.WorkEndTime = workEndTime
	}

	if err := s.repo.Upsert(employee); err != nil {
		return nil, errors.Wrap(err, "[Service.UpdateSchedule] repo.Upsert")
	}
	return employee, nil
}

func validateClock(value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse("15:04", value); err != nil {
		return ErrInvalidSchedule
	}
	return nil
}
