package fakeemployeerepo

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jbarros/go-timeclock-server/employees"
	"github.com/jbarros/go-timeclock-server/internal/apperr"
)

var _ employees.Repo = (*FakeEmployeeRepo)(nil)

type FakeEmployeeRepo struct {
	employees map[string]*employees.Employee
	emailIds  map[string]string // email to employee id
	lock      sync.RWMutex
}

func NewFakeEmployeeRepo() employees.Repo {
	return &FakeEmployeeRepo{
		employees: make(map[string]*employees.Employee),
		emailIds:  make(map[string]string),
	}
}

func (er *FakeEmployeeRepo) Upsert(employee *employees.Employee) error {
	er.lock.Lock()
	defer er.lock.Unlock()

	if employee.ID == "" {
		employee.ID = uuid.New().String()
	}
	er.employees[employee.ID] = employee
	er.emailIds[employee.Email] = employee.ID
	return nil
}

func (er *FakeEmployeeRepo) GetByID(id string) (*employees.Employee, error) {
	er.lock.RLock()
	defer er.lock.RUnlock()

	employee, ok := er.employees[id]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return employee, nil
}

func (er *FakeEmployeeRepo) GetByEmail(email string) (*employees.Employee, error) {
	er.lock.RLock()
	defer er.lock.RUnlock()

	id, ok := er.emailIds[email]
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return er.employees[id], nil
}

func (er *FakeEmployeeRepo) List() ([]*employees.Employee, error) {
	er.lock.RLock()
	defer er.lock.RUnlock()

	list := make([]*employees.Employee, 0, len(er.employees))
	for _, e := range er.employees {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list, nil
}
