package db

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jbarros/go-timeclock-server/employees"
	"github.com/jbarros/go-timeclock-server/internal/apperr"
)

var _ employees.Repo = (*EmployeeRepo)(nil)

type EmployeeRepo struct {
	db *gorm.DB
}

func NewEmployeeRepo(gormDB *gorm.DB) employees.Repo {
	return &EmployeeRepo{db: gormDB}
}

func (er *EmployeeRepo) Upsert(employee *employees.Employee) error {
	if employee.ID == "" {
		employee.ID = uuid.New().String()
		if err := er.db.Create(employee).Error; err != nil {
			return translate(err)
		}
		return nil
	}
	if err := er.db.Save(employee).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (er *EmployeeRepo) GetByID(id string) (*employees.Employee, error) {
	var employee employees.Employee
	if err := er.db.First(&employee, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &employee, nil
}

func (er *EmployeeRepo) GetByEmail(email string) (*employees.Employee, error) {
	var employee employees.Employee
	if err := er.db.First(&employee, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &employee, nil
}

func (er *EmployeeRepo) List() ([]*employees.Employee, error) {
	var list []*employees.Employee
	if err := er.db.Order("name ASC").Find(&list).Error; err != nil {
		return nil, translate(err)
	}
	return list, nil
}

// translate maps gorm errors onto the caller-visible error kinds.
func translate(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperr.ErrConflict
	default:
		return apperr.Wrapf(apperr.ErrInternal, "database error: %v", err)
	}
}
