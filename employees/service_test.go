package employees_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jbarros/go-timeclock-server/employees"
	fakeemployeerepo "github.com/jbarros/go-timeclock-server/employees/repofake"
	"github.com/jbarros/go-timeclock-server/internal/apperr"
)

func setupDirectory(t *testing.T) (employees.Repo, *employees.Service) {
	t.Helper()

	repo := fakeemployeerepo.NewFakeEmployeeRepo()
	service, err := employees.NewService(repo)
	require.NoError(t, err)

	require.NoError(t, repo.Upsert(&employees.Employee{
		ID:    "emp-1",
		Name:  "Alice Martins",
		Email: "alice@example.com",
		Role:  employees.RoleUser,
	}))
	return repo, service
}

func TestGetUnknownEmployee(t *testing.T) {
	_, service := setupDirectory(t)

	_, err := service.Get("ghost")
	require.ErrorIs(t, err, employees.ErrEmployeeNotFound)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestUpdateSchedule(t *testing.T) {
	repo, service := setupDirectory(t)

	updated, err := service.UpdateSchedule("emp-1", "08:00", "17:00")
	require.NoError(t, err)
	require.Equal(t, "08:00", updated.WorkStartTime)
	require.Equal(t, "17:00", updated.WorkEndTime)

	stored, err := repo.GetByID("emp-1")
	require.NoError(t, err)
	require.Equal(t, "17:00", stored.WorkEndTime)
}

func TestUpdateSchedulePartial(t *testing.T) {
	_, service := setupDirectory(t)

	_, err := service.UpdateSchedule("emp-1", "09:00", "18:00")
	require.NoError(t, err)

	// An empty bound leaves the stored value untouched.
	updated, err := service.UpdateSchedule("emp-1", "", "19:00")
	require.NoError(t, err)
	require.Equal(t, "09:00", updated.WorkStartTime)
	require.Equal(t, "19:00", updated.WorkEndTime)
}

func TestUpdateScheduleValidation(t *testing.T) {
	_, service := setupDirectory(t)

	_, err := service.UpdateSchedule("emp-1", "8am", "")
	require.ErrorIs(t, err, employees.ErrInvalidSchedule)
	require.ErrorIs(t, err, apperr.ErrValidation)

	_, err = service.UpdateSchedule("emp-1", "", "25:00")
	require.ErrorIs(t, err, employees.ErrInvalidSchedule)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := employees.HashPassword("s3cret-pass")
	require.NoError(t, err)
	require.True(t, employees.CheckPasswordHash("s3cret-pass", hash))
	require.False(t, employees.CheckPasswordHash("wrong", hash))
}
