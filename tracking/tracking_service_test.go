package tracking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jbarros/go-timeclock-server/employees"
	fakeemployeerepo "github.com/jbarros/go-timeclock-server/employees/repofake"
	"github.com/jbarros/go-timeclock-server/internal/apperr"
	"github.com/jbarros/go-timeclock-server/tracking"
	"github.com/jbarros/go-timeclock-server/worksessions"
	fakesessionrepo "github.com/jbarros/go-timeclock-server/worksessions/repofakes"
)

const (
	testEmployeeID   = "emp-1"
	testEmployeeName = "Alice Martins"
)

// testFixture holds all test dependencies
type testFixture struct {
	employeeRepo employees.Repo
	sessionRepo  worksessions.Repo
	service      *tracking.TrackingService
	now          time.Time
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	f := &testFixture{
		employeeRepo: fakeemployeerepo.NewFakeEmployeeRepo(),
		sessionRepo:  fakesessionrepo.NewFakeSessionRepo(),
		now:          time.Date(2026, time.March, 9, 8, 0, 0, 0, time.Local),
	}

	service, err := tracking.NewTrackingService(tracking.Repos{
		Employees: f.employeeRepo,
		Sessions:  f.sessionRepo,
	}, tracking.WithNowTime(func() time.Time { return f.now }))
	require.NoError(t, err)
	f.service = service

	require.NoError(t, f.employeeRepo.Upsert(&employees.Employee{
		ID:    testEmployeeID,
		Name:  testEmployeeName,
		Email: "alice@example.com",
		Role:  employees.RoleUser,
	}))

	return f
}

func (f *testFixture) advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func TestCheckInOpensSession(t *testing.T) {
	f := setupTestFixture(t)

	session, err := f.service.CheckIn(testEmployeeID)
	require.NoError(t, err)
	require.NotEmpty(t, session.ID)
	require.Equal(t, testEmployeeID, session.EmployeeID)
	require.Equal(t, f.now, session.CheckInTime)
	require.True(t, session.Open())
	require.Nil(t, session.DurationSeconds)
	require.Nil(t, session.Reason)
}

func TestCheckInTwiceFailsWithConflict(t *testing.T) {
	f := setupTestFixture(t)

	_, err := f.service.CheckIn(testEmployeeID)
	require.NoError(t, err)

	_, err = f.service.CheckIn(testEmployeeID)
	require.ErrorIs(t, err, tracking.ErrShiftAlreadyOpen)
	require.ErrorIs(t, err, apperr.ErrConflict)

	// The failed attempt must not have created a second session.
	open, err := f.sessionRepo.FindOpenByEmployee(testEmployeeID)
	require.NoError(t, err)
	require.NotNil(t, open)
}

func TestCheckInUnknownEmployee(t *testing.T) {
	f := setupTestFixture(t)

	_, err := f.service.CheckIn("ghost")
	require.ErrorIs(t, err, tracking.ErrEmployeeNotFound)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCheckOutClosesSession(t *testing.T) {
	f := setupTestFixture(t)

	opened, err := f.service.CheckIn(testEmployeeID)
	require.NoError(t, err)

	f.advance(3600 * time.Second)

	closed, err := f.service.CheckOut(testEmployeeID, "end_shift", "")
	require.NoError(t, err)
	require.Equal(t, opened.ID, closed.ID)
	require.False(t, closed.Open())
	require.NotNil(t, closed.DurationSeconds)
	require.Equal(t, int64(3600), *closed.DurationSeconds)
	require.Equal(t, worksessions.ReasonEndShift, *closed.Reason)
	require.Equal(t, "Fim de Expediente", closed.Reason.Label())

	// Closed session is persisted; no open session remains.
	open, err := f.sessionRepo.FindOpenByEmployee(testEmployeeID)
	require.NoError(t, err)
	require.Nil(t, open)
}

func TestCheckOutIsNotIdempotent(t *testing.T) {
	f := setupTestFixture(t)

	_, err := f.service.CheckIn(testEmployeeID)
	require.NoError(t, err)

	_, err = f.service.CheckOut(testEmployeeID, "end_shift", "")
	require.NoError(t, err)

	_, err = f.service.CheckOut(testEmployeeID, "end_shift", "")
	require.ErrorIs(t, err, tracking.ErrNoOpenShift)
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestCheckOutReasonValidation(t *testing.T) {
	tests := []struct {
		name       string
		reasonCode string
		details    string
		wantErr    error
	}{
		{name: "unknown reason", reasonCode: "vacation", wantErr: worksessions.ErrInvalidReason},
		{name: "other without details", reasonCode: "other", details: "", wantErr: tracking.ErrDetailsRequired},
		{name: "other with blank details", reasonCode: "other", details: "   \t", wantErr: tracking.ErrDetailsRequired},
		{name: "other with details", reasonCode: "other", details: "errand"},
		{name: "uppercase code accepted", reasonCode: "END_SHIFT"},
		{name: "mixed case code accepted", reasonCode: "Lunch_Start"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupTestFixture(t)
			_, err := f.service.CheckIn(testEmployeeID)
			require.NoError(t, err)

			_, err = f.service.CheckOut(testEmployeeID, tt.reasonCode, tt.details)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.ErrorIs(t, err, apperr.ErrValidation)

				// A rejected checkout leaves the shift open.
				open, ferr := f.sessionRepo.FindOpenByEmployee(testEmployeeID)
				require.NoError(t, ferr)
				require.NotNil(t, open)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestCheckInLosingStoreRaceIsConflict(t *testing.T) {
	f := setupTestFixture(t)

	// Simulate a concurrent caller winning between lookup and insert by
	// planting an open session directly in the store.
	require.NoError(t, f.sessionRepo.Save(&worksessions.WorkSession{
		EmployeeID:  testEmployeeID,
		CheckInTime: f.now.Add(-time.Minute),
	}))

	_, err := f.service.CheckIn(testEmployeeID)
	require.ErrorIs(t, err, tracking.ErrShiftAlreadyOpen)
}

func TestStatus(t *testing.T) {
	f := setupTestFixture(t)

	session, err := f.service.Status(testEmployeeID)
	require.NoError(t, err)
	require.Nil(t, session)

	opened, err := f.service.CheckIn(testEmployeeID)
	require.NoError(t, err)

	session, err = f.service.Status(testEmployeeID)
	require.NoError(t, err)
	require.NotNil(t, session)
	require.Equal(t, opened.ID, session.ID)
}

func TestDifferentEmployeesAreIndependent(t *testing.T) {
	f := setupTestFixture(t)
	require.NoError(t, f.employeeRepo.Upsert(&employees.Employee{
		ID:    "emp-2",
		Name:  "Bruno Costa",
		Email: "bruno@example.com",
		Role:  employees.RoleUser,
	}))

	_, err := f.service.CheckIn(testEmployeeID)
	require.NoError(t, err)

	// A second employee can check in while the first shift is open.
	_, err = f.service.CheckIn("emp-2")
	require.NoError(t, err)
}
