package authn_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jbarros/go-timeclock-server/authn"
	"github.com/jbarros/go-timeclock-server/employees"
	fakeemployeerepo "github.com/jbarros/go-timeclock-server/employees/repofake"
)

const (
	testEmail    = "alice@example.com"
	testPassword = "password123"
)

func setupAuth(t *testing.T) *authn.AuthService {
	t.Helper()

	repo := fakeemployeerepo.NewFakeEmployeeRepo()

	hash, err := employees.HashPassword(testPassword)
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(&employees.Employee{
		ID:           "emp-1",
		Name:         "Alice Martins",
		Email:        testEmail,
		PasswordHash: hash,
		Role:         employees.RoleAdmin,
	}))

	service, err := authn.NewAuthService(repo, authn.NewTokenManager("test-secret", time.Hour))
	require.NoError(t, err)
	return service
}

func TestLoginAndVerify(t *testing.T) {
	service := setupAuth(t)

	token, employee, err := service.Login(testEmail, testPassword)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "emp-1", employee.ID)

	identity, err := service.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "emp-1", identity.EmployeeID)
	require.Equal(t, "Alice Martins", identity.Name)
	require.Equal(t, employees.RoleAdmin, identity.Role)
}

func TestLoginFailures(t *testing.T) {
	service := setupAuth(t)

	_, _, err := service.Login(testEmail, "wrong")
	require.ErrorIs(t, err, authn.ErrInvalidCredentials)

	_, _, err = service.Login("nobody@example.com", testPassword)
	require.ErrorIs(t, err, authn.ErrInvalidCredentials)
}

func TestVerifyRejectsGarbageAndExpired(t *testing.T) {
	service := setupAuth(t)

	_, err := service.Verify("not-a-token")
	require.ErrorIs(t, err, authn.ErrInvalidToken)

	// Issue a token, then move the clock past its expiry.
	token, _, err := service.Login(testEmail, testPassword)
	require.NoError(t, err)

	original := authn.NowTimeFunc
	authn.NowTimeFunc = func() time.Time { return original().Add(2 * time.Hour) }
	defer func() { authn.NowTimeFunc = original }()

	_, err = service.Verify(token)
	require.ErrorIs(t, err, authn.ErrInvalidToken)
}

func TestTokenSignatureChecked(t *testing.T) {
	service := setupAuth(t)

	token, _, err := service.Login(testEmail, testPassword)
	require.NoError(t, err)

	other := authn.NewTokenManager("different-secret", time.Hour)
	_, err = other.ParseToken(token)
	require.ErrorIs(t, err, authn.ErrInvalidToken)

	_, err = service.Verify(token)
	require.NoError(t, err)
}
