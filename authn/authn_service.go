// Package authn is the first-party login glue over the employee directory:
// bcrypt password checks and the HS256 bearer tokens the HTTP layer consumes.
package authn

import (
	"github.com/pkg/errors"

	"github.com/jbarros/go-timeclock-server/employees"
)

// AuthService authenticates employees and issues access tokens.
type AuthService struct {
	employees employees.Repo
	tokens    *TokenManager
}

func NewAuthService(employeeRepo employees.Repo, tokens *TokenManager) (*AuthService, error) {
	if employeeRepo == nil {
		return nil, errors.New("[NewAuthService] Employees repo is required")
	}
	if tokens == nil {
		return nil, errors.New("[NewAuthService] token manager is required")
	}
	return &AuthService{employees: employeeRepo, tokens: tokens}, nil
}

// Login checks the credentials and returns a signed token plus the employee.
// Bad email and bad password are indistinguishable to the caller.
func (as *AuthService) Login(email, password string) (string, *employees.Employee, error) {
	employee, err := as.employees.GetByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !employees.CheckPasswordHash(password, employee.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := as.tokens.CreateToken(employee)
	if err != nil {
		return "", nil, errors.Wrap(err, "[Login] CreateToken")
	}
	return token, employee, nil
}

// Verify resolves a bearer token to the caller's identity.
func (as *AuthService) Verify(rawToken string) (*Identity, error) {
	return as.tokens.ParseToken(rawToken)
}
