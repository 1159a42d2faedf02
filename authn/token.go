package authn

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/jbarros/go-timeclock-server/employees"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

// Identity is the authenticated caller extracted from a bearer token.
type Identity struct {
	EmployeeID string
	Name       string
	Role       employees.RoleType
}

// TokenManager creates and verifies the HS256 access tokens used by the API.
type TokenManager struct {
	secret []byte
	expiry time.Duration
}

func NewTokenManager(secret string, expiry time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// CreateToken issues a signed token for the employee.
func (tm *TokenManager) CreateToken(employee *employees.Employee) (string, error) {
	claims := jwtlib.MapClaims{
		"sub":  employee.ID,
		"name": employee.Name,
		"role": string(employee.Role),
		"iat":  int64(NowTimeFunc().Unix()),
		"exp":  int64(NowTimeFunc().Add(tm.expiry).Unix()),
		"jti":  uuid.New().String(),
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", errors.Wrap(err, "[CreateToken] SignedString")
	}
	return signed, nil
}

// ParseToken verifies a raw token and returns the caller's identity.
func (tm *TokenManager) ParseToken(raw string) (*Identity, error) {
	token, err := jwtlib.Parse(raw, func(t *jwtlib.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return tm.secret, nil
	}, jwtlib.WithTimeFunc(func() time.Time { return NowTimeFunc() }))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, ErrInvalidToken
	}
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)

	return &Identity{
		EmployeeID: sub,
		Name:       name,
		Role:       employees.RoleType(role),
	}, nil
}
