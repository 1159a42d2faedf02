package config

import (
	"time"
)

type SecurityConfig interface {
	GetJWTSecret() string
	GetTokenExpiry() time.Duration
	GetSeedAdminName() string
	GetSeedAdminEmail() string
	GetSeedAdminPassword() string
}

type Security struct{}

var _ SecurityConfig = Security{}

func (Security) GetJWTSecret() string {
	return GetEnv("JWT_SECRET", "dev-only-secret")
}

func (Security) GetTokenExpiry() time.Duration {
	expiry := GetEnv("TOKEN_EXPIRY", "8h")
	d, err := time.ParseDuration(expiry)
	if err != nil {
		return 8 * time.Hour
	}
	return d
}

func (Security) GetSeedAdminName() string {
	return GetEnv("SEED_ADMIN_NAME", "Administrator")
}

func (Security) GetSeedAdminEmail() string {
	return GetEnv("SEED_ADMIN_EMAIL", "admin@localhost")
}

func (Security) GetSeedAdminPassword() string {
	return GetEnv("SEED_ADMIN_PASSWORD", "")
}
