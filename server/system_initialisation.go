package server

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/jbarros/go-timeclock-server/employees"
	"github.com/jbarros/go-timeclock-server/internal/apperr"
	"github.com/jbarros/go-timeclock-server/internal/config"
)

// InitialiseSystem ensures the seed admin account exists so a fresh install
// can be logged into. No password configured = no account created.
func (s *Server) InitialiseSystem(cfg config.Config) error {
	email := cfg.GetSeedAdminEmail()
	password := cfg.GetSeedAdminPassword()
	if password == "" {
		log.Warn().Msg("SEED_ADMIN_PASSWORD not set, skipping admin bootstrap")
		return nil
	}

	if _, err := s.employeeRepo.GetByEmail(email); err == nil {
		return nil // already bootstrapped
	} else if !apperr.Is(err, apperr.ErrNotFound) {
		return errors.Wrap(err, "[InitialiseSystem] GetByEmail")
	}

	hash, err := employees.HashPassword(password)
	if err != nil {
		return errors.Wrap(err, "[InitialiseSystem] HashPassword")
	}

	admin := &employees.Employee{
		Name:         cfg.GetSeedAdminName(),
		Email:        email,
		PasswordHash: hash,
		Role:         employees.RoleAdmin,
	}
	if err := s.employeeRepo.Upsert(admin); err != nil {
		return errors.Wrap(err, "[InitialiseSystem] Upsert admin")
	}

	log.Info().Str("email", email).Msg("seed admin account created")
	return nil
}
