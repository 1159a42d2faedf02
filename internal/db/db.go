// Package db implements the employee and work-session repositories on SQLite
// through gorm.
package db

import (
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jbarros/go-timeclock-server/employees"
	"github.com/jbarros/go-timeclock-server/worksessions"
)

// openSessionIndex enforces "at most one open session per employee" at the
// store level. The lifecycle engine's read-then-insert is only a courtesy
// check; this index is what holds under concurrent check-ins.
const openSessionIndex = `CREATE UNIQUE INDEX IF NOT EXISTS idx_work_sessions_open
ON work_sessions(employee_id) WHERE checkout_time IS NULL`

// Connect opens the SQLite database at path and runs migrations.
func Connect(path string) (*gorm.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create data directory")
	}

	gormDB, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent), // Quiet by default
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	if err := migrate(gormDB); err != nil {
		return nil, errors.Wrap(err, "failed to run migrations")
	}

	return gormDB, nil
}

// Close closes the underlying connection pool.
func Close(gormDB *gorm.DB) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func migrate(gormDB *gorm.DB) error {
	if err := gormDB.AutoMigrate(
		&employees.Employee{},
		&worksessions.WorkSession{},
	); err != nil {
		return err
	}
	return gormDB.Exec(openSessionIndex).Error
}
