package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	portEnvVar   = "PORT"
	appNameVar   = "APP_NAME"
	dbPathEnvVar = "DB_PATH"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func loadDotEnv() {
	if _, err := os.Stat(".env"); err != nil {
		return
	}
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("failed to load .env file")
	}
}

func (EnvVars) GetPort() string {
	port := GetEnv(portEnvVar, "8080")
	if port[0] != ':' {
		port = fmt.Sprintf(":%s", port)
	}
	return port
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Timeclock Server")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

// GetDatabasePath returns the path of the SQLite database file.
func (EnvVars) GetDatabasePath() string {
	return GetEnv(dbPathEnvVar, "./data/timeclock.db")
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
