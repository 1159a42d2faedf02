package config

type Config interface {
	EnvConfig
	CorsConfig
	SecurityConfig
}

type EnvConfig interface {
	GetPort() string
	GetAppName() string
	GetEnv() string
	GetDatabasePath() string
}

type CorsConfig interface {
	GetAllowedOrigins() AllowedOrigins
	GetAllowedMethods() string
	GetAllowedHeaders() string
}

type mainConfig struct {
	EnvVars
	Cors
	Security
}

// New builds the configuration from the process environment. A .env file in
// the working directory is loaded first, if present.
func New() Config {
	loadDotEnv()
	return mainConfig{}
}
