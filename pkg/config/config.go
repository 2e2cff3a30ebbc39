// Package config loads the application configuration from the environment,
// optionally seeded by a .env file.
package config

import (
	"log/slog"
	"time"
)

// Server holds HTTP server settings.
type Server struct {
	Host string
	Port int
}

// Log holds logger settings.
type Log struct {
	Level  string
	Format string
	Prefix string
}

// Fixtures controls the generated dataset backing the in-memory repository.
type Fixtures struct {
	Count int
	Seed  int64
}

// Fault controls the simulated transport of the in-memory repository.
// FailureRate 0 disables fault injection entirely.
type Fault struct {
	FailureRate float64
	MinDelay    time.Duration
	MaxDelay    time.Duration
}

// App is the full application configuration.
type App struct {
	Env      string
	Server   Server
	Log      Log
	Fixtures Fixtures
	Fault    Fault
}

// Load reads the configuration from the environment, with defaults suitable
// for local development.
func Load(logger *slog.Logger) *App {
	LoadEnv(logger)

	return &App{
		Env: GetEnv("APP_ENV", "development"),
		Server: Server{
			Host: GetEnv("SERVER_HOST", "0.0.0.0"),
			Port: GetEnvAsInt("SERVER_PORT", 3000),
		},
		Log: Log{
			Level:  GetEnv("LOG_LEVEL", "info"),
			Format: GetEnv("LOG_FORMAT", "text"),
			Prefix: GetEnv("LOG_PREFIX", "payboard"),
		},
		Fixtures: Fixtures{
			Count: GetEnvAsInt("FIXTURES_COUNT", 150),
			Seed:  GetEnvAsInt64("FIXTURES_SEED", 2024),
		},
		Fault: Fault{
			FailureRate: GetEnvAsFloat("FAULT_FAILURE_RATE", 0),
			MinDelay:    GetEnvAsDuration("FAULT_MIN_DELAY", 0),
			MaxDelay:    GetEnvAsDuration("FAULT_MAX_DELAY", 0),
		},
	}
}
