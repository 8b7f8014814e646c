// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the notes
// server. It is populated by merging built-in defaults, an optional JSON
// file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, logging and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Routes holds the default fallback messages of every endpoint.
	Routes Routes `envPrefix:"ROUTES_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// TokenSignKey is the secret used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of an issued token (e.g. "1h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// LogLevel is the minimal zerolog level ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is reported by the /api/version endpoint. When empty the
	// linker-provided build version is used.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration of the persistence backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database.
type DB struct {
	// Driver selects the database/sql driver: "pgx" (PostgreSQL) or
	// "sqlite3".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name passed to sql.Open.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds the HTTP listener settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Routes holds the messages written by the default route fallbacks.
// Empty values keep the routehandler defaults.
type Routes struct {
	// Env: ROUTES_METHOD_NOT_ALLOWED_MESSAGE
	MethodNotAllowedMessage string `env:"METHOD_NOT_ALLOWED_MESSAGE"`

	// Env: ROUTES_UNAUTHORIZED_MESSAGE
	UnauthorizedMessage string `env:"UNAUTHORIZED_MESSAGE"`

	// Env: ROUTES_INTERNAL_SERVER_ERROR_MESSAGE
	InternalServerErrorMessage string `env:"INTERNAL_SERVER_ERROR_MESSAGE"`
}

// Supported values of [DB.Driver].
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// defaultConfig is the lowest-priority layer of every build.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-route-handler",
			TokenDuration: time.Hour,
			LogLevel:      "info",
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    "file:notes.db?_foreign_keys=on",
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges and validates the server configuration.
// Sources in increasing priority (later non-zero fields win):
//  1. Built-in defaults
//  2. JSON file (path resolved from sources 3 and 4)
//  3. Environment variables, including a .env file in the working directory
//  4. Command-line flags
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(ParseFlags).
		withJSON().
		build()
}
