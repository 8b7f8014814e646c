package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{name: "empty address", addr: NetAddress{}, expected: ""},
		{name: "localhost with port", addr: NetAddress{Host: "localhost", Port: 8080}, expected: "localhost:8080"},
		{name: "IP address with port", addr: NetAddress{Host: "127.0.0.1", Port: 9090}, expected: "127.0.0.1:9090"},
		{name: "only port no host", addr: NetAddress{Port: 8080}, expected: ":8080"},
		{name: "IPv6", addr: NetAddress{Host: "::1", Port: 8080}, expected: "[::1]:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    NetAddress
	}{
		{name: "localhost", input: "localhost:8080", expected: NetAddress{Host: "localhost", Port: 8080}},
		{name: "IPv4", input: "127.0.0.1:9090", expected: NetAddress{Host: "127.0.0.1", Port: 9090}},
		{name: "all interfaces", input: ":8080", expected: NetAddress{Port: 8080}},
		{name: "IPv6", input: "[::1]:8080", expected: NetAddress{Host: "::1", Port: 8080}},
		{name: "missing port", input: "localhost", expectError: true},
		{name: "non numeric port", input: "localhost:http", expectError: true},
		{name: "zero port", input: "localhost:0", expectError: true},
		{name: "port out of range", input: "localhost:70000", expectError: true},
		{name: "hostname is not an IP", input: "example.com:80", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr)
		})
	}
}

func newTestFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags(newTestFlagSet(), []string{
		"-a", "127.0.0.1:8081",
		"-d", "postgres://localhost/notes",
		"-driver", "pgx",
		"-c", "/etc/notes.json",
		"-token-sign-key", "secret",
		"-token-issuer", "issuer",
		"-token-duration", "2h",
		"-request-timeout", "10s",
		"-shutdown-timeout", "3s",
		"-log-level", "debug",
		"-version", "9.9.9",
	})

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "postgres://localhost/notes", cfg.Storage.DB.DSN)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, "/etc/notes.json", cfg.JSONFilePath)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "9.9.9", cfg.App.Version)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg, err := parseFlags(newTestFlagSet(), []string{"-config", "/tmp/c.json"})

	require.NoError(t, err)
	assert.Equal(t, "/tmp/c.json", cfg.JSONFilePath)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := parseFlags(newTestFlagSet(), nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags(newTestFlagSet(), []string{"-a", "nowhere"})

	assert.Error(t, err)
}
