package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// ClientConfig configures the command-line client.
type ClientConfig struct {
	// ServerURL is the base URL of the notes server.
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL" envDefault:"http://localhost:8080"`

	// RequestTimeout bounds every outbound request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`

	// Token is the bearer token used for authenticated commands.
	// Env: CLIENT_TOKEN
	Token string `env:"TOKEN"`
}

type clientEnv struct {
	Client ClientConfig `envPrefix:"CLIENT_"`
}

// GetClientConfig loads the client configuration from the environment and
// applies the non-zero fields of overrides (usually command-line flags) on
// top of it.
func GetClientConfig(overrides ClientConfig) (*ClientConfig, error) {
	var fromEnv clientEnv
	if err := parseEnv(&fromEnv); err != nil {
		return nil, err
	}

	cfg := fromEnv.Client
	if err := mergo.Merge(&cfg, overrides, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging client configs: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
