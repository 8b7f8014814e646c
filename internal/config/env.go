// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var dotEnvLoaded sync.Once

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. A .env file in the working directory, if present, is loaded into
// the process environment first; variables already set are not overridden.
func parseEnv(cfg any) error {
	dotEnvLoaded.Do(func() {
		// a missing .env file is fine
		_ = godotenv.Load()
	})

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
