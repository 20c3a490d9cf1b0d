// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environ, a KEY=value map, following the `env`
// and `envPrefix` tags of [StructuredConfig]. Keys absent from environ leave
// their fields zero so later sources and defaults can fill them.
func parseEnv(cfg *StructuredConfig, environ map[string]string) error {
	if environ == nil {
		environ = map[string]string{}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// processEnv returns the environment of the running process.
func processEnv() map[string]string {
	return env.ToMap(os.Environ())
}
