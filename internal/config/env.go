// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads the vault client settings from environ, a list of
// KEY=VALUE pairs in the form returned by os.Environ. Variable names follow
// the `env` and `envPrefix` tags of [StructuredConfig], e.g. APP_ACCOUNT or
// CRYPTO_KDF_ITERATIONS. Unset variables leave their fields zero so lower
// precedence sources can fill them.
func parseEnv(environ []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: env.ToMap(environ)}); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}
	return cfg, nil
}
