// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"maps"
	"os"

	"github.com/caarlos0/env/v11"
)

// envAliases maps shell-facing variable names onto the config variables
// they stand for. The config variable wins when both are set.
var envAliases = map[string]string{
	"CASEVAULT_SESSION_ID": "APP_SESSION_ID",
}

// parseEnv fills cfg from environ, or from the process environment when
// environ is nil, following the env and envPrefix tags of
// [StructuredConfig].
func parseEnv(cfg *StructuredConfig, environ map[string]string) error {
	if environ == nil {
		environ = env.ToMap(os.Environ())
	} else {
		environ = maps.Clone(environ)
	}

	for alias, name := range envAliases {
		if v := environ[alias]; v != "" && environ[name] == "" {
			environ[name] = v
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
