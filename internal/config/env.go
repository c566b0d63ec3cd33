// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// envAliases maps variable names commonly injected by hosting platforms to
// the names read by [StructuredConfig]. A variable set under the config's own
// name always wins over its alias.
var envAliases = map[string]string{
	"DATABASE_URL":     "STORAGE_DB_DATABASE_URI",
	"POSTGREST_URL":    "ADAPTER_REST_URL",
	"PGRST_JWT_SECRET": "ADAPTER_JWT_SECRET",
}

// parseEnv fills cfg from the process environment through its `env` and
// `envPrefix` tags, after resolving [envAliases].
func parseEnv(cfg any) error {
	opts := env.Options{Environment: resolveAliases(env.ToMap(os.Environ()))}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

func resolveAliases(vars map[string]string) map[string]string {
	for alias, name := range envAliases {
		if _, set := vars[name]; set {
			continue
		}
		if value, ok := vars[alias]; ok {
			vars[name] = value
		}
	}
	return vars
}
