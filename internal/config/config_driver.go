package config

import "fmt"

// DriverConfig is the configuration view of the terminal driver app.
//
// An empty DB.DSN is valid: the app then runs with notification sync
// disabled, which is the "backend not configured" state.
type DriverConfig struct {
	App     App
	DB      DB
	Local   Local
	Adapter Adapter
	Workers Workers
}

// GetDriverConfig builds and validates the driver app configuration.
func GetDriverConfig() (*DriverConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newDriverConfig(cfg)
}

func newDriverConfig(cfg *StructuredConfig) (*DriverConfig, error) {
	driverCfg := &DriverConfig{
		App:     cfg.App,
		DB:      cfg.Storage.DB,
		Local:   cfg.Storage.Local,
		Adapter: cfg.Adapter,
		Workers: cfg.Workers,
	}

	return driverCfg, driverCfg.validate()
}

// SyncConfigured reports whether the hosted database is configured.
func (cfg *DriverConfig) SyncConfigured() bool {
	return cfg.DB.DSN != ""
}
