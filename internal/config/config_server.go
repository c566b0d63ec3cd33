package config

import "fmt"

// ServerConfig is the configuration view of the dashboard server.
type ServerConfig struct {
	App     App
	Server  Server
	DB      DB
	Adapter Adapter
	Workers Workers
}

// GetServerConfig builds and validates the dashboard server configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App:     cfg.App,
		Server:  cfg.Server,
		DB:      cfg.Storage.DB,
		Adapter: cfg.Adapter,
		Workers: cfg.Workers,
	}

	return serverCfg, serverCfg.validate()
}
