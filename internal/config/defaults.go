package config

import "time"

// Default values applied before any other source.
const (
	DefaultHTTPAddress          = "0.0.0.0:8080"
	DefaultRequestTimeout       = 15 * time.Second
	DefaultListenChannel        = "driver_notifications_changes"
	DefaultRetryInitialInterval = 500 * time.Millisecond
	DefaultRetryMaxInterval     = 30 * time.Second
	DefaultLocalPath            = "driver.db"
	DefaultRole                 = "anon"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			Local: Local{Path: DefaultLocalPath},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			Role:           DefaultRole,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			ListenChannel:        DefaultListenChannel,
			RetryInitialInterval: DefaultRetryInitialInterval,
			RetryMaxInterval:     DefaultRetryMaxInterval,
		},
	}
}
