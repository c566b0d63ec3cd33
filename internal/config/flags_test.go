package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-a", "127.0.0.1:8081",
		"-d", "postgres://fleet@localhost/fleet",
		"-local", "/tmp/driver.db",
		"-config", "/etc/fleet.json",
		"-rest-url", "https://db.example.com/rest/v1",
		"-jwt-secret", "secret",
		"-role", "driver",
		"-request-timeout", "5s",
		"-listen-channel", "changes",
		"-log-file", "/tmp/driver.log",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://fleet@localhost/fleet", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/driver.db", cfg.Storage.Local.Path)
	assert.Equal(t, "/etc/fleet.json", cfg.JSONFilePath)
	assert.Equal(t, "https://db.example.com/rest/v1", cfg.Adapter.RESTURL)
	assert.Equal(t, "secret", cfg.Adapter.JWTSecret)
	assert.Equal(t, "driver", cfg.Adapter.Role)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "changes", cfg.Workers.ListenChannel)
	assert.Equal(t, "/tmp/driver.log", cfg.App.LogFile)
}

func TestParseFlags_NoFlags(t *testing.T) {
	cfg, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := ParseFlags([]string{"-a", "not-an-address"})
	assert.Error(t, err)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    NetAddress
		wantErr bool
	}{
		{name: "ip and port", input: "127.0.0.1:8080", want: NetAddress{Host: "127.0.0.1", Port: 8080}},
		{name: "localhost", input: "localhost:9000", want: NetAddress{Host: "localhost", Port: 9000}},
		{name: "missing port", input: "127.0.0.1", wantErr: true},
		{name: "non numeric port", input: "127.0.0.1:http", wantErr: true},
		{name: "port out of range", input: "127.0.0.1:70000", wantErr: true},
		{name: "bad host", input: "example:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a)
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	var a NetAddress
	assert.Equal(t, "", a.String())
}
