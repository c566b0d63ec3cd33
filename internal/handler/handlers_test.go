package handler

import (
	"errors"
	"testing"

	"github.com/MKhiriev/fleet-notify/internal/config"
	"github.com/MKhiriev/fleet-notify/internal/logger"
	"github.com/MKhiriev/fleet-notify/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080"}

	h, err := NewHandlers(&service.Services{}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.Server{}, logger.Nop())

	assert.Nil(t, h)
	assert.True(t, errors.Is(err, errNoHandlersAreCreated))
}
