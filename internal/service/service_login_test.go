package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/fleet-notify/internal/logger"
	"github.com/MKhiriev/fleet-notify/internal/validators"
	"github.com/MKhiriev/fleet-notify/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memPreferences is an in-memory PreferenceRepository.
type memPreferences struct {
	values map[string]string
	err    error
}

func newMemPreferences() *memPreferences {
	return &memPreferences{values: make(map[string]string)}
}

func (m *memPreferences) Get(_ context.Context, key string) (string, bool, error) {
	if m.err != nil {
		return "", false, m.err
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memPreferences) Set(_ context.Context, key, value string) error {
	if m.err != nil {
		return m.err
	}
	m.values[key] = value
	return nil
}

func (m *memPreferences) Delete(_ context.Context, key string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.values, key)
	return nil
}

func TestLogin_RememberStoresDriver(t *testing.T) {
	prefs := newMemPreferences()
	svc := NewLoginService(prefs, validators.NewRequestValidator(), logger.Nop())

	driver, err := svc.Login(context.Background(), models.LoginForm{Username: "  ahmed ", Password: "secret", Remember: true})

	require.NoError(t, err)
	assert.Equal(t, "ahmed", driver)
	assert.Equal(t, "ahmed", prefs.values[models.RememberDriverKey])

	remembered, err := svc.RememberedDriver(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ahmed", remembered)
}

func TestLogin_ForgetClearsDriver(t *testing.T) {
	prefs := newMemPreferences()
	prefs.values[models.RememberDriverKey] = "omar"
	svc := NewLoginService(prefs, validators.NewRequestValidator(), logger.Nop())

	driver, err := svc.Login(context.Background(), models.LoginForm{Username: "ahmed", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "ahmed", driver)
	assert.NotContains(t, prefs.values, models.RememberDriverKey)

	remembered, err := svc.RememberedDriver(context.Background())
	require.NoError(t, err)
	assert.Empty(t, remembered)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	svc := NewLoginService(newMemPreferences(), validators.NewRequestValidator(), logger.Nop())

	for name, form := range map[string]models.LoginForm{
		"no username":    {Password: "secret"},
		"blank username": {Username: "   ", Password: "secret"},
		"no password":    {Username: "ahmed"},
		"nothing at all": {},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), form)
			assert.ErrorIs(t, err, ErrEmptyCredentials)
		})
	}
}

func TestLogin_StoreError(t *testing.T) {
	prefs := newMemPreferences()
	prefs.err = errors.New("disk full")
	svc := NewLoginService(prefs, validators.NewRequestValidator(), logger.Nop())

	_, err := svc.Login(context.Background(), models.LoginForm{Username: "ahmed", Password: "x", Remember: true})
	require.Error(t, err)

	_, err = svc.RememberedDriver(context.Background())
	require.Error(t, err)
}

func TestLogin_UsernameTooLong(t *testing.T) {
	prefs := newMemPreferences()
	svc := NewLoginService(prefs, validators.NewRequestValidator(), logger.Nop())

	long := make([]byte, validators.MaxUsernameLength+1)
	for i := range long {
		long[i] = 'a'
	}

	_, err := svc.Login(context.Background(), models.LoginForm{Username: string(long), Password: "x", Remember: true})
	assert.ErrorIs(t, err, validators.ErrUsernameTooLong)
	assert.NotErrorIs(t, err, ErrEmptyCredentials)
	assert.Empty(t, prefs.values)
}
