package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/fleet-notify/internal/logger"
	"github.com/MKhiriev/fleet-notify/internal/store"
	"github.com/MKhiriev/fleet-notify/internal/validators"
	"github.com/MKhiriev/fleet-notify/models"
)

type loginService struct {
	preferences store.PreferenceRepository
	validator   validators.Validator
	logger      *logger.Logger
}

func NewLoginService(preferences store.PreferenceRepository, validator validators.Validator, logger *logger.Logger) LoginService {
	return &loginService{
		preferences: preferences,
		validator:   validator,
		logger:      logger,
	}
}

// Login validates the form and returns the driver identity to activate.
// The remembered driver is stored or cleared according to form.Remember.
func (s *loginService) Login(ctx context.Context, form models.LoginForm) (string, error) {
	form.Username = strings.TrimSpace(form.Username)
	if err := s.validator.Validate(ctx, form); err != nil {
		if errors.Is(err, validators.ErrEmptyUsername) || errors.Is(err, validators.ErrEmptyPassword) {
			return "", fmt.Errorf("%w: %w", ErrEmptyCredentials, err)
		}
		return "", err
	}
	driver := form.Username

	var err error
	if form.Remember {
		err = s.preferences.Set(ctx, models.RememberDriverKey, driver)
	} else {
		err = s.preferences.Delete(ctx, models.RememberDriverKey)
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "loginService.Login").
			Bool("remember", form.Remember).
			Msg("failed to update remembered driver")
		return "", err
	}

	s.logger.Info().Str("func", "loginService.Login").Str("driver", driver).Msg("driver logged in")
	return driver, nil
}

func (s *loginService) RememberedDriver(ctx context.Context) (string, error) {
	driver, found, err := s.preferences.Get(ctx, models.RememberDriverKey)
	if err != nil {
		s.logger.Err(err).Str("func", "loginService.RememberedDriver").Msg("failed to read remembered driver")
		return "", err
	}
	if !found {
		return "", nil
	}
	return driver, nil
}
