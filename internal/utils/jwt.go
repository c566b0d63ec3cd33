package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/fleet-notify/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateRoleToken creates a signed HMAC-SHA256 JWT carrying a database
// role claim, as expected by PostgREST.
//
// The token includes the following claims:
//   - Role      (role): the database role to switch to
//   - Issuer    (iss): identifies the service that issued the token
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// Returns an error if role, tokenDuration or signKey is empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateRoleToken("anon", "fleet-driver", time.Hour, "secret")
func GenerateRoleToken(role, issuer string, tokenDuration time.Duration, signKey string) (string, error) {
	if role == "" || tokenDuration <= 0 || signKey == "" {
		return "", errors.New("invalid params for generating role token")
	}

	now := time.Now()
	claims := &models.RoleClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during singing role token: %w", err)
	}

	return signed, nil
}

// ValidateRoleToken verifies the signature and expiry of tokenString and
// returns its claims. Tokens without a role claim are rejected.
func ValidateRoleToken(tokenString, signKey string) (models.RoleClaims, error) {
	var claims models.RoleClaims

	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.RoleClaims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Role == "" {
		return models.RoleClaims{}, errors.New("empty role claim")
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
