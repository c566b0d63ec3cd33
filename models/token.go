package models

import "github.com/golang-jwt/jwt/v5"

// RoleClaims are the claims of the bearer token presented to a PostgREST
// endpoint. PostgREST switches to the database role named in Role.
type RoleClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}
