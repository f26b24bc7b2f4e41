// Package service defines the interfaces for domain services implemented by
// the infrastructure layer.
package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService validates bearer tokens. Token issuance happens in a separate
// identity service; this application only verifies and reads claims.
type TokenService interface {
	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
