// Package service defines domain-level interfaces implemented by the infra layer.
package service

import "github.com/golang-jwt/jwt/v5"

// TokenService validates bearer tokens issued by the identity provider.
// Token issuance lives with the provider; this engine only consumes tokens.
type TokenService interface {
	// ValidateToken checks the validity of a token string against a secret.
	ValidateToken(tokenString string, secret string) (*jwt.Token, error)
}
