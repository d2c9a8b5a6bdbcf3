// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"evently/config"
	domainerrors "evently/internal/domain/errors"
	"evently/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// sessionVerifier validates identity-provider session tokens. The token's
// claims carry the internal account id (pushed into the provider's metadata
// when the account was created) under publicMetadata.accountId.
type sessionVerifier struct {
	secret string
}

// NewSessionVerifier is the constructor for sessionVerifier.
func NewSessionVerifier(cfg *config.Config) (service.SessionVerifier, error) {
	if cfg.SecretKey.Session == "" {
		return nil, domainerrors.ErrConfiguration.WrapMessage("session secret must be provided")
	}

	return &sessionVerifier{secret: cfg.SecretKey.Session}, nil
}

// sessionClaims mirrors the session token claims the identity provider issues.
type sessionClaims struct {
	jwt.RegisteredClaims
	PublicMetadata struct {
		AccountID string `json:"accountId"`
	} `json:"publicMetadata"`
}

// Verify validates the token signature and expiry, then extracts the internal
// account id from the claims.
func (s *sessionVerifier) Verify(tokenString string) (uuid.UUID, error) {
	var claims sessionClaims

	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, domainerrors.ErrUnauthorized.WrapMessage("invalid session token")
	}

	accountID, err := uuid.Parse(claims.PublicMetadata.AccountID)
	if err != nil {
		return uuid.Nil, domainerrors.ErrUnauthorized.WrapMessage("session token carries no account id")
	}

	return accountID, nil
}
