package middleware

import (
	"strings"

	"evently/internal/delivery/http/response"
	"evently/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// accountIDContextKey is the echo context key the authenticated account id is
// stored under.
const accountIDContextKey = "accountID"

// AuthMiddleware authenticates requests carrying an identity-provider session
// token.
type AuthMiddleware struct {
	sessionVerifier service.SessionVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionVerifier service.SessionVerifier) *AuthMiddleware {
	return &AuthMiddleware{sessionVerifier: sessionVerifier}
}

// Authenticate validates the bearer session token and stores the internal
// account id on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		accountID, err := m.sessionVerifier.Verify(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired session token")
		}

		c.Set(accountIDContextKey, accountID)

		return next(c)
	}
}

// AccountID extracts the authenticated account id set by Authenticate.
func AccountID(c echo.Context) (uuid.UUID, bool) {
	accountID, ok := c.Get(accountIDContextKey).(uuid.UUID)

	return accountID, ok
}
