package middleware

import (
	"net/http"
	"strings"

	deliverycontext "happnings/internal/delivery/context"
	"happnings/internal/delivery/http/response"
	"happnings/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the Bearer access token and stores the user ID on
// the request context for handlers.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authorization header is missing", "")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token format, must be Bearer token", "")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid or expired token", "")
		}

		deliverycontext.SetUserID(c, claims.UserID)

		return next(c)
	}
}
