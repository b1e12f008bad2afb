package rest

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"journal-api/internal/server/auth"
	"journal-api/internal/server/models"
)

const ownerContextKey = "owner"

// requireAuth guards entry routes: it extracts the bearer token from the
// Authorization header, verifies it against the access secret, and attaches
// the owner identity to the request context. On failure the downstream
// handler is never invoked.
func (s *Server) requireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Access token not provided"})
			}

			claims, err := auth.ParseToken(token, s.accessTokenSecret)
			if err != nil {
				return c.JSON(http.StatusForbidden, ErrorResponse{Error: "Invalid access token provided"})
			}

			c.Set(ownerContextKey, models.Owner{Name: claims.Name, Email: claims.Email})
			return next(c)
		}
	}
}

// ownerFromContext returns the identity attached by requireAuth.
func ownerFromContext(c echo.Context) (models.Owner, bool) {
	owner, ok := c.Get(ownerContextKey).(models.Owner)
	return owner, ok
}

func bearerToken(value string) (string, bool) {
	const bearer = "Bearer "
	if !strings.HasPrefix(value, bearer) {
		return "", false
	}

	token := value[len(bearer):]
	if token == "" {
		return "", false
	}

	return token, true
}
