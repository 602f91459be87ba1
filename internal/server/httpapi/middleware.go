package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mbelyaev/bookatable/internal/common"
	"github.com/mbelyaev/bookatable/internal/server/auth"
	"github.com/mbelyaev/bookatable/internal/server/models"
)

const userIDContextKey = "userID"

// requireAuth extracts the bearer token from the Authorization header,
// verifies it, and stores the caller's user id in the request context.
// A missing token answers 401; a malformed, forged or expired token
// answers 403 with one indistinguishable message.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)

		token := ""
		if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			token = parts[1]
		}
		if token == "" {
			return message(c, http.StatusUnauthorized, msgNoToken)
		}

		userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
		if err != nil {
			return message(c, http.StatusForbidden, msgInvalidToken)
		}

		c.Set(userIDContextKey, userID)
		return next(c)
	}
}

// requireAdmin re-reads the caller's role from the database on every
// request, so a role change or account deletion takes effect on the next
// request without reissuing the token. Must run after requireAuth.
func (s *Server) requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := c.Get(userIDContextKey).(string)
		if !ok {
			return message(c, http.StatusForbidden, msgAdminsOnly)
		}

		role, err := s.users.RoleFor(c.Request().Context(), userID)
		if err != nil {
			if errors.Is(err, common.ErrorForbidden) {
				return message(c, http.StatusForbidden, msgAdminsOnly)
			}
			return message(c, http.StatusInternalServerError, msgServerError)
		}

		if role != models.RoleAdmin {
			return message(c, http.StatusForbidden, msgAdminsOnly)
		}

		return next(c)
	}
}
