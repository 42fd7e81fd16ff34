package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitcore/gym-management/internal/model"
)

// RequireRole allows only callers whose role name matches one of the
// given names exactly. Use RequireAccess for hierarchy checks.
func RequireRole(names ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(names))
	for _, n := range names {
		allowed[n] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := CurrentIdentity(c)
			if !ok {
				return unauthorized(c)
			}
			if !allowed[id.Role] {
				return forbidden(c)
			}
			return next(c)
		}
	}
}

// RequireAccess allows callers whose role ranks at or above target in
// the role hierarchy. Master always passes.
func RequireAccess(target model.RoleID) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := CurrentIdentity(c)
			if !ok {
				return unauthorized(c)
			}
			if !model.CanAccess(id.RoleID, target) {
				return forbidden(c)
			}
			return next(c)
		}
	}
}

func forbidden(c echo.Context) error {
	return c.JSON(http.StatusForbidden, map[string]any{
		"success": false,
		"error":   "forbidden",
	})
}
