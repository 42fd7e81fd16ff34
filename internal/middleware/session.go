package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fitcore/gym-management/internal/model"
	"github.com/fitcore/gym-management/internal/utils"
)

// SessionAuth verifies the session token for API routes. The token is
// taken from the Authorization bearer header when present, falling
// back to the session cookie, and is fully verified against the
// signing secret.
func SessionAuth(secret, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				if cookie, err := c.Cookie(cookieName); err == nil {
					token = cookie.Value
				}
			}
			if token == "" {
				return unauthorized(c)
			}
			claims, err := utils.ParseSession(secret, token)
			if err != nil {
				return unauthorized(c)
			}
			roleID, err := model.RoleIDOf(claims.Role)
			if err != nil {
				return unauthorized(c)
			}
			SetIdentity(c, Identity{
				UserID: claims.UserID,
				Email:  claims.Email,
				Name:   claims.Name,
				Role:   claims.Role,
				RoleID: roleID,
			})
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		return strings.TrimSpace(h[7:])
	}
	return ""
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]any{
		"success": false,
		"error":   "unauthorized",
	})
}
