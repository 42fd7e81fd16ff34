// Package middleware holds the route guard, session verification and
// the Redis-backed rate-limit and cache middlewares.
package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/fitcore/gym-management/internal/model"
)

const identityKey = "identity"

// Identity is the authenticated caller extracted from the session
// token and stored on the echo context.
type Identity struct {
	UserID string
	Email  string
	Name   string
	Role   string
	RoleID model.RoleID
}

// SetIdentity stores the caller on the context. user_id is mirrored as
// its own key for middlewares that only need the id (rate limiting).
func SetIdentity(c echo.Context, id Identity) {
	c.Set(identityKey, id)
	c.Set("user_id", id.UserID)
}

// CurrentIdentity returns the caller set by the guard or SessionAuth.
func CurrentIdentity(c echo.Context) (Identity, bool) {
	id, ok := c.Get(identityKey).(Identity)
	return id, ok
}

func currentUserID(c echo.Context) string {
	if s, ok := c.Get("user_id").(string); ok && s != "" {
		return s
	}
	return "anon"
}
