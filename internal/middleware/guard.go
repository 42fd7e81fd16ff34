package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fitcore/gym-management/internal/model"
	"github.com/fitcore/gym-management/internal/utils"
)

// publicRoutes are reachable without a session. Everything else under
// the page namespaces requires a valid cookie.
var publicRoutes = map[string]bool{
	"/login":         true,
	"/register":      true,
	"/admin/login":   true,
	"/trainer/login": true,
	"/healthz":       true,
}

// NewRouteGuard returns the page-level access guard. API routes are
// excluded here and carry their own verified session middleware; the
// guard only decodes the cookie (expiry checked, signature not), since
// the token never crosses a service boundary.
//
// Unauthenticated requests redirect to the namespace's login page with
// the original path in callbackUrl. Authenticated requests outside the
// role's allowed namespaces redirect to the role's own dashboard.
func NewRouteGuard(cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			if strings.HasPrefix(path, "/api/") || path == "/api" {
				return next(c)
			}
			if publicRoutes[path] {
				return next(c)
			}

			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return redirectToLogin(c, path)
			}
			claims, err := utils.DecodeSession(cookie.Value)
			if err != nil {
				return redirectToLogin(c, path)
			}
			roleID, err := model.RoleIDOf(claims.Role)
			if err != nil {
				return redirectToLogin(c, path)
			}
			cfg, err := model.ConfigFor(roleID)
			if err != nil {
				return redirectToLogin(c, path)
			}

			if !namespaceAllowed(cfg, path) {
				return c.Redirect(http.StatusFound, cfg.DashboardURL)
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

// namespaceOf buckets a path into its route namespace. Matching whole
// namespaces rather than raw prefixes keeps "/" from authorizing
// customers into /admin and /trainer.
func namespaceOf(path string) string {
	switch {
	case path == "/admin" || strings.HasPrefix(path, "/admin/"):
		return "/admin"
	case path == "/trainer" || strings.HasPrefix(path, "/trainer/"):
		return "/trainer"
	default:
		return "/"
	}
}

func namespaceAllowed(cfg model.RoleConfig, path string) bool {
	ns := namespaceOf(path)
	for _, allowed := range cfg.AllowedRoutes {
		if ns == allowed {
			return true
		}
	}
	return false
}

func redirectToLogin(c echo.Context, path string) error {
	login := "/login"
	switch namespaceOf(path) {
	case "/admin":
		login = "/admin/login"
	case "/trainer":
		login = "/trainer/login"
	}
	return c.Redirect(http.StatusFound, login+"?callbackUrl="+url.QueryEscape(path))
}
