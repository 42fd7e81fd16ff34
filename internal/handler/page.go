package handler

import (
	"fmt"
	"html"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitcore/gym-management/internal/middleware"
	"github.com/fitcore/gym-management/internal/model"
)

// PageHandler serves the minimal server-rendered pages the route guard
// protects: one dashboard per namespace and the login pages. The real
// front end replaces these; they exist so guarded navigation has
// concrete targets.
type PageHandler struct{}

func NewPageHandler() *PageHandler { return &PageHandler{} }

// Dashboard renders the landing page for an authenticated user. The
// guard has already checked the namespace, so the identity is present.
func (h *PageHandler) Dashboard(c echo.Context) error {
	id, okID := middleware.CurrentIdentity(c)
	if !okID {
		return c.Redirect(http.StatusFound, "/login")
	}
	cfg, err := model.ConfigFor(id.RoleID)
	if err != nil {
		return c.Redirect(http.StatusFound, "/login")
	}
	page := fmt.Sprintf(
		`<!DOCTYPE html><html><head><title>%s Dashboard</title></head>
<body><h1>Welcome, %s</h1><p>Role: %s</p></body></html>`,
		cfg.DisplayName, html.EscapeString(id.Name), cfg.DisplayName)
	return c.HTML(http.StatusOK, page)
}

// LoginPage renders the login page for one role namespace with its
// banner asset.
func (h *PageHandler) LoginPage(role model.RoleID) echo.HandlerFunc {
	return func(c echo.Context) error {
		cfg, err := model.ConfigFor(role)
		if err != nil {
			return c.NoContent(http.StatusNotFound)
		}
		page := fmt.Sprintf(
			`<!DOCTYPE html><html><head><title>%s Login</title></head>
<body><img src="%s" alt="login banner"/>
<form method="post" action="/api/auth/login">
<input name="email" type="email" placeholder="email"/>
<input name="password" type="password" placeholder="password"/>
<button type="submit">Sign in</button>
</form></body></html>`,
			cfg.DisplayName, cfg.LoginBanner)
		return c.HTML(http.StatusOK, page)
	}
}

// RegisterPage renders the customer registration page.
func (h *PageHandler) RegisterPage(c echo.Context) error {
	page := `<!DOCTYPE html><html><head><title>Register</title></head>
<body><form method="post" action="/api/auth/register">
<input name="name" placeholder="name"/>
<input name="email" type="email" placeholder="email"/>
<input name="password" type="password" placeholder="password"/>
<button type="submit">Create account</button>
</form></body></html>`
	return c.HTML(http.StatusOK, page)
}
