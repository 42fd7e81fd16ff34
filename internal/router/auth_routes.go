package router

import (
	"github.com/labstack/echo/v4"

	"github.com/fitcore/gym-management/internal/middleware"
)

// registerAuth mounts the session endpoints. Login, register and the
// OAuth flow share one token bucket so credential stuffing and consent
// loops are throttled together.
func registerAuth(e *echo.Echo, d Deps) {
	g := e.Group("/api/auth")
	g.Use(middleware.NewTokenBucket(d.RateLimit, d.Redis))

	g.POST("/register", d.Auth.Register)
	g.POST("/login", d.Auth.Login)
	g.POST("/logout", d.Auth.Logout)
	g.GET("/google", d.OAuth.GoogleLogin)
	g.GET("/google/callback", d.OAuth.GoogleCallback)

	me := e.Group("/api")
	me.Use(middleware.SessionAuth(d.Cfg.JWTSecret, d.Cfg.SessionCookie))
	me.GET("/me", d.Auth.Me)
}
