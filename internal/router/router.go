// Package router wires handlers and middleware onto the Echo instance:
// guarded pages, the auth endpoints and the role-gated API groups.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fitcore/gym-management/internal/config"
	"github.com/fitcore/gym-management/internal/handler"
	"github.com/fitcore/gym-management/internal/middleware"
)

// Deps collects everything route registration needs.
type Deps struct {
	Cfg           config.Config
	RateLimit     config.RateLimitConfig
	Cache         config.CacheConfig
	Redis         *redis.Client
	Log           *zap.Logger
	Auth          *handler.AuthHandler
	OAuth         *handler.OAuthHandler
	Users         *handler.UserHandler
	Subscriptions *handler.SubscriptionHandler
	Meals         *handler.MealHandler
	Exercises     *handler.ExerciseHandler
	Templates     *handler.TemplateHandler
	Assignments   *handler.AssignmentHandler
	Pages         *handler.PageHandler
}

// Register sets up the full route tree. The route guard runs globally;
// it redirects page traffic and leaves /api alone, where the verified
// session middleware takes over per group.
func Register(e *echo.Echo, d Deps) {
	e.Use(middleware.NewRouteGuard(d.Cfg.SessionCookie))

	e.GET("/healthz", handler.Health)

	registerPages(e, d)
	registerAuth(e, d)
	registerAPI(e, d)
}
