package router

import (
	"github.com/labstack/echo/v4"

	"github.com/fitcore/gym-management/internal/middleware"
	"github.com/fitcore/gym-management/internal/model"
)

// registerAPI mounts the role-gated JSON API. Every group runs the
// verified session middleware; role gates follow the hierarchy, so an
// admin can use the trainer surface and master can use everything.
func registerAPI(e *echo.Echo, d Deps) {
	session := middleware.SessionAuth(d.Cfg.JWTSecret, d.Cfg.SessionCookie)
	cache := middleware.NewResponseCache(d.Cache, d.Redis)

	// Admin surface: user management and subscription assignment.
	admin := e.Group("/api", session, middleware.RequireAccess(model.RoleAdmin))

	admin.POST("/users", d.Users.Create)
	admin.GET("/users", d.Users.List, cache)
	admin.GET("/users/:id", d.Users.Get)
	admin.PUT("/users/:id", d.Users.Update)
	admin.DELETE("/users/:id", d.Users.Delete)

	admin.POST("/subscriptions", d.Subscriptions.Create)
	admin.GET("/subscriptions", d.Subscriptions.List, cache)
	admin.GET("/subscriptions/:id", d.Subscriptions.Get)
	admin.PUT("/subscriptions/:id", d.Subscriptions.Update)
	admin.DELETE("/subscriptions/:id", d.Subscriptions.Delete)

	// Trainer surface: catalogs, templates and assignments.
	trainer := e.Group("/api", session, middleware.RequireAccess(model.RoleTrainer))

	trainer.GET("/customers", d.Users.Customers, cache)

	trainer.POST("/meals", d.Meals.Create)
	trainer.GET("/meals", d.Meals.List, cache)
	trainer.GET("/meals/:id", d.Meals.Get)
	trainer.PUT("/meals/:id", d.Meals.Update)
	trainer.DELETE("/meals/:id", d.Meals.Delete)

	trainer.POST("/exercises", d.Exercises.Create)
	trainer.GET("/exercises", d.Exercises.List, cache)
	trainer.GET("/exercises/:id", d.Exercises.Get)
	trainer.PUT("/exercises/:id", d.Exercises.Update)
	trainer.DELETE("/exercises/:id", d.Exercises.Delete)

	trainer.POST("/meal-templates", d.Templates.CreateMealTemplate)
	trainer.GET("/meal-templates", d.Templates.ListMealTemplates)
	trainer.GET("/meal-templates/:id", d.Templates.GetMealTemplate)
	trainer.PUT("/meal-templates/:id", d.Templates.UpdateMealTemplate)
	trainer.DELETE("/meal-templates/:id", d.Templates.DeleteMealTemplate)

	trainer.POST("/exercise-templates", d.Templates.CreateExerciseTemplate)
	trainer.GET("/exercise-templates", d.Templates.ListExerciseTemplates)
	trainer.GET("/exercise-templates/:id", d.Templates.GetExerciseTemplate)
	trainer.PUT("/exercise-templates/:id", d.Templates.UpdateExerciseTemplate)
	trainer.DELETE("/exercise-templates/:id", d.Templates.DeleteExerciseTemplate)

	trainer.POST("/assignments", d.Assignments.Create)
	trainer.GET("/assignments", d.Assignments.List)
	trainer.POST("/assignments/weekly", d.Assignments.CreateWeek)
	trainer.GET("/assignments/weekly", d.Assignments.Week)
	trainer.GET("/assignments/:id", d.Assignments.Get)
	trainer.PUT("/assignments/:id", d.Assignments.Update)
	trainer.DELETE("/assignments/:id", d.Assignments.Delete)

	// Self-service surface for any authenticated user.
	my := e.Group("/api/my", session)

	my.PUT("/profile", d.Users.UpdateProfile)
	my.GET("/subscriptions", d.Subscriptions.My)
	my.GET("/subscriptions/active", d.Subscriptions.Active)
	my.GET("/assignments", d.Assignments.My)
}
