package router

import (
	"github.com/labstack/echo/v4"

	"github.com/fitcore/gym-management/internal/model"
)

// registerPages mounts the guarded pages: one dashboard per namespace
// and the public login and registration pages.
func registerPages(e *echo.Echo, d Deps) {
	e.GET("/", d.Pages.Dashboard)
	e.GET("/trainer", d.Pages.Dashboard)
	e.GET("/admin", d.Pages.Dashboard)

	e.GET("/login", d.Pages.LoginPage(model.RoleCustomer))
	e.GET("/trainer/login", d.Pages.LoginPage(model.RoleTrainer))
	e.GET("/admin/login", d.Pages.LoginPage(model.RoleAdmin))
	e.GET("/register", d.Pages.RegisterPage)
}
