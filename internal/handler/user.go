package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fitcore/gym-management/internal/config"
	"github.com/fitcore/gym-management/internal/middleware"
	"github.com/fitcore/gym-management/internal/model"
	"github.com/fitcore/gym-management/internal/repository"
	"github.com/fitcore/gym-management/internal/utils"
)

// UserHandler exposes the admin user CRUD plus the caller's own
// profile update.
type UserHandler struct {
	Cfg      config.Config
	Users    *repository.UserRepo
	Validate *validator.Validate
	Log      *zap.Logger
}

func NewUserHandler(cfg config.Config, users *repository.UserRepo, v *validator.Validate, log *zap.Logger) *UserHandler {
	return &UserHandler{Cfg: cfg, Users: users, Validate: v, Log: log}
}

// Create provisions an account with an explicit role. The password is
// optional so OAuth-only accounts can be created up front.
func (h *UserHandler) Create(c echo.Context) error {
	var in model.CreateUserInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := repository.ValidateStruct(h.Validate, &in); err != nil {
		return failErr(c, h.Log, err)
	}
	roleID, err := model.RoleIDOf(in.Role)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid role")
	}
	var hash string
	if in.Password != "" {
		if hash, err = utils.HashPassword(in.Password, h.Cfg.BcryptCost); err != nil {
			return failErr(c, h.Log, err)
		}
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	user, err := h.Users.Create(ctx, &model.User{
		Email:     in.Email,
		Password:  hash,
		Name:      in.Name,
		RoleID:    roleID,
		Phone:     in.Phone,
		Instagram: in.Instagram,
	})
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusCreated, "user", user.Public())
}

// List returns a page of users, optionally filtered by role name.
func (h *UserHandler) List(c echo.Context) error {
	var role *model.RoleID
	if name := c.QueryParam("role"); name != "" {
		id, err := model.RoleIDOf(name)
		if err != nil {
			return fail(c, http.StatusBadRequest, "invalid role")
		}
		role = &id
	}
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("pageSize"))

	ctx, cancel := reqCtx(c)
	defer cancel()

	res, err := h.Users.Page(ctx, role, page, pageSize)
	if err != nil {
		return failErr(c, h.Log, err)
	}
	pub := &repository.Result[model.PublicUser]{
		Data:     make([]model.PublicUser, 0, len(res.Data)),
		Page:     res.Page,
		PageSize: res.PageSize,
		Total:    res.Total,
	}
	for i := range res.Data {
		pub.Data = append(pub.Data, res.Data[i].Public())
	}
	return paged(c, "users fetched", pub)
}

func (h *UserHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	user, err := h.Users.Get(ctx, c.Param("id"))
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusOK, "user", user.Public())
}

// Update applies a partial update. A role arrives as a name and is
// converted before the write.
func (h *UserHandler) Update(c echo.Context) error {
	var in model.UpdateUserInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if in.Role != nil {
		id, err := model.RoleIDOf(*in.Role)
		if err != nil {
			return fail(c, http.StatusBadRequest, "invalid role")
		}
		in.RoleID = &id
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	user, err := h.Users.Update(ctx, c.Param("id"), &in)
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusOK, "user", user.Public())
}

func (h *UserHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Users.Delete(ctx, c.Param("id")); err != nil {
		return failErr(c, h.Log, err)
	}
	return okEmpty(c, http.StatusOK)
}

// Customers lists every customer account, newest first. Trainers use
// this to pick who to assign plans to without access to the full user
// admin surface.
func (h *UserHandler) Customers(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	role := model.RoleCustomer
	users, err := h.Users.ListByRole(ctx, &role)
	if err != nil {
		return failErr(c, h.Log, err)
	}
	pub := make([]model.PublicUser, 0, len(users))
	for i := range users {
		pub = append(pub, users[i].Public())
	}
	return ok(c, http.StatusOK, "customers", pub)
}

// UpdateProfile lets any authenticated user edit their own name,
// phone and instagram. Role changes stay admin-only.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	id, okID := middleware.CurrentIdentity(c)
	if !okID {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	var in model.UpdateUserInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	in.Role = nil
	in.RoleID = nil

	ctx, cancel := reqCtx(c)
	defer cancel()

	user, err := h.Users.Update(ctx, id.UserID, &in)
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusOK, "user", user.Public())
}

func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}
