package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fitcore/gym-management/internal/config"
	"github.com/fitcore/gym-management/internal/middleware"
	"github.com/fitcore/gym-management/internal/model"
	"github.com/fitcore/gym-management/internal/queue"
	"github.com/fitcore/gym-management/internal/repository"
	"github.com/fitcore/gym-management/internal/service"
	"github.com/fitcore/gym-management/internal/utils"
)

// UserStore is the slice of the user repository the auth flow needs.
type UserStore interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	TouchUpdated(ctx context.Context, email string) error
}

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Users    UserStore
	Validate *validator.Validate
	Events   *service.Publisher
	Log      *zap.Logger
}

func NewAuthHandler(cfg config.Config, users UserStore, v *validator.Validate, events *service.Publisher, log *zap.Logger) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users, Validate: v, Events: events, Log: log}
}

// registerReq is the self-registration schema. Unlike CreateUserInput
// the password is mandatory here and master is never selectable.
type registerReq struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Name      string `json:"name" validate:"required,min=2"`
	Role      string `json:"role" validate:"omitempty,oneof=customer trainer admin"`
	Phone     string `json:"phone"`
	Instagram string `json:"instagram"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates an account and logs it in immediately. The role
// defaults to customer; master can never be self-registered.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	req.Role = strings.ToLower(strings.TrimSpace(req.Role))
	if err := repository.ValidateStruct(h.Validate, &req); err != nil {
		return failErr(c, h.Log, err)
	}
	role := req.Role
	if role == "" {
		role = model.DefaultRoleName
	}
	roleID, err := model.RoleIDOf(role)
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid role")
	}
	hash, err := utils.HashPassword(req.Password, h.Cfg.BcryptCost)
	if err != nil {
		return failErr(c, h.Log, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.Users.Create(ctx, &model.User{
		Email:     req.Email,
		Password:  hash,
		Name:      req.Name,
		RoleID:    roleID,
		Phone:     req.Phone,
		Instagram: req.Instagram,
	})
	if err != nil {
		return failErr(c, h.Log, err)
	}

	if err := issueSession(c, h.Cfg, user); err != nil {
		return failErr(c, h.Log, err)
	}
	_ = h.Events.PublishUserRegistered(ctx, queue.UserRegisteredEvent{
		UserID:       user.ID.Hex(),
		Email:        user.Email,
		Name:         user.Name,
		Role:         role,
		Method:       "credentials",
		RegisteredAt: time.Now().UTC().Format(time.RFC3339),
	})
	return ok(c, http.StatusCreated, "user", user.Public())
}

// Login verifies credentials and issues the session cookie. A missing
// account, an OAuth-only account without a hash and a wrong password
// all produce the same message so the endpoint does not reveal which
// emails exist.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if req.Email == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest, "email and password are required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.Users.FindByEmail(ctx, req.Email)
	if err != nil || user.Password == "" || !utils.VerifyPassword(user.Password, req.Password) {
		return fail(c, http.StatusUnauthorized, "invalid email or password")
	}

	if err := issueSession(c, h.Cfg, user); err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusOK, "user", user.Public())
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c echo.Context) error {
	clearSessionCookie(c, h.Cfg.SessionCookie)
	return okEmpty(c, http.StatusOK)
}

// Me returns the caller's fresh profile.
func (h *AuthHandler) Me(c echo.Context) error {
	id, okID := middleware.CurrentIdentity(c)
	if !okID {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	user, err := h.Users.FindByEmail(ctx, id.Email)
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusOK, "user", user.Public())
}

// issueSession signs a session token for the user and sets the cookie.
func issueSession(c echo.Context, cfg config.Config, user *model.User) error {
	role, err := model.RoleNameOf(user.RoleID)
	if err != nil {
		return err
	}
	token, exp, err := utils.NewSessionToken(cfg.JWTSecret, user.ID.Hex(), user.Email, user.Name, role, cfg.SessionTTLMin)
	if err != nil {
		return err
	}
	setSessionCookie(c, cfg.SessionCookie, token, exp)
	return nil
}

func setSessionCookie(c echo.Context, name, token string, exp time.Time) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    token,
		Path:     "/",
		Expires:  exp,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
