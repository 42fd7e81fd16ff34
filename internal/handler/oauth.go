package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/fitcore/gym-management/internal/config"
	"github.com/fitcore/gym-management/internal/model"
	"github.com/fitcore/gym-management/internal/queue"
	"github.com/fitcore/gym-management/internal/repository"
	"github.com/fitcore/gym-management/internal/service"
	"github.com/fitcore/gym-management/internal/utils"
)

const (
	stateCookie = "oauth_state"
	userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// OAuthHandler implements login via Google. When the client id or
// secret is not configured both endpoints answer 404.
type OAuthHandler struct {
	Cfg    config.Config
	Users  UserStore
	Events *service.Publisher
	Log    *zap.Logger
	oauth  *oauth2.Config
}

func NewOAuthHandler(cfg config.Config, users UserStore, events *service.Publisher, log *zap.Logger) *OAuthHandler {
	h := &OAuthHandler{Cfg: cfg, Users: users, Events: events, Log: log}
	if cfg.OAuthEnabled() {
		h.oauth = &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		}
	}
	return h
}

// GoogleLogin starts the consent flow: a random state value is pinned
// in a short-lived cookie and echoed back by Google.
func (h *OAuthHandler) GoogleLogin(c echo.Context) error {
	if h.oauth == nil {
		return fail(c, http.StatusNotFound, "google login is not configured")
	}
	state, err := utils.RandomHex(16)
	if err != nil {
		return failErr(c, h.Log, err)
	}
	c.SetCookie(&http.Cookie{
		Name:     stateCookie,
		Value:    state,
		Path:     "/",
		Expires:  time.Now().Add(10 * time.Minute),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, h.oauth.AuthCodeURL(state))
}

type googleUserinfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleCallback exchanges the code, resolves the Google profile and
// logs the account in, creating a customer account on first visit.
// OAuth accounts store no password hash and can never log in with
// credentials.
func (h *OAuthHandler) GoogleCallback(c echo.Context) error {
	if h.oauth == nil {
		return fail(c, http.StatusNotFound, "google login is not configured")
	}
	state, err := c.Cookie(stateCookie)
	if err != nil || state.Value == "" || c.QueryParam("state") != state.Value {
		return fail(c, http.StatusBadRequest, "invalid oauth state")
	}
	code := c.QueryParam("code")
	if code == "" {
		return fail(c, http.StatusBadRequest, "missing code")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	token, err := h.oauth.Exchange(ctx, code)
	if err != nil {
		h.Log.Warn("oauth exchange failed", zap.Error(err))
		return fail(c, http.StatusBadGateway, "google login failed")
	}
	info, err := h.fetchUserinfo(ctx, token)
	if err != nil {
		h.Log.Warn("oauth userinfo failed", zap.Error(err))
		return fail(c, http.StatusBadGateway, "google login failed")
	}
	if info.Email == "" {
		return fail(c, http.StatusBadGateway, "google account has no email")
	}

	user, isNew, err := h.loginOrRegister(ctx, info)
	if err != nil {
		return failErr(c, h.Log, err)
	}
	if isNew {
		_ = h.Events.PublishUserRegistered(ctx, queue.UserRegisteredEvent{
			UserID:       user.ID.Hex(),
			Email:        user.Email,
			Name:         user.Name,
			Role:         model.DefaultRoleName,
			Method:       "google",
			RegisteredAt: time.Now().UTC().Format(time.RFC3339),
		})
	}

	if err := issueSession(c, h.Cfg, user); err != nil {
		return failErr(c, h.Log, err)
	}
	cfg, err := model.ConfigFor(user.RoleID)
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return c.Redirect(http.StatusFound, cfg.DashboardURL)
}

func (h *OAuthHandler) fetchUserinfo(ctx context.Context, token *oauth2.Token) (*googleUserinfo, error) {
	resp, err := h.oauth.Client(ctx, token).Get(userinfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	var info googleUserinfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

// loginOrRegister returns the existing account for the email, bumping
// its updatedAt, or creates a fresh customer account.
func (h *OAuthHandler) loginOrRegister(ctx context.Context, info *googleUserinfo) (*model.User, bool, error) {
	user, err := h.Users.FindByEmail(ctx, info.Email)
	if err == nil {
		_ = h.Users.TouchUpdated(ctx, user.Email)
		return user, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, err
	}
	name := info.Name
	if name == "" {
		name = info.Email
	}
	user, err = h.Users.Create(ctx, &model.User{
		Email:  info.Email,
		Name:   name,
		RoleID: model.RoleCustomer,
	})
	if err != nil {
		return nil, false, err
	}
	return user, true, nil
}
