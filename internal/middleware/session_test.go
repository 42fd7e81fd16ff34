package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitcore/gym-management/internal/model"
	"github.com/fitcore/gym-management/internal/utils"
)

func TestSessionAuthAcceptsBearerAndCookie(t *testing.T) {
	e := echo.New()
	token, _, err := utils.NewSessionToken("secret", "u1", "a@b.com", "A", "admin", 60)
	require.NoError(t, err)

	h := SessionAuth("secret", testCookie)(func(c echo.Context) error {
		id, ok := CurrentIdentity(c)
		require.True(t, ok)
		assert.Equal(t, model.RoleAdmin, id.RoleID)
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	rec = httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionAuthRejectsMissingAndTampered(t *testing.T) {
	e := echo.New()
	h := SessionAuth("secret", testCookie)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token, _, err := utils.NewSessionToken("wrong-secret", "u1", "a@b.com", "A", "admin", 60)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec = httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAccessHierarchy(t *testing.T) {
	e := echo.New()
	run := func(role string, target model.RoleID) int {
		req := httptest.NewRequest(http.MethodGet, "/api/x", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		roleID, err := model.RoleIDOf(role)
		require.NoError(t, err)
		SetIdentity(c, Identity{UserID: "u1", Role: role, RoleID: roleID})
		h := RequireAccess(target)(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
		require.NoError(t, h(c))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, run("admin", model.RoleAdmin))
	assert.Equal(t, http.StatusOK, run("admin", model.RoleTrainer))
	assert.Equal(t, http.StatusOK, run("master", model.RoleAdmin))
	assert.Equal(t, http.StatusForbidden, run("trainer", model.RoleAdmin))
	assert.Equal(t, http.StatusForbidden, run("customer", model.RoleTrainer))
}

func TestRequireRoleExactMatch(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/x", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	SetIdentity(c, Identity{UserID: "u1", Role: "admin", RoleID: model.RoleAdmin})

	h := RequireRole("trainer")(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	require.NoError(t, h(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
