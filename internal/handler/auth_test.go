package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/fitcore/gym-management/internal/config"
	"github.com/fitcore/gym-management/internal/model"
	"github.com/fitcore/gym-management/internal/repository"
	"github.com/fitcore/gym-management/internal/service"
	"github.com/fitcore/gym-management/internal/utils"
)

// mockUsers is an in-memory UserStore.
type mockUsers struct {
	byEmail map[string]*model.User
	touched []string
}

func newMockUsers() *mockUsers {
	return &mockUsers{byEmail: map[string]*model.User{}}
}

func (m *mockUsers) Create(_ context.Context, u *model.User) (*model.User, error) {
	email := strings.ToLower(u.Email)
	if _, exists := m.byEmail[email]; exists {
		return nil, repository.ErrEmailExists
	}
	u.ID = primitive.NewObjectID()
	u.Email = email
	m.byEmail[email] = u
	return u, nil
}

func (m *mockUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	u, exists := m.byEmail[strings.ToLower(email)]
	if !exists {
		return nil, &repository.NotFoundError{Resource: "user"}
	}
	return u, nil
}

func (m *mockUsers) TouchUpdated(_ context.Context, email string) error {
	m.touched = append(m.touched, strings.ToLower(email))
	return nil
}

func testConfig() config.Config {
	return config.Config{
		JWTSecret:     "test-secret",
		SessionTTLMin: 60,
		SessionCookie: "session",
		BcryptCost:    4,
	}
}

func newAuthHandler(store *mockUsers) *AuthHandler {
	return NewAuthHandler(testConfig(), store, validator.New(), service.NewPublisher("", zap.NewNop()), zap.NewNop())
}

func postJSON(t *testing.T, h echo.HandlerFunc, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec, out
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == "session" {
			return ck
		}
	}
	return nil
}

func TestRegisterDefaultsToCustomer(t *testing.T) {
	h := newAuthHandler(newMockUsers())
	rec, out := postJSON(t, h.Register, "/api/auth/register",
		`{"email":"new@example.com","password":"secret1","name":"New User"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, out["success"])
	user := out["user"].(map[string]any)
	assert.Equal(t, "customer", user["role"])
	assert.NotContains(t, user, "password")

	ck := sessionCookie(rec)
	require.NotNil(t, ck)
	claims, err := utils.ParseSession("test-secret", ck.Value)
	require.NoError(t, err)
	assert.Equal(t, "customer", claims.Role)
}

// Register rejections come out of the request schema, so the messages
// follow the shared field-message format.
func TestRegisterSchemaRejections(t *testing.T) {
	h := newAuthHandler(newMockUsers())

	rec, out := postJSON(t, h.Register, "/api/auth/register",
		`{"email":"a@b.com","password":"secret1","name":"Al","role":"master"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "Role must be one of: customer trainer admin", out["error"])

	rec, out = postJSON(t, h.Register, "/api/auth/register",
		`{"email":"a@b.com","password":"123","name":"Al"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Password must be at least 6 characters", out["error"])

	rec, out = postJSON(t, h.Register, "/api/auth/register",
		`{"email":"not-an-email","password":"secret1","name":"Al"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid email format", out["error"])
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	store := newMockUsers()
	h := newAuthHandler(store)
	body := `{"email":"dup@example.com","password":"secret1","name":"Dup"}`

	rec, _ := postJSON(t, h.Register, "/api/auth/register", body)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, out := postJSON(t, h.Register, "/api/auth/register", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "email already registered", out["error"])
}

func TestLoginGenericErrorForAllFailureModes(t *testing.T) {
	store := newMockUsers()
	hash, err := utils.HashPassword("right-pass", 4)
	require.NoError(t, err)
	store.byEmail["known@example.com"] = &model.User{
		Email: "known@example.com", Password: hash, Name: "K", RoleID: model.RoleCustomer,
	}
	// OAuth-only account: no password hash stored.
	store.byEmail["oauth@example.com"] = &model.User{
		Email: "oauth@example.com", Name: "O", RoleID: model.RoleCustomer,
	}
	h := newAuthHandler(store)

	cases := []string{
		`{"email":"missing@example.com","password":"whatever1"}`,
		`{"email":"oauth@example.com","password":"whatever1"}`,
		`{"email":"known@example.com","password":"wrong-pass"}`,
	}
	for _, body := range cases {
		rec, out := postJSON(t, h.Login, "/api/auth/login", body)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, body)
		assert.Equal(t, "invalid email or password", out["error"], body)
	}
}

func TestLoginSuccessSetsCookie(t *testing.T) {
	store := newMockUsers()
	hash, err := utils.HashPassword("right-pass", 4)
	require.NoError(t, err)
	store.byEmail["known@example.com"] = &model.User{
		Email: "known@example.com", Password: hash, Name: "K", RoleID: model.RoleTrainer,
	}
	h := newAuthHandler(store)

	rec, out := postJSON(t, h.Login, "/api/auth/login",
		`{"email":"known@example.com","password":"right-pass"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, "trainer", out["user"].(map[string]any)["role"])
	require.NotNil(t, sessionCookie(rec))
}

func TestLogoutClearsCookie(t *testing.T) {
	h := newAuthHandler(newMockUsers())
	rec, out := postJSON(t, h.Logout, "/api/auth/logout", `{}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, out["success"])

	ck := sessionCookie(rec)
	require.NotNil(t, ck)
	assert.Empty(t, ck.Value)
	assert.Negative(t, ck.MaxAge)
}
