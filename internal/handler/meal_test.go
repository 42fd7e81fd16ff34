package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/fitcore/gym-management/internal/model"
	"github.com/fitcore/gym-management/internal/repository"
)

// mockMeals is an in-memory MealStore. err, when set, overrides every
// operation so error translation can be exercised.
type mockMeals struct {
	meals   map[string]*model.Meal
	err     error
	gotType string
}

func newMockMeals() *mockMeals {
	return &mockMeals{meals: map[string]*model.Meal{}}
}

func (m *mockMeals) Create(_ context.Context, meal *model.Meal) (*model.Meal, error) {
	if m.err != nil {
		return nil, m.err
	}
	meal.ID = primitive.NewObjectID()
	m.meals[meal.ID.Hex()] = meal
	return meal, nil
}

func (m *mockMeals) Get(_ context.Context, id string) (*model.Meal, error) {
	if m.err != nil {
		return nil, m.err
	}
	meal, found := m.meals[id]
	if !found {
		return nil, &repository.NotFoundError{Resource: "meal"}
	}
	return meal, nil
}

func (m *mockMeals) Update(_ context.Context, id string, _ any) (*model.Meal, error) {
	return m.Get(context.Background(), id)
}

func (m *mockMeals) Delete(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if _, found := m.meals[id]; !found {
		return &repository.NotFoundError{Resource: "meal"}
	}
	delete(m.meals, id)
	return nil
}

func (m *mockMeals) ListByType(_ context.Context, mealType string) ([]model.Meal, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.gotType = mealType
	out := make([]model.Meal, 0, len(m.meals))
	for _, meal := range m.meals {
		out = append(out, *meal)
	}
	return out, nil
}

func mealRequest(t *testing.T, h echo.HandlerFunc, method, path, body, id string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	require.NoError(t, h(c))
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return rec, out
}

func TestMealCreateEnvelope(t *testing.T) {
	store := newMockMeals()
	h := NewMealHandler(store, zap.NewNop())

	rec, out := mealRequest(t, h.Create, http.MethodPost, "/api/meals",
		`{"name":"Oats","calories":320,"mealType":"breakfast"}`, "")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, true, out["success"])
	meal := out["meal"].(map[string]any)
	assert.Equal(t, "Oats", meal["name"])
	assert.NotEmpty(t, meal["_id"])
}

func TestMealCreateValidationFailure(t *testing.T) {
	store := newMockMeals()
	store.err = &repository.ValidationError{Field: "MealType", Message: "MealType must be one of: breakfast lunch dinner snack"}
	h := NewMealHandler(store, zap.NewNop())

	rec, out := mealRequest(t, h.Create, http.MethodPost, "/api/meals",
		`{"name":"Oats","mealType":"brunch"}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "MealType must be one of: breakfast lunch dinner snack", out["error"])
}

func TestMealGetNotFound(t *testing.T) {
	h := NewMealHandler(newMockMeals(), zap.NewNop())

	rec, out := mealRequest(t, h.Get, http.MethodGet, "/api/meals/x", "", primitive.NewObjectID().Hex())
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "meal not found", out["error"])
}

func TestMealGetAfterCreateRoundTrip(t *testing.T) {
	store := newMockMeals()
	h := NewMealHandler(store, zap.NewNop())

	_, created := mealRequest(t, h.Create, http.MethodPost, "/api/meals",
		`{"name":"Oats","calories":320,"mealType":"breakfast"}`, "")
	id := created["meal"].(map[string]any)["_id"].(string)

	rec, out := mealRequest(t, h.Get, http.MethodGet, "/api/meals/"+id, "", id)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Oats", out["meal"].(map[string]any)["name"])
}

func TestMealDeleteEnvelope(t *testing.T) {
	store := newMockMeals()
	h := NewMealHandler(store, zap.NewNop())

	_, created := mealRequest(t, h.Create, http.MethodPost, "/api/meals",
		`{"name":"Oats","mealType":"breakfast"}`, "")
	id := created["meal"].(map[string]any)["_id"].(string)

	rec, out := mealRequest(t, h.Delete, http.MethodDelete, "/api/meals/"+id, "", id)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"success": true}, out)

	rec, _ = mealRequest(t, h.Delete, http.MethodDelete, "/api/meals/"+id, "", id)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMealListPassesTypeFilter(t *testing.T) {
	store := newMockMeals()
	h := NewMealHandler(store, zap.NewNop())

	rec, out := mealRequest(t, h.List, http.MethodGet, "/api/meals?mealType=snack", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "snack", store.gotType)
	assert.NotNil(t, out["meals"])
}

func TestMealStorageFaultIsOpaque(t *testing.T) {
	store := newMockMeals()
	store.err = repository.ErrStorage
	h := NewMealHandler(store, zap.NewNop())

	rec, out := mealRequest(t, h.List, http.MethodGet, "/api/meals", "", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "an unexpected error occurred", out["error"])
}
