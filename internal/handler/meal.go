package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fitcore/gym-management/internal/model"
)

// MealStore is the slice of the meal repository the handler needs,
// satisfied by *repository.MealRepo.
type MealStore interface {
	Create(ctx context.Context, m *model.Meal) (*model.Meal, error)
	Get(ctx context.Context, id string) (*model.Meal, error)
	Update(ctx context.Context, id string, input any) (*model.Meal, error)
	Delete(ctx context.Context, id string) error
	ListByType(ctx context.Context, mealType string) ([]model.Meal, error)
}

// MealHandler manages the meal catalog trainers build plans from.
type MealHandler struct {
	Meals MealStore
	Log   *zap.Logger
}

func NewMealHandler(meals MealStore, log *zap.Logger) *MealHandler {
	return &MealHandler{Meals: meals, Log: log}
}

func (h *MealHandler) Create(c echo.Context) error {
	var in model.Meal
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	meal, err := h.Meals.Create(ctx, &in)
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusCreated, "meal", meal)
}

// List returns meals, optionally filtered by mealType.
func (h *MealHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	meals, err := h.Meals.ListByType(ctx, c.QueryParam("mealType"))
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusOK, "meals", meals)
}

func (h *MealHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	meal, err := h.Meals.Get(ctx, c.Param("id"))
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusOK, "meal", meal)
}

func (h *MealHandler) Update(c echo.Context) error {
	var in model.UpdateMealInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	meal, err := h.Meals.Update(ctx, c.Param("id"), &in)
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusOK, "meal", meal)
}

func (h *MealHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Meals.Delete(ctx, c.Param("id")); err != nil {
		return failErr(c, h.Log, err)
	}
	return okEmpty(c, http.StatusOK)
}
