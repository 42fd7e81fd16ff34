package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fitcore/gym-management/internal/model"
	"github.com/fitcore/gym-management/internal/repository"
)

// ExerciseHandler manages the exercise catalog.
type ExerciseHandler struct {
	Exercises *repository.ExerciseRepo
	Log       *zap.Logger
}

func NewExerciseHandler(exercises *repository.ExerciseRepo, log *zap.Logger) *ExerciseHandler {
	return &ExerciseHandler{Exercises: exercises, Log: log}
}

func (h *ExerciseHandler) Create(c echo.Context) error {
	var in model.Exercise
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	ex, err := h.Exercises.Create(ctx, &in)
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusCreated, "exercise", ex)
}

func (h *ExerciseHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	exercises, err := h.Exercises.ListAll(ctx)
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusOK, "exercises", exercises)
}

func (h *ExerciseHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	ex, err := h.Exercises.Get(ctx, c.Param("id"))
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusOK, "exercise", ex)
}

func (h *ExerciseHandler) Update(c echo.Context) error {
	var in model.UpdateExerciseInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	ex, err := h.Exercises.Update(ctx, c.Param("id"), &in)
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusOK, "exercise", ex)
}

func (h *ExerciseHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Exercises.Delete(ctx, c.Param("id")); err != nil {
		return failErr(c, h.Log, err)
	}
	return okEmpty(c, http.StatusOK)
}
