package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fitcore/gym-management/internal/middleware"
	"github.com/fitcore/gym-management/internal/model"
	"github.com/fitcore/gym-management/internal/repository"
)

// TemplateHandler manages reusable meal plans and weekly exercise
// programs. Listings default to the acting trainer's own templates;
// admins can pass createdBy to inspect someone else's.
type TemplateHandler struct {
	MealTemplates     *repository.MealTemplateRepo
	ExerciseTemplates *repository.ExerciseTemplateRepo
	Log               *zap.Logger
}

func NewTemplateHandler(mt *repository.MealTemplateRepo, et *repository.ExerciseTemplateRepo, log *zap.Logger) *TemplateHandler {
	return &TemplateHandler{MealTemplates: mt, ExerciseTemplates: et, Log: log}
}

func (h *TemplateHandler) trainerFilter(c echo.Context) string {
	if owner := c.QueryParam("createdBy"); owner != "" {
		return owner
	}
	if id, okID := middleware.CurrentIdentity(c); okID {
		return id.UserID
	}
	return ""
}

func (h *TemplateHandler) CreateMealTemplate(c echo.Context) error {
	var in model.MealTemplate
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if in.CreatedBy == "" {
		if id, okID := middleware.CurrentIdentity(c); okID {
			in.CreatedBy = id.UserID
		}
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	tpl, err := h.MealTemplates.Create(ctx, &in)
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusCreated, "template", tpl)
}

func (h *TemplateHandler) ListMealTemplates(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	tpls, err := h.MealTemplates.ListByTrainer(ctx, h.trainerFilter(c))
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusOK, "templates", tpls)
}

func (h *TemplateHandler) GetMealTemplate(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	tpl, err := h.MealTemplates.Get(ctx, c.Param("id"))
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusOK, "template", tpl)
}

func (h *TemplateHandler) UpdateMealTemplate(c echo.Context) error {
	var in model.UpdateMealTemplateInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	tpl, err := h.MealTemplates.Update(ctx, c.Param("id"), &in)
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusOK, "template", tpl)
}

func (h *TemplateHandler) DeleteMealTemplate(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.MealTemplates.Delete(ctx, c.Param("id")); err != nil {
		return failErr(c, h.Log, err)
	}
	return okEmpty(c, http.StatusOK)
}

func (h *TemplateHandler) CreateExerciseTemplate(c echo.Context) error {
	var in model.ExerciseTemplate
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if in.CreatedBy == "" {
		if id, okID := middleware.CurrentIdentity(c); okID {
			in.CreatedBy = id.UserID
		}
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	tpl, err := h.ExerciseTemplates.Create(ctx, &in)
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusCreated, "template", tpl)
}

func (h *TemplateHandler) ListExerciseTemplates(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	tpls, err := h.ExerciseTemplates.ListByTrainer(ctx, h.trainerFilter(c))
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusOK, "templates", tpls)
}

func (h *TemplateHandler) GetExerciseTemplate(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	tpl, err := h.ExerciseTemplates.Get(ctx, c.Param("id"))
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusOK, "template", tpl)
}

func (h *TemplateHandler) UpdateExerciseTemplate(c echo.Context) error {
	var in model.UpdateExerciseTemplateInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	tpl, err := h.ExerciseTemplates.Update(ctx, c.Param("id"), &in)
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusOK, "template", tpl)
}

func (h *TemplateHandler) DeleteExerciseTemplate(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.ExerciseTemplates.Delete(ctx, c.Param("id")); err != nil {
		return failErr(c, h.Log, err)
	}
	return okEmpty(c, http.StatusOK)
}
