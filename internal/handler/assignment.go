package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fitcore/gym-management/internal/middleware"
	"github.com/fitcore/gym-management/internal/model"
	"github.com/fitcore/gym-management/internal/repository"
)

// AssignmentHandler manages daily plans: single-day CRUD, the weekly
// batch operations trainers use, and the customer's own calendar view.
type AssignmentHandler struct {
	Assignments *repository.AssignmentRepo
	Log         *zap.Logger
}

func NewAssignmentHandler(assignments *repository.AssignmentRepo, log *zap.Logger) *AssignmentHandler {
	return &AssignmentHandler{Assignments: assignments, Log: log}
}

func (h *AssignmentHandler) Create(c echo.Context) error {
	var in model.DailyAssignment
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if in.AssignedBy == "" {
		if id, okID := middleware.CurrentIdentity(c); okID {
			in.AssignedBy = id.UserID
		}
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	a, err := h.Assignments.Create(ctx, &in)
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusCreated, "assignment", a)
}

// List filters by customer and an optional date window. from/to are
// RFC 3339 dates or timestamps.
func (h *AssignmentHandler) List(c echo.Context) error {
	from, err := parseDateParam(c.QueryParam("from"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid from date")
	}
	to, err := parseDateParam(c.QueryParam("to"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid to date")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	items, err := h.Assignments.ListRange(ctx, c.QueryParam("customerId"), from, to)
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusOK, "assignments", items)
}

func (h *AssignmentHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	a, err := h.Assignments.Get(ctx, c.Param("id"))
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusOK, "assignment", a)
}

func (h *AssignmentHandler) Update(c echo.Context) error {
	var in model.UpdateDailyAssignmentInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	a, err := h.Assignments.Update(ctx, c.Param("id"), &in)
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusOK, "assignment", a)
}

func (h *AssignmentHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Assignments.Delete(ctx, c.Param("id")); err != nil {
		return failErr(c, h.Log, err)
	}
	return okEmpty(c, http.StatusOK)
}

// CreateWeek expands a weekly plan into seven daily assignments.
func (h *AssignmentHandler) CreateWeek(c echo.Context) error {
	var in model.WeeklyAssignmentInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if in.AssignedBy == "" {
		if id, okID := middleware.CurrentIdentity(c); okID {
			in.AssignedBy = id.UserID
		}
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	week, err := h.Assignments.CreateWeek(ctx, &in)
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusCreated, "assignments", week)
}

// Week returns the seven days starting at the given date for one
// customer.
func (h *AssignmentHandler) Week(c echo.Context) error {
	customerID := c.QueryParam("customerId")
	if customerID == "" {
		return fail(c, http.StatusBadRequest, "customerId is required")
	}
	start, err := parseDateParam(c.QueryParam("start"))
	if err != nil || start == nil {
		return fail(c, http.StatusBadRequest, "invalid start date")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	week, err := h.Assignments.Week(ctx, customerID, *start)
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusOK, "assignments", week)
}

// My returns the caller's own assignments in an optional date window.
func (h *AssignmentHandler) My(c echo.Context) error {
	id, okID := middleware.CurrentIdentity(c)
	if !okID {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	from, err := parseDateParam(c.QueryParam("from"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid from date")
	}
	to, err := parseDateParam(c.QueryParam("to"))
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid to date")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	items, err := h.Assignments.ListRange(ctx, id.UserID, from, to)
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusOK, "assignments", items)
}

// parseDateParam accepts "2006-01-02" or full RFC 3339. Empty input
// returns nil without error.
func parseDateParam(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
