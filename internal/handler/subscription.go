package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fitcore/gym-management/internal/middleware"
	"github.com/fitcore/gym-management/internal/model"
	"github.com/fitcore/gym-management/internal/queue"
	"github.com/fitcore/gym-management/internal/repository"
	"github.com/fitcore/gym-management/internal/service"
)

// SubscriptionHandler exposes subscription CRUD for admins and the
// customer's own views.
type SubscriptionHandler struct {
	Subs   *repository.SubscriptionRepo
	Events *service.Publisher
	Log    *zap.Logger
}

func NewSubscriptionHandler(subs *repository.SubscriptionRepo, events *service.Publisher, log *zap.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{Subs: subs, Events: events, Log: log}
}

// Create assigns a subscription to a customer. AssignedBy defaults to
// the acting admin.
func (h *SubscriptionHandler) Create(c echo.Context) error {
	var in model.Subscription
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

	sub, err := h.Subs.Create(ctx, &in)
	if err != nil {
		return failErr(c, h.Log, err)
	}
	_ = h.Events.PublishSubscriptionAssigned(ctx, queue.SubscriptionAssignedEvent{
		SubscriptionID: sub.ID.Hex(),
		CustomerID:     sub.CustomerID,
		PlanName:       sub.PlanName,
		StartDate:      sub.StartDate.Format(time.RFC3339),
		EndDate:        sub.EndDate.Format(time.RFC3339),
		Status:         sub.Status,
		AssignedBy:     sub.AssignedBy,
		AssignedAt:     time.Now().UTC().Format(time.RFC3339),
	})
	return ok(c, http.StatusCreated, "subscription", sub)
}

// List returns subscriptions, optionally for one customer.
func (h *SubscriptionHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	subs, err := h.Subs.ListByCustomer(ctx, c.QueryParam("customerId"))
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusOK, "subscriptions", subs)
}

func (h *SubscriptionHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	sub, err := h.Subs.Get(ctx, c.Param("id"))
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusOK, "subscription", sub)
}

func (h *SubscriptionHandler) Update(c echo.Context) error {
	var in model.UpdateSubscriptionInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	sub, err := h.Subs.Update(ctx, c.Param("id"), &in)
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusOK, "subscription", sub)
}

func (h *SubscriptionHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Subs.Delete(ctx, c.Param("id")); err != nil {
		return failErr(c, h.Log, err)
	}
	return okEmpty(c, http.StatusOK)
}

// My lists the caller's own subscriptions.
func (h *SubscriptionHandler) My(c echo.Context) error {
	id, okID := middleware.CurrentIdentity(c)
	if !okID {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	subs, err := h.Subs.ListByCustomer(ctx, id.UserID)
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusOK, "subscriptions", subs)
}

// Active returns the caller's currently running subscription.
func (h *SubscriptionHandler) Active(c echo.Context) error {
	id, okID := middleware.CurrentIdentity(c)
	if !okID {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	sub, err := h.Subs.Active(ctx, id.UserID)
	if err != nil {
		return failErr(c, h.Log, err)
	}
	return ok(c, http.StatusOK, "subscription", sub)
}
