// Package handler implements the HTTP endpoints: auth, entity CRUD
// under /api and the minimal pages behind the route guard.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fitcore/gym-management/internal/repository"
)

// ok writes the standard success envelope with the document keyed by
// its resource name: {"success": true, "user": {...}}.
func ok(c echo.Context, status int, resource string, doc any) error {
	return c.JSON(status, map[string]any{"success": true, resource: doc})
}

// okEmpty writes a bare success envelope, used by deletes and logout.
func okEmpty(c echo.Context, status int) error {
	return c.JSON(status, map[string]any{"success": true})
}

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]any{"success": false, "error": msg})
}

// failErr translates a repository error into the failure envelope.
// Validation and lookup failures surface their own message; anything
// marked as a storage fault has already been logged with its cause and
// is reduced to an opaque message here.
func failErr(c echo.Context, log *zap.Logger, err error) error {
	var verr *repository.ValidationError
	if errors.As(err, &verr) {
		return fail(c, http.StatusBadRequest, verr.Message)
	}
	var nferr *repository.NotFoundError
	if errors.As(err, &nferr) {
		return fail(c, http.StatusNotFound, nferr.Error())
	}
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		return fail(c, http.StatusBadRequest, "invalid id")
	case errors.Is(err, repository.ErrEmailExists):
		return fail(c, http.StatusConflict, "email already registered")
	case errors.Is(err, repository.ErrNotFound):
		return fail(c, http.StatusNotFound, "not found")
	}
	log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	return fail(c, http.StatusInternalServerError, "an unexpected error occurred")
}

// pagedResp is the envelope for paginated listings.
type pagedResp[T any] struct {
	Message  string `json:"message"`
	Code     int    `json:"code"`
	Data     []T    `json:"data"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
	Total    int64  `json:"total"`
}

func paged[T any](c echo.Context, msg string, res *repository.Result[T]) error {
	return c.JSON(http.StatusOK, pagedResp[T]{
		Message:  msg,
		Code:     http.StatusOK,
		Data:     res.Data,
		Page:     res.Page,
		PageSize: res.PageSize,
		Total:    res.Total,
	})
}
