// Package repository implements the data-access layer: a generic
// paginated query engine, generic CRUD helpers parametrized by a
// validation schema, and per-entity repositories on top of them. The
// error values here let handlers translate storage failures into the
// uniform {success:false, error} envelope without inspecting driver
// internals.
package repository

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidID is returned when an identifier is not a well-formed
// ObjectID. It fails fast, before any storage call is attempted.
var ErrInvalidID = errors.New("invalid id")

// ErrNotFound is the sentinel matched by errors.Is for any id-based
// lookup that found nothing. Concrete errors carry the resource name.
var ErrNotFound = errors.New("not found")

// ErrStorage marks unexpected storage failures. The underlying cause
// is logged server-side; only the sentinel travels to the handler so
// internals never leak into responses.
var ErrStorage = errors.New("storage error")

// NotFoundError scopes ErrNotFound to a resource type so handlers can
// surface "meal not found" rather than a bare message.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// ValidationError reports the first schema constraint an input failed.
// Its message is surfaced verbatim to the caller and never logged as a
// server fault.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ValidateStruct runs a schema against an input and converts any
// failure into a ValidationError, mirroring what the CRUD helpers do
// before a write. Handlers use it for request shapes that never reach
// the storage layer as-is.
func ValidateStruct(v *validator.Validate, in any) error {
	if err := v.Struct(in); err != nil {
		return asValidationError(err)
	}
	return nil
}

// asValidationError converts a validator failure into a ValidationError
// describing the first failing field. Non-validator errors pass
// through unchanged.
func asValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	f := verrs[0]
	return &ValidationError{Field: f.Field(), Message: fieldMessage(f)}
}

func fieldMessage(f validator.FieldError) string {
	switch f.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", f.Field())
	case "email":
		return "invalid email format"
	case "min":
		if f.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", f.Field(), f.Param())
		}
		return fmt.Sprintf("%s must be at least %s", f.Field(), f.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", f.Field(), f.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", f.Field(), f.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", f.Field(), f.Param())
	default:
		return fmt.Sprintf("%s is invalid", f.Field())
	}
}
