package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/employee-service/internal/domain/employee"
	"github.com/cmlabs-hris/employee-service/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrDuplicateResource):
		Conflict(w, "Resource already exists")
	case errors.Is(err, employee.ErrInvalidEmployeeID),
		errors.Is(err, employee.ErrInvalidLookup):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
