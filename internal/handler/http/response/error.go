package response

import (
	"errors"
	"net/http"

	"github.com/shiftpulse/timeclock-backend-go/internal/domain/employee"
	"github.com/shiftpulse/timeclock-backend-go/internal/domain/punch"
	"github.com/shiftpulse/timeclock-backend-go/internal/pkg/validator"
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
	// Punch domain errors
	case errors.Is(err, punch.ErrMissingSelection):
		BadRequest(w, "Please select both Employee ID and Email", nil)
	case errors.Is(err, punch.ErrInvalidCredentials):
		Unauthorized(w, "Invalid employee credentials")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// ErrUnknownEmployee falls through: submit validation makes it
	// unreachable, so reaching it is a programming error.
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
