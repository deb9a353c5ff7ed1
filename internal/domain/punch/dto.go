package punch

import (
	"github.com/shiftpulse/timeclock-backend-go/internal/pkg/validator"
)

// ========================================
// PUNCH DTOs
// ========================================

// SubmitPunchRequest carries the UI's selection inputs and the action
// trigger. EmployeeID arrives as a string because it comes straight from a
// form field; matching against the directory is done by the service.
type SubmitPunchRequest struct {
	EmployeeID string `json:"employee_id"`
	Email      string `json:"email"`
	Action     Type   `json:"action"`
}

func (r *SubmitPunchRequest) Validate() error {
	if validator.IsEmpty(r.EmployeeID) || validator.IsEmpty(r.Email) {
		return ErrMissingSelection
	}

	var errs validator.ValidationErrors

	// Email format is deliberately not checked here: credentials are a
	// lookup-match against the directory, so a malformed email simply fails
	// to match.
	if !r.Action.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be one of: clock_in, break_start, break_end, clock_out",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PunchResponse struct {
	ID           int64  `json:"id"`
	EmployeeID   int    `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Action       Type   `json:"action"`
	ActionLabel  string `json:"action_label"`
	Message      string `json:"message"`
	Time         string `json:"time"`
	Date         string `json:"date"`
}

type StatusResponse struct {
	EmployeeID int    `json:"employee_id"`
	Date       string `json:"date"`
	Status     Status `json:"status"`
}

type WorkedHoursResponse struct {
	EmployeeID int     `json:"employee_id"`
	Date       string  `json:"date"`
	Complete   bool    `json:"complete"`
	Hours      float64 `json:"hours"`
	Display    string  `json:"display"`
}
