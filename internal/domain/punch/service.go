package punch

import "context"

// Service defines business logic for punch operations
type Service interface {
	// SubmitPunch validates the id+email selection against the directory and
	// appends one event to the log
	SubmitPunch(ctx context.Context, req SubmitPunchRequest) (PunchResponse, error)

	// GetStatus derives the employee's current status for a calendar date
	GetStatus(ctx context.Context, employeeID int, date string) (StatusResponse, error)

	// GetWorkedHours computes the first-pair worked total for a calendar date
	GetWorkedHours(ctx context.Context, employeeID int, date string) (WorkedHoursResponse, error)
}
