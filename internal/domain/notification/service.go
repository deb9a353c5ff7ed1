package notification

import (
	"context"

	"github.com/shiftpulse/timeclock-backend-go/internal/domain/employee"
)

// Service defines business logic for notifications
type Service interface {
	// CreateLateAlert creates the day's late-employees notification unless
	// one already exists for the date. Returns false without error when the
	// alert was deduplicated.
	CreateLateAlert(ctx context.Context, date string, late []employee.Employee) (bool, error)

	// List returns all notifications, most recent first.
	List(ctx context.Context) ([]NotificationResponse, error)
}
