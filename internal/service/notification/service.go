package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shiftpulse/timeclock-backend-go/internal/domain/employee"
	"github.com/shiftpulse/timeclock-backend-go/internal/domain/notification"
	"github.com/shiftpulse/timeclock-backend-go/internal/pkg/email"
)

type NotificationServiceImpl struct {
	notification.Repository
	employeeRepo employee.Repository
	emailService email.Service

	now func() time.Time
}

func NewNotificationService(
	repo notification.Repository,
	employeeRepo employee.Repository,
	emailService email.Service,
) *NotificationServiceImpl {
	return &NotificationServiceImpl{
		Repository:   repo,
		employeeRepo: employeeRepo,
		emailService: emailService,
		now:          time.Now,
	}
}

// CreateLateAlert implements notification.Service.
func (s *NotificationServiceImpl) CreateLateAlert(ctx context.Context, date string, late []employee.Employee) (bool, error) {
	exists, err := s.Repository.ExistsByKindAndDate(ctx, notification.KindLateEmployees, date)
	if err != nil {
		return false, fmt.Errorf("failed to check existing alert: %w", err)
	}
	if exists {
		return false, nil
	}

	ids := make([]int, 0, len(late))
	names := make([]string, 0, len(late))
	for _, emp := range late {
		ids = append(ids, emp.ID)
		names = append(names, emp.Name)
	}

	message := fmt.Sprintf("%d employees haven't clocked in yet", len(late))

	// The mailer runs before the store so the record never needs mutating:
	// a notification is immutable once created. With SMTP unconfigured the
	// mailer skips delivery but the alert still counts as sent.
	emailSent := true
	if err := s.emailService.SendLateAlert(date, message, names); err != nil {
		emailSent = false
		slog.Error("Failed to send late alert email", "date", date, "error", err)
	}

	n := &notification.Notification{
		ID:          uuid.New().String(),
		Kind:        notification.KindLateEmployees,
		Message:     message,
		EmployeeIDs: ids,
		EmailSent:   emailSent,
		Timestamp:   s.now(),
		Date:        date,
	}

	if err := s.Repository.Create(ctx, n); err != nil {
		// A concurrent sweep won the race; the day's alert exists, which is
		// all the caller needs to know.
		if errors.Is(err, notification.ErrDuplicateForDate) {
			return false, nil
		}
		return false, fmt.Errorf("failed to store notification: %w", err)
	}

	return true, nil
}

// List implements notification.Service.
func (s *NotificationServiceImpl) List(ctx context.Context) ([]notification.NotificationResponse, error) {
	items, err := s.Repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	out := make([]notification.NotificationResponse, 0, len(items))
	for _, n := range items {
		resp := notification.NotificationResponse{
			ID:          n.ID,
			Kind:        n.Kind,
			Message:     n.Message,
			EmployeeIDs: n.EmployeeIDs,
			EmailSent:   n.EmailSent,
			Timestamp:   n.Timestamp,
			Date:        n.Date,
		}
		// Names resolve against the current directory; the notification
		// itself only holds ids.
		for _, id := range n.EmployeeIDs {
			emp, err := s.employeeRepo.GetByID(ctx, id)
			if err != nil {
				continue
			}
			resp.Employees = append(resp.Employees, emp.Name)
		}
		out = append(out, resp)
	}

	return out, nil
}
