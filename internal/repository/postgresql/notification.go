package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shiftpulse/timeclock-backend-go/internal/domain/notification"
	"github.com/shiftpulse/timeclock-backend-go/internal/pkg/database"
)

const pgUniqueViolation = "23505"

type notificationRepository struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepository{db: db}
}

// Create implements notification.Repository. The unique (kind, date) index
// turns a concurrent duplicate into ErrDuplicateForDate.
func (r *notificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	query := `
		INSERT INTO notifications (id, kind, message, employee_ids, email_sent, timestamp, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		n.ID,
		n.Kind,
		n.Message,
		n.EmployeeIDs,
		n.EmailSent,
		n.Timestamp,
		n.Date,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return notification.ErrDuplicateForDate
		}
		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

// ExistsByKindAndDate implements notification.Repository. The unique index
// makes this a single index lookup.
func (r *notificationRepository) ExistsByKindAndDate(ctx context.Context, kind notification.Kind, date string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM notifications WHERE kind = $1 AND date = $2
		)
	`

	var exists bool
	if err := r.db.QueryRow(ctx, query, kind, date).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check notification: %w", err)
	}

	return exists, nil
}

// List implements notification.Repository.
func (r *notificationRepository) List(ctx context.Context) ([]*notification.Notification, error) {
	query := `
		SELECT id, kind, message, employee_ids, email_sent, timestamp, date
		FROM notifications
		ORDER BY timestamp DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []*notification.Notification
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(&n.ID, &n.Kind, &n.Message, &n.EmployeeIDs, &n.EmailSent, &n.Timestamp, &n.Date); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}

	return notifications, nil
}
