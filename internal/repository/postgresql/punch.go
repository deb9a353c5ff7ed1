package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shiftpulse/timeclock-backend-go/internal/domain/employee"
	"github.com/shiftpulse/timeclock-backend-go/internal/domain/punch"
	"github.com/shiftpulse/timeclock-backend-go/internal/pkg/database"
)

const pgForeignKeyViolation = "23503"

type punchRepository struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.Repository {
	return &punchRepository{db: db}
}

// Append implements punch.Repository. The identity column assigns ids in
// insertion order, and the employees foreign key rejects ids the directory
// does not know. There is no UPDATE or DELETE path anywhere in this package.
func (r *punchRepository) Append(ctx context.Context, event punch.Event) (punch.Event, error) {
	query := `
		INSERT INTO punch_events (employee_id, type, timestamp, date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		event.EmployeeID,
		event.Type,
		event.Timestamp,
		event.Date,
	).Scan(&event.ID)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return punch.Event{}, employee.ErrUnknownEmployee
		}
		return punch.Event{}, fmt.Errorf("failed to append punch event: %w", err)
	}

	return event, nil
}

// ListByEmployeeAndDate implements punch.Repository.
func (r *punchRepository) ListByEmployeeAndDate(ctx context.Context, employeeID int, date string) ([]punch.Event, error) {
	query := `
		SELECT id, employee_id, type, timestamp, date
		FROM punch_events
		WHERE employee_id = $1 AND date = $2
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, employeeID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list punch events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// ListByDate implements punch.Repository.
func (r *punchRepository) ListByDate(ctx context.Context, date string) ([]punch.Event, error) {
	query := `
		SELECT id, employee_id, type, timestamp, date
		FROM punch_events
		WHERE date = $1
		ORDER BY id DESC
	`

	rows, err := r.db.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list punch events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

func scanEvents(rows pgx.Rows) ([]punch.Event, error) {
	var events []punch.Event
	for rows.Next() {
		var event punch.Event
		if err := rows.Scan(&event.ID, &event.EmployeeID, &event.Type, &event.Timestamp, &event.Date); err != nil {
			return nil, fmt.Errorf("failed to scan punch event: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate punch events: %w", err)
	}

	return events, nil
}
