package postgresql

import (
	"context"
	"fmt"

	"github.com/shiftpulse/timeclock-backend-go/internal/domain/employee"
	"github.com/shiftpulse/timeclock-backend-go/internal/pkg/database"
)

// EnsureSchema creates the tables and indexes the repositories depend on.
// The punch_events foreign key backs the unknown-employee check, and the
// unique (kind, date) index backs the one-alert-per-day rule.
func EnsureSchema(ctx context.Context, db *database.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS employees (
			id INT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			department TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS punch_events (
			id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
			employee_id INT NOT NULL REFERENCES employees(id),
			type TEXT NOT NULL,
			timestamp TIMESTAMPTZ NOT NULL,
			date TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_punch_events_date ON punch_events (date)`,
		`CREATE INDEX IF NOT EXISTS idx_punch_events_employee_date ON punch_events (employee_id, date)`,
		`CREATE TABLE IF NOT EXISTS notifications (
			id UUID PRIMARY KEY,
			kind TEXT NOT NULL,
			message TEXT NOT NULL,
			employee_ids INT[] NOT NULL,
			email_sent BOOLEAN NOT NULL,
			timestamp TIMESTAMPTZ NOT NULL,
			date TEXT NOT NULL
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_notifications_kind_date ON notifications (kind, date)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}

	return nil
}

// SeedEmployees inserts the roster if the directory is empty, so a fresh
// postgres deployment starts with the same directory the memory driver uses.
func SeedEmployees(ctx context.Context, db *database.DB, roster []employee.Employee) error {
	for _, emp := range roster {
		_, err := db.Exec(ctx, `
			INSERT INTO employees (id, name, email, department)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING
		`, emp.ID, emp.Name, emp.Email, emp.Department)
		if err != nil {
			return fmt.Errorf("failed to seed employee %d: %w", emp.ID, err)
		}
	}

	return nil
}
