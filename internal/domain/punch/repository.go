package punch

import "context"

// Repository is the append-only event log. Implementations must assign
// monotonically increasing ids in insertion order and must never expose a
// way to edit or delete a recorded event.
type Repository interface {
	// Append records one event and returns it with its assigned id. Fails
	// with employee.ErrUnknownEmployee when the event references an id the
	// directory does not know. Event-type ordering is deliberately not
	// validated: two consecutive clock-ins on the same day append fine.
	Append(ctx context.Context, event Event) (Event, error)

	// ListByEmployeeAndDate returns one employee's events for a calendar
	// date in insertion order.
	ListByEmployeeAndDate(ctx context.Context, employeeID int, date string) ([]Event, error)

	// ListByDate returns all events for a calendar date, newest first, the
	// order the activity feed presents them in.
	ListByDate(ctx context.Context, date string) ([]Event, error)
}
