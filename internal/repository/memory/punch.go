package memory

import (
	"context"
	"sync"

	"github.com/shiftpulse/timeclock-backend-go/internal/domain/employee"
	"github.com/shiftpulse/timeclock-backend-go/internal/domain/punch"
)

type punchRepository struct {
	directory employee.Repository

	mu     sync.RWMutex
	events []punch.Event
	nextID int64
}

// NewPunchRepository creates the in-memory event log. The directory is
// consulted on append so that an event can never reference an unknown
// employee, the log's only integrity rule.
func NewPunchRepository(directory employee.Repository) punch.Repository {
	return &punchRepository{
		directory: directory,
		nextID:    1,
	}
}

func (r *punchRepository) Append(ctx context.Context, event punch.Event) (punch.Event, error) {
	if _, err := r.directory.GetByID(ctx, event.EmployeeID); err != nil {
		return punch.Event{}, employee.ErrUnknownEmployee
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// id assignment and insertion happen under one lock, so ids are strictly
	// increasing in insertion order even for identical timestamps.
	event.ID = r.nextID
	r.nextID++
	r.events = append(r.events, event)

	return event, nil
}

func (r *punchRepository) ListByEmployeeAndDate(_ context.Context, employeeID int, date string) ([]punch.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []punch.Event
	for _, e := range r.events {
		if e.EmployeeID == employeeID && e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *punchRepository) ListByDate(_ context.Context, date string) ([]punch.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Newest first: walk the append-only slice backwards.
	var out []punch.Event
	for i := len(r.events) - 1; i >= 0; i-- {
		if r.events[i].Date == date {
			out = append(out, r.events[i])
		}
	}
	return out, nil
}
