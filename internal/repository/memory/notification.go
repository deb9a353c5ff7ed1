package memory

import (
	"context"
	"sync"

	"github.com/shiftpulse/timeclock-backend-go/internal/domain/notification"
)

type dedupKey struct {
	kind notification.Kind
	date string
}

type notificationRepository struct {
	mu    sync.RWMutex
	items []*notification.Notification
	seen  map[dedupKey]struct{}
}

// NewNotificationRepository creates the in-memory notification store. The
// (kind, date) index makes the per-day dedup an O(1) lookup instead of a
// scan over an ever-growing list.
func NewNotificationRepository() notification.Repository {
	return &notificationRepository{
		seen: make(map[dedupKey]struct{}),
	}
}

func (r *notificationRepository) Create(_ context.Context, n *notification.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := dedupKey{kind: n.Kind, date: n.Date}
	if _, ok := r.seen[key]; ok {
		return notification.ErrDuplicateForDate
	}

	stored := *n
	stored.EmployeeIDs = append([]int(nil), n.EmployeeIDs...)
	r.items = append(r.items, &stored)
	r.seen[key] = struct{}{}

	return nil
}

func (r *notificationRepository) ExistsByKindAndDate(_ context.Context, kind notification.Kind, date string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.seen[dedupKey{kind: kind, date: date}]
	return ok, nil
}

func (r *notificationRepository) List(_ context.Context) ([]*notification.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*notification.Notification, 0, len(r.items))
	for i := len(r.items) - 1; i >= 0; i-- {
		copied := *r.items[i]
		out = append(out, &copied)
	}
	return out, nil
}
