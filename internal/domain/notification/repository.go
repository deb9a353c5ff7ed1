package notification

import "context"

// Repository stores notifications. Implementations must enforce the
// (kind, date) uniqueness with an O(1) index lookup, not a scan over the
// whole list.
type Repository interface {
	// Create stores a notification. Fails with ErrDuplicateForDate when one
	// with the same (kind, date) already exists.
	Create(ctx context.Context, n *Notification) error

	// ExistsByKindAndDate reports whether a notification of the kind was
	// already created for the calendar date.
	ExistsByKindAndDate(ctx context.Context, kind Kind, date string) (bool, error)

	// List returns all notifications, most recent first.
	List(ctx context.Context) ([]*Notification, error)
}
