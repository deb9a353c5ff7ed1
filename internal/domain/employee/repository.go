package employee

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int) (Employee, error)

	// List returns the full directory in directory order. Summary views
	// iterate this order, not a sorted one.
	List(ctx context.Context) ([]Employee, error)
}
