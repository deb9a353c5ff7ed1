package memory

import (
	"context"

	"github.com/shiftpulse/timeclock-backend-go/internal/domain/employee"
)

type employeeRepository struct {
	// directory order is preserved; byID is a lookup index over the same
	// records.
	ordered []employee.Employee
	byID    map[int]employee.Employee
}

// NewEmployeeRepository creates an in-memory directory seeded with the given
// roster. The directory is immutable after construction, so reads need no
// locking.
func NewEmployeeRepository(seed []employee.Employee) employee.Repository {
	byID := make(map[int]employee.Employee, len(seed))
	ordered := make([]employee.Employee, len(seed))
	copy(ordered, seed)
	for _, e := range seed {
		byID[e.ID] = e
	}
	return &employeeRepository{ordered: ordered, byID: byID}
}

func (r *employeeRepository) GetByID(_ context.Context, id int) (employee.Employee, error) {
	e, ok := r.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *employeeRepository) List(_ context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, len(r.ordered))
	copy(out, r.ordered)
	return out, nil
}
