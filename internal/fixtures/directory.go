package fixtures

import (
	"github.com/shiftpulse/timeclock-backend-go/internal/domain/employee"
)

// DefaultDirectory returns the employee roster the memory driver seeds at
// startup. In a production deployment the postgres driver replaces this with
// the employees table.
func DefaultDirectory() []employee.Employee {
	return []employee.Employee{
		{ID: 1, Name: "Bongani Mkhize", Email: "bmkhize@company.com", Department: "Engineering"},
		{ID: 2, Name: "Jane Smith", Email: "jane@company.com", Department: "Marketing"},
		{ID: 3, Name: "Mike Johnson", Email: "mike@company.com", Department: "Sales"},
		{ID: 4, Name: "Sarah Wilson", Email: "sarah@company.com", Department: "HR"},
		{ID: 5, Name: "David Brown", Email: "david@company.com", Department: "Finance"},
	}
}
