package http

import (
	"net/http"

	"github.com/shiftpulse/timeclock-backend-go/internal/domain/employee"
	"github.com/shiftpulse/timeclock-backend-go/internal/handler/http/response"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeRepo employee.Repository
}

func NewEmployeeHandler(employeeRepo employee.Repository) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeRepo: employeeRepo,
	}
}

type employeeResponse struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

// List implements EmployeeHandler. The UI populates its id and email
// selection dropdowns from this.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeRepo.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	out := make([]employeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, employeeResponse{
			ID:         e.ID,
			Name:       e.Name,
			Email:      e.Email,
			Department: e.Department,
		})
	}

	response.Success(w, out)
}
