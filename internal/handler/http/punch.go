package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shiftpulse/timeclock-backend-go/internal/domain/punch"
	"github.com/shiftpulse/timeclock-backend-go/internal/handler/http/response"
	"github.com/shiftpulse/timeclock-backend-go/internal/pkg/validator"
)

type PunchHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	GetStatus(w http.ResponseWriter, r *http.Request)
	GetWorkedHours(w http.ResponseWriter, r *http.Request)
}

type punchHandlerImpl struct {
	punchService punch.Service
}

func NewPunchHandler(punchService punch.Service) PunchHandler {
	return &punchHandlerImpl{
		punchService: punchService,
	}
}

// Submit implements PunchHandler.
func (h *punchHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req punch.SubmitPunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.punchService.SubmitPunch(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result.Message, result)
}

// GetStatus implements PunchHandler.
func (h *punchHandlerImpl) GetStatus(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Employee id must be a number", nil)
		return
	}

	date, ok := dateOrToday(r)
	if !ok {
		response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
		return
	}

	result, err := h.punchService.GetStatus(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetWorkedHours implements PunchHandler.
func (h *punchHandlerImpl) GetWorkedHours(w http.ResponseWriter, r *http.Request) {
	employeeID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Employee id must be a number", nil)
		return
	}

	date, ok := dateOrToday(r)
	if !ok {
		response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
		return
	}

	result, err := h.punchService.GetWorkedHours(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// dateOrToday reads the optional date query parameter, defaulting to today's
// local calendar date.
func dateOrToday(r *http.Request) (string, bool) {
	date := r.URL.Query().Get("date")
	if date == "" {
		return time.Now().Format(punch.DateLayout), true
	}
	if _, ok := validator.IsValidDate(date); !ok {
		return "", false
	}
	return date, true
}
