package http

import (
	"net/http"

	"github.com/shiftpulse/timeclock-backend-go/internal/domain/report"
	"github.com/shiftpulse/timeclock-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	TodayFeed(w http.ResponseWriter, r *http.Request)
	DailySummary(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// TodayFeed implements ReportHandler.
func (h *reportHandlerImpl) TodayFeed(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.GetTodayFeed(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DailySummary implements ReportHandler.
func (h *reportHandlerImpl) DailySummary(w http.ResponseWriter, r *http.Request) {
	date, ok := dateOrToday(r)
	if !ok {
		response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
		return
	}

	result, err := h.reportService.GetDailySummary(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
