package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shiftpulse/timeclock-backend-go/internal/domain/employee"
	"github.com/shiftpulse/timeclock-backend-go/internal/domain/punch"
	"github.com/shiftpulse/timeclock-backend-go/internal/domain/report"
)

const timeLayout = "15:04:05"

// placeholder fills summary cells that have no punch yet.
const placeholder = "-"

type ReportServiceImpl struct {
	employeeRepo employee.Repository
	punchRepo    punch.Repository

	now func() time.Time
}

func NewReportService(employeeRepo employee.Repository, punchRepo punch.Repository) *ReportServiceImpl {
	return &ReportServiceImpl{
		employeeRepo: employeeRepo,
		punchRepo:    punchRepo,
		now:          time.Now,
	}
}

// GetTodayFeed implements report.Service.
func (s *ReportServiceImpl) GetTodayFeed(ctx context.Context) ([]report.FeedEntry, error) {
	today := s.now().Format(punch.DateLayout)

	events, err := s.punchRepo.ListByDate(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to list today's events: %w", err)
	}

	feed := make([]report.FeedEntry, 0, len(events))
	for _, e := range events {
		entry := report.FeedEntry{
			EventID:    e.ID,
			EmployeeID: e.EmployeeID,
			Action:     e.Type.Label(),
			Time:       e.Timestamp.Format(timeLayout),
			Date:       e.Date,
		}
		if emp, err := s.employeeRepo.GetByID(ctx, e.EmployeeID); err == nil {
			entry.EmployeeName = emp.Name
		}
		feed = append(feed, entry)
	}

	return feed, nil
}

// GetDailySummary implements report.Service.
func (s *ReportServiceImpl) GetDailySummary(ctx context.Context, date string) ([]report.SummaryRow, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory: %w", err)
	}

	rows := make([]report.SummaryRow, 0, len(employees))
	for _, emp := range employees {
		events, err := s.punchRepo.ListByEmployeeAndDate(ctx, emp.ID, date)
		if err != nil {
			return nil, fmt.Errorf("failed to list events for employee %d: %w", emp.ID, err)
		}

		row := report.SummaryRow{
			EmployeeID:  emp.ID,
			Name:        emp.Name,
			Department:  emp.Department,
			ClockIn:     placeholder,
			ClockOut:    placeholder,
			HoursWorked: punch.ComputeWorkedHours(events).String(),
			Status:      punch.DeriveStatus(events),
		}

		// First clock-in and first clock-out, matching the hours pairing.
		for _, e := range events {
			switch e.Type {
			case punch.TypeClockIn:
				if row.ClockIn == placeholder {
					row.ClockIn = e.Timestamp.Format(timeLayout)
				}
			case punch.TypeClockOut:
				if row.ClockOut == placeholder {
					row.ClockOut = e.Timestamp.Format(timeLayout)
				}
			}
		}

		rows = append(rows, row)
	}

	return rows, nil
}
