package report

import "github.com/shiftpulse/timeclock-backend-go/internal/domain/punch"

// FeedEntry is one row of today's activity feed.
type FeedEntry struct {
	EventID      int64  `json:"event_id"`
	EmployeeID   int    `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Action       string `json:"action"`
	Time         string `json:"time"`
	Date         string `json:"date"`
}

// SummaryRow is one employee's line in the daily summary, in directory
// order. Missing punches render as the "-" placeholder the admin table shows.
type SummaryRow struct {
	EmployeeID  int          `json:"employee_id"`
	Name        string       `json:"name"`
	Department  string       `json:"department"`
	ClockIn     string       `json:"clock_in"`
	ClockOut    string       `json:"clock_out"`
	HoursWorked string       `json:"hours_worked"`
	Status      punch.Status `json:"status"`
}
