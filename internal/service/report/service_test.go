package report

import (
	"context"
	"testing"
	"time"

	"github.com/shiftpulse/timeclock-backend-go/internal/domain/employee"
	"github.com/shiftpulse/timeclock-backend-go/internal/domain/punch"
	"github.com/shiftpulse/timeclock-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRoster() []employee.Employee {
	return []employee.Employee{
		{ID: 1, Name: "Alice", Email: "a@x.com", Department: "Eng"},
		{ID: 2, Name: "Bob", Email: "b@x.com", Department: "Sales"},
	}
}

func newTestService() (*ReportServiceImpl, punch.Repository) {
	employeeRepo := memory.NewEmployeeRepository(testRoster())
	punchRepo := memory.NewPunchRepository(employeeRepo)
	return NewReportService(employeeRepo, punchRepo), punchRepo
}

func appendEvent(t *testing.T, repo punch.Repository, employeeID int, typ punch.Type, ts time.Time) {
	t.Helper()
	_, err := repo.Append(context.Background(), punch.Event{
		EmployeeID: employeeID,
		Type:       typ,
		Timestamp:  ts,
		Date:       ts.Format(punch.DateLayout),
	})
	require.NoError(t, err)
}

func TestReportService_GetTodayFeed_NewestFirst(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, punchRepo := newTestService()

	day := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)
	svc.now = func() time.Time { return day.Add(10 * time.Hour) }

	appendEvent(t, punchRepo, 1, punch.TypeClockIn, day)
	appendEvent(t, punchRepo, 2, punch.TypeClockIn, day.Add(15*time.Minute))
	appendEvent(t, punchRepo, 1, punch.TypeBreakStart, day.Add(time.Hour))

	feed, err := svc.GetTodayFeed(ctx)
	require.NoError(t, err)
	require.Len(t, feed, 3)

	assert.Equal(t, "Alice", feed[0].EmployeeName)
	assert.Equal(t, "Break Start", feed[0].Action)
	assert.Equal(t, "10:00:00", feed[0].Time)
	assert.Equal(t, "Bob", feed[1].EmployeeName)
	assert.Equal(t, "Clock In", feed[2].Action)
	assert.Equal(t, "09:00:00", feed[2].Time)
}

func TestReportService_GetTodayFeed_EmptyDay(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService()
	svc.now = func() time.Time { return time.Date(2024, 3, 4, 12, 0, 0, 0, time.Local) }

	feed, err := svc.GetTodayFeed(context.Background())
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestReportService_GetDailySummary_DirectoryOrderAndPlaceholders(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, punchRepo := newTestService()

	day := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)
	date := day.Format(punch.DateLayout)

	// Alice works a full day; Bob never punches.
	appendEvent(t, punchRepo, 1, punch.TypeClockIn, day)
	appendEvent(t, punchRepo, 1, punch.TypeClockOut, day.Add(8*time.Hour))

	rows, err := svc.GetDailySummary(ctx, date)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Rows follow directory order, not name or status order.
	assert.Equal(t, "Alice", rows[0].Name)
	assert.Equal(t, "Eng", rows[0].Department)
	assert.Equal(t, "09:00:00", rows[0].ClockIn)
	assert.Equal(t, "17:00:00", rows[0].ClockOut)
	assert.Equal(t, "8.00 hours", rows[0].HoursWorked)
	assert.Equal(t, punch.StatusClockedOut, rows[0].Status)

	assert.Equal(t, "Bob", rows[1].Name)
	assert.Equal(t, "-", rows[1].ClockIn)
	assert.Equal(t, "-", rows[1].ClockOut)
	assert.Equal(t, "Incomplete", rows[1].HoursWorked)
	assert.Equal(t, punch.StatusNotClockedIn, rows[1].Status)
}

func TestReportService_GetDailySummary_FirstPunchesShown(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, punchRepo := newTestService()

	day := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)
	date := day.Format(punch.DateLayout)

	// Two cycles: the summary shows the first clock-in and first clock-out.
	appendEvent(t, punchRepo, 1, punch.TypeClockIn, day)
	appendEvent(t, punchRepo, 1, punch.TypeClockOut, day.Add(3*time.Hour))
	appendEvent(t, punchRepo, 1, punch.TypeClockIn, day.Add(4*time.Hour))
	appendEvent(t, punchRepo, 1, punch.TypeClockOut, day.Add(8*time.Hour))

	rows, err := svc.GetDailySummary(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, "09:00:00", rows[0].ClockIn)
	assert.Equal(t, "12:00:00", rows[0].ClockOut)
	assert.Equal(t, "3.00 hours", rows[0].HoursWorked)
}

func TestReportService_GetDailySummary_Idempotent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, punchRepo := newTestService()

	day := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)
	date := day.Format(punch.DateLayout)
	appendEvent(t, punchRepo, 1, punch.TypeClockIn, day)

	first, err := svc.GetDailySummary(ctx, date)
	require.NoError(t, err)
	second, err := svc.GetDailySummary(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
