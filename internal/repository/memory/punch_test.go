package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shiftpulse/timeclock-backend-go/internal/domain/employee"
	"github.com/shiftpulse/timeclock-backend-go/internal/domain/punch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDirectory() employee.Repository {
	return NewEmployeeRepository([]employee.Employee{
		{ID: 1, Name: "Alice", Email: "a@x.com", Department: "Eng"},
		{ID: 2, Name: "Bob", Email: "b@x.com", Department: "Sales"},
	})
}

func mustAppend(t *testing.T, repo punch.Repository, employeeID int, typ punch.Type, ts time.Time) punch.Event {
	t.Helper()
	e, err := repo.Append(context.Background(), punch.Event{
		EmployeeID: employeeID,
		Type:       typ,
		Timestamp:  ts,
		Date:       ts.Format(punch.DateLayout),
	})
	require.NoError(t, err)
	return e
}

func TestPunchRepository_Append_AssignsMonotonicIDs(t *testing.T) {
	t.Parallel()
	repo := NewPunchRepository(testDirectory())

	ts := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)
	first := mustAppend(t, repo, 1, punch.TypeClockIn, ts)
	second := mustAppend(t, repo, 2, punch.TypeClockIn, ts)
	third := mustAppend(t, repo, 1, punch.TypeBreakStart, ts)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, int64(3), third.ID)
}

func TestPunchRepository_Append_UnknownEmployee(t *testing.T) {
	t.Parallel()
	repo := NewPunchRepository(testDirectory())

	ts := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)
	_, err := repo.Append(context.Background(), punch.Event{
		EmployeeID: 9,
		Type:       punch.TypeClockIn,
		Timestamp:  ts,
		Date:       ts.Format(punch.DateLayout),
	})

	assert.ErrorIs(t, err, employee.ErrUnknownEmployee)

	events, err := repo.ListByDate(context.Background(), ts.Format(punch.DateLayout))
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestPunchRepository_Append_NoOrderingValidation(t *testing.T) {
	t.Parallel()
	repo := NewPunchRepository(testDirectory())

	// Two consecutive clock-ins on the same day append without rejection.
	ts := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)
	mustAppend(t, repo, 1, punch.TypeClockIn, ts)
	mustAppend(t, repo, 1, punch.TypeClockIn, ts.Add(time.Hour))

	events, err := repo.ListByEmployeeAndDate(context.Background(), 1, ts.Format(punch.DateLayout))
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestPunchRepository_ListByEmployeeAndDate_FiltersAndKeepsInsertionOrder(t *testing.T) {
	t.Parallel()
	repo := NewPunchRepository(testDirectory())

	day := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)
	otherDay := day.AddDate(0, 0, 1)
	mustAppend(t, repo, 1, punch.TypeClockIn, day)
	mustAppend(t, repo, 2, punch.TypeClockIn, day.Add(time.Minute))
	mustAppend(t, repo, 1, punch.TypeBreakStart, day.Add(time.Hour))
	mustAppend(t, repo, 1, punch.TypeClockIn, otherDay)

	events, err := repo.ListByEmployeeAndDate(context.Background(), 1, day.Format(punch.DateLayout))
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, punch.TypeClockIn, events[0].Type)
	assert.Equal(t, punch.TypeBreakStart, events[1].Type)
	assert.Less(t, events[0].ID, events[1].ID)
}

func TestPunchRepository_ListByDate_NewestFirst(t *testing.T) {
	t.Parallel()
	repo := NewPunchRepository(testDirectory())

	day := time.Date(2024, 3, 4, 9, 0, 0, 0, time.Local)
	mustAppend(t, repo, 1, punch.TypeClockIn, day)
	mustAppend(t, repo, 2, punch.TypeClockIn, day.Add(time.Minute))
	mustAppend(t, repo, 1, punch.TypeClockOut, day.Add(8*time.Hour))

	events, err := repo.ListByDate(context.Background(), day.Format(punch.DateLayout))
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, punch.TypeClockOut, events[0].Type)
	assert.Equal(t, int64(3), events[0].ID)
	assert.Equal(t, int64(1), events[2].ID)
}
