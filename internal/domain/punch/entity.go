package punch

import (
	"time"
)

// Type is the kind of punch action an employee records.
type Type string

const (
	TypeClockIn    Type = "clock_in"
	TypeBreakStart Type = "break_start"
	TypeBreakEnd   Type = "break_end"
	TypeClockOut   Type = "clock_out"
)

// AllTypes returns every valid punch type.
func AllTypes() []Type {
	return []Type{TypeClockIn, TypeBreakStart, TypeBreakEnd, TypeClockOut}
}

// IsValid reports whether t is one of the four punch types.
func (t Type) IsValid() bool {
	switch t {
	case TypeClockIn, TypeBreakStart, TypeBreakEnd, TypeClockOut:
		return true
	}
	return false
}

// Label returns the human-readable action label shown in the activity feed.
func (t Type) Label() string {
	switch t {
	case TypeClockIn:
		return "Clock In"
	case TypeBreakStart:
		return "Break Start"
	case TypeBreakEnd:
		return "Break End"
	case TypeClockOut:
		return "Clock Out"
	}
	return "Unknown"
}

// SuccessMessage returns the confirmation text for a recorded punch.
func (t Type) SuccessMessage() string {
	switch t {
	case TypeClockIn:
		return "Clocked in successfully!"
	case TypeBreakStart:
		return "Break started!"
	case TypeBreakEnd:
		return "Break ended!"
	case TypeClockOut:
		return "Clocked out successfully!"
	}
	return "Punch recorded"
}

// DateLayout is the calendar-date partition key format. Dates are derived
// from the punch timestamp in the host's local zone.
const DateLayout = "2006-01-02"

// Event is a single timestamped attendance action. The log is append-only:
// events are never edited or removed once recorded.
type Event struct {
	// ID increases monotonically in insertion order. Ties on Timestamp are
	// broken by ID, never by wall clock alone.
	ID         int64
	EmployeeID int
	Type       Type
	Timestamp  time.Time
	// Date is Timestamp's local calendar date, the partition key for all
	// "today" queries.
	Date string
}

// Status is the attendance phase derived from an employee's most recent
// punch on a calendar date.
type Status string

const (
	StatusNotClockedIn Status = "Not clocked in"
	StatusWorking      Status = "Working"
	StatusOnBreak      Status = "On Break"
	StatusClockedOut   Status = "Clocked Out"
)
