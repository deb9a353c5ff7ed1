package punch

import "fmt"

// DeriveStatus maps a single day's event sequence to the employee's current
// status. It is a pure function of the log: no state is cached, so the result
// is always consistent with the events.
//
// The deciding event is the one with the latest timestamp; when timestamps
// tie, the highest insertion id wins.
func DeriveStatus(events []Event) Status {
	if len(events) == 0 {
		return StatusNotClockedIn
	}

	last := events[0]
	for _, e := range events[1:] {
		if e.Timestamp.After(last.Timestamp) ||
			(e.Timestamp.Equal(last.Timestamp) && e.ID > last.ID) {
			last = e
		}
	}

	switch last.Type {
	case TypeClockIn, TypeBreakEnd:
		return StatusWorking
	case TypeBreakStart:
		return StatusOnBreak
	case TypeClockOut:
		return StatusClockedOut
	}
	return StatusNotClockedIn
}

// WorkedHours is the outcome of pairing a day's clock-in with its clock-out.
type WorkedHours struct {
	Complete bool
	Hours    float64
}

// String renders the total for display: "8.00 hours", or "Incomplete" when
// either punch is missing.
func (w WorkedHours) String() string {
	if !w.Complete {
		return "Incomplete"
	}
	return fmt.Sprintf("%.2f hours", w.Hours)
}

// ComputeWorkedHours pairs the first clock-in with the first clock-out in
// insertion order and returns the elapsed time between them. Breaks are not
// subtracted and multiple in/out cycles per day are not paired; only the
// first of each type counts. A clock-out recorded with a timestamp before
// the clock-in yields a negative total rather than an error.
func ComputeWorkedHours(events []Event) WorkedHours {
	var clockIn, clockOut *Event
	for i := range events {
		e := &events[i]
		switch e.Type {
		case TypeClockIn:
			if clockIn == nil {
				clockIn = e
			}
		case TypeClockOut:
			if clockOut == nil {
				clockOut = e
			}
		}
	}

	if clockIn == nil || clockOut == nil {
		return WorkedHours{}
	}

	return WorkedHours{
		Complete: true,
		Hours:    clockOut.Timestamp.Sub(clockIn.Timestamp).Hours(),
	}
}
