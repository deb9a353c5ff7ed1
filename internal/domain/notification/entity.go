package notification

import (
	"time"
)

// Kind represents the type of notification
type Kind string

const (
	KindLateEmployees Kind = "late_employees"
)

// Notification is derived data produced by the late-arrival monitor. It is
// never mutated after creation and lives for the process lifetime. The
// employee roster is a snapshot taken by the first sweep that triggered the
// alert; employees clocking in (or going late) afterwards do not change it.
type Notification struct {
	ID          string
	Kind        Kind
	Message     string
	EmployeeIDs []int
	// EmailSent records that the alert was handed to the mailer. With SMTP
	// unconfigured the mailer skips delivery and the alert is still marked
	// sent.
	EmailSent bool
	Timestamp time.Time
	// Date is the calendar date the alert covers. (Kind, Date) is the dedup
	// key: at most one notification of a kind exists per day.
	Date string
}
