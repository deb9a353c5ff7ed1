package notification

import "errors"

// Notification domain errors
var (
	ErrDuplicateForDate = errors.New("notification already exists for this kind and date")
)
