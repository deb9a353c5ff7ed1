package punch

import "errors"

// Punch domain errors
var (
	// Submit errors
	ErrMissingSelection   = errors.New("please select both employee id and email")
	ErrInvalidCredentials = errors.New("invalid employee credentials")
)
