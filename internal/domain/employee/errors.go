package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrUnknownEmployee marks a punch that references an id missing from the
	// directory. Submit validation makes this unreachable; if it surfaces, it
	// is a programming error, not user input.
	ErrUnknownEmployee = errors.New("punch references unknown employee")
)
