package schedule

import "errors"

var (
	// Resolution errors
	ErrUndefinedSchedule = errors.New("date precedes the assignment's effective start")
	ErrInvalidRange      = errors.New("end date is before start date")

	// Assignment errors
	ErrAssignmentNotFound = errors.New("schedule assignment not found")
)
