package leave

import "time"

// Day is an absence/leave override for one calendar date. The hours
// calculator consults it to reclassify an otherwise-absent working day.
type Day struct {
	EmployeeID string
	Date       time.Time
	Paid       bool
	Reason     *string
}
