package timesheet

import "errors"

var (
	// ErrConfigurationInvalid flags a workday configuration with missing or
	// out-of-range fields. The engine never coerces bad config to defaults.
	ErrConfigurationInvalid = errors.New("invalid workday configuration")
)
