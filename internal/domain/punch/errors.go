package punch

import "errors"

var (
	ErrPunchNotFound = errors.New("punch record not found")

	// ErrMalformedPunch covers unparseable time fields, a break end before
	// its break start, and spans longer than 24 hours.
	ErrMalformedPunch = errors.New("malformed punch record")

	// ErrPunchNotDeletable guards persisted historical punches: only blank
	// placeholder-grade rows may be deleted without an audit trail.
	ErrPunchNotDeletable = errors.New("punch record has recorded times and cannot be deleted")
)
