package schedule

import (
	"context"
	"time"
)

// Resolver expands an assignment into expected-day predictions. Both methods
// are deterministic: identical inputs always yield identical output, with no
// dependency on wall-clock time or call order.
type Resolver interface {
	// Resolve produces the expected status and clock times for one date.
	// Returns ErrUndefinedSchedule for dates before EffectiveFrom.
	Resolve(assignment Assignment, date time.Time) (ExpectedDay, error)

	// ResolveRange produces exactly one entry per calendar date in
	// [start, end] inclusive, ascending, with no gaps or duplicates.
	ResolveRange(assignment Assignment, start, end time.Time) ([]ExpectedDay, error)
}

// AssignmentService covers the assignment lifecycle: create on onboarding,
// supersede on reassignment.
type AssignmentService interface {
	Assign(ctx context.Context, req AssignRequest) (AssignmentResponse, error)
	GetActiveAssignment(ctx context.Context, employeeID string, asOf time.Time) (AssignmentResponse, error)
	ListAssignments(ctx context.Context, employeeID string) ([]AssignmentResponse, error)
	GetExpectedRange(ctx context.Context, employeeID string, start, end time.Time) ([]ExpectedDayResponse, error)
}
