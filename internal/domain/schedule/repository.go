package schedule

import (
	"context"
	"time"
)

// AssignmentRepository defines data access for schedule assignments.
// All methods include companyID to prevent cross-company data access.
type AssignmentRepository interface {
	// Create inserts a new assignment
	Create(ctx context.Context, assignment Assignment) (Assignment, error)

	// GetActive retrieves the assignment in effect for an employee as of a
	// date: latest EffectiveFrom <= asOf that has not been superseded before
	// that date
	GetActive(ctx context.Context, employeeID string, asOf time.Time, companyID string) (Assignment, error)

	// Supersede stamps an assignment as replaced from the given date onwards
	Supersede(ctx context.Context, id string, at time.Time, companyID string) error

	// ListByEmployee returns all assignments for an employee, newest first
	ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]Assignment, error)
}
