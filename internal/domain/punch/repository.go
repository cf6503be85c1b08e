package punch

import (
	"context"
	"time"
)

// PunchRepository defines data access for punch records.
// All methods include companyID to prevent cross-company data access.
type PunchRepository interface {
	// Upsert inserts or replaces the punch for (employee, date)
	Upsert(ctx context.Context, p Punch) (Punch, error)

	// GetByID retrieves a punch by its identifier
	GetByID(ctx context.Context, id string, companyID string) (Punch, error)

	// GetByEmployeeAndDate retrieves the punch for a specific working day
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*Punch, error)

	// ListByRange retrieves all punches for an employee within
	// [start, end] inclusive, ascending by date
	ListByRange(ctx context.Context, employeeID string, start, end time.Time, companyID string) ([]Punch, error)

	// Delete removes a punch row
	Delete(ctx context.Context, id string, companyID string) error
}
