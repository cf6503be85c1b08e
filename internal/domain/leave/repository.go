package leave

import (
	"context"
	"time"
)

// LeaveRepository supplies leave overrides for a date range.
type LeaveRepository interface {
	ListByRange(ctx context.Context, employeeID string, start, end time.Time, companyID string) ([]Day, error)
}
