package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/villacare/timekeeper-backend-go/internal/domain/leave"
	"github.com/villacare/timekeeper-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

// ListByRange implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByRange(ctx context.Context, employeeID string, start, end time.Time, companyID string) ([]leave.Day, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, date, paid, reason
		FROM leave_days
		WHERE employee_id = $1 AND company_id = $2 AND date BETWEEN $3 AND $4
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave days: %w", err)
	}
	defer rows.Close()

	var days []leave.Day
	for rows.Next() {
		var d leave.Day
		if err := rows.Scan(&d.EmployeeID, &d.Date, &d.Paid, &d.Reason); err != nil {
			return nil, fmt.Errorf("failed to scan leave day: %w", err)
		}
		days = append(days, d)
	}

	return days, nil
}
