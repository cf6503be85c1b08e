package schedule

import (
	"fmt"
	"time"

	"github.com/villacare/timekeeper-backend-go/internal/domain/pattern"
	"github.com/villacare/timekeeper-backend-go/internal/domain/schedule"
)

type resolverImpl struct {
	catalog pattern.Catalog
}

// NewResolver builds the schedule resolver over an injected pattern catalog.
func NewResolver(catalog pattern.Catalog) schedule.Resolver {
	return &resolverImpl{catalog: catalog}
}

// Resolve implements schedule.Resolver.
func (r *resolverImpl) Resolve(assignment schedule.Assignment, date time.Time) (schedule.ExpectedDay, error) {
	pat, err := r.catalog.Lookup(assignment.PatternID)
	if err != nil {
		return schedule.ExpectedDay{}, fmt.Errorf("failed to look up pattern %q: %w", assignment.PatternID, err)
	}

	day := dateOnly(date)
	offset := daysBetween(dateOnly(assignment.EffectiveFrom), day)
	if offset < 0 {
		return schedule.ExpectedDay{}, schedule.ErrUndefinedSchedule
	}

	slot := pat.Cycle[offset%pat.CycleLength()]
	expected := schedule.ExpectedDay{Date: day}
	if slot.Status == pattern.SlotWork {
		expected.MustWork = true
		expected.ExpectedHours = slot.Hours
		entry := assignment.EntryTime
		exit := assignment.ExitTime
		expected.ExpectedEntry = &entry
		expected.ExpectedExit = &exit
		expected.ExpectedBreakStart = assignment.BreakStart
		expected.ExpectedBreakEnd = assignment.BreakEnd
	}
	return expected, nil
}

// ResolveRange implements schedule.Resolver.
func (r *resolverImpl) ResolveRange(assignment schedule.Assignment, start, end time.Time) ([]schedule.ExpectedDay, error) {
	startDay := dateOnly(start)
	endDay := dateOnly(end)
	if endDay.Before(startDay) {
		return nil, schedule.ErrInvalidRange
	}

	days := make([]schedule.ExpectedDay, 0, daysBetween(startDay, endDay)+1)
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		expected, err := r.Resolve(assignment, day)
		if err != nil {
			return nil, err
		}
		days = append(days, expected)
	}
	return days, nil
}

// dateOnly normalizes to midnight UTC. All calendar stepping happens on these
// normalized dates with AddDate, never with fixed-duration arithmetic, so a
// DST transition can never shift a day's cycle index.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
