package punch

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tod(t *testing.T, s string) *time.Time {
	t.Helper()
	v, err := time.Parse("15:04", s)
	require.NoError(t, err)
	return &v
}

func TestPunch_IsOvernight(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		entry *time.Time
		exit  *time.Time
		want  bool
	}{
		{"day shift", tod(t, "08:00"), tod(t, "17:00"), false},
		{"overnight", tod(t, "22:00"), tod(t, "06:00"), true},
		{"just before midnight", tod(t, "23:50"), tod(t, "23:59"), false},
		{"equal times", tod(t, "08:00"), tod(t, "08:00"), false},
		{"missing exit", tod(t, "22:00"), nil, false},
		{"missing entry", nil, tod(t, "06:00"), false},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p := Punch{Entry: tc.entry, Exit: tc.exit}
			assert.Equal(t, tc.want, p.IsOvernight())
		})
	}
}

func TestPunch_IsEmptyAndHasTimes(t *testing.T) {
	t.Parallel()

	assert.True(t, Punch{}.IsEmpty())
	assert.False(t, Punch{}.HasTimes())

	withEntry := Punch{Entry: tod(t, "08:00")}
	assert.False(t, withEntry.IsEmpty())
	assert.True(t, withEntry.HasTimes())

	// A punch carrying only break times is not empty but does not count as a
	// record for reconciliation.
	breakOnly := Punch{BreakStart: tod(t, "12:00"), BreakEnd: tod(t, "12:30")}
	assert.False(t, breakOnly.IsEmpty())
	assert.False(t, breakOnly.HasTimes())
}

func TestUpsertPunchRequest_Validate(t *testing.T) {
	t.Parallel()

	entry := "08:00"
	exit := "17:00"
	bs := "12:00"
	badBE := "11:00"
	badClock := "25:61"

	cases := []struct {
		name    string
		req     UpsertPunchRequest
		wantErr bool
	}{
		{"valid", UpsertPunchRequest{EmployeeID: "e1", Date: "2025-06-02", Entry: &entry, Exit: &exit}, false},
		{"valid empty times", UpsertPunchRequest{EmployeeID: "e1", Date: "2025-06-02"}, false},
		{"missing employee", UpsertPunchRequest{Date: "2025-06-02"}, true},
		{"bad date", UpsertPunchRequest{EmployeeID: "e1", Date: "02/06/2025"}, true},
		{"bad clock", UpsertPunchRequest{EmployeeID: "e1", Date: "2025-06-02", Entry: &badClock}, true},
		{"break end before start", UpsertPunchRequest{EmployeeID: "e1", Date: "2025-06-02", Entry: &entry, Exit: &exit, BreakStart: &bs, BreakEnd: &badBE}, true},
		{"one-ended break", UpsertPunchRequest{EmployeeID: "e1", Date: "2025-06-02", BreakStart: &bs}, true},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.req.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
