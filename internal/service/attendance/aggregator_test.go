package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/attendance"
)

type fakePunchRepo struct {
	punchesByDay map[string][]attendance.Punch
}

func (r *fakePunchRepo) Create(ctx context.Context, p attendance.Punch) (attendance.Punch, error) {
	return p, nil
}

func (r *fakePunchRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) ([]attendance.Punch, error) {
	return r.punchesByDay[date.Format("2006-01-02")], nil
}

func (r *fakePunchRepo) GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Punch, error) {
	var all []attendance.Punch
	for _, punches := range r.punchesByDay {
		all = append(all, punches...)
	}
	return all, nil
}

func punchAt(t *testing.T, value string, punchType attendance.PunchType) attendance.Punch {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return attendance.Punch{EmployeeID: "emp-1", PunchTime: ts, PunchType: punchType}
}

func newTestAggregator(repo attendance.PunchRepository) *Aggregator {
	return NewAggregator(repo, decimal.NewFromInt(8))
}

func TestDailyHours_StandardDayWithOvertime(t *testing.T) {
	agg := newTestAggregator(nil)

	// 08:00 to 17:30 is 9.5h elapsed, minus 1h break = 8.5h
	hours := agg.DailyHours([]attendance.Punch{
		punchAt(t, "2026-03-02T08:00:00Z", attendance.PunchTypeIn),
		punchAt(t, "2026-03-02T17:30:00Z", attendance.PunchTypeOut),
	})

	assert.True(t, hours.WorkingHours.Equal(decimal.NewFromInt(8)), "working hours: %s", hours.WorkingHours)
	assert.True(t, hours.OvertimeHours.Equal(decimal.NewFromFloat(0.5)), "overtime hours: %s", hours.OvertimeHours)
}

func TestDailyHours_ExactStandardDay(t *testing.T) {
	agg := newTestAggregator(nil)

	// 09:00 to 18:00 is 9h elapsed, minus 1h break = exactly 8h
	hours := agg.DailyHours([]attendance.Punch{
		punchAt(t, "2026-03-02T09:00:00Z", attendance.PunchTypeIn),
		punchAt(t, "2026-03-02T18:00:00Z", attendance.PunchTypeOut),
	})

	assert.True(t, hours.WorkingHours.Equal(decimal.NewFromInt(8)))
	assert.True(t, hours.OvertimeHours.IsZero())
}

func TestDailyHours_ShortDayKeepsBreak(t *testing.T) {
	agg := newTestAggregator(nil)

	// 4h elapsed stays under the break threshold, no deduction
	hours := agg.DailyHours([]attendance.Punch{
		punchAt(t, "2026-03-02T09:00:00Z", attendance.PunchTypeIn),
		punchAt(t, "2026-03-02T13:00:00Z", attendance.PunchTypeOut),
	})

	assert.True(t, hours.WorkingHours.Equal(decimal.NewFromInt(4)))
	assert.True(t, hours.OvertimeHours.IsZero())
}

func TestDailyHours_SinglePunchIsZero(t *testing.T) {
	agg := newTestAggregator(nil)

	hours := agg.DailyHours([]attendance.Punch{
		punchAt(t, "2026-03-02T09:00:00Z", attendance.PunchTypeIn),
	})

	assert.True(t, hours.WorkingHours.IsZero())
	assert.True(t, hours.OvertimeHours.IsZero())
}

func TestDailyHours_MissingOutIsZero(t *testing.T) {
	agg := newTestAggregator(nil)

	hours := agg.DailyHours([]attendance.Punch{
		punchAt(t, "2026-03-02T09:00:00Z", attendance.PunchTypeIn),
		punchAt(t, "2026-03-02T13:00:00Z", attendance.PunchTypeIn),
	})

	assert.True(t, hours.WorkingHours.IsZero())
	assert.True(t, hours.OvertimeHours.IsZero())
}

func TestDailyHours_FirstInLastOutWins(t *testing.T) {
	agg := newTestAggregator(nil)

	// Duplicate punches: pairing uses the first IN and the last OUT
	hours := agg.DailyHours([]attendance.Punch{
		punchAt(t, "2026-03-02T09:00:00Z", attendance.PunchTypeIn),
		punchAt(t, "2026-03-02T12:00:00Z", attendance.PunchTypeOut),
		punchAt(t, "2026-03-02T13:00:00Z", attendance.PunchTypeIn),
		punchAt(t, "2026-03-02T18:00:00Z", attendance.PunchTypeOut),
	})

	assert.True(t, hours.WorkingHours.Equal(decimal.NewFromInt(8)))
	assert.True(t, hours.OvertimeHours.IsZero())
}

func TestDailyHours_OutBeforeInIsZero(t *testing.T) {
	agg := newTestAggregator(nil)

	hours := agg.DailyHours([]attendance.Punch{
		punchAt(t, "2026-03-02T18:00:00Z", attendance.PunchTypeOut),
		punchAt(t, "2026-03-02T19:00:00Z", attendance.PunchTypeIn),
	})

	assert.True(t, hours.WorkingHours.IsZero())
	assert.True(t, hours.OvertimeHours.IsZero())
}

func TestAggregatePeriod_SumsDaysAndPricesOvertime(t *testing.T) {
	repo := &fakePunchRepo{punchesByDay: map[string][]attendance.Punch{
		// Monday: 8h + 1h overtime
		"2026-03-02": {
			punchAt(t, "2026-03-02T09:00:00Z", attendance.PunchTypeIn),
			punchAt(t, "2026-03-02T19:00:00Z", attendance.PunchTypeOut),
		},
		// Tuesday: plain 8h
		"2026-03-03": {
			punchAt(t, "2026-03-03T09:00:00Z", attendance.PunchTypeIn),
			punchAt(t, "2026-03-03T18:00:00Z", attendance.PunchTypeOut),
		},
		// Wednesday: single punch, dropped
		"2026-03-04": {
			punchAt(t, "2026-03-04T09:00:00Z", attendance.PunchTypeIn),
		},
	}}
	agg := newTestAggregator(repo)

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)

	flatRate := decimal.NewFromInt(100)
	hours, err := agg.AggregatePeriod(context.Background(), "emp-1", start, end,
		func(day time.Time, overtimeHours decimal.Decimal) decimal.Decimal {
			return flatRate.Mul(overtimeHours)
		})
	require.NoError(t, err)

	assert.True(t, hours.WorkingHours.Equal(decimal.NewFromInt(16)), "working hours: %s", hours.WorkingHours)
	assert.True(t, hours.OvertimeHours.Equal(decimal.NewFromInt(1)), "overtime hours: %s", hours.OvertimeHours)
	assert.True(t, hours.OvertimeAmount.Equal(decimal.NewFromInt(100)), "overtime amount: %s", hours.OvertimeAmount)
}

func TestAggregatePeriod_NilPayFuncSkipsPricing(t *testing.T) {
	repo := &fakePunchRepo{punchesByDay: map[string][]attendance.Punch{
		"2026-03-02": {
			punchAt(t, "2026-03-02T09:00:00Z", attendance.PunchTypeIn),
			punchAt(t, "2026-03-02T19:00:00Z", attendance.PunchTypeOut),
		},
	}}
	agg := newTestAggregator(repo)

	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	hours, err := agg.AggregatePeriod(context.Background(), "emp-1", day, day, nil)
	require.NoError(t, err)

	assert.True(t, hours.OvertimeHours.Equal(decimal.NewFromInt(1)))
	assert.True(t, hours.OvertimeAmount.IsZero())
}
