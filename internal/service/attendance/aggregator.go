package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/attendance"
)

// Aggregator turns raw punch events into worked/overtime hours. It is a pure
// calculator over punch data; persistence stays in the punch repository.
type Aggregator struct {
	punchRepo          attendance.PunchRepository
	standardDailyHours decimal.Decimal
	breakThreshold     decimal.Decimal
	breakHours         decimal.Decimal
}

func NewAggregator(punchRepo attendance.PunchRepository, standardDailyHours decimal.Decimal) *Aggregator {
	return &Aggregator{
		punchRepo:          punchRepo,
		standardDailyHours: standardDailyHours,
		breakThreshold:     decimal.NewFromInt(5),
		breakHours:         decimal.NewFromInt(1),
	}
}

// DailyHours pairs one day's punches as first-IN/last-OUT and splits the
// elapsed time into worked and overtime hours. Days with fewer than two
// punches, or without both an IN and an OUT, contribute zero: a partial day
// is dropped, never estimated. Punches must be ordered by time ascending.
func (a *Aggregator) DailyHours(punches []attendance.Punch) attendance.DailyHours {
	zero := attendance.DailyHours{WorkingHours: decimal.Zero, OvertimeHours: decimal.Zero}

	if len(punches) < 2 {
		return zero
	}

	var punchIn, punchOut *attendance.Punch
	for i := range punches {
		p := &punches[i]
		if p.PunchType == attendance.PunchTypeIn && punchIn == nil {
			punchIn = p
		}
		if p.PunchType == attendance.PunchTypeOut {
			punchOut = p
		}
	}
	if punchIn == nil || punchOut == nil {
		return zero
	}

	totalHours := decimal.NewFromFloat(punchOut.PunchTime.Sub(punchIn.PunchTime).Hours())
	if totalHours.IsNegative() {
		return zero
	}

	// Unpaid lunch break applies once the day exceeds five hours.
	if totalHours.GreaterThan(a.breakThreshold) {
		totalHours = totalHours.Sub(a.breakHours)
	}

	if totalHours.GreaterThan(a.standardDailyHours) {
		return attendance.DailyHours{
			WorkingHours:  a.standardDailyHours,
			OvertimeHours: totalHours.Sub(a.standardDailyHours),
		}
	}
	return attendance.DailyHours{WorkingHours: totalHours, OvertimeHours: decimal.Zero}
}

// OvertimePayFunc prices one day's overtime hours. The payroll engine supplies
// it from its rate policy so the aggregator stays free of pay rules.
type OvertimePayFunc func(day time.Time, overtimeHours decimal.Decimal) decimal.Decimal

// AggregatePeriod walks every calendar day in [start, end] inclusive and sums
// worked hours, overtime hours and overtime pay. Weekends and holidays are not
// skipped; they only influence the rate the pay func applies.
func (a *Aggregator) AggregatePeriod(ctx context.Context, employeeID string, start, end time.Time, overtimePay OvertimePayFunc) (attendance.PeriodHours, error) {
	result := attendance.PeriodHours{
		WorkingHours:   decimal.Zero,
		OvertimeHours:  decimal.Zero,
		OvertimeAmount: decimal.Zero,
	}

	for day := dateOnly(start); !day.After(dateOnly(end)); day = day.AddDate(0, 0, 1) {
		punches, err := a.punchRepo.GetByEmployeeAndDate(ctx, employeeID, day)
		if err != nil {
			return attendance.PeriodHours{}, err
		}
		if len(punches) == 0 {
			continue
		}

		daily := a.DailyHours(punches)
		result.WorkingHours = result.WorkingHours.Add(daily.WorkingHours)

		if daily.OvertimeHours.IsPositive() {
			result.OvertimeHours = result.OvertimeHours.Add(daily.OvertimeHours)
			if overtimePay != nil {
				result.OvertimeAmount = result.OvertimeAmount.Add(overtimePay(day, daily.OvertimeHours))
			}
		}
	}

	return result, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
