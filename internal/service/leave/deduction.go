package leave

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/employee"
	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/leave"
)

// DeductionCalculator sums unpaid leave days overlapping a payroll period and
// prices them. Pure: it never touches storage, the caller decides how the
// result is materialized.
type DeductionCalculator struct {
	monthlyDivisorDays decimal.Decimal
	standardDailyHours decimal.Decimal
}

func NewDeductionCalculator(standardDailyHours decimal.Decimal) *DeductionCalculator {
	return &DeductionCalculator{
		monthlyDivisorDays: decimal.NewFromInt(30),
		standardDailyHours: standardDailyHours,
	}
}

// Calculate expects approved leaves already filtered to the employee; spans
// are clamped to [periodStart, periodEnd] and only unpaid types count.
func (c *DeductionCalculator) Calculate(emp employee.Employee, leaves []leave.Leave, periodStart, periodEnd time.Time) leave.DeductionResult {
	totalUnpaidDays := 0
	var details []string

	for _, lv := range leaves {
		if lv.Status != leave.LeaveStatusApproved {
			continue
		}

		overlapStart := maxDate(lv.StartDate, periodStart)
		overlapEnd := minDate(lv.EndDate, periodEnd)
		if overlapStart.After(overlapEnd) {
			continue
		}
		overlapDays := int(overlapEnd.Sub(overlapStart).Hours()/24) + 1

		if lv.LeaveType.Unpaid() {
			totalUnpaidDays += overlapDays
			details = append(details, fmt.Sprintf("%s %d days", lv.LeaveType.Display(), overlapDays))
		}
	}

	amount := decimal.Zero
	if totalUnpaidDays > 0 {
		amount = c.DailyRate(emp).Mul(decimal.NewFromInt(int64(totalUnpaidDays)))
	}

	return leave.DeductionResult{
		Amount:     amount,
		UnpaidDays: totalUnpaidDays,
		Details:    strings.Join(details, ", "),
	}
}

// DailyRate derives one unpaid day's value: monthly base over 30 days for
// salaried staff, hourly rate times a standard day otherwise. Employees with
// neither pay field cost nothing, which keeps the engine lenient on data gaps.
func (c *DeductionCalculator) DailyRate(emp employee.Employee) decimal.Decimal {
	if emp.EmploymentType == employee.EmploymentTypeFullTime && emp.BaseSalary != nil {
		return emp.BaseSalary.Div(c.monthlyDivisorDays)
	}
	if emp.HourlyRate != nil {
		return emp.HourlyRate.Mul(c.standardDailyHours)
	}
	return decimal.Zero
}

func maxDate(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minDate(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
