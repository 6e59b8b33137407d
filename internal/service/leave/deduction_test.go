package leave

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/employee"
	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/leave"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fullTimeEmployee(baseSalary int64) employee.Employee {
	base := decimal.NewFromInt(baseSalary)
	return employee.Employee{
		ID:             "emp-1",
		EmploymentType: employee.EmploymentTypeFullTime,
		BaseSalary:     &base,
	}
}

func TestCalculate_UnpaidLeaveDeductsDailyRate(t *testing.T) {
	calc := NewDeductionCalculator(decimal.NewFromInt(8))
	emp := fullTimeEmployee(60000)

	leaves := []leave.Leave{{
		LeaveType: leave.LeaveTypePersonal,
		Status:    leave.LeaveStatusApproved,
		StartDate: date(2026, 3, 10),
		EndDate:   date(2026, 3, 11),
	}}

	result := calc.Calculate(emp, leaves, date(2026, 3, 1), date(2026, 3, 31))

	// 60000 / 30 = 2000 per day, 2 days
	assert.Equal(t, 2, result.UnpaidDays)
	assert.True(t, result.Amount.Equal(decimal.NewFromInt(4000)), "amount: %s", result.Amount)
	assert.Equal(t, "Personal Leave 2 days", result.Details)
}

func TestCalculate_PaidLeaveTypesIgnored(t *testing.T) {
	calc := NewDeductionCalculator(decimal.NewFromInt(8))
	emp := fullTimeEmployee(60000)

	leaves := []leave.Leave{{
		LeaveType: leave.LeaveTypeAnnual,
		Status:    leave.LeaveStatusApproved,
		StartDate: date(2026, 3, 10),
		EndDate:   date(2026, 3, 12),
	}}

	result := calc.Calculate(emp, leaves, date(2026, 3, 1), date(2026, 3, 31))

	assert.Equal(t, 0, result.UnpaidDays)
	assert.True(t, result.Amount.IsZero())
	assert.Empty(t, result.Details)
}

func TestCalculate_PendingLeaveIgnored(t *testing.T) {
	calc := NewDeductionCalculator(decimal.NewFromInt(8))
	emp := fullTimeEmployee(60000)

	leaves := []leave.Leave{{
		LeaveType: leave.LeaveTypeSick,
		Status:    leave.LeaveStatusPending,
		StartDate: date(2026, 3, 10),
		EndDate:   date(2026, 3, 10),
	}}

	result := calc.Calculate(emp, leaves, date(2026, 3, 1), date(2026, 3, 31))

	assert.Equal(t, 0, result.UnpaidDays)
	assert.True(t, result.Amount.IsZero())
}

func TestCalculate_SpanClampedToPeriod(t *testing.T) {
	calc := NewDeductionCalculator(decimal.NewFromInt(8))
	emp := fullTimeEmployee(60000)

	// Leave runs Feb 25 to Mar 3; only Mar 1-3 falls inside the period
	leaves := []leave.Leave{{
		LeaveType: leave.LeaveTypeSick,
		Status:    leave.LeaveStatusApproved,
		StartDate: date(2026, 2, 25),
		EndDate:   date(2026, 3, 3),
	}}

	result := calc.Calculate(emp, leaves, date(2026, 3, 1), date(2026, 3, 31))

	assert.Equal(t, 3, result.UnpaidDays)
	assert.True(t, result.Amount.Equal(decimal.NewFromInt(6000)), "amount: %s", result.Amount)
}

func TestCalculate_MixedLeaveTypesOnlyUnpaidCounted(t *testing.T) {
	calc := NewDeductionCalculator(decimal.NewFromInt(8))
	emp := fullTimeEmployee(30000)

	leaves := []leave.Leave{
		{
			LeaveType: leave.LeaveTypePersonal,
			Status:    leave.LeaveStatusApproved,
			StartDate: date(2026, 3, 5),
			EndDate:   date(2026, 3, 5),
		},
		{
			LeaveType: leave.LeaveTypeSick,
			Status:    leave.LeaveStatusApproved,
			StartDate: date(2026, 3, 9),
			EndDate:   date(2026, 3, 10),
		},
		{
			LeaveType: leave.LeaveTypeMarriage,
			Status:    leave.LeaveStatusApproved,
			StartDate: date(2026, 3, 16),
			EndDate:   date(2026, 3, 20),
		},
	}

	result := calc.Calculate(emp, leaves, date(2026, 3, 1), date(2026, 3, 31))

	// 1 personal + 2 sick days at 1000/day
	assert.Equal(t, 3, result.UnpaidDays)
	assert.True(t, result.Amount.Equal(decimal.NewFromInt(3000)), "amount: %s", result.Amount)
	assert.Equal(t, "Personal Leave 1 days, Sick Leave 2 days", result.Details)
}

func TestDailyRate_HourlyEmployeeUsesStandardDay(t *testing.T) {
	calc := NewDeductionCalculator(decimal.NewFromInt(8))
	hourly := decimal.NewFromInt(250)
	emp := employee.Employee{
		EmploymentType: employee.EmploymentTypePartTime,
		HourlyRate:     &hourly,
	}

	rate := calc.DailyRate(emp)

	assert.True(t, rate.Equal(decimal.NewFromInt(2000)), "rate: %s", rate)
}

func TestDailyRate_NoPayFieldsIsZero(t *testing.T) {
	calc := NewDeductionCalculator(decimal.NewFromInt(8))
	emp := employee.Employee{EmploymentType: employee.EmploymentTypeFullTime}

	assert.True(t, calc.DailyRate(emp).IsZero())
}
