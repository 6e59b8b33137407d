package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffdesk-hr/payroll-backend-go/internal/config"
	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/employee"
)

// HolidayCalendar answers whether a date is a national holiday. Injected so
// the holiday set can vary by region or year without touching the engine.
type HolidayCalendar interface {
	IsHoliday(date time.Time) bool
}

// MonthDay is a recurring fixed-date holiday.
type MonthDay struct {
	Month time.Month
	Day   int
}

type FixedHolidayCalendar struct {
	days map[MonthDay]struct{}
}

func NewFixedHolidayCalendar(days ...MonthDay) *FixedHolidayCalendar {
	set := make(map[MonthDay]struct{}, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	return &FixedHolidayCalendar{days: set}
}

func (c *FixedHolidayCalendar) IsHoliday(date time.Time) bool {
	_, ok := c.days[MonthDay{Month: date.Month(), Day: date.Day()}]
	return ok
}

// DefaultHolidayCalendar lists the fixed national holidays payroll was
// written against: New Year's Day, Peace Memorial Day, Children's Day,
// Tomb Sweeping Day, Labor Day and National Day.
func DefaultHolidayCalendar() *FixedHolidayCalendar {
	return NewFixedHolidayCalendar(
		MonthDay{time.January, 1},
		MonthDay{time.February, 28},
		MonthDay{time.April, 4},
		MonthDay{time.April, 5},
		MonthDay{time.May, 1},
		MonthDay{time.October, 10},
	)
}

// Policy carries every pay-rule constant the engine needs. It is built from
// configuration and passed in, so the engine holds no hidden global state.
type Policy struct {
	OvertimeRate       decimal.Decimal
	HolidayRate        decimal.Decimal
	StandardDailyHours decimal.Decimal
	MonthlyHours       decimal.Decimal
	FallbackHourlyRate decimal.Decimal
	Holidays           HolidayCalendar
}

func NewPolicy(cfg config.PayrollConfig, holidays HolidayCalendar) Policy {
	return Policy{
		OvertimeRate:       cfg.OvertimeRate,
		HolidayRate:        cfg.HolidayRate,
		StandardDailyHours: cfg.StandardDailyHours,
		MonthlyHours:       cfg.MonthlyHours,
		FallbackHourlyRate: cfg.FallbackHourlyRate,
		Holidays:           holidays,
	}
}

// IsHoliday treats weekends and fixed national holidays alike.
func (p Policy) IsHoliday(date time.Time) bool {
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return true
	}
	return p.Holidays != nil && p.Holidays.IsHoliday(date)
}

// OvertimeRateFor returns the multiplier applied to overtime worked on day.
func (p Policy) OvertimeRateFor(day time.Time) decimal.Decimal {
	if p.IsHoliday(day) {
		return p.HolidayRate
	}
	return p.OvertimeRate
}

// OvertimeHourlyRate derives the hourly value overtime is priced against:
// monthly base over standard monthly hours for salaried staff, the hourly
// rate for hourly staff, a fixed fallback when neither is set. Distinct from
// the worked-hours rate used for part-time base pay.
func (p Policy) OvertimeHourlyRate(emp employee.Employee) decimal.Decimal {
	if emp.EmploymentType == employee.EmploymentTypeFullTime && emp.BaseSalary != nil {
		return emp.BaseSalary.Div(p.MonthlyHours)
	}
	if emp.HourlyRate != nil {
		return *emp.HourlyRate
	}
	return p.FallbackHourlyRate
}
