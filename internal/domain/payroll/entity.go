package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollPeriod is one pay cycle. Dates are inclusive and StartDate <= EndDate.
// IsProcessed is set once by the batch run and never unset.
type PayrollPeriod struct {
	ID          string
	StartDate   time.Time
	EndDate     time.Time
	PayDate     time.Time
	IsProcessed bool
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p PayrollPeriod) Label() string {
	return p.StartDate.Format("2006-01-02") + " ~ " + p.EndDate.Format("2006-01-02")
}

// ItemType enum
type ItemType string

const (
	ItemTypeAllowance ItemType = "allowance"
	ItemTypeBonus     ItemType = "bonus"
	ItemTypeDeduction ItemType = "deduction"
)

func (t ItemType) Valid() bool {
	return t == ItemTypeAllowance || t == ItemTypeBonus || t == ItemTypeDeduction
}

// SalaryItem is a configurable pay rule: either a fixed Amount or a
// Percentage of (base + overtime). An item with neither set is skipped when
// details are generated.
type SalaryItem struct {
	ID              string
	Name            string // unique
	ItemType        ItemType
	Amount          *decimal.Decimal
	Percentage      *decimal.Decimal
	IsFixed         bool
	ApplyToParttime bool
	Description     *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SalaryStatus enum
type SalaryStatus string

const (
	SalaryStatusDraft     SalaryStatus = "draft"
	SalaryStatusConfirmed SalaryStatus = "confirmed"
)

// Salary is the computed pay record for one (employee, period) pair.
// A draft salary is overwritten on every recomputation; a confirmed salary
// is frozen and recomputation returns it unchanged.
type Salary struct {
	ID             string
	EmployeeID     string
	PeriodID       string
	BaseAmount     decimal.Decimal
	WorkingHours   decimal.Decimal
	OvertimeHours  decimal.Decimal
	OvertimeAmount decimal.Decimal
	Status         SalaryStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	EmployeeName *string
	Period       *PayrollPeriod
}

// Confirm is the only draft -> confirmed transition. It reports whether the
// state actually changed.
func (s *Salary) Confirm() bool {
	if s.Status == SalaryStatusConfirmed {
		return false
	}
	s.Status = SalaryStatusConfirmed
	return true
}

func (s *Salary) IsConfirmed() bool {
	return s.Status == SalaryStatusConfirmed
}

// TotalSalary derives the net amount from the itemized details:
// base + overtime + allowances/bonuses - deductions.
func (s *Salary) TotalSalary(details []SalaryDetail) decimal.Decimal {
	total := s.BaseAmount.Add(s.OvertimeAmount)
	for _, d := range details {
		if d.ItemType == ItemTypeDeduction {
			total = total.Sub(d.Amount)
		} else {
			total = total.Add(d.Amount)
		}
	}
	return total
}

// SalaryDetail is one computed line item tying a Salary to a SalaryItem.
type SalaryDetail struct {
	ID           string
	SalaryID     string
	SalaryItemID string
	Amount       decimal.Decimal
	Description  string

	// Joined fields
	ItemName string
	ItemType ItemType
}
