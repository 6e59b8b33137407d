package fixtures

import (
	"github.com/shopspring/decimal"

	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/payroll"
)

func strPtr(s string) *string { return &s }

// DefaultSalaryItems is the stock catalogue seeded into a fresh install:
// the statutory percentage deductions plus the common fixed extras.
func DefaultSalaryItems() []payroll.SalaryItem {
	laborInsurance := decimal.NewFromFloat(10.50)
	healthInsurance := decimal.NewFromFloat(5.17)
	incomeTax := decimal.NewFromFloat(5.00)
	attendanceBonus := decimal.NewFromInt(1000)
	transportAllowance := decimal.NewFromInt(2000)

	return []payroll.SalaryItem{
		{
			Name:            "Labor Insurance",
			ItemType:        payroll.ItemTypeDeduction,
			Percentage:      &laborInsurance,
			IsFixed:         true,
			ApplyToParttime: true,
			Description:     strPtr("Labor insurance premium, employee share"),
		},
		{
			Name:            "Health Insurance",
			ItemType:        payroll.ItemTypeDeduction,
			Percentage:      &healthInsurance,
			IsFixed:         true,
			ApplyToParttime: true,
			Description:     strPtr("National health insurance premium, employee share"),
		},
		{
			Name:            "Income Tax",
			ItemType:        payroll.ItemTypeDeduction,
			Percentage:      &incomeTax,
			IsFixed:         true,
			ApplyToParttime: true,
			Description:     strPtr("Withheld income tax"),
		},
		{
			Name:            "Perfect Attendance Bonus",
			ItemType:        payroll.ItemTypeBonus,
			Amount:          &attendanceBonus,
			IsFixed:         true,
			ApplyToParttime: true,
			Description:     strPtr("Monthly bonus for full attendance"),
		},
		{
			Name:            "Transport Allowance",
			ItemType:        payroll.ItemTypeAllowance,
			Amount:          &transportAllowance,
			IsFixed:         true,
			ApplyToParttime: true,
			Description:     strPtr("Monthly commuting allowance"),
		},
	}
}
