package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSalaryConfirm(t *testing.T) {
	s := Salary{Status: SalaryStatusDraft}

	assert.True(t, s.Confirm(), "first confirm changes state")
	assert.Equal(t, SalaryStatusConfirmed, s.Status)
	assert.False(t, s.Confirm(), "second confirm is a no-op")
	assert.True(t, s.IsConfirmed())
}

func TestSalaryTotalSalary(t *testing.T) {
	s := Salary{
		BaseAmount:     decimal.NewFromInt(40000),
		OvertimeAmount: decimal.NewFromInt(1500),
	}
	details := []SalaryDetail{
		{ItemType: ItemTypeAllowance, Amount: decimal.NewFromInt(2000)},
		{ItemType: ItemTypeBonus, Amount: decimal.NewFromInt(1000)},
		{ItemType: ItemTypeDeduction, Amount: decimal.NewFromInt(4500)},
	}

	total := s.TotalSalary(details)

	// 40000 + 1500 + 2000 + 1000 - 4500
	assert.True(t, total.Equal(decimal.NewFromInt(40000)), "total: %s", total)
}

func TestSalaryTotalSalary_NoDetails(t *testing.T) {
	s := Salary{
		BaseAmount:     decimal.NewFromInt(40000),
		OvertimeAmount: decimal.NewFromInt(500),
	}

	assert.True(t, s.TotalSalary(nil).Equal(decimal.NewFromInt(40500)))
}

func TestPayrollPeriodLabel(t *testing.T) {
	p := PayrollPeriod{
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(t, "2026-03-01 ~ 2026-03-31", p.Label())
}

func TestCreatePeriodRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreatePeriodRequest
		wantErr bool
	}{
		{
			name:    "valid",
			req:     CreatePeriodRequest{StartDate: "2026-03-01", EndDate: "2026-03-31", PayDate: "2026-04-05"},
			wantErr: false,
		},
		{
			name:    "pay date on end date",
			req:     CreatePeriodRequest{StartDate: "2026-03-01", EndDate: "2026-03-31", PayDate: "2026-03-31"},
			wantErr: false,
		},
		{
			name:    "start after end",
			req:     CreatePeriodRequest{StartDate: "2026-03-31", EndDate: "2026-03-01", PayDate: "2026-04-05"},
			wantErr: true,
		},
		{
			name:    "start equals end",
			req:     CreatePeriodRequest{StartDate: "2026-03-01", EndDate: "2026-03-01", PayDate: "2026-04-05"},
			wantErr: true,
		},
		{
			name:    "pay date before end",
			req:     CreatePeriodRequest{StartDate: "2026-03-01", EndDate: "2026-03-31", PayDate: "2026-03-15"},
			wantErr: true,
		},
		{
			name:    "malformed date",
			req:     CreatePeriodRequest{StartDate: "03/01/2026", EndDate: "2026-03-31", PayDate: "2026-04-05"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
