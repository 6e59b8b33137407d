package attendance

import (
	"github.com/shopspring/decimal"

	"github.com/staffdesk-hr/payroll-backend-go/internal/pkg/validator"
)

type RecordPunchRequest struct {
	EmployeeID string `json:"employee_id"`
	PunchTime  string `json:"punch_time"` // RFC3339
	PunchType  string `json:"punch_type"`
}

func (r *RecordPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDateTime(r.PunchTime); !ok {
		errs = append(errs, validator.ValidationError{Field: "punch_time", Message: "must be an ISO8601 timestamp"})
	}
	if !PunchType(r.PunchType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "punch_type", Message: "must be 'IN' or 'OUT'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	PunchTime  string `json:"punch_time"`
	PunchType  string `json:"punch_type"`
}

// DailyHours is the outcome of pairing one day's punches.
type DailyHours struct {
	WorkingHours  decimal.Decimal `json:"working_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
}

// PeriodHours is the per-period aggregation consumed by the payroll engine.
type PeriodHours struct {
	WorkingHours   decimal.Decimal `json:"working_hours"`
	OvertimeHours  decimal.Decimal `json:"overtime_hours"`
	OvertimeAmount decimal.Decimal `json:"overtime_amount"`
}
