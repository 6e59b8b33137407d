package schedule

import "github.com/staffdesk-hr/payroll-backend-go/internal/pkg/validator"

type CreateWorkScheduleRequest struct {
	Name         string  `json:"name"`
	ScheduleType string  `json:"schedule_type"`
	StartTime    string  `json:"start_time"` // "HH:MM"
	EndTime      string  `json:"end_time"`
	BreakStart   *string `json:"break_start,omitempty"`
	BreakEnd     *string `json:"break_end,omitempty"`
	IsNightShift bool    `json:"is_night_shift"`
	Description  *string `json:"description,omitempty"`
}

func (r *CreateWorkScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !ScheduleType(r.ScheduleType).Valid() {
		errs = append(errs, validator.ValidationError{Field: "schedule_type", Message: "is not a recognized schedule type"})
	}
	if validator.IsEmpty(r.StartTime) {
		errs = append(errs, validator.ValidationError{Field: "start_time", Message: "is required"})
	}
	if validator.IsEmpty(r.EndTime) {
		errs = append(errs, validator.ValidationError{Field: "end_time", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignScheduleRequest struct {
	EmployeeID     string `json:"employee_id"`
	WorkScheduleID string `json:"work_schedule_id"`
	StartDate      string `json:"start_date"`
	EndDate        *string `json:"end_date,omitempty"`
	IsPrimary      bool   `json:"is_primary"`
}

func (r *AssignScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if validator.IsEmpty(r.WorkScheduleID) {
		errs = append(errs, validator.ValidationError{Field: "work_schedule_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkScheduleResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	ScheduleType string  `json:"schedule_type"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	BreakStart   *string `json:"break_start,omitempty"`
	BreakEnd     *string `json:"break_end,omitempty"`
	IsNightShift bool    `json:"is_night_shift"`
	Description  *string `json:"description,omitempty"`
}

type EmployeeScheduleResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	WorkScheduleID string  `json:"work_schedule_id"`
	ScheduleName   string  `json:"schedule_name,omitempty"`
	StartDate      string  `json:"start_date"`
	EndDate        *string `json:"end_date,omitempty"`
	IsPrimary      bool    `json:"is_primary"`
}
