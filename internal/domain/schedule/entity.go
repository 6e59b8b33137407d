package schedule

import "time"

type ScheduleType string

const (
	ScheduleTypeRegular  ScheduleType = "regular"
	ScheduleTypeFlex     ScheduleType = "flex"
	ScheduleTypeShift    ScheduleType = "shift"
	ScheduleTypePartTime ScheduleType = "part_time"
)

func (t ScheduleType) Valid() bool {
	switch t {
	case ScheduleTypeRegular, ScheduleTypeFlex, ScheduleTypeShift, ScheduleTypePartTime:
		return true
	}
	return false
}

// WorkSchedule describes a shift template. Times are stored as "HH:MM"
// wall-clock strings; the payroll engine never reads them, they exist for
// rostering screens.
type WorkSchedule struct {
	ID           string
	Name         string
	ScheduleType ScheduleType
	StartTime    string
	EndTime      string
	BreakStart   *string
	BreakEnd     *string
	IsNightShift bool
	Description  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EmployeeSchedule assigns a schedule to an employee from StartDate,
// optionally until EndDate.
type EmployeeSchedule struct {
	ID             string
	EmployeeID     string
	WorkScheduleID string
	StartDate      time.Time
	EndDate        *time.Time
	IsPrimary      bool
	CreatedAt      time.Time

	// Joined fields
	ScheduleName *string
}
