package leave

import "time"

type LeaveType string

const (
	LeaveTypeAnnual       LeaveType = "annual"
	LeaveTypeSick         LeaveType = "sick"
	LeaveTypePersonal     LeaveType = "personal"
	LeaveTypeMarriage     LeaveType = "marriage"
	LeaveTypeFuneral      LeaveType = "funeral"
	LeaveTypeMaternity    LeaveType = "maternity"
	LeaveTypePaternity    LeaveType = "paternity"
	LeaveTypePublic       LeaveType = "public"
	LeaveTypeCompensatory LeaveType = "compensatory"
)

func (t LeaveType) Valid() bool {
	switch t {
	case LeaveTypeAnnual, LeaveTypeSick, LeaveTypePersonal, LeaveTypeMarriage,
		LeaveTypeFuneral, LeaveTypeMaternity, LeaveTypePaternity,
		LeaveTypePublic, LeaveTypeCompensatory:
		return true
	}
	return false
}

// Unpaid reports whether approved days of this type reduce pay.
func (t LeaveType) Unpaid() bool {
	return t == LeaveTypePersonal || t == LeaveTypeSick
}

func (t LeaveType) Display() string {
	switch t {
	case LeaveTypeAnnual:
		return "Annual Leave"
	case LeaveTypeSick:
		return "Sick Leave"
	case LeaveTypePersonal:
		return "Personal Leave"
	case LeaveTypeMarriage:
		return "Marriage Leave"
	case LeaveTypeFuneral:
		return "Funeral Leave"
	case LeaveTypeMaternity:
		return "Maternity Leave"
	case LeaveTypePaternity:
		return "Paternity Leave"
	case LeaveTypePublic:
		return "Official Leave"
	case LeaveTypeCompensatory:
		return "Compensatory Leave"
	}
	return string(t)
}

type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// Leave is one request spanning [StartDate, EndDate] inclusive.
type Leave struct {
	ID          string
	EmployeeID  string
	LeaveType   LeaveType
	StartDate   time.Time
	EndDate     time.Time
	Reason      *string
	Status      LeaveStatus
	AppliedDate time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
}
