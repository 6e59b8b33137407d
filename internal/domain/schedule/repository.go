package schedule

import "context"

type WorkScheduleRepository interface {
	Create(ctx context.Context, ws WorkSchedule) (WorkSchedule, error)
	GetByID(ctx context.Context, id string) (WorkSchedule, error)
	GetByName(ctx context.Context, name string) (WorkSchedule, error)
	List(ctx context.Context) ([]WorkSchedule, error)
}

type EmployeeScheduleRepository interface {
	Assign(ctx context.Context, es EmployeeSchedule) (EmployeeSchedule, error)
	GetByEmployee(ctx context.Context, employeeID string) ([]EmployeeSchedule, error)
	Remove(ctx context.Context, id string) error
}
