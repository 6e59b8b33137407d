package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, lv Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)
	List(ctx context.Context, filter LeaveFilter) ([]Leave, error)
	UpdateStatus(ctx context.Context, id string, status LeaveStatus) error
	// GetApprovedOverlapping returns approved leaves for the employee whose
	// [start_date, end_date] intersects [start, end].
	GetApprovedOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]Leave, error)
}
