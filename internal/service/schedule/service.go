package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/employee"
	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/schedule"
	"github.com/staffdesk-hr/payroll-backend-go/internal/pkg/validator"
)

// defaultScheduleName is the schedule created on first use when assigning
// without an explicit template.
const defaultScheduleName = "Standard Day"

type ScheduleService interface {
	CreateWorkSchedule(ctx context.Context, req schedule.CreateWorkScheduleRequest) (schedule.WorkScheduleResponse, error)
	GetWorkSchedule(ctx context.Context, id string) (schedule.WorkScheduleResponse, error)
	ListWorkSchedules(ctx context.Context) ([]schedule.WorkScheduleResponse, error)
	GetOrCreateDefaultSchedule(ctx context.Context) (schedule.WorkScheduleResponse, error)

	AssignSchedule(ctx context.Context, req schedule.AssignScheduleRequest) (schedule.EmployeeScheduleResponse, error)
	ListEmployeeSchedules(ctx context.Context, employeeID string) ([]schedule.EmployeeScheduleResponse, error)
	RemoveAssignment(ctx context.Context, id string) error
}

type ScheduleServiceImpl struct {
	workScheduleRepo     schedule.WorkScheduleRepository
	employeeScheduleRepo schedule.EmployeeScheduleRepository
	employeeRepo         employee.EmployeeRepository
}

func NewScheduleService(
	workScheduleRepo schedule.WorkScheduleRepository,
	employeeScheduleRepo schedule.EmployeeScheduleRepository,
	employeeRepo employee.EmployeeRepository,
) ScheduleService {
	return &ScheduleServiceImpl{
		workScheduleRepo:     workScheduleRepo,
		employeeScheduleRepo: employeeScheduleRepo,
		employeeRepo:         employeeRepo,
	}
}

func (s *ScheduleServiceImpl) CreateWorkSchedule(ctx context.Context, req schedule.CreateWorkScheduleRequest) (schedule.WorkScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	ws, err := s.workScheduleRepo.Create(ctx, schedule.WorkSchedule{
		Name:         req.Name,
		ScheduleType: schedule.ScheduleType(req.ScheduleType),
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		BreakStart:   req.BreakStart,
		BreakEnd:     req.BreakEnd,
		IsNightShift: req.IsNightShift,
		Description:  req.Description,
	})
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	return mapToWorkScheduleResponse(ws), nil
}

func (s *ScheduleServiceImpl) GetWorkSchedule(ctx context.Context, id string) (schedule.WorkScheduleResponse, error) {
	ws, err := s.workScheduleRepo.GetByID(ctx, id)
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}
	return mapToWorkScheduleResponse(ws), nil
}

func (s *ScheduleServiceImpl) ListWorkSchedules(ctx context.Context) ([]schedule.WorkScheduleResponse, error) {
	schedules, err := s.workScheduleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.WorkScheduleResponse, 0, len(schedules))
	for _, ws := range schedules {
		responses = append(responses, mapToWorkScheduleResponse(ws))
	}
	return responses, nil
}

// GetOrCreateDefaultSchedule returns the nine-to-six regular schedule,
// creating it on first call.
func (s *ScheduleServiceImpl) GetOrCreateDefaultSchedule(ctx context.Context) (schedule.WorkScheduleResponse, error) {
	ws, err := s.workScheduleRepo.GetByName(ctx, defaultScheduleName)
	if err == nil {
		return mapToWorkScheduleResponse(ws), nil
	}
	if !errors.Is(err, schedule.ErrScheduleNotFound) {
		return schedule.WorkScheduleResponse{}, err
	}

	ws, err = s.workScheduleRepo.Create(ctx, schedule.WorkSchedule{
		Name:         defaultScheduleName,
		ScheduleType: schedule.ScheduleTypeRegular,
		StartTime:    "09:00",
		EndTime:      "18:00",
	})
	if errors.Is(err, schedule.ErrScheduleNameExists) {
		// Lost the race with a concurrent creator
		ws, err = s.workScheduleRepo.GetByName(ctx, defaultScheduleName)
	}
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}
	return mapToWorkScheduleResponse(ws), nil
}

func (s *ScheduleServiceImpl) AssignSchedule(ctx context.Context, req schedule.AssignScheduleRequest) (schedule.EmployeeScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.EmployeeScheduleResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return schedule.EmployeeScheduleResponse{}, err
	}
	if _, err := s.workScheduleRepo.GetByID(ctx, req.WorkScheduleID); err != nil {
		return schedule.EmployeeScheduleResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	var endDate *time.Time
	if req.EndDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return schedule.EmployeeScheduleResponse{}, validator.ValidationErrors{
				{Field: "end_date", Message: "must be YYYY-MM-DD"},
			}
		}
		endDate = &parsed
	}

	es, err := s.employeeScheduleRepo.Assign(ctx, schedule.EmployeeSchedule{
		EmployeeID:     req.EmployeeID,
		WorkScheduleID: req.WorkScheduleID,
		StartDate:      startDate,
		EndDate:        endDate,
		IsPrimary:      req.IsPrimary,
	})
	if err != nil {
		return schedule.EmployeeScheduleResponse{}, err
	}

	return mapToEmployeeScheduleResponse(es), nil
}

func (s *ScheduleServiceImpl) ListEmployeeSchedules(ctx context.Context, employeeID string) ([]schedule.EmployeeScheduleResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	assignments, err := s.employeeScheduleRepo.GetByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.EmployeeScheduleResponse, 0, len(assignments))
	for _, es := range assignments {
		responses = append(responses, mapToEmployeeScheduleResponse(es))
	}
	return responses, nil
}

func (s *ScheduleServiceImpl) RemoveAssignment(ctx context.Context, id string) error {
	return s.employeeScheduleRepo.Remove(ctx, id)
}

func mapToWorkScheduleResponse(ws schedule.WorkSchedule) schedule.WorkScheduleResponse {
	return schedule.WorkScheduleResponse{
		ID:           ws.ID,
		Name:         ws.Name,
		ScheduleType: string(ws.ScheduleType),
		StartTime:    ws.StartTime,
		EndTime:      ws.EndTime,
		BreakStart:   ws.BreakStart,
		BreakEnd:     ws.BreakEnd,
		IsNightShift: ws.IsNightShift,
		Description:  ws.Description,
	}
}

func mapToEmployeeScheduleResponse(es schedule.EmployeeSchedule) schedule.EmployeeScheduleResponse {
	resp := schedule.EmployeeScheduleResponse{
		ID:             es.ID,
		EmployeeID:     es.EmployeeID,
		WorkScheduleID: es.WorkScheduleID,
		StartDate:      es.StartDate.Format("2006-01-02"),
		IsPrimary:      es.IsPrimary,
	}
	if es.EndDate != nil {
		end := es.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	if es.ScheduleName != nil {
		resp.ScheduleName = *es.ScheduleName
	}
	return resp
}
