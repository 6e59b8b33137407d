package leave

import (
	"context"
	"time"

	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/employee"
	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/leave"
	"github.com/staffdesk-hr/payroll-backend-go/internal/pkg/validator"
)

// LeaveService handles the request lifecycle: apply -> approve/reject.
// Approved requests are what the payroll deduction reads.
type LeaveService struct {
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(leaveRepo leave.LeaveRepository, employeeRepo employee.EmployeeRepository) *LeaveService {
	return &LeaveService{leaveRepo: leaveRepo, employeeRepo: employeeRepo}
}

func (s *LeaveService) Apply(ctx context.Context, req leave.ApplyLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return leave.LeaveResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)

	created, err := s.leaveRepo.Create(ctx, leave.Leave{
		EmployeeID:  req.EmployeeID,
		LeaveType:   leave.LeaveType(req.LeaveType),
		StartDate:   startDate,
		EndDate:     endDate,
		Reason:      req.Reason,
		Status:      leave.LeaveStatusPending,
		AppliedDate: time.Now(),
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return mapToLeaveResponse(created), nil
}

func (s *LeaveService) Approve(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return s.decide(ctx, id, leave.LeaveStatusApproved)
}

func (s *LeaveService) Reject(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return s.decide(ctx, id, leave.LeaveStatusRejected)
}

func (s *LeaveService) decide(ctx context.Context, id string, status leave.LeaveStatus) (leave.LeaveResponse, error) {
	lv, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if lv.Status != leave.LeaveStatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveAlreadyProcessed
	}

	if err := s.leaveRepo.UpdateStatus(ctx, id, status); err != nil {
		return leave.LeaveResponse{}, err
	}

	lv.Status = status
	return mapToLeaveResponse(lv), nil
}

func (s *LeaveService) Get(ctx context.Context, id string) (leave.LeaveResponse, error) {
	lv, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return mapToLeaveResponse(lv), nil
}

func (s *LeaveService) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.LeaveResponse, error) {
	leaves, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]leave.LeaveResponse, 0, len(leaves))
	for _, lv := range leaves {
		result = append(result, mapToLeaveResponse(lv))
	}
	return result, nil
}

func mapToLeaveResponse(lv leave.Leave) leave.LeaveResponse {
	employeeName := ""
	if lv.EmployeeName != nil {
		employeeName = *lv.EmployeeName
	}

	return leave.LeaveResponse{
		ID:           lv.ID,
		EmployeeID:   lv.EmployeeID,
		EmployeeName: employeeName,
		LeaveType:    string(lv.LeaveType),
		StartDate:    lv.StartDate.Format("2006-01-02"),
		EndDate:      lv.EndDate.Format("2006-01-02"),
		Reason:       lv.Reason,
		Status:       string(lv.Status),
		AppliedDate:  lv.AppliedDate.Format("2006-01-02"),
	}
}
