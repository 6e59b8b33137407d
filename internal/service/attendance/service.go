package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/employee"
	"github.com/staffdesk-hr/payroll-backend-go/internal/pkg/validator"
)

// AttendanceService records punches and answers punch queries for the HTTP
// surface. Hour computation lives on the Aggregator.
type AttendanceService struct {
	punchRepo    attendance.PunchRepository
	employeeRepo employee.EmployeeRepository
	aggregator   *Aggregator
}

func NewAttendanceService(
	punchRepo attendance.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	aggregator *Aggregator,
) *AttendanceService {
	return &AttendanceService{
		punchRepo:    punchRepo,
		employeeRepo: employeeRepo,
		aggregator:   aggregator,
	}
}

func (s *AttendanceService) RecordPunch(ctx context.Context, req attendance.RecordPunchRequest) (attendance.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.PunchResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.PunchResponse{}, err
	}

	punchTime, _ := validator.IsValidDateTime(req.PunchTime)

	created, err := s.punchRepo.Create(ctx, attendance.Punch{
		EmployeeID: req.EmployeeID,
		PunchTime:  punchTime,
		PunchType:  attendance.PunchType(req.PunchType),
	})
	if err != nil {
		return attendance.PunchResponse{}, fmt.Errorf("failed to record punch: %w", err)
	}

	return mapToPunchResponse(created), nil
}

func (s *AttendanceService) ListPunches(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.PunchResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	punches, err := s.punchRepo.GetByEmployeeAndRange(ctx, employeeID, start, end)
	if err != nil {
		return nil, err
	}

	result := make([]attendance.PunchResponse, 0, len(punches))
	for _, p := range punches {
		result = append(result, mapToPunchResponse(p))
	}
	return result, nil
}

// GetDailyHours reports the computed worked/overtime split for one day.
func (s *AttendanceService) GetDailyHours(ctx context.Context, employeeID string, date time.Time) (attendance.DailyHours, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.DailyHours{}, err
	}

	punches, err := s.punchRepo.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.DailyHours{}, err
	}

	return s.aggregator.DailyHours(punches), nil
}

func mapToPunchResponse(p attendance.Punch) attendance.PunchResponse {
	return attendance.PunchResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		PunchTime:  p.PunchTime.Format(time.RFC3339),
		PunchType:  string(p.PunchType),
	}
}
