package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/employee"
	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/leave"
	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/payroll"
	"github.com/staffdesk-hr/payroll-backend-go/internal/fixtures"
	attendancesvc "github.com/staffdesk-hr/payroll-backend-go/internal/service/attendance"
	leavesvc "github.com/staffdesk-hr/payroll-backend-go/internal/service/leave"
)

// leaveDeductionItemName identifies the synthetic salary item that carries
// unpaid leave deductions. It is created on first use and reused by name.
const leaveDeductionItemName = "Leave Deduction"

var oneHundred = decimal.NewFromInt(100)

type PayrollServiceImpl struct {
	txRunner     payroll.TxRunner
	periodRepo   payroll.PeriodRepository
	itemRepo     payroll.SalaryItemRepository
	salaryRepo   payroll.SalaryRepository
	employeeRepo employee.EmployeeRepository
	leaveRepo    leave.LeaveRepository
	aggregator   *attendancesvc.Aggregator
	deduction    *leavesvc.DeductionCalculator
	policy       Policy
}

func NewPayrollService(
	txRunner payroll.TxRunner,
	periodRepo payroll.PeriodRepository,
	itemRepo payroll.SalaryItemRepository,
	salaryRepo payroll.SalaryRepository,
	employeeRepo employee.EmployeeRepository,
	leaveRepo leave.LeaveRepository,
	aggregator *attendancesvc.Aggregator,
	deduction *leavesvc.DeductionCalculator,
	policy Policy,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		txRunner:     txRunner,
		periodRepo:   periodRepo,
		itemRepo:     itemRepo,
		salaryRepo:   salaryRepo,
		employeeRepo: employeeRepo,
		leaveRepo:    leaveRepo,
		aggregator:   aggregator,
		deduction:    deduction,
		policy:       policy,
	}
}

// ========== PERIODS ==========

func (s *PayrollServiceImpl) CreatePeriod(ctx context.Context, req payroll.CreatePeriodRequest) (payroll.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PeriodResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	pay, _ := time.Parse("2006-01-02", req.PayDate)

	period, err := s.periodRepo.Create(ctx, payroll.PayrollPeriod{
		StartDate: start,
		EndDate:   end,
		PayDate:   pay,
	})
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	return mapToPeriodResponse(period), nil
}

func (s *PayrollServiceImpl) ListPeriods(ctx context.Context) ([]payroll.PeriodResponse, error) {
	periods, err := s.periodRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		responses = append(responses, mapToPeriodResponse(p))
	}
	return responses, nil
}

// ========== SALARY ITEMS ==========

func (s *PayrollServiceImpl) CreateSalaryItem(ctx context.Context, req payroll.CreateSalaryItemRequest) (payroll.SalaryItemResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SalaryItemResponse{}, err
	}

	item, err := s.itemRepo.Create(ctx, payroll.SalaryItem{
		Name:            req.Name,
		ItemType:        payroll.ItemType(req.ItemType),
		Amount:          req.Amount,
		Percentage:      req.Percentage,
		IsFixed:         req.IsFixed,
		ApplyToParttime: req.ApplyToParttime,
		Description:     req.Description,
	})
	if err != nil {
		return payroll.SalaryItemResponse{}, err
	}

	return mapToSalaryItemResponse(item), nil
}

func (s *PayrollServiceImpl) ListSalaryItems(ctx context.Context) ([]payroll.SalaryItemResponse, error) {
	items, err := s.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.SalaryItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, mapToSalaryItemResponse(item))
	}
	return responses, nil
}

// CreateDefaultSalaryItems seeds the standard deduction and allowance
// catalogue. Items already present keep their stored configuration; only the
// items created by this call are returned, so a second call returns an empty
// slice.
func (s *PayrollServiceImpl) CreateDefaultSalaryItems(ctx context.Context) ([]payroll.SalaryItemResponse, error) {
	var responses []payroll.SalaryItemResponse
	for _, item := range fixtures.DefaultSalaryItems() {
		stored, created, err := s.itemRepo.GetOrCreateByName(ctx, item)
		if err != nil {
			return nil, err
		}
		if created {
			responses = append(responses, mapToSalaryItemResponse(stored))
		}
	}
	return responses, nil
}

// ========== SALARIES ==========

func (s *PayrollServiceImpl) CalculateSalaryForPeriod(ctx context.Context, employeeID, periodID string) (payroll.SalaryResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}
	period, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}

	var response payroll.SalaryResponse
	err = s.txRunner.RunInTx(ctx, func(ctx context.Context) error {
		var txErr error
		response, txErr = s.calculateAndStore(ctx, emp, period)
		return txErr
	})
	if err != nil {
		return payroll.SalaryResponse{}, err
	}
	return response, nil
}

// calculateAndStore recomputes one employee's salary inside the caller's
// transaction. A confirmed salary is returned as stored; drafts are
// overwritten in full, details included.
func (s *PayrollServiceImpl) calculateAndStore(ctx context.Context, emp employee.Employee, period payroll.PayrollPeriod) (payroll.SalaryResponse, error) {
	salary, created, err := s.salaryRepo.GetOrCreate(ctx, emp.ID, period.ID)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}

	if !created && salary.IsConfirmed() {
		details, err := s.salaryRepo.GetDetails(ctx, salary.ID)
		if err != nil {
			return payroll.SalaryResponse{}, err
		}
		return mapToSalaryResponse(salary, emp, period, details), nil
	}

	computed, details, err := s.compute(ctx, emp, period, true)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}

	salary.BaseAmount = computed.BaseAmount
	salary.WorkingHours = computed.WorkingHours
	salary.OvertimeHours = computed.OvertimeHours
	salary.OvertimeAmount = computed.OvertimeAmount

	if err := s.salaryRepo.UpdateAmounts(ctx, salary); err != nil {
		return payroll.SalaryResponse{}, err
	}
	if err := s.salaryRepo.ReplaceDetails(ctx, salary.ID, details); err != nil {
		return payroll.SalaryResponse{}, err
	}

	return mapToSalaryResponse(salary, emp, period, details), nil
}

// computedAmounts is the hour/pay portion of a salary before line items.
type computedAmounts struct {
	BaseAmount     decimal.Decimal
	WorkingHours   decimal.Decimal
	OvertimeHours  decimal.Decimal
	OvertimeAmount decimal.Decimal
}

// compute derives a salary's amounts and detail lines from punches, leaves
// and the salary item catalogue. With materialize set the leave deduction
// item may be get-or-created; otherwise nothing is written.
func (s *PayrollServiceImpl) compute(ctx context.Context, emp employee.Employee, period payroll.PayrollPeriod, materialize bool) (computedAmounts, []payroll.SalaryDetail, error) {
	overtimeHourly := s.policy.OvertimeHourlyRate(emp)

	hours, err := s.aggregator.AggregatePeriod(ctx, emp.ID, period.StartDate, period.EndDate,
		func(day time.Time, overtimeHours decimal.Decimal) decimal.Decimal {
			return overtimeHourly.Mul(s.policy.OvertimeRateFor(day)).Mul(overtimeHours)
		})
	if err != nil {
		return computedAmounts{}, nil, err
	}

	// Base pay degrades to zero when the pay field is missing; the fallback
	// hourly rate prices overtime only.
	base := decimal.Zero
	if emp.EmploymentType == employee.EmploymentTypeFullTime {
		if emp.BaseSalary != nil {
			base = *emp.BaseSalary
		}
	} else if emp.HourlyRate != nil {
		base = hours.WorkingHours.Mul(*emp.HourlyRate)
	}

	amounts := computedAmounts{
		BaseAmount:     base,
		WorkingHours:   hours.WorkingHours,
		OvertimeHours:  hours.OvertimeHours,
		OvertimeAmount: hours.OvertimeAmount,
	}

	details, err := s.buildDetails(ctx, emp, period, amounts, materialize)
	if err != nil {
		return computedAmounts{}, nil, err
	}
	return amounts, details, nil
}

// buildDetails materializes the catalogue against one salary: fixed items
// contribute their amount, percentage items a share of base plus overtime,
// items with neither are skipped. Part-time employees only receive items
// flagged for them. An unpaid leave deduction line is appended last.
func (s *PayrollServiceImpl) buildDetails(ctx context.Context, emp employee.Employee, period payroll.PayrollPeriod, amounts computedAmounts, materialize bool) ([]payroll.SalaryDetail, error) {
	items, err := s.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	payBase := amounts.BaseAmount.Add(amounts.OvertimeAmount)
	details := make([]payroll.SalaryDetail, 0, len(items))

	for _, item := range items {
		if emp.EmploymentType == employee.EmploymentTypePartTime && !item.ApplyToParttime {
			continue
		}

		var amount decimal.Decimal
		switch {
		case item.IsFixed && item.Amount != nil:
			amount = *item.Amount
		case item.Percentage != nil:
			amount = item.Percentage.Mul(payBase).Div(oneHundred)
		default:
			continue
		}

		details = append(details, payroll.SalaryDetail{
			SalaryItemID: item.ID,
			Amount:       amount,
			Description:  fmt.Sprintf("%s - %s", item.Name, period.Label()),
			ItemName:     item.Name,
			ItemType:     item.ItemType,
		})
	}

	leaveDetail, err := s.leaveDeductionDetail(ctx, emp, period, materialize)
	if err != nil {
		return nil, err
	}
	if leaveDetail != nil {
		details = append(details, *leaveDetail)
	}

	return details, nil
}

// leaveDeductionDetail builds the synthetic unpaid-leave line. The backing
// catalogue item is only created when materialize is set; previews keep the
// catalogue untouched.
func (s *PayrollServiceImpl) leaveDeductionDetail(ctx context.Context, emp employee.Employee, period payroll.PayrollPeriod, materialize bool) (*payroll.SalaryDetail, error) {
	leaves, err := s.leaveRepo.GetApprovedOverlapping(ctx, emp.ID, period.StartDate, period.EndDate)
	if err != nil {
		return nil, err
	}

	result := s.deduction.Calculate(emp, leaves, period.StartDate, period.EndDate)
	if !result.Amount.IsPositive() {
		return nil, nil
	}

	item := payroll.SalaryItem{
		Name:            leaveDeductionItemName,
		ItemType:        payroll.ItemTypeDeduction,
		IsFixed:         false,
		ApplyToParttime: true,
	}
	if materialize {
		item, _, err = s.itemRepo.GetOrCreateByName(ctx, item)
		if err != nil {
			return nil, err
		}
	}

	return &payroll.SalaryDetail{
		SalaryItemID: item.ID,
		Amount:       result.Amount,
		Description:  fmt.Sprintf("Unpaid leave %d days (%s)", result.UnpaidDays, result.Details),
		ItemName:     item.Name,
		ItemType:     item.ItemType,
	}, nil
}

// PreviewSalary computes a salary without storing it. An already confirmed
// salary is frozen, so its stored figures are returned instead.
func (s *PayrollServiceImpl) PreviewSalary(ctx context.Context, employeeID, periodID string) (payroll.SalaryResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}
	period, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}

	existing, err := s.salaryRepo.GetByEmployeeAndPeriod(ctx, employeeID, periodID)
	if err == nil && existing.IsConfirmed() {
		details, err := s.salaryRepo.GetDetails(ctx, existing.ID)
		if err != nil {
			return payroll.SalaryResponse{}, err
		}
		return mapToSalaryResponse(existing, emp, period, details), nil
	}
	if err != nil && !errors.Is(err, payroll.ErrSalaryNotFound) {
		return payroll.SalaryResponse{}, err
	}

	computed, details, err := s.compute(ctx, emp, period, false)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}

	preview := payroll.Salary{
		ID:             existing.ID,
		EmployeeID:     employeeID,
		PeriodID:       periodID,
		BaseAmount:     computed.BaseAmount,
		WorkingHours:   computed.WorkingHours,
		OvertimeHours:  computed.OvertimeHours,
		OvertimeAmount: computed.OvertimeAmount,
		Status:         payroll.SalaryStatusDraft,
	}
	return mapToSalaryResponse(preview, emp, period, details), nil
}

// ProcessPayrollForPeriod recomputes every active employee's salary for the
// period in a single transaction, then marks the period processed. A period
// can only be processed once.
func (s *PayrollServiceImpl) ProcessPayrollForPeriod(ctx context.Context, periodID string) (payroll.ProcessPayrollResponse, error) {
	period, err := s.periodRepo.GetByID(ctx, periodID)
	if err != nil {
		return payroll.ProcessPayrollResponse{}, err
	}
	if period.IsProcessed {
		return payroll.ProcessPayrollResponse{}, payroll.ErrPeriodAlreadyProcessed
	}

	var processed int
	err = s.txRunner.RunInTx(ctx, func(ctx context.Context) error {
		employees, err := s.employeeRepo.GetActive(ctx)
		if err != nil {
			return err
		}

		for _, emp := range employees {
			if _, err := s.calculateAndStore(ctx, emp, period); err != nil {
				return fmt.Errorf("process payroll for employee %s: %w", emp.ID, err)
			}
			processed++
		}

		return s.periodRepo.MarkProcessed(ctx, period.ID, time.Now())
	})
	if err != nil {
		return payroll.ProcessPayrollResponse{}, err
	}

	return payroll.ProcessPayrollResponse{
		PeriodID:       period.ID,
		ProcessedCount: processed,
	}, nil
}

// ConfirmSalary freezes a salary. Confirming twice is a no-op, not an error.
func (s *PayrollServiceImpl) ConfirmSalary(ctx context.Context, salaryID string) (payroll.SalaryResponse, error) {
	salary, err := s.salaryRepo.GetByID(ctx, salaryID)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}

	if salary.Confirm() {
		if err := s.salaryRepo.SetStatus(ctx, salary.ID, salary.Status); err != nil {
			return payroll.SalaryResponse{}, err
		}
	}

	return s.salaryWithDetails(ctx, salary)
}

func (s *PayrollServiceImpl) GetSalary(ctx context.Context, salaryID string) (payroll.SalaryResponse, error) {
	salary, err := s.salaryRepo.GetByID(ctx, salaryID)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}
	return s.salaryWithDetails(ctx, salary)
}

func (s *PayrollServiceImpl) ListSalaries(ctx context.Context, filter payroll.SalaryFilter) ([]payroll.SalaryResponse, error) {
	salaries, err := s.salaryRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.SalaryResponse, 0, len(salaries))
	for _, salary := range salaries {
		details, err := s.salaryRepo.GetDetails(ctx, salary.ID)
		if err != nil {
			return nil, err
		}
		responses = append(responses, mapStoredSalaryResponse(salary, details))
	}
	return responses, nil
}

// GetSalarySummary aggregates an employee's salary history, optionally
// narrowed to the periods starting in a given year or month.
func (s *PayrollServiceImpl) GetSalarySummary(ctx context.Context, employeeID string, year, month *int) (payroll.SalarySummaryResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return payroll.SalarySummaryResponse{}, err
	}

	salaries, err := s.salaryRepo.ListByEmployee(ctx, employeeID, year, month)
	if err != nil {
		return payroll.SalarySummaryResponse{}, err
	}

	summary := payroll.SalarySummaryResponse{
		EmployeeID:    employeeID,
		TotalSalaries: len(salaries),
		TotalAmount:   decimal.Zero,
		AverageAmount: decimal.Zero,
	}
	if len(salaries) == 0 {
		return summary, nil
	}

	for i, salary := range salaries {
		details, err := s.salaryRepo.GetDetails(ctx, salary.ID)
		if err != nil {
			return payroll.SalarySummaryResponse{}, err
		}
		summary.TotalAmount = summary.TotalAmount.Add(salary.TotalSalary(details))

		// ListByEmployee returns newest period first.
		if i == 0 {
			latest := mapStoredSalaryResponse(salary, details)
			summary.LatestSalary = &latest
		}
	}
	summary.AverageAmount = summary.TotalAmount.Div(decimal.NewFromInt(int64(len(salaries)))).Round(2)

	return summary, nil
}

func (s *PayrollServiceImpl) salaryWithDetails(ctx context.Context, salary payroll.Salary) (payroll.SalaryResponse, error) {
	details, err := s.salaryRepo.GetDetails(ctx, salary.ID)
	if err != nil {
		return payroll.SalaryResponse{}, err
	}
	return mapStoredSalaryResponse(salary, details), nil
}

// ========== MAPPERS ==========

func mapToPeriodResponse(p payroll.PayrollPeriod) payroll.PeriodResponse {
	resp := payroll.PeriodResponse{
		ID:          p.ID,
		StartDate:   p.StartDate.Format("2006-01-02"),
		EndDate:     p.EndDate.Format("2006-01-02"),
		PayDate:     p.PayDate.Format("2006-01-02"),
		IsProcessed: p.IsProcessed,
	}
	if p.ProcessedAt != nil {
		at := p.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &at
	}
	return resp
}

func mapToSalaryItemResponse(item payroll.SalaryItem) payroll.SalaryItemResponse {
	return payroll.SalaryItemResponse{
		ID:              item.ID,
		Name:            item.Name,
		ItemType:        string(item.ItemType),
		Amount:          item.Amount,
		Percentage:      item.Percentage,
		IsFixed:         item.IsFixed,
		ApplyToParttime: item.ApplyToParttime,
		Description:     item.Description,
	}
}

func mapToSalaryResponse(salary payroll.Salary, emp employee.Employee, period payroll.PayrollPeriod, details []payroll.SalaryDetail) payroll.SalaryResponse {
	resp := payroll.SalaryResponse{
		ID:             salary.ID,
		EmployeeID:     emp.ID,
		EmployeeName:   emp.Name,
		PeriodID:       period.ID,
		PeriodLabel:    period.Label(),
		BaseAmount:     salary.BaseAmount,
		WorkingHours:   salary.WorkingHours,
		OvertimeHours:  salary.OvertimeHours,
		OvertimeAmount: salary.OvertimeAmount,
		TotalSalary:    salary.TotalSalary(details),
		Status:         string(salary.Status),
	}
	resp.Details = mapToDetailResponses(details)
	return resp
}

// mapStoredSalaryResponse maps a salary loaded from storage, where employee
// and period context come from the row's joined fields.
func mapStoredSalaryResponse(salary payroll.Salary, details []payroll.SalaryDetail) payroll.SalaryResponse {
	resp := payroll.SalaryResponse{
		ID:             salary.ID,
		EmployeeID:     salary.EmployeeID,
		PeriodID:       salary.PeriodID,
		BaseAmount:     salary.BaseAmount,
		WorkingHours:   salary.WorkingHours,
		OvertimeHours:  salary.OvertimeHours,
		OvertimeAmount: salary.OvertimeAmount,
		TotalSalary:    salary.TotalSalary(details),
		Status:         string(salary.Status),
	}
	if salary.EmployeeName != nil {
		resp.EmployeeName = *salary.EmployeeName
	}
	if salary.Period != nil {
		resp.PeriodLabel = salary.Period.Label()
	}
	resp.Details = mapToDetailResponses(details)
	return resp
}

func mapToDetailResponses(details []payroll.SalaryDetail) []payroll.SalaryDetailResponse {
	if len(details) == 0 {
		return nil
	}
	responses := make([]payroll.SalaryDetailResponse, 0, len(details))
	for _, d := range details {
		responses = append(responses, payroll.SalaryDetailResponse{
			SalaryItemID: d.SalaryItemID,
			ItemName:     d.ItemName,
			ItemType:     string(d.ItemType),
			Amount:       d.Amount,
			Description:  d.Description,
		})
	}
	return responses
}
