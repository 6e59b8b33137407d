package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/attendance"
	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/employee"
	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/leave"
	"github.com/staffdesk-hr/payroll-backend-go/internal/domain/payroll"
	attendancesvc "github.com/staffdesk-hr/payroll-backend-go/internal/service/attendance"
	leavesvc "github.com/staffdesk-hr/payroll-backend-go/internal/service/leave"
)

// ========== FAKES ==========

type fakeTxRunner struct{}

func (fakeTxRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakePeriodRepo struct {
	periods map[string]payroll.PayrollPeriod
}

func newFakePeriodRepo() *fakePeriodRepo {
	return &fakePeriodRepo{periods: map[string]payroll.PayrollPeriod{}}
}

func (r *fakePeriodRepo) Create(ctx context.Context, p payroll.PayrollPeriod) (payroll.PayrollPeriod, error) {
	p.ID = uuid.NewString()
	r.periods[p.ID] = p
	return p, nil
}

func (r *fakePeriodRepo) GetByID(ctx context.Context, id string) (payroll.PayrollPeriod, error) {
	p, ok := r.periods[id]
	if !ok {
		return payroll.PayrollPeriod{}, payroll.ErrPeriodNotFound
	}
	return p, nil
}

func (r *fakePeriodRepo) List(ctx context.Context) ([]payroll.PayrollPeriod, error) {
	var out []payroll.PayrollPeriod
	for _, p := range r.periods {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePeriodRepo) MarkProcessed(ctx context.Context, id string, processedAt time.Time) error {
	p, ok := r.periods[id]
	if !ok {
		return payroll.ErrPeriodNotFound
	}
	p.IsProcessed = true
	p.ProcessedAt = &processedAt
	r.periods[id] = p
	return nil
}

type fakeItemRepo struct {
	items map[string]payroll.SalaryItem
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[string]payroll.SalaryItem{}}
}

func (r *fakeItemRepo) Create(ctx context.Context, item payroll.SalaryItem) (payroll.SalaryItem, error) {
	for _, existing := range r.items {
		if existing.Name == item.Name {
			return payroll.SalaryItem{}, payroll.ErrSalaryItemNameExists
		}
	}
	item.ID = uuid.NewString()
	r.items[item.ID] = item
	return item, nil
}

func (r *fakeItemRepo) GetByID(ctx context.Context, id string) (payroll.SalaryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return payroll.SalaryItem{}, payroll.ErrSalaryItemNotFound
	}
	return item, nil
}

func (r *fakeItemRepo) GetByName(ctx context.Context, name string) (payroll.SalaryItem, error) {
	for _, item := range r.items {
		if item.Name == name {
			return item, nil
		}
	}
	return payroll.SalaryItem{}, payroll.ErrSalaryItemNotFound
}

func (r *fakeItemRepo) List(ctx context.Context) ([]payroll.SalaryItem, error) {
	var out []payroll.SalaryItem
	for _, item := range r.items {
		out = append(out, item)
	}
	return out, nil
}

func (r *fakeItemRepo) GetOrCreateByName(ctx context.Context, item payroll.SalaryItem) (payroll.SalaryItem, bool, error) {
	existing, err := r.GetByName(ctx, item.Name)
	if err == nil {
		return existing, false, nil
	}
	created, err := r.Create(ctx, item)
	return created, err == nil, err
}

type fakeSalaryRepo struct {
	salaries map[string]payroll.Salary
	details  map[string][]payroll.SalaryDetail
}

func newFakeSalaryRepo() *fakeSalaryRepo {
	return &fakeSalaryRepo{
		salaries: map[string]payroll.Salary{},
		details:  map[string][]payroll.SalaryDetail{},
	}
}

func (r *fakeSalaryRepo) GetOrCreate(ctx context.Context, employeeID, periodID string) (payroll.Salary, bool, error) {
	for _, s := range r.salaries {
		if s.EmployeeID == employeeID && s.PeriodID == periodID {
			return s, false, nil
		}
	}
	s := payroll.Salary{
		ID:             uuid.NewString(),
		EmployeeID:     employeeID,
		PeriodID:       periodID,
		BaseAmount:     decimal.Zero,
		WorkingHours:   decimal.Zero,
		OvertimeHours:  decimal.Zero,
		OvertimeAmount: decimal.Zero,
		Status:         payroll.SalaryStatusDraft,
	}
	r.salaries[s.ID] = s
	return s, true, nil
}

func (r *fakeSalaryRepo) GetByID(ctx context.Context, id string) (payroll.Salary, error) {
	s, ok := r.salaries[id]
	if !ok {
		return payroll.Salary{}, payroll.ErrSalaryNotFound
	}
	return s, nil
}

func (r *fakeSalaryRepo) GetByEmployeeAndPeriod(ctx context.Context, employeeID, periodID string) (payroll.Salary, error) {
	for _, s := range r.salaries {
		if s.EmployeeID == employeeID && s.PeriodID == periodID {
			return s, nil
		}
	}
	return payroll.Salary{}, payroll.ErrSalaryNotFound
}

func (r *fakeSalaryRepo) List(ctx context.Context, filter payroll.SalaryFilter) ([]payroll.Salary, error) {
	var out []payroll.Salary
	for _, s := range r.salaries {
		if filter.EmployeeID != nil && s.EmployeeID != *filter.EmployeeID {
			continue
		}
		if filter.PeriodID != nil && s.PeriodID != *filter.PeriodID {
			continue
		}
		if filter.Status != nil && string(s.Status) != *filter.Status {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *fakeSalaryRepo) ListByEmployee(ctx context.Context, employeeID string, year, month *int) ([]payroll.Salary, error) {
	var out []payroll.Salary
	for _, s := range r.salaries {
		if s.EmployeeID == employeeID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSalaryRepo) UpdateAmounts(ctx context.Context, s payroll.Salary) error {
	stored, ok := r.salaries[s.ID]
	if !ok {
		return payroll.ErrSalaryNotFound
	}
	stored.BaseAmount = s.BaseAmount
	stored.WorkingHours = s.WorkingHours
	stored.OvertimeHours = s.OvertimeHours
	stored.OvertimeAmount = s.OvertimeAmount
	r.salaries[s.ID] = stored
	return nil
}

func (r *fakeSalaryRepo) SetStatus(ctx context.Context, id string, status payroll.SalaryStatus) error {
	s, ok := r.salaries[id]
	if !ok {
		return payroll.ErrSalaryNotFound
	}
	s.Status = status
	r.salaries[id] = s
	return nil
}

func (r *fakeSalaryRepo) ReplaceDetails(ctx context.Context, salaryID string, details []payroll.SalaryDetail) error {
	r.details[salaryID] = append([]payroll.SalaryDetail(nil), details...)
	return nil
}

func (r *fakeSalaryRepo) GetDetails(ctx context.Context, salaryID string) ([]payroll.SalaryDetail, error) {
	return r.details[salaryID], nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: map[string]employee.Employee{}}
}

func (r *fakeEmployeeRepo) add(emp employee.Employee) employee.Employee {
	if emp.ID == "" {
		emp.ID = uuid.NewString()
	}
	r.employees[emp.ID] = emp
	return emp
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return r.add(emp), nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range r.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (r *fakeEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range r.employees {
		if emp.Active {
			out = append(out, emp)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (r *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error {
	emp, ok := r.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.Active = false
	r.employees[id] = emp
	return nil
}

type fakeLeaveRepo struct {
	leaves []leave.Leave
}

func (r *fakeLeaveRepo) Create(ctx context.Context, lv leave.Leave) (leave.Leave, error) {
	lv.ID = uuid.NewString()
	r.leaves = append(r.leaves, lv)
	return lv, nil
}

func (r *fakeLeaveRepo) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	for _, lv := range r.leaves {
		if lv.ID == id {
			return lv, nil
		}
	}
	return leave.Leave{}, leave.ErrLeaveNotFound
}

func (r *fakeLeaveRepo) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.Leave, error) {
	return r.leaves, nil
}

func (r *fakeLeaveRepo) UpdateStatus(ctx context.Context, id string, status leave.LeaveStatus) error {
	for i := range r.leaves {
		if r.leaves[i].ID == id {
			r.leaves[i].Status = status
			return nil
		}
	}
	return leave.ErrLeaveNotFound
}

func (r *fakeLeaveRepo) GetApprovedOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, lv := range r.leaves {
		if lv.EmployeeID != employeeID || lv.Status != leave.LeaveStatusApproved {
			continue
		}
		if lv.EndDate.Before(start) || lv.StartDate.After(end) {
			continue
		}
		out = append(out, lv)
	}
	return out, nil
}

type fakePeriodPunchRepo struct {
	punchesByDay map[string][]attendance.Punch
}

func (r *fakePeriodPunchRepo) Create(ctx context.Context, p attendance.Punch) (attendance.Punch, error) {
	return p, nil
}

func (r *fakePeriodPunchRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, day time.Time) ([]attendance.Punch, error) {
	return r.punchesByDay[day.Format("2006-01-02")], nil
}

func (r *fakePeriodPunchRepo) GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.Punch, error) {
	return nil, nil
}

// ========== FIXTURE ==========

type engineFixture struct {
	service    payroll.PayrollService
	periods    *fakePeriodRepo
	items      *fakeItemRepo
	salaries   *fakeSalaryRepo
	employees  *fakeEmployeeRepo
	leaves     *fakeLeaveRepo
	punches    *fakePeriodPunchRepo
}

func newEngineFixture() *engineFixture {
	f := &engineFixture{
		periods:   newFakePeriodRepo(),
		items:     newFakeItemRepo(),
		salaries:  newFakeSalaryRepo(),
		employees: newFakeEmployeeRepo(),
		leaves:    &fakeLeaveRepo{},
		punches:   &fakePeriodPunchRepo{punchesByDay: map[string][]attendance.Punch{}},
	}

	standardDay := decimal.NewFromInt(8)
	f.service = NewPayrollService(
		fakeTxRunner{},
		f.periods,
		f.items,
		f.salaries,
		f.employees,
		f.leaves,
		attendancesvc.NewAggregator(f.punches, standardDay),
		leavesvc.NewDeductionCalculator(standardDay),
		testPolicy(),
	)
	return f
}

func (f *engineFixture) addPeriod(t *testing.T) payroll.PayrollPeriod {
	t.Helper()
	period, err := f.periods.Create(context.Background(), payroll.PayrollPeriod{
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		PayDate:   time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return period
}

func (f *engineFixture) addFullTimer(baseSalary int64) employee.Employee {
	base := decimal.NewFromInt(baseSalary)
	return f.employees.add(employee.Employee{
		Name:           "Alex Chen",
		EmploymentType: employee.EmploymentTypeFullTime,
		BaseSalary:     &base,
		Active:         true,
	})
}

func (f *engineFixture) addPartTimer(hourlyRate int64) employee.Employee {
	hourly := decimal.NewFromInt(hourlyRate)
	return f.employees.add(employee.Employee{
		Name:           "Morgan Liu",
		EmploymentType: employee.EmploymentTypePartTime,
		HourlyRate:     &hourly,
		Active:         true,
	})
}

func (f *engineFixture) punchDay(t *testing.T, day, in, out string) {
	t.Helper()
	inTime, err := time.Parse(time.RFC3339, day + "T" + in + ":00Z")
	require.NoError(t, err)
	outTime, err := time.Parse(time.RFC3339, day + "T" + out + ":00Z")
	require.NoError(t, err)
	f.punches.punchesByDay[day] = []attendance.Punch{
		{EmployeeID: "any", PunchTime: inTime, PunchType: attendance.PunchTypeIn},
		{EmployeeID: "any", PunchTime: outTime, PunchType: attendance.PunchTypeOut},
	}
}

// ========== TESTS ==========

func TestCalculateSalary_FullTimeBaseAndOvertime(t *testing.T) {
	f := newEngineFixture()
	period := f.addPeriod(t)
	emp := f.addFullTimer(42000) // hourly 42000/168 = 250

	// Monday: 10h elapsed - 1h break = 9h, so 8h worked + 1h overtime at 1.33
	f.punchDay(t, "2026-03-02", "09:00", "19:00")

	result, err := f.service.CalculateSalaryForPeriod(context.Background(), emp.ID, period.ID)
	require.NoError(t, err)

	assert.True(t, result.BaseAmount.Equal(decimal.NewFromInt(42000)), "base: %s", result.BaseAmount)
	assert.True(t, result.WorkingHours.Equal(decimal.NewFromInt(8)))
	assert.True(t, result.OvertimeHours.Equal(decimal.NewFromInt(1)))
	// 250 * 1.33 * 1 = 332.5
	assert.True(t, result.OvertimeAmount.Equal(decimal.RequireFromString("332.5")), "overtime: %s", result.OvertimeAmount)
	assert.Equal(t, string(payroll.SalaryStatusDraft), result.Status)
	// No salary items configured, so total is base + overtime
	assert.True(t, result.TotalSalary.Equal(decimal.RequireFromString("42332.5")), "total: %s", result.TotalSalary)
}

func TestCalculateSalary_HolidayOvertimeDoubleRate(t *testing.T) {
	f := newEngineFixture()
	period := f.addPeriod(t)
	emp := f.addFullTimer(42000)

	// Saturday: 9h worked after break = 1h overtime at the holiday rate
	f.punchDay(t, "2026-03-07", "09:00", "19:00")

	result, err := f.service.CalculateSalaryForPeriod(context.Background(), emp.ID, period.ID)
	require.NoError(t, err)

	// 250 * 2.0 * 1 = 500
	assert.True(t, result.OvertimeAmount.Equal(decimal.NewFromInt(500)), "overtime: %s", result.OvertimeAmount)
}

func TestCalculateSalary_PartTimePaidByWorkedHours(t *testing.T) {
	f := newEngineFixture()
	period := f.addPeriod(t)
	emp := f.addPartTimer(150)

	f.punchDay(t, "2026-03-02", "09:00", "18:00") // 8h
	f.punchDay(t, "2026-03-03", "09:00", "14:00") // 5h, no break

	result, err := f.service.CalculateSalaryForPeriod(context.Background(), emp.ID, period.ID)
	require.NoError(t, err)

	assert.True(t, result.WorkingHours.Equal(decimal.NewFromInt(13)), "hours: %s", result.WorkingHours)
	// 13h * 150 = 1950
	assert.True(t, result.BaseAmount.Equal(decimal.NewFromInt(1950)), "base: %s", result.BaseAmount)
}

func TestCalculateSalary_FullTimeWithoutBaseSalaryEarnsNoBase(t *testing.T) {
	f := newEngineFixture()
	period := f.addPeriod(t)
	emp := f.employees.add(employee.Employee{
		Name:           "Alex Chen",
		EmploymentType: employee.EmploymentTypeFullTime,
		Active:         true,
	})

	// 10h elapsed - 1h break = 8h worked + 1h overtime
	f.punchDay(t, "2026-03-02", "09:00", "19:00")

	result, err := f.service.CalculateSalaryForPeriod(context.Background(), emp.ID, period.ID)
	require.NoError(t, err)

	assert.True(t, result.BaseAmount.IsZero(), "base: %s", result.BaseAmount)
	// Overtime is still priced via the fallback hourly rate: 200 * 1.33 * 1
	assert.True(t, result.OvertimeAmount.Equal(decimal.RequireFromString("266")), "overtime: %s", result.OvertimeAmount)
}

func TestCalculateSalary_PartTimeWithoutHourlyRateEarnsNoBase(t *testing.T) {
	f := newEngineFixture()
	period := f.addPeriod(t)
	emp := f.employees.add(employee.Employee{
		Name:           "Morgan Liu",
		EmploymentType: employee.EmploymentTypePartTime,
		Active:         true,
	})

	f.punchDay(t, "2026-03-02", "09:00", "18:00")

	result, err := f.service.CalculateSalaryForPeriod(context.Background(), emp.ID, period.ID)
	require.NoError(t, err)

	assert.True(t, result.WorkingHours.Equal(decimal.NewFromInt(8)))
	assert.True(t, result.BaseAmount.IsZero(), "base: %s", result.BaseAmount)
}

func TestCalculateSalary_DetailsFromItemCatalogue(t *testing.T) {
	f := newEngineFixture()
	period := f.addPeriod(t)
	emp := f.addFullTimer(42000)

	bonus := decimal.NewFromInt(1000)
	pct := decimal.NewFromInt(10)
	_, err := f.items.Create(context.Background(), payroll.SalaryItem{
		Name: "Attendance Bonus", ItemType: payroll.ItemTypeBonus,
		Amount: &bonus, IsFixed: true, ApplyToParttime: true,
	})
	require.NoError(t, err)
	_, err = f.items.Create(context.Background(), payroll.SalaryItem{
		Name: "Pension", ItemType: payroll.ItemTypeDeduction,
		Percentage: &pct, ApplyToParttime: true,
	})
	require.NoError(t, err)
	// Neither amount nor percentage: contributes nothing
	_, err = f.items.Create(context.Background(), payroll.SalaryItem{
		Name: "Placeholder", ItemType: payroll.ItemTypeAllowance, ApplyToParttime: true,
	})
	require.NoError(t, err)

	result, err := f.service.CalculateSalaryForPeriod(context.Background(), emp.ID, period.ID)
	require.NoError(t, err)

	require.Len(t, result.Details, 2)

	byName := map[string]payroll.SalaryDetailResponse{}
	for _, d := range result.Details {
		byName[d.ItemName] = d
	}
	assert.True(t, byName["Attendance Bonus"].Amount.Equal(decimal.NewFromInt(1000)))
	// 10% of 42000 base (no overtime) = 4200
	assert.True(t, byName["Pension"].Amount.Equal(decimal.NewFromInt(4200)), "pension: %s", byName["Pension"].Amount)

	// total = 42000 + 1000 - 4200
	assert.True(t, result.TotalSalary.Equal(decimal.NewFromInt(38800)), "total: %s", result.TotalSalary)
}

func TestCalculateSalary_PartTimeSkipsFullTimeOnlyItems(t *testing.T) {
	f := newEngineFixture()
	period := f.addPeriod(t)
	emp := f.addPartTimer(150)

	amount := decimal.NewFromInt(2000)
	_, err := f.items.Create(context.Background(), payroll.SalaryItem{
		Name: "Transport Allowance", ItemType: payroll.ItemTypeAllowance,
		Amount: &amount, IsFixed: true, ApplyToParttime: false,
	})
	require.NoError(t, err)

	result, err := f.service.CalculateSalaryForPeriod(context.Background(), emp.ID, period.ID)
	require.NoError(t, err)

	assert.Empty(t, result.Details)
}

func TestCalculateSalary_UnpaidLeaveAppendsDeduction(t *testing.T) {
	f := newEngineFixture()
	period := f.addPeriod(t)
	emp := f.addFullTimer(60000)

	f.leaves.leaves = append(f.leaves.leaves, leave.Leave{
		ID:         uuid.NewString(),
		EmployeeID: emp.ID,
		LeaveType:  leave.LeaveTypePersonal,
		Status:     leave.LeaveStatusApproved,
		StartDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
	})

	result, err := f.service.CalculateSalaryForPeriod(context.Background(), emp.ID, period.ID)
	require.NoError(t, err)

	require.Len(t, result.Details, 1)
	detail := result.Details[0]
	assert.Equal(t, "Leave Deduction", detail.ItemName)
	assert.Equal(t, string(payroll.ItemTypeDeduction), detail.ItemType)
	// 60000/30 * 2 days = 4000
	assert.True(t, detail.Amount.Equal(decimal.NewFromInt(4000)), "deduction: %s", detail.Amount)
	assert.Contains(t, detail.Description, "2 days")

	// The synthetic item was materialized in the catalogue
	item, err := f.items.GetByName(context.Background(), "Leave Deduction")
	require.NoError(t, err)
	assert.Equal(t, payroll.ItemTypeDeduction, item.ItemType)

	assert.True(t, result.TotalSalary.Equal(decimal.NewFromInt(56000)), "total: %s", result.TotalSalary)
}

func TestCalculateSalary_ZeroRateLeaveProducesNoDeductionLine(t *testing.T) {
	f := newEngineFixture()
	period := f.addPeriod(t)
	// No pay fields, so the daily leave rate resolves to zero
	emp := f.employees.add(employee.Employee{
		Name:           "Alex Chen",
		EmploymentType: employee.EmploymentTypeFullTime,
		Active:         true,
	})

	f.leaves.leaves = append(f.leaves.leaves, leave.Leave{
		ID:         uuid.NewString(),
		EmployeeID: emp.ID,
		LeaveType:  leave.LeaveTypePersonal,
		Status:     leave.LeaveStatusApproved,
		StartDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
	})

	result, err := f.service.CalculateSalaryForPeriod(context.Background(), emp.ID, period.ID)
	require.NoError(t, err)

	assert.Empty(t, result.Details, "a zero deduction must not appear as a line")
	_, err = f.items.GetByName(context.Background(), "Leave Deduction")
	assert.ErrorIs(t, err, payroll.ErrSalaryItemNotFound)
}

func TestCalculateSalary_RecalculationOverwritesDraft(t *testing.T) {
	f := newEngineFixture()
	period := f.addPeriod(t)
	emp := f.addFullTimer(42000)

	first, err := f.service.CalculateSalaryForPeriod(context.Background(), emp.ID, period.ID)
	require.NoError(t, err)
	assert.True(t, first.OvertimeHours.IsZero())

	f.punchDay(t, "2026-03-02", "09:00", "19:00")

	second, err := f.service.CalculateSalaryForPeriod(context.Background(), emp.ID, period.ID)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "same salary row is reused")
	assert.True(t, second.OvertimeHours.Equal(decimal.NewFromInt(1)))
}

func TestCalculateSalary_ConfirmedSalaryIsFrozen(t *testing.T) {
	f := newEngineFixture()
	period := f.addPeriod(t)
	emp := f.addFullTimer(42000)

	first, err := f.service.CalculateSalaryForPeriod(context.Background(), emp.ID, period.ID)
	require.NoError(t, err)

	_, err = f.service.ConfirmSalary(context.Background(), first.ID)
	require.NoError(t, err)

	// New punches would change the result if recomputation happened
	f.punchDay(t, "2026-03-02", "09:00", "19:00")

	again, err := f.service.CalculateSalaryForPeriod(context.Background(), emp.ID, period.ID)
	require.NoError(t, err)

	assert.Equal(t, string(payroll.SalaryStatusConfirmed), again.Status)
	assert.True(t, again.OvertimeHours.IsZero(), "confirmed salary must not be recomputed")
}

func TestConfirmSalary_Idempotent(t *testing.T) {
	f := newEngineFixture()
	period := f.addPeriod(t)
	emp := f.addFullTimer(42000)

	calc, err := f.service.CalculateSalaryForPeriod(context.Background(), emp.ID, period.ID)
	require.NoError(t, err)

	first, err := f.service.ConfirmSalary(context.Background(), calc.ID)
	require.NoError(t, err)
	second, err := f.service.ConfirmSalary(context.Background(), calc.ID)
	require.NoError(t, err)

	assert.Equal(t, string(payroll.SalaryStatusConfirmed), first.Status)
	assert.Equal(t, string(payroll.SalaryStatusConfirmed), second.Status)
}

func TestProcessPayroll_CoversActiveEmployeesAndMarksPeriod(t *testing.T) {
	f := newEngineFixture()
	period := f.addPeriod(t)
	f.addFullTimer(42000)
	f.addPartTimer(150)
	inactive := f.addFullTimer(30000)
	require.NoError(t, f.employees.Deactivate(context.Background(), inactive.ID))

	result, err := f.service.ProcessPayrollForPeriod(context.Background(), period.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, result.ProcessedCount)

	stored, err := f.periods.GetByID(context.Background(), period.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsProcessed)
	require.NotNil(t, stored.ProcessedAt)
}

func TestProcessPayroll_RefusesProcessedPeriod(t *testing.T) {
	f := newEngineFixture()
	period := f.addPeriod(t)
	f.addFullTimer(42000)

	_, err := f.service.ProcessPayrollForPeriod(context.Background(), period.ID)
	require.NoError(t, err)

	_, err = f.service.ProcessPayrollForPeriod(context.Background(), period.ID)
	assert.ErrorIs(t, err, payroll.ErrPeriodAlreadyProcessed)
}

func TestPreviewSalary_DoesNotPersist(t *testing.T) {
	f := newEngineFixture()
	period := f.addPeriod(t)
	emp := f.addFullTimer(42000)

	// Unpaid leave makes the preview go through the deduction path too
	f.leaves.leaves = append(f.leaves.leaves, leave.Leave{
		ID:         uuid.NewString(),
		EmployeeID: emp.ID,
		LeaveType:  leave.LeaveTypePersonal,
		Status:     leave.LeaveStatusApproved,
		StartDate:  time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC),
	})

	preview, err := f.service.PreviewSalary(context.Background(), emp.ID, period.ID)
	require.NoError(t, err)

	assert.True(t, preview.BaseAmount.Equal(decimal.NewFromInt(42000)))
	require.Len(t, preview.Details, 1)
	// 42000/30 * 2 days = 2800
	assert.True(t, preview.Details[0].Amount.Equal(decimal.NewFromInt(2800)), "deduction: %s", preview.Details[0].Amount)

	assert.Empty(t, f.salaries.salaries, "preview must not create salary rows")
	assert.Empty(t, f.items.items, "preview must not create salary items")
}

func TestCreateDefaultSalaryItems_SecondCallCreatesNothing(t *testing.T) {
	f := newEngineFixture()

	first, err := f.service.CreateDefaultSalaryItems(context.Background())
	require.NoError(t, err)
	assert.Len(t, first, 5)

	second, err := f.service.CreateDefaultSalaryItems(context.Background())
	require.NoError(t, err)
	assert.Empty(t, second)
}

func TestCreatePeriod_ValidatesDateOrder(t *testing.T) {
	f := newEngineFixture()

	_, err := f.service.CreatePeriod(context.Background(), payroll.CreatePeriodRequest{
		StartDate: "2026-03-31",
		EndDate:   "2026-03-01",
		PayDate:   "2026-04-05",
	})
	assert.Error(t, err)

	_, err = f.service.CreatePeriod(context.Background(), payroll.CreatePeriodRequest{
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
		PayDate:   "2026-03-15",
	})
	assert.Error(t, err, "pay date before end date must be rejected")

	result, err := f.service.CreatePeriod(context.Background(), payroll.CreatePeriodRequest{
		StartDate: "2026-03-01",
		EndDate:   "2026-03-31",
		PayDate:   "2026-04-05",
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", result.StartDate)
	assert.False(t, result.IsProcessed)
}

func TestGetSalarySummary_AveragesAndLatest(t *testing.T) {
	f := newEngineFixture()
	emp := f.addFullTimer(42000)
	period := f.addPeriod(t)

	_, err := f.service.CalculateSalaryForPeriod(context.Background(), emp.ID, period.ID)
	require.NoError(t, err)

	summary, err := f.service.GetSalarySummary(context.Background(), emp.ID, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.TotalSalaries)
	assert.True(t, summary.TotalAmount.Equal(decimal.NewFromInt(42000)))
	assert.True(t, summary.AverageAmount.Equal(decimal.NewFromInt(42000)))
	require.NotNil(t, summary.LatestSalary)
	assert.Equal(t, emp.ID, summary.LatestSalary.EmployeeID)
}

func TestGetSalarySummary_UnknownEmployee(t *testing.T) {
	f := newEngineFixture()

	_, err := f.service.GetSalarySummary(context.Background(), uuid.NewString(), nil, nil)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
