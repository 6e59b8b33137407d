package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/staffdesk-hr/payroll-backend-go/internal/config"
	appHTTP "github.com/staffdesk-hr/payroll-backend-go/internal/handler/http"
	"github.com/staffdesk-hr/payroll-backend-go/internal/pkg/database"
	"github.com/staffdesk-hr/payroll-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffdesk-hr/payroll-backend-go/internal/service/attendance"
	employeeService "github.com/staffdesk-hr/payroll-backend-go/internal/service/employee"
	leaveService "github.com/staffdesk-hr/payroll-backend-go/internal/service/leave"
	payrollService "github.com/staffdesk-hr/payroll-backend-go/internal/service/payroll"
	scheduleService "github.com/staffdesk-hr/payroll-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	workScheduleRepo := postgresql.NewWorkScheduleRepository(db)
	employeeScheduleRepo := postgresql.NewEmployeeScheduleRepository(db)
	periodRepo := postgresql.NewPeriodRepository(db)
	salaryItemRepo := postgresql.NewSalaryItemRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	txManager := postgresql.NewTxManager(db)

	aggregator := attendanceService.NewAggregator(punchRepo, cfg.Payroll.StandardDailyHours)
	deductionCalc := leaveService.NewDeductionCalculator(cfg.Payroll.StandardDailyHours)
	policy := payrollService.NewPolicy(cfg.Payroll, payrollService.DefaultHolidayCalendar())

	empSvc := employeeService.NewEmployeeService(employeeRepo, departmentRepo)
	attSvc := attendanceService.NewAttendanceService(punchRepo, employeeRepo, aggregator)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	schedSvc := scheduleService.NewScheduleService(workScheduleRepo, employeeScheduleRepo, employeeRepo)
	paySvc := payrollService.NewPayrollService(
		txManager,
		periodRepo,
		salaryItemRepo,
		salaryRepo,
		employeeRepo,
		leaveRepo,
		aggregator,
		deductionCalc,
		policy,
	)

	router := appHTTP.NewRouter(
		cfg,
		appHTTP.NewEmployeeHandler(empSvc),
		appHTTP.NewAttendanceHandler(attSvc),
		appHTTP.NewLeaveHandler(leaveSvc),
		appHTTP.NewScheduleHandler(schedSvc),
		appHTTP.NewPayrollHandler(paySvc),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server running on port", cfg.App.Port)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server failed:", err)
	}
}
