package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/staffdesk-hr/payroll-backend-go/internal/config"
)

func NewRouter(
	cfg *config.Config,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	scheduleHandler ScheduleHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffdesk-payroll"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/departments", func(r chi.Router) {
			r.Get("/", employeeHandler.ListDepartments)
			r.Post("/", employeeHandler.CreateDepartment)
			r.Delete("/{id}", employeeHandler.DeleteDepartment)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.ListEmployees)
			r.Post("/", employeeHandler.CreateEmployee)
			r.Get("/{id}", employeeHandler.GetEmployee)
			r.Put("/{id}", employeeHandler.UpdateEmployee)
			r.Delete("/{id}", employeeHandler.DeactivateEmployee)

			r.Get("/{employeeID}/punches", attendanceHandler.ListPunches)
			r.Get("/{employeeID}/daily-hours", attendanceHandler.GetDailyHours)
			r.Get("/{employeeID}/schedules", scheduleHandler.ListEmployeeSchedules)
			r.Get("/{employeeID}/salary-summary", payrollHandler.GetSalarySummary)
		})

		r.Route("/punches", func(r chi.Router) {
			r.Post("/", attendanceHandler.RecordPunch)
		})

		r.Route("/leaves", func(r chi.Router) {
			r.Get("/", leaveHandler.ListLeaves)
			r.Post("/", leaveHandler.ApplyLeave)
			r.Get("/{id}", leaveHandler.GetLeave)
			r.Post("/{id}/approve", leaveHandler.ApproveLeave)
			r.Post("/{id}/reject", leaveHandler.RejectLeave)
		})

		r.Route("/schedules", func(r chi.Router) {
			r.Get("/", scheduleHandler.ListWorkSchedules)
			r.Post("/", scheduleHandler.CreateWorkSchedule)
			r.Get("/default", scheduleHandler.GetDefaultSchedule)
			r.Get("/{id}", scheduleHandler.GetWorkSchedule)
			r.Post("/assignments", scheduleHandler.AssignSchedule)
			r.Delete("/assignments/{id}", scheduleHandler.RemoveAssignment)
		})

		r.Route("/payroll", func(r chi.Router) {
			r.Route("/periods", func(r chi.Router) {
				r.Get("/", payrollHandler.ListPeriods)
				r.Post("/", payrollHandler.CreatePeriod)
				r.Post("/{id}/process", payrollHandler.ProcessPayroll)
			})

			r.Route("/salary-items", func(r chi.Router) {
				r.Get("/", payrollHandler.ListSalaryItems)
				r.Post("/", payrollHandler.CreateSalaryItem)
				r.Post("/defaults", payrollHandler.CreateDefaultSalaryItems)
			})

			r.Route("/salaries", func(r chi.Router) {
				r.Get("/", payrollHandler.ListSalaries)
				r.Post("/calculate", payrollHandler.CalculateSalary)
				r.Get("/preview", payrollHandler.PreviewSalary)
				r.Get("/{id}", payrollHandler.GetSalary)
				r.Post("/{id}/confirm", payrollHandler.ConfirmSalary)
			})
		})
	})

	// Kept for container liveness probes that expect a plain body
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
