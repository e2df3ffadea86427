package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

// Handlers groups the resource handlers mounted under /api/v1.
type Handlers struct {
	Employee    EmployeeHandler
	Attendance  AttendanceHandler
	Recruitment RecruitmentHandler
	Leave       LeaveHandler
	Payroll     PayrollHandler
	Dashboard   DashboardHandler
}

// NewLogger returns the JSON logger shared by the request logger and the
// services, with ECS field names.
func NewLogger(level slog.Level, env, version string) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(false)
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hris-records"),
		slog.String("version", version),
		slog.String("env", env),
	)
}

func NewRouter(logger *slog.Logger, allowedOrigins []string, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(chiMiddleware.RequestID)
	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentType("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.ListEmployees)
			r.Post("/", h.Employee.CreateEmployee)
			r.Get("/{id}", h.Employee.GetEmployee)
			r.Put("/{id}", h.Employee.UpdateEmployee)
			r.Delete("/{id}", h.Employee.DeleteEmployee)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", h.Attendance.ListAttendance)
			r.Post("/", h.Attendance.CreateAttendance)
			r.Post("/mark", h.Attendance.MarkAttendance)
			r.Get("/{id}", h.Attendance.GetAttendance)
			r.Put("/{id}", h.Attendance.UpdateAttendance)
			r.Delete("/{id}", h.Attendance.DeleteAttendance)
		})

		r.Route("/candidates", func(r chi.Router) {
			r.Get("/", h.Recruitment.ListCandidates)
			r.Post("/", h.Recruitment.CreateCandidate)
			r.Get("/{id}", h.Recruitment.GetCandidate)
			r.Put("/{id}", h.Recruitment.UpdateCandidate)
			r.Delete("/{id}", h.Recruitment.DeleteCandidate)
		})

		r.Route("/job-postings", func(r chi.Router) {
			r.Get("/", h.Recruitment.ListJobPostings)
			r.Post("/", h.Recruitment.CreateJobPosting)
			r.Get("/{id}", h.Recruitment.GetJobPosting)
			r.Put("/{id}", h.Recruitment.UpdateJobPosting)
			r.Delete("/{id}", h.Recruitment.DeleteJobPosting)
		})

		r.Route("/hiring-stages", func(r chi.Router) {
			r.Get("/", h.Recruitment.ListHiringStages)
			r.Post("/", h.Recruitment.CreateHiringStage)
			r.Get("/{id}", h.Recruitment.GetHiringStage)
			r.Put("/{id}", h.Recruitment.UpdateHiringStage)
			r.Delete("/{id}", h.Recruitment.DeleteHiringStage)
		})

		r.Route("/leave-applications", func(r chi.Router) {
			r.Get("/", h.Leave.ListApplications)
			r.Post("/", h.Leave.CreateApplication)
			r.Get("/{id}", h.Leave.GetApplication)
			r.Put("/{id}", h.Leave.UpdateApplication)
			r.Delete("/{id}", h.Leave.DeleteApplication)
		})

		r.Route("/leave-balances", func(r chi.Router) {
			r.Get("/", h.Leave.ListBalances)
			r.Post("/", h.Leave.CreateBalance)
			r.Get("/{id}", h.Leave.GetBalance)
			r.Put("/{id}", h.Leave.UpdateBalance)
			r.Delete("/{id}", h.Leave.DeleteBalance)
		})

		r.Route("/payrolls", func(r chi.Router) {
			r.Get("/", h.Payroll.ListPayrolls)
			r.Post("/", h.Payroll.CreatePayroll)
			r.Get("/{id}", h.Payroll.GetPayroll)
			r.Put("/{id}", h.Payroll.UpdatePayroll)
			r.Delete("/{id}", h.Payroll.DeletePayroll)
			r.Post("/{id}/process", h.Payroll.ProcessPayroll)
		})

		r.Route("/salary-slips", func(r chi.Router) {
			r.Get("/", h.Payroll.ListSalarySlips)
			r.Post("/", h.Payroll.CreateSalarySlip)
			r.Get("/{id}", h.Payroll.GetSalarySlip)
			r.Put("/{id}", h.Payroll.UpdateSalarySlip)
			r.Delete("/{id}", h.Payroll.DeleteSalarySlip)
		})

		r.Route("/salary-structures", func(r chi.Router) {
			r.Get("/", h.Payroll.ListSalaryStructures)
			r.Post("/", h.Payroll.CreateSalaryStructure)
			r.Get("/{id}", h.Payroll.GetSalaryStructure)
			r.Put("/{id}", h.Payroll.UpdateSalaryStructure)
			r.Delete("/{id}", h.Payroll.DeleteSalaryStructure)
		})

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/", h.Dashboard.GetDashboard)
			r.Get("/employees", h.Dashboard.GetEmployeeSummary)
			r.Get("/attendance", h.Dashboard.GetAttendanceSummary)
			r.Get("/attendance-trend", h.Dashboard.GetAttendanceTrend)
			r.Get("/hiring", h.Dashboard.GetHiringSummary)
			r.Get("/leave", h.Dashboard.GetLeaveSummary)
			r.Get("/payroll", h.Dashboard.GetPayrollSummary)
		})
	})
	return r
}
