package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-records-go/internal/config"
	"github.com/cmlabs-hris/hris-records-go/internal/fixtures"
	appHTTP "github.com/cmlabs-hris/hris-records-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/latency"
	"github.com/cmlabs-hris/hris-records-go/internal/repository/memory"
	attendanceService "github.com/cmlabs-hris/hris-records-go/internal/service/attendance"
	candidateService "github.com/cmlabs-hris/hris-records-go/internal/service/candidate"
	dashboardService "github.com/cmlabs-hris/hris-records-go/internal/service/dashboard"
	employeeService "github.com/cmlabs-hris/hris-records-go/internal/service/employee"
	hiringStageService "github.com/cmlabs-hris/hris-records-go/internal/service/hiringstage"
	jobPostingService "github.com/cmlabs-hris/hris-records-go/internal/service/jobposting"
	leaveService "github.com/cmlabs-hris/hris-records-go/internal/service/leave"
	payrollService "github.com/cmlabs-hris/hris-records-go/internal/service/payroll"
)

const version = "v1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	level, _ := cfg.SlogLevel()
	logger := appHTTP.NewLogger(level, cfg.App.Env, version)
	slog.SetDefault(logger)

	db := database.NewMemoryDB()

	employeeRepo := memory.NewEmployeeRepository(db)
	attendanceRepo := memory.NewAttendanceRepository(db)
	candidateRepo := memory.NewCandidateRepository(db)
	hiringStageRepo := memory.NewHiringStageRepository(db)
	jobPostingRepo := memory.NewJobPostingRepository(db)
	leaveApplicationRepo := memory.NewLeaveApplicationRepository(db)
	leaveBalanceRepo := memory.NewLeaveBalanceRepository(db)
	payrollRepo := memory.NewPayrollRepository(db)
	salarySlipRepo := memory.NewSalarySlipRepository(db)
	salaryStructureRepo := memory.NewSalaryStructureRepository(db)
	dashboardRepo := memory.NewDashboardRepository(
		employeeRepo,
		attendanceRepo,
		candidateRepo,
		jobPostingRepo,
		leaveApplicationRepo,
		payrollRepo,
	)

	newServices := func(sim latency.Simulator) fixtures.Services {
		return fixtures.Services{
			Employees:    employeeService.NewEmployeeService(employeeRepo, sim),
			Attendance:   attendanceService.NewAttendanceService(attendanceRepo, sim),
			Candidates:   candidateService.NewCandidateService(candidateRepo, sim),
			HiringStages: hiringStageService.NewHiringStageService(hiringStageRepo, sim),
			JobPostings:  jobPostingService.NewJobPostingService(jobPostingRepo, sim),
			Leave:        leaveService.NewLeaveService(leaveApplicationRepo, leaveBalanceRepo, sim),
			Payroll:      payrollService.NewPayrollService(db, payrollRepo, salarySlipRepo, salaryStructureRepo, sim),
		}
	}

	if cfg.App.SeedDemoData {
		if err := fixtures.Seed(context.Background(), newServices(latency.None()), db.Now()); err != nil {
			slog.Error("Failed to seed demo data", "error", err)
			os.Exit(1)
		}
		slog.Info("Demo data seeded")
	}

	svc := newServices(cfg.Latency)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, cfg.Latency, db.Now)

	router := appHTTP.NewRouter(logger, cfg.CORS.AllowedOrigins, appHTTP.Handlers{
		Employee:    appHTTP.NewEmployeeHandler(svc.Employees),
		Attendance:  appHTTP.NewAttendanceHandler(svc.Attendance),
		Recruitment: appHTTP.NewRecruitmentHandler(svc.Candidates, svc.JobPostings, svc.HiringStages),
		Leave:       appHTTP.NewLeaveHandler(svc.Leave),
		Payroll:     appHTTP.NewPayrollHandler(svc.Payroll),
		Dashboard:   appHTTP.NewDashboardHandler(dashboardSvc),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("Server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	slog.Info("Shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Forced shutdown", "error", err)
		return
	}
	slog.Info("Server exited gracefully")
}
