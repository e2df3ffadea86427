package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/candidate"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/hiringstage"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/jobposting"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/payroll"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/record"
	"github.com/shopspring/decimal"
)

// ==========================================
// HELPER FUNCTIONS
// ==========================================

func strPtr(s string) *string     { return &s }
func int64Ptr(i int64) *int64     { return &i }
func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// ==========================================
// SERVICES
// ==========================================

// Services is the set of services the demo data is written through, so
// every derived field is computed the same way as for API writes.
type Services struct {
	Employees    employee.EmployeeService
	Attendance   attendance.AttendanceService
	Candidates   candidate.CandidateService
	HiringStages hiringstage.HiringStageService
	JobPostings  jobposting.JobPostingService
	Leave        leave.LeaveService
	Payroll      payroll.PayrollService
}

type demoEmployee struct {
	code, name, department, designation, shift string
	departmentID, designationID                int64
	salary                                     int64
	joined                                     string
	active                                     string
}

var demoEmployees = []demoEmployee{
	{"EMP-001", "Ani Wijaya", "Engineering", "Engineering Manager", "Day", 1, 1, 28000000, "2019-04-01", "Y"},
	{"EMP-002", "Budi Santoso", "Engineering", "Backend Engineer", "Day", 1, 2, 18000000, "2021-07-12", "Y"},
	{"EMP-003", "Citra Lestari", "Engineering", "Frontend Engineer", "Day", 1, 3, 17000000, "2022-02-01", "Y"},
	{"EMP-004", "Dimas Pratama", "Finance", "Accountant", "Day", 2, 4, 14000000, "2020-10-05", "Y"},
	{"EMP-005", "Eka Putri", "People", "HR Generalist", "Day", 3, 5, 13000000, "2023-01-16", "Y"},
	{"EMP-006", "Fajar Nugroho", "Operations", "Support Specialist", "Night", 4, 6, 9000000, "2023-09-04", "Y"},
	{"EMP-007", "Gita Maharani", "Finance", "Finance Lead", "Day", 2, 7, 22000000, "2018-03-19", "N"},
	{"EMP-008", "Hendra Saputra", "Operations", "Support Specialist", "Night", 4, 6, 9000000, "2024-05-20", "Y"},
}

// Seed writes a small, consistent demo data set relative to today.
func Seed(ctx context.Context, svc Services, today time.Time) error {
	employees := make([]employee.Employee, 0, len(demoEmployees))
	for _, d := range demoEmployees {
		req := employee.CreateEmployeeRequest{
			EmployeeCode:    d.code,
			Name:            d.name,
			Email:           fmt.Sprintf("%s@example.com", d.code),
			DepartmentID:    d.departmentID,
			DepartmentName:  d.department,
			DesignationID:   d.designationID,
			DesignationName: d.designation,
			ShiftName:       d.shift,
			JoiningDate:     d.joined,
			IsActive:        d.active,
			Salary:          dec(d.salary),
			Currency:        "IDR",
		}
		if d.code != "EMP-001" {
			req.ReportingManagerID = int64Ptr(1)
			req.ReportingManagerName = strPtr("Ani Wijaya")
		}
		e, err := svc.Employees.CreateEmployee(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to seed employee %s: %w", d.code, err)
		}
		employees = append(employees, e)
	}

	if err := seedAttendance(ctx, svc.Attendance, employees, today); err != nil {
		return err
	}
	if err := seedRecruitment(ctx, svc, today); err != nil {
		return err
	}
	if err := seedLeave(ctx, svc.Leave, employees, today); err != nil {
		return err
	}
	return seedPayroll(ctx, svc.Payroll, employees, today)
}

func seedAttendance(ctx context.Context, svc attendance.AttendanceService, employees []employee.Employee, today time.Time) error {
	for day := 6; day >= 0; day-- {
		date := today.AddDate(0, 0, -day)
		for i, e := range employees {
			if e.IsActive != record.Active {
				continue
			}
			req := attendance.MarkAttendanceRequest{
				EmployeeID:     e.ID,
				EmployeeName:   e.Name,
				AttendanceDate: date.Format(record.DateLayout),
			}
			switch {
			case date.Weekday() == time.Saturday || date.Weekday() == time.Sunday:
				req.Status = string(attendance.StatusWeekend)
			case (i+day)%7 == 3:
				req.Status = string(attendance.StatusAbsent)
			case (i+day)%11 == 5:
				req.Status = string(attendance.StatusHalfDay)
				req.PunchInTime = strPtr("09:00")
				req.PunchOutTime = strPtr("13:00")
			default:
				req.Status = string(attendance.StatusPresent)
				req.PunchInTime = strPtr(fmt.Sprintf("08:%02d", (i*7+day*3)%50))
				req.PunchOutTime = strPtr(fmt.Sprintf("17:%02d", (i*11+day*5)%60))
			}
			if _, err := svc.MarkAttendance(ctx, req); err != nil {
				return fmt.Errorf("failed to seed attendance: %w", err)
			}
		}
	}
	return nil
}

func seedRecruitment(ctx context.Context, svc Services, today time.Time) error {
	stages := []hiringstage.CreateHiringStageRequest{
		{Name: "Screening", Code: "SCR"},
		{Name: "Technical Interview", Code: "TECH"},
		{Name: "HR Interview", Code: "HR"},
		{Name: "Offer", Code: "OFF"},
	}
	var refs []jobposting.StageRef
	for i, req := range stages {
		s, err := svc.HiringStages.CreateHiringStage(ctx, req)
		if err != nil {
			return fmt.Errorf("failed to seed hiring stage: %w", err)
		}
		refs = append(refs, jobposting.StageRef{HiringStageID: s.ID, HiringStageName: s.Name, Sequence: i + 1})
	}

	posted := today.AddDate(0, 0, -21).Format(record.DateLayout)
	closing := today.AddDate(0, 1, 0).Format(record.DateLayout)
	backend, err := svc.JobPostings.CreateJobPosting(ctx, jobposting.CreateJobPostingRequest{
		Title:          "Backend Engineer",
		Code:           "JP-ENG-01",
		DepartmentID:   1,
		DepartmentName: "Engineering",
		Location:       "Jakarta",
		EmploymentType: "Full Time",
		Openings:       2,
		Status:         string(jobposting.StatusOpen),
		PostedDate:     posted,
		ClosingDate:    closing,
		HiringStages:   refs,
		AttachmentsRequired: []jobposting.AttachmentRequirement{
			{Name: "CV", IsMandatory: true},
			{Name: "Portfolio"},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to seed job posting: %w", err)
	}
	accountant, err := svc.JobPostings.CreateJobPosting(ctx, jobposting.CreateJobPostingRequest{
		Title:          "Accountant",
		Code:           "JP-FIN-01",
		DepartmentID:   2,
		DepartmentName: "Finance",
		Location:       "Bandung",
		EmploymentType: "Contract",
		Openings:       1,
		Status:         string(jobposting.StatusClosed),
		PostedDate:     posted,
		ClosingDate:    today.AddDate(0, 0, -1).Format(record.DateLayout),
		HiringStages:   refs[:2],
	})
	if err != nil {
		return fmt.Errorf("failed to seed job posting: %w", err)
	}

	candidates := []struct {
		name   string
		post   jobposting.JobPosting
		status candidate.Status
		stage  int
	}{
		{"Indra Kusuma", backend, candidate.StatusApplied, -1},
		{"Joko Susilo", backend, candidate.StatusScreening, 0},
		{"Kartika Sari", backend, candidate.StatusInterview, 1},
		{"Lina Marlina", backend, candidate.StatusOffer, 3},
		{"Made Wirawan", accountant, candidate.StatusHired, 1},
		{"Nina Agustina", accountant, candidate.StatusRejected, 0},
	}
	for i, c := range candidates {
		req := candidate.CreateCandidateRequest{
			Name:            c.name,
			Email:           fmt.Sprintf("candidate%d@example.com", i+1),
			JobPostingID:    c.post.ID,
			JobPostingTitle: c.post.Title,
			Status:          string(c.status),
			AppliedDate:     today.AddDate(0, 0, -14+i).Format(record.DateLayout),
			ExperienceYears: decimal.NewFromFloat(1.5 + float64(i)),
			ExpectedSalary:  dec(12000000 + int64(i)*1500000),
		}
		if c.stage >= 0 {
			req.CurrentHiringStageID = int64Ptr(refs[c.stage].HiringStageID)
			req.CurrentHiringStageName = refs[c.stage].HiringStageName
		}
		if _, err := svc.Candidates.CreateCandidate(ctx, req); err != nil {
			return fmt.Errorf("failed to seed candidate: %w", err)
		}
	}
	return nil
}

func seedLeave(ctx context.Context, svc leave.LeaveService, employees []employee.Employee, today time.Time) error {
	types := []leave.LeaveTypeItemRequest{
		{LeaveTypeID: 1, LeaveTypeName: "Annual Leave", TotalAllocated: dec(12)},
		{LeaveTypeID: 2, LeaveTypeName: "Sick Leave", TotalAllocated: dec(6)},
	}

	for i, e := range employees {
		items := make([]leave.LeaveTypeItemRequest, len(types))
		copy(items, types)
		items[0].Used = dec(int64(i % 4))
		if _, err := svc.CreateLeaveBalance(ctx, leave.CreateLeaveBalanceRequest{
			EmployeeID:     e.ID,
			EmployeeName:   e.Name,
			Year:           today.Year(),
			LeaveTypeItems: items,
		}); err != nil {
			return fmt.Errorf("failed to seed leave balance: %w", err)
		}
	}

	applications := []struct {
		employee  int
		leaveType int
		from, to  int
		halfDay   bool
		status    leave.ApplicationStatus
	}{
		{1, 0, -20, -18, false, leave.StatusApproved},
		{2, 1, -9, -9, false, leave.StatusApproved},
		{3, 0, 5, 9, false, leave.StatusPending},
		{4, 0, 12, 12, true, leave.StatusPending},
		{5, 1, -3, -2, false, leave.StatusRejected},
	}
	for _, a := range applications {
		e := employees[a.employee]
		if _, err := svc.CreateLeaveApplication(ctx, leave.CreateLeaveApplicationRequest{
			EmployeeID:    e.ID,
			EmployeeName:  e.Name,
			LeaveTypeID:   types[a.leaveType].LeaveTypeID,
			LeaveTypeName: types[a.leaveType].LeaveTypeName,
			StartDate:     today.AddDate(0, 0, a.from).Format(record.DateLayout),
			EndDate:       today.AddDate(0, 0, a.to).Format(record.DateLayout),
			IsHalfDay:     a.halfDay,
			Status:        string(a.status),
			AppliedDate:   today.AddDate(0, 0, a.from-7).Format(record.DateLayout),
		}); err != nil {
			return fmt.Errorf("failed to seed leave application: %w", err)
		}
	}
	return nil
}

func seedPayroll(ctx context.Context, svc payroll.PayrollService, employees []employee.Employee, today time.Time) error {
	var items []payroll.PayrollItemRequest
	for _, e := range employees {
		if e.IsActive != record.Active {
			continue
		}
		items = append(items, payroll.PayrollItemRequest{
			EmployeeID:      e.ID,
			EmployeeName:    e.Name,
			TotalEarnings:   e.Salary,
			TotalDeductions: e.Salary.Mul(decimal.NewFromFloat(0.05)).Round(0),
		})

		if _, err := svc.CreateSalaryStructure(ctx, payroll.CreateSalaryStructureRequest{
			EmployeeID:    e.ID,
			EmployeeName:  e.Name,
			EffectiveFrom: e.JoiningDate,
			StructureItems: []payroll.StructureItemRequest{
				{ComponentName: "Basic Salary", ComponentType: string(payroll.ComponentTypeEarning), TotalAllocated: e.Salary},
				{ComponentName: "BPJS", ComponentType: string(payroll.ComponentTypeDeduction), TotalAllocated: e.Salary.Mul(decimal.NewFromFloat(0.05)).Round(0)},
			},
		}); err != nil {
			return fmt.Errorf("failed to seed salary structure: %w", err)
		}
	}

	// Two closed months and a draft for the current one.
	for back := 2; back >= 0; back-- {
		period := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -back, 0)
		run, err := svc.CreatePayroll(ctx, payroll.CreatePayrollRequest{
			Month:   int(period.Month()),
			Year:    period.Year(),
			Remarks: period.Format("January 2006") + " payroll",
			Items:   items,
		})
		if err != nil {
			return fmt.Errorf("failed to seed payroll: %w", err)
		}
		if back == 0 {
			continue
		}
		if _, err := svc.ProcessPayroll(ctx, run.ID); err != nil {
			return fmt.Errorf("failed to process seeded payroll: %w", err)
		}
		if back == 2 {
			paid := string(payroll.PayrollStatusPaid)
			if _, err := svc.UpdatePayroll(ctx, payroll.UpdatePayrollRequest{ID: run.ID, Status: &paid}); err != nil {
				return fmt.Errorf("failed to seed payroll: %w", err)
			}
		}
	}
	return nil
}
