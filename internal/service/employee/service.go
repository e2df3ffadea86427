package employee

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-records-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-records-go/internal/domain/record"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/latency"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/query"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/utils"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	latency      latency.Simulator
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, sim latency.Simulator) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		latency:      sim,
	}
}

func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id int64) (employee.Employee, error) {
	if err := s.latency.WaitFetch(ctx); err != nil {
		return employee.Employee{}, err
	}
	return s.employeeRepo.GetByID(ctx, id)
}

func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}
	if err := s.latency.WaitMutation(ctx); err != nil {
		return employee.Employee{}, err
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		EmployeeCode:         req.EmployeeCode,
		Name:                 req.Name,
		Email:                req.Email,
		Phone:                req.Phone,
		DepartmentID:         req.DepartmentID,
		DepartmentName:       req.DepartmentName,
		DesignationID:        req.DesignationID,
		DesignationName:      req.DesignationName,
		ShiftID:              req.ShiftID,
		ShiftName:            req.ShiftName,
		ReportingManagerID:   req.ReportingManagerID,
		ReportingManagerName: req.ReportingManagerName,
		JoiningDate:          req.JoiningDate,
		IsActive:             record.FlagOrActive(req.IsActive),
		Salary:               req.Salary,
		Currency:             req.Currency,
	})
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	slog.InfoContext(ctx, "Employee created", "employee_id", created.ID)
	return created, nil
}

func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}
	if err := s.latency.WaitMutation(ctx); err != nil {
		return employee.Employee{}, err
	}

	current, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.Employee{}, err
	}

	utils.Patch(&current.EmployeeCode, req.EmployeeCode)
	utils.Patch(&current.Name, req.Name)
	utils.Patch(&current.Email, req.Email)
	utils.Patch(&current.Phone, req.Phone)
	utils.Patch(&current.DepartmentID, req.DepartmentID)
	utils.Patch(&current.DepartmentName, req.DepartmentName)
	utils.Patch(&current.DesignationID, req.DesignationID)
	utils.Patch(&current.DesignationName, req.DesignationName)
	utils.Patch(&current.ShiftID, req.ShiftID)
	utils.Patch(&current.ShiftName, req.ShiftName)
	utils.PatchPtr(&current.ReportingManagerID, req.ReportingManagerID)
	utils.PatchPtr(&current.ReportingManagerName, req.ReportingManagerName)
	utils.Patch(&current.JoiningDate, req.JoiningDate)
	if req.IsActive != nil {
		current.IsActive = record.FlagOrActive(*req.IsActive)
	}
	utils.Patch(&current.Salary, req.Salary)
	utils.Patch(&current.Currency, req.Currency)

	updated, err := s.employeeRepo.Update(ctx, current)
	if err != nil {
		return employee.Employee{}, err
	}

	slog.InfoContext(ctx, "Employee updated", "employee_id", updated.ID)
	return updated, nil
}

func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) error {
	if err := s.latency.WaitMutation(ctx); err != nil {
		return err
	}

	if err := s.employeeRepo.Delete(ctx, id); err != nil {
		return err
	}

	slog.InfoContext(ctx, "Employee deleted", "employee_id", id)
	return nil
}

func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeeResponse{}, err
	}
	if err := s.latency.WaitList(ctx); err != nil {
		return employee.ListEmployeeResponse{}, err
	}

	all, err := s.employeeRepo.List(ctx)
	if err != nil {
		return employee.ListEmployeeResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	filtered := FilterEmployees(all, filter)
	page := query.Paginate(filtered, filter.Page, filter.Limit)

	return employee.ListEmployeeResponse{
		Employees: page.Items,
		Meta:      page.Meta,
		Stats:     Stats(all),
	}, nil
}

// FilterEmployees applies every criterion of filter except pagination.
func FilterEmployees(all []employee.Employee, filter employee.EmployeeFilter) []employee.Employee {
	var isActive *record.ActiveFlag
	if filter.IsActive != nil {
		flag := record.ActiveFlag(*filter.IsActive)
		isActive = &flag
	}

	return query.Filter(all,
		query.Search(utils.Deref(filter.Search),
			func(e employee.Employee) string { return e.Name },
			func(e employee.Employee) string { return e.Email },
			func(e employee.Employee) string { return e.Phone },
			func(e employee.Employee) string { return e.EmployeeCode },
			func(e employee.Employee) string { return e.DepartmentName },
			func(e employee.Employee) string { return e.DesignationName },
		),
		query.Equals(filter.DepartmentID, func(e employee.Employee) int64 { return e.DepartmentID }),
		query.Equals(filter.DesignationID, func(e employee.Employee) int64 { return e.DesignationID }),
		query.Equals(filter.ShiftID, func(e employee.Employee) int64 { return e.ShiftID }),
		query.EqualsPtr(filter.ReportingManagerID, func(e employee.Employee) *int64 { return e.ReportingManagerID }),
		query.Equals(isActive, func(e employee.Employee) record.ActiveFlag { return e.IsActive }),
		query.DateRange(filter.JoiningDateFrom, filter.JoiningDateTo, func(e employee.Employee) string { return e.JoiningDate }),
	)
}

// Stats summarises employees for the list stat cards.
func Stats(all []employee.Employee) employee.EmployeeStats {
	active := query.Count(all, func(e employee.Employee) bool { return e.IsActive == record.Active })
	return employee.EmployeeStats{
		TotalEmployees:    len(all),
		ActiveEmployees:   active,
		InactiveEmployees: len(all) - active,
		ByDepartment:      query.GroupCount(all, func(e employee.Employee) string { return e.DepartmentName }),
		ByDesignation:     query.GroupCount(all, func(e employee.Employee) string { return e.DesignationName }),
	}
}
