package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// GetEmployee retrieves a single employee by ID
	GetEmployee(ctx context.Context, id int64) (Employee, error)

	// ListEmployees filters and paginates employees; stats cover the whole collection
	ListEmployees(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)

	// CreateEmployee stores a new employee
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (Employee, error)

	// UpdateEmployee merges the non-nil fields of req over the stored employee
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (Employee, error)

	// DeleteEmployee removes an employee
	DeleteEmployee(ctx context.Context, id int64) error
}
