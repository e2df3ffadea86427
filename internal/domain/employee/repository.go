package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id int64) (Employee, error)
	// List returns a snapshot of every employee in store order.
	List(ctx context.Context) ([]Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, employee Employee) (Employee, error)
	Delete(ctx context.Context, id int64) error
}
