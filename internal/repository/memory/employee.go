package memory

import (
	"github.com/cmlabs-hris/hris-records-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-records-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	crud[employee.Employee, *employee.Employee]
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{
		crud: newCrud[employee.Employee, *employee.Employee](db, employee.ErrEmployeeNotFound),
	}
}
