package employee

import (
	"context"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// CreateEmployee stores a new employee, rejecting an email that is already registered
	CreateEmployee(ctx context.Context, e Employee) (Employee, error)

	// ListEmployees returns every stored employee, never nil
	ListEmployees(ctx context.Context) ([]Employee, error)

	// GetEmployeeByID reports found == false when no employee has the id
	GetEmployeeByID(ctx context.Context, id int64) (Employee, bool, error)

	// UpdateEmployee overwrites the employee stored under e.ID
	UpdateEmployee(ctx context.Context, e Employee) (Employee, error)

	// DeleteEmployee removes the employee; unknown ids are ignored
	DeleteEmployee(ctx context.Context, id int64) error

	FindEmployeeByEmail(ctx context.Context, email string) (Employee, bool, error)
	FindEmployeeByName(ctx context.Context, firstName, lastName string) (Employee, bool, error)
}
