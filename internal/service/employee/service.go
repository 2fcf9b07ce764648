package employee

import (
	"context"
	"log/slog"

	"github.com/cmlabs-hris/employee-service/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	logger       *slog.Logger
}

// NewEmployeeService builds the service on repo. A nil logger uses slog.Default.
func NewEmployeeService(employeeRepo employee.EmployeeRepository, logger *slog.Logger) employee.EmployeeService {
	if logger == nil {
		logger = slog.Default()
	}
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// CreateEmployee implements employee.EmployeeService. The email is stored
// in its normalized form, so uniqueness ignores case and surrounding spaces.
//
// The email check is the fast path; the storage UNIQUE constraint still
// rejects a concurrent create that slips past it, with the same error.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	e.Email = employee.NormalizeEmail(e.Email)
	existing, found, err := s.employeeRepo.GetByEmail(ctx, e.Email)
	if err != nil {
		return employee.Employee{}, err
	}
	if found {
		s.logger.InfoContext(ctx, "rejected employee with registered email",
			"email", e.Email, "existing_employee_id", existing.ID)
		return employee.Employee{}, employee.ErrEmailExists
	}

	e.ID = 0
	return s.employeeRepo.Create(ctx, e)
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.Employee, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if employees == nil {
		employees = []employee.Employee{}
	}
	return employees, nil
}

// GetEmployeeByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployeeByID(ctx context.Context, id int64) (employee.Employee, bool, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

// UpdateEmployee implements employee.EmployeeService.
// Email uniqueness is not re-checked; only the storage constraint applies.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	e.Email = employee.NormalizeEmail(e.Email)
	return s.employeeRepo.Update(ctx, e)
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) error {
	return s.employeeRepo.Delete(ctx, id)
}

// FindEmployeeByEmail implements employee.EmployeeService.
func (s *EmployeeServiceImpl) FindEmployeeByEmail(ctx context.Context, email string) (employee.Employee, bool, error) {
	return s.employeeRepo.GetByEmail(ctx, employee.NormalizeEmail(email))
}

// FindEmployeeByName implements employee.EmployeeService.
func (s *EmployeeServiceImpl) FindEmployeeByName(ctx context.Context, firstName, lastName string) (employee.Employee, bool, error) {
	return s.employeeRepo.FindByName(ctx, firstName, lastName)
}
