package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/employee-service/internal/domain/employee"
	"github.com/cmlabs-hris/employee-service/internal/pkg/database"
	"github.com/cmlabs-hris/employee-service/internal/repository/schema"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

var (
	selectAllQuery, _ = schema.Employees.Select(schema.Postgres).
		OrderBy(schema.FieldID).
		MustBuild()
	selectByIDQuery, _ = schema.Employees.Select(schema.Postgres).
		WhereEq(schema.FieldID).
		MustBuild()
	selectByEmailQuery, _ = schema.Employees.Select(schema.Postgres).
		WhereEq(schema.FieldEmail).
		MustBuild()
	selectByNameQuery, _ = schema.Employees.Select(schema.Postgres).
		WhereEq(schema.FieldFirstName, schema.FieldLastName).
		OrderBy(schema.FieldID).
		Limit(1).
		MustBuild()
	selectByNameNamedQuery, selectByNameNamedParams = schema.Employees.Select(schema.Postgres).
		Bind(schema.Named).
		WhereEq(schema.FieldFirstName, schema.FieldLastName).
		OrderBy(schema.FieldID).
		Limit(1).
		MustBuild()
	insertQuery = schema.Employees.InsertSQL(schema.Postgres)
	upsertQuery = schema.Employees.UpsertSQL(schema.Postgres)
)

// Hand-written lookups against the physical table.
const (
	nativeByNameQuery = `
		SELECT e.id, e.first_name, e.last_name, e.email, e.phone_number, e.gender,
			e.date_of_birth, e.hire_date, e.job_title, e.department, e.salary,
			e.address, e.city, e.state, e.postal_code, e.country, e.marital_status,
			e.emergency_contact_name, e.emergency_contact_phone, e.hire_source, e.employment_status
		FROM employees e
		WHERE e.first_name = $1 AND e.last_name = $2
		ORDER BY e.id
		LIMIT 1
	`
	nativeByNameNamedQuery = `
		SELECT e.id, e.first_name, e.last_name, e.email, e.phone_number, e.gender,
			e.date_of_birth, e.hire_date, e.job_title, e.department, e.salary,
			e.address, e.city, e.state, e.postal_code, e.country, e.marital_status,
			e.emergency_contact_name, e.emergency_contact_phone, e.hire_source, e.employment_status
		FROM employees e
		WHERE e.first_name = @first_name AND e.last_name = @last_name
		ORDER BY e.id
		LIMIT 1
	`
	deleteQuery = `DELETE FROM employees WHERE id = $1`
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	created, err := scanEmployee(q.QueryRow(ctx, insertQuery, insertArgs(newEmployee)...))
	if err != nil {
		if isEmailConflict(err) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	rows, err := q.Query(ctx, selectAllQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, bool, error) {
	return e.findOne(ctx, selectByIDQuery, id)
}

// GetByEmail implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmail(ctx context.Context, email string) (employee.Employee, bool, error) {
	return e.findOne(ctx, selectByEmailQuery, email)
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	args := append([]any{emp.ID}, insertArgs(emp)...)
	updated, err := scanEmployee(q.QueryRow(ctx, upsertQuery, args...))
	if err != nil {
		if isEmailConflict(err) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee with id %d: %w", emp.ID, err)
	}
	return updated, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, e.db)

	if _, err := q.Exec(ctx, deleteQuery, id); err != nil {
		return fmt.Errorf("failed to delete employee with id %d: %w", id, err)
	}
	return nil
}

// FindByName implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) FindByName(ctx context.Context, firstName, lastName string) (employee.Employee, bool, error) {
	return e.findOne(ctx, selectByNameQuery, firstName, lastName)
}

// FindByNameNamed implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) FindByNameNamed(ctx context.Context, firstName, lastName string) (employee.Employee, bool, error) {
	values := []any{firstName, lastName}
	args := pgx.NamedArgs{}
	for i, name := range selectByNameNamedParams {
		args[name] = values[i]
	}
	return e.findOne(ctx, selectByNameNamedQuery, args)
}

// FindByNameNative implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) FindByNameNative(ctx context.Context, firstName, lastName string) (employee.Employee, bool, error) {
	return e.findOne(ctx, nativeByNameQuery, firstName, lastName)
}

// FindByNameNativeNamed implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) FindByNameNativeNamed(ctx context.Context, firstName, lastName string) (employee.Employee, bool, error) {
	return e.findOne(ctx, nativeByNameNamedQuery, pgx.NamedArgs{
		"first_name": firstName,
		"last_name":  lastName,
	})
}

func (e *employeeRepositoryImpl) findOne(ctx context.Context, query string, args ...any) (employee.Employee, bool, error) {
	q := GetQuerier(ctx, e.db)

	found, err := scanEmployee(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, false, nil
		}
		return employee.Employee{}, false, fmt.Errorf("failed to get employee: %w", err)
	}
	return found, true, nil
}

// scanEmployee reads a row in schema.Employees column order.
func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.PhoneNumber, &emp.Gender,
		&emp.DateOfBirth, &emp.HireDate, &emp.JobTitle, &emp.Department, &emp.Salary,
		&emp.Address, &emp.City, &emp.State, &emp.PostalCode, &emp.Country, &emp.MaritalStatus,
		&emp.EmergencyContactName, &emp.EmergencyContactPhone, &emp.HireSource, &emp.EmploymentStatus,
	)
	return emp, err
}

// insertArgs lists every non-identity column value in schema order.
func insertArgs(emp employee.Employee) []any {
	return []any{
		emp.FirstName, emp.LastName, emp.Email, emp.PhoneNumber, emp.Gender,
		emp.DateOfBirth, emp.HireDate, emp.JobTitle, emp.Department, emp.Salary,
		emp.Address, emp.City, emp.State, emp.PostalCode, emp.Country, emp.MaritalStatus,
		emp.EmergencyContactName, emp.EmergencyContactPhone, emp.HireSource, emp.EmploymentStatus,
	}
}

func isEmailConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == pgUniqueViolation &&
		pgErr.ConstraintName == schema.EmployeeEmailConstraint
}
