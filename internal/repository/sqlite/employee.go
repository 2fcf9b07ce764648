package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/employee-service/internal/domain/employee"
	"github.com/cmlabs-hris/employee-service/internal/repository/schema"
	"github.com/mattn/go-sqlite3"
)

const dateLayout = "2006-01-02"

var (
	selectAllQuery, _ = schema.Employees.Select(schema.SQLite).
		OrderBy(schema.FieldID).
		MustBuild()
	selectByIDQuery, _ = schema.Employees.Select(schema.SQLite).
		WhereEq(schema.FieldID).
		MustBuild()
	selectByEmailQuery, _ = schema.Employees.Select(schema.SQLite).
		WhereEq(schema.FieldEmail).
		MustBuild()
	selectByNameQuery, _ = schema.Employees.Select(schema.SQLite).
		WhereEq(schema.FieldFirstName, schema.FieldLastName).
		OrderBy(schema.FieldID).
		Limit(1).
		MustBuild()
	selectByNameNamedQuery, selectByNameNamedParams = schema.Employees.Select(schema.SQLite).
		Bind(schema.Named).
		WhereEq(schema.FieldFirstName, schema.FieldLastName).
		OrderBy(schema.FieldID).
		Limit(1).
		MustBuild()
	insertQuery = schema.Employees.InsertSQL(schema.SQLite)
	upsertQuery = schema.Employees.UpsertSQL(schema.SQLite)
)

const (
	nativeByNameQuery = `
		SELECT id, first_name, last_name, email, phone_number, gender,
			date_of_birth, hire_date, job_title, department, salary,
			address, city, state, postal_code, country, marital_status,
			emergency_contact_name, emergency_contact_phone, hire_source, employment_status
		FROM employees
		WHERE first_name = ? AND last_name = ?
		ORDER BY id
		LIMIT 1
	`
	nativeByNameNamedQuery = `
		SELECT id, first_name, last_name, email, phone_number, gender,
			date_of_birth, hire_date, job_title, department, salary,
			address, city, state, postal_code, country, marital_status,
			emergency_contact_name, emergency_contact_phone, hire_source, employment_status
		FROM employees
		WHERE first_name = :first_name AND last_name = :last_name
		ORDER BY id
		LIMIT 1
	`
	deleteQuery = `DELETE FROM employees WHERE id = ?`
)

type SqliteEmployeeRepo struct {
	db *sql.DB
}

func NewSqliteEmployeeRepo(db *sql.DB) *SqliteEmployeeRepo {
	return &SqliteEmployeeRepo{db: db}
}

var _ employee.EmployeeRepository = (*SqliteEmployeeRepo)(nil)

func (r *SqliteEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	created, err := scanEmployee(r.db.QueryRowContext(ctx, insertQuery, insertArgs(newEmployee)...))
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}
	return created, nil
}

func (r *SqliteEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	rows, err := r.db.QueryContext(ctx, selectAllQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := make([]employee.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *SqliteEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, bool, error) {
	return r.findOne(ctx, selectByIDQuery, id)
}

func (r *SqliteEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, bool, error) {
	return r.findOne(ctx, selectByEmailQuery, email)
}

func (r *SqliteEmployeeRepo) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	args := append([]any{e.ID}, insertArgs(e)...)
	updated, err := scanEmployee(r.db.QueryRowContext(ctx, upsertQuery, args...))
	if err != nil {
		if isUniqueViolation(err) {
			return employee.Employee{}, employee.ErrEmailExists
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee with id %d: %w", e.ID, err)
	}
	return updated, nil
}

func (r *SqliteEmployeeRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, deleteQuery, id); err != nil {
		return fmt.Errorf("failed to delete employee with id %d: %w", id, err)
	}
	return nil
}

func (r *SqliteEmployeeRepo) FindByName(ctx context.Context, firstName, lastName string) (employee.Employee, bool, error) {
	return r.findOne(ctx, selectByNameQuery, firstName, lastName)
}

func (r *SqliteEmployeeRepo) FindByNameNamed(ctx context.Context, firstName, lastName string) (employee.Employee, bool, error) {
	values := []string{firstName, lastName}
	args := make([]any, len(selectByNameNamedParams))
	for i, name := range selectByNameNamedParams {
		args[i] = sql.Named(name, values[i])
	}
	return r.findOne(ctx, selectByNameNamedQuery, args...)
}

func (r *SqliteEmployeeRepo) FindByNameNative(ctx context.Context, firstName, lastName string) (employee.Employee, bool, error) {
	return r.findOne(ctx, nativeByNameQuery, firstName, lastName)
}

func (r *SqliteEmployeeRepo) FindByNameNativeNamed(ctx context.Context, firstName, lastName string) (employee.Employee, bool, error) {
	return r.findOne(ctx, nativeByNameNamedQuery,
		sql.Named("first_name", firstName),
		sql.Named("last_name", lastName),
	)
}

func (r *SqliteEmployeeRepo) findOne(ctx context.Context, query string, args ...any) (employee.Employee, bool, error) {
	found, err := scanEmployee(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return employee.Employee{}, false, nil
		}
		return employee.Employee{}, false, fmt.Errorf("failed to get employee: %w", err)
	}
	return found, true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanEmployee reads a row in schema.Employees column order. Dates are stored as YYYY-MM-DD text.
func scanEmployee(row rowScanner) (employee.Employee, error) {
	var e employee.Employee
	var dob, hireDate string
	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &e.PhoneNumber, &e.Gender,
		&dob, &hireDate, &e.JobTitle, &e.Department, &e.Salary,
		&e.Address, &e.City, &e.State, &e.PostalCode, &e.Country, &e.MaritalStatus,
		&e.EmergencyContactName, &e.EmergencyContactPhone, &e.HireSource, &e.EmploymentStatus,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	if e.DateOfBirth, err = time.Parse(dateLayout, dob); err != nil {
		return employee.Employee{}, fmt.Errorf("invalid date_of_birth %q: %w", dob, err)
	}
	if e.HireDate, err = time.Parse(dateLayout, hireDate); err != nil {
		return employee.Employee{}, fmt.Errorf("invalid hire_date %q: %w", hireDate, err)
	}
	return e, nil
}

func insertArgs(e employee.Employee) []any {
	return []any{
		e.FirstName, e.LastName, e.Email, e.PhoneNumber, string(e.Gender),
		e.DateOfBirth.Format(dateLayout), e.HireDate.Format(dateLayout), e.JobTitle, e.Department, e.Salary.String(),
		e.Address, e.City, e.State, e.PostalCode, e.Country, string(e.MaritalStatus),
		e.EmergencyContactName, e.EmergencyContactPhone, string(e.HireSource), string(e.EmploymentStatus),
	}
}

// isUniqueViolation reports a UNIQUE failure. email is the only unique data column.
func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}
