package employee

import "context"

// EmployeeRepository is the persistence contract for Employee.
//
// Lookups return found == false with a nil error when no record matches.
// The four FindByName variants are interchangeable: they differ only in how
// the query is expressed (structured from the schema or raw SQL) and how
// parameters are bound (positional or named). When several employees share
// a name the one with the lowest ID is returned.
type EmployeeRepository interface {
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, bool, error)
	GetByEmail(ctx context.Context, email string) (Employee, bool, error)
	// Update writes every field of e under e.ID, inserting the row if it does not exist.
	Update(ctx context.Context, e Employee) (Employee, error)
	// Delete is a no-op for unknown ids.
	Delete(ctx context.Context, id int64) error

	FindByName(ctx context.Context, firstName, lastName string) (Employee, bool, error)
	FindByNameNamed(ctx context.Context, firstName, lastName string) (Employee, bool, error)
	FindByNameNative(ctx context.Context, firstName, lastName string) (Employee, bool, error)
	FindByNameNativeNamed(ctx context.Context, firstName, lastName string) (Employee, bool, error)
}
