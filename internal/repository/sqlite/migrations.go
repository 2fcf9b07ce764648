package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/cmlabs-hris/employee-service/internal/repository/schema"
)

// Migrate creates the schema tables if they do not exist.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema.Employees.CreateTableSQL(schema.SQLite)); err != nil {
		return fmt.Errorf("create table %s: %w", schema.Employees.Name, err)
	}
	return nil
}
