package postgresql

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/employee-service/internal/pkg/database"
	"github.com/cmlabs-hris/employee-service/internal/repository/schema"
	"github.com/jackc/pgx/v5"
)

// Migrate creates the tables described by the schema package if they do not exist.
func Migrate(ctx context.Context, db *database.DB) error {
	return WithTransaction(ctx, db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, schema.Employees.CreateTableSQL(schema.Postgres)); err != nil {
			return fmt.Errorf("create table %s: %w", schema.Employees.Name, err)
		}
		return nil
	})
}
