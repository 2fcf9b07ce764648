package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_Build_PostgresPositional(t *testing.T) {
	q, params, err := Employees.Select(Postgres).
		WhereEq(FieldFirstName, FieldLastName).
		OrderBy(FieldID).
		Limit(1).
		Build()

	require.NoError(t, err)
	assert.Equal(t, "SELECT "+Employees.SelectList()+" FROM employees WHERE first_name = $1 AND last_name = $2 ORDER BY id LIMIT 1", q)
	assert.Equal(t, []string{"first_name", "last_name"}, params)
}

func TestSelect_Build_PostgresNamed(t *testing.T) {
	q, params, err := Employees.Select(Postgres).
		Bind(Named).
		WhereEq(FieldFirstName, FieldLastName).
		Build()

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(q, "WHERE first_name = @first_name AND last_name = @last_name"), q)
	assert.Equal(t, []string{"first_name", "last_name"}, params)
}

func TestSelect_Build_SQLite(t *testing.T) {
	positional, _, err := Employees.Select(SQLite).WhereEq(FieldEmail).Build()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(positional, "WHERE email = ?"), positional)

	named, _, err := Employees.Select(SQLite).Bind(Named).WhereEq(FieldEmail).Build()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(named, "WHERE email = :email"), named)
}

func TestSelect_Build_UnknownField(t *testing.T) {
	_, _, err := Employees.Select(Postgres).WhereEq("nickname").Build()
	assert.Error(t, err)

	_, _, err = Employees.Select(Postgres).OrderBy("nickname").Build()
	assert.Error(t, err)

	assert.Panics(t, func() {
		Employees.Select(Postgres).WhereEq("nickname").MustBuild()
	})
}

func TestSelect_Build_NoConditions(t *testing.T) {
	q, params, err := Employees.Select(SQLite).OrderBy(FieldID).Build()
	require.NoError(t, err)
	assert.Equal(t, "SELECT "+Employees.SelectList()+" FROM employees ORDER BY id", q)
	assert.Empty(t, params)
}

func TestTable_Column(t *testing.T) {
	c, ok := Employees.Column(FieldPostalCode)
	require.True(t, ok)
	assert.Equal(t, "postal_code", c.Name)

	_, ok = Employees.Column("postal_code")
	assert.False(t, ok, "lookup is by logical field, not physical name")
}

func TestTable_CreateTableSQL(t *testing.T) {
	pg := Employees.CreateTableSQL(Postgres)
	assert.Contains(t, pg, "CREATE TABLE IF NOT EXISTS employees (")
	assert.Contains(t, pg, "id BIGINT GENERATED BY DEFAULT AS IDENTITY PRIMARY KEY,")
	assert.Contains(t, pg, "email VARCHAR(255) NOT NULL UNIQUE,")
	assert.Contains(t, pg, "employment_status VARCHAR(32) NOT NULL\n)")

	lite := Employees.CreateTableSQL(SQLite)
	assert.Contains(t, lite, "id INTEGER PRIMARY KEY AUTOINCREMENT,")
	assert.Contains(t, lite, "email TEXT NOT NULL UNIQUE,")
	assert.NotContains(t, lite, "id INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL")
}

func TestTable_InsertSQL(t *testing.T) {
	pg := Employees.InsertSQL(Postgres)
	assert.True(t, strings.HasPrefix(pg, "INSERT INTO employees (first_name, last_name, email,"), pg)
	assert.Contains(t, pg, "$20)")
	assert.NotContains(t, pg, "$21")
	assert.True(t, strings.HasSuffix(pg, "RETURNING "+Employees.SelectList()), pg)

	lite := Employees.InsertSQL(SQLite)
	assert.Equal(t, 20, strings.Count(lite, "?"))
}

func TestTable_UpsertSQL(t *testing.T) {
	pg := Employees.UpsertSQL(Postgres)
	assert.True(t, strings.HasPrefix(pg, "INSERT INTO employees (id, first_name,"), pg)
	assert.Contains(t, pg, "$21)")
	assert.Contains(t, pg, "ON CONFLICT (id) DO UPDATE SET first_name = excluded.first_name,")
	assert.NotContains(t, pg, "id = excluded.id")

	lite := Employees.UpsertSQL(SQLite)
	assert.Equal(t, 21, strings.Count(lite, "?"))
}

func TestDialect_String(t *testing.T) {
	assert.Equal(t, "postgres", Postgres.String())
	assert.Equal(t, "sqlite", SQLite.String())
	assert.Equal(t, "unknown", Dialect(42).String())
}
