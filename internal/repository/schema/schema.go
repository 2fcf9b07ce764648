// Package schema holds the static table definitions shared by the storage
// backends and builds SQL from them. Queries are addressed by logical field
// name and rendered for a dialect.
package schema

import (
	"fmt"
	"strconv"
	"strings"
)

type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

func (d Dialect) String() string {
	switch d {
	case Postgres:
		return "postgres"
	case SQLite:
		return "sqlite"
	}
	return "unknown"
}

// Binding selects how query parameters are referenced.
type Binding int

const (
	Positional Binding = iota
	Named
)

type Column struct {
	Field      string // logical name, e.g. firstName
	Name       string // physical name, e.g. first_name
	Postgres   string
	SQLite     string
	Nullable   bool
	Unique     bool
	PrimaryKey bool
}

func (c Column) typeFor(d Dialect) string {
	if d == SQLite {
		return c.SQLite
	}
	return c.Postgres
}

type Table struct {
	Name    string
	Columns []Column
}

// Column looks up a column by logical field name.
func (t Table) Column(field string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Field == field {
			return c, true
		}
	}
	return Column{}, false
}

func (t Table) primaryKey() Column {
	for _, c := range t.Columns {
		if c.PrimaryKey {
			return c
		}
	}
	return Column{}
}

// ColumnNames lists every physical column in declaration order.
func (t Table) ColumnNames() []string {
	names := make([]string, 0, len(t.Columns))
	for _, c := range t.Columns {
		names = append(names, c.Name)
	}
	return names
}

// SelectList is the comma-separated column list used by SELECT and RETURNING.
func (t Table) SelectList() string {
	return strings.Join(t.ColumnNames(), ", ")
}

// dataColumns are all columns except the primary key.
func (t Table) dataColumns() []Column {
	cols := make([]Column, 0, len(t.Columns))
	for _, c := range t.Columns {
		if !c.PrimaryKey {
			cols = append(cols, c)
		}
	}
	return cols
}

// CreateTableSQL renders an idempotent CREATE TABLE statement.
func (t Table) CreateTableSQL(d Dialect) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", t.Name)
	for i, c := range t.Columns {
		fmt.Fprintf(&b, "    %s %s", c.Name, c.typeFor(d))
		if !c.PrimaryKey && !c.Nullable {
			b.WriteString(" NOT NULL")
		}
		if c.Unique {
			b.WriteString(" UNIQUE")
		}
		if i < len(t.Columns)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(")")
	return b.String()
}

// InsertSQL inserts every data column and returns the stored row.
// The primary key is left to storage.
func (t Table) InsertSQL(d Dialect) string {
	cols := t.dataColumns()
	names := make([]string, len(cols))
	params := make([]string, len(cols))
	for i, c := range cols {
		names[i] = c.Name
		params[i] = placeholder(d, Positional, i+1, c.Name)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		t.Name, strings.Join(names, ", "), strings.Join(params, ", "), t.SelectList())
}

// UpsertSQL writes every column, primary key first, updating the row on an
// identity conflict, and returns the stored row.
func (t Table) UpsertSQL(d Dialect) string {
	pk := t.primaryKey()
	names := t.ColumnNames()
	params := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		params[i] = placeholder(d, Positional, i+1, c.Name)
	}
	sets := make([]string, 0, len(t.Columns)-1)
	for _, c := range t.dataColumns() {
		sets = append(sets, fmt.Sprintf("%s = excluded.%s", c.Name, c.Name))
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s RETURNING %s",
		t.Name, strings.Join(names, ", "), strings.Join(params, ", "), pk.Name,
		strings.Join(sets, ", "), t.SelectList())
}

// Select starts a structured SELECT over every column of t.
func (t Table) Select(d Dialect) *Select {
	return &Select{table: t, dialect: d}
}

// Select is a SELECT with AND-ed equality conditions on logical fields.
type Select struct {
	table   Table
	dialect Dialect
	binding Binding
	where   []string
	orderBy []string
	limit   int
}

func (s *Select) Bind(b Binding) *Select {
	s.binding = b
	return s
}

func (s *Select) WhereEq(fields ...string) *Select {
	s.where = append(s.where, fields...)
	return s
}

func (s *Select) OrderBy(fields ...string) *Select {
	s.orderBy = append(s.orderBy, fields...)
	return s
}

func (s *Select) Limit(n int) *Select {
	s.limit = n
	return s
}

// Build renders the query. params holds the physical column name bound by
// each condition, in order; for named binding these are also the parameter
// names.
func (s *Select) Build() (query string, params []string, err error) {
	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s", s.table.SelectList(), s.table.Name)

	conds := make([]string, 0, len(s.where))
	for i, field := range s.where {
		c, ok := s.table.Column(field)
		if !ok {
			return "", nil, fmt.Errorf("schema: unknown field %q on table %s", field, s.table.Name)
		}
		conds = append(conds, fmt.Sprintf("%s = %s", c.Name, placeholder(s.dialect, s.binding, i+1, c.Name)))
		params = append(params, c.Name)
	}
	if len(conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}

	if len(s.orderBy) > 0 {
		order := make([]string, 0, len(s.orderBy))
		for _, field := range s.orderBy {
			c, ok := s.table.Column(field)
			if !ok {
				return "", nil, fmt.Errorf("schema: unknown field %q on table %s", field, s.table.Name)
			}
			order = append(order, c.Name)
		}
		b.WriteString(" ORDER BY ")
		b.WriteString(strings.Join(order, ", "))
	}

	if s.limit > 0 {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.Itoa(s.limit))
	}

	return b.String(), params, nil
}

// MustBuild is Build for queries fixed at package init.
func (s *Select) MustBuild() (string, []string) {
	q, p, err := s.Build()
	if err != nil {
		panic(err)
	}
	return q, p
}

func placeholder(d Dialect, b Binding, n int, name string) string {
	switch {
	case b == Named && d == SQLite:
		return ":" + name
	case b == Named:
		return "@" + name
	case d == SQLite:
		return "?"
	default:
		return "$" + strconv.Itoa(n)
	}
}
