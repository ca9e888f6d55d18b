/*
 * Copyright 2025 cubos.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
)

// Column is a single column definition collected by a TableBuilder callback.
type Column struct {
	name    string
	sqlType string
	notNull bool
	def     string
}

// NotNull marks the column NOT NULL.
func (c *Column) NotNull() *Column {
	c.notNull = true
	return c
}

// Default sets the column default to the given SQL expression. The
// expression is emitted verbatim, so string literals need their quotes.
func (c *Column) Default(expr string) *Column {
	c.def = expr
	return c
}

// TableBuilder collects the caller-defined columns inside CreateTable and
// AlterTable callbacks.
type TableBuilder struct {
	add  []*Column
	drop []string
}

// Column appends a column definition and returns it for chaining.
func (t *TableBuilder) Column(name, sqlType string) *Column {
	c := &Column{name: name, sqlType: sqlType}
	t.add = append(t.add, c)
	return c
}

// DropColumn schedules a column removal; it only has effect in AlterTable.
func (t *TableBuilder) DropColumn(name string) {
	t.drop = append(t.drop, name)
}

// CreateTableOptions tunes CreateTable. The zero value creates the table
// unconditionally with a uuid-typed id column.
type CreateTableOptions struct {
	// IDType is the storage type of the id primary key, "uuid" by default.
	IDType string
	// IfNotExists makes the statement a no-op when the table exists.
	IfNotExists bool
}

// CreateTable creates a table whose first three columns are always id
// (primary key), created_at, and updated_at (both NOT NULL, defaulting to
// the engine's current-time function), followed by the columns defined by
// the callback.
func CreateTable(ctx context.Context, db bun.IDB, table string, opts *CreateTableOptions, define func(t *TableBuilder)) error {
	d := db.Dialect().Name()
	idType := ""
	ifNotExists := false
	if opts != nil {
		idType = opts.IDType
		ifNotExists = opts.IfNotExists
	}
	if idType == "" {
		idType = "uuid"
	}

	builder := &TableBuilder{}
	if define != nil {
		define(builder)
	}

	defs := []string{
		fmt.Sprintf("%s %s PRIMARY KEY", quoteIdent(d, "id"), columnType(d, idType)),
		fmt.Sprintf("%s %s NOT NULL DEFAULT %s", quoteIdent(d, "created_at"), columnType(d, "timestamptz"), currentTimestamp(d)),
		fmt.Sprintf("%s %s NOT NULL DEFAULT %s", quoteIdent(d, "updated_at"), columnType(d, "timestamptz"), currentTimestamp(d)),
	}
	for _, c := range builder.add {
		defs = append(defs, columnDef(d, c))
	}

	create := "CREATE TABLE "
	if ifNotExists {
		create = "CREATE TABLE IF NOT EXISTS "
	}
	stmt := create + quoteIdent(d, table) + " (" + strings.Join(defs, ", ") + ")"
	_, err := db.ExecContext(ctx, stmt)
	return err
}

// AlterTable applies the column additions and removals defined by the
// callback, one ALTER TABLE statement per column. Columns added with a
// default become visible, with that default, on pre-existing rows.
func AlterTable(ctx context.Context, db bun.IDB, table string, define func(t *TableBuilder)) error {
	d := db.Dialect().Name()
	builder := &TableBuilder{}
	if define != nil {
		define(builder)
	}
	for _, c := range builder.add {
		stmt := fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s", quoteIdent(d, table), columnDef(d, c))
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	for _, name := range builder.drop {
		stmt := fmt.Sprintf("ALTER TABLE %s DROP COLUMN %s", quoteIdent(d, table), quoteIdent(d, name))
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// DropTable drops the table if it exists.
func DropTable(ctx context.Context, db bun.IDB, table string) error {
	stmt := "DROP TABLE IF EXISTS " + quoteIdent(db.Dialect().Name(), table)
	_, err := db.ExecContext(ctx, stmt)
	return err
}

func columnDef(d dialect.Name, c *Column) string {
	s := quoteIdent(d, c.name) + " " + columnType(d, c.sqlType)
	if c.notNull {
		s += " NOT NULL"
	}
	if c.def != "" {
		s += " DEFAULT " + c.def
	}
	return s
}

// columnType maps the portable uuid/timestamptz names onto each engine;
// anything else passes through verbatim.
func columnType(d dialect.Name, sqlType string) string {
	switch strings.ToLower(sqlType) {
	case "uuid":
		if d == dialect.PG {
			return "uuid"
		}
		return "varchar(36)"
	case "timestamptz":
		switch d {
		case dialect.PG:
			return "timestamptz"
		case dialect.MySQL:
			return "timestamp(6)"
		default:
			return "timestamp"
		}
	}
	return sqlType
}

func currentTimestamp(d dialect.Name) string {
	if d == dialect.MySQL {
		return "current_timestamp(6)"
	}
	return "current_timestamp"
}

func quoteIdent(d dialect.Name, s string) string {
	if d == dialect.MySQL {
		return "`" + strings.ReplaceAll(s, "`", "``") + "`"
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
