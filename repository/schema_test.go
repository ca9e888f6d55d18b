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

package repository_test

import (
	"context"
	"testing"

	"github.com/cubos/bunrepo/database"
	"github.com/cubos/bunrepo/repository"
	"github.com/cubos/bunrepo/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

// WideAccount maps the accounts table after a status column was added.
type WideAccount struct {
	bun.BaseModel `bun:"table:accounts,alias:account"`
	types.Model

	Name   string `bun:"name,notnull"`
	Status string `bun:"status"`
}

func TestCreateTableIsIdempotentWithIfNotExists(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	opts := &repository.CreateTableOptions{IfNotExists: true}

	define := func(tb *repository.TableBuilder) {
		tb.Column("name", "varchar(255)").NotNull()
		tb.Column("email", "varchar(255)")
		tb.Column("balance", "bigint")
		tb.Column("attrs", "text")
	}
	require.NoError(t, repository.CreateTable(ctx, db, "accounts", opts, define))
	require.NoError(t, repository.CreateTable(ctx, db, "accounts", opts, define))
	t.Cleanup(func() { _ = repository.DropTable(ctx, db, "accounts") })

	repo := repository.NewRepository[Account, *Account](db)
	saved, err := repo.Insert(ctx, &Account{Name: "first"})
	require.NoError(t, err)
	assert.NotNil(t, saved)
}

func TestDropTableRemovesTable(t *testing.T) {
	db := newTestDB(t)
	createAccountsTable(t, db)
	ctx := context.Background()

	require.NoError(t, repository.DropTable(ctx, db, "accounts"))
	// Dropping a missing table is a no-op.
	require.NoError(t, repository.DropTable(ctx, db, "accounts"))

	repo := repository.NewRepository[Account, *Account](db)
	_, err := repo.FindAll(ctx)
	require.Error(t, err)
	known, kind := database.IsSQLError(err)
	assert.True(t, known)
	assert.Equal(t, database.NoTableErr, kind)
}

func TestAlterTableAddColumnWithDefault(t *testing.T) {
	db := newTestDB(t)
	createAccountsTable(t, db)
	ctx := context.Background()

	repo := repository.NewRepository[Account, *Account](db)
	saved, err := repo.Insert(ctx, &Account{Name: "pre-existing"})
	require.NoError(t, err)

	err = repository.AlterTable(ctx, db, "accounts", func(tb *repository.TableBuilder) {
		tb.Column("status", "varchar(32)").NotNull().Default("'active'")
	})
	require.NoError(t, err)

	// The default is visible on rows inserted before the alter.
	wide := repository.NewRepository[WideAccount, *WideAccount](db)
	fetched, err := wide.Get(ctx, saved.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	assert.Equal(t, "pre-existing", fetched.Name)
	assert.Equal(t, "active", fetched.Status)
}

func TestAlterTableDropColumn(t *testing.T) {
	db := newTestDB(t)
	createAccountsTable(t, db)
	ctx := context.Background()

	err := repository.AlterTable(ctx, db, "accounts", func(tb *repository.TableBuilder) {
		tb.Column("status", "varchar(32)").Default("'new'")
	})
	require.NoError(t, err)

	err = repository.AlterTable(ctx, db, "accounts", func(tb *repository.TableBuilder) {
		tb.DropColumn("status")
		tb.DropColumn("attrs")
	})
	require.NoError(t, err)

	var count int
	err = db.NewSelect().
		TableExpr("pragma_table_info(?)", "accounts").
		ColumnExpr("count(*)").
		Where("name IN (?)", bun.In([]string{"status", "attrs"})).
		Scan(ctx, &count)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
