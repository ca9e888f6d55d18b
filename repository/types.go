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

	"github.com/cubos/bunrepo/types"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"
)

// CrudRepository defines the write operations and the id-based read for a
// record type.
type CrudRepository[T any, PT types.Record[T]] interface {
	// Insert persists record, generating an id when absent and stamping
	// created_at/updated_at with one "now". The persisted record is returned.
	Insert(ctx context.Context, record PT) (PT, error)

	// InsertAll persists records in order, sharing a single timestamp pair
	// across the batch while each row gets its own generated id.
	InsertAll(ctx context.Context, records ...PT) ([]PT, error)

	// Get returns the record with the given id, or nil when absent.
	Get(ctx context.Context, id uuid.UUID) (PT, error)

	// Update overwrites the stored row identified by the record id and
	// refreshes updated_at; id and created_at never change. Zero-valued
	// fields are treated as absent. Returns ErrNoResult when the id does
	// not exist.
	Update(ctx context.Context, record PT) (PT, error)

	// Delete removes the record with the given id and returns its
	// pre-deletion snapshot, or ErrNoResult when the id does not exist.
	Delete(ctx context.Context, id uuid.UUID) (PT, error)

	// DeleteBy removes every matching record and returns their snapshots;
	// an empty result is not an error.
	DeleteBy(ctx context.Context, filter types.Filter) ([]PT, error)

	// Truncate unconditionally empties the table.
	Truncate(ctx context.Context) error
}

// FinderRepository defines the filtered read operations.
type FinderRepository[T any, PT types.Record[T]] interface {
	// FindOneBy returns the first matching record or nil when none match.
	FindOneBy(ctx context.Context, filter types.Filter) (PT, error)

	// FindBy returns all matching records.
	FindBy(ctx context.Context, filter types.Filter) ([]PT, error)

	// FindAll returns every record in the table.
	FindAll(ctx context.Context) ([]PT, error)

	// FindAllPaginated returns one page of the filtered set together with
	// the pre-pagination row count and the derived page count.
	FindAllPaginated(ctx context.Context, req *types.PageRequest) (*types.Page[T], error)

	// Count returns the number of matching rows.
	Count(ctx context.Context, filter types.Filter) (int, error)
}

// Repository combines CRUD and finder operations, exposes Bun query
// builders for advanced use, and can be rebound to an active transaction.
//
// Reads carry no implicit ordering: rows come back in whatever order the
// storage engine chose unless a Query filter adds an ORDER BY.
type Repository[T any, PT types.Record[T]] interface {
	CrudRepository[T, PT]
	FinderRepository[T, PT]

	// WithTx returns a repository bound to tx with the same table binding,
	// so several calls can participate in one caller-managed transaction.
	WithTx(tx bun.Tx) Repository[T, PT]

	Dialect() schema.Dialect
	NewSelect() *bun.SelectQuery
	NewInsert() *bun.InsertQuery
	NewUpdate() *bun.UpdateQuery
	NewDelete() *bun.DeleteQuery
}
