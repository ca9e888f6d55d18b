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

package bunrepo

import (
	"context"
	"sync"

	"github.com/cubos/bunrepo/database"
	"github.com/cubos/bunrepo/repository"
	"github.com/cubos/bunrepo/types"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Service fronts a generic repository with the same operations, bound
// lazily to the package-level database connection.
type Service[T any, PT types.Record[T]] interface {
	// Get returns the record with the given id, or nil when absent.
	Get(ctx context.Context, id uuid.UUID) (PT, error)

	// All returns every record in the table.
	All(ctx context.Context) ([]PT, error)

	// Find returns all records matching the filter.
	Find(ctx context.Context, filter types.Filter) ([]PT, error)

	// FindOne returns the first record matching the filter, or nil.
	FindOne(ctx context.Context, filter types.Filter) (PT, error)

	// Page returns one page of the filtered record set.
	Page(ctx context.Context, req *types.PageRequest) (*types.Page[T], error)

	// Count returns the number of records matching the filter.
	Count(ctx context.Context, filter types.Filter) (int, error)

	// Save persists a new record.
	Save(ctx context.Context, record PT) (PT, error)

	// SaveAll persists records as one batch sharing a creation timestamp.
	SaveAll(ctx context.Context, records ...PT) ([]PT, error)

	// Update modifies an existing record, refreshing updated_at.
	Update(ctx context.Context, record PT) (PT, error)

	// Remove deletes a record by id and returns its snapshot.
	Remove(ctx context.Context, id uuid.UUID) (PT, error)

	// RemoveBy deletes all matching records and returns their snapshots.
	RemoveBy(ctx context.Context, filter types.Filter) ([]PT, error)

	// Truncate empties the table.
	Truncate(ctx context.Context) error

	// WithTx returns a service whose calls run inside tx.
	WithTx(tx bun.Tx) Service[T, PT]

	// Repository exposes the underlying repository for advanced use.
	Repository() repository.Repository[T, PT]

	// SelectBuilder returns a Bun select query builder.
	SelectBuilder() *bun.SelectQuery

	// InsertBuilder returns a Bun insert query builder.
	InsertBuilder() *bun.InsertQuery

	// UpdateBuilder returns a Bun update query builder.
	UpdateBuilder() *bun.UpdateQuery

	// DeleteBuilder returns a Bun delete query builder.
	DeleteBuilder() *bun.DeleteQuery
}

type baseServiceImpl[T any, PT types.Record[T]] struct {
	repo repository.Repository[T, PT]
	once sync.Once
}

// NewService returns a Service backed by the package-level database
// connection, resolved on first use.
func NewService[T any, PT types.Record[T]]() Service[T, PT] {
	return &baseServiceImpl[T, PT]{}
}

// NewServiceWithDB returns a Service bound to the given connection or
// transaction handle.
func NewServiceWithDB[T any, PT types.Record[T]](db bun.IDB) Service[T, PT] {
	s := &baseServiceImpl[T, PT]{}
	s.once.Do(func() { s.repo = repository.NewRepository[T, PT](db) })
	return s
}

func (s *baseServiceImpl[T, PT]) baseRepo() repository.Repository[T, PT] {
	s.once.Do(func() { s.repo = repository.NewRepository[T, PT](database.GetDB()) })
	return s.repo
}

func (s *baseServiceImpl[T, PT]) Get(ctx context.Context, id uuid.UUID) (PT, error) {
	return s.baseRepo().Get(ctx, id)
}

func (s *baseServiceImpl[T, PT]) All(ctx context.Context) ([]PT, error) {
	return s.baseRepo().FindAll(ctx)
}

func (s *baseServiceImpl[T, PT]) Find(ctx context.Context, filter types.Filter) ([]PT, error) {
	return s.baseRepo().FindBy(ctx, filter)
}

func (s *baseServiceImpl[T, PT]) FindOne(ctx context.Context, filter types.Filter) (PT, error) {
	return s.baseRepo().FindOneBy(ctx, filter)
}

func (s *baseServiceImpl[T, PT]) Page(ctx context.Context, req *types.PageRequest) (*types.Page[T], error) {
	return s.baseRepo().FindAllPaginated(ctx, req)
}

func (s *baseServiceImpl[T, PT]) Count(ctx context.Context, filter types.Filter) (int, error) {
	return s.baseRepo().Count(ctx, filter)
}

func (s *baseServiceImpl[T, PT]) Save(ctx context.Context, record PT) (PT, error) {
	return s.baseRepo().Insert(ctx, record)
}

func (s *baseServiceImpl[T, PT]) SaveAll(ctx context.Context, records ...PT) ([]PT, error) {
	return s.baseRepo().InsertAll(ctx, records...)
}

func (s *baseServiceImpl[T, PT]) Update(ctx context.Context, record PT) (PT, error) {
	return s.baseRepo().Update(ctx, record)
}

func (s *baseServiceImpl[T, PT]) Remove(ctx context.Context, id uuid.UUID) (PT, error) {
	return s.baseRepo().Delete(ctx, id)
}

func (s *baseServiceImpl[T, PT]) RemoveBy(ctx context.Context, filter types.Filter) ([]PT, error) {
	return s.baseRepo().DeleteBy(ctx, filter)
}

func (s *baseServiceImpl[T, PT]) Truncate(ctx context.Context) error {
	return s.baseRepo().Truncate(ctx)
}

func (s *baseServiceImpl[T, PT]) WithTx(tx bun.Tx) Service[T, PT] {
	txService := &baseServiceImpl[T, PT]{}
	repo := s.baseRepo().WithTx(tx)
	txService.once.Do(func() { txService.repo = repo })
	return txService
}

func (s *baseServiceImpl[T, PT]) Repository() repository.Repository[T, PT] {
	return s.baseRepo()
}

func (s *baseServiceImpl[T, PT]) SelectBuilder() *bun.SelectQuery {
	return s.baseRepo().NewSelect()
}

func (s *baseServiceImpl[T, PT]) InsertBuilder() *bun.InsertQuery {
	return s.baseRepo().NewInsert()
}

func (s *baseServiceImpl[T, PT]) UpdateBuilder() *bun.UpdateQuery {
	return s.baseRepo().NewUpdate()
}

func (s *baseServiceImpl[T, PT]) DeleteBuilder() *bun.DeleteQuery {
	return s.baseRepo().NewDelete()
}
