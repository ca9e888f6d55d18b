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
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cubos/bunrepo/types"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"
)

type baseRepositoryImpl[T any, PT types.Record[T]] struct {
	db    bun.IDB
	table string
}

// NewRepository returns a repository bound to db. The table and alias come
// from the model's bun tags.
func NewRepository[T any, PT types.Record[T]](db bun.IDB) Repository[T, PT] {
	return &baseRepositoryImpl[T, PT]{db: db}
}

// NewRepositoryForTable returns a repository bound to db and an explicit
// table name, overriding the model's bun table tag.
func NewRepositoryForTable[T any, PT types.Record[T]](db bun.IDB, table string) Repository[T, PT] {
	return &baseRepositoryImpl[T, PT]{db: db, table: table}
}

func (r *baseRepositoryImpl[T, PT]) WithTx(tx bun.Tx) Repository[T, PT] {
	return &baseRepositoryImpl[T, PT]{db: tx, table: r.table}
}

func (r *baseRepositoryImpl[T, PT]) Dialect() schema.Dialect { return r.db.Dialect() }

func (r *baseRepositoryImpl[T, PT]) NewSelect() *bun.SelectQuery { return r.db.NewSelect() }

func (r *baseRepositoryImpl[T, PT]) NewInsert() *bun.InsertQuery { return r.db.NewInsert() }

func (r *baseRepositoryImpl[T, PT]) NewUpdate() *bun.UpdateQuery { return r.db.NewUpdate() }

func (r *baseRepositoryImpl[T, PT]) NewDelete() *bun.DeleteQuery { return r.db.NewDelete() }

func (r *baseRepositoryImpl[T, PT]) selectModel(model interface{}) *bun.SelectQuery {
	q := r.db.NewSelect().Model(model)
	if r.table != "" {
		q = q.ModelTableExpr("? AS ?TableAlias", bun.Ident(r.table))
	}
	return q
}

func (r *baseRepositoryImpl[T, PT]) insertModel(model interface{}) *bun.InsertQuery {
	q := r.db.NewInsert().Model(model)
	if r.table != "" {
		q = q.ModelTableExpr("?", bun.Ident(r.table))
	}
	return q
}

func (r *baseRepositoryImpl[T, PT]) updateModel(model interface{}) *bun.UpdateQuery {
	q := r.db.NewUpdate().Model(model)
	if r.table != "" {
		q = q.ModelTableExpr("? AS ?TableAlias", bun.Ident(r.table))
	}
	return q
}

func (r *baseRepositoryImpl[T, PT]) deleteModel(model interface{}) *bun.DeleteQuery {
	q := r.db.NewDelete().Model(model)
	if r.table != "" {
		q = q.ModelTableExpr("? AS ?TableAlias", bun.Ident(r.table))
	}
	return q
}

// stamp assigns a generated id when absent and sets both timestamps to now.
func (r *baseRepositoryImpl[T, PT]) stamp(record PT, now time.Time) {
	if record.GetID() == uuid.Nil {
		record.SetID(uuid.New())
	}
	record.SetCreatedAt(now)
	record.SetUpdatedAt(now)
}

func (r *baseRepositoryImpl[T, PT]) Insert(ctx context.Context, record PT) (PT, error) {
	var zero PT
	r.stamp(record, time.Now())
	if _, err := r.insertModel(record).Exec(ctx); err != nil {
		return zero, err
	}
	return record, nil
}

func (r *baseRepositoryImpl[T, PT]) InsertAll(ctx context.Context, records ...PT) ([]PT, error) {
	if len(records) == 0 {
		return []PT{}, nil
	}
	// One "now" for the whole batch, one generated id per row.
	now := time.Now()
	for _, record := range records {
		r.stamp(record, now)
	}
	if _, err := r.insertModel(&records).Exec(ctx); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *baseRepositoryImpl[T, PT]) Get(ctx context.Context, id uuid.UUID) (PT, error) {
	return r.FindOneBy(ctx, types.Fields{"id": id})
}

func (r *baseRepositoryImpl[T, PT]) FindOneBy(ctx context.Context, filter types.Filter) (PT, error) {
	var zero PT
	var entity T
	err := types.ApplyFilter(r.selectModel(&entity), filter).Limit(1).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, nil
	}
	if err != nil {
		return zero, err
	}
	return PT(&entity), nil
}

func (r *baseRepositoryImpl[T, PT]) FindBy(ctx context.Context, filter types.Filter) ([]PT, error) {
	entities := make([]PT, 0)
	if err := types.ApplyFilter(r.selectModel(&entities), filter).Scan(ctx); err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *baseRepositoryImpl[T, PT]) FindAll(ctx context.Context) ([]PT, error) {
	return r.FindBy(ctx, nil)
}

func (r *baseRepositoryImpl[T, PT]) FindAllPaginated(ctx context.Context, req *types.PageRequest) (*types.Page[T], error) {
	if req == nil {
		req = types.NewDefaultPageRequest(types.DefaultPage, types.DefaultPageSize)
	}
	page := types.NewEmptyPage[T](req.GetPage(), req.GetPageSize())
	entities := make([]*T, 0)
	query := types.ApplyFilter(r.selectModel(&entities), req.GetFilter())
	total, err := query.Count(ctx)
	if err != nil || total == 0 {
		return page, err
	}
	err = query.
		Offset(req.GetOffset()).
		Limit(req.GetPageSize()).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	page.Data = entities
	page.RowCount = total
	page.PageCount = (total + req.GetPageSize() - 1) / req.GetPageSize()
	return page, nil
}

func (r *baseRepositoryImpl[T, PT]) Count(ctx context.Context, filter types.Filter) (int, error) {
	return types.ApplyFilter(r.selectModel((*T)(nil)), filter).Count(ctx)
}

func (r *baseRepositoryImpl[T, PT]) Update(ctx context.Context, record PT) (PT, error) {
	var zero PT
	id := record.GetID()
	if id == uuid.Nil {
		return zero, fmt.Errorf("%w: record has no id", ErrNoResult)
	}
	record.SetUpdatedAt(time.Now())
	res, err := r.updateModel(record).
		WherePK().
		OmitZero().
		ExcludeColumn("created_at").
		Exec(ctx)
	if err != nil {
		return zero, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return zero, fmt.Errorf("%w: id %s", ErrNoResult, id)
	}
	return r.Get(ctx, id)
}

func (r *baseRepositoryImpl[T, PT]) Delete(ctx context.Context, id uuid.UUID) (PT, error) {
	var zero PT
	record, err := r.Get(ctx, id)
	if err != nil {
		return zero, err
	}
	if record == nil {
		return zero, fmt.Errorf("%w: id %s", ErrNoResult, id)
	}
	if _, err := r.deleteModel(record).WherePK().Exec(ctx); err != nil {
		return zero, err
	}
	return record, nil
}

func (r *baseRepositoryImpl[T, PT]) DeleteBy(ctx context.Context, filter types.Filter) ([]PT, error) {
	records, err := r.FindBy(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return records, nil
	}
	if _, err := r.deleteModel(&records).WherePK().Exec(ctx); err != nil {
		return nil, err
	}
	return records, nil
}

func (r *baseRepositoryImpl[T, PT]) Truncate(ctx context.Context) error {
	var err error
	if r.table != "" {
		_, err = r.db.NewTruncateTable().TableExpr("?", bun.Ident(r.table)).Exec(ctx)
	} else {
		_, err = r.db.NewTruncateTable().Model((*T)(nil)).Exec(ctx)
	}
	return err
}
