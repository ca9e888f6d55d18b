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

package types

import (
	"sort"

	"github.com/uptrace/bun"
)

// Filter narrows a read, count, or delete scope to a subset of rows.
// A nil Filter matches every row.
type Filter interface {
	Apply(q *bun.SelectQuery) *bun.SelectQuery
}

// Fields is the exact-match form of Filter: each column/value pair becomes
// an equality condition and all pairs are ANDed together. An empty map
// matches every row. Keys are applied in sorted order so generated SQL is
// deterministic.
type Fields map[string]interface{}

func (f Fields) Apply(q *bun.SelectQuery) *bun.SelectQuery {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		q = q.Where("? = ?", bun.Ident(k), f[k])
	}
	return q
}

// Query is the escape hatch beyond exact-match equality: the function
// receives the in-progress select query and returns a modified one, so
// comparisons, ORs, joins, and ordering stay expressible without this
// package knowing about them.
type Query func(q *bun.SelectQuery) *bun.SelectQuery

func (fn Query) Apply(q *bun.SelectQuery) *bun.SelectQuery { return fn(q) }

// ApplyFilter applies filter to q, treating nil as match-all.
func ApplyFilter(q *bun.SelectQuery, filter Filter) *bun.SelectQuery {
	if filter == nil {
		return q
	}
	return filter.Apply(q)
}
