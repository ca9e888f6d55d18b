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
	"time"

	"github.com/google/uuid"
)

// Model carries the three columns every managed record must have. Embed it
// in a Bun model struct to satisfy the Record constraint:
//
//	type User struct {
//		bun.BaseModel `bun:"table:users,alias:u"`
//		types.Model
//
//		Name string `bun:"name,notnull"`
//	}
//
// The id is assigned by the caller or generated at insert time, and is never
// reassigned. created_at is set once at insert time; updated_at is set at
// insert time and overwritten on every successful update.
type Model struct {
	ID        uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	CreatedAt time.Time `bun:"created_at,notnull" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull" json:"updated_at"`
}

func (m *Model) GetID() uuid.UUID { return m.ID }

func (m *Model) SetID(id uuid.UUID) { m.ID = id }

func (m *Model) GetCreatedAt() time.Time { return m.CreatedAt }

func (m *Model) SetCreatedAt(t time.Time) { m.CreatedAt = t }

func (m *Model) GetUpdatedAt() time.Time { return m.UpdatedAt }

func (m *Model) SetUpdatedAt(t time.Time) { m.UpdatedAt = t }

// Record constrains a repository entity to a struct pointer that exposes the
// mandatory id/created_at/updated_at columns. Embedding Model satisfies it;
// field access stays a compile-time contract instead of reflection.
type Record[T any] interface {
	*T
	GetID() uuid.UUID
	SetID(uuid.UUID)
	GetCreatedAt() time.Time
	SetCreatedAt(time.Time)
	GetUpdatedAt() time.Time
	SetUpdatedAt(time.Time)
}
