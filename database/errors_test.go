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

package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsSQLErrorMySQL(t *testing.T) {
	cases := []struct {
		number uint16
		want   SQLError
	}{
		{1062, DuplicateKeyErr},
		{1048, NotNullViolationErr},
		{1216, ForeignKeyViolationErr},
		{1452, ForeignKeyViolationErr},
		{3819, CheckConstraintViolationErr},
		{1146, NoTableErr},
		{1054, NoColumnErr},
		{1265, DataTruncatedErr},
		{9999, UnknownErr},
	}
	for _, c := range cases {
		err := &mysql.MySQLError{Number: c.number, Message: "boom"}
		known, kind := IsSQLError(err)
		assert.True(t, known, "number %d", c.number)
		assert.Equal(t, c.want, kind, "number %d", c.number)
	}
}

func TestIsSQLErrorPostgres(t *testing.T) {
	cases := []struct {
		code pq.ErrorCode
		want SQLError
	}{
		{"23505", DuplicateKeyErr},
		{"23502", NotNullViolationErr},
		{"23503", ForeignKeyViolationErr},
		{"23514", CheckConstraintViolationErr},
		{"42P01", NoTableErr},
		{"42703", NoColumnErr},
		{"22001", DataTruncatedErr},
		{"08006", UnknownErr},
	}
	for _, c := range cases {
		err := &pq.Error{Code: c.code}
		known, kind := IsSQLError(err)
		assert.True(t, known, "code %s", c.code)
		assert.Equal(t, c.want, kind, "code %s", c.code)
	}
}

func TestIsSQLErrorByMessage(t *testing.T) {
	cases := []struct {
		msg  string
		want SQLError
	}{
		{"constraint failed: UNIQUE constraint failed: accounts.id", DuplicateKeyErr},
		{"constraint failed: NOT NULL constraint failed: accounts.name", NotNullViolationErr},
		{"FOREIGN KEY constraint failed", ForeignKeyViolationErr},
		{"CHECK constraint failed: balance_positive", CheckConstraintViolationErr},
		{"no such table: accounts", NoTableErr},
		{"no such column: status", NoColumnErr},
	}
	for _, c := range cases {
		known, kind := IsSQLError(errors.New(c.msg))
		assert.True(t, known, c.msg)
		assert.Equal(t, c.want, kind, c.msg)
	}
}

func TestIsSQLErrorWrapped(t *testing.T) {
	err := fmt.Errorf("insert account: %w", &mysql.MySQLError{Number: 1062})
	known, kind := IsSQLError(err)
	assert.True(t, known)
	assert.Equal(t, DuplicateKeyErr, kind)
}

func TestIsSQLErrorUnrecognized(t *testing.T) {
	known, kind := IsSQLError(errors.New("connection refused"))
	assert.False(t, known)
	assert.Equal(t, UnknownErr, kind)

	known, _ = IsSQLError(nil)
	assert.False(t, known)
}
