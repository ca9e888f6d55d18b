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
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
)

// SQLError classifies storage-layer failures without translating them: the
// original driver error still propagates to the caller unchanged.
type SQLError int

const (
	UnknownErr SQLError = iota
	DuplicateKeyErr
	NotNullViolationErr
	ForeignKeyViolationErr
	CheckConstraintViolationErr
	NoTableErr
	NoColumnErr
	DataTruncatedErr
)

// IsSQLError reports whether err is a recognizable storage-layer error and,
// when it is, which kind. MySQL and Postgres driver errors are matched by
// code; everything else (sqlite included) by message.
func IsSQLError(err error) (bool, SQLError) {
	if err == nil {
		return false, UnknownErr
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case 1062:
			return true, DuplicateKeyErr
		case 1048:
			return true, NotNullViolationErr
		case 1216, 1217, 1451, 1452:
			return true, ForeignKeyViolationErr
		case 3819:
			return true, CheckConstraintViolationErr
		case 1146:
			return true, NoTableErr
		case 1054:
			return true, NoColumnErr
		case 1265:
			return true, DataTruncatedErr
		default:
			return true, UnknownErr
		}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return true, DuplicateKeyErr
		case "23502":
			return true, NotNullViolationErr
		case "23503":
			return true, ForeignKeyViolationErr
		case "23514":
			return true, CheckConstraintViolationErr
		case "42P01":
			return true, NoTableErr
		case "42703":
			return true, NoColumnErr
		case "22001":
			return true, DataTruncatedErr
		default:
			return true, UnknownErr
		}
	}

	s := strings.ToLower(err.Error())
	switch {
	case strings.Contains(s, "unique constraint failed"),
		strings.Contains(s, "duplicate key value"),
		strings.Contains(s, "sqlstate 23505"):
		return true, DuplicateKeyErr
	case strings.Contains(s, "not null constraint failed"),
		strings.Contains(s, "not-null constraint"),
		strings.Contains(s, "sqlstate 23502"):
		return true, NotNullViolationErr
	case strings.Contains(s, "foreign key constraint failed"),
		strings.Contains(s, "foreign key violation"),
		strings.Contains(s, "sqlstate 23503"):
		return true, ForeignKeyViolationErr
	case strings.Contains(s, "check constraint"),
		strings.Contains(s, "sqlstate 23514"):
		return true, CheckConstraintViolationErr
	case strings.Contains(s, "no such table"),
		strings.Contains(s, "undefined table"),
		strings.Contains(s, "sqlstate 42p01"):
		return true, NoTableErr
	case strings.Contains(s, "no such column"),
		strings.Contains(s, "undefined column"),
		strings.Contains(s, "sqlstate 42703"):
		return true, NoColumnErr
	case strings.Contains(s, "data truncated"),
		strings.Contains(s, "string data right truncation"),
		strings.Contains(s, "sqlstate 22001"):
		return true, DataTruncatedErr
	}
	return false, UnknownErr
}
