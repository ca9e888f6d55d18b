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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequestDefaults(t *testing.T) {
	req := NewDefaultPageRequest(0, 0)
	assert.Equal(t, DefaultPage, req.GetPage())
	assert.Equal(t, DefaultPageSize, req.GetPageSize())
	assert.Equal(t, 0, req.GetOffset())
	assert.Nil(t, req.GetFilter())

	req = NewDefaultPageRequest(-3, -1)
	assert.Equal(t, DefaultPage, req.GetPage())
	assert.Equal(t, DefaultPageSize, req.GetPageSize())
}

func TestPageRequestOffset(t *testing.T) {
	req := NewDefaultPageRequest(3, 20)
	assert.Equal(t, 3, req.GetPage())
	assert.Equal(t, 20, req.GetPageSize())
	assert.Equal(t, 40, req.GetOffset())
}

func TestPageRequestCarriesFilter(t *testing.T) {
	filter := Fields{"name": "x"}
	req := NewPageRequest(1, 10, filter)
	assert.Equal(t, Filter(filter), req.GetFilter())
}

func TestNewEmptyPage(t *testing.T) {
	page := NewEmptyPage[int](2, 5)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 5, page.PageSize)
	assert.Equal(t, 0, page.RowCount)
	assert.Equal(t, 0, page.PageCount)
}
