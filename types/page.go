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

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// PageRequest describes a 1-based page window and an optional filter.
type PageRequest struct {
	page     int
	pageSize int
	filter   Filter
}

// NewPageRequest constructs a PageRequest with page, page size, and filter.
// Values below 1 fall back to DefaultPage/DefaultPageSize.
func NewPageRequest(page int, pageSize int, filter Filter) *PageRequest {
	return &PageRequest{page: page, pageSize: pageSize, filter: filter}
}

// NewDefaultPageRequest constructs an unfiltered PageRequest.
func NewDefaultPageRequest(page int, pageSize int) *PageRequest {
	return NewPageRequest(page, pageSize, nil)
}

func (p *PageRequest) GetPage() int {
	if p.page < 1 {
		p.page = DefaultPage
	}
	return p.page
}

func (p *PageRequest) GetPageSize() int {
	if p.pageSize < 1 {
		p.pageSize = DefaultPageSize
	}
	return p.pageSize
}

func (p *PageRequest) GetOffset() int {
	return (p.GetPage() - 1) * p.GetPageSize()
}

func (p *PageRequest) GetFilter() Filter {
	return p.filter
}

// Page holds one window of a filtered result set along with pagination
// metadata. RowCount is the pre-pagination count of matching rows and
// PageCount is ceil(RowCount / PageSize).
type Page[T any] struct {
	Data      []*T `json:"data"`
	Page      int  `json:"page"`
	PageSize  int  `json:"page_size"`
	RowCount  int  `json:"row_count"`
	PageCount int  `json:"page_count"`
}

// NewEmptyPage constructs a page container with no data and zero counts.
func NewEmptyPage[T any](page int, pageSize int) *Page[T] {
	return &Page[T]{Data: make([]*T, 0), Page: page, PageSize: pageSize}
}
