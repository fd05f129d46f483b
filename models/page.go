// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Default and upper bound for the page size of paginated listings.
const (
	DefaultPageSize = 20
	MaxPageSize     = 2000
)

// Sort describes one ordering clause of a paginated request.
type Sort struct {
	Property  string
	Ascending bool
}

// Pageable carries the pagination request parameters (zero-based page).
type Pageable struct {
	Page int
	Size int
	Sort []Sort
}

// Offset returns the number of rows to skip for this page.
func (p Pageable) Offset() uint64 {
	return uint64(p.Page) * uint64(p.Size)
}

// Page is one slice of a paginated listing.
type Page[T any] struct {
	Content       []T
	Number        int
	Size          int
	TotalElements int64
}

// TotalPages returns the number of pages needed for TotalElements.
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 {
		return 1
	}
	pages := int((p.TotalElements + int64(p.Size) - 1) / int64(p.Size))
	if pages == 0 {
		return 1
	}
	return pages
}
