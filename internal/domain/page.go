package domain

import "strings"

type SortDirection string

const (
	SortAscending  SortDirection = "ASC"
	SortDescending SortDirection = "DESC"
)

const (
	SortByID        = "id"
	SortByAmount    = "amount"
	SortByCreatedAt = "created_at"
)

const DefaultPageSize = 2

// PageRequest carries pagination and ordering for a transfer listing. Build
// it with NewPageRequest so that the defaults and the sort-field whitelist
// are always applied before the request reaches a store.
type PageRequest struct {
	Page      int
	Size      int
	SortField string
	Direction SortDirection
}

func NewPageRequest(page, size int, sortField, direction string) PageRequest {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}

	field := SortByID
	switch strings.ToLower(strings.TrimSpace(sortField)) {
	case SortByAmount:
		field = SortByAmount
	case SortByCreatedAt, "createdat":
		field = SortByCreatedAt
	}

	dir := SortAscending
	if strings.EqualFold(strings.TrimSpace(direction), string(SortDescending)) {
		dir = SortDescending
	}

	return PageRequest{Page: page, Size: size, SortField: field, Direction: dir}
}

func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

type Page[T any] struct {
	Content       []T
	Number        int
	Size          int
	TotalElements int64
	TotalPages    int
}

func NewPage[T any](content []T, request PageRequest, totalElements int64) Page[T] {
	totalPages := 0
	if request.Size > 0 {
		totalPages = int((totalElements + int64(request.Size) - 1) / int64(request.Size))
	}

	return Page[T]{
		Content:       content,
		Number:        request.Page,
		Size:          request.Size,
		TotalElements: totalElements,
		TotalPages:    totalPages,
	}
}
