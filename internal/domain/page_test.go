package domain

import "testing"

func TestNewPageRequestDefaults(t *testing.T) {
	request := NewPageRequest(-1, 0, "", "")

	if request.Page != 0 {
		t.Fatalf("expected page 0, got %d", request.Page)
	}
	if request.Size != DefaultPageSize {
		t.Fatalf("expected default size %d, got %d", DefaultPageSize, request.Size)
	}
	if request.SortField != SortByID {
		t.Fatalf("expected default sort by id, got %s", request.SortField)
	}
	if request.Direction != SortAscending {
		t.Fatalf("expected ascending default direction, got %s", request.Direction)
	}
}

func TestNewPageRequestWhitelistsSortField(t *testing.T) {
	if got := NewPageRequest(0, 2, "balance; DROP TABLE transfers", "ASC").SortField; got != SortByID {
		t.Fatalf("expected unknown sort field to fall back to id, got %s", got)
	}
	if got := NewPageRequest(0, 2, "createdAt", "desc").SortField; got != SortByCreatedAt {
		t.Fatalf("expected createdAt to map to created_at, got %s", got)
	}
	if got := NewPageRequest(0, 2, "amount", "desc"); got.Direction != SortDescending {
		t.Fatalf("expected descending direction, got %s", got.Direction)
	}
}

func TestNewPageTotals(t *testing.T) {
	page := NewPage([]int{1, 2}, NewPageRequest(1, 2, "id", "ASC"), 5)

	if page.TotalPages != 3 {
		t.Fatalf("expected 3 total pages for 5 elements of size 2, got %d", page.TotalPages)
	}
	if page.TotalElements != 5 {
		t.Fatalf("expected 5 total elements, got %d", page.TotalElements)
	}
	if page.Number != 1 {
		t.Fatalf("expected page number 1, got %d", page.Number)
	}
}
