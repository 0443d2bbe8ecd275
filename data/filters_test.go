package data

import (
	"testing"

	"github.com/prathameshlakare/bookreview/internal/validator"
)

func TestCalculateMetadata(t *testing.T) {
	t.Run("rounds the last page up", func(t *testing.T) {
		metadata := CalculateMetadata(3, 2, 1)
		if metadata.CurrentPage != 2 {
			t.Errorf("current page = %d, want 2", metadata.CurrentPage)
		}
		if metadata.LastPage != 3 {
			t.Errorf("last page = %d, want 3", metadata.LastPage)
		}
		if metadata.TotalRecords != 3 {
			t.Errorf("total records = %d, want 3", metadata.TotalRecords)
		}
	})

	t.Run("partial final page still counts", func(t *testing.T) {
		metadata := CalculateMetadata(11, 1, 5)
		if metadata.LastPage != 3 {
			t.Errorf("last page = %d, want 3", metadata.LastPage)
		}
	})

	t.Run("zero records yields empty metadata", func(t *testing.T) {
		metadata := CalculateMetadata(0, 1, 5)
		if metadata != (Metadata{}) {
			t.Errorf("metadata = %+v, want zero value", metadata)
		}
	})
}

func TestFiltersLimitOffset(t *testing.T) {
	f := Filters{Page: 3, PageSize: 10}
	if f.Limit() != 10 {
		t.Errorf("limit = %d, want 10", f.Limit())
	}
	if f.Offset() != 20 {
		t.Errorf("offset = %d, want 20", f.Offset())
	}
}

func TestFiltersSort(t *testing.T) {
	f := Filters{Sort: "-created_at", SortSafeList: []string{"created_at", "-created_at"}}
	if f.SortColumn() != "created_at" {
		t.Errorf("sort column = %q, want created_at", f.SortColumn())
	}
	if f.SortDirection() != "DESC" {
		t.Errorf("sort direction = %q, want DESC", f.SortDirection())
	}
}

func TestValidateFilters(t *testing.T) {
	valid := Filters{Page: 1, PageSize: 5, Sort: "id", SortSafeList: []string{"id"}}

	t.Run("accepts sensible values", func(t *testing.T) {
		v := validator.New()
		ValidateFilters(v, valid)
		if !v.Valid() {
			t.Errorf("unexpected errors: %v", v.Errors)
		}
	})

	t.Run("caps the page size at 100", func(t *testing.T) {
		f := valid
		f.PageSize = 101
		v := validator.New()
		ValidateFilters(v, f)
		if v.Valid() {
			t.Error("expected a page_size error")
		}
	})

	t.Run("rejects a non-positive page", func(t *testing.T) {
		f := valid
		f.Page = 0
		v := validator.New()
		ValidateFilters(v, f)
		if v.Valid() {
			t.Error("expected a page error")
		}
	})

	t.Run("rejects a sort value outside the safelist", func(t *testing.T) {
		f := valid
		f.Sort = "password_hash"
		v := validator.New()
		ValidateFilters(v, f)
		if v.Valid() {
			t.Error("expected a sort error")
		}
	})
}
