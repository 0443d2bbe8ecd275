package data

import (
	"math"
	"strings"

	"github.com/prathameshlakare/bookreview/internal/validator"
)

// Filters holds the offset-pagination and sorting parameters shared by every
// listing endpoint.
type Filters struct {
	Page         int
	PageSize     int
	Sort         string
	SortSafeList []string
}

// SortColumn returns the column name to sort by, panicking if the client
// value did not come from the safelist. The panic is a failsafe against a
// SQL injection through the ORDER BY clause; ValidateFilters rejects unsafe
// values before this point.
func (f Filters) SortColumn() string {
	for _, safeValue := range f.SortSafeList {
		if f.Sort == safeValue {
			return strings.TrimPrefix(f.Sort, "-")
		}
	}
	panic("unsafe sort parameter: " + f.Sort)
}

// SortDirection returns "ASC" or "DESC" depending on the prefix of the sort
// value.
func (f Filters) SortDirection() string {
	if strings.HasPrefix(f.Sort, "-") {
		return "DESC"
	}
	return "ASC"
}

func (f Filters) Limit() int {
	return f.PageSize
}

func (f Filters) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// ValidateFilters bounds the pagination parameters. The page size cap keeps a
// single request from pulling an arbitrarily large window out of the store.
func ValidateFilters(v *validator.Validator, f Filters) {
	v.Check(f.Page > 0, "page", "must be greater than zero")
	v.Check(f.Page <= 10_000_000, "page", "must be a maximum of 10 million")
	v.Check(f.PageSize > 0, "page_size", "must be greater than zero")
	v.Check(f.PageSize <= 100, "page_size", "must be a maximum of 100")
	v.Check(validator.In(f.Sort, f.SortSafeList...), "sort", "invalid sort value")
}

// Metadata describes the pagination window of a listing response. LastPage
// is computed from the full filtered count, not the length of the page.
type Metadata struct {
	CurrentPage  int `json:"current_page,omitempty"`
	PageSize     int `json:"page_size,omitempty"`
	FirstPage    int `json:"first_page,omitempty"`
	LastPage     int `json:"last_page,omitempty"`
	TotalRecords int `json:"total_records"`
}

// CalculateMetadata computes the pagination metadata for totalRecords given
// the current page and page size. A zero totalRecords yields an empty
// Metadata.
func CalculateMetadata(totalRecords, page, pageSize int) Metadata {
	if totalRecords == 0 {
		return Metadata{}
	}
	return Metadata{
		CurrentPage:  page,
		PageSize:     pageSize,
		FirstPage:    1,
		LastPage:     int(math.Ceil(float64(totalRecords) / float64(pageSize))),
		TotalRecords: totalRecords,
	}
}
