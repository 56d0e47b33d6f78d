package domain

import (
	"errors"
	"strings"
)

// ErrValidation marks input errors that must be rejected at the API
// boundary before the store is touched.
var ErrValidation = errors.New("validation failed")

const (
	DefaultSortField = "name"
	DefaultPage      = 1
	DefaultLimit     = 50

	SortAsc  = "ASC"
	SortDesc = "DESC"
)

// sortableFields is the allow-list of columns a caller may sort by.
// Anything outside it falls back to DefaultSortField instead of being
// interpolated into a query.
var sortableFields = map[string]bool{
	"name":           true,
	"price":          true,
	"stock_quantity": true,
	"category":       true,
	"brand":          true,
	"created_at":     true,
}

// ProductFilter is the transient criteria set for a listing request.
// Pointer numerics distinguish "absent" from zero.
type ProductFilter struct {
	Search   string
	Category string
	Brand    string
	MinPrice *float64
	MaxPrice *float64
	MinStock *int
	MaxStock *int

	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// Normalize validates the sort spec against the allow-list and forces
// the page window into a usable range. maxLimit caps the page size;
// values <= 0 disable the cap. The returned filter is the one actually
// applied, suitable for echoing back to the caller.
func (f ProductFilter) Normalize(maxLimit int) ProductFilter {
	if !sortableFields[f.SortBy] {
		f.SortBy = DefaultSortField
	}
	if strings.EqualFold(f.SortOrder, SortDesc) {
		f.SortOrder = SortDesc
	} else {
		f.SortOrder = SortAsc
	}
	if f.Page < 1 {
		f.Page = DefaultPage
	}
	if f.Limit < 1 {
		f.Limit = DefaultLimit
	}
	if maxLimit > 0 && f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	return f
}

// Offset is the row offset of the filter's page window.
func (f ProductFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// Pagination is the paging metadata attached to every listing response.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// NewPagination computes totalPages as ceil(total/limit), 0 when the
// result set is empty.
func NewPagination(total, page, limit int) Pagination {
	totalPages := 0
	if total > 0 && limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}
