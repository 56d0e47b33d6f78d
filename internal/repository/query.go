package repository

import (
	"fmt"
	"strings"

	"catalog_service/internal/domain"
)

// buildProductWhere assembles the WHERE clause and positional args for
// a filter. Count and List both go through it so the count query and
// the fetch query always apply the identical predicate.
func buildProductWhere(f domain.ProductFilter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}

	next := func() string { return fmt.Sprintf("$%d", len(args)) }

	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		args = append(args, pattern)
		conditions = append(conditions, fmt.Sprintf("(name ILIKE %[1]s OR description ILIKE %[1]s)", next()))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		conditions = append(conditions, "category = "+next())
	}
	if f.Brand != "" {
		args = append(args, f.Brand)
		conditions = append(conditions, "brand = "+next())
	}
	if f.MinPrice != nil {
		args = append(args, *f.MinPrice)
		conditions = append(conditions, "price >= "+next())
	}
	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		conditions = append(conditions, "price <= "+next())
	}
	if f.MinStock != nil {
		args = append(args, *f.MinStock)
		conditions = append(conditions, "stock_quantity >= "+next())
	}
	if f.MaxStock != nil {
		args = append(args, *f.MaxStock)
		conditions = append(conditions, "stock_quantity <= "+next())
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

// orderClause renders the ORDER BY for an already-normalized filter.
// The sort field must have passed the domain allow-list; raw request
// values are never interpolated here.
func orderClause(f domain.ProductFilter) string {
	return fmt.Sprintf(" ORDER BY %s %s", f.SortBy, f.SortOrder)
}
