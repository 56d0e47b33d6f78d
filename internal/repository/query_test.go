package repository

import (
	"testing"

	"catalog_service/internal/domain"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestBuildProductWhereEmpty(t *testing.T) {
	where, args := buildProductWhere(domain.ProductFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildProductWhereSearch(t *testing.T) {
	where, args := buildProductWhere(domain.ProductFilter{Search: "laptop"})
	assert.Equal(t, " WHERE (name ILIKE $1 OR description ILIKE $1)", where)
	assert.Equal(t, []interface{}{"%laptop%"}, args)
}

func TestBuildProductWhereSingleCriteria(t *testing.T) {
	tests := []struct {
		name     string
		filter   domain.ProductFilter
		wantSQL  string
		wantArgs []interface{}
	}{
		{"category", domain.ProductFilter{Category: "Electronics"}, " WHERE category = $1", []interface{}{"Electronics"}},
		{"brand", domain.ProductFilter{Brand: "TechPro"}, " WHERE brand = $1", []interface{}{"TechPro"}},
		{"min price", domain.ProductFilter{MinPrice: floatPtr(9.99)}, " WHERE price >= $1", []interface{}{9.99}},
		{"max price", domain.ProductFilter{MaxPrice: floatPtr(100.0)}, " WHERE price <= $1", []interface{}{100.0}},
		{"min stock", domain.ProductFilter{MinStock: intPtr(5)}, " WHERE stock_quantity >= $1", []interface{}{5}},
		{"max stock", domain.ProductFilter{MaxStock: intPtr(10)}, " WHERE stock_quantity <= $1", []interface{}{10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := buildProductWhere(tt.filter)
			assert.Equal(t, tt.wantSQL, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildProductWhereConjunction(t *testing.T) {
	filter := domain.ProductFilter{
		Search:   "mouse",
		Category: "Electronics",
		Brand:    "TechPro",
		MinPrice: floatPtr(10),
		MaxPrice: floatPtr(50),
		MinStock: intPtr(1),
		MaxStock: intPtr(100),
	}

	where, args := buildProductWhere(filter)
	assert.Equal(t,
		" WHERE (name ILIKE $1 OR description ILIKE $1)"+
			" AND category = $2"+
			" AND brand = $3"+
			" AND price >= $4"+
			" AND price <= $5"+
			" AND stock_quantity >= $6"+
			" AND stock_quantity <= $7",
		where)
	assert.Equal(t, []interface{}{"%mouse%", "Electronics", "TechPro", 10.0, 50.0, 1, 100}, args)
}

func TestBuildProductWhereZeroBoundsArePresent(t *testing.T) {
	// A zero bound is a real criterion, distinct from an absent one.
	where, args := buildProductWhere(domain.ProductFilter{MinPrice: floatPtr(0), MinStock: intPtr(0)})
	assert.Equal(t, " WHERE price >= $1 AND stock_quantity >= $2", where)
	assert.Equal(t, []interface{}{0.0, 0}, args)
}

func TestOrderClause(t *testing.T) {
	f := domain.ProductFilter{SortBy: "price", SortOrder: "DESC"}.Normalize(0)
	assert.Equal(t, " ORDER BY price DESC", orderClause(f))

	// An injection-shaped sortBy never survives normalization, so it can
	// never reach the interpolated clause.
	f = domain.ProductFilter{SortBy: "price; DROP TABLE products--"}.Normalize(0)
	assert.Equal(t, " ORDER BY name ASC", orderClause(f))
}
