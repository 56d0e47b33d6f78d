// domain/product.go
package domain

import "time"

type Product struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Brand         string    `json:"brand"`
	Price         float64   `json:"price"`
	StockQuantity int       `json:"stock_quantity"`
	SKU           string    `json:"sku"`
	CreatedAt     time.Time `json:"created_at"`
}

type CatalogStats struct {
	TotalProducts   int     `json:"total_products"`
	TotalCategories int     `json:"total_categories"`
	TotalBrands     int     `json:"total_brands"`
	MinPrice        float64 `json:"min_price"`
	MaxPrice        float64 `json:"max_price"`
	AvgPrice        float64 `json:"avg_price"`
	TotalStock      int64   `json:"total_stock"`
}

type ProductRepository interface {
	InsertBatch(products []Product) (inserted int, skipped int, err error)
	DeleteAll() (int64, error)
	Count(filter ProductFilter) (int, error)
	List(filter ProductFilter) ([]Product, error)
	Stats() (CatalogStats, error)
}
