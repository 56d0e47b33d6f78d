package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"catalog_service/internal/domain"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

// pq error code for unique_violation.
const uniqueViolation = "23505"

const productColumns = "id, name, description, category, brand, price, stock_quantity, sku, created_at"

type postgresProductRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresProductRepository(db *sql.DB, logger *logrus.Logger) domain.ProductRepository {
	return &postgresProductRepository{
		db:  db,
		log: logger,
	}
}

// InsertBatch inserts products in one multi-row statement. Rows whose
// SKU already exists are skipped via ON CONFLICT DO NOTHING; the skip
// count is inferred from rows affected. Any other failure aborts the
// batch.
func (r *postgresProductRepository) InsertBatch(products []domain.Product) (int, int, error) {
	if len(products) == 0 {
		return 0, 0, nil
	}

	placeholders := make([]string, 0, len(products))
	args := make([]interface{}, 0, len(products)*7)
	for i, p := range products {
		base := i * 7
		placeholders = append(placeholders, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7))
		args = append(args, p.Name, p.Description, p.Category, p.Brand, p.Price, p.StockQuantity, p.SKU)
	}

	query := `
        INSERT INTO products (name, description, category, brand, price, stock_quantity, sku)
        VALUES ` + strings.Join(placeholders, ", ") + `
        ON CONFLICT (sku) DO NOTHING`

	result, err := r.db.Exec(query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			// ON CONFLICT covers the sku constraint; reaching here means a
			// different uniqueness rule fired. Treat the batch as skipped.
			r.log.Warnf("Unique constraint violation during batch insert: %s", pqErr.Message)
			return 0, len(products), nil
		}
		r.log.Errorf("Failed to insert product batch of %d: %v", len(products), err)
		return 0, 0, fmt.Errorf("could not insert product batch: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after batch insert: %v", err)
		return 0, 0, fmt.Errorf("could not confirm batch insert: %w", err)
	}

	inserted := int(affected)
	skipped := len(products) - inserted
	if skipped > 0 {
		r.log.Infof("Inserted %d products, skipped %d duplicate SKUs", inserted, skipped)
	}
	return inserted, skipped, nil
}

func (r *postgresProductRepository) DeleteAll() (int64, error) {
	result, err := r.db.Exec("DELETE FROM products")
	if err != nil {
		r.log.Errorf("Failed to delete all products: %v", err)
		return 0, fmt.Errorf("could not delete products: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after delete: %v", err)
		return 0, fmt.Errorf("could not confirm product deletion: %w", err)
	}
	r.log.Infof("Deleted %d products", deleted)
	return deleted, nil
}

func (r *postgresProductRepository) Count(filter domain.ProductFilter) (int, error) {
	where, args := buildProductWhere(filter)
	query := "SELECT COUNT(*) FROM products" + where

	var total int
	if err := r.db.QueryRow(query, args...).Scan(&total); err != nil {
		r.log.Errorf("Failed to count products: %v", err)
		return 0, fmt.Errorf("could not count products: %w", err)
	}
	return total, nil
}

func (r *postgresProductRepository) List(filter domain.ProductFilter) ([]domain.Product, error) {
	where, args := buildProductWhere(filter)

	query := "SELECT " + productColumns + " FROM products" + where + orderClause(filter) +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Offset())

	rows, err := r.db.Query(query, args...)
	if err != nil {
		r.log.Errorf("Failed to list products: %v", err)
		return nil, fmt.Errorf("could not list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.Category,
			&p.Brand,
			&p.Price,
			&p.StockQuantity,
			&p.SKU,
			&p.CreatedAt,
		); err != nil {
			r.log.Errorf("Failed to scan product row: %v", err)
			return nil, fmt.Errorf("error scanning product data: %w", err)
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during product list iteration: %v", err)
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	return products, nil
}

func (r *postgresProductRepository) Stats() (domain.CatalogStats, error) {
	query := `
        SELECT
            COUNT(*),
            COUNT(DISTINCT category),
            COUNT(DISTINCT brand),
            COALESCE(MIN(price), 0),
            COALESCE(MAX(price), 0),
            COALESCE(AVG(price), 0),
            COALESCE(SUM(stock_quantity), 0)
        FROM products`

	var stats domain.CatalogStats
	err := r.db.QueryRow(query).Scan(
		&stats.TotalProducts,
		&stats.TotalCategories,
		&stats.TotalBrands,
		&stats.MinPrice,
		&stats.MaxPrice,
		&stats.AvgPrice,
		&stats.TotalStock,
	)
	if err != nil {
		r.log.Errorf("Failed to compute catalog stats: %v", err)
		return domain.CatalogStats{}, fmt.Errorf("could not compute stats: %w", err)
	}
	return stats, nil
}
