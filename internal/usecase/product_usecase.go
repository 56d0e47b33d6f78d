package usecase

import (
	"fmt"

	"catalog_service/internal/domain"
	"catalog_service/internal/generator"

	"github.com/sirupsen/logrus"
)

const (
	minGenerateCount = 1
	maxGenerateCount = 10000
	insertBatchSize  = 50
)

// GenerateSummary reports the outcome of a generate request. Inserted
// may be lower than requested when duplicate SKUs were skipped.
type GenerateSummary struct {
	Message  string `json:"message"`
	Inserted int    `json:"count"`
	Skipped  int    `json:"skipped"`
}

// AppliedFilters echoes the criteria a listing actually used, with the
// post-fallback sort spec.
type AppliedFilters struct {
	Search    string   `json:"search,omitempty"`
	Category  string   `json:"category,omitempty"`
	Brand     string   `json:"brand,omitempty"`
	MinPrice  *float64 `json:"minPrice,omitempty"`
	MaxPrice  *float64 `json:"maxPrice,omitempty"`
	MinStock  *int     `json:"minStock,omitempty"`
	MaxStock  *int     `json:"maxStock,omitempty"`
	SortBy    string   `json:"sortBy"`
	SortOrder string   `json:"sortOrder"`
}

type ListResult struct {
	Products   []domain.Product  `json:"products"`
	Pagination domain.Pagination `json:"pagination"`
	Filters    AppliedFilters    `json:"filters"`
}

type FilterOptions struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
}

type ProductUseCase interface {
	GenerateProducts(count int, clearExisting bool) (GenerateSummary, error)
	ListProducts(filter domain.ProductFilter) (ListResult, error)
	GetStats() (domain.CatalogStats, error)
	FilterOptions() FilterOptions
	ClearProducts() error
}

type productUseCase struct {
	repo     domain.ProductRepository
	gen      *generator.Generator
	maxLimit int
	log      *logrus.Logger
}

func NewProductUseCase(repo domain.ProductRepository, gen *generator.Generator, maxLimit int, logger *logrus.Logger) ProductUseCase {
	return &productUseCase{
		repo:     repo,
		gen:      gen,
		maxLimit: maxLimit,
		log:      logger,
	}
}

// GenerateProducts synthesizes count products and inserts them batch by
// batch. A failed batch aborts the remainder; batches already committed
// stay committed, so the summary reflects completed batches only.
func (uc *productUseCase) GenerateProducts(count int, clearExisting bool) (GenerateSummary, error) {
	if count < minGenerateCount || count > maxGenerateCount {
		uc.log.Warnf("Use Case: Rejected generate request with count %d", count)
		return GenerateSummary{}, fmt.Errorf("%w: count must be between %d and %d", domain.ErrValidation, minGenerateCount, maxGenerateCount)
	}

	if clearExisting {
		deleted, err := uc.repo.DeleteAll()
		if err != nil {
			uc.log.Errorf("Use Case: Failed to clear existing products before generate: %v", err)
			return GenerateSummary{}, err
		}
		uc.log.Infof("Use Case: Cleared %d existing products before generation", deleted)
	}

	uc.log.Infof("Use Case: Generating %d products", count)
	products := uc.gen.Generate(count)

	inserted := 0
	skipped := 0
	for start := 0; start < len(products); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(products) {
			end = len(products)
		}
		batchInserted, batchSkipped, err := uc.repo.InsertBatch(products[start:end])
		inserted += batchInserted
		skipped += batchSkipped
		if err != nil {
			uc.log.Errorf("Use Case: Batch insert failed after %d inserted, %d skipped: %v", inserted, skipped, err)
			return GenerateSummary{}, err
		}
	}

	uc.log.Infof("Use Case: Generated %d products (%d skipped due to duplicates)", inserted, skipped)
	return GenerateSummary{
		Message:  fmt.Sprintf("Successfully generated %d products", inserted),
		Inserted: inserted,
		Skipped:  skipped,
	}, nil
}

// ListProducts runs the count and fetch queries with the identical
// normalized filter and shapes the result envelope.
func (uc *productUseCase) ListProducts(filter domain.ProductFilter) (ListResult, error) {
	applied := filter.Normalize(uc.maxLimit)

	total, err := uc.repo.Count(applied)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to count products: %v", err)
		return ListResult{}, fmt.Errorf("could not retrieve products: %w", err)
	}

	products, err := uc.repo.List(applied)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to list products: %v", err)
		return ListResult{}, fmt.Errorf("could not retrieve products: %w", err)
	}

	uc.log.Infof("Use Case: Retrieved %d of %d products (page %d, limit %d)", len(products), total, applied.Page, applied.Limit)
	return ListResult{
		Products:   products,
		Pagination: domain.NewPagination(total, applied.Page, applied.Limit),
		Filters: AppliedFilters{
			Search:    applied.Search,
			Category:  applied.Category,
			Brand:     applied.Brand,
			MinPrice:  applied.MinPrice,
			MaxPrice:  applied.MaxPrice,
			MinStock:  applied.MinStock,
			MaxStock:  applied.MaxStock,
			SortBy:    applied.SortBy,
			SortOrder: applied.SortOrder,
		},
	}, nil
}

func (uc *productUseCase) GetStats() (domain.CatalogStats, error) {
	stats, err := uc.repo.Stats()
	if err != nil {
		uc.log.Errorf("Use Case: Failed to get catalog stats: %v", err)
		return domain.CatalogStats{}, fmt.Errorf("could not retrieve statistics: %w", err)
	}
	return stats, nil
}

// FilterOptions serves the static vocabularies; no store round-trip.
func (uc *productUseCase) FilterOptions() FilterOptions {
	return FilterOptions{
		Categories: generator.Categories(),
		Brands:     generator.Brands(),
	}
}

func (uc *productUseCase) ClearProducts() error {
	deleted, err := uc.repo.DeleteAll()
	if err != nil {
		uc.log.Errorf("Use Case: Failed to clear products: %v", err)
		return fmt.Errorf("could not clear products: %w", err)
	}
	uc.log.Infof("Use Case: Cleared %d products", deleted)
	return nil
}
