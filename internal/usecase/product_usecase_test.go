package usecase

import (
	"errors"
	"io"
	"testing"

	"catalog_service/internal/domain"
	"catalog_service/internal/generator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo records calls and simulates duplicate-SKU skipping against a
// persistent SKU set.
type fakeRepo struct {
	skus        map[string]bool
	batchSizes  []int
	deleteCalls int
	deleted     int64

	countFilter *domain.ProductFilter
	listFilter  *domain.ProductFilter
	countResult int
	listResult  []domain.Product

	insertErr error
	countErr  error
	deleteErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{skus: make(map[string]bool)}
}

func (f *fakeRepo) InsertBatch(products []domain.Product) (int, int, error) {
	if f.insertErr != nil {
		return 0, 0, f.insertErr
	}
	f.batchSizes = append(f.batchSizes, len(products))
	inserted, skipped := 0, 0
	for _, p := range products {
		if f.skus[p.SKU] {
			skipped++
			continue
		}
		f.skus[p.SKU] = true
		inserted++
	}
	return inserted, skipped, nil
}

func (f *fakeRepo) DeleteAll() (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	f.deleteCalls++
	deleted := int64(len(f.skus))
	f.skus = make(map[string]bool)
	f.deleted = deleted
	return deleted, nil
}

func (f *fakeRepo) Count(filter domain.ProductFilter) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	f.countFilter = &filter
	return f.countResult, nil
}

func (f *fakeRepo) List(filter domain.ProductFilter) ([]domain.Product, error) {
	f.listFilter = &filter
	return f.listResult, nil
}

func (f *fakeRepo) Stats() (domain.CatalogStats, error) {
	return domain.CatalogStats{TotalProducts: len(f.skus)}, nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestUseCase(repo domain.ProductRepository) ProductUseCase {
	logger := testLogger()
	return NewProductUseCase(repo, generator.NewSeededGenerator(1, logger), 500, logger)
}

func TestGenerateProductsRejectsInvalidCount(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo)

	for _, count := range []int{0, -5, 10001} {
		_, err := uc.GenerateProducts(count, false)
		require.Error(t, err, "count %d", count)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
	// The store was never touched.
	assert.Empty(t, repo.batchSizes)
	assert.Zero(t, repo.deleteCalls)
}

func TestGenerateProductsAcceptsBounds(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo)

	summary, err := uc.GenerateProducts(1, false)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Inserted)

	_, err = uc.GenerateProducts(10000, false)
	require.NoError(t, err)
}

func TestGenerateProductsBatches(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo)

	summary, err := uc.GenerateProducts(120, false)
	require.NoError(t, err)

	assert.Equal(t, []int{50, 50, 20}, repo.batchSizes)
	assert.Equal(t, 120, summary.Inserted+summary.Skipped)
	assert.LessOrEqual(t, summary.Inserted, 120)
	assert.Contains(t, summary.Message, "generated")
}

func TestGenerateProductsSkipsDuplicateSKUs(t *testing.T) {
	repo := newFakeRepo()
	logger := testLogger()
	uc := NewProductUseCase(repo, generator.NewSeededGenerator(7, logger), 500, logger)

	first, err := uc.GenerateProducts(200, false)
	require.NoError(t, err)
	require.Equal(t, 200, first.Inserted)

	// The same seed regenerates the same SKUs, which the store now holds.
	uc2 := NewProductUseCase(repo, generator.NewSeededGenerator(7, logger), 500, logger)
	second, err := uc2.GenerateProducts(200, false)
	require.NoError(t, err)

	assert.Zero(t, second.Inserted)
	assert.Equal(t, 200, second.Skipped)
	assert.Equal(t, 200, len(repo.skus))
}

func TestGenerateProductsClearExisting(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo)

	_, err := uc.GenerateProducts(30, false)
	require.NoError(t, err)

	summary, err := uc.GenerateProducts(40, true)
	require.NoError(t, err)

	assert.Equal(t, 1, repo.deleteCalls)
	// The store holds exactly this call's rows.
	assert.Equal(t, summary.Inserted, len(repo.skus))
}

func TestGenerateProductsStoreFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.insertErr = errors.New("connection reset")
	uc := newTestUseCase(repo)

	_, err := uc.GenerateProducts(10, false)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrValidation)
}

func TestListProductsUsesIdenticalFilterForCountAndList(t *testing.T) {
	repo := newFakeRepo()
	repo.countResult = 42
	uc := newTestUseCase(repo)

	_, err := uc.ListProducts(domain.ProductFilter{Category: "Books", SortBy: "price", Page: 2, Limit: 10})
	require.NoError(t, err)

	require.NotNil(t, repo.countFilter)
	require.NotNil(t, repo.listFilter)
	assert.Equal(t, *repo.countFilter, *repo.listFilter)
	assert.Equal(t, "Books", repo.countFilter.Category)
	assert.Equal(t, "price", repo.countFilter.SortBy)
}

func TestListProductsEnvelope(t *testing.T) {
	repo := newFakeRepo()
	repo.countResult = 101
	repo.listResult = []domain.Product{{Name: "Premium Laptop"}}
	uc := newTestUseCase(repo)

	result, err := uc.ListProducts(domain.ProductFilter{Page: 3, Limit: 50})
	require.NoError(t, err)

	assert.Equal(t, 101, result.Pagination.Total)
	assert.Equal(t, 3, result.Pagination.Page)
	assert.Equal(t, 50, result.Pagination.Limit)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	assert.Len(t, result.Products, 1)
}

func TestListProductsEchoesNormalizedFilters(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo)

	result, err := uc.ListProducts(domain.ProductFilter{SortBy: "nonexistent", SortOrder: "desc", Search: "mat"})
	require.NoError(t, err)

	assert.Equal(t, "name", result.Filters.SortBy)
	assert.Equal(t, "DESC", result.Filters.SortOrder)
	assert.Equal(t, "mat", result.Filters.Search)
}

func TestListProductsCapsLimit(t *testing.T) {
	repo := newFakeRepo()
	logger := testLogger()
	uc := NewProductUseCase(repo, generator.NewSeededGenerator(1, logger), 100, logger)

	result, err := uc.ListProducts(domain.ProductFilter{Limit: 5000})
	require.NoError(t, err)
	assert.Equal(t, 100, result.Pagination.Limit)
	assert.Equal(t, 100, repo.listFilter.Limit)
}

func TestListProductsStoreFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.countErr = errors.New("query timeout")
	uc := newTestUseCase(repo)

	_, err := uc.ListProducts(domain.ProductFilter{})
	require.Error(t, err)
}

func TestFilterOptions(t *testing.T) {
	uc := newTestUseCase(newFakeRepo())

	opts := uc.FilterOptions()
	assert.Len(t, opts.Categories, 10)
	assert.Len(t, opts.Brands, 15)
	assert.Contains(t, opts.Categories, "Electronics")
	assert.Contains(t, opts.Brands, "TechPro")
}

func TestClearProducts(t *testing.T) {
	repo := newFakeRepo()
	uc := newTestUseCase(repo)

	_, err := uc.GenerateProducts(10, false)
	require.NoError(t, err)

	require.NoError(t, uc.ClearProducts())
	assert.Empty(t, repo.skus)

	repo.deleteErr = errors.New("connection reset")
	assert.Error(t, uc.ClearProducts())
}
