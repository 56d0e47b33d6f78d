package generator

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"catalog_service/internal/domain"

	"github.com/sirupsen/logrus"
)

const (
	minPrice = 9.99
	maxPrice = 500.00
	maxStock = 999

	skuLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	skuDigits  = "0123456789"
)

// Generator synthesizes pseudo-random product records from the lookup
// vocabularies.
type Generator struct {
	rng *rand.Rand
	log *logrus.Logger
}

func NewGenerator(logger *logrus.Logger) *Generator {
	return NewSeededGenerator(time.Now().UnixNano(), logger)
}

// NewSeededGenerator builds a generator with a fixed seed so output is
// reproducible.
func NewSeededGenerator(seed int64, logger *logrus.Logger) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		log: logger,
	}
}

// Generate returns up to count products with batch-unique SKUs. SKU
// collisions are retried within a budget of 3*count attempts; when the
// budget runs out the slice is shorter than count, which callers must
// tolerate.
func (g *Generator) Generate(count int) []domain.Product {
	products := make([]domain.Product, 0, count)
	seen := make(map[string]bool, count)

	attempts := 0
	maxAttempts := count * 3

	for len(products) < count && attempts < maxAttempts {
		attempts++
		p := g.generateOne()
		if seen[p.SKU] {
			continue
		}
		seen[p.SKU] = true
		products = append(products, p)
	}

	if len(products) < count {
		g.log.Warnf("SKU attempt budget exhausted: generated %d of %d requested products", len(products), count)
	}
	return products
}

func (g *Generator) generateOne() domain.Product {
	category := categories[g.rng.Intn(len(categories))]
	brand := brands[g.rng.Intn(len(brands))]
	names := productNames[category]
	baseName := names[g.rng.Intn(len(names))]
	adjective := adjectives[g.rng.Intn(len(adjectives))]

	price := math.Round((g.rng.Float64()*(maxPrice-minPrice)+minPrice)*100) / 100

	return domain.Product{
		Name:          adjective + " " + baseName,
		Description:   g.describe(category, baseName, brand),
		Category:      category,
		Brand:         brand,
		Price:         price,
		StockQuantity: g.rng.Intn(maxStock + 1),
		SKU:           g.generateSKU(),
	}
}

// generateSKU produces the ABC-12345 format.
func (g *Generator) generateSKU() string {
	var sb strings.Builder
	for i := 0; i < 3; i++ {
		sb.WriteByte(skuLetters[g.rng.Intn(len(skuLetters))])
	}
	sb.WriteByte('-')
	for i := 0; i < 5; i++ {
		sb.WriteByte(skuDigits[g.rng.Intn(len(skuDigits))])
	}
	return sb.String()
}

func (g *Generator) describe(category, name, brand string) string {
	template := descriptionTemplates[g.rng.Intn(len(descriptionTemplates))]
	return fmt.Sprintf(template, strings.ToLower(category), name, brand)
}
