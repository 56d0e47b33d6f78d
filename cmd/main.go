package main

import (
	"net/http"
	"os"

	"catalog_service/config"
	"catalog_service/internal/delivery"
	"catalog_service/internal/generator"
	"catalog_service/internal/repository"
	"catalog_service/internal/usecase"
	"catalog_service/pkg/db"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Minimal catalog client exercising the API: generate form, filters,
// paginated grid, stats panel.
const htmlClientPageContent = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Product Catalog</title>
    <style>
        body { font-family: Helvetica, Arial, sans-serif; margin: 0; padding: 20px; background-color: #f9f9f9; color: #333; }
        h1 { border-bottom: 1px solid #ccc; padding-bottom: 5px; }
        .panel { background-color: #fff; border: 1px solid #eee; border-radius: 4px; padding: 12px; margin-bottom: 15px; }
        .controls { display: flex; flex-wrap: wrap; gap: 8px; align-items: center; }
        .controls input, .controls select { padding: 6px; border: 1px solid #ccc; border-radius: 3px; }
        .controls input[type="number"] { width: 90px; }
        button { padding: 6px 14px; border: none; border-radius: 3px; background-color: #007bff; color: #fff; cursor: pointer; }
        button:hover { background-color: #0069d9; }
        button.danger { background-color: #f93e3e; }
        #grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(230px, 1fr)); gap: 10px; }
        .card { background-color: #fff; border: 1px solid #eee; border-radius: 4px; padding: 10px; }
        .card h3 { margin: 0 0 6px 0; font-size: 1em; }
        .card .price { font-weight: bold; color: #007bff; }
        .card .meta { font-size: 0.85em; color: #777; }
        #stats span { margin-right: 18px; }
        #pager { margin-top: 12px; }
        #pager button { margin-right: 6px; }
        #status { color: #777; font-size: 0.9em; }
    </style>
</head>
<body>
    <h1>Product Catalog</h1>

    <div class="panel controls">
        <label>Count <input type="number" id="genCount" value="100" min="1" max="10000"></label>
        <label><input type="checkbox" id="genClear"> Clear existing</label>
        <button onclick="generate()">Generate</button>
        <button class="danger" onclick="clearAll()">Delete all</button>
        <span id="status"></span>
    </div>

    <div class="panel" id="stats"></div>

    <div class="panel controls">
        <input type="text" id="fSearch" placeholder="Search...">
        <select id="fCategory"><option value="">All categories</option></select>
        <select id="fBrand"><option value="">All brands</option></select>
        <input type="number" id="fMinPrice" placeholder="Min price">
        <input type="number" id="fMaxPrice" placeholder="Max price">
        <select id="fSortBy">
            <option value="name">Name</option>
            <option value="price">Price</option>
            <option value="stock_quantity">Stock</option>
            <option value="category">Category</option>
            <option value="brand">Brand</option>
            <option value="created_at">Created</option>
        </select>
        <select id="fSortOrder"><option value="ASC">Ascending</option><option value="DESC">Descending</option></select>
        <button onclick="page=1; load()">Apply</button>
    </div>

    <div id="grid"></div>
    <div id="pager"></div>

    <script>
        let page = 1;
        const limit = 24;

        async function loadFilterOptions() {
            const res = await fetch('/products/filters');
            const data = await res.json();
            const cat = document.getElementById('fCategory');
            const brand = document.getElementById('fBrand');
            data.categories.forEach(c => cat.add(new Option(c, c)));
            data.brands.forEach(b => brand.add(new Option(b, b)));
        }

        async function loadStats() {
            const res = await fetch('/products/stats');
            const s = await res.json();
            document.getElementById('stats').innerHTML =
                '<span><b>' + s.total_products + '</b> products</span>' +
                '<span><b>' + s.total_categories + '</b> categories</span>' +
                '<span><b>' + s.total_brands + '</b> brands</span>' +
                '<span>price $' + s.min_price.toFixed(2) + ' – $' + s.max_price.toFixed(2) +
                ' (avg $' + s.avg_price.toFixed(2) + ')</span>' +
                '<span><b>' + s.total_stock + '</b> units in stock</span>';
        }

        async function load() {
            const params = new URLSearchParams({ page: page, limit: limit });
            const fields = { search: 'fSearch', category: 'fCategory', brand: 'fBrand',
                             minPrice: 'fMinPrice', maxPrice: 'fMaxPrice',
                             sortBy: 'fSortBy', sortOrder: 'fSortOrder' };
            for (const [name, id] of Object.entries(fields)) {
                const v = document.getElementById(id).value;
                if (v) params.set(name, v);
            }

            const res = await fetch('/products?' + params.toString());
            const data = await res.json();

            document.getElementById('grid').innerHTML = data.products.map(p =>
                '<div class="card"><h3>' + p.name + '</h3>' +
                '<div class="price">$' + p.price.toFixed(2) + '</div>' +
                '<div class="meta">' + p.category + ' · ' + p.brand + '</div>' +
                '<div class="meta">SKU ' + p.sku + ' · stock ' + p.stock_quantity + '</div></div>'
            ).join('') || '<em>No products match the current filters.</em>';

            const pg = data.pagination;
            document.getElementById('pager').innerHTML = pg.totalPages > 1
                ? '<button onclick="page--; load()" ' + (pg.page <= 1 ? 'disabled' : '') + '>Prev</button>' +
                  'Page ' + pg.page + ' of ' + pg.totalPages + ' (' + pg.total + ' products) ' +
                  '<button onclick="page++; load()" ' + (pg.page >= pg.totalPages ? 'disabled' : '') + '>Next</button>'
                : '';
        }

        async function generate() {
            document.getElementById('status').textContent = 'Generating...';
            const res = await fetch('/products/generate', {
                method: 'POST',
                headers: { 'Content-Type': 'application/json' },
                body: JSON.stringify({
                    count: parseInt(document.getElementById('genCount').value, 10),
                    clearExisting: document.getElementById('genClear').checked
                })
            });
            const data = await res.json();
            document.getElementById('status').textContent = data.message || data.error;
            page = 1;
            loadStats();
            load();
        }

        async function clearAll() {
            const res = await fetch('/products', { method: 'DELETE' });
            const data = await res.json();
            document.getElementById('status').textContent = data.message || data.error;
            page = 1;
            loadStats();
            load();
        }

        loadFilterOptions();
        loadStats();
        load();
    </script>
</body>
</html>
`

func serveClientPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(htmlClientPageContent))
}

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Invalid log level '%s', falling back to info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.Info("Starting Catalog Service...")

	// --- Database Connection ---
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connection established.")

	if err := db.Migrate(database); err != nil {
		logger.Fatalf("Failed to apply database schema: %v", err)
	}
	logger.Info("Products table ready.")

	// --- Dependency Injection ---
	productRepo := repository.NewPostgresProductRepository(database, logger)
	productGen := generator.NewGenerator(logger)
	productUseCase := usecase.NewProductUseCase(productRepo, productGen, cfg.MaxPageSize, logger)
	productHandler := delivery.NewProductHandler(productUseCase, logger)
	logger.Info("Repository, generator, use case and handlers initialized.")

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(delivery.RequestID())
	router.Use(delivery.RequestLogger(logger))
	router.Use(delivery.CORS())

	router.GET("/", serveClientPage)
	productHandler.RegisterRoutes(router)
	logger.Info("API routes registered.")

	logger.Infof("Starting server on port %s", cfg.HTTPPort)
	if err := router.Run(cfg.HTTPPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
