package delivery

import (
	"net/http"
	"strconv"

	"catalog_service/internal/domain"
	"catalog_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	useCase usecase.ProductUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc usecase.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	products := router.Group("/products")
	{
		products.POST("/generate", h.GenerateProducts)
		products.GET("", h.ListProducts)
		products.GET("/stats", h.GetStats)
		products.GET("/filters", h.GetFilterOptions)
		products.DELETE("", h.ClearProducts)
	}
}

type generateRequest struct {
	Count         int  `json:"count"`
	ClearExisting bool `json:"clearExisting"`
}

func (h *ProductHandler) GenerateProducts(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for generate request: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	summary, err := h.useCase.GenerateProducts(req.Count, req.ClearExisting)
	if err != nil {
		status, msg := statusAndMessage(err, "Failed to generate products")
		h.log.Errorf("Failed to generate %d products: %v", req.Count, err)
		ErrorResponse(c, status, msg)
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	filter := parseProductFilter(c)

	result, err := h.useCase.ListProducts(filter)
	if err != nil {
		h.log.Errorf("Failed to list products: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to retrieve products")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ProductHandler) GetStats(c *gin.Context) {
	stats, err := h.useCase.GetStats()
	if err != nil {
		h.log.Errorf("Failed to get catalog stats: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to get statistics")
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *ProductHandler) GetFilterOptions(c *gin.Context) {
	c.JSON(http.StatusOK, h.useCase.FilterOptions())
}

func (h *ProductHandler) ClearProducts(c *gin.Context) {
	if err := h.useCase.ClearProducts(); err != nil {
		h.log.Errorf("Failed to clear products: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to clear products")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All products cleared successfully"})
}

// parseProductFilter reads the listing query parameters. Numeric values
// that fail to parse are treated as absent rather than erroring the
// request; sort and page values are validated later by Normalize.
func parseProductFilter(c *gin.Context) domain.ProductFilter {
	filter := domain.ProductFilter{
		Search:    c.Query("search"),
		Category:  c.Query("category"),
		Brand:     c.Query("brand"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	filter.MinPrice = parseFloatParam(c.Query("minPrice"))
	filter.MaxPrice = parseFloatParam(c.Query("maxPrice"))
	filter.MinStock = parseIntParam(c.Query("minStock"))
	filter.MaxStock = parseIntParam(c.Query("maxStock"))

	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		filter.Limit = limit
	}
	return filter
}

func parseFloatParam(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseIntParam(raw string) *int {
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}
