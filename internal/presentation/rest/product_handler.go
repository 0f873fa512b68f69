package rest

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/lenddesk/los/internal/application/dto"
	"github.com/lenddesk/los/internal/application/usecase"
)

// ProductHandler exposes the loan product catalog over HTTP.
type ProductHandler struct {
	catalog *usecase.ProductCatalogUseCase
	logger  *slog.Logger
}

// NewProductHandler creates the handler.
func NewProductHandler(catalog *usecase.ProductCatalogUseCase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{catalog: catalog, logger: logger}
}

// RegisterRoutes attaches catalog routes to the API group. The search route
// is registered before the :id routes so gin does not treat "search" as a
// product ID.
func (h *ProductHandler) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/loan-products", h.createProduct)
	api.GET("/loan-products", h.listProducts)
	api.GET("/loan-products/search", h.searchProducts)
	api.GET("/loan-products/:id", h.getProduct)
	api.PUT("/loan-products/:id", h.updateProduct)
	api.DELETE("/loan-products/:id", h.deprecateProduct)
	api.GET("/loan-products/:id/versions", h.listVersions)
	api.POST("/loan-products/:id/versions", h.createVersion)
	api.GET("/loan-products/:id/versions/:version", h.getVersion)
}

func (h *ProductHandler) createProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.catalog.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProductHandler) listProducts(c *gin.Context) {
	resp, err := h.catalog.List(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": resp})
}

func (h *ProductHandler) searchProducts(c *gin.Context) {
	req := dto.SearchProductsRequest{
		ProductType:      c.Query("product_type"),
		InterestRateType: c.Query("interest_rate_type"),
	}
	if v := c.Query("min_amount"); v != "" {
		amount, err := decimal.NewFromString(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_amount"})
			return
		}
		req.MinAmount = &amount
	}
	if v := c.Query("max_amount"); v != "" {
		amount, err := decimal.NewFromString(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid max_amount"})
			return
		}
		req.MaxAmount = &amount
	}

	resp, err := h.catalog.Search(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": resp})
}

func (h *ProductHandler) getProduct(c *gin.Context) {
	resp, err := h.catalog.Get(c.Request.Context(), c.Param("id"), 0)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductHandler) getVersion(c *gin.Context) {
	version, err := strconv.Atoi(c.Param("version"))
	if err != nil || version < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid version number"})
		return
	}

	resp, err := h.catalog.Get(c.Request.Context(), c.Param("id"), version)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductHandler) updateProduct(c *gin.Context) {
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.catalog.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductHandler) createVersion(c *gin.Context) {
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	resp, err := h.catalog.CreateVersion(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProductHandler) listVersions(c *gin.Context) {
	resp, err := h.catalog.ListVersions(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"versions": resp})
}

func (h *ProductHandler) deprecateProduct(c *gin.Context) {
	if err := h.catalog.Deprecate(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "DEPRECATED"})
}
