package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"verse-storefront/internal/domain"
)

func (h *handlers) listProducts(c *gin.Context) {
	products, err := h.deps.CatalogSvc.ListProducts(c.Request.Context())
	if err != nil {
		h.logger.Printf("list products: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *handlers) getProduct(c *gin.Context) {
	product, err := h.deps.CatalogSvc.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		h.logger.Printf("get product: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load product"})
		return
	}
	c.JSON(http.StatusOK, product)
}
