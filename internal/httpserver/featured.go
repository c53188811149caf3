package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"verse-storefront/internal/domain"
)

func (h *handlers) publicFeatured(c *gin.Context) {
	ids, err := h.deps.FeaturedSvc.ActiveGlobalIDs(c.Request.Context())
	if err != nil {
		h.logger.Printf("featured products: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load featured products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"productIds": ids})
}

func (h *handlers) adminListFeatured(c *gin.Context) {
	records, err := h.deps.FeaturedSvc.List(c.Request.Context())
	if err != nil {
		h.logger.Printf("admin list featured: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": records})
}

func (h *handlers) adminCreateFeatured(c *gin.Context) {
	var req struct {
		ShopifyProductID string `json:"shopifyProductId"`
		DisplayOrder     int    `json:"displayOrder"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	record, err := h.deps.FeaturedSvc.Create(c.Request.Context(), req.ShopifyProductID, req.DisplayOrder)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
		case errors.Is(err, domain.ErrAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{"error": "Product already exists"})
		default:
			h.logger.Printf("admin create featured: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add product"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"product": record})
}

func (h *handlers) adminUpdateFeatured(c *gin.Context) {
	var req struct {
		ID           string `json:"id"`
		IsActive     *bool  `json:"isActive"`
		DisplayOrder *int   `json:"displayOrder"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	record, err := h.deps.FeaturedSvc.Update(c.Request.Context(), req.ID, req.IsActive, req.DisplayOrder)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		default:
			h.logger.Printf("admin update featured: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": record})
}

func (h *handlers) adminDeleteFeatured(c *gin.Context) {
	id := c.Query("id")
	if err := h.deps.FeaturedSvc.Delete(c.Request.Context(), id); err != nil {
		h.logger.Printf("admin delete featured: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to remove product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
