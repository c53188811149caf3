package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"verse-storefront/internal/domain"
	"verse-storefront/internal/pricing"
)

func (h *handlers) cartSnapshot() gin.H {
	return gin.H{
		"items": h.deps.Cart.Items(),
		"count": h.deps.Cart.Count(),
		"quote": pricing.QuoteFor(h.deps.Cart.TotalCents()),
	}
}

func (h *handlers) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartSnapshot())
}

func (h *handlers) addCartItem(c *gin.Context) {
	var item domain.CartLineItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if item.VariantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "variantId is required"})
		return
	}
	if item.Quantity <= 0 {
		item.Quantity = 1
	}
	added := h.deps.Cart.Add(item)
	c.JSON(http.StatusCreated, gin.H{"item": added, "count": h.deps.Cart.Count()})
}

func (h *handlers) updateCartItem(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	h.deps.Cart.UpdateQuantity(c.Param("id"), req.Quantity)
	c.JSON(http.StatusOK, h.cartSnapshot())
}

func (h *handlers) removeCartItem(c *gin.Context) {
	h.deps.Cart.Remove(c.Param("id"))
	c.JSON(http.StatusOK, h.cartSnapshot())
}

func (h *handlers) clearCart(c *gin.Context) {
	h.deps.Cart.Clear()
	c.JSON(http.StatusOK, h.cartSnapshot())
}

func (h *handlers) saveForLater(c *gin.Context) {
	if err := h.deps.Cart.SaveForLater(c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart item not found"})
			return
		}
		h.logger.Printf("save for later: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": h.deps.Cart.Saved(), "cart": h.cartSnapshot()})
}

func (h *handlers) listSaved(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"saved": h.deps.Cart.Saved()})
}

func (h *handlers) restoreSaved(c *gin.Context) {
	if err := h.deps.Cart.RestoreSaved(c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "saved item not found"})
			return
		}
		h.logger.Printf("restore saved: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to restore item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": h.deps.Cart.Saved(), "cart": h.cartSnapshot()})
}
