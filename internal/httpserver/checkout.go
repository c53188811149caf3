package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"verse-storefront/internal/domain"
	"verse-storefront/internal/service/checkout"
)

func (h *handlers) checkoutShipping(c *gin.Context) {
	var form checkout.ShippingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	clientSecret, quote, err := h.deps.CheckoutSvc.ProceedToPayment(c.Request.Context(), form)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "field": validationErr.Field})
			return
		}
		h.logger.Printf("proceed to payment: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to initialize payment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"clientSecret":   clientSecret,
		"publishableKey": h.deps.PublishableKey,
		"quote": gin.H{
			"subtotalCents": quote.SubtotalCents,
			"shippingCents": quote.ShippingCents,
			"taxCents":      quote.TaxCents,
			"totalCents":    quote.TotalCents,
		},
	})
}

// checkoutComplete acknowledges the confirmed payment. Order creation runs
// in the background, so the response is 202 and the cart is already cleared
// when it lands.
func (h *handlers) checkoutComplete(c *gin.Context) {
	var req struct {
		PaymentIntentID string `json:"paymentIntentId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.PaymentIntentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paymentIntentId is required"})
		return
	}
	if h.deps.CheckoutSvc.Step() != checkout.StepPayment {
		c.JSON(http.StatusConflict, gin.H{"error": "no payment in progress"})
		return
	}
	h.deps.CheckoutSvc.CompletePayment(req.PaymentIntentID)
	c.JSON(http.StatusAccepted, gin.H{"status": "processing"})
}

func (h *handlers) checkoutHosted(c *gin.Context) {
	var req struct {
		Email   string                `json:"email"`
		Address domain.MailingAddress `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	checkoutURL, err := h.deps.CheckoutSvc.HostedCheckout(c.Request.Context(), req.Email, req.Address)
	if err != nil {
		var remoteErr *domain.RemoteUserError
		if errors.As(err, &remoteErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": remoteErr.Message, "field": remoteErr.Field})
			return
		}
		h.logger.Printf("hosted checkout: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to create checkout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"checkoutUrl": checkoutURL})
}

func (h *handlers) orderConfirmation(c *gin.Context) {
	paymentIntentID := c.Query("payment_intent")
	if paymentIntentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payment_intent is required"})
		return
	}
	intent, err := h.deps.CheckoutSvc.Confirmation(c.Request.Context(), paymentIntentID)
	if err != nil {
		h.logger.Printf("order confirmation: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load payment"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"paymentIntentId": intent.ID,
		"amountCents":     intent.AmountCents,
		"currency":        intent.Currency,
		"status":          intent.Status,
	})
}
