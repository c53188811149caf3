package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"verse-storefront/internal/domain"
)

func (h *handlers) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	customer, err := h.deps.Session.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		h.logger.Printf("login: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "login failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

func (h *handlers) signup(c *gin.Context) {
	var req struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	customer, err := h.deps.Session.CreateAccount(c.Request.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		var remoteErr *domain.RemoteUserError
		if errors.As(err, &remoteErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": remoteErr.Message, "field": remoteErr.Field})
			return
		}
		h.logger.Printf("signup: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "account creation failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"customer": customer})
}

func (h *handlers) recoverPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.deps.Session.RecoverPassword(c.Request.Context(), req.Email); err != nil {
		var remoteErr *domain.RemoteUserError
		if errors.As(err, &remoteErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": remoteErr.Message, "field": remoteErr.Field})
			return
		}
		h.logger.Printf("recover password: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "password recovery failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "recovery email sent"})
}

func (h *handlers) logout(c *gin.Context) {
	h.deps.Session.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

func (h *handlers) account(c *gin.Context) {
	customer, err := h.deps.Session.RefreshCustomer(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrSessionExpired) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "not logged in"})
			return
		}
		h.logger.Printf("refresh customer: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to load account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customer": customer})
}
