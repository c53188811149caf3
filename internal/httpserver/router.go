package httpserver

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"verse-storefront/internal/domain"
	"verse-storefront/internal/pricing"
	"verse-storefront/internal/service/checkout"
	"verse-storefront/internal/stripe"
)

// CatalogService lists products and fetches one by id.
type CatalogService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
}

// CartStore is the server-held cart the handlers mutate.
type CartStore interface {
	Items() []domain.CartLineItem
	Add(item domain.CartLineItem) domain.CartLineItem
	UpdateQuantity(id string, quantity int)
	Remove(id string)
	Clear()
	Count() int
	TotalCents() int64
	SaveForLater(id string) error
	RestoreSaved(id string) error
	Saved() []domain.CartLineItem
}

// SessionStore wraps the remote customer auth flows.
type SessionStore interface {
	Login(ctx context.Context, email, password string) (*domain.Customer, error)
	CreateAccount(ctx context.Context, email, password, firstName, lastName string) (*domain.Customer, error)
	RecoverPassword(ctx context.Context, email string) error
	Logout(ctx context.Context)
	RefreshCustomer(ctx context.Context) (*domain.Customer, error)
	LoggedIn() bool
}

// CheckoutService drives the shipping/payment flow.
type CheckoutService interface {
	Step() checkout.Step
	ProceedToPayment(ctx context.Context, form checkout.ShippingForm) (string, pricing.Quote, error)
	CompletePayment(paymentIntentID string)
	HostedCheckout(ctx context.Context, email string, addr domain.MailingAddress) (string, error)
	Confirmation(ctx context.Context, paymentIntentID string) (*stripe.PaymentIntent, error)
}

// FeaturedService manages the curated featured-product list.
type FeaturedService interface {
	List(ctx context.Context) ([]domain.FeaturedProduct, error)
	Create(ctx context.Context, shopifyProductID string, displayOrder int) (*domain.FeaturedProduct, error)
	Update(ctx context.Context, id string, isActive *bool, displayOrder *int) (*domain.FeaturedProduct, error)
	Delete(ctx context.Context, id string) error
	ActiveGlobalIDs(ctx context.Context) ([]string, error)
}

// Deps carries everything the router needs.
type Deps struct {
	CatalogSvc     CatalogService
	Cart           CartStore
	Session        SessionStore
	CheckoutSvc    CheckoutService
	FeaturedSvc    FeaturedService
	AdminVerifier  Verifier
	PublishableKey string
}

// buildRouter wires all storefront routes.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(corsOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = corsOrigins
		corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
		router.Use(cors.New(corsCfg))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &handlers{deps: deps, logger: logger}

	api := router.Group("/api")
	{
		api.GET("/products", h.listProducts)
		api.GET("/products/:id", h.getProduct)

		api.GET("/cart", h.getCart)
		api.POST("/cart/items", h.addCartItem)
		api.PATCH("/cart/items/:id", h.updateCartItem)
		api.DELETE("/cart/items/:id", h.removeCartItem)
		api.DELETE("/cart", h.clearCart)
		api.POST("/cart/items/:id/save", h.saveForLater)
		api.GET("/cart/saved", h.listSaved)
		api.POST("/cart/saved/:id/restore", h.restoreSaved)

		api.POST("/account/login", h.login)
		api.POST("/account/signup", h.signup)
		api.POST("/account/recover", h.recoverPassword)
		api.POST("/account/logout", h.logout)
		api.GET("/account", h.account)

		api.POST("/checkout/shipping", h.checkoutShipping)
		api.POST("/checkout/complete", h.checkoutComplete)
		api.POST("/checkout/hosted", h.checkoutHosted)
		api.GET("/orders/confirmation", h.orderConfirmation)

		api.GET("/featured-products", h.publicFeatured)

		admin := api.Group("/admin/featured-products", adminAuth(deps.AdminVerifier))
		{
			admin.GET("", h.adminListFeatured)
			admin.POST("", h.adminCreateFeatured)
			admin.PATCH("", h.adminUpdateFeatured)
			admin.DELETE("", h.adminDeleteFeatured)
		}
	}

	return router, nil
}

type handlers struct {
	deps   Deps
	logger *log.Logger
}
