package httpserver

import (
	"context"
	"errors"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"storefront-backend/internal/domain"
	productrepo "storefront-backend/internal/repository/product"
	checkoutsvc "storefront-backend/internal/service/checkout"
)

// CatalogService serves product listings and admin CRUD.
type CatalogService interface {
	Search(ctx context.Context, f productrepo.Filters, page, limit int) *productrepo.Page
	Get(ctx context.Context, id string) (*domain.Product, error)
	Save(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// PromotionsService serves the banner/coupons document.
type PromotionsService interface {
	Get(ctx context.Context) domain.Promotions
	Update(ctx context.Context, p domain.Promotions) error
}

// CheckoutService owns per-session cart and checkout state.
type CheckoutService interface {
	AddItem(ctx context.Context, sessionID, productID, variantKey string) (*checkoutsvc.CartView, error)
	IncreaseQuantity(ctx context.Context, sessionID, productID, variantKey string) (*checkoutsvc.CartView, error)
	DecreaseQuantity(ctx context.Context, sessionID, productID, variantKey string) (*checkoutsvc.CartView, error)
	RemoveItem(ctx context.Context, sessionID, productID, variantKey string) (*checkoutsvc.CartView, error)
	Cart(ctx context.Context, sessionID string) *checkoutsvc.CartView
	ApplyCoupon(ctx context.Context, sessionID, code string) (*domain.Coupon, error)
	Quote(ctx context.Context, sessionID string) checkoutsvc.Quote
	Submit(ctx context.Context, sessionID string, info domain.CustomerInfo, paymentMethod string) (*checkoutsvc.Submission, error)
}

// Deps groups the services the router depends on.
type Deps struct {
	CatalogSvc    CatalogService
	PromotionsSvc PromotionsService
	CheckoutSvc   CheckoutService
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, opts Options) (*gin.Engine, error) {
	if deps.CatalogSvc == nil || deps.PromotionsSvc == nil || deps.CheckoutSvc == nil {
		return nil, errors.New("httpserver: missing service dependency")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(opts.AllowOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = opts.AllowOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, sessionHeader, adminHeader)
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.POST("/session", newSessionHandler)
	router.GET("/products", listProductsHandler(deps.CatalogSvc))
	router.GET("/products/:id", getProductHandler(deps.CatalogSvc))
	router.GET("/promotions", getPromotionsHandler(deps.PromotionsSvc))

	session := router.Group("", sessionRequired())
	{
		session.GET("/cart", getCartHandler(deps.CheckoutSvc))
		session.POST("/cart/items", addItemHandler(deps.CheckoutSvc))
		session.POST("/cart/items/increase", changeQuantityHandler(deps.CheckoutSvc, "increase"))
		session.POST("/cart/items/decrease", changeQuantityHandler(deps.CheckoutSvc, "decrease"))
		session.POST("/cart/items/remove", changeQuantityHandler(deps.CheckoutSvc, "remove"))
		session.POST("/checkout/coupon", applyCouponHandler(deps.CheckoutSvc))
		session.GET("/checkout/quote", quoteHandler(deps.CheckoutSvc))
		session.POST("/checkout/submit", submitHandler(deps.CheckoutSvc))
	}

	admin := router.Group("/admin", adminRequired(opts.AdminToken))
	{
		admin.PUT("/promotions", updatePromotionsHandler(deps.PromotionsSvc))
		admin.POST("/products", saveProductHandler(deps.CatalogSvc))
		admin.DELETE("/products/:id", deleteProductHandler(deps.CatalogSvc))
	}

	return router, nil
}
