package httpserver

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.Config{
		AllowOrigins:  []string{deps.AllowedOrigin},
		AllowMethods:  []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Session-ID"},
		ExposeHeaders: []string{"X-Session-ID"},
		MaxAge:        12 * time.Hour,
	}
	if err := corsCfg.Validate(); err != nil {
		return nil, err
	}
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps))

	// Webhooks authenticate by signature, not session.
	router.POST("/webhook/stripe", stripeWebhookHandler(deps.WebhookSvc))
	router.POST("/webhook/razorpay", razorpayWebhookHandler(deps.WebhookSvc))

	router.POST("/newsletter", newsletterHandler(deps.MarketingSvc))
	router.POST("/contact", contactHandler(deps.MarketingSvc))

	router.GET("/products", listProductsHandler(deps.ProductSvc))
	router.GET("/products/:id", getProductHandler(deps.ProductSvc))

	session := router.Group("/", sessionMiddleware())
	session.GET("/cart", getCartHandler(deps.CartSvc))
	session.POST("/cart/items", addCartItemHandler(deps.CartSvc))
	session.PATCH("/cart/items/:productId", updateCartItemHandler(deps.CartSvc))
	session.DELETE("/cart/items/:productId", removeCartItemHandler(deps.CartSvc))
	session.DELETE("/cart", clearCartHandler(deps.CartSvc))
	session.GET("/wishlist", listWishlistHandler(deps.WishlistSvc))
	session.POST("/wishlist/:productId", toggleWishlistHandler(deps.WishlistSvc))
	session.POST("/checkout", checkoutHandler(deps.CheckoutSvc))

	return router, nil
}
