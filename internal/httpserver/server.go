package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	cartsvc "hunargaatha-storefront/internal/service/cart"
	checkoutsvc "hunargaatha-storefront/internal/service/checkout"
	marketingsvc "hunargaatha-storefront/internal/service/marketing"
	productsvc "hunargaatha-storefront/internal/service/product"
	webhooksvc "hunargaatha-storefront/internal/service/webhook"
	wishlistsvc "hunargaatha-storefront/internal/service/wishlist"
)

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

// Deps carries the stores and services the router needs.
type Deps struct {
	Pool  *pgxpool.Pool
	Mongo *mongo.Database
	Redis *redis.Client

	ProductSvc   *productsvc.Service
	CartSvc      *cartsvc.Service
	WishlistSvc  *wishlistsvc.Service
	CheckoutSvc  *checkoutsvc.Service
	WebhookSvc   *webhooksvc.Service
	MarketingSvc *marketingsvc.Service

	AllowedOrigin string
}

// New builds a Server with all storefront routes.
func New(addr string, logger *log.Logger, deps Deps) (*Server, error) {
	router, err := buildRouter(logger, deps)
	if err != nil {
		return nil, err
	}

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
	}, nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// readyHandler pings every backing store; a single unreachable store makes
// the instance not ready.
func readyHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()

		if deps.Pool == nil || deps.Mongo == nil || deps.Redis == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "stores not configured"})
			return
		}
		if err := deps.Pool.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "postgres not reachable"})
			return
		}
		if err := deps.Mongo.Client().Ping(ctx, nil); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "mongo not reachable"})
			return
		}
		if err := deps.Redis.Ping(ctx).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "redis not reachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
