package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	wishlistsvc "hunargaatha-storefront/internal/service/wishlist"
)

func listWishlistHandler(svc *wishlistsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		ids := svc.List(sessionID(c))
		c.JSON(http.StatusOK, gin.H{"productIds": ids, "count": len(ids)})
	}
}

func toggleWishlistHandler(svc *wishlistsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("productId")
		if productID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
			return
		}
		wishlisted := svc.Toggle(sessionID(c), productID)
		c.JSON(http.StatusOK, gin.H{"productId": productID, "wishlisted": wishlisted})
	}
}
