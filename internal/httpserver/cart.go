package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hunargaatha-storefront/internal/domain"
	cartsvc "hunargaatha-storefront/internal/service/cart"
)

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func cartResponse(c *gin.Context, cart domain.Cart) {
	items := cart.Items
	if items == nil {
		items = []domain.CartLine{}
	}
	c.JSON(http.StatusOK, gin.H{
		"items":     items,
		"total":     cart.Total(),
		"itemCount": cart.ItemCount(),
	})
}

func getCartHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartResponse(c, svc.Get(c.Request.Context(), sessionID(c)))
	}
}

func addCartItemHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId is required"})
			return
		}

		cart, err := svc.AddItem(c.Request.Context(), sessionID(c), req.ProductID, req.Quantity)
		if err != nil {
			if errors.Is(err, domain.ErrValidation) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add item"})
			return
		}
		cartResponse(c, cart)
	}
}

func updateCartItemHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		cartResponse(c, svc.UpdateQuantity(c.Request.Context(), sessionID(c), c.Param("productId"), req.Quantity))
	}
}

func removeCartItemHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartResponse(c, svc.RemoveItem(c.Request.Context(), sessionID(c), c.Param("productId")))
	}
}

func clearCartHandler(svc *cartsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		cartResponse(c, svc.Clear(c.Request.Context(), sessionID(c)))
	}
}
