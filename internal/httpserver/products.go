package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hunargaatha-storefront/internal/domain"
	productsvc "hunargaatha-storefront/internal/service/product"
)

func listProductsHandler(svc *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := svc.List(c.Request.Context(), productsvc.ListQuery{
			Category: c.Query("category"),
			Filter:   c.Query("filter"),
			Sort:     c.Query("sort"),
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": products, "count": len(products)})
	}
}

func getProductHandler(svc *productsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load product"})
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
