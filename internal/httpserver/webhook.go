package httpserver

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	webhooksvc "hunargaatha-storefront/internal/service/webhook"
)

// Webhook bodies are read raw; signature checks run over the exact bytes the
// provider signed, so no binding happens before verification.

func stripeWebhookHandler(svc *webhooksvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
			return
		}
		if err := svc.HandleStripe(body, c.GetHeader("Stripe-Signature")); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "signature verification failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}

func razorpayWebhookHandler(svc *webhooksvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
			return
		}
		if err := svc.HandleRazorpay(body, c.GetHeader("X-Razorpay-Signature")); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "signature verification failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}
