package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hunargaatha-storefront/internal/domain"
	marketingsvc "hunargaatha-storefront/internal/service/marketing"
)

type newsletterRequest struct {
	Email string `json:"email"`
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func newsletterHandler(svc *marketingsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req newsletterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if err := svc.Subscribe(c.Request.Context(), req.Email); err != nil {
			if errors.Is(err, domain.ErrValidation) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "subscription failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"subscribed": true})
	}
}

func contactHandler(svc *marketingsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req contactRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if err := svc.SubmitContact(c.Request.Context(), req.Name, req.Email, req.Message); err != nil {
			if errors.Is(err, domain.ErrValidation) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "message not delivered"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"delivered": true})
	}
}
