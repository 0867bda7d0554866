package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"hunargaatha-storefront/internal/domain"
	checkoutsvc "hunargaatha-storefront/internal/service/checkout"
)

type checkoutRequest struct {
	Gateway  string                `json:"gateway"`
	Items    []domain.CheckoutItem `json:"items"`
	Amount   decimal.Decimal       `json:"amount"`
	Currency string                `json:"currency"`
}

// checkoutHandler dispatches to the selected gateway. The stripe branch
// answers {"id": ...}; the razorpay branch answers the provider order
// verbatim so the client can open its payment widget with it.
func checkoutHandler(svc *checkoutsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		session, err := svc.CreateSession(c.Request.Context(), checkoutsvc.Request{
			Gateway:  req.Gateway,
			Items:    req.Items,
			Amount:   req.Amount,
			Currency: req.Currency,
		})
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidGateway), errors.Is(err, domain.ErrValidation):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "checkout failed"})
			}
			return
		}

		switch session.Gateway {
		case domain.GatewayStripe:
			c.JSON(http.StatusOK, gin.H{"id": session.SessionID})
		case domain.GatewayRazorpay:
			c.JSON(http.StatusOK, session.Order)
		}
	}
}
