package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/abhay7074/nexamind-payments/internal/models"
	"github.com/abhay7074/nexamind-payments/internal/models/dto"
	"github.com/abhay7074/nexamind-payments/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// CheckoutServiceIn defines the checkout operations exposed over HTTP.
type CheckoutServiceIn interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest, origin string) (*dto.CreateOrderResponse, error)
	VerifyPayment(ctx context.Context, orderID string) (*dto.VerifyPaymentResponse, error)
}

type CheckoutHandler struct {
	Service CheckoutServiceIn
}

func NewCheckoutHandler(s CheckoutServiceIn) *CheckoutHandler {
	return &CheckoutHandler{Service: s}
}

// POST /orders
//
// The body is optional; a malformed body falls back to defaults rather than
// failing, matching the storefront's tolerance.
func (h *CheckoutHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logrus.Info("No usable JSON body provided, using defaults")
		req = dto.CreateOrderRequest{}
	}

	resp, err := h.Service.CreateOrder(c.Request.Context(), req, c.GetHeader("Origin"))
	if err != nil {
		var upstream *models.UpstreamError
		if errors.As(err, &upstream) {
			logrus.Errorf("Cashfree API error: %s", upstream.Message)
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": upstream.Message,
				"error":   upstream.Raw,
			})
			return
		}

		logrus.Errorf("Error creating order: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// POST /payments/verify
func (h *CheckoutHandler) VerifyPayment(c *gin.Context) {
	var req dto.VerifyPaymentRequest
	// a missing or malformed body is equivalent to a missing order id
	_ = c.ShouldBindJSON(&req)

	resp, err := h.Service.VerifyPayment(c.Request.Context(), req.OrderID)
	if err != nil {
		if errors.Is(err, service.ErrMissingOrderID) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Order ID is required",
			})
			return
		}

		var upstream *models.UpstreamError
		if errors.As(err, &upstream) {
			logrus.Errorf("Failed to get order status for %s", req.OrderID)
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": upstream.Message,
				"error":   upstream.Raw,
			})
			return
		}

		logrus.Errorf("Error verifying payment: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Internal server error",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}
