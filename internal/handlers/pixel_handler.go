package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/abhay7074/nexamind-payments/internal/metrics"
	"github.com/abhay7074/nexamind-payments/internal/models"
	"github.com/abhay7074/nexamind-payments/internal/models/dto"
	"github.com/abhay7074/nexamind-payments/internal/pixel"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ConversionAPIIn defines the marketing events the storefront can relay.
type ConversionAPIIn interface {
	SendPurchase(ctx context.Context, conv models.PurchaseConversion) error
	SendInitiateCheckout(ctx context.Context, client models.ClientContext, email, phone string) error
	SendLead(ctx context.Context, client models.ClientContext) error
	SendPageView(ctx context.Context, client models.ClientContext, email, phone string) error
}

// PixelHandler relays browser-initiated conversion events to the marketing
// API. Amount is the fixed product price; the caller never controls it.
type PixelHandler struct {
	Pixel  ConversionAPIIn
	Amount float64
}

func NewPixelHandler(p ConversionAPIIn, amount float64) *PixelHandler {
	return &PixelHandler{Pixel: p, Amount: amount}
}

// POST /events/purchase
func (h *PixelHandler) Purchase(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	conv := models.PurchaseConversion{
		OrderID: req.OrderID,
		Amount:  h.Amount,
		Email:   req.Email,
		Phone:   req.Phone,
		Client:  clientContext(c, req),
	}

	h.dispatch(c, "Purchase", h.Pixel.SendPurchase(c.Request.Context(), conv))
}

// POST /events/checkout
func (h *PixelHandler) InitiateCheckout(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	err := h.Pixel.SendInitiateCheckout(c.Request.Context(), clientContext(c, req), req.Email, req.Phone)
	h.dispatch(c, "InitiateCheckout", err)
}

// POST /events/lead
func (h *PixelHandler) Lead(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	h.dispatch(c, "Lead", h.Pixel.SendLead(c.Request.Context(), clientContext(c, req)))
}

// POST /events/pageview
func (h *PixelHandler) PageView(c *gin.Context) {
	req, ok := h.bind(c)
	if !ok {
		return
	}

	err := h.Pixel.SendPageView(c.Request.Context(), clientContext(c, req), req.Email, req.Phone)
	h.dispatch(c, "PageView", err)
}

func (h *PixelHandler) bind(c *gin.Context) (dto.PixelEventRequest, bool) {
	var req dto.PixelEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return req, false
	}
	return req, true
}

func (h *PixelHandler) dispatch(c *gin.Context, eventName string, err error) {
	if err != nil {
		metrics.ConversionEventsTotal.WithLabelValues(eventName, "error").Inc()

		if errors.Is(err, pixel.ErrMissingCredentials) {
			logrus.Error("Missing Facebook credentials")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error"})
			return
		}

		var upstream *models.UpstreamError
		if errors.As(err, &upstream) {
			logrus.Errorf("Facebook CAPI error: %s", upstream.Message)
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   upstream.Raw,
			})
			return
		}

		logrus.Errorf("Error sending %s event: %s", eventName, err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	metrics.ConversionEventsTotal.WithLabelValues(eventName, "sent").Inc()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": eventName + " event sent successfully",
	})
}

func clientContext(c *gin.Context, req dto.PixelEventRequest) models.ClientContext {
	return models.ClientContext{
		IPAddress:      c.ClientIP(),
		UserAgent:      c.Request.UserAgent(),
		FBP:            req.FBP,
		FBC:            req.FBC,
		EventSourceURL: req.EventSourceURL,
		TestEventCode:  req.TestEventCode,
	}
}
