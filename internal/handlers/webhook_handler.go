package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/abhay7074/nexamind-payments/internal/models"
	"github.com/abhay7074/nexamind-payments/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// WebhookServiceIn processes authenticated gateway notifications.
type WebhookServiceIn interface {
	ProcessWebhook(ctx context.Context, rawBody []byte, signature, timestamp string) (string, error)
}

type WebhookHandler struct {
	Service WebhookServiceIn
}

func NewWebhookHandler(s WebhookServiceIn) *WebhookHandler {
	return &WebhookHandler{Service: s}
}

// POST /webhooks/cashfree
//
// The raw body is needed for signature verification, so binding happens in
// the service after authentication.
func (h *WebhookHandler) HandleCashfree(c *gin.Context) {
	rawBody, err := io.ReadAll(c.Request.Body)
	if err != nil {
		logrus.Errorf("Error reading webhook body: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Webhook processing failed",
			"message": err.Error(),
		})
		return
	}

	message, err := h.Service.ProcessWebhook(
		c.Request.Context(),
		rawBody,
		c.GetHeader(models.WebhookSignatureHeader),
		c.GetHeader(models.WebhookTimestampHeader),
	)
	if err != nil {
		if errors.Is(err, service.ErrMissingSignature) || errors.Is(err, service.ErrInvalidSignature) {
			logrus.Error("Invalid webhook signature")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid signature"})
			return
		}

		logrus.Errorf("Webhook processing error: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Webhook processing failed",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": message,
	})
}
