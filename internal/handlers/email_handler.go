package handlers

import (
	"context"
	"net/http"

	"github.com/abhay7074/nexamind-payments/internal/metrics"
	"github.com/abhay7074/nexamind-payments/internal/models/dto"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// EbookMailerIn delivers the purchase-confirmation email.
type EbookMailerIn interface {
	SendEbook(ctx context.Context, toEmail, toName, orderID string) error
}

type EmailHandler struct {
	Mailer EbookMailerIn
}

func NewEmailHandler(m EbookMailerIn) *EmailHandler {
	return &EmailHandler{Mailer: m}
}

// POST /emails/ebook
func (h *EmailHandler) SendEbook(c *gin.Context) {
	var req dto.EbookEmailRequest
	_ = c.ShouldBindJSON(&req)

	if req.CustomerEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	if err := h.Mailer.SendEbook(c.Request.Context(), req.CustomerEmail, req.CustomerName, req.OrderID); err != nil {
		metrics.EmailsSentTotal.WithLabelValues("error").Inc()
		logrus.Errorf("Error sending ebook email: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to send email",
			"details": err.Error(),
		})
		return
	}

	metrics.EmailsSentTotal.WithLabelValues("sent").Inc()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Email sent successfully",
	})
}
