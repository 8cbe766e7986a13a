package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhay7074/nexamind-payments/config"
	"github.com/abhay7074/nexamind-payments/internal/metrics"
	"github.com/abhay7074/nexamind-payments/internal/models"
	"github.com/abhay7074/nexamind-payments/internal/models/dto"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	// ErrMissingOrderID is returned when a verification request carries no
	// order identifier; no upstream call is made in that case.
	ErrMissingOrderID = errors.New("order ID is required")

	// ErrMissingSignature rejects webhooks arriving without both signature
	// headers. Unsigned notifications are never processed.
	ErrMissingSignature = errors.New("missing webhook signature headers")

	ErrInvalidSignature = errors.New("invalid webhook signature")
)

// Gateway defines the payment gateway operations the checkout flow needs.
type Gateway interface {
	CreateOrder(ctx context.Context, order models.CashfreeOrderRequest) (*models.CashfreeOrderResponse, error)
	GetOrder(ctx context.Context, orderID string) (*models.CashfreeOrderResponse, error)
	VerifySignature(timestamp string, rawBody []byte, signature string) bool
}

// ConversionDispatcher records a purchase with the marketing API.
type ConversionDispatcher interface {
	SendPurchase(ctx context.Context, conv models.PurchaseConversion) error
}

// EbookMailer delivers the purchase-confirmation email.
type EbookMailer interface {
	SendEbook(ctx context.Context, toEmail, toName, orderID string) error
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// OrderRepo persists order projection rows.
type OrderRepo interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	Update(ctx context.Context, order *models.Order, id string) error
}

// EventRepo persists processed webhook (order, event type) pairs.
type EventRepo interface {
	Create(ctx context.Context, event *models.ProcessedEvent) error
	GetBy(ctx context.Context, query string, value interface{}) (*[]models.ProcessedEvent, error)
}

// CheckoutService glues the payment gateway, the marketing API, and the
// ebook mailer together. It owns order creation, payment verification, and
// webhook processing; every downstream notification failure is non-fatal to
// the request that triggered it.
type CheckoutService struct {
	Gateway     Gateway
	Orders      OrderRepo
	Events      EventRepo
	Conversions ConversionDispatcher
	Mailer      EbookMailer
	Publisher   Publisher
	Product     config.Product
	BaseURL     string
}

func NewCheckoutService(
	gateway Gateway,
	orders OrderRepo,
	events EventRepo,
	conversions ConversionDispatcher,
	mailer EbookMailer,
	publisher Publisher,
	product config.Product,
	baseURL string,
) *CheckoutService {
	return &CheckoutService{
		Gateway:     gateway,
		Orders:      orders,
		Events:      events,
		Conversions: conversions,
		Mailer:      mailer,
		Publisher:   publisher,
		Product:     product,
		BaseURL:     baseURL,
	}
}

// CreateOrder opens a gateway order for the fixed product amount and returns
// the payment session the hosted checkout needs. Missing customer fields
// fall back to configured defaults rather than failing. The local projection
// row and the orders.created event are best-effort.
func (s *CheckoutService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest, origin string) (*dto.CreateOrderResponse, error) {
	req.Sanitize()
	if req.CustomerEmail == "" {
		req.CustomerEmail = s.Product.DefaultEmail
	}
	if req.CustomerPhone == "" {
		req.CustomerPhone = s.Product.DefaultPhone
	}
	if req.CustomerName == "" {
		req.CustomerName = s.Product.DefaultName
	}

	now := time.Now()
	orderID := models.NewOrderID(now)
	customerID := models.NewCustomerID(now)

	base := origin
	if base == "" {
		base = s.BaseURL
	}

	order := models.CashfreeOrderRequest{
		OrderID:       orderID,
		OrderAmount:   s.Product.Amount,
		OrderCurrency: s.Product.Currency,
		CustomerDetails: models.CashfreeCustomerDetails{
			CustomerID:    customerID,
			CustomerPhone: req.CustomerPhone,
			CustomerEmail: req.CustomerEmail,
			CustomerName:  req.CustomerName,
		},
		OrderMeta: models.CashfreeOrderMeta{
			ReturnURL: fmt.Sprintf("%s/payment-verify.html?order_id=%s", base, orderID),
			NotifyURL: base + "/webhooks/cashfree",
		},
		OrderNote: s.Product.OrderNote,
	}

	logrus.Infof("Creating order %s for %s", orderID, req.CustomerEmail)

	resp, err := s.Gateway.CreateOrder(ctx, order)
	if err != nil {
		metrics.OrdersCreatedTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	if resp.PaymentSessionID == "" {
		metrics.OrdersCreatedTotal.WithLabelValues("rejected").Inc()
		message := resp.Message
		if message == "" {
			message = "Failed to create payment session"
		}
		return nil, &models.UpstreamError{Message: message, Raw: resp.Raw}
	}

	metrics.OrdersCreatedTotal.WithLabelValues("created").Inc()
	metrics.OrderAmounts.WithLabelValues(s.Product.Currency).Observe(s.Product.Amount)

	projection := &models.Order{
		ID:               orderID,
		CustomerID:       customerID,
		CustomerEmail:    req.CustomerEmail,
		CustomerPhone:    req.CustomerPhone,
		CustomerName:     req.CustomerName,
		Amount:           s.Product.Amount,
		Currency:         s.Product.Currency,
		Status:           models.OrderStatusPending,
		PaymentSessionID: resp.PaymentSessionID,
	}
	if err := s.Orders.Create(ctx, projection); err != nil {
		logrus.Errorf("Error storing order projection %s: %s", orderID, err.Error())
	}

	event := models.OrderCreatedEvent{
		OrderID:       orderID,
		CustomerID:    customerID,
		CustomerEmail: req.CustomerEmail,
		Amount:        s.Product.Amount,
		Currency:      s.Product.Currency,
		CreatedAt:     now,
	}
	if err := s.Publisher.Publish(ctx, models.OrderCreatedEventTopic, event); err != nil {
		logrus.Errorf("Error publishing order created event %s: %s", orderID, err.Error())
	}

	return &dto.CreateOrderResponse{
		Success:          true,
		OrderID:          orderID,
		PaymentSessionID: resp.PaymentSessionID,
		Message:          "Payment session created successfully",
	}, nil
}

// VerifyPayment relays the gateway's view of an order's status.
func (s *CheckoutService) VerifyPayment(ctx context.Context, orderID string) (*dto.VerifyPaymentResponse, error) {
	if orderID == "" {
		return nil, ErrMissingOrderID
	}

	logrus.Infof("Verifying payment for order %s", orderID)

	resp, err := s.Gateway.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if resp.OrderStatus == "" {
		return nil, &models.UpstreamError{Message: "Failed to verify payment status", Raw: resp.Raw}
	}

	return &dto.VerifyPaymentResponse{
		Success:       true,
		OrderID:       orderID,
		PaymentStatus: resp.OrderStatus,
		OrderAmount:   resp.OrderAmount,
		OrderCurrency: resp.OrderCurrency,
	}, nil
}

// ProcessWebhook authenticates a gateway notification and triggers downstream
// notifications for recognized event types. The returned message becomes the
// acknowledgment body; any recognized-or-not event that passes authentication
// is acknowledged so the gateway does not retry-storm.
func (s *CheckoutService) ProcessWebhook(ctx context.Context, rawBody []byte, signature, timestamp string) (string, error) {
	if signature == "" || timestamp == "" {
		return "", ErrMissingSignature
	}
	if !s.Gateway.VerifySignature(timestamp, rawBody, signature) {
		return "", ErrInvalidSignature
	}

	var event models.WebhookEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		return "", fmt.Errorf("error parsing webhook payload: %w", err)
	}

	logrus.Infof("Webhook received: %s", event.Type)
	metrics.WebhooksReceivedTotal.WithLabelValues(event.Type).Inc()

	switch event.Type {
	case models.WebhookTypePaymentSuccess:
		s.handlePaymentSuccess(ctx, event)
		return "Webhook processed successfully", nil
	case models.WebhookTypePaymentFailed:
		s.handlePaymentFailed(ctx, event)
		return "Payment failure recorded", nil
	default:
		return "Webhook received", nil
	}
}

func (s *CheckoutService) handlePaymentSuccess(ctx context.Context, event models.WebhookEvent) {
	orderID := event.Data.Order.OrderID
	customer := event.Data.CustomerDetails

	logrus.Infof("Payment successful: order=%s amount=%.2f status=%s",
		orderID, event.Data.Order.OrderAmount, event.Data.Payment.PaymentStatus)

	if s.alreadyProcessed(ctx, orderID, event.Type) {
		logrus.Infof("Webhook for order %s already processed, skipping dispatch", orderID)
		return
	}

	record := &models.ProcessedEvent{
		OrderID:     orderID,
		EventType:   event.Type,
		ProcessedAt: time.Now(),
	}
	if err := s.Events.Create(ctx, record); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logrus.Infof("Concurrent duplicate webhook for order %s, skipping dispatch", orderID)
			return
		}
		logrus.Errorf("Error recording processed event for order %s: %s", orderID, err.Error())
	}

	s.updateProjection(ctx, orderID, models.OrderStatusPaid)

	conv := models.PurchaseConversion{
		OrderID: orderID,
		Amount:  event.Data.Order.OrderAmount,
		Email:   customer.CustomerEmail,
		Phone:   customer.CustomerPhone,
		Client:  models.ClientContext{EventSourceURL: s.BaseURL},
	}
	if err := s.Conversions.SendPurchase(ctx, conv); err != nil {
		logrus.Errorf("Error sending purchase conversion for order %s: %s", orderID, err.Error())
	}

	if customer.CustomerEmail != "" {
		if err := s.Mailer.SendEbook(ctx, customer.CustomerEmail, customer.CustomerName, orderID); err != nil {
			logrus.Errorf("Error sending ebook email for order %s: %s", orderID, err.Error())
		}
	}

	succeeded := models.PaymentSucceededEvent{
		OrderID:       orderID,
		Amount:        event.Data.Order.OrderAmount,
		CustomerEmail: customer.CustomerEmail,
		OccurredAt:    time.Now(),
	}
	if err := s.Publisher.Publish(ctx, models.PaymentSucceededEventTopic, succeeded); err != nil {
		logrus.Errorf("Error publishing payment succeeded event %s: %s", orderID, err.Error())
	}
}

func (s *CheckoutService) handlePaymentFailed(ctx context.Context, event models.WebhookEvent) {
	orderID := event.Data.Order.OrderID
	logrus.Infof("Payment failed: %s", orderID)

	s.updateProjection(ctx, orderID, models.OrderStatusFailed)

	failed := models.PaymentFailedEvent{
		OrderID:    orderID,
		OccurredAt: time.Now(),
	}
	if err := s.Publisher.Publish(ctx, models.PaymentFailedEventTopic, failed); err != nil {
		logrus.Errorf("Error publishing payment failed event %s: %s", orderID, err.Error())
	}
}

func (s *CheckoutService) alreadyProcessed(ctx context.Context, orderID, eventType string) bool {
	records, err := s.Events.GetBy(ctx, "order_id = ?", orderID)
	if err != nil {
		logrus.Errorf("Error looking up processed events for order %s: %s", orderID, err.Error())
		return false
	}

	for _, record := range *records {
		if record.EventType == eventType {
			return true
		}
	}

	return false
}

// updateProjection moves the local order row to a terminal status. The row
// may not exist when the order predates the store; that is not an error.
func (s *CheckoutService) updateProjection(ctx context.Context, orderID string, status models.OrderStatus) {
	order, err := s.Orders.GetByID(ctx, orderID)
	if err != nil {
		logrus.Warnf("No order projection for %s: %s", orderID, err.Error())
		return
	}

	order.Status = status
	if err := s.Orders.Update(ctx, order, orderID); err != nil {
		logrus.Errorf("Error updating order projection %s: %s", orderID, err.Error())
	}
}
