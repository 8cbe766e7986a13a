package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"

	"github.com/abhay7074/nexamind-payments/config"
	"github.com/abhay7074/nexamind-payments/internal/models"
	"github.com/abhay7074/nexamind-payments/internal/models/dto"
	"github.com/abhay7074/nexamind-payments/internal/service"
	"github.com/abhay7074/nexamind-payments/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

var testProduct = config.Product{
	Amount:       799.00,
	Currency:     "INR",
	Name:         "Advanced Prompt Engineering Mastery",
	OrderNote:    "Advanced Prompt Engineering Mastery - NexaMind",
	DefaultEmail: "customer@trynexamind.com",
	DefaultPhone: "9999999999",
	DefaultName:  "NexaMind Customer",
}

type serviceMocks struct {
	gateway     *mocks.MockGateway
	orders      *mocks.MockOrderRepo
	events      *mocks.MockEventRepo
	conversions *mocks.MockConversionDispatcher
	mailer      *mocks.MockEbookMailer
	publisher   *mocks.MockPublisher
}

func newCheckoutService(t *testing.T) (*service.CheckoutService, serviceMocks) {
	m := serviceMocks{
		gateway:     mocks.NewMockGateway(t),
		orders:      mocks.NewMockOrderRepo(t),
		events:      mocks.NewMockEventRepo(t),
		conversions: mocks.NewMockConversionDispatcher(t),
		mailer:      mocks.NewMockEbookMailer(t),
		publisher:   mocks.NewMockPublisher(t),
	}
	s := service.NewCheckoutService(
		m.gateway, m.orders, m.events, m.conversions, m.mailer, m.publisher,
		testProduct, "https://trynexamind.com",
	)
	return s, m
}

func TestCreateOrder_Success(t *testing.T) {
	checkoutService, m := newCheckoutService(t)
	ctx := context.Background()

	m.gateway.EXPECT().
		CreateOrder(ctx, mock.MatchedBy(func(order models.CashfreeOrderRequest) bool {
			return order.OrderAmount == 799.00 &&
				order.OrderCurrency == "INR" &&
				order.CustomerDetails.CustomerEmail == "a@b.com"
		})).
		Return(&models.CashfreeOrderResponse{PaymentSessionID: "session-123"}, nil).
		Once()

	m.orders.EXPECT().
		Create(ctx, mock.AnythingOfType("*models.Order")).
		Return(nil).
		Once()

	m.publisher.EXPECT().
		Publish(ctx, models.OrderCreatedEventTopic, mock.AnythingOfType("models.OrderCreatedEvent")).
		Return(nil).
		Once()

	resp, err := checkoutService.CreateOrder(ctx, dto.CreateOrderRequest{CustomerEmail: "a@b.com"}, "")

	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "session-123", resp.PaymentSessionID)
	assert.Regexp(t, regexp.MustCompile(`^ORDER_\d+_[a-z0-9]{9}$`), resp.OrderID)
	m.gateway.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.publisher.AssertExpectations(t)
}

func TestCreateOrder_AppliesDefaults(t *testing.T) {
	checkoutService, m := newCheckoutService(t)
	ctx := context.Background()

	m.gateway.EXPECT().
		CreateOrder(ctx, mock.MatchedBy(func(order models.CashfreeOrderRequest) bool {
			return order.CustomerDetails.CustomerEmail == testProduct.DefaultEmail &&
				order.CustomerDetails.CustomerPhone == testProduct.DefaultPhone &&
				order.CustomerDetails.CustomerName == testProduct.DefaultName
		})).
		Return(&models.CashfreeOrderResponse{PaymentSessionID: "session-456"}, nil).
		Once()

	m.orders.EXPECT().
		Create(ctx, mock.AnythingOfType("*models.Order")).
		Return(nil).
		Once()

	m.publisher.EXPECT().
		Publish(ctx, models.OrderCreatedEventTopic, mock.Anything).
		Return(nil).
		Once()

	resp, err := checkoutService.CreateOrder(ctx, dto.CreateOrderRequest{}, "")

	assert.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestCreateOrder_UsesOriginForCallbacks(t *testing.T) {
	checkoutService, m := newCheckoutService(t)
	ctx := context.Background()

	m.gateway.EXPECT().
		CreateOrder(ctx, mock.MatchedBy(func(order models.CashfreeOrderRequest) bool {
			return order.OrderMeta.NotifyURL == "https://shop.example.com/webhooks/cashfree"
		})).
		Return(&models.CashfreeOrderResponse{PaymentSessionID: "session-789"}, nil).
		Once()

	m.orders.EXPECT().
		Create(ctx, mock.Anything).
		Return(nil).
		Once()

	m.publisher.EXPECT().
		Publish(ctx, models.OrderCreatedEventTopic, mock.Anything).
		Return(nil).
		Once()

	_, err := checkoutService.CreateOrder(ctx, dto.CreateOrderRequest{}, "https://shop.example.com")

	assert.NoError(t, err)
}

func TestCreateOrder_GatewayRejection(t *testing.T) {
	checkoutService, m := newCheckoutService(t)
	ctx := context.Background()

	raw := json.RawMessage(`{"message":"order_amount invalid"}`)
	m.gateway.EXPECT().
		CreateOrder(ctx, mock.Anything).
		Return(&models.CashfreeOrderResponse{Message: "order_amount invalid", Raw: raw}, nil).
		Once()

	resp, err := checkoutService.CreateOrder(ctx, dto.CreateOrderRequest{}, "")

	assert.Nil(t, resp)
	var upstream *models.UpstreamError
	assert.ErrorAs(t, err, &upstream)
	assert.Equal(t, "order_amount invalid", upstream.Message)
	assert.Equal(t, raw, upstream.Raw)
	m.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateOrder_GatewayError(t *testing.T) {
	checkoutService, m := newCheckoutService(t)
	ctx := context.Background()

	expectedError := errors.New("connection refused")
	m.gateway.EXPECT().
		CreateOrder(ctx, mock.Anything).
		Return(nil, expectedError).
		Once()

	resp, err := checkoutService.CreateOrder(ctx, dto.CreateOrderRequest{}, "")

	assert.Nil(t, resp)
	assert.Equal(t, expectedError, err)
}

func TestCreateOrder_ProjectionFailureIsNonFatal(t *testing.T) {
	checkoutService, m := newCheckoutService(t)
	ctx := context.Background()

	m.gateway.EXPECT().
		CreateOrder(ctx, mock.Anything).
		Return(&models.CashfreeOrderResponse{PaymentSessionID: "session-123"}, nil).
		Once()

	m.orders.EXPECT().
		Create(ctx, mock.Anything).
		Return(errors.New("database error")).
		Once()

	m.publisher.EXPECT().
		Publish(ctx, models.OrderCreatedEventTopic, mock.Anything).
		Return(errors.New("kafka publish error")).
		Once()

	resp, err := checkoutService.CreateOrder(ctx, dto.CreateOrderRequest{}, "")

	assert.NoError(t, err)
	assert.True(t, resp.Success)
}

func TestCreateOrder_UniqueOrderIDs(t *testing.T) {
	seen := make(map[string]bool)
	pattern := regexp.MustCompile(`^ORDER_\d+_[a-z0-9]{9}$`)

	for i := 0; i < 1000; i++ {
		checkoutService, m := newCheckoutService(t)
		ctx := context.Background()

		m.gateway.EXPECT().
			CreateOrder(ctx, mock.Anything).
			Return(&models.CashfreeOrderResponse{PaymentSessionID: "session"}, nil).
			Once()
		m.orders.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
		m.publisher.EXPECT().Publish(ctx, models.OrderCreatedEventTopic, mock.Anything).Return(nil).Once()

		resp, err := checkoutService.CreateOrder(ctx, dto.CreateOrderRequest{}, "")

		assert.NoError(t, err)
		assert.Regexp(t, pattern, resp.OrderID)
		assert.False(t, seen[resp.OrderID], "duplicate order id %s", resp.OrderID)
		seen[resp.OrderID] = true
	}
}

func TestVerifyPayment_MissingOrderID(t *testing.T) {
	checkoutService, m := newCheckoutService(t)

	resp, err := checkoutService.VerifyPayment(context.Background(), "")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, service.ErrMissingOrderID)
	m.gateway.AssertNotCalled(t, "GetOrder", mock.Anything, mock.Anything)
}

func TestVerifyPayment_Success(t *testing.T) {
	checkoutService, m := newCheckoutService(t)
	ctx := context.Background()

	m.gateway.EXPECT().
		GetOrder(ctx, "ORDER_1_abc").
		Return(&models.CashfreeOrderResponse{
			OrderID:       "ORDER_1_abc",
			OrderStatus:   "PAID",
			OrderAmount:   799.00,
			OrderCurrency: "INR",
		}, nil).
		Once()

	resp, err := checkoutService.VerifyPayment(ctx, "ORDER_1_abc")

	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "PAID", resp.PaymentStatus)
	assert.Equal(t, 799.00, resp.OrderAmount)
	assert.Equal(t, "INR", resp.OrderCurrency)
}

func TestVerifyPayment_NoStatusFromGateway(t *testing.T) {
	checkoutService, m := newCheckoutService(t)
	ctx := context.Background()

	raw := json.RawMessage(`{"message":"order not found"}`)
	m.gateway.EXPECT().
		GetOrder(ctx, "ORDER_missing").
		Return(&models.CashfreeOrderResponse{Raw: raw}, nil).
		Once()

	resp, err := checkoutService.VerifyPayment(ctx, "ORDER_missing")

	assert.Nil(t, resp)
	var upstream *models.UpstreamError
	assert.ErrorAs(t, err, &upstream)
	assert.Equal(t, raw, upstream.Raw)
}

func successWebhookBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(models.WebhookEvent{
		Type: models.WebhookTypePaymentSuccess,
		Data: models.WebhookData{
			Order:   models.WebhookOrder{OrderID: "X", OrderAmount: 799},
			Payment: models.WebhookPayment{PaymentStatus: "SUCCESS"},
			CustomerDetails: models.WebhookCustomer{
				CustomerEmail: "c@d.com",
				CustomerPhone: "9876543210",
			},
		},
	})
	assert.NoError(t, err)
	return body
}

func TestProcessWebhook_MissingSignatureHeaders(t *testing.T) {
	checkoutService, m := newCheckoutService(t)

	_, err := checkoutService.ProcessWebhook(context.Background(), []byte(`{}`), "", "1700000000")

	assert.ErrorIs(t, err, service.ErrMissingSignature)
	m.gateway.AssertNotCalled(t, "VerifySignature", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessWebhook_InvalidSignature(t *testing.T) {
	checkoutService, m := newCheckoutService(t)

	body := []byte(`{}`)
	m.gateway.EXPECT().
		VerifySignature("1700000000", body, "bad-signature").
		Return(false).
		Once()

	_, err := checkoutService.ProcessWebhook(context.Background(), body, "bad-signature", "1700000000")

	assert.ErrorIs(t, err, service.ErrInvalidSignature)
	m.conversions.AssertNotCalled(t, "SendPurchase", mock.Anything, mock.Anything)
}

func TestProcessWebhook_MalformedPayload(t *testing.T) {
	checkoutService, m := newCheckoutService(t)

	body := []byte(`{"type":`)
	m.gateway.EXPECT().
		VerifySignature("1700000000", body, "sig").
		Return(true).
		Once()

	_, err := checkoutService.ProcessWebhook(context.Background(), body, "sig", "1700000000")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrInvalidSignature)
}

func TestProcessWebhook_Success_DispatchesNotifications(t *testing.T) {
	checkoutService, m := newCheckoutService(t)
	ctx := context.Background()
	body := successWebhookBody(t)

	m.gateway.EXPECT().
		VerifySignature("1700000000", body, "sig").
		Return(true).
		Once()

	m.events.EXPECT().
		GetBy(ctx, "order_id = ?", "X").
		Return(&[]models.ProcessedEvent{}, nil).
		Once()

	m.events.EXPECT().
		Create(ctx, mock.MatchedBy(func(e *models.ProcessedEvent) bool {
			return e.OrderID == "X" && e.EventType == models.WebhookTypePaymentSuccess
		})).
		Return(nil).
		Once()

	order := &models.Order{ID: "X", Status: models.OrderStatusPending}
	m.orders.EXPECT().GetByID(ctx, "X").Return(order, nil).Once()
	m.orders.EXPECT().
		Update(ctx, mock.MatchedBy(func(o *models.Order) bool {
			return o.Status == models.OrderStatusPaid
		}), "X").
		Return(nil).
		Once()

	m.conversions.EXPECT().
		SendPurchase(ctx, mock.MatchedBy(func(conv models.PurchaseConversion) bool {
			return conv.OrderID == "X" &&
				conv.Amount == 799 &&
				conv.Email == "c@d.com" &&
				conv.Client.EventSourceURL == "https://trynexamind.com"
		})).
		Return(nil).
		Once()

	m.mailer.EXPECT().
		SendEbook(ctx, "c@d.com", "", "X").
		Return(nil).
		Once()

	m.publisher.EXPECT().
		Publish(ctx, models.PaymentSucceededEventTopic, mock.AnythingOfType("models.PaymentSucceededEvent")).
		Return(nil).
		Once()

	message, err := checkoutService.ProcessWebhook(ctx, body, "sig", "1700000000")

	assert.NoError(t, err)
	assert.Equal(t, "Webhook processed successfully", message)
	m.conversions.AssertExpectations(t)
	m.mailer.AssertExpectations(t)
}

func TestProcessWebhook_EmailFailureStillAcknowledged(t *testing.T) {
	checkoutService, m := newCheckoutService(t)
	ctx := context.Background()
	body := successWebhookBody(t)

	m.gateway.EXPECT().VerifySignature("1700000000", body, "sig").Return(true).Once()
	m.events.EXPECT().GetBy(ctx, "order_id = ?", "X").Return(&[]models.ProcessedEvent{}, nil).Once()
	m.events.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
	m.orders.EXPECT().GetByID(ctx, "X").Return(nil, errors.New("record not found")).Once()
	m.conversions.EXPECT().SendPurchase(ctx, mock.Anything).Return(nil).Once()

	m.mailer.EXPECT().
		SendEbook(ctx, "c@d.com", "", "X").
		Return(errors.New("smtp unavailable")).
		Once()

	m.publisher.EXPECT().
		Publish(ctx, models.PaymentSucceededEventTopic, mock.Anything).
		Return(nil).
		Once()

	message, err := checkoutService.ProcessWebhook(ctx, body, "sig", "1700000000")

	assert.NoError(t, err)
	assert.Equal(t, "Webhook processed successfully", message)
}

func TestProcessWebhook_DuplicateDelivery_SkipsDispatch(t *testing.T) {
	checkoutService, m := newCheckoutService(t)
	ctx := context.Background()
	body := successWebhookBody(t)

	m.gateway.EXPECT().VerifySignature("1700000000", body, "sig").Return(true).Once()

	m.events.EXPECT().
		GetBy(ctx, "order_id = ?", "X").
		Return(&[]models.ProcessedEvent{
			{OrderID: "X", EventType: models.WebhookTypePaymentSuccess},
		}, nil).
		Once()

	message, err := checkoutService.ProcessWebhook(ctx, body, "sig", "1700000000")

	assert.NoError(t, err)
	assert.Equal(t, "Webhook processed successfully", message)
	m.events.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.conversions.AssertNotCalled(t, "SendPurchase", mock.Anything, mock.Anything)
	m.mailer.AssertNotCalled(t, "SendEbook", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	m.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessWebhook_ConcurrentDuplicate_SkipsDispatch(t *testing.T) {
	checkoutService, m := newCheckoutService(t)
	ctx := context.Background()
	body := successWebhookBody(t)

	m.gateway.EXPECT().VerifySignature("1700000000", body, "sig").Return(true).Once()

	// both deliveries raced past the lookup; the unique index rejects this one
	m.events.EXPECT().GetBy(ctx, "order_id = ?", "X").Return(&[]models.ProcessedEvent{}, nil).Once()
	m.events.EXPECT().Create(ctx, mock.Anything).Return(gorm.ErrDuplicatedKey).Once()

	message, err := checkoutService.ProcessWebhook(ctx, body, "sig", "1700000000")

	assert.NoError(t, err)
	assert.Equal(t, "Webhook processed successfully", message)
	m.orders.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	m.conversions.AssertNotCalled(t, "SendPurchase", mock.Anything, mock.Anything)
	m.mailer.AssertNotCalled(t, "SendEbook", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	m.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessWebhook_PaymentFailed(t *testing.T) {
	checkoutService, m := newCheckoutService(t)
	ctx := context.Background()

	body, err := json.Marshal(models.WebhookEvent{
		Type: models.WebhookTypePaymentFailed,
		Data: models.WebhookData{
			Order: models.WebhookOrder{OrderID: "Y"},
		},
	})
	assert.NoError(t, err)

	m.gateway.EXPECT().VerifySignature("1700000000", body, "sig").Return(true).Once()

	order := &models.Order{ID: "Y", Status: models.OrderStatusPending}
	m.orders.EXPECT().GetByID(ctx, "Y").Return(order, nil).Once()
	m.orders.EXPECT().
		Update(ctx, mock.MatchedBy(func(o *models.Order) bool {
			return o.Status == models.OrderStatusFailed
		}), "Y").
		Return(nil).
		Once()

	m.publisher.EXPECT().
		Publish(ctx, models.PaymentFailedEventTopic, mock.AnythingOfType("models.PaymentFailedEvent")).
		Return(nil).
		Once()

	message, err := checkoutService.ProcessWebhook(ctx, body, "sig", "1700000000")

	assert.NoError(t, err)
	assert.Equal(t, "Payment failure recorded", message)
	m.conversions.AssertNotCalled(t, "SendPurchase", mock.Anything, mock.Anything)
}

func TestProcessWebhook_UnknownTypeAcknowledged(t *testing.T) {
	checkoutService, m := newCheckoutService(t)

	body := []byte(`{"type":"PAYMENT_USER_DROPPED_WEBHOOK","data":{}}`)
	m.gateway.EXPECT().VerifySignature("1700000000", body, "sig").Return(true).Once()

	message, err := checkoutService.ProcessWebhook(context.Background(), body, "sig", "1700000000")

	assert.NoError(t, err)
	assert.Equal(t, "Webhook received", message)
	m.conversions.AssertNotCalled(t, "SendPurchase", mock.Anything, mock.Anything)
	m.publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestNewCheckoutService(t *testing.T) {
	checkoutService, m := newCheckoutService(t)

	assert.NotNil(t, checkoutService)
	assert.Equal(t, m.gateway, checkoutService.Gateway)
	assert.Equal(t, m.publisher, checkoutService.Publisher)
}
