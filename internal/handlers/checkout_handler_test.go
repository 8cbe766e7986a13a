package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abhay7074/nexamind-payments/internal/handlers"
	"github.com/abhay7074/nexamind-payments/internal/handlers/mocks"
	"github.com/abhay7074/nexamind-payments/internal/models"
	"github.com/abhay7074/nexamind-payments/internal/models/dto"
	"github.com/abhay7074/nexamind-payments/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func checkoutRouter(h *handlers.CheckoutHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.POST("/orders", h.CreateOrder)
	router.POST("/payments/verify", h.VerifyPayment)
	return router
}

func TestCreateOrderHandler_Success(t *testing.T) {
	mockService := mocks.NewMockCheckoutServiceIn(t)
	router := checkoutRouter(handlers.NewCheckoutHandler(mockService))

	mockService.EXPECT().
		CreateOrder(mock.Anything, dto.CreateOrderRequest{CustomerEmail: "a@b.com"}, "https://shop.example.com").
		Return(&dto.CreateOrderResponse{
			Success:          true,
			OrderID:          "ORDER_1_abcdefghi",
			PaymentSessionID: "session-123",
			Message:          "Payment session created successfully",
		}, nil).
		Once()

	body := bytes.NewBufferString(`{"customer_email":"a@b.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/orders", body)
	req.Header.Set("Origin", "https://shop.example.com")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp dto.CreateOrderResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "session-123", resp.PaymentSessionID)
	assert.Equal(t, "ORDER_1_abcdefghi", resp.OrderID)
}

func TestCreateOrderHandler_EmptyBodyUsesDefaults(t *testing.T) {
	mockService := mocks.NewMockCheckoutServiceIn(t)
	router := checkoutRouter(handlers.NewCheckoutHandler(mockService))

	mockService.EXPECT().
		CreateOrder(mock.Anything, dto.CreateOrderRequest{}, "").
		Return(&dto.CreateOrderResponse{Success: true, PaymentSessionID: "session-456"}, nil).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/orders", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestCreateOrderHandler_UpstreamError(t *testing.T) {
	mockService := mocks.NewMockCheckoutServiceIn(t)
	router := checkoutRouter(handlers.NewCheckoutHandler(mockService))

	mockService.EXPECT().
		CreateOrder(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, &models.UpstreamError{
			Message: "order_amount invalid",
			Raw:     json.RawMessage(`{"message":"order_amount invalid","code":"request_invalid"}`),
		}).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(`{}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "order_amount invalid", resp["message"])
	assert.Contains(t, recorder.Body.String(), "request_invalid")
}

func TestCreateOrderHandler_InternalError(t *testing.T) {
	mockService := mocks.NewMockCheckoutServiceIn(t)
	router := checkoutRouter(handlers.NewCheckoutHandler(mockService))

	mockService.EXPECT().
		CreateOrder(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection refused")).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(`{}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Internal server error")
}

func TestCreateOrderHandler_MethodNotAllowed(t *testing.T) {
	mockService := mocks.NewMockCheckoutServiceIn(t)
	router := checkoutRouter(handlers.NewCheckoutHandler(mockService))

	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
	mockService.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
}

func TestVerifyPaymentHandler_Success(t *testing.T) {
	mockService := mocks.NewMockCheckoutServiceIn(t)
	router := checkoutRouter(handlers.NewCheckoutHandler(mockService))

	mockService.EXPECT().
		VerifyPayment(mock.Anything, "ORDER_1_abc").
		Return(&dto.VerifyPaymentResponse{
			Success:       true,
			OrderID:       "ORDER_1_abc",
			PaymentStatus: "PAID",
			OrderAmount:   799.00,
			OrderCurrency: "INR",
		}, nil).
		Once()

	body := bytes.NewBufferString(`{"order_id":"ORDER_1_abc"}`)
	req := httptest.NewRequest(http.MethodPost, "/payments/verify", body)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var resp dto.VerifyPaymentResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "PAID", resp.PaymentStatus)
}

func TestVerifyPaymentHandler_MissingOrderID(t *testing.T) {
	mockService := mocks.NewMockCheckoutServiceIn(t)
	router := checkoutRouter(handlers.NewCheckoutHandler(mockService))

	mockService.EXPECT().
		VerifyPayment(mock.Anything, "").
		Return(nil, service.ErrMissingOrderID).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/payments/verify", bytes.NewBufferString(`{}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Order ID is required")
}

func TestVerifyPaymentHandler_UpstreamError(t *testing.T) {
	mockService := mocks.NewMockCheckoutServiceIn(t)
	router := checkoutRouter(handlers.NewCheckoutHandler(mockService))

	mockService.EXPECT().
		VerifyPayment(mock.Anything, "ORDER_missing").
		Return(nil, &models.UpstreamError{
			Message: "Failed to verify payment status",
			Raw:     json.RawMessage(`{"message":"order not found"}`),
		}).
		Once()

	body := bytes.NewBufferString(`{"order_id":"ORDER_missing"}`)
	req := httptest.NewRequest(http.MethodPost, "/payments/verify", body)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "order not found")
}
