package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abhay7074/nexamind-payments/internal/handlers"
	"github.com/abhay7074/nexamind-payments/internal/handlers/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func emailRouter(h *handlers.EmailHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/emails/ebook", h.SendEbook)
	return router
}

func TestEmailHandler_Success(t *testing.T) {
	mockMailer := mocks.NewMockEbookMailerIn(t)
	router := emailRouter(handlers.NewEmailHandler(mockMailer))

	mockMailer.EXPECT().
		SendEbook(mock.Anything, "a@b.com", "Alex", "ORDER_1_abc").
		Return(nil).
		Once()

	body := bytes.NewBufferString(`{"customerEmail":"a@b.com","customerName":"Alex","orderId":"ORDER_1_abc"}`)
	req := httptest.NewRequest(http.MethodPost, "/emails/ebook", body)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Email sent successfully")
}

func TestEmailHandler_MissingEmail(t *testing.T) {
	mockMailer := mocks.NewMockEbookMailerIn(t)
	router := emailRouter(handlers.NewEmailHandler(mockMailer))

	req := httptest.NewRequest(http.MethodPost, "/emails/ebook", bytes.NewBufferString(`{}`))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Email is required")
	mockMailer.AssertNotCalled(t, "SendEbook", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEmailHandler_SendFailure(t *testing.T) {
	mockMailer := mocks.NewMockEbookMailerIn(t)
	router := emailRouter(handlers.NewEmailHandler(mockMailer))

	mockMailer.EXPECT().
		SendEbook(mock.Anything, "a@b.com", "", "").
		Return(errors.New("smtp unavailable")).
		Once()

	body := bytes.NewBufferString(`{"customerEmail":"a@b.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/emails/ebook", body)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Failed to send email")
}
