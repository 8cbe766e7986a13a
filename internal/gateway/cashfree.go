package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/abhay7074/nexamind-payments/config"
	"github.com/abhay7074/nexamind-payments/internal/models"
)

const (
	productionBaseURL = "https://api.cashfree.com/pg"
	sandboxBaseURL    = "https://sandbox.cashfree.com/pg"

	apiVersion = "2023-08-01"
)

// CashfreeClient talks to the Cashfree PG orders API. Responses are returned
// with their raw payload attached even when the gateway reports an error, so
// callers can forward the upstream body verbatim.
type CashfreeClient struct {
	BaseURL    string
	AppID      string
	SecretKey  string
	HTTPClient *http.Client
}

func NewCashfreeClient(cfg config.Cashfree, httpClient *http.Client) *CashfreeClient {
	baseURL := sandboxBaseURL
	if cfg.Environment == "PROD" {
		baseURL = productionBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &CashfreeClient{
		BaseURL:    baseURL,
		AppID:      cfg.AppID,
		SecretKey:  cfg.SecretKey,
		HTTPClient: httpClient,
	}
}

// CreateOrder opens a new order with the gateway and returns the payment
// session the hosted checkout needs. A response without a payment_session_id
// is not an error at this layer; the service decides how to surface it.
func (c *CashfreeClient) CreateOrder(ctx context.Context, order models.CashfreeOrderRequest) (*models.CashfreeOrderResponse, error) {
	payload, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("error marshaling order request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/orders", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("error building order request: %w", err)
	}

	return c.do(req)
}

// GetOrder fetches the current order status from the gateway.
func (c *CashfreeClient) GetOrder(ctx context.Context, orderID string) (*models.CashfreeOrderResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/orders/"+orderID, nil)
	if err != nil {
		return nil, fmt.Errorf("error building order lookup request: %w", err)
	}

	return c.do(req)
}

// VerifySignature checks a webhook signature: base64(HMAC-SHA256(secret,
// timestamp+rawBody)) compared in constant time against the supplied value.
func (c *CashfreeClient) VerifySignature(timestamp string, rawBody []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.SecretKey))
	mac.Write([]byte(timestamp))
	mac.Write(rawBody)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

func (c *CashfreeClient) do(req *http.Request) (*models.CashfreeOrderResponse, error) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-client-id", c.AppID)
	req.Header.Set("x-client-secret", c.SecretKey)
	req.Header.Set("x-api-version", apiVersion)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling cashfree: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading cashfree response: %w", err)
	}

	var order models.CashfreeOrderResponse
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("error parsing cashfree response: %w", err)
	}
	order.Raw = body

	return &order, nil
}
