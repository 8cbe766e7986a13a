package pixel

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/abhay7074/nexamind-payments/config"
	"github.com/abhay7074/nexamind-payments/internal/models"
	"github.com/sirupsen/logrus"
)

const defaultGraphBaseURL = "https://graph.facebook.com/v18.0"

// ErrMissingCredentials is returned when the pixel id or access token is not
// configured. Handlers map it to a server-configuration error.
var ErrMissingCredentials = errors.New("missing facebook pixel credentials")

// FacebookClient sends server-side events to the Facebook Conversions API.
// Personal identifiers are SHA-256 hashed before transmission.
type FacebookClient struct {
	PixelID     string
	AccessToken string
	BaseURL     string
	Currency    string
	ContentName string
	Value       float64
	HTTPClient  *http.Client
}

func NewFacebookClient(cfg config.Facebook, product config.Product, httpClient *http.Client) *FacebookClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &FacebookClient{
		PixelID:     cfg.PixelID,
		AccessToken: cfg.AccessToken,
		BaseURL:     defaultGraphBaseURL,
		Currency:    product.Currency,
		ContentName: product.Name,
		Value:       product.Amount,
		HTTPClient:  httpClient,
	}
}

type userData struct {
	ClientIPAddress string   `json:"client_ip_address,omitempty"`
	ClientUserAgent string   `json:"client_user_agent,omitempty"`
	FBC             string   `json:"fbc,omitempty"`
	FBP             string   `json:"fbp,omitempty"`
	EM              []string `json:"em,omitempty"`
	PH              []string `json:"ph,omitempty"`
}

type customData struct {
	Currency    string  `json:"currency"`
	Value       float64 `json:"value"`
	ContentName string  `json:"content_name"`
	ContentType string  `json:"content_type"`
	OrderID     string  `json:"order_id,omitempty"`
}

type capiEvent struct {
	EventName      string      `json:"event_name"`
	EventTime      int64       `json:"event_time"`
	ActionSource   string      `json:"action_source"`
	EventSourceURL string      `json:"event_source_url,omitempty"`
	UserData       userData    `json:"user_data"`
	CustomData     *customData `json:"custom_data,omitempty"`
}

type capiEnvelope struct {
	Data          []capiEvent `json:"data"`
	TestEventCode string      `json:"test_event_code,omitempty"`
}

type capiResponse struct {
	EventsReceived int `json:"events_received"`
}

// SendPurchase reports a completed purchase with the order's actual amount.
func (c *FacebookClient) SendPurchase(ctx context.Context, conv models.PurchaseConversion) error {
	event := c.newEvent("Purchase", conv.Client, conv.Email, conv.Phone)
	event.CustomData = &customData{
		Currency:    c.Currency,
		Value:       conv.Amount,
		ContentName: c.ContentName,
		ContentType: "product",
		OrderID:     conv.OrderID,
	}

	return c.send(ctx, event, conv.Client.TestEventCode)
}

// SendInitiateCheckout reports a checkout start with the fixed product value.
func (c *FacebookClient) SendInitiateCheckout(ctx context.Context, client models.ClientContext, email, phone string) error {
	event := c.newEvent("InitiateCheckout", client, email, phone)
	event.CustomData = &customData{
		Currency:    c.Currency,
		Value:       c.Value,
		ContentName: c.ContentName,
		ContentType: "product",
	}

	return c.send(ctx, event, client.TestEventCode)
}

// SendLead reports a scroll-depth lead; matching hints only, no identifiers.
func (c *FacebookClient) SendLead(ctx context.Context, client models.ClientContext) error {
	return c.send(ctx, c.newEvent("Lead", client, "", ""), client.TestEventCode)
}

func (c *FacebookClient) SendPageView(ctx context.Context, client models.ClientContext, email, phone string) error {
	return c.send(ctx, c.newEvent("PageView", client, email, phone), client.TestEventCode)
}

func (c *FacebookClient) newEvent(name string, client models.ClientContext, email, phone string) capiEvent {
	event := capiEvent{
		EventName:      name,
		EventTime:      time.Now().Unix(),
		ActionSource:   "website",
		EventSourceURL: client.EventSourceURL,
		UserData: userData{
			ClientIPAddress: client.IPAddress,
			ClientUserAgent: client.UserAgent,
			FBC:             client.FBC,
			FBP:             client.FBP,
		},
	}

	if email != "" {
		event.UserData.EM = []string{hashIdentifier(email)}
	}
	if phone != "" {
		event.UserData.PH = []string{hashIdentifier(phone)}
	}

	return event
}

func (c *FacebookClient) send(ctx context.Context, event capiEvent, testEventCode string) error {
	if c.PixelID == "" || c.AccessToken == "" {
		return ErrMissingCredentials
	}

	payload, err := json.Marshal(capiEnvelope{
		Data:          []capiEvent{event},
		TestEventCode: testEventCode,
	})
	if err != nil {
		return fmt.Errorf("error marshaling %s event: %w", event.EventName, err)
	}

	url := fmt.Sprintf("%s/%s/events?access_token=%s", c.BaseURL, c.PixelID, c.AccessToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("error building %s event request: %w", event.EventName, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("error calling facebook capi: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading facebook capi response: %w", err)
	}

	var result capiResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("error parsing facebook capi response: %w", err)
	}

	if result.EventsReceived == 0 {
		return &models.UpstreamError{
			Message: fmt.Sprintf("facebook capi rejected %s event", event.EventName),
			Raw:     body,
		}
	}

	logrus.Infof("Facebook CAPI accepted %s event", event.EventName)

	return nil
}

// hashIdentifier normalizes and SHA-256 hashes a personal identifier the way
// the Conversions API requires: lowercased, trimmed, hex-encoded.
func hashIdentifier(value string) string {
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(value))))
	return hex.EncodeToString(sum[:])
}
