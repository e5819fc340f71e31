package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	domainErrors "github.com/polkiloo/pawshope/internal/domain/errors"
	"github.com/polkiloo/pawshope/internal/domain/model"
)

// Processor API hosts.
const (
	SandboxBaseURL = "https://api-m.sandbox.paypal.com"
	LiveBaseURL    = "https://api-m.paypal.com"
)

const (
	tokenPath  = "/v1/oauth2/token"
	ordersPath = "/v2/checkout/orders"
)

// HTTPClient talks to the Orders v2 REST API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type linkResponse struct {
	Href   string `json:"href"`
	Rel    string `json:"rel"`
	Method string `json:"method"`
}

type createResponse struct {
	ID     string         `json:"id"`
	Status string         `json:"status"`
	Links  []linkResponse `json:"links"`
}

type captureResponse struct {
	ID            string          `json:"id"`
	Status        string          `json:"status"`
	PurchaseUnits json.RawMessage `json:"purchase_units"`
	Payer         json.RawMessage `json:"payer"`
}

type capturedUnit struct {
	Payments struct {
		Captures []struct {
			ID string `json:"id"`
		} `json:"captures"`
	} `json:"payments"`
}

type errorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	DebugID string `json:"debug_id"`
	// OAuth endpoint shape.
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// NewHTTPClient creates a client authenticating with OAuth2 client credentials.
func NewHTTPClient(baseURL, clientID, clientSecret string, timeout time.Duration, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse paypal url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("paypal url must be absolute")
	}
	if clientID == "" || clientSecret == "" {
		return nil, fmt.Errorf("paypal credentials must be provided")
	}

	creds := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     parsed.JoinPath(tokenPath).String(),
		AuthStyle:    oauth2.AuthStyleInHeader,
	}
	base := &http.Client{Timeout: timeout}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	httpClient := creds.Client(ctx)
	httpClient.Timeout = timeout

	return &HTTPClient{
		baseURL:    parsed,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// CreateOrder registers a new order at the processor.
func (c *HTTPClient) CreateOrder(ctx context.Context, req model.CheckoutRequest) (*model.CreatedOrder, error) {
	payload, err := buildOrder(req)
	if err != nil {
		return nil, err
	}

	headers := map[string]string{"Prefer": "return=representation"}
	if req.ReferenceID != "" {
		headers["PayPal-Request-Id"] = req.ReferenceID
	}

	var data createResponse
	if err := c.post(ctx, c.baseURL.JoinPath(ordersPath), payload, headers, &data); err != nil {
		return nil, err
	}

	order := &model.CreatedOrder{ID: data.ID, Status: data.Status}
	for _, l := range data.Links {
		order.Links = append(order.Links, model.Link{Href: l.Href, Rel: l.Rel, Method: l.Method})
	}
	return order, nil
}

// CaptureOrder captures payment for an approved order.
func (c *HTTPClient) CaptureOrder(ctx context.Context, orderID string) (*model.CapturedOrder, error) {
	if !validOrderID(orderID) {
		return nil, &domainErrors.GatewayError{Status: http.StatusBadRequest, Detail: "invalid order id"}
	}
	endpoint := c.baseURL.JoinPath(ordersPath, orderID, "capture")

	var data captureResponse
	if err := c.post(ctx, endpoint, struct{}{}, nil, &data); err != nil {
		return nil, err
	}

	return &model.CapturedOrder{
		ID:            data.ID,
		Status:        data.Status,
		TransactionID: firstCaptureID(data.PurchaseUnits),
		PurchaseUnits: data.PurchaseUnits,
		Payer:         data.Payer,
	}, nil
}

func (c *HTTPClient) post(ctx context.Context, endpoint *url.URL, payload any, headers map[string]string, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode paypal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			c.logger.Error("paypal authentication failed", slog.Int("status", retrieveErr.Response.StatusCode))
			return &domainErrors.GatewayError{
				Status: retrieveErr.Response.StatusCode,
				Detail: describeError(retrieveErr.Body, retrieveErr.Response.Status),
				Err:    err,
			}
		}
		return domainErrors.NewTransportError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domainErrors.NewTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := describeError(respBody, resp.Status)
		c.logger.Error("paypal request failed",
			slog.String("path", endpoint.Path),
			slog.Int("status", resp.StatusCode),
			slog.String("detail", detail),
		)
		return &domainErrors.GatewayError{Status: resp.StatusCode, Detail: detail}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return &domainErrors.GatewayError{
			Status: http.StatusBadGateway,
			Detail: "malformed processor response",
			Err:    err,
		}
	}
	return nil
}

func describeError(body []byte, fallback string) string {
	var e errorResponse
	if err := json.Unmarshal(body, &e); err != nil {
		if text := strings.TrimSpace(string(body)); text != "" {
			return text
		}
		return fallback
	}

	name, message := e.Name, e.Message
	if name == "" {
		name, message = e.Error, e.ErrorDescription
	}
	if name == "" && message == "" {
		return fallback
	}

	detail := name
	if message != "" {
		if detail != "" {
			detail += ": "
		}
		detail += message
	}
	if e.DebugID != "" {
		detail += fmt.Sprintf(" (debug_id %s)", e.DebugID)
	}
	return detail
}

// validOrderID accepts processor ids, which are letters, digits, dashes and underscores.
func validOrderID(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
		default:
			return false
		}
	}
	return true
}

func firstCaptureID(raw json.RawMessage) string {
	var units []capturedUnit
	if len(raw) == 0 || json.Unmarshal(raw, &units) != nil {
		return ""
	}
	if len(units) == 0 || len(units[0].Payments.Captures) == 0 {
		return ""
	}
	return units[0].Payments.Captures[0].ID
}
