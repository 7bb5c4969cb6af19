package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultSearchLimit = 100

var httpClient = &http.Client{
	Timeout: 10 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 25,
		IdleConnTimeout:     30 * time.Second,
		ForceAttemptHTTP2:   true,
	},
}

// APIError surfaces non-successful HTTP responses from the commerce API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("commerce api error: status=%d body=%s", e.StatusCode, e.Body)
}

// Client is a lightweight client for the commerce platform's order and
// payment endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	siteID     string
}

// NewClient constructs a client for the given merchant connection.
func NewClient(baseURL, apiKey, siteID string) (*Client, error) {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("commerce base URL is required")
	}
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("commerce API key is required")
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		siteID:     siteID,
	}, nil
}

// SearchOrders returns orders created on or after the given instant.
func (c *Client) SearchOrders(ctx context.Context, createdAfter time.Time) ([]Order, error) {
	payload := searchOrdersRequest{
		Limit: defaultSearchLimit,
	}
	if !createdAfter.IsZero() {
		payload.CreatedAfter = createdAfter.UTC().Format(time.RFC3339)
	}

	body, err := c.doRequest(ctx, http.MethodPost, "/v1/orders/search", payload)
	if err != nil {
		return nil, err
	}

	var resp searchOrdersResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode orders search response: %w", err)
	}

	return resp.Orders, nil
}

// ListOrderTransactions returns the payments and refunds recorded against
// one order.
func (c *Client) ListOrderTransactions(ctx context.Context, orderID string) (*OrderTransactions, error) {
	if orderID == "" {
		return nil, errors.New("order id is required")
	}

	body, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/v1/payments/orders/%s", orderID), nil)
	if err != nil {
		return nil, err
	}

	var txns OrderTransactions
	if err := json.Unmarshal(body, &txns); err != nil {
		return nil, fmt.Errorf("decode order transactions response: %w", err)
	}
	if txns.OrderID == "" {
		txns.OrderID = orderID
	}

	return &txns, nil
}

func (c *Client) doRequest(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		buf := &bytes.Buffer{}
		if err := json.NewEncoder(buf).Encode(payload); err != nil {
			return nil, err
		}
		body = buf
	}

	url := fmt.Sprintf("%s%s", c.baseURL, path)
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", c.apiKey)
	if c.siteID != "" {
		req.Header.Set("X-Site-Id", c.siteID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	return data, nil
}
