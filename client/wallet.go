package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// TokenChange is a simplified token balance delta within a transaction.
type TokenChange struct {
	Symbol string  `json:"symbol"`
	Amount float64 `json:"amount"`
	Owner  string  `json:"owner"`
}

// Transaction is a simplified wallet transaction as served by the proxy.
type Transaction struct {
	Signature    string        `json:"signature"`
	Timestamp    int64         `json:"timestamp"`
	Type         string        `json:"type"`
	TokenChanges []TokenChange `json:"token_changes"`
}

// Time returns the transaction timestamp as a time.Time.
func (t *Transaction) Time() time.Time {
	return time.Unix(t.Timestamp, 0).UTC()
}

// Client is the HTTP client for the wallet transaction proxy.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new proxy client.
func NewClient(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Transactions retrieves simplified transactions for a wallet address.
// A negative limit lets the server apply its configured default.
func (c *Client) Transactions(ctx context.Context, address string, limit int) ([]Transaction, error) {
	u := fmt.Sprintf("%s/wallet/%s/txs_simple", c.baseURL, url.PathEscape(address))
	if limit >= 0 {
		u += "?limit=" + strconv.Itoa(limit)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.parseErrorResponse(resp)
	}

	var txs []Transaction
	if err := json.NewDecoder(resp.Body).Decode(&txs); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("transactions fetched", "address", address, "count", len(txs))
	return txs, nil
}

// Health checks whether the server is up.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned unhealthy status: %d", resp.StatusCode)
	}
	return nil
}

// parseErrorResponse extracts the error message from a failed response.
func (c *Client) parseErrorResponse(resp *http.Response) error {
	var errResp struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Error == "" {
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, errResp.Error)
}
