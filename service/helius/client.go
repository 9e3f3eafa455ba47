package helius

import (
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

	"github.com/olacrrypt/txsimple/service/metrics"
)

// maxErrorBodySize caps how much of an upstream error body we read back.
const maxErrorBodySize = 4 << 10

// ErrUnavailable indicates the Helius API could not be reached at all
// (network error, timeout, or cancelled context).
var ErrUnavailable = errors.New("helius unavailable")

// StatusError is returned when Helius responds with a non-2xx status.
// The status code is preserved so handlers can decide how to surface it.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("helius returned status %d: %s", e.StatusCode, e.Body)
}

// Client provides access to the Helius enhanced-transactions API.
// It wraps a plain HTTP client with a bounded timeout and metrics.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewClient creates a new Helius client.
// If metrics is nil, no metrics will be recorded.
// If logger is nil, logging is discarded.
func NewClient(baseURL, apiKey string, timeout time.Duration, m *metrics.Metrics, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		metrics:    m,
		logger:     logger,
	}
}

// AddressTransactions fetches up to limit enriched transactions for the
// given address, newest first. It issues exactly one upstream call.
func (c *Client) AddressTransactions(ctx context.Context, address string, limit int) ([]EnrichedTransaction, error) {
	u := fmt.Sprintf("%s/v0/addresses/%s/transactions?api-key=%s&limit=%d",
		c.baseURL,
		url.PathEscape(address),
		url.QueryEscape(c.apiKey),
		limit,
	)

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.DebugContext(ctx, "calling helius address transactions",
		"address", address,
		"limit", limit,
	)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start).Seconds()

	if err != nil {
		if c.metrics != nil {
			c.metrics.RecordHeliusRequest("error", duration)
		}
		c.logger.ErrorContext(ctx, "helius request failed",
			"address", address,
			"error", err,
		)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if c.metrics != nil {
			c.metrics.RecordHeliusRequest("error", duration)
		}
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		c.logger.WarnContext(ctx, "helius returned non-success status",
			"address", address,
			"status", resp.StatusCode,
		)
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var txs []EnrichedTransaction
	if err := json.NewDecoder(resp.Body).Decode(&txs); err != nil {
		if c.metrics != nil {
			c.metrics.RecordHeliusRequest("error", duration)
		}
		return nil, fmt.Errorf("failed to decode helius response: %w", err)
	}

	if c.metrics != nil {
		c.metrics.RecordHeliusRequest("success", duration)
		c.metrics.RecordHeliusTransactions(float64(len(txs)))
	}

	c.logger.DebugContext(ctx, "fetched transactions from helius",
		"address", address,
		"count", len(txs),
	)

	return txs, nil
}
