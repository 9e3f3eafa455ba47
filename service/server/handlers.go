package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	solanago "github.com/gagliardetto/solana-go"
	"github.com/olacrrypt/txsimple/service/config"
	"github.com/olacrrypt/txsimple/service/helius"
	"github.com/olacrrypt/txsimple/service/metrics"
)

const (
	maxAddressLength = 100 // Solana addresses are 44 chars, give buffer
)

var (
	// Valid Solana address characters: base58 (no 0, O, I, l)
	validAddressRegex = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]+$`)
)

// handleWalletTransactions returns a handler that serves simplified
// transaction history for a wallet.
// GET /wallet/{address}/txs_simple?limit={n}
//
// All input validation happens before the upstream call; an invalid
// address or limit never reaches Helius.
func handleWalletTransactions(client *helius.Client, cfg *config.Config, m *metrics.Metrics, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		address := r.PathValue("address")

		// Validate address format
		if err := validateAddress(address); err != nil {
			logger.Debug("invalid address", "address", address, "error", err)
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		}

		// Parse and validate limit
		limit, err := parseLimit(r.URL.Query().Get("limit"), cfg)
		if err != nil {
			logger.Debug("invalid limit", "limit", r.URL.Query().Get("limit"), "error", err)
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		}

		// Nothing to fetch for a zero limit; skip the upstream call.
		if limit == 0 {
			writeJSON(w, []helius.SimplifiedTransaction{}, http.StatusOK)
			return
		}

		txs, err := client.AddressTransactions(r.Context(), address, limit)
		if err != nil {
			var statusErr *helius.StatusError
			switch {
			case errors.As(err, &statusErr) && statusErr.StatusCode >= 400 && statusErr.StatusCode < 500:
				// Pass upstream client errors through with their status,
				// e.g. 404 for an address the provider does not recognize.
				logger.Debug("upstream rejected request",
					"address", address,
					"status", statusErr.StatusCode,
				)
				writeError(w, fmt.Sprintf("upstream error: %s", statusErr.Body), statusErr.StatusCode)
			default:
				logger.Error("failed to fetch transactions", "address", address, "error", err)
				writeError(w, "upstream provider unavailable", http.StatusBadGateway)
			}
			return
		}

		simplified := helius.SimplifyAll(txs)

		// Helius honors the limit parameter, but never trust the
		// upstream to cap the response for us.
		if len(simplified) > limit {
			simplified = simplified[:limit]
		}

		if m != nil {
			m.RecordTransactionsSimplified("/wallet/txs_simple", float64(len(simplified)))
		}

		logger.Debug("transactions simplified",
			"address", address,
			"limit", limit,
			"count", len(simplified),
		)
		writeJSON(w, simplified, http.StatusOK)
	})
}

// parseLimit parses the limit query parameter, applying the configured
// default when absent and rejecting values outside [0, MaxTxLimit].
func parseLimit(raw string, cfg *config.Config) (int, error) {
	if raw == "" {
		return cfg.DefaultTxLimit, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errorf("invalid limit: must be an integer")
	}

	if limit < 0 {
		return 0, errorf("invalid limit: must not be negative")
	}

	if limit > cfg.MaxTxLimit {
		return 0, errorf("invalid limit: maximum is %d", cfg.MaxTxLimit)
	}

	return limit, nil
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// validateAddress validates a wallet address for security and format.
func validateAddress(address string) error {
	if address == "" {
		return errorf("address is required")
	}

	if len(address) > maxAddressLength {
		return errorf("address too long: maximum length is %d characters", maxAddressLength)
	}

	// Check for null bytes and control characters
	for _, r := range address {
		if r == 0 || unicode.IsControl(r) {
			return errorf("invalid characters in address: control characters not allowed")
		}
	}

	if !validAddressRegex.MatchString(address) {
		return errorf("invalid address format: must contain only valid base58 characters")
	}

	// Strict decode: the address must be a real Solana public key,
	// not just base58-looking text.
	if _, err := solanago.PublicKeyFromBase58(address); err != nil {
		return errorf("invalid address: not a valid Solana public key")
	}

	return nil
}

// errorf is a helper to format error strings.
func errorf(format string, args ...interface{}) error {
	return &validationError{msg: strings.TrimSpace(fmt.Sprintf(format, args...))}
}

type validationError struct {
	msg string
}

func (e *validationError) Error() string {
	return e.msg
}
