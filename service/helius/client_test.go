package helius

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressTransactions_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/v0/addresses/So11111111111111111111111111111111111111112/transactions", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api-key"))
		assert.Equal(t, "3", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]EnrichedTransaction{
			{Signature: "sig1", Timestamp: 1700000002, Type: "TRANSFER"},
			{Signature: "sig2", Timestamp: 1700000001, Type: "SWAP"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", time.Second, nil, nil)
	txs, err := client.AddressTransactions(context.Background(), "So11111111111111111111111111111111111111112", 3)
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, "sig1", txs[0].Signature)
	assert.Equal(t, "TRANSFER", txs[0].Type)
	assert.Equal(t, "sig2", txs[1].Signature)
}

func TestAddressTransactions_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"address not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", time.Second, nil, nil)
	txs, err := client.AddressTransactions(context.Background(), "wallet123", 3)
	require.Error(t, err)
	assert.Nil(t, txs)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "address not found")
}

func TestAddressTransactions_Unreachable(t *testing.T) {
	// Start and immediately close a server so the address refuses connections.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "test-key", time.Second, nil, nil)
	_, err := client.AddressTransactions(context.Background(), "wallet123", 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestAddressTransactions_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", 50*time.Millisecond, nil, nil)
	_, err := client.AddressTransactions(context.Background(), "wallet123", 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestAddressTransactions_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"an array"`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", time.Second, nil, nil)
	_, err := client.AddressTransactions(context.Background(), "wallet123", 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}

func TestAddressTransactions_EmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[]"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", time.Second, nil, nil)
	txs, err := client.AddressTransactions(context.Background(), "wallet123", 3)
	require.NoError(t, err)
	assert.Empty(t, txs)
}
