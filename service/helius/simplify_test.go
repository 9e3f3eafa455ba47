package helius

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplify_KeepsNamedTokenChanges(t *testing.T) {
	tx := &EnrichedTransaction{
		Signature: "sig1",
		Timestamp: 1700000000,
		Type:      "SWAP",
		BalanceChanges: []BalanceChange{
			{
				Account:     "owner1",
				TokenAmount: 1.5,
				TokenInfo:   &TokenInfo{Symbol: "USDC", Mint: "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"},
			},
			{
				Account:     "owner2",
				TokenAmount: -1.5,
				TokenInfo:   &TokenInfo{Symbol: "SOL"},
			},
		},
	}

	simple := Simplify(tx)

	assert.Equal(t, "sig1", simple.Signature)
	assert.Equal(t, int64(1700000000), simple.Timestamp)
	assert.Equal(t, "SWAP", simple.Type)
	require.Len(t, simple.TokenChanges, 2)
	assert.Equal(t, TokenChange{Symbol: "USDC", Amount: 1.5, Owner: "owner1"}, simple.TokenChanges[0])
	assert.Equal(t, TokenChange{Symbol: "SOL", Amount: -1.5, Owner: "owner2"}, simple.TokenChanges[1])
}

func TestSimplify_DropsUnnamedChanges(t *testing.T) {
	tx := &EnrichedTransaction{
		Signature: "sig2",
		Type:      "TRANSFER",
		BalanceChanges: []BalanceChange{
			{Account: "intermediate", TokenAmount: 42}, // no token info at all
			{Account: "owner", TokenAmount: 7, TokenInfo: &TokenInfo{}}, // empty symbol
			{Account: "owner", TokenAmount: 1, TokenInfo: &TokenInfo{Symbol: "BONK"}},
		},
	}

	simple := Simplify(tx)
	require.Len(t, simple.TokenChanges, 1)
	assert.Equal(t, "BONK", simple.TokenChanges[0].Symbol)
}

func TestSimplify_NoChangesSerializesAsEmptyArray(t *testing.T) {
	simple := Simplify(&EnrichedTransaction{Signature: "sig3", Type: "UNKNOWN"})

	data, err := json.Marshal(simple)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"token_changes":[]`)
}

func TestSimplifyAll_PreservesOrder(t *testing.T) {
	txs := []EnrichedTransaction{
		{Signature: "newest", Timestamp: 3},
		{Signature: "middle", Timestamp: 2},
		{Signature: "oldest", Timestamp: 1},
	}

	out := SimplifyAll(txs)
	require.Len(t, out, 3)
	assert.Equal(t, "newest", out[0].Signature)
	assert.Equal(t, "middle", out[1].Signature)
	assert.Equal(t, "oldest", out[2].Signature)
}

func TestSimplifyAll_EmptyInputIsNonNil(t *testing.T) {
	out := SimplifyAll(nil)
	require.NotNil(t, out)

	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}
