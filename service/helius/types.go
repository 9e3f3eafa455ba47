package helius

// EnrichedTransaction is the raw record returned by the Helius
// enhanced-transactions API. Only the fields we read are modeled; the
// upstream payload carries much more.
type EnrichedTransaction struct {
	Signature      string          `json:"signature"`
	Timestamp      int64           `json:"timestamp"`
	Type           string          `json:"type"`
	Source         string          `json:"source,omitempty"`
	Slot           uint64          `json:"slot,omitempty"`
	Fee            uint64          `json:"fee,omitempty"`
	Description    string          `json:"description,omitempty"`
	BalanceChanges []BalanceChange `json:"balanceChanges,omitempty"`
}

// BalanceChange is a single token balance delta within a transaction.
type BalanceChange struct {
	Account     string     `json:"account"`
	TokenAmount float64    `json:"tokenAmount"`
	TokenInfo   *TokenInfo `json:"tokenInfo,omitempty"`
}

// TokenInfo describes the token involved in a balance change.
type TokenInfo struct {
	Symbol   string `json:"symbol"`
	Mint     string `json:"mint,omitempty"`
	Decimals int    `json:"decimals,omitempty"`
}

// SimplifiedTransaction is the reduced, client-facing view of an
// enriched transaction. Balance changes without a token symbol are
// dropped during simplification.
type SimplifiedTransaction struct {
	Signature    string        `json:"signature"`
	Timestamp    int64         `json:"timestamp"`
	Type         string        `json:"type"`
	TokenChanges []TokenChange `json:"token_changes"`
}

// TokenChange is a simplified token balance delta.
type TokenChange struct {
	Symbol string  `json:"symbol"`
	Amount float64 `json:"amount"`
	Owner  string  `json:"owner"`
}
