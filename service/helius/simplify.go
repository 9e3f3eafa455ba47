package helius

// Simplify reduces an enriched transaction to the client-facing shape.
// Only balance changes that carry a token symbol are kept; enriched
// records frequently include unnamed intermediate accounts that would
// bloat the response without telling the caller anything.
func Simplify(tx *EnrichedTransaction) SimplifiedTransaction {
	changes := make([]TokenChange, 0, len(tx.BalanceChanges))
	for _, ch := range tx.BalanceChanges {
		if ch.TokenInfo == nil || ch.TokenInfo.Symbol == "" {
			continue
		}
		changes = append(changes, TokenChange{
			Symbol: ch.TokenInfo.Symbol,
			Amount: ch.TokenAmount,
			Owner:  ch.Account,
		})
	}

	return SimplifiedTransaction{
		Signature:    tx.Signature,
		Timestamp:    tx.Timestamp,
		Type:         tx.Type,
		TokenChanges: changes,
	}
}

// SimplifyAll reduces a batch of enriched transactions, preserving
// upstream order (newest first). Always returns a non-nil slice so the
// response serializes as a JSON array.
func SimplifyAll(txs []EnrichedTransaction) []SimplifiedTransaction {
	out := make([]SimplifiedTransaction, 0, len(txs))
	for i := range txs {
		out = append(out, Simplify(&txs[i]))
	}
	return out
}
