package txledger

import "slices"

// Filter selects and pages the transactions returned by List. The zero value
// returns every transaction in creation order.
type Filter struct {
	Statuses   []Status // public statuses to keep; empty keeps all
	Types      []Type   // types to keep; empty keeps all
	AfterID    *uint64  // exclusive cursor in the direction of the listing
	Limit      int      // maximum number of results; zero or less means no limit
	Descending bool     // newest first
}

// matches reports whether tx passes the status and type selectors.
func (f Filter) matches(tx Transaction) bool {
	if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, tx.Status.Public()) {
		return false
	}

	if len(f.Types) > 0 && !slices.Contains(f.Types, tx.Type) {
		return false
	}

	return true
}

// afterCursor reports whether tx lies strictly past the cursor.
func (f Filter) afterCursor(tx Transaction) bool {
	if f.AfterID == nil {
		return true
	}

	if f.Descending {
		return tx.ID < *f.AfterID
	}
	return tx.ID > *f.AfterID
}

// Apply selects and pages txs, which must be sorted by ascending id.
func (f Filter) Apply(txs []Transaction) []Transaction {
	ordered := txs
	if f.Descending {
		ordered = slices.Clone(txs)
		slices.Reverse(ordered)
	}

	out := make([]Transaction, 0, len(ordered))
	for _, tx := range ordered {
		if !f.afterCursor(tx) || !f.matches(tx) {
			continue
		}

		out = append(out, tx)
		if f.Limit > 0 && len(out) == f.Limit {
			break
		}
	}

	return out
}
