package confirmation

import (
	"github.com/gabapcia/multisig/internal/ownerregistry"
	"github.com/gabapcia/multisig/internal/txledger"
)

// Approvals counts the confirmations of tx given by current owners of wallet.
// Approvals of removed owners never count.
func Approvals(tx txledger.Transaction, wallet ownerregistry.WalletState) int {
	return tx.Confirmations.Intersect(wallet.Owners).Len()
}

// QuorumMet reports whether tx has enough approvals under the current wallet
// owners and threshold.
func QuorumMet(tx txledger.Transaction, wallet ownerregistry.WalletState) bool {
	return Approvals(tx, wallet) >= wallet.RequiredConfirmations
}

// settle sets the status of an open transaction from its approvals. Locked
// transactions are left untouched. It reports whether the status changed.
func settle(tx *txledger.Transaction, wallet ownerregistry.WalletState) bool {
	if tx.Status.IsLocked() {
		return false
	}

	next := txledger.StatusPending
	if QuorumMet(*tx, wallet) {
		next = txledger.StatusConfirmed
	}

	changed := tx.Status != next
	tx.Status = next
	return changed
}
