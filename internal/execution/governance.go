package execution

import (
	"context"
	"fmt"

	"github.com/gabapcia/multisig/internal/ownerregistry"
	"github.com/gabapcia/multisig/internal/pkg/logger"
	"github.com/gabapcia/multisig/internal/txledger"
)

// governanceChange maps a governance payload to the registry change it asks for.
func governanceChange(p txledger.Payload) (ownerregistry.Change, error) {
	switch p := p.(type) {
	case txledger.AddOwner:
		return ownerregistry.AddOwner{Owner: p.Owner}, nil
	case txledger.RemoveOwner:
		return ownerregistry.RemoveOwner{Owner: p.Owner}, nil
	case txledger.ChangeRequirement:
		return ownerregistry.ChangeRequirement{Required: p.Required}, nil
	}

	return nil, fmt.Errorf("%w: %T is not a governance change", txledger.ErrInvalidPayload, p)
}

// applyGovernance commits the change of a governance transaction. Open
// transactions are then reconciled so approvals of removed owners disappear
// and statuses follow the new threshold.
func (s *service) applyGovernance(ctx context.Context, walletID string, p txledger.Payload) error {
	change, err := governanceChange(p)
	if err != nil {
		return err
	}

	wallet, err := s.registry.ApplyGovernanceChange(ctx, walletID, change)
	if err != nil {
		return err
	}

	// Quorum checks ignore former owners, so a failed reconciliation only
	// leaves stale statuses behind.
	if err := s.tracker.Reconcile(ctx, wallet); err != nil {
		logger.Error(ctx, "failed to reconcile open transactions", "error", err)
	}

	return nil
}
