package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/transfer-server/internal/lifecycle"
	"github.com/carson-networks/transfer-server/internal/storage"
	"github.com/carson-networks/transfer-server/internal/storage/transaction"
)

// FlagTransaction holds an IN_TRANSIT transfer for clearance.
type FlagTransaction struct {
	TransactionID uuid.UUID
	Now           time.Time

	Outcome lifecycle.Outcome
	Result  *transaction.Transaction
}

func (f *FlagTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	tx, err := writer.Transaction.FindByID(ctx, f.TransactionID)
	if err != nil {
		return err
	}

	if tx.Status != lifecycle.StatusInTransit {
		f.Outcome = lifecycle.OutcomeNotEligible
		f.Result = tx
		return nil
	}

	next, err := moveTo(tx, lifecycle.StatusFlagged, f.Now)
	if err != nil {
		return err
	}
	if err = writer.Transaction.Update(ctx, next); err != nil {
		return err
	}

	f.Outcome = lifecycle.OutcomeApplied
	f.Result = next
	return nil
}
