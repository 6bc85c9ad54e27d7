package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/transfer-server/internal/lifecycle"
	"github.com/carson-networks/transfer-server/internal/storage"
	"github.com/carson-networks/transfer-server/internal/storage/transaction"
)

// AdvanceTransaction applies the timed transition out of the transfer's
// current status once its dwell time has elapsed.
type AdvanceTransaction struct {
	TransactionID uuid.UUID
	Delays        lifecycle.Delays
	Now           time.Time

	Outcome lifecycle.Outcome
	Result  *transaction.Transaction
}

func (a *AdvanceTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	tx, err := writer.Transaction.FindByID(ctx, a.TransactionID)
	if err != nil {
		return err
	}

	next, outcome, err := advance(ctx, writer, tx, a.Delays, a.Now)
	if err != nil {
		return err
	}
	a.Outcome = outcome
	a.Result = next
	return nil
}

// AdvanceDue advances every transfer whose timed transition is due. Each
// transfer moves at most one step per call.
type AdvanceDue struct {
	Delays lifecycle.Delays
	Now    time.Time

	Advanced []*transaction.Transaction
}

func (a *AdvanceDue) Perform(ctx context.Context, writer *storage.Writer) error {
	rows, err := writer.Transaction.List(ctx, nil)
	if err != nil {
		return err
	}

	a.Advanced = nil
	for _, tx := range rows {
		next, outcome, err := advance(ctx, writer, tx, a.Delays, a.Now)
		if err != nil {
			return err
		}
		if outcome == lifecycle.OutcomeApplied {
			a.Advanced = append(a.Advanced, next)
		}
	}
	return nil
}

func advance(ctx context.Context, writer *storage.Writer, tx *transaction.Transaction, delays lifecycle.Delays, now time.Time) (*transaction.Transaction, lifecycle.Outcome, error) {
	to, outcome := delays.Due(tx.Status, tx.StatusTimestamps, now)
	if outcome != lifecycle.OutcomeApplied {
		return tx, outcome, nil
	}

	next, err := moveTo(tx, to, now)
	if err != nil {
		return nil, outcome, err
	}
	if err = writer.Transaction.Update(ctx, next); err != nil {
		return nil, outcome, err
	}
	return next, lifecycle.OutcomeApplied, nil
}
