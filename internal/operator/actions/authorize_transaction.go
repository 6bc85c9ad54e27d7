package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/transfer-server/internal/lifecycle"
	"github.com/carson-networks/transfer-server/internal/storage"
	"github.com/carson-networks/transfer-server/internal/storage/transaction"
)

// AuthorizeTransaction moves a FLAGGED_AWAITING_CLEARANCE transfer to
// CLEARANCE_GRANTED. Any other status leaves the transfer untouched and
// reports OutcomeNotEligible.
type AuthorizeTransaction struct {
	TransactionID uuid.UUID
	Method        lifecycle.AuthorizationMethod
	Now           time.Time

	Outcome lifecycle.Outcome
	Result  *transaction.Transaction
}

func (a *AuthorizeTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if _, err := lifecycle.ParseAuthorizationMethod(string(a.Method)); err != nil {
		return err
	}

	tx, err := writer.Transaction.FindByID(ctx, a.TransactionID)
	if err != nil {
		return err
	}

	if tx.Status != lifecycle.StatusFlagged {
		a.Outcome = lifecycle.OutcomeNotEligible
		a.Result = tx
		return nil
	}

	next, err := moveTo(tx, lifecycle.StatusClearanceGranted, a.Now)
	if err != nil {
		return err
	}
	feePaid := a.Method == lifecycle.AuthorizationFee
	next.ClearanceFeePaid = &feePaid
	next.AuthorizationMethod = a.Method

	if err = writer.Transaction.Update(ctx, next); err != nil {
		return err
	}

	a.Outcome = lifecycle.OutcomeApplied
	a.Result = next
	return nil
}
