package actions

import (
	"context"
	"time"

	"github.com/carson-networks/transfer-server/internal/lifecycle"
	"github.com/carson-networks/transfer-server/internal/storage"
	"github.com/carson-networks/transfer-server/internal/storage/transaction"
)

type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}

// moveTo returns a copy of tx in status to, stamping the status the first
// time it is entered.
func moveTo(tx *transaction.Transaction, to lifecycle.Status, now time.Time) (*transaction.Transaction, error) {
	if err := lifecycle.Transition(tx.Status, to); err != nil {
		return nil, err
	}
	next := tx.Clone()
	next.Status = to
	next.StatusTimestamps, _ = tx.StatusTimestamps.With(to, now)
	return &next, nil
}
