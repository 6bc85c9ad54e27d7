package actions

import (
	"context"

	"github.com/carson-networks/transfer-server/internal/storage"
	"github.com/carson-networks/transfer-server/internal/storage/account"
	"github.com/carson-networks/transfer-server/internal/storage/recipient"
	"github.com/carson-networks/transfer-server/internal/storage/transaction"
)

// LoadSession stores prebuilt rows as-is. Transactions are expected most
// recent first.
type LoadSession struct {
	Accounts     []account.Account
	Recipients   []recipient.Recipient
	Transactions []transaction.Transaction
}

func (l *LoadSession) Perform(ctx context.Context, writer *storage.Writer) error {
	for _, row := range l.Accounts {
		writer.Account.Put(row)
	}
	for _, row := range l.Recipients {
		writer.Recipient.Put(row)
	}
	for i := range l.Transactions {
		if err := writer.Transaction.Append(ctx, &l.Transactions[i]); err != nil {
			return err
		}
	}
	return nil
}
