package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/transfer-server/internal/storage"
	"github.com/carson-networks/transfer-server/internal/storage/account"
)

// CreditAccount adds funds to an account.
type CreditAccount struct {
	AccountID uuid.UUID
	Amount    decimal.Decimal

	Balance decimal.Decimal
}

func (c *CreditAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if !c.Amount.IsPositive() {
		return ErrInvalidAmount
	}

	acct, err := writer.Account.FindByIDForUpdate(ctx, c.AccountID)
	if err != nil {
		return err
	}
	if acct.Status == account.AccountStatusClosed {
		return ErrAccountInactive
	}

	balance := acct.Balance.Add(c.Amount)
	if err = writer.Account.UpdateBalance(ctx, c.AccountID, balance); err != nil {
		return err
	}

	c.Balance = balance
	return nil
}
