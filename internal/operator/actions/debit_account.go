package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/transfer-server/internal/storage"
	"github.com/carson-networks/transfer-server/internal/storage/account"
)

// DebitAccount withdraws funds from one account. Nothing changes when the
// balance cannot cover Amount.
type DebitAccount struct {
	AccountID uuid.UUID
	Amount    decimal.Decimal

	Balance decimal.Decimal
}

func (d *DebitAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if !d.Amount.IsPositive() {
		return ErrInvalidAmount
	}

	acct, err := writer.Account.FindByIDForUpdate(ctx, d.AccountID)
	if err != nil {
		return err
	}
	if acct.Status != account.AccountStatusActive {
		return ErrAccountInactive
	}
	if acct.Balance.LessThan(d.Amount) {
		return fmt.Errorf("%w: balance %s, required %s", ErrInsufficientFunds, acct.Balance.StringFixed(2), d.Amount.StringFixed(2))
	}

	balance := acct.Balance.Sub(d.Amount)
	if err = writer.Account.UpdateBalance(ctx, d.AccountID, balance); err != nil {
		return err
	}

	d.Balance = balance
	return nil
}
