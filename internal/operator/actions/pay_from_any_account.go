package actions

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/transfer-server/internal/storage"
	"github.com/carson-networks/transfer-server/internal/storage/account"
)

// PayFromAnyAccount debits the first active account, in the order accounts
// were opened, whose balance covers Amount.
type PayFromAnyAccount struct {
	Amount decimal.Decimal

	Result *account.Account
}

func (p *PayFromAnyAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if !p.Amount.IsPositive() {
		return ErrInvalidAmount
	}

	for _, acct := range writer.Account.All(ctx) {
		if acct.Status != account.AccountStatusActive || acct.Balance.LessThan(p.Amount) {
			continue
		}
		acct.Balance = acct.Balance.Sub(p.Amount)
		if err := writer.Account.UpdateBalance(ctx, acct.ID, acct.Balance); err != nil {
			return err
		}
		p.Result = acct
		return nil
	}

	return ErrInsufficientFunds
}
