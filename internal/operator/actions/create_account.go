package actions

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/transfer-server/internal/storage"
	"github.com/carson-networks/transfer-server/internal/storage/account"
)

type CreateAccount struct {
	Nickname          string
	Type              account.AccountType
	FullAccountNumber string
	StartingBalance   decimal.Decimal
	Now               time.Time

	Result *account.Account
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if c.StartingBalance.IsNegative() {
		return ErrInvalidAmount
	}

	created, err := writer.Account.Create(ctx, &account.AccountCreate{
		Type:              c.Type,
		Nickname:          c.Nickname,
		FullAccountNumber: c.FullAccountNumber,
		Balance:           c.StartingBalance,
	}, c.Now)
	if err != nil {
		return err
	}

	c.Result = created
	return nil
}
