package service

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAccount_Success(t *testing.T) {
	env := newTestEnv(t)

	acct := env.openAccount(t, "1000.00")

	assert.Equal(t, AccountTypeChecking, acct.Type)
	assert.Equal(t, "•••• 4756", acct.MaskedNumber)
	assert.Equal(t, "active", acct.Status)
	assert.True(t, acct.Balance.Equal(decimal.RequireFromString("1000.00")))
}

func TestCreateAccount_UnknownType(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Account.CreateAccount(context.Background(), AccountCreate{Type: "crypto"})
	assert.Error(t, err)
}

func TestGetAccountBalance_UnknownAccount(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Account.GetAccountBalance(context.Background(), uuid.Must(uuid.NewV4()))
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestListAccounts_NoResults(t *testing.T) {
	env := newTestEnv(t)

	accounts, next, err := env.svc.Account.ListAccounts(context.Background(), nil)

	assert.NoError(t, err)
	assert.Nil(t, accounts)
	assert.Nil(t, next)
}

func TestListAccounts_WithCursor(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 3; i++ {
		env.openAccount(t, "10.00")
	}

	accounts, next, err := env.svc.Account.ListAccounts(context.Background(), &AccountCursor{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
	require.NotNil(t, next)
	assert.Equal(t, 2, next.Position)
	assert.Equal(t, 2, next.Limit)

	accounts, next, err = env.svc.Account.ListAccounts(context.Background(), next)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
	assert.Nil(t, next)
}

func TestCreditAccount_Success(t *testing.T) {
	env := newTestEnv(t)
	acct := env.openAccount(t, "10.00")

	balance, err := env.svc.Account.CreditAccount(context.Background(), acct.ID, decimal.RequireFromString("5.25"))
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("15.25")))
	assert.Equal(t, "Funds Added", env.inbox.List()[0].Title)
}

func TestPayFromAnyAccount_SkipsShortAccounts(t *testing.T) {
	env := newTestEnv(t)
	short := env.openAccount(t, "10.00")
	funded := env.openAccount(t, "100.00")

	paid, err := env.svc.Account.PayFromAnyAccount(context.Background(), decimal.RequireFromString("40.00"), "StreamFlix")
	require.NoError(t, err)
	assert.Equal(t, funded.ID, paid.ID)
	assert.True(t, paid.Balance.Equal(decimal.RequireFromString("60.00")))

	balance, err := env.svc.Account.GetAccountBalance(context.Background(), short.ID)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("10.00")))

	_, err = env.svc.Account.PayFromAnyAccount(context.Background(), decimal.RequireFromString("500.00"), "StreamFlix")
	assert.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestDebitAccount_Success(t *testing.T) {
	env := newTestEnv(t)
	acct := env.openAccount(t, "100.00")

	balance, err := env.svc.Account.DebitAccount(context.Background(), acct.ID, AccountDebit{
		Amount:  decimal.RequireFromString("45.00"),
		Title:   "Bill Paid",
		Message: "Bill for $45.00 paid.",
	})
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("55.00")))

	latest := env.inbox.List()[0]
	assert.Equal(t, "Bill Paid", latest.Title)
	assert.Equal(t, "Bill for $45.00 paid.", latest.Message)
}

func TestDebitAccount_DefaultNotification(t *testing.T) {
	env := newTestEnv(t)
	acct := env.openAccount(t, "100.00")

	_, err := env.svc.Account.DebitAccount(context.Background(), acct.ID, AccountDebit{Amount: decimal.RequireFromString("5")})
	require.NoError(t, err)

	latest := env.inbox.List()[0]
	assert.Equal(t, "Payment Sent", latest.Title)
	assert.Equal(t, "$5.00 paid from your account.", latest.Message)
}

func TestDebitAccount_InsufficientFunds(t *testing.T) {
	env := newTestEnv(t)
	acct := env.openAccount(t, "20.00")

	_, err := env.svc.Account.DebitAccount(context.Background(), acct.ID, AccountDebit{Amount: decimal.RequireFromString("20.01")})
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	balance, err := env.svc.Account.GetAccountBalance(context.Background(), acct.ID)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("20.00")))
	assert.Empty(t, env.inbox.List())

	_, err = env.svc.Account.DebitAccount(context.Background(), uuid.Must(uuid.NewV4()), AccountDebit{Amount: decimal.RequireFromString("1")})
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestPayFromAnyAccount_Notification(t *testing.T) {
	env := newTestEnv(t)
	env.openAccount(t, "100.00")

	_, err := env.svc.Account.PayFromAnyAccount(context.Background(), decimal.RequireFromString("15"), "StreamFlix")
	require.NoError(t, err)
	assert.Equal(t, "StreamFlix payment of $15.00 sent.", env.inbox.List()[0].Message)
}

func TestUpdateAccountNickname(t *testing.T) {
	env := newTestEnv(t)
	acct := env.openAccount(t, "10.00")

	require.NoError(t, env.svc.Account.UpdateAccountNickname(context.Background(), acct.ID, "  Rainy Day  "))
	got, err := env.svc.Account.GetAccount(context.Background(), acct.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rainy Day", got.Nickname)

	err = env.svc.Account.UpdateAccountNickname(context.Background(), uuid.Must(uuid.NewV4()), "x")
	assert.ErrorIs(t, err, ErrAccountNotFound)
}
