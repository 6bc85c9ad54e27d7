package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/transfer-server/internal/lifecycle"
	"github.com/carson-networks/transfer-server/internal/notify"
	"github.com/carson-networks/transfer-server/internal/storage/transaction"
)

func sendTwoHundred(t *testing.T, env *testEnv, accountID uuid.UUID, recipientID uuid.UUID) *Transaction {
	t.Helper()
	tx, err := env.svc.Transaction.CreateTransaction(context.Background(), TransactionCreate{
		AccountID:       accountID,
		RecipientID:     recipientID,
		SendAmount:      decimal.RequireFromString("200.00"),
		ReceiveAmount:   decimal.RequireFromString("184.00"),
		ReceiveCurrency: "EUR",
		Fee:             decimal.RequireFromString("10.00"),
		ExchangeRate:    decimal.RequireFromString("0.92"),
		DeliverySpeed:   "Standard",
		Purpose:         "Family support",
	})
	require.NoError(t, err)
	return tx
}

// Flags a transfer the way the portal does: wait out the transit delay,
// advance, then flag.
func flag(t *testing.T, env *testEnv, id uuid.UUID) {
	t.Helper()
	env.clock.Advance(testDelays.Transit)
	res, err := env.svc.Transaction.Advance(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, lifecycle.OutcomeApplied, res.Outcome)

	env.clock.Advance(time.Second)
	res, err = env.svc.Transaction.FlagForClearance(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, lifecycle.OutcomeApplied, res.Outcome)
}

func TestCreateTransaction_ScenarioA(t *testing.T) {
	env := newTestEnv(t)
	env.expectReceipt()
	acct := env.openAccount(t, "1000.00")
	payee := env.addRecipient(t, "DE")

	tx := sendTwoHundred(t, env, acct.ID, payee.ID)

	assert.Equal(t, lifecycle.StatusSubmitted, tx.Status)
	assert.Equal(t, env.clock.now, tx.StatusTimestamps[lifecycle.StatusSubmitted])
	assert.Equal(t, env.clock.now.Add(72*time.Hour), tx.EstimatedArrival)
	assert.Equal(t, payee.FullName, tx.Recipient.FullName)

	balance, err := env.svc.Account.GetAccountBalance(context.Background(), acct.ID)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("790.00")))

	items := env.inbox.List()
	require.NotEmpty(t, items)
	assert.Equal(t, "Transfer Submitted", items[0].Title)
	assert.Equal(t, "history", items[0].Link)
	env.receipts.AssertCalled(t, "SendReceipt", mock.Anything, mock.MatchedBy(func(r notify.Receipt) bool {
		return r.TransactionID == tx.ID.String() && r.SendEmail && !r.SendSMS
	}))
}

func TestAuthorizeTransaction_ScenarioB_NotEligibleWhileSubmitted(t *testing.T) {
	env := newTestEnv(t)
	env.expectReceipt()
	acct := env.openAccount(t, "1000.00")
	tx := sendTwoHundred(t, env, acct.ID, env.addRecipient(t, "DE").ID)

	res, err := env.svc.Transaction.AuthorizeTransaction(context.Background(), tx.ID, "code")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.OutcomeNotEligible, res.Outcome)

	stored, err := env.svc.Transaction.GetTransaction(context.Background(), tx.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusSubmitted, stored.Status)
	assert.Nil(t, stored.ClearanceFeePaid)
	assert.Len(t, stored.StatusTimestamps, 1)
}

func TestAuthorizeTransaction_ScenarioC_FeeClearsFlagged(t *testing.T) {
	env := newTestEnv(t)
	env.expectReceipt()
	acct := env.openAccount(t, "1000.00")
	tx := sendTwoHundred(t, env, acct.ID, env.addRecipient(t, "DE").ID)
	flag(t, env, tx.ID)

	before, err := env.svc.Transaction.GetTransaction(context.Background(), tx.ID)
	require.NoError(t, err)

	env.clock.Advance(time.Minute)
	res, err := env.svc.Transaction.AuthorizeTransaction(context.Background(), tx.ID, "fee")
	require.NoError(t, err)

	assert.Equal(t, lifecycle.OutcomeApplied, res.Outcome)
	assert.Equal(t, lifecycle.StatusClearanceGranted, res.Transaction.Status)
	require.NotNil(t, res.Transaction.ClearanceFeePaid)
	assert.True(t, *res.Transaction.ClearanceFeePaid)
	assert.Len(t, res.Transaction.StatusTimestamps, len(before.StatusTimestamps)+1)
	assert.True(t, res.Transaction.StatusTimestamps.Contains(before.StatusTimestamps))
	assert.Equal(t, env.clock.now, res.Transaction.StatusTimestamps[lifecycle.StatusClearanceGranted])

	balance, err := env.svc.Account.GetAccountBalance(context.Background(), acct.ID)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("790.00")), "clearance charges nothing")
}

func TestAuthorizeTransaction_SecondCallIsNoOp(t *testing.T) {
	env := newTestEnv(t)
	env.expectReceipt()
	acct := env.openAccount(t, "1000.00")
	tx := sendTwoHundred(t, env, acct.ID, env.addRecipient(t, "DE").ID)
	flag(t, env, tx.ID)

	first, err := env.svc.Transaction.AuthorizeTransaction(context.Background(), tx.ID, "code")
	require.NoError(t, err)
	require.Equal(t, lifecycle.OutcomeApplied, first.Outcome)

	env.clock.Advance(time.Minute)
	second, err := env.svc.Transaction.AuthorizeTransaction(context.Background(), tx.ID, "fee")
	require.NoError(t, err)
	assert.Equal(t, lifecycle.OutcomeNotEligible, second.Outcome)
	assert.Equal(t, first.Transaction.StatusTimestamps, second.Transaction.StatusTimestamps)
	require.NotNil(t, second.Transaction.ClearanceFeePaid)
	assert.False(t, *second.Transaction.ClearanceFeePaid)
}

func TestAuthorizeTransaction_Errors(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Transaction.AuthorizeTransaction(context.Background(), uuid.Must(uuid.NewV4()), "code")
	assert.ErrorIs(t, err, ErrTransactionNotFound)

	_, err = env.svc.Transaction.AuthorizeTransaction(context.Background(), uuid.Must(uuid.NewV4()), "bribe")
	assert.ErrorIs(t, err, ErrInvalidAuthorizationMethod)
}

func TestCreateTransaction_ScenarioD_UnknownAccount(t *testing.T) {
	env := newTestEnv(t)
	acct := env.openAccount(t, "1000.00")
	payee := env.addRecipient(t, "DE")

	_, err := env.svc.Transaction.CreateTransaction(context.Background(), TransactionCreate{
		AccountID:   uuid.Must(uuid.NewV4()),
		RecipientID: payee.ID,
		SendAmount:  decimal.RequireFromString("200.00"),
		Fee:         decimal.RequireFromString("10.00"),
	})
	assert.ErrorIs(t, err, ErrAccountNotFound)

	balance, err := env.svc.Account.GetAccountBalance(context.Background(), acct.ID)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("1000.00")))

	txs, _, err := env.svc.Transaction.ListTransactions(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, txs)
	env.receipts.AssertNotCalled(t, "SendReceipt", mock.Anything, mock.Anything)
}

func TestCreateTransaction_InsufficientFunds(t *testing.T) {
	env := newTestEnv(t)
	acct := env.openAccount(t, "205.00")

	_, err := env.svc.Transaction.CreateTransaction(context.Background(), TransactionCreate{
		AccountID:   acct.ID,
		RecipientID: env.addRecipient(t, "DE").ID,
		SendAmount:  decimal.RequireFromString("200.00"),
		Fee:         decimal.RequireFromString("10.00"),
	})
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	balance, err := env.svc.Account.GetAccountBalance(context.Background(), acct.ID)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("205.00")))
}

func TestCreateTransaction_ReceiptFailureKeepsTransfer(t *testing.T) {
	env := newTestEnv(t)
	env.failReceipt()
	acct := env.openAccount(t, "1000.00")

	tx := sendTwoHundred(t, env, acct.ID, env.addRecipient(t, "DE").ID)

	stored, err := env.svc.Transaction.GetTransaction(context.Background(), tx.ID)
	require.NoError(t, err)
	assert.Equal(t, tx.ID, stored.ID)
}

func TestCreateWireTransfer(t *testing.T) {
	env := newTestEnv(t)
	env.expectReceipt()
	acct := env.openAccount(t, "5000.00")
	payee := env.addRecipient(t, "US")

	tx, err := env.svc.Transaction.CreateWireTransfer(context.Background(), WireTransferCreate{
		AccountID:   acct.ID,
		RecipientID: payee.ID,
		Amount:      decimal.RequireFromString("1000.00"),
		Purpose:     "Invoice 42",
	})
	require.NoError(t, err)

	assert.Equal(t, lifecycle.TransferWire, tx.TransferMethod)
	assert.Equal(t, env.clock.now.Add(48*time.Hour), tx.EstimatedArrival)
	assert.True(t, tx.Fee.Equal(decimal.RequireFromString("25.00")))

	balance, err := env.svc.Account.GetAccountBalance(context.Background(), acct.ID)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.RequireFromString("3975.00")))
}

func TestAdvance_FullPathAndFundsArrivedNotification(t *testing.T) {
	env := newTestEnv(t)
	env.expectReceipt()
	acct := env.openAccount(t, "1000.00")
	tx := sendTwoHundred(t, env, acct.ID, env.addRecipient(t, "DE").ID)

	res, err := env.svc.Transaction.Advance(context.Background(), tx.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.OutcomeNotDue, res.Outcome)

	steps := []struct {
		wait time.Duration
		want lifecycle.Status
	}{
		{testDelays.Transit, lifecycle.StatusInTransit},
		{testDelays.Convert, lifecycle.StatusConverting},
		{testDelays.Arrival, lifecycle.StatusFundsArrived},
	}
	previous := tx.StatusTimestamps
	for _, step := range steps {
		env.clock.Advance(step.wait)
		res, err = env.svc.Transaction.Advance(context.Background(), tx.ID)
		require.NoError(t, err)
		require.Equal(t, lifecycle.OutcomeApplied, res.Outcome)
		assert.Equal(t, step.want, res.Transaction.Status)
		assert.True(t, res.Transaction.StatusTimestamps.Contains(previous))
		previous = res.Transaction.StatusTimestamps
	}

	assert.Equal(t, "Funds Arrived", env.inbox.List()[0].Title)
}

func TestAdvance_ZeroDelaysProgressImmediately(t *testing.T) {
	env := newTestEnvWithDelays(t, lifecycle.Delays{})
	env.expectReceipt()
	acct := env.openAccount(t, "1000.00")
	tx := sendTwoHundred(t, env, acct.ID, env.addRecipient(t, "DE").ID)

	for _, want := range []lifecycle.Status{
		lifecycle.StatusInTransit,
		lifecycle.StatusConverting,
		lifecycle.StatusFundsArrived,
	} {
		res, err := env.svc.Transaction.Advance(context.Background(), tx.ID)
		require.NoError(t, err)
		require.Equal(t, lifecycle.OutcomeApplied, res.Outcome)
		assert.Equal(t, want, res.Transaction.Status)
	}
}

func TestAdvanceDue_FlaggedStaysStuck(t *testing.T) {
	env := newTestEnv(t)
	env.expectReceipt()
	acct := env.openAccount(t, "1000.00")
	payee := env.addRecipient(t, "DE")
	flagged := sendTwoHundred(t, env, acct.ID, payee.ID)
	flag(t, env, flagged.ID)

	env.clock.Advance(24 * time.Hour)
	_, err := env.svc.Transaction.AdvanceDue(context.Background())
	require.NoError(t, err)

	stored, err := env.svc.Transaction.GetTransaction(context.Background(), flagged.ID)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.StatusFlagged, stored.Status)
}

func TestListTransactions_PaginationAndFilter(t *testing.T) {
	env := newTestEnv(t)
	env.expectReceipt()
	first := env.openAccount(t, "10000.00")
	second := env.openAccount(t, "10000.00")
	payee := env.addRecipient(t, "DE")

	var created []*Transaction
	for i := 0; i < 3; i++ {
		env.clock.Advance(time.Second)
		created = append(created, sendTwoHundred(t, env, first.ID, payee.ID))
	}
	env.clock.Advance(time.Second)
	sendTwoHundred(t, env, second.ID, payee.ID)

	page, next, err := env.svc.Transaction.ListTransactions(context.Background(),
		&TransactionListFilter{AccountID: &first.ID},
		&TransactionCursor{Limit: 2, MaxCreationTime: env.clock.now})
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.NotNil(t, next)
	assert.Equal(t, created[2].ID, page[0].ID)
	assert.Equal(t, created[1].ID, page[1].ID)
	assert.Equal(t, 2, next.Position)

	page, next, err = env.svc.Transaction.ListTransactions(context.Background(),
		&TransactionListFilter{AccountID: &first.ID}, next)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Nil(t, next)
	assert.Equal(t, created[0].ID, page[0].ID)
}

func TestListTransactions_StatusFilterSurvivesTransitions(t *testing.T) {
	env := newTestEnv(t)
	env.expectReceipt()
	acct := env.openAccount(t, "10000.00")
	payee := env.addRecipient(t, "DE")

	env.clock.Advance(time.Second)
	older := sendTwoHundred(t, env, acct.ID, payee.ID)
	env.clock.Advance(time.Second)
	newer := sendTwoHundred(t, env, acct.ID, payee.ID)

	submitted := &TransactionListFilter{Statuses: []lifecycle.Status{lifecycle.StatusSubmitted}}
	page, next, err := env.svc.Transaction.ListTransactions(context.Background(), submitted,
		&TransactionCursor{Limit: 1, MaxCreationTime: env.clock.now})
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.NotNil(t, next)
	assert.Equal(t, newer.ID, page[0].ID)
	assert.Equal(t, newer.ID, next.LastID)

	env.clock.Advance(testDelays.Transit)
	res, err := env.svc.Transaction.Advance(context.Background(), newer.ID)
	require.NoError(t, err)
	require.Equal(t, lifecycle.StatusInTransit, res.Transaction.Status)

	page, next, err = env.svc.Transaction.ListTransactions(context.Background(), submitted, next)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, older.ID, page[0].ID)
	assert.Nil(t, next)
}

func TestUpdateRecipient_SnapshotImmunity(t *testing.T) {
	env := newTestEnv(t)
	env.expectReceipt()
	acct := env.openAccount(t, "1000.00")
	payee := env.addRecipient(t, "DE")
	tx := sendTwoHundred(t, env, acct.ID, payee.ID)

	renamed := "Tobiloba Adeyemi"
	updated, err := env.svc.Recipient.UpdateRecipient(context.Background(), payee.ID, RecipientUpdate{FullName: &renamed})
	require.NoError(t, err)
	assert.Equal(t, renamed, updated.FullName)

	stored, err := env.svc.Transaction.GetTransaction(context.Background(), tx.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tobi Adeyemi", stored.Recipient.FullName)
}

func TestHistory_RoundTripThroughJSON(t *testing.T) {
	env := newTestEnv(t)
	env.expectReceipt()
	acct := env.openAccount(t, "1000.00")
	payee := env.addRecipient(t, "DE")
	older := sendTwoHundred(t, env, acct.ID, payee.ID)
	env.clock.Advance(time.Second)
	sendTwoHundred(t, env, acct.ID, payee.ID)
	flag(t, env, older.ID)

	history, _, err := env.svc.Transaction.ListTransactions(context.Background(), nil, nil)
	require.NoError(t, err)
	rows := make([]*transaction.Transaction, len(history))
	for i := range history {
		rows[i] = &history[i]
	}

	data, err := transaction.MarshalHistory(rows)
	require.NoError(t, err)
	decoded, err := transaction.UnmarshalHistory(data)
	require.NoError(t, err)

	require.Len(t, decoded, len(rows))
	for i := range rows {
		assert.Equal(t, rows[i].ID, decoded[i].ID)
		assert.Equal(t, rows[i].Status, decoded[i].Status)
		assert.Len(t, decoded[i].StatusTimestamps, len(rows[i].StatusTimestamps))
		assert.True(t, decoded[i].StatusTimestamps.Contains(rows[i].StatusTimestamps))
	}
}
