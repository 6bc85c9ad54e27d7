package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/transfer-server/internal/lifecycle"
	"github.com/carson-networks/transfer-server/internal/notify"
	"github.com/carson-networks/transfer-server/internal/operator"
	"github.com/carson-networks/transfer-server/internal/storage"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type mockReceiptSender struct {
	mock.Mock
}

func (m *mockReceiptSender) SendReceipt(ctx context.Context, receipt notify.Receipt) error {
	return m.Called(ctx, receipt).Error(0)
}

type testEnv struct {
	svc      *Service
	store    *storage.Storage
	clock    *fakeClock
	inbox    *notify.Inbox
	receipts *mockReceiptSender
}

var testDelays = lifecycle.Delays{
	Transit: 5 * time.Second,
	Convert: 30 * time.Second,
	Arrival: 30 * time.Second,
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvWithDelays(t, testDelays)
}

func newTestEnvWithDelays(t *testing.T, delays lifecycle.Delays) *testEnv {
	t.Helper()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	store := storage.NewStorage()
	delegator := operator.NewOperatorDelegator(store, logger, 4)
	delegator.Start()
	t.Cleanup(delegator.Stop)

	clock := &fakeClock{now: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)}
	inbox := notify.NewInbox(notify.PushSettings{Transactions: true}, logger)
	receipts := &mockReceiptSender{}

	svc := NewService(store, delegator, Options{
		Delays:          delays,
		UserName:        "Jordan Lee",
		ReceiptSettings: notify.ReceiptSettings{Email: true},
		Inbox:           inbox,
		ReceiptSender:   receipts,
		Logger:          logger,
		Now:             clock.Now,
	})

	return &testEnv{svc: svc, store: store, clock: clock, inbox: inbox, receipts: receipts}
}

func (e *testEnv) openAccount(t *testing.T, balance string) *Account {
	t.Helper()
	acct, err := e.svc.Account.CreateAccount(context.Background(), AccountCreate{
		Type:              AccountTypeChecking,
		Nickname:          "Everyday",
		FullAccountNumber: "1029384756",
		StartingBalance:   decimal.RequireFromString(balance),
	})
	require.NoError(t, err)
	return acct
}

func (e *testEnv) addRecipient(t *testing.T, country string) *Recipient {
	t.Helper()
	r, err := e.svc.Recipient.AddRecipient(context.Background(), RecipientCreate{
		FullName:      "Tobi Adeyemi",
		BankName:      "Zenith Bank",
		AccountNumber: "2233445566",
		SwiftBIC:      "ZEIBNGLA",
		Country:       country,
	})
	require.NoError(t, err)
	return r
}

func (e *testEnv) expectReceipt() {
	e.receipts.On("SendReceipt", mock.Anything, mock.Anything).Return(nil)
}

func (e *testEnv) failReceipt() {
	e.receipts.On("SendReceipt", mock.Anything, mock.Anything).Return(errors.New("smtp down"))
}
