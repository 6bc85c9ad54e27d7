package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/transfer-server/internal/lifecycle"
	"github.com/carson-networks/transfer-server/internal/storage/recipient"
	"github.com/carson-networks/transfer-server/internal/storage/transaction"
)

// Transaction is the stored transfer record. Values handed out are copies.
type Transaction = transaction.Transaction

// TransactionCreate carries the details of a new transfer. Either
// RecipientID or Recipient must be set.
type TransactionCreate struct {
	AccountID       uuid.UUID
	RecipientID     uuid.UUID
	Recipient       *recipient.Recipient
	SendAmount      decimal.Decimal
	ReceiveAmount   decimal.Decimal
	ReceiveCurrency string
	Fee             decimal.Decimal
	ExchangeRate    decimal.Decimal
	DeliverySpeed   string
	Purpose         string
	Description     string
	Frequency       string
	ScheduledFor    *time.Time
}

// WireTransferCreate carries the details of a USD wire. The fee comes from
// the wire fee table.
type WireTransferCreate struct {
	AccountID   uuid.UUID
	RecipientID uuid.UUID
	Recipient   *recipient.Recipient
	Amount      decimal.Decimal
	Purpose     string
	Description string
}

// TransitionResult reports what a lifecycle command did. Transaction is the
// state after the command, unchanged unless Outcome is OutcomeApplied.
type TransitionResult struct {
	Outcome     lifecycle.Outcome
	Transaction *Transaction
}

// AuthorizationResult is the result of AuthorizeTransaction.
type AuthorizationResult = TransitionResult

// TransactionListFilter narrows ListTransactions.
type TransactionListFilter struct {
	AccountID *uuid.UUID
	Statuses  []lifecycle.Status
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
// LastID is the last transfer already returned; when set, the next page
// resumes after it and Position only counts rows seen so far.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
	LastID          uuid.UUID
}
