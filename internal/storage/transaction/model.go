package transaction

import (
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/transfer-server/internal/lifecycle"
	"github.com/carson-networks/transfer-server/internal/storage/recipient"
)

var ErrNotFound = errors.New("transaction not found")

// Direction tags a transaction as money leaving or entering the account.
type Direction string

const (
	DirectionDebit  Direction = "debit"
	DirectionCredit Direction = "credit"
)

// Transaction represents a transfer record. Recipient is a snapshot taken
// at creation time.
type Transaction struct {
	ID                  uuid.UUID                     `json:"id"`
	AccountID           uuid.UUID                     `json:"accountId"`
	Recipient           recipient.Recipient           `json:"recipient"`
	SendAmount          decimal.Decimal               `json:"sendAmount"`
	ReceiveAmount       decimal.Decimal               `json:"receiveAmount"`
	ReceiveCurrency     string                        `json:"receiveCurrency"`
	Fee                 decimal.Decimal               `json:"fee"`
	ExchangeRate        decimal.Decimal               `json:"exchangeRate"`
	Status              lifecycle.Status              `json:"status"`
	StatusTimestamps    lifecycle.StatusTimestamps    `json:"statusTimestamps"`
	Type                Direction                     `json:"type"`
	TransferMethod      lifecycle.TransferMethod      `json:"transferMethod"`
	EstimatedArrival    time.Time                     `json:"estimatedArrival"`
	Purpose             string                        `json:"purpose,omitempty"`
	DeliverySpeed       string                        `json:"deliverySpeed,omitempty"`
	Description         string                        `json:"description,omitempty"`
	ClearanceFeePaid    *bool                         `json:"clearanceFeePaid,omitempty"`
	AuthorizationMethod lifecycle.AuthorizationMethod `json:"authorizationMethod,omitempty"`
	CreatedAt           time.Time                     `json:"createdAt"`
}

// TotalDebit is what the source account loses for this transfer.
func (t *Transaction) TotalDebit() decimal.Decimal {
	return t.SendAmount.Add(t.Fee)
}

// Clone returns a copy that shares no mutable state with t.
func (t Transaction) Clone() Transaction {
	t.StatusTimestamps = t.StatusTimestamps.Clone()
	if t.ClearanceFeePaid != nil {
		paid := *t.ClearanceFeePaid
		t.ClearanceFeePaid = &paid
	}
	return t
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	AccountID       *uuid.UUID
	Statuses        []lifecycle.Status
	Limit           int
	Offset          int
	MaxCreationTime *time.Time
	// AfterID resumes the listing after this row, whether or not it still
	// matches the filter. Offset is ignored when set.
	AfterID         *uuid.UUID
}

// TransactionCursor identifies a position in a paginated result set
// and carries the limit and maxCreationTime so subsequent pages are consistent.
type TransactionCursor struct {
	Position        int
	Limit           int
	MaxCreationTime time.Time
}

// TransactionListResult contains a page of transactions and an optional next cursor.
type TransactionListResult struct {
	Transactions []*Transaction
	NextCursor   *TransactionCursor
}
