package actions

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/transfer-server/internal/lifecycle"
	"github.com/carson-networks/transfer-server/internal/storage"
	"github.com/carson-networks/transfer-server/internal/storage/account"
	"github.com/carson-networks/transfer-server/internal/storage/recipient"
	"github.com/carson-networks/transfer-server/internal/storage/transaction"
)

// CreateTransaction debits SendAmount+Fee from the source account and
// records a SUBMITTED transfer. The balance check and the debit happen in
// the same write unit.
type CreateTransaction struct {
	AccountID uuid.UUID
	// RecipientID, when set, snapshots the stored recipient. Otherwise
	// Recipient is used as given.
	RecipientID     uuid.UUID
	Recipient       recipient.Recipient
	SendAmount      decimal.Decimal
	ReceiveAmount   decimal.Decimal
	ReceiveCurrency string
	Fee             decimal.Decimal
	ExchangeRate    decimal.Decimal
	TransferMethod  lifecycle.TransferMethod
	DeliverySpeed   string
	Purpose         string
	Description     string
	Frequency       string
	ScheduledFor    *time.Time
	Now             time.Time

	Result *transaction.Transaction
}

func (c *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	if !c.SendAmount.IsPositive() || c.Fee.IsNegative() {
		return ErrInvalidAmount
	}

	snapshot := c.Recipient
	if c.RecipientID != uuid.Nil {
		stored, err := writer.Recipient.FindByID(ctx, c.RecipientID)
		if err != nil {
			return err
		}
		snapshot = *stored
	}
	if snapshot.FullName == "" {
		return ErrMissingRecipient
	}

	acct, err := writer.Account.FindByIDForUpdate(ctx, c.AccountID)
	if err != nil {
		return err
	}
	if acct.Status != account.AccountStatusActive {
		return ErrAccountInactive
	}

	total := c.SendAmount.Add(c.Fee)
	if acct.Balance.LessThan(total) {
		return fmt.Errorf("%w: balance %s, required %s", ErrInsufficientFunds, acct.Balance.StringFixed(2), total.StringFixed(2))
	}

	id, err := uuid.NewV4()
	if err != nil {
		return err
	}

	method := c.TransferMethod
	if method == "" {
		method = lifecycle.TransferStandard
	}

	tx := &transaction.Transaction{
		ID:               id,
		AccountID:        c.AccountID,
		Recipient:        snapshot,
		SendAmount:       c.SendAmount,
		ReceiveAmount:    c.ReceiveAmount,
		ReceiveCurrency:  c.ReceiveCurrency,
		Fee:              c.Fee,
		ExchangeRate:     c.ExchangeRate,
		Status:           lifecycle.StatusSubmitted,
		StatusTimestamps: lifecycle.NewStatusTimestamps(c.Now),
		Type:             transaction.DirectionDebit,
		TransferMethod:   method,
		EstimatedArrival: lifecycle.EstimateArrival(method, c.Now, c.ScheduledFor),
		Purpose:          c.Purpose,
		DeliverySpeed:    c.DeliverySpeed,
		Description:      c.describe(),
		CreatedAt:        c.Now,
	}

	if err = writer.Transaction.Insert(ctx, tx); err != nil {
		return err
	}
	if err = writer.Account.UpdateBalance(ctx, c.AccountID, acct.Balance.Sub(total)); err != nil {
		return err
	}

	c.Result = tx
	return nil
}

func (c *CreateTransaction) describe() string {
	if c.Description != "" {
		return c.Description
	}
	frequency := strings.ToLower(strings.TrimSpace(c.Frequency))
	switch {
	case frequency != "" && frequency != "one-time":
		first, size := utf8.DecodeRuneInString(frequency)
		return withPurpose(string(unicode.ToUpper(first))+frequency[size:]+" Transfer", c.Purpose)
	case c.ScheduledFor != nil && !c.ScheduledFor.IsZero():
		return withPurpose(fmt.Sprintf("Scheduled Transfer (%s)", c.ScheduledFor.Format(time.DateOnly)), c.Purpose)
	default:
		return c.Purpose
	}
}

func withPurpose(label, purpose string) string {
	if purpose == "" {
		return label
	}
	return label + ": " + purpose
}
