package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/transfer-server/internal/lifecycle"
	"github.com/carson-networks/transfer-server/internal/logging"
	"github.com/carson-networks/transfer-server/internal/notify"
	"github.com/carson-networks/transfer-server/internal/operator/actions"
	"github.com/carson-networks/transfer-server/internal/pricing"
	"github.com/carson-networks/transfer-server/internal/storage"
	"github.com/carson-networks/transfer-server/internal/storage/transaction"
)

const defaultLimit = 20

// TransactionService owns transfer creation and status transitions.
type TransactionService struct {
	storage   *storage.Storage
	processor actionProcessor
	opts      Options
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, processor actionProcessor, opts Options) *TransactionService {
	return &TransactionService{
		storage:   store,
		processor: processor,
		opts:      opts.withDefaults(),
	}
}

// CreateTransaction debits sendAmount+fee from the source account and
// records a SUBMITTED transfer. On ErrInsufficientFunds or
// ErrAccountNotFound nothing is changed.
func (s *TransactionService) CreateTransaction(ctx context.Context, create TransactionCreate) (*Transaction, error) {
	return s.create(ctx, create, lifecycle.TransferStandard)
}

// CreateWireTransfer sends a USD wire, which arrives in two days.
func (s *TransactionService) CreateWireTransfer(ctx context.Context, create WireTransferCreate) (*Transaction, error) {
	payee := create.Recipient
	if create.RecipientID != uuid.Nil {
		stored, err := s.storage.Read().Recipients.FindByID(ctx, create.RecipientID)
		if err != nil {
			return nil, err
		}
		payee = stored
	}
	if payee == nil {
		return nil, ErrMissingRecipient
	}

	quote, err := pricing.NewWireQuote(create.Amount, payee.Country)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}

	return s.create(ctx, TransactionCreate{
		AccountID:       create.AccountID,
		Recipient:       payee,
		SendAmount:      quote.SendAmount,
		ReceiveAmount:   quote.ReceiveAmount,
		ReceiveCurrency: quote.ReceiveCurrency,
		Fee:             quote.Fee,
		ExchangeRate:    quote.ExchangeRate,
		DeliverySpeed:   string(quote.DeliverySpeed),
		Purpose:         create.Purpose,
		Description:     create.Description,
	}, lifecycle.TransferWire)
}

func (s *TransactionService) create(ctx context.Context, create TransactionCreate, method lifecycle.TransferMethod) (*Transaction, error) {
	logData := logging.GetLogData(ctx)
	defer logData.AddTiming("createTransactionMs")()

	action := &actions.CreateTransaction{
		AccountID:       create.AccountID,
		RecipientID:     create.RecipientID,
		SendAmount:      create.SendAmount,
		ReceiveAmount:   create.ReceiveAmount,
		ReceiveCurrency: create.ReceiveCurrency,
		Fee:             create.Fee,
		ExchangeRate:    create.ExchangeRate,
		TransferMethod:  method,
		DeliverySpeed:   create.DeliverySpeed,
		Purpose:         create.Purpose,
		Description:     create.Description,
		Frequency:       create.Frequency,
		ScheduledFor:    create.ScheduledFor,
		Now:             s.opts.Now(),
	}
	if create.Recipient != nil {
		action.Recipient = *create.Recipient
	}

	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	tx := action.Result
	logData.AddData("transactionId", tx.ID.String())

	stopNotify := logData.AddToExistingTiming("notifyMs")
	defer stopNotify()
	s.opts.Inbox.Notify(
		notify.KindTransaction,
		"Transfer Submitted",
		fmt.Sprintf("Your transfer of $%s to %s has been submitted.", tx.SendAmount.StringFixed(2), tx.Recipient.FullName),
		"history",
	)
	s.sendReceipt(ctx, tx)

	return tx, nil
}

// sendReceipt is best effort; a failed receipt never undoes the transfer.
func (s *TransactionService) sendReceipt(ctx context.Context, tx *Transaction) {
	settings := s.opts.ReceiptSettings
	if !settings.Email && !settings.SMS {
		return
	}
	receipt := notify.RenderReceipt(tx, s.opts.UserName, settings)
	if err := s.opts.ReceiptSender.SendReceipt(ctx, receipt); err != nil {
		s.opts.Logger.WithError(err).
			WithField("transactionId", tx.ID.String()).
			Warn("TransactionService.sendReceipt.error")
	}
}

// AuthorizeTransaction clears a flagged transfer. A transfer in any other
// status is left exactly as it was and the result is OutcomeNotEligible.
func (s *TransactionService) AuthorizeTransaction(ctx context.Context, id uuid.UUID, method string) (*AuthorizationResult, error) {
	parsed, err := lifecycle.ParseAuthorizationMethod(method)
	if err != nil {
		return nil, err
	}

	action := &actions.AuthorizeTransaction{
		TransactionID: id,
		Method:        parsed,
		Now:           s.opts.Now(),
	}
	if err = s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	if action.Outcome == lifecycle.OutcomeApplied {
		s.opts.Inbox.Notify(
			notify.KindSecurity,
			"Transfer Cleared",
			fmt.Sprintf("Your transfer to %s has been cleared and will continue processing.", action.Result.Recipient.FullName),
			"history",
		)
	}
	return &AuthorizationResult{Outcome: action.Outcome, Transaction: action.Result}, nil
}

// FlagForClearance holds an IN_TRANSIT transfer until it is authorized.
func (s *TransactionService) FlagForClearance(ctx context.Context, id uuid.UUID) (*TransitionResult, error) {
	action := &actions.FlagTransaction{
		TransactionID: id,
		Now:           s.opts.Now(),
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	if action.Outcome == lifecycle.OutcomeApplied {
		s.opts.Inbox.Notify(
			notify.KindSecurity,
			"Clearance Required",
			fmt.Sprintf("Your transfer to %s needs authorization before it can continue.", action.Result.Recipient.FullName),
			"history",
		)
	}
	return &TransitionResult{Outcome: action.Outcome, Transaction: action.Result}, nil
}

// Advance applies the timed transition out of the transfer's current status
// if its delay has elapsed.
func (s *TransactionService) Advance(ctx context.Context, id uuid.UUID) (*TransitionResult, error) {
	action := &actions.AdvanceTransaction{
		TransactionID: id,
		Delays:        s.opts.Delays,
		Now:           s.opts.Now(),
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	if action.Outcome == lifecycle.OutcomeApplied {
		s.announceAdvance(action.Result)
	}
	return &TransitionResult{Outcome: action.Outcome, Transaction: action.Result}, nil
}

// AdvanceDue advances every transfer whose timed transition is due and
// returns the transfers that moved.
func (s *TransactionService) AdvanceDue(ctx context.Context) ([]*Transaction, error) {
	action := &actions.AdvanceDue{
		Delays: s.opts.Delays,
		Now:    s.opts.Now(),
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	for _, tx := range action.Advanced {
		s.announceAdvance(tx)
	}
	return action.Advanced, nil
}

func (s *TransactionService) announceAdvance(tx *Transaction) {
	s.opts.Logger.WithFields(logrus.Fields{
		"transactionId": tx.ID.String(),
		"status":        tx.Status,
	}).Debug("TransactionService.advance")

	if tx.Status == lifecycle.StatusFundsArrived {
		s.opts.Inbox.Notify(
			notify.KindTransaction,
			"Funds Arrived",
			fmt.Sprintf("%s has received %s %s.", tx.Recipient.FullName, tx.ReceiveAmount.StringFixed(2), tx.ReceiveCurrency),
			"history",
		)
	}
}

// GetTransaction returns one transfer by id.
func (s *TransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return s.storage.Read().Transactions.FindByID(ctx, id)
}

// ListTransactions returns a page of transactions, most recent first, using
// cursor-based pagination.
func (s *TransactionService) ListTransactions(ctx context.Context, filter *TransactionListFilter, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	limit := defaultLimit
	offset := 0
	var maxCreationTime *time.Time
	var afterID *uuid.UUID
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
		maxCreationTime = &cursor.MaxCreationTime
		if cursor.LastID != uuid.Nil {
			lastID := cursor.LastID
			afterID = &lastID
		}
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	storageFilter := &transaction.TransactionFilter{
		Limit:           limit,
		Offset:          offset,
		MaxCreationTime: maxCreationTime,
		AfterID:         afterID,
	}
	if filter != nil {
		storageFilter.AccountID = filter.AccountID
		storageFilter.Statuses = filter.Statuses
	}

	rows, err := s.storage.Read().Transactions.List(ctx, storageFilter)
	if err != nil {
		return nil, nil, err
	}

	if len(rows) == 0 {
		return nil, nil, nil
	}

	var nextCursor *TransactionCursor
	if len(rows) > limit {
		rows = rows[:limit]

		cursorMaxCreationTime := rows[0].CreatedAt
		if maxCreationTime != nil {
			cursorMaxCreationTime = *maxCreationTime
		}

		nextCursor = &TransactionCursor{
			Position:        offset + limit,
			Limit:           limit,
			MaxCreationTime: cursorMaxCreationTime,
			LastID:          rows[limit-1].ID,
		}
	}

	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = *row
	}

	return transactions, nextCursor, nil
}
