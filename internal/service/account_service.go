package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/transfer-server/internal/notify"
	"github.com/carson-networks/transfer-server/internal/operator/actions"
	"github.com/carson-networks/transfer-server/internal/storage"
	"github.com/carson-networks/transfer-server/internal/storage/account"
)

const defaultAccountLimit = 20

// AccountService handles account business logic.
type AccountService struct {
	storage   *storage.Storage
	processor actionProcessor
	opts      Options
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage, processor actionProcessor, opts Options) *AccountService {
	return &AccountService{
		storage:   store,
		processor: processor,
		opts:      opts.withDefaults(),
	}
}

// CreateAccount opens a new account.
func (s *AccountService) CreateAccount(ctx context.Context, create AccountCreate) (*Account, error) {
	if _, ok := accountTypes[create.Type]; !ok {
		return nil, fmt.Errorf("unknown account type %q", create.Type)
	}

	action := &actions.CreateAccount{
		Nickname:          create.Nickname,
		Type:              accountTypeToStorage(create.Type),
		FullAccountNumber: create.FullAccountNumber,
		StartingBalance:   create.StartingBalance,
		Now:               s.opts.Now(),
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	created := accountFromStorage(action.Result)
	return &created, nil
}

// GetAccount retrieves an account by ID.
func (s *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*Account, error) {
	row, err := s.storage.Read().Accounts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	acct := accountFromStorage(row)
	return &acct, nil
}

// GetAccountBalance returns the committed balance of an account.
func (s *AccountService) GetAccountBalance(ctx context.Context, id uuid.UUID) (decimal.Decimal, error) {
	row, err := s.storage.Read().Accounts.FindByID(ctx, id)
	if err != nil {
		return decimal.Zero, err
	}
	return row.Balance, nil
}

// ListAccounts returns a page of accounts using cursor pagination.
func (s *AccountService) ListAccounts(ctx context.Context, cursor *AccountCursor) ([]Account, *AccountCursor, error) {
	limit := defaultAccountLimit
	offset := 0
	if cursor != nil {
		limit = cursor.Limit
		offset = cursor.Position
	}

	result, err := s.storage.Read().Accounts.List(ctx, &account.AccountFilter{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, nil, err
	}

	if len(result.Accounts) == 0 {
		return nil, nil, nil
	}

	var nextCursor *AccountCursor
	if result.NextCursor != nil {
		nextCursor = &AccountCursor{
			Position: result.NextCursor.Position,
			Limit:    result.NextCursor.Limit,
		}
	}

	accounts := make([]Account, len(result.Accounts))
	for i, row := range result.Accounts {
		accounts[i] = accountFromStorage(row)
	}

	return accounts, nextCursor, nil
}

// CreditAccount deposits amount and returns the new balance.
func (s *AccountService) CreditAccount(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (decimal.Decimal, error) {
	action := &actions.CreditAccount{
		AccountID: id,
		Amount:    amount,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return decimal.Zero, err
	}

	s.opts.Inbox.Notify(
		notify.KindTransaction,
		"Funds Added",
		fmt.Sprintf("$%s added to your account.", amount.StringFixed(2)),
		"",
	)
	return action.Balance, nil
}

// DebitAccount withdraws from one account and returns the new balance. The
// balance check and the debit run in one write unit, so an
// ErrInsufficientFunds leaves the account untouched.
func (s *AccountService) DebitAccount(ctx context.Context, id uuid.UUID, debit AccountDebit) (decimal.Decimal, error) {
	action := &actions.DebitAccount{
		AccountID: id,
		Amount:    debit.Amount,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return decimal.Zero, err
	}

	title := strings.TrimSpace(debit.Title)
	if title == "" {
		title = "Payment Sent"
	}
	message := strings.TrimSpace(debit.Message)
	if message == "" {
		message = fmt.Sprintf("$%s paid from your account.", debit.Amount.StringFixed(2))
	}
	s.opts.Inbox.Notify(notify.KindTransaction, title, message, "")
	return action.Balance, nil
}

// PayFromAnyAccount debits the first account, in the order accounts were
// opened, that can cover amount.
func (s *AccountService) PayFromAnyAccount(ctx context.Context, amount decimal.Decimal, payee string) (*Account, error) {
	action := &actions.PayFromAnyAccount{Amount: amount}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	s.opts.Inbox.Notify(
		notify.KindTransaction,
		"Payment Sent",
		fmt.Sprintf("%s payment of $%s sent.", payee, amount.StringFixed(2)),
		"",
	)
	paid := accountFromStorage(action.Result)
	return &paid, nil
}

// UpdateAccountNickname renames an account.
func (s *AccountService) UpdateAccountNickname(ctx context.Context, id uuid.UUID, nickname string) error {
	return s.processor.Process(ctx, &actions.UpdateAccountNickname{
		AccountID: id,
		Nickname:  nickname,
	})
}
