package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/transfer-server/internal/notify"
	"github.com/carson-networks/transfer-server/internal/operator/actions"
	"github.com/carson-networks/transfer-server/internal/storage"
	"github.com/carson-networks/transfer-server/internal/storage/recipient"
)

type (
	Recipient       = recipient.Recipient
	RecipientCreate = recipient.RecipientCreate
	RecipientUpdate = recipient.RecipientUpdate
)

// RecipientService manages the payee registry. Transfers keep their own
// copy of the recipient, so edits here never reach existing transfers.
type RecipientService struct {
	storage   *storage.Storage
	processor actionProcessor
	opts      Options
}

func NewRecipientService(store *storage.Storage, processor actionProcessor, opts Options) *RecipientService {
	return &RecipientService{
		storage:   store,
		processor: processor,
		opts:      opts.withDefaults(),
	}
}

// AddRecipient stores a payee with its account number masked to the last
// four digits.
func (s *RecipientService) AddRecipient(ctx context.Context, create RecipientCreate) (*Recipient, error) {
	action := &actions.CreateRecipient{
		Create: create,
		Now:    s.opts.Now(),
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	s.opts.Inbox.Notify(notify.KindAccount, "Recipient Added", fmt.Sprintf("%s added.", action.Result.FullName), "")
	return action.Result, nil
}

func (s *RecipientService) UpdateRecipient(ctx context.Context, id uuid.UUID, update RecipientUpdate) (*Recipient, error) {
	action := &actions.UpdateRecipient{
		RecipientID: id,
		Update:      update,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	s.opts.Inbox.Notify(notify.KindAccount, "Recipient Updated", fmt.Sprintf("%s updated.", action.Result.FullName), "")
	return action.Result, nil
}

func (s *RecipientService) GetRecipient(ctx context.Context, id uuid.UUID) (*Recipient, error) {
	return s.storage.Read().Recipients.FindByID(ctx, id)
}

func (s *RecipientService) ListRecipients(ctx context.Context) ([]*Recipient, error) {
	return s.storage.Read().Recipients.List(ctx)
}
