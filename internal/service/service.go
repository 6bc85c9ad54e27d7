package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/transfer-server/internal/lifecycle"
	"github.com/carson-networks/transfer-server/internal/notify"
	"github.com/carson-networks/transfer-server/internal/operator/actions"
	"github.com/carson-networks/transfer-server/internal/storage"
)

// actionProcessor runs an action inside one storage write unit.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Options configures the session-wide behaviour of the services.
type Options struct {
	// Delays are used as given; zero delays progress a transfer on the
	// first due check.
	Delays          lifecycle.Delays
	UserName        string
	ReceiptSettings notify.ReceiptSettings
	Inbox           *notify.Inbox
	ReceiptSender   notify.ReceiptSender
	Logger          *logrus.Logger
	Now             func() time.Time
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = logrus.StandardLogger()
	}
	if o.Inbox == nil {
		o.Inbox = notify.NewInbox(notify.PushSettings{}, o.Logger)
	}
	if o.ReceiptSender == nil {
		o.ReceiptSender = notify.NewLogReceiptSender(o.Logger)
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Service holds all business logic services.
type Service struct {
	Transaction   *TransactionService
	Account       *AccountService
	Recipient     *RecipientService
	Notifications *notify.Inbox
}

// NewService creates a new Service over the given storage and write path.
func NewService(store *storage.Storage, processor actionProcessor, opts Options) *Service {
	opts = opts.withDefaults()
	return &Service{
		Transaction:   NewTransactionService(store, processor, opts),
		Account:       NewAccountService(store, processor, opts),
		Recipient:     NewRecipientService(store, processor, opts),
		Notifications: opts.Inbox,
	}
}
