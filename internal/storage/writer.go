package storage

import (
	"sync"

	"github.com/carson-networks/transfer-server/internal/storage/account"
	"github.com/carson-networks/transfer-server/internal/storage/recipient"
	"github.com/carson-networks/transfer-server/internal/storage/transaction"
)

type Writer struct {
	storage     *Storage
	staged      *state
	once        sync.Once
	Account     *account.Writer
	Transaction *transaction.Writer
	Recipient   *recipient.Writer
}

func newWriter(s *Storage, staged *state) *Writer {
	return &Writer{
		storage:     s,
		staged:      staged,
		Account:     account.NewWriter(staged.accounts),
		Transaction: transaction.NewWriter(staged.transactions),
		Recipient:   recipient.NewWriter(staged.recipients),
	}
}

// Commit publishes the staged changes to new readers.
func (w *Writer) Commit() error {
	return w.finish(true)
}

// Rollback discards the staged changes.
func (w *Writer) Rollback() error {
	return w.finish(false)
}

func (w *Writer) finish(publish bool) error {
	done := false
	w.once.Do(func() {
		if publish {
			w.storage.current.Store(w.staged)
		}
		w.storage.release()
		done = true
	})
	if !done {
		return ErrWriterClosed
	}
	return nil
}
