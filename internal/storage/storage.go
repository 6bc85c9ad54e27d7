package storage

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/carson-networks/transfer-server/internal/storage/account"
	"github.com/carson-networks/transfer-server/internal/storage/recipient"
	"github.com/carson-networks/transfer-server/internal/storage/transaction"
)

var ErrWriterClosed = errors.New("writer already committed or rolled back")

type state struct {
	accounts     *account.Table
	transactions *transaction.Table
	recipients   *recipient.Table
}

func (s *state) clone() *state {
	return &state{
		accounts:     s.accounts.Clone(),
		transactions: s.transactions.Clone(),
		recipients:   s.recipients.Clone(),
	}
}

// Storage is the session store. Readers see an immutable snapshot; a single
// Writer at a time works on a private copy that replaces the snapshot on
// Commit.
type Storage struct {
	current atomic.Pointer[state]
	writeCh chan struct{}
}

func NewStorage() *Storage {
	s := &Storage{
		writeCh: make(chan struct{}, 1),
	}
	s.current.Store(&state{
		accounts:     account.NewTable(),
		transactions: transaction.NewTable(),
		recipients:   recipient.NewTable(),
	})
	return s
}

// Read returns a Reader over the latest committed snapshot.
func (s *Storage) Read() *Reader {
	return newReader(s.current.Load())
}

// Write blocks until no other Writer is open, then returns one over a copy of
// the latest snapshot. The caller must Commit or Rollback it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	select {
	case s.writeCh <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	return newWriter(s, s.current.Load().clone()), nil
}

func (s *Storage) release() {
	<-s.writeCh
}
