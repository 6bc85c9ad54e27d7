package account

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/transfer-server/internal/storage/recipient"
)

type Writer struct {
	table *Table
	Reader
}

func NewWriter(table *Table) *Writer {
	return &Writer{
		table: table,
		Reader: Reader{
			table: table,
		},
	}
}

// FindByIDForUpdate reads an account inside the write unit. The storage
// write unit is exclusive, so the row cannot change until commit.
func (w *Writer) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Account, error) {
	return w.FindByID(ctx, id)
}

func (w *Writer) Create(_ context.Context, create *AccountCreate, now time.Time) (*Account, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	row := Account{
		ID:                id,
		Type:              create.Type,
		Nickname:          create.Nickname,
		MaskedNumber:      recipient.MaskAccountNumber(create.FullAccountNumber),
		FullAccountNumber: create.FullAccountNumber,
		Balance:           create.Balance,
		Status:            AccountStatusActive,
		CreatedAt:         now,
	}
	return w.Put(row), nil
}

// Put stores row as-is, keeping its position if it already exists.
func (w *Writer) Put(row Account) *Account {
	if _, exists := w.table.rows[row.ID]; !exists {
		w.table.order = append(w.table.order, row.ID)
	}
	w.table.rows[row.ID] = row
	return &row
}

func (w *Writer) UpdateBalance(_ context.Context, id uuid.UUID, balance decimal.Decimal) error {
	row, ok := w.table.rows[id]
	if !ok {
		return ErrNotFound
	}
	row.Balance = balance
	w.table.rows[id] = row
	return nil
}

func (w *Writer) UpdateNickname(_ context.Context, id uuid.UUID, nickname string) error {
	row, ok := w.table.rows[id]
	if !ok {
		return ErrNotFound
	}
	row.Nickname = nickname
	w.table.rows[id] = row
	return nil
}
