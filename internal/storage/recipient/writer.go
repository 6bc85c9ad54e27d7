package recipient

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
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

func (w *Writer) Insert(_ context.Context, create *RecipientCreate, now time.Time) (*Recipient, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	row := Recipient{
		ID:            id,
		FullName:      create.FullName,
		Nickname:      create.Nickname,
		Phone:         create.Phone,
		BankName:      create.BankName,
		AccountNumber: MaskAccountNumber(create.AccountNumber),
		Country:       create.Country,
		DeliveryOptions: DeliveryOptions{
			BankDeposit: true,
			CardDeposit: true,
			CashPickup:  create.CashPickupEnabled,
		},
		RealDetails: RealDetails{
			AccountNumber: create.AccountNumber,
			SwiftBIC:      create.SwiftBIC,
		},
		StreetAddress: create.StreetAddress,
		City:          create.City,
		StateProvince: create.StateProvince,
		PostalCode:    create.PostalCode,
		CreatedAt:     now,
	}
	return w.Put(row), nil
}

// Put stores row as-is, keeping its position if it already exists.
func (w *Writer) Put(row Recipient) *Recipient {
	if _, exists := w.table.rows[row.ID]; !exists {
		w.table.order = append(w.table.order, row.ID)
	}
	w.table.rows[row.ID] = row
	return &row
}

func (w *Writer) Update(_ context.Context, id uuid.UUID, update *RecipientUpdate) (*Recipient, error) {
	row, ok := w.table.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	row = update.apply(row)
	w.table.rows[id] = row
	return &row, nil
}
