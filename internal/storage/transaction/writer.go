package transaction

import (
	"context"
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

// Insert prepends tx to the history.
func (w *Writer) Insert(_ context.Context, tx *Transaction) error {
	row := tx.Clone()
	w.table.order = append(w.table.order, row.ID)
	copy(w.table.order[1:], w.table.order[:len(w.table.order)-1])
	w.table.order[0] = row.ID
	w.table.rows[row.ID] = row
	return nil
}

// Append adds tx at the oldest end of the history. Used when loading a
// history that is already ordered most recent first.
func (w *Writer) Append(_ context.Context, tx *Transaction) error {
	row := tx.Clone()
	w.table.order = append(w.table.order, row.ID)
	w.table.rows[row.ID] = row
	return nil
}

// Update replaces an existing row, keeping its position in the history.
func (w *Writer) Update(_ context.Context, tx *Transaction) error {
	if _, ok := w.table.rows[tx.ID]; !ok {
		return ErrNotFound
	}
	w.table.rows[tx.ID] = tx.Clone()
	return nil
}
