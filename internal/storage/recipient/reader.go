package recipient

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

type Reader struct {
	table *Table
}

func NewReader(table *Table) *Reader {
	return &Reader{table: table}
}

func (r *Reader) FindByID(_ context.Context, id uuid.UUID) (*Recipient, error) {
	row, ok := r.table.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &row, nil
}

// List returns every recipient in insertion order.
func (r *Reader) List(_ context.Context) ([]*Recipient, error) {
	result := make([]*Recipient, 0, len(r.table.order))
	for _, id := range r.table.order {
		row := r.table.rows[id]
		result = append(result, &row)
	}
	return result, nil
}
