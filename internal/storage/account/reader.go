package account

import (
	"context"

	"github.com/gofrs/uuid/v5"
)

const defaultListLimit = 20

type Reader struct {
	table *Table
}

func NewReader(table *Table) *Reader {
	return &Reader{table: table}
}

// List returns a page of accounts in the order they were opened.
func (r *Reader) List(_ context.Context, filter *AccountFilter) (*AccountListResult, error) {
	limit := defaultListLimit
	offset := 0
	if filter != nil {
		if filter.Limit > 0 {
			limit = filter.Limit
		}
		offset = filter.Offset
	}

	if offset >= len(r.table.order) {
		return &AccountListResult{Accounts: nil, NextCursor: nil}, nil
	}

	ids := r.table.order[offset:]
	var nextCursor *AccountCursor
	if len(ids) > limit {
		ids = ids[:limit]
		nextCursor = &AccountCursor{
			Position: offset + limit,
			Limit:    limit,
		}
	}

	result := make([]*Account, len(ids))
	for i, id := range ids {
		row := r.table.rows[id]
		result[i] = &row
	}
	return &AccountListResult{Accounts: result, NextCursor: nextCursor}, nil
}

// All returns every account in the order they were opened.
func (r *Reader) All(_ context.Context) []*Account {
	result := make([]*Account, len(r.table.order))
	for i, id := range r.table.order {
		row := r.table.rows[id]
		result[i] = &row
	}
	return result
}

func (r *Reader) FindByID(_ context.Context, id uuid.UUID) (*Account, error) {
	row, ok := r.table.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &row, nil
}
